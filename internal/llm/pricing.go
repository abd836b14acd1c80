package llm

// ModelCost holds per-million-token prices in USD for a model.
type ModelCost struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// modelCosts lists known prices for cost estimation in usage reports.
// Prices drift; treat estimates as approximate.
var modelCosts = map[string]ModelCost{
	"gemini-2.0-flash":            {InputPerMillion: 0.10, OutputPerMillion: 0.40},
	"gemini-2.0-pro":              {InputPerMillion: 1.25, OutputPerMillion: 5.00},
	"claude-sonnet-4-20250514":    {InputPerMillion: 3.00, OutputPerMillion: 15.00},
	"claude-haiku-4-5-20251001":   {InputPerMillion: 1.00, OutputPerMillion: 5.00},
	"gpt-4o":                      {InputPerMillion: 2.50, OutputPerMillion: 10.00},
	"gpt-4o-mini":                 {InputPerMillion: 0.15, OutputPerMillion: 0.60},
	"google/gemini-2.0-flash-001": {InputPerMillion: 0.10, OutputPerMillion: 0.40},
}

// LookupCost returns pricing for a model ID, and whether it is known.
func LookupCost(model string) (ModelCost, bool) {
	c, ok := modelCosts[model]
	return c, ok
}

// EstimateCost computes an approximate USD cost for a token count pair.
// Returns 0 for unknown models.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	c, ok := modelCosts[model]
	if !ok {
		return 0
	}
	return float64(inputTokens)/1e6*c.InputPerMillion +
		float64(outputTokens)/1e6*c.OutputPerMillion
}
