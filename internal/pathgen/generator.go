package pathgen

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/abhisek/skillpath/internal/llm"
	"github.com/abhisek/skillpath/internal/profile"
)

// Config tunes curriculum generation.
type Config struct {
	// MaxTokens bounds the response size. Curricula are large documents.
	MaxTokens int
	// Temperature for the provider call.
	Temperature float64
	// Timeout bounds the whole provider round trip, retries included.
	Timeout time.Duration
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
		Timeout:     60 * time.Second,
	}
}

// Generator turns a validated profile into a Curriculum via an LLM
// provider. One generation runs at a time; a second concurrent call
// fails fast with ErrGenerationInFlight.
type Generator struct {
	provider llm.Provider
	config   Config

	mu       sync.Mutex
	inFlight bool
}

// NewGenerator creates a Generator over the given provider.
func NewGenerator(p llm.Provider, cfg Config) *Generator {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Generator{provider: p, config: cfg}
}

// Generate produces a curriculum for the profile. The profile is
// validated before any provider call is made; a ValidationError means
// the provider was never contacted.
func (g *Generator) Generate(ctx context.Context, p *profile.Profile) (*Curriculum, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	if g.inFlight {
		g.mu.Unlock()
		return nil, ErrGenerationInFlight
	}
	g.inFlight = true
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.inFlight = false
		g.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, "path-gen")

	req := llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(p)}},
		Schema:      CurriculumSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, g.classify(err)
	}

	return Parse(resp.Content)
}

// classify maps provider-layer errors onto the generation error taxonomy.
func (g *Generator) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &GenerationFailure{Timeout: true, Err: err}
	}

	// The provider validated the response against CurriculumSchema and
	// rejected it. Run the hand parser on the raw content to name the
	// offending field; if there is no content to inspect, report the
	// violation as-is.
	var inv *llm.ErrInvalidResponse
	if errors.As(err, &inv) {
		if len(inv.Content) > 0 {
			if _, parseErr := Parse(inv.Content); parseErr != nil {
				return parseErr
			}
		}
		return &ParseFailure{Kind: SchemaViolation, Message: err.Error()}
	}

	return &GenerationFailure{Err: err}
}
