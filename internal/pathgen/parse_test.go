package pathgen

import (
	"errors"
	"reflect"
	"testing"
)

const validResponse = `{
	"title": "Backend Go Developer Path",
	"description": "From Python basics to production Go services",
	"estimatedDuration": "6 months",
	"difficulty": "intermediate",
	"totalHours": 240,
	"modules": [
		{
			"title": "Go Fundamentals",
			"duration": "4 weeks",
			"description": "Syntax, tooling, and idioms",
			"skills": ["go"],
			"learningObjectives": ["Write idiomatic Go"],
			"resources": [
				{
					"title": "A Tour of Go",
					"type": "tutorial",
					"provider": "golang.org",
					"url": "https://go.dev/tour",
					"difficulty": "beginner",
					"estimatedTime": "8 hours",
					"cost": "free",
					"description": "Official interactive introduction"
				}
			]
		},
		{
			"title": "Concurrency",
			"duration": "3 weeks",
			"skills": ["go", "concurrency"],
			"resources": []
		}
	],
	"milestones": [
		{
			"week": 4,
			"goal": "Ship a CLI tool",
			"skills": ["go"],
			"assessment": "Build a file deduplicator"
		}
	],
	"careerOutcomes": ["Backend Engineer"],
	"estimatedSalaryRange": "$90,000 - $140,000"
}`

func TestParseValidResponse(t *testing.T) {
	c, err := Parse([]byte(validResponse))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if c.Title != "Backend Go Developer Path" {
		t.Errorf("title = %q", c.Title)
	}
	if c.Difficulty != DifficultyIntermediate {
		t.Errorf("difficulty = %q", c.Difficulty)
	}
	if c.TotalHours != 240 {
		t.Errorf("totalHours = %v", c.TotalHours)
	}
	if len(c.Modules) != 2 {
		t.Fatalf("modules = %d, want 2", len(c.Modules))
	}
	if c.Modules[0].Resources[0].Cost != CostFree {
		t.Errorf("resource cost = %q", c.Modules[0].Resources[0].Cost)
	}
	if len(c.Milestones) != 1 || c.Milestones[0].Week != 4 {
		t.Errorf("milestones = %+v", c.Milestones)
	}
}

func TestParseWarnsOnEmptyResources(t *testing.T) {
	c, err := Parse([]byte(validResponse))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	// Second module lists no resources; that is valid but flagged.
	if len(c.Warnings()) != 1 {
		t.Fatalf("warnings = %v, want exactly one", c.Warnings())
	}
}

func TestParseStripsProseWrapping(t *testing.T) {
	wrapped := "Sure! Here is your learning path:\n\n" + validResponse + "\n\nGood luck!"
	c, err := Parse([]byte(wrapped))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if c.Title != "Backend Go Developer Path" {
		t.Errorf("title = %q", c.Title)
	}
}

func TestParseNonJSONIsMalformed(t *testing.T) {
	for _, raw := range []string{
		"I cannot create a learning path right now.",
		"",
		"   \n\t  ",
	} {
		_, err := Parse([]byte(raw))
		var pf *ParseFailure
		if !errors.As(err, &pf) {
			t.Fatalf("Parse(%q) error type = %T, want *ParseFailure", raw, err)
		}
		if pf.Kind != MalformedJSON {
			t.Errorf("Parse(%q) kind = %q, want MalformedJSON", raw, pf.Kind)
		}
	}
}

func TestParseTruncatedJSONIsMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"title": "cut off", "modules": [{"titl`))
	var pf *ParseFailure
	if !errors.As(err, &pf) {
		t.Fatalf("error type = %T, want *ParseFailure", err)
	}
	// The brace slice still fails to decode.
	if pf.Kind != MalformedJSON {
		t.Errorf("kind = %q, want MalformedJSON", pf.Kind)
	}
}

func TestParseValidPreludeButMissingModules(t *testing.T) {
	_, err := Parse([]byte(`Sure! {"title":"X","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":10}`))
	var pf *ParseFailure
	if !errors.As(err, &pf) {
		t.Fatalf("error type = %T, want *ParseFailure", err)
	}
	if pf.Kind != SchemaViolation || pf.Field != "modules" {
		t.Errorf("got kind=%q field=%q, want SchemaViolation at modules", pf.Kind, pf.Field)
	}
}

func TestParseProseWrappedFragment(t *testing.T) {
	// The braces get sliced out of the prose, then field checks run in
	// declaration order, so a bare title fails at the next required field.
	_, err := Parse([]byte(`Sure! {"title":"X"}`))
	var pf *ParseFailure
	if !errors.As(err, &pf) {
		t.Fatalf("error type = %T, want *ParseFailure", err)
	}
	if pf.Kind != SchemaViolation || pf.Field != "description" {
		t.Errorf("got kind=%q field=%q, want SchemaViolation at description", pf.Kind, pf.Field)
	}
}

func TestParseSchemaViolations(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{
			name:  "missing title",
			raw:   `{"description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":10,"modules":[{"title":"m","skills":["s"]}]}`,
			field: "title",
		},
		{
			name:  "totalHours as string",
			raw:   `{"title":"t","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":"many","modules":[{"title":"m","skills":["s"]}]}`,
			field: "totalHours",
		},
		{
			name:  "negative totalHours",
			raw:   `{"title":"t","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":-5,"modules":[{"title":"m","skills":["s"]}]}`,
			field: "totalHours",
		},
		{
			name:  "unknown difficulty",
			raw:   `{"title":"t","description":"d","estimatedDuration":"1 month","difficulty":"expert","totalHours":10,"modules":[{"title":"m","skills":["s"]}]}`,
			field: "difficulty",
		},
		{
			name:  "empty modules",
			raw:   `{"title":"t","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":10,"modules":[]}`,
			field: "modules",
		},
		{
			name:  "module missing title",
			raw:   `{"title":"t","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":10,"modules":[{"title":"a","skills":["s"]},{"skills":["s"]}]}`,
			field: "modules[1].title",
		},
		{
			name:  "module empty skills",
			raw:   `{"title":"t","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":10,"modules":[{"title":"a","skills":[]}]}`,
			field: "modules[0].skills",
		},
		{
			name:  "unknown resource type",
			raw:   `{"title":"t","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":10,"modules":[{"title":"a","skills":["s"],"resources":[{"title":"r","type":"podcast"}]}]}`,
			field: "modules[0].resources[0].type",
		},
		{
			name:  "unknown resource cost",
			raw:   `{"title":"t","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":10,"modules":[{"title":"a","skills":["s"],"resources":[{"title":"r","type":"book","cost":"cheap"}]}]}`,
			field: "modules[0].resources[0].cost",
		},
		{
			name:  "zero milestone week",
			raw:   `{"title":"t","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":10,"modules":[{"title":"a","skills":["s"]}],"milestones":[{"week":0,"goal":"g"}]}`,
			field: "milestones[0].week",
		},
		{
			name:  "fractional milestone week",
			raw:   `{"title":"t","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":10,"modules":[{"title":"a","skills":["s"]}],"milestones":[{"week":2.5,"goal":"g"}]}`,
			field: "milestones[0].week",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			var pf *ParseFailure
			if !errors.As(err, &pf) {
				t.Fatalf("error type = %T, want *ParseFailure", err)
			}
			if pf.Kind != SchemaViolation {
				t.Errorf("kind = %q, want SchemaViolation", pf.Kind)
			}
			if pf.Field != tt.field {
				t.Errorf("field = %q, want %q", pf.Field, tt.field)
			}
		})
	}
}

func TestParseMissingCostBecomesUnspecified(t *testing.T) {
	raw := `{"title":"t","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":10,"modules":[{"title":"a","skills":["s"],"resources":[{"title":"r","type":"book"}]}]}`
	c, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := c.Modules[0].Resources[0].Cost; got != CostUnspecified {
		t.Errorf("cost = %q, want %q", got, CostUnspecified)
	}
}

func TestExportRoundTrip(t *testing.T) {
	c, err := Parse([]byte(validResponse))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	data, err := Export(c)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	back, err := Import(data)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	// Warnings are recomputed, not serialized; compare the documents.
	c.warnings = nil
	back.warnings = nil
	if !reflect.DeepEqual(c, back) {
		t.Errorf("round trip mismatch:\n got: %+v\nwant: %+v", back, c)
	}
}
