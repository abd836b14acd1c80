package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var pathSchema = &Schema{
	Name: "validate-test-path",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"title", "modules"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"modules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"week"},
					"properties": map[string]any{
						"week": map[string]any{"type": "integer"},
					},
				},
			},
		},
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"title":"Go Basics","modules":[{"week":1}]}`)
	if err := validateResponse(pathSchema, raw); err != nil {
		t.Errorf("validateResponse returned error: %v", err)
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"title": "truncated`)
	err := validateResponse(pathSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("error type = %T, want *ErrInvalidResponse", err)
	}
}

func TestValidateResponseRejectsMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"No modules here"}`)
	err := validateResponse(pathSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("error type = %T, want *ErrInvalidResponse", err)
	}
	if string(inv.Content) != string(raw) {
		t.Errorf("invalid response should carry original content")
	}
}

func TestValidateResponseRejectsWrongType(t *testing.T) {
	raw := json.RawMessage(`{"title":"x","modules":[{"week":"one"}]}`)
	err := validateResponse(pathSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("error type = %T, want *ErrInvalidResponse", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}
