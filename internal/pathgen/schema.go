package pathgen

import "github.com/abhisek/skillpath/internal/llm"

// CurriculumSchema is the JSON Schema every generated learning path must
// conform to. Providers with native structured output receive it in the
// request; responses are additionally checked by Parse.
var CurriculumSchema = &llm.Schema{
	Name:        "learning-path",
	Description: "A personalized learning curriculum with modules, resources, and milestones",
	Definition: map[string]any{
		"type": "object",
		"required": []any{
			"title", "description", "estimatedDuration", "difficulty",
			"totalHours", "modules", "milestones",
		},
		"properties": map[string]any{
			"title":             map[string]any{"type": "string"},
			"description":       map[string]any{"type": "string"},
			"estimatedDuration": map[string]any{"type": "string"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"totalHours": map[string]any{"type": "number"},
			"modules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"title", "skills", "resources"},
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"duration":    map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"skills": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"learningObjectives": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"resources": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []any{"title", "type"},
								"properties": map[string]any{
									"title":    map[string]any{"type": "string"},
									"type": map[string]any{
										"type": "string",
										"enum": []any{"course", "book", "tutorial", "project", "video"},
									},
									"provider": map[string]any{"type": "string"},
									"url":      map[string]any{"type": "string"},
									"difficulty": map[string]any{
										"type": "string",
										"enum": []any{"beginner", "intermediate", "advanced"},
									},
									"estimatedTime": map[string]any{"type": "string"},
									"cost": map[string]any{
										"type": "string",
										"enum": []any{"free", "paid"},
									},
									"description": map[string]any{"type": "string"},
								},
							},
						},
					},
				},
			},
			"milestones": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"week", "goal"},
					"properties": map[string]any{
						"week": map[string]any{"type": "integer"},
						"goal": map[string]any{"type": "string"},
						"skills": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"assessment": map[string]any{"type": "string"},
					},
				},
			},
			"careerOutcomes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"estimatedSalaryRange": map[string]any{"type": "string"},
		},
	},
}
