package pathgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Parse validates an untrusted model response and converts it into a
// typed Curriculum. The response is accepted whole or rejected whole;
// a partially valid document is never returned.
//
// Models sometimes wrap the JSON in prose ("Sure! Here is your path:
// {...}"). Parse tolerates that by slicing from the first "{" to the
// last "}" before decoding. Everything after that is strict: missing or
// mistyped fields and out-of-domain enum values are schema violations,
// reported with the path of the first offending field.
func Parse(raw []byte) (*Curriculum, error) {
	body, err := extractObject(raw)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ParseFailure{Kind: MalformedJSON, Message: err.Error()}
	}

	c := &Curriculum{}

	if c.Title, err = requireString(doc, "title", "title"); err != nil {
		return nil, err
	}
	if c.Description, err = requireString(doc, "description", "description"); err != nil {
		return nil, err
	}
	if c.EstimatedDuration, err = requireString(doc, "estimatedDuration", "estimatedDuration"); err != nil {
		return nil, err
	}

	diff, err := requireString(doc, "difficulty", "difficulty")
	if err != nil {
		return nil, err
	}
	c.Difficulty = Difficulty(diff)
	if !c.Difficulty.Valid() {
		return nil, violation("difficulty", "unknown difficulty %q", diff)
	}

	hours, ok := doc["totalHours"].(float64)
	if !ok {
		return nil, violation("totalHours", "missing or not a number")
	}
	if hours <= 0 {
		return nil, violation("totalHours", "must be positive, got %v", hours)
	}
	c.TotalHours = hours

	rawModules, ok := doc["modules"].([]any)
	if !ok || len(rawModules) == 0 {
		return nil, violation("modules", "missing or empty")
	}
	for i, rm := range rawModules {
		mod, err := parseModule(rm, fmt.Sprintf("modules[%d]", i))
		if err != nil {
			return nil, err
		}
		if len(mod.Resources) == 0 {
			c.warnings = append(c.warnings,
				fmt.Sprintf("modules[%d] (%s) lists no resources", i, mod.Title))
		}
		c.Modules = append(c.Modules, *mod)
	}

	if rawMilestones, present := doc["milestones"]; present && rawMilestones != nil {
		list, ok := rawMilestones.([]any)
		if !ok {
			return nil, violation("milestones", "not an array")
		}
		for i, rm := range list {
			ms, err := parseMilestone(rm, fmt.Sprintf("milestones[%d]", i))
			if err != nil {
				return nil, err
			}
			c.Milestones = append(c.Milestones, *ms)
		}
	}

	if c.CareerOutcomes, err = optionalStrings(doc, "careerOutcomes", "careerOutcomes"); err != nil {
		return nil, err
	}
	if c.EstimatedSalaryRange, err = optionalString(doc, "estimatedSalaryRange", "estimatedSalaryRange"); err != nil {
		return nil, err
	}

	return c, nil
}

// extractObject trims surrounding prose and returns the outermost JSON
// object slice, or MalformedJSON if no braces are present.
func extractObject(raw []byte) ([]byte, error) {
	s := bytes.TrimSpace(raw)
	start := bytes.IndexByte(s, '{')
	end := bytes.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return nil, &ParseFailure{Kind: MalformedJSON, Message: "no JSON object found in response"}
	}
	return s[start : end+1], nil
}

func parseModule(v any, path string) (*Module, error) {
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, violation(path, "not an object")
	}

	m := &Module{}
	var err error

	if m.Title, err = requireString(doc, "title", path+".title"); err != nil {
		return nil, err
	}

	skills, err := optionalStrings(doc, "skills", path+".skills")
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, violation(path+".skills", "missing or empty")
	}
	m.Skills = skills

	if m.Duration, err = optionalString(doc, "duration", path+".duration"); err != nil {
		return nil, err
	}
	if m.Description, err = optionalString(doc, "description", path+".description"); err != nil {
		return nil, err
	}
	if m.LearningObjectives, err = optionalStrings(doc, "learningObjectives", path+".learningObjectives"); err != nil {
		return nil, err
	}

	if rawRes, present := doc["resources"]; present && rawRes != nil {
		list, ok := rawRes.([]any)
		if !ok {
			return nil, violation(path+".resources", "not an array")
		}
		for i, rr := range list {
			res, err := parseResource(rr, fmt.Sprintf("%s.resources[%d]", path, i))
			if err != nil {
				return nil, err
			}
			m.Resources = append(m.Resources, *res)
		}
	}

	return m, nil
}

func parseResource(v any, path string) (*Resource, error) {
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, violation(path, "not an object")
	}

	r := &Resource{}
	var err error

	if r.Title, err = requireString(doc, "title", path+".title"); err != nil {
		return nil, err
	}

	typ, err := requireString(doc, "type", path+".type")
	if err != nil {
		return nil, err
	}
	r.Type = ResourceType(typ)
	if !r.Type.Valid() {
		return nil, violation(path+".type", "unknown resource type %q", typ)
	}

	if diff, present := doc["difficulty"]; present {
		s, ok := diff.(string)
		if !ok {
			return nil, violation(path+".difficulty", "not a string")
		}
		r.Difficulty = Difficulty(s)
		if !r.Difficulty.Valid() {
			return nil, violation(path+".difficulty", "unknown difficulty %q", s)
		}
	}

	// Missing cost degrades to the sentinel; a present but out-of-domain
	// cost is rejected, never coerced.
	if cost, present := doc["cost"]; present {
		s, ok := cost.(string)
		if !ok {
			return nil, violation(path+".cost", "not a string")
		}
		r.Cost = Cost(s)
		if !r.Cost.Valid() {
			return nil, violation(path+".cost", "unknown cost %q", s)
		}
	} else {
		r.Cost = CostUnspecified
	}

	if r.Provider, err = optionalString(doc, "provider", path+".provider"); err != nil {
		return nil, err
	}
	if r.URL, err = optionalString(doc, "url", path+".url"); err != nil {
		return nil, err
	}
	if r.EstimatedTime, err = optionalString(doc, "estimatedTime", path+".estimatedTime"); err != nil {
		return nil, err
	}
	if r.Description, err = optionalString(doc, "description", path+".description"); err != nil {
		return nil, err
	}

	return r, nil
}

func parseMilestone(v any, path string) (*Milestone, error) {
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, violation(path, "not an object")
	}

	ms := &Milestone{}
	var err error

	week, ok := doc["week"].(float64)
	if !ok {
		return nil, violation(path+".week", "missing or not a number")
	}
	if week < 1 || week != math.Trunc(week) {
		return nil, violation(path+".week", "must be a positive integer, got %v", week)
	}
	ms.Week = int(week)

	if ms.Goal, err = requireString(doc, "goal", path+".goal"); err != nil {
		return nil, err
	}
	if ms.Skills, err = optionalStrings(doc, "skills", path+".skills"); err != nil {
		return nil, err
	}
	if ms.Assessment, err = optionalString(doc, "assessment", path+".assessment"); err != nil {
		return nil, err
	}

	return ms, nil
}

func requireString(doc map[string]any, field, path string) (string, error) {
	v, present := doc[field]
	if !present {
		return "", violation(path, "missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", violation(path, "not a string")
	}
	if s == "" {
		return "", violation(path, "empty")
	}
	return s, nil
}

func optionalString(doc map[string]any, field, path string) (string, error) {
	v, present := doc[field]
	if !present {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", violation(path, "not a string")
	}
	return s, nil
}

func optionalStrings(doc map[string]any, field, path string) ([]string, error) {
	v, present := doc[field]
	if !present {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, violation(path, "not an array")
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, violation(fmt.Sprintf("%s[%d]", path, i), "not a string")
		}
		out = append(out, s)
	}
	return out, nil
}

func violation(path, format string, args ...any) *ParseFailure {
	return &ParseFailure{
		Kind:    SchemaViolation,
		Field:   path,
		Message: fmt.Sprintf(format, args...),
	}
}
