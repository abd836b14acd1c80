package pathgen

// Difficulty is the overall difficulty rating of a curriculum or resource.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ResourceType classifies a learning resource.
type ResourceType string

const (
	ResourceCourse   ResourceType = "course"
	ResourceBook     ResourceType = "book"
	ResourceTutorial ResourceType = "tutorial"
	ResourceProject  ResourceType = "project"
	ResourceVideo    ResourceType = "video"
)

func (t ResourceType) Valid() bool {
	switch t {
	case ResourceCourse, ResourceBook, ResourceTutorial, ResourceProject, ResourceVideo:
		return true
	}
	return false
}

// Cost is the price category of a resource. CostUnspecified is the
// sentinel assigned when the model omits the field.
type Cost string

const (
	CostFree        Cost = "free"
	CostPaid        Cost = "paid"
	CostUnspecified Cost = "unspecified"
)

func (c Cost) Valid() bool {
	switch c {
	case CostFree, CostPaid, CostUnspecified:
		return true
	}
	return false
}

// Resource is one recommended learning resource inside a module.
type Resource struct {
	Title         string       `json:"title"`
	Type          ResourceType `json:"type"`
	Provider      string       `json:"provider,omitempty"`
	URL           string       `json:"url,omitempty"`
	Difficulty    Difficulty   `json:"difficulty,omitempty"`
	EstimatedTime string       `json:"estimatedTime,omitempty"`
	Cost          Cost         `json:"cost"`
	Description   string       `json:"description,omitempty"`
}

// Module is one unit of study in a curriculum.
type Module struct {
	Title              string     `json:"title"`
	Duration           string     `json:"duration,omitempty"`
	Description        string     `json:"description,omitempty"`
	Skills             []string   `json:"skills"`
	LearningObjectives []string   `json:"learningObjectives,omitempty"`
	Resources          []Resource `json:"resources,omitempty"`
}

// Milestone is a checkpoint in the learning path timeline.
type Milestone struct {
	Week       int      `json:"week"`
	Goal       string   `json:"goal"`
	Skills     []string `json:"skills,omitempty"`
	Assessment string   `json:"assessment,omitempty"`
}

// Curriculum is a complete generated learning path.
type Curriculum struct {
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	EstimatedDuration    string      `json:"estimatedDuration"`
	Difficulty           Difficulty  `json:"difficulty"`
	TotalHours           float64     `json:"totalHours"`
	Modules              []Module    `json:"modules"`
	Milestones           []Milestone `json:"milestones,omitempty"`
	CareerOutcomes       []string    `json:"careerOutcomes,omitempty"`
	EstimatedSalaryRange string      `json:"estimatedSalaryRange,omitempty"`

	warnings []string
}

// Warnings returns non-fatal issues found while parsing, such as modules
// that list no resources.
func (c *Curriculum) Warnings() []string {
	return c.warnings
}
