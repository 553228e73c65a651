package entity

import "time"

// Mvp is the scope and schedule of the minimum viable product.
type Mvp struct {
	SectionMeta
	Features       []MvpFeature `json:"features" validate:"max=50,dive"`
	Timeline       string       `json:"timeline" validate:"max=500"`
	Milestones     []Milestone  `json:"milestones" validate:"max=30,dive"`
	SuccessMetrics []string     `json:"successMetrics" validate:"max=20,dive,max=300"`
	TechStack      []string     `json:"techStack" validate:"max=30,dive,max=100"`
	Budget         *float64     `json:"budget" validate:"omitempty,gte=0"`
	LaunchDate     *time.Time   `json:"launchDate"`
}

// MvpFeature is one candidate feature, prioritised with MoSCoW.
type MvpFeature struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=must should could wont"`
	Done        bool   `json:"done"`
}

// Milestone is a dated checkpoint on the way to launch.
type Milestone struct {
	Title     string     `json:"title" validate:"required,max=200"`
	DueDate   *time.Time `json:"dueDate"`
	Completed bool       `json:"completed"`
}

// Kind implements Section.
func (*Mvp) Kind() SectionKind { return SectionMVP }

// ApplyDefaults implements Section.
func (s *Mvp) ApplyDefaults() {
	s.Features = []MvpFeature{}
	s.Milestones = []Milestone{}
	s.SuccessMetrics = []string{}
	s.TechStack = []string{}
}
