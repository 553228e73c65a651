package entity

// StartupIdea is the first wizard step: the problem and the proposed solution.
type StartupIdea struct {
	SectionMeta
	Title                  string   `json:"title" validate:"max=200"`
	ProblemStatement       string   `json:"problemStatement" validate:"max=5000"`
	Solution               string   `json:"solution" validate:"max=5000"`
	UniqueValueProposition string   `json:"uniqueValueProposition" validate:"max=2000"`
	KeyFeatures            []string `json:"keyFeatures" validate:"max=30,dive,max=300"`
	Inspiration            string   `json:"inspiration" validate:"max=2000"`
	Notes                  string   `json:"notes" validate:"max=5000"`
}

// Kind implements Section.
func (*StartupIdea) Kind() SectionKind { return SectionIdea }

// ApplyDefaults implements Section.
func (s *StartupIdea) ApplyDefaults() {
	s.KeyFeatures = []string{}
}
