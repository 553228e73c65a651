package entity

// IdeaAnalysisRequest is the input of an idea review.
type IdeaAnalysisRequest struct {
	ProblemStatement string
	Solution         string
	TargetMarket     string
	Industry         string
}

// IdeaAnalysis is the assistant's verdict on an idea.
type IdeaAnalysis struct {
	Score           int      `json:"score"` // 1..10
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Suggestions     []string `json:"suggestions"`
	MarketPotential string   `json:"marketPotential"`
}

// BusinessModelRequest is the input of a business model suggestion.
type BusinessModelRequest struct {
	StartupName    string
	Industry       string
	Description    string
	TargetAudience string
}

// BusinessModelSuggestion is a suggested canvas.
type BusinessModelSuggestion struct {
	ModelType         string   `json:"modelType"`
	ValuePropositions []string `json:"valuePropositions"`
	CustomerSegments  []string `json:"customerSegments"`
	Channels          []string `json:"channels"`
	RevenueStreams    []string `json:"revenueStreams"`
	KeyActivities     []string `json:"keyActivities"`
	CostStructure     []string `json:"costStructure"`
	Rationale         string   `json:"rationale"`
}

// PitchDeckRequest is the plan summary a pitch deck is drafted from.
type PitchDeckRequest struct {
	Startup       *Startup
	Idea          *StartupIdea
	Audience      *TargetAudience
	BusinessModel *BusinessModel
	Competition   *Competitor
	Revenue       *RevenueModel
	Mvp           *Mvp
}

// PitchDeck is a drafted slide outline.
type PitchDeck struct {
	Title  string       `json:"title"`
	Slides []PitchSlide `json:"slides"`
}

// PitchSlide is one slide of a pitch deck.
type PitchSlide struct {
	Heading string   `json:"heading"`
	Bullets []string `json:"bullets"`
	Notes   string   `json:"notes"`
}
