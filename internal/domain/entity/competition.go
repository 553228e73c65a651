package entity

// Competitor is the competition section: known rivals and a SWOT analysis.
type Competitor struct {
	SectionMeta
	DirectCompetitors    []CompetitorProfile `json:"directCompetitors" validate:"max=30,dive"`
	IndirectCompetitors  []CompetitorProfile `json:"indirectCompetitors" validate:"max=30,dive"`
	Swot                 *Swot               `json:"swot"`
	CompetitiveAdvantage string              `json:"competitiveAdvantage" validate:"max=3000"`
	MarketPosition       string              `json:"marketPosition" validate:"max=1000"`
}

// CompetitorProfile describes one rival product or company.
type CompetitorProfile struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Website     string   `json:"website" validate:"omitempty,url,max=500"`
	Description string   `json:"description" validate:"max=2000"`
	Strengths   []string `json:"strengths" validate:"max=20,dive,max=300"`
	Weaknesses  []string `json:"weaknesses" validate:"max=20,dive,max=300"`
	Pricing     string   `json:"pricing" validate:"max=300"`
	MarketShare *float64 `json:"marketShare" validate:"omitempty,gte=0,lte=100"`
}

// Swot holds the four quadrants of a SWOT analysis.
type Swot struct {
	Strengths     []string `json:"strengths" validate:"max=20,dive,max=300"`
	Weaknesses    []string `json:"weaknesses" validate:"max=20,dive,max=300"`
	Opportunities []string `json:"opportunities" validate:"max=20,dive,max=300"`
	Threats       []string `json:"threats" validate:"max=20,dive,max=300"`
}

// Kind implements Section.
func (*Competitor) Kind() SectionKind { return SectionCompetition }

// ApplyDefaults implements Section.
func (s *Competitor) ApplyDefaults() {
	s.DirectCompetitors = []CompetitorProfile{}
	s.IndirectCompetitors = []CompetitorProfile{}
	s.Swot = &Swot{
		Strengths:     []string{},
		Weaknesses:    []string{},
		Opportunities: []string{},
		Threats:       []string{},
	}
}
