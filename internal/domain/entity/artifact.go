package entity

import "time"

// ArtifactKind names an extended planning document. Artifacts do not count
// towards startup progress.
type ArtifactKind string

// Extended planning artifacts.
const (
	ArtifactPitchDeck      ArtifactKind = "pitch-deck"
	ArtifactMarketingPlan  ArtifactKind = "marketing-plan"
	ArtifactFinancialPlan  ArtifactKind = "financial-plan"
	ArtifactTeamPlan       ArtifactKind = "team-plan"
	ArtifactLegalChecklist ArtifactKind = "legal-checklist"
	ArtifactFundingPlan    ArtifactKind = "funding-plan"
)

// ArtifactKinds lists every supported artifact kind.
var ArtifactKinds = []ArtifactKind{
	ArtifactPitchDeck,
	ArtifactMarketingPlan,
	ArtifactFinancialPlan,
	ArtifactTeamPlan,
	ArtifactLegalChecklist,
	ArtifactFundingPlan,
}

// IsValid reports whether k is a supported artifact kind.
func (k ArtifactKind) IsValid() bool {
	for _, known := range ArtifactKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Artifact is a free-form planning document made of labelled items, at most
// one per startup and kind.
type Artifact struct {
	ID        int64          `json:"id"`
	StartupID int64          `json:"startupId"`
	Kind      ArtifactKind   `json:"kind"`
	Title     string         `json:"title" validate:"max=200"`
	Summary   string         `json:"summary" validate:"max=5000"`
	Items     []ArtifactItem `json:"items" validate:"max=100,dive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ArtifactItem is one entry of an artifact, e.g. a slide or a checklist line.
type ArtifactItem struct {
	Label  string `json:"label" validate:"required,max=200"`
	Detail string `json:"detail" validate:"max=5000"`
	Done   bool   `json:"done"`
}
