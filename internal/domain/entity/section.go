package entity

import "time"

// SectionKind names one of the six planning sections of the wizard.
type SectionKind string

// Planning sections in wizard order.
const (
	SectionIdea          SectionKind = "idea"
	SectionAudience      SectionKind = "audience"
	SectionBusinessModel SectionKind = "business-model"
	SectionCompetition   SectionKind = "competition"
	SectionRevenue       SectionKind = "revenue"
	SectionMVP           SectionKind = "mvp"
)

// SectionKinds lists every planning section counted towards progress.
var SectionKinds = []SectionKind{
	SectionIdea,
	SectionAudience,
	SectionBusinessModel,
	SectionCompetition,
	SectionRevenue,
	SectionMVP,
}

var sectionLabels = map[SectionKind]string{
	SectionIdea:          "Idea",
	SectionAudience:      "Target audience",
	SectionBusinessModel: "Business model",
	SectionCompetition:   "Competition",
	SectionRevenue:       "Revenue model",
	SectionMVP:           "MVP",
}

// Label returns the human readable name used in messages.
func (k SectionKind) Label() string {
	if l, ok := sectionLabels[k]; ok {
		return l
	}
	return string(k)
}

// IsValid reports whether k is one of the six planning sections.
func (k SectionKind) IsValid() bool {
	_, ok := sectionLabels[k]
	return ok
}

// SectionMeta is the bookkeeping shared by every planning section row.
type SectionMeta struct {
	ID        int64     `json:"id"`
	StartupID int64     `json:"startupId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta gives generic code access to the bookkeeping fields.
func (m *SectionMeta) Meta() *SectionMeta { return m }

// Section is implemented by pointers to the six planning section structs.
type Section interface {
	Meta() *SectionMeta
	Kind() SectionKind
	// ApplyDefaults fills the values a freshly created section starts from.
	ApplyDefaults()
}

// SectionPtr constrains generic code to *T where *T is a planning section.
type SectionPtr[T any] interface {
	*T
	Section
}
