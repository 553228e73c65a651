package entity

// BusinessModel follows the nine blocks of the business model canvas.
type BusinessModel struct {
	SectionMeta
	ModelType             string   `json:"modelType" validate:"omitempty,oneof=subscription marketplace freemium transactional advertising licensing hardware services other"`
	KeyPartners           []string `json:"keyPartners" validate:"max=30,dive,max=300"`
	KeyActivities         []string `json:"keyActivities" validate:"max=30,dive,max=300"`
	KeyResources          []string `json:"keyResources" validate:"max=30,dive,max=300"`
	ValuePropositions     []string `json:"valuePropositions" validate:"max=30,dive,max=300"`
	CustomerRelationships []string `json:"customerRelationships" validate:"max=30,dive,max=300"`
	Channels              []string `json:"channels" validate:"max=30,dive,max=300"`
	CustomerSegments      []string `json:"customerSegments" validate:"max=30,dive,max=300"`
	CostStructure         []string `json:"costStructure" validate:"max=30,dive,max=300"`
	RevenueStreams        []string `json:"revenueStreams" validate:"max=30,dive,max=300"`
}

// Kind implements Section.
func (*BusinessModel) Kind() SectionKind { return SectionBusinessModel }

// ApplyDefaults implements Section.
func (s *BusinessModel) ApplyDefaults() {
	s.KeyPartners = []string{}
	s.KeyActivities = []string{}
	s.KeyResources = []string{}
	s.ValuePropositions = []string{}
	s.CustomerRelationships = []string{}
	s.Channels = []string{}
	s.CustomerSegments = []string{}
	s.CostStructure = []string{}
	s.RevenueStreams = []string{}
}
