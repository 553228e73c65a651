package entity

// TargetAudience describes who the startup is for.
type TargetAudience struct {
	SectionMeta
	Segment        string          `json:"segment" validate:"max=300"`
	Demographics   *Demographics   `json:"demographics"`
	Psychographics *Psychographics `json:"psychographics"`
	PainPoints     []string        `json:"painPoints" validate:"max=30,dive,max=500"`
	Personas       []Persona       `json:"personas" validate:"max=10,dive"`
	MarketSize     *MarketSize     `json:"marketSize"`
}

// Demographics captures measurable traits of the audience.
type Demographics struct {
	AgeRange    string   `json:"ageRange" validate:"max=50"`
	Gender      string   `json:"gender" validate:"max=50"`
	Locations   []string `json:"locations" validate:"max=30,dive,max=200"`
	IncomeLevel string   `json:"incomeLevel" validate:"max=100"`
	Education   string   `json:"education" validate:"max=100"`
	Occupation  string   `json:"occupation" validate:"max=200"`
}

// Psychographics captures attitudes and habits of the audience.
type Psychographics struct {
	Interests []string `json:"interests" validate:"max=30,dive,max=200"`
	Values    []string `json:"values" validate:"max=30,dive,max=200"`
	Lifestyle string   `json:"lifestyle" validate:"max=1000"`
	Behaviors []string `json:"behaviors" validate:"max=30,dive,max=200"`
}

// Persona is a fictional representative customer.
type Persona struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Age          int      `json:"age" validate:"gte=0,lte=120"`
	Occupation   string   `json:"occupation" validate:"max=200"`
	Goals        []string `json:"goals" validate:"max=20,dive,max=300"`
	Frustrations []string `json:"frustrations" validate:"max=20,dive,max=300"`
	Bio          string   `json:"bio" validate:"max=2000"`
}

// MarketSize holds the TAM/SAM/SOM estimates in the plan currency.
type MarketSize struct {
	TAM float64 `json:"tam" validate:"gte=0"`
	SAM float64 `json:"sam" validate:"gte=0"`
	SOM float64 `json:"som" validate:"gte=0"`
}

// Kind implements Section.
func (*TargetAudience) Kind() SectionKind { return SectionAudience }

// ApplyDefaults implements Section.
func (s *TargetAudience) ApplyDefaults() {
	s.PainPoints = []string{}
	s.Personas = []Persona{}
}
