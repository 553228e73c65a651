package entity

// DefaultCurrency is used when a revenue model does not name one.
const DefaultCurrency = "USD"

// RevenueModel is how the startup makes money and when it breaks even.
type RevenueModel struct {
	SectionMeta
	Currency        string              `json:"currency" validate:"omitempty,len=3,alpha"`
	Streams         []RevenueStream     `json:"streams" validate:"max=20,dive"`
	PricingStrategy string              `json:"pricingStrategy" validate:"max=3000"`
	Projections     []RevenueProjection `json:"projections" validate:"max=10,dive"`
	BreakEvenMonths *int                `json:"breakEvenMonths" validate:"omitempty,gte=0,lte=600"`
}

// RevenueStream is a single source of income.
type RevenueStream struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Type      string  `json:"type" validate:"omitempty,oneof=subscription one-time usage commission advertising licensing other"`
	Price     float64 `json:"price" validate:"gte=0"`
	Frequency string  `json:"frequency" validate:"omitempty,oneof=monthly yearly one-time per-use"`
}

// RevenueProjection is the forecast for one year of operation.
type RevenueProjection struct {
	Year    int     `json:"year" validate:"required,gte=1,lte=10"`
	Revenue float64 `json:"revenue" validate:"gte=0"`
	Costs   float64 `json:"costs" validate:"gte=0"`
}

// Kind implements Section.
func (*RevenueModel) Kind() SectionKind { return SectionRevenue }

// ApplyDefaults implements Section.
func (s *RevenueModel) ApplyDefaults() {
	s.Currency = DefaultCurrency
	s.Streams = []RevenueStream{}
	s.Projections = []RevenueProjection{}
}
