package entity

import "time"

// Resource is a curated learning link shown to every founder.
type Resource struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`     // article, video, template, tool or course.
	Industry    *string   `json:"industry"` // Nil means the resource applies to every industry.
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MatchesIndustry reports whether r should be listed for the given industry.
func (r *Resource) MatchesIndustry(industry string) bool {
	return r.Industry == nil || *r.Industry == industry
}
