package entity

import "time"

// Startup is the root of one founder's plan. Planning sections, tasks and
// artifacts hang off it by StartupID.
type Startup struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`      // Owner; only this user may read or change the plan.
	Name        string    `json:"name"`        // Working name of the venture.
	Description string    `json:"description"` // One-paragraph pitch.
	Industry    string    `json:"industry"`    // Free-form industry label, used to match resources.
	Stage       string    `json:"stage"`       // Idea, Validation, MVP, Launch, Growth or Scale.
	Progress    int       `json:"progress"`    // Percentage of planning sections completed, 0..100.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Startup stages accepted by the API.
const (
	StageIdea       = "Idea"
	StageValidation = "Validation"
	StageMVP        = "MVP"
	StageLaunch     = "Launch"
	StageGrowth     = "Growth"
	StageScale      = "Scale"
)

// StartupUpdate carries a partial update of a startup. Nil fields are left untouched.
type StartupUpdate struct {
	Name        *string
	Description *string
	Industry    *string
	Stage       *string
}

// Apply copies every non-nil field onto s.
func (u StartupUpdate) Apply(s *Startup) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Description != nil {
		s.Description = *u.Description
	}
	if u.Industry != nil {
		s.Industry = *u.Industry
	}
	if u.Stage != nil {
		s.Stage = *u.Stage
	}
}
