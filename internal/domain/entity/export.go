package entity

import "time"

// ExportBundle is the full plan of one startup as a single document.
type ExportBundle struct {
	Startup       *Startup        `json:"startup"`
	Idea          *StartupIdea    `json:"idea"`
	Audience      *TargetAudience `json:"audience"`
	BusinessModel *BusinessModel  `json:"businessModel"`
	Competition   *Competitor     `json:"competition"`
	Revenue       *RevenueModel   `json:"revenue"`
	Mvp           *Mvp            `json:"mvp"`
	Tasks         []*Task         `json:"tasks"`
	Artifacts     []*Artifact     `json:"artifacts"`
	GeneratedAt   time.Time       `json:"generatedAt"`
}

// ExportReceipt describes a bundle written to blob storage.
type ExportReceipt struct {
	Key       string    `json:"key"`
	Size      int64     `json:"size"`
	Checksum  string    `json:"checksum"` // Hex SHA-256 of the stored bytes.
	CreatedAt time.Time `json:"createdAt"`
}

// ProgressBreakdown shows which planning sections are filled in.
type ProgressBreakdown struct {
	StartupID int64                `json:"startupId"`
	Progress  int                  `json:"progress"` // Stored percentage.
	Completed int                  `json:"completed"`
	Total     int                  `json:"total"`
	Sections  map[SectionKind]bool `json:"sections"`
}
