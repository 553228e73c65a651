package model

import (
	"time"

	"gorm.io/datatypes"
)

// StartupModel mirrors the 'startups' table.
type StartupModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"index;not null"`
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	Industry    string `gorm:"type:varchar(100);index"`
	Stage       string `gorm:"type:varchar(50)"`
	Progress    int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StartupModel) TableName() string {
	return "startups"
}

// SectionModel is the shape shared by the six planning section tables. The
// section body is stored as JSON so each wizard step can evolve independently.
// The table name is chosen per section with db.Table.
type SectionModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	StartupID int64          `gorm:"not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ArtifactModel mirrors the 'artifacts' table.
type ArtifactModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	StartupID int64          `gorm:"uniqueIndex:idx_artifacts_startup_kind;not null"`
	Kind      string         `gorm:"type:varchar(50);uniqueIndex:idx_artifacts_startup_kind;not null"`
	Title     string         `gorm:"type:varchar(200)"`
	Summary   string         `gorm:"type:text"`
	Items     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtifactModel) TableName() string {
	return "artifacts"
}
