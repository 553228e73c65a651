package repository

import (
	"context"
	"errors"

	"launchpad/internal/domain/entity"
)

// ErrSectionNotFound is returned when a startup has no row for a planning section.
var ErrSectionNotFound = errors.New("section not found")

// SectionRepository persists one planning section type. Each startup has at most one row.
type SectionRepository[T any] interface {
	// FindByStartupID returns the startup's row or ErrSectionNotFound.
	FindByStartupID(ctx context.Context, startupID int64) (*T, error)

	// UpsertByStartupID loads the startup's row, or a defaulted new one, hands it to
	// mutate and stores the result atomically. created reports whether a row was inserted.
	UpsertByStartupID(ctx context.Context, startupID int64, mutate func(*T) error) (row *T, created bool, err error)
}

// SectionRepositories groups the six planning section stores.
type SectionRepositories struct {
	Ideas          SectionRepository[entity.StartupIdea]
	Audiences      SectionRepository[entity.TargetAudience]
	BusinessModels SectionRepository[entity.BusinessModel]
	Competitors    SectionRepository[entity.Competitor]
	RevenueModels  SectionRepository[entity.RevenueModel]
	Mvps           SectionRepository[entity.Mvp]
}
