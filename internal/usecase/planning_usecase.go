package usecase

import (
	"context"

	"launchpad/internal/domain/entity"
)

// SectionUsecase reads and saves one planning section of an owned startup.
type SectionUsecase[T any] interface {
	// Get returns the section or ErrSectionNotFound when it was never saved.
	Get(ctx context.Context, userID, startupID int64) (*T, error)
	// Save merges the non-empty fields of input onto the stored section, or onto
	// a defaulted one when none exists. created reports the latter.
	Save(ctx context.Context, userID, startupID int64, input *T) (row *T, created bool, err error)
}

// PlanningUsecases groups the six wizard sections.
type PlanningUsecases struct {
	Idea          SectionUsecase[entity.StartupIdea]
	Audience      SectionUsecase[entity.TargetAudience]
	BusinessModel SectionUsecase[entity.BusinessModel]
	Competition   SectionUsecase[entity.Competitor]
	Revenue       SectionUsecase[entity.RevenueModel]
	Mvp           SectionUsecase[entity.Mvp]
}
