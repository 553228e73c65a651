package impl

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"

	"github.com/pkg/errors"
)

// planSnapshot holds whichever planning sections a startup has saved.
type planSnapshot struct {
	Idea          *entity.StartupIdea
	Audience      *entity.TargetAudience
	BusinessModel *entity.BusinessModel
	Competition   *entity.Competitor
	Revenue       *entity.RevenueModel
	Mvp           *entity.Mvp
}

// present reports per section whether a row exists.
func (p *planSnapshot) present() map[entity.SectionKind]bool {
	return map[entity.SectionKind]bool{
		entity.SectionIdea:          p.Idea != nil,
		entity.SectionAudience:      p.Audience != nil,
		entity.SectionBusinessModel: p.BusinessModel != nil,
		entity.SectionCompetition:   p.Competition != nil,
		entity.SectionRevenue:       p.Revenue != nil,
		entity.SectionMVP:           p.Mvp != nil,
	}
}

func (p *planSnapshot) completed() int {
	n := 0
	for _, ok := range p.present() {
		if ok {
			n++
		}
	}

	return n
}

func loadPlan(ctx context.Context, sections repository.SectionRepositories, startupID int64) (*planSnapshot, error) {
	var (
		plan planSnapshot
		err  error
	)

	if plan.Idea, err = findSection(ctx, sections.Ideas, startupID); err != nil {
		return nil, err
	}
	if plan.Audience, err = findSection(ctx, sections.Audiences, startupID); err != nil {
		return nil, err
	}
	if plan.BusinessModel, err = findSection(ctx, sections.BusinessModels, startupID); err != nil {
		return nil, err
	}
	if plan.Competition, err = findSection(ctx, sections.Competitors, startupID); err != nil {
		return nil, err
	}
	if plan.Revenue, err = findSection(ctx, sections.RevenueModels, startupID); err != nil {
		return nil, err
	}
	if plan.Mvp, err = findSection(ctx, sections.Mvps, startupID); err != nil {
		return nil, err
	}

	return &plan, nil
}

// findSection returns nil without error when the section was never saved.
func findSection[T any](ctx context.Context, repo repository.SectionRepository[T], startupID int64) (*T, error) {
	row, err := repo.FindByStartupID(ctx, startupID)
	if errors.Is(err, repository.ErrSectionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load planning section")
	}

	return row, nil
}
