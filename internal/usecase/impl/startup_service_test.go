package impl

import (
	"context"
	"testing"

	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupService_CreateDefaultsStage(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, "ada")

	startup, err := f.startups.Create(context.Background(), owner.ID, &usecase.CreateStartupInput{Name: " Beta ", Industry: "Health"})
	require.NoError(t, err)
	assert.Equal(t, "Beta", startup.Name)
	assert.Equal(t, entity.StageIdea, startup.Stage)
	assert.Zero(t, startup.Progress)
}

func TestStartupService_ListOnlyOwn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.createUser(t, "ada")
	bob := f.createUser(t, "bob")
	f.createStartup(t, ada.ID)
	f.createStartup(t, ada.ID)
	f.createStartup(t, bob.ID)

	list, err := f.startups.List(ctx, ada.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestStartupService_UpdateAndForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.createUser(t, "ada")
	bob := f.createUser(t, "bob")
	startup := f.createStartup(t, ada.ID)

	stage := entity.StageMVP
	updated, err := f.startups.Update(ctx, ada.ID, startup.ID, entity.StartupUpdate{Stage: &stage})
	require.NoError(t, err)
	assert.Equal(t, entity.StageMVP, updated.Stage)
	assert.Equal(t, "Acme", updated.Name)

	_, err = f.startups.Update(ctx, bob.ID, startup.ID, entity.StartupUpdate{Stage: &stage})
	assert.True(t, errors.Is(err, domainerrors.ErrStartupForbidden))

	_, err = f.startups.Get(ctx, ada.ID, 999)
	assert.True(t, errors.Is(err, domainerrors.ErrStartupNotFound))
}

func TestStartupService_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "ada")
	startup := f.createStartup(t, owner.ID)

	_, _, err := f.planning.Idea.Save(ctx, owner.ID, startup.ID, &entity.StartupIdea{Title: "Idea"})
	require.NoError(t, err)
	task, err := f.tasks.Create(ctx, owner.ID, startup.ID, &usecase.CreateTaskInput{Title: "T"})
	require.NoError(t, err)

	require.NoError(t, f.startups.Delete(ctx, owner.ID, startup.ID))

	_, err = f.repos.Sections.Ideas.FindByStartupID(ctx, startup.ID)
	assert.Error(t, err)
	_, err = f.repos.Tasks.FindByID(ctx, task.ID)
	assert.Error(t, err)

	err = f.startups.Delete(ctx, owner.ID, startup.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrStartupNotFound))
}

func TestStartupService_ProgressBreakdown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "ada")
	startup := f.createStartup(t, owner.ID)

	_, _, err := f.planning.Revenue.Save(ctx, owner.ID, startup.ID, &entity.RevenueModel{})
	require.NoError(t, err)
	_, _, err = f.planning.Mvp.Save(ctx, owner.ID, startup.ID, &entity.Mvp{})
	require.NoError(t, err)

	breakdown, err := f.startups.Progress(ctx, owner.ID, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, breakdown.Progress)
	assert.Equal(t, 2, breakdown.Completed)
	assert.Equal(t, 6, breakdown.Total)
	assert.True(t, breakdown.Sections[entity.SectionRevenue])
	assert.True(t, breakdown.Sections[entity.SectionMVP])
	assert.False(t, breakdown.Sections[entity.SectionIdea])
}
