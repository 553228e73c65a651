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

func TestArtifactService_SaveUpserts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "ada")
	startup := f.createStartup(t, owner.ID)

	_, err := f.artifacts.Get(ctx, owner.ID, startup.ID, entity.ArtifactTeamPlan)
	assert.True(t, errors.Is(err, domainerrors.ErrArtifactNotFound))

	row, created, err := f.artifacts.Save(ctx, owner.ID, startup.ID, entity.ArtifactTeamPlan, &usecase.ArtifactInput{
		Title: "Team",
		Items: []entity.ArtifactItem{{Label: "CTO", Detail: "hire"}},
	})
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := f.artifacts.Save(ctx, owner.ID, startup.ID, entity.ArtifactTeamPlan, &usecase.ArtifactInput{Summary: "Lean"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, row.ID, again.ID)
	assert.Equal(t, "Team", again.Title, "empty fields keep stored values")
	assert.Equal(t, "Lean", again.Summary)
	assert.Len(t, again.Items, 1)

	list, err := f.artifacts.List(ctx, owner.ID, startup.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.Equal(t, 0, f.progressOf(t, startup.ID), "artifacts do not count towards progress")
}

func TestArtifactService_InvalidKind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "ada")
	startup := f.createStartup(t, owner.ID)

	_, _, err := f.artifacts.Save(ctx, owner.ID, startup.ID, "swot", &usecase.ArtifactInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArtifactKind))

	_, err = f.artifacts.Get(ctx, owner.ID, startup.ID, "swot")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArtifactKind))
}

func TestArtifactService_Ownership(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, "ada")
	other := f.createUser(t, "bob")
	startup := f.createStartup(t, owner.ID)

	_, _, err := f.artifacts.Save(context.Background(), other.ID, startup.ID, entity.ArtifactPitchDeck, &usecase.ArtifactInput{Title: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrStartupForbidden))
}
