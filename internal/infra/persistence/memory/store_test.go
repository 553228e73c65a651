package memory

import (
	"context"
	"testing"
	"time"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/infra/persistence/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return t }
}

func TestStore_IDsArePerType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(nil)

	users := NewUserRepository(store)
	startups := NewStartupRepository(store)

	u := &entity.User{Username: "ada", Email: "ada@example.com"}
	require.NoError(t, users.Create(ctx, u))
	s1 := &entity.Startup{UserID: u.ID, Name: "one"}
	s2 := &entity.Startup{UserID: u.ID, Name: "two"}
	require.NoError(t, startups.Create(ctx, s1))
	require.NoError(t, startups.Create(ctx, s2))

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, int64(1), s1.ID)
	assert.Equal(t, int64(2), s2.ID)
}

func TestUserRepository_Conflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := NewUserRepository(NewStore(nil))

	require.NoError(t, users.Create(ctx, &entity.User{Username: "ada", Email: "ada@example.com"}))

	err := users.Create(ctx, &entity.User{Username: "other", Email: "ADA@example.com"})
	assert.ErrorIs(t, err, repository.ErrUserConflict)

	err = users.Create(ctx, &entity.User{Username: "ada", Email: "new@example.com"})
	assert.ErrorIs(t, err, repository.ErrUserConflict)

	found, err := users.FindByEmail(ctx, "Ada@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada", found.Username)
}

func TestSectionRepository_UpsertKeepsOneRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(nil, WithClock(fixedClock()))
	sections := NewSectionRepositories(store)

	_, err := sections.Ideas.FindByStartupID(ctx, 7)
	assert.ErrorIs(t, err, repository.ErrSectionNotFound)

	row, created, err := sections.Ideas.UpsertByStartupID(ctx, 7, func(idea *entity.StartupIdea) error {
		assert.NotNil(t, idea.KeyFeatures, "defaults applied before mutate")
		idea.ProblemStatement = "first"
		idea.ID = 99
		return nil
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), row.ID, "id is assigned by the store")
	assert.Equal(t, int64(7), row.StartupID)

	row, created, err = sections.Ideas.UpsertByStartupID(ctx, 7, func(idea *entity.StartupIdea) error {
		assert.Equal(t, "first", idea.ProblemStatement)
		idea.ProblemStatement = "second"
		idea.StartupID = 8
		return nil
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(1), row.ID)
	assert.Equal(t, int64(7), row.StartupID, "startup id is preserved")

	assert.Len(t, store.ideas.rows, 1)

	got, err := sections.Ideas.FindByStartupID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "second", got.ProblemStatement)
}

func TestSectionRepository_ReturnedRowsAreCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sections := NewSectionRepositories(NewStore(nil))

	row, _, err := sections.Competitors.UpsertByStartupID(ctx, 3, func(c *entity.Competitor) error {
		c.Swot.Strengths = []string{"team"}
		return nil
	})
	require.NoError(t, err)

	row.Swot.Strengths = append(row.Swot.Strengths, "mutated")
	row.Swot.Threats = append(row.Swot.Threats, "mutated")

	got, err := sections.Competitors.FindByStartupID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"team"}, got.Swot.Strengths)
	assert.Empty(t, got.Swot.Threats)

	got.Swot.Strengths[0] = "changed"
	again, err := sections.Competitors.FindByStartupID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"team"}, again.Swot.Strengths)
}

func TestSectionRepository_MutateErrorStoresNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(nil)
	sections := NewSectionRepositories(store)

	_, _, err := sections.Mvps.UpsertByStartupID(ctx, 1, func(*entity.Mvp) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, store.mvps.rows)
}

func TestStartupRepository_DeleteCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(nil)
	startups := NewStartupRepository(store)
	sections := NewSectionRepositories(store)
	tasks := NewTaskRepository(store)
	artifacts := NewArtifactRepository(store)

	keep := &entity.Startup{UserID: 1, Name: "keep"}
	drop := &entity.Startup{UserID: 1, Name: "drop"}
	require.NoError(t, startups.Create(ctx, keep))
	require.NoError(t, startups.Create(ctx, drop))

	noop := func(*entity.RevenueModel) error { return nil }
	_, _, err := sections.RevenueModels.UpsertByStartupID(ctx, keep.ID, noop)
	require.NoError(t, err)
	_, _, err = sections.RevenueModels.UpsertByStartupID(ctx, drop.ID, noop)
	require.NoError(t, err)
	require.NoError(t, tasks.Create(ctx, &entity.Task{StartupID: drop.ID, Title: "t"}))
	_, _, err = artifacts.UpsertByKind(ctx, drop.ID, entity.ArtifactTeamPlan, func(*entity.Artifact) error { return nil })
	require.NoError(t, err)

	removed, err := startups.Delete(ctx, drop.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = startups.Delete(ctx, drop.ID)
	require.NoError(t, err)
	assert.False(t, removed, "deleting a missing id is not an error")

	_, err = sections.RevenueModels.FindByStartupID(ctx, drop.ID)
	assert.ErrorIs(t, err, repository.ErrSectionNotFound)
	_, err = sections.RevenueModels.FindByStartupID(ctx, keep.ID)
	assert.NoError(t, err)

	left, err := tasks.FindByStartupID(ctx, drop.ID, repository.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, left)

	arts, err := artifacts.FindByStartupID(ctx, drop.ID)
	require.NoError(t, err)
	assert.Empty(t, arts)
}

func TestTaskRepository_StatusFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tasks := NewTaskRepository(NewStore(nil))

	require.NoError(t, tasks.Create(ctx, &entity.Task{StartupID: 1, Title: "a", Status: entity.TaskPending}))
	require.NoError(t, tasks.Create(ctx, &entity.Task{StartupID: 1, Title: "b", Status: entity.TaskCompleted}))
	require.NoError(t, tasks.Create(ctx, &entity.Task{StartupID: 2, Title: "c", Status: entity.TaskPending}))

	all, err := tasks.FindByStartupID(ctx, 1, repository.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	done, err := tasks.FindByStartupID(ctx, 1, repository.TaskFilter{Status: entity.TaskCompleted})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "b", done[0].Title)
}

func TestResourceRepository_Industry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	resources := NewResourceRepository(NewStore(seed.Resources()))

	all, err := resources.FindAll(ctx)
	require.NoError(t, err)

	health, err := resources.FindByIndustry(ctx, "Healthcare")
	require.NoError(t, err)

	generic := 0
	for _, r := range all {
		if r.Industry == nil {
			generic++
		}
	}
	assert.Len(t, health, generic+1)
	for _, r := range health {
		assert.True(t, r.Industry == nil || *r.Industry == "Healthcare")
	}

	_, err = resources.FindByID(ctx, 10_000)
	assert.ErrorIs(t, err, repository.ErrResourceNotFound)
}

func TestForumRepository_DeletePostRemovesComments(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(nil)
	forum := NewForumRepository(store)

	post := &entity.ForumPost{UserID: 1, Title: "hello", Content: "world"}
	require.NoError(t, forum.CreatePost(ctx, post))
	require.NoError(t, forum.CreateComment(ctx, &entity.ForumComment{PostID: post.ID, UserID: 2, Content: "hi"}))

	got, err := forum.FindPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentCount)

	removed, err := forum.DeletePost(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, store.comments.rows)

	err = forum.CreateComment(ctx, &entity.ForumComment{PostID: post.ID, UserID: 2, Content: "late"})
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	notifications := NewNotificationRepository(NewStore(nil))

	for range 3 {
		require.NoError(t, notifications.Create(ctx, &entity.Notification{UserID: 1, Title: "x"}))
	}
	require.NoError(t, notifications.Create(ctx, &entity.Notification{UserID: 2, Title: "y"}))

	n, err := notifications.MarkAllRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	count, err := notifications.CountUnread(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	unread, err := notifications.FindByUserID(ctx, 1, true)
	require.NoError(t, err)
	assert.Empty(t, unread)
}
