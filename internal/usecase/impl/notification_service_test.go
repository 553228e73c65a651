package impl

import (
	"context"
	"testing"

	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ReadFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.createUser(t, "ada")
	bob := f.createUser(t, "bob")

	for _, title := range []string{"one", "two"} {
		require.NoError(t, f.repos.Notifications.Create(ctx, &entity.Notification{
			UserID: ada.ID,
			Type:   entity.NotificationSystem,
			Title:  title,
		}))
	}

	unread, err := f.notifications.CountUnread(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	list, err := f.notifications.List(ctx, ada.ID, false)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "two", list[0].Title, "newest first")

	_, err = f.notifications.MarkRead(ctx, bob.ID, list[0].ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	read, err := f.notifications.MarkRead(ctx, ada.ID, list[0].ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	changed, err := f.notifications.MarkAllRead(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	unreadOnly, err := f.notifications.List(ctx, ada.ID, true)
	require.NoError(t, err)
	assert.Empty(t, unreadOnly)

	_, err = f.notifications.MarkRead(ctx, ada.ID, 999)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}
