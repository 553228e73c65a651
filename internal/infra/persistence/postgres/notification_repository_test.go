package postgres

import (
	"context"
	"strings"
	"testing"

	"launchpad/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB returns a session that builds SQL without a server and records
// every statement it would have run.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost user=launchpad dbname=launchpad sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	statements := new([]string)
	record := func(tx *gorm.DB) {
		*statements = append(*statements, tx.Statement.SQL.String())
	}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:record_create", record))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", record))

	return db, statements
}

func TestNotificationRepository_BuildsStatements(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	relatedType := entity.RelatedForumPost
	n := &entity.Notification{UserID: 4, Type: entity.NotificationComment, Title: "New comment", RelatedType: &relatedType}
	require.NoError(t, repo.Create(ctx, n))
	assert.Equal(t, int64(4), n.UserID)
	assert.Equal(t, "New comment", n.Title)

	_, err := repo.FindByUserID(ctx, 4, true)
	require.NoError(t, err)

	_, err = repo.CountUnread(ctx, 4)
	require.NoError(t, err)

	require.Len(t, *statements, 3)
	assert.True(t, strings.HasPrefix((*statements)[0], `INSERT INTO "notifications"`), (*statements)[0])
	assert.Contains(t, (*statements)[1], `user_id = $1 AND read = $2`)
	assert.Contains(t, (*statements)[1], `ORDER BY id DESC`)
	assert.Contains(t, (*statements)[2], `SELECT count(*) FROM "notifications"`)
}
