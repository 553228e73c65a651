package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"launchpad/internal/domain/entity"
	"launchpad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sectionTables maps each planning section to its table.
var sectionTables = map[entity.SectionKind]string{
	entity.SectionIdea:          "startup_ideas",
	entity.SectionAudience:      "target_audiences",
	entity.SectionBusinessModel: "business_models",
	entity.SectionCompetition:   "competitors",
	entity.SectionRevenue:       "revenue_models",
	entity.SectionMVP:           "mvps",
}

// Migrate creates or updates every table and the per-startup unique indexes.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(
		&model.UserModel{},
		&model.StartupModel{},
		&model.TaskModel{},
		&model.ResourceModel{},
		&model.ForumPostModel{},
		&model.ForumCommentModel{},
		&model.NotificationModel{},
		&model.ArtifactModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate tables")
	}

	for _, kind := range entity.SectionKinds {
		table := sectionTables[kind]
		if err := tx.Table(table).AutoMigrate(&model.SectionModel{}); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", table)
		}

		stmt := fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_startup_id ON %s (startup_id)", table, table)
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to index %s", table)
		}
	}

	return nil
}

// SeedResources inserts the resource library when the table is empty.
func SeedResources(ctx context.Context, db *gorm.DB, resources []*entity.Resource) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.ResourceModel{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count resources")
	}
	if count > 0 {
		return nil
	}

	rows := make([]*model.ResourceModel, 0, len(resources))
	for _, r := range resources {
		m, err := fromResourceDomain(r)
		if err != nil {
			return err
		}
		rows = append(rows, m)
	}

	if err := db.WithContext(ctx).Create(rows).Error; err != nil {
		return errors.Wrap(err, "failed to seed resources")
	}
	return nil
}

func marshalJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode json column")
	}
	return b, nil
}

func unmarshalJSON(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "failed to decode json column")
	}
	return nil
}
