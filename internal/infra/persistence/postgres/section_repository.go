package postgres

import (
	"context"
	"time"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sectionRepository[T any, PT entity.SectionPtr[T]] struct {
	db    *gorm.DB
	table string
}

func newSectionRepository[T any, PT entity.SectionPtr[T]](db *gorm.DB, kind entity.SectionKind) repository.SectionRepository[T] {
	return &sectionRepository[T, PT]{db: db, table: sectionTables[kind]}
}

// NewSectionRepositories creates the six GORM-backed planning section repositories.
func NewSectionRepositories(db *gorm.DB) repository.SectionRepositories {
	return repository.SectionRepositories{
		Ideas:          newSectionRepository[entity.StartupIdea](db, entity.SectionIdea),
		Audiences:      newSectionRepository[entity.TargetAudience](db, entity.SectionAudience),
		BusinessModels: newSectionRepository[entity.BusinessModel](db, entity.SectionBusinessModel),
		Competitors:    newSectionRepository[entity.Competitor](db, entity.SectionCompetition),
		RevenueModels:  newSectionRepository[entity.RevenueModel](db, entity.SectionRevenue),
		Mvps:           newSectionRepository[entity.Mvp](db, entity.SectionMVP),
	}
}

// decode rebuilds the section from its JSON body; the columns win over the payload.
func (repo *sectionRepository[T, PT]) decode(m *model.SectionModel) (*T, error) {
	row := new(T)
	PT(row).ApplyDefaults()
	if err := unmarshalJSON(m.Payload, row); err != nil {
		return nil, err
	}

	*PT(row).Meta() = entity.SectionMeta{
		ID:        m.ID,
		StartupID: m.StartupID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	return row, nil
}

func (repo *sectionRepository[T, PT]) FindByStartupID(ctx context.Context, startupID int64) (*T, error) {
	var m model.SectionModel
	if err := repo.db.WithContext(ctx).Table(repo.table).Where("startup_id = ?", startupID).First(&m).Error; err != nil {
		return nil, notFoundOr(err, repository.ErrSectionNotFound, "failed to find "+repo.table)
	}

	return repo.decode(&m)
}

func (repo *sectionRepository[T, PT]) UpsertByStartupID(ctx context.Context, startupID int64, mutate func(*T) error) (*T, bool, error) {
	var (
		out     *T
		created bool
	)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.SectionModel
		err := tx.Table(repo.table).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("startup_id = ?", startupID).
			First(&m).Error

		var row *T
		switch {
		case err == nil:
			if row, err = repo.decode(&m); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			row = new(T)
			PT(row).ApplyDefaults()
		default:
			return errors.Wrap(err, "failed to load "+repo.table)
		}

		meta := *PT(row).Meta()
		if err := mutate(row); err != nil {
			return err
		}
		*PT(row).Meta() = meta

		payload, err := marshalJSON(row)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if created {
			m = model.SectionModel{
				StartupID: startupID,
				Payload:   datatypes.JSON(payload),
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Table(repo.table).Create(&m).Error; err != nil {
				if isUniqueConstraintViolation(err) {
					return errors.Wrap(err, "concurrent create of "+repo.table)
				}
				return errors.Wrap(err, "failed to create "+repo.table)
			}
		} else {
			if err := tx.Table(repo.table).Where("id = ?", m.ID).
				Updates(map[string]any{"payload": datatypes.JSON(payload), "updated_at": now}).Error; err != nil {
				return errors.Wrap(err, "failed to update "+repo.table)
			}
			m.Payload = datatypes.JSON(payload)
			m.UpdatedAt = now
		}

		out, err = repo.decode(&m)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return out, created, nil
}
