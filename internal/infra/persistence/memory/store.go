// Package memory provides the in-process implementation of the repositories.
// Nothing survives a restart; it is the default backend and the fake used by
// use-case tests.
package memory

import (
	"slices"
	"sync"
	"time"

	"launchpad/internal/domain/entity"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// table is a map of rows with its own id sequence. Rows are stored and
// returned as deep copies.
type table[T any] struct {
	next int64
	rows map[int64]*T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]*T)}
}

func (t *table[T]) nextID() int64 {
	t.next++
	return t.next
}

func (t *table[T]) get(id int64) (*T, bool) {
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return clone(row), true
}

func (t *table[T]) put(id int64, row *T) {
	t.rows[id] = clone(row)
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// removeWhere deletes every row matching keep and returns how many went.
func (t *table[T]) removeWhere(match func(*T) bool) int {
	n := 0
	for id, row := range t.rows {
		if match(row) {
			delete(t.rows, id)
			n++
		}
	}
	return n
}

// filter returns copies of the matching rows in id order. A nil match keeps every row.
func (t *table[T]) filter(match func(*T) bool) []*T {
	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if match == nil || match(row) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		out = append(out, clone(t.rows[id]))
	}
	return out
}

// clone copies row including its slices, maps and nested documents.
func clone[T any](row *T) *T {
	c := new(T)
	if err := copier.CopyWithOption(c, row, copier.Option{DeepCopy: true}); err != nil {
		panic(errors.Wrap(err, "memory: failed to copy row"))
	}
	return c
}

// first returns a copy of the lowest-id row matching match.
func (t *table[T]) first(match func(*T) bool) (*T, bool) {
	rows := t.filter(match)
	if len(rows) == 0 {
		return nil, false
	}
	return rows[0], true
}

// Store holds every table behind one lock, so cascades are atomic.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users          *table[entity.User]
	startups       *table[entity.Startup]
	ideas          *table[entity.StartupIdea]
	audiences      *table[entity.TargetAudience]
	businessModels *table[entity.BusinessModel]
	competitors    *table[entity.Competitor]
	revenueModels  *table[entity.RevenueModel]
	mvps           *table[entity.Mvp]
	tasks          *table[entity.Task]
	resources      *table[entity.Resource]
	posts          *table[entity.ForumPost]
	comments       *table[entity.ForumComment]
	notifications  *table[entity.Notification]
	artifacts      *table[entity.Artifact]
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store seeded with the given resources.
func NewStore(resources []*entity.Resource, opts ...Option) *Store {
	s := &Store{
		now:            func() time.Time { return time.Now().UTC() },
		users:          newTable[entity.User](),
		startups:       newTable[entity.Startup](),
		ideas:          newTable[entity.StartupIdea](),
		audiences:      newTable[entity.TargetAudience](),
		businessModels: newTable[entity.BusinessModel](),
		competitors:    newTable[entity.Competitor](),
		revenueModels:  newTable[entity.RevenueModel](),
		mvps:           newTable[entity.Mvp](),
		tasks:          newTable[entity.Task](),
		resources:      newTable[entity.Resource](),
		posts:          newTable[entity.ForumPost](),
		comments:       newTable[entity.ForumComment](),
		notifications:  newTable[entity.Notification](),
		artifacts:      newTable[entity.Artifact](),
	}
	for _, opt := range opts {
		opt(s)
	}

	now := s.now()
	for _, r := range resources {
		row := *r
		row.ID = s.resources.nextID()
		if row.CreatedAt.IsZero() {
			row.CreatedAt = now
		}
		s.resources.put(row.ID, &row)
	}

	return s
}

// deleteStartupChildren removes everything hanging off a startup. Callers hold mu.
func (s *Store) deleteStartupChildren(startupID int64) {
	s.ideas.removeWhere(func(r *entity.StartupIdea) bool { return r.StartupID == startupID })
	s.audiences.removeWhere(func(r *entity.TargetAudience) bool { return r.StartupID == startupID })
	s.businessModels.removeWhere(func(r *entity.BusinessModel) bool { return r.StartupID == startupID })
	s.competitors.removeWhere(func(r *entity.Competitor) bool { return r.StartupID == startupID })
	s.revenueModels.removeWhere(func(r *entity.RevenueModel) bool { return r.StartupID == startupID })
	s.mvps.removeWhere(func(r *entity.Mvp) bool { return r.StartupID == startupID })
	s.tasks.removeWhere(func(r *entity.Task) bool { return r.StartupID == startupID })
	s.artifacts.removeWhere(func(r *entity.Artifact) bool { return r.StartupID == startupID })
}
