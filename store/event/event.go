package event

import (
	"context"
	"redbank/core"

	"github.com/fox-one/pkg/store/db"
)

// Store event outbox with transactional writes
type Store interface {
	core.IEventStore
	Create(ctx context.Context, tx *db.DB, event *core.Event) error
}

type eventStore struct {
	db *db.DB
}

// New new event store
func New(db *db.DB) Store {
	return &eventStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Event{})

		if err := tx.AutoMigrate(core.Event{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *eventStore) Create(ctx context.Context, tx *db.DB, event *core.Event) error {
	return tx.Update().Where("trace_id=?", event.TraceID).FirstOrCreate(event).Error
}

func (s *eventStore) ListPending(ctx context.Context, limit int) ([]*core.Event, error) {
	if limit <= 0 {
		limit = 500
	}

	var events []*core.Event
	if err := s.db.View().Where("notified=?", false).Order("id ASC").Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (s *eventStore) ListByUser(ctx context.Context, userID string, fromID uint64, limit int) ([]*core.Event, error) {
	if limit <= 0 {
		limit = 500
	}

	var events []*core.Event
	if err := s.db.View().Where("user_id=? AND id>?", userID, fromID).Order("id ASC").Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (s *eventStore) MarkNotified(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}

	return s.db.Update().Model(core.Event{}).Where("id IN (?)", ids).Update("notified", true).Error
}
