package service

import (
	"context"
	"time"

	"github.com/edirooss/livectl/internal/domain/draft"
	"github.com/edirooss/livectl/internal/infrastructure/objectstore"
	"github.com/edirooss/livectl/internal/redis"
	"go.uber.org/zap"
)

// MemoryDraftStore is a process-local DraftStore for running without Redis.
// Drafts are lost on restart.
type MemoryDraftStore struct {
	store *objectstore.ObjectStore[draft.Draft]
}

func NewMemoryDraftStore(log *zap.Logger) *MemoryDraftStore {
	return &MemoryDraftStore{store: objectstore.New[draft.Draft](log.Named("draft_memstore"))}
}

func (m *MemoryDraftStore) Put(_ context.Context, d *draft.Draft, ttl time.Duration) error {
	m.store.Upsert(d.ID, *d, ttl)
	return nil
}

func (m *MemoryDraftStore) Get(_ context.Context, id string) (*draft.Draft, error) {
	d, ok := m.store.GetOne(id)
	if !ok {
		return nil, redis.ErrDraftNotFound
	}
	return &d, nil
}

func (m *MemoryDraftStore) GetAll(context.Context) ([]*draft.Draft, error) {
	vals := m.store.GetList()
	out := make([]*draft.Draft, len(vals))
	for i := range vals {
		out[i] = &vals[i]
	}
	return out, nil
}

func (m *MemoryDraftStore) Delete(_ context.Context, id string) error {
	if !m.store.Delete(id) {
		return redis.ErrDraftNotFound
	}
	return nil
}

func (m *MemoryDraftStore) Count(context.Context) (int, error) {
	return m.store.Len(), nil
}

// Sweep drops expired drafts.
func (m *MemoryDraftStore) Sweep() int { return m.store.Sweep() }
