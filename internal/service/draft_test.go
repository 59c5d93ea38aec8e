package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/edirooss/livectl/internal/domain/draft"
	"github.com/edirooss/livectl/internal/metrics"
	"github.com/edirooss/livectl/internal/redis"
	"go.uber.org/zap"
)

// memStore is an in-memory DraftStore.
type memStore struct {
	mu     sync.Mutex
	drafts map[string]*draft.Draft
	ttls   map[string]time.Duration
	putErr error
}

func newMemStore() *memStore {
	return &memStore{drafts: map[string]*draft.Draft{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Put(_ context.Context, d *draft.Draft, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	cp := *d
	m.drafts[d.ID] = &cp
	m.ttls[d.ID] = ttl
	return nil
}

func (m *memStore) Get(_ context.Context, id string) (*draft.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	if !ok {
		return nil, redis.ErrDraftNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memStore) GetAll(context.Context) ([]*draft.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*draft.Draft, 0, len(m.drafts))
	for _, d := range m.drafts {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drafts[id]; !ok {
		return redis.ErrDraftNotFound
	}
	delete(m.drafts, id)
	return nil
}

func (m *memStore) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.drafts), nil
}

func newDraftService(store DraftStore, now time.Time) *DraftService {
	m := metrics.New()
	lint := NewLintService(zap.NewNop(), m, LintOptions{})
	svc := NewDraftService(zap.NewNop(), store, lint, m, DraftOptions{TTL: time.Hour})
	svc.now = func() time.Time { return now }
	return svc
}

func TestDraftService_CreateGetDelete(t *testing.T) {
	store := newMemStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newDraftService(store, now)
	ctx := context.Background()

	d, res, err := svc.Create(ctx, "DvbNitSettings", []byte(`{"NetworkName":"Test Network","NetworkId":100}`), false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d == nil || !res.Valid {
		t.Fatalf("expected stored draft, got %+v / %+v", d, res)
	}
	if d.ID == "" || d.Type != "DvbNitSettings" || d.Hash != res.Hash {
		t.Errorf("unexpected draft %+v", d)
	}
	if string(d.Payload) != `{"NetworkId":100,"NetworkName":"Test Network"}` {
		t.Errorf("expected canonical payload, got %s", d.Payload)
	}
	if !d.CreatedAt.Equal(now) || !d.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("unexpected timestamps %s / %s", d.CreatedAt, d.ExpiresAt)
	}
	if store.ttls[d.ID] != time.Hour {
		t.Errorf("expected store ttl 1h, got %s", store.ttls[d.ID])
	}

	got, err := svc.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Hash != d.Hash {
		t.Errorf("expected hash %s, got %s", d.Hash, got.Hash)
	}

	if err := svc.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, d.ID); !errors.Is(err, redis.ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, d.ID); !errors.Is(err, redis.ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestDraftService_InvalidNotStored(t *testing.T) {
	store := newMemStore()
	svc := newDraftService(store, time.Now())

	d, res, err := svc.Create(context.Background(), "DvbNitSettings", []byte(`{"NetworkId":100}`), false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d != nil {
		t.Fatalf("expected no draft, got %+v", d)
	}
	if res.Valid || res.Problems["NetworkName"] == "" {
		t.Errorf("expected NetworkName problem, got %+v", res)
	}
	if n, _ := store.Count(context.Background()); n != 0 {
		t.Errorf("expected empty store, got %d", n)
	}
}

func TestDraftService_LintErrorsPassThrough(t *testing.T) {
	svc := newDraftService(newMemStore(), time.Now())

	if _, _, err := svc.Create(context.Background(), "Nope", []byte(`{}`), false); !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
	var de *DecodeError
	if _, _, err := svc.Create(context.Background(), "RawSettings", []byte(`[]`), false); !errors.As(err, &de) {
		t.Errorf("expected *DecodeError, got %v", err)
	}
}

func TestDraftService_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.putErr = errors.New("connection refused")
	svc := newDraftService(store, time.Now())

	if _, _, err := svc.Create(context.Background(), "RawSettings", []byte(`{}`), false); !errors.Is(err, store.putErr) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestDraftService_ListNewestFirst(t *testing.T) {
	store := newMemStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newDraftService(store, base)
	ctx := context.Background()

	var ids []string
	for i := range 3 {
		svc.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		d, _, err := svc.Create(ctx, "RawSettings", []byte(`{}`), false)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, d.ID)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 drafts, got %d", len(list))
	}
	for i, want := range []string{ids[2], ids[1], ids[0]} {
		if list[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, list[i].ID)
		}
	}
}
