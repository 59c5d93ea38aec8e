package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edirooss/livectl/internal/domain/draft"
	"github.com/edirooss/livectl/internal/redis"
	"go.uber.org/zap"
)

func TestMemoryDraftStore(t *testing.T) {
	store := NewMemoryDraftStore(zap.NewNop())
	ctx := context.Background()

	d := &draft.Draft{ID: "b", Type: "RawSettings", Payload: []byte(`{}`)}
	if err := store.Put(ctx, d, time.Hour); err != nil {
		t.Fatalf("Put: %v", err)
	}
	_ = store.Put(ctx, &draft.Draft{ID: "a", Type: "RawSettings"}, time.Hour)

	// Stored by value: later edits to d do not leak in.
	d.Type = "changed"
	got, err := store.Get(ctx, "b")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Type != "RawSettings" {
		t.Errorf("expected stored copy, got type %q", got.Type)
	}

	all, _ := store.GetAll(ctx)
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "b" {
		t.Errorf("unexpected GetAll %+v", all)
	}
	if n, _ := store.Count(ctx); n != 2 {
		t.Errorf("expected 2, got %d", n)
	}

	if err := store.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "b"); !errors.Is(err, redis.ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "b"); !errors.Is(err, redis.ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound, got %v", err)
	}
}
