package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/edirooss/livectl/internal/domain/draft"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestParseMGetValues(t *testing.T) {
	ids := []string{"a", "b", "c"}
	keys := draftKeys(ids)
	vals := []any{
		`{"id":"a","type":"DvbNitSettings","payload":{"NetworkId":1},"hash":"01"}`,
		nil,
		`{"id":"c","type":"RawSettings","payload":{},"hash":"02"}`,
	}

	out, stale, err := parseMGetValues(keys, ids, vals)
	if err != nil {
		t.Fatalf("parseMGetValues: %v", err)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Fatalf("unexpected drafts %+v", out)
	}
	if len(stale) != 1 || stale[0] != "b" {
		t.Errorf("expected stale [b], got %v", stale)
	}
	if string(out[0].Payload) != `{"NetworkId":1}` {
		t.Errorf("expected raw payload kept, got %s", out[0].Payload)
	}
}

func TestParseMGetValues_Errors(t *testing.T) {
	ids := []string{"a"}
	keys := draftKeys(ids)

	if _, _, err := parseMGetValues(keys, ids, []any{int64(1)}); err == nil {
		t.Error("expected error for non-string value")
	}
	if _, _, err := parseMGetValues(keys, ids, []any{"{not json"}); err == nil {
		t.Error("expected error for corrupt value")
	}
}

func TestDraftKey(t *testing.T) {
	if got := draftKey("x"); got != "livectl:draft:x" {
		t.Errorf("expected livectl:draft:x, got %q", got)
	}
}

// newTestRepo connects to LIVECTL_TEST_REDIS_ADDR or skips.
func newTestRepo(t *testing.T) *DraftRepository {
	t.Helper()
	addr := os.Getenv("LIVECTL_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LIVECTL_TEST_REDIS_ADDR not set")
	}
	client := NewClient(addr, 15, zap.NewNop())
	t.Cleanup(func() { client.Close() })
	if err := client.Ping(context.Background()); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	return NewDraftRepository(zap.NewNop(), client)
}

func TestDraftRepository_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d := &draft.Draft{
		ID:        uuid.NewString(),
		Type:      "DvbNitSettings",
		Payload:   []byte(`{"NetworkId":100,"NetworkName":"Test Network"}`),
		Hash:      "abc",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Put(ctx, d, time.Minute); err != nil {
		t.Fatalf("Put: %v", err)
	}
	t.Cleanup(func() { _ = repo.Delete(ctx, d.ID) })

	got, err := repo.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Type != d.Type || string(got.Payload) != string(d.Payload) || !got.CreatedAt.Equal(d.CreatedAt) {
		t.Errorf("round trip mismatch: %+v", got)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	found := false
	for _, x := range all {
		found = found || x.ID == d.ID
	}
	if !found {
		t.Error("expected draft in GetAll")
	}

	if err := repo.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, d.ID); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, d.ID); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound on second delete, got %v", err)
	}
}

func TestDraftRepository_ExpiredPruned(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d := &draft.Draft{ID: uuid.NewString(), Type: "RawSettings", Payload: []byte(`{}`)}
	if err := repo.Put(ctx, d, 50*time.Millisecond); err != nil {
		t.Fatalf("Put: %v", err)
	}
	time.Sleep(150 * time.Millisecond)

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	for _, x := range all {
		if x.ID == d.ID {
			t.Fatal("expired draft returned")
		}
	}
	ok, err := repo.client.SIsMember(ctx, draftIDsKey, d.ID).Result()
	if err != nil {
		t.Fatalf("SIsMember: %v", err)
	}
	if ok {
		t.Error("expected expired id pruned from index")
	}
}
