package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edirooss/livectl/internal/domain/draft"
	"github.com/edirooss/livectl/pkg/jsonx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	ErrDraftNotFound = errors.New("draft not found")

	draftKeyPrefix = "livectl:draft:"
	draftIDsKey    = "livectl:drafts" // SET of draft IDs
)

// DraftRepository provides Redis-backed persistence for drafts.
// Draft keys expire on their own; the index set is pruned lazily on reads.
type DraftRepository struct {
	client *Client
	log    *zap.Logger
}

// NewDraftRepository initializes a DraftRepository on client.
func NewDraftRepository(log *zap.Logger, client *Client) *DraftRepository {
	return &DraftRepository{
		log:    log.Named("draft_repo"),
		client: client,
	}
}

// Put stores d under its ID with the given TTL and indexes it.
func (r *DraftRepository) Put(ctx context.Context, d *draft.Draft, ttl time.Duration) error {
	payload, err := jsonx.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, draftKey(d.ID), payload, ttl)
	pipe.SAdd(ctx, draftIDsKey, d.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}

// Get fetches a draft by ID.
// Returns ErrDraftNotFound if the key does not exist or has expired.
func (r *DraftRepository) Get(ctx context.Context, id string) (*draft.Draft, error) {
	value, err := r.client.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("get: %w", err)
	}

	d, err := decodeDraft(value)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return d, nil
}

// GetAll returns every live draft. IDs whose keys expired are removed from the index.
func (r *DraftRepository) GetAll(ctx context.Context) ([]*draft.Draft, error) {
	ids, err := r.client.SMembers(ctx, draftIDsKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("set members: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := draftKeys(ids)
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget: %w", err)
	}

	out, stale, err := parseMGetValues(keys, ids, vals)
	if err != nil {
		return nil, err
	}
	if len(stale) > 0 {
		if err := r.client.SRem(ctx, draftIDsKey, stale...).Err(); err != nil {
			r.log.Warn("prune expired drafts failed", zap.Error(err), zap.Int("count", len(stale)))
		}
	}
	return out, nil
}

// Count returns the number of indexed drafts, expired ones included until pruned.
func (r *DraftRepository) Count(ctx context.Context) (int, error) {
	n, err := r.client.SCard(ctx, draftIDsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("set card: %w", err)
	}
	return int(n), nil
}

// Delete removes a draft by ID. Returns ErrDraftNotFound if the key was not present.
func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, draftKey(id))
	pipe.SRem(ctx, draftIDsKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	if n := del.Val(); n == 0 {
		return ErrDraftNotFound
	}
	return nil
}

func draftKey(id string) string { return draftKeyPrefix + id }

func draftKeys(ids []string) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = draftKey(id)
	}
	return keys
}

func decodeDraft(raw []byte) (*draft.Draft, error) {
	var d draft.Draft
	if err := jsonx.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// parseMGetValues converts MGET results to drafts. Nil entries are expired
// drafts; their IDs are returned as stale.
func parseMGetValues(keys, ids []string, vals []any) ([]*draft.Draft, []any, error) {
	out := make([]*draft.Draft, 0, len(vals))
	var stale []any

	for i, v := range vals {
		if v == nil {
			stale = append(stale, ids[i])
			continue
		}

		s, ok := v.(string)
		if !ok {
			return nil, nil, fmt.Errorf("key %s at index %d: unexpected type (got %T, want string)", keys[i], i, v)
		}
		d, err := decodeDraft([]byte(s))
		if err != nil {
			return nil, nil, fmt.Errorf("key %s at index %d: decode draft: %w", keys[i], i, err)
		}
		out = append(out, d)
	}
	return out, stale, nil
}
