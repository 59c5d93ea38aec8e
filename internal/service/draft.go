package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/edirooss/livectl/internal/domain/draft"
	"github.com/edirooss/livectl/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DraftStore persists drafts. Get and Delete return redis.ErrDraftNotFound
// for unknown or expired IDs.
type DraftStore interface {
	Put(ctx context.Context, d *draft.Draft, ttl time.Duration) error
	Get(ctx context.Context, id string) (*draft.Draft, error)
	GetAll(ctx context.Context) ([]*draft.Draft, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type DraftOptions struct {
	// TTL is how long a stored draft lives; default 24h.
	TTL time.Duration
}

func (o *DraftOptions) setDefaults() {
	if o.TTL <= 0 {
		o.TTL = 24 * time.Hour
	}
}

// DraftService lints documents and parks the valid ones in a DraftStore.
type DraftService struct {
	log     *zap.Logger
	store   DraftStore
	lint    *LintService
	metrics *metrics.Metrics

	opts DraftOptions
	now  func() time.Time
}

func NewDraftService(log *zap.Logger, store DraftStore, lint *LintService, m *metrics.Metrics, opts DraftOptions) *DraftService {
	opts.setDefaults()
	return &DraftService{
		log:     log.Named("draft_service"),
		store:   store,
		lint:    lint,
		metrics: m,
		opts:    opts,
		now:     time.Now,
	}
}

// Create lints payload as the type called name and stores it when valid.
// An invalid document returns a nil draft and the lint result; nothing is stored.
// Lint errors (unknown type, decode failure) are returned unchanged.
func (s *DraftService) Create(ctx context.Context, name string, payload []byte, strict bool) (*draft.Draft, *LintResult, error) {
	res, err := s.lint.Lint(ctx, name, payload, strict)
	if err != nil {
		return nil, nil, err
	}
	if !res.Valid {
		return nil, res, nil
	}

	now := s.now().UTC()
	d := &draft.Draft{
		ID:        uuid.NewString(),
		Type:      name,
		Payload:   res.canonical,
		Hash:      res.Hash,
		CreatedAt: now,
		ExpiresAt: now.Add(s.opts.TTL),
	}
	if err := s.store.Put(ctx, d, s.opts.TTL); err != nil {
		return nil, res, err
	}

	s.metrics.IncDraftsStored()
	s.log.Info("draft stored", zap.String("id", d.ID), zap.String("type", name))
	return d, res, nil
}

func (s *DraftService) Get(ctx context.Context, id string) (*draft.Draft, error) {
	return s.store.Get(ctx, id)
}

// List returns summaries of every live draft, newest first.
func (s *DraftService) List(ctx context.Context) ([]draft.Summary, error) {
	ds, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]draft.Summary, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Summary())
	}
	slices.SortFunc(out, func(a, b draft.Summary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (s *DraftService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("draft deleted", zap.String("id", id))
	return nil
}

// RefreshGauge updates the active drafts gauge. Called before metric scrapes.
func (s *DraftService) RefreshGauge(ctx context.Context) {
	n, err := s.store.Count(ctx)
	if err != nil {
		s.log.Warn("count drafts failed", zap.Error(err))
		return
	}
	s.metrics.SetDraftsActive(n)
}
