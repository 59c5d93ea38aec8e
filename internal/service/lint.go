package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/edirooss/livectl/internal/metrics"
	"github.com/edirooss/livectl/pkg/jsonx"
	"github.com/edirooss/livectl/pkg/models/medialive"
	"github.com/edirooss/livectl/pkg/schema"
	"go.uber.org/zap"
)

// MaxBatchItems caps the number of documents in one batch lint.
const MaxBatchItems = 256

var (
	ErrUnknownType   = errors.New("unknown type")
	ErrBatchTooLarge = fmt.Errorf("batch exceeds %d items", MaxBatchItems)
)

// DecodeError reports a payload that is not a well-formed document of Type:
// malformed JSON, unknown keys, wrong value types or conflicting variants.
type DecodeError struct {
	Type string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.Type, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

type LintOptions struct {
	// StrictEnums is the default when a request does not choose.
	StrictEnums bool
	// Concurrency bounds batch fan-out; default 8.
	Concurrency int
}

func (o *LintOptions) setDefaults() {
	if o.Concurrency <= 0 {
		o.Concurrency = 8
	}
}

// LintResult is the outcome for one document.
type LintResult struct {
	Type     string            `json:"type"`
	Valid    bool              `json:"valid"`
	Problems map[string]string `json:"problems,omitempty"`
	Hash     string            `json:"hash,omitempty"`
	// Error is set in batch results for documents that could not be decoded.
	Error string `json:"error,omitempty"`

	canonical []byte
}

// BatchItem is one document of a batch lint.
type BatchItem struct {
	Type    string           `json:"type"`
	Payload jsonx.RawMessage `json:"payload"`
}

type LintService struct {
	log     *zap.Logger
	metrics *metrics.Metrics
	opts    LintOptions
}

func NewLintService(log *zap.Logger, m *metrics.Metrics, opts LintOptions) *LintService {
	opts.setDefaults()
	return &LintService{
		log:     log.Named("lint_service"),
		metrics: m,
		opts:    opts,
	}
}

// StrictDefault reports whether enum membership is checked when the caller does not choose.
func (s *LintService) StrictDefault() bool { return s.opts.StrictEnums }

// Lint strictly decodes payload as the record type called name and validates it.
//
// Returns ErrUnknownType (wrapped) for unregistered names and *DecodeError for
// payloads that do not decode. Constraint violations are not errors; they are
// reported in LintResult.Problems with Valid set to false.
func (s *LintService) Lint(ctx context.Context, name string, payload []byte, strict bool) (*LintResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	newRecord, ok := medialive.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	if len(payload) == 0 {
		s.metrics.IncLinted(metrics.ResultMalformed, 0)
		return nil, &DecodeError{Type: name, Err: jsonx.ErrEmptyBody}
	}

	v := newRecord()
	if err := schema.DecodeStrict(payload, v); err != nil {
		s.metrics.IncLinted(metrics.ResultMalformed, 0)
		return nil, &DecodeError{Type: name, Err: err}
	}

	res := &LintResult{Type: name, Valid: true}

	if err := schema.Validate(v, schema.WithStrictEnums(strict)); err != nil {
		var ve *schema.ValidationError
		if !errors.As(err, &ve) {
			return nil, fmt.Errorf("validate %s: %w", name, err)
		}
		res.Valid = false
		res.Problems = ve.Problems
	}

	canonical, err := jsonx.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	res.canonical = canonical
	res.Hash = fmt.Sprintf("%016x", schema.Hash(v))

	if res.Valid {
		s.metrics.IncLinted(metrics.ResultValid, 0)
	} else {
		s.metrics.IncLinted(metrics.ResultInvalid, len(res.Problems))
		s.log.Debug("lint problems", zap.String("type", name), zap.Int("count", len(res.Problems)))
	}
	return res, nil
}

// LintBatch lints items concurrently. Results keep the order of items.
// Unknown types and decode failures become per-item results with Error set;
// only cancellation fails the whole batch.
func (s *LintService) LintBatch(ctx context.Context, items []BatchItem, strict bool) ([]*LintResult, error) {
	if len(items) > MaxBatchItems {
		return nil, ErrBatchTooLarge
	}

	results := make([]*LintResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, item := range items {
		g.Go(func() error {
			res, err := s.Lint(gctx, item.Type, item.Payload, strict)
			var de *DecodeError
			switch {
			case err == nil:
				results[i] = res
			case errors.Is(err, ErrUnknownType), errors.As(err, &de):
				results[i] = &LintResult{Type: item.Type, Error: err.Error()}
			default:
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
