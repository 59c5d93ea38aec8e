package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/edirooss/livectl/internal/metrics"
	"github.com/edirooss/livectl/pkg/jsonx"
	"github.com/edirooss/livectl/pkg/schema"
	"go.uber.org/zap"
)

const validNit = `{"NetworkId":100,"NetworkName":"Test Network","RepInterval":5000}`

func newLintService(strict bool) *LintService {
	return NewLintService(zap.NewNop(), metrics.New(), LintOptions{StrictEnums: strict, Concurrency: 2})
}

func TestLint_Valid(t *testing.T) {
	svc := newLintService(false)

	res, err := svc.Lint(context.Background(), "DvbNitSettings", []byte(validNit), false)
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if !res.Valid || len(res.Problems) != 0 {
		t.Fatalf("expected valid, got %+v", res)
	}
	if len(res.Hash) != 16 {
		t.Errorf("expected 16 hex digit hash, got %q", res.Hash)
	}
	if string(res.canonical) != validNit {
		t.Errorf("expected canonical %s, got %s", validNit, res.canonical)
	}
}

func TestLint_HashIgnoresKeyOrder(t *testing.T) {
	svc := newLintService(false)
	ctx := context.Background()

	a, err := svc.Lint(ctx, "DvbNitSettings", []byte(validNit), false)
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	b, err := svc.Lint(ctx, "DvbNitSettings", []byte(`{ "RepInterval":5000, "NetworkName":"Test Network", "NetworkId":100 }`), false)
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if a.Hash != b.Hash {
		t.Errorf("expected equal hashes, got %s and %s", a.Hash, b.Hash)
	}
}

func TestLint_Problems(t *testing.T) {
	svc := newLintService(false)

	res, err := svc.Lint(context.Background(), "DvbNitSettings", []byte(`{"NetworkId":100,"NetworkName":"n","RepInterval":10}`), false)
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if got := res.Problems["RepInterval"]; got != "must be >= 25" {
		t.Errorf("expected RepInterval problem, got %v", res.Problems)
	}
}

func TestLint_StrictEnums(t *testing.T) {
	svc := newLintService(false)
	ctx := context.Background()
	payload := []byte(`{"CodingMode":"CODING_MODE_9_9"}`)

	res, err := svc.Lint(ctx, "Ac3Settings", payload, false)
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if !res.Valid {
		t.Fatalf("expected unknown enum accepted when not strict, got %v", res.Problems)
	}

	res, err = svc.Lint(ctx, "Ac3Settings", payload, true)
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if res.Valid || !strings.HasPrefix(res.Problems["CodingMode"], "unknown") {
		t.Errorf("expected CodingMode problem in strict mode, got %+v", res)
	}
}

func TestLint_Errors(t *testing.T) {
	svc := newLintService(false)
	ctx := context.Background()

	tests := []struct {
		name     string
		typ      string
		payload  string
		unknown  bool
		emptyErr bool
	}{
		{name: "unknown type", typ: "NoSuchRequest", payload: `{}`, unknown: true},
		{name: "empty payload", typ: "DvbNitSettings", payload: ``, emptyErr: true},
		{name: "unknown field", typ: "DvbNitSettings", payload: `{"NetworkId":1,"Bogus":true}`},
		{name: "unknown field in variant", typ: "AudioCodecSettings", payload: `{"AacSettings":{"Bitrat":1}}`},
		{name: "unknown field in nested variant", typ: "AudioDescription", payload: `{"AudioSelectorName":"d","Name":"a","CodecSettings":{"Mp2Settings":{"Bitrat":1}}}`},
		{name: "type mismatch", typ: "DvbNitSettings", payload: `{"NetworkId":"one"}`},
		{name: "malformed", typ: "DvbNitSettings", payload: `{"NetworkId":`},
		{name: "trailing data", typ: "DvbNitSettings", payload: `{} {}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Lint(ctx, tt.typ, []byte(tt.payload), false)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.unknown {
				if !errors.Is(err, ErrUnknownType) {
					t.Fatalf("expected ErrUnknownType, got %v", err)
				}
				return
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DecodeError, got %T %v", err, err)
			}
			if tt.emptyErr && !errors.Is(err, jsonx.ErrEmptyBody) {
				t.Errorf("expected ErrEmptyBody, got %v", err)
			}
		})
	}
}

func TestLint_UnknownFieldInVariant(t *testing.T) {
	svc := newLintService(true)

	_, err := svc.Lint(context.Background(), "AudioCodecSettings", []byte(`{"AacSettings":{"Bitrat":1}}`), true)
	var ufe *schema.UnknownFieldError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected *schema.UnknownFieldError, got %T %v", err, err)
	}
	if ufe.Path != "AacSettings.Bitrat" {
		t.Errorf("unexpected path %q", ufe.Path)
	}
}

func TestLint_Canceled(t *testing.T) {
	svc := newLintService(false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Lint(ctx, "DvbNitSettings", []byte(validNit), false); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLintBatch(t *testing.T) {
	svc := newLintService(false)

	items := []BatchItem{
		{Type: "DvbNitSettings", Payload: jsonx.RawMessage(validNit)},
		{Type: "DvbNitSettings", Payload: jsonx.RawMessage(`{"NetworkId":-1,"NetworkName":"n"}`)},
		{Type: "Nope", Payload: jsonx.RawMessage(`{}`)},
		{Type: "RawSettings", Payload: jsonx.RawMessage(`{"x":1}`)},
		{Type: "RawSettings", Payload: jsonx.RawMessage(`{}`)},
	}

	results, err := svc.LintBatch(context.Background(), items, false)
	if err != nil {
		t.Fatalf("LintBatch: %v", err)
	}
	if len(results) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(results))
	}

	if !results[0].Valid {
		t.Errorf("item 0: expected valid, got %+v", results[0])
	}
	if results[1].Valid || results[1].Problems["NetworkId"] != "must be >= 0" {
		t.Errorf("item 1: expected NetworkId problem, got %+v", results[1])
	}
	if results[2].Error == "" || results[2].Type != "Nope" {
		t.Errorf("item 2: expected unknown type error, got %+v", results[2])
	}
	if results[3].Error == "" {
		t.Errorf("item 3: expected decode error, got %+v", results[3])
	}
	if !results[4].Valid {
		t.Errorf("item 4: expected valid, got %+v", results[4])
	}
}

func TestLintBatch_TooLarge(t *testing.T) {
	svc := newLintService(false)
	items := make([]BatchItem, MaxBatchItems+1)

	if _, err := svc.LintBatch(context.Background(), items, false); !errors.Is(err, ErrBatchTooLarge) {
		t.Errorf("expected ErrBatchTooLarge, got %v", err)
	}
}

func TestLintBatch_Empty(t *testing.T) {
	svc := newLintService(false)

	results, err := svc.LintBatch(context.Background(), nil, false)
	if err != nil {
		t.Fatalf("LintBatch: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
