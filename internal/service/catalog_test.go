package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/edirooss/livectl/pkg/models/medialive"
	"github.com/edirooss/livectl/pkg/schema"
	"go.uber.org/zap"
)

func TestCatalog_ListCoversRegistry(t *testing.T) {
	svc := NewCatalogService(zap.NewNop())

	list := svc.List()
	names := medialive.TypeNames()
	if len(list) != len(names) {
		t.Fatalf("expected %d types, got %d", len(names), len(list))
	}
	for i, s := range list {
		if s.Name != names[i] {
			t.Fatalf("entry %d: expected %s, got %s", i, names[i], s.Name)
		}
	}
	if svc.BuiltAt().IsZero() {
		t.Error("expected build time")
	}

	// Callers get their own copy.
	list[0].Name = "mutated"
	if svc.List()[0].Name == "mutated" {
		t.Error("catalog shared with caller")
	}
}

func TestCatalog_Entries(t *testing.T) {
	svc := NewCatalogService(zap.NewNop())

	byName := map[string]TypeSummary{}
	for _, s := range svc.List() {
		byName[s.Name] = s
	}
	if s := byName["DvbNitSettings"]; s.Kind != schema.KindRecord || s.Fields != 3 {
		t.Errorf("unexpected DvbNitSettings entry %+v", s)
	}
	if s := byName["AudioCodecSettings"]; s.Kind != schema.KindUnion || s.Variants == 0 {
		t.Errorf("unexpected AudioCodecSettings entry %+v", s)
	}
}

func TestCatalog_ConcurrentList(t *testing.T) {
	svc := NewCatalogService(zap.NewNop())
	want := len(svc.List())

	var wg sync.WaitGroup
	counts := make(chan int, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := svc.List()
			l[0].Fields = -1
			counts <- len(l)
		}()
	}
	wg.Wait()
	close(counts)
	for n := range counts {
		if n != want {
			t.Errorf("expected %d entries, got %d", want, n)
		}
	}
	if svc.List()[0].Fields == -1 {
		t.Error("catalog shared with caller")
	}
}

func TestCatalog_Describe(t *testing.T) {
	svc := NewCatalogService(zap.NewNop())

	d, err := svc.Describe("DvbNitSettings")
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if d.Name != "DvbNitSettings" || len(d.Fields) != 3 {
		t.Errorf("unexpected descriptor %+v", d)
	}

	if _, err := svc.Describe("Nope"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}
