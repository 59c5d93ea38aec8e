package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/edirooss/livectl/pkg/models/medialive"
	"github.com/edirooss/livectl/pkg/schema"
	"go.uber.org/zap"
)

// TypeSummary is one entry of the type catalog.
type TypeSummary struct {
	Name     string      `json:"name"`
	Kind     schema.Kind `json:"kind"`
	Fields   int         `json:"fields"`
	Variants int         `json:"variants,omitempty"`
}

// CatalogService serves the list of registered record types.
// The registry is fixed at build time, so the list is computed once.
type CatalogService struct {
	log     *zap.Logger
	types   []TypeSummary
	builtAt time.Time
}

// NewCatalogService describes every registered type. Reuse a single instance per process.
func NewCatalogService(log *zap.Logger) *CatalogService {
	s := &CatalogService{
		log:     log.Named("catalog_service"),
		types:   summarize(medialive.TypeNames()),
		builtAt: time.Now().UTC(),
	}
	s.log.Debug("catalog built", zap.Int("types", len(s.types)))
	return s
}

// List returns the type summaries sorted by name. The slice is the caller's own copy.
func (s *CatalogService) List() []TypeSummary { return slices.Clone(s.types) }

// BuiltAt reports when the catalog was computed.
func (s *CatalogService) BuiltAt() time.Time { return s.builtAt }

// Describe returns the descriptor of the type called name.
func (s *CatalogService) Describe(name string) (*schema.Descriptor, error) {
	t, ok := medialive.TypeOf(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return schema.Describe(t), nil
}

func summarize(names []string) []TypeSummary {
	out := make([]TypeSummary, 0, len(names))
	for _, name := range names {
		t, _ := medialive.TypeOf(name)
		d := schema.Describe(t)
		out = append(out, TypeSummary{
			Name:     name,
			Kind:     d.Kind,
			Fields:   len(d.Fields),
			Variants: len(d.Variants),
		})
	}
	return out
}
