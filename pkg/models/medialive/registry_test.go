package medialive_test

import (
	"slices"
	"testing"

	"github.com/edirooss/livectl/pkg/jsonx"
	"github.com/edirooss/livectl/pkg/models/medialive"
	"github.com/edirooss/livectl/pkg/schema"
)

func TestTypeNamesSortedAndComplete(t *testing.T) {
	names := medialive.TypeNames()
	if !slices.IsSorted(names) {
		t.Fatal("type names not sorted")
	}
	for _, want := range []string{
		"CreateChannelRequest", "DescribeChannelResponse", "ListChannelsResponse",
		"CreateMultiplexRequest", "BatchUpdateScheduleRequest", "CreateTagsRequest",
		"DvbNitSettings", "HlsGroupSettings", "AudioCodecSettings", "Scte35SegmentationDescriptor",
	} {
		if !slices.Contains(names, want) {
			t.Errorf("missing %s", want)
		}
	}
}

func TestLookupReturnsFreshPointers(t *testing.T) {
	mk, ok := medialive.Lookup("DvbNitSettings")
	if !ok {
		t.Fatal("DvbNitSettings not registered")
	}
	a, b := mk(), mk()
	if _, ok := a.(*medialive.DvbNitSettings); !ok {
		t.Fatalf("expected *DvbNitSettings, got %T", a)
	}
	if a == b {
		t.Fatal("constructor returned a shared value")
	}
	if _, ok := medialive.Lookup("NoSuchType"); ok {
		t.Fatal("unexpected registration")
	}
}

func TestZeroRecordsRoundTrip(t *testing.T) {
	for _, name := range medialive.TypeNames() {
		mk, _ := medialive.Lookup(name)
		in := mk()

		b, err := jsonx.Marshal(in)
		if err != nil {
			t.Errorf("%s: marshal: %v", name, err)
			continue
		}
		out := mk()
		if err := jsonx.UnmarshalStrict(b, out); err != nil {
			t.Errorf("%s: unmarshal %s: %v", name, b, err)
			continue
		}
		if !schema.Equal(in, out) {
			t.Errorf("%s: zero value does not round trip", name)
		}
		if schema.Hash(in) != schema.Hash(out) {
			t.Errorf("%s: hash not stable", name)
		}
	}
}
