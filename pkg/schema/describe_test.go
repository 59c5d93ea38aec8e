package schema_test

import (
	"reflect"
	"slices"
	"testing"

	"github.com/edirooss/livectl/pkg/models/medialive"
	"github.com/edirooss/livectl/pkg/schema"
)

func field(t *testing.T, d *schema.Descriptor, key string) schema.Field {
	t.Helper()
	for _, f := range d.Fields {
		if f.WireKey == key {
			return f
		}
	}
	t.Fatalf("%s has no field %s", d.Name, key)
	return schema.Field{}
}

func TestDescribeRecordConstraints(t *testing.T) {
	d := schema.Describe(reflect.TypeFor[medialive.DvbNitSettings]())
	if d.Kind != schema.KindRecord {
		t.Fatalf("expected record, got %s", d.Kind)
	}

	id := field(t, d, "NetworkId")
	want := []schema.Constraint{{Name: "min", Param: "0"}, {Name: "max", Param: "65536"}}
	if !slices.Equal(id.Constraints, want) {
		t.Fatalf("NetworkId constraints: expected %v, got %v", want, id.Constraints)
	}
	if id.Optional {
		t.Fatal("NetworkId must not be optional")
	}

	rep := field(t, d, "RepInterval")
	if !rep.Optional || rep.Kind != schema.KindScalar {
		t.Fatalf("unexpected RepInterval descriptor %+v", rep)
	}
}

func TestDescribeUnion(t *testing.T) {
	d := schema.Describe(reflect.TypeFor[*medialive.HlsCdnSettings]())
	if d.Kind != schema.KindUnion {
		t.Fatalf("expected union, got %s", d.Kind)
	}
	if len(d.Variants) != 4 || d.Variants["HlsWebdavSettings"] != "HlsWebdavSettings" {
		t.Fatalf("unexpected variants %v", d.Variants)
	}
}

func TestDescribeEnumAndListFields(t *testing.T) {
	d := schema.Describe(reflect.TypeFor[medialive.HlsGroupSettings]())

	markers := field(t, d, "AdMarkers")
	if markers.Kind != schema.KindList {
		t.Fatalf("expected list, got %s", markers.Kind)
	}
	if !slices.Equal(markers.EnumValues, []string{"ADOBE", "ELEMENTAL", "ELEMENTAL_SCTE35"}) {
		t.Fatalf("unexpected enum values %v", markers.EnumValues)
	}

	mode := field(t, d, "Mode")
	if mode.Kind != schema.KindEnum || !mode.Optional {
		t.Fatalf("unexpected Mode descriptor %+v", mode)
	}

	dest := field(t, d, "Destination")
	if !dest.Required || dest.Ref != "OutputLocationRef" {
		t.Fatalf("unexpected Destination descriptor %+v", dest)
	}

	cdn := field(t, d, "HlsCdnSettings")
	if cdn.Kind != schema.KindUnion {
		t.Fatalf("expected union field, got %s", cdn.Kind)
	}
}

func TestDescribeIsCached(t *testing.T) {
	a := schema.Describe(reflect.TypeFor[medialive.Channel]())
	b := schema.Describe(reflect.TypeFor[*medialive.Channel]())
	if a != b {
		t.Fatal("expected the cached descriptor")
	}
}

func TestDescribeEveryRegisteredType(t *testing.T) {
	for _, name := range medialive.TypeNames() {
		rt, _ := medialive.TypeOf(name)
		d := schema.Describe(rt)
		if d.Name != name {
			t.Errorf("%s: descriptor named %q", name, d.Name)
		}
		if d.Kind != schema.KindRecord && d.Kind != schema.KindUnion {
			t.Errorf("%s: unexpected kind %s", name, d.Kind)
		}
	}
}
