package schema_test

import (
	"strings"
	"testing"

	"github.com/edirooss/livectl/pkg/jsonx"
	"github.com/edirooss/livectl/pkg/models/medialive"
	"github.com/edirooss/livectl/pkg/schema"
)

func sampleGroup() medialive.OutputGroup {
	return medialive.OutputGroup{
		Name: medialive.String("hls"),
		OutputGroupSettings: &medialive.OutputGroupSettings{Group: &medialive.HlsGroupSettings{
			Destination: &medialive.OutputLocationRef{DestinationRefId: medialive.String("origin")},
			HlsCdnSettings: &medialive.HlsCdnSettings{Cdn: &medialive.HlsAkamaiSettings{
				HttpTransferMode: medialive.HlsAkamaiHttpTransferModeChunked,
				RestartDelay:     medialive.Int32(5),
			}},
			SegmentLength: medialive.Int32(6),
		}},
		Outputs: []medialive.Output{{OutputName: medialive.String("720p")}},
	}
}

func TestEqualIdenticalValues(t *testing.T) {
	a, b := sampleGroup(), sampleGroup()
	if !schema.Equal(a, b) {
		t.Fatal("expected equal")
	}
	if schema.Hash(a) != schema.Hash(b) {
		t.Fatal("equal values must hash equal")
	}
	if schema.Hash(a) != schema.Hash(a) {
		t.Fatal("hash not stable across calls")
	}
	if !schema.Equal(&a, &a) {
		t.Fatal("a pointer is equal to itself")
	}
}

func TestEqualDetectsChanges(t *testing.T) {
	mutations := map[string]func(*medialive.OutputGroup){
		"name":           func(g *medialive.OutputGroup) { g.Name = medialive.String("dash") },
		"unset name":     func(g *medialive.OutputGroup) { g.Name = nil },
		"nested scalar":  func(g *medialive.OutputGroup) { g.Outputs[0].OutputName = medialive.String("1080p") },
		"extra output":   func(g *medialive.OutputGroup) { g.Outputs = append(g.Outputs, medialive.Output{}) },
		"variant switch": func(g *medialive.OutputGroup) { g.OutputGroupSettings.Group = &medialive.UdpGroupSettings{} },
		"deep variant field": func(g *medialive.OutputGroup) {
			hls := g.OutputGroupSettings.Group.(*medialive.HlsGroupSettings)
			hls.HlsCdnSettings.Cdn.(*medialive.HlsAkamaiSettings).RestartDelay = medialive.Int32(6)
		},
		"cdn variant switch": func(g *medialive.OutputGroup) {
			hls := g.OutputGroupSettings.Group.(*medialive.HlsGroupSettings)
			hls.HlsCdnSettings.Cdn = &medialive.HlsWebdavSettings{RestartDelay: medialive.Int32(5)}
		},
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			a, b := sampleGroup(), sampleGroup()
			mutate(&b)
			if schema.Equal(a, b) {
				t.Fatal("expected unequal after mutation")
			}
		})
	}
}

func TestEqualUnsetRecords(t *testing.T) {
	if !schema.Equal(medialive.M2tsSettings{}, medialive.M2tsSettings{}) {
		t.Fatal("all-unset records must be equal")
	}
	if schema.Hash(medialive.M2tsSettings{}) != schema.Hash(medialive.M2tsSettings{}) {
		t.Fatal("all-unset records must hash equal")
	}
	if !schema.Equal(medialive.HlsCdnSettings{}, medialive.HlsCdnSettings{}) {
		t.Fatal("unset holders must be equal")
	}
	if schema.Equal(medialive.HlsCdnSettings{}, medialive.HlsCdnSettings{Cdn: &medialive.HlsBasicPutSettings{}}) {
		t.Fatal("populated holder must differ from an unset one")
	}
}

func TestEqualDifferentTypes(t *testing.T) {
	if schema.Equal(medialive.DvbTdtSettings{}, medialive.DvbSdtSettings{}) {
		t.Fatal("values of different types must not be equal")
	}
	if schema.Equal(medialive.DvbTdtSettings{}, &medialive.DvbTdtSettings{}) {
		t.Fatal("a value and a pointer are different types")
	}
	if schema.Equal(nil, medialive.DvbTdtSettings{}) || !schema.Equal(nil, nil) {
		t.Fatal("nil handling")
	}
}

func TestEqualNilAndEmptyCollections(t *testing.T) {
	a := medialive.Output{AudioDescriptionNames: nil}
	b := medialive.Output{AudioDescriptionNames: []string{}}
	if !schema.Equal(a, b) {
		t.Fatal("nil and empty lists must be equal")
	}
}

func TestEqualUnknownVariantIgnoresKeyOrder(t *testing.T) {
	var a, b medialive.AudioCodecSettings
	if err := jsonx.Unmarshal([]byte(`{"OpusSettings":{"Bitrate":96000,"Channels":2}}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := jsonx.Unmarshal([]byte(`{"OpusSettings":{ "Channels": 2, "Bitrate": 96000 }}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !schema.Equal(a, b) {
		t.Fatal("key order inside an unknown variant must not matter")
	}
	if schema.Hash(a) != schema.Hash(b) {
		t.Fatal("hash must follow Equal")
	}

	var c medialive.AudioCodecSettings
	if err := jsonx.Unmarshal([]byte(`{"OpusSettings":{"Bitrate":64000,"Channels":2}}`), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if schema.Equal(a, c) {
		t.Fatal("different unknown payloads must differ")
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := sampleGroup()
	c, err := schema.Clone(a)
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	if !schema.Equal(a, c) {
		t.Fatal("clone differs from the original")
	}
	*c.Outputs[0].OutputName = "changed"
	if *a.Outputs[0].OutputName != "720p" {
		t.Fatal("clone shares storage with the original")
	}
}

func TestDumpIsDeterministic(t *testing.T) {
	a, b := sampleGroup(), sampleGroup()
	if schema.Dump(a) != schema.Dump(b) {
		t.Fatal("dump differs for equal values")
	}
	out := schema.Dump(a)
	for _, want := range []string{"HlsAkamaiSettings", "RestartDelay", "720p"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0xc") {
		t.Fatalf("dump leaks pointer addresses:\n%s", out)
	}
}
