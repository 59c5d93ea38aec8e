package medialive_test

import (
	"testing"

	"github.com/edirooss/livectl/pkg/jsonx"
	"github.com/edirooss/livectl/pkg/models/medialive"
	"github.com/edirooss/livectl/pkg/schema"
)

func TestDvbNitSettingsRoundTrip(t *testing.T) {
	in := medialive.DvbNitSettings{
		NetworkId:   100,
		NetworkName: "Test Network",
		RepInterval: medialive.Int32(5000),
	}

	b, err := jsonx.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"NetworkId":100,"NetworkName":"Test Network","RepInterval":5000}`
	if string(b) != want {
		t.Fatalf("unexpected wire form\n got: %s\nwant: %s", b, want)
	}

	var out medialive.DvbNitSettings
	if err := jsonx.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !schema.Equal(in, out) {
		t.Fatalf("round trip not equal: %+v vs %+v", in, out)
	}
	if schema.Hash(in) != schema.Hash(out) {
		t.Fatal("round trip changed the hash")
	}
	if err := schema.Validate(out); err != nil {
		t.Fatalf("expected valid settings, got %v", err)
	}
}

func TestArchiveContainerSelectsRaw(t *testing.T) {
	var out medialive.ArchiveOutputSettings
	if err := jsonx.Unmarshal([]byte(`{"ContainerSettings":{"RawSettings":{}},"Extension":"ts"}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := medialive.As[*medialive.RawSettings](out.ContainerSettings.Container); !ok {
		t.Fatalf("expected *RawSettings, got %T", out.ContainerSettings.Container)
	}
}
