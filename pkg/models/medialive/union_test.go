package medialive_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/edirooss/livectl/pkg/jsonx"
	"github.com/edirooss/livectl/pkg/models/medialive"
	"github.com/edirooss/livectl/pkg/schema"
)

func TestUnsetHolderEncodesEmptyObject(t *testing.T) {
	b, err := jsonx.Marshal(medialive.AudioCodecSettings{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "{}" {
		t.Fatalf("expected {}, got %s", b)
	}

	var decoded medialive.AudioCodecSettings
	if err := jsonx.Unmarshal([]byte(`{}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if key, payload := decoded.Selected(); key != "" || payload != nil {
		t.Fatalf("expected unset holder, got %q %v", key, payload)
	}
}

func TestHolderRoundTripsSelectedVariant(t *testing.T) {
	in := medialive.AudioCodecSettings{Codec: &medialive.Ac3Settings{
		CodingMode:      medialive.Ac3CodingModeCodingMode20,
		Dialnorm:        medialive.Int32(24),
		MetadataControl: medialive.Ac3MetadataControlFollowInput,
	}}

	b, err := jsonx.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Ac3Settings":{"CodingMode":"CODING_MODE_2_0","Dialnorm":24,"MetadataControl":"FOLLOW_INPUT"}}`
	if string(b) != want {
		t.Fatalf("unexpected wire form\n got: %s\nwant: %s", b, want)
	}

	var out medialive.AudioCodecSettings
	if err := jsonx.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	ac3, ok := medialive.As[*medialive.Ac3Settings](out.Codec)
	if !ok {
		t.Fatalf("expected *Ac3Settings, got %T", out.Codec)
	}
	if ac3.Dialnorm == nil || *ac3.Dialnorm != 24 {
		t.Fatalf("dialnorm not preserved: %v", ac3.Dialnorm)
	}
	if _, ok := medialive.As[*medialive.AacSettings](out.Codec); ok {
		t.Fatal("AacSettings accessor must report absent")
	}
	if !schema.Equal(in, out) {
		t.Fatal("round trip changed the value")
	}
}

func TestHolderRejectsMoreThanOneVariant(t *testing.T) {
	var out medialive.AudioCodecSettings
	err := jsonx.Unmarshal([]byte(`{"Mp2Settings":{},"AacSettings":{}}`), &out)

	var conflict *medialive.VariantConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected *VariantConflictError, got %v", err)
	}
	if conflict.Union != "AudioCodecSettings" {
		t.Fatalf("unexpected union %q", conflict.Union)
	}
	if !slices.Equal(conflict.Keys, []string{"AacSettings", "Mp2Settings"}) {
		t.Fatalf("unexpected keys %v", conflict.Keys)
	}
}

func TestHolderIgnoresNullVariants(t *testing.T) {
	var out medialive.AudioCodecSettings
	if err := jsonx.Unmarshal([]byte(`{"AacSettings":null,"Mp2Settings":{"CodingMode":"CODING_MODE_1_0"}}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	mp2, ok := medialive.As[*medialive.Mp2Settings](out.Codec)
	if !ok {
		t.Fatalf("expected *Mp2Settings, got %T", out.Codec)
	}
	if mp2.CodingMode != "CODING_MODE_1_0" {
		t.Fatalf("unexpected coding mode %q", mp2.CodingMode)
	}
}

func TestHolderKeepsUnknownVariant(t *testing.T) {
	wire := `{"OpusSettings":{"Bitrate":96000,"Channels":2}}`

	var out medialive.AudioCodecSettings
	if err := jsonx.Unmarshal([]byte(wire), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	u, ok := medialive.As[*medialive.UnknownVariant](out.Codec)
	if !ok {
		t.Fatalf("expected *UnknownVariant, got %T", out.Codec)
	}
	if u.Key != "OpusSettings" {
		t.Fatalf("unexpected key %q", u.Key)
	}

	b, err := jsonx.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != wire {
		t.Fatalf("unknown variant not preserved\n got: %s\nwant: %s", b, wire)
	}
}

func TestHolderInsideRecord(t *testing.T) {
	wire := []byte(`{
		"Name": "audio_1",
		"AudioSelectorName": "default",
		"CodecSettings": {"AacSettings": {"Profile": "HEV1", "SampleRate": 48000}}
	}`)

	var desc medialive.AudioDescription
	if err := jsonx.Unmarshal(wire, &desc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if desc.CodecSettings == nil {
		t.Fatal("codec settings missing")
	}
	aac, ok := medialive.As[*medialive.AacSettings](desc.CodecSettings.Codec)
	if !ok {
		t.Fatalf("expected *AacSettings, got %T", desc.CodecSettings.Codec)
	}
	if aac.Profile != medialive.AacProfileHev1 {
		t.Fatalf("unexpected profile %q", aac.Profile)
	}
}

func TestSiblingHoldersAreIndependent(t *testing.T) {
	out := medialive.Output{
		OutputSettings: &medialive.OutputSettings{Output: &medialive.UdpOutputSettings{
			ContainerSettings: &medialive.UdpContainerSettings{Container: &medialive.M2tsSettings{}},
			Destination:       &medialive.OutputLocationRef{DestinationRefId: medialive.String("dest-1")},
		}},
	}
	b, err := jsonx.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back medialive.Output
	if err := jsonx.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	udp, ok := medialive.As[*medialive.UdpOutputSettings](back.OutputSettings.Output)
	if !ok {
		t.Fatalf("expected *UdpOutputSettings, got %T", back.OutputSettings.Output)
	}
	if _, ok := medialive.As[*medialive.M2tsSettings](udp.ContainerSettings.Container); !ok {
		t.Fatalf("expected *M2tsSettings container, got %T", udp.ContainerSettings.Container)
	}
	if !schema.Equal(out, back) {
		t.Fatal("round trip changed the value")
	}
}

func TestEveryHolderListsItsVariants(t *testing.T) {
	counts := map[string]int{
		"AudioCodecSettings":         len(medialive.AudioCodecSettings{}.VariantTypes()),
		"CaptionDestinationSettings": len(medialive.CaptionDestinationSettings{}.VariantTypes()),
		"CaptionSelectorSettings":    len(medialive.CaptionSelectorSettings{}.VariantTypes()),
		"OutputGroupSettings":        len(medialive.OutputGroupSettings{}.VariantTypes()),
		"HlsCdnSettings":             len(medialive.HlsCdnSettings{}.VariantTypes()),
		"OutputSettings":             len(medialive.OutputSettings{}.VariantTypes()),
		"ScheduleActionSettings":     len(medialive.ScheduleActionSettings{}.VariantTypes()),
	}
	want := map[string]int{
		"AudioCodecSettings":         5,
		"CaptionDestinationSettings": 11,
		"CaptionSelectorSettings":    6,
		"OutputGroupSettings":        8,
		"HlsCdnSettings":             4,
		"OutputSettings":             8,
		"ScheduleActionSettings":     9,
	}
	for name, n := range want {
		if counts[name] != n {
			t.Errorf("%s: expected %d variants, got %d", name, n, counts[name])
		}
	}
}
