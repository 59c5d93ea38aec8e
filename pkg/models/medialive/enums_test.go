package medialive_test

import (
	"slices"
	"testing"

	"github.com/edirooss/livectl/pkg/jsonx"
	"github.com/edirooss/livectl/pkg/models/medialive"
)

func TestEnumWireValuesAreVerbatim(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{string(medialive.Ac3CodingModeCodingMode20), "CODING_MODE_2_0"},
		{string(medialive.Ac3MetadataControlFollowInput), "FOLLOW_INPUT"},
		{string(medialive.InputLossActionForUdpOutDropProgram), "DROP_PROGRAM"},
		{string(medialive.HlsCodecSpecificationRfc4281), "RFC_4281"},
		{string(medialive.H264LevelH264Level11), "H264_LEVEL_1_1"},
		{string(medialive.Scte35SegmentationCancelIndicatorSegmentationEventNotCanceled), "SEGMENTATION_EVENT_NOT_CANCELED"},
		{string(medialive.LogLevelDisabled), "DISABLED"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, tt.got)
		}
	}
}

func TestEnumValuesListKnownSet(t *testing.T) {
	vals := medialive.InputLossActionForUdpOut("").Values()
	want := []medialive.InputLossActionForUdpOut{"DROP_PROGRAM", "DROP_TS", "EMIT_PROGRAM"}
	if !slices.Equal(vals, want) {
		t.Fatalf("expected %v, got %v", want, vals)
	}
	if !slices.Contains(medialive.ChannelState("").Values(), medialive.ChannelStateUpdateFailed) {
		t.Fatal("ChannelState values missing UPDATE_FAILED")
	}
}

func TestUnknownEnumValuePassesThrough(t *testing.T) {
	wire := `{"CodingMode":"CODING_MODE_9_9"}`

	var s medialive.Ac3Settings
	if err := jsonx.Unmarshal([]byte(wire), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.CodingMode != "CODING_MODE_9_9" {
		t.Fatalf("unknown value not kept: %q", s.CodingMode)
	}
	b, err := jsonx.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != wire {
		t.Fatalf("expected %s, got %s", wire, b)
	}
}
