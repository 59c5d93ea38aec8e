package schema_test

import (
	"errors"
	"testing"

	"github.com/edirooss/livectl/pkg/models/medialive"
	"github.com/edirooss/livectl/pkg/schema"
)

func TestDecodeStrictChecksVariantPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		path    string
	}{
		{name: "valid", payload: `{"AudioSelectorName":"default","Name":"a1","CodecSettings":{"AacSettings":{"Bitrate":96000}}}`},
		{name: "null variant", payload: `{"AudioSelectorName":"default","Name":"a1","CodecSettings":{"AacSettings":null}}`},
		{name: "unknown variant kept", payload: `{"AudioSelectorName":"default","Name":"a1","CodecSettings":{"OpusSettings":{"Anything":1}}}`},
		{name: "typo inside variant", payload: `{"AudioSelectorName":"default","Name":"a1","CodecSettings":{"AacSettings":{"Bitrat":1}}}`, path: "CodecSettings.AacSettings.Bitrat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ad medialive.AudioDescription
			err := schema.DecodeStrict([]byte(tt.payload), &ad)
			if tt.path == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ufe *schema.UnknownFieldError
			if !errors.As(err, &ufe) {
				t.Fatalf("expected *UnknownFieldError, got %T %v", err, err)
			}
			if ufe.Path != tt.path {
				t.Errorf("expected path %q, got %q", tt.path, ufe.Path)
			}
		})
	}
}

func TestDecodeStrictRejectsUnknownRecordKeys(t *testing.T) {
	var ad medialive.AudioDescription
	payload := `{"AudioSelectorName":"default","Name":"a1","AudioNormalizationSettings":{"Algo":"x"}}`
	if err := schema.DecodeStrict([]byte(payload), &ad); err == nil {
		t.Fatal("expected an error for an unknown key in a nested record")
	}
}

func TestDecodeStrictTopLevelHolder(t *testing.T) {
	var codec medialive.AudioCodecSettings
	if err := schema.DecodeStrict([]byte(`{"AacSettings":{"Bitrat":1}}`), &codec); err == nil {
		t.Fatal("expected an error for an unknown key inside the variant")
	}
	if err := schema.DecodeStrict([]byte(`{"AacSettings":{"Bitrate":1}}`), &codec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeStrictInsideLists(t *testing.T) {
	payload := `{"AudioDescriptions":[
		{"AudioSelectorName":"default","Name":"a1"},
		{"AudioSelectorName":"default","Name":"a2","CodecSettings":{"Ac3Settings":{"Dialnorn":20}}}
	]}`
	var es medialive.EncoderSettings
	err := schema.DecodeStrict([]byte(payload), &es)
	var ufe *schema.UnknownFieldError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected *UnknownFieldError, got %T %v", err, err)
	}
	if want := "AudioDescriptions[1].CodecSettings.Ac3Settings.Dialnorn"; ufe.Path != want {
		t.Errorf("expected path %q, got %q", want, ufe.Path)
	}
}
