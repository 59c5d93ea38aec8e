package medialive

import "reflect"

// AudioDescription describes one encoded audio stream of a channel.
type AudioDescription struct {
	AudioNormalizationSettings *AudioNormalizationSettings      `json:"AudioNormalizationSettings,omitempty"`
	AudioSelectorName          string                           `json:"AudioSelectorName" validate:"required"`
	AudioType                  AudioType                        `json:"AudioType,omitempty"`
	AudioTypeControl           AudioDescriptionAudioTypeControl `json:"AudioTypeControl,omitempty"`
	CodecSettings              *AudioCodecSettings              `json:"CodecSettings,omitempty"`
	// ISO 639-2, three characters.
	LanguageCode        *string                             `json:"LanguageCode,omitempty" validate:"omitempty,len=3"`
	LanguageCodeControl AudioDescriptionLanguageCodeControl `json:"LanguageCodeControl,omitempty"`
	Name                string                              `json:"Name" validate:"required"`
	RemixSettings       *RemixSettings                      `json:"RemixSettings,omitempty"`
	StreamName          *string                             `json:"StreamName,omitempty"`
}

// ===== Codec union =====

// AudioCodecSettings selects one of AAC, AC3, EAC3, MP2 or pass-through.
type AudioCodecSettings struct {
	Codec AudioCodec
}

// AudioCodec is implemented by *AacSettings, *Ac3Settings, *Eac3Settings,
// *Mp2Settings, *PassThroughSettings and *UnknownVariant.
type AudioCodec interface {
	Variant
	isAudioCodec()
}

var audioCodecUnion = newUnion("AudioCodecSettings", map[string]func() AudioCodec{
	"AacSettings":         func() AudioCodec { return new(AacSettings) },
	"Ac3Settings":         func() AudioCodec { return new(Ac3Settings) },
	"Eac3Settings":        func() AudioCodec { return new(Eac3Settings) },
	"Mp2Settings":         func() AudioCodec { return new(Mp2Settings) },
	"PassThroughSettings": func() AudioCodec { return new(PassThroughSettings) },
})

func (s AudioCodecSettings) MarshalJSON() ([]byte, error) { return audioCodecUnion.encode(s.Codec) }

func (s *AudioCodecSettings) UnmarshalJSON(b []byte) error {
	v, err := audioCodecUnion.decode(b)
	if err != nil {
		return err
	}
	s.Codec = v
	return nil
}

func (s AudioCodecSettings) Selected() (string, any) { return selected(s.Codec) }

func (AudioCodecSettings) VariantTypes() map[string]reflect.Type {
	return audioCodecUnion.variantTypes()
}

func (*AacSettings) isAudioCodec()         {}
func (*Ac3Settings) isAudioCodec()         {}
func (*Eac3Settings) isAudioCodec()        {}
func (*Mp2Settings) isAudioCodec()         {}
func (*PassThroughSettings) isAudioCodec() {}
func (*UnknownVariant) isAudioCodec()      {}

func (*AacSettings) WireKey() string         { return "AacSettings" }
func (*Ac3Settings) WireKey() string         { return "Ac3Settings" }
func (*Eac3Settings) WireKey() string        { return "Eac3Settings" }
func (*Mp2Settings) WireKey() string         { return "Mp2Settings" }
func (*PassThroughSettings) WireKey() string { return "PassThroughSettings" }

// ===== Codec variants =====

type AacSettings struct {
	// Bits per second.
	Bitrate         *float64           `json:"Bitrate,omitempty"`
	CodingMode      AacCodingMode      `json:"CodingMode,omitempty"`
	InputType       AacInputType       `json:"InputType,omitempty"`
	Profile         AacProfile         `json:"Profile,omitempty"`
	RateControlMode AacRateControlMode `json:"RateControlMode,omitempty"`
	RawFormat       AacRawFormat       `json:"RawFormat,omitempty"`
	// Hz.
	SampleRate *float64      `json:"SampleRate,omitempty"`
	Spec       AacSpec       `json:"Spec,omitempty"`
	VbrQuality AacVbrQuality `json:"VbrQuality,omitempty"`
}

type Ac3Settings struct {
	Bitrate         *float64           `json:"Bitrate,omitempty"`
	BitstreamMode   Ac3BitstreamMode   `json:"BitstreamMode,omitempty"`
	CodingMode      Ac3CodingMode      `json:"CodingMode,omitempty"`
	Dialnorm        *int32             `json:"Dialnorm,omitempty" validate:"omitempty,min=1,max=31"`
	DrcProfile      Ac3DrcProfile      `json:"DrcProfile,omitempty"`
	LfeFilter       Ac3LfeFilter       `json:"LfeFilter,omitempty"`
	MetadataControl Ac3MetadataControl `json:"MetadataControl,omitempty"`
}

type Eac3Settings struct {
	AttenuationControl   Eac3AttenuationControl `json:"AttenuationControl,omitempty"`
	Bitrate              *float64               `json:"Bitrate,omitempty"`
	BitstreamMode        Eac3BitstreamMode      `json:"BitstreamMode,omitempty"`
	CodingMode           Eac3CodingMode         `json:"CodingMode,omitempty"`
	DcFilter             Eac3DcFilter           `json:"DcFilter,omitempty"`
	Dialnorm             *int32                 `json:"Dialnorm,omitempty" validate:"omitempty,min=1,max=31"`
	DrcLine              Eac3DrcLine            `json:"DrcLine,omitempty"`
	DrcRf                Eac3DrcRf              `json:"DrcRf,omitempty"`
	LfeControl           Eac3LfeControl         `json:"LfeControl,omitempty"`
	LfeFilter            Eac3LfeFilter          `json:"LfeFilter,omitempty"`
	LoRoCenterMixLevel   *float64               `json:"LoRoCenterMixLevel,omitempty"`
	LoRoSurroundMixLevel *float64               `json:"LoRoSurroundMixLevel,omitempty"`
	LtRtCenterMixLevel   *float64               `json:"LtRtCenterMixLevel,omitempty"`
	LtRtSurroundMixLevel *float64               `json:"LtRtSurroundMixLevel,omitempty"`
	MetadataControl      Eac3MetadataControl    `json:"MetadataControl,omitempty"`
	PassthroughControl   Eac3PassthroughControl `json:"PassthroughControl,omitempty"`
	PhaseControl         Eac3PhaseControl       `json:"PhaseControl,omitempty"`
	StereoDownmix        Eac3StereoDownmix      `json:"StereoDownmix,omitempty"`
	SurroundExMode       Eac3SurroundExMode     `json:"SurroundExMode,omitempty"`
	SurroundMode         Eac3SurroundMode       `json:"SurroundMode,omitempty"`
}

type Mp2Settings struct {
	Bitrate    *float64      `json:"Bitrate,omitempty"`
	CodingMode Mp2CodingMode `json:"CodingMode,omitempty"`
	SampleRate *float64      `json:"SampleRate,omitempty"`
}

// PassThroughSettings forwards the source audio untouched. It has no fields.
type PassThroughSettings struct{}

// ===== Normalization & remix =====

type AudioNormalizationSettings struct {
	Algorithm        AudioNormalizationAlgorithm        `json:"Algorithm,omitempty"`
	AlgorithmControl AudioNormalizationAlgorithmControl `json:"AlgorithmControl,omitempty"`
	// Loudness target in LKFS.
	TargetLkfs *float64 `json:"TargetLkfs,omitempty" validate:"omitempty,min=-59,max=0"`
}

type RemixSettings struct {
	ChannelMappings []AudioChannelMapping `json:"ChannelMappings" validate:"required"`
	ChannelsIn      *int32                `json:"ChannelsIn,omitempty" validate:"omitempty,min=1,max=16"`
	ChannelsOut     *int32                `json:"ChannelsOut,omitempty" validate:"omitempty,min=1,max=8"`
}

type AudioChannelMapping struct {
	InputChannelLevels []InputChannelLevel `json:"InputChannelLevels" validate:"required"`
	OutputChannel      int32               `json:"OutputChannel" validate:"min=0,max=7"`
}

type InputChannelLevel struct {
	// dB.
	Gain         int32 `json:"Gain" validate:"min=-60,max=6"`
	InputChannel int32 `json:"InputChannel" validate:"min=0,max=15"`
}
