package medialive

import "reflect"

// VideoDescription describes one encoded video rendition.
type VideoDescription struct {
	CodecSettings *VideoCodecSettings `json:"CodecSettings,omitempty"`
	// Output height in pixels. Unset follows the source.
	Height          *int32                          `json:"Height,omitempty"`
	Name            string                          `json:"Name" validate:"required"`
	RespondToAfd    VideoDescriptionRespondToAfd    `json:"RespondToAfd,omitempty"`
	ScalingBehavior VideoDescriptionScalingBehavior `json:"ScalingBehavior,omitempty"`
	Sharpness       *int32                          `json:"Sharpness,omitempty" validate:"omitempty,min=0,max=100"`
	Width           *int32                          `json:"Width,omitempty"`
}

type VideoCodecSettings struct {
	Codec VideoCodec
}

// VideoCodec is implemented by *FrameCaptureSettings, *H264Settings,
// *H265Settings and *UnknownVariant.
type VideoCodec interface {
	Variant
	isVideoCodec()
}

var videoCodecUnion = newUnion("VideoCodecSettings", map[string]func() VideoCodec{
	"FrameCaptureSettings": func() VideoCodec { return new(FrameCaptureSettings) },
	"H264Settings":         func() VideoCodec { return new(H264Settings) },
	"H265Settings":         func() VideoCodec { return new(H265Settings) },
})

func (s VideoCodecSettings) MarshalJSON() ([]byte, error) { return videoCodecUnion.encode(s.Codec) }

func (s *VideoCodecSettings) UnmarshalJSON(b []byte) error {
	v, err := videoCodecUnion.decode(b)
	if err != nil {
		return err
	}
	s.Codec = v
	return nil
}

func (s VideoCodecSettings) Selected() (string, any) { return selected(s.Codec) }

func (VideoCodecSettings) VariantTypes() map[string]reflect.Type {
	return videoCodecUnion.variantTypes()
}

func (*FrameCaptureSettings) isVideoCodec() {}
func (*H264Settings) isVideoCodec()         {}
func (*H265Settings) isVideoCodec()         {}
func (*UnknownVariant) isVideoCodec()       {}

func (*FrameCaptureSettings) WireKey() string { return "FrameCaptureSettings" }
func (*H264Settings) WireKey() string         { return "H264Settings" }
func (*H265Settings) WireKey() string         { return "H265Settings" }

type FrameCaptureSettings struct {
	CaptureInterval      *int32                   `json:"CaptureInterval,omitempty" validate:"omitempty,min=1,max=3600000"`
	CaptureIntervalUnits FrameCaptureIntervalUnit `json:"CaptureIntervalUnits,omitempty"`
}

// H264Settings configures an AVC encode. Rates are in bits per second.
type H264Settings struct {
	AdaptiveQuantization H264AdaptiveQuantization `json:"AdaptiveQuantization,omitempty"`
	AfdSignaling         AfdSignaling             `json:"AfdSignaling,omitempty"`
	Bitrate              *int32                   `json:"Bitrate,omitempty" validate:"omitempty,min=1000"`
	BufFillPct           *int32                   `json:"BufFillPct,omitempty" validate:"omitempty,min=0,max=100"`
	BufSize              *int32                   `json:"BufSize,omitempty" validate:"omitempty,min=0"`
	ColorMetadata        H264ColorMetadata        `json:"ColorMetadata,omitempty"`
	EntropyEncoding      H264EntropyEncoding      `json:"EntropyEncoding,omitempty"`
	FlickerAq            H264FlickerAq            `json:"FlickerAq,omitempty"`
	FramerateControl     H264FramerateControl     `json:"FramerateControl,omitempty"`
	FramerateDenominator *int32                   `json:"FramerateDenominator,omitempty" validate:"omitempty,min=1"`
	FramerateNumerator   *int32                   `json:"FramerateNumerator,omitempty" validate:"omitempty,min=1"`
	GopBReference        H264GopBReference        `json:"GopBReference,omitempty"`
	GopClosedCadence     *int32                   `json:"GopClosedCadence,omitempty" validate:"omitempty,min=0"`
	GopNumBFrames        *int32                   `json:"GopNumBFrames,omitempty" validate:"omitempty,min=0,max=7"`
	GopSize              *float64                 `json:"GopSize,omitempty"`
	GopSizeUnits         H264GopSizeUnits         `json:"GopSizeUnits,omitempty"`
	Level                H264Level                `json:"Level,omitempty"`
	LookAheadRateControl H264LookAheadRateControl `json:"LookAheadRateControl,omitempty"`
	MaxBitrate           *int32                   `json:"MaxBitrate,omitempty" validate:"omitempty,min=1000"`
	MinIInterval         *int32                   `json:"MinIInterval,omitempty" validate:"omitempty,min=0,max=30"`
	NumRefFrames         *int32                   `json:"NumRefFrames,omitempty" validate:"omitempty,min=1,max=6"`
	ParControl           H264ParControl           `json:"ParControl,omitempty"`
	ParDenominator       *int32                   `json:"ParDenominator,omitempty" validate:"omitempty,min=1"`
	ParNumerator         *int32                   `json:"ParNumerator,omitempty" validate:"omitempty,min=1"`
	Profile              H264Profile              `json:"Profile,omitempty"`
	QvbrQualityLevel     *int32                   `json:"QvbrQualityLevel,omitempty" validate:"omitempty,min=1,max=10"`
	RateControlMode      H264RateControlMode      `json:"RateControlMode,omitempty"`
	ScanType             H264ScanType             `json:"ScanType,omitempty"`
	SceneChangeDetect    H264SceneChangeDetect    `json:"SceneChangeDetect,omitempty"`
	Slices               *int32                   `json:"Slices,omitempty" validate:"omitempty,min=1,max=32"`
	Softness             *int32                   `json:"Softness,omitempty" validate:"omitempty,min=0,max=128"`
	SpatialAq            H264SpatialAq            `json:"SpatialAq,omitempty"`
	SubgopLength         H264SubGopLength         `json:"SubgopLength,omitempty"`
	Syntax               H264Syntax               `json:"Syntax,omitempty"`
	TemporalAq           H264TemporalAq           `json:"TemporalAq,omitempty"`
	TimecodeInsertion    H264TimecodeInsertion    `json:"TimecodeInsertion,omitempty"`
}

// H265Settings configures an HEVC encode.
type H265Settings struct {
	AdaptiveQuantization        H265AdaptiveQuantization        `json:"AdaptiveQuantization,omitempty"`
	AfdSignaling                AfdSignaling                    `json:"AfdSignaling,omitempty"`
	AlternativeTransferFunction H265AlternativeTransferFunction `json:"AlternativeTransferFunction,omitempty"`
	Bitrate                     *int32                          `json:"Bitrate,omitempty" validate:"omitempty,min=100000,max=40000000"`
	BufSize                     *int32                          `json:"BufSize,omitempty" validate:"omitempty,min=100000,max=80000000"`
	ColorMetadata               H265ColorMetadata               `json:"ColorMetadata,omitempty"`
	FlickerAq                   H265FlickerAq                   `json:"FlickerAq,omitempty"`
	FramerateDenominator        int32                           `json:"FramerateDenominator" validate:"min=1,max=3003"`
	FramerateNumerator          int32                           `json:"FramerateNumerator" validate:"min=1,max=256000"`
	GopClosedCadence            *int32                          `json:"GopClosedCadence,omitempty" validate:"omitempty,min=0"`
	GopSize                     *float64                        `json:"GopSize,omitempty"`
	GopSizeUnits                H265GopSizeUnits                `json:"GopSizeUnits,omitempty"`
	Level                       H265Level                       `json:"Level,omitempty"`
	LookAheadRateControl        H265LookAheadRateControl        `json:"LookAheadRateControl,omitempty"`
	MaxBitrate                  *int32                          `json:"MaxBitrate,omitempty" validate:"omitempty,min=100000,max=40000000"`
	MinIInterval                *int32                          `json:"MinIInterval,omitempty" validate:"omitempty,min=0,max=30"`
	ParDenominator              *int32                          `json:"ParDenominator,omitempty" validate:"omitempty,min=1"`
	ParNumerator                *int32                          `json:"ParNumerator,omitempty" validate:"omitempty,min=1"`
	Profile                     H265Profile                     `json:"Profile,omitempty"`
	QvbrQualityLevel            *int32                          `json:"QvbrQualityLevel,omitempty" validate:"omitempty,min=1,max=10"`
	RateControlMode             H265RateControlMode             `json:"RateControlMode,omitempty"`
	ScanType                    H265ScanType                    `json:"ScanType,omitempty"`
	SceneChangeDetect           H265SceneChangeDetect           `json:"SceneChangeDetect,omitempty"`
	Slices                      *int32                          `json:"Slices,omitempty" validate:"omitempty,min=1,max=16"`
	Tier                        H265Tier                        `json:"Tier,omitempty"`
	TimecodeInsertion           H265TimecodeInsertionBehavior   `json:"TimecodeInsertion,omitempty"`
}
