package medialive

type VideoDescriptionRespondToAfd string

const (
	VideoDescriptionRespondToAfdNone        VideoDescriptionRespondToAfd = "NONE"
	VideoDescriptionRespondToAfdPassthrough VideoDescriptionRespondToAfd = "PASSTHROUGH"
	VideoDescriptionRespondToAfdRespond     VideoDescriptionRespondToAfd = "RESPOND"
)

func (VideoDescriptionRespondToAfd) Values() []VideoDescriptionRespondToAfd {
	return []VideoDescriptionRespondToAfd{
		VideoDescriptionRespondToAfdNone,
		VideoDescriptionRespondToAfdPassthrough,
		VideoDescriptionRespondToAfdRespond,
	}
}

type VideoDescriptionScalingBehavior string

const (
	VideoDescriptionScalingBehaviorDefault         VideoDescriptionScalingBehavior = "DEFAULT"
	VideoDescriptionScalingBehaviorStretchToOutput VideoDescriptionScalingBehavior = "STRETCH_TO_OUTPUT"
)

func (VideoDescriptionScalingBehavior) Values() []VideoDescriptionScalingBehavior {
	return []VideoDescriptionScalingBehavior{
		VideoDescriptionScalingBehaviorDefault,
		VideoDescriptionScalingBehaviorStretchToOutput,
	}
}

type FrameCaptureIntervalUnit string

const (
	FrameCaptureIntervalUnitMilliseconds FrameCaptureIntervalUnit = "MILLISECONDS"
	FrameCaptureIntervalUnitSeconds      FrameCaptureIntervalUnit = "SECONDS"
)

func (FrameCaptureIntervalUnit) Values() []FrameCaptureIntervalUnit {
	return []FrameCaptureIntervalUnit{
		FrameCaptureIntervalUnitMilliseconds,
		FrameCaptureIntervalUnitSeconds,
	}
}

// AfdSignaling is shared by the H.264 and H.265 encoders.
type AfdSignaling string

const (
	AfdSignalingAuto  AfdSignaling = "AUTO"
	AfdSignalingFixed AfdSignaling = "FIXED"
	AfdSignalingNone  AfdSignaling = "NONE"
)

func (AfdSignaling) Values() []AfdSignaling {
	return []AfdSignaling{
		AfdSignalingAuto,
		AfdSignalingFixed,
		AfdSignalingNone,
	}
}

type H264AdaptiveQuantization string

const (
	H264AdaptiveQuantizationAuto   H264AdaptiveQuantization = "AUTO"
	H264AdaptiveQuantizationHigh   H264AdaptiveQuantization = "HIGH"
	H264AdaptiveQuantizationHigher H264AdaptiveQuantization = "HIGHER"
	H264AdaptiveQuantizationLow    H264AdaptiveQuantization = "LOW"
	H264AdaptiveQuantizationMax    H264AdaptiveQuantization = "MAX"
	H264AdaptiveQuantizationMedium H264AdaptiveQuantization = "MEDIUM"
	H264AdaptiveQuantizationOff    H264AdaptiveQuantization = "OFF"
)

func (H264AdaptiveQuantization) Values() []H264AdaptiveQuantization {
	return []H264AdaptiveQuantization{
		H264AdaptiveQuantizationAuto,
		H264AdaptiveQuantizationHigh,
		H264AdaptiveQuantizationHigher,
		H264AdaptiveQuantizationLow,
		H264AdaptiveQuantizationMax,
		H264AdaptiveQuantizationMedium,
		H264AdaptiveQuantizationOff,
	}
}

type H264ColorMetadata string

const (
	H264ColorMetadataIgnore H264ColorMetadata = "IGNORE"
	H264ColorMetadataInsert H264ColorMetadata = "INSERT"
)

func (H264ColorMetadata) Values() []H264ColorMetadata {
	return []H264ColorMetadata{
		H264ColorMetadataIgnore,
		H264ColorMetadataInsert,
	}
}

type H264EntropyEncoding string

const (
	H264EntropyEncodingCabac H264EntropyEncoding = "CABAC"
	H264EntropyEncodingCavlc H264EntropyEncoding = "CAVLC"
)

func (H264EntropyEncoding) Values() []H264EntropyEncoding {
	return []H264EntropyEncoding{
		H264EntropyEncodingCabac,
		H264EntropyEncodingCavlc,
	}
}

type H264FlickerAq string

const (
	H264FlickerAqDisabled H264FlickerAq = "DISABLED"
	H264FlickerAqEnabled  H264FlickerAq = "ENABLED"
)

func (H264FlickerAq) Values() []H264FlickerAq {
	return []H264FlickerAq{
		H264FlickerAqDisabled,
		H264FlickerAqEnabled,
	}
}

type H264FramerateControl string

const (
	H264FramerateControlInitializeFromSource H264FramerateControl = "INITIALIZE_FROM_SOURCE"
	H264FramerateControlSpecified            H264FramerateControl = "SPECIFIED"
)

func (H264FramerateControl) Values() []H264FramerateControl {
	return []H264FramerateControl{
		H264FramerateControlInitializeFromSource,
		H264FramerateControlSpecified,
	}
}

type H264GopBReference string

const (
	H264GopBReferenceDisabled H264GopBReference = "DISABLED"
	H264GopBReferenceEnabled  H264GopBReference = "ENABLED"
)

func (H264GopBReference) Values() []H264GopBReference {
	return []H264GopBReference{
		H264GopBReferenceDisabled,
		H264GopBReferenceEnabled,
	}
}

type H264GopSizeUnits string

const (
	H264GopSizeUnitsFrames  H264GopSizeUnits = "FRAMES"
	H264GopSizeUnitsSeconds H264GopSizeUnits = "SECONDS"
)

func (H264GopSizeUnits) Values() []H264GopSizeUnits {
	return []H264GopSizeUnits{
		H264GopSizeUnitsFrames,
		H264GopSizeUnitsSeconds,
	}
}

type H264Level string

const (
	H264LevelH264Level1    H264Level = "H264_LEVEL_1"
	H264LevelH264Level11   H264Level = "H264_LEVEL_1_1"
	H264LevelH264Level12   H264Level = "H264_LEVEL_1_2"
	H264LevelH264Level13   H264Level = "H264_LEVEL_1_3"
	H264LevelH264Level2    H264Level = "H264_LEVEL_2"
	H264LevelH264Level21   H264Level = "H264_LEVEL_2_1"
	H264LevelH264Level22   H264Level = "H264_LEVEL_2_2"
	H264LevelH264Level3    H264Level = "H264_LEVEL_3"
	H264LevelH264Level31   H264Level = "H264_LEVEL_3_1"
	H264LevelH264Level32   H264Level = "H264_LEVEL_3_2"
	H264LevelH264Level4    H264Level = "H264_LEVEL_4"
	H264LevelH264Level41   H264Level = "H264_LEVEL_4_1"
	H264LevelH264Level42   H264Level = "H264_LEVEL_4_2"
	H264LevelH264Level5    H264Level = "H264_LEVEL_5"
	H264LevelH264Level51   H264Level = "H264_LEVEL_5_1"
	H264LevelH264Level52   H264Level = "H264_LEVEL_5_2"
	H264LevelH264LevelAuto H264Level = "H264_LEVEL_AUTO"
)

func (H264Level) Values() []H264Level {
	return []H264Level{
		H264LevelH264Level1,
		H264LevelH264Level11,
		H264LevelH264Level12,
		H264LevelH264Level13,
		H264LevelH264Level2,
		H264LevelH264Level21,
		H264LevelH264Level22,
		H264LevelH264Level3,
		H264LevelH264Level31,
		H264LevelH264Level32,
		H264LevelH264Level4,
		H264LevelH264Level41,
		H264LevelH264Level42,
		H264LevelH264Level5,
		H264LevelH264Level51,
		H264LevelH264Level52,
		H264LevelH264LevelAuto,
	}
}

type H264LookAheadRateControl string

const (
	H264LookAheadRateControlHigh   H264LookAheadRateControl = "HIGH"
	H264LookAheadRateControlLow    H264LookAheadRateControl = "LOW"
	H264LookAheadRateControlMedium H264LookAheadRateControl = "MEDIUM"
)

func (H264LookAheadRateControl) Values() []H264LookAheadRateControl {
	return []H264LookAheadRateControl{
		H264LookAheadRateControlHigh,
		H264LookAheadRateControlLow,
		H264LookAheadRateControlMedium,
	}
}

type H264ParControl string

const (
	H264ParControlInitializeFromSource H264ParControl = "INITIALIZE_FROM_SOURCE"
	H264ParControlSpecified            H264ParControl = "SPECIFIED"
)

func (H264ParControl) Values() []H264ParControl {
	return []H264ParControl{
		H264ParControlInitializeFromSource,
		H264ParControlSpecified,
	}
}

type H264Profile string

const (
	H264ProfileBaseline     H264Profile = "BASELINE"
	H264ProfileHigh         H264Profile = "HIGH"
	H264ProfileHigh10bit    H264Profile = "HIGH_10BIT"
	H264ProfileHigh422      H264Profile = "HIGH_422"
	H264ProfileHigh42210bit H264Profile = "HIGH_422_10BIT"
	H264ProfileMain         H264Profile = "MAIN"
)

func (H264Profile) Values() []H264Profile {
	return []H264Profile{
		H264ProfileBaseline,
		H264ProfileHigh,
		H264ProfileHigh10bit,
		H264ProfileHigh422,
		H264ProfileHigh42210bit,
		H264ProfileMain,
	}
}

type H264RateControlMode string

const (
	H264RateControlModeCbr       H264RateControlMode = "CBR"
	H264RateControlModeMultiplex H264RateControlMode = "MULTIPLEX"
	H264RateControlModeQvbr      H264RateControlMode = "QVBR"
	H264RateControlModeVbr       H264RateControlMode = "VBR"
)

func (H264RateControlMode) Values() []H264RateControlMode {
	return []H264RateControlMode{
		H264RateControlModeCbr,
		H264RateControlModeMultiplex,
		H264RateControlModeQvbr,
		H264RateControlModeVbr,
	}
}

type H264ScanType string

const (
	H264ScanTypeInterlaced  H264ScanType = "INTERLACED"
	H264ScanTypeProgressive H264ScanType = "PROGRESSIVE"
)

func (H264ScanType) Values() []H264ScanType {
	return []H264ScanType{
		H264ScanTypeInterlaced,
		H264ScanTypeProgressive,
	}
}

type H264SceneChangeDetect string

const (
	H264SceneChangeDetectDisabled H264SceneChangeDetect = "DISABLED"
	H264SceneChangeDetectEnabled  H264SceneChangeDetect = "ENABLED"
)

func (H264SceneChangeDetect) Values() []H264SceneChangeDetect {
	return []H264SceneChangeDetect{
		H264SceneChangeDetectDisabled,
		H264SceneChangeDetectEnabled,
	}
}

type H264SpatialAq string

const (
	H264SpatialAqDisabled H264SpatialAq = "DISABLED"
	H264SpatialAqEnabled  H264SpatialAq = "ENABLED"
)

func (H264SpatialAq) Values() []H264SpatialAq {
	return []H264SpatialAq{
		H264SpatialAqDisabled,
		H264SpatialAqEnabled,
	}
}

type H264SubGopLength string

const (
	H264SubGopLengthDynamic H264SubGopLength = "DYNAMIC"
	H264SubGopLengthFixed   H264SubGopLength = "FIXED"
)

func (H264SubGopLength) Values() []H264SubGopLength {
	return []H264SubGopLength{
		H264SubGopLengthDynamic,
		H264SubGopLengthFixed,
	}
}

type H264Syntax string

const (
	H264SyntaxDefault H264Syntax = "DEFAULT"
	H264SyntaxRp2027  H264Syntax = "RP2027"
)

func (H264Syntax) Values() []H264Syntax {
	return []H264Syntax{
		H264SyntaxDefault,
		H264SyntaxRp2027,
	}
}

type H264TemporalAq string

const (
	H264TemporalAqDisabled H264TemporalAq = "DISABLED"
	H264TemporalAqEnabled  H264TemporalAq = "ENABLED"
)

func (H264TemporalAq) Values() []H264TemporalAq {
	return []H264TemporalAq{
		H264TemporalAqDisabled,
		H264TemporalAqEnabled,
	}
}

type H264TimecodeInsertion string

const (
	H264TimecodeInsertionDisabled     H264TimecodeInsertion = "DISABLED"
	H264TimecodeInsertionPicTimingSei H264TimecodeInsertion = "PIC_TIMING_SEI"
)

func (H264TimecodeInsertion) Values() []H264TimecodeInsertion {
	return []H264TimecodeInsertion{
		H264TimecodeInsertionDisabled,
		H264TimecodeInsertionPicTimingSei,
	}
}

type H265AdaptiveQuantization string

const (
	H265AdaptiveQuantizationHigh   H265AdaptiveQuantization = "HIGH"
	H265AdaptiveQuantizationHigher H265AdaptiveQuantization = "HIGHER"
	H265AdaptiveQuantizationLow    H265AdaptiveQuantization = "LOW"
	H265AdaptiveQuantizationMax    H265AdaptiveQuantization = "MAX"
	H265AdaptiveQuantizationMedium H265AdaptiveQuantization = "MEDIUM"
	H265AdaptiveQuantizationOff    H265AdaptiveQuantization = "OFF"
)

func (H265AdaptiveQuantization) Values() []H265AdaptiveQuantization {
	return []H265AdaptiveQuantization{
		H265AdaptiveQuantizationHigh,
		H265AdaptiveQuantizationHigher,
		H265AdaptiveQuantizationLow,
		H265AdaptiveQuantizationMax,
		H265AdaptiveQuantizationMedium,
		H265AdaptiveQuantizationOff,
	}
}

type H265AlternativeTransferFunction string

const (
	H265AlternativeTransferFunctionInsert H265AlternativeTransferFunction = "INSERT"
	H265AlternativeTransferFunctionOmit   H265AlternativeTransferFunction = "OMIT"
)

func (H265AlternativeTransferFunction) Values() []H265AlternativeTransferFunction {
	return []H265AlternativeTransferFunction{
		H265AlternativeTransferFunctionInsert,
		H265AlternativeTransferFunctionOmit,
	}
}

type H265ColorMetadata string

const (
	H265ColorMetadataIgnore H265ColorMetadata = "IGNORE"
	H265ColorMetadataInsert H265ColorMetadata = "INSERT"
)

func (H265ColorMetadata) Values() []H265ColorMetadata {
	return []H265ColorMetadata{
		H265ColorMetadataIgnore,
		H265ColorMetadataInsert,
	}
}

type H265FlickerAq string

const (
	H265FlickerAqDisabled H265FlickerAq = "DISABLED"
	H265FlickerAqEnabled  H265FlickerAq = "ENABLED"
)

func (H265FlickerAq) Values() []H265FlickerAq {
	return []H265FlickerAq{
		H265FlickerAqDisabled,
		H265FlickerAqEnabled,
	}
}

type H265GopSizeUnits string

const (
	H265GopSizeUnitsFrames  H265GopSizeUnits = "FRAMES"
	H265GopSizeUnitsSeconds H265GopSizeUnits = "SECONDS"
)

func (H265GopSizeUnits) Values() []H265GopSizeUnits {
	return []H265GopSizeUnits{
		H265GopSizeUnitsFrames,
		H265GopSizeUnitsSeconds,
	}
}

type H265Level string

const (
	H265LevelH265Level1    H265Level = "H265_LEVEL_1"
	H265LevelH265Level2    H265Level = "H265_LEVEL_2"
	H265LevelH265Level21   H265Level = "H265_LEVEL_2_1"
	H265LevelH265Level3    H265Level = "H265_LEVEL_3"
	H265LevelH265Level31   H265Level = "H265_LEVEL_3_1"
	H265LevelH265Level4    H265Level = "H265_LEVEL_4"
	H265LevelH265Level41   H265Level = "H265_LEVEL_4_1"
	H265LevelH265Level5    H265Level = "H265_LEVEL_5"
	H265LevelH265Level51   H265Level = "H265_LEVEL_5_1"
	H265LevelH265Level52   H265Level = "H265_LEVEL_5_2"
	H265LevelH265Level6    H265Level = "H265_LEVEL_6"
	H265LevelH265Level61   H265Level = "H265_LEVEL_6_1"
	H265LevelH265Level62   H265Level = "H265_LEVEL_6_2"
	H265LevelH265LevelAuto H265Level = "H265_LEVEL_AUTO"
)

func (H265Level) Values() []H265Level {
	return []H265Level{
		H265LevelH265Level1,
		H265LevelH265Level2,
		H265LevelH265Level21,
		H265LevelH265Level3,
		H265LevelH265Level31,
		H265LevelH265Level4,
		H265LevelH265Level41,
		H265LevelH265Level5,
		H265LevelH265Level51,
		H265LevelH265Level52,
		H265LevelH265Level6,
		H265LevelH265Level61,
		H265LevelH265Level62,
		H265LevelH265LevelAuto,
	}
}

type H265LookAheadRateControl string

const (
	H265LookAheadRateControlHigh   H265LookAheadRateControl = "HIGH"
	H265LookAheadRateControlLow    H265LookAheadRateControl = "LOW"
	H265LookAheadRateControlMedium H265LookAheadRateControl = "MEDIUM"
)

func (H265LookAheadRateControl) Values() []H265LookAheadRateControl {
	return []H265LookAheadRateControl{
		H265LookAheadRateControlHigh,
		H265LookAheadRateControlLow,
		H265LookAheadRateControlMedium,
	}
}

type H265Profile string

const (
	H265ProfileMain      H265Profile = "MAIN"
	H265ProfileMain10bit H265Profile = "MAIN_10BIT"
)

func (H265Profile) Values() []H265Profile {
	return []H265Profile{
		H265ProfileMain,
		H265ProfileMain10bit,
	}
}

type H265RateControlMode string

const (
	H265RateControlModeCbr       H265RateControlMode = "CBR"
	H265RateControlModeMultiplex H265RateControlMode = "MULTIPLEX"
	H265RateControlModeQvbr      H265RateControlMode = "QVBR"
)

func (H265RateControlMode) Values() []H265RateControlMode {
	return []H265RateControlMode{
		H265RateControlModeCbr,
		H265RateControlModeMultiplex,
		H265RateControlModeQvbr,
	}
}

type H265ScanType string

const (
	H265ScanTypeInterlaced  H265ScanType = "INTERLACED"
	H265ScanTypeProgressive H265ScanType = "PROGRESSIVE"
)

func (H265ScanType) Values() []H265ScanType {
	return []H265ScanType{
		H265ScanTypeInterlaced,
		H265ScanTypeProgressive,
	}
}

type H265SceneChangeDetect string

const (
	H265SceneChangeDetectDisabled H265SceneChangeDetect = "DISABLED"
	H265SceneChangeDetectEnabled  H265SceneChangeDetect = "ENABLED"
)

func (H265SceneChangeDetect) Values() []H265SceneChangeDetect {
	return []H265SceneChangeDetect{
		H265SceneChangeDetectDisabled,
		H265SceneChangeDetectEnabled,
	}
}

type H265Tier string

const (
	H265TierHigh H265Tier = "HIGH"
	H265TierMain H265Tier = "MAIN"
)

func (H265Tier) Values() []H265Tier {
	return []H265Tier{
		H265TierHigh,
		H265TierMain,
	}
}

type H265TimecodeInsertionBehavior string

const (
	H265TimecodeInsertionBehaviorDisabled     H265TimecodeInsertionBehavior = "DISABLED"
	H265TimecodeInsertionBehaviorPicTimingSei H265TimecodeInsertionBehavior = "PIC_TIMING_SEI"
)

func (H265TimecodeInsertionBehavior) Values() []H265TimecodeInsertionBehavior {
	return []H265TimecodeInsertionBehavior{
		H265TimecodeInsertionBehaviorDisabled,
		H265TimecodeInsertionBehaviorPicTimingSei,
	}
}
