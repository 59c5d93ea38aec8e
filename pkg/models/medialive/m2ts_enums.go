package medialive

type DvbSdtOutputSdt string

const (
	DvbSdtOutputSdtSdtFollow          DvbSdtOutputSdt = "SDT_FOLLOW"
	DvbSdtOutputSdtSdtFollowIfPresent DvbSdtOutputSdt = "SDT_FOLLOW_IF_PRESENT"
	DvbSdtOutputSdtSdtManual          DvbSdtOutputSdt = "SDT_MANUAL"
	DvbSdtOutputSdtSdtNone            DvbSdtOutputSdt = "SDT_NONE"
)

func (DvbSdtOutputSdt) Values() []DvbSdtOutputSdt {
	return []DvbSdtOutputSdt{
		DvbSdtOutputSdtSdtFollow,
		DvbSdtOutputSdtSdtFollowIfPresent,
		DvbSdtOutputSdtSdtManual,
		DvbSdtOutputSdtSdtNone,
	}
}

type M2tsAbsentInputAudioBehavior string

const (
	M2tsAbsentInputAudioBehaviorDrop          M2tsAbsentInputAudioBehavior = "DROP"
	M2tsAbsentInputAudioBehaviorEncodeSilence M2tsAbsentInputAudioBehavior = "ENCODE_SILENCE"
)

func (M2tsAbsentInputAudioBehavior) Values() []M2tsAbsentInputAudioBehavior {
	return []M2tsAbsentInputAudioBehavior{
		M2tsAbsentInputAudioBehaviorDrop,
		M2tsAbsentInputAudioBehaviorEncodeSilence,
	}
}

type M2tsArib string

const (
	M2tsAribDisabled M2tsArib = "DISABLED"
	M2tsAribEnabled  M2tsArib = "ENABLED"
)

func (M2tsArib) Values() []M2tsArib {
	return []M2tsArib{
		M2tsAribDisabled,
		M2tsAribEnabled,
	}
}

type M2tsAribCaptionsPidControl string

const (
	M2tsAribCaptionsPidControlAuto          M2tsAribCaptionsPidControl = "AUTO"
	M2tsAribCaptionsPidControlUseConfigured M2tsAribCaptionsPidControl = "USE_CONFIGURED"
)

func (M2tsAribCaptionsPidControl) Values() []M2tsAribCaptionsPidControl {
	return []M2tsAribCaptionsPidControl{
		M2tsAribCaptionsPidControlAuto,
		M2tsAribCaptionsPidControlUseConfigured,
	}
}

type M2tsAudioBufferModel string

const (
	M2tsAudioBufferModelAtsc M2tsAudioBufferModel = "ATSC"
	M2tsAudioBufferModelDvb  M2tsAudioBufferModel = "DVB"
)

func (M2tsAudioBufferModel) Values() []M2tsAudioBufferModel {
	return []M2tsAudioBufferModel{
		M2tsAudioBufferModelAtsc,
		M2tsAudioBufferModelDvb,
	}
}

type M2tsAudioStreamType string

const (
	M2tsAudioStreamTypeAtsc M2tsAudioStreamType = "ATSC"
	M2tsAudioStreamTypeDvb  M2tsAudioStreamType = "DVB"
)

func (M2tsAudioStreamType) Values() []M2tsAudioStreamType {
	return []M2tsAudioStreamType{
		M2tsAudioStreamTypeAtsc,
		M2tsAudioStreamTypeDvb,
	}
}

type M2tsBufferModel string

const (
	M2tsBufferModelMultiplex M2tsBufferModel = "MULTIPLEX"
	M2tsBufferModelNone      M2tsBufferModel = "NONE"
)

func (M2tsBufferModel) Values() []M2tsBufferModel {
	return []M2tsBufferModel{
		M2tsBufferModelMultiplex,
		M2tsBufferModelNone,
	}
}

type M2tsCcDescriptor string

const (
	M2tsCcDescriptorDisabled M2tsCcDescriptor = "DISABLED"
	M2tsCcDescriptorEnabled  M2tsCcDescriptor = "ENABLED"
)

func (M2tsCcDescriptor) Values() []M2tsCcDescriptor {
	return []M2tsCcDescriptor{
		M2tsCcDescriptorDisabled,
		M2tsCcDescriptorEnabled,
	}
}

type M2tsEbifControl string

const (
	M2tsEbifControlNone        M2tsEbifControl = "NONE"
	M2tsEbifControlPassthrough M2tsEbifControl = "PASSTHROUGH"
)

func (M2tsEbifControl) Values() []M2tsEbifControl {
	return []M2tsEbifControl{
		M2tsEbifControlNone,
		M2tsEbifControlPassthrough,
	}
}

type M2tsAudioInterval string

const (
	M2tsAudioIntervalVideoAndFixedIntervals M2tsAudioInterval = "VIDEO_AND_FIXED_INTERVALS"
	M2tsAudioIntervalVideoInterval          M2tsAudioInterval = "VIDEO_INTERVAL"
)

func (M2tsAudioInterval) Values() []M2tsAudioInterval {
	return []M2tsAudioInterval{
		M2tsAudioIntervalVideoAndFixedIntervals,
		M2tsAudioIntervalVideoInterval,
	}
}

type M2tsEbpPlacement string

const (
	M2tsEbpPlacementVideoAndAudioPids M2tsEbpPlacement = "VIDEO_AND_AUDIO_PIDS"
	M2tsEbpPlacementVideoPid          M2tsEbpPlacement = "VIDEO_PID"
)

func (M2tsEbpPlacement) Values() []M2tsEbpPlacement {
	return []M2tsEbpPlacement{
		M2tsEbpPlacementVideoAndAudioPids,
		M2tsEbpPlacementVideoPid,
	}
}

type M2tsEsRateInPes string

const (
	M2tsEsRateInPesExclude M2tsEsRateInPes = "EXCLUDE"
	M2tsEsRateInPesInclude M2tsEsRateInPes = "INCLUDE"
)

func (M2tsEsRateInPes) Values() []M2tsEsRateInPes {
	return []M2tsEsRateInPes{
		M2tsEsRateInPesExclude,
		M2tsEsRateInPesInclude,
	}
}

type M2tsKlv string

const (
	M2tsKlvNone        M2tsKlv = "NONE"
	M2tsKlvPassthrough M2tsKlv = "PASSTHROUGH"
)

func (M2tsKlv) Values() []M2tsKlv {
	return []M2tsKlv{
		M2tsKlvNone,
		M2tsKlvPassthrough,
	}
}

type M2tsNielsenId3Behavior string

const (
	M2tsNielsenId3BehaviorNoPassthrough M2tsNielsenId3Behavior = "NO_PASSTHROUGH"
	M2tsNielsenId3BehaviorPassthrough   M2tsNielsenId3Behavior = "PASSTHROUGH"
)

func (M2tsNielsenId3Behavior) Values() []M2tsNielsenId3Behavior {
	return []M2tsNielsenId3Behavior{
		M2tsNielsenId3BehaviorNoPassthrough,
		M2tsNielsenId3BehaviorPassthrough,
	}
}

type M2tsPcrControl string

const (
	M2tsPcrControlConfiguredPcrPeriod M2tsPcrControl = "CONFIGURED_PCR_PERIOD"
	M2tsPcrControlPcrEveryPesPacket   M2tsPcrControl = "PCR_EVERY_PES_PACKET"
)

func (M2tsPcrControl) Values() []M2tsPcrControl {
	return []M2tsPcrControl{
		M2tsPcrControlConfiguredPcrPeriod,
		M2tsPcrControlPcrEveryPesPacket,
	}
}

type M2tsRateMode string

const (
	M2tsRateModeCbr M2tsRateMode = "CBR"
	M2tsRateModeVbr M2tsRateMode = "VBR"
)

func (M2tsRateMode) Values() []M2tsRateMode {
	return []M2tsRateMode{
		M2tsRateModeCbr,
		M2tsRateModeVbr,
	}
}

type M2tsScte35Control string

const (
	M2tsScte35ControlNone        M2tsScte35Control = "NONE"
	M2tsScte35ControlPassthrough M2tsScte35Control = "PASSTHROUGH"
)

func (M2tsScte35Control) Values() []M2tsScte35Control {
	return []M2tsScte35Control{
		M2tsScte35ControlNone,
		M2tsScte35ControlPassthrough,
	}
}

type M2tsSegmentationMarkers string

const (
	M2tsSegmentationMarkersEbp         M2tsSegmentationMarkers = "EBP"
	M2tsSegmentationMarkersEbpLegacy   M2tsSegmentationMarkers = "EBP_LEGACY"
	M2tsSegmentationMarkersNone        M2tsSegmentationMarkers = "NONE"
	M2tsSegmentationMarkersPsiSegstart M2tsSegmentationMarkers = "PSI_SEGSTART"
	M2tsSegmentationMarkersRaiAdapt    M2tsSegmentationMarkers = "RAI_ADAPT"
	M2tsSegmentationMarkersRaiSegstart M2tsSegmentationMarkers = "RAI_SEGSTART"
)

func (M2tsSegmentationMarkers) Values() []M2tsSegmentationMarkers {
	return []M2tsSegmentationMarkers{
		M2tsSegmentationMarkersEbp,
		M2tsSegmentationMarkersEbpLegacy,
		M2tsSegmentationMarkersNone,
		M2tsSegmentationMarkersPsiSegstart,
		M2tsSegmentationMarkersRaiAdapt,
		M2tsSegmentationMarkersRaiSegstart,
	}
}

type M2tsSegmentationStyle string

const (
	M2tsSegmentationStyleMaintainCadence M2tsSegmentationStyle = "MAINTAIN_CADENCE"
	M2tsSegmentationStyleResetCadence    M2tsSegmentationStyle = "RESET_CADENCE"
)

func (M2tsSegmentationStyle) Values() []M2tsSegmentationStyle {
	return []M2tsSegmentationStyle{
		M2tsSegmentationStyleMaintainCadence,
		M2tsSegmentationStyleResetCadence,
	}
}

type M2tsTimedMetadataBehavior string

const (
	M2tsTimedMetadataBehaviorNoPassthrough M2tsTimedMetadataBehavior = "NO_PASSTHROUGH"
	M2tsTimedMetadataBehaviorPassthrough   M2tsTimedMetadataBehavior = "PASSTHROUGH"
)

func (M2tsTimedMetadataBehavior) Values() []M2tsTimedMetadataBehavior {
	return []M2tsTimedMetadataBehavior{
		M2tsTimedMetadataBehaviorNoPassthrough,
		M2tsTimedMetadataBehaviorPassthrough,
	}
}
