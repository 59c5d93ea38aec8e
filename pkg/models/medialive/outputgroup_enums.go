package medialive

type SmoothGroupAudioOnlyTimecodeControl string

const (
	SmoothGroupAudioOnlyTimecodeControlPassthrough        SmoothGroupAudioOnlyTimecodeControl = "PASSTHROUGH"
	SmoothGroupAudioOnlyTimecodeControlUseConfiguredClock SmoothGroupAudioOnlyTimecodeControl = "USE_CONFIGURED_CLOCK"
)

func (SmoothGroupAudioOnlyTimecodeControl) Values() []SmoothGroupAudioOnlyTimecodeControl {
	return []SmoothGroupAudioOnlyTimecodeControl{
		SmoothGroupAudioOnlyTimecodeControlPassthrough,
		SmoothGroupAudioOnlyTimecodeControlUseConfiguredClock,
	}
}

type SmoothGroupCertificateMode string

const (
	SmoothGroupCertificateModeSelfSigned         SmoothGroupCertificateMode = "SELF_SIGNED"
	SmoothGroupCertificateModeVerifyAuthenticity SmoothGroupCertificateMode = "VERIFY_AUTHENTICITY"
)

func (SmoothGroupCertificateMode) Values() []SmoothGroupCertificateMode {
	return []SmoothGroupCertificateMode{
		SmoothGroupCertificateModeSelfSigned,
		SmoothGroupCertificateModeVerifyAuthenticity,
	}
}

type SmoothGroupEventIdMode string

const (
	SmoothGroupEventIdModeNoEventId     SmoothGroupEventIdMode = "NO_EVENT_ID"
	SmoothGroupEventIdModeUseConfigured SmoothGroupEventIdMode = "USE_CONFIGURED"
	SmoothGroupEventIdModeUseTimestamp  SmoothGroupEventIdMode = "USE_TIMESTAMP"
)

func (SmoothGroupEventIdMode) Values() []SmoothGroupEventIdMode {
	return []SmoothGroupEventIdMode{
		SmoothGroupEventIdModeNoEventId,
		SmoothGroupEventIdModeUseConfigured,
		SmoothGroupEventIdModeUseTimestamp,
	}
}

type SmoothGroupEventStopBehavior string

const (
	SmoothGroupEventStopBehaviorNone    SmoothGroupEventStopBehavior = "NONE"
	SmoothGroupEventStopBehaviorSendEos SmoothGroupEventStopBehavior = "SEND_EOS"
)

func (SmoothGroupEventStopBehavior) Values() []SmoothGroupEventStopBehavior {
	return []SmoothGroupEventStopBehavior{
		SmoothGroupEventStopBehaviorNone,
		SmoothGroupEventStopBehaviorSendEos,
	}
}

type InputLossActionForMsSmoothOut string

const (
	InputLossActionForMsSmoothOutEmitOutput  InputLossActionForMsSmoothOut = "EMIT_OUTPUT"
	InputLossActionForMsSmoothOutPauseOutput InputLossActionForMsSmoothOut = "PAUSE_OUTPUT"
)

func (InputLossActionForMsSmoothOut) Values() []InputLossActionForMsSmoothOut {
	return []InputLossActionForMsSmoothOut{
		InputLossActionForMsSmoothOutEmitOutput,
		InputLossActionForMsSmoothOutPauseOutput,
	}
}

type SmoothGroupSegmentationMode string

const (
	SmoothGroupSegmentationModeUseInputSegmentation SmoothGroupSegmentationMode = "USE_INPUT_SEGMENTATION"
	SmoothGroupSegmentationModeUseSegmentDuration   SmoothGroupSegmentationMode = "USE_SEGMENT_DURATION"
)

func (SmoothGroupSegmentationMode) Values() []SmoothGroupSegmentationMode {
	return []SmoothGroupSegmentationMode{
		SmoothGroupSegmentationModeUseInputSegmentation,
		SmoothGroupSegmentationModeUseSegmentDuration,
	}
}

type SmoothGroupSparseTrackType string

const (
	SmoothGroupSparseTrackTypeNone                      SmoothGroupSparseTrackType = "NONE"
	SmoothGroupSparseTrackTypeScte35                    SmoothGroupSparseTrackType = "SCTE_35"
	SmoothGroupSparseTrackTypeScte35WithoutSegmentation SmoothGroupSparseTrackType = "SCTE_35_WITHOUT_SEGMENTATION"
)

func (SmoothGroupSparseTrackType) Values() []SmoothGroupSparseTrackType {
	return []SmoothGroupSparseTrackType{
		SmoothGroupSparseTrackTypeNone,
		SmoothGroupSparseTrackTypeScte35,
		SmoothGroupSparseTrackTypeScte35WithoutSegmentation,
	}
}

type SmoothGroupStreamManifestBehavior string

const (
	SmoothGroupStreamManifestBehaviorDoNotSend SmoothGroupStreamManifestBehavior = "DO_NOT_SEND"
	SmoothGroupStreamManifestBehaviorSend      SmoothGroupStreamManifestBehavior = "SEND"
)

func (SmoothGroupStreamManifestBehavior) Values() []SmoothGroupStreamManifestBehavior {
	return []SmoothGroupStreamManifestBehavior{
		SmoothGroupStreamManifestBehaviorDoNotSend,
		SmoothGroupStreamManifestBehaviorSend,
	}
}

type SmoothGroupTimestampOffsetMode string

const (
	SmoothGroupTimestampOffsetModeUseConfiguredOffset SmoothGroupTimestampOffsetMode = "USE_CONFIGURED_OFFSET"
	SmoothGroupTimestampOffsetModeUseEventStartDate   SmoothGroupTimestampOffsetMode = "USE_EVENT_START_DATE"
)

func (SmoothGroupTimestampOffsetMode) Values() []SmoothGroupTimestampOffsetMode {
	return []SmoothGroupTimestampOffsetMode{
		SmoothGroupTimestampOffsetModeUseConfiguredOffset,
		SmoothGroupTimestampOffsetModeUseEventStartDate,
	}
}

type RtmpAdMarkers string

const (
	RtmpAdMarkersOnCuePointScte35 RtmpAdMarkers = "ON_CUE_POINT_SCTE35"
)

func (RtmpAdMarkers) Values() []RtmpAdMarkers {
	return []RtmpAdMarkers{
		RtmpAdMarkersOnCuePointScte35,
	}
}

type AuthenticationScheme string

const (
	AuthenticationSchemeAkamai AuthenticationScheme = "AKAMAI"
	AuthenticationSchemeCommon AuthenticationScheme = "COMMON"
)

func (AuthenticationScheme) Values() []AuthenticationScheme {
	return []AuthenticationScheme{
		AuthenticationSchemeAkamai,
		AuthenticationSchemeCommon,
	}
}

type RtmpCacheFullBehavior string

const (
	RtmpCacheFullBehaviorDisconnectImmediately RtmpCacheFullBehavior = "DISCONNECT_IMMEDIATELY"
	RtmpCacheFullBehaviorWaitForServer         RtmpCacheFullBehavior = "WAIT_FOR_SERVER"
)

func (RtmpCacheFullBehavior) Values() []RtmpCacheFullBehavior {
	return []RtmpCacheFullBehavior{
		RtmpCacheFullBehaviorDisconnectImmediately,
		RtmpCacheFullBehaviorWaitForServer,
	}
}

type RtmpCaptionData string

const (
	RtmpCaptionDataAll                RtmpCaptionData = "ALL"
	RtmpCaptionDataField1608          RtmpCaptionData = "FIELD1_608"
	RtmpCaptionDataField1AndField2608 RtmpCaptionData = "FIELD1_AND_FIELD2_608"
)

func (RtmpCaptionData) Values() []RtmpCaptionData {
	return []RtmpCaptionData{
		RtmpCaptionDataAll,
		RtmpCaptionDataField1608,
		RtmpCaptionDataField1AndField2608,
	}
}

type InputLossActionForRtmpOut string

const (
	InputLossActionForRtmpOutEmitOutput  InputLossActionForRtmpOut = "EMIT_OUTPUT"
	InputLossActionForRtmpOutPauseOutput InputLossActionForRtmpOut = "PAUSE_OUTPUT"
)

func (InputLossActionForRtmpOut) Values() []InputLossActionForRtmpOut {
	return []InputLossActionForRtmpOut{
		InputLossActionForRtmpOutEmitOutput,
		InputLossActionForRtmpOutPauseOutput,
	}
}

type InputLossActionForUdpOut string

const (
	InputLossActionForUdpOutDropProgram InputLossActionForUdpOut = "DROP_PROGRAM"
	InputLossActionForUdpOutDropTs      InputLossActionForUdpOut = "DROP_TS"
	InputLossActionForUdpOutEmitProgram InputLossActionForUdpOut = "EMIT_PROGRAM"
)

func (InputLossActionForUdpOut) Values() []InputLossActionForUdpOut {
	return []InputLossActionForUdpOut{
		InputLossActionForUdpOutDropProgram,
		InputLossActionForUdpOutDropTs,
		InputLossActionForUdpOutEmitProgram,
	}
}

type UdpTimedMetadataId3Frame string

const (
	UdpTimedMetadataId3FrameNone UdpTimedMetadataId3Frame = "NONE"
	UdpTimedMetadataId3FramePriv UdpTimedMetadataId3Frame = "PRIV"
	UdpTimedMetadataId3FrameTdrl UdpTimedMetadataId3Frame = "TDRL"
)

func (UdpTimedMetadataId3Frame) Values() []UdpTimedMetadataId3Frame {
	return []UdpTimedMetadataId3Frame{
		UdpTimedMetadataId3FrameNone,
		UdpTimedMetadataId3FramePriv,
		UdpTimedMetadataId3FrameTdrl,
	}
}

type MsSmoothH265PackagingType string

const (
	MsSmoothH265PackagingTypeHev1 MsSmoothH265PackagingType = "HEV1"
	MsSmoothH265PackagingTypeHvc1 MsSmoothH265PackagingType = "HVC1"
)

func (MsSmoothH265PackagingType) Values() []MsSmoothH265PackagingType {
	return []MsSmoothH265PackagingType{
		MsSmoothH265PackagingTypeHev1,
		MsSmoothH265PackagingTypeHvc1,
	}
}

type RtmpOutputCertificateMode string

const (
	RtmpOutputCertificateModeSelfSigned         RtmpOutputCertificateMode = "SELF_SIGNED"
	RtmpOutputCertificateModeVerifyAuthenticity RtmpOutputCertificateMode = "VERIFY_AUTHENTICITY"
)

func (RtmpOutputCertificateMode) Values() []RtmpOutputCertificateMode {
	return []RtmpOutputCertificateMode{
		RtmpOutputCertificateModeSelfSigned,
		RtmpOutputCertificateModeVerifyAuthenticity,
	}
}

type FecOutputIncludeFec string

const (
	FecOutputIncludeFecColumn       FecOutputIncludeFec = "COLUMN"
	FecOutputIncludeFecColumnAndRow FecOutputIncludeFec = "COLUMN_AND_ROW"
)

func (FecOutputIncludeFec) Values() []FecOutputIncludeFec {
	return []FecOutputIncludeFec{
		FecOutputIncludeFecColumn,
		FecOutputIncludeFecColumnAndRow,
	}
}
