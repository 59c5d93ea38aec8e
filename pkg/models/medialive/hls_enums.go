package medialive

type HlsAdMarkers string

const (
	HlsAdMarkersAdobe           HlsAdMarkers = "ADOBE"
	HlsAdMarkersElemental       HlsAdMarkers = "ELEMENTAL"
	HlsAdMarkersElementalScte35 HlsAdMarkers = "ELEMENTAL_SCTE35"
)

func (HlsAdMarkers) Values() []HlsAdMarkers {
	return []HlsAdMarkers{
		HlsAdMarkersAdobe,
		HlsAdMarkersElemental,
		HlsAdMarkersElementalScte35,
	}
}

type HlsCaptionLanguageSetting string

const (
	HlsCaptionLanguageSettingInsert HlsCaptionLanguageSetting = "INSERT"
	HlsCaptionLanguageSettingNone   HlsCaptionLanguageSetting = "NONE"
	HlsCaptionLanguageSettingOmit   HlsCaptionLanguageSetting = "OMIT"
)

func (HlsCaptionLanguageSetting) Values() []HlsCaptionLanguageSetting {
	return []HlsCaptionLanguageSetting{
		HlsCaptionLanguageSettingInsert,
		HlsCaptionLanguageSettingNone,
		HlsCaptionLanguageSettingOmit,
	}
}

type HlsClientCache string

const (
	HlsClientCacheDisabled HlsClientCache = "DISABLED"
	HlsClientCacheEnabled  HlsClientCache = "ENABLED"
)

func (HlsClientCache) Values() []HlsClientCache {
	return []HlsClientCache{
		HlsClientCacheDisabled,
		HlsClientCacheEnabled,
	}
}

type HlsCodecSpecification string

const (
	HlsCodecSpecificationRfc4281 HlsCodecSpecification = "RFC_4281"
	HlsCodecSpecificationRfc6381 HlsCodecSpecification = "RFC_6381"
)

func (HlsCodecSpecification) Values() []HlsCodecSpecification {
	return []HlsCodecSpecification{
		HlsCodecSpecificationRfc4281,
		HlsCodecSpecificationRfc6381,
	}
}

type HlsDirectoryStructure string

const (
	HlsDirectoryStructureSingleDirectory       HlsDirectoryStructure = "SINGLE_DIRECTORY"
	HlsDirectoryStructureSubdirectoryPerStream HlsDirectoryStructure = "SUBDIRECTORY_PER_STREAM"
)

func (HlsDirectoryStructure) Values() []HlsDirectoryStructure {
	return []HlsDirectoryStructure{
		HlsDirectoryStructureSingleDirectory,
		HlsDirectoryStructureSubdirectoryPerStream,
	}
}

type HlsDiscontinuityTags string

const (
	HlsDiscontinuityTagsInsert      HlsDiscontinuityTags = "INSERT"
	HlsDiscontinuityTagsNeverInsert HlsDiscontinuityTags = "NEVER_INSERT"
)

func (HlsDiscontinuityTags) Values() []HlsDiscontinuityTags {
	return []HlsDiscontinuityTags{
		HlsDiscontinuityTagsInsert,
		HlsDiscontinuityTagsNeverInsert,
	}
}

type HlsEncryptionType string

const (
	HlsEncryptionTypeAes128    HlsEncryptionType = "AES128"
	HlsEncryptionTypeSampleAes HlsEncryptionType = "SAMPLE_AES"
)

func (HlsEncryptionType) Values() []HlsEncryptionType {
	return []HlsEncryptionType{
		HlsEncryptionTypeAes128,
		HlsEncryptionTypeSampleAes,
	}
}

type HlsId3SegmentTaggingState string

const (
	HlsId3SegmentTaggingStateDisabled HlsId3SegmentTaggingState = "DISABLED"
	HlsId3SegmentTaggingStateEnabled  HlsId3SegmentTaggingState = "ENABLED"
)

func (HlsId3SegmentTaggingState) Values() []HlsId3SegmentTaggingState {
	return []HlsId3SegmentTaggingState{
		HlsId3SegmentTaggingStateDisabled,
		HlsId3SegmentTaggingStateEnabled,
	}
}

type IFrameOnlyPlaylistType string

const (
	IFrameOnlyPlaylistTypeDisabled IFrameOnlyPlaylistType = "DISABLED"
	IFrameOnlyPlaylistTypeStandard IFrameOnlyPlaylistType = "STANDARD"
)

func (IFrameOnlyPlaylistType) Values() []IFrameOnlyPlaylistType {
	return []IFrameOnlyPlaylistType{
		IFrameOnlyPlaylistTypeDisabled,
		IFrameOnlyPlaylistTypeStandard,
	}
}

type HlsIncompleteSegmentBehavior string

const (
	HlsIncompleteSegmentBehaviorAuto     HlsIncompleteSegmentBehavior = "AUTO"
	HlsIncompleteSegmentBehaviorSuppress HlsIncompleteSegmentBehavior = "SUPPRESS"
)

func (HlsIncompleteSegmentBehavior) Values() []HlsIncompleteSegmentBehavior {
	return []HlsIncompleteSegmentBehavior{
		HlsIncompleteSegmentBehaviorAuto,
		HlsIncompleteSegmentBehaviorSuppress,
	}
}

type InputLossActionForHlsOut string

const (
	InputLossActionForHlsOutEmitOutput  InputLossActionForHlsOut = "EMIT_OUTPUT"
	InputLossActionForHlsOutPauseOutput InputLossActionForHlsOut = "PAUSE_OUTPUT"
)

func (InputLossActionForHlsOut) Values() []InputLossActionForHlsOut {
	return []InputLossActionForHlsOut{
		InputLossActionForHlsOutEmitOutput,
		InputLossActionForHlsOutPauseOutput,
	}
}

type HlsIvInManifest string

const (
	HlsIvInManifestExclude HlsIvInManifest = "EXCLUDE"
	HlsIvInManifestInclude HlsIvInManifest = "INCLUDE"
)

func (HlsIvInManifest) Values() []HlsIvInManifest {
	return []HlsIvInManifest{
		HlsIvInManifestExclude,
		HlsIvInManifestInclude,
	}
}

type HlsIvSource string

const (
	HlsIvSourceExplicit             HlsIvSource = "EXPLICIT"
	HlsIvSourceFollowsSegmentNumber HlsIvSource = "FOLLOWS_SEGMENT_NUMBER"
)

func (HlsIvSource) Values() []HlsIvSource {
	return []HlsIvSource{
		HlsIvSourceExplicit,
		HlsIvSourceFollowsSegmentNumber,
	}
}

type HlsManifestCompression string

const (
	HlsManifestCompressionGzip HlsManifestCompression = "GZIP"
	HlsManifestCompressionNone HlsManifestCompression = "NONE"
)

func (HlsManifestCompression) Values() []HlsManifestCompression {
	return []HlsManifestCompression{
		HlsManifestCompressionGzip,
		HlsManifestCompressionNone,
	}
}

type HlsManifestDurationFormat string

const (
	HlsManifestDurationFormatFloatingPoint HlsManifestDurationFormat = "FLOATING_POINT"
	HlsManifestDurationFormatInteger       HlsManifestDurationFormat = "INTEGER"
)

func (HlsManifestDurationFormat) Values() []HlsManifestDurationFormat {
	return []HlsManifestDurationFormat{
		HlsManifestDurationFormatFloatingPoint,
		HlsManifestDurationFormatInteger,
	}
}

type HlsMode string

const (
	HlsModeLive HlsMode = "LIVE"
	HlsModeVod  HlsMode = "VOD"
)

func (HlsMode) Values() []HlsMode {
	return []HlsMode{
		HlsModeLive,
		HlsModeVod,
	}
}

type HlsOutputSelection string

const (
	HlsOutputSelectionManifestsAndSegments        HlsOutputSelection = "MANIFESTS_AND_SEGMENTS"
	HlsOutputSelectionSegmentsOnly                HlsOutputSelection = "SEGMENTS_ONLY"
	HlsOutputSelectionVariantManifestsAndSegments HlsOutputSelection = "VARIANT_MANIFESTS_AND_SEGMENTS"
)

func (HlsOutputSelection) Values() []HlsOutputSelection {
	return []HlsOutputSelection{
		HlsOutputSelectionManifestsAndSegments,
		HlsOutputSelectionSegmentsOnly,
		HlsOutputSelectionVariantManifestsAndSegments,
	}
}

type HlsProgramDateTime string

const (
	HlsProgramDateTimeExclude HlsProgramDateTime = "EXCLUDE"
	HlsProgramDateTimeInclude HlsProgramDateTime = "INCLUDE"
)

func (HlsProgramDateTime) Values() []HlsProgramDateTime {
	return []HlsProgramDateTime{
		HlsProgramDateTimeExclude,
		HlsProgramDateTimeInclude,
	}
}

type HlsProgramDateTimeClock string

const (
	HlsProgramDateTimeClockInitializeFromOutputTimecode HlsProgramDateTimeClock = "INITIALIZE_FROM_OUTPUT_TIMECODE"
	HlsProgramDateTimeClockSystemClock                  HlsProgramDateTimeClock = "SYSTEM_CLOCK"
)

func (HlsProgramDateTimeClock) Values() []HlsProgramDateTimeClock {
	return []HlsProgramDateTimeClock{
		HlsProgramDateTimeClockInitializeFromOutputTimecode,
		HlsProgramDateTimeClockSystemClock,
	}
}

type HlsRedundantManifest string

const (
	HlsRedundantManifestDisabled HlsRedundantManifest = "DISABLED"
	HlsRedundantManifestEnabled  HlsRedundantManifest = "ENABLED"
)

func (HlsRedundantManifest) Values() []HlsRedundantManifest {
	return []HlsRedundantManifest{
		HlsRedundantManifestDisabled,
		HlsRedundantManifestEnabled,
	}
}

type HlsSegmentationMode string

const (
	HlsSegmentationModeUseInputSegmentation HlsSegmentationMode = "USE_INPUT_SEGMENTATION"
	HlsSegmentationModeUseSegmentDuration   HlsSegmentationMode = "USE_SEGMENT_DURATION"
)

func (HlsSegmentationMode) Values() []HlsSegmentationMode {
	return []HlsSegmentationMode{
		HlsSegmentationModeUseInputSegmentation,
		HlsSegmentationModeUseSegmentDuration,
	}
}

type HlsStreamInfResolution string

const (
	HlsStreamInfResolutionExclude HlsStreamInfResolution = "EXCLUDE"
	HlsStreamInfResolutionInclude HlsStreamInfResolution = "INCLUDE"
)

func (HlsStreamInfResolution) Values() []HlsStreamInfResolution {
	return []HlsStreamInfResolution{
		HlsStreamInfResolutionExclude,
		HlsStreamInfResolutionInclude,
	}
}

type HlsTimedMetadataId3Frame string

const (
	HlsTimedMetadataId3FrameNone HlsTimedMetadataId3Frame = "NONE"
	HlsTimedMetadataId3FramePriv HlsTimedMetadataId3Frame = "PRIV"
	HlsTimedMetadataId3FrameTdrl HlsTimedMetadataId3Frame = "TDRL"
)

func (HlsTimedMetadataId3Frame) Values() []HlsTimedMetadataId3Frame {
	return []HlsTimedMetadataId3Frame{
		HlsTimedMetadataId3FrameNone,
		HlsTimedMetadataId3FramePriv,
		HlsTimedMetadataId3FrameTdrl,
	}
}

type HlsTsFileMode string

const (
	HlsTsFileModeSegmentedFiles HlsTsFileMode = "SEGMENTED_FILES"
	HlsTsFileModeSingleFile     HlsTsFileMode = "SINGLE_FILE"
)

func (HlsTsFileMode) Values() []HlsTsFileMode {
	return []HlsTsFileMode{
		HlsTsFileModeSegmentedFiles,
		HlsTsFileModeSingleFile,
	}
}

type HlsAkamaiHttpTransferMode string

const (
	HlsAkamaiHttpTransferModeChunked    HlsAkamaiHttpTransferMode = "CHUNKED"
	HlsAkamaiHttpTransferModeNonChunked HlsAkamaiHttpTransferMode = "NON_CHUNKED"
)

func (HlsAkamaiHttpTransferMode) Values() []HlsAkamaiHttpTransferMode {
	return []HlsAkamaiHttpTransferMode{
		HlsAkamaiHttpTransferModeChunked,
		HlsAkamaiHttpTransferModeNonChunked,
	}
}

type HlsMediaStoreStorageClass string

const (
	HlsMediaStoreStorageClassTemporal HlsMediaStoreStorageClass = "TEMPORAL"
)

func (HlsMediaStoreStorageClass) Values() []HlsMediaStoreStorageClass {
	return []HlsMediaStoreStorageClass{
		HlsMediaStoreStorageClassTemporal,
	}
}

type HlsWebdavHttpTransferMode string

const (
	HlsWebdavHttpTransferModeChunked    HlsWebdavHttpTransferMode = "CHUNKED"
	HlsWebdavHttpTransferModeNonChunked HlsWebdavHttpTransferMode = "NON_CHUNKED"
)

func (HlsWebdavHttpTransferMode) Values() []HlsWebdavHttpTransferMode {
	return []HlsWebdavHttpTransferMode{
		HlsWebdavHttpTransferModeChunked,
		HlsWebdavHttpTransferModeNonChunked,
	}
}

type HlsH265PackagingType string

const (
	HlsH265PackagingTypeHev1 HlsH265PackagingType = "HEV1"
	HlsH265PackagingTypeHvc1 HlsH265PackagingType = "HVC1"
)

func (HlsH265PackagingType) Values() []HlsH265PackagingType {
	return []HlsH265PackagingType{
		HlsH265PackagingTypeHev1,
		HlsH265PackagingTypeHvc1,
	}
}

type AudioOnlyHlsTrackType string

const (
	AudioOnlyHlsTrackTypeAlternateAudioAutoSelect        AudioOnlyHlsTrackType = "ALTERNATE_AUDIO_AUTO_SELECT"
	AudioOnlyHlsTrackTypeAlternateAudioAutoSelectDefault AudioOnlyHlsTrackType = "ALTERNATE_AUDIO_AUTO_SELECT_DEFAULT"
	AudioOnlyHlsTrackTypeAlternateAudioNotAutoSelect     AudioOnlyHlsTrackType = "ALTERNATE_AUDIO_NOT_AUTO_SELECT"
	AudioOnlyHlsTrackTypeAudioOnlyVariantStream          AudioOnlyHlsTrackType = "AUDIO_ONLY_VARIANT_STREAM"
)

func (AudioOnlyHlsTrackType) Values() []AudioOnlyHlsTrackType {
	return []AudioOnlyHlsTrackType{
		AudioOnlyHlsTrackTypeAlternateAudioAutoSelect,
		AudioOnlyHlsTrackTypeAlternateAudioAutoSelectDefault,
		AudioOnlyHlsTrackTypeAlternateAudioNotAutoSelect,
		AudioOnlyHlsTrackTypeAudioOnlyVariantStream,
	}
}

type AudioOnlyHlsSegmentType string

const (
	AudioOnlyHlsSegmentTypeAac  AudioOnlyHlsSegmentType = "AAC"
	AudioOnlyHlsSegmentTypeFmp4 AudioOnlyHlsSegmentType = "FMP4"
)

func (AudioOnlyHlsSegmentType) Values() []AudioOnlyHlsSegmentType {
	return []AudioOnlyHlsSegmentType{
		AudioOnlyHlsSegmentTypeAac,
		AudioOnlyHlsSegmentTypeFmp4,
	}
}

type Fmp4NielsenId3Behavior string

const (
	Fmp4NielsenId3BehaviorNoPassthrough Fmp4NielsenId3Behavior = "NO_PASSTHROUGH"
	Fmp4NielsenId3BehaviorPassthrough   Fmp4NielsenId3Behavior = "PASSTHROUGH"
)

func (Fmp4NielsenId3Behavior) Values() []Fmp4NielsenId3Behavior {
	return []Fmp4NielsenId3Behavior{
		Fmp4NielsenId3BehaviorNoPassthrough,
		Fmp4NielsenId3BehaviorPassthrough,
	}
}

type Fmp4TimedMetadataBehavior string

const (
	Fmp4TimedMetadataBehaviorNoPassthrough Fmp4TimedMetadataBehavior = "NO_PASSTHROUGH"
	Fmp4TimedMetadataBehaviorPassthrough   Fmp4TimedMetadataBehavior = "PASSTHROUGH"
)

func (Fmp4TimedMetadataBehavior) Values() []Fmp4TimedMetadataBehavior {
	return []Fmp4TimedMetadataBehavior{
		Fmp4TimedMetadataBehaviorNoPassthrough,
		Fmp4TimedMetadataBehaviorPassthrough,
	}
}

type M3u8NielsenId3Behavior string

const (
	M3u8NielsenId3BehaviorNoPassthrough M3u8NielsenId3Behavior = "NO_PASSTHROUGH"
	M3u8NielsenId3BehaviorPassthrough   M3u8NielsenId3Behavior = "PASSTHROUGH"
)

func (M3u8NielsenId3Behavior) Values() []M3u8NielsenId3Behavior {
	return []M3u8NielsenId3Behavior{
		M3u8NielsenId3BehaviorNoPassthrough,
		M3u8NielsenId3BehaviorPassthrough,
	}
}

type M3u8PcrControl string

const (
	M3u8PcrControlConfiguredPcrPeriod M3u8PcrControl = "CONFIGURED_PCR_PERIOD"
	M3u8PcrControlPcrEveryPesPacket   M3u8PcrControl = "PCR_EVERY_PES_PACKET"
)

func (M3u8PcrControl) Values() []M3u8PcrControl {
	return []M3u8PcrControl{
		M3u8PcrControlConfiguredPcrPeriod,
		M3u8PcrControlPcrEveryPesPacket,
	}
}

type M3u8Scte35Behavior string

const (
	M3u8Scte35BehaviorNoPassthrough M3u8Scte35Behavior = "NO_PASSTHROUGH"
	M3u8Scte35BehaviorPassthrough   M3u8Scte35Behavior = "PASSTHROUGH"
)

func (M3u8Scte35Behavior) Values() []M3u8Scte35Behavior {
	return []M3u8Scte35Behavior{
		M3u8Scte35BehaviorNoPassthrough,
		M3u8Scte35BehaviorPassthrough,
	}
}

type M3u8TimedMetadataBehavior string

const (
	M3u8TimedMetadataBehaviorNoPassthrough M3u8TimedMetadataBehavior = "NO_PASSTHROUGH"
	M3u8TimedMetadataBehaviorPassthrough   M3u8TimedMetadataBehavior = "PASSTHROUGH"
)

func (M3u8TimedMetadataBehavior) Values() []M3u8TimedMetadataBehavior {
	return []M3u8TimedMetadataBehavior{
		M3u8TimedMetadataBehaviorNoPassthrough,
		M3u8TimedMetadataBehaviorPassthrough,
	}
}
