package medialive

import "reflect"

// HlsGroupSettings configures an HLS output group.
type HlsGroupSettings struct {
	AdMarkers               []HlsAdMarkers            `json:"AdMarkers,omitempty"`
	BaseUrlContent          *string                   `json:"BaseUrlContent,omitempty"`
	BaseUrlContent1         *string                   `json:"BaseUrlContent1,omitempty"`
	BaseUrlManifest         *string                   `json:"BaseUrlManifest,omitempty"`
	BaseUrlManifest1        *string                   `json:"BaseUrlManifest1,omitempty"`
	CaptionLanguageMappings []CaptionLanguageMapping  `json:"CaptionLanguageMappings,omitempty"`
	CaptionLanguageSetting  HlsCaptionLanguageSetting `json:"CaptionLanguageSetting,omitempty"`
	ClientCache             HlsClientCache            `json:"ClientCache,omitempty"`
	CodecSpecification      HlsCodecSpecification     `json:"CodecSpecification,omitempty"`
	// 32 hex characters. Only used with IvSource EXPLICIT.
	ConstantIv                *string                      `json:"ConstantIv,omitempty" validate:"omitempty,len=32"`
	Destination               *OutputLocationRef           `json:"Destination,omitempty" validate:"required"`
	DirectoryStructure        HlsDirectoryStructure        `json:"DirectoryStructure,omitempty"`
	DiscontinuityTags         HlsDiscontinuityTags         `json:"DiscontinuityTags,omitempty"`
	EncryptionType            HlsEncryptionType            `json:"EncryptionType,omitempty"`
	HlsCdnSettings            *HlsCdnSettings              `json:"HlsCdnSettings,omitempty"`
	HlsId3SegmentTagging      HlsId3SegmentTaggingState    `json:"HlsId3SegmentTagging,omitempty"`
	IFrameOnlyPlaylists       IFrameOnlyPlaylistType       `json:"IFrameOnlyPlaylists,omitempty"`
	IncompleteSegmentBehavior HlsIncompleteSegmentBehavior `json:"IncompleteSegmentBehavior,omitempty"`
	IndexNSegments            *int32                       `json:"IndexNSegments,omitempty" validate:"omitempty,min=3"`
	InputLossAction           InputLossActionForHlsOut     `json:"InputLossAction,omitempty"`
	IvInManifest              HlsIvInManifest              `json:"IvInManifest,omitempty"`
	IvSource                  HlsIvSource                  `json:"IvSource,omitempty"`
	KeepSegments              *int32                       `json:"KeepSegments,omitempty" validate:"omitempty,min=1"`
	KeyFormat                 *string                      `json:"KeyFormat,omitempty"`
	KeyFormatVersions         *string                      `json:"KeyFormatVersions,omitempty"`
	ManifestCompression       HlsManifestCompression       `json:"ManifestCompression,omitempty"`
	ManifestDurationFormat    HlsManifestDurationFormat    `json:"ManifestDurationFormat,omitempty"`
	MinSegmentLength          *int32                       `json:"MinSegmentLength,omitempty" validate:"omitempty,min=0"`
	Mode                      HlsMode                      `json:"Mode,omitempty"`
	OutputSelection           HlsOutputSelection           `json:"OutputSelection,omitempty"`
	ProgramDateTime           HlsProgramDateTime           `json:"ProgramDateTime,omitempty"`
	ProgramDateTimeClock      HlsProgramDateTimeClock      `json:"ProgramDateTimeClock,omitempty"`
	// Seconds between EXT-X-PROGRAM-DATE-TIME tags.
	ProgramDateTimePeriod      *int32                   `json:"ProgramDateTimePeriod,omitempty" validate:"omitempty,min=0,max=3600"`
	RedundantManifest          HlsRedundantManifest     `json:"RedundantManifest,omitempty"`
	SegmentLength              *int32                   `json:"SegmentLength,omitempty" validate:"omitempty,min=1"`
	SegmentationMode           HlsSegmentationMode      `json:"SegmentationMode,omitempty"`
	SegmentsPerSubdirectory    *int32                   `json:"SegmentsPerSubdirectory,omitempty" validate:"omitempty,min=1"`
	StreamInfResolution        HlsStreamInfResolution   `json:"StreamInfResolution,omitempty"`
	TimedMetadataId3Frame      HlsTimedMetadataId3Frame `json:"TimedMetadataId3Frame,omitempty"`
	TimedMetadataId3Period     *int32                   `json:"TimedMetadataId3Period,omitempty" validate:"omitempty,min=0"`
	TimestampDeltaMilliseconds *int32                   `json:"TimestampDeltaMilliseconds,omitempty" validate:"omitempty,min=0"`
	TsFileMode                 HlsTsFileMode            `json:"TsFileMode,omitempty"`
}

// CaptionLanguageMapping maps a CEA-608 caption channel to a language.
type CaptionLanguageMapping struct {
	CaptionChannel      int32  `json:"CaptionChannel" validate:"min=1,max=4"`
	LanguageCode        string `json:"LanguageCode" validate:"len=3"`
	LanguageDescription string `json:"LanguageDescription" validate:"min=1"`
}

// ===== CDN union =====

// HlsCdnSettings selects how segments and manifests are pushed to the origin.
type HlsCdnSettings struct {
	Cdn HlsCdn
}

type HlsCdn interface {
	Variant
	isHlsCdn()
}

var hlsCdnUnion = newUnion("HlsCdnSettings", map[string]func() HlsCdn{
	"HlsAkamaiSettings":     func() HlsCdn { return new(HlsAkamaiSettings) },
	"HlsBasicPutSettings":   func() HlsCdn { return new(HlsBasicPutSettings) },
	"HlsMediaStoreSettings": func() HlsCdn { return new(HlsMediaStoreSettings) },
	"HlsWebdavSettings":     func() HlsCdn { return new(HlsWebdavSettings) },
})

func (s HlsCdnSettings) MarshalJSON() ([]byte, error) { return hlsCdnUnion.encode(s.Cdn) }

func (s *HlsCdnSettings) UnmarshalJSON(b []byte) error {
	v, err := hlsCdnUnion.decode(b)
	if err != nil {
		return err
	}
	s.Cdn = v
	return nil
}

func (s HlsCdnSettings) Selected() (string, any) { return selected(s.Cdn) }

func (HlsCdnSettings) VariantTypes() map[string]reflect.Type { return hlsCdnUnion.variantTypes() }

func (*HlsAkamaiSettings) isHlsCdn()     {}
func (*HlsBasicPutSettings) isHlsCdn()   {}
func (*HlsMediaStoreSettings) isHlsCdn() {}
func (*HlsWebdavSettings) isHlsCdn()     {}
func (*UnknownVariant) isHlsCdn()        {}

func (*HlsAkamaiSettings) WireKey() string     { return "HlsAkamaiSettings" }
func (*HlsBasicPutSettings) WireKey() string   { return "HlsBasicPutSettings" }
func (*HlsMediaStoreSettings) WireKey() string { return "HlsMediaStoreSettings" }
func (*HlsWebdavSettings) WireKey() string     { return "HlsWebdavSettings" }

type HlsAkamaiSettings struct {
	ConnectionRetryInterval *int32                    `json:"ConnectionRetryInterval,omitempty" validate:"omitempty,min=0"`
	FilecacheDuration       *int32                    `json:"FilecacheDuration,omitempty" validate:"omitempty,min=0,max=600"`
	HttpTransferMode        HlsAkamaiHttpTransferMode `json:"HttpTransferMode,omitempty"`
	NumRetries              *int32                    `json:"NumRetries,omitempty" validate:"omitempty,min=0"`
	RestartDelay            *int32                    `json:"RestartDelay,omitempty" validate:"omitempty,min=0,max=15"`
	Salt                    *string                   `json:"Salt,omitempty"`
	Token                   *string                   `json:"Token,omitempty"`
}

type HlsBasicPutSettings struct {
	ConnectionRetryInterval *int32 `json:"ConnectionRetryInterval,omitempty" validate:"omitempty,min=0"`
	FilecacheDuration       *int32 `json:"FilecacheDuration,omitempty" validate:"omitempty,min=0,max=600"`
	NumRetries              *int32 `json:"NumRetries,omitempty" validate:"omitempty,min=0"`
	RestartDelay            *int32 `json:"RestartDelay,omitempty" validate:"omitempty,min=0,max=15"`
}

type HlsMediaStoreSettings struct {
	ConnectionRetryInterval *int32                    `json:"ConnectionRetryInterval,omitempty" validate:"omitempty,min=0"`
	FilecacheDuration       *int32                    `json:"FilecacheDuration,omitempty" validate:"omitempty,min=0,max=600"`
	MediaStoreStorageClass  HlsMediaStoreStorageClass `json:"MediaStoreStorageClass,omitempty"`
	NumRetries              *int32                    `json:"NumRetries,omitempty" validate:"omitempty,min=0"`
	RestartDelay            *int32                    `json:"RestartDelay,omitempty" validate:"omitempty,min=0,max=15"`
}

type HlsWebdavSettings struct {
	ConnectionRetryInterval *int32                    `json:"ConnectionRetryInterval,omitempty" validate:"omitempty,min=0"`
	FilecacheDuration       *int32                    `json:"FilecacheDuration,omitempty" validate:"omitempty,min=0,max=600"`
	HttpTransferMode        HlsWebdavHttpTransferMode `json:"HttpTransferMode,omitempty"`
	NumRetries              *int32                    `json:"NumRetries,omitempty" validate:"omitempty,min=0"`
	RestartDelay            *int32                    `json:"RestartDelay,omitempty" validate:"omitempty,min=0,max=15"`
}

// ===== Output settings =====

type HlsOutputSettings struct {
	H265PackagingType HlsH265PackagingType `json:"H265PackagingType,omitempty"`
	HlsSettings       *HlsSettings         `json:"HlsSettings,omitempty" validate:"required"`
	NameModifier      *string              `json:"NameModifier,omitempty" validate:"omitempty,min=1"`
	SegmentModifier   *string              `json:"SegmentModifier,omitempty"`
}

// HlsSettings selects the rendition kind of an HLS output.
type HlsSettings struct {
	Rendition HlsRendition
}

type HlsRendition interface {
	Variant
	isHlsRendition()
}

var hlsRenditionUnion = newUnion("HlsSettings", map[string]func() HlsRendition{
	"AudioOnlyHlsSettings": func() HlsRendition { return new(AudioOnlyHlsSettings) },
	"Fmp4HlsSettings":      func() HlsRendition { return new(Fmp4HlsSettings) },
	"StandardHlsSettings":  func() HlsRendition { return new(StandardHlsSettings) },
})

func (s HlsSettings) MarshalJSON() ([]byte, error) { return hlsRenditionUnion.encode(s.Rendition) }

func (s *HlsSettings) UnmarshalJSON(b []byte) error {
	v, err := hlsRenditionUnion.decode(b)
	if err != nil {
		return err
	}
	s.Rendition = v
	return nil
}

func (s HlsSettings) Selected() (string, any) { return selected(s.Rendition) }

func (HlsSettings) VariantTypes() map[string]reflect.Type { return hlsRenditionUnion.variantTypes() }

func (*AudioOnlyHlsSettings) isHlsRendition() {}
func (*Fmp4HlsSettings) isHlsRendition()      {}
func (*StandardHlsSettings) isHlsRendition()  {}
func (*UnknownVariant) isHlsRendition()       {}

func (*AudioOnlyHlsSettings) WireKey() string { return "AudioOnlyHlsSettings" }
func (*Fmp4HlsSettings) WireKey() string      { return "Fmp4HlsSettings" }
func (*StandardHlsSettings) WireKey() string  { return "StandardHlsSettings" }

type AudioOnlyHlsSettings struct {
	AudioGroupId   *string                 `json:"AudioGroupId,omitempty"`
	AudioOnlyImage *InputLocation          `json:"AudioOnlyImage,omitempty"`
	AudioTrackType AudioOnlyHlsTrackType   `json:"AudioTrackType,omitempty"`
	SegmentType    AudioOnlyHlsSegmentType `json:"SegmentType,omitempty"`
}

type Fmp4HlsSettings struct {
	AudioRenditionSets    *string                   `json:"AudioRenditionSets,omitempty"`
	NielsenId3Behavior    Fmp4NielsenId3Behavior    `json:"NielsenId3Behavior,omitempty"`
	TimedMetadataBehavior Fmp4TimedMetadataBehavior `json:"TimedMetadataBehavior,omitempty"`
}

type StandardHlsSettings struct {
	AudioRenditionSets *string       `json:"AudioRenditionSets,omitempty"`
	M3u8Settings       *M3u8Settings `json:"M3u8Settings,omitempty" validate:"required"`
}

// M3u8Settings configures the transport stream inside HLS segments.
type M3u8Settings struct {
	AudioFramesPerPes     *int32                    `json:"AudioFramesPerPes,omitempty" validate:"omitempty,min=0"`
	AudioPids             *string                   `json:"AudioPids,omitempty"`
	EcmPid                *string                   `json:"EcmPid,omitempty"`
	NielsenId3Behavior    M3u8NielsenId3Behavior    `json:"NielsenId3Behavior,omitempty"`
	PatInterval           *int32                    `json:"PatInterval,omitempty" validate:"omitempty,min=0,max=1000"`
	PcrControl            M3u8PcrControl            `json:"PcrControl,omitempty"`
	PcrPeriod             *int32                    `json:"PcrPeriod,omitempty" validate:"omitempty,min=0,max=500"`
	PcrPid                *string                   `json:"PcrPid,omitempty"`
	PmtInterval           *int32                    `json:"PmtInterval,omitempty" validate:"omitempty,min=0,max=1000"`
	PmtPid                *string                   `json:"PmtPid,omitempty"`
	ProgramNum            *int32                    `json:"ProgramNum,omitempty" validate:"omitempty,min=0,max=65535"`
	Scte35Behavior        M3u8Scte35Behavior        `json:"Scte35Behavior,omitempty"`
	Scte35Pid             *string                   `json:"Scte35Pid,omitempty"`
	TimedMetadataBehavior M3u8TimedMetadataBehavior `json:"TimedMetadataBehavior,omitempty"`
	TimedMetadataPid      *string                   `json:"TimedMetadataPid,omitempty"`
	TransportStreamId     *int32                    `json:"TransportStreamId,omitempty" validate:"omitempty,min=0,max=65535"`
	VideoPid              *string                   `json:"VideoPid,omitempty"`
}
