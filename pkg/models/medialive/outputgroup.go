package medialive

import "reflect"

type OutputGroup struct {
	// Custom name for the group. Shown in the console only.
	Name                *string              `json:"Name,omitempty" validate:"omitempty,max=32"`
	OutputGroupSettings *OutputGroupSettings `json:"OutputGroupSettings,omitempty" validate:"required"`
	Outputs             []Output             `json:"Outputs,omitempty" validate:"required"`
}

type Output struct {
	AudioDescriptionNames   []string        `json:"AudioDescriptionNames,omitempty"`
	CaptionDescriptionNames []string        `json:"CaptionDescriptionNames,omitempty"`
	OutputName              *string         `json:"OutputName,omitempty" validate:"omitempty,min=1,max=255"`
	OutputSettings          *OutputSettings `json:"OutputSettings,omitempty" validate:"required"`
	VideoDescriptionName    *string         `json:"VideoDescriptionName,omitempty"`
}

// OutputLocationRef points at an OutputDestination of the channel by id.
type OutputLocationRef struct {
	DestinationRefId *string `json:"DestinationRefId,omitempty"`
}

// OutputDestination is where one output group delivers. Exactly one of the
// settings lists is expected to be populated, depending on the group type.
type OutputDestination struct {
	Id                   *string                                     `json:"Id,omitempty"`
	MediaPackageSettings []MediaPackageOutputDestinationSettings     `json:"MediaPackageSettings,omitempty"`
	MultiplexSettings    *MultiplexProgramChannelDestinationSettings `json:"MultiplexSettings,omitempty"`
	Settings             []OutputDestinationSettings                 `json:"Settings,omitempty"`
}

type OutputDestinationSettings struct {
	PasswordParam *string `json:"PasswordParam,omitempty"`
	StreamName    *string `json:"StreamName,omitempty"`
	Url           *string `json:"Url,omitempty" validate:"omitempty,avurl"`
	Username      *string `json:"Username,omitempty"`
}

type MediaPackageOutputDestinationSettings struct {
	ChannelId *string `json:"ChannelId,omitempty" validate:"omitempty,min=1"`
}

type MultiplexProgramChannelDestinationSettings struct {
	MultiplexId *string `json:"MultiplexId,omitempty" validate:"omitempty,min=1"`
	ProgramName *string `json:"ProgramName,omitempty" validate:"omitempty,min=1"`
}

// ===== Output group settings union =====

type OutputGroupSettings struct {
	Group OutputGroupKind
}

type OutputGroupKind interface {
	Variant
	isOutputGroupKind()
}

var outputGroupUnion = newUnion("OutputGroupSettings", map[string]func() OutputGroupKind{
	"ArchiveGroupSettings":      func() OutputGroupKind { return new(ArchiveGroupSettings) },
	"FrameCaptureGroupSettings": func() OutputGroupKind { return new(FrameCaptureGroupSettings) },
	"HlsGroupSettings":          func() OutputGroupKind { return new(HlsGroupSettings) },
	"MediaPackageGroupSettings": func() OutputGroupKind { return new(MediaPackageGroupSettings) },
	"MsSmoothGroupSettings":     func() OutputGroupKind { return new(MsSmoothGroupSettings) },
	"MultiplexGroupSettings":    func() OutputGroupKind { return new(MultiplexGroupSettings) },
	"RtmpGroupSettings":         func() OutputGroupKind { return new(RtmpGroupSettings) },
	"UdpGroupSettings":          func() OutputGroupKind { return new(UdpGroupSettings) },
})

func (s OutputGroupSettings) MarshalJSON() ([]byte, error) { return outputGroupUnion.encode(s.Group) }

func (s *OutputGroupSettings) UnmarshalJSON(b []byte) error {
	v, err := outputGroupUnion.decode(b)
	if err != nil {
		return err
	}
	s.Group = v
	return nil
}

func (s OutputGroupSettings) Selected() (string, any) { return selected(s.Group) }

func (OutputGroupSettings) VariantTypes() map[string]reflect.Type {
	return outputGroupUnion.variantTypes()
}

func (*ArchiveGroupSettings) isOutputGroupKind()      {}
func (*FrameCaptureGroupSettings) isOutputGroupKind() {}
func (*HlsGroupSettings) isOutputGroupKind()          {}
func (*MediaPackageGroupSettings) isOutputGroupKind() {}
func (*MsSmoothGroupSettings) isOutputGroupKind()     {}
func (*MultiplexGroupSettings) isOutputGroupKind()    {}
func (*RtmpGroupSettings) isOutputGroupKind()         {}
func (*UdpGroupSettings) isOutputGroupKind()          {}
func (*UnknownVariant) isOutputGroupKind()            {}

func (*ArchiveGroupSettings) WireKey() string      { return "ArchiveGroupSettings" }
func (*FrameCaptureGroupSettings) WireKey() string { return "FrameCaptureGroupSettings" }
func (*HlsGroupSettings) WireKey() string          { return "HlsGroupSettings" }
func (*MediaPackageGroupSettings) WireKey() string { return "MediaPackageGroupSettings" }
func (*MsSmoothGroupSettings) WireKey() string     { return "MsSmoothGroupSettings" }
func (*MultiplexGroupSettings) WireKey() string    { return "MultiplexGroupSettings" }
func (*RtmpGroupSettings) WireKey() string         { return "RtmpGroupSettings" }
func (*UdpGroupSettings) WireKey() string          { return "UdpGroupSettings" }

type ArchiveGroupSettings struct {
	Destination *OutputLocationRef `json:"Destination,omitempty" validate:"required"`
	// Seconds per archive file.
	RolloverInterval *int32 `json:"RolloverInterval,omitempty" validate:"omitempty,min=1"`
}

type FrameCaptureGroupSettings struct {
	Destination *OutputLocationRef `json:"Destination,omitempty" validate:"required"`
}

type MediaPackageGroupSettings struct {
	Destination *OutputLocationRef `json:"Destination,omitempty" validate:"required"`
}

type MsSmoothGroupSettings struct {
	AcquisitionPointId       *string                             `json:"AcquisitionPointId,omitempty"`
	AudioOnlyTimecodeControl SmoothGroupAudioOnlyTimecodeControl `json:"AudioOnlyTimecodeControl,omitempty"`
	CertificateMode          SmoothGroupCertificateMode          `json:"CertificateMode,omitempty"`
	ConnectionRetryInterval  *int32                              `json:"ConnectionRetryInterval,omitempty" validate:"omitempty,min=0"`
	Destination              *OutputLocationRef                  `json:"Destination,omitempty" validate:"required"`
	EventId                  *string                             `json:"EventId,omitempty"`
	EventIdMode              SmoothGroupEventIdMode              `json:"EventIdMode,omitempty"`
	EventStopBehavior        SmoothGroupEventStopBehavior        `json:"EventStopBehavior,omitempty"`
	FilecacheDuration        *int32                              `json:"FilecacheDuration,omitempty" validate:"omitempty,min=0"`
	FragmentLength           *int32                              `json:"FragmentLength,omitempty" validate:"omitempty,min=1"`
	InputLossAction          InputLossActionForMsSmoothOut       `json:"InputLossAction,omitempty"`
	NumRetries               *int32                              `json:"NumRetries,omitempty" validate:"omitempty,min=0"`
	RestartDelay             *int32                              `json:"RestartDelay,omitempty" validate:"omitempty,min=0"`
	SegmentationMode         SmoothGroupSegmentationMode         `json:"SegmentationMode,omitempty"`
	SendDelayMs              *int32                              `json:"SendDelayMs,omitempty" validate:"omitempty,min=0,max=10000"`
	SparseTrackType          SmoothGroupSparseTrackType          `json:"SparseTrackType,omitempty"`
	StreamManifestBehavior   SmoothGroupStreamManifestBehavior   `json:"StreamManifestBehavior,omitempty"`
	TimestampOffset          *string                             `json:"TimestampOffset,omitempty"`
	TimestampOffsetMode      SmoothGroupTimestampOffsetMode      `json:"TimestampOffsetMode,omitempty"`
}

type MultiplexGroupSettings struct{}

type RtmpGroupSettings struct {
	AdMarkers            []RtmpAdMarkers           `json:"AdMarkers,omitempty"`
	AuthenticationScheme AuthenticationScheme      `json:"AuthenticationScheme,omitempty"`
	CacheFullBehavior    RtmpCacheFullBehavior     `json:"CacheFullBehavior,omitempty"`
	CacheLength          *int32                    `json:"CacheLength,omitempty" validate:"omitempty,min=30"`
	CaptionData          RtmpCaptionData           `json:"CaptionData,omitempty"`
	InputLossAction      InputLossActionForRtmpOut `json:"InputLossAction,omitempty"`
	RestartDelay         *int32                    `json:"RestartDelay,omitempty" validate:"omitempty,min=0"`
}

type UdpGroupSettings struct {
	InputLossAction        InputLossActionForUdpOut `json:"InputLossAction,omitempty"`
	TimedMetadataId3Frame  UdpTimedMetadataId3Frame `json:"TimedMetadataId3Frame,omitempty"`
	TimedMetadataId3Period *int32                   `json:"TimedMetadataId3Period,omitempty" validate:"omitempty,min=0"`
}

// ===== Output settings union =====

type OutputSettings struct {
	Output OutputKind
}

type OutputKind interface {
	Variant
	isOutputKind()
}

var outputUnion = newUnion("OutputSettings", map[string]func() OutputKind{
	"ArchiveOutputSettings":      func() OutputKind { return new(ArchiveOutputSettings) },
	"FrameCaptureOutputSettings": func() OutputKind { return new(FrameCaptureOutputSettings) },
	"HlsOutputSettings":          func() OutputKind { return new(HlsOutputSettings) },
	"MediaPackageOutputSettings": func() OutputKind { return new(MediaPackageOutputSettings) },
	"MsSmoothOutputSettings":     func() OutputKind { return new(MsSmoothOutputSettings) },
	"MultiplexOutputSettings":    func() OutputKind { return new(MultiplexOutputSettings) },
	"RtmpOutputSettings":         func() OutputKind { return new(RtmpOutputSettings) },
	"UdpOutputSettings":          func() OutputKind { return new(UdpOutputSettings) },
})

func (s OutputSettings) MarshalJSON() ([]byte, error) { return outputUnion.encode(s.Output) }

func (s *OutputSettings) UnmarshalJSON(b []byte) error {
	v, err := outputUnion.decode(b)
	if err != nil {
		return err
	}
	s.Output = v
	return nil
}

func (s OutputSettings) Selected() (string, any) { return selected(s.Output) }

func (OutputSettings) VariantTypes() map[string]reflect.Type { return outputUnion.variantTypes() }

func (*ArchiveOutputSettings) isOutputKind()      {}
func (*FrameCaptureOutputSettings) isOutputKind() {}
func (*HlsOutputSettings) isOutputKind()          {}
func (*MediaPackageOutputSettings) isOutputKind() {}
func (*MsSmoothOutputSettings) isOutputKind()     {}
func (*MultiplexOutputSettings) isOutputKind()    {}
func (*RtmpOutputSettings) isOutputKind()         {}
func (*UdpOutputSettings) isOutputKind()          {}
func (*UnknownVariant) isOutputKind()             {}

func (*ArchiveOutputSettings) WireKey() string      { return "ArchiveOutputSettings" }
func (*FrameCaptureOutputSettings) WireKey() string { return "FrameCaptureOutputSettings" }
func (*HlsOutputSettings) WireKey() string          { return "HlsOutputSettings" }
func (*MediaPackageOutputSettings) WireKey() string { return "MediaPackageOutputSettings" }
func (*MsSmoothOutputSettings) WireKey() string     { return "MsSmoothOutputSettings" }
func (*MultiplexOutputSettings) WireKey() string    { return "MultiplexOutputSettings" }
func (*RtmpOutputSettings) WireKey() string         { return "RtmpOutputSettings" }
func (*UdpOutputSettings) WireKey() string          { return "UdpOutputSettings" }

type ArchiveOutputSettings struct {
	ContainerSettings *ArchiveContainerSettings `json:"ContainerSettings,omitempty" validate:"required"`
	Extension         *string                   `json:"Extension,omitempty"`
	NameModifier      *string                   `json:"NameModifier,omitempty"`
}

type FrameCaptureOutputSettings struct {
	NameModifier *string `json:"NameModifier,omitempty"`
}

type MediaPackageOutputSettings struct{}

type MsSmoothOutputSettings struct {
	H265PackagingType MsSmoothH265PackagingType `json:"H265PackagingType,omitempty"`
	NameModifier      *string                   `json:"NameModifier,omitempty"`
}

type MultiplexOutputSettings struct {
	Destination *OutputLocationRef `json:"Destination,omitempty" validate:"required"`
}

type RtmpOutputSettings struct {
	CertificateMode         RtmpOutputCertificateMode `json:"CertificateMode,omitempty"`
	ConnectionRetryInterval *int32                    `json:"ConnectionRetryInterval,omitempty" validate:"omitempty,min=1"`
	Destination             *OutputLocationRef        `json:"Destination,omitempty" validate:"required"`
	NumRetries              *int32                    `json:"NumRetries,omitempty" validate:"omitempty,min=0"`
}

type UdpOutputSettings struct {
	// Milliseconds of UDP buffering.
	BufferMsec        *int32                `json:"BufferMsec,omitempty" validate:"omitempty,min=0,max=10000"`
	ContainerSettings *UdpContainerSettings `json:"ContainerSettings,omitempty" validate:"required"`
	Destination       *OutputLocationRef    `json:"Destination,omitempty" validate:"required"`
	FecOutputSettings *FecOutputSettings    `json:"FecOutputSettings,omitempty"`
}

// FecOutputSettings configures SMPTE 2022-1 forward error correction.
type FecOutputSettings struct {
	ColumnDepth *int32              `json:"ColumnDepth,omitempty" validate:"omitempty,min=4,max=20"`
	IncludeFec  FecOutputIncludeFec `json:"IncludeFec,omitempty"`
	RowLength   *int32              `json:"RowLength,omitempty" validate:"omitempty,min=1,max=20"`
}
