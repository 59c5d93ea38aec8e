package medialive

import "reflect"

// DvbNitSettings configures the DVB Network Information Table.
type DvbNitSettings struct {
	NetworkId   int32  `json:"NetworkId" validate:"min=0,max=65536"`
	NetworkName string `json:"NetworkName" validate:"min=1,max=256"`
	// Milliseconds between NIT insertions.
	RepInterval *int32 `json:"RepInterval,omitempty" validate:"omitempty,min=25,max=10000"`
}

// DvbSdtSettings configures the DVB Service Description Table.
type DvbSdtSettings struct {
	OutputSdt           DvbSdtOutputSdt `json:"OutputSdt,omitempty"`
	RepInterval         *int32          `json:"RepInterval,omitempty" validate:"omitempty,min=25,max=2000"`
	ServiceName         *string         `json:"ServiceName,omitempty" validate:"omitempty,min=1,max=256"`
	ServiceProviderName *string         `json:"ServiceProviderName,omitempty" validate:"omitempty,min=1,max=256"`
}

// DvbTdtSettings configures the DVB Time and Date Table.
type DvbTdtSettings struct {
	RepInterval *int32 `json:"RepInterval,omitempty" validate:"omitempty,min=1000,max=30000"`
}

// M2tsSettings configures an MPEG-2 transport stream.
//
// PID fields take a decimal or hex ("0x1ff") value; list-valued PID fields
// take a comma separated list. Intervals and periods are milliseconds.
type M2tsSettings struct {
	AbsentInputAudioBehavior M2tsAbsentInputAudioBehavior `json:"AbsentInputAudioBehavior,omitempty"`
	Arib                     M2tsArib                     `json:"Arib,omitempty"`
	AribCaptionsPid          *string                      `json:"AribCaptionsPid,omitempty"`
	AribCaptionsPidControl   M2tsAribCaptionsPidControl   `json:"AribCaptionsPidControl,omitempty"`
	AudioBufferModel         M2tsAudioBufferModel         `json:"AudioBufferModel,omitempty"`
	AudioFramesPerPes        *int32                       `json:"AudioFramesPerPes,omitempty" validate:"omitempty,min=0"`
	AudioPids                *string                      `json:"AudioPids,omitempty"`
	AudioStreamType          M2tsAudioStreamType          `json:"AudioStreamType,omitempty"`
	Bitrate                  *int32                       `json:"Bitrate,omitempty" validate:"omitempty,min=0"`
	BufferModel              M2tsBufferModel              `json:"BufferModel,omitempty"`
	CcDescriptor             M2tsCcDescriptor             `json:"CcDescriptor,omitempty"`
	DvbNitSettings           *DvbNitSettings              `json:"DvbNitSettings,omitempty"`
	DvbSdtSettings           *DvbSdtSettings              `json:"DvbSdtSettings,omitempty"`
	DvbSubPids               *string                      `json:"DvbSubPids,omitempty"`
	DvbTdtSettings           *DvbTdtSettings              `json:"DvbTdtSettings,omitempty"`
	DvbTeletextPid           *string                      `json:"DvbTeletextPid,omitempty"`
	Ebif                     M2tsEbifControl              `json:"Ebif,omitempty"`
	EbpAudioInterval         M2tsAudioInterval            `json:"EbpAudioInterval,omitempty"`
	EbpLookaheadMs           *int32                       `json:"EbpLookaheadMs,omitempty" validate:"omitempty,min=0,max=10000"`
	EbpPlacement             M2tsEbpPlacement             `json:"EbpPlacement,omitempty"`
	EcmPid                   *string                      `json:"EcmPid,omitempty"`
	EsRateInPes              M2tsEsRateInPes              `json:"EsRateInPes,omitempty"`
	EtvPlatformPid           *string                      `json:"EtvPlatformPid,omitempty"`
	EtvSignalPid             *string                      `json:"EtvSignalPid,omitempty"`
	FragmentTime             *float64                     `json:"FragmentTime,omitempty" validate:"omitempty,min=0"`
	Klv                      M2tsKlv                      `json:"Klv,omitempty"`
	KlvDataPids              *string                      `json:"KlvDataPids,omitempty"`
	NielsenId3Behavior       M2tsNielsenId3Behavior       `json:"NielsenId3Behavior,omitempty"`
	NullPacketBitrate        *float64                     `json:"NullPacketBitrate,omitempty" validate:"omitempty,min=0"`
	PatInterval              *int32                       `json:"PatInterval,omitempty" validate:"omitempty,min=0,max=1000"`
	PcrControl               M2tsPcrControl               `json:"PcrControl,omitempty"`
	PcrPeriod                *int32                       `json:"PcrPeriod,omitempty" validate:"omitempty,min=0,max=500"`
	PcrPid                   *string                      `json:"PcrPid,omitempty"`
	PmtInterval              *int32                       `json:"PmtInterval,omitempty" validate:"omitempty,min=0,max=1000"`
	PmtPid                   *string                      `json:"PmtPid,omitempty"`
	ProgramNum               *int32                       `json:"ProgramNum,omitempty" validate:"omitempty,min=0,max=65535"`
	RateMode                 M2tsRateMode                 `json:"RateMode,omitempty"`
	Scte27Pids               *string                      `json:"Scte27Pids,omitempty"`
	Scte35Control            M2tsScte35Control            `json:"Scte35Control,omitempty"`
	Scte35Pid                *string                      `json:"Scte35Pid,omitempty"`
	SegmentationMarkers      M2tsSegmentationMarkers      `json:"SegmentationMarkers,omitempty"`
	SegmentationStyle        M2tsSegmentationStyle        `json:"SegmentationStyle,omitempty"`
	SegmentationTime         *float64                     `json:"SegmentationTime,omitempty" validate:"omitempty,min=1"`
	TimedMetadataBehavior    M2tsTimedMetadataBehavior    `json:"TimedMetadataBehavior,omitempty"`
	TimedMetadataPid         *string                      `json:"TimedMetadataPid,omitempty"`
	TransportStreamId        *int32                       `json:"TransportStreamId,omitempty" validate:"omitempty,min=0,max=65535"`
	VideoPid                 *string                      `json:"VideoPid,omitempty"`
}

type RawSettings struct{}

// ===== Archive container union =====

type ArchiveContainerSettings struct {
	Container ArchiveContainer
}

type ArchiveContainer interface {
	Variant
	isArchiveContainer()
}

var archiveContainerUnion = newUnion("ArchiveContainerSettings", map[string]func() ArchiveContainer{
	"M2tsSettings": func() ArchiveContainer { return new(M2tsSettings) },
	"RawSettings":  func() ArchiveContainer { return new(RawSettings) },
})

func (s ArchiveContainerSettings) MarshalJSON() ([]byte, error) {
	return archiveContainerUnion.encode(s.Container)
}

func (s *ArchiveContainerSettings) UnmarshalJSON(b []byte) error {
	v, err := archiveContainerUnion.decode(b)
	if err != nil {
		return err
	}
	s.Container = v
	return nil
}

func (s ArchiveContainerSettings) Selected() (string, any) { return selected(s.Container) }

func (ArchiveContainerSettings) VariantTypes() map[string]reflect.Type {
	return archiveContainerUnion.variantTypes()
}

// ===== UDP container union =====

// UdpContainerSettings has a single known variant today; it is still a
// holder so newer container kinds decode without loss.
type UdpContainerSettings struct {
	Container UdpContainer
}

type UdpContainer interface {
	Variant
	isUdpContainer()
}

var udpContainerUnion = newUnion("UdpContainerSettings", map[string]func() UdpContainer{
	"M2tsSettings": func() UdpContainer { return new(M2tsSettings) },
})

func (s UdpContainerSettings) MarshalJSON() ([]byte, error) {
	return udpContainerUnion.encode(s.Container)
}

func (s *UdpContainerSettings) UnmarshalJSON(b []byte) error {
	v, err := udpContainerUnion.decode(b)
	if err != nil {
		return err
	}
	s.Container = v
	return nil
}

func (s UdpContainerSettings) Selected() (string, any) { return selected(s.Container) }

func (UdpContainerSettings) VariantTypes() map[string]reflect.Type {
	return udpContainerUnion.variantTypes()
}

func (*M2tsSettings) isArchiveContainer()   {}
func (*RawSettings) isArchiveContainer()    {}
func (*UnknownVariant) isArchiveContainer() {}
func (*M2tsSettings) isUdpContainer()       {}
func (*UnknownVariant) isUdpContainer()     {}

func (*M2tsSettings) WireKey() string { return "M2tsSettings" }
func (*RawSettings) WireKey() string  { return "RawSettings" }
