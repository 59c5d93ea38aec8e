package medialive

import (
	"reflect"
	"slices"
)

// records maps a type name to every record type of the package that can
// stand alone as a JSON document.
var records = map[string]reflect.Type{
	"AacSettings":                                    reflect.TypeFor[AacSettings](),
	"Ac3Settings":                                    reflect.TypeFor[Ac3Settings](),
	"ArchiveContainerSettings":                       reflect.TypeFor[ArchiveContainerSettings](),
	"ArchiveGroupSettings":                           reflect.TypeFor[ArchiveGroupSettings](),
	"ArchiveOutputSettings":                          reflect.TypeFor[ArchiveOutputSettings](),
	"AribDestinationSettings":                        reflect.TypeFor[AribDestinationSettings](),
	"AribSourceSettings":                             reflect.TypeFor[AribSourceSettings](),
	"AudioChannelMapping":                            reflect.TypeFor[AudioChannelMapping](),
	"AudioCodecSettings":                             reflect.TypeFor[AudioCodecSettings](),
	"AudioDescription":                               reflect.TypeFor[AudioDescription](),
	"AudioLanguageSelection":                         reflect.TypeFor[AudioLanguageSelection](),
	"AudioNormalizationSettings":                     reflect.TypeFor[AudioNormalizationSettings](),
	"AudioOnlyHlsSettings":                           reflect.TypeFor[AudioOnlyHlsSettings](),
	"AudioPidSelection":                              reflect.TypeFor[AudioPidSelection](),
	"AudioSelector":                                  reflect.TypeFor[AudioSelector](),
	"AudioSelectorSettings":                          reflect.TypeFor[AudioSelectorSettings](),
	"AudioTrack":                                     reflect.TypeFor[AudioTrack](),
	"AudioTrackSelection":                            reflect.TypeFor[AudioTrackSelection](),
	"BatchScheduleActionCreateRequest":               reflect.TypeFor[BatchScheduleActionCreateRequest](),
	"BatchScheduleActionCreateResult":                reflect.TypeFor[BatchScheduleActionCreateResult](),
	"BatchScheduleActionDeleteRequest":               reflect.TypeFor[BatchScheduleActionDeleteRequest](),
	"BatchScheduleActionDeleteResult":                reflect.TypeFor[BatchScheduleActionDeleteResult](),
	"BatchUpdateScheduleRequest":                     reflect.TypeFor[BatchUpdateScheduleRequest](),
	"BatchUpdateScheduleResponse":                    reflect.TypeFor[BatchUpdateScheduleResponse](),
	"BurnInDestinationSettings":                      reflect.TypeFor[BurnInDestinationSettings](),
	"CaptionDescription":                             reflect.TypeFor[CaptionDescription](),
	"CaptionDestinationSettings":                     reflect.TypeFor[CaptionDestinationSettings](),
	"CaptionLanguageMapping":                         reflect.TypeFor[CaptionLanguageMapping](),
	"CaptionSelector":                                reflect.TypeFor[CaptionSelector](),
	"CaptionSelectorSettings":                        reflect.TypeFor[CaptionSelectorSettings](),
	"Channel":                                        reflect.TypeFor[Channel](),
	"ChannelEgressEndpoint":                          reflect.TypeFor[ChannelEgressEndpoint](),
	"ChannelSummary":                                 reflect.TypeFor[ChannelSummary](),
	"CreateChannelRequest":                           reflect.TypeFor[CreateChannelRequest](),
	"CreateChannelResponse":                          reflect.TypeFor[CreateChannelResponse](),
	"CreateMultiplexRequest":                         reflect.TypeFor[CreateMultiplexRequest](),
	"CreateMultiplexResponse":                        reflect.TypeFor[CreateMultiplexResponse](),
	"CreateTagsRequest":                              reflect.TypeFor[CreateTagsRequest](),
	"DeleteChannelRequest":                           reflect.TypeFor[DeleteChannelRequest](),
	"DeleteChannelResponse":                          reflect.TypeFor[DeleteChannelResponse](),
	"DeleteMultiplexRequest":                         reflect.TypeFor[DeleteMultiplexRequest](),
	"DeleteMultiplexResponse":                        reflect.TypeFor[DeleteMultiplexResponse](),
	"DeleteTagsRequest":                              reflect.TypeFor[DeleteTagsRequest](),
	"DescribeChannelRequest":                         reflect.TypeFor[DescribeChannelRequest](),
	"DescribeChannelResponse":                        reflect.TypeFor[DescribeChannelResponse](),
	"DescribeMultiplexRequest":                       reflect.TypeFor[DescribeMultiplexRequest](),
	"DescribeMultiplexResponse":                      reflect.TypeFor[DescribeMultiplexResponse](),
	"DescribeScheduleRequest":                        reflect.TypeFor[DescribeScheduleRequest](),
	"DescribeScheduleResponse":                       reflect.TypeFor[DescribeScheduleResponse](),
	"DvbNitSettings":                                 reflect.TypeFor[DvbNitSettings](),
	"DvbSdtSettings":                                 reflect.TypeFor[DvbSdtSettings](),
	"DvbSubDestinationSettings":                      reflect.TypeFor[DvbSubDestinationSettings](),
	"DvbSubSourceSettings":                           reflect.TypeFor[DvbSubSourceSettings](),
	"DvbTdtSettings":                                 reflect.TypeFor[DvbTdtSettings](),
	"Eac3Settings":                                   reflect.TypeFor[Eac3Settings](),
	"EmbeddedDestinationSettings":                    reflect.TypeFor[EmbeddedDestinationSettings](),
	"EmbeddedPlusScte20DestinationSettings":          reflect.TypeFor[EmbeddedPlusScte20DestinationSettings](),
	"EmbeddedSourceSettings":                         reflect.TypeFor[EmbeddedSourceSettings](),
	"EncoderSettings":                                reflect.TypeFor[EncoderSettings](),
	"FecOutputSettings":                              reflect.TypeFor[FecOutputSettings](),
	"FixedModeScheduleActionStartSettings":           reflect.TypeFor[FixedModeScheduleActionStartSettings](),
	"Fmp4HlsSettings":                                reflect.TypeFor[Fmp4HlsSettings](),
	"FollowModeScheduleActionStartSettings":          reflect.TypeFor[FollowModeScheduleActionStartSettings](),
	"FrameCaptureGroupSettings":                      reflect.TypeFor[FrameCaptureGroupSettings](),
	"FrameCaptureOutputSettings":                     reflect.TypeFor[FrameCaptureOutputSettings](),
	"FrameCaptureSettings":                           reflect.TypeFor[FrameCaptureSettings](),
	"GlobalConfiguration":                            reflect.TypeFor[GlobalConfiguration](),
	"H264Settings":                                   reflect.TypeFor[H264Settings](),
	"H265Settings":                                   reflect.TypeFor[H265Settings](),
	"HlsAkamaiSettings":                              reflect.TypeFor[HlsAkamaiSettings](),
	"HlsBasicPutSettings":                            reflect.TypeFor[HlsBasicPutSettings](),
	"HlsCdnSettings":                                 reflect.TypeFor[HlsCdnSettings](),
	"HlsGroupSettings":                               reflect.TypeFor[HlsGroupSettings](),
	"HlsId3SegmentTaggingScheduleActionSettings":     reflect.TypeFor[HlsId3SegmentTaggingScheduleActionSettings](),
	"HlsMediaStoreSettings":                          reflect.TypeFor[HlsMediaStoreSettings](),
	"HlsOutputSettings":                              reflect.TypeFor[HlsOutputSettings](),
	"HlsSettings":                                    reflect.TypeFor[HlsSettings](),
	"HlsTimedMetadataScheduleActionSettings":         reflect.TypeFor[HlsTimedMetadataScheduleActionSettings](),
	"HlsWebdavSettings":                              reflect.TypeFor[HlsWebdavSettings](),
	"ImmediateModeScheduleActionStartSettings":       reflect.TypeFor[ImmediateModeScheduleActionStartSettings](),
	"InputAttachment":                                reflect.TypeFor[InputAttachment](),
	"InputChannelLevel":                              reflect.TypeFor[InputChannelLevel](),
	"InputLocation":                                  reflect.TypeFor[InputLocation](),
	"InputSettings":                                  reflect.TypeFor[InputSettings](),
	"InputSpecification":                             reflect.TypeFor[InputSpecification](),
	"InputSwitchScheduleActionSettings":              reflect.TypeFor[InputSwitchScheduleActionSettings](),
	"ListChannelsRequest":                            reflect.TypeFor[ListChannelsRequest](),
	"ListChannelsResponse":                           reflect.TypeFor[ListChannelsResponse](),
	"ListTagsForResourceRequest":                     reflect.TypeFor[ListTagsForResourceRequest](),
	"ListTagsForResourceResponse":                    reflect.TypeFor[ListTagsForResourceResponse](),
	"M2tsSettings":                                   reflect.TypeFor[M2tsSettings](),
	"M3u8Settings":                                   reflect.TypeFor[M3u8Settings](),
	"MediaPackageGroupSettings":                      reflect.TypeFor[MediaPackageGroupSettings](),
	"MediaPackageOutputDestinationSettings":          reflect.TypeFor[MediaPackageOutputDestinationSettings](),
	"MediaPackageOutputSettings":                     reflect.TypeFor[MediaPackageOutputSettings](),
	"Mp2Settings":                                    reflect.TypeFor[Mp2Settings](),
	"MsSmoothGroupSettings":                          reflect.TypeFor[MsSmoothGroupSettings](),
	"MsSmoothOutputSettings":                         reflect.TypeFor[MsSmoothOutputSettings](),
	"Multiplex":                                      reflect.TypeFor[Multiplex](),
	"MultiplexGroupSettings":                         reflect.TypeFor[MultiplexGroupSettings](),
	"MultiplexMediaConnectOutputDestinationSettings": reflect.TypeFor[MultiplexMediaConnectOutputDestinationSettings](),
	"MultiplexOutputDestination":                     reflect.TypeFor[MultiplexOutputDestination](),
	"MultiplexOutputSettings":                        reflect.TypeFor[MultiplexOutputSettings](),
	"MultiplexProgramChannelDestinationSettings":     reflect.TypeFor[MultiplexProgramChannelDestinationSettings](),
	"MultiplexProgramServiceDescriptor":              reflect.TypeFor[MultiplexProgramServiceDescriptor](),
	"MultiplexProgramSettings":                       reflect.TypeFor[MultiplexProgramSettings](),
	"MultiplexSettings":                              reflect.TypeFor[MultiplexSettings](),
	"MultiplexStatmuxVideoSettings":                  reflect.TypeFor[MultiplexStatmuxVideoSettings](),
	"MultiplexVideoSettings":                         reflect.TypeFor[MultiplexVideoSettings](),
	"Output":                                         reflect.TypeFor[Output](),
	"OutputDestination":                              reflect.TypeFor[OutputDestination](),
	"OutputDestinationSettings":                      reflect.TypeFor[OutputDestinationSettings](),
	"OutputGroup":                                    reflect.TypeFor[OutputGroup](),
	"OutputGroupSettings":                            reflect.TypeFor[OutputGroupSettings](),
	"OutputLocationRef":                              reflect.TypeFor[OutputLocationRef](),
	"OutputSettings":                                 reflect.TypeFor[OutputSettings](),
	"PassThroughSettings":                            reflect.TypeFor[PassThroughSettings](),
	"PauseStateScheduleActionSettings":               reflect.TypeFor[PauseStateScheduleActionSettings](),
	"PipelinePauseStateSettings":                     reflect.TypeFor[PipelinePauseStateSettings](),
	"RawSettings":                                    reflect.TypeFor[RawSettings](),
	"RemixSettings":                                  reflect.TypeFor[RemixSettings](),
	"RtmpCaptionInfoDestinationSettings":             reflect.TypeFor[RtmpCaptionInfoDestinationSettings](),
	"RtmpGroupSettings":                              reflect.TypeFor[RtmpGroupSettings](),
	"RtmpOutputSettings":                             reflect.TypeFor[RtmpOutputSettings](),
	"ScheduleAction":                                 reflect.TypeFor[ScheduleAction](),
	"ScheduleActionSettings":                         reflect.TypeFor[ScheduleActionSettings](),
	"ScheduleActionStartSettings":                    reflect.TypeFor[ScheduleActionStartSettings](),
	"Scte20PlusEmbeddedDestinationSettings":          reflect.TypeFor[Scte20PlusEmbeddedDestinationSettings](),
	"Scte20SourceSettings":                           reflect.TypeFor[Scte20SourceSettings](),
	"Scte27DestinationSettings":                      reflect.TypeFor[Scte27DestinationSettings](),
	"Scte27SourceSettings":                           reflect.TypeFor[Scte27SourceSettings](),
	"Scte35DeliveryRestrictions":                     reflect.TypeFor[Scte35DeliveryRestrictions](),
	"Scte35Descriptor":                               reflect.TypeFor[Scte35Descriptor](),
	"Scte35DescriptorSettings":                       reflect.TypeFor[Scte35DescriptorSettings](),
	"Scte35ReturnToNetworkScheduleActionSettings":    reflect.TypeFor[Scte35ReturnToNetworkScheduleActionSettings](),
	"Scte35SegmentationDescriptor":                   reflect.TypeFor[Scte35SegmentationDescriptor](),
	"Scte35SpliceInsertScheduleActionSettings":       reflect.TypeFor[Scte35SpliceInsertScheduleActionSettings](),
	"Scte35TimeSignalScheduleActionSettings":         reflect.TypeFor[Scte35TimeSignalScheduleActionSettings](),
	"SmpteTtDestinationSettings":                     reflect.TypeFor[SmpteTtDestinationSettings](),
	"StandardHlsSettings":                            reflect.TypeFor[StandardHlsSettings](),
	"StartChannelRequest":                            reflect.TypeFor[StartChannelRequest](),
	"StartChannelResponse":                           reflect.TypeFor[StartChannelResponse](),
	"StaticImageActivateScheduleActionSettings":      reflect.TypeFor[StaticImageActivateScheduleActionSettings](),
	"StaticImageDeactivateScheduleActionSettings":    reflect.TypeFor[StaticImageDeactivateScheduleActionSettings](),
	"StopChannelRequest":                             reflect.TypeFor[StopChannelRequest](),
	"StopChannelResponse":                            reflect.TypeFor[StopChannelResponse](),
	"TeletextDestinationSettings":                    reflect.TypeFor[TeletextDestinationSettings](),
	"TeletextSourceSettings":                         reflect.TypeFor[TeletextSourceSettings](),
	"TimecodeConfig":                                 reflect.TypeFor[TimecodeConfig](),
	"TtmlDestinationSettings":                        reflect.TypeFor[TtmlDestinationSettings](),
	"UdpContainerSettings":                           reflect.TypeFor[UdpContainerSettings](),
	"UdpGroupSettings":                               reflect.TypeFor[UdpGroupSettings](),
	"UdpOutputSettings":                              reflect.TypeFor[UdpOutputSettings](),
	"UpdateChannelRequest":                           reflect.TypeFor[UpdateChannelRequest](),
	"UpdateChannelResponse":                          reflect.TypeFor[UpdateChannelResponse](),
	"VideoCodecSettings":                             reflect.TypeFor[VideoCodecSettings](),
	"VideoDescription":                               reflect.TypeFor[VideoDescription](),
}

// Lookup returns a constructor for the record type called name. The
// constructor returns a pointer to a zero value.
func Lookup(name string) (func() any, bool) {
	t, ok := records[name]
	if !ok {
		return nil, false
	}
	return func() any { return reflect.New(t).Interface() }, true
}

// TypeOf returns the Go type registered under name.
func TypeOf(name string) (reflect.Type, bool) {
	t, ok := records[name]
	return t, ok
}

// TypeNames lists every registered name in sorted order.
func TypeNames() []string {
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
