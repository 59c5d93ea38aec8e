package medialive

import (
	"reflect"
	"slices"
)

// ScheduleAction is one entry of a channel schedule.
type ScheduleAction struct {
	// Unique within the channel's schedule.
	ActionName                  string                       `json:"ActionName" validate:"required"`
	ScheduleActionSettings      *ScheduleActionSettings      `json:"ScheduleActionSettings,omitempty" validate:"required"`
	ScheduleActionStartSettings *ScheduleActionStartSettings `json:"ScheduleActionStartSettings,omitempty" validate:"required"`
}

// ===== Action settings union =====

type ScheduleActionSettings struct {
	Action ScheduleActionKind
}

type ScheduleActionKind interface {
	Variant
	isScheduleActionKind()
}

var scheduleActionUnion = newUnion("ScheduleActionSettings", map[string]func() ScheduleActionKind{
	"HlsId3SegmentTaggingSettings":  func() ScheduleActionKind { return new(HlsId3SegmentTaggingScheduleActionSettings) },
	"HlsTimedMetadataSettings":      func() ScheduleActionKind { return new(HlsTimedMetadataScheduleActionSettings) },
	"InputSwitchSettings":           func() ScheduleActionKind { return new(InputSwitchScheduleActionSettings) },
	"PauseStateSettings":            func() ScheduleActionKind { return new(PauseStateScheduleActionSettings) },
	"Scte35ReturnToNetworkSettings": func() ScheduleActionKind { return new(Scte35ReturnToNetworkScheduleActionSettings) },
	"Scte35SpliceInsertSettings":    func() ScheduleActionKind { return new(Scte35SpliceInsertScheduleActionSettings) },
	"Scte35TimeSignalSettings":      func() ScheduleActionKind { return new(Scte35TimeSignalScheduleActionSettings) },
	"StaticImageActivateSettings":   func() ScheduleActionKind { return new(StaticImageActivateScheduleActionSettings) },
	"StaticImageDeactivateSettings": func() ScheduleActionKind { return new(StaticImageDeactivateScheduleActionSettings) },
})

func (s ScheduleActionSettings) MarshalJSON() ([]byte, error) {
	return scheduleActionUnion.encode(s.Action)
}

func (s *ScheduleActionSettings) UnmarshalJSON(b []byte) error {
	v, err := scheduleActionUnion.decode(b)
	if err != nil {
		return err
	}
	s.Action = v
	return nil
}

func (s ScheduleActionSettings) Selected() (string, any) { return selected(s.Action) }

func (ScheduleActionSettings) VariantTypes() map[string]reflect.Type {
	return scheduleActionUnion.variantTypes()
}

func (*HlsId3SegmentTaggingScheduleActionSettings) isScheduleActionKind()  {}
func (*HlsTimedMetadataScheduleActionSettings) isScheduleActionKind()      {}
func (*InputSwitchScheduleActionSettings) isScheduleActionKind()           {}
func (*PauseStateScheduleActionSettings) isScheduleActionKind()            {}
func (*Scte35ReturnToNetworkScheduleActionSettings) isScheduleActionKind() {}
func (*Scte35SpliceInsertScheduleActionSettings) isScheduleActionKind()    {}
func (*Scte35TimeSignalScheduleActionSettings) isScheduleActionKind()      {}
func (*StaticImageActivateScheduleActionSettings) isScheduleActionKind()   {}
func (*StaticImageDeactivateScheduleActionSettings) isScheduleActionKind() {}
func (*UnknownVariant) isScheduleActionKind()                              {}

func (*HlsId3SegmentTaggingScheduleActionSettings) WireKey() string {
	return "HlsId3SegmentTaggingSettings"
}
func (*HlsTimedMetadataScheduleActionSettings) WireKey() string { return "HlsTimedMetadataSettings" }
func (*InputSwitchScheduleActionSettings) WireKey() string      { return "InputSwitchSettings" }
func (*PauseStateScheduleActionSettings) WireKey() string       { return "PauseStateSettings" }
func (*Scte35ReturnToNetworkScheduleActionSettings) WireKey() string {
	return "Scte35ReturnToNetworkSettings"
}
func (*Scte35SpliceInsertScheduleActionSettings) WireKey() string {
	return "Scte35SpliceInsertSettings"
}
func (*Scte35TimeSignalScheduleActionSettings) WireKey() string { return "Scte35TimeSignalSettings" }
func (*StaticImageActivateScheduleActionSettings) WireKey() string {
	return "StaticImageActivateSettings"
}
func (*StaticImageDeactivateScheduleActionSettings) WireKey() string {
	return "StaticImageDeactivateSettings"
}

type HlsId3SegmentTaggingScheduleActionSettings struct {
	Tag string `json:"Tag" validate:"required"`
}

type HlsTimedMetadataScheduleActionSettings struct {
	// Base64 encoded ID3 payload.
	Id3 string `json:"Id3" validate:"required"`
}

type InputSwitchScheduleActionSettings struct {
	InputAttachmentNameReference string   `json:"InputAttachmentNameReference" validate:"required"`
	UrlPath                      []string `json:"UrlPath,omitempty"`
}

type PauseStateScheduleActionSettings struct {
	Pipelines []PipelinePauseStateSettings `json:"Pipelines,omitempty"`
}

type PipelinePauseStateSettings struct {
	PipelineId PipelineId `json:"PipelineId" validate:"required"`
}

type Scte35ReturnToNetworkScheduleActionSettings struct {
	SpliceEventId int64 `json:"SpliceEventId" validate:"min=0,max=4294967295"`
}

type Scte35SpliceInsertScheduleActionSettings struct {
	// 90 kHz ticks. Unset means the break has no fixed end.
	Duration      *int64 `json:"Duration,omitempty" validate:"omitempty,min=0,max=8589934591"`
	SpliceEventId int64  `json:"SpliceEventId" validate:"min=0,max=4294967295"`
}

type Scte35TimeSignalScheduleActionSettings struct {
	Scte35Descriptors []Scte35Descriptor `json:"Scte35Descriptors,omitempty" validate:"required"`
}

type StaticImageActivateScheduleActionSettings struct {
	Duration *int32         `json:"Duration,omitempty" validate:"omitempty,min=0"`
	FadeIn   *int32         `json:"FadeIn,omitempty" validate:"omitempty,min=0"`
	FadeOut  *int32         `json:"FadeOut,omitempty" validate:"omitempty,min=0"`
	Height   *int32         `json:"Height,omitempty" validate:"omitempty,min=1"`
	Image    *InputLocation `json:"Image,omitempty" validate:"required"`
	ImageX   *int32         `json:"ImageX,omitempty" validate:"omitempty,min=0"`
	ImageY   *int32         `json:"ImageY,omitempty" validate:"omitempty,min=0"`
	Layer    *int32         `json:"Layer,omitempty" validate:"omitempty,min=0,max=7"`
	Opacity  *int32         `json:"Opacity,omitempty" validate:"omitempty,min=0,max=100"`
	Width    *int32         `json:"Width,omitempty" validate:"omitempty,min=1"`
}

type StaticImageDeactivateScheduleActionSettings struct {
	FadeOut *int32 `json:"FadeOut,omitempty" validate:"omitempty,min=0"`
	Layer   *int32 `json:"Layer,omitempty" validate:"omitempty,min=0,max=7"`
}

// ===== SCTE-35 descriptors =====

type Scte35Descriptor struct {
	Scte35DescriptorSettings *Scte35DescriptorSettings `json:"Scte35DescriptorSettings,omitempty" validate:"required"`
}

type Scte35DescriptorSettings struct {
	SegmentationDescriptorScte35DescriptorSettings *Scte35SegmentationDescriptor `json:"SegmentationDescriptorScte35DescriptorSettings,omitempty" validate:"required"`
}

type Scte35SegmentationDescriptor struct {
	DeliveryRestrictions        *Scte35DeliveryRestrictions       `json:"DeliveryRestrictions,omitempty"`
	SegmentNum                  *int32                            `json:"SegmentNum,omitempty" validate:"omitempty,min=0,max=255"`
	SegmentationCancelIndicator Scte35SegmentationCancelIndicator `json:"SegmentationCancelIndicator" validate:"required"`
	// 90 kHz ticks.
	SegmentationDuration *int64  `json:"SegmentationDuration,omitempty" validate:"omitempty,min=0,max=1099511627775"`
	SegmentationEventId  int64   `json:"SegmentationEventId" validate:"min=0,max=4294967295"`
	SegmentationTypeId   *int32  `json:"SegmentationTypeId,omitempty" validate:"omitempty,min=0,max=255"`
	SegmentationUpid     *string `json:"SegmentationUpid,omitempty"`
	SegmentationUpidType *int32  `json:"SegmentationUpidType,omitempty" validate:"omitempty,min=0,max=255"`
	SegmentsExpected     *int32  `json:"SegmentsExpected,omitempty" validate:"omitempty,min=0,max=255"`
	SubSegmentNum        *int32  `json:"SubSegmentNum,omitempty" validate:"omitempty,min=0,max=255"`
	SubSegmentsExpected  *int32  `json:"SubSegmentsExpected,omitempty" validate:"omitempty,min=0,max=255"`
}

type Scte35DeliveryRestrictions struct {
	ArchiveAllowedFlag     Scte35ArchiveAllowedFlag     `json:"ArchiveAllowedFlag" validate:"required"`
	DeviceRestrictions     Scte35DeviceRestrictions     `json:"DeviceRestrictions" validate:"required"`
	NoRegionalBlackoutFlag Scte35NoRegionalBlackoutFlag `json:"NoRegionalBlackoutFlag" validate:"required"`
	WebDeliveryAllowedFlag Scte35WebDeliveryAllowedFlag `json:"WebDeliveryAllowedFlag" validate:"required"`
}

// ===== Start settings union =====

type ScheduleActionStartSettings struct {
	Start ScheduleActionStart
}

type ScheduleActionStart interface {
	Variant
	isScheduleActionStart()
}

var scheduleStartUnion = newUnion("ScheduleActionStartSettings", map[string]func() ScheduleActionStart{
	"FixedModeScheduleActionStartSettings":     func() ScheduleActionStart { return new(FixedModeScheduleActionStartSettings) },
	"FollowModeScheduleActionStartSettings":    func() ScheduleActionStart { return new(FollowModeScheduleActionStartSettings) },
	"ImmediateModeScheduleActionStartSettings": func() ScheduleActionStart { return new(ImmediateModeScheduleActionStartSettings) },
})

func (s ScheduleActionStartSettings) MarshalJSON() ([]byte, error) {
	return scheduleStartUnion.encode(s.Start)
}

func (s *ScheduleActionStartSettings) UnmarshalJSON(b []byte) error {
	v, err := scheduleStartUnion.decode(b)
	if err != nil {
		return err
	}
	s.Start = v
	return nil
}

func (s ScheduleActionStartSettings) Selected() (string, any) { return selected(s.Start) }

func (ScheduleActionStartSettings) VariantTypes() map[string]reflect.Type {
	return scheduleStartUnion.variantTypes()
}

func (*FixedModeScheduleActionStartSettings) isScheduleActionStart()     {}
func (*FollowModeScheduleActionStartSettings) isScheduleActionStart()    {}
func (*ImmediateModeScheduleActionStartSettings) isScheduleActionStart() {}
func (*UnknownVariant) isScheduleActionStart()                           {}

func (*FixedModeScheduleActionStartSettings) WireKey() string {
	return "FixedModeScheduleActionStartSettings"
}
func (*FollowModeScheduleActionStartSettings) WireKey() string {
	return "FollowModeScheduleActionStartSettings"
}
func (*ImmediateModeScheduleActionStartSettings) WireKey() string {
	return "ImmediateModeScheduleActionStartSettings"
}

type FixedModeScheduleActionStartSettings struct {
	// UTC start time, ISO 8601 (2019-01-07T21:22:00.000Z).
	Time string `json:"Time" validate:"required"`
}

type FollowModeScheduleActionStartSettings struct {
	FollowPoint         FollowPoint `json:"FollowPoint" validate:"required"`
	ReferenceActionName string      `json:"ReferenceActionName" validate:"required"`
}

type ImmediateModeScheduleActionStartSettings struct{}

// ===== Requests =====

type BatchScheduleActionCreateRequest struct {
	ScheduleActions []ScheduleAction `json:"ScheduleActions,omitempty" validate:"required"`
}

type BatchScheduleActionDeleteRequest struct {
	ActionNames []string `json:"ActionNames,omitempty" validate:"required"`
}

type BatchScheduleActionCreateResult struct {
	ScheduleActions []ScheduleAction `json:"ScheduleActions,omitempty"`
}

type BatchScheduleActionDeleteResult struct {
	ScheduleActions []ScheduleAction `json:"ScheduleActions,omitempty"`
}

type BatchUpdateScheduleRequest struct {
	ChannelId string                            `json:"ChannelId" validate:"required"`
	Creates   *BatchScheduleActionCreateRequest `json:"Creates,omitempty"`
	Deletes   *BatchScheduleActionDeleteRequest `json:"Deletes,omitempty"`
}

type BatchUpdateScheduleResponse struct {
	Creates *BatchScheduleActionCreateResult `json:"Creates,omitempty"`
	Deletes *BatchScheduleActionDeleteResult `json:"Deletes,omitempty"`
}

type DescribeScheduleRequest struct {
	ChannelId  string  `json:"ChannelId" validate:"required"`
	MaxResults *int32  `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=1000"`
	NextToken  *string `json:"NextToken,omitempty"`
}

type DescribeScheduleResponse struct {
	NextToken       *string          `json:"NextToken,omitempty"`
	ScheduleActions []ScheduleAction `json:"ScheduleActions,omitempty"`
}

// BatchUpdateScheduleRequestBuilder assembles a BatchUpdateScheduleRequest.
type BatchUpdateScheduleRequestBuilder struct {
	builder[BatchUpdateScheduleRequest]
}

func NewBatchUpdateScheduleRequest() *BatchUpdateScheduleRequestBuilder {
	return &BatchUpdateScheduleRequestBuilder{}
}

func (b *BatchUpdateScheduleRequestBuilder) ChannelId(id string) *BatchUpdateScheduleRequestBuilder {
	b.v.ChannelId = id
	return b
}

// Creates sets the actions to add. Calling it with no actions drops the create batch.
func (b *BatchUpdateScheduleRequestBuilder) Creates(actions ...ScheduleAction) *BatchUpdateScheduleRequestBuilder {
	if actions == nil {
		b.v.Creates = nil
		return b
	}
	b.v.Creates = &BatchScheduleActionCreateRequest{ScheduleActions: cloneList(&b.builder, actions)}
	return b
}

// Deletes sets the action names to remove. Calling it with no names drops the delete batch.
func (b *BatchUpdateScheduleRequestBuilder) Deletes(actionNames ...string) *BatchUpdateScheduleRequestBuilder {
	if actionNames == nil {
		b.v.Deletes = nil
		return b
	}
	b.v.Deletes = &BatchScheduleActionDeleteRequest{ActionNames: slices.Clone(actionNames)}
	return b
}

func (b *BatchUpdateScheduleRequestBuilder) Build() (BatchUpdateScheduleRequest, error) {
	return b.build()
}
