package medialive

type PipelineId string

const (
	PipelineIdPipeline0 PipelineId = "PIPELINE_0"
	PipelineIdPipeline1 PipelineId = "PIPELINE_1"
)

func (PipelineId) Values() []PipelineId {
	return []PipelineId{
		PipelineIdPipeline0,
		PipelineIdPipeline1,
	}
}

type Scte35SegmentationCancelIndicator string

const (
	Scte35SegmentationCancelIndicatorSegmentationEventNotCanceled Scte35SegmentationCancelIndicator = "SEGMENTATION_EVENT_NOT_CANCELED"
	Scte35SegmentationCancelIndicatorSegmentationEventCanceled    Scte35SegmentationCancelIndicator = "SEGMENTATION_EVENT_CANCELED"
)

func (Scte35SegmentationCancelIndicator) Values() []Scte35SegmentationCancelIndicator {
	return []Scte35SegmentationCancelIndicator{
		Scte35SegmentationCancelIndicatorSegmentationEventNotCanceled,
		Scte35SegmentationCancelIndicatorSegmentationEventCanceled,
	}
}

type Scte35ArchiveAllowedFlag string

const (
	Scte35ArchiveAllowedFlagArchiveNotAllowed Scte35ArchiveAllowedFlag = "ARCHIVE_NOT_ALLOWED"
	Scte35ArchiveAllowedFlagArchiveAllowed    Scte35ArchiveAllowedFlag = "ARCHIVE_ALLOWED"
)

func (Scte35ArchiveAllowedFlag) Values() []Scte35ArchiveAllowedFlag {
	return []Scte35ArchiveAllowedFlag{
		Scte35ArchiveAllowedFlagArchiveNotAllowed,
		Scte35ArchiveAllowedFlagArchiveAllowed,
	}
}

type Scte35DeviceRestrictions string

const (
	Scte35DeviceRestrictionsNone           Scte35DeviceRestrictions = "NONE"
	Scte35DeviceRestrictionsRestrictGroup0 Scte35DeviceRestrictions = "RESTRICT_GROUP0"
	Scte35DeviceRestrictionsRestrictGroup1 Scte35DeviceRestrictions = "RESTRICT_GROUP1"
	Scte35DeviceRestrictionsRestrictGroup2 Scte35DeviceRestrictions = "RESTRICT_GROUP2"
)

func (Scte35DeviceRestrictions) Values() []Scte35DeviceRestrictions {
	return []Scte35DeviceRestrictions{
		Scte35DeviceRestrictionsNone,
		Scte35DeviceRestrictionsRestrictGroup0,
		Scte35DeviceRestrictionsRestrictGroup1,
		Scte35DeviceRestrictionsRestrictGroup2,
	}
}

type Scte35NoRegionalBlackoutFlag string

const (
	Scte35NoRegionalBlackoutFlagRegionalBlackout   Scte35NoRegionalBlackoutFlag = "REGIONAL_BLACKOUT"
	Scte35NoRegionalBlackoutFlagNoRegionalBlackout Scte35NoRegionalBlackoutFlag = "NO_REGIONAL_BLACKOUT"
)

func (Scte35NoRegionalBlackoutFlag) Values() []Scte35NoRegionalBlackoutFlag {
	return []Scte35NoRegionalBlackoutFlag{
		Scte35NoRegionalBlackoutFlagRegionalBlackout,
		Scte35NoRegionalBlackoutFlagNoRegionalBlackout,
	}
}

type Scte35WebDeliveryAllowedFlag string

const (
	Scte35WebDeliveryAllowedFlagWebDeliveryNotAllowed Scte35WebDeliveryAllowedFlag = "WEB_DELIVERY_NOT_ALLOWED"
	Scte35WebDeliveryAllowedFlagWebDeliveryAllowed    Scte35WebDeliveryAllowedFlag = "WEB_DELIVERY_ALLOWED"
)

func (Scte35WebDeliveryAllowedFlag) Values() []Scte35WebDeliveryAllowedFlag {
	return []Scte35WebDeliveryAllowedFlag{
		Scte35WebDeliveryAllowedFlagWebDeliveryNotAllowed,
		Scte35WebDeliveryAllowedFlagWebDeliveryAllowed,
	}
}

type FollowPoint string

const (
	FollowPointEnd   FollowPoint = "END"
	FollowPointStart FollowPoint = "START"
)

func (FollowPoint) Values() []FollowPoint {
	return []FollowPoint{
		FollowPointEnd,
		FollowPointStart,
	}
}
