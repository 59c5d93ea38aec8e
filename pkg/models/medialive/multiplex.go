package medialive

import "slices"

// MultiplexSettings configures the transport stream a multiplex produces.
type MultiplexSettings struct {
	MaximumVideoBufferDelayMilliseconds *int32 `json:"MaximumVideoBufferDelayMilliseconds,omitempty" validate:"omitempty,min=800,max=3000"`
	// Bits per second.
	TransportStreamBitrate         int32  `json:"TransportStreamBitrate" validate:"min=1000000,max=100000000"`
	TransportStreamId              int32  `json:"TransportStreamId" validate:"min=0,max=65535"`
	TransportStreamReservedBitrate *int32 `json:"TransportStreamReservedBitrate,omitempty" validate:"omitempty,min=0,max=100000000"`
}

// MultiplexProgramSettings configures one program inside a multiplex.
type MultiplexProgramSettings struct {
	PreferredChannelPipeline PreferredChannelPipeline           `json:"PreferredChannelPipeline,omitempty"`
	ProgramNumber            int32                              `json:"ProgramNumber" validate:"min=0,max=65535"`
	ServiceDescriptor        *MultiplexProgramServiceDescriptor `json:"ServiceDescriptor,omitempty"`
	VideoSettings            *MultiplexVideoSettings            `json:"VideoSettings,omitempty"`
}

type MultiplexProgramServiceDescriptor struct {
	ProviderName string `json:"ProviderName" validate:"max=256"`
	ServiceName  string `json:"ServiceName" validate:"max=256"`
}

// MultiplexVideoSettings is either a constant bitrate or statmux settings, not both.
type MultiplexVideoSettings struct {
	ConstantBitrate *int32                         `json:"ConstantBitrate,omitempty" validate:"omitempty,min=100000,max=100000000"`
	StatmuxSettings *MultiplexStatmuxVideoSettings `json:"StatmuxSettings,omitempty"`
}

type MultiplexStatmuxVideoSettings struct {
	MaximumBitrate *int32 `json:"MaximumBitrate,omitempty" validate:"omitempty,min=100000,max=100000000"`
	MinimumBitrate *int32 `json:"MinimumBitrate,omitempty" validate:"omitempty,min=100000,max=100000000"`
	Priority       *int32 `json:"Priority,omitempty" validate:"omitempty,min=-5,max=5"`
}

type MultiplexOutputDestination struct {
	MediaConnectSettings *MultiplexMediaConnectOutputDestinationSettings `json:"MediaConnectSettings,omitempty"`
}

type MultiplexMediaConnectOutputDestinationSettings struct {
	EntitlementArn *string `json:"EntitlementArn,omitempty" validate:"omitempty,min=1"`
}

// Multiplex is the service's view of a multiplex.
type Multiplex struct {
	Arn                   *string                      `json:"Arn,omitempty"`
	AvailabilityZones     []string                     `json:"AvailabilityZones,omitempty"`
	Destinations          []MultiplexOutputDestination `json:"Destinations,omitempty"`
	Id                    *string                      `json:"Id,omitempty"`
	MultiplexSettings     *MultiplexSettings           `json:"MultiplexSettings,omitempty"`
	Name                  *string                      `json:"Name,omitempty"`
	PipelinesRunningCount *int32                       `json:"PipelinesRunningCount,omitempty"`
	ProgramCount          *int32                       `json:"ProgramCount,omitempty"`
	State                 MultiplexState               `json:"State,omitempty"`
	Tags                  Tags                         `json:"Tags,omitempty"`
}

type CreateMultiplexRequest struct {
	// Exactly two zones in the same region.
	AvailabilityZones []string           `json:"AvailabilityZones,omitempty" validate:"required,len=2"`
	MultiplexSettings *MultiplexSettings `json:"MultiplexSettings,omitempty" validate:"required"`
	Name              string             `json:"Name" validate:"required"`
	// Idempotency token.
	RequestId *string `json:"RequestId,omitempty"`
	Tags      Tags    `json:"Tags,omitempty"`
}

type CreateMultiplexResponse struct {
	Multiplex *Multiplex `json:"Multiplex,omitempty"`
}

type DescribeMultiplexRequest struct {
	MultiplexId string `json:"MultiplexId" validate:"required"`
}

type DescribeMultiplexResponse Multiplex

type DeleteMultiplexRequest struct {
	MultiplexId string `json:"MultiplexId" validate:"required"`
}

type DeleteMultiplexResponse Multiplex

// CreateMultiplexRequestBuilder assembles a CreateMultiplexRequest.
type CreateMultiplexRequestBuilder struct {
	builder[CreateMultiplexRequest]
}

func NewCreateMultiplexRequest() *CreateMultiplexRequestBuilder {
	return &CreateMultiplexRequestBuilder{}
}

func (b *CreateMultiplexRequestBuilder) AvailabilityZones(zones ...string) *CreateMultiplexRequestBuilder {
	b.v.AvailabilityZones = slices.Clone(zones)
	return b
}

func (b *CreateMultiplexRequestBuilder) MultiplexSettings(s MultiplexSettings) *CreateMultiplexRequestBuilder {
	b.v.MultiplexSettings = cloneRef(&b.builder, s)
	return b
}

func (b *CreateMultiplexRequestBuilder) Name(name string) *CreateMultiplexRequestBuilder {
	b.v.Name = name
	return b
}

func (b *CreateMultiplexRequestBuilder) RequestId(id string) *CreateMultiplexRequestBuilder {
	b.v.RequestId = &id
	return b
}

func (b *CreateMultiplexRequestBuilder) Tags(tags map[string]string) *CreateMultiplexRequestBuilder {
	b.v.Tags = Tags(tags).Clone()
	return b
}

func (b *CreateMultiplexRequestBuilder) AddTagsEntry(key, value string) *CreateMultiplexRequestBuilder {
	if err := b.v.Tags.Add(key, value); err != nil {
		b.fail(err)
	}
	return b
}

func (b *CreateMultiplexRequestBuilder) ClearTagsEntries() *CreateMultiplexRequestBuilder {
	b.v.Tags.Clear()
	return b
}

// Build returns the request, or the first error recorded by a setter.
func (b *CreateMultiplexRequestBuilder) Build() (CreateMultiplexRequest, error) { return b.build() }
