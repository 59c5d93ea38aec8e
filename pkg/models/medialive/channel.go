package medialive

// EncoderSettings is the full encode configuration of a channel.
type EncoderSettings struct {
	AudioDescriptions   []AudioDescription   `json:"AudioDescriptions,omitempty" validate:"required"`
	CaptionDescriptions []CaptionDescription `json:"CaptionDescriptions,omitempty"`
	GlobalConfiguration *GlobalConfiguration `json:"GlobalConfiguration,omitempty"`
	OutputGroups        []OutputGroup        `json:"OutputGroups,omitempty" validate:"required"`
	TimecodeConfig      *TimecodeConfig      `json:"TimecodeConfig,omitempty" validate:"required"`
	VideoDescriptions   []VideoDescription   `json:"VideoDescriptions,omitempty" validate:"required"`
}

type GlobalConfiguration struct {
	// Decibels applied to every audio input.
	InitialAudioGain          *int32                                `json:"InitialAudioGain,omitempty" validate:"omitempty,min=-60,max=60"`
	InputEndAction            GlobalConfigurationInputEndAction     `json:"InputEndAction,omitempty"`
	OutputLockingMode         GlobalConfigurationOutputLockingMode  `json:"OutputLockingMode,omitempty"`
	OutputTimingSource        GlobalConfigurationOutputTimingSource `json:"OutputTimingSource,omitempty"`
	SupportLowFramerateInputs GlobalConfigurationLowFramerateInputs `json:"SupportLowFramerateInputs,omitempty"`
}

type TimecodeConfig struct {
	Source TimecodeConfigSource `json:"Source" validate:"required"`
	// Frames of drift tolerated before re-syncing to the source.
	SyncThreshold *int32 `json:"SyncThreshold,omitempty" validate:"omitempty,min=1,max=1000000"`
}

type ChannelEgressEndpoint struct {
	SourceIp *string `json:"SourceIp,omitempty"`
}

// Channel is the service's full view of a channel.
type Channel struct {
	Arn                   *string                 `json:"Arn,omitempty"`
	ChannelClass          ChannelClass            `json:"ChannelClass,omitempty"`
	Destinations          []OutputDestination     `json:"Destinations,omitempty"`
	EgressEndpoints       []ChannelEgressEndpoint `json:"EgressEndpoints,omitempty"`
	EncoderSettings       *EncoderSettings        `json:"EncoderSettings,omitempty"`
	Id                    *string                 `json:"Id,omitempty"`
	InputAttachments      []InputAttachment       `json:"InputAttachments,omitempty"`
	InputSpecification    *InputSpecification     `json:"InputSpecification,omitempty"`
	LogLevel              LogLevel                `json:"LogLevel,omitempty"`
	Name                  *string                 `json:"Name,omitempty"`
	PipelinesRunningCount *int32                  `json:"PipelinesRunningCount,omitempty"`
	RoleArn               *string                 `json:"RoleArn,omitempty"`
	State                 ChannelState            `json:"State,omitempty"`
	Tags                  Tags                    `json:"Tags,omitempty"`
}

// ChannelSummary is the list view of a channel. It carries no encoder settings.
type ChannelSummary struct {
	Arn                   *string                 `json:"Arn,omitempty"`
	ChannelClass          ChannelClass            `json:"ChannelClass,omitempty"`
	Destinations          []OutputDestination     `json:"Destinations,omitempty"`
	EgressEndpoints       []ChannelEgressEndpoint `json:"EgressEndpoints,omitempty"`
	Id                    *string                 `json:"Id,omitempty"`
	InputAttachments      []InputAttachment       `json:"InputAttachments,omitempty"`
	InputSpecification    *InputSpecification     `json:"InputSpecification,omitempty"`
	LogLevel              LogLevel                `json:"LogLevel,omitempty"`
	Name                  *string                 `json:"Name,omitempty"`
	PipelinesRunningCount *int32                  `json:"PipelinesRunningCount,omitempty"`
	RoleArn               *string                 `json:"RoleArn,omitempty"`
	State                 ChannelState            `json:"State,omitempty"`
	Tags                  Tags                    `json:"Tags,omitempty"`
}

type CreateChannelRequest struct {
	ChannelClass       ChannelClass        `json:"ChannelClass,omitempty"`
	Destinations       []OutputDestination `json:"Destinations,omitempty"`
	EncoderSettings    *EncoderSettings    `json:"EncoderSettings,omitempty"`
	InputAttachments   []InputAttachment   `json:"InputAttachments,omitempty"`
	InputSpecification *InputSpecification `json:"InputSpecification,omitempty"`
	LogLevel           LogLevel            `json:"LogLevel,omitempty"`
	Name               *string             `json:"Name,omitempty"`
	// Idempotency token.
	RequestId *string `json:"RequestId,omitempty"`
	RoleArn   *string `json:"RoleArn,omitempty"`
	Tags      Tags    `json:"Tags,omitempty"`
}

type CreateChannelResponse struct {
	Channel *Channel `json:"Channel,omitempty"`
}

type DescribeChannelRequest struct {
	ChannelId string `json:"ChannelId" validate:"required"`
}

type DescribeChannelResponse Channel

type UpdateChannelRequest struct {
	ChannelId          string              `json:"ChannelId" validate:"required"`
	Destinations       []OutputDestination `json:"Destinations,omitempty"`
	EncoderSettings    *EncoderSettings    `json:"EncoderSettings,omitempty"`
	InputAttachments   []InputAttachment   `json:"InputAttachments,omitempty"`
	InputSpecification *InputSpecification `json:"InputSpecification,omitempty"`
	LogLevel           LogLevel            `json:"LogLevel,omitempty"`
	Name               *string             `json:"Name,omitempty"`
	RoleArn            *string             `json:"RoleArn,omitempty"`
}

type UpdateChannelResponse struct {
	Channel *Channel `json:"Channel,omitempty"`
}

type DeleteChannelRequest struct {
	ChannelId string `json:"ChannelId" validate:"required"`
}

type DeleteChannelResponse Channel

type StartChannelRequest struct {
	ChannelId string `json:"ChannelId" validate:"required"`
}

type StartChannelResponse Channel

type StopChannelRequest struct {
	ChannelId string `json:"ChannelId" validate:"required"`
}

type StopChannelResponse Channel

type ListChannelsRequest struct {
	MaxResults *int32  `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=1000"`
	NextToken  *string `json:"NextToken,omitempty"`
}

type ListChannelsResponse struct {
	Channels  []ChannelSummary `json:"Channels,omitempty"`
	NextToken *string          `json:"NextToken,omitempty"`
}

// ===== Builders =====

// CreateChannelRequestBuilder assembles a CreateChannelRequest.
//
//	req, err := medialive.NewCreateChannelRequest().
//		Name("news-1").
//		AddTagsEntry("team", "news").
//		Build()
type CreateChannelRequestBuilder struct {
	builder[CreateChannelRequest]
}

func NewCreateChannelRequest() *CreateChannelRequestBuilder { return &CreateChannelRequestBuilder{} }

func (b *CreateChannelRequestBuilder) ChannelClass(c ChannelClass) *CreateChannelRequestBuilder {
	b.v.ChannelClass = c
	return b
}

func (b *CreateChannelRequestBuilder) Destinations(d ...OutputDestination) *CreateChannelRequestBuilder {
	b.v.Destinations = cloneList(&b.builder, d)
	return b
}

func (b *CreateChannelRequestBuilder) EncoderSettings(s EncoderSettings) *CreateChannelRequestBuilder {
	b.v.EncoderSettings = cloneRef(&b.builder, s)
	return b
}

func (b *CreateChannelRequestBuilder) InputAttachments(a ...InputAttachment) *CreateChannelRequestBuilder {
	b.v.InputAttachments = cloneList(&b.builder, a)
	return b
}

func (b *CreateChannelRequestBuilder) InputSpecification(s InputSpecification) *CreateChannelRequestBuilder {
	b.v.InputSpecification = cloneRef(&b.builder, s)
	return b
}

func (b *CreateChannelRequestBuilder) LogLevel(l LogLevel) *CreateChannelRequestBuilder {
	b.v.LogLevel = l
	return b
}

func (b *CreateChannelRequestBuilder) Name(name string) *CreateChannelRequestBuilder {
	b.v.Name = &name
	return b
}

func (b *CreateChannelRequestBuilder) RequestId(id string) *CreateChannelRequestBuilder {
	b.v.RequestId = &id
	return b
}

func (b *CreateChannelRequestBuilder) RoleArn(arn string) *CreateChannelRequestBuilder {
	b.v.RoleArn = &arn
	return b
}

// Tags replaces the tag set with a copy of tags. A nil map clears it.
func (b *CreateChannelRequestBuilder) Tags(tags map[string]string) *CreateChannelRequestBuilder {
	b.v.Tags = Tags(tags).Clone()
	return b
}

// AddTagsEntry adds one tag. A key that is already set makes Build fail
// with *DuplicateKeyError.
func (b *CreateChannelRequestBuilder) AddTagsEntry(key, value string) *CreateChannelRequestBuilder {
	if err := b.v.Tags.Add(key, value); err != nil {
		b.fail(err)
	}
	return b
}

func (b *CreateChannelRequestBuilder) ClearTagsEntries() *CreateChannelRequestBuilder {
	b.v.Tags.Clear()
	return b
}

func (b *CreateChannelRequestBuilder) Build() (CreateChannelRequest, error) { return b.build() }

// UpdateChannelRequestBuilder assembles an UpdateChannelRequest.
type UpdateChannelRequestBuilder struct {
	builder[UpdateChannelRequest]
}

func NewUpdateChannelRequest(channelID string) *UpdateChannelRequestBuilder {
	b := &UpdateChannelRequestBuilder{}
	b.v.ChannelId = channelID
	return b
}

func (b *UpdateChannelRequestBuilder) Destinations(d ...OutputDestination) *UpdateChannelRequestBuilder {
	b.v.Destinations = cloneList(&b.builder, d)
	return b
}

func (b *UpdateChannelRequestBuilder) EncoderSettings(s EncoderSettings) *UpdateChannelRequestBuilder {
	b.v.EncoderSettings = cloneRef(&b.builder, s)
	return b
}

func (b *UpdateChannelRequestBuilder) InputAttachments(a ...InputAttachment) *UpdateChannelRequestBuilder {
	b.v.InputAttachments = cloneList(&b.builder, a)
	return b
}

func (b *UpdateChannelRequestBuilder) InputSpecification(s InputSpecification) *UpdateChannelRequestBuilder {
	b.v.InputSpecification = cloneRef(&b.builder, s)
	return b
}

func (b *UpdateChannelRequestBuilder) LogLevel(l LogLevel) *UpdateChannelRequestBuilder {
	b.v.LogLevel = l
	return b
}

func (b *UpdateChannelRequestBuilder) Name(name string) *UpdateChannelRequestBuilder {
	b.v.Name = &name
	return b
}

func (b *UpdateChannelRequestBuilder) RoleArn(arn string) *UpdateChannelRequestBuilder {
	b.v.RoleArn = &arn
	return b
}

func (b *UpdateChannelRequestBuilder) Build() (UpdateChannelRequest, error) { return b.build() }
