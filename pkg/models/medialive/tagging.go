package medialive

import "slices"

type CreateTagsRequest struct {
	ResourceArn string `json:"ResourceArn" validate:"required"`
	Tags        Tags   `json:"Tags,omitempty"`
}

type DeleteTagsRequest struct {
	ResourceArn string   `json:"ResourceArn" validate:"required"`
	TagKeys     []string `json:"TagKeys,omitempty" validate:"required"`
}

type ListTagsForResourceRequest struct {
	ResourceArn string `json:"ResourceArn" validate:"required"`
}

type ListTagsForResourceResponse struct {
	Tags Tags `json:"Tags,omitempty"`
}

type CreateTagsRequestBuilder struct {
	builder[CreateTagsRequest]
}

func NewCreateTagsRequest(resourceArn string) *CreateTagsRequestBuilder {
	b := &CreateTagsRequestBuilder{}
	b.v.ResourceArn = resourceArn
	return b
}

func (b *CreateTagsRequestBuilder) Tags(tags map[string]string) *CreateTagsRequestBuilder {
	b.v.Tags = Tags(tags).Clone()
	return b
}

func (b *CreateTagsRequestBuilder) AddTagsEntry(key, value string) *CreateTagsRequestBuilder {
	if err := b.v.Tags.Add(key, value); err != nil {
		b.fail(err)
	}
	return b
}

func (b *CreateTagsRequestBuilder) ClearTagsEntries() *CreateTagsRequestBuilder {
	b.v.Tags.Clear()
	return b
}

func (b *CreateTagsRequestBuilder) Build() (CreateTagsRequest, error) { return b.build() }

type DeleteTagsRequestBuilder struct {
	builder[DeleteTagsRequest]
}

func NewDeleteTagsRequest(resourceArn string) *DeleteTagsRequestBuilder {
	b := &DeleteTagsRequestBuilder{}
	b.v.ResourceArn = resourceArn
	return b
}

func (b *DeleteTagsRequestBuilder) TagKeys(keys ...string) *DeleteTagsRequestBuilder {
	b.v.TagKeys = slices.Clone(keys)
	return b
}

func (b *DeleteTagsRequestBuilder) Build() (DeleteTagsRequest, error) { return b.build() }
