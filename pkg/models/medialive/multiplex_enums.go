package medialive

type PreferredChannelPipeline string

const (
	PreferredChannelPipelineCurrentlyActive PreferredChannelPipeline = "CURRENTLY_ACTIVE"
	PreferredChannelPipelinePipeline0       PreferredChannelPipeline = "PIPELINE_0"
	PreferredChannelPipelinePipeline1       PreferredChannelPipeline = "PIPELINE_1"
)

func (PreferredChannelPipeline) Values() []PreferredChannelPipeline {
	return []PreferredChannelPipeline{
		PreferredChannelPipelineCurrentlyActive,
		PreferredChannelPipelinePipeline0,
		PreferredChannelPipelinePipeline1,
	}
}

type MultiplexState string

const (
	MultiplexStateCreating     MultiplexState = "CREATING"
	MultiplexStateCreateFailed MultiplexState = "CREATE_FAILED"
	MultiplexStateIdle         MultiplexState = "IDLE"
	MultiplexStateStarting     MultiplexState = "STARTING"
	MultiplexStateRunning      MultiplexState = "RUNNING"
	MultiplexStateRecovering   MultiplexState = "RECOVERING"
	MultiplexStateStopping     MultiplexState = "STOPPING"
	MultiplexStateDeleting     MultiplexState = "DELETING"
	MultiplexStateDeleted      MultiplexState = "DELETED"
)

func (MultiplexState) Values() []MultiplexState {
	return []MultiplexState{
		MultiplexStateCreating,
		MultiplexStateCreateFailed,
		MultiplexStateIdle,
		MultiplexStateStarting,
		MultiplexStateRunning,
		MultiplexStateRecovering,
		MultiplexStateStopping,
		MultiplexStateDeleting,
		MultiplexStateDeleted,
	}
}
