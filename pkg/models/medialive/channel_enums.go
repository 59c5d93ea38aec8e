package medialive

type ChannelClass string

const (
	ChannelClassStandard       ChannelClass = "STANDARD"
	ChannelClassSinglePipeline ChannelClass = "SINGLE_PIPELINE"
)

func (ChannelClass) Values() []ChannelClass {
	return []ChannelClass{
		ChannelClassStandard,
		ChannelClassSinglePipeline,
	}
}

type ChannelState string

const (
	ChannelStateCreating     ChannelState = "CREATING"
	ChannelStateCreateFailed ChannelState = "CREATE_FAILED"
	ChannelStateIdle         ChannelState = "IDLE"
	ChannelStateStarting     ChannelState = "STARTING"
	ChannelStateRunning      ChannelState = "RUNNING"
	ChannelStateRecovering   ChannelState = "RECOVERING"
	ChannelStateStopping     ChannelState = "STOPPING"
	ChannelStateDeleting     ChannelState = "DELETING"
	ChannelStateDeleted      ChannelState = "DELETED"
	ChannelStateUpdating     ChannelState = "UPDATING"
	ChannelStateUpdateFailed ChannelState = "UPDATE_FAILED"
)

func (ChannelState) Values() []ChannelState {
	return []ChannelState{
		ChannelStateCreating,
		ChannelStateCreateFailed,
		ChannelStateIdle,
		ChannelStateStarting,
		ChannelStateRunning,
		ChannelStateRecovering,
		ChannelStateStopping,
		ChannelStateDeleting,
		ChannelStateDeleted,
		ChannelStateUpdating,
		ChannelStateUpdateFailed,
	}
}

type LogLevel string

const (
	LogLevelError    LogLevel = "ERROR"
	LogLevelWarning  LogLevel = "WARNING"
	LogLevelInfo     LogLevel = "INFO"
	LogLevelDebug    LogLevel = "DEBUG"
	LogLevelDisabled LogLevel = "DISABLED"
)

func (LogLevel) Values() []LogLevel {
	return []LogLevel{
		LogLevelError,
		LogLevelWarning,
		LogLevelInfo,
		LogLevelDebug,
		LogLevelDisabled,
	}
}

type GlobalConfigurationInputEndAction string

const (
	GlobalConfigurationInputEndActionNone                GlobalConfigurationInputEndAction = "NONE"
	GlobalConfigurationInputEndActionSwitchAndLoopInputs GlobalConfigurationInputEndAction = "SWITCH_AND_LOOP_INPUTS"
)

func (GlobalConfigurationInputEndAction) Values() []GlobalConfigurationInputEndAction {
	return []GlobalConfigurationInputEndAction{
		GlobalConfigurationInputEndActionNone,
		GlobalConfigurationInputEndActionSwitchAndLoopInputs,
	}
}

type GlobalConfigurationOutputLockingMode string

const (
	GlobalConfigurationOutputLockingModeEpochLocking    GlobalConfigurationOutputLockingMode = "EPOCH_LOCKING"
	GlobalConfigurationOutputLockingModePipelineLocking GlobalConfigurationOutputLockingMode = "PIPELINE_LOCKING"
)

func (GlobalConfigurationOutputLockingMode) Values() []GlobalConfigurationOutputLockingMode {
	return []GlobalConfigurationOutputLockingMode{
		GlobalConfigurationOutputLockingModeEpochLocking,
		GlobalConfigurationOutputLockingModePipelineLocking,
	}
}

type GlobalConfigurationOutputTimingSource string

const (
	GlobalConfigurationOutputTimingSourceInputClock  GlobalConfigurationOutputTimingSource = "INPUT_CLOCK"
	GlobalConfigurationOutputTimingSourceSystemClock GlobalConfigurationOutputTimingSource = "SYSTEM_CLOCK"
)

func (GlobalConfigurationOutputTimingSource) Values() []GlobalConfigurationOutputTimingSource {
	return []GlobalConfigurationOutputTimingSource{
		GlobalConfigurationOutputTimingSourceInputClock,
		GlobalConfigurationOutputTimingSourceSystemClock,
	}
}

type GlobalConfigurationLowFramerateInputs string

const (
	GlobalConfigurationLowFramerateInputsDisabled GlobalConfigurationLowFramerateInputs = "DISABLED"
	GlobalConfigurationLowFramerateInputsEnabled  GlobalConfigurationLowFramerateInputs = "ENABLED"
)

func (GlobalConfigurationLowFramerateInputs) Values() []GlobalConfigurationLowFramerateInputs {
	return []GlobalConfigurationLowFramerateInputs{
		GlobalConfigurationLowFramerateInputsDisabled,
		GlobalConfigurationLowFramerateInputsEnabled,
	}
}

type TimecodeConfigSource string

const (
	TimecodeConfigSourceEmbedded    TimecodeConfigSource = "EMBEDDED"
	TimecodeConfigSourceSystemclock TimecodeConfigSource = "SYSTEMCLOCK"
	TimecodeConfigSourceZerobased   TimecodeConfigSource = "ZEROBASED"
)

func (TimecodeConfigSource) Values() []TimecodeConfigSource {
	return []TimecodeConfigSource{
		TimecodeConfigSourceEmbedded,
		TimecodeConfigSourceSystemclock,
		TimecodeConfigSourceZerobased,
	}
}
