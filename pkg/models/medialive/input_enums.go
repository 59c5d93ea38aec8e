package medialive

type InputDeblockFilter string

const (
	InputDeblockFilterDisabled InputDeblockFilter = "DISABLED"
	InputDeblockFilterEnabled  InputDeblockFilter = "ENABLED"
)

func (InputDeblockFilter) Values() []InputDeblockFilter {
	return []InputDeblockFilter{
		InputDeblockFilterDisabled,
		InputDeblockFilterEnabled,
	}
}

type InputDenoiseFilter string

const (
	InputDenoiseFilterDisabled InputDenoiseFilter = "DISABLED"
	InputDenoiseFilterEnabled  InputDenoiseFilter = "ENABLED"
)

func (InputDenoiseFilter) Values() []InputDenoiseFilter {
	return []InputDenoiseFilter{
		InputDenoiseFilterDisabled,
		InputDenoiseFilterEnabled,
	}
}

type InputFilter string

const (
	InputFilterAuto     InputFilter = "AUTO"
	InputFilterDisabled InputFilter = "DISABLED"
	InputFilterForced   InputFilter = "FORCED"
)

func (InputFilter) Values() []InputFilter {
	return []InputFilter{
		InputFilterAuto,
		InputFilterDisabled,
		InputFilterForced,
	}
}

type Smpte2038DataPreference string

const (
	Smpte2038DataPreferenceIgnore Smpte2038DataPreference = "IGNORE"
	Smpte2038DataPreferencePrefer Smpte2038DataPreference = "PREFER"
)

func (Smpte2038DataPreference) Values() []Smpte2038DataPreference {
	return []Smpte2038DataPreference{
		Smpte2038DataPreferenceIgnore,
		Smpte2038DataPreferencePrefer,
	}
}

type InputSourceEndBehavior string

const (
	InputSourceEndBehaviorContinue InputSourceEndBehavior = "CONTINUE"
	InputSourceEndBehaviorLoop     InputSourceEndBehavior = "LOOP"
)

func (InputSourceEndBehavior) Values() []InputSourceEndBehavior {
	return []InputSourceEndBehavior{
		InputSourceEndBehaviorContinue,
		InputSourceEndBehaviorLoop,
	}
}

type InputCodec string

const (
	InputCodecMpeg2 InputCodec = "MPEG2"
	InputCodecAvc   InputCodec = "AVC"
	InputCodecHevc  InputCodec = "HEVC"
)

func (InputCodec) Values() []InputCodec {
	return []InputCodec{
		InputCodecMpeg2,
		InputCodecAvc,
		InputCodecHevc,
	}
}

type InputMaximumBitrate string

const (
	InputMaximumBitrateMax10Mbps InputMaximumBitrate = "MAX_10_MBPS"
	InputMaximumBitrateMax20Mbps InputMaximumBitrate = "MAX_20_MBPS"
	InputMaximumBitrateMax50Mbps InputMaximumBitrate = "MAX_50_MBPS"
)

func (InputMaximumBitrate) Values() []InputMaximumBitrate {
	return []InputMaximumBitrate{
		InputMaximumBitrateMax10Mbps,
		InputMaximumBitrateMax20Mbps,
		InputMaximumBitrateMax50Mbps,
	}
}

type InputResolution string

const (
	InputResolutionSd  InputResolution = "SD"
	InputResolutionHd  InputResolution = "HD"
	InputResolutionUhd InputResolution = "UHD"
)

func (InputResolution) Values() []InputResolution {
	return []InputResolution{
		InputResolutionSd,
		InputResolutionHd,
		InputResolutionUhd,
	}
}

type AudioLanguageSelectionPolicy string

const (
	AudioLanguageSelectionPolicyLoose  AudioLanguageSelectionPolicy = "LOOSE"
	AudioLanguageSelectionPolicyStrict AudioLanguageSelectionPolicy = "STRICT"
)

func (AudioLanguageSelectionPolicy) Values() []AudioLanguageSelectionPolicy {
	return []AudioLanguageSelectionPolicy{
		AudioLanguageSelectionPolicyLoose,
		AudioLanguageSelectionPolicyStrict,
	}
}
