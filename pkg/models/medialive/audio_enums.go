package medialive

// Enumerations used by audio descriptions and codec settings. Values() lists the
// values known to this package; the service may accept more.

type AacCodingMode string

const (
	AacCodingModeAdReceiverMix AacCodingMode = "AD_RECEIVER_MIX"
	AacCodingModeCodingMode10  AacCodingMode = "CODING_MODE_1_0"
	AacCodingModeCodingMode11  AacCodingMode = "CODING_MODE_1_1"
	AacCodingModeCodingMode20  AacCodingMode = "CODING_MODE_2_0"
	AacCodingModeCodingMode51  AacCodingMode = "CODING_MODE_5_1"
)

func (AacCodingMode) Values() []AacCodingMode {
	return []AacCodingMode{
		AacCodingModeAdReceiverMix,
		AacCodingModeCodingMode10,
		AacCodingModeCodingMode11,
		AacCodingModeCodingMode20,
		AacCodingModeCodingMode51,
	}
}

type AacInputType string

const (
	AacInputTypeBroadcasterMixedAd AacInputType = "BROADCASTER_MIXED_AD"
	AacInputTypeNormal             AacInputType = "NORMAL"
)

func (AacInputType) Values() []AacInputType {
	return []AacInputType{
		AacInputTypeBroadcasterMixedAd,
		AacInputTypeNormal,
	}
}

type AacProfile string

const (
	AacProfileHev1 AacProfile = "HEV1"
	AacProfileHev2 AacProfile = "HEV2"
	AacProfileLc   AacProfile = "LC"
)

func (AacProfile) Values() []AacProfile {
	return []AacProfile{
		AacProfileHev1,
		AacProfileHev2,
		AacProfileLc,
	}
}

type AacRateControlMode string

const (
	AacRateControlModeCbr AacRateControlMode = "CBR"
	AacRateControlModeVbr AacRateControlMode = "VBR"
)

func (AacRateControlMode) Values() []AacRateControlMode {
	return []AacRateControlMode{
		AacRateControlModeCbr,
		AacRateControlModeVbr,
	}
}

type AacRawFormat string

const (
	AacRawFormatLatmLoas AacRawFormat = "LATM_LOAS"
	AacRawFormatNone     AacRawFormat = "NONE"
)

func (AacRawFormat) Values() []AacRawFormat {
	return []AacRawFormat{
		AacRawFormatLatmLoas,
		AacRawFormatNone,
	}
}

type AacSpec string

const (
	AacSpecMpeg2 AacSpec = "MPEG2"
	AacSpecMpeg4 AacSpec = "MPEG4"
)

func (AacSpec) Values() []AacSpec {
	return []AacSpec{
		AacSpecMpeg2,
		AacSpecMpeg4,
	}
}

type AacVbrQuality string

const (
	AacVbrQualityHigh       AacVbrQuality = "HIGH"
	AacVbrQualityLow        AacVbrQuality = "LOW"
	AacVbrQualityMediumHigh AacVbrQuality = "MEDIUM_HIGH"
	AacVbrQualityMediumLow  AacVbrQuality = "MEDIUM_LOW"
)

func (AacVbrQuality) Values() []AacVbrQuality {
	return []AacVbrQuality{
		AacVbrQualityHigh,
		AacVbrQualityLow,
		AacVbrQualityMediumHigh,
		AacVbrQualityMediumLow,
	}
}

// Ac3BitstreamMode is the Dolby bitstream mode (bsmod) signalled in the stream.
type Ac3BitstreamMode string

const (
	Ac3BitstreamModeCommentary       Ac3BitstreamMode = "COMMENTARY"
	Ac3BitstreamModeCompleteMain     Ac3BitstreamMode = "COMPLETE_MAIN"
	Ac3BitstreamModeDialogue         Ac3BitstreamMode = "DIALOGUE"
	Ac3BitstreamModeEmergency        Ac3BitstreamMode = "EMERGENCY"
	Ac3BitstreamModeHearingImpaired  Ac3BitstreamMode = "HEARING_IMPAIRED"
	Ac3BitstreamModeMusicAndEffects  Ac3BitstreamMode = "MUSIC_AND_EFFECTS"
	Ac3BitstreamModeVisuallyImpaired Ac3BitstreamMode = "VISUALLY_IMPAIRED"
	Ac3BitstreamModeVoiceOver        Ac3BitstreamMode = "VOICE_OVER"
)

func (Ac3BitstreamMode) Values() []Ac3BitstreamMode {
	return []Ac3BitstreamMode{
		Ac3BitstreamModeCommentary,
		Ac3BitstreamModeCompleteMain,
		Ac3BitstreamModeDialogue,
		Ac3BitstreamModeEmergency,
		Ac3BitstreamModeHearingImpaired,
		Ac3BitstreamModeMusicAndEffects,
		Ac3BitstreamModeVisuallyImpaired,
		Ac3BitstreamModeVoiceOver,
	}
}

type Ac3CodingMode string

const (
	Ac3CodingModeCodingMode10    Ac3CodingMode = "CODING_MODE_1_0"
	Ac3CodingModeCodingMode11    Ac3CodingMode = "CODING_MODE_1_1"
	Ac3CodingModeCodingMode20    Ac3CodingMode = "CODING_MODE_2_0"
	Ac3CodingModeCodingMode32Lfe Ac3CodingMode = "CODING_MODE_3_2_LFE"
)

func (Ac3CodingMode) Values() []Ac3CodingMode {
	return []Ac3CodingMode{
		Ac3CodingModeCodingMode10,
		Ac3CodingModeCodingMode11,
		Ac3CodingModeCodingMode20,
		Ac3CodingModeCodingMode32Lfe,
	}
}

type Ac3DrcProfile string

const (
	Ac3DrcProfileFilmStandard Ac3DrcProfile = "FILM_STANDARD"
	Ac3DrcProfileNone         Ac3DrcProfile = "NONE"
)

func (Ac3DrcProfile) Values() []Ac3DrcProfile {
	return []Ac3DrcProfile{
		Ac3DrcProfileFilmStandard,
		Ac3DrcProfileNone,
	}
}

type Ac3LfeFilter string

const (
	Ac3LfeFilterDisabled Ac3LfeFilter = "DISABLED"
	Ac3LfeFilterEnabled  Ac3LfeFilter = "ENABLED"
)

func (Ac3LfeFilter) Values() []Ac3LfeFilter {
	return []Ac3LfeFilter{
		Ac3LfeFilterDisabled,
		Ac3LfeFilterEnabled,
	}
}

type Ac3MetadataControl string

const (
	Ac3MetadataControlFollowInput   Ac3MetadataControl = "FOLLOW_INPUT"
	Ac3MetadataControlUseConfigured Ac3MetadataControl = "USE_CONFIGURED"
)

func (Ac3MetadataControl) Values() []Ac3MetadataControl {
	return []Ac3MetadataControl{
		Ac3MetadataControlFollowInput,
		Ac3MetadataControlUseConfigured,
	}
}

type Eac3AttenuationControl string

const (
	Eac3AttenuationControlAttenuate3Db Eac3AttenuationControl = "ATTENUATE_3_DB"
	Eac3AttenuationControlNone         Eac3AttenuationControl = "NONE"
)

func (Eac3AttenuationControl) Values() []Eac3AttenuationControl {
	return []Eac3AttenuationControl{
		Eac3AttenuationControlAttenuate3Db,
		Eac3AttenuationControlNone,
	}
}

type Eac3BitstreamMode string

const (
	Eac3BitstreamModeCommentary       Eac3BitstreamMode = "COMMENTARY"
	Eac3BitstreamModeCompleteMain     Eac3BitstreamMode = "COMPLETE_MAIN"
	Eac3BitstreamModeEmergency        Eac3BitstreamMode = "EMERGENCY"
	Eac3BitstreamModeHearingImpaired  Eac3BitstreamMode = "HEARING_IMPAIRED"
	Eac3BitstreamModeVisuallyImpaired Eac3BitstreamMode = "VISUALLY_IMPAIRED"
)

func (Eac3BitstreamMode) Values() []Eac3BitstreamMode {
	return []Eac3BitstreamMode{
		Eac3BitstreamModeCommentary,
		Eac3BitstreamModeCompleteMain,
		Eac3BitstreamModeEmergency,
		Eac3BitstreamModeHearingImpaired,
		Eac3BitstreamModeVisuallyImpaired,
	}
}

type Eac3CodingMode string

const (
	Eac3CodingModeCodingMode10 Eac3CodingMode = "CODING_MODE_1_0"
	Eac3CodingModeCodingMode20 Eac3CodingMode = "CODING_MODE_2_0"
	Eac3CodingModeCodingMode32 Eac3CodingMode = "CODING_MODE_3_2"
)

func (Eac3CodingMode) Values() []Eac3CodingMode {
	return []Eac3CodingMode{
		Eac3CodingModeCodingMode10,
		Eac3CodingModeCodingMode20,
		Eac3CodingModeCodingMode32,
	}
}

type Eac3DcFilter string

const (
	Eac3DcFilterDisabled Eac3DcFilter = "DISABLED"
	Eac3DcFilterEnabled  Eac3DcFilter = "ENABLED"
)

func (Eac3DcFilter) Values() []Eac3DcFilter {
	return []Eac3DcFilter{
		Eac3DcFilterDisabled,
		Eac3DcFilterEnabled,
	}
}

type Eac3DrcLine string

const (
	Eac3DrcLineFilmLight     Eac3DrcLine = "FILM_LIGHT"
	Eac3DrcLineFilmStandard  Eac3DrcLine = "FILM_STANDARD"
	Eac3DrcLineMusicLight    Eac3DrcLine = "MUSIC_LIGHT"
	Eac3DrcLineMusicStandard Eac3DrcLine = "MUSIC_STANDARD"
	Eac3DrcLineNone          Eac3DrcLine = "NONE"
	Eac3DrcLineSpeech        Eac3DrcLine = "SPEECH"
)

func (Eac3DrcLine) Values() []Eac3DrcLine {
	return []Eac3DrcLine{
		Eac3DrcLineFilmLight,
		Eac3DrcLineFilmStandard,
		Eac3DrcLineMusicLight,
		Eac3DrcLineMusicStandard,
		Eac3DrcLineNone,
		Eac3DrcLineSpeech,
	}
}

type Eac3DrcRf string

const (
	Eac3DrcRfFilmLight     Eac3DrcRf = "FILM_LIGHT"
	Eac3DrcRfFilmStandard  Eac3DrcRf = "FILM_STANDARD"
	Eac3DrcRfMusicLight    Eac3DrcRf = "MUSIC_LIGHT"
	Eac3DrcRfMusicStandard Eac3DrcRf = "MUSIC_STANDARD"
	Eac3DrcRfNone          Eac3DrcRf = "NONE"
	Eac3DrcRfSpeech        Eac3DrcRf = "SPEECH"
)

func (Eac3DrcRf) Values() []Eac3DrcRf {
	return []Eac3DrcRf{
		Eac3DrcRfFilmLight,
		Eac3DrcRfFilmStandard,
		Eac3DrcRfMusicLight,
		Eac3DrcRfMusicStandard,
		Eac3DrcRfNone,
		Eac3DrcRfSpeech,
	}
}

type Eac3LfeControl string

const (
	Eac3LfeControlLfe   Eac3LfeControl = "LFE"
	Eac3LfeControlNoLfe Eac3LfeControl = "NO_LFE"
)

func (Eac3LfeControl) Values() []Eac3LfeControl {
	return []Eac3LfeControl{
		Eac3LfeControlLfe,
		Eac3LfeControlNoLfe,
	}
}

type Eac3LfeFilter string

const (
	Eac3LfeFilterDisabled Eac3LfeFilter = "DISABLED"
	Eac3LfeFilterEnabled  Eac3LfeFilter = "ENABLED"
)

func (Eac3LfeFilter) Values() []Eac3LfeFilter {
	return []Eac3LfeFilter{
		Eac3LfeFilterDisabled,
		Eac3LfeFilterEnabled,
	}
}

type Eac3MetadataControl string

const (
	Eac3MetadataControlFollowInput   Eac3MetadataControl = "FOLLOW_INPUT"
	Eac3MetadataControlUseConfigured Eac3MetadataControl = "USE_CONFIGURED"
)

func (Eac3MetadataControl) Values() []Eac3MetadataControl {
	return []Eac3MetadataControl{
		Eac3MetadataControlFollowInput,
		Eac3MetadataControlUseConfigured,
	}
}

type Eac3PassthroughControl string

const (
	Eac3PassthroughControlNoPassthrough Eac3PassthroughControl = "NO_PASSTHROUGH"
	Eac3PassthroughControlWhenPossible  Eac3PassthroughControl = "WHEN_POSSIBLE"
)

func (Eac3PassthroughControl) Values() []Eac3PassthroughControl {
	return []Eac3PassthroughControl{
		Eac3PassthroughControlNoPassthrough,
		Eac3PassthroughControlWhenPossible,
	}
}

type Eac3PhaseControl string

const (
	Eac3PhaseControlNoShift        Eac3PhaseControl = "NO_SHIFT"
	Eac3PhaseControlShift90Degrees Eac3PhaseControl = "SHIFT_90_DEGREES"
)

func (Eac3PhaseControl) Values() []Eac3PhaseControl {
	return []Eac3PhaseControl{
		Eac3PhaseControlNoShift,
		Eac3PhaseControlShift90Degrees,
	}
}

type Eac3StereoDownmix string

const (
	Eac3StereoDownmixDpl2         Eac3StereoDownmix = "DPL2"
	Eac3StereoDownmixLoRo         Eac3StereoDownmix = "LO_RO"
	Eac3StereoDownmixLtRt         Eac3StereoDownmix = "LT_RT"
	Eac3StereoDownmixNotIndicated Eac3StereoDownmix = "NOT_INDICATED"
)

func (Eac3StereoDownmix) Values() []Eac3StereoDownmix {
	return []Eac3StereoDownmix{
		Eac3StereoDownmixDpl2,
		Eac3StereoDownmixLoRo,
		Eac3StereoDownmixLtRt,
		Eac3StereoDownmixNotIndicated,
	}
}

type Eac3SurroundExMode string

const (
	Eac3SurroundExModeDisabled     Eac3SurroundExMode = "DISABLED"
	Eac3SurroundExModeEnabled      Eac3SurroundExMode = "ENABLED"
	Eac3SurroundExModeNotIndicated Eac3SurroundExMode = "NOT_INDICATED"
)

func (Eac3SurroundExMode) Values() []Eac3SurroundExMode {
	return []Eac3SurroundExMode{
		Eac3SurroundExModeDisabled,
		Eac3SurroundExModeEnabled,
		Eac3SurroundExModeNotIndicated,
	}
}

type Eac3SurroundMode string

const (
	Eac3SurroundModeDisabled     Eac3SurroundMode = "DISABLED"
	Eac3SurroundModeEnabled      Eac3SurroundMode = "ENABLED"
	Eac3SurroundModeNotIndicated Eac3SurroundMode = "NOT_INDICATED"
)

func (Eac3SurroundMode) Values() []Eac3SurroundMode {
	return []Eac3SurroundMode{
		Eac3SurroundModeDisabled,
		Eac3SurroundModeEnabled,
		Eac3SurroundModeNotIndicated,
	}
}

type Mp2CodingMode string

const (
	Mp2CodingModeCodingMode10 Mp2CodingMode = "CODING_MODE_1_0"
	Mp2CodingModeCodingMode20 Mp2CodingMode = "CODING_MODE_2_0"
)

func (Mp2CodingMode) Values() []Mp2CodingMode {
	return []Mp2CodingMode{
		Mp2CodingModeCodingMode10,
		Mp2CodingModeCodingMode20,
	}
}

type AudioType string

const (
	AudioTypeCleanEffects             AudioType = "CLEAN_EFFECTS"
	AudioTypeHearingImpaired          AudioType = "HEARING_IMPAIRED"
	AudioTypeUndefined                AudioType = "UNDEFINED"
	AudioTypeVisualImpairedCommentary AudioType = "VISUAL_IMPAIRED_COMMENTARY"
)

func (AudioType) Values() []AudioType {
	return []AudioType{
		AudioTypeCleanEffects,
		AudioTypeHearingImpaired,
		AudioTypeUndefined,
		AudioTypeVisualImpairedCommentary,
	}
}

type AudioDescriptionAudioTypeControl string

const (
	AudioDescriptionAudioTypeControlFollowInput   AudioDescriptionAudioTypeControl = "FOLLOW_INPUT"
	AudioDescriptionAudioTypeControlUseConfigured AudioDescriptionAudioTypeControl = "USE_CONFIGURED"
)

func (AudioDescriptionAudioTypeControl) Values() []AudioDescriptionAudioTypeControl {
	return []AudioDescriptionAudioTypeControl{
		AudioDescriptionAudioTypeControlFollowInput,
		AudioDescriptionAudioTypeControlUseConfigured,
	}
}

type AudioDescriptionLanguageCodeControl string

const (
	AudioDescriptionLanguageCodeControlFollowInput   AudioDescriptionLanguageCodeControl = "FOLLOW_INPUT"
	AudioDescriptionLanguageCodeControlUseConfigured AudioDescriptionLanguageCodeControl = "USE_CONFIGURED"
)

func (AudioDescriptionLanguageCodeControl) Values() []AudioDescriptionLanguageCodeControl {
	return []AudioDescriptionLanguageCodeControl{
		AudioDescriptionLanguageCodeControlFollowInput,
		AudioDescriptionLanguageCodeControlUseConfigured,
	}
}

type AudioNormalizationAlgorithm string

const (
	AudioNormalizationAlgorithmItu17701 AudioNormalizationAlgorithm = "ITU_1770_1"
	AudioNormalizationAlgorithmItu17702 AudioNormalizationAlgorithm = "ITU_1770_2"
)

func (AudioNormalizationAlgorithm) Values() []AudioNormalizationAlgorithm {
	return []AudioNormalizationAlgorithm{
		AudioNormalizationAlgorithmItu17701,
		AudioNormalizationAlgorithmItu17702,
	}
}

type AudioNormalizationAlgorithmControl string

const (
	AudioNormalizationAlgorithmControlCorrectAudio AudioNormalizationAlgorithmControl = "CORRECT_AUDIO"
)

func (AudioNormalizationAlgorithmControl) Values() []AudioNormalizationAlgorithmControl {
	return []AudioNormalizationAlgorithmControl{
		AudioNormalizationAlgorithmControlCorrectAudio,
	}
}
