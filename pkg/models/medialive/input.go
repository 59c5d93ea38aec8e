package medialive

import "reflect"

// InputAttachment binds an input to a channel.
type InputAttachment struct {
	InputAttachmentName *string        `json:"InputAttachmentName,omitempty"`
	InputId             *string        `json:"InputId,omitempty"`
	InputSettings       *InputSettings `json:"InputSettings,omitempty"`
}

type InputSettings struct {
	AudioSelectors   []AudioSelector    `json:"AudioSelectors,omitempty"`
	CaptionSelectors []CaptionSelector  `json:"CaptionSelectors,omitempty"`
	DeblockFilter    InputDeblockFilter `json:"DeblockFilter,omitempty"`
	DenoiseFilter    InputDenoiseFilter `json:"DenoiseFilter,omitempty"`
	// Applies only when InputFilter is FORCED or AUTO.
	FilterStrength          *int32                  `json:"FilterStrength,omitempty" validate:"omitempty,min=1,max=5"`
	InputFilter             InputFilter             `json:"InputFilter,omitempty"`
	Smpte2038DataPreference Smpte2038DataPreference `json:"Smpte2038DataPreference,omitempty"`
	SourceEndBehavior       InputSourceEndBehavior  `json:"SourceEndBehavior,omitempty"`
}

// InputSpecification sizes the channel's input processing.
type InputSpecification struct {
	Codec          InputCodec          `json:"Codec,omitempty"`
	MaximumBitrate InputMaximumBitrate `json:"MaximumBitrate,omitempty"`
	Resolution     InputResolution     `json:"Resolution,omitempty"`
}

type AudioSelector struct {
	Name             string                 `json:"Name" validate:"min=1"`
	SelectorSettings *AudioSelectorSettings `json:"SelectorSettings,omitempty"`
}

// AudioSelectorSettings picks the audio of an input by language, PID or track.
type AudioSelectorSettings struct {
	Selection AudioSelection
}

type AudioSelection interface {
	Variant
	isAudioSelection()
}

var audioSelectionUnion = newUnion("AudioSelectorSettings", map[string]func() AudioSelection{
	"AudioLanguageSelection": func() AudioSelection { return new(AudioLanguageSelection) },
	"AudioPidSelection":      func() AudioSelection { return new(AudioPidSelection) },
	"AudioTrackSelection":    func() AudioSelection { return new(AudioTrackSelection) },
})

func (s AudioSelectorSettings) MarshalJSON() ([]byte, error) {
	return audioSelectionUnion.encode(s.Selection)
}

func (s *AudioSelectorSettings) UnmarshalJSON(b []byte) error {
	v, err := audioSelectionUnion.decode(b)
	if err != nil {
		return err
	}
	s.Selection = v
	return nil
}

func (s AudioSelectorSettings) Selected() (string, any) { return selected(s.Selection) }

func (AudioSelectorSettings) VariantTypes() map[string]reflect.Type {
	return audioSelectionUnion.variantTypes()
}

func (*AudioLanguageSelection) isAudioSelection() {}
func (*AudioPidSelection) isAudioSelection()      {}
func (*AudioTrackSelection) isAudioSelection()    {}
func (*UnknownVariant) isAudioSelection()         {}

func (*AudioLanguageSelection) WireKey() string { return "AudioLanguageSelection" }
func (*AudioPidSelection) WireKey() string      { return "AudioPidSelection" }
func (*AudioTrackSelection) WireKey() string    { return "AudioTrackSelection" }

type AudioLanguageSelection struct {
	LanguageCode            string                       `json:"LanguageCode" validate:"required"`
	LanguageSelectionPolicy AudioLanguageSelectionPolicy `json:"LanguageSelectionPolicy,omitempty"`
}

type AudioPidSelection struct {
	Pid int32 `json:"Pid" validate:"min=0,max=8191"`
}

type AudioTrackSelection struct {
	Tracks []AudioTrack `json:"Tracks,omitempty" validate:"required"`
}

// AudioTrack is a 1-based track index in the input.
type AudioTrack struct {
	Track int32 `json:"Track" validate:"min=1"`
}
