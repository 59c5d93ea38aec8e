package medialive

import "reflect"

type CaptionDescription struct {
	// Name of the caption selector in the input attachment that feeds this description.
	CaptionSelectorName string                      `json:"CaptionSelectorName" validate:"required"`
	DestinationSettings *CaptionDestinationSettings `json:"DestinationSettings,omitempty"`
	LanguageCode        *string                     `json:"LanguageCode,omitempty"`
	LanguageDescription *string                     `json:"LanguageDescription,omitempty"`
	Name                string                      `json:"Name" validate:"required"`
}

// ===== Destination union =====

// CaptionDestinationSettings selects how captions are carried in the output.
type CaptionDestinationSettings struct {
	Destination CaptionDestination
}

type CaptionDestination interface {
	Variant
	isCaptionDestination()
}

var captionDestinationUnion = newUnion("CaptionDestinationSettings", map[string]func() CaptionDestination{
	"AribDestinationSettings":               func() CaptionDestination { return new(AribDestinationSettings) },
	"BurnInDestinationSettings":             func() CaptionDestination { return new(BurnInDestinationSettings) },
	"DvbSubDestinationSettings":             func() CaptionDestination { return new(DvbSubDestinationSettings) },
	"EmbeddedDestinationSettings":           func() CaptionDestination { return new(EmbeddedDestinationSettings) },
	"EmbeddedPlusScte20DestinationSettings": func() CaptionDestination { return new(EmbeddedPlusScte20DestinationSettings) },
	"RtmpCaptionInfoDestinationSettings":    func() CaptionDestination { return new(RtmpCaptionInfoDestinationSettings) },
	"Scte20PlusEmbeddedDestinationSettings": func() CaptionDestination { return new(Scte20PlusEmbeddedDestinationSettings) },
	"Scte27DestinationSettings":             func() CaptionDestination { return new(Scte27DestinationSettings) },
	"SmpteTtDestinationSettings":            func() CaptionDestination { return new(SmpteTtDestinationSettings) },
	"TeletextDestinationSettings":           func() CaptionDestination { return new(TeletextDestinationSettings) },
	"TtmlDestinationSettings":               func() CaptionDestination { return new(TtmlDestinationSettings) },
})

func (s CaptionDestinationSettings) MarshalJSON() ([]byte, error) {
	return captionDestinationUnion.encode(s.Destination)
}

func (s *CaptionDestinationSettings) UnmarshalJSON(b []byte) error {
	v, err := captionDestinationUnion.decode(b)
	if err != nil {
		return err
	}
	s.Destination = v
	return nil
}

func (s CaptionDestinationSettings) Selected() (string, any) { return selected(s.Destination) }

func (CaptionDestinationSettings) VariantTypes() map[string]reflect.Type {
	return captionDestinationUnion.variantTypes()
}

func (*AribDestinationSettings) isCaptionDestination()               {}
func (*BurnInDestinationSettings) isCaptionDestination()             {}
func (*DvbSubDestinationSettings) isCaptionDestination()             {}
func (*EmbeddedDestinationSettings) isCaptionDestination()           {}
func (*EmbeddedPlusScte20DestinationSettings) isCaptionDestination() {}
func (*RtmpCaptionInfoDestinationSettings) isCaptionDestination()    {}
func (*Scte20PlusEmbeddedDestinationSettings) isCaptionDestination() {}
func (*Scte27DestinationSettings) isCaptionDestination()             {}
func (*SmpteTtDestinationSettings) isCaptionDestination()            {}
func (*TeletextDestinationSettings) isCaptionDestination()           {}
func (*TtmlDestinationSettings) isCaptionDestination()               {}
func (*UnknownVariant) isCaptionDestination()                        {}

func (*AribDestinationSettings) WireKey() string     { return "AribDestinationSettings" }
func (*BurnInDestinationSettings) WireKey() string   { return "BurnInDestinationSettings" }
func (*DvbSubDestinationSettings) WireKey() string   { return "DvbSubDestinationSettings" }
func (*EmbeddedDestinationSettings) WireKey() string { return "EmbeddedDestinationSettings" }
func (*EmbeddedPlusScte20DestinationSettings) WireKey() string {
	return "EmbeddedPlusScte20DestinationSettings"
}
func (*RtmpCaptionInfoDestinationSettings) WireKey() string {
	return "RtmpCaptionInfoDestinationSettings"
}
func (*Scte20PlusEmbeddedDestinationSettings) WireKey() string {
	return "Scte20PlusEmbeddedDestinationSettings"
}
func (*Scte27DestinationSettings) WireKey() string   { return "Scte27DestinationSettings" }
func (*SmpteTtDestinationSettings) WireKey() string  { return "SmpteTtDestinationSettings" }
func (*TeletextDestinationSettings) WireKey() string { return "TeletextDestinationSettings" }
func (*TtmlDestinationSettings) WireKey() string     { return "TtmlDestinationSettings" }

// ===== Destination variants =====

type AribDestinationSettings struct{}

// BurnInDestinationSettings renders captions into the video raster.
type BurnInDestinationSettings struct {
	Alignment         BurnInAlignment       `json:"Alignment,omitempty"`
	BackgroundColor   BurnInBackgroundColor `json:"BackgroundColor,omitempty"`
	BackgroundOpacity *int32                `json:"BackgroundOpacity,omitempty" validate:"omitempty,min=0,max=255"`
	// External font file. Only TTF is accepted by the service.
	Font                *InputLocation            `json:"Font,omitempty"`
	FontColor           BurnInFontColor           `json:"FontColor,omitempty"`
	FontOpacity         *int32                    `json:"FontOpacity,omitempty" validate:"omitempty,min=0,max=255"`
	FontResolution      *int32                    `json:"FontResolution,omitempty" validate:"omitempty,min=96,max=600"`
	FontSize            *string                   `json:"FontSize,omitempty"`
	OutlineColor        BurnInOutlineColor        `json:"OutlineColor,omitempty"`
	OutlineSize         *int32                    `json:"OutlineSize,omitempty" validate:"omitempty,min=0,max=10"`
	ShadowColor         BurnInShadowColor         `json:"ShadowColor,omitempty"`
	ShadowOpacity       *int32                    `json:"ShadowOpacity,omitempty" validate:"omitempty,min=0,max=255"`
	ShadowXOffset       *int32                    `json:"ShadowXOffset,omitempty"`
	ShadowYOffset       *int32                    `json:"ShadowYOffset,omitempty"`
	TeletextGridControl BurnInTeletextGridControl `json:"TeletextGridControl,omitempty"`
	XPosition           *int32                    `json:"XPosition,omitempty" validate:"omitempty,min=0"`
	YPosition           *int32                    `json:"YPosition,omitempty" validate:"omitempty,min=0"`
}

// DvbSubDestinationSettings carries captions as DVB-Sub bitmaps.
type DvbSubDestinationSettings struct {
	Alignment           DvbSubDestinationAlignment           `json:"Alignment,omitempty"`
	BackgroundColor     DvbSubDestinationBackgroundColor     `json:"BackgroundColor,omitempty"`
	BackgroundOpacity   *int32                               `json:"BackgroundOpacity,omitempty" validate:"omitempty,min=0,max=255"`
	Font                *InputLocation                       `json:"Font,omitempty"`
	FontColor           DvbSubDestinationFontColor           `json:"FontColor,omitempty"`
	FontOpacity         *int32                               `json:"FontOpacity,omitempty" validate:"omitempty,min=0,max=255"`
	FontResolution      *int32                               `json:"FontResolution,omitempty" validate:"omitempty,min=96,max=600"`
	FontSize            *string                              `json:"FontSize,omitempty"`
	OutlineColor        DvbSubDestinationOutlineColor        `json:"OutlineColor,omitempty"`
	OutlineSize         *int32                               `json:"OutlineSize,omitempty" validate:"omitempty,min=0,max=10"`
	ShadowColor         DvbSubDestinationShadowColor         `json:"ShadowColor,omitempty"`
	ShadowOpacity       *int32                               `json:"ShadowOpacity,omitempty" validate:"omitempty,min=0,max=255"`
	ShadowXOffset       *int32                               `json:"ShadowXOffset,omitempty"`
	ShadowYOffset       *int32                               `json:"ShadowYOffset,omitempty"`
	TeletextGridControl DvbSubDestinationTeletextGridControl `json:"TeletextGridControl,omitempty"`
	XPosition           *int32                               `json:"XPosition,omitempty" validate:"omitempty,min=0"`
	YPosition           *int32                               `json:"YPosition,omitempty" validate:"omitempty,min=0"`
}

type EmbeddedDestinationSettings struct{}

type EmbeddedPlusScte20DestinationSettings struct{}

type RtmpCaptionInfoDestinationSettings struct{}

type Scte20PlusEmbeddedDestinationSettings struct{}

type Scte27DestinationSettings struct{}

type SmpteTtDestinationSettings struct{}

type TeletextDestinationSettings struct{}

type TtmlDestinationSettings struct {
	StyleControl TtmlDestinationStyleControl `json:"StyleControl,omitempty"`
}

// InputLocation points at a file the service fetches, such as a font or a slate image.
type InputLocation struct {
	// Key of the parameter-store entry holding the password, not the password itself.
	PasswordParam *string `json:"PasswordParam,omitempty"`
	Uri           string  `json:"Uri" validate:"required"`
	Username      *string `json:"Username,omitempty"`
}

// ===== Selector union =====

// CaptionSelector names a caption track in an input.
type CaptionSelector struct {
	LanguageCode     *string                  `json:"LanguageCode,omitempty"`
	Name             string                   `json:"Name" validate:"required,min=1"`
	SelectorSettings *CaptionSelectorSettings `json:"SelectorSettings,omitempty"`
}

type CaptionSelectorSettings struct {
	Source CaptionSource
}

type CaptionSource interface {
	Variant
	isCaptionSource()
}

var captionSelectorUnion = newUnion("CaptionSelectorSettings", map[string]func() CaptionSource{
	"AribSourceSettings":     func() CaptionSource { return new(AribSourceSettings) },
	"DvbSubSourceSettings":   func() CaptionSource { return new(DvbSubSourceSettings) },
	"EmbeddedSourceSettings": func() CaptionSource { return new(EmbeddedSourceSettings) },
	"Scte20SourceSettings":   func() CaptionSource { return new(Scte20SourceSettings) },
	"Scte27SourceSettings":   func() CaptionSource { return new(Scte27SourceSettings) },
	"TeletextSourceSettings": func() CaptionSource { return new(TeletextSourceSettings) },
})

func (s CaptionSelectorSettings) MarshalJSON() ([]byte, error) {
	return captionSelectorUnion.encode(s.Source)
}

func (s *CaptionSelectorSettings) UnmarshalJSON(b []byte) error {
	v, err := captionSelectorUnion.decode(b)
	if err != nil {
		return err
	}
	s.Source = v
	return nil
}

func (s CaptionSelectorSettings) Selected() (string, any) { return selected(s.Source) }

func (CaptionSelectorSettings) VariantTypes() map[string]reflect.Type {
	return captionSelectorUnion.variantTypes()
}

func (*AribSourceSettings) isCaptionSource()     {}
func (*DvbSubSourceSettings) isCaptionSource()   {}
func (*EmbeddedSourceSettings) isCaptionSource() {}
func (*Scte20SourceSettings) isCaptionSource()   {}
func (*Scte27SourceSettings) isCaptionSource()   {}
func (*TeletextSourceSettings) isCaptionSource() {}
func (*UnknownVariant) isCaptionSource()         {}

func (*AribSourceSettings) WireKey() string     { return "AribSourceSettings" }
func (*DvbSubSourceSettings) WireKey() string   { return "DvbSubSourceSettings" }
func (*EmbeddedSourceSettings) WireKey() string { return "EmbeddedSourceSettings" }
func (*Scte20SourceSettings) WireKey() string   { return "Scte20SourceSettings" }
func (*Scte27SourceSettings) WireKey() string   { return "Scte27SourceSettings" }
func (*TeletextSourceSettings) WireKey() string { return "TeletextSourceSettings" }

// ===== Selector variants =====

type AribSourceSettings struct{}

type DvbSubSourceSettings struct {
	// When unset, the first DVB-Sub PID found is used.
	Pid *int32 `json:"Pid,omitempty" validate:"omitempty,min=1"`
}

type EmbeddedSourceSettings struct {
	Convert608To708        EmbeddedConvert608To708 `json:"Convert608To708,omitempty"`
	Scte20Detection        EmbeddedScte20Detection `json:"Scte20Detection,omitempty"`
	Source608ChannelNumber *int32                  `json:"Source608ChannelNumber,omitempty" validate:"omitempty,min=1,max=4"`
	Source608TrackNumber   *int32                  `json:"Source608TrackNumber,omitempty" validate:"omitempty,min=1,max=5"`
}

type Scte20SourceSettings struct {
	Convert608To708        Scte20Convert608To708 `json:"Convert608To708,omitempty"`
	Source608ChannelNumber *int32                `json:"Source608ChannelNumber,omitempty" validate:"omitempty,min=1,max=4"`
}

type Scte27SourceSettings struct {
	Pid *int32 `json:"Pid,omitempty" validate:"omitempty,min=1"`
}

type TeletextSourceSettings struct {
	// Three hex digits, e.g. "888".
	PageNumber *string `json:"PageNumber,omitempty"`
}
