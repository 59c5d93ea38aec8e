package medialive

type BurnInAlignment string

const (
	BurnInAlignmentCentered BurnInAlignment = "CENTERED"
	BurnInAlignmentLeft     BurnInAlignment = "LEFT"
	BurnInAlignmentSmart    BurnInAlignment = "SMART"
)

func (BurnInAlignment) Values() []BurnInAlignment {
	return []BurnInAlignment{
		BurnInAlignmentCentered,
		BurnInAlignmentLeft,
		BurnInAlignmentSmart,
	}
}

type BurnInBackgroundColor string

const (
	BurnInBackgroundColorBlack BurnInBackgroundColor = "BLACK"
	BurnInBackgroundColorNone  BurnInBackgroundColor = "NONE"
	BurnInBackgroundColorWhite BurnInBackgroundColor = "WHITE"
)

func (BurnInBackgroundColor) Values() []BurnInBackgroundColor {
	return []BurnInBackgroundColor{
		BurnInBackgroundColorBlack,
		BurnInBackgroundColorNone,
		BurnInBackgroundColorWhite,
	}
}

type BurnInFontColor string

const (
	BurnInFontColorBlack  BurnInFontColor = "BLACK"
	BurnInFontColorBlue   BurnInFontColor = "BLUE"
	BurnInFontColorGreen  BurnInFontColor = "GREEN"
	BurnInFontColorRed    BurnInFontColor = "RED"
	BurnInFontColorWhite  BurnInFontColor = "WHITE"
	BurnInFontColorYellow BurnInFontColor = "YELLOW"
)

func (BurnInFontColor) Values() []BurnInFontColor {
	return []BurnInFontColor{
		BurnInFontColorBlack,
		BurnInFontColorBlue,
		BurnInFontColorGreen,
		BurnInFontColorRed,
		BurnInFontColorWhite,
		BurnInFontColorYellow,
	}
}

type BurnInOutlineColor string

const (
	BurnInOutlineColorBlack  BurnInOutlineColor = "BLACK"
	BurnInOutlineColorBlue   BurnInOutlineColor = "BLUE"
	BurnInOutlineColorGreen  BurnInOutlineColor = "GREEN"
	BurnInOutlineColorRed    BurnInOutlineColor = "RED"
	BurnInOutlineColorWhite  BurnInOutlineColor = "WHITE"
	BurnInOutlineColorYellow BurnInOutlineColor = "YELLOW"
)

func (BurnInOutlineColor) Values() []BurnInOutlineColor {
	return []BurnInOutlineColor{
		BurnInOutlineColorBlack,
		BurnInOutlineColorBlue,
		BurnInOutlineColorGreen,
		BurnInOutlineColorRed,
		BurnInOutlineColorWhite,
		BurnInOutlineColorYellow,
	}
}

type BurnInShadowColor string

const (
	BurnInShadowColorBlack BurnInShadowColor = "BLACK"
	BurnInShadowColorNone  BurnInShadowColor = "NONE"
	BurnInShadowColorWhite BurnInShadowColor = "WHITE"
)

func (BurnInShadowColor) Values() []BurnInShadowColor {
	return []BurnInShadowColor{
		BurnInShadowColorBlack,
		BurnInShadowColorNone,
		BurnInShadowColorWhite,
	}
}

type BurnInTeletextGridControl string

const (
	BurnInTeletextGridControlFixed  BurnInTeletextGridControl = "FIXED"
	BurnInTeletextGridControlScaled BurnInTeletextGridControl = "SCALED"
)

func (BurnInTeletextGridControl) Values() []BurnInTeletextGridControl {
	return []BurnInTeletextGridControl{
		BurnInTeletextGridControlFixed,
		BurnInTeletextGridControlScaled,
	}
}

type DvbSubDestinationAlignment string

const (
	DvbSubDestinationAlignmentCentered DvbSubDestinationAlignment = "CENTERED"
	DvbSubDestinationAlignmentLeft     DvbSubDestinationAlignment = "LEFT"
	DvbSubDestinationAlignmentSmart    DvbSubDestinationAlignment = "SMART"
)

func (DvbSubDestinationAlignment) Values() []DvbSubDestinationAlignment {
	return []DvbSubDestinationAlignment{
		DvbSubDestinationAlignmentCentered,
		DvbSubDestinationAlignmentLeft,
		DvbSubDestinationAlignmentSmart,
	}
}

type DvbSubDestinationBackgroundColor string

const (
	DvbSubDestinationBackgroundColorBlack DvbSubDestinationBackgroundColor = "BLACK"
	DvbSubDestinationBackgroundColorNone  DvbSubDestinationBackgroundColor = "NONE"
	DvbSubDestinationBackgroundColorWhite DvbSubDestinationBackgroundColor = "WHITE"
)

func (DvbSubDestinationBackgroundColor) Values() []DvbSubDestinationBackgroundColor {
	return []DvbSubDestinationBackgroundColor{
		DvbSubDestinationBackgroundColorBlack,
		DvbSubDestinationBackgroundColorNone,
		DvbSubDestinationBackgroundColorWhite,
	}
}

type DvbSubDestinationFontColor string

const (
	DvbSubDestinationFontColorBlack  DvbSubDestinationFontColor = "BLACK"
	DvbSubDestinationFontColorBlue   DvbSubDestinationFontColor = "BLUE"
	DvbSubDestinationFontColorGreen  DvbSubDestinationFontColor = "GREEN"
	DvbSubDestinationFontColorRed    DvbSubDestinationFontColor = "RED"
	DvbSubDestinationFontColorWhite  DvbSubDestinationFontColor = "WHITE"
	DvbSubDestinationFontColorYellow DvbSubDestinationFontColor = "YELLOW"
)

func (DvbSubDestinationFontColor) Values() []DvbSubDestinationFontColor {
	return []DvbSubDestinationFontColor{
		DvbSubDestinationFontColorBlack,
		DvbSubDestinationFontColorBlue,
		DvbSubDestinationFontColorGreen,
		DvbSubDestinationFontColorRed,
		DvbSubDestinationFontColorWhite,
		DvbSubDestinationFontColorYellow,
	}
}

type DvbSubDestinationOutlineColor string

const (
	DvbSubDestinationOutlineColorBlack  DvbSubDestinationOutlineColor = "BLACK"
	DvbSubDestinationOutlineColorBlue   DvbSubDestinationOutlineColor = "BLUE"
	DvbSubDestinationOutlineColorGreen  DvbSubDestinationOutlineColor = "GREEN"
	DvbSubDestinationOutlineColorRed    DvbSubDestinationOutlineColor = "RED"
	DvbSubDestinationOutlineColorWhite  DvbSubDestinationOutlineColor = "WHITE"
	DvbSubDestinationOutlineColorYellow DvbSubDestinationOutlineColor = "YELLOW"
)

func (DvbSubDestinationOutlineColor) Values() []DvbSubDestinationOutlineColor {
	return []DvbSubDestinationOutlineColor{
		DvbSubDestinationOutlineColorBlack,
		DvbSubDestinationOutlineColorBlue,
		DvbSubDestinationOutlineColorGreen,
		DvbSubDestinationOutlineColorRed,
		DvbSubDestinationOutlineColorWhite,
		DvbSubDestinationOutlineColorYellow,
	}
}

type DvbSubDestinationShadowColor string

const (
	DvbSubDestinationShadowColorBlack DvbSubDestinationShadowColor = "BLACK"
	DvbSubDestinationShadowColorNone  DvbSubDestinationShadowColor = "NONE"
	DvbSubDestinationShadowColorWhite DvbSubDestinationShadowColor = "WHITE"
)

func (DvbSubDestinationShadowColor) Values() []DvbSubDestinationShadowColor {
	return []DvbSubDestinationShadowColor{
		DvbSubDestinationShadowColorBlack,
		DvbSubDestinationShadowColorNone,
		DvbSubDestinationShadowColorWhite,
	}
}

type DvbSubDestinationTeletextGridControl string

const (
	DvbSubDestinationTeletextGridControlFixed  DvbSubDestinationTeletextGridControl = "FIXED"
	DvbSubDestinationTeletextGridControlScaled DvbSubDestinationTeletextGridControl = "SCALED"
)

func (DvbSubDestinationTeletextGridControl) Values() []DvbSubDestinationTeletextGridControl {
	return []DvbSubDestinationTeletextGridControl{
		DvbSubDestinationTeletextGridControlFixed,
		DvbSubDestinationTeletextGridControlScaled,
	}
}

type TtmlDestinationStyleControl string

const (
	TtmlDestinationStyleControlPassthrough   TtmlDestinationStyleControl = "PASSTHROUGH"
	TtmlDestinationStyleControlUseConfigured TtmlDestinationStyleControl = "USE_CONFIGURED"
)

func (TtmlDestinationStyleControl) Values() []TtmlDestinationStyleControl {
	return []TtmlDestinationStyleControl{
		TtmlDestinationStyleControlPassthrough,
		TtmlDestinationStyleControlUseConfigured,
	}
}

type EmbeddedConvert608To708 string

const (
	EmbeddedConvert608To708Disabled  EmbeddedConvert608To708 = "DISABLED"
	EmbeddedConvert608To708Upconvert EmbeddedConvert608To708 = "UPCONVERT"
)

func (EmbeddedConvert608To708) Values() []EmbeddedConvert608To708 {
	return []EmbeddedConvert608To708{
		EmbeddedConvert608To708Disabled,
		EmbeddedConvert608To708Upconvert,
	}
}

type EmbeddedScte20Detection string

const (
	EmbeddedScte20DetectionAuto EmbeddedScte20Detection = "AUTO"
	EmbeddedScte20DetectionOff  EmbeddedScte20Detection = "OFF"
)

func (EmbeddedScte20Detection) Values() []EmbeddedScte20Detection {
	return []EmbeddedScte20Detection{
		EmbeddedScte20DetectionAuto,
		EmbeddedScte20DetectionOff,
	}
}

type Scte20Convert608To708 string

const (
	Scte20Convert608To708Disabled  Scte20Convert608To708 = "DISABLED"
	Scte20Convert608To708Upconvert Scte20Convert608To708 = "UPCONVERT"
)

func (Scte20Convert608To708) Values() []Scte20Convert608To708 {
	return []Scte20Convert608To708{
		Scte20Convert608To708Disabled,
		Scte20Convert608To708Upconvert,
	}
}
