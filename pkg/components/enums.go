package components

import "github.com/go-drift/fluent/pkg/attr"

// FlexAlign distributes children along the main axis of a Row or Column.
type FlexAlign int

const (
	FlexAlignStart FlexAlign = iota
	FlexAlignCenter
	FlexAlignEnd
	FlexAlignSpaceBetween
	FlexAlignSpaceAround
	FlexAlignSpaceEvenly
)

var flexAlignNames = attr.EnumSet[FlexAlign]{Type: "FlexAlign", Names: []string{"Start", "Center", "End", "SpaceBetween", "SpaceAround", "SpaceEvenly"}}

func (v FlexAlign) String() string { return flexAlignNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *FlexAlign) UnmarshalText(text []byte) error {
	return flexAlignNames.Unmarshal(text, v)
}

// HorizontalAlign positions Column children on the cross axis.
type HorizontalAlign int

const (
	HorizontalAlignStart HorizontalAlign = iota
	HorizontalAlignCenter
	HorizontalAlignEnd
)

var horizontalAlignNames = attr.EnumSet[HorizontalAlign]{Type: "HorizontalAlign", Names: []string{"Start", "Center", "End"}}

func (v HorizontalAlign) String() string { return horizontalAlignNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *HorizontalAlign) UnmarshalText(text []byte) error {
	return horizontalAlignNames.Unmarshal(text, v)
}

// VerticalAlign positions Row children on the cross axis.
type VerticalAlign int

const (
	VerticalAlignTop VerticalAlign = iota
	VerticalAlignCenter
	VerticalAlignBottom
)

var verticalAlignNames = attr.EnumSet[VerticalAlign]{Type: "VerticalAlign", Names: []string{"Top", "Center", "Bottom"}}

func (v VerticalAlign) String() string { return verticalAlignNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *VerticalAlign) UnmarshalText(text []byte) error {
	return verticalAlignNames.Unmarshal(text, v)
}

// Alignment positions Stack children. The zero value centers them.
type Alignment int

const (
	AlignmentCenter Alignment = iota
	AlignmentTopStart
	AlignmentTop
	AlignmentTopEnd
	AlignmentStart
	AlignmentEnd
	AlignmentBottomStart
	AlignmentBottom
	AlignmentBottomEnd
)

var alignmentNames = attr.EnumSet[Alignment]{Type: "Alignment", Names: []string{
	"Center", "TopStart", "Top", "TopEnd", "Start", "End", "BottomStart", "Bottom", "BottomEnd",
}}

func (v Alignment) String() string { return alignmentNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Alignment) UnmarshalText(text []byte) error {
	return alignmentNames.Unmarshal(text, v)
}

// BadgePosition places the badge relative to its child.
type BadgePosition int

const (
	BadgePositionRightTop BadgePosition = iota
	BadgePositionRight
	BadgePositionLeft
)

var badgePositionNames = attr.EnumSet[BadgePosition]{Type: "BadgePosition", Names: []string{"RightTop", "Right", "Left"}}

func (v BadgePosition) String() string { return badgePositionNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *BadgePosition) UnmarshalText(text []byte) error {
	return badgePositionNames.Unmarshal(text, v)
}

// ButtonType is the button outline.
type ButtonType int

const (
	ButtonTypeCapsule ButtonType = iota
	ButtonTypeCircle
	ButtonTypeNormal
	ButtonTypeRoundedRectangle
)

var buttonTypeNames = attr.EnumSet[ButtonType]{Type: "ButtonType", Names: []string{"Capsule", "Circle", "Normal", "RoundedRectangle"}}

func (v ButtonType) String() string { return buttonTypeNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ButtonType) UnmarshalText(text []byte) error {
	return buttonTypeNames.Unmarshal(text, v)
}

// ButtonStyleMode is the button emphasis.
type ButtonStyleMode int

const (
	ButtonStyleModeNormal ButtonStyleMode = iota
	ButtonStyleModeEmphasized
	ButtonStyleModeTextual
)

var buttonStyleModeNames = attr.EnumSet[ButtonStyleMode]{Type: "ButtonStyleMode", Names: []string{"Normal", "Emphasized", "Textual"}}

func (v ButtonStyleMode) String() string { return buttonStyleModeNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ButtonStyleMode) UnmarshalText(text []byte) error {
	return buttonStyleModeNames.Unmarshal(text, v)
}

// CheckBoxShape is the checkbox outline.
type CheckBoxShape int

const (
	CheckBoxShapeCircle CheckBoxShape = iota
	CheckBoxShapeRoundedSquare
)

var checkBoxShapeNames = attr.EnumSet[CheckBoxShape]{Type: "CheckBoxShape", Names: []string{"Circle", "RoundedSquare"}}

func (v CheckBoxShape) String() string { return checkBoxShapeNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *CheckBoxShape) UnmarshalText(text []byte) error {
	return checkBoxShapeNames.Unmarshal(text, v)
}

// SelectStatus summarizes a checkbox group.
type SelectStatus int

const (
	SelectStatusAll SelectStatus = iota
	SelectStatusPart
	SelectStatusNone
)

var selectStatusNames = attr.EnumSet[SelectStatus]{Type: "SelectStatus", Names: []string{"All", "Part", "None"}}

func (v SelectStatus) String() string { return selectStatusNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SelectStatus) UnmarshalText(text []byte) error {
	return selectStatusNames.Unmarshal(text, v)
}

// LineCapStyle is the end cap of a divider stroke.
type LineCapStyle int

const (
	LineCapStyleButt LineCapStyle = iota
	LineCapStyleRound
	LineCapStyleSquare
)

var lineCapStyleNames = attr.EnumSet[LineCapStyle]{Type: "LineCapStyle", Names: []string{"Butt", "Round", "Square"}}

func (v LineCapStyle) String() string { return lineCapStyleNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *LineCapStyle) UnmarshalText(text []byte) error {
	return lineCapStyleNames.Unmarshal(text, v)
}

// ImageFit scales an image into its box.
type ImageFit int

const (
	ImageFitContain ImageFit = iota
	ImageFitCover
	ImageFitAuto
	ImageFitFill
	ImageFitScaleDown
	ImageFitNone
)

var imageFitNames = attr.EnumSet[ImageFit]{Type: "ImageFit", Names: []string{"Contain", "Cover", "Auto", "Fill", "ScaleDown", "None"}}

func (v ImageFit) String() string { return imageFitNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ImageFit) UnmarshalText(text []byte) error {
	return imageFitNames.Unmarshal(text, v)
}

// ImageInterpolation is the resampling quality.
type ImageInterpolation int

const (
	ImageInterpolationNone ImageInterpolation = iota
	ImageInterpolationLow
	ImageInterpolationMedium
	ImageInterpolationHigh
)

var imageInterpolationNames = attr.EnumSet[ImageInterpolation]{Type: "ImageInterpolation", Names: []string{"None", "Low", "Medium", "High"}}

func (v ImageInterpolation) String() string { return imageInterpolationNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ImageInterpolation) UnmarshalText(text []byte) error {
	return imageInterpolationNames.Unmarshal(text, v)
}

// ProgressType is the progress indicator shape.
type ProgressType int

const (
	ProgressTypeLinear ProgressType = iota
	ProgressTypeRing
	ProgressTypeEclipse
	ProgressTypeScaleRing
	ProgressTypeCapsule
)

var progressTypeNames = attr.EnumSet[ProgressType]{Type: "ProgressType", Names: []string{"Linear", "Ring", "Eclipse", "ScaleRing", "Capsule"}}

func (v ProgressType) String() string { return progressTypeNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ProgressType) UnmarshalText(text []byte) error {
	return progressTypeNames.Unmarshal(text, v)
}

// RadioIndicatorType is the checked-state mark of a radio.
type RadioIndicatorType int

const (
	RadioIndicatorTypeTick RadioIndicatorType = iota
	RadioIndicatorTypeDot
	RadioIndicatorTypeCustom
)

var radioIndicatorTypeNames = attr.EnumSet[RadioIndicatorType]{Type: "RadioIndicatorType", Names: []string{"Tick", "Dot", "Custom"}}

func (v RadioIndicatorType) String() string { return radioIndicatorTypeNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *RadioIndicatorType) UnmarshalText(text []byte) error {
	return radioIndicatorTypeNames.Unmarshal(text, v)
}

// SliderStyle places the block relative to the track.
type SliderStyle int

const (
	SliderStyleOutSet SliderStyle = iota
	SliderStyleInSet
	SliderStyleNone
)

var sliderStyleNames = attr.EnumSet[SliderStyle]{Type: "SliderStyle", Names: []string{"OutSet", "InSet", "None"}}

func (v SliderStyle) String() string { return sliderStyleNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SliderStyle) UnmarshalText(text []byte) error {
	return sliderStyleNames.Unmarshal(text, v)
}

// Axis is a layout direction.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

var axisNames = attr.EnumSet[Axis]{Type: "Axis", Names: []string{"Horizontal", "Vertical"}}

func (v Axis) String() string { return axisNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Axis) UnmarshalText(text []byte) error {
	return axisNames.Unmarshal(text, v)
}

// SliderChangeMode is the phase of a slider drag.
type SliderChangeMode int

const (
	SliderChangeModeBegin SliderChangeMode = iota
	SliderChangeModeMoving
	SliderChangeModeEnd
	SliderChangeModeClick
)

var sliderChangeModeNames = attr.EnumSet[SliderChangeMode]{Type: "SliderChangeMode", Names: []string{"Begin", "Moving", "End", "Click"}}

func (v SliderChangeMode) String() string { return sliderChangeModeNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SliderChangeMode) UnmarshalText(text []byte) error {
	return sliderChangeModeNames.Unmarshal(text, v)
}

// TextAlign is the horizontal alignment of text.
type TextAlign int

const (
	TextAlignStart TextAlign = iota
	TextAlignCenter
	TextAlignEnd
	TextAlignJustify
)

var textAlignNames = attr.EnumSet[TextAlign]{Type: "TextAlign", Names: []string{"Start", "Center", "End", "Justify"}}

func (v TextAlign) String() string { return textAlignNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *TextAlign) UnmarshalText(text []byte) error {
	return textAlignNames.Unmarshal(text, v)
}

// TextOverflow is how text beyond its box is shown.
type TextOverflow int

const (
	TextOverflowNone TextOverflow = iota
	TextOverflowClip
	TextOverflowEllipsis
	TextOverflowMarquee
)

var textOverflowNames = attr.EnumSet[TextOverflow]{Type: "TextOverflow", Names: []string{"None", "Clip", "Ellipsis", "Marquee"}}

func (v TextOverflow) String() string { return textOverflowNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *TextOverflow) UnmarshalText(text []byte) error {
	return textOverflowNames.Unmarshal(text, v)
}

// TextDecorationType is the line drawn with text.
type TextDecorationType int

const (
	TextDecorationTypeNone TextDecorationType = iota
	TextDecorationTypeUnderline
	TextDecorationTypeOverline
	TextDecorationTypeLineThrough
)

var textDecorationTypeNames = attr.EnumSet[TextDecorationType]{Type: "TextDecorationType", Names: []string{"None", "Underline", "Overline", "LineThrough"}}

func (v TextDecorationType) String() string { return textDecorationTypeNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *TextDecorationType) UnmarshalText(text []byte) error {
	return textDecorationTypeNames.Unmarshal(text, v)
}

// TextCase transforms letter case for display.
type TextCase int

const (
	TextCaseNormal TextCase = iota
	TextCaseLowerCase
	TextCaseUpperCase
)

var textCaseNames = attr.EnumSet[TextCase]{Type: "TextCase", Names: []string{"Normal", "LowerCase", "UpperCase"}}

func (v TextCase) String() string { return textCaseNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *TextCase) UnmarshalText(text []byte) error {
	return textCaseNames.Unmarshal(text, v)
}

// CopyOptions controls copying selected text.
type CopyOptions int

const (
	CopyOptionsNone CopyOptions = iota
	CopyOptionsInApp
	CopyOptionsLocalDevice
	CopyOptionsCrossDevice
)

var copyOptionsNames = attr.EnumSet[CopyOptions]{Type: "CopyOptions", Names: []string{"None", "InApp", "LocalDevice", "CrossDevice"}}

func (v CopyOptions) String() string { return copyOptionsNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *CopyOptions) UnmarshalText(text []byte) error {
	return copyOptionsNames.Unmarshal(text, v)
}

// InputType is the keyboard and masking mode of a text input.
type InputType int

const (
	InputTypeNormal InputType = iota
	InputTypeNumber
	InputTypePhoneNumber
	InputTypeEmail
	InputTypePassword
	InputTypeNumberPassword
)

var inputTypeNames = attr.EnumSet[InputType]{Type: "InputType", Names: []string{"Normal", "Number", "PhoneNumber", "Email", "Password", "NumberPassword"}}

func (v InputType) String() string { return inputTypeNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *InputType) UnmarshalText(text []byte) error {
	return inputTypeNames.Unmarshal(text, v)
}

// EnterKeyType is the label of the keyboard's enter key.
type EnterKeyType int

const (
	EnterKeyTypeGo EnterKeyType = iota
	EnterKeyTypeSearch
	EnterKeyTypeSend
	EnterKeyTypeNext
	EnterKeyTypeDone
	EnterKeyTypePrevious
	EnterKeyTypeNewLine
)

var enterKeyTypeNames = attr.EnumSet[EnterKeyType]{Type: "EnterKeyType", Names: []string{"Go", "Search", "Send", "Next", "Done", "Previous", "NewLine"}}

func (v EnterKeyType) String() string { return enterKeyTypeNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *EnterKeyType) UnmarshalText(text []byte) error {
	return enterKeyTypeNames.Unmarshal(text, v)
}

// ToggleType is the toggle presentation.
type ToggleType int

const (
	ToggleTypeCheckbox ToggleType = iota
	ToggleTypeSwitch
	ToggleTypeButton
)

var toggleTypeNames = attr.EnumSet[ToggleType]{Type: "ToggleType", Names: []string{"Checkbox", "Switch", "Button"}}

func (v ToggleType) String() string { return toggleTypeNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ToggleType) UnmarshalText(text []byte) error {
	return toggleTypeNames.Unmarshal(text, v)
}
