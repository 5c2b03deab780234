package floatinglabel

import (
	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/graphics"
)

// DefaultColor is the border, text and label color of the default look.
const DefaultColor = graphics.Color(0xFF49658C)

// LabelStyles holds the label parameters for both poses.
type LabelStyles struct {
	LeftFocused     float64
	LeftBlurred     float64
	TopFocused      float64
	TopBlurred      float64
	FontSizeFocused float64
	FontSizeBlurred float64
	ColorFocused    graphics.Color
	ColorBlurred    graphics.Color
}

// DefaultLabelStyles returns the default label parameters.
func DefaultLabelStyles() LabelStyles {
	return LabelStyles{
		LeftFocused:     15,
		LeftBlurred:     30,
		TopFocused:      0,
		TopBlurred:      12.5,
		FontSizeFocused: 10,
		FontSizeBlurred: 14,
		ColorFocused:    DefaultColor,
		ColorBlurred:    DefaultColor,
	}
}

// LabelStylesOverride replaces individual label parameters.
// Nil fields keep the value they are merged over.
type LabelStylesOverride struct {
	LeftFocused     *float64
	LeftBlurred     *float64
	TopFocused      *float64
	TopBlurred      *float64
	FontSizeFocused *float64
	FontSizeBlurred *float64
	ColorFocused    *graphics.Color
	ColorBlurred    *graphics.Color
}

// Merge returns s with every non-nil field of o applied.
func (s LabelStyles) Merge(o *LabelStylesOverride) LabelStyles {
	if o == nil {
		return s
	}
	setFloat(&s.LeftFocused, o.LeftFocused)
	setFloat(&s.LeftBlurred, o.LeftBlurred)
	setFloat(&s.TopFocused, o.TopFocused)
	setFloat(&s.TopBlurred, o.TopBlurred)
	setFloat(&s.FontSizeFocused, o.FontSizeFocused)
	setFloat(&s.FontSizeBlurred, o.FontSizeBlurred)
	setColor(&s.ColorFocused, o.ColorFocused)
	setColor(&s.ColorBlurred, o.ColorBlurred)
	return s
}

// Pose is the position, size and color of the label at rest.
type Pose struct {
	Left     float64
	Top      float64
	FontSize float64
	Color    graphics.Color
}

// Pose returns the focused pose when active is true and the blurred pose otherwise.
func (s LabelStyles) Pose(active bool) Pose {
	if active {
		return Pose{Left: s.LeftFocused, Top: s.TopFocused, FontSize: s.FontSizeFocused, Color: s.ColorFocused}
	}
	return Pose{Left: s.LeftBlurred, Top: s.TopBlurred, FontSize: s.FontSizeBlurred, Color: s.ColorBlurred}
}

// Lerp interpolates between two poses. t is not clamped for position and
// size so spring curves can overshoot the target pose; the color stays
// between the two pose colors.
func (p Pose) Lerp(to Pose, t float64) Pose {
	return Pose{
		Left:     animation.LerpFloat64(p.Left, to.Left, t),
		Top:      animation.LerpFloat64(p.Top, to.Top, t),
		FontSize: animation.LerpFloat64(p.FontSize, to.FontSize, t),
		Color:    animation.LerpColor(p.Color, to.Color, min(max(t, 0), 1)),
	}
}

// LabelStyle is the resolved style of the label text.
type LabelStyle struct {
	Pose
	FontFamily string
	FontWeight graphics.FontWeight
}

// LabelStyleOverride is the caller's raw label style. Set fields win over the
// pose selected from [LabelStyles].
type LabelStyleOverride struct {
	Left       *float64
	Top        *float64
	FontSize   *float64
	Color      *graphics.Color
	FontFamily *string
	FontWeight *graphics.FontWeight
}

// ApplyLabelStyle builds the label style for pose with o merged on top.
func ApplyLabelStyle(pose Pose, o *LabelStyleOverride) LabelStyle {
	s := LabelStyle{Pose: pose}
	if o == nil {
		return s
	}
	setFloat(&s.Left, o.Left)
	setFloat(&s.Top, o.Top)
	setFloat(&s.FontSize, o.FontSize)
	setColor(&s.Color, o.Color)
	if o.FontFamily != nil {
		s.FontFamily = *o.FontFamily
	}
	if o.FontWeight != nil {
		s.FontWeight = *o.FontWeight
	}
	return s
}

// TextStyle converts the label style to a Drift text style.
func (s LabelStyle) TextStyle() graphics.TextStyle {
	return graphics.TextStyle{
		Color:      s.Color,
		FontFamily: s.FontFamily,
		FontSize:   s.FontSize,
		FontWeight: s.FontWeight,
	}
}

// ContainerStyle describes the rounded box around the field.
type ContainerStyle struct {
	Height          float64
	BorderWidth     float64
	BorderRadius    float64
	PaddingTop      float64
	PaddingBottom   float64
	BackgroundColor graphics.Color
	BorderColor     graphics.Color
	Color           graphics.Color
}

// DefaultContainerStyle returns the default container look.
func DefaultContainerStyle() ContainerStyle {
	return ContainerStyle{
		Height:          50,
		BorderWidth:     2,
		BorderRadius:    30,
		PaddingTop:      10,
		PaddingBottom:   10,
		BackgroundColor: graphics.ColorTransparent,
		BorderColor:     DefaultColor,
		Color:           DefaultColor,
	}
}

// ContainerStyleOverride replaces individual container fields.
type ContainerStyleOverride struct {
	Height          *float64
	BorderWidth     *float64
	BorderRadius    *float64
	PaddingTop      *float64
	PaddingBottom   *float64
	BackgroundColor *graphics.Color
	BorderColor     *graphics.Color
	Color           *graphics.Color
}

// Merge returns s with every non-nil field of o applied.
func (s ContainerStyle) Merge(o *ContainerStyleOverride) ContainerStyle {
	if o == nil {
		return s
	}
	setFloat(&s.Height, o.Height)
	setFloat(&s.BorderWidth, o.BorderWidth)
	setFloat(&s.BorderRadius, o.BorderRadius)
	setFloat(&s.PaddingTop, o.PaddingTop)
	setFloat(&s.PaddingBottom, o.PaddingBottom)
	setColor(&s.BackgroundColor, o.BackgroundColor)
	setColor(&s.BorderColor, o.BorderColor)
	setColor(&s.Color, o.Color)
	return s
}

// InputStyle describes the text of the entry control.
type InputStyle struct {
	Color        graphics.Color
	FontSize     float64
	FontFamily   string
	FontWeight   graphics.FontWeight
	PaddingLeft  float64
	PaddingRight float64
}

// DefaultInputStyle returns the default entry look. The text color follows
// the focused label color.
func DefaultInputStyle(labels LabelStyles) InputStyle {
	return InputStyle{
		Color:        labels.ColorFocused,
		FontSize:     14,
		PaddingLeft:  30,
		PaddingRight: 10,
	}
}

// InputStyleOverride replaces individual entry style fields.
type InputStyleOverride struct {
	Color        *graphics.Color
	FontSize     *float64
	FontFamily   *string
	FontWeight   *graphics.FontWeight
	PaddingLeft  *float64
	PaddingRight *float64
}

// Merge returns s with every non-nil field of o applied.
func (s InputStyle) Merge(o *InputStyleOverride) InputStyle {
	if o == nil {
		return s
	}
	setColor(&s.Color, o.Color)
	setFloat(&s.FontSize, o.FontSize)
	if o.FontFamily != nil {
		s.FontFamily = *o.FontFamily
	}
	if o.FontWeight != nil {
		s.FontWeight = *o.FontWeight
	}
	setFloat(&s.PaddingLeft, o.PaddingLeft)
	setFloat(&s.PaddingRight, o.PaddingRight)
	return s
}

// TextStyle converts the entry style to a Drift text style.
func (s InputStyle) TextStyle() graphics.TextStyle {
	return graphics.TextStyle{
		Color:      s.Color,
		FontFamily: s.FontFamily,
		FontSize:   s.FontSize,
		FontWeight: s.FontWeight,
	}
}

// ToggleStyle describes the box around the visibility toggle.
type ToggleStyle struct {
	PaddingLeft  float64
	PaddingRight float64
}

// DefaultToggleStyle returns the default toggle box.
func DefaultToggleStyle() ToggleStyle {
	return ToggleStyle{PaddingRight: 15}
}

// ToggleStyleOverride replaces individual toggle box fields.
type ToggleStyleOverride struct {
	PaddingLeft  *float64
	PaddingRight *float64
}

// Merge returns s with every non-nil field of o applied.
func (s ToggleStyle) Merge(o *ToggleStyleOverride) ToggleStyle {
	if o == nil {
		return s
	}
	setFloat(&s.PaddingLeft, o.PaddingLeft)
	setFloat(&s.PaddingRight, o.PaddingRight)
	return s
}

// ToggleImageStyle sizes the toggle icon.
type ToggleImageStyle struct {
	Width  float64
	Height float64
}

// DefaultToggleImageStyle returns the default icon size.
func DefaultToggleImageStyle() ToggleImageStyle {
	return ToggleImageStyle{Width: 25, Height: 25}
}

// ToggleImageStyleOverride replaces individual icon size fields.
type ToggleImageStyleOverride struct {
	Width  *float64
	Height *float64
}

// Merge returns s with every non-nil field of o applied.
func (s ToggleImageStyle) Merge(o *ToggleImageStyleOverride) ToggleImageStyle {
	if o == nil {
		return s
	}
	setFloat(&s.Width, o.Width)
	setFloat(&s.Height, o.Height)
	return s
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setColor(dst *graphics.Color, v *graphics.Color) {
	if v != nil {
		*dst = *v
	}
}
