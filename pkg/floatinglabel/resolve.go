package floatinglabel

import "image"

// Options is the render-affecting configuration of a field, independent of
// the UI toolkit that draws it.
type Options struct {
	IsPassword     bool
	IsShowPassword bool
	DarkTheme      bool

	CustomLabelStyles *LabelStylesOverride
	LabelStyle        *LabelStyleOverride
	ContainerStyle    *ContainerStyleOverride
	InputStyle        *InputStyleOverride
	ToggleStyle       *ToggleStyleOverride
	ToggleImageStyle  *ToggleImageStyleOverride

	// CustomShowPasswordImage replaces the built-in toggle icon.
	CustomShowPasswordImage image.Image
}

// Appearance is everything a renderer needs to draw one frame of a field.
type Appearance struct {
	Labels      LabelStyles
	Label       LabelStyle
	Container   ContainerStyle
	Input       InputStyle
	Toggle      ToggleStyle
	ToggleImage ToggleImageStyle

	// Masked reports whether entered text renders masked.
	Masked bool
	// ShowToggle reports whether the visibility toggle is rendered.
	ShowToggle bool
	// Icon is the built-in icon for the current state. It is empty when a
	// custom image is configured.
	Icon IconAsset
	// CustomIcon is the caller-supplied icon, if any.
	CustomIcon image.Image
	// Placeholder is the placeholder passed to the entry control. The label
	// takes its place, so it is always empty.
	Placeholder string
}

// Resolve computes the appearance of a field for the given state.
func Resolve(o Options, s State) Appearance {
	labels := DefaultLabelStyles().Merge(o.CustomLabelStyles)
	a := Appearance{
		Labels:      labels,
		Label:       ApplyLabelStyle(labels.Pose(s.Focused), o.LabelStyle),
		Container:   DefaultContainerStyle().Merge(o.ContainerStyle),
		Input:       DefaultInputStyle(labels).Merge(o.InputStyle),
		Toggle:      DefaultToggleStyle().Merge(o.ToggleStyle),
		ToggleImage: DefaultToggleImageStyle().Merge(o.ToggleImageStyle),
		Masked:      Masked(o.IsPassword, s),
		ShowToggle:  ToggleVisible(o.IsPassword, o.IsShowPassword),
	}
	if o.CustomShowPasswordImage != nil {
		a.CustomIcon = o.CustomShowPasswordImage
	} else {
		a.Icon = SelectIcon(o.DarkTheme, s.Secure)
	}
	return a
}

// IconImage returns the image to draw in the toggle at the raster size of
// the icon box.
func (a Appearance) IconImage() image.Image {
	if a.CustomIcon != nil {
		return ScaleIcon(a.CustomIcon, a.ToggleImage)
	}
	w, h := IconPixels(a.ToggleImage)
	return a.Icon.Image(max(w, h))
}
