package floatinglabel

import (
	"image"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/widgets"
)

// FloatingLabelInput is a text field whose label rests inside the field while
// it is empty and unfocused, and springs to a smaller pose on the top edge when
// the field gains focus or holds text.
//
// # Styling Model
//
// Every style group starts from the default look (a 50pt pill with a 2pt
// #49658c border) and applies the matching override record on top. Set
// fields in an override win; nil fields keep the default. The label pose comes
// from [LabelStyles] merged with CustomLabelStyles, and LabelStyle is applied
// last so it wins over both poses.
//
// # Password Fields
//
// IsPassword masks entered text. IsShowPassword adds a toggle that flips
// between masked and plain text. The toggle icon follows DarkTheme unless
// CustomShowPasswordImage is set.
//
// Example:
//
//	floatinglabel.FloatingLabelInput{
//	    Label:          "Password",
//	    Value:          s.password,
//	    IsPassword:     true,
//	    IsShowPassword: true,
//	    OnChanged:      func(v string) { s.SetState(func() { s.password = v }) },
//	    OnSubmit:       s.login,
//	}
type FloatingLabelInput struct {
	core.StatefulBase

	// Label is the floating label text.
	Label string

	// Value is the controlled text of the field. Assigning a new value replaces
	// the text; a non-empty initial value starts the label in the focused pose.
	Value string

	// Controller optionally supplies the text controller. One is created from
	// Value when nil.
	Controller *platform.TextEditingController

	// IsFocused is the external focus directive. Changing it moves the label
	// to the matching pose.
	IsFocused bool

	// IsPassword masks entered text while the field is in secure mode.
	IsPassword bool

	// IsShowPassword shows the visibility toggle on password fields.
	IsShowPassword bool

	// DarkTheme selects the black toggle icons instead of the white ones.
	DarkTheme bool

	ContainerStyle   *ContainerStyleOverride
	LabelStyle       *LabelStyleOverride
	InputStyle       *InputStyleOverride
	ToggleStyle      *ToggleStyleOverride
	ToggleImageStyle *ToggleImageStyleOverride

	// CustomLabelStyles overrides the parameters of both label poses.
	CustomLabelStyles *LabelStylesOverride

	// CustomShowPasswordImage replaces the built-in toggle icon.
	CustomShowPasswordImage image.Image

	// OnSubmit is called for every keyboard action except a newline in a
	// multiline field. Next and Previous move focus before it runs.
	OnSubmit func()

	// OnEditingComplete is called after OnSubmit.
	OnEditingComplete func()

	// Ref receives the mounted field so the owner can move focus into it.
	Ref *Ref

	KeyboardType   platform.KeyboardType
	InputAction    platform.TextInputAction
	Capitalization platform.TextCapitalization
	Autocorrect    bool
	Disabled       bool

	// Multiline lets the field wrap text; MaxLines limits the visible lines.
	Multiline bool
	MaxLines  int

	// OnChanged is called when the user edits the text.
	OnChanged func(string)

	// OnFocus and OnBlur observe keyboard focus. They run after the label
	// has been updated.
	OnFocus func()
	OnBlur  func()
}

// CreateState creates the state for this widget.
func (f FloatingLabelInput) CreateState() core.State {
	return &floatingLabelState{}
}

// Options returns the render-affecting configuration of the field.
func (f FloatingLabelInput) Options() Options {
	return Options{
		IsPassword:              f.IsPassword,
		IsShowPassword:          f.IsShowPassword,
		DarkTheme:               f.DarkTheme,
		CustomLabelStyles:       f.CustomLabelStyles,
		LabelStyle:              f.LabelStyle,
		ContainerStyle:          f.ContainerStyle,
		InputStyle:              f.InputStyle,
		ToggleStyle:             f.ToggleStyle,
		ToggleImageStyle:        f.ToggleImageStyle,
		CustomShowPasswordImage: f.CustomShowPasswordImage,
	}
}

// WithOptions returns a copy of the field with its render-affecting
// configuration replaced by o.
func (f FloatingLabelInput) WithOptions(o Options) FloatingLabelInput {
	f.IsPassword = o.IsPassword
	f.IsShowPassword = o.IsShowPassword
	f.DarkTheme = o.DarkTheme
	f.CustomLabelStyles = o.CustomLabelStyles
	f.LabelStyle = o.LabelStyle
	f.ContainerStyle = o.ContainerStyle
	f.InputStyle = o.InputStyle
	f.ToggleStyle = o.ToggleStyle
	f.ToggleImageStyle = o.ToggleImageStyle
	f.CustomShowPasswordImage = o.CustomShowPasswordImage
	return f
}

// WithValue returns a copy of the field with the given text.
func (f FloatingLabelInput) WithValue(value string) FloatingLabelInput {
	f.Value = value
	return f
}

// WithFocused returns a copy of the field with the given focus directive.
func (f FloatingLabelInput) WithFocused(focused bool) FloatingLabelInput {
	f.IsFocused = focused
	return f
}

// WithPassword returns a copy of the field configured as a password field,
// with or without the visibility toggle.
func (f FloatingLabelInput) WithPassword(showToggle bool) FloatingLabelInput {
	f.IsPassword = true
	f.IsShowPassword = showToggle
	return f
}

// WithRef returns a copy of the field publishing itself to ref.
func (f FloatingLabelInput) WithRef(ref *Ref) FloatingLabelInput {
	f.Ref = ref
	return f
}

type floatingLabelState struct {
	core.StateBase
	ctl  *Controller
	text *platform.TextEditingController
	ref  *Ref

	anim    *animation.AnimationController
	from    *Pose
	current Pose

	entry *entryState

	customSrc    image.Image
	customStyle  ToggleImageStyle
	customScaled image.Image
}

func (s *floatingLabelState) widget() FloatingLabelInput {
	return s.Element().Widget().(FloatingLabelInput)
}

func (s *floatingLabelState) InitState() {
	w := s.widget()

	s.text = w.Controller
	initial := w.Value
	if s.text == nil {
		s.text = platform.NewTextEditingController(w.Value)
	} else if initial == "" {
		initial = s.text.Text()
	} else {
		s.text.SetText(initial)
	}

	s.ctl = NewController(initial, w.IsFocused, AnimatorFunc(s.animateNextLayout))
	s.current = DefaultLabelStyles().Merge(w.CustomLabelStyles).Pose(s.ctl.Focused())

	s.anim = core.UseController(s, func() *animation.AnimationController {
		c := animation.NewAnimationController(SpringDuration)
		c.Curve = LabelSpring
		return c
	})
	core.UseListenable(s, s.anim)
	s.anim.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			s.from = nil
		}
	})

	s.ref = w.Ref
	s.ref.Attach(s)
}

func (s *floatingLabelState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(FloatingLabelInput)
	w := s.widget()

	if w.Controller != nil && w.Controller != s.text {
		s.text = w.Controller
	}
	if w.Value != old.Value && w.Value != s.text.Text() {
		s.text.SetText(w.Value)
	}
	if w.Ref != s.ref {
		s.ref.Detach(s)
		s.ref = w.Ref
		s.ref.Attach(s)
	}
	s.ctl.SetDirective(w.IsFocused)
}

func (s *floatingLabelState) Dispose() {
	s.ref.Detach(s)
	s.entry = nil
	s.StateBase.Dispose()
}

// Focus implements [Focuser] by delegating to the native entry. It does
// nothing until the entry has mounted.
func (s *floatingLabelState) Focus() {
	if s.entry != nil {
		s.entry.Focus()
	}
}

// animateNextLayout starts the spring from the pose currently on screen.
func (s *floatingLabelState) animateNextLayout() {
	from := s.current
	s.from = &from
	s.anim.Reset()
	s.anim.Forward()
}

func (s *floatingLabelState) onFocusChange(focused bool) {
	w := s.widget()
	if focused {
		s.SetState(s.ctl.HandleFocus)
		if w.OnFocus != nil {
			w.OnFocus()
		}
		return
	}
	s.SetState(func() {
		s.ctl.HandleBlur(s.text.Text())
	})
	if w.OnBlur != nil {
		w.OnBlur()
	}
}

func (s *floatingLabelState) toggle() {
	w := s.widget()
	s.SetState(func() {
		s.ctl.Toggle(w.IsPassword, w.IsShowPassword)
	})
}

func (s *floatingLabelState) submit() {
	Submit(s.widget().OnSubmit)
}

func (s *floatingLabelState) iconImage(a Appearance) image.Image {
	if a.CustomIcon == nil {
		return a.IconImage()
	}
	if s.customScaled == nil || s.customSrc != a.CustomIcon || s.customStyle != a.ToggleImage {
		s.customSrc = a.CustomIcon
		s.customStyle = a.ToggleImage
		s.customScaled = a.IconImage()
	}
	return s.customScaled
}

func (s *floatingLabelState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	a := Resolve(w.Options(), s.ctl.State())

	pose := a.Label.Pose
	if s.from != nil {
		pose = s.from.Lerp(pose, s.anim.Value)
	}
	s.current = pose
	label := a.Label
	label.Pose = pose

	c := a.Container
	field := entry{
		controller:     s.text,
		style:          a.Input,
		label:          w.Label,
		obscure:        a.Masked,
		keyboardType:   w.KeyboardType,
		inputAction:    w.InputAction,
		capitalization: w.Capitalization,
		autocorrect:    w.Autocorrect,
		disabled:       w.Disabled,
		multiline:      w.Multiline,
		maxLines:       w.MaxLines,
		height:         max(c.Height-c.PaddingTop-c.PaddingBottom, 0),

		onChanged:         w.OnChanged,
		onSubmitted:       s.submit,
		onEditingComplete: w.OnEditingComplete,
		onFocusChange:     s.onFocusChange,
		attach:            func(e *entryState) { s.entry = e },
		detach: func(e *entryState) {
			if s.entry == e {
				s.entry = nil
			}
		},
	}

	row := []core.Widget{widgets.Expanded{Child: field}}
	if a.ShowToggle {
		row = append(row, s.buildToggle(a))
	}

	return widgets.DecoratedBox{
		Color:        c.BackgroundColor,
		BorderColor:  c.BorderColor,
		BorderWidth:  c.BorderWidth,
		BorderRadius: c.BorderRadius,
		Child: widgets.SizedBox{
			Height: c.Height,
			Child: widgets.Stack{
				Children: []core.Widget{
					widgets.PaddingOnly(0, c.PaddingTop, 0, c.PaddingBottom,
						widgets.RowOf(
							widgets.MainAxisAlignmentStart,
							widgets.CrossAxisAlignmentCenter,
							widgets.MainAxisSizeMax,
							row...,
						),
					),
					widgets.Positioned(widgets.Tap(s.Focus, widgets.Text{
						Content:  w.Label,
						Style:    label.TextStyle(),
						MaxLines: 1,
					})).Left(label.Left).Top(label.Top),
				},
			},
		},
	}
}

func (s *floatingLabelState) buildToggle(a Appearance) core.Widget {
	semantic := "Show password"
	if !a.Masked {
		semantic = "Hide password"
	}
	t := a.Toggle
	return widgets.Tap(s.toggle, widgets.PaddingOnly(t.PaddingLeft, 0, t.PaddingRight, 0,
		widgets.Image{
			Source:        s.iconImage(a),
			Width:         a.ToggleImage.Width,
			Height:        a.ToggleImage.Height,
			Fit:           widgets.ImageFitContain,
			SemanticLabel: semantic,
		},
	))
}
