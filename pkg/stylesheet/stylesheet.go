// Package stylesheet loads floating label style overrides from YAML.
//
// A style sheet names a format version and any subset of the style groups a
// field understands:
//
//	version: v1.0.0
//	darkTheme: true
//	label:
//	  leftBlurred: 24
//	  colorFocused: "#1e88e5"
//	container:
//	  borderRadius: 8
//
// Every key is optional. Keys that are left out keep the default look.
//
// Colors are written #rgb, #rrggbb or #aarrggbb with alpha first, matching
// [graphics.Color]. React Native reads eight digits as #rrggbbaa, so a color
// ported from there needs its last two digits moved to the front.
package stylesheet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-drift/drift/pkg/graphics"
	"go.uber.org/multierr"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/floatinglabel/pkg/floatinglabel"
)

// CurrentVersion is the format version written by [Default].
const CurrentVersion = "v1.0.0"

var (
	// ErrUnsupportedVersion is returned for style sheets whose major version
	// this package does not read.
	ErrUnsupportedVersion = errors.New("unsupported style sheet version")

	// ErrInvalidColor is returned for colors that are not #rgb, #rrggbb or
	// #aarrggbb.
	ErrInvalidColor = errors.New("invalid color")

	// ErrUnknownKey is returned for keys no section defines.
	ErrUnknownKey = errors.New("unknown key")
)

// Sheet is a parsed style sheet.
type Sheet struct {
	Version     string              `yaml:"version"`
	DarkTheme   *bool               `yaml:"darkTheme,omitempty"`
	Label       *LabelSection       `yaml:"label,omitempty"`
	LabelText   *LabelTextSection   `yaml:"labelText,omitempty"`
	Container   *ContainerSection   `yaml:"container,omitempty"`
	Input       *InputSection       `yaml:"input,omitempty"`
	Toggle      *ToggleSection      `yaml:"toggle,omitempty"`
	ToggleImage *ToggleImageSection `yaml:"toggleImage,omitempty"`
}

// LabelSection holds the parameters of both label poses.
type LabelSection struct {
	LeftFocused     *float64 `yaml:"leftFocused,omitempty"`
	LeftBlurred     *float64 `yaml:"leftBlurred,omitempty"`
	TopFocused      *float64 `yaml:"topFocused,omitempty"`
	TopBlurred      *float64 `yaml:"topBlurred,omitempty"`
	FontSizeFocused *float64 `yaml:"fontSizeFocused,omitempty"`
	FontSizeBlurred *float64 `yaml:"fontSizeBlurred,omitempty"`
	ColorFocused    *string  `yaml:"colorFocused,omitempty"`
	ColorBlurred    *string  `yaml:"colorBlurred,omitempty"`
}

// LabelTextSection overrides the label text in every pose.
type LabelTextSection struct {
	Left       *float64 `yaml:"left,omitempty"`
	Top        *float64 `yaml:"top,omitempty"`
	FontSize   *float64 `yaml:"fontSize,omitempty"`
	Color      *string  `yaml:"color,omitempty"`
	FontFamily *string  `yaml:"fontFamily,omitempty"`
	FontWeight *int     `yaml:"fontWeight,omitempty"`
}

// ContainerSection styles the box around the field.
type ContainerSection struct {
	Height          *float64 `yaml:"height,omitempty"`
	BorderWidth     *float64 `yaml:"borderWidth,omitempty"`
	BorderRadius    *float64 `yaml:"borderRadius,omitempty"`
	PaddingTop      *float64 `yaml:"paddingTop,omitempty"`
	PaddingBottom   *float64 `yaml:"paddingBottom,omitempty"`
	BackgroundColor *string  `yaml:"backgroundColor,omitempty"`
	BorderColor     *string  `yaml:"borderColor,omitempty"`
	Color           *string  `yaml:"color,omitempty"`
}

// InputSection styles the entered text.
type InputSection struct {
	Color        *string  `yaml:"color,omitempty"`
	FontSize     *float64 `yaml:"fontSize,omitempty"`
	FontFamily   *string  `yaml:"fontFamily,omitempty"`
	FontWeight   *int     `yaml:"fontWeight,omitempty"`
	PaddingLeft  *float64 `yaml:"paddingLeft,omitempty"`
	PaddingRight *float64 `yaml:"paddingRight,omitempty"`
}

// ToggleSection styles the box around the visibility toggle.
type ToggleSection struct {
	PaddingLeft  *float64 `yaml:"paddingLeft,omitempty"`
	PaddingRight *float64 `yaml:"paddingRight,omitempty"`
}

// ToggleImageSection sizes the toggle icon.
type ToggleImageSection struct {
	Width  *float64 `yaml:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty"`
}

// Parse decodes and validates a style sheet. Unknown keys are rejected.
func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse style sheet: %w", err)
	}
	if err := multierr.Append(checkKeys(data), s.Validate()); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a style sheet from r.
func Load(r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read style sheet: %w", err)
	}
	return Parse(data)
}

// LoadFile reads the style sheet at path.
func LoadFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes a style sheet as YAML.
func Marshal(s *Sheet) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode style sheet: %w", err)
	}
	return data, nil
}

// Validate checks the version and every color of the sheet.
func (s *Sheet) Validate() error {
	if err := checkVersion(s.Version); err != nil {
		return err
	}
	_, err := s.Options()
	return err
}

func checkVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: version is required", ErrUnsupportedVersion)
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != semver.Major(CurrentVersion) {
		return fmt.Errorf("%w: %s (supported: %s.x)", ErrUnsupportedVersion, v, semver.Major(CurrentVersion))
	}
	return nil
}

// Options converts the sheet into field options. Sections that are absent
// leave the matching override nil. Every invalid color is reported.
func (s *Sheet) Options() (floatinglabel.Options, error) {
	var (
		o    floatinglabel.Options
		errs error
	)
	color := func(name string, v *string) *graphics.Color {
		c, err := colorField(name, v)
		errs = multierr.Append(errs, err)
		return c
	}

	if s.DarkTheme != nil {
		o.DarkTheme = *s.DarkTheme
	}

	if l := s.Label; l != nil {
		o.CustomLabelStyles = &floatinglabel.LabelStylesOverride{
			LeftFocused:     l.LeftFocused,
			LeftBlurred:     l.LeftBlurred,
			TopFocused:      l.TopFocused,
			TopBlurred:      l.TopBlurred,
			FontSizeFocused: l.FontSizeFocused,
			FontSizeBlurred: l.FontSizeBlurred,
			ColorFocused:    color("label.colorFocused", l.ColorFocused),
			ColorBlurred:    color("label.colorBlurred", l.ColorBlurred),
		}
	}

	if l := s.LabelText; l != nil {
		o.LabelStyle = &floatinglabel.LabelStyleOverride{
			Left:       l.Left,
			Top:        l.Top,
			FontSize:   l.FontSize,
			Color:      color("labelText.color", l.Color),
			FontFamily: l.FontFamily,
			FontWeight: fontWeight(l.FontWeight),
		}
	}

	if c := s.Container; c != nil {
		o.ContainerStyle = &floatinglabel.ContainerStyleOverride{
			Height:          c.Height,
			BorderWidth:     c.BorderWidth,
			BorderRadius:    c.BorderRadius,
			PaddingTop:      c.PaddingTop,
			PaddingBottom:   c.PaddingBottom,
			BackgroundColor: color("container.backgroundColor", c.BackgroundColor),
			BorderColor:     color("container.borderColor", c.BorderColor),
			Color:           color("container.color", c.Color),
		}
	}

	if in := s.Input; in != nil {
		o.InputStyle = &floatinglabel.InputStyleOverride{
			Color:        color("input.color", in.Color),
			FontSize:     in.FontSize,
			FontFamily:   in.FontFamily,
			FontWeight:   fontWeight(in.FontWeight),
			PaddingLeft:  in.PaddingLeft,
			PaddingRight: in.PaddingRight,
		}
	}

	if t := s.Toggle; t != nil {
		o.ToggleStyle = &floatinglabel.ToggleStyleOverride{
			PaddingLeft:  t.PaddingLeft,
			PaddingRight: t.PaddingRight,
		}
	}

	if t := s.ToggleImage; t != nil {
		o.ToggleImageStyle = &floatinglabel.ToggleImageStyleOverride{
			Width:  t.Width,
			Height: t.Height,
		}
	}
	return o, errs
}

// Apply copies the overrides of the sheet into o. Fields the sheet does not
// set are left alone, and o is untouched when the sheet is invalid.
func (s *Sheet) Apply(o *floatinglabel.Options) error {
	so, err := s.Options()
	if err != nil {
		return err
	}
	if s.DarkTheme != nil {
		o.DarkTheme = so.DarkTheme
	}
	if so.CustomLabelStyles != nil {
		o.CustomLabelStyles = so.CustomLabelStyles
	}
	if so.LabelStyle != nil {
		o.LabelStyle = so.LabelStyle
	}
	if so.ContainerStyle != nil {
		o.ContainerStyle = so.ContainerStyle
	}
	if so.InputStyle != nil {
		o.InputStyle = so.InputStyle
	}
	if so.ToggleStyle != nil {
		o.ToggleStyle = so.ToggleStyle
	}
	if so.ToggleImageStyle != nil {
		o.ToggleImageStyle = so.ToggleImageStyle
	}
	return nil
}

// Default returns a sheet spelling out the default look.
func Default() *Sheet {
	labels := floatinglabel.DefaultLabelStyles()
	container := floatinglabel.DefaultContainerStyle()
	input := floatinglabel.DefaultInputStyle(labels)
	toggle := floatinglabel.DefaultToggleStyle()
	img := floatinglabel.DefaultToggleImageStyle()
	dark := false

	return &Sheet{
		Version:   CurrentVersion,
		DarkTheme: &dark,
		Label: &LabelSection{
			LeftFocused:     &labels.LeftFocused,
			LeftBlurred:     &labels.LeftBlurred,
			TopFocused:      &labels.TopFocused,
			TopBlurred:      &labels.TopBlurred,
			FontSizeFocused: &labels.FontSizeFocused,
			FontSizeBlurred: &labels.FontSizeBlurred,
			ColorFocused:    colorString(labels.ColorFocused),
			ColorBlurred:    colorString(labels.ColorBlurred),
		},
		Container: &ContainerSection{
			Height:          &container.Height,
			BorderWidth:     &container.BorderWidth,
			BorderRadius:    &container.BorderRadius,
			PaddingTop:      &container.PaddingTop,
			PaddingBottom:   &container.PaddingBottom,
			BackgroundColor: colorString(container.BackgroundColor),
			BorderColor:     colorString(container.BorderColor),
			Color:           colorString(container.Color),
		},
		Input: &InputSection{
			Color:        colorString(input.Color),
			FontSize:     &input.FontSize,
			PaddingLeft:  &input.PaddingLeft,
			PaddingRight: &input.PaddingRight,
		},
		Toggle: &ToggleSection{
			PaddingLeft:  &toggle.PaddingLeft,
			PaddingRight: &toggle.PaddingRight,
		},
		ToggleImage: &ToggleImageSection{
			Width:  &img.Width,
			Height: &img.Height,
		},
	}
}
