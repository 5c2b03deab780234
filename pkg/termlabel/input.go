// Package termlabel renders floating label inputs in a terminal with
// Bubble Tea.
//
// An [Input] draws a rounded box. While the field is empty and unfocused the
// label sits inside the box like a placeholder; once the field gains focus
// or holds text the label moves into the top border. Password fields mask
// their text and, when the toggle is enabled, ctrl+t flips masking.
package termlabel

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-drift/drift/pkg/graphics"

	"github.com/go-drift/floatinglabel/pkg/floatinglabel"
)

// Config configures an [Input].
type Config struct {
	Label string
	Value string

	// IsFocused is the initial focus directive. Later changes go through
	// [Input.SetFocusDirective].
	IsFocused bool

	Options floatinglabel.Options

	// Width is the outer width in columns. Defaults to 40.
	Width int

	// CharLimit caps the text length. Zero means no limit.
	CharLimit int

	Disabled bool
	KeyMap   *KeyMap
	Ref      *floatinglabel.Ref

	OnSubmit  func()
	OnChanged func(string)
	OnFocus   func()
	OnBlur    func()
}

// Input is a floating label text field for Bubble Tea programs.
type Input struct {
	cfg    Config
	keys   KeyMap
	ctl    *floatinglabel.Controller
	model  textinput.Model
	handle *handle

	// pending holds the command of a focus made through the Ref.
	pending tea.Cmd
}

// handle publishes an Input through a Ref.
type handle struct {
	in *Input
}

func (h *handle) Focus() {
	h.in.pending = tea.Batch(h.in.pending, h.in.Focus())
}

// New creates an input and attaches it to cfg.Ref.
func New(cfg Config) *Input {
	model := textinput.New()
	model.Prompt = ""
	model.Placeholder = ""
	model.CharLimit = cfg.CharLimit
	model.EchoCharacter = echoChar
	model.SetValue(cfg.Value)

	in := &Input{
		cfg:   cfg,
		keys:  DefaultKeyMap(),
		ctl:   floatinglabel.NewController(cfg.Value, cfg.IsFocused, nil),
		model: model,
	}
	if cfg.KeyMap != nil {
		in.keys = *cfg.KeyMap
	}
	in.handle = &handle{in: in}
	cfg.Ref.Attach(in.handle)
	in.sync()
	return in
}

// Release detaches the input from its Ref.
func (in *Input) Release() {
	in.cfg.Ref.Detach(in.handle)
}

// Value returns the current text.
func (in *Input) Value() string {
	return in.model.Value()
}

// SetValue replaces the text.
func (in *Input) SetValue(v string) {
	in.model.SetValue(v)
}

// Focused reports whether the input has keyboard focus.
func (in *Input) Focused() bool {
	return in.model.Focused()
}

// State returns the label and masking state.
func (in *Input) State() floatinglabel.State {
	return in.ctl.State()
}

// Appearance resolves the styles for the current state.
func (in *Input) Appearance() floatinglabel.Appearance {
	return floatinglabel.Resolve(in.cfg.Options, in.ctl.State())
}

// KeyMap returns the active key bindings.
func (in *Input) KeyMap() KeyMap {
	return in.keys
}

// Focus gives the input keyboard focus.
func (in *Input) Focus() tea.Cmd {
	if in.cfg.Disabled || in.model.Focused() {
		return nil
	}
	in.ctl.HandleFocus()
	cmd := in.model.Focus()
	if in.cfg.OnFocus != nil {
		in.cfg.OnFocus()
	}
	return cmd
}

// FocusCmd returns and clears the command of the last focus made through the
// Ref, such as the cursor blink. Update returns it too, so owners that only
// forward messages to the focused input need not call it.
func (in *Input) FocusCmd() tea.Cmd {
	cmd := in.pending
	in.pending = nil
	return cmd
}

// Blur removes keyboard focus. The label only drops back into the box when
// the input is empty.
func (in *Input) Blur() {
	if !in.model.Focused() {
		return
	}
	in.model.Blur()
	in.ctl.HandleBlur(in.model.Value())
	if in.cfg.OnBlur != nil {
		in.cfg.OnBlur()
	}
}

// SetFocusDirective applies an external focus directive. Only changes have
// an effect.
func (in *Input) SetFocusDirective(focused bool) {
	in.ctl.SetDirective(focused)
}

// Reset clears the text, blurs the input and masks the text again.
func (in *Input) Reset() {
	in.model.Reset()
	in.Blur()
	in.ctl = floatinglabel.NewController("", in.cfg.IsFocused, nil)
	in.sync()
}

func (in *Input) sync() {
	a := in.Appearance()
	if a.Masked {
		in.model.EchoMode = textinput.EchoPassword
	} else {
		in.model.EchoMode = textinput.EchoNormal
	}
	text := foreground(a.Input.Color)
	in.model.TextStyle = text
	in.model.Cursor.Style = text
}

// Update handles a message while the input is focused.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	if !in.model.Focused() {
		return nil
	}
	return tea.Batch(in.FocusCmd(), in.update(msg))
}

func (in *Input) update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, in.keys.Toggle):
			if in.ctl.Toggle(in.cfg.Options.IsPassword, in.cfg.Options.IsShowPassword) {
				in.sync()
				return nil
			}
		case key.Matches(k, in.keys.Submit):
			floatinglabel.Submit(in.cfg.OnSubmit)
			return nil
		}
	}

	before := in.model.Value()
	var cmd tea.Cmd
	in.model, cmd = in.model.Update(msg)
	if v := in.model.Value(); v != before && in.cfg.OnChanged != nil {
		in.cfg.OnChanged(v)
	}
	return cmd
}

// View renders the input as three lines.
func (in *Input) View() string {
	a := in.Appearance()
	border := foreground(a.Container.BorderColor)
	labelStyle := foreground(a.Label.Color)
	if a.Label.FontWeight >= graphics.FontWeightBold {
		labelStyle = labelStyle.Bold(true)
	}

	width := in.cfg.Width
	if width <= 0 {
		width = defaultWidth
	}
	inner := max(width-2, 4)

	focusedPose := in.ctl.Focused()

	var top string
	if focusedPose {
		lead := min(max(cells(a.Label.Left)-1, 0), inner-2)
		label := " " + truncate(in.cfg.Label, inner-lead-2) + " "
		rest := max(inner-lead-lipgloss.Width(label), 0)
		top = border.Render("╭"+strings.Repeat("─", lead)) +
			labelStyle.Render(label) +
			border.Render(strings.Repeat("─", rest)+"╮")
	} else {
		top = border.Render("╭" + strings.Repeat("─", inner) + "╮")
	}

	var toggle string
	right := cells(a.Input.PaddingRight)
	if a.ShowToggle {
		text := "[show]"
		if !a.Masked {
			text = "[hide]"
		}
		toggle = lipgloss.NewStyle().Foreground(iconColor(a)).Render(text)
		right = cells(a.Toggle.PaddingRight)
	}
	left := cells(a.Input.PaddingLeft)
	fieldWidth := max(inner-left-right-lipgloss.Width(toggle)-1, 1)

	var field string
	if focusedPose {
		in.model.Width = fieldWidth
		field = in.model.View()
	} else {
		// Blurred pose: the label sits in the row. Text held while the
		// directive keeps the label down follows it.
		lead := min(max(cells(a.Label.Left)-left, 0), fieldWidth-1)
		field = strings.Repeat(" ", lead) +
			labelStyle.Render(truncate(in.cfg.Label, fieldWidth-lead))
		if in.model.Value() != "" {
			in.model.Width = max(fieldWidth-lipgloss.Width(field)-1, 1)
			field += " " + in.model.View()
		}
	}
	content := strings.Repeat(" ", left) + field
	content = padRight(content, inner-right-lipgloss.Width(toggle)) + toggle + strings.Repeat(" ", right)
	if a.Container.BackgroundColor.Alpha() > 0 {
		content = lipgloss.NewStyle().Background(Color(a.Container.BackgroundColor)).Render(content)
	}
	middle := border.Render("│") + content + border.Render("│")

	bottom := border.Render("╰" + strings.Repeat("─", inner) + "╯")
	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

func iconColor(a floatinglabel.Appearance) lipgloss.Color {
	if a.CustomIcon != nil {
		return Color(a.Container.BorderColor)
	}
	r, g, b, _ := a.Icon.Color().RGBA()
	return Color(graphics.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
