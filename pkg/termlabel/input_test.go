package termlabel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/floatinglabel/pkg/floatinglabel"
)

func lines(t *testing.T, in *Input) []string {
	t.Helper()
	out := strings.Split(in.View(), "\n")
	require.Len(t, out, 3)
	return out
}

func typeText(in *Input, s string) {
	in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestInput_BlurredLabelSitsInside(t *testing.T) {
	in := New(Config{Label: "Email"})
	l := lines(t, in)

	assert.NotContains(t, l[0], "Email")
	assert.Contains(t, l[1], "Email")
	assert.Equal(t, 3, strings.Index(strings.TrimPrefix(l[1], "│"), "Email"), "label column follows the blurred left offset")
	assert.Equal(t, 40, len([]rune(l[0])))
}

func TestInput_InitialValueRaisesLabel(t *testing.T) {
	in := New(Config{Label: "Email", Value: "a@b.com"})
	l := lines(t, in)

	assert.Contains(t, l[0], " Email ")
	assert.Contains(t, l[1], "a@b.com")
	assert.True(t, in.State().Focused)
}

func TestInput_FocusAndBlur(t *testing.T) {
	focus, blur := 0, 0
	in := New(Config{
		Label:   "Email",
		OnFocus: func() { focus++ },
		OnBlur:  func() { blur++ },
	})

	in.Focus()
	assert.True(t, in.Focused())
	assert.Contains(t, lines(t, in)[0], "Email")
	assert.Equal(t, 1, focus)

	in.Blur()
	assert.False(t, in.Focused())
	assert.Contains(t, lines(t, in)[1], "Email")
	assert.Equal(t, 1, blur)
}

func TestInput_BlurWithTextKeepsLabelUp(t *testing.T) {
	in := New(Config{Label: "Email"})
	in.Focus()
	typeText(in, "hi")
	in.Blur()

	assert.Equal(t, "hi", in.Value())
	assert.True(t, in.State().Focused)
	assert.Contains(t, lines(t, in)[0], "Email")
}

func TestInput_IgnoresKeysWhenBlurred(t *testing.T) {
	in := New(Config{Label: "Email"})
	typeText(in, "hi")
	assert.Empty(t, in.Value())
}

func TestInput_Disabled(t *testing.T) {
	in := New(Config{Label: "Email", Disabled: true})
	assert.Nil(t, in.Focus())
	assert.False(t, in.Focused())
}

func TestInput_OnChanged(t *testing.T) {
	var got []string
	in := New(Config{Label: "Email", OnChanged: func(v string) { got = append(got, v) }})
	in.Focus()
	typeText(in, "a")
	typeText(in, "b")
	assert.Equal(t, []string{"a", "ab"}, got)
}

func TestInput_PasswordToggle(t *testing.T) {
	in := New(Config{
		Label:   "Password",
		Options: floatinglabel.Options{IsPassword: true, IsShowPassword: true},
	})
	in.Focus()
	typeText(in, "abc")

	l := lines(t, in)
	assert.NotContains(t, l[1], "abc")
	assert.Contains(t, l[1], "•••")
	assert.Contains(t, l[1], "[show]")

	in.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	l = lines(t, in)
	assert.Contains(t, l[1], "abc")
	assert.Contains(t, l[1], "[hide]")
	assert.False(t, in.State().Secure)
	assert.Equal(t, floatinglabel.IconMakeInvisibleWhite, in.Appearance().Icon)

	in.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, in.State().Secure)
}

func TestInput_PasswordWithoutToggle(t *testing.T) {
	in := New(Config{
		Label:   "Password",
		Options: floatinglabel.Options{IsPassword: true},
	})
	in.Focus()
	typeText(in, "abc")
	in.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	l := lines(t, in)
	assert.NotContains(t, l[1], "abc")
	assert.NotContains(t, l[1], "[show]")
	assert.True(t, in.State().Secure)
}

func TestInput_PlainFieldIgnoresSecureState(t *testing.T) {
	in := New(Config{Label: "Name", Options: floatinglabel.Options{IsShowPassword: true}})
	in.Focus()
	typeText(in, "abc")
	assert.Contains(t, lines(t, in)[1], "abc")
	assert.NotContains(t, lines(t, in)[1], "[show]")
}

func TestInput_Submit(t *testing.T) {
	calls := 0
	in := New(Config{Label: "Email", OnSubmit: func() { calls++ }})
	in.Focus()
	in.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, calls)

	noop := New(Config{Label: "Email"})
	noop.Focus()
	assert.NotPanics(t, func() { noop.Update(tea.KeyMsg{Type: tea.KeyEnter}) })
}

func TestInput_FocusDirective(t *testing.T) {
	in := New(Config{Label: "Email"})

	in.SetFocusDirective(false)
	assert.False(t, in.State().Focused)

	in.SetFocusDirective(true)
	assert.True(t, in.State().Focused)
	assert.Contains(t, lines(t, in)[0], "Email")
	assert.False(t, in.Focused(), "the directive moves the label, not keyboard focus")
}

func TestInput_Ref(t *testing.T) {
	var ref floatinglabel.Ref
	in := New(Config{Label: "Email", Ref: &ref})

	ref.Focus()
	assert.True(t, in.Focused())
	assert.NotNil(t, in.FocusCmd(), "cursor blink from the ref focus")
	assert.Nil(t, in.FocusCmd())

	in.Release()
	assert.Nil(t, ref.Current())
}

func TestInput_UpdateDeliversRefFocusCmd(t *testing.T) {
	var ref floatinglabel.Ref
	in := New(Config{Label: "Email", Ref: &ref})

	ref.Focus()
	assert.NotNil(t, in.Update(nil))
	assert.Nil(t, in.FocusCmd())
}

func TestInput_DirectiveLowersLabelOverText(t *testing.T) {
	in := New(Config{Label: "Email", Value: "abc"})
	in.SetFocusDirective(true)
	in.SetFocusDirective(false)
	require.False(t, in.State().Focused)

	l := lines(t, in)
	assert.NotContains(t, l[0], "Email")
	assert.Contains(t, l[1], "Email")
	assert.Contains(t, l[1], "abc")
	assert.Less(t, strings.Index(l[1], "Email"), strings.Index(l[1], "abc"))
}

func TestInput_Reset(t *testing.T) {
	in := New(Config{Label: "Password", Options: floatinglabel.Options{IsPassword: true, IsShowPassword: true}})
	in.Focus()
	typeText(in, "abc")
	in.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	in.Reset()
	assert.Empty(t, in.Value())
	assert.False(t, in.Focused())
	assert.Equal(t, floatinglabel.State{Focused: false, Secure: true}, in.State())
}

func TestInput_LongLabelIsTruncated(t *testing.T) {
	in := New(Config{Label: strings.Repeat("x", 80), Width: 20})
	in.Focus()
	l := lines(t, in)
	assert.Equal(t, 20, len([]rune(l[0])))
	assert.Contains(t, l[0], "…")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
	assert.Equal(t, "", truncate("abc", 0))
}
