package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/floatinglabel/pkg/floatinglabel"
)

func typeInto(f *loginForm, s string) {
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestLoginForm_EnterMovesToPassword(t *testing.T) {
	f := newLoginForm(floatinglabel.Options{})
	t.Cleanup(f.release)
	f.Init()

	typeInto(f, "me@example.com")
	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd, "the password cursor starts blinking")
	assert.Nil(t, f.fields[1].FocusCmd(), "delivered with the enter")
	assert.Equal(t, 1, f.focus)
	assert.False(t, f.fields[0].Focused())
	assert.True(t, f.fields[1].Focused())
	assert.False(t, f.done, "the same enter must not submit the password field")
}

func TestLoginForm_Submit(t *testing.T) {
	f := newLoginForm(floatinglabel.Options{})
	t.Cleanup(f.release)
	f.Init()

	typeInto(f, "me@example.com")
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(f, "secret")
	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, f.done)
	assert.Equal(t, "signed in as me@example.com", f.status)
	require.NotNil(t, cmd)
	assert.NotContains(t, f.View(), "secret")
}

func TestLoginForm_SubmitRequiresEmail(t *testing.T) {
	f := newLoginForm(floatinglabel.Options{})
	t.Cleanup(f.release)
	f.Init()

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(f, "secret")
	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd, "the email cursor starts blinking")
	assert.False(t, f.done)
	assert.Equal(t, "email is required", f.status)
	assert.Equal(t, 0, f.focus)
	assert.True(t, f.fields[0].Focused())
}

func TestLoginForm_FocusCycles(t *testing.T) {
	f := newLoginForm(floatinglabel.Options{})
	t.Cleanup(f.release)
	f.Init()

	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, f.focus)
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, f.focus)
}

func TestLoginForm_PasswordToggle(t *testing.T) {
	f := newLoginForm(floatinglabel.Options{})
	t.Cleanup(f.release)
	f.Init()

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(f, "secret")
	assert.NotContains(t, f.View(), "secret")

	f.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Contains(t, f.View(), "secret")
}

func TestLoginForm_Quit(t *testing.T) {
	f := newLoginForm(floatinglabel.Options{})
	t.Cleanup(f.release)

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
