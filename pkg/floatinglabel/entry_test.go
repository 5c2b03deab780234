package floatinglabel

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/platform"
	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/widgets"
)

func mountField(t *testing.T, field FloatingLabelInput) (*drifttest.WidgetTester, *floatingLabelState) {
	t.Helper()
	platform.SetupTestBridge(t.Cleanup)
	tester := drifttest.NewWidgetTesterWithT(t)

	var ref Ref
	field.Ref = &ref
	tester.PumpWidget(field)

	s, ok := ref.Current().(*floatingLabelState)
	if !ok || s.entry == nil {
		t.Fatal("expected a mounted field with an entry")
	}
	return tester, s
}

func labelFontSize(t *testing.T, tester *drifttest.WidgetTester, label string) float64 {
	t.Helper()
	text, ok := tester.Find(drifttest.ByText(label)).Widget().(widgets.Text)
	if !ok {
		t.Fatalf("label %q not found", label)
	}
	return text.Style.FontSize
}

func TestViewConfig_IdenticalEntries(t *testing.T) {
	s := &entryState{}
	e := entry{
		style:       DefaultInputStyle(DefaultLabelStyles()),
		obscure:     true,
		inputAction: platform.TextInputActionDone,
	}
	if s.viewConfig(e) != s.viewConfig(e) {
		t.Error("same entry should produce equal configs")
	}
}

func TestViewConfig_DifferentObscure(t *testing.T) {
	// Toggling visibility only changes obscure; the config comparison in
	// DidUpdateWidget must see it so the native view unmasks.
	s := &entryState{}
	a := entry{obscure: true}
	b := entry{obscure: false}
	if s.viewConfig(a) == s.viewConfig(b) {
		t.Error("different obscure values should produce different configs")
	}
}

func TestViewConfig_NeverShowsPlaceholder(t *testing.T) {
	s := &entryState{}
	config := s.viewConfig(entry{label: "Email"})
	if config.Placeholder != "" {
		t.Errorf("expected empty placeholder, got %q", config.Placeholder)
	}
	if config.PlaceholderColor != uint32(graphics.ColorTransparent) {
		t.Errorf("expected transparent placeholder color, got %#x", config.PlaceholderColor)
	}
}

func TestViewConfig_Multiline(t *testing.T) {
	s := &entryState{}
	config := s.viewConfig(entry{multiline: true, maxLines: 3})
	if !config.Multiline || config.MaxLines != 3 {
		t.Errorf("expected multiline with 3 lines, got %v/%d", config.Multiline, config.MaxLines)
	}
}

func TestEntry_ToggleUnmasksNativeView(t *testing.T) {
	tester, s := mountField(t, FloatingLabelInput{
		Label:          "Password",
		IsPassword:     true,
		IsShowPassword: true,
	})
	if !s.entry.viewConfig(s.entry.widget()).Obscure {
		t.Fatal("expected the native view to start masked")
	}

	if err := tester.Tap(drifttest.ByType[widgets.Image]()); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	tester.Pump()
	if s.entry.viewConfig(s.entry.widget()).Obscure {
		t.Error("expected the native view to unmask after the toggle")
	}

	if err := tester.Tap(drifttest.ByType[widgets.Image]()); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	tester.Pump()
	if !s.entry.viewConfig(s.entry.widget()).Obscure {
		t.Error("expected the native view to mask again")
	}
}

func TestEntry_PlainFieldNeverMasks(t *testing.T) {
	_, s := mountField(t, FloatingLabelInput{Label: "Email"})
	if s.entry.viewConfig(s.entry.widget()).Obscure {
		t.Error("plain fields should not mask")
	}
}

func TestEntry_EveryActionSubmits(t *testing.T) {
	actions := []platform.TextInputAction{
		platform.TextInputActionNone,
		platform.TextInputActionDone,
		platform.TextInputActionGo,
		platform.TextInputActionNext,
		platform.TextInputActionPrevious,
		platform.TextInputActionSearch,
		platform.TextInputActionSend,
		platform.TextInputActionNewline,
	}
	for _, action := range actions {
		t.Run(fmt.Sprint(int(action)), func(t *testing.T) {
			submitted, completed := 0, 0
			_, s := mountField(t, FloatingLabelInput{
				Label:             "Email",
				OnSubmit:          func() { submitted++ },
				OnEditingComplete: func() { completed++ },
			})
			s.entry.OnAction(action)
			if submitted != 1 {
				t.Errorf("expected OnSubmit once, got %d", submitted)
			}
			if completed != 1 {
				t.Errorf("expected OnEditingComplete once, got %d", completed)
			}
		})
	}
}

func TestEntry_ActionWithoutSubmitIsHarmless(t *testing.T) {
	_, s := mountField(t, FloatingLabelInput{Label: "Email"})
	s.entry.OnAction(platform.TextInputActionDone)
}

func TestEntry_MultilineNewlineDoesNotSubmit(t *testing.T) {
	submitted := 0
	_, s := mountField(t, FloatingLabelInput{
		Label:     "Notes",
		Multiline: true,
		OnSubmit:  func() { submitted++ },
	})
	s.entry.OnAction(platform.TextInputActionNewline)
	if submitted != 0 {
		t.Errorf("newline in a multiline field should not submit, got %d", submitted)
	}
	s.entry.OnAction(platform.TextInputActionDone)
	if submitted != 1 {
		t.Errorf("expected Done to submit, got %d", submitted)
	}
}

func TestEntry_NextSubmitFocusesRefTarget(t *testing.T) {
	platform.SetupTestBridge(t.Cleanup)
	tester := drifttest.NewWidgetTesterWithT(t)

	var emailRef, passwordRef Ref
	passwordFocused := 0
	tester.PumpWidget(widgets.ColumnOf(
		widgets.MainAxisAlignmentStart,
		widgets.CrossAxisAlignmentStart,
		widgets.MainAxisSizeMin,
		FloatingLabelInput{
			Label:       "Email",
			Ref:         &emailRef,
			InputAction: platform.TextInputActionNext,
			OnSubmit:    passwordRef.Focus,
		},
		FloatingLabelInput{
			Label:   "Password",
			Ref:     &passwordRef,
			OnFocus: func() { passwordFocused++ },
		},
	))

	emailRef.Focus()
	tester.Pump()
	email := emailRef.Current().(*floatingLabelState)
	email.entry.OnAction(platform.TextInputActionNext)
	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle failed: %v", err)
	}

	if passwordFocused != 1 {
		t.Errorf("expected the password field focused once, got %d", passwordFocused)
	}
	if got := labelFontSize(t, tester, "Password"); got != 10 {
		t.Errorf("expected the password label raised, got font size %v", got)
	}
	if got := labelFontSize(t, tester, "Email"); got != 14 {
		t.Errorf("expected the empty email label lowered, got font size %v", got)
	}
}

func TestEntry_BlurWithTextKeepsLabelRaised(t *testing.T) {
	text := platform.NewTextEditingController("")
	tester, s := mountField(t, FloatingLabelInput{Label: "Email", Controller: text})

	s.Focus()
	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle failed: %v", err)
	}
	text.SetText("a@b.com")
	s.entry.OnFocusChanged(false)
	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle failed: %v", err)
	}

	if !s.ctl.Focused() {
		t.Error("blur with text should keep the focused state")
	}
	if got := labelFontSize(t, tester, "Email"); got != 10 {
		t.Errorf("expected focused font size 10, got %v", got)
	}
}

func TestEntry_BlurWhenEmptyLowersLabel(t *testing.T) {
	tester, s := mountField(t, FloatingLabelInput{Label: "Email"})

	s.Focus()
	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle failed: %v", err)
	}
	s.entry.OnFocusChanged(false)
	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle failed: %v", err)
	}

	if s.ctl.Focused() {
		t.Error("blur when empty should clear the focused state")
	}
	if got := labelFontSize(t, tester, "Email"); got != 14 {
		t.Errorf("expected blurred font size 14, got %v", got)
	}
}
