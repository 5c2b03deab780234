package main

import (
	"strings"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/widgets"
	"go.uber.org/zap"

	"github.com/go-drift/floatinglabel/pkg/floatinglabel"
)

// loginForm shows an email and a password field. Submitting the email field
// moves focus to the password field through its Ref.
type loginForm struct {
	core.StatefulBase
	options    floatinglabel.Options
	foreground graphics.Color
	logger     *zap.Logger
}

func (loginForm) CreateState() core.State {
	return &loginFormState{}
}

type loginFormState struct {
	core.StateBase
	email       string
	password    string
	status      string
	passwordRef floatinglabel.Ref
	// highlight drives the email field's focus directive. It is raised when
	// a submit finds the email missing and lowered by clear.
	highlight bool
}

func (s *loginFormState) widget() loginForm {
	return s.Element().Widget().(loginForm)
}

func (s *loginFormState) submit() {
	w := s.widget()
	email := strings.TrimSpace(s.email)
	s.SetState(func() {
		switch {
		case email == "":
			s.status = "Enter your email first"
			s.highlight = true
		case s.password == "":
			s.status = "Enter your password"
		default:
			s.status = "Signed in as " + email
		}
	})
	w.logger.Info("login submitted", zap.Bool("hasEmail", email != ""), zap.Bool("hasPassword", s.password != ""))
}

func (s *loginFormState) clear() {
	s.SetState(func() {
		s.email = ""
		s.password = ""
		s.status = ""
		s.highlight = false
	})
}

func (s *loginFormState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()

	email := floatinglabel.FloatingLabelInput{
		Label:        "Email",
		Value:        s.email,
		KeyboardType: platform.KeyboardTypeEmail,
		InputAction:  platform.TextInputActionNext,
		OnChanged:    func(v string) { s.SetState(func() { s.email = v }) },
		OnSubmit:     s.passwordRef.Focus,
	}.WithOptions(w.options).WithFocused(s.highlight)
	email.IsPassword = false
	email.IsShowPassword = false

	password := floatinglabel.FloatingLabelInput{
		Label:       "Password",
		Value:       s.password,
		InputAction: platform.TextInputActionDone,
		OnChanged:   func(v string) { s.SetState(func() { s.password = v }) },
		OnSubmit:    s.submit,
	}.WithOptions(w.options).WithPassword(true).WithRef(&s.passwordRef)

	status := graphics.TextStyle{Color: w.foreground, FontSize: 14}

	return widgets.ColumnOf(
		widgets.MainAxisAlignmentStart,
		widgets.CrossAxisAlignmentStretch,
		widgets.MainAxisSizeMin,
		email,
		widgets.VSpace(16),
		password,
		widgets.VSpace(24),
		widgets.RowOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMax,
			chip("Sign in", w.foreground, s.submit),
			widgets.HSpace(12),
			chip("Clear", w.foreground, s.clear),
		),
		widgets.VSpace(16),
		widgets.Text{Content: s.status, Style: status, MaxLines: 2},
	)
}
