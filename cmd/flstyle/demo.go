package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/floatinglabel/pkg/floatinglabel"
	"github.com/go-drift/floatinglabel/pkg/termlabel"
)

func newDemoCmd(a *app) *cobra.Command {
	var flags demoConfig

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a terminal login form built from floating label inputs",
		Long: `Run a login form with an email and a password field.

FLSTYLE_SHEET and FLSTYLE_DARK_THEME are read from the environment and
from the env file; --sheet and --dark override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadDemoConfig(cmd, flags)
			if err != nil {
				return err
			}
			opts, err := cfg.options()
			if err != nil {
				return err
			}
			a.logger.Debug("starting demo", zap.String("sheet", cfg.Sheet), zap.Bool("dark", opts.DarkTheme))

			form := newLoginForm(opts)
			defer form.release()
			if _, err := tea.NewProgram(form, tea.WithContext(cmd.Context())).Run(); err != nil {
				a.logger.Error("demo stopped with error", zap.Error(err))
				return err
			}
			if form.status != "" {
				fmt.Fprintln(cmd.OutOrStdout(), form.status)
			}
			a.logger.Debug("demo stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.Sheet, "sheet", "", "style sheet to apply")
	cmd.Flags().BoolVar(&flags.DarkTheme, "dark", false, "use the dark theme icons")
	cmd.Flags().StringVar(&flags.EnvFile, "env-file", ".env", "env file read before the environment, if present")
	return cmd
}

type formKeys struct {
	Next  key.Binding
	Prev  key.Binding
	Quit  key.Binding
	field termlabel.KeyMap
}

func defaultFormKeys() formKeys {
	return formKeys{
		Next:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		Quit:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		field: termlabel.DefaultKeyMap(),
	}
}

func (k formKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Next, k.Prev}, append(k.field.ShortHelp(), k.Quit)...)
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

// loginForm is the demo's root model. Enter on the email field moves to the
// password field through its Ref; enter on the password field submits.
type loginForm struct {
	fields      []*termlabel.Input
	focus       int
	passwordRef floatinglabel.Ref
	keys        formKeys
	help        help.Model
	status      string
	done        bool

	// cmd collects commands from focus moves made inside submit callbacks.
	cmd tea.Cmd
}

func newLoginForm(opts floatinglabel.Options) *loginForm {
	f := &loginForm{
		keys: defaultFormKeys(),
		help: help.New(),
	}

	emailOpts := opts
	emailOpts.IsPassword = false
	email := termlabel.New(termlabel.Config{
		Label:     "Email",
		Options:   emailOpts,
		CharLimit: 64,
		OnSubmit:  func() { f.cmd = f.focusField(1) },
	})

	passOpts := opts
	passOpts.IsPassword = true
	passOpts.IsShowPassword = true
	password := termlabel.New(termlabel.Config{
		Label:     "Password",
		Options:   passOpts,
		CharLimit: 64,
		Ref:       &f.passwordRef,
		OnSubmit:  f.submit,
	})

	f.fields = []*termlabel.Input{email, password}
	return f
}

func (f *loginForm) release() {
	for _, in := range f.fields {
		in.Release()
	}
}

// focusField blurs the current field and focuses field i. The password
// field is reached through its Ref.
func (f *loginForm) focusField(i int) tea.Cmd {
	f.fields[f.focus].Blur()
	f.focus = i
	if i == 1 {
		f.passwordRef.Focus()
		return f.fields[1].FocusCmd()
	}
	return f.fields[i].Focus()
}

func (f *loginForm) move(delta int) tea.Cmd {
	n := len(f.fields)
	return f.focusField((f.focus + delta + n) % n)
}

func (f *loginForm) submit() {
	email := strings.TrimSpace(f.fields[0].Value())
	if email == "" {
		f.status = "email is required"
		f.cmd = f.focusField(0)
		return
	}
	f.status = "signed in as " + email
	f.done = true
}

func (f *loginForm) Init() tea.Cmd {
	return f.fields[0].Focus()
}

func (f *loginForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, f.keys.Quit):
			return f, tea.Quit
		case key.Matches(k, f.keys.Next):
			return f, f.move(1)
		case key.Matches(k, f.keys.Prev):
			return f, f.move(-1)
		}
	}

	// Only the field focused before dispatch sees the message, so the enter
	// that moves focus does not also reach the next field.
	cmd := f.fields[f.focus].Update(msg)
	cmd = tea.Batch(cmd, f.cmd)
	f.cmd = nil
	if f.done {
		return f, tea.Batch(cmd, tea.Quit)
	}
	return f, cmd
}

func (f *loginForm) View() string {
	sb := strings.Builder{}
	sb.WriteString(titleStyle.Render("Sign in"))
	sb.WriteByte('\n')
	for _, in := range f.fields {
		sb.WriteString(in.View())
		sb.WriteByte('\n')
	}
	if f.status != "" {
		sb.WriteString(f.status)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(f.help.View(f.keys))
	return sb.String()
}
