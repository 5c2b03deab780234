// Package main provides the floating label demo application.
package main

import (
	_ "embed"
	"log"

	"github.com/go-drift/drift/pkg/core"
	drifterrors "github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/widgets"
	"go.uber.org/zap"

	"github.com/go-drift/floatinglabel/internal/logging"
	"github.com/go-drift/floatinglabel/pkg/floatinglabel"
	"github.com/go-drift/floatinglabel/pkg/stylesheet"
)

//go:embed sheet.yaml
var sheetYAML []byte

var (
	lightBackground = graphics.RGB(0xF4, 0xF6, 0xFA)
	darkBackground  = graphics.RGB(0x12, 0x16, 0x1C)
)

// App returns the root widget for the demo.
func App() core.Widget {
	return showcaseApp{}
}

// showcaseApp holds the theme and the style sheet shared by every field.
type showcaseApp struct {
	core.StatefulBase
}

func (showcaseApp) CreateState() core.State {
	return &showcaseState{}
}

type showcaseState struct {
	core.StateBase
	isDark  bool
	styled  bool
	sheet   floatinglabel.Options
	logger  *zap.Logger
	handler *logging.ErrorHandler
}

func (s *showcaseState) InitState() {
	logger, err := logging.NewLogger(logging.Config{Level: "info", Type: string(logging.LogTypeDevelopment)})
	if err != nil {
		log.Printf("logger: %v", err)
		logger = zap.NewNop()
	}
	s.logger = logger
	s.handler = &logging.ErrorHandler{Logger: logger}
	s.handler.Install()

	s.isDark = true
	s.styled = true
	s.sheet = loadSheet(logger)
}

func (s *showcaseState) Dispose() {
	drifterrors.SetHandler(nil)
	_ = s.logger.Sync()
	s.StateBase.Dispose()
}

// loadSheet parses the embedded style sheet. A broken sheet falls back to the
// default look.
func loadSheet(logger *zap.Logger) floatinglabel.Options {
	sheet, err := stylesheet.Parse(sheetYAML)
	if err != nil {
		logger.Error("embedded style sheet rejected", zap.Error(err))
		return floatinglabel.Options{}
	}
	o, err := sheet.Options()
	if err != nil {
		logger.Error("embedded style sheet rejected", zap.Error(err))
		return floatinglabel.Options{}
	}
	return o
}

func (s *showcaseState) options() floatinglabel.Options {
	o := floatinglabel.Options{}
	if s.styled {
		o = s.sheet
	}
	o.DarkTheme = !s.isDark
	return o
}

func (s *showcaseState) toggleTheme() {
	s.SetState(func() { s.isDark = !s.isDark })
}

func (s *showcaseState) toggleSheet() {
	s.SetState(func() { s.styled = !s.styled })
	s.logger.Info("style sheet", zap.Bool("applied", s.styled))
}

func (s *showcaseState) Build(ctx core.BuildContext) core.Widget {
	bg, fg := lightBackground, graphics.ColorBlack
	if s.isDark {
		bg, fg = darkBackground, graphics.ColorWhite
	}
	themeLabel, sheetLabel := "Light theme", "Default style"
	if !s.isDark {
		themeLabel = "Dark theme"
	}
	if !s.styled {
		sheetLabel = "Style sheet"
	}

	return widgets.DecoratedBox{
		Color: bg,
		Child: widgets.PaddingAll(24, widgets.ColumnOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentStretch,
			widgets.MainAxisSizeMax,
			widgets.VSpace(48),
			widgets.Text{
				Content: "Floating labels",
				Style:   graphics.TextStyle{Color: fg, FontSize: 24, FontWeight: graphics.FontWeightBold},
			},
			widgets.VSpace(16),
			widgets.RowOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentCenter,
				widgets.MainAxisSizeMax,
				chip(themeLabel, fg, s.toggleTheme),
				widgets.HSpace(12),
				chip(sheetLabel, fg, s.toggleSheet),
			),
			widgets.VSpace(24),
			loginForm{options: s.options(), foreground: fg, logger: s.logger},
		)),
	}
}

// chip is a small outlined button.
func chip(label string, color graphics.Color, onTap func()) core.Widget {
	return widgets.Tap(onTap, widgets.DecoratedBox{
		BorderColor:  color,
		BorderWidth:  1,
		BorderRadius: 16,
		Child: widgets.PaddingSym(14, 8, widgets.Text{
			Content: label,
			Style:   graphics.TextStyle{Color: color, FontSize: 14},
		}),
	})
}
