// Package logging builds the zap loggers used by the flstyle CLI and the
// showcase, and routes Drift framework errors into them.
package logging

import (
	"fmt"

	drifterrors "github.com/go-drift/drift/pkg/errors"
	"go.uber.org/zap"
)

// Logger presets accepted by [Config].Type.
const (
	LogTypeDevelopment LogType = "development"
	LogTypeProduction  LogType = "production"
)

type (
	// Config selects the level, preset and outputs of a logger.
	Config struct {
		// Level is a zap level name such as "debug" or "warn".
		Level string
		// Type is one of the LogType presets.
		Type string
		// OutputPaths replaces the preset's outputs when set.
		OutputPaths []string
	}

	// LogType names a zap configuration preset.
	LogType string
)

// NewLogger builds a logger from config. It fails on an unknown level or
// preset.
func NewLogger(config Config) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", config.Level, err)
	}

	var c zap.Config
	switch LogType(config.Type) {
	case LogTypeDevelopment:
		c = zap.NewDevelopmentConfig()
	case LogTypeProduction:
		c = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown logger type %s", config.Type)
	}

	c.Level = lvl
	if len(config.OutputPaths) != 0 {
		c.OutputPaths = config.OutputPaths
	}
	return c.Build()
}

// ErrorHandler forwards framework errors to a zap logger.
type ErrorHandler struct {
	Logger *zap.Logger
}

var _ drifterrors.ErrorHandler = (*ErrorHandler)(nil)

// Install makes h receive every error the framework reports.
func (h *ErrorHandler) Install() {
	drifterrors.SetHandler(h)
}

func (h *ErrorHandler) HandleError(err *drifterrors.DriftError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Channel != "" {
		fields = append(fields, zap.String("channel", err.Channel))
	}
	if err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.Logger.Error("drift error", fields...)
}

func (h *ErrorHandler) HandlePanic(err *drifterrors.PanicError) {
	if err == nil {
		return
	}
	h.Logger.Error("drift panic",
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
		zap.String("stack", err.StackTrace),
	)
}

func (h *ErrorHandler) HandleBuildError(err *drifterrors.BuildError) {
	if err == nil {
		return
	}
	h.Logger.Error("build failed",
		zap.String("widget", err.Widget),
		zap.String("element", err.Element),
		zap.String("error", err.Error()),
	)
}
