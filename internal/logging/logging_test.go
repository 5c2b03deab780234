package logging

import (
	"errors"
	"testing"

	drifterrors "github.com/go-drift/drift/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"development", Config{Level: "debug", Type: "development"}, false},
		{"production", Config{Level: "info", Type: "production", OutputPaths: []string{"stderr"}}, false},
		{"unknown type", Config{Level: "info", Type: "console"}, true},
		{"bad level", Config{Level: "loud", Type: "development"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := &ErrorHandler{Logger: zap.New(core)}
	h.Install()
	t.Cleanup(func() { drifterrors.SetHandler(nil) })

	drifterrors.Report(&drifterrors.DriftError{
		Op:   "floatinglabel.ensurePlatformView",
		Kind: drifterrors.KindPlatform,
		Err:  errors.New("no bridge"),
	})
	h.HandlePanic(&drifterrors.PanicError{Op: "build", Value: "boom"})
	h.HandleBuildError(&drifterrors.BuildError{Widget: "FloatingLabelInput", Err: errors.New("bad")})
	h.HandleError(nil)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "drift error", entries[0].Message)
	assert.Equal(t, "floatinglabel.ensurePlatformView", entries[0].ContextMap()["op"])
	assert.Equal(t, "no bridge", entries[0].ContextMap()["error"])
	assert.Equal(t, "drift panic", entries[1].Message)
	assert.Equal(t, "build failed", entries[2].Message)
}
