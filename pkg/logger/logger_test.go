package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nikmy/rangepicker/pkg/environment"
	"github.com/nikmy/rangepicker/pkg/errors"
)

func TestWrapper_levels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core)).With("picker")

	log.Debugf("hidden %d", 1)
	log.Infof("page %d", 42)
	log.Warn(errors.Fail("parse callback"))
	log.Error(errors.New("boom"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	require.Equal(t, "page 42", entries[0].Message)
	require.Equal(t, "picker", entries[0].LoggerName)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, "can't parse callback", entries[1].Message)
	require.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestNew_testing(t *testing.T) {
	log, err := New(environment.Testing)
	require.NoError(t, err)
	require.NotPanics(t, func() {
		log.With("x").Infof("nop")
	})
}

func TestStub(t *testing.T) {
	log := NewStub()
	require.NotPanics(t, func() {
		log.With("stub").Error(errors.New("ignored"))
	})
	require.NoError(t, log.Sync())
}
