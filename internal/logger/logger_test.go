package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"WARNING": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"panic":   zapcore.PanicLevel,
		"fatal":   zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("verbose")
	require.False(t, ok)
}

// TestContextHelpers checks that loggers stored in a context carry names and fields.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "registry")
	ctx = WithKV(ctx, "alarm_id", 7)

	InfoKV(ctx, "Alarm armed", "state", "armed")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "registry", entries[0].LoggerName)
	require.Equal(t, "Alarm armed", entries[0].Message)

	fields := entries[0].ContextMap()
	require.EqualValues(t, 7, fields["alarm_id"])
	require.Equal(t, "armed", fields["state"])
}
