package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)

	prev := logger
	logger = zap.New(core)
	t.Cleanup(func() { logger = prev })

	return logs
}

func Test_OnSetService_ShouldTagEntries(t *testing.T) {
	logs := observe(t)

	SetService("shopdb")
	Info("schema ensured", zap.Int("tables", 4))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "shopdb", entries[0].LoggerName)

	fields := entries[0].ContextMap()
	assert.Equal(t, "shopdb", fields["service"])
	assert.EqualValues(t, 4, fields["tables"])
}

func Test_OnLevelHelpers_ShouldRespectLevel(t *testing.T) {
	logs := observe(t)

	Warn("slow feed")
	Error("feed down")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Empty(t, entries[1].ContextMap())
}
