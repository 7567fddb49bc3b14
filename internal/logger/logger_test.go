package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsSafe(t *testing.T) {
	assert.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Infow("before init", FieldCount, 1)
		Warnw("before init")
		Errorw("before init")
	})
}

func TestInitializeConsole(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	require.NoError(t, Initialize(false))
	assert.False(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestNamedAddsComponent(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	core, logs := observer.New(zap.InfoLevel)
	Logger = zap.New(core).Sugar()

	Named("catalog").Infow("loaded", FieldCount, 5)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "catalog", fields[FieldComponent])
	assert.Equal(t, int64(5), fields[FieldCount])
}
