package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Console(t *testing.T) {
	log, err := New(false, false)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_Debug(t *testing.T) {
	log, err := New(true, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewConfig_Encoding(t *testing.T) {
	assert.Equal(t, "json", newConfig(true, false).Encoding)
	assert.Equal(t, "console", newConfig(false, false).Encoding)
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithFields(zap.New(core), zap.String(FieldDeveloperID, "dev-1")).Info("ranked")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "dev-1", entries[0].ContextMap()[FieldDeveloperID])
}

func TestWithFields_NilLogger(t *testing.T) {
	log := WithFields(nil, zap.String("k", "v"))
	require.NotNil(t, log)
	log.Info("does not panic")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("  abc  ", 5))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "Zü...", Truncate("Zürich", 2))
}
