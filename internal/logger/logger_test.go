package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("json", "warn")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	log, err = NewLogger("text", "debug")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_None(t *testing.T) {
	log, err := NewLogger("json", "none")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.FatalLevel))
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger("text", "verbose")
	require.Error(t, err)

	_, err = NewLogger("xml", "info")
	require.Error(t, err)
}
