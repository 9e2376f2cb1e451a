package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetupProductionLevel(t *testing.T) {
	require.NoError(t, Setup(false, "snapclip", "test"))

	assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.WarnLevel))
}

func TestSetupDebugLevel(t *testing.T) {
	require.NoError(t, Setup(true, "snapclip", "test"))

	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
