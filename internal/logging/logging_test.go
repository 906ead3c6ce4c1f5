package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tcases := []struct {
		name  string
		debug bool
		level zapcore.Level
	}{
		{name: "production", debug: false, level: zapcore.InfoLevel},
		{name: "debug", debug: true, level: zapcore.DebugLevel},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := New(tc.debug)
			assert.NoError(t, err)
			assert.NotNil(t, logger)
			assert.True(t, logger.Core().Enabled(tc.level), "expected level %s to be enabled", tc.level)
			assert.False(t, logger.Core().Enabled(tc.level-1), "expected level below %s to be disabled", tc.level)
		})
	}
}
