package testutil

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// TestLogger returns a logger that writes through t.Log.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}
