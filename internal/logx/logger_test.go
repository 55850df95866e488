package logx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ForwardsWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core)).With(zap.String("entity", "store.User"))

	l.Debug("emitted")
	l.Info("pass done", zap.Int("units", 2))
	l.Warn("unreachable")
	l.Error("emit failed")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "emitted", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "store.User", entries[3].ContextMap()["entity"])
	assert.Equal(t, int64(2), entries[1].ContextMap()["units"])
}

func TestNew(t *testing.T) {
	l, err := New("debug", true)
	require.NoError(t, err)
	assert.True(t, l.Zap().Core().Enabled(zapcore.DebugLevel))

	l, err = New("", false)
	require.NoError(t, err)
	assert.False(t, l.Zap().Core().Enabled(zapcore.DebugLevel))

	_, err = New("loud", false)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().With(zap.String("k", "v")).Info("ignored")
	})
}
