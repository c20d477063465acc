package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSweepScheduler_StartStop(t *testing.T) {
	var calls int32
	s := NewSweepScheduler("test", 5*time.Millisecond, func(ctx context.Context, now time.Time) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 0, nil
	}, nil)

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, s.Stop(context.Background()))
	assert.False(t, s.IsRunning())
	require.NoError(t, s.Stop(context.Background()))

	after := atomic.LoadInt32(&calls)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&calls))
}

func TestSweepScheduler_RunReturnsOnCancel(t *testing.T) {
	s := NewSweepScheduler("test", time.Hour, func(context.Context, time.Time) (int, error) { return 0, nil }, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	assert.Eventually(t, s.IsRunning, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSweepScheduler_RunOnceLogsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var seen time.Time
	s := NewSweepScheduler("reaper", time.Minute, func(_ context.Context, now time.Time) (int, error) {
		seen = now
		return 1, errors.New("store down")
	}, zap.New(core))
	s.now = func() time.Time { return fixed }

	s.RunOnce(context.Background())
	assert.Equal(t, fixed, seen)
	require.Equal(t, 1, logs.FilterMessage("[scheduler] pass failed").Len())
}
