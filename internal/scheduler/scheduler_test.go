package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_MaxGap(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want time.Duration
	}{
		{name: "Should use the constant delay", expr: "@every 5m", want: 5 * time.Minute},
		{name: "Should handle a fixed step", expr: "*/10 * * * *", want: 10 * time.Minute},
		{name: "Should find the overnight gap", expr: "*/15 8-18 * * *", want: 13*time.Hour + 15*time.Minute},
		{name: "Should find a daily gap", expr: "0 9 * * *", want: 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.expr, time.UTC)
			require.NoError(t, err)

			assert.Equal(t, tt.want, s.MaxGap())
		})
	}
}

func TestScheduler_CheckCoverage(t *testing.T) {
	s, err := New("@every 5m", time.UTC)
	require.NoError(t, err)
	assert.True(t, s.CheckCoverage(10*time.Minute))

	s, err = New("0 * * * *", time.UTC)
	require.NoError(t, err)
	assert.False(t, s.CheckCoverage(10*time.Minute))
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New("every five minutes", time.UTC)

	assert.Error(t, err)
}

func TestScheduler_Run_TicksImmediately(t *testing.T) {
	s, err := New("@every 1h", time.UTC)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan error, 1)

	go func() {
		done <- s.Run(ctx, func(context.Context) { calls.Add(1) })
	}()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestScheduler_Run_StopsWhenCancelledDuringFirstTick(t *testing.T) {
	s, err := New("@every 1s", time.UTC)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var calls int

	err = s.Run(ctx, func(context.Context) {
		calls++
		cancel()
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
