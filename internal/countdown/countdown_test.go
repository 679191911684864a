package countdown

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// fixedSource is a CloseTimeSource the tests can update between ticks
type fixedSource struct {
	mu      sync.Mutex
	closeAt time.Time
	known   bool
}

func (s *fixedSource) CloseTime() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeAt, s.known
}

func (s *fixedSource) set(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeAt, s.known = t, true
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name    string
		closeAt time.Time
		now     time.Time
		want    State
	}{
		{name: "one_of_each_unit", closeAt: base.Add(90061 * time.Second), now: base, want: State{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}},
		{name: "exactly_one_day", closeAt: base.Add(24 * time.Hour), now: base, want: State{Days: 1}},
		{name: "sub_second_fraction_truncated", closeAt: base.Add(59*time.Second + 999*time.Millisecond), now: base, want: State{Seconds: 59}},
		{name: "less_than_a_second_left_is_open", closeAt: base.Add(300 * time.Millisecond), now: base, want: State{}},
		{name: "close_equals_now", closeAt: base, now: base, want: State{Closed: true}},
		{name: "past_close", closeAt: base, now: base.Add(time.Nanosecond), want: State{Closed: true}},
		{name: "long_past_close", closeAt: base.Add(-72 * time.Hour), now: base, want: State{Closed: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Remaining(tc.closeAt, tc.now)
			require.Equal(t, tc.want, got)
			require.Equal(t, got, Remaining(tc.closeAt, tc.now), "recomputation must be idempotent")
		})
	}
}

func TestRemaining_ReconstructsSeconds(t *testing.T) {
	for _, secs := range []int64{1, 59, 60, 61, 3599, 3600, 86399, 86400, 90061, 1_000_000} {
		got := Remaining(base.Add(time.Duration(secs)*time.Second), base)
		require.False(t, got.Closed)
		require.Equal(t, secs, got.TotalSeconds())
		require.Less(t, got.Hours, int64(24))
		require.Less(t, got.Minutes, int64(60))
		require.Less(t, got.Seconds, int64(60))
	}
}

func TestEngine_PendingUntilCloseTimeKnown(t *testing.T) {
	fc := clockwork.NewFakeClockAt(base)
	src := &fixedSource{}
	ticks := make(chan State, 8)
	engine := NewEngine(src, WithClock(fc), WithOnTick(func(s State) { ticks <- s }))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx) }()

	require.Equal(t, Pending(), <-ticks)
	require.False(t, engine.Closed())

	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	src.set(base.Add(90062 * time.Second))
	fc.Advance(time.Second)

	require.Equal(t, State{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}, <-ticks)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestEngine_StopsOnceClosed(t *testing.T) {
	fc := clockwork.NewFakeClockAt(base)
	src := &fixedSource{}
	src.set(base.Add(2 * time.Second))
	ticks := make(chan State, 8)
	engine := NewEngine(src, WithClock(fc), WithInterval(time.Second), WithOnTick(func(s State) { ticks <- s }))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx) }()

	require.Equal(t, State{Seconds: 2}, <-ticks)

	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	fc.Advance(time.Second)
	require.Equal(t, State{Seconds: 1}, <-ticks)

	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	fc.Advance(time.Second)
	require.Equal(t, State{Closed: true}, <-ticks)

	require.NoError(t, <-done)
	require.True(t, engine.Closed())

	// terminal: a later close time does not reopen the auction
	src.set(base.Add(time.Hour))
	require.NoError(t, engine.Run(ctx))
	require.True(t, engine.Closed())
	require.Empty(t, ticks)
}
