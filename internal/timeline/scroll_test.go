package timeline

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollerRunsAfterDelay(t *testing.T) {
	var calls atomic.Int32
	s := NewScroller(20*time.Millisecond, func() { calls.Add(1) })

	s.Request()
	require.Zero(t, calls.Load(), "scroll ran before the delay")
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestScrollerLaterRequestSupersedes(t *testing.T) {
	var calls atomic.Int32
	s := NewScroller(30*time.Millisecond, func() { calls.Add(1) })

	for i := 0; i < 5; i++ {
		s.Request()
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(150 * time.Millisecond)
	assert.EqualValues(t, 1, calls.Load(), "superseded requests must not fire")
}

func TestScrollerStop(t *testing.T) {
	var calls atomic.Int32
	s := NewScroller(20*time.Millisecond, func() { calls.Add(1) })
	s.Request()
	s.Stop()
	s.Stop()
	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestScrollerDefaultDelay(t *testing.T) {
	s := NewScroller(0, func() {})
	assert.Equal(t, DefaultScrollDelay, s.delay)
}
