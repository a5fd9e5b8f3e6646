package slider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCarousel_WrapAround(t *testing.T) {
	t.Parallel()

	c := New(3, time.Hour)
	defer c.Close()

	require.Equal(t, 0, c.Current())
	require.Equal(t, 2, c.Prev(), "prev from 0 wraps to n-1")
	require.Equal(t, 0, c.Next(), "next from n-1 wraps to 0")
	require.Equal(t, 1, c.Next())
}

func TestCarousel_IndexAlwaysInBounds(t *testing.T) {
	t.Parallel()

	c := New(4, time.Hour)
	defer c.Close()

	for i := 0; i < 25; i++ {
		var got int
		if i%3 == 0 {
			got = c.Prev()
		} else {
			got = c.Next()
		}
		require.GreaterOrEqual(t, got, 0)
		require.Less(t, got, 4)
	}
}

func TestCarousel_GoTo(t *testing.T) {
	t.Parallel()

	c := New(3, time.Hour)
	defer c.Close()

	require.NoError(t, c.GoTo(2))
	require.Equal(t, 2, c.Current())
	require.ErrorIs(t, c.GoTo(3), ErrOutOfRange)
	require.ErrorIs(t, c.GoTo(-1), ErrOutOfRange)
	require.Equal(t, 2, c.Current())
}

func TestCarousel_NoTimerForZeroOrOneSlide(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1} {
		c := New(n, 10*time.Millisecond)
		require.False(t, c.TimerActive(), "n=%d", n)

		time.Sleep(50 * time.Millisecond)
		require.Equal(t, 0, c.Current())

		require.Equal(t, 0, c.Next())
		require.Equal(t, 0, c.Prev())
		c.Close()
	}
}

func TestCarousel_AutoAdvance(t *testing.T) {
	t.Parallel()

	c := New(3, 20*time.Millisecond)
	defer c.Close()

	require.True(t, c.TimerActive())
	require.Eventually(t, func() bool { return c.Current() == 1 }, time.Second, 5*time.Millisecond)

	select {
	case <-c.Changes():
	case <-time.After(time.Second):
		t.Fatal("no change signal")
	}
}

func TestCarousel_ManualNavigationKeepsTimer(t *testing.T) {
	t.Parallel()

	c := New(5, time.Hour)
	defer c.Close()

	c.mu.Lock()
	before := c.stop
	c.mu.Unlock()

	c.Next()
	c.Prev()
	require.NoError(t, c.GoTo(3))

	c.mu.Lock()
	after := c.stop
	c.mu.Unlock()
	require.True(t, before == after, "manual navigation must not recreate the timer")
}

func TestCarousel_SetCount_RecreatesOnlyOnChange(t *testing.T) {
	t.Parallel()

	c := New(3, time.Hour)
	defer c.Close()

	c.mu.Lock()
	first := c.stop
	c.mu.Unlock()

	c.SetCount(3)
	c.mu.Lock()
	require.True(t, c.stop == first, "same count keeps the timer")
	c.mu.Unlock()

	require.NoError(t, c.GoTo(2))
	c.SetCount(2)
	c.mu.Lock()
	require.False(t, c.stop == first, "new count recreates the timer")
	require.NotNil(t, c.stop)
	c.mu.Unlock()
	require.Equal(t, 1, c.Current(), "current clamped into range")

	c.SetCount(1)
	require.False(t, c.TimerActive())
	require.Equal(t, 0, c.Current())

	c.SetCount(0)
	require.Equal(t, 0, c.Count())
	require.Equal(t, 0, c.Current())
}

func TestCarousel_CloseStopsTimer(t *testing.T) {
	t.Parallel()

	c := New(3, 10*time.Millisecond)
	c.Close()
	require.False(t, c.TimerActive())

	at := c.Current()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, at, c.Current())

	c.SetCount(5)
	require.False(t, c.TimerActive(), "closed carousel never restarts")
	c.Close()
}

func TestCarousel_DefaultInterval(t *testing.T) {
	t.Parallel()

	c := New(2, 0)
	defer c.Close()
	require.Equal(t, DefaultInterval, c.interval)
}

func TestHub_RegisterGetRemove(t *testing.T) {
	t.Parallel()

	h := NewHub()
	c := New(3, time.Hour)

	id := h.Register(c)
	require.NotEmpty(t, id)
	require.Equal(t, 1, h.Len())

	got, ok := h.Get(id)
	require.True(t, ok)
	require.Same(t, c, got)

	h.Remove(id)
	_, ok = h.Get(id)
	require.False(t, ok)
	require.False(t, c.TimerActive(), "removed carousel is closed")

	h.Remove(id)
}

func TestHub_Close(t *testing.T) {
	t.Parallel()

	h := NewHub()
	a, b := New(2, time.Hour), New(3, time.Hour)
	h.Register(a)
	h.Register(b)

	h.Close()
	require.Equal(t, 0, h.Len())
	require.False(t, a.TimerActive())
	require.False(t, b.TimerActive())
}
