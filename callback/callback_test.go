package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInvokesOnce(t *testing.T) {
	got := 0
	cb := New(func(v int) { got = v })

	cb.Run(42)
	assert.Equal(t, 42, got)
	assert.True(t, cb.Used())

	assert.PanicsWithValue(t, "callback: already used", func() { cb.Run(7) })
	assert.Equal(t, 42, got)
}

func TestCopiesShareTheGate(t *testing.T) {
	calls := 0
	cb := New(func(struct{}) { calls++ })
	copied := cb

	cb.Run(struct{}{})
	assert.False(t, copied.TryRun(struct{}{}))
	assert.Equal(t, 1, calls)
}

func TestTryRun(t *testing.T) {
	calls := 0
	cb := New(func(int) { calls++ })

	assert.True(t, cb.TryRun(1))
	assert.False(t, cb.TryRun(2))
	assert.Equal(t, 1, calls)
}

func TestDiscard(t *testing.T) {
	cb := New(func(int) { t.Fatal("must not run") })

	require.True(t, cb.Discard())
	assert.False(t, cb.Discard())
	assert.True(t, cb.Used())
	assert.False(t, cb.TryRun(1))
	assert.Panics(t, func() { cb.Run(1) })
}

func TestZeroOnce(t *testing.T) {
	var cb Once[int]

	assert.True(t, cb.Used())
	assert.False(t, cb.Discard())
	assert.PanicsWithValue(t, "callback: empty", func() { cb.Run(1) })
}

func TestNewNilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "callback: nil function", func() { New[int](nil) })
}
