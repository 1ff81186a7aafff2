package weakref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	name string
}

func TestRefResolvesWhileAlive(t *testing.T) {
	w := &widget{name: "w"}
	factory := NewFactory(w)
	ref := factory.Ref()

	require.True(t, ref.Alive())
	got, ok := ref.Get()
	require.True(t, ok)
	assert.Same(t, w, got)
}

func TestInvalidateKillsAllRefs(t *testing.T) {
	factory := NewFactory(&widget{})
	a := factory.Ref()
	b := factory.Ref()

	factory.Invalidate()

	assert.False(t, factory.Alive())
	assert.False(t, a.Alive())
	assert.False(t, b.Alive())

	_, ok := a.Get()
	assert.False(t, ok)
}

func TestInvalidateIsIdempotent(t *testing.T) {
	factory := NewFactory(&widget{})
	factory.Invalidate()
	factory.Invalidate()
	assert.False(t, factory.Alive())
}

func TestRefIssuedAfterInvalidateIsDead(t *testing.T) {
	factory := NewFactory(&widget{})
	factory.Invalidate()

	ref := factory.Ref()
	assert.False(t, ref.Alive())
}

func TestZeroRefIsDead(t *testing.T) {
	var ref Ref[widget]

	assert.False(t, ref.Alive())
	_, ok := ref.Get()
	assert.False(t, ok)
}

func TestRefCopiesShareLiveness(t *testing.T) {
	factory := NewFactory(&widget{})
	ref := factory.Ref()
	copied := ref

	factory.Invalidate()
	assert.False(t, copied.Alive())
}

func TestNilReferentPanics(t *testing.T) {
	assert.PanicsWithValue(t, "weakref: nil referent", func() { NewFactory[widget](nil) })
}
