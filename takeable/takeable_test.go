package takeable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetReturnsHeldValue(t *testing.T) {
	c := New(42)
	require.Equal(t, 42, c.Get())
	// Get does not consume the value.
	require.Equal(t, 42, c.Get())
}

func TestTakeThenPut(t *testing.T) {
	c := New("ctx")
	v := c.Take()
	require.Equal(t, "ctx", v)
	c.Put("ctx2")
	require.Equal(t, "ctx2", c.Get())
}

func TestDoubleTakePanics(t *testing.T) {
	c := New(1)
	c.Take()
	require.PanicsWithValue(t, "takeable: value already taken", func() {
		c.Take()
	})
}

func TestObserveTakenPanics(t *testing.T) {
	c := New(1)
	c.Take()
	require.Panics(t, func() { c.Get() })
	require.Panics(t, func() { c.Borrow(func(int) {}) })
}

func TestPutWhilePresentPanics(t *testing.T) {
	c := New(1)
	require.PanicsWithValue(t, "takeable: cell already holds a value", func() {
		c.Put(2)
	})
}

func TestBorrow(t *testing.T) {
	c := New([]int{1, 2, 3})
	var got []int
	c.Borrow(func(v []int) { got = v })
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestSwapTransforms(t *testing.T) {
	c := New(10)
	err := c.Swap(func(v int) (int, error) { return v + 1, nil })
	require.NoError(t, err)
	require.Equal(t, 11, c.Get())
}

func TestSwapErrorStillReinserts(t *testing.T) {
	boom := errors.New("boom")
	c := New(10)
	err := c.Swap(func(v int) (int, error) { return v, boom })
	require.ErrorIs(t, err, boom)
	// The cell must not be left empty by a failed transform.
	require.Equal(t, 10, c.Get())
}
