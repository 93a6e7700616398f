package tuple_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hetkit/tuple"
	"github.com/katalvlaran/hetkit/typelist"
)

// TestOf_CopiesInput verifies construction snapshots the argument slice.
func TestOf_CopiesInput(t *testing.T) {
	src := []any{1, "cat"}
	tp := tuple.Of(src...)
	src[0] = 99

	got, err := tp.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "mutating the source slice must not affect the tuple")
}

// TestTuple_LenAt exercises length and indexed access bounds.
func TestTuple_LenAt(t *testing.T) {
	tp := tuple.Of(2, 4.8, true)

	assert.Equal(t, 3, tp.Len())

	got, err := tp.At(1)
	require.NoError(t, err)
	assert.Equal(t, 4.8, got)

	_, err = tp.At(3)
	assert.ErrorIs(t, err, tuple.ErrIndexOutOfBounds)
	_, err = tp.At(-1)
	assert.ErrorIs(t, err, tuple.ErrIndexOutOfBounds)
}

// TestTuple_ZeroValue verifies the zero Tuple behaves as empty.
func TestTuple_ZeroValue(t *testing.T) {
	var tp tuple.Tuple
	assert.Equal(t, 0, tp.Len())
	assert.True(t, tp.Equal(tuple.Of()))

	_, err := tuple.PopBack(tp)
	assert.ErrorIs(t, err, tuple.ErrEmptyTuple)
}

// TestTuple_Types verifies the per-slot type list, including a nil slot.
func TestTuple_Types(t *testing.T) {
	tp := tuple.Of(2, "cat", nil)
	types := tp.Types()

	assert.Equal(t, 3, types.Len())
	got, err := types.At(0)
	require.NoError(t, err)
	assert.Equal(t, typelist.For[int](), got)
	got, err = types.At(2)
	require.NoError(t, err)
	assert.Nil(t, got, "nil element records a nil type")
}

// TestTuple_Equal verifies slot-wise deep equality.
func TestTuple_Equal(t *testing.T) {
	a := tuple.Of(1, []int{2, 3})
	b := tuple.Of(1, []int{2, 3})
	c := tuple.Of(1, []int{2, 4})

	assert.True(t, a.Equal(b), "deeply equal elements compare equal")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(tuple.Of(1)), "different lengths never compare equal")
}

// TestTuple_ValuesCopy verifies Values hands out an independent copy.
func TestTuple_ValuesCopy(t *testing.T) {
	tp := tuple.Of(1, 2)
	vals := tp.Values()
	vals[0] = 99

	assert.True(t, tp.Equal(tuple.Of(1, 2)), "mutating the copy must not affect the tuple")
	if diff := cmp.Diff([]any{1, 2}, tp.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}

// TestPair_Basics verifies construction, swap and tuple conversion.
func TestPair_Basics(t *testing.T) {
	p := tuple.MakePair(1, true)

	assert.Equal(t, 1, p.First)
	assert.Equal(t, true, p.Second)

	sw := p.Swap()
	assert.Equal(t, true, sw.First)
	assert.Equal(t, 1, sw.Second)

	assert.True(t, p.Tuple().Equal(tuple.Of(1, true)))
}
