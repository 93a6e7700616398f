package stringify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hetkit/stringify"
	"github.com/katalvlaran/hetkit/tuple"
)

// TestRender_Scalars verifies the printable branch renders native
// textual forms, with bools as true/false.
func TestRender_Scalars(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"int", 3, "3"},
		{"negative", -7, "-7"},
		{"float", 4.8, "4.8"},
		{"bool_true", true, "true"},
		{"bool_false", false, "false"},
		{"string", "cat", "cat"},
		{"error", assert.AnError, assert.AnError.Error()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stringify.Render(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestRender_IntSlice verifies the canonical homogeneous-iterable form.
func TestRender_IntSlice(t *testing.T) {
	got, err := stringify.Render([]int{3, 5, 6, 9})
	require.NoError(t, err)
	assert.Equal(t, "[ 3, 5, 6, 9 ]", got)
}

// TestRender_EmptyIterable verifies an empty iterable renders exactly "[ ]".
func TestRender_EmptyIterable(t *testing.T) {
	got, err := stringify.Render([]int{})
	require.NoError(t, err)
	assert.Equal(t, "[ ]", got)
}

// TestRender_Pair verifies pair rendering recurses on both components.
func TestRender_Pair(t *testing.T) {
	got, err := stringify.Render(tuple.MakePair(1, true))
	require.NoError(t, err)
	assert.Equal(t, "( 1, true )", got)

	nested, err := stringify.Render(tuple.MakePair([]int{1, 2}, "x"))
	require.NoError(t, err)
	assert.Equal(t, "( [ 1, 2 ], x )", nested)
}

// TestRender_Tuple verifies arbitrary-arity rendering without a
// trailing separator.
func TestRender_Tuple(t *testing.T) {
	got, err := stringify.Render(tuple.Of(3, "cat", true))
	require.NoError(t, err)
	assert.Equal(t, "( 3, cat, true )", got)

	empty, err := stringify.Render(tuple.Of())
	require.NoError(t, err)
	assert.Equal(t, "( )", empty)
}

// TestRender_NestedStructures verifies recursion through mixed
// container shapes.
func TestRender_NestedStructures(t *testing.T) {
	v := tuple.Of([]int{1, 2}, tuple.MakePair("a", 3), 7)
	got, err := stringify.Render(v)
	require.NoError(t, err)
	assert.Equal(t, "( [ 1, 2 ], ( a, 3 ), 7 )", got)

	slices := [][]int{{1}, {}, {2, 3}}
	got, err = stringify.Render(slices)
	require.NoError(t, err)
	assert.Equal(t, "[ [ 1 ], [ ], [ 2, 3 ] ]", got)
}

// TestRender_MapDeterministic verifies map entries render as pairs in
// a deterministic, text-sorted order.
func TestRender_MapDeterministic(t *testing.T) {
	got, err := stringify.Render(map[string]int{"b": 2, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, "[ ( a, 1 ), ( b, 2 ) ]", got)
}

// TestRender_Unsupported verifies the error path for values matching
// no capability.
func TestRender_Unsupported(t *testing.T) {
	_, err := stringify.Render(struct{ hidden int }{1})
	assert.ErrorIs(t, err, stringify.ErrUnsupportedType)

	_, err = stringify.Render(nil)
	assert.ErrorIs(t, err, stringify.ErrUnsupportedType)

	_, err = stringify.Render(make(chan int))
	assert.ErrorIs(t, err, stringify.ErrUnsupportedType, "channels cannot be rendered without draining")

	_, err = stringify.Render([]any{1, struct{ hidden int }{}})
	assert.ErrorIs(t, err, stringify.ErrUnsupportedType, "unsupported elements propagate")
}

// TestRenderWith_CustomDelimiters verifies Options overrides, including
// the partial-fill fallback.
func TestRenderWith_CustomDelimiters(t *testing.T) {
	opts := stringify.Options{ListOpen: "{", ListClose: "}"}
	got, err := stringify.RenderWith([]int{1, 2}, opts)
	require.NoError(t, err)
	assert.Equal(t, "{ 1, 2 }", got)

	opts = stringify.Options{Separator: " | "}
	got, err = stringify.RenderWith(tuple.Of(1, 2), opts)
	require.NoError(t, err)
	assert.Equal(t, "( 1 | 2 )", got)
}
