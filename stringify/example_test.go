package stringify_test

import (
	"fmt"

	"github.com/katalvlaran/hetkit/stringify"
	"github.com/katalvlaran/hetkit/tuple"
)

// ExampleRender demonstrates the four rendering capabilities.
func ExampleRender() {
	ints, _ := stringify.Render([]int{3, 5, 6, 9})
	empty, _ := stringify.Render([]int{})
	pair, _ := stringify.Render(tuple.MakePair(1, true))
	mixed, _ := stringify.Render(tuple.Of(3, "cat", true))

	fmt.Println(ints)
	fmt.Println(empty)
	fmt.Println(pair)
	fmt.Println(mixed)
	// Output:
	// [ 3, 5, 6, 9 ]
	// [ ]
	// ( 1, true )
	// ( 3, cat, true )
}

// ExampleRenderWith demonstrates custom delimiters.
func ExampleRenderWith() {
	opts := stringify.DefaultOptions()
	opts.ListOpen, opts.ListClose = "{", "}"

	out, _ := stringify.RenderWith([]int{1, 2, 3}, opts)
	fmt.Println(out)
	// Output:
	// { 1, 2, 3 }
}
