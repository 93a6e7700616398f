package tuple

import (
	"errors"
	"reflect"

	"github.com/katalvlaran/hetkit/typelist"
)

// Sentinel errors for tuple operations.
var (
	// ErrIndexOutOfBounds indicates an index outside the operation's valid range.
	ErrIndexOutOfBounds = errors.New("tuple: index out of bounds")
	// ErrEmptyTuple indicates a pop operation on an empty tuple.
	ErrEmptyTuple = errors.New("tuple: tuple must be non-empty")
	// ErrBadVisitor indicates a visitor not invocable with every element.
	ErrBadVisitor = errors.New("tuple: visitor must be a unary func invocable with every element")
	// ErrBadPredicate indicates a predicate not invocable-returning-bool with every element.
	ErrBadPredicate = errors.New("tuple: predicate must be a unary func returning bool for every element")
	// ErrBadTransform indicates a transform not invocable-returning-one-value with every element.
	ErrBadTransform = errors.New("tuple: transform must be a unary func returning one value for every element")
)

// Tuple is an immutable, fixed-length heterogeneous value sequence.
// The zero value is an empty, ready-to-use tuple. Each Tuple owns its
// elements independently: operations never share backing storage.
//
// Tuple deliberately has no String method; rendering is the job of
// stringify.Render, whose capability branches must stay mutually
// exclusive (a Stringer would shadow the tuple branch).
type Tuple struct {
	items []any
}

// Of builds a Tuple from the given values in order. The argument slice
// is copied; later changes to it do not affect the Tuple.
func Of(values ...any) Tuple {
	if len(values) == 0 {
		return Tuple{}
	}
	cp := make([]any, len(values))
	copy(cp, values)

	return Tuple{items: cp}
}

// Len reports the number of elements.
func (t Tuple) Len() int { return len(t.items) }

// At returns the element at index i, or ErrIndexOutOfBounds when
// i is outside [0, Len).
func (t Tuple) At(i int) (any, error) {
	if i < 0 || i >= len(t.items) {
		return nil, ErrIndexOutOfBounds
	}

	return t.items[i], nil
}

// Values returns a copy of the tuple's elements in order.
func (t Tuple) Values() []any {
	cp := make([]any, len(t.items))
	copy(cp, t.items)

	return cp
}

// Types returns the per-slot type list of the tuple. A nil element's
// slot is recorded as a nil type.
func (t Tuple) Types() typelist.List {
	types := make([]reflect.Type, len(t.items))
	for i, v := range t.items {
		types[i] = reflect.TypeOf(v)
	}

	return typelist.Of(types...)
}

// Equal reports whether both tuples have the same length and deeply
// equal elements slot by slot.
func (t Tuple) Equal(other Tuple) bool {
	if len(t.items) != len(other.items) {
		return false
	}
	for i, v := range t.items {
		if !reflect.DeepEqual(v, other.items[i]) {
			return false
		}
	}

	return true
}
