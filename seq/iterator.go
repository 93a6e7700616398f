package seq

import "reflect"

// Integer enumerates the built-in integer kinds usable with the default
// successor/predecessor steps.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Increment is the successor step: advances v by one in place.
func Increment[T Integer](v *T) { *v++ }

// Decrement is the predecessor step: moves v back by one in place.
func Decrement[T Integer](v *T) { *v-- }

// Iterator is a stepped-value position marker: it stores only the
// current value and the step used to advance it. Copies are fully
// independent (value semantics).
type Iterator[T any] struct {
	val  T
	step func(*T)
}

// NewIterator builds an Iterator positioned at start, advancing with
// step. A nil step leaves the iterator fixed at its value; end-marker
// iterators never step, so this is harmless for them.
func NewIterator[T any](start T, step func(*T)) Iterator[T] {
	return Iterator[T]{val: start, step: step}
}

// Value returns the current value.
func (it Iterator[T]) Value() T { return it.val }

// Next advances the current value by applying the step in place.
func (it *Iterator[T]) Next() {
	if it.step == nil {
		return
	}
	it.step(&it.val)
}

// Equal reports whether both iterators hold equal current values.
// Only the values participate: the step functions are irrelevant, which
// is what lets an independently constructed end marker terminate a loop.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return reflect.DeepEqual(it.val, other.val)
}
