package typelist

import (
	"errors"
	"reflect"
	"strings"
)

// Sentinel errors for typelist operations.
var (
	// ErrIndexOutOfBounds indicates an index outside [0, Len).
	ErrIndexOutOfBounds = errors.New("typelist: index out of bounds")
	// ErrEmptyList indicates a shrink operation on an empty list.
	ErrEmptyList = errors.New("typelist: list must be non-empty")
)

// List is an ordered, immutable collection of reflect.Type values.
// The zero value is an empty, ready-to-use list.
type List struct {
	types []reflect.Type
}

// Of builds a List from the given types in order. The argument slice is
// copied; later changes to it do not affect the List.
func Of(types ...reflect.Type) List {
	if len(types) == 0 {
		return List{}
	}
	cp := make([]reflect.Type, len(types))
	copy(cp, types)

	return List{types: cp}
}

// For captures the reflect.Type of T, including interface types, which
// reflect.TypeOf on a value would lose.
func For[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Len reports the number of types in the list.
func (l List) Len() int { return len(l.types) }

// Contains reports whether t occurs in the list.
func (l List) Contains(t reflect.Type) bool {
	for _, lt := range l.types {
		if lt == t {
			return true
		}
	}

	return false
}

// At returns the type at index i, or ErrIndexOutOfBounds when
// i is outside [0, Len).
func (l List) At(i int) (reflect.Type, error) {
	if i < 0 || i >= len(l.types) {
		return nil, ErrIndexOutOfBounds
	}

	return l.types[i], nil
}

// PushBack returns a new List with t appended. The receiver is unchanged.
func (l List) PushBack(t reflect.Type) List {
	cp := make([]reflect.Type, len(l.types)+1)
	copy(cp, l.types)
	cp[len(l.types)] = t

	return List{types: cp}
}

// PushFront returns a new List with t prepended. The receiver is unchanged.
func (l List) PushFront(t reflect.Type) List {
	cp := make([]reflect.Type, len(l.types)+1)
	cp[0] = t
	copy(cp[1:], l.types)

	return List{types: cp}
}

// PopBack returns a new List with the last type removed, or ErrEmptyList
// when the receiver is empty. The result's length is Len()-1.
func (l List) PopBack() (List, error) {
	if len(l.types) == 0 {
		return List{}, ErrEmptyList
	}

	return Of(l.types[:len(l.types)-1]...), nil
}

// PopFront returns a new List with the first type removed, or ErrEmptyList
// when the receiver is empty. The result's length is Len()-1.
func (l List) PopFront() (List, error) {
	if len(l.types) == 0 {
		return List{}, ErrEmptyList
	}

	return Of(l.types[1:]...), nil
}

// Types returns a copy of the list's contents in order.
func (l List) Types() []reflect.Type {
	cp := make([]reflect.Type, len(l.types))
	copy(cp, l.types)

	return cp
}

// Equal reports whether both lists hold the same types in the same order.
func (l List) Equal(other List) bool {
	if len(l.types) != len(other.types) {
		return false
	}
	for i, t := range l.types {
		if t != other.types[i] {
			return false
		}
	}

	return true
}

// String renders the list as "(T0, T1, ...)" for debugging.
func (l List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range l.types {
		if i > 0 {
			b.WriteString(", ")
		}
		if t == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')

	return b.String()
}
