// Package traits defines structural capability predicates over reflect.Type.
package traits

import (
	"fmt"
	"reflect"
)

// TupleLike is the minimal surface of a fixed-arity heterogeneous
// container: a length and per-index element access. tuple.Tuple
// satisfies it; so may any user-defined container.
type TupleLike interface {
	// Len reports the number of elements.
	Len() int
	// At returns the element at index i, or an error when i is out of range.
	At(i int) (any, error)
}

var (
	tupleLikeType = reflect.TypeOf((*TupleLike)(nil)).Elem()
	stringerType  = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
)

// Iterable reports whether values of type t can be iterated over:
// a slice, array, map, string, or channel kind, or any type exposing
// a Len() int / Index(int) method pair.
func Iterable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return true
	}
	return hasLenIndex(t)
}

// IsIterable is the value form of Iterable.
func IsIterable(v any) bool { return Iterable(reflect.TypeOf(v)) }

// hasLenIndex reports whether t exposes Len() int and Index(int) with
// one result each.
func hasLenIndex(t reflect.Type) bool {
	l, ok := t.MethodByName("Len")
	if !ok || l.Type.NumIn() != 1 || l.Type.NumOut() != 1 || l.Type.Out(0).Kind() != reflect.Int {
		return false
	}
	idx, ok := t.MethodByName("Index")
	if !ok || idx.Type.NumIn() != 2 || idx.Type.In(1).Kind() != reflect.Int || idx.Type.NumOut() != 1 {
		return false
	}
	return true
}

// Iterator reports whether t meets the minimum criteria for an iterator:
// the type exposes Value() (element access, one result, no arguments)
// and Next() (advance, no arguments).
func Iterator(t reflect.Type) bool {
	if t == nil {
		return false
	}
	val, ok := t.MethodByName("Value")
	if !ok || val.Type.NumIn() != 1 || val.Type.NumOut() != 1 {
		return false
	}
	next, ok := t.MethodByName("Next")
	if !ok || next.Type.NumIn() != 1 {
		return false
	}
	return true
}

// IsIterator is the value form of Iterator.
func IsIterator(v any) bool { return Iterator(reflect.TypeOf(v)) }

// Bidirectional reports whether t is an Iterator that can also step
// backwards via a Prev() method taking no arguments.
func Bidirectional(t reflect.Type) bool {
	if !Iterator(t) {
		return false
	}
	prev, ok := t.MethodByName("Prev")
	return ok && prev.Type.NumIn() == 1
}

// IsBidirectional is the value form of Bidirectional.
func IsBidirectional(v any) bool { return Bidirectional(reflect.TypeOf(v)) }

// RandomAccess reports whether t is a Bidirectional iterator supporting
// offset arithmetic: Seek(int) and Pos() int.
func RandomAccess(t reflect.Type) bool {
	if !Bidirectional(t) {
		return false
	}
	seek, ok := t.MethodByName("Seek")
	if !ok || seek.Type.NumIn() != 2 || seek.Type.In(1).Kind() != reflect.Int {
		return false
	}
	pos, ok := t.MethodByName("Pos")
	if !ok || pos.Type.NumIn() != 1 || pos.Type.NumOut() != 1 || pos.Type.Out(0).Kind() != reflect.Int {
		return false
	}
	return true
}

// IsRandomAccess is the value form of RandomAccess.
func IsRandomAccess(v any) bool { return RandomAccess(reflect.TypeOf(v)) }

// Pair reports whether t is a 2-ary product type: a struct whose only
// two fields are named First and Second (e.g. tuple.Pair).
func Pair(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Struct || t.NumField() != 2 {
		return false
	}
	return t.Field(0).Name == "First" && t.Field(1).Name == "Second"
}

// IsPair is the value form of Pair.
func IsPair(v any) bool { return Pair(reflect.TypeOf(v)) }

// Tuple reports whether t is a fixed-arity heterogeneous container,
// i.e. implements the TupleLike interface.
func Tuple(t reflect.Type) bool {
	if t == nil {
		return false
	}
	return t.Implements(tupleLikeType)
}

// IsTuple is the value form of Tuple.
func IsTuple(v any) bool { return Tuple(reflect.TypeOf(v)) }

// Printable reports whether values of type t have a native textual
// form: fmt.Stringer, error, or a printable primitive kind
// (bool, integers, floats, complex numbers, string).
func Printable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Implements(stringerType) || t.Implements(errorType) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	}
	return false
}

// IsPrintable is the value form of Printable.
func IsPrintable(v any) bool { return Printable(reflect.TypeOf(v)) }
