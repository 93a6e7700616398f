package seq

import (
	"reflect"
	"unicode/utf8"

	"github.com/katalvlaran/hetkit/traits"
)

// Last returns the last element of items, or the zero value and false
// when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}

	return items[len(items)-1], true
}

// LastOf returns the last element of any ordered iterable value: a
// slice or array element, the last rune of a string, or the last entry
// of a type exposing a Len/Index method pair (per traits.Iterable).
// Unordered or unsupported values yield (nil, false), as do empty ones.
func LastOf(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return nil, false
		}

		return rv.Index(rv.Len() - 1).Interface(), true
	case reflect.String:
		s := rv.String()
		if s == "" {
			return nil, false
		}
		r, _ := utf8.DecodeLastRuneInString(s)

		return r, true
	}
	if !traits.Iterable(rv.Type()) {
		return nil, false
	}
	lenM := rv.MethodByName("Len")
	idxM := rv.MethodByName("Index")
	if !lenM.IsValid() || !idxM.IsValid() {
		// Maps and channels are iterable but have no stable last element.
		return nil, false
	}
	n := int(lenM.Call(nil)[0].Int())
	if n == 0 {
		return nil, false
	}

	return idxM.Call([]reflect.Value{reflect.ValueOf(n - 1)})[0].Interface(), true
}
