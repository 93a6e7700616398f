package traits

import "reflect"

// EqualityComparable reports whether values of types t and u can be
// compared with ==. In Go that requires identical types whose kind
// supports equality.
func EqualityComparable(t, u reflect.Type) bool {
	if t == nil || u == nil {
		return false
	}
	return t == u && t.Comparable()
}

// ordered reports whether t's kind admits <, <=, >, >= operators.
func ordered(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}

// LessComparable reports whether values of types t and u can be
// compared with <.
func LessComparable(t, u reflect.Type) bool {
	return t == u && ordered(t)
}

// LessEqComparable reports whether values of types t and u can be
// compared with <=.
func LessEqComparable(t, u reflect.Type) bool {
	return t == u && ordered(t)
}

// GreaterComparable reports whether values of types t and u can be
// compared with >.
func GreaterComparable(t, u reflect.Type) bool {
	return t == u && ordered(t)
}

// GreaterEqComparable reports whether values of types t and u can be
// compared with >=.
func GreaterEqComparable(t, u reflect.Type) bool {
	return t == u && ordered(t)
}
