package traits

import "reflect"

// acceptsArg reports whether a non-variadic single-argument function of
// type fn can be invoked with an argument of type elem. A nil elem
// stands for an untyped nil value and is accepted only by interface,
// pointer, map, slice, channel, and function parameters.
func acceptsArg(fn, elem reflect.Type) bool {
	if fn == nil || fn.Kind() != reflect.Func || fn.IsVariadic() || fn.NumIn() != 1 {
		return false
	}
	in := fn.In(0)
	if elem == nil {
		switch in.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return true
		}
		return false
	}
	return elem.AssignableTo(in)
}

// VisitorFor reports whether fn can be invoked with a single argument of
// type elem. Results, if any, are ignored by visiting algorithms.
func VisitorFor(fn, elem reflect.Type) bool {
	return acceptsArg(fn, elem)
}

// PredicateFor reports whether fn is a unary predicate over elem:
// invocable with one argument of type elem, returning exactly one bool.
func PredicateFor(fn, elem reflect.Type) bool {
	if !acceptsArg(fn, elem) {
		return false
	}
	return fn.NumOut() == 1 && fn.Out(0).Kind() == reflect.Bool
}

// TransformFor reports whether fn is a unary mapping over elem:
// invocable with one argument of type elem, returning exactly one value.
func TransformFor(fn, elem reflect.Type) bool {
	if !acceptsArg(fn, elem) {
		return false
	}
	return fn.NumOut() == 1
}
