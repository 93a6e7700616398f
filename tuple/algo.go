package tuple

import (
	"reflect"

	"github.com/katalvlaran/hetkit/traits"
)

// checkCallable validates fn against every element type of t with the
// given traits probe, returning the callable's reflect.Value. Validation
// happens up front so a mismatched callable fails atomically, before any
// element is touched.
func checkCallable(fn any, t Tuple, probe func(fn, elem reflect.Type) bool, sentinel error) (reflect.Value, error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return reflect.Value{}, sentinel
	}
	ft := fv.Type()
	for _, v := range t.items {
		if !probe(ft, reflect.TypeOf(v)) {
			return reflect.Value{}, sentinel
		}
	}

	return fv, nil
}

// callUnary invokes the validated unary callable with elem. A nil elem
// is passed as the zero value of the parameter type.
func callUnary(fv reflect.Value, elem any) []reflect.Value {
	var arg reflect.Value
	if elem == nil {
		arg = reflect.Zero(fv.Type().In(0))
	} else {
		arg = reflect.ValueOf(elem)
	}

	return fv.Call([]reflect.Value{arg})
}

// ForEach applies visitor to every element of t in order. The visitor
// must be a unary func invocable with every element's type; its results,
// if any, are discarded. Returns ErrBadVisitor otherwise.
func ForEach(t Tuple, visitor any) error {
	fv, err := checkCallable(visitor, t, traits.VisitorFor, ErrBadVisitor)
	if err != nil {
		return err
	}
	for _, v := range t.items {
		callUnary(fv, v)
	}

	return nil
}

// Transform applies fn to every element of t in order and collects the
// results into a new Tuple: the i-th result type is fn's result type for
// the i-th input. Returns ErrBadTransform when fn is not a unary func
// returning exactly one value for every element.
func Transform(t Tuple, fn any) (Tuple, error) {
	fv, err := checkCallable(fn, t, traits.TransformFor, ErrBadTransform)
	if err != nil {
		return Tuple{}, err
	}
	out := make([]any, len(t.items))
	for i, v := range t.items {
		out[i] = callUnary(fv, v)[0].Interface()
	}

	return Tuple{items: out}, nil
}

// AnyOf reports whether pred holds for at least one element of t,
// evaluating front-to-back and stopping at the first hit. The predicate
// must be a unary func returning bool for every element's type; an empty
// tuple yields false. Returns ErrBadPredicate on shape violation.
func AnyOf(t Tuple, pred any) (bool, error) {
	fv, err := checkCallable(pred, t, traits.PredicateFor, ErrBadPredicate)
	if err != nil {
		return false, err
	}
	for _, v := range t.items {
		if callUnary(fv, v)[0].Bool() {
			return true, nil
		}
	}

	return false, nil
}

// AllOf reports whether pred holds for every element of t, evaluating
// front-to-back and stopping at the first miss. An empty tuple yields
// true. Returns ErrBadPredicate on shape violation.
func AllOf(t Tuple, pred any) (bool, error) {
	fv, err := checkCallable(pred, t, traits.PredicateFor, ErrBadPredicate)
	if err != nil {
		return false, err
	}
	for _, v := range t.items {
		if !callUnary(fv, v)[0].Bool() {
			return false, nil
		}
	}

	return true, nil
}

// NoneOf reports whether pred holds for no element of t. Exactly the
// negation of AnyOf. Returns ErrBadPredicate on shape violation.
func NoneOf(t Tuple, pred any) (bool, error) {
	hit, err := AnyOf(t, pred)
	if err != nil {
		return false, err
	}

	return !hit, nil
}

// CountIf returns the number of elements of t for which pred holds.
// Returns ErrBadPredicate on shape violation.
func CountIf(t Tuple, pred any) (int, error) {
	fv, err := checkCallable(pred, t, traits.PredicateFor, ErrBadPredicate)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range t.items {
		if callUnary(fv, v)[0].Bool() {
			n++
		}
	}

	return n, nil
}

// PushBack returns a new Tuple with the given values appended, in order.
// The receiver tuple is unchanged.
//
//	PushBack(Of(2, 4.8), true) == Of(2, 4.8, true)
func PushBack(t Tuple, values ...any) Tuple {
	out := make([]any, 0, len(t.items)+len(values))
	out = append(out, t.items...)
	out = append(out, values...)

	return Tuple{items: out}
}

// PushFront returns a new Tuple with the given values prepended, in
// order. The receiver tuple is unchanged.
//
//	PushFront(Of(2, 4.8), true) == Of(true, 2, 4.8)
func PushFront(t Tuple, values ...any) Tuple {
	out := make([]any, 0, len(t.items)+len(values))
	out = append(out, values...)
	out = append(out, t.items...)

	return Tuple{items: out}
}

// PopBack returns a new Tuple with the last element removed, or
// ErrEmptyTuple when t is empty.
func PopBack(t Tuple) (Tuple, error) {
	if len(t.items) == 0 {
		return Tuple{}, ErrEmptyTuple
	}

	return Of(t.items[:len(t.items)-1]...), nil
}

// PopFront returns a new Tuple with the first element removed, or
// ErrEmptyTuple when t is empty.
func PopFront(t Tuple) (Tuple, error) {
	if len(t.items) == 0 {
		return Tuple{}, ErrEmptyTuple
	}

	return Of(t.items[1:]...), nil
}

// Insert returns a new Tuple with values spliced in before index idx;
// idx == Len appends. Relative order of pre- and post-index elements is
// preserved. Returns ErrIndexOutOfBounds when idx is outside [0, Len].
//
//	Insert(Of(3, true), 1, 5.8) == Of(3, 5.8, true)
func Insert(t Tuple, idx int, values ...any) (Tuple, error) {
	if idx < 0 || idx > len(t.items) {
		return Tuple{}, ErrIndexOutOfBounds
	}
	out := make([]any, 0, len(t.items)+len(values))
	out = append(out, t.items[:idx]...)
	out = append(out, values...)
	out = append(out, t.items[idx:]...)

	return Tuple{items: out}, nil
}

// Split returns two new Tuples holding elements [0, idx) and [idx, Len):
// the element at idx becomes the first element of the second tuple, so
// concatenating the results reconstructs t. idx must be a valid index;
// otherwise ErrIndexOutOfBounds.
//
//	Split(Of(1, true, 'g'), 1) == Of(1), Of(true, 'g')
func Split(t Tuple, idx int) (Tuple, Tuple, error) {
	if idx < 0 || idx >= len(t.items) {
		return Tuple{}, Tuple{}, ErrIndexOutOfBounds
	}

	return Of(t.items[:idx]...), Of(t.items[idx:]...), nil
}

// Subtuple returns a new Tuple holding the half-open slice [begin, end)
// of t. begin must be a valid index, end must not exceed Len, and
// begin must not exceed end; otherwise ErrIndexOutOfBounds.
func Subtuple(t Tuple, begin, end int) (Tuple, error) {
	if begin < 0 || begin >= len(t.items) || end < begin || end > len(t.items) {
		return Tuple{}, ErrIndexOutOfBounds
	}

	return Of(t.items[begin:end]...), nil
}

// Reorder returns a new Tuple whose i-th element is t's element at
// indices[i]. Duplicate and omitted indices are allowed; every index
// must be inside [0, Len), otherwise ErrIndexOutOfBounds.
//
//	Reorder(Of(10, 20, 30), 2, 0, 0) == Of(30, 10, 10)
func Reorder(t Tuple, indices ...int) (Tuple, error) {
	out := make([]any, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(t.items) {
			return Tuple{}, ErrIndexOutOfBounds
		}
		out[i] = t.items[idx]
	}

	return Tuple{items: out}, nil
}
