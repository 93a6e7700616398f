// Package tuple provides immutable, fixed-arity heterogeneous value
// sequences and a suite of structural algorithms over them.
//
// 🚀 What is a tuple?
//
//	An ordered, fixed-length collection whose elements may each have a
//	distinct type, captured at construction. Length and per-slot types
//	never change afterwards: every "mutating" operation returns a brand
//	new Tuple, and the input is never altered.
//
// ✨ Algorithm suite:
//
//   - ForEach              — in-order element visit
//   - Transform            — element-wise mapping into a new tuple
//   - AnyOf/AllOf/NoneOf   — predicate scans (front-to-back, OR/AND laws)
//   - CountIf              — number of elements satisfying a predicate
//   - PushBack/PushFront   — append/prepend, returning a new tuple
//   - PopBack/PopFront     — remove at either end, returning a new tuple
//   - Insert               — splice values in at an arbitrary index
//   - Split                — two tuples [0,i) and [i,len)
//   - Subtuple             — contiguous slice [begin,end)
//   - Reorder              — index-permutation (duplicates allowed)
//
// Visitors, predicates, and transforms are arbitrary functions; their
// shape is validated against every element type (via traits) before any
// element is touched, so a mismatched callable fails atomically with a
// sentinel error rather than part-way through.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hetkit/tuple"
//
//	t := tuple.Of(2, 4.8, true)
//	t2 := tuple.PushBack(t, "cat")          // (2, 4.8, true, "cat")
//	n, _ := tuple.CountIf(t, func(v any) bool {
//	  _, ok := v.(float64)
//	  return ok
//	})                                       // n == 1
//
// Errors:
//   - ErrIndexOutOfBounds — index outside the operation's valid range
//   - ErrEmptyTuple       — PopBack/PopFront on an empty tuple
//   - ErrBadVisitor       — visitor not invocable with some element
//   - ErrBadPredicate     — predicate not unary-returning-bool for some element
//   - ErrBadTransform     — transform not unary-returning-one-value for some element
package tuple
