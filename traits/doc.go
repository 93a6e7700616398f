// Package traits answers structural capability questions about Go types:
// can a value of this type be iterated? printed? compared? taken apart
// as a pair or a tuple?
//
// 🚀 What is traits?
//
//	A set of total, side-effect-free predicates over reflect.Type:
//	  • Iterable / Iterator / Bidirectional / RandomAccess
//	  • IsPair / IsTuple
//	  • Printable
//	  • EqualityComparable / LessComparable / LessEqComparable /
//	    GreaterComparable / GreaterEqComparable
//	  • Pack utilities: TypeIn, First, Last, Uniform, Only
//	  • Callable-shape validators: VisitorFor, PredicateFor, TransformFor
//
// Every predicate is a pure query: an unsupported or nil type simply
// yields false — no predicate ever returns an error or panics.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hetkit/traits"
//
//	traits.IsIterable([]int{1, 2, 3}) // true
//	traits.IsPrintable(struct{}{})    // false
//
// The predicates exist to drive structural dispatch: a consuming
// algorithm (for example stringify.Render) probes a closed set of
// capabilities in a fixed order and compiles exactly one branch of
// behavior per value. traits itself never dispatches — it only answers.
package traits
