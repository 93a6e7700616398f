package tuple

// Pair is the statically typed 2-ary product: both component types are
// fixed by the type parameters. traits.IsPair recognizes it structurally
// via the First/Second field pair.
//
// Pair deliberately has no String method: the capability branches used
// by stringify.Render (printable, pair, tuple, iterable) must stay
// mutually exclusive, and a Stringer would shadow the pair branch.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair from its two components.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Swap returns a new Pair with the components exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// Tuple converts the pair into a 2-element heterogeneous Tuple.
func (p Pair[A, B]) Tuple() Tuple {
	return Of(p.First, p.Second)
}
