package seq

import "iter"

// GenerativeIterator is a position marker over a generator-driven run:
// it holds the producer, the eagerly materialized current value, and an
// iteration counter. End markers hold only a sentinel count and never
// invoke a producer.
type GenerativeIterator[T any] struct {
	gen      func() T
	val      T
	count    int
	sentinel int
}

// Generate builds a live iterator from a producer. The producer is
// invoked once immediately to materialize the first value.
func Generate[T any](gen func() T) GenerativeIterator[T] {
	return GenerativeIterator[T]{gen: gen, val: gen()}
}

// GenerativeEnd builds an end marker for a run of max iterations. No
// producer is involved; comparing a live iterator against the marker is
// a counter comparison in O(1).
func GenerativeEnd[T any](max int) GenerativeIterator[T] {
	return GenerativeIterator[T]{sentinel: max}
}

// Value returns the current materialized value.
func (g GenerativeIterator[T]) Value() T { return g.val }

// Next invokes the producer to obtain the next value and advances the
// iteration counter.
func (g *GenerativeIterator[T]) Next() {
	g.val = g.gen()
	g.count++
}

// Equal reports whether the receiver's iteration counter has reached
// the other marker's sentinel. Produced values never participate.
func (g GenerativeIterator[T]) Equal(end GenerativeIterator[T]) bool {
	return g.count == end.sentinel
}

// GenerativeSequence is a generator-driven run of exactly max values
// obtained from a zero-argument producer.
type GenerativeSequence[T any] struct {
	gen func() T
	max int
}

// NewGenerative builds a sequence that draws max values from gen.
//
//	seq.NewGenerative(3, counter) // yields the first 3 counter values
func NewGenerative[T any](max int, gen func() T) GenerativeSequence[T] {
	return GenerativeSequence[T]{gen: gen, max: max}
}

// Begin returns a live iterator; the producer is invoked once to
// materialize the first value.
func (s GenerativeSequence[T]) Begin() GenerativeIterator[T] {
	return Generate(s.gen)
}

// End returns the end marker for the configured maximum count.
func (s GenerativeSequence[T]) End() GenerativeIterator[T] {
	return GenerativeEnd[T](s.max)
}

// All yields exactly max produced values for range-over-func loops.
// The producer is invoked exactly once per yielded value, so a run of
// max values costs max producer calls regardless of what a further call
// would produce.
func (s GenerativeSequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.max; i++ {
			if !yield(s.gen()) {
				return
			}
		}
	}
}
