package seq

import "iter"

// Sequence is a stepped-value run over the half-open range
// [begin, end): a start value advanced by a step function until it
// compares equal to the end sentinel. Safe to copy and to use as a
// temporary; it owns no shared state.
type Sequence[T any] struct {
	begin T
	end   T
	step  func(*T)
}

// New builds an integer Sequence over [begin, end) with the successor
// step. New(0, 5) yields exactly 0, 1, 2, 3, 4.
func New[T Integer](begin, end T) Sequence[T] {
	return WithStep(begin, end, Increment[T])
}

// WithStep builds a Sequence over [begin, end) advancing with an
// arbitrary in-place step. The step must eventually make the current
// value equal to end, or iteration will not terminate.
func WithStep[T any](begin, end T, step func(*T)) Sequence[T] {
	return Sequence[T]{begin: begin, end: end, step: step}
}

// Begin returns the position marker at the start value.
func (s Sequence[T]) Begin() Iterator[T] {
	return NewIterator(s.begin, s.step)
}

// End returns the end sentinel marker.
func (s Sequence[T]) End() Iterator[T] {
	return NewIterator(s.end, s.step)
}

// Empty reports whether the sequence yields no values.
func (s Sequence[T]) Empty() bool {
	return s.Begin().Equal(s.End())
}

// All yields the run front-to-back for range-over-func loops:
//
//	for v := range seq.New(0, 5).All() { ... } // 0 1 2 3 4
func (s Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur, end := s.Begin(), s.End()
		for !cur.Equal(end) {
			if !yield(cur.Value()) {
				return
			}
			cur.Next()
		}
	}
}
