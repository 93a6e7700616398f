package seq_test

import (
	"testing"

	"github.com/katalvlaran/hetkit/seq"
)

// BenchmarkSequence_All measures a range-over-func walk of 1000 values.
func BenchmarkSequence_All(b *testing.B) {
	s := seq.New(0, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range s.All() {
			sum += v
		}
		_ = sum
	}
}

// BenchmarkSequence_ManualIterators measures the explicit Begin/End loop.
func BenchmarkSequence_ManualIterators(b *testing.B) {
	s := seq.New(0, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for cur, end := s.Begin(), s.End(); !cur.Equal(end); cur.Next() {
			sum += cur.Value()
		}
		_ = sum
	}
}

// BenchmarkGenerative_All measures drawing 1000 values from a producer.
func BenchmarkGenerative_All(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		gen := func() int {
			n++

			return n
		}
		sum := 0
		for v := range seq.NewGenerative(1000, gen).All() {
			sum += v
		}
		_ = sum
	}
}
