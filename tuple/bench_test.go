package tuple_test

import (
	"testing"

	"github.com/katalvlaran/hetkit/tuple"
)

// benchTuple builds an n-element tuple of alternating ints and strings.
func benchTuple(n int) tuple.Tuple {
	values := make([]any, n)
	for i := range values {
		if i%2 == 0 {
			values[i] = i
		} else {
			values[i] = "s"
		}
	}

	return tuple.Of(values...)
}

// BenchmarkForEach measures the reflective visit over a 32-element tuple.
func BenchmarkForEach(b *testing.B) {
	tp := benchTuple(32)
	visitor := func(any) {}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tuple.ForEach(tp, visitor); err != nil {
			b.Fatalf("ForEach failed: %v", err)
		}
	}
}

// BenchmarkCountIf measures a predicate scan over a 32-element tuple.
func BenchmarkCountIf(b *testing.B) {
	tp := benchTuple(32)
	pred := func(v any) bool {
		_, ok := v.(int)

		return ok
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tuple.CountIf(tp, pred); err != nil {
			b.Fatalf("CountIf failed: %v", err)
		}
	}
}

// BenchmarkInsert measures mid-tuple splicing into a 32-element tuple.
func BenchmarkInsert(b *testing.B) {
	tp := benchTuple(32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tuple.Insert(tp, 16, true); err != nil {
			b.Fatalf("Insert failed: %v", err)
		}
	}
}

// BenchmarkReorder measures a full reversal of a 32-element tuple.
func BenchmarkReorder(b *testing.B) {
	tp := benchTuple(32)
	indices := make([]int, tp.Len())
	for i := range indices {
		indices[i] = tp.Len() - 1 - i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tuple.Reorder(tp, indices...); err != nil {
			b.Fatalf("Reorder failed: %v", err)
		}
	}
}
