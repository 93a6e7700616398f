// Package seq provides lazy, on-demand value sequences with a minimal
// forward-iteration interface and range-over-func support.
//
// 🚀 What is seq?
//
//	Two families of iterator-like value producers:
//	  • Sequence       — a stepped-value run: a start value advanced by a
//	    configurable step function until it equals an end sentinel.
//	    The default step for integers is the successor (+1), so
//	    New(0, 5) yields exactly 0, 1, 2, 3, 4 (half-open range).
//	  • GenerativeSequence — a generator-driven run: a zero-argument
//	    producer invoked up to a fixed iteration count. The end marker
//	    is built from the count alone and never invokes the producer.
//
// Both expose Begin()/End() position markers and an All() bridge
// yielding an iter.Seq for Go's range-over-func loops:
//
//	for v := range seq.New(0, 5).All() {
//	  fmt.Println(v) // 0 1 2 3 4
//	}
//
// Position-marker equality is defined by the relevant counters/values
// only, never by identity: a stepped iterator equals another when their
// current values are equal; a generative iterator equals an end marker
// when its iteration counter reaches the marker's sentinel. All types
// here have pure value semantics and are safe to copy freely.
//
// Sequences are read-only, one-pass, forward-only views. Reuse after
// exhaustion requires constructing a fresh instance.
package seq
