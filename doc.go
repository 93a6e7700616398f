// Package hetkit is a toolkit for fixed-arity heterogeneous containers,
// type capability introspection, and lazy on-demand sequences.
//
// 🚀 What is hetkit?
//
//	A pure-Go library that brings together:
//	  • Capability predicates: is a type iterable? printable? a pair? comparable?
//	  • Type lists: ordered collections of reflect.Type with structural operations
//	  • Tuples: immutable heterogeneous value sequences with a full algorithm suite
//	    (visit, transform, predicate scans, push/pop, insert, split, subrange, reorder)
//	  • Lazy sequences: stepped-value and generator-driven iterators with
//	    range-over-func support
//	  • A universal stringifier that renders any capability-matched value
//
// ✨ Why choose hetkit?
//
//   - Pure value semantics – every operation returns a new container,
//     inputs are never mutated
//   - Explicit failure modes – sentinel errors, no panics in the public API
//   - Pure Go – no cgo, no hidden deps
//   - Composable – every layer builds on the capability predicates in traits/
//
// Everything is organized under five subpackages:
//
//	traits/    — capability predicates over reflect.Type (the foundation)
//	typelist/  — ordered, immutable lists of types
//	tuple/     — heterogeneous value tuples and their algorithm suite
//	seq/       — stepped and generator-driven lazy sequences
//	stringify/ — recursive rendering of values to human-readable text
//
// Quick example:
//
//	t := tuple.Of(3, "cat", true)
//	t2 := tuple.PushBack(t, 4.8)        // (3, "cat", true, 4.8) — t unchanged
//	s, _ := stringify.Render([]int{3, 5, 6, 9})
//	fmt.Println(s)                      // [ 3, 5, 6, 9 ]
//
// Dive into each subpackage's doc.go for full contracts and examples.
package hetkit
