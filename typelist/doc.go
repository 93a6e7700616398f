// Package typelist provides an ordered, immutable collection of types.
//
// 🚀 What is a type list?
//
//	The runtime analogue of a compile-time type pack: an ordered list of
//	reflect.Type values with purely structural operations —
//	  • membership: Contains
//	  • size: Len
//	  • indexed lookup: At
//	  • growth: PushBack, PushFront
//	  • shrinkage: PopBack, PopFront
//
// A List never mutates: every operation returns a fresh List, and the
// backing storage of the input is never aliased mutably. Copying a List
// is cheap and always safe.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hetkit/typelist"
//
//	l := typelist.Of(typelist.For[int](), typelist.For[string]())
//	l.Contains(typelist.For[int]())      // true
//	l2 := l.PushBack(typelist.For[bool]()) // (int, string, bool); l unchanged
//
// Errors:
//   - ErrIndexOutOfBounds — At with an index outside [0, Len)
//   - ErrEmptyList        — PopBack/PopFront on an empty list
package typelist
