// Package stringify recursively renders values to human-readable text,
// choosing the rendering by structural capability.
//
// 🚀 How does Render decide?
//
//	A closed set of mutually exclusive capability branches, probed in a
//	fixed order — the first match wins:
//	  1. printable scalar  → its native textual form ("3", "true", "cat")
//	  2. pair              → "( first, second )", recursing per component
//	  3. tuple             → "( e0, e1, ..., en )", recursing per element
//	  4. iterable          → "[ e0, e1, ..., en ]", or exactly "[ ]" when empty
//
// A value matching none of the branches yields ErrUnsupportedType:
// there is no silent fallback.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hetkit/stringify"
//
//	stringify.Render([]int{3, 5, 6, 9})       // "[ 3, 5, 6, 9 ]", nil
//	stringify.Render(tuple.MakePair(1, true)) // "( 1, true )", nil
//	stringify.Render([]int{})                 // "[ ]", nil
//
// Delimiters and the separator are configurable through Options
// (DefaultOptions + RenderWith), following the same options-with-defaults
// pattern as the rest of the module.
//
// Notes:
//   - map entries render as pairs and are ordered by their rendered
//     text, so map output is deterministic.
//   - channels count as iterable for traits purposes but cannot be
//     rendered without draining them, so they yield ErrUnsupportedType.
package stringify
