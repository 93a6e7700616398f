package stringify

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/katalvlaran/hetkit/traits"
	"github.com/katalvlaran/hetkit/tuple"
)

// ErrUnsupportedType indicates a value matching no rendering capability.
var ErrUnsupportedType = errors.New("stringify: value matches no rendering capability")

// Options configures the delimiters used by RenderWith.
//
// Fields left empty fall back to their defaults, so a partially filled
// Options is always usable.
type Options struct {
	// TupleOpen/TupleClose bracket pairs and tuples. Defaults: "(" and ")".
	TupleOpen  string
	TupleClose string
	// ListOpen/ListClose bracket homogeneous iterables. Defaults: "[" and "]".
	ListOpen  string
	ListClose string
	// Separator joins adjacent elements. Default: ", ".
	Separator string
}

// DefaultOptions returns the canonical delimiters:
// "( a, b )" for pairs/tuples and "[ a, b ]" / "[ ]" for iterables.
func DefaultOptions() Options {
	return Options{
		TupleOpen:  "(",
		TupleClose: ")",
		ListOpen:   "[",
		ListClose:  "]",
		Separator:  ", ",
	}
}

// normalize fills empty fields with their defaults.
func (o Options) normalize() Options {
	def := DefaultOptions()
	if o.TupleOpen == "" {
		o.TupleOpen = def.TupleOpen
	}
	if o.TupleClose == "" {
		o.TupleClose = def.TupleClose
	}
	if o.ListOpen == "" {
		o.ListOpen = def.ListOpen
	}
	if o.ListClose == "" {
		o.ListClose = def.ListClose
	}
	if o.Separator == "" {
		o.Separator = def.Separator
	}

	return o
}

// Render renders v with the default delimiters. See the package
// documentation for the dispatch order.
func Render(v any) (string, error) {
	return RenderWith(v, DefaultOptions())
}

// RenderWith renders v using the given delimiters. The first matching
// capability wins: printable scalar, pair, tuple, then homogeneous
// iterable. A value matching none yields ErrUnsupportedType.
func RenderWith(v any, opts Options) (string, error) {
	return render(v, opts.normalize())
}

// render is the recursive worker; opts are already normalized.
func render(v any, opts Options) (string, error) {
	t := reflect.TypeOf(v)
	switch {
	case traits.Printable(t):
		return fmt.Sprintf("%v", v), nil
	case traits.Pair(t):
		return renderPair(reflect.ValueOf(v), opts)
	case traits.Tuple(t):
		return renderTuple(v.(traits.TupleLike), opts)
	case traits.Iterable(t):
		return renderIterable(reflect.ValueOf(v), opts)
	}

	return "", ErrUnsupportedType
}

// group joins rendered parts inside the given brackets, padding with
// single spaces; no parts yields "open close" (e.g. "[ ]").
func group(open, close string, parts []string, sep string) string {
	if len(parts) == 0 {
		return open + " " + close
	}

	return open + " " + strings.Join(parts, sep) + " " + close
}

func renderPair(rv reflect.Value, opts Options) (string, error) {
	first, err := render(rv.Field(0).Interface(), opts)
	if err != nil {
		return "", err
	}
	second, err := render(rv.Field(1).Interface(), opts)
	if err != nil {
		return "", err
	}

	return group(opts.TupleOpen, opts.TupleClose, []string{first, second}, opts.Separator), nil
}

func renderTuple(tl traits.TupleLike, opts Options) (string, error) {
	parts := make([]string, tl.Len())
	for i := range parts {
		elem, err := tl.At(i)
		if err != nil {
			return "", err
		}
		parts[i], err = render(elem, opts)
		if err != nil {
			return "", err
		}
	}

	return group(opts.TupleOpen, opts.TupleClose, parts, opts.Separator), nil
}

func renderIterable(rv reflect.Value, opts Options) (string, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			s, err := render(rv.Index(i).Interface(), opts)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}

		return group(opts.ListOpen, opts.ListClose, parts, opts.Separator), nil
	case reflect.Map:
		parts := make([]string, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			s, err := render(tuple.MakePair(it.Key().Interface(), it.Value().Interface()), opts)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		// Map iteration order is unspecified; order by rendered text.
		sort.Strings(parts)

		return group(opts.ListOpen, opts.ListClose, parts, opts.Separator), nil
	}
	lenM := rv.MethodByName("Len")
	idxM := rv.MethodByName("Index")
	if !lenM.IsValid() || !idxM.IsValid() {
		// Channels: iterable in capability terms, but rendering would
		// drain them.
		return "", ErrUnsupportedType
	}
	n := int(lenM.Call(nil)[0].Int())
	parts := make([]string, n)
	for i := range parts {
		s, err := render(idxM.Call([]reflect.Value{reflect.ValueOf(i)})[0].Interface(), opts)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}

	return group(opts.ListOpen, opts.ListClose, parts, opts.Separator), nil
}
