package traits

import "reflect"

// TypeIn reports whether t occurs in pack. An empty pack contains nothing.
func TypeIn(t reflect.Type, pack ...reflect.Type) bool {
	for _, p := range pack {
		if p == t {
			return true
		}
	}
	return false
}

// First returns the first type in pack, or nil for an empty pack.
func First(pack ...reflect.Type) reflect.Type {
	if len(pack) == 0 {
		return nil
	}
	return pack[0]
}

// Last returns the last type in pack, or nil for an empty pack.
func Last(pack ...reflect.Type) reflect.Type {
	if len(pack) == 0 {
		return nil
	}
	return pack[len(pack)-1]
}

// Uniform reports whether every type in pack is the same type.
// An empty pack is considered uniform.
func Uniform(pack ...reflect.Type) bool {
	for _, p := range pack {
		if p != pack[0] {
			return false
		}
	}
	return true
}

// Only reports whether pack is non-empty and consists solely of t.
func Only(t reflect.Type, pack ...reflect.Type) bool {
	if len(pack) == 0 {
		return false
	}
	return Uniform(pack...) && pack[0] == t
}
