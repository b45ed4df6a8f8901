package obj

import "github.com/hasbyte1/go-primitive-kit/str"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any
//
// A path such as "user.address.city" walks nested map[string]any values one
// segment at a time. A key that itself contains dots is found when it is
// stored verbatim at the level being searched.
// ─────────────────────────────────────────────────────────────────────────────

// split returns the first segment of path, the rest, and whether there was
// a rest at all.
func split(path string) (string, string, bool) {
	parts := str.SplitFirst(path, ".")
	return parts[0], parts[1], len(parts[0]) != len(path)
}

// lookup resolves path in m.
func lookup(m map[string]any, path string) (any, bool) {
	if v, ok := m[path]; ok {
		return v, true
	}
	seg, rest, nested := split(path)
	if !nested {
		return nil, false
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		return nil, false
	}
	return lookup(child, rest)
}

// Get retrieves a value from m using a dot-notation path.
// Returns def[0] (or nil) when the path does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, path string, def ...any) any {
	if v, ok := lookup(m, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Set writes value into m at the dot-notation path, creating or replacing
// intermediate maps as needed.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, path string, value any) {
	seg, rest, nested := split(path)
	if !nested {
		m[path] = value
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[seg] = child
	}
	Set(child, rest, value)
}

// Has reports whether the dot-notation path exists in m.
func Has(m map[string]any, path string) bool {
	_, ok := lookup(m, path)
	return ok
}

// HasAll reports whether all dot-notation paths exist in m. It is false when
// no path is given.
func HasAll(m map[string]any, paths ...string) bool {
	if len(paths) == 0 {
		return false
	}
	for _, p := range paths {
		if !Has(m, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the dot-notation paths exist in m.
func HasAny(m map[string]any, paths ...string) bool {
	for _, p := range paths {
		if Has(m, p) {
			return true
		}
	}
	return false
}

// Forget removes the dot-notation path from m.
// Intermediate maps are not cleaned up.
func Forget(m map[string]any, path string) {
	if _, ok := m[path]; ok {
		delete(m, path)
		return
	}
	seg, rest, nested := split(path)
	if !nested {
		return
	}
	if child, ok := m[seg].(map[string]any); ok {
		Forget(child, rest)
	}
}

// Dot flattens a nested map[string]any into a single-level map using dot
// notation for the keys. Empty nested maps are kept as values.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	flatten("", m, out)
	return out
}

func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok && len(child) > 0 {
			flatten(key, child, out)
			continue
		}
		out[key] = v
	}
}

// Undot expands a flat dot-notation map into a nested map[string]any.
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Undot(m map[string]any) map[string]any {
	out := make(map[string]any)
	for _, k := range Keys(m) {
		Set(out, k, m[k])
	}
	return out
}

// Merge merges src into dst, returning dst.
// Values in src overwrite values in dst for matching keys.
// Nested maps are merged recursively.
func Merge(dst, src map[string]any) map[string]any {
	for k, sv := range src {
		dm, dok := dst[k].(map[string]any)
		sm, sok := sv.(map[string]any)
		if dok && sok {
			Merge(dm, sm)
			continue
		}
		dst[k] = sv
	}
	return dst
}
