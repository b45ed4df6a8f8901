// Package obj provides helpers for Go maps used as loosely typed objects:
// conversion of maps and structs to map[string]any, key selection and
// removal, ordered enumeration, and dot-notation access to nested
// map[string]any structures, mirroring Laravel's Arr::get, Arr::set,
// Arr::dot and friends.
//
// # Selection
//
// [Pick] and [Omit] (and their *Func variants, which transform each kept
// entry) always build a new map. [Pull] is the only helper that mutates its
// argument: it deletes the named keys and returns what it removed.
//
//	m := map[string]int{"a": 1, "b": 2, "c": 3}
//	obj.Pick(m, "a", "c") // → map[a:1 c:3]
//	obj.Pull(m, "b")      // → map[b:2], m is now map[a:1 c:3]
//
// # Dot notation
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	obj.Get(m, "user.address.city")          // → "London"
//	obj.Set(m, "user.address.postcode", "EC1")
//	obj.Has(m, "user.name")                  // → true
//	obj.Forget(m, "user.address")
//	flat := obj.Dot(m)                       // → {"user.name": "Alice"}
package obj
