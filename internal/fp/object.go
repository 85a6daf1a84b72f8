package fp

import "sort"

// Object is the dynamic record the object helpers work on
type Object = map[string]any

// Prop returns a function reading key. A nil object yields nil.
func Prop(key string) func(Object) any {
	return func(o Object) any {
		return o[key]
	}
}

// PropOr reads key, falling back to def when the key is absent or nil.
func PropOr(def any, key string) func(Object) any {
	return func(o Object) any {
		if v, ok := o[key]; ok && v != nil {
			return v
		}
		return def
	}
}

// Path reads a nested value. It returns nil as soon as a step is missing or
// is not an Object.
func Path(keys ...string) func(Object) any {
	return func(o Object) any {
		var cur any = o
		for _, k := range keys {
			m, ok := cur.(Object)
			if !ok {
				return nil
			}
			cur = m[k]
		}
		return cur
	}
}

// PathOr is Path with a default for missing or nil values.
func PathOr(def any, keys ...string) func(Object) any {
	path := Path(keys...)
	return func(o Object) any {
		if v := path(o); v != nil {
			return v
		}
		return def
	}
}

// Has reports whether the object has key.
func Has(key string) func(Object) bool {
	return func(o Object) bool {
		_, ok := o[key]
		return ok
	}
}

// Pick returns a new object with only the listed keys that are present.
func Pick(keys ...string) func(Object) Object {
	return func(o Object) Object {
		out := make(Object, len(keys))
		for _, k := range keys {
			if v, ok := o[k]; ok {
				out[k] = v
			}
		}
		return out
	}
}

// Omit returns a new object without the listed keys.
func Omit(keys ...string) func(Object) Object {
	return func(o Object) Object {
		out := shallow(o)
		for _, k := range keys {
			delete(out, k)
		}
		return out
	}
}

// Keys returns the object's keys in sorted order.
func Keys(o Object) []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the object's values ordered by key.
func Values(o Object) []any {
	return Map(Keys(o), func(k string) any { return o[k] })
}

// Assoc returns a copy of the object with key set to v.
func Assoc(key string, v any) func(Object) Object {
	return func(o Object) Object {
		out := shallow(o)
		out[key] = v
		return out
	}
}

// AssocPath returns a copy of the object with the nested key set to v.
// Missing or non-object intermediate values are replaced by new objects.
// Only the objects along the path are copied.
func AssocPath(path []string, v any) func(Object) Object {
	return func(o Object) Object {
		if len(path) == 0 {
			return shallow(o)
		}
		out := shallow(o)
		if len(path) == 1 {
			out[path[0]] = v
			return out
		}
		child, _ := out[path[0]].(Object)
		out[path[0]] = AssocPath(path[1:], v)(child)
		return out
	}
}

// Dissoc returns a copy of the object without key.
func Dissoc(key string) func(Object) Object {
	return Omit(key)
}

// Evolve returns a copy of the object with each listed key transformed.
// Keys absent from the object are left absent.
func Evolve(transforms map[string]func(any) any) func(Object) Object {
	return func(o Object) Object {
		out := shallow(o)
		for k, f := range transforms {
			if v, ok := out[k]; ok {
				out[k] = f(v)
			}
		}
		return out
	}
}

func shallow(o Object) Object {
	out := make(Object, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}
