package source

// Entry is one key/value pair of an OrderedMap, binding the key's source
// location alongside the value.
type Entry[V any] struct {
	Key   KeySource[string]
	Value V
}

// OrderedMap is an insertion-ordered string-keyed map. OpenAPI documents
// depend on map key order (Paths, Responses, Callbacks, SecurityRequirement,
// …) in ways a plain Go map cannot preserve, so every "map K -> V" field in
// the typed AST uses this instead.
type OrderedMap[V any] []Entry[V]

// Get returns the value for key and whether it was present. On duplicate
// keys (which the YAML layer resolves last-wins before the builder ever
// sees the entries) the last matching entry wins here too.
func (m OrderedMap[V]) Get(key string) (V, bool) {
	var zero V
	found := false
	for _, e := range m {
		if e.Key.Value == key {
			zero = e.Value
			found = true
		}
	}
	return zero, found
}

// Keys returns the map's keys in insertion order.
func (m OrderedMap[V]) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key.Value
	}
	return keys
}
