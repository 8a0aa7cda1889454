package util

// SVSet is a set that maps string keys to an arbitrary value. It is used
// when a set's members need to carry their own associated data, or, as with
// grammar.ItemSet, when a set's members are keyed by their own canonical
// printable form rather than by a key the caller supplies separately.
type SVSet[V any] map[string]V

// NewSVSet builds an SVSet, optionally seeded from existing maps.
func NewSVSet[V any](of ...map[string]V) SVSet[V] {
	s := SVSet[V]{}
	for _, m := range of {
		for k, v := range m {
			s.Set(k, v)
		}
	}
	return s
}

// Set assigns the value of key, adding it to the set if it isn't already
// present.
func (s SVSet[V]) Set(key string, val V) {
	s[key] = val
}

// Get retrieves the value of key, or the zero value of V if key isn't in the
// set.
func (s SVSet[V]) Get(key string) V {
	return s[key]
}

// Has reports whether key is present in the set.
func (s SVSet[V]) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of entries in the set.
func (s SVSet[V]) Len() int {
	return len(s)
}

// Elements returns the set's keys. No particular order is guaranteed.
func (s SVSet[V]) Elements() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}
