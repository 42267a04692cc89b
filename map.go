package rtfmt

// MapOf is a [Map] backed by a Go map. A nil MapOf is empty.
type MapOf[V any] map[string]V

// Get implements [Map].
func (m MapOf[V]) Get(key string) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// NoMap is a [Map] with no entries, for format strings without named
// arguments.
type NoMap[V any] struct{}

// Get implements [Map].
func (NoMap[V]) Get(string) (V, bool) {
	var zero V
	return zero, false
}
