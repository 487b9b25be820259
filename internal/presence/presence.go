package presence

// String reports whether an optional scalar is present.
func String(s string) bool {
	return s != ""
}

// Slice reports whether an optional sequence is present. A single element is
// absent only when it is the empty string.
func Slice[T any](v []T) bool {
	switch len(v) {
	case 0:
		return false
	case 1:
		if s, ok := any(v[0]).(string); ok {
			return s != ""
		}
		return true
	default:
		return true
	}
}
