package utils

// Filter returns the values of s for which f reports true.
func Filter[T any](s []T, f func(T) bool) []T {
	var r []T
	for _, v := range s {
		if f(v) {
			r = append(r, v)
		}
	}
	return r
}

// Find returns a pointer to the first value of s for which f reports
// true, or nil.
func Find[T any](s []T, f func(T) bool) *T {
	for i := range s {
		if f(s[i]) {
			return &s[i]
		}
	}
	return nil
}
