//go:build !assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True asserts that the given value is true.
// If the assertion fails, it panics. See failure for how args shape the panic value.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(failure(args))
}
