//go:build assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// True is a no-op when assertions are disabled.
func True(value bool, args ...any) {
	// Intentionally left blank
}
