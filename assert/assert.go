// Package assert provides debug-time assertions that panic on failure.
//
// Assertions are on by default. Building with the assertions_disabled tag
// turns every function in this package into a no-op and sets Enabled to false,
// so guarded code paths compile away:
//
//	go build -tags assertions_disabled ./...
//
// Callers with expensive checks should guard them with Enabled rather than
// rely on the no-op, because arguments are still evaluated:
//
//	if assert.Enabled {
//	    assert.True(isSorted(values), "values must be sorted")
//	}
package assert

import "fmt"

// failure builds the panic value for a failed assertion.
//   - No args: "assertion failed".
//   - First arg is an error: the error itself, so errors.Is works after recover.
//   - First arg is a string: used as a format string with the remaining args.
//   - Otherwise all args are included in the message.
func failure(args []any) any {
	if len(args) == 0 {
		return "assertion failed"
	}

	first := args[0]
	remaining := args[1:]

	switch v := first.(type) {
	case error:
		return v
	case string:
		return fmt.Sprintf(v, remaining...)
	default:
		return fmt.Sprintf("assertion failed: %v", args)
	}
}
