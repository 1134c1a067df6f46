package lib

import "fmt"

// WrapError wraps an inner error with an outer sentinel so callers can
// errors.Is against the sentinel while keeping the cause in the message.
func WrapError(outer error, inner error) error {
	return fmt.Errorf("%w: %s", outer, inner)
}
