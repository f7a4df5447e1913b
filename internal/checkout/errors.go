package checkout

import "fmt"

// ValidationError marks a submission rejected before assembly: no payload
// was produced and the cart was left untouched. Recoverable by the user.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return e.Reason
}

var ErrEmptyCart = &ValidationError{Reason: "cart is empty, cannot checkout"}
