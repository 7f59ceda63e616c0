package activesupport

import (
	"fmt"
)

// ErrArgument is returned when the arguments are wrong.
type ErrArgument struct {
	Message string
}

// Error implements error interface and returns human-readable error message.
func (e ErrArgument) Error() string {
	return fmt.Sprintf("ErrArgument: %s", e.Message)
}
