package actioncontroller

import (
	"fmt"
)

type ErrActionNotFound struct {
	ActionName string
}

func (e ErrActionNotFound) Error() string {
	return fmt.Sprintf("action '%s' not found", e.ActionName)
}

// ErrResolution is returned when a controller reference cannot be
// resolved against the registered namespace. Ref holds the original
// dotted reference as it was passed by the caller.
type ErrResolution struct {
	Ref    string
	Reason string
}

func (e ErrResolution) Error() string {
	switch {
	case e.Ref == "" && e.Reason != "":
		return fmt.Sprintf("controller cannot be resolved: %s", e.Reason)
	case e.Reason != "":
		return fmt.Sprintf("controller '%s' cannot be resolved: %s", e.Ref, e.Reason)
	default:
		return fmt.Sprintf("controller '%s' cannot be resolved", e.Ref)
	}
}
