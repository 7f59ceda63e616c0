package actiondispatch

import (
	"fmt"
)

type ErrRouteNotFound struct {
	RouteName string
}

func (e ErrRouteNotFound) Error() string {
	return fmt.Sprintf("route '%s' not found", e.RouteName)
}

type ErrMissingRouteParam struct {
	RouteName string
	Param     string
}

func (e ErrMissingRouteParam) Error() string {
	return fmt.Sprintf(
		"parameter '%s' of route '%s' is missing", e.Param, e.RouteName,
	)
}
