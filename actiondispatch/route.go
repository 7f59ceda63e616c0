package actiondispatch

import (
	"regexp"

	"github.com/activegraph/actionpack/activesupport"
)

// RouteSpec is an explicit route declaration. Name is optional, a
// blank name leaves the route anonymous (or lets resource expansion
// derive one). Handlers hold the middleware part of the chain in
// declaration order, Controller holds the trailing controller
// reference: a dotted string, a controller, an action, or a handler
// in any normalizable convention.
type RouteSpec struct {
	Name       string
	Prefix     string
	Handlers   []interface{}
	Controller interface{}
}

// RouteOptions carry per-registration options for the routing engine.
type RouteOptions struct {
	Name string
}

// RouteRegistration is one expanded route: a path pattern, the HTTP
// methods it answers, an optional route name, and the normalized
// handler chain with the controller action last.
type RouteRegistration struct {
	Path     string
	Methods  []string
	Name     string
	Handlers []Handler
}

func prefixString(v interface{}) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case *regexp.Regexp:
		return v.String(), true
	default:
		return "", false
	}
}

// SplitRouteParams disambiguates a positional route declaration into
// a RouteSpec. With at least three arguments whose second is a string
// or a pattern, the declaration reads (name, prefix, handlers...,
// controller); otherwise (prefix, handlers..., controller). The
// trailing argument is always the controller reference. A sole
// argument is a controller reference with no prefix at all.
func SplitRouteParams(args []interface{}) (RouteSpec, error) {
	var spec RouteSpec

	switch len(args) {
	case 0:
		return spec, activesupport.ErrArgument{
			Message: "route declaration without arguments",
		}
	case 1:
		spec.Controller = args[0]
		return spec, nil
	}

	if len(args) >= 3 {
		if prefix, ok := prefixString(args[1]); ok {
			name, ok := args[0].(string)
			if !ok {
				return spec, activesupport.ErrArgument{
					Message: "route name must be a string",
				}
			}
			spec.Name = name
			spec.Prefix = prefix
			spec.Handlers = args[2 : len(args)-1]
			spec.Controller = args[len(args)-1]
			return spec, nil
		}
	}

	prefix, ok := prefixString(args[0])
	if !ok {
		return spec, activesupport.ErrArgument{
			Message: "route prefix must be a string or a pattern",
		}
	}
	spec.Prefix = prefix
	spec.Handlers = args[1 : len(args)-1]
	spec.Controller = args[len(args)-1]
	return spec, nil
}
