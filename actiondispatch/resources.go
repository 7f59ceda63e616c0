package actiondispatch

import (
	"net/http"
	"strings"

	"github.com/activegraph/actionpack/actioncontroller"
	"github.com/activegraph/actionpack/activesupport"
	"github.com/activegraph/actionpack/internal"
)

// ActionSpec describes the route shape of one canonical resource
// action: whether it addresses a member or the collection, the prefix
// of the route name, the path suffix appended to the resource prefix,
// and the HTTP methods the route answers.
type ActionSpec struct {
	Name       string
	Member     bool
	NamePrefix string
	PathSuffix string
	Methods    []string
}

// The fixed action table, in expansion order. The table is the single
// source of truth for the shape of resource routes and never changes
// at runtime.
var canonicalActionSpecs = []ActionSpec{
	{Name: actioncontroller.ActionIndex, Methods: []string{http.MethodGet}},
	{Name: actioncontroller.ActionNew, Member: true, NamePrefix: "new_",
		PathSuffix: "new", Methods: []string{http.MethodGet}},
	{Name: actioncontroller.ActionCreate, Methods: []string{http.MethodPost}},
	{Name: actioncontroller.ActionShow, Member: true,
		PathSuffix: ":id", Methods: []string{http.MethodGet}},
	{Name: actioncontroller.ActionEdit, Member: true, NamePrefix: "edit_",
		PathSuffix: ":id/edit", Methods: []string{http.MethodGet}},
	{Name: actioncontroller.ActionUpdate, Member: true,
		PathSuffix: ":id", Methods: []string{http.MethodPatch, http.MethodPut}},
	{Name: actioncontroller.ActionDestroy, Member: true, NamePrefix: "destroy_",
		PathSuffix: ":id", Methods: []string{http.MethodDelete}},
}

// CanonicalActionSpecs returns a copy of the fixed action table in
// expansion order.
func CanonicalActionSpecs() []ActionSpec {
	specs := make([]ActionSpec, len(canonicalActionSpecs))
	for i, spec := range canonicalActionSpecs {
		spec.Methods = internal.CopyStrings(spec.Methods)
		specs[i] = spec
	}
	return specs
}

// resourceBaseName derives the route base name from a resource name
// or a URL prefix: the last path segment with surrounding slashes
// trimmed, so "/admin/users" names "users" resources.
func resourceBaseName(name string) string {
	name = strings.Trim(name, "/")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// formatActionName derives the route name of an action: the base
// name singularized for member routes and pluralized for collection
// routes, with the action's name prefix prepended.
func formatActionName(base string, spec ActionSpec) string {
	var name string
	if spec.Member {
		name = activesupport.Singularize(base)
	} else {
		name = activesupport.Pluralize(base)
	}
	return spec.NamePrefix + name
}

// expandPath joins the URL prefix with the action's path suffix. The
// trailing slash of the prefix is insignificant.
func expandPath(prefix string, spec ActionSpec) string {
	prefix = strings.TrimRight(prefix, "/")
	if spec.PathSuffix == "" {
		return prefix
	}
	return prefix + "/" + spec.PathSuffix
}

// expandResources expands the fixed action table against a controller
// into route registrations, one per action the controller implements.
// Absent actions are skipped silently unless strict mode turns them
// into ErrActionNotFound. Prefixes hold either the explicit route
// base name and the URL prefix, or a single value serving as both.
func expandResources(
	prefixes []string, controller *actioncontroller.ActionController,
	handlers []Handler, strict bool,
) ([]RouteRegistration, error) {

	var base, prefix string
	switch len(prefixes) {
	case 2:
		base, prefix = prefixes[0], prefixes[1]
	case 1:
		base, prefix = prefixes[0], prefixes[0]
	default:
		return nil, activesupport.ErrArgument{
			Message: "resources require one or two prefixes",
		}
	}
	base = resourceBaseName(base)

	registrations := make([]RouteRegistration, 0, len(canonicalActionSpecs))

	for _, spec := range canonicalActionSpecs {
		if !controller.HasAction(spec.Name) {
			if strict {
				return nil, actioncontroller.ErrActionNotFound{ActionName: spec.Name}
			}
			continue
		}

		action, err := BindAction(controller, spec.Name)
		if err != nil {
			return nil, err
		}

		chain := make([]Handler, 0, len(handlers)+1)
		chain = append(chain, handlers...)
		chain = append(chain, action)

		registrations = append(registrations, RouteRegistration{
			Path:     expandPath(prefix, spec),
			Methods:  internal.CopyStrings(spec.Methods),
			Name:     formatActionName(base, spec),
			Handlers: chain,
		})
	}

	return registrations, nil
}
