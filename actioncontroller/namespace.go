package actioncontroller

import (
	"strings"
)

// NS is a configuration of the namespace under construction, it is
// only valid within the initializer passed to NewNamespace or
// InitializeNamespace.
type NS struct {
	scopes      map[string]*Namespace
	controllers map[string]*ActionController
}

// Namespace registers a nested namespace under the given name.
func (ns *NS) Namespace(name string, init func(*NS)) {
	ns.scopes[name] = NewNamespace(init)
}

// Controller registers a controller under the given name.
func (ns *NS) Controller(name string, c *ActionController) {
	ns.controllers[name] = c
}

// Namespace is a registry of controllers resolvable by dotted
// references, e.g. "admin.users" names the "users" controller within
// the "admin" namespace. The registry is built once at startup and
// read-only afterwards.
type Namespace struct {
	scopes      map[string]*Namespace
	controllers map[string]*ActionController
}

func NewNamespace(init func(*NS)) *Namespace {
	ns, err := InitializeNamespace(init)
	if err != nil {
		panic(err)
	}
	return ns
}

func InitializeNamespace(init func(*NS)) (*Namespace, error) {
	ns := NS{
		scopes:      make(map[string]*Namespace),
		controllers: make(map[string]*ActionController),
	}
	init(&ns)

	return &Namespace{scopes: ns.scopes, controllers: ns.controllers}, nil
}

// Scope returns the nested namespace registered under the given name,
// or nil when there is none.
func (ns *Namespace) Scope(name string) *Namespace {
	return ns.scopes[name]
}

// Lookup walks the dot-separated reference through the registry and
// reports whether it names a registered entry. The returned value is
// either an *ActionController (the reference names a controller) or
// an Action (the reference names a controller action). A controller
// registered as nil is reported as found with a nil value.
func (ns *Namespace) Lookup(ref string) (interface{}, bool) {
	segments := strings.Split(ref, ".")

	scope := ns
	for i, segment := range segments {
		if sub, ok := scope.scopes[segment]; ok {
			scope = sub
			continue
		}

		controller, ok := scope.controllers[segment]
		if !ok {
			return nil, false
		}
		switch len(segments) - i {
		case 1:
			if controller == nil {
				return nil, true
			}
			return controller, true
		case 2:
			if controller == nil {
				return nil, true
			}
			action := controller.Action(segments[i+1])
			if action == nil {
				return nil, false
			}
			return action, true
		default:
			return nil, false
		}
	}

	// The reference names only namespaces.
	return nil, false
}

// Resolve resolves a controller reference against the namespace.
//
// A string reference is resolved through the registry, the resolution
// fails with ErrResolution the moment any segment of the dotted path
// is not registered, and with the "controller not exists" reason when
// the reference resolves to a nil controller. A nil reference, typed
// or untyped, fails the same way. Any other reference is returned
// unchanged, it is already a controller or a handler.
func Resolve(ref interface{}, ns *Namespace) (interface{}, error) {
	switch ref := ref.(type) {
	case string:
		if ns == nil {
			return nil, ErrResolution{Ref: ref, Reason: "no namespace"}
		}
		val, ok := ns.Lookup(ref)
		if !ok {
			return nil, ErrResolution{Ref: ref}
		}
		if val == nil {
			return nil, ErrResolution{Ref: ref, Reason: "controller not exists"}
		}
		return val, nil
	case nil:
		return nil, ErrResolution{Reason: "controller not exists"}
	case *ActionController:
		if ref == nil {
			return nil, ErrResolution{Reason: "controller not exists"}
		}
		return ref, nil
	default:
		return ref, nil
	}
}
