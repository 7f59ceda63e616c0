package actiondispatch

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/activegraph/actionpack/actioncontroller"
	"github.com/activegraph/actionpack/activesupport"
)

// Engine is the external routing engine the router delegates the
// actual match-and-dispatch registration to. The engine receives the
// normalized handler chain and owns the registered routes.
type Engine interface {
	Register(path string, methods []string, handlers []Handler, opts RouteOptions) error
}

// RouteInfo describes one registered route.
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

type routeSet struct {
	named map[string]RouteInfo
	infos []RouteInfo
}

func (rs *routeSet) add(path string, methods []string, name string) {
	for _, method := range methods {
		rs.infos = append(rs.infos, RouteInfo{Method: method, Path: path, Name: name})
	}
	if name == "" || len(methods) == 0 {
		return
	}
	if _, ok := rs.named[name]; !ok {
		rs.named[name] = RouteInfo{Method: methods[0], Path: path, Name: name}
	}
}

// Router converts route declarations into engine registrations. All
// declarations happen at startup, before the engine starts serving,
// the router is not safe for concurrent use.
type Router struct {
	engine Engine
	ns     *actioncontroller.Namespace
	strict bool

	middlewares []Handler
	prefix      string
	namePrefix  string
	scope       string

	routes *routeSet
}

func NewRouter(engine Engine, ns *actioncontroller.Namespace) *Router {
	return &Router{
		engine: engine,
		ns:     ns,
		routes: &routeSet{named: make(map[string]RouteInfo)},
	}
}

// StrictActions makes resource expansion fail on canonical actions
// the controller does not implement, instead of skipping them.
func (r *Router) StrictActions(strict bool) *Router {
	r.strict = strict
	return r
}

// Use appends middleware to the chain of every route declared after
// this call.
func (r *Router) Use(handlers ...interface{}) *Router {
	r.middlewares = append(r.middlewares, NormalizeHandlers(handlers)...)
	return r
}

// Namespace declares routes under a path prefix. Route names gain the
// "name_" prefix and string controller references resolve within the
// equally named registry namespace.
func (r *Router) Namespace(name string, init func(*Router)) *Router {
	sub := &Router{
		engine:      r.engine,
		ns:          r.ns,
		strict:      r.strict,
		middlewares: append([]Handler(nil), r.middlewares...),
		prefix:      joinPaths(r.prefix, name),
		namePrefix:  r.namePrefix + name + "_",
		scope:       joinScope(r.scope, name),
		routes:      r.routes,
	}
	init(sub)
	return r
}

var allMethods = []string{
	http.MethodHead, http.MethodOptions, http.MethodGet, http.MethodPut,
	http.MethodPatch, http.MethodPost, http.MethodDelete,
}

func (r *Router) Head(args ...interface{}) *Router {
	return r.handle([]string{http.MethodHead}, args)
}

func (r *Router) Options(args ...interface{}) *Router {
	return r.handle([]string{http.MethodOptions}, args)
}

func (r *Router) Get(args ...interface{}) *Router {
	return r.handle([]string{http.MethodGet}, args)
}

func (r *Router) Put(args ...interface{}) *Router {
	return r.handle([]string{http.MethodPut}, args)
}

func (r *Router) Patch(args ...interface{}) *Router {
	return r.handle([]string{http.MethodPatch}, args)
}

func (r *Router) Post(args ...interface{}) *Router {
	return r.handle([]string{http.MethodPost}, args)
}

func (r *Router) Delete(args ...interface{}) *Router {
	return r.handle([]string{http.MethodDelete}, args)
}

// All declares the route for every supported HTTP method.
func (r *Router) All(args ...interface{}) *Router {
	return r.handle(allMethods, args)
}

func (r *Router) handle(methods []string, args []interface{}) *Router {
	spec, err := SplitRouteParams(args)
	if err != nil {
		panic(err)
	}
	if err := r.Match(spec, methods...); err != nil {
		panic(err)
	}
	return r
}

// Match registers a single route from an explicit RouteSpec. The
// controller reference is resolved against the registry, the chain is
// normalized, and the registration is delegated to the engine. Unlike
// the verb methods, Match reports failures instead of panicking.
func (r *Router) Match(spec RouteSpec, methods ...string) error {
	resolved, err := actioncontroller.Resolve(r.scopedRef(spec.Controller), r.ns)
	if err != nil {
		return err
	}

	handlers := make([]Handler, 0, len(r.middlewares)+len(spec.Handlers)+1)
	handlers = append(handlers, r.middlewares...)
	handlers = append(handlers, NormalizeHandlers(spec.Handlers)...)
	handlers = append(handlers, NormalizeHandler(resolved))

	var name string
	if spec.Name != "" {
		name = r.namePrefix + spec.Name
	}

	return r.register(
		[]string{joinPaths(r.prefix, spec.Prefix)},
		methods, handlers, RouteOptions{Name: name},
	)
}

// Resources expands the fixed action table against a controller and
// registers one route per action the controller implements.
//
//	r.Resources("user", "/users", UsersController)
//	r.Resources("/users", UsersController)
//
// The first form names routes after "user", the second derives the
// name from the prefix. Middleware handlers may be passed between the
// prefix and the controller reference.
func (r *Router) Resources(args ...interface{}) *Router {
	if err := r.MatchResources(args...); err != nil {
		panic(err)
	}
	return r
}

// MatchResources is the error-returning form of Resources.
func (r *Router) MatchResources(args ...interface{}) error {
	spec, err := SplitRouteParams(args)
	if err != nil {
		return err
	}

	resolved, err := actioncontroller.Resolve(r.scopedRef(spec.Controller), r.ns)
	if err != nil {
		return err
	}
	controller, ok := resolved.(*actioncontroller.ActionController)
	if !ok {
		return activesupport.ErrArgument{
			Message: fmt.Sprintf("resources require a controller, got %T", resolved),
		}
	}

	prefixes := []string{spec.Prefix}
	if spec.Name != "" {
		prefixes = []string{spec.Name, spec.Prefix}
	}

	middlewares := make([]Handler, 0, len(r.middlewares)+len(spec.Handlers))
	middlewares = append(middlewares, r.middlewares...)
	middlewares = append(middlewares, NormalizeHandlers(spec.Handlers)...)

	registrations, err := expandResources(prefixes, controller, middlewares, r.strict)
	if err != nil {
		return err
	}

	for _, reg := range registrations {
		err := r.register(
			[]string{joinPaths(r.prefix, reg.Path)},
			reg.Methods, reg.Handlers,
			RouteOptions{Name: r.namePrefix + reg.Name},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Register delegates the paths to the engine, one registration per
// path with identical methods, handlers and options. On registration
// failure it panics, route registration happens at startup where a
// misconfiguration is fatal.
func (r *Router) Register(
	paths []string, methods []string, handlers []Handler, opts RouteOptions,
) *Router {
	if err := r.register(paths, methods, handlers, opts); err != nil {
		panic(err)
	}
	return r
}

func (r *Router) register(
	paths []string, methods []string, handlers []Handler, opts RouteOptions,
) error {
	for _, path := range paths {
		if err := r.engine.Register(path, methods, handlers, opts); err != nil {
			return errors.Wrapf(err, "failed to register '%s'", path)
		}
		r.routes.add(path, methods, opts.Name)
	}
	return nil
}

func (r *Router) scopedRef(ref interface{}) interface{} {
	if r.scope == "" {
		return ref
	}
	if s, ok := ref.(string); ok {
		return r.scope + "." + s
	}
	return ref
}

// URLFor builds the path of the named route, substituting the path
// parameters from params. Parameters that do not appear in the path
// are appended as a query string.
func (r *Router) URLFor(name string, params actioncontroller.Parameters) (string, error) {
	info, ok := r.routes.named[name]
	if !ok {
		return "", ErrRouteNotFound{RouteName: name}
	}

	substituted := make(map[string]struct{}, len(params))
	segments := strings.Split(info.Path, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}
		param := segment[1:]
		val, ok := params[param]
		if !ok {
			return "", ErrMissingRouteParam{RouteName: name, Param: param}
		}
		segments[i] = fmt.Sprintf("%v", val)
		substituted[param] = struct{}{}
	}
	path := strings.Join(segments, "/")

	query := url.Values{}
	for param, val := range params {
		if _, ok := substituted[param]; ok {
			continue
		}
		query.Add(param, fmt.Sprintf("%v", val))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return path, nil
}

// MustURLFor builds the path of the named route, on error it panics.
func (r *Router) MustURLFor(name string, params actioncontroller.Parameters) string {
	path, err := r.URLFor(name, params)
	if err != nil {
		panic(err)
	}
	return path
}

// Routes returns the registered routes ordered by method and path.
func (r *Router) Routes() []RouteInfo {
	infos := make([]RouteInfo, len(r.routes.infos))
	copy(infos, r.routes.infos)

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Method != infos[j].Method {
			return infos[i].Method < infos[j].Method
		}
		return infos[i].Path < infos[j].Path
	})
	return infos
}

// Inspect returns a dump of the registered route table.
func (r *Router) Inspect() string {
	return spew.Sdump(r.Routes())
}

func joinPaths(a, b string) string {
	a = strings.TrimRight(a, "/")
	b = strings.TrimLeft(b, "/")
	switch {
	case a == "" && b == "":
		return "/"
	case b == "":
		return a
	default:
		return a + "/" + b
	}
}

func joinScope(a, b string) string {
	if a == "" {
		return b
	}
	return a + "." + b
}
