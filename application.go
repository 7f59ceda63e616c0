package actionpack

import (
	"net/http"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/activegraph/actionpack/actioncontroller"
	"github.com/activegraph/actionpack/actiondispatch"
	"github.com/activegraph/actionpack/actiontrace"
	"github.com/activegraph/actionpack/activesupport"
	"github.com/activegraph/actionpack/httpserve"
)

// ErrRequestTimeout is returned when a request takes too much time
// to process it.
var ErrRequestTimeout = errors.New("request processing timed out")

// A is a configuration of the application under construction. All
// methods of A are only valid within the initializer passed to New
// or Initialize.
type A struct {
	name    string
	tracer  opentracing.Tracer
	timeout time.Duration
	strict  bool

	initializers []activesupport.Initializer
	ns           []func(*actioncontroller.NS)
	draw         []func(*actiondispatch.Router)
}

// Name sets the name of the application. Will be used to emit metrics
// about request handling.
func (a *A) Name(name string) {
	a.name = name
}

// Tracer specifies an optional tracing implementation that is called
// on every request passing through the routing chain.
func (a *A) Tracer(tracer opentracing.Tracer) {
	a.tracer = tracer
}

// RequestTimeout is the maximum duration for handling the entire
// request. When set to 0, request processing takes as much time as
// needed.
//
// Default is no timeout.
func (a *A) RequestTimeout(timeout time.Duration) {
	a.timeout = timeout
}

// StrictActions makes resource expansion fail on canonical actions
// the controllers do not implement, instead of skipping them.
func (a *A) StrictActions(strict bool) {
	a.strict = strict
}

// Init registers startup initializers, they run in the order of their
// registration before the routes are drawn. A failing initializer
// aborts the startup.
func (a *A) Init(initializers ...activesupport.Initializer) {
	a.initializers = append(a.initializers, initializers...)
}

// Controller registers a controller under the given name.
func (a *A) Controller(name string, c *actioncontroller.ActionController) {
	a.ns = append(a.ns, func(root *actioncontroller.NS) {
		root.Controller(name, c)
	})
}

// Namespace registers controllers within the named namespace, they are
// referred as "name.controller" in route declarations.
func (a *A) Namespace(name string, init func(*actioncontroller.NS)) {
	a.ns = append(a.ns, func(root *actioncontroller.NS) {
		root.Namespace(name, init)
	})
}

// DrawRoutes declares the routes of the application.
func (a *A) DrawRoutes(draw func(*actiondispatch.Router)) {
	a.draw = append(a.draw, draw)
}

type Application struct {
	ns      *actioncontroller.Namespace
	router  *actiondispatch.Router
	engine  *httpserve.Engine
	timeout time.Duration
}

func New(init func(*A)) *Application {
	app, err := Initialize(init)
	if err != nil {
		panic(err)
	}
	return app
}

func Initialize(init func(*A)) (app *Application, err error) {
	var a A
	init(&a)

	for _, initializer := range a.initializers {
		if err := initializer.Initialize(); err != nil {
			return nil, errors.Wrap(err, "failed to initialize application")
		}
	}

	ns, err := actioncontroller.InitializeNamespace(func(root *actioncontroller.NS) {
		for _, init := range a.ns {
			init(root)
		}
	})
	if err != nil {
		return nil, err
	}

	engine := httpserve.NewEngine()
	router := actiondispatch.NewRouter(engine, ns).StrictActions(a.strict)

	if a.name != "" {
		router.Use(actiontrace.DefineMetricsHandler(a.name))
	}
	if a.tracer != nil {
		router.Use(actiontrace.DefineTracingHandler(a.tracer))
	}

	// Route declarations panic on misconfiguration, surface them as
	// initialization errors.
	defer func() {
		if v := recover(); v != nil {
			app, err = nil, errors.Errorf("failed to draw routes: %v", v)
		}
	}()

	for _, draw := range a.draw {
		draw(router)
	}

	return &Application{
		ns:      ns,
		router:  router,
		engine:  engine,
		timeout: a.timeout,
	}, nil
}

// Routes returns the registered routes ordered by method and path.
func (app *Application) Routes() []actiondispatch.RouteInfo {
	return app.router.Routes()
}

// URLFor builds the path of the named route, substituting the path
// parameters from params.
func (app *Application) URLFor(
	name string, params actioncontroller.Parameters,
) (string, error) {
	return app.router.URLFor(name, params)
}

// Inspect returns a dump of the registered route table.
func (app *Application) Inspect() string {
	return app.router.Inspect()
}

// Handler returns the application as an http.Handler.
func (app *Application) Handler() http.Handler {
	var handler http.Handler = app.engine.Handler()
	if app.timeout != 0 {
		handler = http.TimeoutHandler(handler, app.timeout, ErrRequestTimeout.Error())
	}
	return handler
}

// ListenAndServe listens on the given TCP address and serves the
// application routes.
func (app *Application) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, app.Handler())
}
