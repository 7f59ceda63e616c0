package httpserve

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/activegraph/actionpack/actioncontroller"
	"github.com/activegraph/actionpack/actiondispatch"
	"github.com/activegraph/actionpack/actionview"
)

// pathParams matches the ":name" parameter segments of a route path.
var pathParams = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// Engine serves routes mapped through an actiondispatch.Router over an
// HTTP multiplexer. Requests that match no route receive a plain text
// 404 response, requests that match a route with a different method
// receive a 405.
type Engine struct {
	chiRouter chi.Router
}

// NewEngine creates a new HTTP routing engine.
func NewEngine() *Engine {
	r := chi.NewRouter()
	r.NotFound(TextHandler(http.StatusNotFound, "404 page not found"))
	r.MethodNotAllowed(TextHandler(http.StatusMethodNotAllowed, "405 method not allowed"))

	return &Engine{chiRouter: r}
}

// Register registers the handler chain under the given path for each of
// the given methods. The ":param" path segments are translated to the
// syntax of the multiplexer, so "/users/:id" matches "/users/42" and
// stores "42" under the "id" parameter.
func (e *Engine) Register(
	path string, methods []string,
	handlers []actiondispatch.Handler, opts actiondispatch.RouteOptions,
) (err error) {
	// The multiplexer panics on malformed patterns and unknown methods.
	defer func() {
		if v := recover(); v != nil {
			err = errors.Errorf("failed to register '%s': %v", path, v)
		}
	}()

	route := opts.Name
	if route == "" {
		route = path
	}
	httpHandler := e.serve(actiondispatch.Chain(handlers), route)

	chiPath := pathParams.ReplaceAllString(path, "{$1}")
	for _, method := range methods {
		e.chiRouter.Method(method, chiPath, httpHandler)
	}
	return nil
}

// serve adapts a composed handler chain to an HTTP handler.
func (e *Engine) serve(chain actiondispatch.Next, route string) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		params, err := ParseRequest(r)
		if err != nil {
			h := TextHandler(http.StatusBadRequest, err.Error())
			h.ServeHTTP(rw, r)
			return
		}

		ctx := &actioncontroller.Context{
			Context: r.Context(),
			Params:  params,
			Route:   route,
		}

		res, err := chain(ctx)
		if err != nil {
			h := TextHandler(http.StatusInternalServerError, err.Error())
			h.ServeHTTP(rw, r)
			return
		}

		renderResponse(rw, r, res)
	}
}

// renderResponse writes the value produced by the handler chain as an
// HTTP response. Values travel as JSON, a nil value renders as an
// empty response.
func renderResponse(rw http.ResponseWriter, r *http.Request, res interface{}) {
	switch res := res.(type) {
	case nil:
		rw.WriteHeader(http.StatusNoContent)
	case actionview.Content:
		if res.Value == nil {
			rw.WriteHeader(res.Status)
			return
		}
		h := JSONHandler(res.Status, res.Value)
		h.ServeHTTP(rw, r)
	default:
		h := JSONHandler(http.StatusOK, res)
		h.ServeHTTP(rw, r)
	}
}

// Handler returns the engine as an http.Handler ready to be served.
func (e *Engine) Handler() http.Handler {
	return e.chiRouter
}

// ListenAndServe listens on the given TCP address and serves the
// registered routes.
func (e *Engine) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, e.chiRouter)
}
