package actiontrace

import (
	"net/http"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/opentracing/opentracing-go/log"

	"github.com/activegraph/actionpack/actioncontroller"
	"github.com/activegraph/actionpack/actiondispatch"
)

// DefineTracingHandler returns a handler that opens a span for every request
// passing through the handler chain. The span joins the trace found in the
// request context, when there is one, and is named after the matched route.
func DefineTracingHandler(tracer opentracing.Tracer) actiondispatch.Handler {
	return actiondispatch.HandlerFunc(func(
		ctx *actioncontroller.Context, next actiondispatch.Next,
	) (interface{}, error) {
		span, spanCtx := opentracing.StartSpanFromContextWithTracer(
			ctx.Context, tracer, ctx.Route,
		)
		defer span.Finish()

		ctx.Context = spanCtx

		res, err := next(ctx)

		if err != nil {
			ext.Error.Set(span, true)
			span.LogFields(
				log.String("event", "error"),
				log.String("message", err.Error()),
			)
		}

		return res, err
	})
}

// TracingHandler returns an http.Handler with opentracing context.
//
// The new Handler calls h.ServeHTTP to handle each request, it opens
// a server span when the request headers carry a trace, and closes the
// span when the handler finishes execution.
func TracingHandler(h http.Handler, tracer opentracing.Tracer) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		wireContext, err := tracer.Extract(
			opentracing.HTTPHeaders,
			opentracing.HTTPHeadersCarrier(r.Header),
		)
		if err != nil {
			h.ServeHTTP(rw, r)
			return
		}

		span := opentracing.StartSpan(
			r.Method+" "+r.URL.Path, ext.RPCServerOption(wireContext),
		)
		defer span.Finish()

		ctx := opentracing.ContextWithSpan(r.Context(), span)
		h.ServeHTTP(rw, r.WithContext(ctx))
	})
}
