package actiondispatch

import (
	"github.com/activegraph/actionpack/actioncontroller"
)

// Next continues the handler chain. The value it returns is the value
// produced by the remainder of the chain.
type Next func(ctx *actioncontroller.Context) (interface{}, error)

// Handler is the uniform invocation contract of the dispatch chain.
// Every handler, whatever convention it was written in, is expressed
// as a Handler before it reaches the routing engine.
type Handler interface {
	Serve(ctx *actioncontroller.Context, next Next) (interface{}, error)
}

type HandlerFunc func(ctx *actioncontroller.Context, next Next) (interface{}, error)

func (fn HandlerFunc) Serve(ctx *actioncontroller.Context, next Next) (interface{}, error) {
	return fn(ctx, next)
}

// ActionHandler adapts a controller action into the chain contract.
// The action's constraints are applied to the context parameters, the
// deferred result of Process is driven to completion, and the
// continuation is accepted but never called, an action terminates its
// chain.
type ActionHandler struct {
	Action actioncontroller.Action
}

func (h ActionHandler) Serve(ctx *actioncontroller.Context, next Next) (interface{}, error) {
	ctx.Params = ctx.Params.Permit(h.Action.ActionConstraints())

	result := h.Action.Process(ctx)
	if result == nil {
		return nil, nil
	}
	return result.Execute(ctx)
}

// BindAction binds the named action of the controller into a chain
// handler. The binding fails when the controller has no such action.
func BindAction(c *actioncontroller.ActionController, name string) (Handler, error) {
	action := c.Action(name)
	if action == nil {
		return nil, actioncontroller.ErrActionNotFound{ActionName: name}
	}
	return ActionHandler{Action: action}, nil
}

// NoopHandler returns a handler that passes control to the rest of
// the chain without touching the context.
func NoopHandler() Handler {
	return HandlerFunc(func(ctx *actioncontroller.Context, next Next) (interface{}, error) {
		return next(ctx)
	})
}

// NormalizeHandler expresses a handler written in any of the
// supported conventions as a Handler:
//
//	func(ctx *actioncontroller.Context, next Next) (interface{}, error)
//	func(ctx *actioncontroller.Context) (interface{}, error)
//	func(ctx *actioncontroller.Context) error
//	actioncontroller.Action
//	actioncontroller.ActionFunc
//
// Values of other types are not callable as handlers and become
// no-ops that simply continue the chain. The normalization is
// transparent, a handler behaves identically whichever convention it
// was written in.
func NormalizeHandler(v interface{}) Handler {
	switch v := v.(type) {
	case Handler:
		return v
	case func(ctx *actioncontroller.Context, next Next) (interface{}, error):
		return HandlerFunc(v)
	case func(ctx *actioncontroller.Context) (interface{}, error):
		return HandlerFunc(func(ctx *actioncontroller.Context, next Next) (interface{}, error) {
			return v(ctx)
		})
	case func(ctx *actioncontroller.Context) error:
		return HandlerFunc(func(ctx *actioncontroller.Context, next Next) (interface{}, error) {
			if err := v(ctx); err != nil {
				return nil, err
			}
			return next(ctx)
		})
	case actioncontroller.Action:
		return ActionHandler{Action: v}
	case actioncontroller.ActionFunc:
		return ActionHandler{Action: &actioncontroller.NamedAction{ActionFunc: v}}
	case func(ctx *actioncontroller.Context) actioncontroller.Result:
		return ActionHandler{Action: &actioncontroller.NamedAction{ActionFunc: v}}
	default:
		return NoopHandler()
	}
}

// NormalizeHandlers normalizes a list of handlers preserving their order.
func NormalizeHandlers(vs []interface{}) []Handler {
	handlers := make([]Handler, 0, len(vs))
	for _, v := range vs {
		handlers = append(handlers, NormalizeHandler(v))
	}
	return handlers
}

// Chain composes the handlers into a single continuation, handlers
// run in the order they are given. The continuation the last handler
// receives satisfies the chain contract without doing anything, a
// terminal handler may call it or leave it alone.
func Chain(handlers []Handler) Next {
	next := Next(func(*actioncontroller.Context) (interface{}, error) {
		return nil, nil
	})
	for i := len(handlers) - 1; i >= 0; i-- {
		handler, tail := handlers[i], next
		next = func(ctx *actioncontroller.Context) (interface{}, error) {
			return handler.Serve(ctx, tail)
		}
	}
	return next
}
