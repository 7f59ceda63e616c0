package actionview

import (
	"net/http"

	"github.com/activegraph/actionpack/actioncontroller"
	"github.com/activegraph/actionpack/activesupport"
)

type ResultFunc func(*actioncontroller.Context) (interface{}, error)

func (fn ResultFunc) Execute(ctx *actioncontroller.Context) (interface{}, error) {
	return fn(ctx)
}

// Content carries a rendered value together with the response status
// the HTTP layer should use for it.
type Content struct {
	Status int
	Value  interface{}
}

// ViewResult renders the value of a Go call result. Values supporting
// hash conversion are converted, the rest render as they are.
func ViewResult(res activesupport.Res) actioncontroller.Result {
	return ResultFunc(func(ctx *actioncontroller.Context) (interface{}, error) {
		if res.IsErr() {
			return nil, res.Err()
		}
		switch val := res.Ok().(type) {
		case activesupport.HashConverter:
			return val.ToHash(), nil
		case activesupport.HashArrayConverter:
			return val.ToHashArray(), nil
		default:
			return val, nil
		}
	})
}

// ContentResult renders the given value with an explicit response status.
func ContentResult(status int, val interface{}) actioncontroller.Result {
	return ResultFunc(func(ctx *actioncontroller.Context) (interface{}, error) {
		return Content{Status: status, Value: val}, nil
	})
}

// NoContentResult renders an empty response.
func NoContentResult() actioncontroller.Result {
	return ContentResult(http.StatusNoContent, nil)
}

// ErrorResult propagates the error through the handler chain.
func ErrorResult(err error) actioncontroller.Result {
	return ResultFunc(func(ctx *actioncontroller.Context) (interface{}, error) {
		return nil, err
	})
}
