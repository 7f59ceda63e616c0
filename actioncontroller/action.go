package actioncontroller

import (
	"context"
)

type Context struct {
	context.Context

	Params Parameters

	// Route identifies the matched route, the route name when it has
	// one and the path pattern otherwise. Set by the HTTP layer.
	Route string
}

// Constraints restrict the parameters an action receives. An action
// with a non-empty permitted list sees only the listed parameters.
type Constraints struct {
	Permitted []string
}

// Result defines a contract that represents the result of action method.
type Result interface {
	Execute(*Context) (interface{}, error)
}

type Action interface {
	ActionName() string
	ActionConstraints() Constraints
	Process(ctx *Context) Result
}

type ActionFunc func(*Context) Result

func (fn ActionFunc) Process(ctx *Context) Result {
	return fn(ctx)
}

type NamedAction struct {
	Name        string
	Constraints Constraints
	ActionFunc
}

func (a *NamedAction) ActionConstraints() Constraints {
	return a.Constraints
}

func (a *NamedAction) ActionName() string {
	return a.Name
}

const (
	ActionIndex   = "index"
	ActionNew     = "new"
	ActionCreate  = "create"
	ActionShow    = "show"
	ActionEdit    = "edit"
	ActionUpdate  = "update"
	ActionDestroy = "destroy"
)

func IsCanonicalAction(actionName string) bool {
	switch actionName {
	case ActionIndex, ActionNew, ActionCreate, ActionShow,
		ActionEdit, ActionUpdate, ActionDestroy:
		return true
	default:
		return false
	}
}
