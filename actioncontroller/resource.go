package actioncontroller

import (
	"github.com/pkg/errors"
)

// Per-action capability interfaces. A resource type implements the
// subset of interfaces matching the actions it supports, actions
// without an implementation are simply not registered.
type ResourceIndex interface {
	Index(ctx *Context) Result
}

type ResourceNew interface {
	New(ctx *Context) Result
}

type ResourceCreate interface {
	Create(ctx *Context) Result
}

type ResourceShow interface {
	Show(ctx *Context) Result
}

type ResourceEdit interface {
	Edit(ctx *Context) Result
}

type ResourceUpdate interface {
	Update(ctx *Context) Result
}

type ResourceDestroy interface {
	Destroy(ctx *Context) Result
}

// DefineResource builds a controller from the resource capabilities
// implemented by the given value. The method returns an error when
// the value implements none of them.
func DefineResource(v interface{}) (*ActionController, error) {
	actions := make(map[string]ActionFunc)
	if r, ok := v.(ResourceIndex); ok {
		actions[ActionIndex] = r.Index
	}
	if r, ok := v.(ResourceNew); ok {
		actions[ActionNew] = r.New
	}
	if r, ok := v.(ResourceCreate); ok {
		actions[ActionCreate] = r.Create
	}
	if r, ok := v.(ResourceShow); ok {
		actions[ActionShow] = r.Show
	}
	if r, ok := v.(ResourceEdit); ok {
		actions[ActionEdit] = r.Edit
	}
	if r, ok := v.(ResourceUpdate); ok {
		actions[ActionUpdate] = r.Update
	}
	if r, ok := v.(ResourceDestroy); ok {
		actions[ActionDestroy] = r.Destroy
	}

	if len(actions) == 0 {
		return nil, errors.Errorf("type %T does not implement any resource action", v)
	}

	return Initialize(func(c *C) {
		for _, name := range []string{
			ActionIndex, ActionNew, ActionCreate, ActionShow,
			ActionEdit, ActionUpdate, ActionDestroy,
		} {
			if action, ok := actions[name]; ok {
				c.Action(name, action)
			}
		}
	})
}

// NewResource builds a controller from the resource capabilities of
// the given value, on error it panics.
//
// See documentation of DefineResource for more details.
func NewResource(v interface{}) *ActionController {
	c, err := DefineResource(v)
	if err != nil {
		panic(err)
	}
	return c
}
