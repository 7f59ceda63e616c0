package actiondispatch_test

import (
	"regexp"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activegraph/actionpack/actiondispatch"
)

func TestSplitRouteParams_NamedForm(t *testing.T) {
	mw := func() {}
	controller := "users.index"

	spec, err := actiondispatch.SplitRouteParams(
		[]interface{}{"users", "/users", mw, controller},
	)
	require.NoError(t, err)

	assert.Equal(t, "users", spec.Name)
	assert.Equal(t, "/users", spec.Prefix)
	require.Len(t, spec.Handlers, 1)
	assert.Equal(t, controller, spec.Controller)
}

func TestSplitRouteParams_AnonymousForm(t *testing.T) {
	mw := func() {}
	controller := "users.index"

	spec, err := actiondispatch.SplitRouteParams(
		[]interface{}{"/users", mw, controller},
	)
	require.NoError(t, err)

	assert.Empty(t, spec.Name)
	assert.Equal(t, "/users", spec.Prefix)
	require.Len(t, spec.Handlers, 1)
	assert.Equal(t, controller, spec.Controller)
}

func TestSplitRouteParams_TwoArguments(t *testing.T) {
	spec, err := actiondispatch.SplitRouteParams(
		[]interface{}{"/users", "users.index"},
	)
	require.NoError(t, err)

	// Two strings stay (prefix, controller), the named interpretation
	// requires at least three arguments.
	assert.Empty(t, spec.Name)
	assert.Equal(t, "/users", spec.Prefix)
	assert.Empty(t, spec.Handlers)
	assert.Equal(t, "users.index", spec.Controller)
}

func TestSplitRouteParams_PatternPrefix(t *testing.T) {
	pattern := regexp.MustCompile("/users/[0-9]+")

	spec, err := actiondispatch.SplitRouteParams(
		[]interface{}{"user", pattern, "users.show"},
	)
	require.NoError(t, err)

	assert.Equal(t, "user", spec.Name)
	assert.Equal(t, "/users/[0-9]+", spec.Prefix)
	assert.Equal(t, "users.show", spec.Controller)
}

func TestSplitRouteParams_SoleArgument(t *testing.T) {
	spec, err := actiondispatch.SplitRouteParams([]interface{}{"users.index"})
	require.NoError(t, err)

	assert.Empty(t, spec.Name)
	assert.Empty(t, spec.Prefix)
	assert.Empty(t, spec.Handlers)
	assert.Equal(t, "users.index", spec.Controller)
}

func TestSplitRouteParams_Invalid(t *testing.T) {
	_, err := actiondispatch.SplitRouteParams(nil)
	require.Error(t, err)

	_, err = actiondispatch.SplitRouteParams([]interface{}{42, "users.index"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefix must be a string")
}

func TestSplitRouteParams_TrailingController(t *testing.T) {
	split := func(handlers []int) bool {
		args := []interface{}{"/users"}
		for _, h := range handlers {
			args = append(args, h)
		}
		args = append(args, "users")

		spec, err := actiondispatch.SplitRouteParams(args)
		if err != nil {
			return false
		}
		return spec.Controller == "users" && len(spec.Handlers) == len(handlers)
	}

	err := quick.Check(split, nil)
	assert.NoError(t, err)
}
