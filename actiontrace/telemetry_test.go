package actiontrace_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activegraph/actionpack/actioncontroller"
	"github.com/activegraph/actionpack/actiontrace"
)

func TestDefineMetricsHandler_PassesThrough(t *testing.T) {
	h := actiontrace.DefineMetricsHandler("actiontrace_measure")

	res, err := h.Serve(newContext("users"), func(
		*actioncontroller.Context,
	) (interface{}, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, res)
}

func TestDefineMetricsHandler_PropagatesError(t *testing.T) {
	h := actiontrace.DefineMetricsHandler("actiontrace_failure")

	_, err := h.Serve(newContext("users"), func(
		*actioncontroller.Context,
	) (interface{}, error) {
		return nil, errors.New("boom")
	})

	assert.EqualError(t, err, "boom")
}
