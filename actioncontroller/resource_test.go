package actioncontroller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activegraph/actionpack/actioncontroller"
)

type postsResource struct{}

func (postsResource) Index(ctx *actioncontroller.Context) actioncontroller.Result {
	return &testResult{val: "posts#index"}
}

func (postsResource) Show(ctx *actioncontroller.Context) actioncontroller.Result {
	return &testResult{val: "posts#show"}
}

func (postsResource) Destroy(ctx *actioncontroller.Context) actioncontroller.Result {
	return &testResult{val: "posts#destroy"}
}

func TestDefineResource_PartialCapabilities(t *testing.T) {
	c, err := actioncontroller.DefineResource(postsResource{})
	require.NoError(t, err)

	assert.True(t, c.HasAction("index"))
	assert.True(t, c.HasAction("show"))
	assert.True(t, c.HasAction("destroy"))

	assert.False(t, c.HasAction("new"))
	assert.False(t, c.HasAction("create"))
	assert.False(t, c.HasAction("edit"))
	assert.False(t, c.HasAction("update"))

	val, err := process(t, c, "show")
	require.NoError(t, err)
	assert.Equal(t, "posts#show", val)
}

func TestDefineResource_NoCapabilities(t *testing.T) {
	_, err := actioncontroller.DefineResource(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not implement any resource action")
}

func TestNewResource_Panics(t *testing.T) {
	assert.Panics(t, func() {
		actioncontroller.NewResource(42)
	})
}
