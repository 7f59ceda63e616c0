package actionview_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activegraph/actionpack/actioncontroller"
	"github.com/activegraph/actionpack/actionview"
	"github.com/activegraph/actionpack/activesupport"
)

type user struct {
	Name string
}

func (u user) ToHash() activesupport.Hash {
	return activesupport.Hash{"name": u.Name}
}

func TestViewResult_HashConverter(t *testing.T) {
	result := actionview.ViewResult(activesupport.Ok(user{Name: "pine"}))

	val, err := result.Execute(&actioncontroller.Context{})
	require.NoError(t, err)
	assert.Equal(t, activesupport.Hash{"name": "pine"}, val)
}

func TestViewResult_PlainValue(t *testing.T) {
	result := actionview.ViewResult(activesupport.Ok("pong"))

	val, err := result.Execute(&actioncontroller.Context{})
	require.NoError(t, err)
	assert.Equal(t, "pong", val)
}

func TestViewResult_Err(t *testing.T) {
	result := actionview.ViewResult(activesupport.Err(errors.New("not found")))

	_, err := result.Execute(&actioncontroller.Context{})
	require.Error(t, err)
	assert.Equal(t, "not found", err.Error())
}

func TestContentResult(t *testing.T) {
	result := actionview.ContentResult(201, "created")

	val, err := result.Execute(&actioncontroller.Context{})
	require.NoError(t, err)
	assert.Equal(t, actionview.Content{Status: 201, Value: "created"}, val)
}

func TestNoContentResult(t *testing.T) {
	result := actionview.NoContentResult()

	val, err := result.Execute(&actioncontroller.Context{})
	require.NoError(t, err)
	assert.Equal(t, actionview.Content{Status: 204}, val)
}
