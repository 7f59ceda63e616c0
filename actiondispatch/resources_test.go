package actiondispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activegraph/actionpack/actioncontroller"
	"github.com/activegraph/actionpack/actiondispatch"
	"github.com/activegraph/actionpack/actionview"
)

func TestCanonicalActionSpecs_Table(t *testing.T) {
	specs := actiondispatch.CanonicalActionSpecs()

	assert.Equal(t, []actiondispatch.ActionSpec{
		{Name: "index", Member: false, NamePrefix: "", PathSuffix: "",
			Methods: []string{"GET"}},
		{Name: "new", Member: true, NamePrefix: "new_", PathSuffix: "new",
			Methods: []string{"GET"}},
		{Name: "create", Member: false, NamePrefix: "", PathSuffix: "",
			Methods: []string{"POST"}},
		{Name: "show", Member: true, NamePrefix: "", PathSuffix: ":id",
			Methods: []string{"GET"}},
		{Name: "edit", Member: true, NamePrefix: "edit_", PathSuffix: ":id/edit",
			Methods: []string{"GET"}},
		{Name: "update", Member: true, NamePrefix: "", PathSuffix: ":id",
			Methods: []string{"PATCH", "PUT"}},
		{Name: "destroy", Member: true, NamePrefix: "destroy_", PathSuffix: ":id",
			Methods: []string{"DELETE"}},
	}, specs)
}

func TestCanonicalActionSpecs_Copies(t *testing.T) {
	specs := actiondispatch.CanonicalActionSpecs()
	specs[0].Methods[0] = "BREW"
	specs[1].Name = "old"

	fresh := actiondispatch.CanonicalActionSpecs()
	assert.Equal(t, []string{"GET"}, fresh[0].Methods)
	assert.Equal(t, "new", fresh[1].Name)
}

func TestResources_FullExpansion(t *testing.T) {
	router, engine := newTestRouter(t)

	router.Resources("user", "/users/", "users")

	require.Len(t, engine.registrations, 7)

	type route struct {
		name    string
		path    string
		methods []string
	}
	expanded := make([]route, 0, len(engine.registrations))
	for _, reg := range engine.registrations {
		expanded = append(expanded, route{reg.opts.Name, reg.path, reg.methods})
	}

	assert.Equal(t, []route{
		{"users", "/users", []string{"GET"}},
		{"new_user", "/users/new", []string{"GET"}},
		{"users", "/users", []string{"POST"}},
		{"user", "/users/:id", []string{"GET"}},
		{"edit_user", "/users/:id/edit", []string{"GET"}},
		{"user", "/users/:id", []string{"PATCH", "PUT"}},
		{"destroy_user", "/users/:id", []string{"DELETE"}},
	}, expanded)
}

func TestResources_DerivedName(t *testing.T) {
	router, engine := newTestRouter(t)

	router.Resources("/users", "users")

	require.Len(t, engine.registrations, 7)
	assert.Equal(t, "users", engine.registrations[0].opts.Name)
	assert.Equal(t, "/users", engine.registrations[0].path)
	assert.Equal(t, "user", engine.registrations[3].opts.Name)
	assert.Equal(t, "/users/:id", engine.registrations[3].path)
}

func TestResources_AbsentActionsSkipped(t *testing.T) {
	router, engine := newTestRouter(t)

	c, err := actioncontroller.Initialize(func(c *actioncontroller.C) {
		c.Index(echoAction("index"))
		c.Show(echoAction("show"))
	})
	require.NoError(t, err)

	router.Resources("post", "/posts", c)

	require.Len(t, engine.registrations, 2)
	assert.Equal(t, "posts", engine.registrations[0].opts.Name)
	assert.Equal(t, "post", engine.registrations[1].opts.Name)
}

func TestResources_Idempotent(t *testing.T) {
	first, firstEngine := newTestRouter(t)
	second, secondEngine := newTestRouter(t)

	first.Resources("user", "/users", "users")
	second.Resources("user", "/users", "users")
	second.Resources("user", "/users", "users")

	require.Len(t, secondEngine.registrations, 2*len(firstEngine.registrations))
	for i, reg := range firstEngine.registrations {
		again := secondEngine.registrations[len(firstEngine.registrations)+i]
		assert.Equal(t, reg.path, again.path)
		assert.Equal(t, reg.methods, again.methods)
		assert.Equal(t, reg.opts, again.opts)
	}
}

func TestResources_Middleware(t *testing.T) {
	router, engine := newTestRouter(t)

	var order []string
	mw := actiondispatch.HandlerFunc(func(
		ctx *actioncontroller.Context, next actiondispatch.Next,
	) (interface{}, error) {
		order = append(order, "mw")
		return next(ctx)
	})

	router.Resources("user", "/users", mw, "users")

	require.Len(t, engine.registrations, 7)
	val, err := actiondispatch.Chain(engine.registrations[0].handlers)(newContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"mw"}, order)
	assert.Equal(t, "index", val.(actionview.Content).Value)
}

func TestResources_StrictActions(t *testing.T) {
	router, _ := newTestRouter(t)
	router.StrictActions(true)

	c, err := actioncontroller.Initialize(func(c *actioncontroller.C) {
		c.Index(echoAction("index"))
	})
	require.NoError(t, err)

	err = router.MatchResources("post", "/posts", c)
	require.Error(t, err)
	assert.Equal(t, actioncontroller.ErrActionNotFound{ActionName: "new"}, err)
}

func TestResources_NotAController(t *testing.T) {
	router, _ := newTestRouter(t)

	err := router.MatchResources("/pings", func(ctx *actioncontroller.Context) (interface{}, error) {
		return "pong", nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resources require a controller")
}
