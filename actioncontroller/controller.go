package actioncontroller

type actionsMap map[string]*NamedAction

func (m actionsMap) copy() actionsMap {
	mm := make(actionsMap, len(m))
	for name, action := range m {
		mm[name] = action
	}
	return mm
}

// C is a configuration of the controller under construction. All
// methods of C are only valid within the initializer passed to New
// or Initialize.
type C struct {
	actions   actionsMap
	order     []string
	params    map[string][]string
	callbacks callbacks
}

func (c *C) BeforeAction(cb Callback, only ...string) {
	c.callbacks.appendBeforeAction(cb, only)
}

func (c *C) AfterAction(cb Callback, only ...string) {
	c.callbacks.appendAfterAction(cb, only)
}

func (c *C) AroundAction(cb CallbackAround, only ...string) {
	c.callbacks.appendAroundAction(cb, only)
}

func (c *C) Action(name string, a ActionFunc) {
	if _, ok := c.actions[name]; !ok {
		c.order = append(c.order, name)
	}
	c.actions[name] = &NamedAction{Name: name, ActionFunc: a}
}

// Permit restricts the parameters passed to the named actions, only
// parameters from the given list reach the action.
func (c *C) Permit(params []string, names ...string) {
	for _, name := range names {
		p := c.params[name]
		c.params[name] = append(p, params...)
	}
}

func (c *C) Index(a ActionFunc) {
	c.Action(ActionIndex, a)
}

func (c *C) New(a ActionFunc) {
	c.Action(ActionNew, a)
}

func (c *C) Create(a ActionFunc) {
	c.Action(ActionCreate, a)
}

func (c *C) Show(a ActionFunc) {
	c.Action(ActionShow, a)
}

func (c *C) Edit(a ActionFunc) {
	c.Action(ActionEdit, a)
}

func (c *C) Update(a ActionFunc) {
	c.Action(ActionUpdate, a)
}

func (c *C) Destroy(a ActionFunc) {
	c.Action(ActionDestroy, a)
}

type ActionController struct {
	actions actionsMap
	order   []string
}

func New(init func(*C)) *ActionController {
	c, err := Initialize(init)
	if err != nil {
		panic(err)
	}
	return c
}

func Initialize(init func(*C)) (*ActionController, error) {
	c := C{actions: make(actionsMap), params: make(map[string][]string)}
	init(&c)

	for actionName, action := range c.actions {
		action.Constraints = Constraints{Permitted: c.params[actionName]}
	}

	if !c.callbacks.empty() {
		for actionName, action := range c.actions {
			c.actions[actionName] = c.callbacks.override(action)
		}
	}

	return &ActionController{
		actions: c.actions.copy(),
		order:   c.order,
	}, nil
}

func (c *ActionController) HasAction(actionName string) bool {
	_, ok := c.actions[actionName]
	return ok
}

// ActionMethods returns the actions of the controller in the order
// of their registration.
func (c *ActionController) ActionMethods() []Action {
	actions := make([]Action, 0, len(c.actions))
	for _, name := range c.order {
		actions = append(actions, c.actions[name])
	}
	return actions
}

func (c *ActionController) Action(actionName string) Action {
	action, ok := c.actions[actionName]
	if !ok {
		return nil
	}
	return action
}
