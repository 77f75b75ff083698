package raster

import "fmt"

// Display shows the formatted value of each parameter.
type Display interface {
	SetLabel(p Parameter, text string)
}

// Drawer renders the scene for the current transform.
type Drawer interface {
	Draw(state *TransformState)
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(state *TransformState)

// Draw calls f(state).
func (f DrawerFunc) Draw(state *TransformState) { f(state) }

// Controller applies parameter events from a parameter source: each event
// updates one field of the transform, refreshes that parameter's label and
// renders exactly once. Events are handled synchronously in arrival order.
type Controller struct {
	variant Variant
	state   *TransformState
	display Display
	drawer  Drawer
	format  *Formatter
	started bool
}

// NewController returns a controller driving state. A nil formatter selects
// English formatting.
func NewController(v Variant, state *TransformState, display Display, drawer Drawer, format *Formatter) *Controller {
	if format == nil {
		format, _ = NewFormatterForLocale("")
	}
	return &Controller{
		variant: v,
		state:   state,
		display: display,
		drawer:  drawer,
		format:  format,
	}
}

// State returns the transform the controller drives.
func (c *Controller) State() *TransformState { return c.state }

// Variant returns the controller's variant.
func (c *Controller) Variant() Variant { return c.variant }

// Start pushes the current value of every exposed parameter to the display
// and renders the first frame. Apply calls it if it has not run yet.
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true
	for _, p := range c.variant.Parameters() {
		c.display.SetLabel(p, c.format.Format(c.variant.value(c.state, p)))
	}
	c.drawer.Draw(c.state)
}

// Apply handles one parameter event. Parameters the variant does not expose
// are rejected without rendering.
func (c *Controller) Apply(ev ParameterEvent) error {
	if !c.variant.Supports(ev.Param) {
		return fmt.Errorf("%w: %s is not available in variant %q", ErrUnknownParameter, ev.Param, c.variant.Name)
	}
	c.Start()

	c.variant.apply(c.state, ev.Param, ev.Value)
	c.display.SetLabel(ev.Param, c.format.Format(ev.Value))
	c.drawer.Draw(c.state)

	Logger().Debug("parameter applied", "param", ev.Param.String(), "value", ev.Value)
	return nil
}

// Redraw renders the current state without changing it, e.g. after the
// surface was resized.
func (c *Controller) Redraw() {
	if !c.started {
		c.Start()
		return
	}
	c.drawer.Draw(c.state)
}
