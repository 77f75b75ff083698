package raster

// Key represents a keyboard key understood by SliderPanel.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
)

// pageSteps is how many slider steps PageUp and PageDown move.
const pageSteps = 10

// SliderPanel is a keyboard-driven set of sliders, one per parameter.
//
// Up/Down and Tab move the selection, Left/Right nudge the selected slider by
// one step, PageUp/PageDown by ten, and Home resets it.
type SliderPanel struct {
	sliders  []Slider
	selected int
}

// NewSliderPanel returns a panel over sliders with the first one selected.
func NewSliderPanel(sliders []Slider) *SliderPanel {
	return &SliderPanel{sliders: sliders}
}

// Sliders returns the panel's sliders.
func (p *SliderPanel) Sliders() []Slider { return p.sliders }

// Selected returns the selected slider, or nil for an empty panel.
func (p *SliderPanel) Selected() *Slider {
	if len(p.sliders) == 0 {
		return nil
	}
	return &p.sliders[p.selected]
}

// Select moves the selection by delta, wrapping around.
func (p *SliderPanel) Select(delta int) {
	n := len(p.sliders)
	if n == 0 {
		return
	}
	p.selected = ((p.selected+delta)%n + n) % n
}

// HandleKey applies key to the panel. It returns an event when the selected
// slider's value changed.
func (p *SliderPanel) HandleKey(key Key) (ParameterEvent, bool) {
	s := p.Selected()
	if s == nil {
		return ParameterEvent{}, false
	}

	changed := false
	switch key {
	case KeyTab, KeyDown:
		p.Select(1)
	case KeyUp:
		p.Select(-1)
	case KeyLeft:
		changed = s.Nudge(-1)
	case KeyRight:
		changed = s.Nudge(1)
	case KeyPageDown:
		changed = s.Nudge(-pageSteps)
	case KeyPageUp:
		changed = s.Nudge(pageSteps)
	case KeyHome:
		changed = s.Reset()
	}

	if !changed {
		return ParameterEvent{}, false
	}
	return s.Event(), true
}
