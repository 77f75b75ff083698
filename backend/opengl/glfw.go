package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/raster"
)

// TitleDisplay shows parameter labels in the window title.
type TitleDisplay struct {
	*raster.Labels
	window *glfw.Window
	prefix string
}

// NewTitleDisplay returns a display for params that writes to window's title.
func NewTitleDisplay(window *glfw.Window, prefix string, params []raster.Parameter) *TitleDisplay {
	return &TitleDisplay{
		Labels: raster.NewLabels(params),
		window: window,
		prefix: prefix,
	}
}

// SetLabel implements raster.Display.
func (d *TitleDisplay) SetLabel(p raster.Parameter, text string) {
	d.Labels.SetLabel(p, text)
	d.refresh()
}

// Select marks p as selected and refreshes the title.
func (d *TitleDisplay) Select(p raster.Parameter) {
	d.Labels.Select(p)
	d.refresh()
}

func (d *TitleDisplay) refresh() {
	d.window.SetTitle(d.prefix + " | " + d.Line())
}

// KeyboardSource adapts GLFW key input to slider changes and feeds each
// resulting parameter event to a controller.
type KeyboardSource struct {
	window     *glfw.Window
	panel      *raster.SliderPanel
	controller *raster.Controller
	display    *TitleDisplay
}

// NewKeyboardSource installs the key callback on window.
func NewKeyboardSource(window *glfw.Window, panel *raster.SliderPanel, controller *raster.Controller, display *TitleDisplay) *KeyboardSource {
	src := &KeyboardSource{
		window:     window,
		panel:      panel,
		controller: controller,
		display:    display,
	}
	if s := panel.Selected(); s != nil {
		display.Select(s.Param)
	}

	window.SetKeyCallback(src.keyCallback)
	return src
}

func (s *KeyboardSource) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	if key == glfw.KeyEscape {
		w.SetShouldClose(true)
		return
	}

	k := glfwKeyToKey(key)
	if k == raster.KeyNone {
		return
	}
	if k == raster.KeyTab && mods&glfw.ModShift != 0 {
		k = raster.KeyUp
	}

	ev, changed := s.panel.HandleKey(k)
	if sel := s.panel.Selected(); sel != nil {
		s.display.Select(sel.Param)
	}
	if !changed {
		return
	}
	if err := s.controller.Apply(ev); err != nil {
		raster.Logger().Error("parameter rejected", "event", ev.String(), "err", err)
	}
}

// glfwKeyToKey maps GLFW keys to slider panel keys.
func glfwKeyToKey(key glfw.Key) raster.Key {
	switch key {
	case glfw.KeyTab:
		return raster.KeyTab
	case glfw.KeyLeft:
		return raster.KeyLeft
	case glfw.KeyRight:
		return raster.KeyRight
	case glfw.KeyUp:
		return raster.KeyUp
	case glfw.KeyDown:
		return raster.KeyDown
	case glfw.KeyPageUp:
		return raster.KeyPageUp
	case glfw.KeyPageDown:
		return raster.KeyPageDown
	case glfw.KeyHome:
		return raster.KeyHome
	default:
		return raster.KeyNone
	}
}

// WatchResize redraws through controller whenever the framebuffer changes
// size.
func WatchResize(window *glfw.Window, renderer *raster.Renderer, controller *raster.Controller) {
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		renderer.Resize(width, height)
		controller.Redraw()
	})
}
