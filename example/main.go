// Example opens a window showing one raster variant and redraws it whenever a
// transform parameter changes.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Controls: Up/Down or Tab select a parameter, Left/Right change it by one
// step, PageUp/PageDown by ten, Home resets it, Escape quits. The window
// title shows the current values.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/raster"
	"github.com/go-theft-auto/raster/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "raster.yaml", "path to the YAML config file")
	variantName := flag.String("variant", "", "variant to show (overrides config)")
	locale := flag.String("locale", "", "locale for value labels (overrides config)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	cfg, err := raster.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *variantName != "" {
		cfg.Variant = *variantName
	}
	if *locale != "" {
		cfg.Locale = *locale
	}
	cfg.Verbose = cfg.Verbose || *verbose
	if err := cfg.Validate(); err != nil {
		return err
	}
	raster.SetVerbose(cfg.Verbose)

	variant, err := raster.LookupVariant(cfg.Variant)
	if err != nil {
		return err
	}
	sliders, err := cfg.SlidersFor(variant)
	if err != nil {
		return err
	}
	format, err := raster.NewFormatterForLocale(cfg.Locale)
	if err != nil {
		return err
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	vs, fs := opengl.ShaderSources(variant)
	scene, err := raster.NewScene(opengl.NewDevice(), variant, vs, fs, cfg.ClearColor)
	if err != nil {
		return fmt.Errorf("scene setup: %w", err)
	}
	defer scene.Delete()

	w, h := window.GetFramebufferSize()
	scene.Renderer().Resize(w, h)

	display := opengl.NewTitleDisplay(window, cfg.Window.Title+" ["+variant.Name+"]", variant.Parameters())
	drawer := raster.DrawerFunc(func(state *raster.TransformState) {
		scene.Draw(state)
		window.SwapBuffers()
	})
	controller := raster.NewController(variant, raster.NewTransformState(), display, drawer, format)

	opengl.NewKeyboardSource(window, raster.NewSliderPanel(sliders), controller, display)
	opengl.WatchResize(window, scene.Renderer(), controller)

	// First frame shows the defaults before any input arrives.
	controller.Start()

	// No frame loop: frames are drawn from the event callbacks.
	for !window.ShouldClose() {
		glfw.WaitEvents()
	}

	return nil
}
