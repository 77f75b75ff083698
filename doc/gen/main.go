// Command gen renders reference frames of the built-in variants, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/raster"
	"github.com/go-theft-auto/raster/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single captured frame.
type screenshot struct {
	name    string // filename without extension
	variant string // built-in variant name
	script  string // parameter events applied before capture, one per line
}

const size = 400

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(size, size, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "quad_identity", variant: "quad"},
		{
			name: "quad_rotated_shifted", variant: "quad",
			script: "translation 0.2\nrotationDegrees 90",
		},
		{
			name: "quad_xy_stretched", variant: "quad-xy",
			script: "scaleX 1.5\nscaleY 0.5\nrotationDegrees 30\ntranslationY -0.25",
		},
		{
			name: "cube_rotated", variant: "cube",
			script: "scale 0.8\nrotationDegrees 45",
		},
	}

	dev := opengl.NewDevice()
	for _, s := range shots {
		if err := capture(dev, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, size, size)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(dev raster.Device, s screenshot, outDir string) error {
	variant, err := raster.LookupVariant(s.variant)
	if err != nil {
		return err
	}

	vs, fs := opengl.ShaderSources(variant)
	scene, err := raster.NewScene(dev, variant, vs, fs, [4]float32{0, 0, 0, 1})
	if err != nil {
		return err
	}
	defer scene.Delete()
	scene.Renderer().Resize(size, size)

	controller := raster.NewController(variant, raster.NewTransformState(),
		raster.NewLabels(variant.Parameters()), scene, nil)
	controller.Start()
	if err := raster.Replay(strings.NewReader(s.script), controller); err != nil {
		return err
	}

	pixels := make([]byte, size*size*4)
	gl.ReadPixels(0, 0, size, size, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically: GL's origin is bottom-left.
	rowLen := size * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < size/2; y++ {
		top := y * rowLen
		bot := (size - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
