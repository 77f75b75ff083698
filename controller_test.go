package raster_test

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/raster"
)

// recordingDrawer keeps a copy of the transform of every frame.
type recordingDrawer struct {
	frames []raster.TransformState
}

func (d *recordingDrawer) Draw(state *raster.TransformState) {
	d.frames = append(d.frames, *state)
}

func newTestController(t *testing.T, variant string) (*raster.Controller, *raster.Labels, *recordingDrawer) {
	t.Helper()
	v, err := raster.LookupVariant(variant)
	if err != nil {
		t.Fatal(err)
	}
	labels := raster.NewLabels(v.Parameters())
	drawer := &recordingDrawer{}
	return raster.NewController(v, raster.NewTransformState(), labels, drawer, nil), labels, drawer
}

func TestControllerStart(t *testing.T) {
	c, labels, drawer := newTestController(t, "quad")
	c.Start()
	c.Start()

	if len(drawer.frames) != 1 {
		t.Fatalf("%d frames after Start, want 1", len(drawer.frames))
	}
	if drawer.frames[0] != *raster.NewTransformState() {
		t.Errorf("first frame = %+v, want defaults", drawer.frames[0])
	}
	want := map[raster.Parameter]string{
		raster.ParamTranslation: "0",
		raster.ParamScale:       "1",
		raster.ParamRotation:    "0",
	}
	for p, text := range want {
		if got := labels.Label(p); got != text {
			t.Errorf("label %s = %q, want %q", p, got, text)
		}
	}
	if labels.Updates() != 3 {
		t.Errorf("%d label updates, want 3", labels.Updates())
	}
}

func TestControllerApplyOneRenderPerEvent(t *testing.T) {
	c, labels, drawer := newTestController(t, "quad")
	c.Start()

	events := []raster.ParameterEvent{
		{Param: raster.ParamTranslation, Value: 0.25},
		{Param: raster.ParamRotation, Value: 45},
		{Param: raster.ParamScale, Value: 1.5},
		{Param: raster.ParamRotation, Value: 90},
	}
	for _, ev := range events {
		if err := c.Apply(ev); err != nil {
			t.Fatalf("Apply(%v): %v", ev, err)
		}
	}

	if len(drawer.frames) != 1+len(events) {
		t.Fatalf("%d frames, want %d", len(drawer.frames), 1+len(events))
	}
	if labels.Updates() != 3+len(events) {
		t.Errorf("%d label updates, want %d", labels.Updates(), 3+len(events))
	}

	// Frames follow event order.
	if got := drawer.frames[2].RotationDegrees; got != 45 {
		t.Errorf("frame 2 rotation = %v, want 45", got)
	}
	last := drawer.frames[len(drawer.frames)-1]
	want := raster.TransformState{
		Translation:     mgl32.Vec3{0.25, 0, 0},
		Scale:           mgl32.Vec3{1.5, 1.5, 1},
		RotationDegrees: 90,
	}
	if last != want {
		t.Errorf("last frame = %+v, want %+v", last, want)
	}
	if got := labels.Label(raster.ParamScale); got != "1.5" {
		t.Errorf("scale label = %q, want 1.5", got)
	}
}

func TestControllerApplyStartsImplicitly(t *testing.T) {
	c, labels, drawer := newTestController(t, "quad")
	if err := c.Apply(raster.ParameterEvent{Param: raster.ParamRotation, Value: 10}); err != nil {
		t.Fatal(err)
	}
	if len(drawer.frames) != 2 {
		t.Fatalf("%d frames, want initial frame plus one", len(drawer.frames))
	}
	if drawer.frames[0].RotationDegrees != 0 || drawer.frames[1].RotationDegrees != 10 {
		t.Errorf("frames = %+v", drawer.frames)
	}
	if labels.Label(raster.ParamScale) != "1" {
		t.Errorf("initial labels not pushed")
	}
}

func TestControllerRejectsUnsupportedParameter(t *testing.T) {
	c, labels, drawer := newTestController(t, "quad")
	c.Start()

	err := c.Apply(raster.ParameterEvent{Param: raster.ParamTranslationY, Value: 0.5})
	if !errors.Is(err, raster.ErrUnknownParameter) {
		t.Fatalf("err = %v, want ErrUnknownParameter", err)
	}
	if len(drawer.frames) != 1 || labels.Updates() != 3 {
		t.Error("rejected event produced a render or label update")
	}
	if c.State().Translation.Y() != 0 {
		t.Error("rejected event changed the state")
	}
}

func TestControllerVariants(t *testing.T) {
	t.Run("quad-xy non-uniform scale", func(t *testing.T) {
		c, _, drawer := newTestController(t, "quad-xy")
		for _, ev := range []raster.ParameterEvent{
			{Param: raster.ParamTranslation, Value: 0.1},
			{Param: raster.ParamTranslationY, Value: -0.2},
			{Param: raster.ParamScaleX, Value: 2},
			{Param: raster.ParamScaleY, Value: 0.5},
		} {
			if err := c.Apply(ev); err != nil {
				t.Fatal(err)
			}
		}
		got := drawer.frames[len(drawer.frames)-1]
		if got.Translation != (mgl32.Vec3{0.1, -0.2, 0}) || got.Scale != (mgl32.Vec3{2, 0.5, 1}) {
			t.Errorf("state = %+v", got)
		}
		if err := c.Apply(raster.ParameterEvent{Param: raster.ParamScale, Value: 1}); !errors.Is(err, raster.ErrUnknownParameter) {
			t.Errorf("uniform scale on quad-xy: err = %v", err)
		}
	})

	t.Run("cube uniform scale includes z", func(t *testing.T) {
		c, _, _ := newTestController(t, "cube")
		if err := c.Apply(raster.ParameterEvent{Param: raster.ParamScale, Value: 0.5}); err != nil {
			t.Fatal(err)
		}
		if got := c.State().Scale; got != (mgl32.Vec3{0.5, 0.5, 0.5}) {
			t.Errorf("scale = %v, want 0.5 on all axes", got)
		}
	})
}

func TestControllerRedraw(t *testing.T) {
	c, _, drawer := newTestController(t, "quad")
	c.Redraw()
	c.Redraw()
	if len(drawer.frames) != 2 {
		t.Errorf("%d frames, want 2", len(drawer.frames))
	}
}

func TestControllerDrivesScene(t *testing.T) {
	dev := newFakeDevice()
	scene := newTestScene(t, dev, "quad")
	v := scene.Variant()
	c := raster.NewController(v, raster.NewTransformState(), raster.NewLabels(v.Parameters()), scene, nil)

	c.Start()
	if err := c.Apply(raster.ParameterEvent{Param: raster.ParamTranslation, Value: 0.2}); err != nil {
		t.Fatal(err)
	}
	if err := c.Apply(raster.ParameterEvent{Param: raster.ParamRotation, Value: 90}); err != nil {
		t.Fatal(err)
	}

	if scene.Renderer().Frames() != 3 {
		t.Errorf("Frames = %d, want 3", scene.Renderer().Frames())
	}
	want := raster.TranslationMatrix(mgl32.Vec3{0.2, 0, 0}).Mul4(raster.RotationMatrixZ(90))
	if !matNear(dev.lastMatrix, want) {
		t.Errorf("uploaded %v, want %v", dev.lastMatrix, want)
	}
}
