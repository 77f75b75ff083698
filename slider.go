package raster

// Slider is the value model behind one parameter control.
type Slider struct {
	Param Parameter
	Min   float32
	Max   float32
	// Step snaps values to Min + k*Step. Zero means 1% of the range.
	Step  float32
	Value float32
}

// DefaultSlider returns the slider range used for p when nothing is
// configured.
func DefaultSlider(p Parameter) Slider {
	s := Slider{Param: p, Value: p.Default()}
	switch p {
	case ParamTranslation, ParamTranslationY:
		s.Min, s.Max, s.Step = -1, 1, 0.01
	case ParamScale, ParamScaleX, ParamScaleY:
		s.Min, s.Max, s.Step = 0, 2, 0.01
	case ParamRotation:
		s.Min, s.Max, s.Step = 0, 360, 1
	}
	return s
}

func (s *Slider) step() float32 {
	if s.Step > 0 {
		return s.Step
	}
	return (s.Max - s.Min) / 100 // Default 1% step
}

// Set snaps v to the step grid, clamps it to the range and stores it.
// Returns true if the value was changed.
func (s *Slider) Set(v float32) bool {
	if step := s.step(); step > 0 {
		v = s.Min + float32(int((v-s.Min)/step+0.5))*step
	}
	v = clampf(v, s.Min, s.Max)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Nudge moves the value by steps grid steps. Negative steps move down.
func (s *Slider) Nudge(steps int) bool {
	return s.Set(s.Value + float32(steps)*s.step())
}

// Reset returns the slider to its parameter's default.
func (s *Slider) Reset() bool {
	return s.Set(s.Param.Default())
}

// Ratio returns the position of the value within the range, 0 to 1.
func (s *Slider) Ratio() float32 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Event returns the parameter event carrying the slider's value.
func (s *Slider) Event() ParameterEvent {
	return ParameterEvent{Param: s.Param, Value: s.Value}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
