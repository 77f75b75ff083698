package raster

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the demo settings.
type Config struct {
	Variant    string                  `yaml:"variant"`
	Window     WindowConfig            `yaml:"window"`
	ClearColor [4]float32              `yaml:"clear_color"`
	Locale     string                  `yaml:"locale"`
	Verbose    bool                    `yaml:"verbose"`
	Sliders    map[string]SliderConfig `yaml:"sliders"`
}

// WindowConfig is the initial window size and title.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SliderConfig overrides the default range of one parameter. Unset fields
// keep the defaults.
type SliderConfig struct {
	Min  *float32 `yaml:"min"`
	Max  *float32 `yaml:"max"`
	Step *float32 `yaml:"step"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Variant: Variants[0].Name,
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "raster",
		},
		ClearColor: [4]float32{0, 0, 0, 1},
		Locale:     "en",
	}
}

// LoadConfig reads the YAML file at path on top of DefaultConfig.
// A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			Logger().Info("config file not found, using defaults", "path", path)
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Unrecognised top-level keys are logged and ignored.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err == nil {
		known := knownKeys(Config{})
		for key := range raw {
			if !known[key] {
				Logger().Warn("unrecognised config key", "key", key)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func knownKeys(v any) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			keys[name] = true
		}
	}
	return keys
}

// Validate checks the settings for values the demo cannot run with.
func (c Config) Validate() error {
	if _, err := LookupVariant(c.Variant); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if _, err := NewFormatterForLocale(c.Locale); err != nil {
		return err
	}
	for name := range c.Sliders {
		if _, err := ParseParameter(name); err != nil {
			return fmt.Errorf("sliders: %w", err)
		}
	}
	return nil
}

// SlidersFor returns one slider per parameter of v, with configured
// overrides applied and values at the defaults.
func (c Config) SlidersFor(v Variant) ([]Slider, error) {
	params := v.Parameters()
	sliders := make([]Slider, 0, len(params))
	for _, p := range params {
		s := DefaultSlider(p)
		if o, ok := c.Sliders[p.String()]; ok {
			if o.Min != nil {
				s.Min = *o.Min
			}
			if o.Max != nil {
				s.Max = *o.Max
			}
			if o.Step != nil {
				s.Step = *o.Step
			}
		}
		if s.Max < s.Min {
			return nil, fmt.Errorf("slider %s: max %g below min %g", p, s.Max, s.Min)
		}
		if s.Step < 0 {
			return nil, fmt.Errorf("slider %s: negative step %g", p, s.Step)
		}
		if d := p.Default(); d < s.Min || d > s.Max {
			return nil, fmt.Errorf("slider %s: default %g outside [%g, %g]", p, d, s.Min, s.Max)
		}
		sliders = append(sliders, s)
	}
	return sliders, nil
}
