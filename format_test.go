package raster_test

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/go-theft-auto/raster"
)

func TestFormatterFormat(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		in   float32
		want string
	}{
		{language.English, 0, "0"},
		{language.English, 1, "1"},
		{language.English, 0.5, "0.5"},
		{language.English, 0.29999998, "0.3"},
		{language.English, -0.75, "-0.75"},
		{language.English, 90, "90"},
		{language.English, 1234.567, "1,234.57"},
		{language.German, 1234.567, "1.234,57"},
		{language.German, 0.5, "0,5"},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String()+"/"+tt.want, func(t *testing.T) {
			if got := raster.NewFormatter(tt.tag).Format(tt.in); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatterNegativeZero(t *testing.T) {
	negZero := float32(0)
	negZero = -negZero
	if got := raster.NewFormatter(language.English).Format(negZero); got != "0" {
		t.Errorf("Format(-0) = %q, want \"0\"", got)
	}
}

func TestNewFormatterForLocale(t *testing.T) {
	f, err := raster.NewFormatterForLocale("")
	if err != nil || f.Locale() != language.English {
		t.Errorf("empty locale = %v, %v; want English", f, err)
	}

	f, err = raster.NewFormatterForLocale("de-DE")
	if err != nil {
		t.Fatal(err)
	}
	if base, _ := f.Locale().Base(); base.String() != "de" {
		t.Errorf("locale base = %s, want de", base)
	}

	if _, err := raster.NewFormatterForLocale("not a locale!"); err == nil {
		t.Error("malformed locale accepted")
	}
}
