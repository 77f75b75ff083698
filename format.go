package raster

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders parameter values for display using locale-aware digit
// grouping and at most two fraction digits.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter returns a Formatter for tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// NewFormatterForLocale parses a BCP 47 locale such as "en-US" or "de".
// An empty locale selects English.
func NewFormatterForLocale(locale string) (*Formatter, error) {
	if locale == "" {
		return NewFormatter(language.English), nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return NewFormatter(tag), nil
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag { return f.tag }

// Format renders v, e.g. 1234.567 as "1,234.57" in English.
func (f *Formatter) Format(v float32) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return f.printer.Sprint(number.Decimal(float64(v), number.MaxFractionDigits(2)))
}
