package raster

import "strings"

// Labels is an in-memory Display that keeps the latest text of each
// parameter and can render them as a single status line.
type Labels struct {
	order    []Parameter
	text     map[Parameter]string
	selected Parameter
	hasSel   bool
	updates  int
}

// NewLabels returns an empty label set listing params in the given order.
func NewLabels(params []Parameter) *Labels {
	return &Labels{
		order: params,
		text:  make(map[Parameter]string, len(params)),
	}
}

// SetLabel implements Display.
func (l *Labels) SetLabel(p Parameter, text string) {
	l.text[p] = text
	l.updates++
}

// Label returns the latest text for p.
func (l *Labels) Label(p Parameter) string { return l.text[p] }

// Updates returns how many times SetLabel was called.
func (l *Labels) Updates() int { return l.updates }

// Select marks p as the parameter under keyboard control.
func (l *Labels) Select(p Parameter) {
	l.selected = p
	l.hasSel = true
}

// Line renders "name: value" pairs separated by two spaces, with the
// selected parameter in brackets.
func (l *Labels) Line() string {
	var b strings.Builder
	for i, p := range l.order {
		if i > 0 {
			b.WriteString("  ")
		}
		sel := l.hasSel && p == l.selected
		if sel {
			b.WriteByte('[')
		}
		b.WriteString(p.String())
		b.WriteString(": ")
		b.WriteString(l.text[p])
		if sel {
			b.WriteByte(']')
		}
	}
	return b.String()
}
