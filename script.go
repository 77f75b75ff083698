package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseEvent parses "name value" or "name=value", e.g. "rotationDegrees 90".
func ParseEvent(line string) (ParameterEvent, error) {
	fields := strings.Fields(strings.Replace(line, "=", " ", 1))
	if len(fields) != 2 {
		return ParameterEvent{}, fmt.Errorf("malformed event %q: want \"name value\"", line)
	}
	p, err := ParseParameter(fields[0])
	if err != nil {
		return ParameterEvent{}, err
	}
	v, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return ParameterEvent{}, fmt.Errorf("value for %s: %w", p, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ParameterEvent{}, fmt.Errorf("value for %s: %q is not finite", p, fields[1])
	}
	return ParameterEvent{Param: p, Value: float32(v)}, nil
}

// Replay reads one event per line from r and applies each to c in order.
// Blank lines and lines starting with '#' are skipped. Replay stops at the
// first bad line.
func Replay(r io.Reader, c *Controller) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ev, err := ParseEvent(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := c.Apply(ev); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}
