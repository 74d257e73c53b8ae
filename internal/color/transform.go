package color

import (
	"errors"
	"fmt"
)

// Transform names a color transform applied to every palette value.
type Transform string

const (
	// Identity leaves values untouched.
	Identity Transform = "identity"
	// EveningShift warms and dims a palette while roughly keeping its brightness.
	EveningShift Transform = "evening"
)

// ErrUnknownTransform is returned for a transform name that is not registered.
var ErrUnknownTransform = errors.New("unknown transform")

// Transforms lists the registered transforms in a stable order.
var Transforms = []Transform{Identity, EveningShift}

// Evening shifts red up and green down in proportion to how dark the color
// is, then solves blue from the original channel sum. Blue is derived from the
// clamped red and green, so the sum is only approximately kept at the extremes.
func Evening(c Color) Color {
	sum := c.Sum()
	shift := 1 - sum/800

	r := clamp(c.R * (1 + 0.175*shift))
	g := clamp(c.G * (1 - 0.01*shift))
	b := clamp(sum - (r + g))

	return Color{R: r, G: g, B: b, A: c.A}
}

// Valid reports whether t is a registered transform.
func (t Transform) Valid() bool {
	switch t {
	case Identity, EveningShift:
		return true
	}
	return false
}

// Suffix is appended to a palette name to form a variant name.
func (t Transform) Suffix() string {
	if t == Identity {
		return ""
	}
	return "-" + string(t)
}

// Apply transforms a color string. Identity returns value unchanged, byte for byte.
func (t Transform) Apply(value string) (string, error) {
	switch t {
	case Identity:
		return value, nil
	case EveningShift:
		c, err := Parse(value)
		if err != nil {
			return "", err
		}
		if err := c.Validate(); err != nil {
			return "", err
		}
		return Evening(c).Hex(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransform, string(t))
	}
}

// ApplyTable returns a new table with t applied to every value; keys are kept.
func (t Transform) ApplyTable(table map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(table))
	for key, value := range table {
		shifted, err := t.Apply(value)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", key, err)
		}
		out[key] = shifted
	}
	return out, nil
}
