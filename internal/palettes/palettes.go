// Package palettes provides base color palette loading.
package palettes

import (
	"errors"
	"fmt"
	"sort"

	"github.com/oh-lucy/themegen/internal/color"
)

var (
	// ErrPaletteNameRequired is returned when a palette has no name.
	ErrPaletteNameRequired = errors.New("palette name is required")
	// ErrPaletteTemplateRequired is returned when a palette names no template.
	ErrPaletteTemplateRequired = errors.New("palette template is required")
	// ErrPaletteNoColors is returned when a palette has no colors.
	ErrPaletteNoColors = errors.New("palette must have at least one color")
	// ErrPaletteNotFound is returned when a palette is not found.
	ErrPaletteNotFound = errors.New("palette not found")
)

// PaletteColorError describes an unparseable palette color.
type PaletteColorError struct {
	Key   string
	Value string
	Err   error
}

func (e *PaletteColorError) Error() string {
	return fmt.Sprintf("palette color %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *PaletteColorError) Unwrap() error {
	return e.Err
}

// Palette is a named table of base colors and the template it renders with.
type Palette struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description" json:"description,omitempty"`
	Template    string            `yaml:"template" json:"template"`
	Colors      map[string]string `yaml:"colors" json:"colors"`
	Source      string            `yaml:"-" json:"source"` // file path or "builtin"
}

// EntryName implements catalog.Entry.
func (p *Palette) EntryName() string { return p.Name }

// SetSource implements catalog.Entry.
func (p *Palette) SetSource(source string) { p.Source = source }

// Keys returns the color keys in sorted order.
func (p *Palette) Keys() []string {
	keys := make([]string, 0, len(p.Colors))
	for key := range p.Colors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that the palette is complete and every color parses.
func (p *Palette) Validate() error {
	if p.Name == "" {
		return ErrPaletteNameRequired
	}
	if p.Template == "" {
		return ErrPaletteTemplateRequired
	}
	if len(p.Colors) == 0 {
		return ErrPaletteNoColors
	}
	for _, key := range p.Keys() {
		if _, err := color.Parse(p.Colors[key]); err != nil {
			return &PaletteColorError{Key: key, Value: p.Colors[key], Err: err}
		}
	}
	return nil
}
