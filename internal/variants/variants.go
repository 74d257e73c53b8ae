// Package variants composes palettes and color transforms into buildable theme variants.
package variants

import (
	"errors"
	"fmt"
	"sort"

	"github.com/oh-lucy/themegen/internal/color"
	"github.com/oh-lucy/themegen/internal/palettes"
	"github.com/oh-lucy/themegen/internal/templates"
)

var (
	// ErrUnknownVariant is returned when a variant name is not registered.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrDuplicateVariant is returned when two combinations produce the same name.
	ErrDuplicateVariant = errors.New("duplicate variant")
)

// Variant is the inspectable registry record for one theme build.
type Variant struct {
	Name      string          `json:"name"`
	Palette   string          `json:"palette"`
	Template  string          `json:"template"`
	Transform color.Transform `json:"transform"`
}

// Descriptor is a Variant resolved against its palette and template.
type Descriptor struct {
	Variant
	Colors        map[string]string
	ThemeTemplate *templates.Template
}

// Registry holds every palette x transform combination, keyed by variant name.
type Registry struct {
	descriptors map[string]Descriptor
	names       []string
}

// New builds a registry from the product of palettes and transforms. Every
// palette's template must be present in tmpls.
func New(pals []*palettes.Palette, tmpls []*templates.Template, transforms []color.Transform) (*Registry, error) {
	byName := make(map[string]*templates.Template, len(tmpls))
	for _, tmpl := range tmpls {
		byName[tmpl.Name] = tmpl
	}

	r := &Registry{descriptors: make(map[string]Descriptor)}
	for _, palette := range pals {
		tmpl, ok := byName[palette.Template]
		if !ok {
			return nil, fmt.Errorf("palette %s: %w: %s", palette.Name, templates.ErrTemplateNotFound, palette.Template)
		}
		for _, transform := range transforms {
			if !transform.Valid() {
				return nil, fmt.Errorf("%w: %q", color.ErrUnknownTransform, string(transform))
			}
			name := palette.Name + transform.Suffix()
			if _, exists := r.descriptors[name]; exists {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateVariant, name)
			}
			r.descriptors[name] = Descriptor{
				Variant: Variant{
					Name:      name,
					Palette:   palette.Name,
					Template:  tmpl.Name,
					Transform: transform,
				},
				Colors:        palette.Colors,
				ThemeTemplate: tmpl,
			}
			r.names = append(r.names, name)
		}
	}
	sort.Strings(r.names)

	return r, nil
}

// Load builds the registry from palettes and templates found on the search
// paths rooted at projectDir, combined with every registered transform.
func Load(projectDir string) (*Registry, error) {
	pals, err := palettes.LoadPalettesFromSearchPaths(projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load palettes: %w", err)
	}
	tmpls, err := templates.LoadTemplatesFromSearchPaths(projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return New(pals, tmpls, color.Transforms)
}

// Resolve returns the descriptor registered under name.
func (r *Registry) Resolve(name string) (Descriptor, error) {
	d, ok := r.descriptors[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return d, nil
}

// Select resolves names in order. With no names it returns every descriptor.
func (r *Registry) Select(names ...string) ([]Descriptor, error) {
	if len(names) == 0 {
		return r.Descriptors(), nil
	}
	out := make([]Descriptor, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		d, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Descriptors returns every descriptor sorted by name.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.descriptors[name])
	}
	return out
}

// Variants returns the registry records sorted by name.
func (r *Registry) Variants() []Variant {
	out := make([]Variant, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.descriptors[name].Variant)
	}
	return out
}

// Names returns the registered variant names in sorted order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}
