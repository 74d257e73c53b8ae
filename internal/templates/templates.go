// Package templates provides theme template loading and rendering.
package templates

import (
	"errors"
	"strings"
)

var (
	// ErrTemplateNameRequired is returned when a template has no name.
	ErrTemplateNameRequired = errors.New("template name is required")
	// ErrTemplateBodyRequired is returned when a template has no body.
	ErrTemplateBodyRequired = errors.New("template body is required")
	// ErrTemplateNotFound is returned when a template is not found.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrColorNotFound is returned when a template references a color the table lacks.
	ErrColorNotFound = errors.New("color not found")
)

// Template is a theme document skeleton. Body is YAML with text/template
// actions; it is rendered against a color table and decoded into a Document.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"` // dark or light
	Body        string `yaml:"body"`
	Source      string `yaml:"-"` // file path or "builtin"
}

// Document is a rendered theme, ready to be serialized.
type Document map[string]any

// EntryName implements catalog.Entry.
func (t *Template) EntryName() string { return t.Name }

// SetSource implements catalog.Entry.
func (t *Template) SetSource(source string) { t.Source = source }

// Validate checks that the template can be rendered.
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrTemplateNameRequired
	}
	if strings.TrimSpace(t.Body) == "" {
		return ErrTemplateBodyRequired
	}
	return nil
}
