package templates

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/oh-lucy/themegen/internal/color"
)

type renderData struct {
	Name   string
	Type   string
	Colors map[string]string
}

// Render fills tmpl with the variant name and color table and decodes the
// result into a Document. Color lookups fail on unknown keys.
func Render(tmpl *Template, name string, colors map[string]string) (Document, error) {
	if tmpl == nil {
		return nil, fmt.Errorf("template is required")
	}

	lookup := func(key string) (string, error) {
		value, ok := colors[key]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrColorNotFound, key)
		}
		return value, nil
	}

	funcs := template.FuncMap{
		"quote": strconv.Quote,
		"color": func(key string) (string, error) {
			value, err := lookup(key)
			if err != nil {
				return "", err
			}
			return strconv.Quote(value), nil
		},
		"alpha": func(key string, a float64) (string, error) {
			value, err := lookup(key)
			if err != nil {
				return "", err
			}
			c, err := color.Parse(value)
			if err != nil {
				return "", fmt.Errorf("color %q: %w", key, err)
			}
			return strconv.Quote(c.WithAlpha(a).Hex()), nil
		},
	}

	parsed, err := template.New(tmpl.Name).
		Funcs(funcs).
		Option("missingkey=error").
		Parse(tmpl.Body)
	if err != nil {
		return nil, fmt.Errorf("parse template %q: %w", tmpl.Name, err)
	}

	var out bytes.Buffer
	data := renderData{Name: name, Type: tmpl.Type, Colors: colors}
	if err := parsed.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("render template %q: %w", tmpl.Name, err)
	}

	var doc Document
	if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("decode template %q output: %w", tmpl.Name, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("template %q rendered an empty document", tmpl.Name)
	}

	return doc, nil
}
