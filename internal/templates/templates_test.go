package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oh-lucy/themegen/internal/palettes"
)

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "example.yaml")

	yaml := `name: example
description: Example template
body: |
  name: {{ quote .Name }}
  colors:
    editor.background: {{ color "bg" }}
`

	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	tmpl, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}

	if tmpl.Name != "example" {
		t.Fatalf("expected name example, got %q", tmpl.Name)
	}
	if tmpl.Source != path {
		t.Fatalf("expected source %q, got %q", path, tmpl.Source)
	}
	if tmpl.Type != "dark" {
		t.Fatalf("expected default type dark, got %q", tmpl.Type)
	}
}

func TestLoadTemplateRequiresBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, []byte("name: empty\n"), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	if _, err := LoadTemplate(path); err == nil {
		t.Fatalf("expected error for template without body")
	}
}

func TestRender(t *testing.T) {
	tmpl := &Template{
		Name: "mini",
		Type: "light",
		Body: `name: {{ quote .Name }}
type: {{ .Type }}
colors:
  editor.background: {{ color "bg" }}
  editor.findMatchBackground: {{ alpha "accent" 0.5 }}
tokenColors:
  - scope: [comment]
    settings:
      foreground: {{ color "fg" }}
`,
	}
	colors := map[string]string{"bg": "#101010", "fg": "#eeeeee", "accent": "#6496c8"}

	doc, err := Render(tmpl, "mini-evening", colors)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if doc["name"] != "mini-evening" {
		t.Fatalf("unexpected name: %v", doc["name"])
	}
	if doc["type"] != "light" {
		t.Fatalf("unexpected type: %v", doc["type"])
	}
	workbench, ok := doc["colors"].(map[string]any)
	if !ok {
		t.Fatalf("colors is %T", doc["colors"])
	}
	if workbench["editor.background"] != "#101010" {
		t.Fatalf("unexpected background: %v", workbench["editor.background"])
	}
	if workbench["editor.findMatchBackground"] != "#6496c880" {
		t.Fatalf("unexpected find match: %v", workbench["editor.findMatchBackground"])
	}
	tokens, ok := doc["tokenColors"].([]any)
	if !ok || len(tokens) != 1 {
		t.Fatalf("unexpected tokenColors: %#v", doc["tokenColors"])
	}
}

func TestRenderMissingColor(t *testing.T) {
	tmpl := &Template{Name: "missing", Body: `bg: {{ color "bg" }}`}

	_, err := Render(tmpl, "x", map[string]string{})
	if err == nil {
		t.Fatalf("expected error for missing color")
	}
	if !strings.Contains(err.Error(), ErrColorNotFound.Error()) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderRejectsNonMapping(t *testing.T) {
	tmpl := &Template{Name: "list", Body: "- a\n- b\n"}
	if _, err := Render(tmpl, "x", nil); err == nil {
		t.Fatalf("expected error for non-mapping document")
	}

	tmpl = &Template{Name: "blank", Body: "{{/* nothing */}}"}
	if _, err := Render(tmpl, "x", nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestLoadBuiltinTemplates(t *testing.T) {
	templates, err := LoadBuiltinTemplates()
	if err != nil {
		t.Fatalf("LoadBuiltinTemplates: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 builtin templates, got %d", len(templates))
	}

	for _, tmpl := range templates {
		if tmpl.Source != "builtin" {
			t.Fatalf("expected builtin source, got %q", tmpl.Source)
		}
		if tmpl.Name == "" {
			t.Fatalf("builtin template missing name")
		}
	}
}

func TestBuiltinTemplatesRenderBuiltinPalettes(t *testing.T) {
	templates, err := LoadBuiltinTemplates()
	if err != nil {
		t.Fatalf("LoadBuiltinTemplates: %v", err)
	}
	byName := make(map[string]*Template, len(templates))
	for _, tmpl := range templates {
		byName[tmpl.Name] = tmpl
	}

	builtins, err := palettes.LoadBuiltinPalettes()
	if err != nil {
		t.Fatalf("LoadBuiltinPalettes: %v", err)
	}
	for _, palette := range builtins {
		tmpl, ok := byName[palette.Template]
		if !ok {
			t.Fatalf("palette %s references unknown template %s", palette.Name, palette.Template)
		}
		doc, err := Render(tmpl, palette.Name, palette.Colors)
		if err != nil {
			t.Fatalf("Render %s: %v", palette.Name, err)
		}
		workbench := doc["colors"].(map[string]any)
		if workbench["editor.background"] != palette.Colors["bg"] {
			t.Fatalf("%s: editor.background = %v, want %s", palette.Name, workbench["editor.background"], palette.Colors["bg"])
		}
	}
}

func TestSearchPathsOverrideBuiltin(t *testing.T) {
	dir := t.TempDir()
	override := `name: lucy
body: |
  name: {{ quote .Name }}
`
	if err := os.WriteFile(filepath.Join(dir, "lucy.yaml"), []byte(override), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	templates, err := loadTemplates([]string{dir})
	if err != nil {
		t.Fatalf("loadTemplates: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(templates))
	}
	if templates[0].Source == "builtin" {
		t.Fatalf("expected on-disk lucy to take precedence")
	}
}
