package templates

import (
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/oh-lucy/themegen/internal/catalog"
)

// LoadTemplate reads a single template from disk.
func LoadTemplate(path string) (*Template, error) {
	return loader.File(afero.NewOsFs(), path)
}

// LoadTemplatesFromDir loads all templates from a directory.
func LoadTemplatesFromDir(dir string) ([]*Template, error) {
	return loader.Layer(catalog.Disk(dir))
}

// TemplateSearchPaths returns template search directories in precedence order.
func TemplateSearchPaths(projectDir string) []string {
	return catalog.SearchPaths(projectDir, "templates")
}

// LoadTemplatesFromSearchPaths loads templates from search paths with first-hit
// precedence; builtin templates fill in names no directory defines.
func LoadTemplatesFromSearchPaths(projectDir string) ([]*Template, error) {
	return loadTemplates(TemplateSearchPaths(projectDir))
}

func loadTemplates(paths []string) ([]*Template, error) {
	return loader.Merge(catalog.Layers(paths, catalog.Builtin(builtinFS, "builtin"))...)
}

func parseTemplate(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, err
	}

	tmpl.Name = strings.TrimSpace(tmpl.Name)
	if tmpl.Type == "" {
		tmpl.Type = "dark"
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}

	return &tmpl, nil
}
