package palettes

import (
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/oh-lucy/themegen/internal/catalog"
)

// LoadPalette reads a single palette from disk.
func LoadPalette(path string) (*Palette, error) {
	return loader.File(afero.NewOsFs(), path)
}

// LoadPalettesFromDir loads all palettes from a directory. A missing
// directory yields no palettes.
func LoadPalettesFromDir(dir string) ([]*Palette, error) {
	return loader.Layer(catalog.Disk(dir))
}

func parsePalette(data []byte) (*Palette, error) {
	var palette Palette
	if err := yaml.Unmarshal(data, &palette); err != nil {
		return nil, err
	}

	palette.Name = strings.TrimSpace(palette.Name)
	palette.Template = strings.TrimSpace(palette.Template)
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	return &palette, nil
}
