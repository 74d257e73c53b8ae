package palettes

import "github.com/oh-lucy/themegen/internal/catalog"

// PaletteSearchPaths returns palette search directories in precedence order.
func PaletteSearchPaths(projectDir string) []string {
	return catalog.SearchPaths(projectDir, "palettes")
}

// LoadPalettesFromSearchPaths loads palettes from search paths with
// first-hit precedence, falling back to the builtin palettes.
func LoadPalettesFromSearchPaths(projectDir string) ([]*Palette, error) {
	return loadPalettes(PaletteSearchPaths(projectDir))
}

func loadPalettes(paths []string) ([]*Palette, error) {
	return loader.Merge(catalog.Layers(paths, builtinLayer())...)
}

// FindPalette loads a specific palette by name.
func FindPalette(projectDir, name string) (*Palette, error) {
	palettes, err := LoadPalettesFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	for _, palette := range palettes {
		if palette.Name == name {
			return palette, nil
		}
	}
	return nil, ErrPaletteNotFound
}
