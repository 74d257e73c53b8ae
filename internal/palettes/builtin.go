package palettes

import (
	"embed"

	"github.com/oh-lucy/themegen/internal/catalog"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var loader = catalog.Loader[*Palette]{Kind: "palette", Decode: parsePalette}

func builtinLayer() catalog.Layer {
	return catalog.Builtin(builtinFS, "builtin")
}

// LoadBuiltinPalettes returns the palettes bundled with themegen.
func LoadBuiltinPalettes() ([]*Palette, error) {
	return loader.Layer(builtinLayer())
}
