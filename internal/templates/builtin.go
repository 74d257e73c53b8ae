package templates

import (
	"embed"

	"github.com/oh-lucy/themegen/internal/catalog"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var loader = catalog.Loader[*Template]{Kind: "template", Decode: parseTemplate}

// LoadBuiltinTemplates returns the theme templates bundled with themegen.
func LoadBuiltinTemplates() ([]*Template, error) {
	return loader.Layer(catalog.Builtin(builtinFS, "builtin"))
}
