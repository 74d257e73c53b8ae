// Package catalog loads named YAML definitions from layered sources: project
// and user directories first, then the set embedded in the binary. The first
// definition of a name wins.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// BuiltinSource is recorded as the source of embedded definitions.
const BuiltinSource = "builtin"

// Entry is a definition a catalog can index.
type Entry interface {
	EntryName() string
	SetSource(source string)
}

// Decoder parses and validates one definition file.
type Decoder[E Entry] func(data []byte) (E, error)

// Layer is one directory definitions are read from.
type Layer struct {
	Fs  afero.Fs
	Dir string
	// Source is recorded on every entry of the layer. Empty records the file path.
	Source string
}

// Builtin returns a layer over dir inside an embedded filesystem.
func Builtin(fsys fs.FS, dir string) Layer {
	return Layer{Fs: afero.FromIOFS{FS: fsys}, Dir: dir, Source: BuiltinSource}
}

// Disk returns a layer over an OS directory.
func Disk(dir string) Layer {
	return Layer{Fs: afero.NewOsFs(), Dir: dir}
}

// SearchPaths returns the override directories for kind ("palettes",
// "templates") in precedence order.
func SearchPaths(projectDir, kind string) []string {
	paths := make([]string, 0, 2)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".themegen", kind))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "themegen", kind))
	}
	return paths
}

// Loader reads definitions of one kind.
type Loader[E Entry] struct {
	// Kind names the definition in errors, e.g. "palette".
	Kind   string
	Decode Decoder[E]
}

// File reads a single definition.
func (l Loader[E]) File(fsys afero.Fs, path string) (E, error) {
	var zero E
	if strings.TrimSpace(path) == "" {
		return zero, fmt.Errorf("%s path is required", l.Kind)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return zero, fmt.Errorf("read %s %s: %w", l.Kind, path, err)
	}

	entry, err := l.Decode(data)
	if err != nil {
		return zero, fmt.Errorf("parse %s %s: %w", l.Kind, path, err)
	}
	entry.SetSource(path)
	return entry, nil
}

// Layer reads every .yaml and .yml file in the layer, sorted by name. A missing
// directory yields no entries.
func (l Loader[E]) Layer(layer Layer) ([]E, error) {
	if strings.TrimSpace(layer.Dir) == "" {
		return []E{}, nil
	}

	infos, err := afero.ReadDir(layer.Fs, layer.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []E{}, nil
		}
		return nil, fmt.Errorf("read %ss dir %s: %w", l.Kind, layer.Dir, err)
	}

	entries := make([]E, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(info.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		entry, err := l.File(layer.Fs, filepath.Join(layer.Dir, info.Name()))
		if err != nil {
			return nil, err
		}
		if layer.Source != "" {
			entry.SetSource(layer.Source)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EntryName() < entries[j].EntryName()
	})
	return entries, nil
}

// Merge reads layers in order. Later definitions of an already-seen name are
// skipped; the result keeps first-seen order.
func (l Loader[E]) Merge(layers ...Layer) ([]E, error) {
	seen := make(map[string]struct{})
	resolved := make([]E, 0)

	for _, layer := range layers {
		entries, err := l.Layer(layer)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if _, exists := seen[entry.EntryName()]; exists {
				continue
			}
			seen[entry.EntryName()] = struct{}{}
			resolved = append(resolved, entry)
		}
	}
	return resolved, nil
}

// Layers returns disk layers for dirs followed by builtin.
func Layers(dirs []string, builtin Layer) []Layer {
	layers := make([]Layer, 0, len(dirs)+1)
	for _, dir := range dirs {
		layers = append(layers, Disk(dir))
	}
	return append(layers, builtin)
}
