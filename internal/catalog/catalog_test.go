package catalog

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name   string
	Source string
}

func (i *item) EntryName() string       { return i.Name }
func (i *item) SetSource(source string) { i.Source = source }

var errEmpty = errors.New("empty item")

func decodeItem(data []byte) (*item, error) {
	name := strings.TrimSpace(string(data))
	if name == "" {
		return nil, errEmpty
	}
	return &item{Name: name}, nil
}

var items = Loader[*item]{Kind: "item", Decode: decodeItem}

func memLayer(t *testing.T, dir string, files map[string]string) Layer {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(body), 0o644))
	}
	return Layer{Fs: fs, Dir: dir}
}

func names(entries []*item) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestLayerFiltersAndSorts(t *testing.T) {
	layer := memLayer(t, "defs", map[string]string{
		"b.yaml":    "beta",
		"a.YML":     "alpha",
		"notes.txt": "ignored",
	})

	entries, err := items.Layer(layer)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names(entries))
	assert.Equal(t, filepath.Join("defs", "b.yaml"), entries[1].Source)
}

func TestLayerMissingDir(t *testing.T) {
	entries, err := items.Layer(Layer{Fs: afero.NewMemMapFs(), Dir: "nowhere"})
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = items.Layer(Disk(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLayerDecodeError(t *testing.T) {
	layer := memLayer(t, "defs", map[string]string{"bad.yaml": "  "})

	_, err := items.Layer(layer)
	require.ErrorIs(t, err, errEmpty)
	assert.Contains(t, err.Error(), "parse item")
}

func TestFileRequiresPath(t *testing.T) {
	_, err := items.File(afero.NewMemMapFs(), " ")
	require.EqualError(t, err, "item path is required")
}

func TestMergeFirstHitWins(t *testing.T) {
	builtin := Builtin(fstest.MapFS{
		"builtin/one.yaml":   {Data: []byte("one")},
		"builtin/three.yaml": {Data: []byte("three")},
	}, "builtin")
	project := memLayer(t, "project", map[string]string{"one.yaml": "one"})
	user := memLayer(t, "user", map[string]string{"two.yaml": "two", "one.yaml": "one"})

	entries, err := items.Merge(project, user, builtin)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, names(entries))
	assert.Equal(t, filepath.Join("project", "one.yaml"), entries[0].Source)
	assert.Equal(t, BuiltinSource, entries[2].Source)
}

func TestSearchPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths := SearchPaths("proj", "palettes")
	assert.Equal(t, []string{
		filepath.Join("proj", ".themegen", "palettes"),
		filepath.Join(home, ".config", "themegen", "palettes"),
	}, paths)

	layers := Layers(paths, Builtin(fstest.MapFS{}, "builtin"))
	require.Len(t, layers, 3)
	assert.Equal(t, paths[0], layers[0].Dir)
	assert.Equal(t, BuiltinSource, layers[2].Source)
}
