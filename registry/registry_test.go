package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvg/dtype"
	"github.com/katalvlaran/rvg/registry"
)

const schema = `
types:
  simple:
    - {name: f0, type: float32}
    - {name: f1, type: int64}
    - {name: f2, type: int64}
  with_array:
    - {name: i, type: int8}
    - {name: a, type: simple, shape: [3]}
  grid:
    - {name: cells, type: np.uint8, shape: [2, 2]}
`

func TestLoadAndLookup(t *testing.T) {
	t.Parallel()

	r, err := registry.Load([]byte(schema))
	require.NoError(t, err)
	assert.Equal(t, []string{"grid", "simple", "with_array"}, r.Names())

	d, err := r.Lookup("with_array")
	require.NoError(t, err)
	assert.Equal(t, "{i: int8, a: {f0: float32, f1: int64, f2: int64}[3]}", d.String())
	assert.True(t, dtype.IsRecord(d))

	d, err = r.Lookup("grid")
	require.NoError(t, err)
	assert.Equal(t, "{cells: uint8[2,2]}", d.String())

	d, err = r.Lookup("double")
	require.NoError(t, err)
	assert.Equal(t, dtype.Float64, d)

	// memoized: the same descriptor comes back
	first, err := r.Lookup("simple")
	require.NoError(t, err)
	second, err := r.Lookup("simple")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	r, err := registry.Load([]byte(`
types:
  broken:
    - {name: x, type: complex128}
`))
	require.NoError(t, err)

	_, err = r.Lookup("nope")
	require.ErrorIs(t, err, dtype.ErrUnsupportedType)
	_, err = r.Lookup("broken")
	require.ErrorIs(t, err, dtype.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "complex128")
}

func TestLookupCycle(t *testing.T) {
	t.Parallel()

	r, err := registry.Load([]byte(`
types:
  a:
    - {name: b, type: b}
  b:
    - {name: x, type: int8}
    - {name: a, type: a, shape: [2]}
  self:
    - {name: me, type: self}
`))
	require.NoError(t, err)

	_, err = r.Lookup("a")
	require.ErrorIs(t, err, registry.ErrCycle)
	assert.Contains(t, err.Error(), "a -> b -> a")

	_, err = r.Lookup("self")
	require.ErrorIs(t, err, registry.ErrCycle)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "types: [\n"},
		{"unknown key", "types:\n  t:\n    - {name: a, type: int8, size: 3}\n"},
		{"builtin shadow", "types:\n  int8:\n    - {name: a, type: int8}\n"},
		{"no fields", "types:\n  t: []\n"},
		{"missing type", "types:\n  t:\n    - {name: a}\n"},
		{"duplicate field", "types:\n  t:\n    - {name: a, type: int8}\n    - {name: a, type: int16}\n"},
		{"bad shape", "types:\n  t:\n    - {name: a, type: int8, shape: [0]}\n"},
	}
	for _, tc := range tests {
		_, err := registry.Load([]byte(tc.doc))
		require.ErrorIs(t, err, registry.ErrSchema, tc.name)
	}

	r, err := registry.Load(nil)
	require.NoError(t, err)
	assert.Empty(t, r.Names())
}

func TestDefine(t *testing.T) {
	t.Parallel()

	r := registry.New()
	require.NoError(t, r.Define("pair", registry.FieldDef{Name: "x", Type: "int32"}, registry.FieldDef{Name: "y", Type: "int32"}))
	require.ErrorIs(t, r.Define("pair", registry.FieldDef{Name: "x", Type: "int8"}), registry.ErrSchema)
	require.ErrorIs(t, r.Define(""), registry.ErrSchema)

	d, err := r.Lookup("pair")
	require.NoError(t, err)
	assert.Equal(t, "{x: int32, y: int32}", d.String())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(schema), 0o600))

	r, err := registry.LoadFile(path)
	require.NoError(t, err)
	_, err = r.Lookup("with_array")
	require.NoError(t, err)

	_, err = registry.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
