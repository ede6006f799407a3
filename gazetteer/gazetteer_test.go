package gazetteer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/branchnet/gazetteer"
	"github.com/katalvlaran/branchnet/geo"
)

func TestDefault(t *testing.T) {
	g := gazetteer.Default()
	assert.Equal(t, 23, g.Len())
	assert.Len(t, gazetteer.DefaultOrder(), 23)
	assert.Equal(t, "Colombo", gazetteer.DefaultOrder()[0])

	c, err := g.Lookup("Colombo")
	require.NoError(t, err)
	assert.Equal(t, geo.Coordinate{Lat: 6.9271, Lon: 79.9612}, c)

	c, err = g.Lookup("  Matale ")
	require.NoError(t, err)
	assert.Equal(t, geo.Coordinate{Lat: 7.4811, Lon: 80.6095}, c)

	names := g.Names()
	assert.Equal(t, "Ampara", names[0])
	assert.IsIncreasing(t, names)
}

func TestLookup_Unknown(t *testing.T) {
	g := gazetteer.Default()

	_, err := g.Lookup("Atlantis")
	assert.ErrorIs(t, err, gazetteer.ErrUnknownPlace)

	// Matching is case-sensitive.
	_, err = g.Lookup("colombo")
	assert.ErrorIs(t, err, gazetteer.ErrUnknownPlace)
}

func TestAdd(t *testing.T) {
	g := gazetteer.New()
	require.NoError(t, g.Add(" Mannar ", geo.Coordinate{Lat: 8.9770, Lon: 79.9044}))
	assert.Equal(t, []string{"Mannar"}, g.Names())

	assert.ErrorIs(t, g.Add("Mannar", geo.Coordinate{Lat: 9, Lon: 80}), gazetteer.ErrDuplicatePlace)
	assert.ErrorIs(t, g.Add("   ", geo.Coordinate{}), gazetteer.ErrEmptyName)
	assert.ErrorIs(t, g.Add("Nowhere", geo.Coordinate{Lat: 120}), geo.ErrInvalidCoordinate)
	assert.Equal(t, 1, g.Len())

	assert.Equal(t, []gazetteer.Entry{{Name: "Mannar", Lat: 8.9770, Lon: 79.9044}}, g.Entries())
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeFile(t, "places.toml", `
[[place]]
name = "Colombo"
lat  = 6.9271
lon  = 79.9612

[[place]]
name = "Kandy"
lat  = 7.2906
lon  = 80.6337
`)
	g, err := gazetteer.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Colombo", "Kandy"}, g.Names())

	c, err := g.Lookup("Kandy")
	require.NoError(t, err)
	assert.Equal(t, 80.6337, c.Lon)
}

func TestLoadFile_YAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml"} {
		path := writeFile(t, "places"+ext, `
place:
  - name: Galle
    lat: 6.0328
    lon: 80.2200
  - name: Jaffna
    lat: 9.6615
    lon: 80.0376
`)
		g, err := gazetteer.LoadFile(path)
		require.NoError(t, err, ext)
		assert.Equal(t, []string{"Galle", "Jaffna"}, g.Names())
	}

	// An empty document is an empty table.
	g, err := gazetteer.LoadFile(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Zero(t, g.Len())
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := gazetteer.LoadFile(writeFile(t, "places.json", `{}`))
	assert.ErrorIs(t, err, gazetteer.ErrUnsupportedFormat)

	_, err = gazetteer.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = gazetteer.LoadFile(writeFile(t, "bad.toml", `
[[place]]
name = "North Pole Plus"
lat  = 95
lon  = 0
`))
	assert.ErrorIs(t, err, gazetteer.ErrInvalidEntry)
	assert.Contains(t, err.Error(), "Lat")

	_, err = gazetteer.LoadFile(writeFile(t, "noname.yaml", "place:\n  - lat: 1\n    lon: 2\n"))
	assert.ErrorIs(t, err, gazetteer.ErrInvalidEntry)

	_, err = gazetteer.LoadFile(writeFile(t, "dup.yaml", "place:\n  - {name: A, lat: 1, lon: 2}\n  - {name: A, lat: 3, lon: 4}\n"))
	assert.ErrorIs(t, err, gazetteer.ErrDuplicatePlace)

	_, err = gazetteer.LoadFile(writeFile(t, "unknown.yaml", "place:\n  - {name: A, lat: 1, lon: 2, elevation: 9}\n"))
	assert.Error(t, err)

	_, err = gazetteer.Parse([]byte(""), "csv")
	assert.ErrorIs(t, err, gazetteer.ErrUnsupportedFormat)
}
