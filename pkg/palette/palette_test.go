package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/gallery"
)

func TestParseColor(t *testing.T) {
	cases := map[string]gallery.Color{
		"#ff7800":     gallery.RGB(255, 120, 0),
		"FF7800":      gallery.RGB(255, 120, 0),
		"255,120,0":   gallery.RGB(255, 120, 0),
		" 30, 30 ,30": gallery.RGB(30, 30, 30),
		"orange":      gallery.RGB(255, 165, 0),
		"Black":       gallery.RGB(0, 0, 0),
	}

	pal := Default()
	for s, expected := range cases {
		c, err := pal.ParseColor(s)
		if assert.NoError(t, err, s) {
			assert.Equal(t, expected, c, s)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, s := range []string{"", "#ff78", "#gg7800", "256,0,0", "1,2", "-1,0,0", "sky"} {
		_, err := Default().ParseColor(s)
		if assert.Error(t, err, s) {
			assert.True(t, gallery.IsValidationError(err), s)
		}
	}
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "palette.toml")
	doc := `
[colors]
Sky = "#87ceeb"
sand = "194,178,128"
black = "#101010"
`
	require.NoError(t, os.WriteFile(p, []byte(doc), 0644))

	pal, err := Load(p)
	require.NoError(t, err)

	c, ok := pal.Lookup("sky")
	assert.True(t, ok)
	assert.Equal(t, gallery.RGB(0x87, 0xce, 0xeb), c)

	c, err = pal.ParseColor("sand")
	require.NoError(t, err)
	assert.Equal(t, gallery.RGB(194, 178, 128), c)

	// file colors replace built-in ones
	c, _ = pal.Lookup("black")
	assert.Equal(t, gallery.RGB(16, 16, 16), c)

	name, ok := pal.Name(gallery.RGB(194, 178, 128))
	assert.True(t, ok)
	assert.Equal(t, "sand", name)

	assert.Contains(t, pal.Names(), "white")
}

func TestLoadMissingFile(t *testing.T) {
	pal, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Names(), pal.Names())
}

func TestLoadInvalidFile(t *testing.T) {
	cases := map[string]string{
		"syntax":    "[colors\nsky = ",
		"bad color": "[colors]\nsky = \"blue-ish\"\n",
	}

	for name, doc := range cases {
		p := filepath.Join(t.TempDir(), "palette.toml")
		require.NoError(t, os.WriteFile(p, []byte(doc), 0644))

		_, err := Load(p)
		if assert.Error(t, err, name) {
			assert.True(t, gallery.IsParseError(err), name)
		}
	}
}
