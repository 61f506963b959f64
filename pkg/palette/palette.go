// Package palette maps color names to RGB values and parses colors given
// on the command line.
package palette

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/akeil/gallery"
	"github.com/akeil/gallery/internal/errors"
	"github.com/akeil/gallery/internal/logging"
)

// Palette is a set of named colors.
// Names are case-insensitive.
type Palette struct {
	colors map[string]gallery.Color
}

var builtin = map[string]gallery.Color{
	"black":  gallery.RGB(0, 0, 0),
	"white":  gallery.RGB(255, 255, 255),
	"red":    gallery.RGB(255, 0, 0),
	"green":  gallery.RGB(0, 128, 0),
	"blue":   gallery.RGB(0, 0, 255),
	"yellow": gallery.RGB(255, 255, 0),
	"orange": gallery.RGB(255, 165, 0),
	"purple": gallery.RGB(128, 0, 128),
	"gray":   gallery.RGB(128, 128, 128),
	"brown":  gallery.RGB(139, 69, 19),
}

// Default returns a palette with the built-in colors.
func Default() *Palette {
	p := &Palette{colors: make(map[string]gallery.Color, len(builtin))}
	for k, v := range builtin {
		p.colors[k] = v
	}
	return p
}

type paletteFile struct {
	Colors map[string]string `toml:"colors"`
}

// Load reads a palette from a TOML file with a [colors] table:
//
//	[colors]
//	sky = "#87ceeb"
//	sand = "194,178,128"
//
// Colors from the file are added to (or replace) the built-in colors.
// If the file does not exist, the built-in palette is returned.
func Load(path string) (*Palette, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logging.Debug("No palette at %q, using built-in colors", path)
		return p, nil
	}
	if err != nil {
		return nil, errors.NewIOError(err, "cannot read palette %q", path)
	}

	var f paletteFile
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.NewParseError(err, "invalid palette %q", path)
	}
	for _, key := range meta.Undecoded() {
		logging.Warning("Ignored key %q in palette %q", key.String(), path)
	}

	for name, value := range f.Colors {
		c, err := parseRGB(value)
		if err != nil {
			return nil, errors.NewParseError(err, "invalid color %q in palette %q", name, path)
		}
		p.colors[strings.ToLower(name)] = c
	}

	logging.Debug("Loaded %d colors from %q", len(f.Colors), path)
	return p, nil
}

// Lookup finds a color by name.
func (p *Palette) Lookup(name string) (gallery.Color, bool) {
	c, ok := p.colors[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names returns the color names in alphabetical order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.colors))
	for k := range p.colors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Name finds the name for a color, if the palette has one.
func (p *Palette) Name(c gallery.Color) (string, bool) {
	for _, name := range p.Names() {
		if p.colors[name] == c {
			return name, true
		}
	}
	return "", false
}

// ParseColor reads a color as "#rrggbb", "rrggbb", "r,g,b" or by name.
func (p *Palette) ParseColor(s string) (gallery.Color, error) {
	if c, ok := p.Lookup(s); ok {
		return c, nil
	}
	c, err := parseRGB(s)
	if err != nil {
		return c, errors.NewValidationError("invalid color %q", s)
	}
	return c, nil
}

func parseRGB(s string) (gallery.Color, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		return parseTriple(s)
	}
	return parseHex(s)
}

func parseHex(s string) (gallery.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return gallery.Color{}, fmt.Errorf("expected six hex digits, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return gallery.Color{}, err
	}
	return gallery.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func parseTriple(s string) (gallery.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return gallery.Color{}, fmt.Errorf("expected three components, got %d", len(parts))
	}

	var rgb [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return gallery.Color{}, fmt.Errorf("component %d: %w", i+1, err)
		}
		rgb[i] = uint8(v)
	}
	return gallery.RGB(rgb[0], rgb[1], rgb[2]), nil
}
