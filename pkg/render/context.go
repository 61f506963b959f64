package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/akeil/gallery"
)

// DefaultPreviewSize is the length of the longer side of a preview, in pixels.
const DefaultPreviewSize = 128

// keys are derived from what is drawn, so a changed drawing gets a new key
var keyNamespace = uuid.MustParse("4f0c7d0e-6d55-4d8e-9a7e-2f3c1b9d6a41")

// Context holds parameters and cached data for rendering operations.
//
// If multiple drawings are rendered, they should use the same Context.
// A Context can be used from multiple goroutines.
type Context struct {
	Background  color.Color
	PreviewSize int
	cache       Cache
}

// NewContext sets up a new rendering context which keeps rendered previews
// in the given cache.
func NewContext(cache Cache) *Context {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Context{
		Background:  color.White,
		PreviewSize: DefaultPreviewSize,
		cache:       cache,
	}
}

// DefaultContext creates a Context with an in-memory cache.
func DefaultContext() *Context {
	return NewContext(nil)
}

// Preview draws a swatch for a single drawing to a PNG and writes it to the
// given writer.
func (c *Context) Preview(d *gallery.Drawing, w io.Writer) error {
	return renderPreview(c, d, w)
}

// Catalog renders a listing of all drawings in the gallery to a PDF file.
//
// The selected drawing, if not nil, is highlighted.
// The resulting PDF document is written to the given writer.
func (c *Context) Catalog(g *gallery.Gallery, selected *gallery.Drawing, w io.Writer) error {
	return renderCatalog(c, g, selected, w)
}

// PreviewName returns the file name under which the preview for d is cached.
//
// The name starts with a readable form of the title and changes whenever
// anything that is visible in the preview changes.
func (c *Context) PreviewName(d *gallery.Drawing) string {
	bg := "-"
	if c.Background != nil {
		r, g, b, a := c.Background.RGBA()
		bg = fmt.Sprintf("%04x%04x%04x%04x", r, g, b, a)
	}
	src := fmt.Sprintf("%s|%d|%d|%s|%v|%d|%s",
		d.Title(), d.Width(), d.Height(), d.Color().Hex(), d.IsComplete(), c.PreviewSize, bg)
	id := uuid.NewSHA1(keyNamespace, []byte(src))

	return fmt.Sprintf("%s-%s.png", slug(d.Title()), id.String()[:8])
}

// slug turns a title into something that can safely be used in a file name.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteRune('-')
			dash = true
		}
	}

	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "drawing"
	}
	return out
}
