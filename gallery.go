// Package gallery is the data model for a personal gallery of drawings.
//
// A Gallery is an ordered collection of Drawings with unique titles.
// Only metadata is kept (title, size, color and completion status);
// the file format is handled by package fs.
package gallery

import (
	"encoding/json"
	"fmt"

	"github.com/akeil/gallery/internal/errors"
	"github.com/akeil/gallery/pkg/events"
)

// Default canvas size for a new gallery.
const (
	DefaultWidth  = 1024
	DefaultHeight = 1024
)

// Gallery is a named, ordered collection of drawings.
//
// No two drawings in a gallery share the same title.
type Gallery struct {
	title    string
	width    int
	height   int
	drawings []*Drawing
	log      events.Logger
}

// New creates an empty gallery.
//
// Changes to the gallery and its drawings are recorded in the given log,
// which may be nil.
func New(title string, log events.Logger) *Gallery {
	return &Gallery{
		title:    title,
		width:    DefaultWidth,
		height:   DefaultHeight,
		drawings: make([]*Drawing, 0),
		log:      log,
	}
}

func (g *Gallery) Title() string {
	return g.title
}

func (g *Gallery) SetTitle(title string) {
	g.title = title
}

func (g *Gallery) Width() int {
	return g.width
}

func (g *Gallery) Height() int {
	return g.height
}

// SetSize sets the canvas size of the gallery.
func (g *Gallery) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// Len returns the number of drawings.
func (g *Gallery) Len() int {
	return len(g.drawings)
}

// Add appends a drawing.
//
// If a drawing with the same title exists, a "duplicate title" error is
// returned and the gallery is not changed.
func (g *Gallery) Add(d *Drawing) error {
	if d == nil {
		return errors.NewValidationError("cannot add nil drawing")
	}
	if _, ok := g.Drawing(d.Title()); ok {
		return errors.NewDuplicateTitle(d.Title())
	}

	if g.log != nil {
		d.SetLog(g.log)
	}
	g.drawings = append(g.drawings, d)
	g.logEvent("Added drawing: %v", d.Title())
	return nil
}

// Remove removes the given drawing and tells if it was found.
//
// Removing nil or a drawing which is not part of this gallery does nothing.
func (g *Gallery) Remove(d *Drawing) bool {
	if d == nil {
		return false
	}

	idx := g.indexOf(d)
	if idx < 0 {
		return false
	}

	g.drawings = append(g.drawings[:idx], g.drawings[idx+1:]...)
	g.logEvent("Removed drawing: %v", d.Title())
	return true
}

// Drawing looks up a drawing by its exact title.
func (g *Gallery) Drawing(title string) (*Drawing, bool) {
	for _, d := range g.drawings {
		if d.Title() == title {
			return d, true
		}
	}
	return nil, false
}

// Drawings returns all drawings in the order in which they were added.
//
// The returned slice is a copy, the drawings are not.
func (g *Gallery) Drawings() []*Drawing {
	l := make([]*Drawing, len(g.drawings))
	copy(l, g.drawings)
	return l
}

// Rename changes the title of a drawing in this gallery.
//
// Fails with "not found" if the drawing is not part of the gallery
// and with "duplicate title" if another drawing already has the new title.
func (g *Gallery) Rename(d *Drawing, title string) error {
	if d == nil || g.indexOf(d) < 0 {
		return errors.NewNotFound("drawing is not part of gallery %q", g.title)
	}

	other, ok := g.Drawing(title)
	if ok && other != d {
		return errors.NewDuplicateTitle(title)
	}

	d.SetTitle(title)
	return nil
}

func (g *Gallery) indexOf(d *Drawing) int {
	for i, x := range g.drawings {
		if x == d {
			return i
		}
	}
	return -1
}

func (g *Gallery) logEvent(msg string, v ...interface{}) {
	if g.log == nil {
		return
	}
	g.log.LogEvent(fmt.Sprintf(msg, v...))
}

type galleryJSON struct {
	Title    string     `json:"title"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Drawings []*Drawing `json:"drawings"`
}

type galleryDoc struct {
	Title    *string    `json:"title" validate:"required"`
	Width    *int       `json:"width" validate:"required,min=0"`
	Height   *int       `json:"height" validate:"required,min=0"`
	Drawings []*Drawing `json:"drawings" validate:"required"`
}

func (g *Gallery) MarshalJSON() ([]byte, error) {
	return json.Marshal(galleryJSON{
		Title:    g.title,
		Width:    g.width,
		Height:   g.height,
		Drawings: g.drawings,
	})
}

// UnmarshalJSON replaces the contents of the gallery with the given document.
//
// The document must contain all members, every drawing must be valid and
// titles must be unique; otherwise a parse error is returned and the gallery
// is left unchanged.
// The gallery keeps its event log and attaches it to the new drawings.
func (g *Gallery) UnmarshalJSON(b []byte) error {
	var doc galleryDoc
	err := json.Unmarshal(b, &doc)
	if err != nil {
		if errors.IsParseError(err) {
			return err
		}
		return errors.NewParseError(err, "invalid gallery")
	}

	err = validateDoc(&doc)
	if err != nil {
		return errors.NewParseError(err, "invalid gallery")
	}

	seen := make(map[string]bool, len(doc.Drawings))
	for i, d := range doc.Drawings {
		if d == nil {
			return errors.NewParseError(nil, "invalid gallery: drawing %d is null", i)
		}
		if seen[d.Title()] {
			return errors.NewParseError(errors.NewDuplicateTitle(d.Title()), "invalid gallery")
		}
		seen[d.Title()] = true
		if g.log != nil {
			d.SetLog(g.log)
		}
	}

	g.title = *doc.Title
	g.width = *doc.Width
	g.height = *doc.Height
	g.drawings = doc.Drawings
	return nil
}
