// Package fs stores a gallery as a single JSON file.
//
// The file holds the gallery (title, size and drawings) plus the title of
// the drawing that was selected when the file was written.
// Files are replaced atomically: a Writer writes to a temporary file next to
// the destination and moves it in place on Close.
package fs

import (
	"encoding/json"

	"github.com/akeil/gallery"
)

const indent = "    "

// document is the on-disk layout of a gallery file.
type document struct {
	Title                string             `json:"title"`
	Width                int                `json:"width"`
	Height               int                `json:"height"`
	Drawings             []*gallery.Drawing `json:"drawings"`
	SelectedDrawingTitle *string            `json:"selectedDrawingTitle"`
}

func newDocument(g *gallery.Gallery, selected *gallery.Drawing) document {
	doc := document{
		Title:    g.Title(),
		Width:    g.Width(),
		Height:   g.Height(),
		Drawings: g.Drawings(),
	}
	if selected != nil {
		t := selected.Title()
		doc.SelectedDrawingTitle = &t
	}
	return doc
}

func (d document) encode() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", indent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// selection reads the selectedDrawingTitle member.
// The member is required, but may be null.
type selection struct {
	Title optionalString `json:"selectedDrawingTitle"`
}

// optionalString tells a null value apart from a missing member.
type optionalString struct {
	present bool
	value   *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.present = true
	if string(b) == "null" {
		o.value = nil
		return nil
	}

	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	o.value = &s
	return nil
}
