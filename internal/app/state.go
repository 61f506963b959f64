// Package app holds the state of a gallery session: the active gallery,
// the selected drawing and where both are stored.
package app

import (
	"github.com/akeil/gallery"
	"github.com/akeil/gallery/internal/config"
	"github.com/akeil/gallery/internal/errors"
	"github.com/akeil/gallery/internal/logging"
	"github.com/akeil/gallery/pkg/events"
	"github.com/akeil/gallery/pkg/fs"
)

// State is the active gallery with an optional selected drawing.
//
// The selection is kept by title. A selected title that does not match any
// drawing counts as "nothing selected".
type State struct {
	path     string
	title    string
	gallery  *gallery.Gallery
	selected string
	hasSel   bool
	log      events.Logger
}

// NewState creates a state with an empty gallery, named and stored as
// given in the settings.
func NewState(s *config.Settings, log events.Logger) *State {
	return &State{
		path:    s.File,
		title:   s.Title,
		gallery: gallery.New(s.Title, log),
		log:     log,
	}
}

// Path is the file from which the gallery is loaded and to which it is saved.
func (s *State) Path() string {
	return s.path
}

// Gallery returns the active gallery.
func (s *State) Gallery() *gallery.Gallery {
	return s.gallery
}

// Load replaces the gallery and the selection with the contents of the file.
//
// If loading fails, the state is left unchanged.
func (s *State) Load() error {
	g, title, ok, err := fs.Load(s.path, s.log)
	if err != nil {
		return err
	}

	s.gallery = g
	s.selected = title
	s.hasSel = ok
	if ok {
		if _, found := g.Drawing(title); !found {
			logging.Warning("Selected drawing %q is not in gallery %q", title, g.Title())
		}
	}
	return nil
}

// OpenOrCreate loads the gallery file.
// If there is no file yet, the state keeps its empty gallery and true is
// returned.
func (s *State) OpenOrCreate() (bool, error) {
	err := s.Load()
	if err == nil {
		return false, nil
	}
	if fs.IsNotExist(err) {
		logging.Info("No gallery at %q, starting with %q", s.path, s.title)
		return true, nil
	}
	return false, err
}

// Save writes the gallery and the selection to the file.
func (s *State) Save() error {
	d, _ := s.Selected()
	return fs.Save(s.path, s.gallery, d, s.log)
}

// Select makes the drawing with the given title the selected one.
func (s *State) Select(title string) error {
	if _, ok := s.gallery.Drawing(title); !ok {
		return errors.NewNotFound("no drawing with title %q", title)
	}
	s.selected = title
	s.hasSel = true
	return nil
}

// ClearSelection unselects the selected drawing, if any.
func (s *State) ClearSelection() {
	s.selected = ""
	s.hasSel = false
}

// Selected returns the selected drawing.
func (s *State) Selected() (*gallery.Drawing, bool) {
	if !s.hasSel {
		return nil, false
	}
	return s.gallery.Drawing(s.selected)
}

// lookup finds a drawing by title, or the selected drawing for an
// empty title.
func (s *State) lookup(title string) (*gallery.Drawing, error) {
	if title == "" {
		d, ok := s.Selected()
		if !ok {
			return nil, errors.NewNotFound("no drawing selected")
		}
		return d, nil
	}

	d, ok := s.gallery.Drawing(title)
	if !ok {
		return nil, errors.NewNotFound("no drawing with title %q", title)
	}
	return d, nil
}

// Drawing finds a drawing by title.
// With an empty title, the selected drawing is returned.
func (s *State) Drawing(title string) (*gallery.Drawing, error) {
	return s.lookup(title)
}

// AddDrawing creates a new drawing and adds it to the gallery.
func (s *State) AddDrawing(title string, width, height int, c gallery.Color) (*gallery.Drawing, error) {
	d := gallery.NewDrawing(title, width, height, c)
	err := d.Validate()
	if err != nil {
		return nil, err
	}

	err = s.gallery.Add(d)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Changes describes an edit.
// Fields that are nil are left as they are.
type Changes struct {
	Title  *string
	Width  *int
	Height *int
	Color  *gallery.Color
}

// Edit applies changes to the drawing with the given title.
// With an empty title, the selected drawing is edited.
//
// Either all changes are applied or none.
func (s *State) Edit(title string, ch Changes) (*gallery.Drawing, error) {
	d, err := s.lookup(title)
	if err != nil {
		return nil, err
	}

	if ch.Width != nil && *ch.Width < 0 {
		return nil, errors.NewValidationError("width must not be negative")
	}
	if ch.Height != nil && *ch.Height < 0 {
		return nil, errors.NewValidationError("height must not be negative")
	}

	if ch.Title != nil && *ch.Title != d.Title() {
		old := d.Title()
		err = s.gallery.Rename(d, *ch.Title)
		if err != nil {
			return nil, err
		}
		if s.hasSel && s.selected == old {
			s.selected = d.Title()
		}
	}
	if ch.Width != nil {
		d.SetWidth(*ch.Width)
	}
	if ch.Height != nil {
		d.SetHeight(*ch.Height)
	}
	if ch.Color != nil {
		d.SetColor(*ch.Color)
	}
	return d, nil
}

// EditSelected applies changes to the selected drawing.
func (s *State) EditSelected(ch Changes) (*gallery.Drawing, error) {
	return s.Edit("", ch)
}

// Remove deletes the drawing with the given title.
// If it was selected, the selection is cleared.
func (s *State) Remove(title string) (*gallery.Drawing, error) {
	d, err := s.lookup(title)
	if err != nil {
		return nil, err
	}

	s.gallery.Remove(d)
	if s.hasSel && s.selected == d.Title() {
		s.ClearSelection()
	}
	return d, nil
}

// DeleteSelected removes the selected drawing and clears the selection.
// Does nothing if no drawing is selected.
func (s *State) DeleteSelected() (*gallery.Drawing, bool) {
	d, ok := s.Selected()
	if !ok {
		return nil, false
	}
	s.gallery.Remove(d)
	s.ClearSelection()
	return d, true
}

// Complete marks the drawing with the given title as complete.
// With an empty title, the selected drawing is completed.
func (s *State) Complete(title string) (*gallery.Drawing, error) {
	d, err := s.lookup(title)
	if err != nil {
		return nil, err
	}
	d.MarkComplete()
	return d, nil
}
