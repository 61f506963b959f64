package fs

import (
	"encoding/json"
	e "errors"
	iofs "io/fs"
	"os"

	"github.com/akeil/gallery"
	"github.com/akeil/gallery/internal/errors"
	"github.com/akeil/gallery/internal/logging"
	"github.com/akeil/gallery/pkg/events"
)

// Reader loads a gallery from a file.
//
// The file is read on first use and kept in memory, so the gallery and the
// selection come from the same version of the file.
type Reader struct {
	path string
	data []byte
}

// NewReader creates a reader for the file at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

func (r *Reader) load() ([]byte, error) {
	if r.data != nil {
		return r.data, nil
	}

	logging.Debug("Read gallery from %q", r.path)
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.NewIOError(err, "cannot read %q", r.path)
	}
	r.data = data
	return data, nil
}

// ReadGallery parses the gallery from the file.
//
// Each call returns a new Gallery which records its changes in the given
// log. "Gallery loaded from file" is recorded on success.
func (r *Reader) ReadGallery(log events.Logger) (*gallery.Gallery, error) {
	data, err := r.load()
	if err != nil {
		return nil, err
	}

	g := gallery.New("", log)
	err = g.UnmarshalJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load %q", r.path)
	}

	if log != nil {
		log.LogEvent("Gallery loaded from file")
	}
	return g, nil
}

// ReadSelectedDrawingTitle returns the title of the drawing that was
// selected when the file was saved.
// The second value is false if no drawing was selected.
func (r *Reader) ReadSelectedDrawingTitle() (string, bool, error) {
	data, err := r.load()
	if err != nil {
		return "", false, err
	}

	var s selection
	err = json.Unmarshal(data, &s)
	if err != nil {
		return "", false, errors.NewParseError(err, "invalid gallery file %q", r.path)
	}
	if !s.Title.present {
		return "", false, errors.NewParseError(nil, "invalid gallery file %q: missing member \"selectedDrawingTitle\"", r.path)
	}
	if s.Title.value == nil {
		return "", false, nil
	}
	return *s.Title.value, true, nil
}

// Load reads the gallery and the selected title from path.
//
// Nothing is returned unless both parts are valid.
func Load(path string, log events.Logger) (*gallery.Gallery, string, bool, error) {
	r := NewReader(path)

	// check the selection first so that a bad file does not log an event
	title, ok, err := r.ReadSelectedDrawingTitle()
	if err != nil {
		return nil, "", false, err
	}

	g, err := r.ReadGallery(log)
	if err != nil {
		return nil, "", false, err
	}

	return g, title, ok, nil
}

// IsNotExist tells if err was caused by a missing file.
func IsNotExist(err error) bool {
	return e.Is(err, iofs.ErrNotExist)
}
