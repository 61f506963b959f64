package fs

import (
	"os"

	"github.com/akeil/gallery"
	"github.com/akeil/gallery/internal/errors"
	ifs "github.com/akeil/gallery/internal/fs"
	"github.com/akeil/gallery/internal/logging"
	"github.com/akeil/gallery/pkg/events"
)

// Writer saves a gallery to a file.
//
// Use Open, then Write, then Close. The destination is only replaced on
// Close; until then, a previous file at the same path stays untouched.
type Writer struct {
	path string
	log  events.Logger
	tmp  *os.File
}

// NewWriter creates a writer for the file at path.
// "Gallery saved to file" is recorded in the given log, which may be nil,
// once Close has replaced the destination.
func NewWriter(path string, log events.Logger) *Writer {
	if log == nil {
		log = events.Discard
	}
	return &Writer{
		path: path,
		log:  log,
	}
}

// Open prepares the writer.
//
// It creates the parent directory of the destination and a temporary file
// next to it. The temporary file has the mode of an existing destination.
func (w *Writer) Open() error {
	if w.tmp != nil {
		return nil
	}

	err := ifs.MkdirFor(w.path, 0755)
	if err != nil {
		return errors.NewIOError(err, "failed to create directory for %q", w.path)
	}

	f, err := ifs.CreateTemp(w.path)
	if err != nil {
		return errors.NewIOError(err, "cannot write to %q", w.path)
	}

	logging.Debug("Opened temp file %q for %q", f.Name(), w.path)
	w.tmp = f
	return nil
}

// Write writes the gallery and the title of the selected drawing.
// selected may be nil.
func (w *Writer) Write(g *gallery.Gallery, selected *gallery.Drawing) error {
	if w.tmp == nil {
		return errors.NewIOError(nil, "writer for %q is not open", w.path)
	}
	if g == nil {
		return errors.NewValidationError("cannot write nil gallery")
	}

	data, err := newDocument(g, selected).encode()
	if err != nil {
		return errors.NewIOError(err, "failed to encode gallery %q", g.Title())
	}

	err = w.tmp.Truncate(0)
	if err == nil {
		_, err = w.tmp.WriteAt(data, 0)
	}
	if err != nil {
		return errors.NewIOError(err, "failed to write gallery %q", g.Title())
	}
	return nil
}

// Close moves the written file in place of the destination.
func (w *Writer) Close() error {
	if w.tmp == nil {
		return errors.NewIOError(nil, "writer for %q is not open", w.path)
	}
	f := w.tmp
	w.tmp = nil

	err := f.Sync()
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return errors.NewIOError(err, "failed to write %q", w.path)
	}

	logging.Debug("Move %q to %q", f.Name(), w.path)
	err = ifs.Move(f.Name(), w.path)
	if err != nil {
		os.Remove(f.Name())
		return errors.NewIOError(err, "failed to replace %q", w.path)
	}

	w.log.LogEvent("Gallery saved to file")
	return nil
}

// Abort discards everything written since Open.
// It is safe to call Abort after Close.
func (w *Writer) Abort() {
	if w.tmp == nil {
		return
	}
	f := w.tmp
	w.tmp = nil

	f.Close()
	err := os.Remove(f.Name())
	if err != nil {
		logging.Warning("Failed to remove temp file %q: %v", f.Name(), err)
	}
}

// Save writes the gallery and selection to path in one go.
func Save(path string, g *gallery.Gallery, selected *gallery.Drawing, log events.Logger) error {
	w := NewWriter(path, log)
	err := w.Open()
	if err != nil {
		return err
	}
	defer w.Abort()

	err = w.Write(g, selected)
	if err != nil {
		return err
	}

	return w.Close()
}
