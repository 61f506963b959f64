package render

import (
	"bytes"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/gallery"
	"github.com/akeil/gallery/internal/errors"
	ifs "github.com/akeil/gallery/internal/fs"
	"github.com/akeil/gallery/internal/logging"
	"github.com/akeil/gallery/pkg/events"
)

// Names of the files created by Export, relative to the output directory.
const (
	CatalogName = "catalog.pdf"
	PreviewDir  = "previews"
)

// Exported lists the files written by Export.
type Exported struct {
	Catalog  string
	Previews []string
}

// Export writes a preview for every drawing to <dir>/previews and a catalog
// of the whole gallery to <dir>/catalog.pdf.
//
// Previews are rendered concurrently. For each drawing, an event
// "Exported drawing: <title>" is recorded in the given log, which may be nil.
func (c *Context) Export(g *gallery.Gallery, selected *gallery.Drawing, dir string, log events.Logger) (*Exported, error) {
	if g == nil {
		return nil, errors.NewValidationError("cannot export nil gallery")
	}
	if log == nil {
		log = events.Discard
	}

	previewDir := filepath.Join(dir, PreviewDir)
	err := os.MkdirAll(previewDir, 0755)
	if err != nil && !os.IsExist(err) {
		return nil, errors.NewIOError(err, "cannot create %q", previewDir)
	}

	drawings := g.Drawings()
	res := &Exported{
		Catalog:  filepath.Join(dir, CatalogName),
		Previews: make([]string, len(drawings)),
	}

	var group errgroup.Group
	for i, d := range drawings {
		i, d := i, d
		p := filepath.Join(previewDir, c.PreviewName(d))
		res.Previews[i] = p
		group.Go(func() error {
			err := exportPreview(c, d, p)
			if err != nil {
				return err
			}
			log.LogEvent("Exported drawing: " + d.Title())
			return nil
		})
	}
	err = group.Wait()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = c.Catalog(g, selected, &buf)
	if err != nil {
		return nil, err
	}
	err = writeFile(res.Catalog, buf.Bytes())
	if err != nil {
		return nil, err
	}

	logging.Info("Exported %d drawings to %q", len(drawings), dir)
	return res, nil
}

func exportPreview(c *Context, d *gallery.Drawing, path string) error {
	var buf bytes.Buffer
	err := c.Preview(d, &buf)
	if err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}

// writeFile writes to a temp file first so that an existing file is
// replaced in one step.
func writeFile(path string, data []byte) error {
	f, err := ifs.CreateTemp(path)
	if err != nil {
		return errors.NewIOError(err, "cannot write %q", path)
	}

	_, err = f.Write(data)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		err = ifs.Move(f.Name(), path)
	}
	if err != nil {
		os.Remove(f.Name())
		return errors.NewIOError(err, "cannot write %q", path)
	}
	return nil
}
