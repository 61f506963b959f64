package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/akeil/gallery"
	"github.com/akeil/gallery/internal/errors"
	"github.com/akeil/gallery/internal/imaging"
	"github.com/akeil/gallery/internal/logging"
)

// shapes are drawn at a multiple of the preview size and scaled down
const supersample = 4

var (
	outlineComplete   = color.RGBA{64, 64, 64, 255}
	outlineInProgress = color.RGBA{192, 192, 192, 255}
)

func renderPreview(c *Context, d *gallery.Drawing, w io.Writer) error {
	if d == nil {
		return errors.NewValidationError("cannot render nil drawing")
	}

	data, err := previewPNG(c, d)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	if err != nil {
		return errors.NewIOError(err, "failed to write preview for %q", d.Title())
	}
	return nil
}

// previewPNG returns the encoded preview, from the cache if possible.
func previewPNG(c *Context, d *gallery.Drawing) ([]byte, error) {
	key := c.PreviewName(d)

	r, err := c.cache.Get(key)
	if err == nil {
		defer r.Close()
		data, err := io.ReadAll(r)
		if err == nil {
			return data, nil
		}
		logging.Warning("Failed to read cached preview %q: %v", key, err)
	} else if !errors.IsNotFound(err) {
		logging.Warning("Cache lookup failed for %q: %v", key, err)
	}

	logging.Debug("Render preview for %q", d.Title())
	var buf bytes.Buffer
	err = png.Encode(&buf, drawSwatch(c, d))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode preview for %q", d.Title())
	}
	data := buf.Bytes()

	err = c.cache.Put(key, bytes.NewReader(data))
	if err != nil {
		// the preview is still usable
		logging.Warning("Failed to cache preview %q: %v", key, err)
	}
	return data, nil
}

// drawSwatch paints a rounded rectangle in the drawing's color with the
// drawing's aspect ratio.
func drawSwatch(c *Context, d *gallery.Drawing) image.Image {
	size := c.PreviewSize
	if size <= 0 {
		size = DefaultPreviewSize
	}
	tw, th := imaging.FitSize(d.Width(), d.Height(), size)
	sw, sh := tw*supersample, th*supersample

	dst := image.NewRGBA(image.Rect(0, 0, sw, sh))
	if c.Background != nil {
		imaging.Fill(dst, c.Background)
	}

	short := math.Min(float64(sw), float64(sh))
	margin := 2.0 * supersample
	if 2*margin >= short {
		margin = 0
	}
	arc := short / 5

	outline := outlineInProgress
	if d.IsComplete() {
		outline = outlineComplete
	}

	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetFillColor(d.Color())
	gc.SetStrokeColor(outline)
	gc.SetLineWidth(supersample)
	draw2dkit.RoundedRectangle(gc, margin, margin, float64(sw)-margin, float64(sh)-margin, arc, arc)
	gc.FillStroke()

	return imaging.Resize(dst, tw, th)
}
