package gallery

import (
	"encoding/json"
	"fmt"

	"github.com/akeil/gallery/internal/errors"
	"github.com/akeil/gallery/pkg/events"
)

const (
	statusComplete   = "Complete"
	statusInProgress = "In progress"
)

// Color is an RGB color with 8 bits per channel.
//
// Color implements color.Color and is always fully opaque.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color from its three channels.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// Hex returns the color in "#rrggbb" notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// Drawing holds the metadata for a single artwork.
//
// The title identifies a drawing within its Gallery.
// Width and height are given in pixels and must not be negative;
// the setters do not check this, use Validate().
type Drawing struct {
	title    string
	width    int
	height   int
	color    Color
	complete bool
	log      events.Logger
}

// NewDrawing creates a Drawing which is not yet complete.
func NewDrawing(title string, width, height int, c Color) *Drawing {
	return &Drawing{
		title:  title,
		width:  width,
		height: height,
		color:  c,
	}
}

// SetLog attaches the event log that records changes to this drawing.
// A Gallery does this for every drawing it owns.
func (d *Drawing) SetLog(l events.Logger) {
	d.log = l
}

func (d *Drawing) Title() string {
	return d.title
}

// SetTitle renames the drawing.
//
// Every call records one event which names the title before the change,
// in the log set with SetLog. A drawing without a log records nothing;
// Gallery.Add attaches the gallery's log.
// Use Gallery.Rename to keep titles unique within a gallery.
func (d *Drawing) SetTitle(title string) {
	d.logEvent("Modified drawing: %v", d.title)
	d.title = title
}

func (d *Drawing) Width() int {
	return d.width
}

func (d *Drawing) SetWidth(w int) {
	d.width = w
}

func (d *Drawing) Height() int {
	return d.height
}

func (d *Drawing) SetHeight(h int) {
	d.height = h
}

func (d *Drawing) Color() Color {
	return d.color
}

func (d *Drawing) SetColor(c Color) {
	d.color = c
}

// IsComplete tells whether the drawing was marked as complete.
func (d *Drawing) IsComplete() bool {
	return d.complete
}

// MarkComplete marks the drawing as complete.
// There is no way back; calling it again has no effect.
func (d *Drawing) MarkComplete() {
	d.complete = true
}

// Status is the human readable completion status.
func (d *Drawing) Status() string {
	if d.complete {
		return statusComplete
	}
	return statusInProgress
}

func (d *Drawing) String() string {
	return fmt.Sprintf("Title: %s, Width: %dpx, Height: %dpx, Color: (%d,%d,%d), Status: %s",
		d.title,
		d.width,
		d.height,
		d.color.R,
		d.color.G,
		d.color.B,
		d.Status())
}

// Validate checks that width and height are not negative.
func (d *Drawing) Validate() error {
	if d.width < 0 {
		return errors.NewValidationError("width must not be negative, got %d", d.width)
	}
	if d.height < 0 {
		return errors.NewValidationError("height must not be negative, got %d", d.height)
	}
	return nil
}

func (d *Drawing) logEvent(msg string, v ...interface{}) {
	if d.log == nil {
		return
	}
	d.log.LogEvent(fmt.Sprintf(msg, v...))
}

// drawingJSON is the persisted representation of a Drawing.
type drawingJSON struct {
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Red        uint8  `json:"red"`
	Green      uint8  `json:"green"`
	Blue       uint8  `json:"blue"`
	IsComplete bool   `json:"isComplete"`
}

// drawingDoc is used for decoding, pointers detect missing members.
type drawingDoc struct {
	Title      *string `json:"title" validate:"required"`
	Width      *int    `json:"width" validate:"required,min=0"`
	Height     *int    `json:"height" validate:"required,min=0"`
	Red        *int    `json:"red" validate:"required,min=0,max=255"`
	Green      *int    `json:"green" validate:"required,min=0,max=255"`
	Blue       *int    `json:"blue" validate:"required,min=0,max=255"`
	IsComplete *bool   `json:"isComplete" validate:"required"`
}

func (d *Drawing) MarshalJSON() ([]byte, error) {
	return json.Marshal(drawingJSON{
		Title:      d.title,
		Width:      d.width,
		Height:     d.height,
		Red:        d.color.R,
		Green:      d.color.G,
		Blue:       d.color.B,
		IsComplete: d.complete,
	})
}

// UnmarshalJSON reads a drawing and fails with a parse error if a member is
// missing or out of range.
// The event log and the receiver's other state are left alone on error.
func (d *Drawing) UnmarshalJSON(b []byte) error {
	var doc drawingDoc
	err := json.Unmarshal(b, &doc)
	if err != nil {
		return errors.NewParseError(err, "invalid drawing")
	}

	err = validateDoc(&doc)
	if err != nil {
		return errors.NewParseError(err, "invalid drawing")
	}

	d.title = *doc.Title
	d.width = *doc.Width
	d.height = *doc.Height
	d.color = RGB(uint8(*doc.Red), uint8(*doc.Green), uint8(*doc.Blue))
	d.complete = *doc.IsComplete
	return nil
}
