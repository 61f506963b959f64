package gallery

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/gallery/pkg/events"
)

func sampleGallery(log events.Logger) (*Gallery, *Drawing, *Drawing) {
	g := New("My Gallery", log)
	sunset := NewDrawing("Sunset", 800, 600, RGB(255, 120, 0))
	mountain := NewDrawing("Mountain", 1024, 768, RGB(30, 30, 30))
	g.Add(sunset)
	g.Add(mountain)
	return g, sunset, mountain
}

func titles(l []*Drawing) []string {
	s := make([]string, len(l))
	for i, d := range l {
		s[i] = d.Title()
	}
	return s
}

func TestNewGallery(t *testing.T) {
	g := New("My Gallery", nil)

	assert.Equal(t, "My Gallery", g.Title())
	assert.Equal(t, DefaultWidth, g.Width())
	assert.Equal(t, DefaultHeight, g.Height())
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Drawings())
}

func TestAddPreservesOrder(t *testing.T) {
	g, _, _ := sampleGallery(nil)
	g.Add(NewDrawing("Lake", 10, 10, RGB(0, 0, 255)))

	assert.Equal(t, []string{"Sunset", "Mountain", "Lake"}, titles(g.Drawings()))
	assert.Equal(t, 3, g.Len())
}

func TestAddRejectsDuplicateTitle(t *testing.T) {
	g, sunset, _ := sampleGallery(nil)

	err := g.Add(NewDrawing("Sunset", 1, 1, RGB(0, 0, 0)))
	require.Error(t, err)
	assert.True(t, IsDuplicateTitle(err))
	assert.Equal(t, 2, g.Len())

	// the same drawing twice is a duplicate, too
	err = g.Add(sunset)
	assert.True(t, IsDuplicateTitle(err))
	assert.Equal(t, []string{"Sunset", "Mountain"}, titles(g.Drawings()))
}

func TestAddNil(t *testing.T) {
	g := New("My Gallery", nil)
	err := g.Add(nil)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, 0, g.Len())
}

func TestLookup(t *testing.T) {
	g, sunset, mountain := sampleGallery(nil)

	d, ok := g.Drawing("Sunset")
	require.True(t, ok)
	assert.Same(t, sunset, d)

	d, ok = g.Drawing("Mountain")
	require.True(t, ok)
	assert.Same(t, mountain, d)

	d, ok = g.Drawing("sunset")
	assert.False(t, ok, "titles compare by exact string equality")
	assert.Nil(t, d)

	_, ok = g.Drawing("Lake")
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	g, sunset, _ := sampleGallery(nil)

	assert.True(t, g.Remove(sunset))
	_, ok := g.Drawing("Sunset")
	assert.False(t, ok)
	assert.Equal(t, []string{"Mountain"}, titles(g.Drawings()))

	// removing again is a no-op
	assert.False(t, g.Remove(sunset))
	assert.Equal(t, []string{"Mountain"}, titles(g.Drawings()))
}

func TestRemoveUnownedIsNoop(t *testing.T) {
	g, _, _ := sampleGallery(nil)

	assert.False(t, g.Remove(nil))
	// same title, different drawing
	assert.False(t, g.Remove(NewDrawing("Sunset", 800, 600, RGB(255, 120, 0))))
	assert.Equal(t, []string{"Sunset", "Mountain"}, titles(g.Drawings()))
}

func TestDrawingsReturnsCopy(t *testing.T) {
	g, _, _ := sampleGallery(nil)
	l := g.Drawings()
	l[0] = nil

	assert.Equal(t, []string{"Sunset", "Mountain"}, titles(g.Drawings()))
}

func TestRename(t *testing.T) {
	log := events.New()
	g, sunset, mountain := sampleGallery(log)
	log.Clear()

	require.NoError(t, g.Rename(sunset, "Sunrise"))
	_, ok := g.Drawing("Sunset")
	assert.False(t, ok)
	d, ok := g.Drawing("Sunrise")
	assert.True(t, ok)
	assert.Same(t, sunset, d)

	err := g.Rename(mountain, "Sunrise")
	assert.True(t, IsDuplicateTitle(err))
	assert.Equal(t, "Mountain", mountain.Title())

	err = g.Rename(NewDrawing("Lake", 1, 1, RGB(0, 0, 0)), "Pond")
	assert.True(t, IsNotFound(err))

	// one event for the successful rename only
	require.Equal(t, 1, log.Len())
	assert.Equal(t, "Modified drawing: Sunset", log.Events()[0].Description)
}

func TestMutationsAreLogged(t *testing.T) {
	log := events.New()
	g, sunset, _ := sampleGallery(log)
	sunset.SetTitle("Sunrise")
	g.Remove(sunset)

	descriptions := make([]string, 0)
	log.Each(func(e events.Event) {
		descriptions = append(descriptions, e.Description)
	})

	assert.Equal(t, []string{
		"Added drawing: Sunset",
		"Added drawing: Mountain",
		"Modified drawing: Sunset",
		"Removed drawing: Sunrise",
	}, descriptions)
}

func TestMarshalGallery(t *testing.T) {
	g, sunset, _ := sampleGallery(nil)
	sunset.MarkComplete()
	g.SetSize(1200, 900)

	data, err := json.Marshal(g)
	require.NoError(t, err)

	expected := `{"title":"My Gallery","width":1200,"height":900,"drawings":[` +
		`{"title":"Sunset","width":800,"height":600,"red":255,"green":120,"blue":0,"isComplete":true},` +
		`{"title":"Mountain","width":1024,"height":768,"red":30,"green":30,"blue":30,"isComplete":false}]}`
	assert.JSONEq(t, expected, string(data))

	log := events.New()
	re := New("", log)
	require.NoError(t, json.Unmarshal(data, re))

	assert.Equal(t, "My Gallery", re.Title())
	assert.Equal(t, 1200, re.Width())
	assert.Equal(t, 900, re.Height())
	assert.Equal(t, []string{"Sunset", "Mountain"}, titles(re.Drawings()))

	d, _ := re.Drawing("Sunset")
	assert.True(t, d.IsComplete())
	assert.Equal(t, RGB(255, 120, 0), d.Color())

	// loaded drawings record into the gallery's log
	d.SetTitle("Sunrise")
	assert.Equal(t, 1, log.Len())
}

func TestMarshalEmptyGallery(t *testing.T) {
	data, err := json.Marshal(New("Empty", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Empty","width":1024,"height":1024,"drawings":[]}`, string(data))
}

func TestUnmarshalGalleryStrict(t *testing.T) {
	sunset := `{"title":"Sunset","width":800,"height":600,"red":255,"green":120,"blue":0,"isComplete":false}`
	cases := map[string]string{
		"missing title":    `{"width":1,"height":1,"drawings":[]}`,
		"missing width":    `{"title":"g","height":1,"drawings":[]}`,
		"missing drawings": `{"title":"g","width":1,"height":1}`,
		"null drawings":    `{"title":"g","width":1,"height":1,"drawings":null}`,
		"null drawing":     `{"title":"g","width":1,"height":1,"drawings":[null]}`,
		"bad drawing":      `{"title":"g","width":1,"height":1,"drawings":[{"title":"x"}]}`,
		"duplicate titles": `{"title":"g","width":1,"height":1,"drawings":[` + sunset + `,` + sunset + `]}`,
		"negative height":  `{"title":"g","width":1,"height":-1,"drawings":[]}`,
		"truncated":        `{"title":"g","width":1,`,
	}

	for name, doc := range cases {
		g, _, _ := sampleGallery(nil)
		err := g.UnmarshalJSON([]byte(doc))
		if assert.Error(t, err, name) {
			assert.True(t, IsParseError(err), "%v: expected parse error, got %v", name, err)
		}
		// nothing was applied
		assert.Equal(t, "My Gallery", g.Title(), name)
		assert.Equal(t, []string{"Sunset", "Mountain"}, titles(g.Drawings()), name)
	}
}
