package gallery

import (
	"testing"
)

func TestFiltered(t *testing.T) {
	g := New("My Gallery", nil)
	g.Add(NewDrawing("Sunset", 800, 600, RGB(255, 120, 0)))
	g.Add(NewDrawing("Mountain", 1024, 768, RGB(30, 30, 30)))
	g.Add(NewDrawing("Sunflower", 10, 10, RGB(255, 255, 0)))
	sunset, _ := g.Drawing("Sunset")
	sunset.MarkComplete()

	all := g.Filtered()
	if len(all) != 3 {
		t.Errorf("no filters should match everything, got %d", len(all))
	}

	l := g.Filtered(MatchTitle("sun"))
	if len(l) != 2 || l[0].Title() != "Sunset" || l[1].Title() != "Sunflower" {
		t.Errorf("unexpected match result %v", titles(l))
	}

	l = g.Filtered(MatchTitle("SUN"), InProgress)
	if len(l) != 1 || l[0].Title() != "Sunflower" {
		t.Errorf("unexpected match result %v", titles(l))
	}

	l = g.Filtered(IsComplete)
	if len(l) != 1 || l[0].Title() != "Sunset" {
		t.Errorf("unexpected match result %v", titles(l))
	}

	l = g.Filtered(MatchTitle("lake"))
	if len(l) != 0 {
		t.Errorf("unexpected match result %v", titles(l))
	}
}
