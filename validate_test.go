package gallery

import (
	"strings"
	"testing"
)

func TestValidateDocMessages(t *testing.T) {
	red := 300
	zero := 0
	minus := -1
	title := "x"
	doc := drawingDoc{
		Title:  &title,
		Width:  &minus,
		Height: &zero,
		Red:    &red,
		Green:  &zero,
	}

	err := validateDoc(&doc)
	if err == nil {
		t.Fatal("expected an error")
	}

	msg := err.Error()
	for _, expected := range []string{
		`"width" must be at least 0`,
		`"red" must be at most 255`,
		`missing member "blue"`,
		`missing member "isComplete"`,
	} {
		if !strings.Contains(msg, expected) {
			t.Errorf("message %q does not contain %q", msg, expected)
		}
	}
	if strings.Contains(msg, "height") || strings.Contains(msg, "green") {
		t.Errorf("valid members should not be reported: %q", msg)
	}
}

func TestValidateDocValid(t *testing.T) {
	title := "x"
	zero := 0
	complete := false
	doc := drawingDoc{
		Title:      &title,
		Width:      &zero,
		Height:     &zero,
		Red:        &zero,
		Green:      &zero,
		Blue:       &zero,
		IsComplete: &complete,
	}

	if err := validateDoc(&doc); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}
}
