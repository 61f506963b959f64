package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/akeil/gallery"
	"github.com/akeil/gallery/internal/config"
	"github.com/akeil/gallery/pkg/events"
)

const titleWidth = 30

func doLs(s *config.Settings, log events.Logger, match string, complete, inProgress bool) error {
	if complete && inProgress {
		return fmt.Errorf("use only one of --complete and --in-progress")
	}

	st, err := openState(s, log)
	if err != nil {
		return err
	}
	g := st.Gallery()

	filters := make([]gallery.Filter, 0)
	if match != "" {
		filters = append(filters, gallery.MatchTitle(match))
	}
	if complete {
		filters = append(filters, gallery.IsComplete)
	}
	if inProgress {
		filters = append(filters, gallery.InProgress)
	}

	header := fmt.Sprintf("%v (%d x %d)", g.Title(), g.Width(), g.Height())
	fmt.Println(header)
	fmt.Println(underline(header))

	if g.Len() == 0 {
		fmt.Println("No drawings yet.")
		return nil
	}

	drawings := g.Filtered(filters...)
	if len(drawings) == 0 {
		fmt.Println("Found no matching drawings.")
		return nil
	}

	selected, _ := st.Selected()
	for _, d := range drawings {
		showRow(d, d == selected)
	}

	return nil
}

func showRow(d *gallery.Drawing, selected bool) {
	if selected {
		fmt.Print("*")
	} else {
		fmt.Print(" ")
	}

	fmt.Print(" ")
	fmt.Print(swatch(d.Color()))
	fmt.Print(" ")

	title := truncate.StringWithTail(d.Title(), titleWidth, ellipsis)
	fmt.Printf("%-*s", titleWidth, title)
	fmt.Printf("  %5d x %-5d  ", d.Width(), d.Height())

	if d.IsComplete() {
		fmt.Print(okMark)
	} else {
		fmt.Print(ellipsis)
	}
	fmt.Print(" ")
	fmt.Print(d.Status())
	fmt.Println()
}

// swatch is a small colored box; without color support, it is blank.
func swatch(c gallery.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render("  ")
}

func underline(s string) string {
	b := make([]rune, 0, len(s))
	for range s {
		b = append(b, '-')
	}
	return string(b)
}
