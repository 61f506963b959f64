package main

import (
	"fmt"
	"strconv"

	"github.com/akeil/gallery/internal/app"
	"github.com/akeil/gallery/internal/config"
	"github.com/akeil/gallery/pkg/events"
)

func doEdit(s *config.Settings, log events.Logger, target, title, width, height, colorName string) error {
	var ch app.Changes
	var err error

	if title != "" {
		ch.Title = &title
	}
	ch.Width, err = parseSize("width", width)
	if err != nil {
		return err
	}
	ch.Height, err = parseSize("height", height)
	if err != nil {
		return err
	}
	if colorName != "" {
		pal, err := loadPalette(s)
		if err != nil {
			return err
		}
		c, err := pal.ParseColor(colorName)
		if err != nil {
			return err
		}
		ch.Color = &c
	}

	if ch == (app.Changes{}) {
		return fmt.Errorf("nothing to change, use --title, --width, --height or --color")
	}

	st, err := openState(s, log)
	if err != nil {
		return err
	}

	d, err := st.Edit(target, ch)
	if err != nil {
		return err
	}

	err = st.Save()
	if err != nil {
		return err
	}

	fmt.Printf("%v Changed %q.\n", okMark, d.Title())
	return nil
}

// parseSize reads an optional size flag; an empty value means "unchanged".
func parseSize(name, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %v %q", name, value)
	}
	if v < 0 {
		return nil, fmt.Errorf("%v must not be negative", name)
	}
	return &v, nil
}

