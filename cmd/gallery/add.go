package main

import (
	"fmt"

	"github.com/akeil/gallery/internal/config"
	"github.com/akeil/gallery/pkg/events"
)

func doAdd(s *config.Settings, log events.Logger, title string, width, height int, colorName string) error {
	pal, err := loadPalette(s)
	if err != nil {
		return err
	}
	c, err := pal.ParseColor(colorName)
	if err != nil {
		return err
	}

	st, err := openState(s, log)
	if err != nil {
		return err
	}

	d, err := st.AddDrawing(title, width, height, c)
	if err != nil {
		return err
	}

	err = st.Save()
	if err != nil {
		return err
	}

	fmt.Printf("%v Added %q.\n", okMark, d.Title())
	return nil
}
