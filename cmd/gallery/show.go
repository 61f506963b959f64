package main

import (
	"fmt"

	"github.com/akeil/gallery"
	"github.com/akeil/gallery/internal/config"
	"github.com/akeil/gallery/pkg/events"
)

func doShow(s *config.Settings, log events.Logger, title string) error {
	st, err := openState(s, log)
	if err != nil {
		return err
	}

	var d *gallery.Drawing
	if title == "" {
		var ok bool
		d, ok = st.Selected()
		if !ok {
			fmt.Println("No drawing selected.")
			return nil
		}
	} else {
		d, err = st.Drawing(title)
		if err != nil {
			return err
		}
	}

	fmt.Println(d)

	pal, err := loadPalette(s)
	if err != nil {
		return err
	}
	if name, ok := pal.Name(d.Color()); ok {
		fmt.Printf("Color name: %v\n", name)
	}
	return nil
}
