package main

import (
	"fmt"
	"os"

	"github.com/akeil/gallery/internal/app"
	"github.com/akeil/gallery/internal/config"
	"github.com/akeil/gallery/pkg/events"
)

func doInit(s *config.Settings, log events.Logger, title string, width, height int, force bool) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("canvas size must not be negative")
	}

	_, err := os.Stat(s.File)
	if err == nil && !force {
		return fmt.Errorf("gallery %q exists, use --force to replace it", s.File)
	}

	if title != "" {
		s.Title = title
	}
	st := app.NewState(s, log)
	st.Gallery().SetSize(width, height)

	err = st.Save()
	if err != nil {
		fmt.Printf("%v Failed to create gallery %q: %v\n", failMark, s.Title, err)
		return err
	}

	fmt.Printf("%v Created gallery %q in %q.\n", okMark, s.Title, s.File)
	return nil
}
