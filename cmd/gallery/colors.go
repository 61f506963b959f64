package main

import (
	"fmt"

	"github.com/akeil/gallery/internal/config"
)

func doColors(s *config.Settings) error {
	pal, err := loadPalette(s)
	if err != nil {
		return err
	}

	for _, name := range pal.Names() {
		c, _ := pal.Lookup(name)
		fmt.Printf("%v %-12s %v\n", swatch(c), name, c.Hex())
	}
	return nil
}
