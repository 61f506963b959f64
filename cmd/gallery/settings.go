package main

import (
	"fmt"

	"github.com/akeil/gallery/internal/config"
)

func doConfig(s *config.Settings) error {
	cache := s.CacheDir
	if cache == "" {
		cache = cacheDir(s) + " (default)"
	}

	fmt.Printf("file:       %v\n", s.File)
	fmt.Printf("title:      %v\n", s.Title)
	fmt.Printf("log level:  %v\n", s.LogLevel)
	fmt.Printf("palette:    %v\n", s.Palette)
	fmt.Printf("export dir: %v\n", s.ExportDir)
	fmt.Printf("cache dir:  %v\n", cache)
	fmt.Println()
	fmt.Println(config.Describe())
	return nil
}
