package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akeil/gallery/internal/config"
	"github.com/akeil/gallery/internal/logging"
	"github.com/akeil/gallery/pkg/events"
	"github.com/akeil/gallery/pkg/render"
)

func doExport(s *config.Settings, log events.Logger, outDir string) error {
	if outDir == "" {
		outDir = s.ExportDir
	}

	st, err := openState(s, log)
	if err != nil {
		return err
	}
	g := st.Gallery()
	selected, _ := st.Selected()

	rc := render.NewContext(render.NewFilesystemCache(cacheDir(s)))

	fmt.Printf("%v export %d drawings from %q\n", ellipsis, g.Len(), g.Title())
	res, err := rc.Export(g, selected, outDir, log)
	if err != nil {
		fmt.Printf("%v Failed to export %q: %v\n", failMark, g.Title(), err)
		return err
	}

	for i, d := range g.Drawings() {
		fmt.Printf("%v preview for %q saved as %q.\n", okMark, d.Title(), res.Previews[i])
	}
	fmt.Printf("%v catalog saved as %q.\n", okMark, res.Catalog)
	return nil
}

func cacheDir(s *config.Settings) string {
	if s.CacheDir != "" {
		return s.CacheDir
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		logging.Warning("No user cache directory: %v", err)
		return filepath.Join(os.TempDir(), "gallery", "previews")
	}
	return filepath.Join(dir, "gallery", "previews")
}
