package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/akeil/gallery/internal/logging"
)

// DefaultMode is used for new files.
const DefaultMode os.FileMode = 0644

// CreateTemp creates a hidden temp file in the directory of path.
//
// The temp file gets the permissions of an existing regular file at path,
// or DefaultMode if there is none, so that moving it in place keeps the mode.
func CreateTemp(path string) (*os.File, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	mode := DefaultMode
	info, err := os.Stat(path)
	if err == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return nil, err
	}
	err = f.Chmod(mode)
	if err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, err
	}
	return f, nil
}

// Move moves a file from src to dst.
// It tries os.Rename() first. If that fails, src is copied to a temp file
// next to dst, which is then renamed to dst.
//
// If src cannot be deleted after a successful copy,
// NO error is returned and src remains as it was.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	// Rename may have failed when moving across file systems.
	logging.Debug("Rename failed for %v -> %v, fall back on copy and rename", src, dst)
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := CreateTemp(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(w.Name(), dst)
	}
	if err != nil {
		os.Remove(w.Name())
		return err
	}

	ignoredErr := os.Remove(src)
	if ignoredErr != nil {
		logging.Error("Failed to remove file %v", src)
	}

	return nil
}

// MkdirFor creates the parent directory of the given file path.
func MkdirFor(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	err := os.MkdirAll(dir, perm)
	if err != nil && !os.IsExist(err) {
		return err
	}
	return nil
}
