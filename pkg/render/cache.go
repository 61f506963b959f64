package render

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/akeil/gallery/internal/errors"
	"github.com/akeil/gallery/internal/logging"
)

// Cache stores rendered previews by key.
//
// Get returns a "not found" error for a missing key.
type Cache interface {
	Get(key string) (io.ReadCloser, error)
	Put(key string, r io.Reader) error
	Delete(key string) error
}

type memCache struct {
	entries map[string][]byte
	mx      sync.RWMutex
}

// NewMemoryCache returns a Cache that keeps entries in memory.
func NewMemoryCache() Cache {
	return &memCache{entries: make(map[string][]byte)}
}

func (m *memCache) Get(key string) (io.ReadCloser, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()

	data, ok := m.entries[key]
	if !ok {
		return nil, errors.NewNotFound("no cache entry for %q", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memCache) Put(key string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	m.mx.Lock()
	defer m.mx.Unlock()
	m.entries[key] = data
	return nil
}

func (m *memCache) Delete(key string) error {
	m.mx.Lock()
	defer m.mx.Unlock()
	delete(m.entries, key)
	return nil
}

type fsCache struct {
	dir string
	mx  sync.RWMutex
}

// NewFilesystemCache returns a Cache implementation that stores cached data
// as files in the given directory.
func NewFilesystemCache(dir string) Cache {
	return &fsCache{dir: dir}
}

func (f *fsCache) Get(key string) (io.ReadCloser, error) {
	logging.Debug("Cache get %q", key)
	f.mx.RLock()
	defer f.mx.RUnlock()

	r, err := os.Open(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("Cache miss %q", key)
			return nil, errors.NewNotFound("no cache entry for %q", key)
		}
		logging.Warning("Cache error %q", key)
		return nil, errors.NewIOError(err, "cannot read cache entry %q", key)
	}
	return r, nil
}

func (f *fsCache) Put(key string, r io.Reader) error {
	logging.Debug("Cache put %q", key)
	f.mx.Lock()
	defer f.mx.Unlock()

	err := os.MkdirAll(f.dir, 0755)
	if err != nil && !os.IsExist(err) {
		logging.Warning("Failed to create cache directory %q: %v", f.dir, err)
		return errors.NewIOError(err, "cannot create cache directory %q", f.dir)
	}

	w, err := os.Create(f.path(key))
	if err != nil {
		logging.Warning("Cache error %q", key)
		return errors.NewIOError(err, "cannot write cache entry %q", key)
	}

	_, err = io.Copy(w, r)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return errors.NewIOError(err, "cannot write cache entry %q", key)
	}
	return nil
}

func (f *fsCache) Delete(key string) error {
	logging.Debug("Cache delete %q", key)
	f.mx.Lock()
	defer f.mx.Unlock()

	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.NewIOError(err, "cannot delete cache entry %q", key)
	}
	return nil
}

func (f *fsCache) path(key string) string {
	return filepath.Join(f.dir, key)
}
