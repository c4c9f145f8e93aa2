// Package session persists the local session state of the CLI: the auth
// token, the user snapshot, and the active company selection. Each lives in
// its own slot so they can be cleared independently.
package session

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/lumera-core/lumera-cli/internal/errors"
)

// Storage is the key-value backend behind the session store. Implementations
// must be safe for concurrent use; all operations are synchronous and make
// no network calls.
type Storage interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)

	// Set writes the value for key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}

// FileStorage keeps each key in its own file under dir, mode 0600.
type FileStorage struct {
	dir string
	mu  sync.Mutex
}

// NewFileStorage creates a file-backed storage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Get reads the file for key. Any read failure reports the key as absent.
func (f *FileStorage) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(f.dir, key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set writes the file for key, creating the directory on first use.
func (f *FileStorage) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return errors.Wrap(errors.ErrCodeSessionStorage, "failed to create state directory", err)
	}

	if err := os.WriteFile(filepath.Join(f.dir, key), []byte(value), 0600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionStorage, "failed to write "+key, err)
	}
	return nil
}

// Remove deletes the file for key.
func (f *FileStorage) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(filepath.Join(f.dir, key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionStorage, "failed to remove "+key, err)
	}
	return nil
}

// MemoryStorage is an in-memory Storage for tests.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the value for key.
func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	return v, ok
}

// Set writes the value for key.
func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Remove deletes the key.
func (m *MemoryStorage) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
