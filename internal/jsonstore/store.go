// Package jsonstore persists a record collection as one flat JSON file.
// Every read loads the whole file; every mutation rewrites it. A missing
// or unreadable file is the empty collection, never an error.
package jsonstore

import (
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Collection is a file-backed list of records of one kind. The key
// function extracts the record identifier used by Replace and Remove.
// File access is serialized per collection so the server's own handlers
// never interleave a read with a partial rewrite; cross-process writers
// still race (last writer wins).
type Collection[T any] struct {
	path string
	key  func(T) string

	mu sync.Mutex
}

func Open[T any](path string, key func(T) string) (*Collection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "jsonstore: create data dir")
	}
	return &Collection[T]{path: path, key: key}, nil
}

// ReadAll returns every record in the store. Missing or corrupt files
// yield an empty, non-nil slice.
func (c *Collection[T]) ReadAll() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLocked()
}

func (c *Collection[T]) readLocked() []T {
	items := []T{}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return items
	}
	if err := json.Unmarshal(data, &items); err != nil {
		zap.L().Warn("jsonstore: unreadable collection file, treating as empty",
			zap.String("path", c.path), zap.Error(err))
		return []T{}
	}
	return items
}

func (c *Collection[T]) writeLocked(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "jsonstore: encode collection")
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "jsonstore: rewrite %s", c.path)
	}
	return nil
}

// Append adds a record and rewrites the file.
func (c *Collection[T]) Append(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.readLocked()
	items = append(items, item)
	return c.writeLocked(items)
}

// Replace swaps the record whose key matches. It returns false without
// touching the file when no record matches.
func (c *Collection[T]) Replace(item T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.readLocked()
	id := c.key(item)
	for i := range items {
		if c.key(items[i]) == id {
			items[i] = item
			return true, c.writeLocked(items)
		}
	}
	return false, nil
}

// Remove filters out the record with the given key and rewrites the file.
// Removing an absent id is not an error.
func (c *Collection[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.readLocked()
	kept := items[:0]
	for _, item := range items {
		if c.key(item) != id {
			kept = append(kept, item)
		}
	}
	return c.writeLocked(kept)
}

// Clear rewrites the store as the empty collection.
func (c *Collection[T]) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked([]T{})
}

// Size returns the record count and on-disk byte size.
func (c *Collection[T]) Size() (int, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.readLocked())
	fi, err := os.Stat(c.path)
	if err != nil {
		return n, 0
	}
	return n, fi.Size()
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}
