package expense

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// DefaultFilename is the name of the expenses file when no path is configured.
const DefaultFilename = "expenses.json"

// FileStore persists the collection in a single JSON file.
type FileStore struct {
	path   string
	policy CorruptPolicy
}

// NewFileStore returns a store bound to the file at path.
func NewFileStore(path string, policy CorruptPolicy) *FileStore {
	return &FileStore{path: path, policy: policy}
}

// Path returns the file this store reads and writes.
func (s *FileStore) Path() string { return s.path }

// Policy returns how this store handles unreadable content.
func (s *FileStore) Policy() CorruptPolicy { return s.policy }

// Load reads the whole collection from the file.
//
// A missing file is an empty collection. When the file cannot be read or
// decoded, the store's CorruptPolicy applies.
func (s *FileStore) Load() (*Collection, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("expenses file %q does not exist, starting with an empty collection", s.path)
		return NewCollection(), nil
	}
	if err != nil {
		return s.corrupt(fmt.Errorf("%w: cannot read %q: %w", ErrCorruptStore, s.path, err))
	}

	c, err := DecodeCollection(content)
	if err != nil {
		return s.corrupt(fmt.Errorf("in %q: %w", s.path, err))
	}
	log.Printf("loaded %v from %q", c, s.path)
	return c, nil
}

// corrupt applies the policy to a load failure.
func (s *FileStore) corrupt(err error) (*Collection, error) {
	if s.policy == FailOnCorrupt {
		return nil, err
	}
	log.Printf("warning, discarding unreadable expenses: %v", err)
	return NewCollection(), nil
}

// Save rewrites the whole file with the collection.
func (s *FileStore) Save(c *Collection) error {
	var buf bytes.Buffer
	if err := EncodeCollection(&buf, c); err != nil {
		return err
	}

	// Ensure the directory for the expenses file exists.
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for expenses file %q: %w", s.path, err)
		}
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing expenses file %q: %w", s.path, err)
	}
	log.Printf("saved %v to %q", c, s.path)
	return nil
}
