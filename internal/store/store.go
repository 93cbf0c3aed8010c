package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"handwerk/internal/models"
)

// ErrCorruptData is returned when the data file exists but does not
// contain a valid document. Callers treat this as fatal; there is no
// auto-repair.
var ErrCorruptData = errors.New("data file is corrupt")

// tempFilePrefix is the prefix used for temporary files during saves
const tempFilePrefix = "handwerk-tmp-"

// Store reads and writes the document at a fixed path. The path is
// supplied by the caller at construction; the store never consults
// globals or the environment.
type Store struct {
	path string
}

// New creates a store bound to the given data file path
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the data file path the store operates on
func (s *Store) Path() string {
	return s.path
}

// Load reads the document from disk. A missing file yields a fresh
// empty document. A file that exists but cannot be read or parsed is an
// error; parse failures wrap ErrCorruptData.
func (s *Store) Load() (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptData, s.path, err)
	}

	doc.Normalize()
	return &doc, nil
}

// Save writes the full document as indented JSON. The write goes
// through a temp file in the target directory followed by a rename, so
// readers never observe a half-written file. There is no locking
// between processes; concurrent invocations are last-writer-wins.
func (s *Store) Save(doc *models.Document) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := marshalDocument(doc)
	if err != nil {
		return err
	}

	return writeFileAtomic(s.path, data, 0644)
}

// marshalDocument renders the document with two-space indentation and
// without HTML escaping, so names like "Müller & Söhne" stay verbatim.
func marshalDocument(doc *models.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to a temp file in the same directory and
// renames it over the target filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // Clean up if we fail before rename

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}
