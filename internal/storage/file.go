// Package storage reads and writes the phone book data file: a JSON array of
// tagged records, replaced atomically on every save.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// emptyArray is the content of a freshly created data file.
var emptyArray = []byte("[]\n")

// File is a phone book data file at a fixed path.
type File struct {
	path string
}

// NewFile returns a File for path. Nothing is read or created until Ensure,
// Load or Save is called.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file location.
func (f *File) Path() string { return f.path }

// Ensure creates the file containing an empty array if it does not exist.
// It reports whether the file was created.
func (f *File) Ensure() (bool, error) {
	return EnsureFile(f.path)
}

// Load reads and decodes the file. Decoding failures wrap ErrParse; read
// failures are returned as is.
func (f *File) Load() ([]types.Contact, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	return Decode(data)
}

// Save encodes records and atomically replaces the file with the result.
func (f *File) Save(records []types.Contact) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	return WriteFileAtomic(f.path, data)
}

// EnsureFile creates path, and any missing parent directories, holding an
// empty JSON array. An existing file is left untouched. It reports whether
// the file was created.
func EnsureFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := WriteFileAtomic(path, emptyArray); err != nil {
		return false, err
	}
	return true, nil
}

// WriteFileAtomic writes data to path using the temp-file, fsync, rename
// pattern. Readers see either the old content or the new, never a partial
// write. The temp file is removed on failure.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing data: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
