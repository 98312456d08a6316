// Package revfile persists the published ABI revision in a plain text file.
package revfile

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RevisionStore = (*Store)(nil)

// Store reads and writes the revision file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the revision held on the first line of the file at path.
func (s *Store) Read(path string) (domain.Revision, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from settings
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(
				zerr.Wrap(domain.ErrRevisionFileMissing,
					"cannot detect old revision automatically, '"+path+"' is missing"),
				"path", path,
			)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read revision file"), "path", path)
	}

	line := ""
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if scanner.Scan() {
		line = scanner.Text()
	}

	rev, err := domain.ParseRevision(line)
	if err != nil {
		return "", zerr.With(err, "path", path)
	}
	return rev, nil
}

// Write replaces the file content with rev and a trailing newline.
func (s *Store) Write(path string, rev domain.Revision) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create revision file directory"), "path", path)
	}
	if err := os.WriteFile(path, []byte(rev.String()+"\n"), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write revision file"), "path", path)
	}
	return nil
}
