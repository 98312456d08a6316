// Package cas implements a content-addressed cache of ABI dumps.
package cas

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/zerr"
)

const indexFileName = "index.json"

var _ ports.DumpCache = (*Store)(nil)

// Store implements ports.DumpCache with a flat JSON index next to the dump blobs.
type Store struct {
	hasher ports.Hasher
	mu     sync.Mutex
	now    func() time.Time
}

// NewStore creates a new dump cache.
func NewStore(hasher ports.Hasher) *Store {
	return &Store{hasher: hasher, now: time.Now}
}

func indexPath(dir string) string {
	return filepath.Join(dir, indexFileName)
}

func blobPath(dir, key string) string {
	return filepath.Join(dir, key+".dump")
}

func (s *Store) load(dir string) (map[string]domain.DumpRecord, error) {
	records := make(map[string]domain.DumpRecord)

	//nolint:gosec // Path is derived from settings
	data, err := os.ReadFile(indexPath(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return records, nil
		}
		return nil, zerr.Wrap(err, "failed to read dump cache index")
	}

	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal dump cache index")
	}
	return records, nil
}

func (s *Store) save(dir string, records map[string]domain.DumpRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal dump cache index")
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create dump cache directory")
	}

	//nolint:gosec // Path is derived from settings
	if err := os.WriteFile(indexPath(dir), data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write dump cache index")
	}
	return nil
}

// Restore copies the dump cached under key to dest. It reports false when the
// key is unknown and returns domain.ErrCacheCorrupted when the blob no longer
// matches its recorded digest.
func (s *Store) Restore(dir string, key domain.DumpKey, dest string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(dir)
	if err != nil {
		return false, err
	}

	id := s.hasher.ComputeDumpKey(key)
	record, ok := records[id]
	if !ok {
		return false, nil
	}

	blob := blobPath(dir, id)
	digest, err := s.hasher.ComputeFileHash(blob)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if digest != record.Digest {
		return false, zerr.With(zerr.Wrap(domain.ErrCacheCorrupted, "cached dump digest mismatch"), "key", id)
	}

	if err := copyFile(blob, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Store copies the dump at src into the cache under key.
func (s *Store) Store(dir string, key domain.DumpKey, src string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(dir)
	if err != nil {
		return err
	}

	digest, err := s.hasher.ComputeFileHash(src)
	if err != nil {
		return err
	}

	id := s.hasher.ComputeDumpKey(key)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create dump cache directory")
	}
	if err := copyFile(src, blobPath(dir, id)); err != nil {
		return err
	}

	records[id] = domain.DumpRecord{
		Key:       id,
		Library:   key.Library.Name,
		Label:     key.Label,
		Commit:    key.Commit,
		Digest:    digest,
		Timestamp: s.now().UTC(),
	}
	return s.save(dir, records)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open dump"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dest)
	}

	//nolint:gosec // Path is controlled by caller
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create dump"), "path", dest)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy dump"), "path", dest)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close dump"), "path", dest)
	}
	return nil
}
