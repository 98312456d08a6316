package ports

import "go.trai.ch/abicheck/internal/core/domain"

// RevisionStore reads and writes the file pinning the last published revision.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RevisionStore interface {
	// Read returns the pinned revision.
	// It returns domain.ErrRevisionFileMissing if the file does not exist.
	Read(path string) (domain.Revision, error)

	// Write overwrites the file with rev.
	Write(path string, rev domain.Revision) error
}

// DumpCache keeps ABI dumps across runs, keyed by everything that affects them.
type DumpCache interface {
	// Restore copies the cached dump for key to dest.
	// It reports false, nil on a miss.
	Restore(dir string, key domain.DumpKey, dest string) (bool, error)

	// Store records the dump at src under key.
	Store(dir string, key domain.DumpKey, src string) error
}
