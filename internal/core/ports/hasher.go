package ports

import "go.trai.ch/abicheck/internal/core/domain"

// Hasher computes content and cache-key digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns the hex digest of the file content at path.
	ComputeFileHash(path string) (string, error)

	// ComputeDumpKey returns the cache key for a dump.
	ComputeDumpKey(key domain.DumpKey) string
}
