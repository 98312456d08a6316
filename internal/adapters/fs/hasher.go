// Package fs provides file system adapters for hashing files and managing the run workspace.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for dumps and their cache keys.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeDumpKey computes a single hash over every input that shapes a dump.
func (h *Hasher) ComputeDumpKey(key domain.DumpKey) string {
	hasher := xxhash.New()

	for _, field := range []string{
		key.Commit.String(),
		key.Library.Name,
		key.Library.TargetName(),
		key.Library.ArtifactName(),
		key.Label.String(),
		key.CFlags,
		key.PublicHeaders,
	} {
		_, _ = hasher.WriteString(field)
		_, _ = hasher.Write([]byte{0}) // Separator
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
