package ports

import (
	"context"

	"go.trai.ch/abicheck/internal/core/domain"
)

// DumpRequest describes one ABI dump.
type DumpRequest struct {
	Label         domain.Label
	Artifact      string
	PublicHeaders string
	Output        string
	WorkingDir    string
}

// Dumper produces an ABI dump from a built shared library.
//
//go:generate go run go.uber.org/mock/mockgen -source=abi.go -destination=mocks/mock_abi.go -package=mocks
type Dumper interface {
	Dump(ctx context.Context, req DumpRequest) error
}

// Comparator compares two ABI dumps of the same library.
type Comparator interface {
	// Compare writes a report to reportPath. A detected incompatibility is not
	// an error: it is returned as a result with Compatible set to false.
	Compare(ctx context.Context, library, oldDump, newDump, reportPath string) (domain.CompareResult, error)
}
