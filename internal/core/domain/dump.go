package domain

import "time"

// DumpKey identifies an ABI dump by everything that influences its content.
type DumpKey struct {
	Commit        Revision
	Library       Library
	Label         Label
	CFlags        string
	PublicHeaders string
}

// DumpRecord describes a dump stored in the dump cache.
type DumpRecord struct {
	Key       string    `json:"key,omitzero"`
	Library   string    `json:"library,omitzero"`
	Label     Label     `json:"label,omitzero"`
	Commit    Revision  `json:"commit,omitzero"`
	Digest    string    `json:"digest,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// CompareResult is the outcome of comparing one library's old and new dumps.
type CompareResult struct {
	Library    string
	ReportPath string
	Compatible bool
	ExitCode   int
}
