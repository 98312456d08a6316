package domain

import (
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// Revision names a point in version-control history: a commit id, a branch, a tag
// or any other expression git accepts.
type Revision string

// String returns the revision as a plain string.
func (r Revision) String() string {
	return string(r)
}

// IsZero reports whether the revision is empty.
func (r Revision) IsZero() bool {
	return r == ""
}

// ParseRevision trims s and checks that it can be handed to git as a single argument.
//
// Revisions are never interpolated into a shell, but git still interprets a leading
// dash as an option, so those are rejected along with embedded whitespace and control
// characters.
func ParseRevision(s string) (Revision, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", zerr.Wrap(ErrInvalidRevision, "revision is empty")
	}

	if strings.HasPrefix(trimmed, "-") {
		return "", zerr.With(zerr.Wrap(ErrInvalidRevision, "revision must not start with '-'"), "revision", trimmed)
	}

	for _, r := range trimmed {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return "", zerr.With(
				zerr.Wrap(ErrInvalidRevision, "revision must not contain whitespace or control characters"),
				"revision", trimmed,
			)
		}
	}

	return Revision(trimmed), nil
}
