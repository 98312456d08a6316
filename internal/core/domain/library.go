package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// A leading '-' is rejected so names are never read as tool options.
var validLibraryNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_.+-]*$`)

// Library describes one shared library whose ABI is checked.
type Library struct {
	// Name is the library name without the "lib" prefix, e.g. "vncclient".
	Name string
	// Target is the build-system target. Defaults to Name.
	Target string
	// Artifact is the shared object path relative to the build directory.
	// Defaults to "lib<Name>.so".
	Artifact string
}

// TargetName returns the build target for the library.
func (l Library) TargetName() string {
	if l.Target != "" {
		return l.Target
	}
	return l.Name
}

// ArtifactName returns the shared object path relative to the build directory.
func (l Library) ArtifactName() string {
	if l.Artifact != "" {
		return l.Artifact
	}
	return "lib" + l.Name + ".so"
}

// Validate checks that the library name is safe to use in file names and that
// neither the name, the target nor the artifact can be mistaken for an option.
func (l Library) Validate() error {
	if !validLibraryNameRegex.MatchString(l.Name) {
		return zerr.With(zerr.Wrap(ErrInvalidLibraryName, "unsupported characters in library name"), "library", l.Name)
	}
	if l.Target != "" && !validLibraryNameRegex.MatchString(l.Target) {
		return zerr.With(zerr.Wrap(ErrInvalidLibraryName, "invalid build target"), "target", l.Target)
	}
	if strings.HasPrefix(l.Artifact, "-") {
		return zerr.With(zerr.Wrap(ErrInvalidLibraryName, "invalid artifact path"), "artifact", l.Artifact)
	}
	return nil
}
