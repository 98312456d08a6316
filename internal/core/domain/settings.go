package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

const (
	// DefaultCFlags keeps enough debug information for abi-dumper.
	DefaultCFlags = "-gdwarf-4 -Og"

	// DefaultPublicHeaders is the public header directory, relative to a snapshot.
	DefaultPublicHeaders = "rfb"
)

// DefaultLibraries returns the libraries checked when the settings name none.
func DefaultLibraries() []Library {
	return []Library{{Name: "vncclient"}, {Name: "vncserver"}}
}

// Settings holds everything a check run needs to know about the repository.
// Paths are absolute once WithDefaults has been applied.
type Settings struct {
	// Root is the repository root. Empty means "ask git".
	Root string
	// BaseDir anchors RevisionFile and OutputDir when they are not set.
	BaseDir string
	// RevisionFile pins the last published revision.
	RevisionFile string
	// OutputDir receives dumps and reports.
	OutputDir string
	// PublicHeaders is the public header directory relative to a snapshot.
	PublicHeaders string
	// CFlags is passed to the build configuration step.
	CFlags string
	// Jobs is the build parallelism; zero leaves it to the build tool.
	Jobs int
	// Libraries lists the libraries to check.
	Libraries []Library
}

// WithDefaults returns a copy of s with empty fields filled in, using root as
// the repository root when s.Root is empty.
func (s Settings) WithDefaults(root string) Settings {
	out := s
	if out.Root == "" {
		out.Root = root
	}
	if out.BaseDir == "" {
		out.BaseDir = filepath.Join(out.Root, DefaultBaseDir)
	}
	if out.RevisionFile == "" {
		out.RevisionFile = filepath.Join(out.BaseDir, RevisionFileName)
	}
	if out.OutputDir == "" {
		out.OutputDir = filepath.Join(out.BaseDir, OutputDirName)
	}
	if out.PublicHeaders == "" {
		out.PublicHeaders = DefaultPublicHeaders
	}
	if out.CFlags == "" {
		out.CFlags = DefaultCFlags
	}
	if len(out.Libraries) == 0 {
		out.Libraries = DefaultLibraries()
	}
	return out
}

// Validate checks the library list.
func (s Settings) Validate() error {
	if len(s.Libraries) == 0 {
		return ErrNoLibraries
	}

	seen := make(map[string]bool, len(s.Libraries))
	for _, lib := range s.Libraries {
		if err := lib.Validate(); err != nil {
			return err
		}
		if seen[lib.Name] {
			return zerr.With(ErrDuplicateLibrary, "library", lib.Name)
		}
		seen[lib.Name] = true
	}
	return nil
}

// Layout returns the artifact layout for the output directory.
func (s Settings) Layout() Layout {
	return NewLayout(s.OutputDir)
}
