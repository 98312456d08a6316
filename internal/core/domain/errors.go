package domain

import "go.trai.ch/zerr"

var (
	// ErrRevisionFileMissing is returned when no old revision was given and the revision file does not exist.
	ErrRevisionFileMissing = zerr.New("revision file is missing")

	// ErrHeadUnresolved is returned when the repository HEAD cannot be resolved to a revision.
	ErrHeadUnresolved = zerr.New("cannot detect new revision from git repository")

	// ErrInvalidRevision is returned when a revision identifier is empty or malformed.
	ErrInvalidRevision = zerr.New("invalid revision")

	// ErrABIBreak is returned when the comparator reports an incompatible change.
	ErrABIBreak = zerr.New("ABI break detected")

	// ErrNoLibraries is returned when the settings name no libraries to check.
	ErrNoLibraries = zerr.New("no libraries configured")

	// ErrInvalidLibraryName is returned when a library name cannot be used in file names.
	ErrInvalidLibraryName = zerr.New("invalid library name")

	// ErrDuplicateLibrary is returned when a library is listed twice.
	ErrDuplicateLibrary = zerr.New("duplicate library")

	// ErrConfigNotFound is returned when an explicitly requested settings file does not exist.
	ErrConfigNotFound = zerr.New("settings file not found")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrToolMissing is returned when a required external tool is not on PATH.
	ErrToolMissing = zerr.New("required tool not found in PATH")

	// ErrWorkspaceCreateFailed is returned when the temporary workspace cannot be created.
	ErrWorkspaceCreateFailed = zerr.New("failed to create workspace")

	// ErrCacheCorrupted is returned when a cached dump no longer matches its recorded digest.
	ErrCacheCorrupted = zerr.New("cached dump does not match its digest")
)
