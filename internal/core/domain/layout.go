package domain

import "path/filepath"

const (
	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "abi-check.yaml"

	// DefaultBaseDir is where the revision file and results live, relative to the repository root.
	DefaultBaseDir = "test/abi"

	// RevisionFileName is the name of the file pinning the last published revision.
	RevisionFileName = "published-abi-revision"

	// OutputDirName is the name of the directory receiving dumps and reports.
	OutputDirName = "abi-check-result"

	// CacheDirName is the name of the dump cache directory inside the output directory.
	CacheDirName = ".cache"

	// WorkspacePrefix prefixes the temporary workspace directory.
	WorkspacePrefix = "abi-check-"

	// BuildDirName is the build directory created inside each snapshot.
	BuildDirName = "build"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout derives artifact paths from the output directory.
// Every method is a pure function of its inputs.
type Layout struct {
	OutputDir string
}

// NewLayout creates a Layout rooted at outputDir.
func NewLayout(outputDir string) Layout {
	return Layout{OutputDir: filepath.Clean(outputDir)}
}

// DumpPath returns the ABI dump path for a library on one side of the comparison.
func (l Layout) DumpPath(library string, label Label) string {
	return filepath.Join(l.OutputDir, library+"-"+label.String()+".dump")
}

// ReportPath returns the compliance report path for a library.
func (l Layout) ReportPath(library string) string {
	return filepath.Join(l.OutputDir, library+"-report.html")
}

// CacheDir returns the dump cache directory.
func (l Layout) CacheDir() string {
	return filepath.Join(l.OutputDir, CacheDirName)
}
