package config

// SchemaVersion is the settings file version understood by this loader.
const SchemaVersion = "1"

// Settingsfile represents the structure of the abi-check.yaml configuration file.
type Settingsfile struct {
	Version       string       `yaml:"version"`
	Root          string       `yaml:"root"`
	RevisionFile  string       `yaml:"revisionFile"`
	OutputDir     string       `yaml:"outputDir"`
	PublicHeaders string       `yaml:"publicHeaders"`
	CFlags        string       `yaml:"cflags"`
	Jobs          int          `yaml:"jobs"`
	Libraries     []LibraryDTO `yaml:"libraries"`
}

// LibraryDTO represents a library entry in the configuration.
type LibraryDTO struct {
	Name     string `yaml:"name"`
	Target   string `yaml:"target"`
	Artifact string `yaml:"artifact"`
}
