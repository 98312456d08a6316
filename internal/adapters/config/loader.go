// Package config provides the settings loader for abi-check.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings file at path, or the nearest abi-check.yaml above cwd
// when path is empty. Without any file it returns empty settings so the caller
// falls back to built-in defaults.
func (l *Loader) Load(cwd, path string) (*domain.Settings, error) {
	configPath, err := l.findConfiguration(cwd, path)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return &domain.Settings{}, nil
	}

	l.Logger.Info("using settings from " + configPath)

	var file Settingsfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SchemaVersion {
		l.Logger.Warn(fmt.Sprintf("unknown settings version %q in %s, expected %q",
			file.Version, configPath, SchemaVersion))
	}

	if file.Jobs < 0 {
		return nil, zerr.With(zerr.New("jobs must not be negative"), "jobs", strconv.Itoa(file.Jobs))
	}

	return buildSettings(configPath, &file), nil
}

func (l *Loader) findConfiguration(cwd, explicit string) (string, error) {
	if explicit != "" {
		configPath := resolvePath(cwd, explicit)
		if _, err := os.Stat(configPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", zerr.With(domain.ErrConfigNotFound, "path", configPath)
			}
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
		}
		return configPath, nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func buildSettings(configPath string, file *Settingsfile) *domain.Settings {
	configDir := filepath.Dir(configPath)

	settings := &domain.Settings{
		BaseDir:       filepath.Clean(configDir),
		PublicHeaders: file.PublicHeaders,
		CFlags:        file.CFlags,
		Jobs:          file.Jobs,
	}
	if file.Root != "" {
		settings.Root = resolvePath(configDir, file.Root)
	}
	if file.RevisionFile != "" {
		settings.RevisionFile = resolvePath(configDir, file.RevisionFile)
	}
	if file.OutputDir != "" {
		settings.OutputDir = resolvePath(configDir, file.OutputDir)
	}

	for _, dto := range file.Libraries {
		settings.Libraries = append(settings.Libraries, domain.Library{
			Name:     dto.Name,
			Target:   dto.Target,
			Artifact: dto.Artifact,
		})
	}
	return settings
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
