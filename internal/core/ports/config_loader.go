package ports

import "go.trai.ch/abicheck/internal/core/domain"

// SettingsLoader defines the interface for loading run settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file at path. An empty path searches cwd and its
	// parents for the default settings file and falls back to empty settings.
	Load(cwd, path string) (*domain.Settings, error)
}
