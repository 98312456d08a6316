package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/abicheck/internal/core/domain"
)

func TestSettings_WithDefaults(t *testing.T) {
	s := domain.Settings{}.WithDefaults("/repo")

	assert.Equal(t, "/repo", s.Root)
	assert.Equal(t, filepath.Join("/repo", "test", "abi"), s.BaseDir)
	assert.Equal(t, filepath.Join("/repo", "test", "abi", "published-abi-revision"), s.RevisionFile)
	assert.Equal(t, filepath.Join("/repo", "test", "abi", "abi-check-result"), s.OutputDir)
	assert.Equal(t, "rfb", s.PublicHeaders)
	assert.Equal(t, "-gdwarf-4 -Og", s.CFlags)
	assert.Equal(t, domain.DefaultLibraries(), s.Libraries)
}

func TestSettings_WithDefaults_KeepsExplicitValues(t *testing.T) {
	s := domain.Settings{
		Root:         "/src",
		BaseDir:      "/src/abi",
		RevisionFile: "/pinned",
		CFlags:       "-g",
		Libraries:    []domain.Library{{Name: "foo"}},
	}.WithDefaults("/ignored")

	assert.Equal(t, "/src", s.Root)
	assert.Equal(t, "/pinned", s.RevisionFile)
	assert.Equal(t, filepath.Join("/src/abi", "abi-check-result"), s.OutputDir)
	assert.Equal(t, "-g", s.CFlags)
	assert.Equal(t, []domain.Library{{Name: "foo"}}, s.Libraries)
}

func TestSettings_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, domain.Settings{}.WithDefaults("/repo").Validate())
	})

	t.Run("no libraries", func(t *testing.T) {
		err := domain.Settings{}.Validate()
		require.ErrorIs(t, err, domain.ErrNoLibraries)
	})

	t.Run("duplicate library", func(t *testing.T) {
		err := domain.Settings{Libraries: []domain.Library{{Name: "a"}, {Name: "a"}}}.Validate()
		require.ErrorContains(t, err, domain.ErrDuplicateLibrary.Error())
	})

	t.Run("path separator in name", func(t *testing.T) {
		err := domain.Settings{Libraries: []domain.Library{{Name: "../evil"}}}.Validate()
		require.ErrorIs(t, err, domain.ErrInvalidLibraryName)
	})
}

func TestLibrary_Validate_OptionLikeValues(t *testing.T) {
	tests := []struct {
		name string
		lib  domain.Library
	}{
		{name: "leading dash in name", lib: domain.Library{Name: "-foo"}},
		{name: "double dash name", lib: domain.Library{Name: "--help"}},
		{name: "leading dash in target", lib: domain.Library{Name: "foo", Target: "-bar"}},
		{name: "leading dash in artifact", lib: domain.Library{Name: "foo", Artifact: "-libfoo.so"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.lib.Validate(), domain.ErrInvalidLibraryName)
		})
	}

	require.NoError(t, domain.Library{Name: "vnc-client", Target: "vnc_client.1", Artifact: "lib/libvnc-client.so"}.Validate())
}

func TestLibrary_Defaults(t *testing.T) {
	lib := domain.Library{Name: "vncclient"}
	assert.Equal(t, "vncclient", lib.TargetName())
	assert.Equal(t, "libvncclient.so", lib.ArtifactName())

	custom := domain.Library{Name: "vncserver", Target: "vncserver_shared", Artifact: "lib/libvncserver.so.1"}
	assert.Equal(t, "vncserver_shared", custom.TargetName())
	assert.Equal(t, "lib/libvncserver.so.1", custom.ArtifactName())
}
