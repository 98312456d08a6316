package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEnvironment(t *testing.T) {
	env := resolveEnvironment(
		[]string{"PATH=/usr/bin", "CFLAGS=-O2", "malformed"},
		map[string]string{"CFLAGS": "-gdwarf-4 -Og"},
	)

	assert.Equal(t, []string{"CFLAGS=-gdwarf-4 -Og", "PATH=/usr/bin"}, env)
}

func TestLookPath_NoPath(t *testing.T) {
	_, err := lookPath("git", []string{"HOME=/root"})
	assert.Error(t, err)
}
