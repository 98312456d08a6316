package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/abicheck/internal/core/domain"
)

func TestParseRevision(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        domain.Revision
		errContains string
	}{
		{name: "commit id", input: "0a1b2c3d4e5f", want: "0a1b2c3d4e5f"},
		{name: "trailing newline from revision file", input: "0a1b2c3d\n", want: "0a1b2c3d"},
		{name: "ref expression", input: "HEAD~1", want: "HEAD~1"},
		{name: "tag", input: "LibVNCServer-0.9.14", want: "LibVNCServer-0.9.14"},
		{name: "empty", input: "   ", errContains: "revision is empty"},
		{name: "option injection", input: "--output=/etc/passwd", errContains: "must not start with '-'"},
		{name: "embedded space", input: "HEAD; rm -rf /", errContains: "whitespace"},
		{name: "embedded control", input: "abc\x00def", errContains: "control"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseRevision(tt.input)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.errContains)
				assert.ErrorIs(t, err, domain.ErrInvalidRevision)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRevision_IsZero(t *testing.T) {
	assert.True(t, domain.Revision("").IsZero())
	assert.False(t, domain.Revision("HEAD").IsZero())
}
