package banner_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/abicheck/internal/ui/banner"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, banner.Render(&buf, "vncserver", "/repo/test/abi/abi-check-result/vncserver-report.html"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, strings.Repeat("~", 76), lines[0])
	assert.Equal(t, "~ ERROR: ABI break detected in vncserver", lines[1])
	assert.Equal(t, "~ Please check the report at file:///repo/test/abi/abi-check-result/vncserver-report.html", lines[2])
	assert.Equal(t, "~ On GitHub Actions, this report is also available in workflow artifacts", lines[3])
	assert.Equal(t, lines[0], lines[4])
	assert.NotContains(t, buf.String(), "\x1b[")
}
