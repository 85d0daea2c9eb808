package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathCmd_PrintsTodaysFile(t *testing.T) {
	setupCLI(t)
	base := t.TempDir()

	out, err := runCLI(t, "", "--log-path", base, "--host", "HOST01", "--component", "backup", "path")

	require.NoError(t, err)
	assert.Equal(t, todayFile(base, "backup")+"\n", out)
	// And: nothing is created
	assert.NoDirExists(t, filepath.Join(base, "Logs"))
}

func TestPathCmd_Dir(t *testing.T) {
	setupCLI(t)
	base := t.TempDir()

	out, err := runCLI(t, "", "--log-path", base, "path", "--dir")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "Logs")+"\n", out)
}
