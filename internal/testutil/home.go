package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupHome points HOME and SHADE_HOME at a fresh temp dir and clears the
// environment overrides shade reads. If config is not empty it is written
// to ~/.shaderc. It returns the home directory; app data lives in home/data.
func SetupHome(t *testing.T, config string) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHADE_HOME", filepath.Join(home, "data"))
	t.Setenv("SHADE_THEME", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("SHADE_NO_COLOR", "")

	if config != "" {
		require.NoError(t, os.WriteFile(filepath.Join(home, ".shaderc"), []byte(config), 0600))
	}
	return home
}
