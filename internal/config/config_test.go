package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// setupTempHome points HOME at a fresh directory and returns it.
func setupTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeConfig(t *testing.T, home string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".shaderc"), []byte(content), 0600))
}

func TestReadLines_SeedsNewFile(t *testing.T) {
	home := setupTempHome(t)

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Contains(t, lines, "# shade configuration")
	require.Contains(t, lines, "theme=system")
	require.Contains(t, lines, `pager="less -FRSX"`)
	require.Contains(t, lines, "# color_success=")

	info, err := os.Stat(filepath.Join(home, ".shaderc"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestReadLines_ExistingFile(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "theme=dark\r\n# note\r\n")

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Equal(t, []string{"theme=dark", "# note"}, lines)
}

func TestWriteLines_Overwrites(t *testing.T) {
	home := setupTempHome(t)

	require.NoError(t, WriteLines([]string{"theme=dark", "enable_log=false"}))
	require.NoError(t, WriteLines([]string{"theme=light"}))

	content, err := os.ReadFile(filepath.Join(home, ".shaderc"))
	require.NoError(t, err)
	require.Equal(t, "theme=light\n", string(content))

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	for _, e := range entries {
		require.NotContains(t, e.Name(), ".tmp.", "temp file left behind")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "empty input",
			lines: nil,
			want:  map[string]string{},
		},
		{
			name:  "comments and blank lines",
			lines: []string{"# shade", "", "   ", "  # indented", "theme=dark"},
			want:  map[string]string{"theme": "dark"},
		},
		{
			name:  "whitespace and quotes",
			lines: []string{"  pager  =  \"less -R\"  ", "theme=  light"},
			want:  map[string]string{"pager": "less -R", "theme": "light"},
		},
		{
			name:  "inline comment",
			lines: []string{"theme=dark # picked in the demo"},
			want:  map[string]string{"theme": "dark"},
		},
		{
			name:  "hash without space is kept",
			lines: []string{"color_header=#ffaa00"},
			want:  map[string]string{"color_header": "#ffaa00"},
		},
		{
			name:  "equals sign in value",
			lines: []string{"pager=less --prompt=x"},
			want:  map[string]string{"pager": "less --prompt=x"},
		},
		{
			name:  "BOM on first line",
			lines: []string{"\uFEFFtheme=dark"},
			want:  map[string]string{"theme": "dark"},
		},
		{
			name:  "last duplicate wins",
			lines: []string{"theme=dark", "theme=light"},
			want:  map[string]string{"theme": "light"},
		},
		{
			name:  "empty value",
			lines: []string{"color_info="},
			want:  map[string]string{"color_info": ""},
		},
		{
			name:    "missing equals",
			lines:   []string{"theme=dark", "garbage"},
			wantErr: true,
		},
		{
			name:    "empty key",
			lines:   []string{"=dark"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		key, value  string
		wantLines   []string
		wantUpdated bool
	}{
		{
			name:      "add to empty",
			key:       "theme",
			value:     "dark",
			wantLines: []string{"theme=dark"},
		},
		{
			name:        "update existing key",
			lines:       []string{"theme=light", "enable_log=true"},
			key:         "theme",
			value:       "dark",
			wantLines:   []string{"theme=dark", "enable_log=true"},
			wantUpdated: true,
		},
		{
			name:        "keeps inline comment",
			lines:       []string{"theme=light # from demo"},
			key:         "theme",
			value:       "dark",
			wantLines:   []string{"theme=dark # from demo"},
			wantUpdated: true,
		},
		{
			name:      "ignores commented key",
			lines:     []string{"# theme=light"},
			key:       "theme",
			value:     "dark",
			wantLines: []string{"# theme=light", "theme=dark"},
		},
		{
			name:      "quotes values with spaces",
			key:       "pager",
			value:     "less -R",
			wantLines: []string{`pager="less -R"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.lines, tt.key, tt.value)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	got, removed := Unset([]string{"# header", "", "theme=dark", "  theme = light  ", "enable_log=true"}, "theme")
	require.True(t, removed)
	require.Equal(t, []string{"# header", "", "enable_log=true"}, got)

	got, removed = Unset([]string{"enable_log=true"}, "theme")
	require.False(t, removed)
	require.Equal(t, []string{"enable_log=true"}, got)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		key       string
		wantValue string
		wantFound bool
	}{
		{name: "from file", content: "theme=dark\n", key: "theme", wantValue: "dark", wantFound: true},
		{name: "default when missing", content: "enable_log=false\n", key: "theme", wantValue: "system", wantFound: true},
		{name: "default log level", content: "theme=dark\n", key: "log_level", wantValue: "info", wantFound: true},
		{name: "custom key", content: "custom=1\n", key: "custom", wantValue: "1", wantFound: true},
		{name: "unknown key", content: "theme=dark\n", key: "nope", wantFound: false},
		{name: "broken file falls back", content: "garbage\n", key: "theme", wantValue: "system", wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupTempHome(t)
			writeConfig(t, home, tt.content)

			got, found := Get(tt.key)
			require.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				require.Equal(t, tt.wantValue, got)
			}
		})
	}
}

func TestGet_RuntimeDefault(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "theme=dark\n")

	Defaults["history_limit"] = func() string { return "5" }
	t.Cleanup(func() { delete(Defaults, "history_limit") })

	got, found := Get("history_limit")
	require.True(t, found)
	require.Equal(t, "5", got)
}

func TestGetAll(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "theme=light\ncustom=value\n")

	got, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, "light", got["theme"])
	require.Equal(t, "value", got["custom"])
	require.Equal(t, "true", got["enable_log"])
	require.Equal(t, "20", got["history_limit"])
	require.Contains(t, got, "color_success")
}

func TestProvider_RoundTrip(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "# mine\ntheme=system\n")

	p := NewProvider()
	require.NoError(t, p.Set("theme", "dark"))

	value, ok := p.Get("theme")
	require.True(t, ok)
	require.Equal(t, "dark", value)

	require.NoError(t, p.Unset("theme"))
	value, ok = p.Get("theme")
	require.True(t, ok)
	require.Equal(t, "system", value)

	content, err := os.ReadFile(filepath.Join(home, ".shaderc"))
	require.NoError(t, err)
	require.Equal(t, "# mine\n", string(content))

	_, err = os.Stat(filepath.Join(home, ".shaderc.lock"))
	require.True(t, os.IsNotExist(err), "lock must be released")
}

func TestAcquireLock_Timeout(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), ".shaderc.lock")
	require.NoError(t, os.WriteFile(lockPath, []byte("1"), 0600))

	_, err := acquireLock(lockPath, 100*time.Millisecond)
	require.ErrorIs(t, err, ErrLockTimeout)
}

func TestAcquireLock_RemovesStaleLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), ".shaderc.lock")
	require.NoError(t, os.WriteFile(lockPath, []byte("1"), 0600))
	old := time.Now().Add(-2 * staleLockTimeout)
	require.NoError(t, os.Chtimes(lockPath, old, old))

	f, err := acquireLock(lockPath, 100*time.Millisecond)
	require.NoError(t, err)
	releaseLock(f, lockPath)
}
