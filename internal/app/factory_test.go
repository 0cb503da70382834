package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shadeworks/shade/internal/log"
	"github.com/shadeworks/shade/internal/testutil"
	"github.com/shadeworks/shade/internal/themectx"
	"github.com/shadeworks/shade/internal/ui"
	"github.com/shadeworks/shade/internal/ui/style"
)

func isolate(t *testing.T, config string) string {
	t.Helper()
	t.Cleanup(func() {
		ui.SetDefaultOptions()
		style.Init(false, themectx.Light, nil)
	})
	return testutil.SetupHome(t, config)
}

func TestDefaultOptions(t *testing.T) {
	isolate(t, "")

	opts := DefaultOptions()

	require.True(t, opts.StyleEnabled)
	require.True(t, opts.LogEnabled)
	require.Equal(t, log.LevelInfo, opts.LogLevel)
	require.Equal(t, "system", opts.StyleConfig["theme"])
}

func TestDefaultOptions_ReadsConfigFile(t *testing.T) {
	isolate(t, "enable_log=false\nlog_level=debug\n")

	opts := DefaultOptions()

	require.False(t, opts.LogEnabled)
	require.Equal(t, log.LevelDebug, opts.LogLevel)
}

func TestNewForTesting(t *testing.T) {
	app := NewForTesting()

	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Output)
	require.NotNil(t, app.Styler)
	require.False(t, app.Styler.Enabled())
}

func TestNew_ResolvesThemeFromConfig(t *testing.T) {
	isolate(t, "theme=dark\n")

	app, err := New(Options{StyleEnabled: true, StyleConfig: map[string]string{}})
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	require.Equal(t, themectx.Dark, app.Theme)
	require.Equal(t, themectx.Dark, style.Mode())
	require.True(t, style.Enabled())
}

func TestNew_WithLogEnabled(t *testing.T) {
	dir := isolate(t, "theme=light\n")

	app, err := New(Options{LogEnabled: true, LogLevel: log.LevelDebug})
	require.NoError(t, err)

	require.NotNil(t, log.GetLogger())
	app.Logger.Info("hello")
	require.NoError(t, Close(app))
	require.Nil(t, log.GetLogger())

	data, err := os.ReadFile(filepath.Join(dir, "data", "shade.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "INFO: hello")
}

func TestNew_LogDisabledUsesNop(t *testing.T) {
	dir := isolate(t, "theme=light\n")

	app, err := New(Options{})
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	require.IsType(t, log.NopLogger{}, app.Logger)
	_, err = os.Stat(filepath.Join(dir, "data", "shade.log"))
	require.True(t, os.IsNotExist(err))
}

func TestClose_NilLogger(t *testing.T) {
	app := NewForTesting()
	app.Logger = nil

	require.NoError(t, Close(app))
}
