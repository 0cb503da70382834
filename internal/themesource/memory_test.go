package themesource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shadeworks/shade/internal/themectx"
	"github.com/shadeworks/shade/internal/themesource"
)

func TestMemory_Toggle(t *testing.T) {
	m := themesource.NewMemory(themectx.Light)
	require.Equal(t, themectx.Light, m.Theme())

	var seen []themectx.Mode
	cancel := m.Subscribe(func(mode themectx.Mode) { seen = append(seen, mode) })

	m.ToggleTheme()
	m.ToggleTheme()
	require.Equal(t, themectx.Light, m.Theme())
	require.Equal(t, []themectx.Mode{themectx.Dark, themectx.Light}, seen)

	cancel()
	cancel()
	m.ToggleTheme()
	require.Len(t, seen, 2)
}

func TestMemory_Set(t *testing.T) {
	m := themesource.NewMemory(themectx.Dark)

	calls := 0
	m.Subscribe(func(themectx.Mode) { calls++ })

	m.Set(themectx.Dark)
	require.Zero(t, calls, "same value is not a change")

	m.Set(themectx.Light)
	require.Equal(t, 1, calls)
	require.Equal(t, themectx.Light, m.Theme())
}
