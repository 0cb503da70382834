// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Warning, Error, etc.) rather than visual.
// Colors come from the palette of the active theme mode, so output follows
// the user's light/dark choice. When disabled, every helper returns its input
// unchanged with no ANSI codes.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/shadeworks/shade/internal/themectx"
)

var (
	mu      sync.RWMutex
	enabled bool
	mode    themectx.Mode
	cfg     map[string]string
	current Styles
)

// Styles are the lipgloss styles derived from one palette.
type Styles struct {
	Palette Palette

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
	Header  lipgloss.Style
	Accent  lipgloss.Style

	// Surface paints the palette background, used by themed UI panels.
	Surface lipgloss.Style
}

// NewStyles builds the styles for p.
func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,
		Success: makeStyle(p.Success),
		Warning: makeStyle(p.Warning),
		Error:   makeStyle(p.Error),
		Info:    makeStyle(p.Info),
		Muted:   makeStyle(p.Muted),
		Header:  makeStyle(p.Header),
		Accent:  makeStyle(p.Accent),
		Surface: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Foreground)).
			Background(lipgloss.Color(p.Background)),
	}
}

// For returns the styles of mode with the configured overrides applied.
// It does not depend on whether global styling is enabled.
func For(m themectx.Mode) Styles {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	return NewStyles(LoadPalette(m, c))
}

// Init sets up the package styles for the given mode. NO_COLOR and
// SHADE_NO_COLOR disable styling regardless of enable.
//
// This function should be called once from main before any output.
func Init(enable bool, m themectx.Mode, config map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	mode = m
	cfg = config

	if os.Getenv("NO_COLOR") != "" || os.Getenv("SHADE_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		// ANSI256 regardless of TTY detection so palettes render the same
		// when piped through the pager.
		lipgloss.SetColorProfile(termenv.ANSI256)
		current = NewStyles(LoadPalette(mode, cfg))
	}
}

// SetMode switches the global styles to another theme mode.
func SetMode(m themectx.Mode) {
	mu.Lock()
	defer mu.Unlock()

	mode = m
	if enabled {
		current = NewStyles(LoadPalette(mode, cfg))
	}
}

// Mode returns the theme mode the global styles were built for.
func Mode() themectx.Mode {
	mu.RLock()
	defer mu.RUnlock()
	return mode
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(pick func(Styles) lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return pick(current).Render(text)
}

// Success styles text for successful operations.
func Success(text string) string {
	return render(func(s Styles) lipgloss.Style { return s.Success }, text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	return render(func(s Styles) lipgloss.Style { return s.Warning }, text)
}

// Error styles text for error messages.
func Error(text string) string {
	return render(func(s Styles) lipgloss.Style { return s.Error }, text)
}

// Info styles text for informational messages.
func Info(text string) string {
	return render(func(s Styles) lipgloss.Style { return s.Info }, text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	return render(func(s Styles) lipgloss.Style { return s.Header }, text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	return render(func(s Styles) lipgloss.Style { return s.Muted }, text)
}

// Accent styles text that should stand out without a semantic meaning.
func Accent(text string) string {
	return render(func(s Styles) lipgloss.Style { return s.Accent }, text)
}
