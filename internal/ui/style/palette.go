package style

import (
	"os"
	"strings"

	"github.com/shadeworks/shade/internal/themectx"
)

// Palette holds the colors used for one theme mode.
// Values are ANSI color numbers (0-255) or "bold" for bold styling.
type Palette struct {
	Success    string
	Warning    string
	Error      string
	Info       string
	Muted      string
	Header     string
	Accent     string
	Foreground string
	Background string
}

// Light palettes use dark colors for contrast on light backgrounds;
// dark palettes use bright ones.
var palettes = map[themectx.Mode]Palette{
	themectx.Light: {
		Success:    "28",  // dark green
		Warning:    "130", // dark orange
		Error:      "124", // dark red
		Info:       "27",  // dark blue
		Muted:      "243",
		Header:     "bold",
		Accent:     "90", // dark magenta
		Foreground: "235",
		Background: "255",
	},
	themectx.Dark: {
		Success:    "10", // bright green
		Warning:    "11", // bright yellow
		Error:      "9",  // bright red
		Info:       "14", // bright cyan
		Muted:      "245",
		Header:     "bold",
		Accent:     "13", // bright magenta
		Foreground: "252",
		Background: "236",
	},
}

// PaletteFor returns the built-in palette for mode.
func PaletteFor(mode themectx.Mode) Palette {
	return palettes[mode]
}

// colorKeys maps config keys to the palette field they override.
var colorKeys = []struct {
	key string
	set func(*Palette, string)
}{
	{"color_success", func(p *Palette, v string) { p.Success = v }},
	{"color_warning", func(p *Palette, v string) { p.Warning = v }},
	{"color_error", func(p *Palette, v string) { p.Error = v }},
	{"color_info", func(p *Palette, v string) { p.Info = v }},
	{"color_muted", func(p *Palette, v string) { p.Muted = v }},
	{"color_header", func(p *Palette, v string) { p.Header = v }},
}

// LoadPalette returns the palette for mode with overrides applied.
// Resolution priority:
//  1. Environment variable (SHADE_COLOR_*)
//  2. Config file value (color_*)
//  3. Built-in palette
func LoadPalette(mode themectx.Mode, cfg map[string]string) Palette {
	p := PaletteFor(mode)

	for _, ck := range colorKeys {
		if v := os.Getenv("SHADE_" + strings.ToUpper(ck.key)); v != "" {
			ck.set(&p, v)
			continue
		}
		if v := strings.TrimSpace(cfg[ck.key]); v != "" {
			ck.set(&p, v)
		}
	}

	return p
}
