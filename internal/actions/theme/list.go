package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/themectx"
	"github.com/shadeworks/shade/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	overrides, err := deps.GetAll()
	if err != nil {
		return err
	}

	src := deps.NewSource()
	current := src.Theme()

	_, _ = deps.Println("Theme modes (* = current)\n")

	for _, mode := range themectx.Modes {
		marker := "  "
		if mode == current {
			marker = deps.Style.Success("* ")
		}

		preview := renderPreview(style.LoadPalette(mode, overrides), deps.Style.Enabled())
		_, _ = deps.Printf("%s%-6s  %s\n", marker, mode, preview)
	}

	_, _ = deps.Printf("\npreference: %s\n", src.Preference())
	_, _ = deps.Println("Use 'shade theme set <light|dark|system>' or 'shade theme toggle' to change")

	return nil
}

// renderPreview returns text samples in the palette's colors, or the bare
// sample names when styling is off.
func renderPreview(p style.Palette, colored bool) string {
	samples := []struct {
		text  string
		color string
	}{
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Error},
		{"info", p.Info},
		{"muted", p.Muted},
		{"accent", p.Accent},
	}

	var out string
	for i, s := range samples {
		if i > 0 {
			out += " "
		}
		if !colored {
			out += s.text
			continue
		}
		st := lipgloss.NewStyle().Background(lipgloss.Color(p.Background))
		if s.color == "" || s.color == "bold" {
			st = st.Bold(true)
		} else {
			st = st.Foreground(lipgloss.Color(s.color))
		}
		out += st.Render(s.text)
	}
	return out
}
