// Package format renders timestamps the way the user configured them.
package format

import (
	"strings"
	"time"

	"github.com/shadeworks/shade/internal/config"
)

// DefaultDate is the layout used when display_date is not set.
const DefaultDate = "Jan 02"

// DateTime formats t with date and time according to config.
// Example output: "Jan 23 15:04" or "01/23/2024 3:04 PM"
func DateTime(t time.Time) string {
	d, c := settings()
	return t.Format(DateLayout(d) + " " + TimeLayout(c, false))
}

// Full formats t with date and time including seconds.
// Example output: "Jan 23 15:04:05"
func Full(t time.Time) string {
	d, c := settings()
	return t.Format(DateLayout(d) + " " + TimeLayout(c, true))
}

// DateLayout maps a display_date setting to a Go layout. Presets are
// mm/dd/yyyy, dd/mm/yyyy and yyyy-mm-dd; anything else is taken as a Go
// layout already.
func DateLayout(setting string) string {
	switch strings.TrimSpace(setting) {
	case "":
		return DefaultDate
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		return setting
	}
}

// TimeLayout maps a display_time setting ("12h" or "24h") to a Go layout.
func TimeLayout(setting string, seconds bool) string {
	if strings.TrimSpace(setting) == "12h" {
		if seconds {
			return "3:04:05 PM"
		}
		return "3:04 PM"
	}
	if seconds {
		return "15:04:05"
	}
	return "15:04"
}

func settings() (string, string) {
	d, _ := config.Get("display_date")
	c, _ := config.Get("display_time")
	return d, c
}
