package domain

import (
	"time"

	"github.com/shadeworks/shade/internal/themectx"
)

// Origin tells how a theme change came about.
type Origin int

const (
	OriginToggle   Origin = iota // toggled by a consumer
	OriginExternal               // changed by the source itself
)

func (o Origin) String() string {
	switch o {
	case OriginToggle:
		return "toggle"
	case OriginExternal:
		return "external"
	default:
		return "unknown"
	}
}

// ParseOrigin converts a stored origin name back to an Origin.
// Unknown names map to OriginToggle.
func ParseOrigin(s string) Origin {
	if s == "external" {
		return OriginExternal
	}
	return OriginToggle
}

// ThemeEvent is one recorded theme change.
type ThemeEvent struct {
	ID      int64
	Session string
	From    themectx.Mode
	To      themectx.Mode
	Origin  Origin
	At      time.Time
}

// ThemeEventFilter narrows List results. Zero values mean no filter.
type ThemeEventFilter struct {
	Session string
	Limit   int
}
