// Package ports defines the boundary interfaces consumed by the query interpreter.
package ports

import (
	"context"

	"github.com/cristianoliveira/alfred-hue/internal/domain"
)

// LightSource provides light snapshots from the bridge.
type LightSource interface {
	// CachedLights returns a possibly stale snapshot, used for routing.
	CachedLights(ctx context.Context) (domain.Lights, error)
	// LiveLights returns a fresh snapshot. An empty result means the bridge is unreachable.
	LiveLights(ctx context.Context) (domain.Lights, error)
}

// ColorConverter converts device color coordinates to a hex color.
type ColorConverter interface {
	XYToHex(x, y float64, bri int) string
}

// PresetLister enumerates saved preset names.
type PresetLister interface {
	PresetNames() ([]string, error)
}
