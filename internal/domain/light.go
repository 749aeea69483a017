// Package domain provides the light model shared by the bridge client, the
// snapshot cache and the query interpreter.
package domain

import (
	"sort"
	"strconv"
)

// AllLightsID is the sentinel light identifier addressing every light at once.
const AllLightsID = "all"

// Brightness and hue bounds as reported by the bridge.
const (
	MaxBrightness = 255
	MaxHue        = 65535
)

// LightState is the reported state of a single light.
type LightState struct {
	On        bool
	Bri       int        // 0-255
	Hue       int        // 0-65535
	Sat       int        // 0-254
	XY        [2]float64 // CIE color coordinates
	Effect    string
	Reachable bool
}

// Light is a read-only snapshot of a light.
type Light struct {
	ID    string
	Name  string
	State LightState
}

// Lights is an ordered light snapshot.
type Lights []Light

// Get returns the light with the given id.
func (ls Lights) Get(id string) (Light, bool) {
	for _, l := range ls {
		if l.ID == id {
			return l, true
		}
	}
	return Light{}, false
}

// IDs returns the light ids in snapshot order.
func (ls Lights) IDs() []string {
	ids := make([]string, len(ls))
	for i, l := range ls {
		ids[i] = l.ID
	}
	return ids
}

// SortLights orders lights by id: numeric ids first in numeric order, then the
// remaining ids lexically.
func SortLights(ls Lights) {
	sort.SliceStable(ls, func(i, j int) bool {
		return lessID(ls[i].ID, ls[j].ID)
	})
}

func lessID(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// HueDegrees converts a bridge hue value to degrees on the color wheel.
func (s LightState) HueDegrees() float64 {
	return float64(s.Hue) / MaxHue * 360
}

// BrightnessPercent converts a bridge brightness value to a percentage.
func (s LightState) BrightnessPercent() float64 {
	return float64(s.Bri) / MaxBrightness * 100
}
