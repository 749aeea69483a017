// Package colorspace converts Hue device color coordinates to display colors.
package colorspace

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Converter converts CIE xy coordinates plus brightness to hex colors.
type Converter struct{}

// NewConverter returns a Converter.
func NewConverter() Converter {
	return Converter{}
}

// XYToHex converts the xy chromaticity and a 0-255 brightness to "rrggbb".
// The color is scaled down so that no channel exceeds 1 before clamping.
func (Converter) XYToHex(x, y float64, bri int) string {
	Y := math.Max(0, math.Min(float64(bri), 255)) / 255
	c := colorful.Xyy(x, y, Y)

	if m := math.Max(c.R, math.Max(c.G, c.B)); m > 1 {
		c = colorful.Color{R: c.R / m, G: c.G / m, B: c.B / m}
	}
	return strings.TrimPrefix(c.Clamped().Hex(), "#")
}
