package layout

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// hueSpan is the hue range of the spectrum, red through magenta. The sweep
// never wraps back to red.
const hueSpan = 315.0

// Palette samples n colors evenly across the spectrum, first and last
// samples included.
func Palette(n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	colors := make([]colorful.Color, n)
	for i := range colors {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = colorful.Hsv(t*hueSpan, 1, 1)
	}
	return colors
}
