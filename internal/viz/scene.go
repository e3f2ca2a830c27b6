package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/collatree/internal/layout"
)

// Rasterize draws every item of the scene onto a width x height cell
// canvas, one layer per item, followed by an origin marker on layer
// len(scene.Items).
func Rasterize(scene *layout.Scene, width, height int) *Canvas {
	c := NewCanvas(width, height)
	if scene == nil || width <= 0 || height <= 0 {
		return c
	}

	tr := layout.Fit(scene, float64(width*2-1), float64(height*4-1), 0.05)
	pixel := func(p layout.Point) (int, int) {
		x, y := tr.Apply(p)
		return int(math.Round(x)), int(math.Round(y))
	}

	for i, item := range scene.Items {
		c.SetLayer(i)
		for _, seg := range item.Path {
			x0, y0 := pixel(seg.From)
			x1, y1 := pixel(seg.To)
			c.DrawLine(x0, y0, x1, y1)
		}
	}

	c.SetLayer(len(scene.Items))
	ox, oy := pixel(scene.Origin)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			c.Set(ox+dx, oy+dy)
		}
	}
	return c
}

// RenderScene returns the scene as colored braille text.
func RenderScene(scene *layout.Scene, width, height int, theme Theme) string {
	c := Rasterize(scene, width, height)
	if scene == nil {
		return c.String()
	}

	colors := make([]lipgloss.Color, 0, len(scene.Items)+1)
	for _, item := range scene.Items {
		colors = append(colors, lipgloss.Color(item.Color.Hex()))
	}
	colors = append(colors, theme.Marker)
	return c.Colorize(colors)
}
