package analysis

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/collatree/internal/collatz"
	"github.com/san-kum/collatree/internal/layout"
)

// SequencePlot charts the values of a trajectory in step order.
func SequencePlot(t collatz.Trajectory, width, height int) string {
	if len(t) == 0 {
		return ""
	}
	data := make([]float64, len(t))
	for i, v := range t {
		data[i] = float64(v)
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("trajectory of %d (%d values, peak %d)", t[0], len(t), t.Peak())),
	)
}

// LengthHistogram charts the trajectory length of every scene item in
// palette order.
func LengthHistogram(scene *layout.Scene, width, height int) string {
	if scene == nil || len(scene.Items) == 0 {
		return ""
	}
	data := make([]float64, len(scene.Items))
	for i, item := range scene.Items {
		data[i] = float64(item.Steps)
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("trajectory length per item"),
	)
}
