package layout

import (
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/collatree/internal/collatz"
)

const DefaultTitle = "Collatz Sequences"

// Label is the start value printed at the end of a path. Rotation is in
// degrees, counter-clockwise.
type Label struct {
	Text     string
	Pos      Point
	Rotation float64
}

type RenderItem struct {
	Start     int64
	Steps     int
	Truncated bool
	Color     colorful.Color
	Path      Path
	Label     *Label
}

// Scene is the complete output of one pass. Renderers own all drawing;
// a scene is never mutated after it is built.
type Scene struct {
	Items    []RenderItem
	Origin   Point
	Title    string
	FontSize int
}

// Draw pairs every start with its path, assigns colors by ordinal position
// and places a label at the end of every non-empty path.
func Draw(starts collatz.StartSet, trajectories []collatz.Trajectory, paths []Path) []RenderItem {
	n := len(starts)
	colors := Palette(n)
	items := make([]RenderItem, 0, n)

	for i, start := range starts {
		item := RenderItem{
			Start: start,
			Color: colors[i],
		}
		if i < len(trajectories) {
			item.Steps = len(trajectories[i])
		}
		if i < len(paths) {
			item.Path = paths[i]
		}
		if end, ok := item.Path.End(); ok {
			item.Label = &Label{
				Text:     strconv.FormatInt(start, 10),
				Pos:      end,
				Rotation: LabelRotation(end),
			}
		}
		items = append(items, item)
	}
	return items
}

// LabelRotation is the polar angle of p minus 90 degrees, so labels sit
// tangent to the radial sweep.
func LabelRotation(p Point) float64 {
	return math.Atan2(p.Y, p.X)*180/math.Pi - 90
}

// Bounds returns the bounding box of all segment endpoints and the origin.
func (s *Scene) Bounds() (min, max Point) {
	min, max = s.Origin, s.Origin
	grow := func(p Point) {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	for _, item := range s.Items {
		for _, seg := range item.Path {
			grow(seg.From)
			grow(seg.To)
		}
	}
	return min, max
}
