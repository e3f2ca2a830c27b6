package layout

// Transform maps scene coordinates onto a y-down pixel grid.
type Transform struct {
	Scale      float64
	MinX, MaxY float64
	OffX, OffY float64
}

// Fit scales the scene uniformly into a width x height surface, leaving
// padding (a fraction of the larger extent) on every side.
func Fit(s *Scene, width, height, padding float64) Transform {
	min, max := s.Bounds()
	rangeX := max.X - min.X
	rangeY := max.Y - min.Y
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	extent := rangeX
	if rangeY > extent {
		extent = rangeY
	}
	min.X -= extent * padding
	max.Y += extent * padding
	rangeX += 2 * extent * padding
	rangeY += 2 * extent * padding

	scale := width / rangeX
	if sy := height / rangeY; sy < scale {
		scale = sy
	}

	return Transform{
		Scale: scale,
		MinX:  min.X,
		MaxY:  max.Y,
		OffX:  (width - rangeX*scale) / 2,
		OffY:  (height - rangeY*scale) / 2,
	}
}

func (t Transform) Apply(p Point) (float64, float64) {
	return t.OffX + (p.X-t.MinX)*t.Scale, t.OffY + (t.MaxY-p.Y)*t.Scale
}
