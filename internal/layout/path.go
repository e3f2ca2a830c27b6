package layout

import (
	"math"

	"github.com/san-kum/collatree/internal/collatz"
)

type Point struct {
	X, Y float64
}

type Segment struct {
	From, To Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
}

type Path []Segment

// End returns the final endpoint of the path.
func (p Path) End() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1].To, true
}

// GeneratePath walks the trajectory from the origin with an initial heading
// of pi/2, emitting one segment per value. Angles are in radians.
func GeneratePath(t collatz.Trajectory, branchLength, angleEven, angleOdd float64) Path {
	path := make(Path, 0, len(t))
	x, y, heading := 0.0, 0.0, math.Pi/2

	for _, v := range t {
		nx := x + branchLength*math.Cos(heading)
		ny := y + branchLength*math.Sin(heading)
		path = append(path, Segment{From: Point{x, y}, To: Point{nx, ny}})
		if v%2 == 0 {
			heading += angleEven
		} else {
			heading += angleOdd
		}
		x, y = nx, ny
	}
	return path
}
