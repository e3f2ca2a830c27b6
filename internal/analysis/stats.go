package analysis

import (
	"github.com/san-kum/collatree/internal/collatz"
	"github.com/san-kum/collatree/internal/layout"
)

type Summary struct {
	Count      int
	Truncated  int
	MeanSteps  float64
	MinSteps   int
	MaxSteps   int
	Peak       int64
	PeakStart  int64
	LongestRun int64
}

// Summarize collects per-scene statistics. Peaks are taken over the
// depth-capped trajectories the scene was drawn from.
func Summarize(scene *layout.Scene, maxDepth int) Summary {
	var s Summary
	if scene == nil || len(scene.Items) == 0 {
		return s
	}

	total := 0
	s.MinSteps = scene.Items[0].Steps
	for _, item := range scene.Items {
		s.Count++
		total += item.Steps
		if item.Truncated {
			s.Truncated++
		}
		if item.Steps < s.MinSteps {
			s.MinSteps = item.Steps
		}
		if item.Steps > s.MaxSteps {
			s.MaxSteps = item.Steps
			s.LongestRun = item.Start
		}
		seq, err := collatz.Sequence(item.Start, maxDepth)
		if err != nil {
			continue
		}
		if peak := seq.Peak(); peak > s.Peak {
			s.Peak = peak
			s.PeakStart = item.Start
		}
	}
	s.MeanSteps = float64(total) / float64(s.Count)
	return s
}
