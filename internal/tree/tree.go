// Package tree runs a complete generation pass: validate parameters, sample
// starts, compute trajectories, lay out paths and assemble the scene.
package tree

import (
	"fmt"

	"github.com/san-kum/collatree/internal/collatz"
	"github.com/san-kum/collatree/internal/layout"
)

// Build recomputes a scene from scratch. On error no scene is returned.
func Build(p collatz.Params, rng collatz.Rand) (*layout.Scene, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	starts, err := collatz.GenerateStarts(p, rng)
	if err != nil {
		return nil, fmt.Errorf("sampling starts: %w", err)
	}

	seqs := make([]collatz.Trajectory, len(starts))
	paths := make([]layout.Path, len(starts))
	for i, n := range starts {
		seqs[i], err = collatz.Sequence(n, p.MaxDepth)
		if err != nil {
			return nil, fmt.Errorf("tracing %d: %w", n, err)
		}
		paths[i] = layout.GeneratePath(seqs[i], p.BranchLength, p.AngleEven, p.AngleOdd)
	}

	items := layout.Draw(starts, seqs, paths)
	for i := range items {
		items[i].Truncated = collatz.Truncated(items[i].Start, p.MaxDepth)
	}

	return &layout.Scene{
		Items:    items,
		Title:    layout.DefaultTitle,
		FontSize: p.FontSize,
	}, nil
}

// Generator keeps the last successfully built scene for a presentation
// layer that must leave its display intact when a pass fails.
type Generator struct {
	rng    collatz.Rand
	scene  *layout.Scene
	params collatz.Params
	passes int
}

func NewGenerator(rng collatz.Rand) *Generator {
	return &Generator{rng: rng}
}

// Regenerate runs a pass and replaces the current scene only on success.
func (g *Generator) Regenerate(p collatz.Params) (*layout.Scene, error) {
	scene, err := Build(p, g.rng)
	if err != nil {
		return g.scene, err
	}
	g.scene = scene
	g.params = p
	g.passes++
	return scene, nil
}

// Scene returns the last good scene, or nil before the first success.
func (g *Generator) Scene() *layout.Scene {
	return g.scene
}

func (g *Generator) Params() collatz.Params {
	return g.params
}

func (g *Generator) Passes() int {
	return g.passes
}
