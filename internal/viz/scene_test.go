package viz

import (
	"testing"

	"github.com/san-kum/collatree/internal/collatz"
	"github.com/san-kum/collatree/internal/layout"
)

func testScene(t *testing.T) *layout.Scene {
	t.Helper()
	starts := collatz.StartSet{6, 27}
	seqs := make([]collatz.Trajectory, len(starts))
	paths := make([]layout.Path, len(starts))
	for i, n := range starts {
		var err error
		seqs[i], err = collatz.Sequence(n, 25)
		if err != nil {
			t.Fatal(err)
		}
		paths[i] = layout.GeneratePath(seqs[i], 0.5, collatz.Radians(-8), collatz.Radians(16))
	}
	return &layout.Scene{Items: layout.Draw(starts, seqs, paths), FontSize: 8}
}

func TestRasterize_Layers(t *testing.T) {
	scene := testScene(t)
	c := Rasterize(scene, 40, 20)

	seen := make(map[int]bool)
	for i := range c.Ink {
		for _, layer := range c.Ink[i] {
			seen[layer] = true
		}
	}
	for layer := 0; layer <= len(scene.Items); layer++ {
		if !seen[layer] {
			t.Errorf("layer %d never drawn", layer)
		}
	}
}

func TestRasterize_Nil(t *testing.T) {
	c := Rasterize(nil, 4, 2)
	if c.Width != 4 || c.Height != 2 {
		t.Errorf("unexpected canvas size %dx%d", c.Width, c.Height)
	}
}

func TestRenderScene(t *testing.T) {
	if out := RenderScene(testScene(t), 30, 10, ThemeClassic); out == "" {
		t.Error("expected rendered output")
	}
}
