package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/san-kum/collatree/internal/collatz"
)

func trace(t *testing.T, n int64, depth int) collatz.Trajectory {
	t.Helper()
	seq, err := collatz.Sequence(n, depth)
	if err != nil {
		t.Fatalf("Sequence(%d, %d) failed: %v", n, depth, err)
	}
	return seq
}

func TestGeneratePath_FirstSegment(t *testing.T) {
	seq := trace(t, 6, 25)
	path := GeneratePath(seq, 1.0, collatz.Radians(-8), collatz.Radians(16))

	if len(path) != len(seq) {
		t.Fatalf("expected %d segments, got %d", len(seq), len(path))
	}

	first := path[0]
	want := Segment{From: Point{0, 0}, To: Point{0, 1}}
	if diff := cmp.Diff(want, first, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("first segment mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratePath_SegmentLength(t *testing.T) {
	tests := []struct {
		name   string
		start  int64
		length float64
	}{
		{"short", 6, 1.0},
		{"long orbit", 27, 0.5},
		{"tiny branch", 97, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := trace(t, tt.start, 50)
			path := GeneratePath(seq, tt.length, collatz.Radians(-8), collatz.Radians(16))
			for i, seg := range path {
				if math.Abs(seg.Length()-tt.length) > 1e-9 {
					t.Errorf("segment %d length %.12f, want %.12f", i, seg.Length(), tt.length)
				}
				if i > 0 && seg.From != path[i-1].To {
					t.Errorf("segment %d does not start where %d ended", i, i-1)
				}
			}
		})
	}
}

func TestGeneratePath_Turns(t *testing.T) {
	// 6 is even, so the second segment turns by angleEven from straight up.
	even := collatz.Radians(-8)
	path := GeneratePath(collatz.Trajectory{6, 3}, 1.0, even, collatz.Radians(16))

	seg := path[1]
	heading := math.Atan2(seg.To.Y-seg.From.Y, seg.To.X-seg.From.X)
	if math.Abs(heading-(math.Pi/2+even)) > 1e-12 {
		t.Errorf("second heading %.6f, want %.6f", heading, math.Pi/2+even)
	}
}

func TestGeneratePath_Deterministic(t *testing.T) {
	seq := trace(t, 871, 200)
	a := GeneratePath(seq, 0.5, collatz.Radians(-8), collatz.Radians(16))
	b := GeneratePath(seq, 0.5, collatz.Radians(-8), collatz.Radians(16))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("walk is not reproducible:\n%s", diff)
	}
}

func TestGeneratePath_Empty(t *testing.T) {
	if path := GeneratePath(nil, 1, 0, 0); len(path) != 0 {
		t.Errorf("expected empty path, got %d segments", len(path))
	}
	if _, ok := Path(nil).End(); ok {
		t.Error("empty path should have no end")
	}
}
