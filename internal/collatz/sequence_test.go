package collatz

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustSequence(t testing.TB, n int64, depth int) Trajectory {
	t.Helper()
	seq, err := Sequence(n, depth)
	if err != nil {
		t.Fatalf("Sequence(%d, %d) failed: %v", n, depth, err)
	}
	return seq
}

func TestSequence_KnownTrajectory(t *testing.T) {
	got := mustSequence(t, 6, 25)
	want := Trajectory{6, 3, 10, 5, 16, 8, 4, 2, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sequence(6, 25) mismatch (-want +got):\n%s", diff)
	}
}

func TestSequence_FirstStep(t *testing.T) {
	for n := int64(2); n < 200; n++ {
		seq := mustSequence(t, n, 10)
		if len(seq) < 2 {
			t.Fatalf("Sequence(%d) too short: %v", n, seq)
		}
		want := n / 2
		if n%2 != 0 {
			want = 3*n + 1
		}
		if seq[0] != n {
			t.Errorf("Sequence(%d)[0] = %d, want %d", n, seq[0], n)
		}
		if seq[1] != want {
			t.Errorf("Sequence(%d)[1] = %d, want %d", n, seq[1], want)
		}
	}
}

func TestSequence_StartAtOne(t *testing.T) {
	for _, depth := range []int{0, 1, 5, 100} {
		if diff := cmp.Diff(Trajectory{1}, mustSequence(t, 1, depth)); diff != "" {
			t.Errorf("Sequence(1, %d) mismatch (-want +got):\n%s", depth, diff)
		}
	}
}

func TestSequence_LengthBound(t *testing.T) {
	for n := int64(1); n < 300; n++ {
		for _, depth := range []int{0, 1, 3, 10, 25, 200} {
			seq := mustSequence(t, n, depth)
			if len(seq) > depth+1 {
				t.Errorf("len(Sequence(%d, %d)) = %d, exceeds %d", n, depth, len(seq), depth+1)
			}
			if seq[len(seq)-1] != 1 {
				t.Errorf("Sequence(%d, %d) does not end in 1: %v", n, depth, seq)
			}
		}
	}
}

func TestSequence_TruncatedAppendsOne(t *testing.T) {
	// 27 needs 111 steps; a depth of 3 cuts it short.
	got := mustSequence(t, 27, 3)
	want := Trajectory{27, 82, 41, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sequence(27, 3) mismatch (-want +got):\n%s", diff)
	}
	if !Truncated(27, 3) {
		t.Error("expected Truncated(27, 3)")
	}
}

func TestSequence_HugeDepth(t *testing.T) {
	got := mustSequence(t, 6, 1<<47)
	want := Trajectory{6, 3, 10, 5, 16, 8, 4, 2, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sequence(6, 1<<47) mismatch (-want +got):\n%s", diff)
	}
	if Truncated(6, 1<<47) {
		t.Error("6 converges long before the cap")
	}
}

func TestStep_Overflow(t *testing.T) {
	tests := []struct {
		name    string
		n       int64
		want    int64
		wantErr bool
	}{
		{"largest safe odd", MaxStepValue - 1, 9223372036854775804, false},
		{"even near max", 9223372036854775806, 4611686018427387903, false},
		{"first unsafe odd", MaxStepValue + 1, 0, true},
		{"max int64", 9223372036854775807, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Step(tt.n)
			if tt.wantErr {
				var overflow *OverflowError
				if !errors.As(err, &overflow) || overflow.Value != tt.n {
					t.Fatalf("Step(%d) error = %v, want overflow of %d", tt.n, err, tt.n)
				}
				if !errors.Is(err, ErrOverflow) {
					t.Error("overflow should wrap ErrOverflow")
				}
				return
			}
			if err != nil {
				t.Fatalf("Step(%d) failed: %v", tt.n, err)
			}
			if got != tt.want {
				t.Errorf("Step(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestSequence_Overflow(t *testing.T) {
	got := mustSequence(t, MaxStepValue-1, 2)
	want := Trajectory{MaxStepValue - 1, 9223372036854775804, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("boundary trajectory mismatch (-want +got):\n%s", diff)
	}

	seq, err := Sequence(9223372036854775805, 5)
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v (trajectory %v)", err, seq)
	}
	if seq != nil {
		t.Errorf("expected no trajectory on overflow, got %v", seq)
	}

	if _, err := StoppingTime(9223372036854775805); !errors.Is(err, ErrOverflow) {
		t.Errorf("StoppingTime: expected ErrOverflow, got %v", err)
	}
	if !Truncated(9223372036854775805, 5) {
		t.Error("an orbit leaving int64 should count as truncated")
	}
}

func TestTruncated(t *testing.T) {
	tests := []struct {
		name  string
		n     int64
		depth int
		want  bool
	}{
		{"one", 1, 0, false},
		{"converges", 6, 25, false},
		{"exact depth", 6, 8, false},
		{"one short", 6, 7, true},
		{"long orbit", 27, 25, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncated(tt.n, tt.depth); got != tt.want {
				t.Errorf("Truncated(%d, %d) = %v, want %v", tt.n, tt.depth, got, tt.want)
			}
		})
	}
}

func TestStoppingTime(t *testing.T) {
	tests := []struct {
		n    int64
		want int
	}{
		{1, 0},
		{2, 1},
		{6, 8},
		{27, 111},
	}

	for _, tt := range tests {
		got, err := StoppingTime(tt.n)
		if err != nil {
			t.Fatalf("StoppingTime(%d) failed: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("StoppingTime(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	if _, err := StoppingTime(0); !errors.Is(err, ErrValidation) {
		t.Errorf("StoppingTime(0): expected ErrValidation, got %v", err)
	}
}

func TestTrajectory_Peak(t *testing.T) {
	if got := mustSequence(t, 6, 25).Peak(); got != 16 {
		t.Errorf("Peak() = %d, want 16", got)
	}
}

func BenchmarkSequence(b *testing.B) {
	for i := 0; i < b.N; i++ {
		mustSequence(b, 837799, 600)
	}
}
