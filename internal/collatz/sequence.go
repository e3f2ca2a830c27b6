package collatz

import "math"

// MaxStepValue is the largest odd value whose 3n+1 step fits in an int64.
const MaxStepValue = (math.MaxInt64 - 1) / 3

// capacityHint bounds the up-front allocation of a trajectory; longer
// orbits grow through append.
const capacityHint = 128

// Trajectory is a depth-capped Collatz orbit, always ending in 1.
type Trajectory []int64

// Step applies the Collatz map once. An odd n whose successor does not
// fit in an int64 yields an *OverflowError.
func Step(n int64) (int64, error) {
	if n%2 == 0 {
		return n / 2, nil
	}
	if n > MaxStepValue || n < -MaxStepValue {
		return 0, &OverflowError{Value: n}
	}
	return 3*n + 1, nil
}

// Sequence collects pre-step values from n until it reaches 1 or holds
// maxDepth values, then appends 1 unconditionally.
func Sequence(n int64, maxDepth int) (Trajectory, error) {
	seq := make(Trajectory, 0, max(min(maxDepth, capacityHint), 0)+1)
	start := n
	for n != 1 && len(seq) < maxDepth {
		seq = append(seq, n)
		next, err := Step(n)
		if err != nil {
			return nil, &OverflowError{Start: start, Value: n}
		}
		n = next
	}
	return append(seq, 1), nil
}

// Truncated reports whether Sequence(n, maxDepth) was cut by the depth cap
// before n converged, in which case its trailing 1 was not reached. An
// orbit that leaves the int64 range counts as unconverged.
func Truncated(n int64, maxDepth int) bool {
	for i := 0; i < maxDepth; i++ {
		if n == 1 {
			return false
		}
		next, err := Step(n)
		if err != nil {
			return true
		}
		n = next
	}
	return n != 1
}

// StoppingTime returns the number of steps n takes to reach 1.
func StoppingTime(n int64) (int, error) {
	if n < 1 {
		return -1, &ValidationError{Field: "start", Reason: "must be positive"}
	}
	start := n
	steps := 0
	for n != 1 {
		next, err := Step(n)
		if err != nil {
			return -1, &OverflowError{Start: start, Value: n}
		}
		n = next
		steps++
	}
	return steps, nil
}

// Peak returns the largest value in the trajectory.
func (t Trajectory) Peak() int64 {
	var peak int64
	for _, v := range t {
		if v > peak {
			peak = v
		}
	}
	return peak
}
