package collatz

import (
	"math/rand"
)

// Parity selects one of the two sampling classes.
type Parity int

const (
	Even Parity = iota
	Odd
)

func (p Parity) String() string {
	if p == Even {
		return "even"
	}
	return "odd"
}

// StartSet holds the sampled start values, evens first.
type StartSet []int64

// Rand is the random source used for sampling. *rand.Rand satisfies it.
type Rand interface {
	Int63n(n int64) int64
}

type globalRand struct{}

func (globalRand) Int63n(n int64) int64 { return rand.Int63n(n) }

// Candidates returns the first candidate of the parity class and how many
// candidates lie below maxStart. Evens start at 2, odds at 3.
func Candidates(parity Parity, maxStart int64) (first, count int64) {
	first = 2
	if parity == Odd {
		first = 3
	}
	if maxStart <= first {
		return first, 0
	}
	return first, (maxStart - first + 1) / 2
}

// GenerateStarts draws NumSequences/2 distinct evens from [2, MaxStart) and
// as many distinct odds from [3, MaxStart). A nil rng falls back to the
// process-wide source.
func GenerateStarts(p Params, rng Rand) (StartSet, error) {
	if p.NumSequences <= 0 || p.NumSequences%2 != 0 {
		return nil, &ValidationError{Field: "num_sequences", Reason: "must be a positive even number"}
	}
	if rng == nil {
		rng = globalRand{}
	}

	half := p.NumSequences / 2
	for _, parity := range []Parity{Even, Odd} {
		if _, count := Candidates(parity, p.MaxStart); count < int64(half) {
			return nil, &InsufficientRangeError{
				Parity:    parity,
				MaxStart:  p.MaxStart,
				Requested: half,
				Available: count,
			}
		}
	}

	starts := make(StartSet, 0, p.NumSequences)
	for _, parity := range []Parity{Even, Odd} {
		first, count := Candidates(parity, p.MaxStart)
		for _, idx := range sampleIndices(rng, count, half) {
			starts = append(starts, first+2*idx)
		}
	}
	return starts, nil
}

// sampleIndices picks k distinct indices from [0, n) with a partial
// Fisher-Yates shuffle over a sparse swap table.
func sampleIndices(rng Rand, n int64, k int) []int64 {
	swapped := make(map[int64]int64, k)
	at := func(i int64) int64 {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	out := make([]int64, k)
	for i := 0; i < k; i++ {
		pos := int64(i)
		j := pos + rng.Int63n(n-pos)
		out[i] = at(j)
		swapped[j] = at(pos)
	}
	return out
}
