package collatz

import (
	"fmt"
	"math"
)

const (
	DefaultNumSequences = 20
	DefaultMaxStart     = 500
	DefaultAngleEven    = -8.0
	DefaultAngleOdd     = 16.0
	DefaultBranchLength = 0.5
	DefaultMaxDepth     = 25
	DefaultFontSize     = 8

	// MaxStartLimit caps max_start. Orbits that still leave the int64
	// range surface as *OverflowError from Step.
	MaxStartLimit = 1 << 32
)

// Params is the full input of one render pass. Angles are in radians.
type Params struct {
	NumSequences int
	MaxStart     int64
	AngleEven    float64
	AngleOdd     float64
	BranchLength float64
	MaxDepth     int
	FontSize     int
}

func DefaultParams() Params {
	return Params{
		NumSequences: DefaultNumSequences,
		MaxStart:     DefaultMaxStart,
		AngleEven:    Radians(DefaultAngleEven),
		AngleOdd:     Radians(DefaultAngleOdd),
		BranchLength: DefaultBranchLength,
		MaxDepth:     DefaultMaxDepth,
		FontSize:     DefaultFontSize,
	}
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Validate checks the parameter set before any generation happens.
func (p Params) Validate() error {
	switch {
	case p.NumSequences <= 0:
		return &ValidationError{Field: "num_sequences", Reason: "must be positive"}
	case p.NumSequences%2 != 0:
		return &ValidationError{Field: "num_sequences", Reason: "must be even"}
	case p.MaxStart <= 0:
		return &ValidationError{Field: "max_start", Reason: "must be positive"}
	case p.MaxStart > MaxStartLimit:
		return &ValidationError{Field: "max_start", Reason: fmt.Sprintf("must not exceed %d", int64(MaxStartLimit))}
	case p.MaxDepth <= 0:
		return &ValidationError{Field: "max_depth", Reason: "must be positive"}
	case p.FontSize <= 0:
		return &ValidationError{Field: "font_size", Reason: "must be positive"}
	case !(p.BranchLength > 0) || math.IsInf(p.BranchLength, 0):
		return &ValidationError{Field: "branch_length", Reason: "must be a positive number"}
	case math.IsNaN(p.AngleEven) || math.IsInf(p.AngleEven, 0):
		return &ValidationError{Field: "angle_even", Reason: "must be finite"}
	case math.IsNaN(p.AngleOdd) || math.IsInf(p.AngleOdd, 0):
		return &ValidationError{Field: "angle_odd", Reason: "must be finite"}
	}
	return nil
}
