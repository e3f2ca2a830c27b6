// Package collatz generates Collatz trajectories and the random start
// values they are drawn from.
//
// The package provides the numeric half of a render pass:
//
//   - [Params]: immutable parameter set supplied by the caller
//   - [GenerateStarts]: parity-split sampling of start values
//   - [Sequence]: a depth-capped trajectory ending in 1
//
// # Example
//
//	p := collatz.DefaultParams()
//	starts, err := collatz.GenerateStarts(p, rand.New(rand.NewSource(1)))
//	if err != nil {
//	    return err
//	}
//	for _, n := range starts {
//	    seq, err := collatz.Sequence(n, p.MaxDepth)
//	    if err != nil {
//	        return err
//	    }
//	    _ = seq
//	}
//
// # Truncation
//
// [Sequence] appends a trailing 1 even when the depth cap stops the walk
// before the value actually converged. Use [Truncated] to tell the two
// cases apart.
//
// # Overflow
//
// Arithmetic is int64. A 3n+1 step that would not fit returns an
// [*OverflowError] instead of wrapping.
package collatz
