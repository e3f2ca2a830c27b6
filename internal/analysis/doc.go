// Package analysis summarises trajectories for the command line.
//
//   - [SequencePlot]: asciigraph line chart of one trajectory's values
//   - [LengthHistogram]: chart of trajectory lengths across a scene
//   - [Summarize]: count, mean length, truncation and peak statistics
//
// # Example
//
//	seq, err := collatz.Sequence(27, 200)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(analysis.SequencePlot(seq, 80, 12))
package analysis
