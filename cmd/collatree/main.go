package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/collatree/internal/analysis"
	"github.com/san-kum/collatree/internal/collatz"
	"github.com/san-kum/collatree/internal/config"
	"github.com/san-kum/collatree/internal/export"
	"github.com/san-kum/collatree/internal/tree"
	"github.com/san-kum/collatree/internal/tui"
	"github.com/san-kum/collatree/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	// Parameters
	numSequences int
	maxStart     int64
	angleEven    float64
	angleOdd     float64
	branchLength float64
	maxDepth     int
	fontSize     int
	// Output
	format    string
	outPath   string
	width     int
	height    int
	theme     string
	showStats bool
	// sequence command
	seqDepth   int
	plotWidth  int
	plotHeight int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "collatree",
		Short: "collatz trajectories drawn as a tree of branches",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive form when no command given
			cfg, rng, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, rng)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	addParamFlags(rootCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one pass to svg, png or json",
		Args:  cobra.NoArgs,
		RunE:  renderScene,
	}
	addParamFlags(renderCmd)
	renderCmd.Flags().StringVar(&format, "format", "svg", "output format: svg, png, json")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (stdout when empty)")
	renderCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width")
	renderCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height")
	renderCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	renderCmd.Flags().BoolVar(&showStats, "stats", false, "print trajectory statistics to stderr")

	sequenceCmd := &cobra.Command{
		Use:   "sequence [n]",
		Short: "print and plot the trajectory of n",
		Args:  cobra.ExactArgs(1),
		RunE:  printSequence,
	}
	sequenceCmd.Flags().IntVar(&seqDepth, "depth", 1000, "maximum trajectory length")
	sequenceCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	sequenceCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "collatree.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, sequenceCmd, presetsCmd, initCmd)
	return rootCmd
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&numSequences, "sequences", collatz.DefaultNumSequences, "number of sequences (even)")
	cmd.Flags().Int64Var(&maxStart, "max-start", collatz.DefaultMaxStart, "exclusive upper bound for start values")
	cmd.Flags().Float64Var(&angleEven, "angle-even", collatz.DefaultAngleEven, "turn after an even value (degrees)")
	cmd.Flags().Float64Var(&angleOdd, "angle-odd", collatz.DefaultAngleOdd, "turn after an odd value (degrees)")
	cmd.Flags().Float64Var(&branchLength, "branch", collatz.DefaultBranchLength, "branch length")
	cmd.Flags().IntVar(&maxDepth, "depth", collatz.DefaultMaxDepth, "maximum trajectory length")
	cmd.Flags().IntVar(&fontSize, "font-size", collatz.DefaultFontSize, "label font size")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order, and seeds the random source. Keys absent from the
// config file keep the preset's values.
func resolveConfig(cmd *cobra.Command) (*config.Config, *rand.Rand, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("sequences") {
		cfg.NumSequences = numSequences
	}
	if flags.Changed("max-start") {
		cfg.MaxStart = maxStart
	}
	if flags.Changed("angle-even") {
		cfg.AngleEven = angleEven
	}
	if flags.Changed("angle-odd") {
		cfg.AngleOdd = angleOdd
	}
	if flags.Changed("branch") {
		cfg.BranchLength = branchLength
	}
	if flags.Changed("depth") {
		cfg.MaxDepth = maxDepth
	}
	if flags.Changed("font-size") {
		cfg.FontSize = fontSize
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Lookup("theme") != nil && (flags.Changed("theme") || cfg.Render.Theme == "") {
		cfg.Render.Theme = theme
	}
	if flags.Lookup("width") != nil && (flags.Changed("width") || cfg.Render.Width <= 0) {
		cfg.Render.Width = width
	}
	if flags.Lookup("height") != nil && (flags.Changed("height") || cfg.Render.Height <= 0) {
		cfg.Render.Height = height
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, rand.New(rand.NewSource(cfg.Seed)), nil
}

func renderScene(cmd *cobra.Command, args []string) error {
	cfg, rng, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	scene, err := tree.Build(cfg.Params(), rng)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	th := viz.GetTheme(cfg.Render.Theme)
	var buf bytes.Buffer
	switch format {
	case "svg":
		buf.WriteString(export.SceneToSVG(scene, cfg.Render.Width, cfg.Render.Height, th))
		buf.WriteByte('\n')
	case "png":
		if err := export.WritePNG(&buf, scene, cfg.Render.Width, cfg.Render.Height, th); err != nil {
			return err
		}
	case "json":
		if err := export.WriteJSON(&buf, scene); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (available: svg, png, json)", format)
	}

	if err := writeOutput(cmd.OutOrStdout(), outPath, buf.Bytes()); err != nil {
		return err
	}

	status := cmd.ErrOrStderr()
	if outPath != "" {
		fmt.Fprintf(status, "rendered %d paths in %v (seed %d) to %s\n", len(scene.Items), time.Since(start), cfg.Seed, outPath)
	}
	if showStats {
		s := analysis.Summarize(scene, cfg.MaxDepth)
		w := tabwriter.NewWriter(status, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PATHS\tTRUNCATED\tMEAN\tMIN\tMAX\tPEAK")
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%d\t%d\t%d (from %d)\n",
			s.Count, s.Truncated, s.MeanSteps, s.MinSteps, s.MaxSteps, s.Peak, s.PeakStart)
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(status, analysis.LengthHistogram(scene, 60, 8))
	}
	return nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func printSequence(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || n < 1 {
		return fmt.Errorf("invalid start value: %s", args[0])
	}

	seq, err := collatz.Sequence(n, seqDepth)
	if err != nil {
		return err
	}
	steps, err := collatz.StoppingTime(n)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.FormatInt(v, 10)
	}
	fmt.Fprintln(out, strings.Join(parts, " "))
	fmt.Fprintf(out, "values: %d\n", len(seq))
	if collatz.Truncated(n, seqDepth) {
		fmt.Fprintf(out, "truncated at depth %d (stopping time %d)\n", seqDepth, steps)
	} else {
		fmt.Fprintf(out, "stopping time: %d\n", steps)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, analysis.SequencePlot(seq, plotWidth, plotHeight))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSEQUENCES\tMAX START\tEVEN\tODD\tBRANCH\tDEPTH")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f°\t%.2f°\t%.2f\t%d\n",
			name, p.NumSequences, p.MaxStart, p.AngleEven, p.AngleOdd, p.BranchLength, p.MaxDepth)
	}
	return w.Flush()
}
