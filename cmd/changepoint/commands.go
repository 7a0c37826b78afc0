package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	changepoint "github.com/caio/go-changepoint"
	"github.com/spf13/cobra"
)

// cli carries the state shared by the subcommands of one invocation.
type cli struct {
	configPath string
	verbose    bool

	cfg    Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:           "changepoint",
		Short:         "Find level changes in a series of numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if c.verbose {
				level = slog.LevelDebug
			}
			c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if c.configPath == "" {
				return nil
			}
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.logger.Debug("Configuration loaded", "path", c.configPath, "lambda", cfg.Lambda)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML file with detector settings")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(c.detectCmd(), c.deltaCmd())
	return root
}

func (c *cli) detectCmd() *cobra.Command {
	var (
		uniform bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Print the changepoints of a series",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("lambda") {
				c.cfg.Lambda, _ = flags.GetFloat64("lambda")
			}
			if flags.Changed("lambda-min") {
				c.cfg.LambdaMin, _ = flags.GetFloat64("lambda-min")
			}
			if flags.Changed("seed") {
				c.cfg.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("max-iterations") {
				c.cfg.MaxIterations, _ = flags.GetInt("max-iterations")
			}
			if flags.Changed("no-refine") {
				noRefine, _ := flags.GetBool("no-refine")
				c.cfg.Refine = !noRefine
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}

			data, err := loadSeries(argOrEmpty(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			c.logger.Debug("Series loaded", "observations", len(data))

			started := time.Now()
			result, err := c.detect(data, uniform)
			if err != nil {
				return err
			}
			c.logger.Info("Detection finished",
				"observations", len(data),
				"changes", len(result.Changes),
				"iterations", result.Iterations,
				"pruned", result.Stats.Pruned,
				"elapsed", time.Since(started))

			return writeChanges(cmd.OutOrStdout(), result, asJSON)
		},
	}

	cmd.Flags().Float64("lambda", 0, "penalty per change (default from config, 32)")
	cmd.Flags().Float64("lambda-min", 0, "floor for the randomized penalties (default from config, 8)")
	cmd.Flags().Int64("seed", 0, "seed of the penalty jitter")
	cmd.Flags().Int("max-iterations", 0, "limit on search rounds (default from config, 100)")
	cmd.Flags().Bool("no-refine", false, "skip relocating changes between rounds")
	cmd.Flags().BoolVar(&uniform, "uniform", false, "run a single search with lambda at every position")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func (c *cli) detect(data []float64, uniform bool) (*changepoint.Result, error) {
	if uniform {
		if len(data) < changepoint.MinSeparation {
			return &changepoint.Result{Changes: []int{}}, nil
		}
		var stats changepoint.SearchStats
		changes, err := changepoint.FindChanges(data, changepoint.UniformPenalties(len(data), c.cfg.Lambda), changepoint.WithStats(&stats))
		if err != nil {
			return nil, err
		}
		return &changepoint.Result{Changes: changes, Iterations: 1, Stats: stats}, nil
	}

	options := []changepoint.DetectorOption{
		changepoint.MaxIterations(c.cfg.MaxIterations),
		changepoint.PenaltyOptions(changepoint.LambdaMin(c.cfg.LambdaMin), changepoint.Seed(c.cfg.Seed)),
	}
	if !c.cfg.Refine {
		options = append(options, changepoint.WithoutRefinement())
	}
	detector, err := changepoint.NewDetector(c.cfg.Lambda, options...)
	if err != nil {
		return nil, err
	}
	return detector.Detect(data)
}

type jsonResult struct {
	Changes    []int `json:"changes"`
	Iterations int   `json:"iterations"`
}

func writeChanges(w io.Writer, result *changepoint.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		return enc.Encode(jsonResult{Changes: result.Changes, Iterations: result.Iterations})
	}
	for _, c := range result.Changes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) deltaCmd() *cobra.Command {
	var prev, next, start, end int

	cmd := &cobra.Command{
		Use:   "delta [file]",
		Short: "Print the log-likelihood gain of every split in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadSeries(argOrEmpty(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("next") {
				next = len(data)
			}
			if !cmd.Flags().Changed("end") {
				end = len(data) - 1
			}
			c.logger.Debug("Computing split deltas", "prev", prev, "next", next, "start", start, "end", end)

			delta, err := changepoint.SplitDelta(data, prev, next, start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range delta {
				if _, err := fmt.Fprintln(out, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&prev, "prev", 0, "first observation of the segment")
	cmd.Flags().IntVar(&next, "next", 0, "end of the segment, exclusive (default: length of the series)")
	cmd.Flags().IntVar(&start, "start", 0, "first split to evaluate")
	cmd.Flags().IntVar(&end, "end", 0, "last split to evaluate (default: length of the series - 1)")
	return cmd
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
