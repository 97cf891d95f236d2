// Command agroplan solves farm plan documents from the command line.
//
//	agroplan solve --input plan.yaml --format yaml
//	agroplan compare baseline.yaml trained.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/agroplan/plan"
	"github.com/katalvlaran/agroplan/record"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags, env-backed where a default exists.
	inputPath     string
	outputFormat  string
	timeout       time.Duration
	maxIterations int
	verbose       bool

	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "agroplan",
	Short: "agroplan - labor-minimizing farm plan optimizer",
	Long: `agroplan solves constrained farm planning problems: given crops with
peaked revenue curves and a scenario (land, income target, labor caps,
optional financing), it finds the planted areas that minimize total labor
while meeting every constraint, then classifies each crop against its
revenue peak.

Input is a YAML or JSON plan document; output is a solution report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// solveCmd runs one plan document through the optimizer.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one plan document and print the solution report",
	Long: `Reads a plan document, solves it, and prints the report to stdout.

Example:
  agroplan solve --input plan.yaml --format json`,
	RunE: runSolve,
}

// compareCmd solves several documents concurrently and reports each.
var compareCmd = &cobra.Command{
	Use:   "compare [documents...]",
	Short: "Solve several plan documents concurrently and print each report",
	Long: `Solves every document in one concurrent batch and prints the reports
in argument order. Useful for what-if comparisons: the same farm under
different skill levels, financing terms, or labor calendars.

Example:
  agroplan compare novice.yaml trained.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

// .env defaults load before the flag init below computes its defaults;
// explicit flags still win over both.
func init() {
	_ = godotenv.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", envOr("AGROPLAN_FORMAT", "yaml"), "report format: yaml or json")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", envDurationOr("AGROPLAN_TIMEOUT", 0), "solver time limit per run (0 = none)")
	rootCmd.PersistentFlags().IntVar(&maxIterations, "max-iterations", envIntOr("AGROPLAN_MAX_ITERATIONS", 0), "solver iteration cap (0 = default)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	solveCmd.Flags().StringVarP(&inputPath, "input", "i", "", "plan document path (YAML or JSON)")
	_ = solveCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(compareCmd)
}

// solverOptions folds the CLI knobs into the plan defaults.
func solverOptions() plan.Options {
	opts := plan.DefaultOptions()
	if timeout > 0 {
		opts.Solver.TimeLimit = timeout
	}
	if maxIterations > 0 {
		opts.Solver.MaxIterations = maxIterations
	}
	return opts
}

func runSolve(cmd *cobra.Command, args []string) error {
	crops, sc, err := record.Load(inputPath)
	if err != nil {
		return err
	}

	sol, err := plan.Optimize(crops, sc, solverOptions())
	if err != nil {
		return err
	}
	logSolution(inputPath, sol)

	out, err := record.Render(sol, record.Format(outputFormat))
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	runs := make([]plan.Run, 0, len(args))
	for _, path := range args {
		crops, sc, err := record.Load(path)
		if err != nil {
			return err
		}
		runs = append(runs, plan.Run{Name: filepath.Base(path), Crops: crops, Scenario: sc})
	}

	outs, err := plan.RunAll(context.Background(), runs, solverOptions())
	if err != nil {
		return err
	}

	for _, out := range outs {
		if out.Err != nil {
			logger.Warn("run failed", zap.String("run", out.Name), zap.Error(out.Err))
			continue
		}
		logSolution(out.Name, out.Solution)

		rendered, err := record.Render(out.Solution, record.Format(outputFormat))
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n%s\n", out.Name, string(rendered))
	}
	return nil
}

// logSolution emits the solver verdict and any numeric guard diagnostics.
func logSolution(name string, sol plan.Solution) {
	fields := []zap.Field{
		zap.String("run", name),
		zap.String("run_id", sol.RunID),
		zap.Int("iterations", sol.Iterations),
		zap.Duration("runtime", sol.Runtime),
		zap.Float64("labor", sol.Totals.Labor),
		zap.Float64("max_violation", sol.MaxViolation),
	}
	if sol.Feasible() {
		logger.Info("solved", fields...)
	} else {
		logger.Warn("not solved", append(fields, zap.String("status", sol.Status.String()))...)
	}
	for _, g := range sol.Guards {
		logger.Info("numeric guard active", zap.String("run", name), zap.String("guard", g))
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
