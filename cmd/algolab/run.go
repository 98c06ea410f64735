package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"algolab/internal/algorithms"
	"algolab/internal/benchmark"
	"algolab/internal/config"
	"algolab/internal/insight"
	"algolab/internal/sample"
	"algolab/internal/telemetry"
	"algolab/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// labRunner runs whole benchmarks or a single row at a time.
type labRunner interface {
	benchmark.Runner
	ui.RowRunner
}

// newLabFunc builds the benchmark engine. Tests replace it with a fake.
var newLabFunc = func(cfg *config.Config, obs benchmark.Observer) labRunner {
	gen := sample.NewRandom()
	if cfg.Seed != 0 {
		gen = sample.New(cfg.Seed)
	}
	return benchmark.NewLab(
		benchmark.WithGenerator(gen),
		benchmark.WithObserver(obs),
	)
}

// runProgramFunc runs a bubbletea program to completion.
var runProgramFunc = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

const chartWidth = 40

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Benchmark the algorithms across growing dataset sizes",
	Long: `Benchmark the iterative sum, the recursive sum and the native sort on
random datasets of increasing size, then print a chart, a results table and
an automatic analysis.

Recursive timings above the recursion limit are measured on a truncated
dataset and scaled linearly; they are marked with an asterisk.`,
	Example: `  algolab run --max-size 10000 --iterations 20
  algolab run --sizes 100,1000,5000 --show iterative,sort --export results.csv
  algolab run --tui`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := benchOptionsFromFlags(cmd, appCfg)
		if err != nil {
			return err
		}
		return executeBenchmark(cmd, appCfg, opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int("max-size", 5000, "Largest dataset size (100-20000, step 100)")
	runCmd.Flags().IntP("iterations", "n", 10, "Repetitions averaged per measurement")
	runCmd.Flags().Int64("seed", 0, "Seed for dataset generation (0 picks a random seed)")
	runCmd.Flags().StringSlice("show", []string{"iterative", "recursive", "sort"}, "Algorithms to display")
	runCmd.Flags().String("sizes", "", "Comma separated dataset sizes, overriding --max-size")
	runCmd.Flags().StringP("export", "o", "", "Write results to a .json or .csv file")
	runCmd.Flags().Bool("tui", false, "Show a live progress view")
	runCmd.Flags().Bool("plain", false, "Render insights without markdown styling")
	runCmd.Flags().Bool("json", false, "Print the run as JSON instead of a report")
}

// benchOptions are the per-invocation settings that are not part of Config.
type benchOptions struct {
	sizes  []int
	show   []algorithms.Kind
	export string
	tui    bool
	plain  bool
	json   bool
}

func benchOptionsFromFlags(cmd *cobra.Command, cfg *config.Config) (benchOptions, error) {
	var opts benchOptions
	var err error

	sizesFlag, _ := cmd.Flags().GetString("sizes")
	if sizesFlag != "" {
		opts.sizes, err = benchmark.ParseSizes(sizesFlag)
		if err != nil {
			return opts, err
		}
	} else {
		opts.sizes = benchmark.DataSizes(cfg.MaxSize)
	}

	opts.show, err = parseKinds(cfg.Show)
	if err != nil {
		return opts, err
	}

	opts.export, _ = cmd.Flags().GetString("export")
	opts.tui, _ = cmd.Flags().GetBool("tui")
	opts.plain, _ = cmd.Flags().GetBool("plain")
	opts.json, _ = cmd.Flags().GetBool("json")
	if opts.tui && opts.json {
		return opts, errors.New("--tui and --json cannot be combined")
	}
	return opts, nil
}

func parseKinds(names []string) ([]algorithms.Kind, error) {
	kinds := make([]algorithms.Kind, 0, len(names))
	for _, name := range names {
		k, err := algorithms.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// executeBenchmark runs a full benchmark and reports on it.
func executeBenchmark(cmd *cobra.Command, cfg *config.Config, opts benchOptions) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lab := newLabFunc(cfg, recorder)
	telemetry.LogInfo("starting benchmark", "sizes", opts.sizes, "iterations", cfg.Iterations)

	if !opts.json {
		fmt.Fprintln(out, ui.RenderConfidence(cfg.Iterations))
	}

	var rows []benchmark.ResultRow
	var err error
	if opts.tui {
		rows, err = runWithTUI(ctx, lab, cfg, opts)
	} else {
		rows, err = lab.Run(ctx, opts.sizes, cfg.Iterations, func(percent float64) {
			fmt.Fprintf(errOut, "\rRunning benchmark... %3.0f%%", percent)
		})
		fmt.Fprintln(errOut)
	}
	if err != nil {
		telemetry.LogError("benchmark failed", err)
		return err
	}

	run := benchmark.NewRun(cfg.Iterations, rows)
	telemetry.LogInfo("benchmark complete", "run_id", run.ID, "rows", len(run.Rows), "estimated", run.Estimated())

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(run); err != nil {
			return err
		}
	} else {
		printReport(out, run, opts.show, opts.plain)
	}

	if opts.export != "" {
		if err := benchmark.ExportFile(opts.export, run); err != nil {
			return err
		}
		fmt.Fprintf(errOut, "Exported results to %s\n", opts.export)
	}
	return nil
}

func runWithTUI(ctx context.Context, lab labRunner, cfg *config.Config, opts benchOptions) ([]benchmark.ResultRow, error) {
	// RunSize only reports kernel timings; rows are reported by the model.
	model := ui.NewRunModel(ctx, lab, recorder, opts.sizes, cfg.Iterations, opts.show)
	final, err := runProgramFunc(model)
	if err != nil {
		return nil, fmt.Errorf("progress view failed: %w", err)
	}
	m, ok := final.(ui.RunModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	if m.Err() != nil {
		return nil, m.Err()
	}
	if m.Quit() {
		return nil, errors.New("benchmark cancelled")
	}
	return m.Rows(), nil
}

func printReport(w io.Writer, run benchmark.Run, show []algorithms.Kind, plain bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.RenderChart(run.Rows, show, chartWidth))
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.RenderTable(run.Rows, show))
	fmt.Fprintln(w)

	insights := insight.Analyze(run.Rows)
	if plain {
		fmt.Fprintln(w, ui.RenderInsightsPlain(insights))
	} else {
		fmt.Fprintln(w, ui.RenderInsights(insights, 80))
	}
}
