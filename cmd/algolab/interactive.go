package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"algolab/internal/algorithms"
	"algolab/internal/benchmark"
	"algolab/internal/insight"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
)

var askOneFunc = survey.AskOne

var iterationChoices = []string{"5", "10", "20", "50", "100"}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Configure and run a benchmark through prompts",
	Args:  cobra.NoArgs,
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	for _, c := range []*cobra.Command{rootCmd, interactiveCmd} {
		c.Flags().Bool("tui", true, "Show a live progress view while benchmarking")
		c.Flags().Bool("plain", false, "Render insights without markdown styling")
	}
}

// runInteractive asks for the experiment settings and runs the benchmark.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg := *appCfg
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Algorithm Performance Lab")
	fmt.Fprintln(out)

	var maxSize string
	err := askOneFunc(&survey.Input{
		Message: "Maximum dataset size:",
		Default: strconv.Itoa(cfg.MaxSize),
		Help:    fmt.Sprintf("Between %d and %d, in steps of %d.", benchmark.MinDataSize, benchmark.MaxDataSize, benchmark.DataSizeStep),
	}, &maxSize, survey.WithValidator(validateMaxSize))
	if err != nil {
		return promptError(err)
	}
	cfg.MaxSize, _ = strconv.Atoi(strings.TrimSpace(maxSize))

	var iterations string
	err = askOneFunc(&survey.Select{
		Message: "Iterations per measurement:",
		Options: iterationChoices,
		Default: defaultIterationChoice(cfg.Iterations),
		Description: func(value string, index int) string {
			n, _ := strconv.Atoi(value)
			return confidenceDescription(n)
		},
	}, &iterations)
	if err != nil {
		return promptError(err)
	}
	cfg.Iterations, _ = strconv.Atoi(iterations)

	var show []string
	err = askOneFunc(&survey.MultiSelect{
		Message: "Algorithms to display:",
		Options: kindNames(),
		Default: cfg.Show,
	}, &show, survey.WithValidator(survey.MinItems(1)))
	if err != nil {
		return promptError(err)
	}

	kinds, err := parseKinds(show)
	if err != nil {
		return err
	}

	opts := benchOptions{
		sizes: benchmark.DataSizes(cfg.MaxSize),
		show:  kinds,
	}
	opts.tui, _ = cmd.Flags().GetBool("tui")
	opts.plain, _ = cmd.Flags().GetBool("plain")
	return executeBenchmark(cmd, &cfg, opts)
}

func validateMaxSize(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return errors.New("expected a number")
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if n < benchmark.MinDataSize || n > benchmark.MaxDataSize || n%benchmark.DataSizeStep != 0 {
		return fmt.Errorf("size must be between %d and %d in steps of %d", benchmark.MinDataSize, benchmark.MaxDataSize, benchmark.DataSizeStep)
	}
	return nil
}

func defaultIterationChoice(n int) string {
	s := strconv.Itoa(n)
	for _, c := range iterationChoices {
		if c == s {
			return s
		}
	}
	return "10"
}

func confidenceDescription(iterations int) string {
	return strings.ToLower(insight.ConfidenceLevel(iterations).Label) + " confidence"
}

func kindNames() []string {
	kinds := algorithms.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// promptError treats Ctrl+C as a clean exit.
func promptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return nil
	}
	return err
}
