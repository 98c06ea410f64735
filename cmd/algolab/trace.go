package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"algolab/internal/algorithms"
	"algolab/internal/sample"
	"algolab/internal/trace"
	"algolab/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// TraceSampleSize is the number of elements walked through by a trace.
const TraceSampleSize = 10

var traceCmd = &cobra.Command{
	Use:   "trace [iterative|recursive|sort]",
	Short: "Walk through an algorithm step by step on a small sample",
	Long: `Generate a random sample of 10 elements and show how an algorithm
processes it, one step at a time.

With --play the steps are animated in an interactive player:
  space/p  play or pause      r  reset
  f        faster             left/right  step
  tab/1-3  switch algorithm   q  quit`,
	Example: `  algolab trace recursive
  algolab trace sort --seed 7 --json
  algolab trace --play --speed 300ms`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"iterative", "recursive", "sort"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := algorithms.Iterative
		if len(args) == 1 {
			k, err := algorithms.ParseKind(args[0])
			if err != nil {
				return err
			}
			kind = k
		}

		gen := sample.NewRandom()
		if appCfg.Seed != 0 {
			gen = sample.New(appCfg.Seed)
		}
		arr := gen.Generate(TraceSampleSize)

		if play, _ := cmd.Flags().GetBool("play"); play {
			player := ui.NewTracePlayer(arr, kind, ui.PlayerSpeed{
				Interval: appCfg.Trace.Speed,
				Min:      appCfg.Trace.MinSpeed,
				Step:     appCfg.Trace.SpeedUp,
			})
			_, err := runProgramFunc(player, tea.WithAltScreen())
			return err
		}

		steps, err := trace.Generate(kind, arr)
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(steps)
		}
		printSteps(cmd.OutOrStdout(), kind, steps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().Int64("seed", 0, "Seed for the sample (0 picks a random seed)")
	traceCmd.Flags().Bool("play", false, "Animate the trace in an interactive player")
	traceCmd.Flags().Duration("speed", ui.DefaultPlayerSpeed.Interval, "Initial delay between animated steps")
	traceCmd.Flags().Bool("json", false, "Print the steps as JSON")
}

func printSteps(w io.Writer, kind algorithms.Kind, steps []trace.Step) {
	fmt.Fprintf(w, "%s  %s\n\n", kind.Label(), kind.Complexity())
	for _, s := range steps {
		fmt.Fprintf(w, "Step %d/%d: %s\n", s.Index+1, len(steps), s.Description)
		if len(s.Sample) > 0 {
			fmt.Fprintf(w, "  %s\n", formatSample(s))
		}
		if len(s.CallStack) > 0 {
			fmt.Fprintf(w, "  stack: %s\n", strings.Join(s.CallStack, " > "))
		}
	}
}

// formatSample brackets the active element of a step.
func formatSample(s trace.Step) string {
	parts := make([]string, len(s.Sample))
	for i, v := range s.Sample {
		if s.Active(i) {
			parts[i] = "[" + strconv.Itoa(v) + "]"
		} else {
			parts[i] = strconv.Itoa(v)
		}
	}
	return strings.Join(parts, " ")
}
