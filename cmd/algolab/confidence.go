package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"algolab/internal/insight"

	"github.com/spf13/cobra"
)

var confidenceCmd = &cobra.Command{
	Use:   "confidence [iterations]",
	Short: "Show the confidence level for an iteration count",
	Long: `Show the qualitative confidence attached to averaging a number of runs:
High from 50 iterations, Medium from 20, Low below that.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		iterations := appCfg.Iterations
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid iteration count %q: %w", args[0], err)
			}
			iterations = n
		}

		c := insight.ConfidenceLevel(iterations)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(c)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d iterations: %s confidence\n", iterations, c.Label)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(confidenceCmd)
	confidenceCmd.Flags().Bool("json", false, "Print the result as JSON")
}
