package main

import (
	"fmt"
	"strconv"
	"strings"

	"algolab/internal/benchmark"

	"github.com/spf13/cobra"
)

var sizesCmd = &cobra.Command{
	Use:   "sizes [max]",
	Short: "List the dataset sizes a benchmark would use",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		max := appCfg.MaxSize
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[0], err)
			}
			max = n
		}

		sizes := benchmark.DataSizes(max)
		parts := make([]string, len(sizes))
		for i, s := range sizes {
			parts[i] = strconv.Itoa(s)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizesCmd)
}
