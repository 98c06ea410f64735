package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"algolab/internal/config"
	"algolab/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	exit    = os.Exit
	cfgFile string

	// appCfg is resolved before every command runs.
	appCfg   *config.Config
	recorder = telemetry.NewRecorder()

	metricsServer *http.Server
	closeLog      = func() {}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "algolab",
	Short: "Algorithm Performance Lab: benchmark and visualize simple algorithms",
	Long: `algolab times an iterative sum, a recursive sum and the native sort across
growing dataset sizes, charts the results, derives insights from them and
animates how each algorithm walks through a small sample.

Run without a subcommand to configure an experiment interactively.`,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'algolab --help' for usage.")
		exit(1)
	}
}

func init() {
	rootCmd.RunE = runInteractive

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Append JSON logs to this file")
	rootCmd.PersistentFlags().String("log-format", "text", "Console log format: text or json")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on host:port while running")
}

// setup loads configuration, logging and metrics for every command.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Init(cfgFile); err != nil {
		return err
	}
	bindCommandFlags(cmd)
	cfg, err := config.Current()
	if err != nil {
		return err
	}
	appCfg = cfg

	closeLog = telemetry.InitLogger(telemetry.LogOptions{
		Debug:   cfg.Verbose,
		File:    cfg.LogFile,
		JSON:    cfg.LogFormat == "json",
		Console: cmd.ErrOrStderr(),
	})
	telemetry.LogDebug("configuration loaded", "max_size", cfg.MaxSize, "iterations", cfg.Iterations, "seed", cfg.Seed)

	if cfg.MetricsAddr != "" {
		metricsServer = telemetry.StartMetricsServer(cfg.MetricsAddr, recorder)
	}
	return nil
}

// commandFlags maps local flag names to the config keys they override.
var commandFlags = map[string]string{
	"max-size":   "max_size",
	"iterations": "iterations",
	"seed":       "seed",
	"show":       "show",
	"speed":      "trace.speed",
}

// bindCommandFlags binds the flags of the command being executed, so that
// commands sharing a flag name do not overwrite each other's binding.
func bindCommandFlags(cmd *cobra.Command) {
	for name, key := range commandFlags {
		if f := cmd.Flags().Lookup(name); f != nil {
			viper.BindPFlag(key, f)
		}
	}
	// Persistent flags are re-bound after a viper.Reset.
	viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	viper.BindPFlag("log_file", cmd.Flags().Lookup("log-file"))
	viper.BindPFlag("log_format", cmd.Flags().Lookup("log-format"))
	viper.BindPFlag("metrics_addr", cmd.Flags().Lookup("metrics-addr"))
}

func teardown(cmd *cobra.Command, args []string) error {
	defer closeLog()
	if metricsServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := metricsServer.Shutdown(ctx)
	metricsServer = nil
	return err
}
