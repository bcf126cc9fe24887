package main

import (
	"fmt"
	"os"

	"fastabench/internal/config"
	"fastabench/internal/scenario"
	"fastabench/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit

// newRootCmd builds the fastabench command. Running it executes the genome
// parsing benchmark with the loaded configuration.
func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "fastabench",
		Short: "Time parsing of gzip-compressed FASTA genome files",
		Long: `fastabench opens a gzip-compressed genome file once, then repeatedly
rewinds it and parses up to record_limit FASTA records, timing each pass.
It prints the average, minimum and maximum pass time and the number of
records collected.

Settings come from config.yaml, a .env file or FASTABENCH_* environment
variables (genome_file, iterations, record_limit, log_file, metrics_file).`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cfgFile)
		},
		RunE: runBenchmark,
	}

	bindFlags(cmd.PersistentFlags(), &cfgFile)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, cfgFile *string) {
	fs.StringVar(cfgFile, "config", "", "config file (default is ./config.yaml)")
	fs.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	viper.BindPFlag("verbose", fs.Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cfgFile string) error {
	if err := config.Load(cfgFile); err != nil {
		return err
	}
	if err := config.ValidateConfig(); err != nil {
		return err
	}

	cfg := config.FromViper()
	telemetry.InitLogger(cfg.Verbose, cfg.LogFile)
	return nil
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()

	g := &scenario.GenomeParse{
		Path:        cfg.GenomeFile,
		Iterations:  cfg.Iterations,
		RecordLimit: cfg.RecordLimit,
	}
	if cfg.MetricsFile != "" {
		g.Recorder = telemetry.NewRecorder(g.Name())
	}

	durations, err := g.Run()
	if err != nil {
		return fmt.Errorf("benchmark %s failed: %w", g.Name(), err)
	}

	if err := g.Report(cmd.OutOrStdout(), durations); err != nil {
		return err
	}

	if g.Recorder != nil {
		if err := g.Recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			telemetry.LogError("Failed to write metrics", err, "path", cfg.MetricsFile)
		}
	}
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}
