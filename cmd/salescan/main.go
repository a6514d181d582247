package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/arvindps/salescan/pkg/config"
	"github.com/arvindps/salescan/pkg/job"
	"github.com/arvindps/salescan/pkg/service"
	"github.com/arvindps/salescan/pkg/validate"
)

var (
	cfgFile string
	debug   bool
	noInput bool

	flagRegion string
	flagMin    float64
	flagMax    float64
)

var rootCmd = &cobra.Command{
	Use:   "salescan",
	Short: "Sales transaction analytics pipeline",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the sales data file and write the enriched dataset and report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()
		_ = gotenv.Load()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		processor := service.NewProcessor(cfg, logger)
		records, err := processor.LoadRecords()
		if err != nil {
			logger.Error("failed to load sales data", "error", err)
			return err
		}

		filters, fromFlags := flagFilters(cmd)
		if !fromFlags && !noInput {
			filters = promptFilters(os.Stdin, os.Stdout, records)
		}

		results, err := processor.Analyze(cmd.Context(), records, filters)
		if err != nil {
			logger.Error("pipeline failed", "error", err)
			return err
		}

		if debug {
			pp.Println(results.Summary)
		}

		fmt.Printf("Valid: %d | Invalid: %d | Analyzed: %d\n",
			results.Summary.TotalInput-results.Summary.Invalid,
			results.Summary.Invalid,
			results.Summary.FinalCount)
		fmt.Printf("Enriched %d/%d transactions (%.1f%% matched)\n",
			results.EnrichedCount, results.Summary.FinalCount, results.MatchRate())
		fmt.Printf("Enriched data saved to: %s\n", cfg.EnrichedPath)
		fmt.Printf("Report saved to: %s\n", cfg.ReportPath)
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <job_file>",
	Short: "Run a pipeline job described by a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		_ = gotenv.Load()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		j, err := job.Load(args[0])
		if err != nil {
			return err
		}
		j.ApplyTo(cfg)

		results, err := service.NewProcessor(cfg, logger).Run(cmd.Context(), j.Filters())
		if err != nil {
			logger.Error("pipeline failed", "error", err)
			return err
		}

		if debug {
			pp.Println(results.Summary)
		}
		fmt.Printf("Analyzed %d transactions, report saved to: %s\n",
			results.Summary.FinalCount, cfg.ReportPath)
		return nil
	},
}

// flagFilters builds filters from the CLI flags; fromFlags reports whether
// any filter flag was set, which suppresses the interactive prompts.
func flagFilters(cmd *cobra.Command) (validate.Filters, bool) {
	var filters validate.Filters
	fromFlags := false
	if cmd.Flags().Changed("region") {
		filters.Region = flagRegion
		fromFlags = true
	}
	if cmd.Flags().Changed("min") {
		v := flagMin
		filters.MinAmount = &v
		fromFlags = true
	}
	if cmd.Flags().Changed("max") {
		v := flagMax
		filters.MaxAmount = &v
		fromFlags = true
	}
	return filters, fromFlags
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "salescan",
		Level:           level,
	})
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging and summary dumps")

	analyzeCmd.Flags().String("input", "", "Sales data file (overrides config)")
	analyzeCmd.Flags().Int("top", 5, "Number of top products to report")
	analyzeCmd.Flags().Int("threshold", 10, "Low performer quantity threshold")
	analyzeCmd.Flags().BoolVar(&noInput, "no-input", false, "Never prompt; run with flag filters only")
	analyzeCmd.Flags().StringVar(&flagRegion, "region", "", "Filter by region (exact match)")
	analyzeCmd.Flags().Float64Var(&flagMin, "min", 0, "Minimum transaction amount (inclusive)")
	analyzeCmd.Flags().Float64Var(&flagMax, "max", 0, "Maximum transaction amount (inclusive)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
