package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fwrock/htc-convert-insterscsimulator/config"
	"github.com/fwrock/htc-convert-insterscsimulator/converter"
	"github.com/fwrock/htc-convert-insterscsimulator/internal/logging"
)

var (
	logger *zap.Logger

	flagNetwork   string
	flagPlans     string
	flagConfig    string
	flagScenario  string
	flagStartReal string
	flagDuration  int
	flagTimeUnit  string
	flagTimeStep  int
	flagStartTick int
	flagOutputDir string
	flagBasePath  string
	flagMaxNodes  int
	flagMaxLinks  int
	flagMaxTrips  int
	flagGzip      bool
	flagPretty    bool
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "htc-convert",
	Short: "Convert MATSim network and trips XML into HTC simulator input",
	Long: `htc-convert reads a MATSim network file and a trips/plans file and writes
the sharded JSON dataset the HTC (InterSCSimulator) loader consumes:
nodes_<i>.json, links_<i>.json and cars_<i>.json shard files plus the
simulation.json manifest that references them.

Inputs may be gzip-compressed (.xml.gz). Settings can also come from a YAML
file via --config; explicit flags take precedence over the file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
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
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}
		sum, err := converter.Run(opts, logger)
		if err != nil {
			return err
		}
		fmt.Printf("Scenario %q: %d nodes, %d links, %d cars in %d shard files\n",
			sum.Scenario, sum.Nodes, sum.Links, sum.Cars, sum.TotalShards())
		for warning, count := range sum.Warnings {
			fmt.Printf("  warning %s: %d occurrence(s)\n", warning, count)
		}
		fmt.Printf("Wrote %s\n", sum.ManifestPath)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagNetwork, "network", "", "MATSim network XML file, optionally gzipped (required)")
	rootCmd.Flags().StringVar(&flagPlans, "plans", "", "MATSim trips/plans XML file, optionally gzipped (required)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file with scenario/limits/output settings")
	rootCmd.Flags().StringVar(&flagScenario, "scenario-name", converter.DefaultScenarioName, "scenario name, also the output subdirectory")
	rootCmd.Flags().StringVar(&flagStartReal, "start-real-time", "", "ISO 8601 wall-clock start of the simulation (default: now, UTC)")
	rootCmd.Flags().IntVar(&flagDuration, "duration", converter.DefaultDuration, "simulation duration in time units")
	rootCmd.Flags().StringVar(&flagTimeUnit, "time-unit", converter.DefaultTimeUnit, "simulation time unit")
	rootCmd.Flags().IntVar(&flagTimeStep, "time-step", converter.DefaultTimeStep, "simulation time step")
	rootCmd.Flags().IntVar(&flagStartTick, "start-tick", 0, "first simulation tick")
	rootCmd.Flags().StringVar(&flagOutputDir, "output-dir", converter.DefaultOutputDir, "base output directory")
	rootCmd.Flags().StringVar(&flagBasePath, "base-path", "", "path prefix for shard references in simulation.json")
	rootCmd.Flags().IntVar(&flagMaxNodes, "max-nodes-per-file", converter.DefaultMaxPerFile, "maximum nodes per shard file")
	rootCmd.Flags().IntVar(&flagMaxLinks, "max-links-per-file", converter.DefaultMaxPerFile, "maximum links per shard file")
	rootCmd.Flags().IntVar(&flagMaxTrips, "max-trips-per-file", converter.DefaultMaxPerFile, "maximum car trips per shard file")
	rootCmd.Flags().BoolVar(&flagGzip, "gzip", false, "gzip-compress shard files (.json.gz)")
	rootCmd.Flags().BoolVar(&flagPretty, "pretty", true, "indent the generated JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	_ = rootCmd.MarkFlagRequired("network")
	_ = rootCmd.MarkFlagRequired("plans")
}

// buildOptions layers the three setting sources: defaults, then the
// optional config file, then flags the user explicitly set.
func buildOptions(cmd *cobra.Command) (converter.Options, error) {
	opts := converter.DefaultOptions()
	opts.NetworkPath = flagNetwork
	opts.PlansPath = flagPlans

	if flagConfig != "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return converter.Options{}, err
		}
		applyFileConfig(&opts, cfg)
	}

	// Flag defaults mirror DefaultOptions, so only explicitly set flags
	// may override the config file.
	flags := cmd.Flags()
	if flags.Changed("scenario-name") {
		opts.ScenarioName = flagScenario
	}
	if flags.Changed("start-real-time") {
		opts.StartRealTime = flagStartReal
	}
	if flags.Changed("duration") {
		opts.Duration = flagDuration
	}
	if flags.Changed("time-unit") {
		opts.TimeUnit = flagTimeUnit
	}
	if flags.Changed("time-step") {
		opts.TimeStep = flagTimeStep
	}
	if flags.Changed("start-tick") {
		opts.StartTick = flagStartTick
	}
	if flags.Changed("output-dir") {
		opts.OutputDir = flagOutputDir
	}
	if flags.Changed("base-path") {
		opts.BasePath = flagBasePath
	}
	if flags.Changed("max-nodes-per-file") {
		opts.MaxNodesPerFile = flagMaxNodes
	}
	if flags.Changed("max-links-per-file") {
		opts.MaxLinksPerFile = flagMaxLinks
	}
	if flags.Changed("max-trips-per-file") {
		opts.MaxTripsPerFile = flagMaxTrips
	}
	if flags.Changed("gzip") {
		opts.Gzip = flagGzip
	}
	if flags.Changed("pretty") {
		opts.Pretty = flagPretty
	}
	return opts, nil
}

// applyFileConfig copies the set fields of the YAML config over opts.
func applyFileConfig(opts *converter.Options, cfg *config.FileConfig) {
	if cfg.Scenario.Name != "" {
		opts.ScenarioName = cfg.Scenario.Name
	}
	if cfg.Scenario.StartRealTime != "" {
		opts.StartRealTime = cfg.Scenario.StartRealTime
	}
	if cfg.Scenario.Duration > 0 {
		opts.Duration = cfg.Scenario.Duration
	}
	if cfg.Scenario.TimeUnit != "" {
		opts.TimeUnit = cfg.Scenario.TimeUnit
	}
	if cfg.Scenario.TimeStep > 0 {
		opts.TimeStep = cfg.Scenario.TimeStep
	}
	if cfg.Scenario.StartTick > 0 {
		opts.StartTick = cfg.Scenario.StartTick
	}
	if cfg.Limits.MaxNodesPerFile > 0 {
		opts.MaxNodesPerFile = cfg.Limits.MaxNodesPerFile
	}
	if cfg.Limits.MaxLinksPerFile > 0 {
		opts.MaxLinksPerFile = cfg.Limits.MaxLinksPerFile
	}
	if cfg.Limits.MaxTripsPerFile > 0 {
		opts.MaxTripsPerFile = cfg.Limits.MaxTripsPerFile
	}
	if cfg.Output.Dir != "" {
		opts.OutputDir = cfg.Output.Dir
	}
	if cfg.Output.BasePath != "" {
		opts.BasePath = cfg.Output.BasePath
	}
	if cfg.Output.Gzip {
		opts.Gzip = true
	}
	if cfg.Output.Pretty != nil {
		opts.Pretty = *cfg.Output.Pretty
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
