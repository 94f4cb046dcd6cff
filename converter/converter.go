package converter

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/fwrock/htc-convert-insterscsimulator/formatter"
	"github.com/fwrock/htc-convert-insterscsimulator/htc"
	"github.com/fwrock/htc-convert-insterscsimulator/internal/logging"
	"github.com/fwrock/htc-convert-insterscsimulator/manifest"
	"github.com/fwrock/htc-convert-insterscsimulator/matsim"
	"github.com/fwrock/htc-convert-insterscsimulator/splitter"
	"github.com/fwrock/htc-convert-insterscsimulator/utils"
)

// Run executes one conversion. Stages run strictly in order and any failure
// aborts before simulation.json is written, so an output directory that
// contains a manifest always describes a complete dataset.
func Run(opts Options, log *zap.Logger) (*Summary, error) {
	started := time.Now()

	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	startRealTime, err := resolveStartRealTime(opts.StartRealTime, log)
	if err != nil {
		return nil, err
	}

	warns := logging.NewWarningAggregator()
	parser := matsim.NewParser(log, warns)

	rawNodes, rawLinks, global, err := parser.ParseNetwork(opts.NetworkPath)
	if err != nil {
		return nil, err
	}
	rawTrips, err := parser.ParsePlans(opts.PlansPath)
	if err != nil {
		return nil, err
	}

	nodeIDs, err := splitter.AssignIDs(htc.KindNode, nodeRawIDs(rawNodes))
	if err != nil {
		return nil, err
	}
	linkIDs, err := splitter.AssignIDs(htc.KindLink, linkRawIDs(rawLinks))
	if err != nil {
		return nil, err
	}
	carIDs, err := splitter.AssignIDs(htc.KindCar, tripRawIDs(rawTrips))
	if err != nil {
		return nil, err
	}
	log.Debug("assigned resource ids",
		zap.Int("nodes", nodeIDs.Len()),
		zap.Int("links", linkIDs.Len()),
		zap.Int("cars", carIDs.Len()),
	)

	nodeActors := splitter.BuildNodeActors(rawNodes, nodeIDs)
	linkActors, err := splitter.BuildLinkActors(rawLinks, global, linkIDs, nodeIDs, warns)
	if err != nil {
		return nil, err
	}
	carActors, err := splitter.BuildCarActors(rawTrips, carIDs, nodeIDs, linkIDs, warns)
	if err != nil {
		return nil, err
	}

	// Every reference resolved; only now touch the filesystem.
	scenarioDir := filepath.Join(opts.OutputDir, opts.ScenarioName)
	if err := formatter.EnsureDir(scenarioDir); err != nil {
		return nil, err
	}
	fileOpts := formatter.Options{Pretty: opts.Pretty, Gzip: opts.Gzip}

	nodeShards, err := splitter.WriteShards(
		splitter.Partition(nodeActors, opts.MaxNodesPerFile), htc.KindNode, scenarioDir, fileOpts)
	if err != nil {
		return nil, err
	}
	linkShards, err := splitter.WriteShards(
		splitter.Partition(linkActors, opts.MaxLinksPerFile), htc.KindLink, scenarioDir, fileOpts)
	if err != nil {
		return nil, err
	}
	carShards, err := splitter.WriteShards(
		splitter.Partition(carActors, opts.MaxTripsPerFile), htc.KindCar, scenarioDir, fileOpts)
	if err != nil {
		return nil, err
	}
	log.Info("wrote shard files",
		zap.String("dir", scenarioDir),
		zap.Int("nodeShards", len(nodeShards)),
		zap.Int("linkShards", len(linkShards)),
		zap.Int("carShards", len(carShards)),
	)

	// The manifest goes last: its presence marks the dataset complete.
	cfg := manifest.Generate(manifest.ScenarioSettings{
		Name:          opts.ScenarioName,
		StartRealTime: startRealTime,
		TimeUnit:      opts.TimeUnit,
		TimeStep:      opts.TimeStep,
		Duration:      opts.Duration,
		StartTick:     opts.StartTick,
		BasePath:      opts.BasePath,
		GeneratedAt:   opts.GeneratedAt,
	}, nodeShards, linkShards, carShards)
	if err := manifest.Write(cfg, scenarioDir, fileOpts); err != nil {
		return nil, err
	}

	warns.LogAll(log)

	sum := &Summary{
		Scenario:     opts.ScenarioName,
		OutputDir:    scenarioDir,
		Nodes:        len(nodeActors),
		Links:        len(linkActors),
		Cars:         len(carActors),
		NodeShards:   nodeShards,
		LinkShards:   linkShards,
		CarShards:    carShards,
		ManifestPath: filepath.Join(scenarioDir, manifest.Filename),
		Warnings:     warns.Counts(),
		Elapsed:      time.Since(started),
	}
	log.Info("conversion complete",
		zap.String("scenario", sum.Scenario),
		zap.Int("nodes", sum.Nodes),
		zap.Int("links", sum.Links),
		zap.Int("cars", sum.Cars),
		zap.Int("shardFiles", sum.TotalShards()),
		zap.Duration("elapsed", sum.Elapsed),
	)
	return sum, nil
}

// resolveStartRealTime normalizes the configured wall-clock start to ISO
// 8601 with millisecond precision. Empty defaults to now; a value without a
// zone offset is taken as UTC with a warning.
func resolveStartRealTime(value string, log *zap.Logger) (string, error) {
	if value == "" {
		return utils.Iso8601Now(), nil
	}
	t, hasZone, err := utils.ParseIso8601(value)
	if err != nil {
		return "", fmt.Errorf("invalid start real time %q: %w", value, err)
	}
	if !hasZone {
		log.Warn("start real time has no zone offset, assuming UTC",
			zap.String("value", value))
	}
	return utils.FormatIso8601(t), nil
}

func nodeRawIDs(nodes []matsim.RawNode) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

func linkRawIDs(links []matsim.RawLink) []string {
	ids := make([]string, len(links))
	for i, l := range links {
		ids[i] = l.ID
	}
	return ids
}

func tripRawIDs(trips []matsim.RawTrip) []string {
	ids := make([]string, len(trips))
	for i, t := range trips {
		ids[i] = t.Name
	}
	return ids
}
