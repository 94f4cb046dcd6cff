// Package converter is the main entry point for MATSim to HTC conversion.
//
// This package runs the full pipeline that turns a MATSim network file and a
// MATSim trips/plans file into the sharded JSON dataset consumed by the HTC
// (InterSCSimulator) discrete-event traffic simulator.
//
// # Overview
//
// The converter package coordinates the other packages of this module:
//   - MATSim XML parsing (nodes, links, car trips) via matsim.Parser
//   - Resource id assignment and reference resolution via the splitter package
//   - Shard partitioning and JSON/gzip output via splitter and formatter
//   - Manifest generation (simulation.json) via the manifest package
//
// # Usage
//
// Basic setup:
//
//	import (
//	    "github.com/fwrock/htc-convert-insterscsimulator/converter"
//	    "github.com/fwrock/htc-convert-insterscsimulator/internal/logging"
//	)
//
//	log, _ := logging.New(false)
//
//	opts := converter.DefaultOptions()
//	opts.NetworkPath = "network.xml"
//	opts.PlansPath = "trips.xml"
//	opts.ScenarioName = "sao_paulo"
//
//	summary, err := converter.Run(opts, log)
//	if err != nil {
//	    // nothing usable was written; see Failure Model below
//	}
//
// # Pipeline Stages
//
// Run executes the stages strictly in order:
//
//  1. Parse the network XML into raw nodes, raw links and the global link
//     attributes, then the plans XML into raw car trips.
//  2. Assign sequential resource ids per kind (node, link, car) in input
//     order. Duplicate raw ids within a kind abort the run.
//  3. Build the output actors, resolving every node and link reference to
//     its assigned id. A reference to an unknown entity aborts the run.
//  4. Partition each collection into groups of at most MaxNodesPerFile,
//     MaxLinksPerFile and MaxTripsPerFile entries and write them as
//     nodes_<i>.json, links_<i>.json and cars_<i>.json (plus .gz when
//     compression is on).
//  5. Generate and write simulation.json, which lists every shard file.
//
// # Failure Model
//
// Any stage failure aborts the run before the manifest is written. Since the
// simulator discovers shard files exclusively through simulation.json, an
// output directory that contains a manifest is always a complete dataset.
// Malformed individual records (a node without coordinates, a trip without
// an origin) do not fail the run; they are skipped and reported through the
// aggregated warnings in the Summary.
//
// # Reproducibility
//
// Two runs over the same inputs with the same Options produce byte-identical
// output, including gzip members, provided StartRealTime and GeneratedAt are
// pinned. Left at their zero values both default to the current time, which
// only changes the corresponding manifest fields.
//
// # Concurrency
//
// Run is a synchronous single-threaded pipeline and carries no package
// state, so separate runs with separate output directories can execute
// concurrently from distinct goroutines.
package converter
