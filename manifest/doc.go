// Package manifest generates the simulation.json document that binds the
// shard files into one loadable scenario.
package manifest
