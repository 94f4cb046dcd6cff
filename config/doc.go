// Package config handles converter configuration loading and validation.
//
// Configuration is read from an optional YAML file and validated using
// struct tags. Command-line flags override anything set here; values left
// unset fall back to the converter defaults.
package config
