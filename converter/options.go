package converter

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults used by DefaultOptions and applied to zero fields by Run.
const (
	DefaultScenarioName = "smart_mobility"
	DefaultDuration     = 86400
	DefaultTimeUnit     = "seconds"
	DefaultTimeStep     = 1
	DefaultOutputDir    = "output"
	DefaultMaxPerFile   = 1000
)

// Options configures a single conversion run.
type Options struct {
	// NetworkPath is the MATSim network XML file, optionally gzipped.
	NetworkPath string `validate:"required"`
	// PlansPath is the MATSim trips/plans XML file, optionally gzipped.
	PlansPath string `validate:"required"`

	// Scenario metadata copied into simulation.json.
	ScenarioName string
	// StartRealTime is the ISO 8601 wall-clock start of the simulation.
	// Empty means now; a value without a zone offset is taken as UTC.
	StartRealTime string
	Duration      int `validate:"gt=0"`
	TimeUnit      string
	TimeStep      int `validate:"gt=0"`
	StartTick     int `validate:"gte=0"`

	// OutputDir is the base output directory. Files land in the
	// <OutputDir>/<ScenarioName> subdirectory.
	OutputDir string
	// BasePath, when set, prefixes every shard path recorded in the
	// manifest. Empty keeps the paths relative to the manifest.
	BasePath string

	MaxNodesPerFile int `validate:"gt=0"`
	MaxLinksPerFile int `validate:"gt=0"`
	MaxTripsPerFile int `validate:"gt=0"`

	// Gzip compresses shard files (.json.gz). The manifest itself is
	// always written uncompressed.
	Gzip bool
	// Pretty indents the generated JSON with four spaces.
	Pretty bool

	// GeneratedAt pins the manifest generation timestamp so reruns are
	// byte-identical. Zero means now.
	GeneratedAt time.Time
}

// DefaultOptions returns Options primed with the converter defaults.
// Callers still have to fill in the input paths.
func DefaultOptions() Options {
	return Options{
		ScenarioName:    DefaultScenarioName,
		Duration:        DefaultDuration,
		TimeUnit:        DefaultTimeUnit,
		TimeStep:        DefaultTimeStep,
		OutputDir:       DefaultOutputDir,
		MaxNodesPerFile: DefaultMaxPerFile,
		MaxLinksPerFile: DefaultMaxPerFile,
		MaxTripsPerFile: DefaultMaxPerFile,
		Pretty:          true,
	}
}

// withDefaults fills zero fields so a partially constructed Options value
// behaves like DefaultOptions. Pretty is left alone: false is a valid
// explicit choice, not a missing value.
func (o Options) withDefaults() Options {
	if o.ScenarioName == "" {
		o.ScenarioName = DefaultScenarioName
	}
	if o.Duration == 0 {
		o.Duration = DefaultDuration
	}
	if o.TimeUnit == "" {
		o.TimeUnit = DefaultTimeUnit
	}
	if o.TimeStep == 0 {
		o.TimeStep = DefaultTimeStep
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.MaxNodesPerFile == 0 {
		o.MaxNodesPerFile = DefaultMaxPerFile
	}
	if o.MaxLinksPerFile == 0 {
		o.MaxLinksPerFile = DefaultMaxPerFile
	}
	if o.MaxTripsPerFile == 0 {
		o.MaxTripsPerFile = DefaultMaxPerFile
	}
	return o
}

func (o Options) validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
