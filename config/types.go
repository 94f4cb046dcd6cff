package config

// ScenarioConfig carries scenario timing defaults.
type ScenarioConfig struct {
	Name          string `yaml:"name"`
	StartRealTime string `yaml:"startRealTime"`
	Duration      int    `yaml:"duration" validate:"gte=0"`
	TimeUnit      string `yaml:"timeUnit"`
	TimeStep      int    `yaml:"timeStep" validate:"gte=0"`
	StartTick     int    `yaml:"startTick" validate:"gte=0"`
}

// LimitsConfig bounds how many actors one shard file may hold. Zero means
// the converter default.
type LimitsConfig struct {
	MaxNodesPerFile int `yaml:"maxNodesPerFile" validate:"gte=0"`
	MaxLinksPerFile int `yaml:"maxLinksPerFile" validate:"gte=0"`
	MaxTripsPerFile int `yaml:"maxTripsPerFile" validate:"gte=0"`
}

// OutputConfig controls where and how files are written. Pretty is a
// pointer so an explicit "pretty: false" is distinguishable from the key
// being absent.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	BasePath string `yaml:"basePath"`
	Gzip     bool   `yaml:"gzip"`
	Pretty   *bool  `yaml:"pretty"`
}

// FileConfig is the root configuration structure.
type FileConfig struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Limits   LimitsConfig   `yaml:"limits"`
	Output   OutputConfig   `yaml:"output"`
}
