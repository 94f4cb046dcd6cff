package htc

// DataSourceInfo locates one shard file.
type DataSourceInfo struct {
	Path string `json:"path"`
}

// DataSource describes how one shard is read.
type DataSource struct {
	SourceType string         `json:"sourceType"`
	Info       DataSourceInfo `json:"info"`
}

// ActorDataSource is one manifest entry binding a shard file to the actor
// class it instantiates and the number of entities it holds.
type ActorDataSource struct {
	ID          string     `json:"id"` // shard stem, e.g. "nodes_0"
	ClassType   string     `json:"classType"`
	EntityCount int        `json:"entityCount"`
	DataSource  DataSource `json:"dataSource"`
}

// EntityTotals is the per-kind entity census recorded in the manifest.
type EntityTotals struct {
	Nodes int `json:"nodes"`
	Links int `json:"links"`
	Cars  int `json:"cars"`
}

// SimulationConfig is the simulation.json document: scenario metadata plus
// one data source entry per shard, in node, link, car order.
type SimulationConfig struct {
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	StartRealTime     string            `json:"startRealTime"`
	TimeUnit          string            `json:"timeUnit"`
	TimeStep          int               `json:"timeStep"`
	Duration          int               `json:"duration"`
	StartTick         int               `json:"startTick"`
	GeneratedAt       string            `json:"generatedAt"`
	Totals            EntityTotals      `json:"totals"`
	ActorsDataSources []ActorDataSource `json:"actorsDataSources"`
}
