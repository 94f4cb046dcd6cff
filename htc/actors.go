package htc

// DependencyInfo is one actor's reference to another. The resource id names
// the target entity, which is how the loader locates it without scanning
// every shard.
type DependencyInfo struct {
	ID         string `json:"id"`         // actor id of the target
	ResourceID string `json:"resourceId"` // converter-assigned resource id
	ClassType  string `json:"classType"`  // actor class of the target
	ActorType  string `json:"actorType"`  // distribution strategy
}

// GPSDependency returns the fixed GPS pool dependency carried by every car.
func GPSDependency() DependencyInfo {
	return DependencyInfo{
		ID:         GPSActorID,
		ResourceID: GPSResourceID,
		ClassType:  GPSClassType,
		ActorType:  ActorTypePool,
	}
}

// NodeContent is the initial state of a node actor. MATSim coordinates are
// planar and the simulator treats them as opaque, so x and y pass through
// as strings unconverted.
type NodeContent struct {
	StartTick             int    `json:"startTick"`
	Latitude              string `json:"latitude"`  // MATSim x
	Longitude             string `json:"longitude"` // MATSim y
	ScheduleOnTimeManager bool   `json:"scheduleOnTimeManager"`
}

// NodeData wraps the node state with its dataType discriminator.
type NodeData struct {
	DataType string      `json:"dataType"`
	Content  NodeContent `json:"content"`
}

// NodeActor is one network junction in loader form. Nodes depend on
// nothing; the loader still expects the empty dependencies object.
type NodeActor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	TypeActor    string   `json:"typeActor"`
	Data         NodeData `json:"data"`
	Dependencies struct{} `json:"dependencies"`

	// ResourceID is the converter-assigned id other actors reference this
	// node by. The loader derives placement from shard membership, so it
	// never serializes.
	ResourceID string `json:"-"`
}

// LinkContent is the initial state of a link actor. Numeric fields come
// from the MATSim link attributes; capperiod, effectivecellsize and
// effectivelanewidth are copied from the enclosing <links> element.
type LinkContent struct {
	StartTick             int      `json:"startTick"`
	FromNode              string   `json:"from_node"` // origin node actor id
	ToNode                string   `json:"to_node"`   // destination node actor id
	Capperiod             string   `json:"capperiod,omitempty"`
	EffectiveCellSize     float64  `json:"effectivecellsize"`
	EffectiveLaneWidth    float64  `json:"effectivelanewidth"`
	Length                float64  `json:"length"`
	Lanes                 int      `json:"lanes"` // integral part of permlanes
	FreeSpeed             float64  `json:"freeSpeed"`
	Capacity              float64  `json:"capacity"`
	Permlanes             float64  `json:"permlanes"`
	Modes                 []string `json:"modes"`
	LinkType              string   `json:"linkType,omitempty"`
	ScheduleOnTimeManager bool     `json:"scheduleOnTimeManager"`
}

// LinkData wraps the link state with its dataType discriminator.
type LinkData struct {
	DataType string      `json:"dataType"`
	Content  LinkContent `json:"content"`
}

// LinkDependencies references the two endpoint nodes of a link.
type LinkDependencies struct {
	FromNode DependencyInfo `json:"from_node"`
	ToNode   DependencyInfo `json:"to_node"`
}

// LinkActor is one directed road segment in loader form.
type LinkActor struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	TypeActor    string           `json:"typeActor"`
	Data         LinkData         `json:"data"`
	Dependencies LinkDependencies `json:"dependencies"`

	ResourceID string `json:"-"`
}

// CarContent is the initial state of a car actor: where and when it enters
// the network. Cars are the only actors the time manager schedules.
type CarContent struct {
	StartTick             int    `json:"startTick"`
	Origin                string `json:"origin"`      // origin node actor id
	Destination           string `json:"destination"` // destination node actor id
	LinkOrigin            string `json:"linkOrigin"`  // starting link actor id
	GPSID                 string `json:"gpsId"`
	ScheduleOnTimeManager bool   `json:"scheduleOnTimeManager"`
}

// CarData wraps the car state with its dataType discriminator.
type CarData struct {
	DataType string     `json:"dataType"`
	Content  CarContent `json:"content"`
}

// CarDependencies references everything a car needs resolved before it can
// move: its endpoint nodes, its starting link, the links of its planned
// route (when the trip carries one) and the shared GPS pool.
type CarDependencies struct {
	FromNode   DependencyInfo   `json:"from_node"`
	ToNode     DependencyInfo   `json:"to_node"`
	LinkOrigin DependencyInfo   `json:"link_origin"`
	Route      []DependencyInfo `json:"route,omitempty"`
	GPS        DependencyInfo   `json:"gps"`
}

// CarActor is one vehicle trip in loader form. The name repeats the origin
// node's name, which is what the simulator's own examples do.
type CarActor struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TypeActor    string          `json:"typeActor"`
	Data         CarData         `json:"data"`
	Dependencies CarDependencies `json:"dependencies"`

	ResourceID string `json:"-"`
}
