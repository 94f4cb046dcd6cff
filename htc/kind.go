package htc

// Kind identifies one family of simulation entities. Each kind is its own
// id namespace: resource numbering and duplicate detection never cross kinds.
type Kind string

const (
	KindNode Kind = "node"
	KindLink Kind = "link"
	KindCar  Kind = "car"
)

// Actor class types understood by the simulator loader.
const (
	NodeClassType = "mobility.actor.Node"
	LinkClassType = "mobility.actor.Link"
	CarClassType  = "mobility.actor.Car"
	GPSClassType  = "mobility.actor.GPS"
)

// State types carried in each actor's data block.
const (
	NodeStateType = "mobility.entity.state.NodeState"
	LinkStateType = "model.mobility.entity.state.LinkState"
	CarStateType  = "model.mobility.entity.state.CarState"
)

// Distribution strategies referenced from dependency blocks.
const (
	ActorTypeLoadBalanced = "LoadBalancedDistributed"
	ActorTypePool         = "PoolDistributed"
)

// The GPS pool actor every car depends on. The simulator provides it; the
// converter only references it.
const (
	GPSActorID    = "htcaid:gps;1"
	GPSResourceID = "htcrid:gps;1"
)

// ClassType returns the actor class implementing this kind.
func (k Kind) ClassType() string {
	switch k {
	case KindNode:
		return NodeClassType
	case KindLink:
		return LinkClassType
	case KindCar:
		return CarClassType
	}
	return ""
}

// StateType returns the dataType of this kind's entity state.
func (k Kind) StateType() string {
	switch k {
	case KindNode:
		return NodeStateType
	case KindLink:
		return LinkStateType
	case KindCar:
		return CarStateType
	}
	return ""
}

// FileBase returns the filename stem shard files of this kind use
// ("nodes" for nodes_0.json and so on).
func (k Kind) FileBase() string {
	switch k {
	case KindNode:
		return "nodes"
	case KindLink:
		return "links"
	case KindCar:
		return "cars"
	}
	return string(k) + "s"
}
