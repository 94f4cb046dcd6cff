package splitter

import (
	"strconv"
	"strings"

	"github.com/fwrock/htc-convert-insterscsimulator/htc"
	"github.com/fwrock/htc-convert-insterscsimulator/internal/logging"
	"github.com/fwrock/htc-convert-insterscsimulator/matsim"
)

// BuildNodeActors converts raw nodes to node actors in input order.
func BuildNodeActors(nodes []matsim.RawNode, ids *IDMap) []htc.NodeActor {
	actors := make([]htc.NodeActor, 0, len(nodes))
	for _, n := range nodes {
		rid, _ := ids.Resolve(n.ID)
		actors = append(actors, htc.NodeActor{
			ID:        htc.ActorID(htc.KindNode, n.ID),
			Name:      "Node" + n.ID,
			TypeActor: htc.NodeClassType,
			Data: htc.NodeData{
				DataType: htc.NodeStateType,
				Content: htc.NodeContent{
					Latitude:  n.X,
					Longitude: n.Y,
				},
			},
			ResourceID: rid,
		})
	}
	return actors
}

// BuildLinkActors converts raw links to link actors in input order,
// resolving both endpoints against the node id map. Non-numeric link
// attributes fall back to values the simulator tolerates, counted on
// warns.
func BuildLinkActors(links []matsim.RawLink, global matsim.GlobalLinkAttributes, ids, nodeIDs *IDMap, warns *logging.WarningAggregator) ([]htc.LinkActor, error) {
	actors := make([]htc.LinkActor, 0, len(links))
	for _, l := range links {
		fromDep, ok := nodeIDs.Dependency(l.From)
		if !ok {
			return nil, &DanglingReferenceError{Kind: htc.KindLink, RawID: l.ID, RefKind: htc.KindNode, RefID: l.From}
		}
		toDep, ok := nodeIDs.Dependency(l.To)
		if !ok {
			return nil, &DanglingReferenceError{Kind: htc.KindLink, RawID: l.ID, RefKind: htc.KindNode, RefID: l.To}
		}

		permlanes := floatAttr(l.Permlanes, 1, logging.WarningInvalidPermlanes, l.ID, warns)
		rid, _ := ids.Resolve(l.ID)

		actors = append(actors, htc.LinkActor{
			ID:        htc.ActorID(htc.KindLink, l.ID),
			Name:      "Client" + l.ID,
			TypeActor: htc.LinkClassType,
			Data: htc.LinkData{
				DataType: htc.LinkStateType,
				Content: htc.LinkContent{
					FromNode:           fromDep.ID,
					ToNode:             toDep.ID,
					Capperiod:          global.Capperiod,
					EffectiveCellSize:  global.EffectiveCellSize,
					EffectiveLaneWidth: global.EffectiveLaneWidth,
					Length:             floatAttr(l.Length, 0, logging.WarningInvalidLength, l.ID, warns),
					Lanes:              int(permlanes),
					FreeSpeed:          floatAttr(l.Freespeed, 0, logging.WarningInvalidFreespeed, l.ID, warns),
					Capacity:           floatAttr(l.Capacity, 0, logging.WarningInvalidCapacity, l.ID, warns),
					Permlanes:          permlanes,
					Modes:              splitModes(l.Modes),
					LinkType:           linkType(l.Attributes),
				},
			},
			Dependencies: htc.LinkDependencies{FromNode: fromDep, ToNode: toDep},
			ResourceID:   rid,
		})
	}
	return actors, nil
}

// BuildCarActors converts raw trips to car actors in input order,
// resolving the endpoint nodes, the starting link and every route link.
func BuildCarActors(trips []matsim.RawTrip, ids, nodeIDs, linkIDs *IDMap, warns *logging.WarningAggregator) ([]htc.CarActor, error) {
	actors := make([]htc.CarActor, 0, len(trips))
	for _, t := range trips {
		originDep, ok := nodeIDs.Dependency(t.Origin)
		if !ok {
			return nil, &DanglingReferenceError{Kind: htc.KindCar, RawID: t.Name, RefKind: htc.KindNode, RefID: t.Origin}
		}
		destDep, ok := nodeIDs.Dependency(t.Destination)
		if !ok {
			return nil, &DanglingReferenceError{Kind: htc.KindCar, RawID: t.Name, RefKind: htc.KindNode, RefID: t.Destination}
		}
		linkDep, ok := linkIDs.Dependency(t.LinkOrigin)
		if !ok {
			return nil, &DanglingReferenceError{Kind: htc.KindCar, RawID: t.Name, RefKind: htc.KindLink, RefID: t.LinkOrigin}
		}

		var route []htc.DependencyInfo
		if len(t.Route) > 0 {
			route = make([]htc.DependencyInfo, 0, len(t.Route))
			for _, rawLink := range t.Route {
				dep, ok := linkIDs.Dependency(rawLink)
				if !ok {
					return nil, &DanglingReferenceError{Kind: htc.KindCar, RawID: t.Name, RefKind: htc.KindLink, RefID: rawLink}
				}
				route = append(route, dep)
			}
		}

		rid, _ := ids.Resolve(t.Name)

		actors = append(actors, htc.CarActor{
			ID: htc.ActorID(htc.KindCar, t.Name),
			// The simulator's sample scenarios name cars after their
			// origin node.
			Name:      "Node" + t.Origin,
			TypeActor: htc.CarClassType,
			Data: htc.CarData{
				DataType: htc.CarStateType,
				Content: htc.CarContent{
					StartTick:             startTick(t.Start, t.Name, warns),
					Origin:                originDep.ID,
					Destination:           destDep.ID,
					LinkOrigin:            linkDep.ID,
					GPSID:                 htc.GPSActorID,
					ScheduleOnTimeManager: true,
				},
			},
			Dependencies: htc.CarDependencies{
				FromNode:   originDep,
				ToNode:     destDep,
				LinkOrigin: linkDep,
				Route:      route,
				GPS:        htc.GPSDependency(),
			},
			ResourceID: rid,
		})
	}
	return actors, nil
}

// floatAttr parses v, counting a warning and falling back when the value
// is not numeric.
func floatAttr(v string, fallback float64, warning, rawID string, warns *logging.WarningAggregator) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		warns.Add(warning, rawID)
		return fallback
	}
	return f
}

// startTick truncates the MATSim start time to a tick. MATSim allows
// fractional seconds; simulator ticks are integral.
func startTick(start, name string, warns *logging.WarningAggregator) int {
	f, err := strconv.ParseFloat(start, 64)
	if err != nil {
		warns.Add(logging.WarningInvalidStartTime, name)
		return 0
	}
	return int(f)
}

// splitModes turns MATSim's comma-separated mode list into a slice,
// trimming whitespace and dropping empties. Never nil: the output format
// wants an array even when empty.
func splitModes(modes string) []string {
	parts := strings.Split(modes, ",")
	out := make([]string, 0, len(parts))
	for _, m := range parts {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// linkType returns the value of the nested "type" attribute, empty when
// the link carries none.
func linkType(attrs []matsim.RawLinkAttribute) string {
	for _, a := range attrs {
		if a.Name == "type" {
			return a.Value
		}
	}
	return ""
}
