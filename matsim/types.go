package matsim

// RawNode is one <node> element, attribute values verbatim.
type RawNode struct {
	ID string
	X  string
	Y  string
}

// RawLinkAttribute is one nested <attribute> element of a link.
type RawLinkAttribute struct {
	Name  string
	Value string
}

// RawLink is one <link> element, attribute values verbatim. Oneway is
// carried although the output format has no field for it yet.
type RawLink struct {
	ID         string
	From       string // raw id of the origin node
	To         string // raw id of the destination node
	Length     string
	Freespeed  string
	Capacity   string
	Permlanes  string
	Oneway     string
	Modes      string // comma-separated transport modes
	Attributes []RawLinkAttribute
}

// RawTrip is one <trip> element of the plans file. Name doubles as the car
// id. Route, when present, lists the raw link ids of the planned path in
// travel order.
type RawTrip struct {
	Name        string
	Origin      string // raw id of the origin node
	Destination string // raw id of the destination node
	LinkOrigin  string // raw id of the link the car starts on
	Count       string
	Start       string
	Mode        string
	Route       []string
}

// GlobalLinkAttributes are read once from the <links> element and apply to
// every link of the network.
type GlobalLinkAttributes struct {
	Capperiod          string
	EffectiveCellSize  float64
	EffectiveLaneWidth float64
}
