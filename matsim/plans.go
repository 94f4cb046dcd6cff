package matsim

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/fwrock/htc-convert-insterscsimulator/internal/logging"
)

// xmlTrip mirrors a <trip> element.
type xmlTrip struct {
	Name        string `xml:"name,attr"`
	Origin      string `xml:"origin,attr"`
	Destination string `xml:"destination,attr"`
	LinkOrigin  string `xml:"link_origin,attr"`
	Count       string `xml:"count,attr"`
	Start       string `xml:"start,attr"`
	Mode        string `xml:"mode,attr"`
	Route       string `xml:"route,attr"`
}

// ParsePlans reads a MATSim plans or trips file and returns the car trips
// in document order. Trips in other modes are dropped silently; a missing
// count attribute defaults to "1".
func (p *Parser) ParsePlans(path string) ([]RawTrip, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, &ParseError{Path: path, Kind: "plans", Err: err}
	}
	defer in.Close()

	var trips []RawTrip
	sawElement := false

	dec := xml.NewDecoder(in)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Kind: "plans", Err: err}
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true
		if se.Name.Local != "trip" {
			continue
		}

		var t xmlTrip
		if err := dec.DecodeElement(&t, &se); err != nil {
			return nil, &ParseError{Path: path, Kind: "plans", Err: err}
		}
		if t.Name == "" || t.Origin == "" || t.Destination == "" ||
			t.LinkOrigin == "" || t.Start == "" || t.Mode == "" {
			p.warns.Add(logging.WarningTripMissingAttrs, t.Name)
			p.log.Debug("skipping trip with missing attributes", zap.String("name", t.Name))
			continue
		}
		if !strings.Contains(strings.ToLower(t.Mode), "car") {
			continue
		}

		count := t.Count
		if count == "" {
			count = "1"
		}
		trips = append(trips, RawTrip{
			Name:        t.Name,
			Origin:      t.Origin,
			Destination: t.Destination,
			LinkOrigin:  t.LinkOrigin,
			Count:       count,
			Start:       t.Start,
			Mode:        t.Mode,
			Route:       routeLinks(t.Route),
		})
	}

	if !sawElement {
		return nil, &ParseError{Path: path, Kind: "plans", Err: errors.New("no XML content")}
	}

	p.log.Info("parsed plans", zap.String("path", path), zap.Int("carTrips", len(trips)))
	return trips, nil
}

// routeLinks splits the whitespace-separated route attribute into raw link
// ids, nil when the trip carries no route.
func routeLinks(route string) []string {
	links := strings.Fields(route)
	if len(links) == 0 {
		return nil
	}
	return links
}
