package matsim

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/fwrock/htc-convert-insterscsimulator/internal/logging"
)

// xmlNode mirrors a <node> element.
type xmlNode struct {
	ID string `xml:"id,attr"`
	X  string `xml:"x,attr"`
	Y  string `xml:"y,attr"`
}

// xmlLink mirrors a <link> element with its nested attributes block.
type xmlLink struct {
	ID         string             `xml:"id,attr"`
	From       string             `xml:"from,attr"`
	To         string             `xml:"to,attr"`
	Length     string             `xml:"length,attr"`
	Freespeed  string             `xml:"freespeed,attr"`
	Capacity   string             `xml:"capacity,attr"`
	Permlanes  string             `xml:"permlanes,attr"`
	Oneway     string             `xml:"oneway,attr"`
	Modes      string             `xml:"modes,attr"`
	Attributes []xmlLinkAttribute `xml:"attributes>attribute"`
}

type xmlLinkAttribute struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// ParseNetwork reads a MATSim network file and returns its nodes and links
// in document order, plus the global attributes of the <links> element.
func (p *Parser) ParseNetwork(path string) ([]RawNode, []RawLink, GlobalLinkAttributes, error) {
	fail := func(err error) ([]RawNode, []RawLink, GlobalLinkAttributes, error) {
		return nil, nil, GlobalLinkAttributes{}, &ParseError{Path: path, Kind: "network", Err: err}
	}

	in, err := openInput(path)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	var (
		nodes  []RawNode
		links  []RawLink
		global GlobalLinkAttributes
	)
	sawNodes, sawLinks := false, false

	dec := xml.NewDecoder(in)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fail(err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "nodes":
			sawNodes = true
		case "links":
			sawLinks = true
			global = p.readGlobalLinkAttributes(se)
		case "node":
			var n xmlNode
			if err := dec.DecodeElement(&n, &se); err != nil {
				return fail(err)
			}
			if n.ID == "" || n.X == "" || n.Y == "" {
				p.warns.Add(logging.WarningNodeMissingAttrs, n.ID)
				p.log.Debug("skipping node with missing attributes", zap.String("id", n.ID))
				continue
			}
			nodes = append(nodes, RawNode{ID: n.ID, X: n.X, Y: n.Y})
		case "link":
			var l xmlLink
			if err := dec.DecodeElement(&l, &se); err != nil {
				return fail(err)
			}
			if !linkComplete(l) {
				p.warns.Add(logging.WarningLinkMissingAttrs, l.ID)
				p.log.Debug("skipping link with missing attributes", zap.String("id", l.ID))
				continue
			}
			links = append(links, rawLinkFrom(l))
		}
	}

	if !sawNodes {
		return fail(errors.New("no <nodes> section"))
	}
	if !sawLinks {
		return fail(errors.New("no <links> section"))
	}

	p.log.Info("parsed network",
		zap.String("path", path),
		zap.Int("nodes", len(nodes)),
		zap.Int("links", len(links)),
	)
	return nodes, links, global, nil
}

// readGlobalLinkAttributes extracts the shared link metadata from the
// <links> element itself. Missing or non-numeric values fall back to 0.0.
func (p *Parser) readGlobalLinkAttributes(se xml.StartElement) GlobalLinkAttributes {
	var global GlobalLinkAttributes
	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case "capperiod":
			global.Capperiod = attr.Value
		case "effectivecellsize":
			global.EffectiveCellSize = p.globalFloat(attr)
		case "effectivelanewidth":
			global.EffectiveLaneWidth = p.globalFloat(attr)
		}
	}
	return global
}

func (p *Parser) globalFloat(attr xml.Attr) float64 {
	v, err := strconv.ParseFloat(attr.Value, 64)
	if err != nil {
		p.warns.Add(logging.WarningInvalidLinksAttr, attr.Name.Local)
		return 0
	}
	return v
}

func linkComplete(l xmlLink) bool {
	return l.ID != "" && l.From != "" && l.To != "" && l.Length != "" &&
		l.Freespeed != "" && l.Capacity != "" && l.Permlanes != "" &&
		l.Oneway != "" && l.Modes != ""
}

func rawLinkFrom(l xmlLink) RawLink {
	rl := RawLink{
		ID:        l.ID,
		From:      l.From,
		To:        l.To,
		Length:    l.Length,
		Freespeed: l.Freespeed,
		Capacity:  l.Capacity,
		Permlanes: l.Permlanes,
		Oneway:    l.Oneway,
		Modes:     l.Modes,
	}
	for _, attr := range l.Attributes {
		if attr.Name != "" && attr.Value != "" {
			rl.Attributes = append(rl.Attributes, RawLinkAttribute(attr))
		}
	}
	return rl
}
