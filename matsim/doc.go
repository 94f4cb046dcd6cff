// Package matsim reads MATSim transportation-simulation input files.
//
// Two documents are understood:
//
//   - network.xml: <nodes> and <links> describing the road graph
//   - plans.xml / trips.xml: <trip> elements describing vehicle journeys
//
// Both may be gzip-compressed (.gz); decompression is transparent. Parsing
// streams the XML token by token, so arbitrarily large files read in one
// bounded pass. Attribute values stay strings exactly as they appear in
// the XML; interpreting them is the splitter's concern.
//
// Records missing required attributes are counted on the warning
// aggregator and skipped. A file that cannot be opened or parsed at all,
// or a network without its <nodes> or <links> section, fails with a
// *ParseError and no partial results.
package matsim
