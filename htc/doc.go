// Package htc defines the output data model of the converter: the actor
// documents loaded by the InterSCSimulator/HTC discrete-event traffic
// simulator, the manifest that binds them together, and the id schemes
// that name them.
//
// Three actor families exist:
//
//   - NodeActor: a network junction holding its planar coordinates
//   - LinkActor: a directed road segment between two nodes
//   - CarActor: one vehicle trip entering the network at a start tick
//
// All types carry the JSON struct tags the simulator loader expects.
package htc
