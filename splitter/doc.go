// Package splitter is the core of the converter: it assigns resource ids,
// resolves cross-references between entities, partitions actor collections
// into bounded groups and writes them as shard files.
//
// Identifier assignment happens once per kind, in input order, before any
// actor is built; every cross-reference is then resolved against those
// maps. A reference to a raw id that was never assigned is a fatal
// *DanglingReferenceError: a partial dataset would otherwise ship resource
// ids pointing at nothing.
package splitter
