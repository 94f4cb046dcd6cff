// Package formatter serializes converter output documents to disk.
//
// All shard and manifest writing funnels through WriteJSON: pretty output
// indents with four spaces, gzip output appends .gz to the filename. HTML
// escaping is disabled so ids and paths round-trip byte for byte.
package formatter
