package htc

import (
	"strconv"
	"strings"
)

// rawIDSanitizer rewrites the characters that collide with the id scheme's
// own separators. MATSim puts no restrictions on its ids.
var rawIDSanitizer = strings.NewReplacer(";", "_", ":", "_")

// ActorID derives the stable actor id for the raw MATSim id of an entity,
// e.g. ("node", "17") -> "htcaid:node;17". The raw id is embedded with ';'
// and ':' replaced by '_' so the result still splits cleanly on the
// scheme's separators.
func ActorID(kind Kind, rawID string) string {
	return "htcaid:" + string(kind) + ";" + rawIDSanitizer.Replace(rawID)
}

// ResourceID formats the converter-assigned resource id for the n-th entity
// of a kind, e.g. ("link", 3) -> "htcrid:link;3". Numbering is 1-based and
// follows input order.
func ResourceID(kind Kind, n int) string {
	return "htcrid:" + string(kind) + ";" + strconv.Itoa(n)
}
