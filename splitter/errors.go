package splitter

import (
	"fmt"

	"github.com/fwrock/htc-convert-insterscsimulator/htc"
)

// DuplicateIDError reports a raw id appearing twice within one kind. Ids
// must be unique per kind or actor ids would collide.
type DuplicateIDError struct {
	Kind  htc.Kind
	RawID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s id %q", e.Kind, e.RawID)
}

// DanglingReferenceError reports an entity referencing a raw id that no
// entity of the referenced kind carries.
type DanglingReferenceError struct {
	Kind    htc.Kind // kind of the referencing entity
	RawID   string   // raw id of the referencing entity
	RefKind htc.Kind // kind the reference points into
	RefID   string   // raw id that could not be resolved
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s %q references unknown %s %q", e.Kind, e.RawID, e.RefKind, e.RefID)
}
