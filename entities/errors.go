package entities

import "errors"

// Advisory error taxonomy. Validation errors are fatal to the call;
// data-availability gaps are absorbed by the services and surfaced as
// reduced-confidence or "unknown" fields instead.
var (
	ErrInvalidLocation            = errors.New("invalid or missing location")
	ErrUnknownCrop                = errors.New("unknown crop")
	ErrStaleOrMissingObservation  = errors.New("no recent observation")
	ErrCollaboratorUnavailable    = errors.New("collaborator unavailable")
	ErrInconsistentPlantingRecord = errors.New("inconsistent planting record")
)
