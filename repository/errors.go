package repository

import "errors"

// ErrNotFound is returned when a targeted update or delete matched zero rows.
var ErrNotFound = errors.New("record not found")

// UpsertOutcome tags the result of an insert-ignore statement so callers can
// distinguish a fresh insert from a silently kept duplicate.
type UpsertOutcome int

const (
	Inserted UpsertOutcome = iota
	AlreadyExists
	// Skipped marks a write that was never attempted, such as an add with
	// quantity zero.
	Skipped
)

func (o UpsertOutcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case AlreadyExists:
		return "already_exists"
	default:
		return "skipped"
	}
}
