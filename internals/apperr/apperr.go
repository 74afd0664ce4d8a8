// Package apperr defines the typed error surface of the club domain.
// Controllers translate these into HTTP statuses; services never log and
// swallow, they return.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded: the player already holds the maximum number of
	// division assignments.
	ErrCapacityExceeded = errors.New("el jugador ya está en el máximo de divisiones")

	// ErrAlreadyAssigned: the (player, division) pair already exists.
	ErrAlreadyAssigned = errors.New("el jugador ya está asignado a esa división")

	// ErrNotAssigned: the (player, division) pair does not exist. Unassign is
	// retry-safe and does not raise this; it remains for callers that need a
	// strict check.
	ErrNotAssigned = errors.New("el jugador no está asignado a esa división")

	// ErrNotEligible: the acting player may not mark attendance for the
	// session (wrong division).
	ErrNotEligible = errors.New("no puedes apuntarte: no es de tus divisiones")

	// ErrInvalidStatus: the attendance status is not one of the known states.
	ErrInvalidStatus = errors.New("estado de asistencia no válido")
)

// CollaboratorError wraps a failure from an external collaborator
// (persistence, auth, object storage) with the operation that hit it.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// Collaborator wraps err unless it is nil or already a domain error.
func Collaborator(op string, err error) error {
	if err == nil {
		return nil
	}
	return &CollaboratorError{Op: op, Err: err}
}

// IsCollaborator reports whether err carries a CollaboratorError.
func IsCollaborator(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce)
}
