package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInitialization indicates the engine could not be constructed.
	ErrInitialization = errors.New("game: initialization failed")
)

// CollaboratorError records a panic raised by a sound or score collaborator.
type CollaboratorError struct {
	Name  string
	Frame uint64
	Value any
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("game: %s panicked at frame %d: %v", e.Name, e.Frame, e.Value)
}
