package merge

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error a generated Merge method
// returns for a nil argument.
var ErrInvalidArgument = errors.New("merge: invalid argument")

// Merger copies updatable fields from newV into oldV.
//
// Implementations check oldV before newV and return an *ArgumentError for the
// first nil one without touching either value. newV is never modified.
type Merger[T any] interface {
	Merge(oldV, newV *T) error
}

// ArgumentError reports a nil argument passed to a Merge method.
type ArgumentError struct {
	// Name is the parameter name as declared by the generated method.
	Name string
}

// InvalidArgument returns the error generated mergers use for a nil argument.
func InvalidArgument(name string) error {
	return &ArgumentError{Name: name}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s must not be nil", e.Name)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
