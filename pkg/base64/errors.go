package base64

import (
	"errors"
	"fmt"
)

var (
	ErrLength    = errors.New("length is not a multiple of 4")
	ErrCharacter = errors.New("character outside of the base64 alphabet")
	ErrPadding   = errors.New("misplaced padding")
)

// ErrInvalidInput is returned when a string is not well-formed padded base64.
// Offset is the position in the input where the problem was found; for
// ErrLength it is the length of the input.
type ErrInvalidInput struct {
	Inner  error
	Offset int
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("base64: invalid input at offset %d: %v", e.Offset, e.Inner)
}

func (e *ErrInvalidInput) Unwrap() error {
	return e.Inner
}

func NewInvalidInputError(inner error, offset int) *ErrInvalidInput {
	return &ErrInvalidInput{Inner: inner, Offset: offset}
}
