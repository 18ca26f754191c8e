package deck

import "errors"

var (
	// ErrIndexOutOfRange is returned when a position falls outside the deck.
	ErrIndexOutOfRange = errors.New("deck index out of range")
	// ErrZeroStep is returned when a slice expression has a step of zero.
	ErrZeroStep = errors.New("slice step cannot be zero")
	// ErrInvalidSlice is returned when a slice expression cannot be parsed.
	ErrInvalidSlice = errors.New("invalid slice expression")
)
