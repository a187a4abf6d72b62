package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned by range operations when start > end.
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnparseableToken marks a token that is not a non-negative integer.
	ErrUnparseableToken = errors.New("unparseable token")

	// ErrNegativeValue is returned when a signed input holds a negative member.
	ErrNegativeValue = errors.New("negative value")
)

// RangeError describes a rejected [start, end] interval.
// It matches ErrInvalidRange via errors.Is.
type RangeError struct {
	Start uint
	End   uint
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: start %d > end %d", ErrInvalidRange, e.Start, e.End)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// TokenError describes a token skipped during text construction.
// It matches ErrUnparseableToken via errors.Is; the strconv failure is
// available through errors.Unwrap.
type TokenError struct {
	// Pos is the zero-based index of the token among the whitespace-separated fields.
	Pos   int
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v %q at position %d", ErrUnparseableToken, e.Token, e.Pos)
}

func (e *TokenError) Is(target error) bool { return target == ErrUnparseableToken }

func (e *TokenError) Unwrap() error { return e.Err }

// ValueError describes a negative member in signed input.
// It matches ErrNegativeValue via errors.Is.
type ValueError struct {
	Index int
	Value int
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v %d at index %d", ErrNegativeValue, e.Value, e.Index)
}

func (e *ValueError) Unwrap() error { return ErrNegativeValue }

// TokenErrors extracts every *TokenError from err, including those joined
// by Parse. It returns nil if err carries none.
func TokenErrors(err error) []*TokenError {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*TokenError
		for _, e := range joined.Unwrap() {
			out = append(out, TokenErrors(e)...)
		}
		return out
	}

	var te *TokenError
	if errors.As(err, &te) {
		return []*TokenError{te}
	}
	return nil
}
