package huffman

import (
	"errors"
)

var (
	// ErrIO is matched by every *IOError.
	ErrIO = errors.New("huffman: I/O failure")

	// ErrMalformedHeader is returned when the frequency table at the start
	// of a compressed stream is missing, truncated, or inconsistent.
	ErrMalformedHeader = errors.New("huffman: malformed header")

	// ErrTruncatedStream is returned when the payload ends before every
	// symbol promised by the header has been decoded.
	ErrTruncatedStream = errors.New("huffman: truncated stream")

	// ErrInvalidPadding is returned when the trailer byte is outside 0..7
	// or asks to discard more bits than the payload holds.
	ErrInvalidPadding = errors.New("huffman: invalid padding")

	// ErrTrailingData is returned when the payload still holds whole codes
	// after every symbol promised by the header has been decoded.
	ErrTrailingData = errors.New("huffman: trailing data after last symbol")

	// ErrInvalidCode is returned when the payload holds a bit sequence
	// that does not lead to a real symbol.
	ErrInvalidCode = errors.New("huffman: invalid code in payload")

	// ErrUnknownSymbol is returned by Pack when the input contains a byte
	// that has no code in the CodeTable.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")
)

// IOError records a failed read or write on the byte source or sink.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error returns a description of the failure.
func (e *IOError) Error() string {
	if e.Path == "" {
		return "huffman: " + e.Op + ": " + e.Err.Error()
	}
	return "huffman: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrIO) true for every *IOError.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

var _ error = (*IOError)(nil)
