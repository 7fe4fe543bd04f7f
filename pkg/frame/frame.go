package frame

import (
	"errors"
	"fmt"
)

// Frame layout.
const (
	// Size is the fixed length of a wire frame.
	Size = 15
	// Marker0 and Marker1 delimit the start of a frame ("!G").
	Marker0 byte = 0x21
	Marker1 byte = 0x47
	// PayloadOffset and PayloadSize locate the payload area.
	PayloadOffset = 2
	PayloadSize   = 12
	// ChecksumOffset locates the trailing checksum byte.
	ChecksumOffset = Size - 1
)

var (
	// ErrLength indicates the frame is not exactly Size bytes.
	ErrLength = errors.New("bad frame length")
	// ErrMarker indicates the frame does not begin with the marker bytes.
	ErrMarker = errors.New("bad frame marker")
)

// ChecksumError indicates the checksum byte does not match the frame
// content.
type ChecksumError struct {
	Want byte
	Got  byte
}

// Error implements error.
func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: want %#02x, got %#02x", e.Want, e.Got)
}

// Frame is one wire frame. Frames emitted by Assembler are always
// exactly Size bytes; Validate re-checks everything so frames from any
// source can be verified independently.
type Frame []byte

// New builds a frame around a PayloadSize-byte payload, filling in the
// marker and checksum bytes.
func New(payload []byte) (Frame, error) {
	if len(payload) != PayloadSize {
		return nil, ErrLength
	}
	f := make(Frame, Size)
	f[0], f[1] = Marker0, Marker1
	copy(f[PayloadOffset:], payload)
	f[ChecksumOffset] = Checksum(f[:ChecksumOffset])
	return f, nil
}

// Checksum computes the bitwise complement of the sum of b modulo 256.
func Checksum(b []byte) byte {
	var sum byte
	for _, c := range b {
		sum += c
	}
	return ^sum
}

// Validate checks length, marker bytes and checksum, in that order.
// A frame failing any check must be dropped, never decoded.
func (f Frame) Validate() error {
	if len(f) != Size {
		return ErrLength
	}
	if f[0] != Marker0 || f[1] != Marker1 {
		return ErrMarker
	}
	if want := Checksum(f[:ChecksumOffset]); want != f[ChecksumOffset] {
		return &ChecksumError{Want: want, Got: f[ChecksumOffset]}
	}
	return nil
}

// Payload returns the payload area of the frame.
func (f Frame) Payload() []byte {
	return f[PayloadOffset : PayloadOffset+PayloadSize]
}
