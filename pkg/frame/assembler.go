package frame

import (
	"bufio"
	"io"
)

// ByteSource supplies one byte at a time, blocking until a byte is
// available. It has no framing knowledge. io.ByteReader satisfies it.
type ByteSource interface {
	ReadByte() (byte, error)
}

// NewByteSource adapts an io.Reader into a ByteSource, buffering reads
// unless the reader already reads bytes natively.
func NewByteSource(r io.Reader) ByteSource {
	if bs, ok := r.(ByteSource); ok {
		return bs
	}
	return bufio.NewReader(r)
}

// Assembler produces candidate frames from a ByteSource. It owns the
// scan state exclusively; no other component touches the stream.
type Assembler struct {
	src    ByteSource
	parser Parser
}

// NewAssembler creates an Assembler reading from src.
func NewAssembler(src ByteSource) *Assembler {
	return &Assembler{src: src}
}

// AssembleNext blocks until one full frame has been collected and
// returns it. It never returns a short frame: if the source fails
// mid-frame, the partial frame is discarded and the error returned.
// A source that never yields another marker blocks forever; bounding
// the wait is the source's business (see serialport.Port.SetReadTimeout).
func (a *Assembler) AssembleNext() (Frame, error) {
	for {
		b, err := a.src.ReadByte()
		if err != nil {
			a.parser.Reset()
			return nil, err
		}
		if f := a.parser.Parse(b); f != nil {
			return f, nil
		}
	}
}
