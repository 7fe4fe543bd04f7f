package serialport

import (
	"bytes"
	"io"
	"sync"

	"github.com/robotalks/gyrolink/pkg/frame"
)

// Mock is an in-memory stand-in for Port, reading from a canned byte
// stream and capturing writes. It serves tests and capture replay.
type Mock struct {
	Data io.Reader

	lock sync.Mutex
	sent bytes.Buffer
}

// NewMock creates a Mock reading from r.
func NewMock(r io.Reader) *Mock {
	return &Mock{Data: r}
}

// ReadByte implements frame.ByteSource.
func (m *Mock) ReadByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(m.Data, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Write captures transmitted bytes.
func (m *Mock) Write(b []byte) (int, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.sent.Write(b)
}

// SendFrame captures one transmitted frame.
func (m *Mock) SendFrame(f frame.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	_, err := m.Write(f)
	return err
}

// Sent returns a copy of everything written so far.
func (m *Mock) Sent() []byte {
	m.lock.Lock()
	defer m.lock.Unlock()
	return append([]byte(nil), m.sent.Bytes()...)
}

// Close implements io.Closer.
func (m *Mock) Close() error {
	return nil
}
