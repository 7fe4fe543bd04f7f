// Package serialport provides the serial-link byte source for the
// gyro pipeline.
package serialport

import (
	"os"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial"

	"github.com/robotalks/gyrolink/pkg/frame"
)

// DefaultBaudRate matches the BLE UART bridge setting.
const DefaultBaudRate = 9600

// Port wraps a serial port as a frame.ByteSource with an optional
// read timeout.
type Port struct {
	port    serial.Port
	timeout time.Duration
	buf     [1]byte
}

// Open opens the serial device at path with 8N1 framing.
func Open(path string, baudRate int) (*Port, error) {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, err
	}
	glog.Infof("opened %s @ %d 8N1", path, baudRate)
	return &Port{port: port}, nil
}

// SetReadTimeout bounds blocking reads so a silent link surfaces as
// os.ErrDeadlineExceeded instead of stalling forever. A non-positive
// value restores fully blocking reads, which is the default.
func (p *Port) SetReadTimeout(d time.Duration) error {
	if d <= 0 {
		p.timeout = 0
		return p.port.SetReadTimeout(serial.NoTimeout)
	}
	p.timeout = d
	return p.port.SetReadTimeout(d)
}

// ReadByte implements frame.ByteSource, blocking until a byte arrives.
func (p *Port) ReadByte() (byte, error) {
	for {
		n, err := p.port.Read(p.buf[:])
		if err != nil {
			return 0, err
		}
		if n == 0 {
			// zero-length reads signal an expired read timeout
			if p.timeout > 0 {
				return 0, os.ErrDeadlineExceeded
			}
			continue
		}
		return p.buf[0], nil
	}
}

// Write implements io.Writer for the transmit side of the link.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// SendFrame transmits one wire frame.
func (p *Port) SendFrame(f frame.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	_, err := p.port.Write(f)
	return err
}

// Close closes the serial port.
func (p *Port) Close() error {
	return p.port.Close()
}

// Reset drives the BLE bridge through its command-mode escape and
// issues a module reset. This replaces the firmware's MOD-pin toggle,
// which is not reachable from the host side of the link.
func (p *Port) Reset() error {
	for _, step := range []struct {
		data string
		wait time.Duration
	}{
		// guard time around the escape sequence is required by the bridge
		{"+++\r\n", 1100 * time.Millisecond},
		{"ATZ\r\n", 3 * time.Second},
		{"+++\r\n", 1100 * time.Millisecond},
	} {
		if _, err := p.port.Write([]byte(step.data)); err != nil {
			return err
		}
		time.Sleep(step.wait)
	}
	glog.Info("link module reset")
	return nil
}
