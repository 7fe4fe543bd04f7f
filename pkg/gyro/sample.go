// Package gyro decodes 3-axis gyroscope samples carried by link frames.
package gyro

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/robotalks/gyrolink/pkg/frame"
)

// Axis offsets within the frame payload.
const (
	offX = 0
	offY = 4
	offZ = 8
)

// Sample is one decoded 3-axis measurement.
type Sample struct {
	X float32
	Y float32
	Z float32
}

// String implements fmt.Stringer.
func (s Sample) String() string {
	return fmt.Sprintf("x=%.3f y=%.3f z=%.3f", s.X, s.Y, s.Z)
}

// DecodeSample reinterprets the frame payload as three IEEE-754
// binary32 values encoded little-endian. The frame must already have
// passed Validate.
func DecodeSample(f frame.Frame) Sample {
	p := f.Payload()
	return Sample{
		X: floatAt(p, offX),
		Y: floatAt(p, offY),
		Z: floatAt(p, offZ),
	}
}

// floatAt assembles the 32-bit pattern explicitly so the result does
// not depend on host byte order.
func floatAt(p []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p[off:]))
}

// EncodeSample builds a valid frame carrying s. This is the transmit
// side of the link, used by the tester CLI and by tests.
func EncodeSample(s Sample) frame.Frame {
	var payload [frame.PayloadSize]byte
	binary.LittleEndian.PutUint32(payload[offX:], math.Float32bits(s.X))
	binary.LittleEndian.PutUint32(payload[offY:], math.Float32bits(s.Y))
	binary.LittleEndian.PutUint32(payload[offZ:], math.Float32bits(s.Z))
	f, err := frame.New(payload[:])
	if err != nil {
		panic(err) // payload size is fixed at compile time
	}
	return f
}
