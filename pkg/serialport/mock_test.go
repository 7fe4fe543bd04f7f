package serialport

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/gyrolink/pkg/frame"
	"github.com/robotalks/gyrolink/pkg/gyro"
)

func TestMockReadByte(t *testing.T) {
	m := NewMock(bytes.NewReader([]byte{1, 2, 3}))
	for _, want := range []byte{1, 2, 3} {
		b, err := m.ReadByte()
		require.NoError(t, err)
		require.Equal(t, want, b)
	}
	_, err := m.ReadByte()
	require.Equal(t, io.EOF, err)
}

func TestMockAsByteSource(t *testing.T) {
	f := gyro.EncodeSample(gyro.Sample{X: 1.5, Y: -2.25})
	m := NewMock(bytes.NewReader(append([]byte{0x99, 0x13}, f...)))

	a := frame.NewAssembler(m)
	got, err := a.AssembleNext()
	require.NoError(t, err)
	require.NoError(t, got.Validate())
	require.Equal(t, gyro.Sample{X: 1.5, Y: -2.25}, gyro.DecodeSample(got))
}

func TestMockSendFrame(t *testing.T) {
	m := NewMock(bytes.NewReader(nil))
	f := gyro.EncodeSample(gyro.Sample{Z: 1})
	require.NoError(t, m.SendFrame(f))
	require.Equal(t, []byte(f), m.Sent())

	// invalid frames are refused before hitting the wire
	bad := append(frame.Frame(nil), f...)
	bad[frame.ChecksumOffset] ^= 0xff
	require.Error(t, m.SendFrame(bad))
	require.Len(t, m.Sent(), frame.Size)
}
