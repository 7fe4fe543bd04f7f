package gyro

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/gyrolink/pkg/frame"
)

func TestDecodeSampleDeterminism(t *testing.T) {
	// x=1.5, y=-2.25, z=0.0 as little-endian binary32 at payload
	// offsets 0/4/8 (frame offsets 2/6/10)
	payload := []byte{
		0x00, 0x00, 0xc0, 0x3f, // 1.5
		0x00, 0x00, 0x10, 0xc0, // -2.25
		0x00, 0x00, 0x00, 0x00, // 0.0
	}
	f, err := frame.New(payload)
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	s := DecodeSample(f)
	require.Equal(t, Sample{X: 1.5, Y: -2.25, Z: 0.0}, s)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	testCases := []Sample{
		{},
		{X: 1.5, Y: -2.25, Z: 0.0},
		{X: -0.001, Y: 1000.25, Z: -3.75},
		{X: 0.2, Y: -0.2, Z: 0.2},
	}
	for _, want := range testCases {
		f := EncodeSample(want)
		require.NoError(t, f.Validate())
		require.Equal(t, want, DecodeSample(f))
	}
}

func TestEncodeSampleLayout(t *testing.T) {
	f := EncodeSample(Sample{X: 1.5})
	require.Equal(t, frame.Marker0, f[0])
	require.Equal(t, frame.Marker1, f[1])
	// least-significant byte first
	require.Equal(t, []byte{0x00, 0x00, 0xc0, 0x3f}, []byte(f[2:6]))
}
