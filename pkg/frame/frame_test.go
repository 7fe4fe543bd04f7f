package frame

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func validFrame(t *testing.T, payload ...byte) Frame {
	t.Helper()
	if payload == nil {
		payload = make([]byte, PayloadSize)
	}
	f, err := New(payload)
	require.NoError(t, err)
	return f
}

func TestChecksumRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 64; i++ {
		payload := make([]byte, PayloadSize)
		rnd.Read(payload)
		f, err := New(payload)
		require.NoError(t, err)
		require.Len(t, []byte(f), Size)
		require.Equal(t, Checksum(f[:ChecksumOffset]), f[ChecksumOffset])
		require.NoError(t, f.Validate())
	}
}

func TestChecksumComplement(t *testing.T) {
	// sum of bytes 0-13 mod 256, complemented
	b := []byte{Marker0, Marker1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	var sum byte
	for _, c := range b {
		sum += c
	}
	require.Equal(t, ^sum, Checksum(b))
}

func TestValidateMarkerRejection(t *testing.T) {
	testCases := []struct {
		name   string
		mangle func(Frame)
	}{
		{"bad marker0", func(f Frame) { f[0] = 0x00 }},
		{"bad marker1", func(f Frame) { f[1] = Marker0 }},
		{"both bad", func(f Frame) { f[0], f[1] = 0xaa, 0x55 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := validFrame(t)
			tc.mangle(f)
			// recompute the checksum so only the marker check can fail
			f[ChecksumOffset] = Checksum(f[:ChecksumOffset])
			require.Equal(t, ErrMarker, f.Validate())
		})
	}
}

func TestValidateLength(t *testing.T) {
	f := validFrame(t)
	require.Equal(t, ErrLength, f[:Size-1].Validate())
	require.Equal(t, ErrLength, append(f, 0).Validate())
	require.Equal(t, ErrLength, Frame(nil).Validate())
}

func TestValidateChecksumMismatch(t *testing.T) {
	f := validFrame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	f[ChecksumOffset] ^= 0xff
	err := f.Validate()
	require.IsType(t, &ChecksumError{}, err)
	cerr := err.(*ChecksumError)
	require.Equal(t, Checksum(f[:ChecksumOffset]), cerr.Want)
	require.Equal(t, f[ChecksumOffset], cerr.Got)
}

func TestValidateCorruptPayload(t *testing.T) {
	f := validFrame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	f[5]++
	require.Error(t, f.Validate())
}

func TestNewRejectsBadPayload(t *testing.T) {
	_, err := New(make([]byte, PayloadSize-1))
	require.Equal(t, ErrLength, err)
	_, err = New(make([]byte, Size))
	require.Equal(t, ErrLength, err)
}
