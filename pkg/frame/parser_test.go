package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// feed runs a byte sequence through the parser and collects every
// frame emitted along the way.
func feed(p *Parser, in []byte) []Frame {
	var frames []Frame
	for _, b := range in {
		if f := p.Parse(b); f != nil {
			frames = append(frames, f)
		}
	}
	return frames
}

func testFrameBytes(payload ...byte) []byte {
	if payload == nil {
		payload = make([]byte, PayloadSize)
	}
	f, err := New(payload)
	if err != nil {
		panic(err)
	}
	return f
}

func TestParser(t *testing.T) {
	valid := testFrameBytes(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)

	testCases := []struct {
		name   string
		in     []byte
		expect [][]byte
	}{
		{
			name:   "clean frame",
			in:     valid,
			expect: [][]byte{valid},
		},
		{
			name:   "noise then frame",
			in:     append([]byte{0x00, 0xff, 0x13, Marker1, 0x7f}, valid...),
			expect: [][]byte{valid},
		},
		{
			name:   "marker0 then junk then frame",
			in:     append([]byte{Marker0, 0x99}, valid...),
			expect: [][]byte{valid},
		},
		{
			name:   "repeated marker0 locks on",
			in:     append([]byte{Marker0, Marker0}, valid...),
			expect: [][]byte{valid},
		},
		{
			name:   "back to back frames",
			in:     append(append([]byte{}, valid...), valid...),
			expect: [][]byte{valid, valid},
		},
		{
			name: "marker bytes inside payload are data",
			in: testFrameBytes(
				Marker0, Marker1, Marker0, Marker1,
				Marker0, Marker1, Marker0, Marker1,
				Marker0, Marker1, Marker0, Marker1),
			expect: [][]byte{testFrameBytes(
				Marker0, Marker1, Marker0, Marker1,
				Marker0, Marker1, Marker0, Marker1,
				Marker0, Marker1, Marker0, Marker1)},
		},
		{
			name:   "incomplete frame emits nothing",
			in:     valid[:Size-1],
			expect: nil,
		},
		{
			name:   "lone marker emits nothing",
			in:     []byte{Marker0, Marker1},
			expect: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p Parser
			frames := feed(&p, tc.in)
			require.Len(t, frames, len(tc.expect))
			for i, want := range tc.expect {
				require.Equal(t, Frame(want), frames[i])
				require.NoError(t, frames[i].Validate())
			}
		})
	}
}

func TestParserEmittedFrameIsDetached(t *testing.T) {
	// the emitted frame must not alias the parser's scratch buffer
	valid := testFrameBytes(9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9)
	var p Parser
	frames := feed(&p, append(append([]byte{}, valid...), valid...))
	require.Len(t, frames, 2)
	frames[0][5] = 0xee
	require.Equal(t, Frame(valid), frames[1])
}

func TestParserReset(t *testing.T) {
	valid := testFrameBytes()
	var p Parser
	feed(&p, valid[:7])
	p.Reset()
	// the partially collected frame is gone; a fresh frame parses whole
	frames := feed(&p, valid)
	require.Len(t, frames, 1)
	require.NoError(t, frames[0].Validate())
}
