package frame

// Parser assembles frames from a byte stream, one byte at a time,
// resynchronizing on the two-byte marker after noise or byte loss.
type Parser struct {
	state parseState
	buf   []byte
}

type parseState int

const (
	stateIdle       parseState = iota // scanning for Marker0
	stateMatched                      // Marker0 seen, expecting Marker1
	stateCollecting                   // collecting frame body
)

// Parse consumes one byte. It returns a complete frame once Size bytes
// have been collected, nil otherwise.
func (p *Parser) Parse(b byte) Frame {
	switch p.state {
	case stateIdle:
		if b == Marker0 {
			p.state = stateMatched
		}
	case stateMatched:
		switch b {
		case Marker1:
			p.buf = append(p.buf[:0], Marker0, Marker1)
			p.state = stateCollecting
		case Marker0:
			// the mismatching byte may itself start a marker,
			// so it is re-evaluated instead of discarded.
		default:
			p.state = stateIdle
		}
	case stateCollecting:
		// no inspection here: marker values inside the payload are
		// ordinary data.
		p.buf = append(p.buf, b)
		if len(p.buf) == Size {
			f := make(Frame, Size)
			copy(f, p.buf)
			p.state = stateIdle
			p.buf = p.buf[:0]
			return f
		}
	}
	return nil
}

// Reset discards the scan state and any partially collected frame.
func (p *Parser) Reset() {
	p.state = stateIdle
	p.buf = p.buf[:0]
}
