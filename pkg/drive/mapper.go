package drive

import (
	"github.com/robotalks/gyrolink/pkg/gyro"
)

// DefaultThreshold is the tilt level below which an axis is considered
// centered.
const DefaultThreshold float32 = 0.2

// Mapper converts samples to commands by threshold comparison. The z
// axis is accepted but unused.
type Mapper struct {
	Threshold float32
	Duty      uint16
}

// NewMapper creates a Mapper with default threshold and duty.
func NewMapper() *Mapper {
	return &Mapper{Threshold: DefaultThreshold, Duty: DefaultDuty}
}

// Map evaluates the y axis and the x axis independently and returns
// the commands to emit, in order. Both axes past the threshold yield
// two commands (y-axis command first; the later one wins at the sink).
// Stop is returned only when both axes are within the threshold; one
// axis centered while the other is tilted yields a single directional
// command and no Stop.
func (m *Mapper) Map(s gyro.Sample) []Command {
	var cmds []Command
	switch {
	case s.Y > m.Threshold:
		cmds = append(cmds, Command{Dir: Forward, LeftDuty: m.Duty, RightDuty: m.Duty})
	case s.Y < -m.Threshold:
		cmds = append(cmds, Command{Dir: Backward, LeftDuty: m.Duty, RightDuty: m.Duty})
	}
	switch {
	case s.X > m.Threshold:
		cmds = append(cmds, Command{Dir: Right, LeftDuty: m.Duty, RightDuty: m.Duty})
	case s.X < -m.Threshold:
		cmds = append(cmds, Command{Dir: Left, LeftDuty: m.Duty, RightDuty: m.Duty})
	}
	if len(cmds) == 0 {
		cmds = append(cmds, Command{Dir: Stop})
	}
	return cmds
}
