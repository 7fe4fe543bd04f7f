// Package drive models discrete drive commands and the mapping from
// gyro samples to commands.
package drive

import (
	"fmt"
)

// Direction enumerates the discrete motions of the rover.
type Direction int

// Directions.
const (
	Stop Direction = iota
	Forward
	Backward
	Left
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Stop:
		return "stop"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "stop":
		return Stop, nil
	case "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Stop, fmt.Errorf("unknown direction %q", s)
}

// DefaultDuty is the PWM duty applied to both sides of every
// directional command.
const DefaultDuty uint16 = 3000

// Command is one discrete actuator instruction. Directional commands
// carry per-side duty values in the units the motor controller
// expects; Stop carries none.
type Command struct {
	Dir       Direction
	LeftDuty  uint16
	RightDuty uint16
}

// String implements fmt.Stringer.
func (c Command) String() string {
	if c.Dir == Stop {
		return "stop"
	}
	return fmt.Sprintf("%s(%d,%d)", c.Dir, c.LeftDuty, c.RightDuty)
}
