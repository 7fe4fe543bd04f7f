package mqtt

import (
	"context"
	"encoding/json"

	"github.com/robotalks/gyrolink/pkg/drive"
)

// CommandTopic is the topic commands are published to, relative to the
// queue's prefix.
const CommandTopic = "drive/cmd"

// commandMsg is the wire form of a command on the broker.
type commandMsg struct {
	Dir   string `json:"dir"`
	Left  uint16 `json:"left,omitempty"`
	Right uint16 `json:"right,omitempty"`
}

// EncodeCommand encodes a command for publishing.
func EncodeCommand(cmd drive.Command) []byte {
	out, err := json.Marshal(commandMsg{
		Dir:   cmd.Dir.String(),
		Left:  cmd.LeftDuty,
		Right: cmd.RightDuty,
	})
	if err != nil {
		panic(err) // commandMsg always marshals
	}
	return out
}

// DecodeCommand is the inverse of EncodeCommand.
func DecodeCommand(payload []byte) (drive.Command, error) {
	var msg commandMsg
	if err := json.Unmarshal(payload, &msg); err != nil {
		return drive.Command{}, err
	}
	dir, err := drive.ParseDirection(msg.Dir)
	if err != nil {
		return drive.Command{}, err
	}
	return drive.Command{Dir: dir, LeftDuty: msg.Left, RightDuty: msg.Right}, nil
}

// Sink publishes commands to CommandTopic for the rover's motor
// controller to consume.
type Sink struct {
	Queue *Queue
}

// NewSink creates a Sink over a connected queue.
func NewSink(q *Queue) *Sink {
	return &Sink{Queue: q}
}

// Apply implements drive.Sink.
func (s *Sink) Apply(_ context.Context, cmd drive.Command) error {
	return s.Queue.Pub(CommandTopic, EncodeCommand(cmd))
}

// Watch subscribes to CommandTopic and invokes fn for every decoded
// command until Unwatch is called. Undecodable payloads are skipped.
func (s *Sink) Watch(fn func(drive.Command)) error {
	return s.Queue.Sub(CommandTopic, func(_ string, payload []byte) {
		if cmd, err := DecodeCommand(payload); err == nil {
			fn(cmd)
		}
	})
}

// Unwatch removes the Watch subscription.
func (s *Sink) Unwatch() error {
	return s.Queue.Unsub(CommandTopic)
}
