package drive

import (
	"context"

	"github.com/golang/glog"
)

// Sink applies commands to the actuators. Calls are fire-and-forget:
// the pipeline logs a failed Apply and moves on, and the only ordering
// guarantee is program order.
type Sink interface {
	Apply(context.Context, Command) error
}

// SinkFunc is the func form of Sink.
type SinkFunc func(context.Context, Command) error

// Apply implements Sink.
func (f SinkFunc) Apply(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}

// LogSink logs commands without driving hardware.
type LogSink struct{}

// Apply implements Sink.
func (LogSink) Apply(_ context.Context, cmd Command) error {
	glog.Infof("drive %s", cmd)
	return nil
}
