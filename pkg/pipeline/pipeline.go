// Package pipeline runs the frame-to-command control loop of the gyro
// link.
package pipeline

import (
	"context"

	"github.com/golang/glog"

	"github.com/robotalks/gyrolink/pkg/drive"
	"github.com/robotalks/gyrolink/pkg/frame"
	"github.com/robotalks/gyrolink/pkg/gyro"
)

// Pipeline consumes the link byte stream and drives the sink. It is
// strictly synchronous: one frame is assembled, validated, decoded and
// mapped per iteration, and the blocking byte read is the only place
// it waits. Invalid frames are dropped with a diagnostic and the loop
// resumes scanning for the next marker; no corrupt sample or command
// ever reaches the sink.
type Pipeline struct {
	Source frame.ByteSource
	Sink   drive.Sink
	Mapper *drive.Mapper

	last    drive.Command
	applied bool
}

// New creates a Pipeline with the default mapper.
func New(src frame.ByteSource, sink drive.Sink) *Pipeline {
	return &Pipeline{Source: src, Sink: sink, Mapper: drive.NewMapper()}
}

// Run implements framework.Runnable. It loops until the byte source
// fails or the context is canceled. A source that never yields another
// marker blocks here indefinitely unless the source itself enforces a
// read timeout.
func (p *Pipeline) Run(ctx context.Context) error {
	asm := frame.NewAssembler(p.Source)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := asm.AssembleNext()
		if err != nil {
			return err
		}
		if err = f.Validate(); err != nil {
			glog.Warningf("frame dropped: %v", err)
			continue
		}
		s := gyro.DecodeSample(f)
		glog.V(2).Infof("sample %s", s)
		for _, cmd := range p.Mapper.Map(s) {
			p.apply(ctx, cmd)
		}
	}
}

func (p *Pipeline) apply(ctx context.Context, cmd drive.Command) {
	if !p.applied || cmd != p.last {
		glog.Infof("command %s", cmd)
		p.last, p.applied = cmd, true
	}
	if err := p.Sink.Apply(ctx, cmd); err != nil {
		// fire-and-forget: a failing sink never stalls the link
		glog.Errorf("apply %s: %v", cmd, err)
	}
}
