package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/gyrolink/pkg/drive"
	"github.com/robotalks/gyrolink/pkg/drive/mqtt"
	"github.com/robotalks/gyrolink/pkg/frame"
	"github.com/robotalks/gyrolink/pkg/framework"
	"github.com/robotalks/gyrolink/pkg/pipeline"
	"github.com/robotalks/gyrolink/pkg/serialport"
)

var (
	brokerURL string
	replay    string
)

func init() {
	serialport.SetupFlags()
	drive.SetupFlags()
	flag.StringVar(&brokerURL, "broker", brokerURL, "MQTT broker URL for publishing commands, empty to log only.")
	flag.StringVar(&replay, "replay", replay, "Replay a capture file instead of reading a serial port.")
}

func main() {
	flag.Parse()

	var src frame.ByteSource
	var closer io.Closer
	if replay != "" {
		file, err := os.Open(replay)
		if err != nil {
			glog.Exitf("open capture: %v", err)
		}
		src, closer = frame.NewByteSource(file), file
	} else {
		conf := serialport.NewConfig()
		if conf.Path == "" {
			glog.Exit("either -port or -replay is required")
		}
		port, err := conf.Open()
		if err != nil {
			glog.Exitf("open port: %v", err)
		}
		src, closer = port, port
	}

	var sink drive.Sink = drive.LogSink{}
	if brokerURL != "" {
		queue, err := mqtt.NewQueueFromURL(brokerURL)
		if err != nil {
			glog.Exitf("broker URL: %v", err)
		}
		if err = queue.Connect(); err != nil {
			glog.Exitf("broker connect: %v", err)
		}
		defer queue.Close()
		sink = mqtt.NewSink(queue)
	}

	p := pipeline.New(src, sink)
	p.Mapper = drive.NewConfig().NewMapper()

	runner := framework.NewRunner().HandleSignals()
	runner.Go(framework.NamedRun("pipeline", framework.RunnableFunc(func(ctx context.Context) error {
		// closing the source is the only way to unblock a stalled read
		return framework.RunWithContextCloser(ctx, closer, func() error {
			return p.Run(ctx)
		})
	})))
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
