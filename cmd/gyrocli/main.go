package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/gyrolink/pkg/cli/sh"
	"github.com/robotalks/gyrolink/pkg/drive/mqtt"
	"github.com/robotalks/gyrolink/pkg/serialport"

	_ "github.com/robotalks/gyrolink/pkg/cli/cmds/link"
)

var brokerURL string

func init() {
	serialport.SetupFlags()
	flag.StringVar(&brokerURL, "broker", brokerURL, "MQTT broker URL for watching commands.")
}

func main() {
	flag.Parse()

	var tx sh.Transmitter
	if conf := serialport.NewConfig(); conf.Path != "" {
		port, err := conf.Open()
		if err != nil {
			glog.Exitf("open port: %v", err)
		}
		defer port.Close()
		tx = port
	}

	var sink *mqtt.Sink
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

	sh.New(tx, sink).Run(flag.Args()...)
}
