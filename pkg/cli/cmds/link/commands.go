// Package link provides the link-tester shell commands.
package link

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/gyrolink/pkg/cli/sh"
	"github.com/robotalks/gyrolink/pkg/drive"
	"github.com/robotalks/gyrolink/pkg/frame"
	"github.com/robotalks/gyrolink/pkg/gyro"
)

func parseSample(args []string) (gyro.Sample, error) {
	var s gyro.Sample
	if len(args) < 3 {
		return s, fmt.Errorf("X Y Z required")
	}
	for i, out := range []*float32{&s.X, &s.Y, &s.Z} {
		val, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return s, fmt.Errorf("invalid %s: %v", [...]string{"X", "Y", "Z"}[i], err)
		}
		*out = float32(val)
	}
	return s, nil
}

var (
	// SendCmd transmits one frame carrying a sample.
	SendCmd = ishell.Cmd{
		Name:    "send",
		Aliases: []string{"s"},
		Help:    "X Y Z",
		Func: sh.MustHaveTx(func(c *ishell.Context) {
			s, err := parseSample(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			if err = sh.ShellFrom(c).Tx.SendFrame(gyro.EncodeSample(s)); err != nil {
				c.Err(err)
				return
			}
			c.Printf("sent %s\n", s)
		}),
	}

	// StopCmd transmits a centered sample, mapping to Stop.
	StopCmd = ishell.Cmd{
		Name: "stop",
		Help: "",
		Func: sh.MustHaveTx(func(c *ishell.Context) {
			if err := sh.ShellFrom(c).Tx.SendFrame(gyro.EncodeSample(gyro.Sample{})); err != nil {
				c.Err(err)
			}
		}),
	}

	// CorruptCmd transmits a frame with a broken checksum, which the
	// receiver must drop.
	CorruptCmd = ishell.Cmd{
		Name: "corrupt",
		Help: "X Y Z",
		Func: sh.MustHaveTx(func(c *ishell.Context) {
			s, err := parseSample(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			f := gyro.EncodeSample(s)
			f[frame.ChecksumOffset] ^= 0xff
			if _, err = sh.ShellFrom(c).Tx.Write(f); err != nil {
				c.Err(err)
				return
			}
			c.Println("sent frame with broken checksum")
		}),
	}

	// NoiseCmd injects random bytes to exercise resynchronization.
	NoiseCmd = ishell.Cmd{
		Name: "noise",
		Help: "[COUNT]",
		Func: sh.MustHaveTx(func(c *ishell.Context) {
			count := 16
			if len(c.Args) > 0 {
				val, err := strconv.Atoi(c.Args[0])
				if err != nil || val <= 0 {
					c.Err(fmt.Errorf("invalid COUNT"))
					return
				}
				count = val
			}
			buf := make([]byte, count)
			rand.Read(buf)
			if _, err := sh.ShellFrom(c).Tx.Write(buf); err != nil {
				c.Err(err)
				return
			}
			c.Printf("sent %d noise bytes\n", count)
		}),
	}

	// WatchCmd prints commands observed on the broker until enter is
	// pressed.
	WatchCmd = ishell.Cmd{
		Name:    "watch",
		Aliases: []string{"w"},
		Help:    "",
		Func: sh.MustHaveSink(func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			err := s.Sink.Watch(func(cmd drive.Command) {
				c.Printf("<< %s\n", cmd)
			})
			if err != nil {
				c.Err(err)
				return
			}
			defer s.Sink.Unwatch()
			c.Println("watching, press enter to stop")
			c.ReadLine()
		}),
	}
)

func init() {
	sh.AddCmds(
		&SendCmd,
		&StopCmd,
		&CorruptCmd,
		&NoiseCmd,
		&WatchCmd,
	)
}
