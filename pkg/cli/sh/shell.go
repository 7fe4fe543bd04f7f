// Package sh implements the interactive link-tester shell.
package sh

import (
	"flag"
	"fmt"
	"log"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/gyrolink/pkg/drive/mqtt"
	"github.com/robotalks/gyrolink/pkg/frame"
)

// Transmitter is the TX side of a link port.
type Transmitter interface {
	Write([]byte) (int, error)
	SendFrame(frame.Frame) error
}

// Shell provides an ishell backed interactive shell around a link
// port and an optional command broker.
type Shell struct {
	Interactive bool

	Shell *ishell.Shell
	Tx    Transmitter
	Sink  *mqtt.Sink
}

const shellKey = "$shell"

var (
	// flags

	evalOnly bool

	// commands
	commands []*ishell.Cmd
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
}

// AddCmds is used by command providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(tx Transmitter, sink *mqtt.Sink) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		Shell:       ishell.New(),
		Tx:          tx,
		Sink:        sink,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt("gyrolink > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustHaveTx wraps a command func that requires a transmit port.
func MustHaveTx(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Tx == nil {
			c.Err(fmt.Errorf("no link port, use -port"))
			return
		}
		fn(c)
	}
}

// MustHaveSink wraps a command func that requires a command broker.
func MustHaveSink(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Sink == nil {
			c.Err(fmt.Errorf("no broker, use -broker"))
			return
		}
		fn(c)
	}
}

// Run runs the shell, either processing args as a one-shot command or
// interactively.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}
