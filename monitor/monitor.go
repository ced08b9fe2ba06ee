// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package monitor implements the interactive COP2K control surface: a
// line oriented command loop for poking flags, registers, and memory
// and for stepping the machine clock.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/cop2k/machine"
)

// Prompt is printed before each interactive command line.
const Prompt = "COP2K> "

// Monitor drives a machine from a command stream.
type Monitor struct {
	Machine *machine.Machine
	In      io.Reader
	Out     io.Writer
	ErrOut  io.Writer

	requestQuit bool
}

// NewMonitor creates a monitor on the standard streams.
func NewMonitor(m *machine.Machine) (mon *Monitor) {
	mon = &Monitor{
		Machine: m,
		In:      os.Stdin,
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
	}

	return
}

// Run reads and executes commands from In until quit or end of input,
// prompting before each line.
func (mon *Monitor) Run() (err error) {
	scanner := bufio.NewScanner(mon.In)

	for !mon.requestQuit {
		fmt.Fprint(mon.Out, Prompt)
		if !scanner.Scan() {
			break
		}
		mon.Execute(scanner.Text())
	}

	err = scanner.Err()
	return
}

// RunScript executes commands from a reader without prompting. The
// quit command stops the script.
func (mon *Monitor) RunScript(reader io.Reader) (err error) {
	scanner := bufio.NewScanner(reader)

	for !mon.requestQuit {
		if !scanner.Scan() {
			break
		}
		mon.Execute(scanner.Text())
	}

	err = scanner.Err()
	return
}

// Execute runs a single command line, reporting any failure to ErrOut
// and returning to the caller either way.
func (mon *Monitor) Execute(line string) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return
	}

	name := args[0]
	args = args[1:]

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(mon.ErrOut, "error: %v\n", ErrUnknownCommand(name))
		return
	}

	if len(args) > 0 && args[0] == "--help" {
		fmt.Fprintf(mon.ErrOut, "usage: %v\n", cmd.usage)
		return
	}

	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		err := ErrArgCount{Min: cmd.minArgs, Max: cmd.maxArgs, Got: len(args)}
		fmt.Fprintf(mon.ErrOut, "error: %v\n", err)
		return
	}

	err := cmd.run(mon, args)
	if err != nil {
		fmt.Fprintf(mon.ErrOut, "error: %v\n", err)
	}
}

// parseNumber parses a numeric token, accepting the usual 0x, 0o, and
// 0b prefixes.
func parseNumber(token string) (value int, err error) {
	v64, perr := strconv.ParseInt(token, 0, 64)
	if perr != nil {
		err = ErrParseNumber(token)
		return
	}

	value = int(v64)
	return
}

// parseByte parses a numeric token that must fit in 0..=255.
func parseByte(token string, what string) (value int, err error) {
	value, err = parseNumber(token)
	if err != nil {
		return
	}
	if value < 0 || value > 255 {
		err = ErrRange(what)
		return
	}

	return
}
