package monitor

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/ezrec/cop2k/machine"
	"github.com/ezrec/cop2k/microcode"
)

// command binds a monitor verb to its arity, usage, and action.
type command struct {
	minArgs int
	maxArgs int
	usage   string
	run     func(mon *Monitor, args []string) error
}

var commands map[string]*command

// The table is filled at init time: cmdHelp walks it, which would
// otherwise be an initialization cycle.
func init() {
	commands = map[string]*command{
		"help":      {0, 1, "help [command name]", (*Monitor).cmdHelp},
		"quit":      {0, 0, "quit", (*Monitor).cmdQuit},
		"exit":      {0, 0, "exit", (*Monitor).cmdQuit},
		"setflag":   {2, 2, "setflag <flag> {true|false}", (*Monitor).cmdSetFlag},
		"getflag":   {0, 1, "getflag [flag]", (*Monitor).cmdGetFlag},
		"getreg":    {0, 1, "getreg [reg]", (*Monitor).cmdGetReg},
		"setreg":    {2, 2, "setreg <reg> <val>", (*Monitor).cmdSetReg},
		"clock":     {0, 1, "clock [count]", (*Monitor).cmdClock},
		"writemem":  {2, 2, "writemem <addr> <val>", (*Monitor).cmdWriteMem},
		"readmem":   {0, 1, "readmem [addr]", (*Monitor).cmdReadMem},
		"writeum":   {2, 2, "writeum <addr> <word>", (*Monitor).cmdWriteUm},
		"readum":    {0, 1, "readum [addr]", (*Monitor).cmdReadUm},
		"loadum":    {1, 1, "loadum <file>", (*Monitor).cmdLoadUm},
		"run":       {0, 0, "run", (*Monitor).cmdRun},
		"interrupt": {0, 0, "interrupt", (*Monitor).cmdInterrupt},
		"reset":     {0, 0, "reset", (*Monitor).cmdReset},
	}
}

func (mon *Monitor) cmdHelp(args []string) (err error) {
	if len(args) == 1 {
		cmd, ok := commands[args[0]]
		if !ok {
			return ErrUnknownCommand(args[0])
		}
		fmt.Fprintf(mon.Out, "'%v' usage: %v\n", args[0], cmd.usage)
		return
	}

	for _, name := range slices.Sorted(maps.Keys(commands)) {
		fmt.Fprintf(mon.Out, "'%v' usage: %v\n", name, commands[name].usage)
	}

	return
}

func (mon *Monitor) cmdQuit(args []string) (err error) {
	mon.requestQuit = true
	return
}

func (mon *Monitor) cmdSetFlag(args []string) (err error) {
	if args[1] != "true" && args[1] != "false" {
		return ErrNotBool(args[1])
	}

	if !mon.Machine.SetFlag(args[0], args[1] == "true") {
		return ErrUnknownFlag(args[0])
	}

	return
}

func (mon *Monitor) cmdGetFlag(args []string) (err error) {
	if len(args) == 0 {
		for name, bit := range mon.Machine.Flags() {
			fmt.Fprintf(mon.Out, "%v: %v\n", name, bit.Get())
		}
		return
	}

	value, ok := mon.Machine.GetFlag(args[0])
	if !ok {
		return ErrUnknownFlag(args[0])
	}
	fmt.Fprintf(mon.Out, "%v: %v\n", args[0], value)

	return
}

func (mon *Monitor) cmdGetReg(args []string) (err error) {
	if len(args) == 0 {
		for name, reg := range mon.Machine.Registers() {
			fmt.Fprintf(mon.Out, "%v: %v\n", name, reg.Get())
		}
		return
	}

	value, ok := mon.Machine.GetRegister(args[0])
	if !ok {
		return ErrUnknownRegister(args[0])
	}
	fmt.Fprintf(mon.Out, "%v: %v\n", args[0], value)

	return
}

func (mon *Monitor) cmdSetReg(args []string) (err error) {
	value, err := parseByte(args[1], "val")
	if err != nil {
		return
	}

	if !mon.Machine.SetRegister(args[0], uint8(value)) {
		return ErrUnknownRegister(args[0])
	}

	return
}

func (mon *Monitor) cmdClock(args []string) (err error) {
	count := 1
	if len(args) == 1 {
		count, err = parseNumber(args[0])
		if err != nil {
			return
		}
	}

	for ; count > 0; count-- {
		err = mon.Machine.Step()
		if err != nil {
			return
		}
	}

	return
}

func (mon *Monitor) cmdWriteMem(args []string) (err error) {
	addr, err := parseNumber(args[0])
	if err != nil {
		return
	}
	value, err := parseNumber(args[1])
	if err != nil {
		return
	}

	err = mon.Machine.EM.SetAt(addr, value)
	return
}

func (mon *Monitor) cmdReadMem(args []string) (err error) {
	if len(args) == 0 {
		for row := 0; row < 256; row += 16 {
			fmt.Fprintf(mon.Out, "%v:", row)
			for col := 0; col < 16; col++ {
				var value uint8
				value, err = mon.Machine.EM.At(row + col)
				if err != nil {
					return
				}
				fmt.Fprintf(mon.Out, " %v", value)
			}
			fmt.Fprintln(mon.Out)
		}
		return
	}

	addr, err := parseNumber(args[0])
	if err != nil {
		return
	}

	value, err := mon.Machine.EM.At(addr)
	if err != nil {
		return
	}
	fmt.Fprintf(mon.Out, "%v: %v\n", addr, value)

	return
}

func (mon *Monitor) cmdWriteUm(args []string) (err error) {
	addr, err := parseNumber(args[0])
	if err != nil {
		return
	}
	word, err := parseNumber(args[1])
	if err != nil {
		return
	}
	if word < 0 {
		return ErrRange("word")
	}

	err = mon.Machine.UM.SetAt(addr, uint32(word))
	return
}

func (mon *Monitor) cmdReadUm(args []string) (err error) {
	if len(args) == 0 {
		for row := 0; row < 256; row += 8 {
			fmt.Fprintf(mon.Out, "%v:", row)
			for col := 0; col < 8; col++ {
				var word machine.MicroWord
				word, err = mon.Machine.UM.At(row + col)
				if err != nil {
					return
				}
				fmt.Fprintf(mon.Out, " %06x", uint32(word))
			}
			fmt.Fprintln(mon.Out)
		}
		return
	}

	addr, err := parseNumber(args[0])
	if err != nil {
		return
	}

	word, err := mon.Machine.UM.At(addr)
	if err != nil {
		return
	}
	fmt.Fprintf(mon.Out, "%v: %06x\n", addr, uint32(word))

	return
}

func (mon *Monitor) cmdLoadUm(args []string) (err error) {
	file, err := os.Open(args[0])
	if err != nil {
		return
	}
	defer file.Close()

	ld := &microcode.Loader{Verbose: mon.Machine.Verbose}
	img, err := ld.Parse(file)
	if err != nil {
		return
	}

	err = img.Program(mon.Machine)
	return
}

func (mon *Monitor) cmdRun(args []string) (err error) {
	err = mon.Machine.RunForever()
	return
}

func (mon *Monitor) cmdInterrupt(args []string) (err error) {
	mon.Machine.TriggerInterrupt()
	return
}

func (mon *Monitor) cmdReset(args []string) (err error) {
	verbose := mon.Machine.Verbose
	mon.Machine = machine.NewMachine()
	mon.Machine.Verbose = verbose
	return
}
