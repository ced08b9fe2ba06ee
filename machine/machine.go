// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"iter"
	"log"

	"github.com/ezrec/cop2k/internal"
)

// InterruptVector is the fixed instruction driven onto the IBus while
// an interrupt request is being acknowledged.
const InterruptVector = 0xB8

// InterruptAddress is the reset value of the IA register.
const InterruptAddress = 0xE0

// Machine is the COP2000 aggregate: registers, memories, arithmetic
// unit, control bits, and the three internal buses. All state lives
// here; external collaborators mutate it through the named accessors
// or the exported fields.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	EM Memory      // External memory, 256x8.
	UM MicroMemory // Micro-program memory, 256x24.

	ManualInput Register // Operator-driven data bus value.
	UPC         Register // Micro program counter.
	PC          Register // Program counter.
	MAR         Register // Memory address register.
	IA          Register // Interrupt address.
	ST          Register // Status register.
	IN          Register // Input register.
	OUT         Register // Output register.
	IR          Register // Instruction register.

	A Register // Arithmetic unit operand.
	W Register // Arithmetic unit operand.

	L Register // Arithmetic unit left-shifted output.
	D Register // Arithmetic unit direct output.
	R Register // Arithmetic unit right-shifted output.

	Reg [4]Register // General register file, selected by SB:SA.

	Alu Alu

	// Control bits, asserted low.
	EMWR  NegFlag
	EMRD  NegFlag
	PCOE  NegFlag
	EMEN  NegFlag
	IREN  NegFlag
	EINT  NegFlag
	ELP   NegFlag
	MAREN NegFlag
	MAROE NegFlag
	OUTEN NegFlag
	STEN  NegFlag
	RRD   NegFlag
	RWR   NegFlag

	X2 NegFlag // Data bus source select.
	X1 NegFlag
	X0 NegFlag

	WEN NegFlag
	AEN NegFlag

	S2 NegFlag // Arithmetic unit mode select.
	S1 NegFlag
	S0 NegFlag

	// Status bits, asserted high.
	ManualDBus      Flag // Overrides the data bus writer.
	SA              Flag // Register file select, low bit.
	SB              Flag // Register file select, high bit.
	IREQ            Flag // Interrupt request.
	IACK            Flag // Interrupt acknowledge.
	RunningManually Flag // Operator owns the control bits.
	Halt            Flag

	dbus DBus
	abus ABus
	ibus IBus
}

// NewMachine creates a machine in the powered-on state: registers
// cleared, IA at the interrupt address, every active-low control bit
// deasserted, halted, and in manual mode.
func NewMachine() (m *Machine) {
	m = &Machine{}

	m.IA.Set(InterruptAddress)

	m.EMWR.Clear()
	m.EMRD.Clear()
	m.PCOE.Clear()
	m.EMEN.Clear()
	m.IREN.Clear()
	m.EINT.Clear()
	m.ELP.Clear()
	m.MAREN.Clear()
	m.MAROE.Clear()
	m.OUTEN.Clear()
	m.STEN.Clear()
	m.RRD.Clear()
	m.RWR.Clear()
	m.X2.Clear()
	m.X1.Clear()
	m.X0.Clear()
	m.WEN.Clear()
	m.AEN.Clear()
	m.S2.Clear()
	m.S1.Clear()
	m.S0.Clear()

	m.RunningManually.Set()
	m.Halt.Set()

	m.updateAlu()

	return
}

// Step advances the machine by one micro-instruction clock tick:
// decode, bus wiring, data transfer, and the trailing micro program
// counter advance.
func (m *Machine) Step() (err error) {
	m.latchControl()

	err = m.wireBuses()
	if err != nil {
		return
	}

	err = m.transfer()
	return
}

// RunForever steps the clock until the program latches HALT high. A
// freshly constructed machine is halted, so this returns immediately
// until HALT is released.
func (m *Machine) RunForever() (err error) {
	for !m.Halt.Get() {
		err = m.Step()
		if err != nil {
			return
		}
	}

	return
}

// TriggerInterrupt raises the interrupt request line. The next tick
// services it by driving the interrupt vector onto the IBus and
// raising IACK.
func (m *Machine) TriggerInterrupt() {
	if m.Verbose {
		log.Printf("cop2k: interrupt requested")
	}

	m.IREQ.Set()
}

// SetManualInput writes the operator-driven data bus value.
func (m *Machine) SetManualInput(value uint8) {
	m.ManualInput.Set(value)
}

// updateAlu derives the calculation mode from the stored S2..S0 bits
// and latches the three arithmetic unit outputs.
func (m *Machine) updateAlu() {
	m.Alu.SetCalcType(CalcType(
		bitValue(m.S2.Get())<<2 | bitValue(m.S1.Get())<<1 | bitValue(m.S0.Get()),
	))

	left, direct, right := m.Alu.Calc(m.A.Get(), m.W.Get())
	m.L.Set(left)
	m.D.Set(direct)
	m.R.Set(right)
}

// regSelect forms the register file index from the SB:SA select bits.
func (m *Machine) regSelect() int {
	return bitValue(m.SB.Get())<<1 | bitValue(m.SA.Get())
}

// flagEntry pairs a flag name with its storage cell.
type flagEntry struct {
	name string
	bit  Bit
}

// regEntry pairs a register name with its cell.
type regEntry struct {
	name string
	reg  *Register
}

// controlTable lists the active-low control bits in display order.
func (m *Machine) controlTable() []flagEntry {
	return []flagEntry{
		{"emwr", &m.EMWR},
		{"emrd", &m.EMRD},
		{"pcoe", &m.PCOE},
		{"emen", &m.EMEN},
		{"iren", &m.IREN},
		{"eint", &m.EINT},
		{"elp", &m.ELP},
		{"maren", &m.MAREN},
		{"maroe", &m.MAROE},
		{"outen", &m.OUTEN},
		{"sten", &m.STEN},
		{"rrd", &m.RRD},
		{"rwr", &m.RWR},
		{"x2", &m.X2},
		{"x1", &m.X1},
		{"x0", &m.X0},
		{"wen", &m.WEN},
		{"aen", &m.AEN},
		{"s2", &m.S2},
		{"s1", &m.S1},
		{"s0", &m.S0},
	}
}

// statusTable lists the active-high status bits in display order.
func (m *Machine) statusTable() []flagEntry {
	return []flagEntry{
		{"sa", &m.SA},
		{"sb", &m.SB},
		{"ireq", &m.IREQ},
		{"iack", &m.IACK},
		{"halt", &m.Halt},
		{"manual_dbus", &m.ManualDBus},
		{"running_manually", &m.RunningManually},
	}
}

// aluTable lists the arithmetic unit flags in display order.
func (m *Machine) aluTable() []flagEntry {
	return []flagEntry{
		{"cy", &m.Alu.CY},
		{"z", &m.Alu.Z},
		{"fen", &m.Alu.FEN},
		{"cn", &m.Alu.CN},
	}
}

// registerTable lists the registers in display order.
func (m *Machine) registerTable() []regEntry {
	return []regEntry{
		{"manual_dbus_input", &m.ManualInput},
		{"upc", &m.UPC},
		{"pc", &m.PC},
		{"mar", &m.MAR},
		{"ia", &m.IA},
		{"st", &m.ST},
		{"in", &m.IN},
		{"out", &m.OUT},
		{"ir", &m.IR},
		{"l", &m.L},
		{"d", &m.D},
		{"r", &m.R},
		{"a", &m.A},
		{"w", &m.W},
		{"r0", &m.Reg[0]},
		{"r1", &m.Reg[1]},
		{"r2", &m.Reg[2]},
		{"r3", &m.Reg[3]},
	}
}

func flagSeq(entries []flagEntry) iter.Seq2[string, Bit] {
	return func(yield func(name string, bit Bit) bool) {
		for _, entry := range entries {
			if !yield(entry.name, entry.bit) {
				return
			}
		}
	}
}

// Flags lists every named flag in display order.
func (m *Machine) Flags() iter.Seq2[string, Bit] {
	return internal.IterSeq2Concat(
		flagSeq(m.controlTable()),
		flagSeq(m.statusTable()),
		flagSeq(m.aluTable()),
	)
}

// Registers lists every named register in display order.
func (m *Machine) Registers() iter.Seq2[string, *Register] {
	return func(yield func(name string, reg *Register) bool) {
		for _, entry := range m.registerTable() {
			if !yield(entry.name, entry.reg) {
				return
			}
		}
	}
}

// flagByName looks a flag up by its display name.
func (m *Machine) flagByName(name string) (bit Bit, ok bool) {
	for entry_name, entry_bit := range m.Flags() {
		if entry_name == name {
			bit = entry_bit
			ok = true
			return
		}
	}

	return
}

// GetFlag reads the raw storage bit of a named flag.
func (m *Machine) GetFlag(name string) (value bool, ok bool) {
	bit, ok := m.flagByName(name)
	if !ok {
		return
	}

	value = bit.Get()
	return
}

// SetFlag writes the raw storage bit of a named flag. Writing an
// arithmetic unit mode select refreshes the latched outputs.
func (m *Machine) SetFlag(name string, value bool) (ok bool) {
	bit, ok := m.flagByName(name)
	if !ok {
		return
	}

	bit.Put(value)

	switch name {
	case "s0", "s1", "s2":
		m.updateAlu()
	}

	return
}

// AssertFlag drives a named flag to its asserted state, whatever the
// storage polarity.
func (m *Machine) AssertFlag(name string) (ok bool) {
	bit, ok := m.flagByName(name)
	if !ok {
		return
	}

	bit.Set()

	switch name {
	case "s0", "s1", "s2":
		m.updateAlu()
	}

	return
}

// DeassertFlag drives a named flag to its deasserted state.
func (m *Machine) DeassertFlag(name string) (ok bool) {
	bit, ok := m.flagByName(name)
	if !ok {
		return
	}

	bit.Clear()

	switch name {
	case "s0", "s1", "s2":
		m.updateAlu()
	}

	return
}

// GetRegister reads a named register.
func (m *Machine) GetRegister(name string) (value uint8, ok bool) {
	for entry_name, reg := range m.Registers() {
		if entry_name == name {
			value = reg.Get()
			ok = true
			return
		}
	}

	return
}

// SetRegister writes a named register. Writing an arithmetic unit
// operand refreshes the latched outputs.
func (m *Machine) SetRegister(name string, value uint8) (ok bool) {
	for entry_name, reg := range m.Registers() {
		if entry_name == name {
			reg.Set(value)
			ok = true
			break
		}
	}
	if !ok {
		return
	}

	switch name {
	case "a", "w":
		m.updateAlu()
	case "upc":
		m.UM.SetAddr(value)
	}

	return
}
