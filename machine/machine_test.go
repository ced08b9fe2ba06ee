package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The idle control word: every active-low bit deasserted, FEN/CN low,
// bit 23 reserved low.
const idleWord = 0x7FFCFF

func TestNewMachine(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	for name, bit := range m.Flags() {
		switch name {
		case "halt", "running_manually":
			assert.True(bit.Get(), name)
		case "sa", "sb", "ireq", "iack", "manual_dbus", "cy", "z", "fen", "cn":
			assert.False(bit.Get(), name)
		default:
			// Active-low control bits store 1 when deasserted.
			assert.True(bit.Get(), name)
		}
	}

	for name, reg := range m.Registers() {
		if name == "ia" {
			assert.Equal(uint8(InterruptAddress), reg.Get(), name)
		} else {
			assert.Equal(uint8(0), reg.Get(), name)
		}
	}
}

// A tick in manual mode with idle control bits only advances the
// micro program counter.
func TestIdleTick(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	err := m.Step()
	assert.NoError(err)

	assert.Equal(uint8(1), m.UPC.Get())
	assert.Equal(uint8(0), m.PC.Get())
	assert.Equal(uint8(0), m.IR.Get())

	for name, bit := range m.Flags() {
		switch name {
		case "halt", "running_manually":
			assert.True(bit.Get(), name)
		case "sa", "sb", "ireq", "iack", "manual_dbus", "cy", "z", "fen", "cn":
			assert.False(bit.Get(), name)
		default:
			assert.True(bit.Get(), name)
		}
	}
}

func TestUpcWraps(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.SetRegister("upc", 255)

	err := m.Step()
	assert.NoError(err)
	assert.Equal(uint8(0), m.UPC.Get())
}

// A manually driven data bus latches into any enabled reader.
func TestManualDataBus(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMachine()
	m.RunningManually.Clear()

	// AEN asserted, X field all ones (no source).
	err := m.UM.SetAt(0, idleWord&^(1<<3))
	require.NoError(err)

	m.ManualDBus.Set()
	m.SetManualInput(0x42)

	err = m.Step()
	assert.NoError(err)

	assert.Equal(uint8(0x42), m.A.Get())
	assert.Equal(uint8(1), m.UPC.Get())
}

// The canonical fetch: PC drives the address bus, external memory
// drives the instruction bus, and IR and UPC latch the instruction.
func TestFetchCycle(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := NewMachine()
	m.RunningManually.Clear()

	// PCOE, EMRD, EMEN, IREN asserted.
	word := uint32(idleWord) &^ (1<<20 | 1<<21 | 1<<19 | 1<<18)
	require.NoError(m.UM.SetAt(0, word))
	require.NoError(m.EM.SetAt(0x00, 0x9C))

	err := m.Step()
	assert.NoError(err)

	assert.Equal(uint8(0x9C), m.IR.Get())
	assert.Equal(uint8(0x9C), m.UPC.Get())
	assert.Equal(uint8(0x9C), m.UM.Addr())
	assert.Equal(uint8(1), m.PC.Get())
}

func TestPcWrapsOnAddressBus(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.SetRegister("pc", 255)
	m.AssertFlag("pcoe")

	err := m.Step()
	assert.NoError(err)
	assert.Equal(uint8(0), m.PC.Get())
}

// An ELP reload of PC overrides the fetch auto-increment.
func TestElpOverridesIncrement(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.SetRegister("pc", 5)
	m.AssertFlag("pcoe")
	m.AssertFlag("elp")
	m.ManualDBus.Set()
	m.SetManualInput(0x55)

	err := m.Step()
	assert.NoError(err)

	assert.Equal(uint8(0x55), m.PC.Get())
}

// The facade ALU path: operands and mode written by name refresh the
// latched outputs.
func TestAluThroughFacade(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	m.AssertFlag("fen")
	// ADD is mode 000 of the stored S bits.
	m.AssertFlag("s2")
	m.AssertFlag("s1")
	m.AssertFlag("s0")
	m.SetRegister("a", 0x80)
	m.SetRegister("w", 0x80)

	direct, ok := m.GetRegister("d")
	assert.True(ok)
	assert.Equal(uint8(0x00), direct)

	cy, ok := m.GetFlag("cy")
	assert.True(ok)
	assert.True(cy)

	// The zero flag tracks the full-width result, which is 0x100
	// here, not the truncated output byte.
	z, ok := m.GetFlag("z")
	assert.True(ok)
	assert.False(z)

	left, _ := m.GetRegister("l")
	right, _ := m.GetRegister("r")
	assert.Equal(uint8(0x00), left)
	assert.Equal(uint8(0x80), right)
}

// An interrupt drives the vector onto the instruction bus and raises
// the acknowledge.
func TestInterruptAcknowledge(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.TriggerInterrupt()

	err := m.Step()
	assert.NoError(err)

	assert.True(m.IACK.Get())
	assert.True(m.IREQ.Get())
	assert.Equal(uint8(1), m.UPC.Get())
	assert.Equal(uint8(0), m.IR.Get())
}

func TestInterruptVectorLoads(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.AssertFlag("iren")
	m.TriggerInterrupt()

	err := m.Step()
	assert.NoError(err)

	assert.Equal(uint8(InterruptVector), m.IR.Get())
	assert.Equal(uint8(InterruptVector), m.UPC.Get())
	assert.True(m.IACK.Get())
}

// A second tick with the acknowledge raised does not re-drive the
// vector; EINT releases the handshake.
func TestInterruptHandshakeRelease(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.TriggerInterrupt()

	assert.NoError(m.Step())
	assert.True(m.IACK.Get())

	// Acknowledged: EM owns the instruction bus again when enabled.
	assert.NoError(m.Step())
	assert.True(m.IACK.Get())

	m.AssertFlag("eint")
	assert.NoError(m.Step())
	assert.False(m.IREQ.Get())
	assert.False(m.IACK.Get())
}

// Two sources resolved onto the data bus is a wiring fault.
func TestBusConflictTick(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.AssertFlag("emen")
	m.AssertFlag("emrd")
	// X field 100 selects the D output.
	m.AssertFlag("x1")
	m.AssertFlag("x0")

	err := m.Step()
	assert.ErrorIs(err, ErrBusConflict)
}

// A reader with no driver on its bus is a transfer fault.
func TestBusNoWriterTick(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.AssertFlag("aen")

	err := m.Step()
	assert.ErrorIs(err, ErrBusNoWriter)
}

// EMEN with EMWR latches the data bus into external memory.
func TestMemoryWriteTick(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.AssertFlag("emen")
	m.AssertFlag("emwr")
	m.ManualDBus.Set()
	m.SetManualInput(0x77)

	err := m.Step()
	assert.NoError(err)

	value, err := m.EM.At(0)
	assert.NoError(err)
	assert.Equal(uint8(0x77), value)
}

// The SB:SA select bits pick the register file cell for both the read
// and write sides.
func TestRegisterFileSelect(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.SA.Set()
	m.SB.Set()
	m.AssertFlag("rwr")
	m.ManualDBus.Set()
	m.SetManualInput(0x33)

	err := m.Step()
	assert.NoError(err)

	value, ok := m.GetRegister("r3")
	assert.True(ok)
	assert.Equal(uint8(0x33), value)
	assert.Equal(uint8(0), m.Reg[0].Get())

	// Read side: REG drives the data bus into W.
	m.ManualDBus.Clear()
	m.DeassertFlag("rwr")
	m.AssertFlag("rrd")
	m.AssertFlag("wen")

	err = m.Step()
	assert.NoError(err)
	assert.Equal(uint8(0x33), m.W.Get())
}

func TestRunForeverHalted(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	err := m.RunForever()
	assert.NoError(err)
	assert.Equal(uint8(0), m.UPC.Get())
}

func TestFlagNames(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	value, ok := m.GetFlag("halt")
	assert.True(ok)
	assert.True(value)

	_, ok = m.GetFlag("nonesuch")
	assert.False(ok)

	ok = m.SetFlag("manual_dbus", true)
	assert.True(ok)
	assert.True(m.ManualDBus.Get())

	// Asserting an active-low bit stores 0.
	ok = m.AssertFlag("emrd")
	assert.True(ok)
	assert.False(m.EMRD.Get())

	ok = m.DeassertFlag("emrd")
	assert.True(ok)
	assert.True(m.EMRD.Get())
}

func TestRegisterNames(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	value, ok := m.GetRegister("ia")
	assert.True(ok)
	assert.Equal(uint8(InterruptAddress), value)

	ok = m.SetRegister("in", 0x12)
	assert.True(ok)
	assert.Equal(uint8(0x12), m.IN.Get())

	_, ok = m.GetRegister("nonesuch")
	assert.False(ok)
	assert.False(m.SetRegister("nonesuch", 1))
}

func TestMemoryBypass(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	err := m.EM.SetAt(0x10, 0xAB)
	assert.NoError(err)

	value, err := m.EM.At(0x10)
	assert.NoError(err)
	assert.Equal(uint8(0xAB), value)
	assert.Equal(uint8(0), m.EM.Addr())

	_, err = m.EM.At(256)
	assert.ErrorIs(err, ErrAddressRange)
	_, err = m.EM.At(-1)
	assert.ErrorIs(err, ErrAddressRange)

	err = m.EM.SetAt(0, 256)
	assert.ErrorIs(err, ErrValueRange)
	err = m.EM.SetAt(256, 0)
	assert.ErrorIs(err, ErrAddressRange)
}

func TestMicroMemoryBypass(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	err := m.UM.SetAt(0x20, 0x123456)
	assert.NoError(err)

	word, err := m.UM.At(0x20)
	assert.NoError(err)
	assert.Equal(MicroWord(0x123456), word)

	err = m.UM.SetAt(0, 1<<24)
	assert.ErrorIs(err, ErrValueRange)

	_, err = m.UM.At(300)
	assert.ErrorIs(err, ErrAddressRange)
}
