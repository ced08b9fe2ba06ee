package machine

import (
	"log"
)

// latchControl loads the control bits from the current
// micro-instruction. In manual mode the operator owns the control
// bits and the decode is skipped.
func (m *Machine) latchControl() {
	if m.RunningManually.Get() {
		return
	}

	// The micro address register tracks UPC.
	m.UM.SetAddr(m.UPC.Get())
	word := m.UM.Read()

	m.S0.Put(word.Bit(0))
	m.S1.Put(word.Bit(1))
	m.S2.Put(word.Bit(2))
	m.AEN.Put(word.Bit(3))
	m.WEN.Put(word.Bit(4))
	m.X0.Put(word.Bit(5))
	m.X1.Put(word.Bit(6))
	m.X2.Put(word.Bit(7))
	m.Alu.FEN.Put(word.Bit(8))
	m.Alu.CN.Put(word.Bit(9))
	m.RWR.Put(word.Bit(10))
	m.RRD.Put(word.Bit(11))
	m.STEN.Put(word.Bit(12))
	m.OUTEN.Put(word.Bit(13))
	m.MAROE.Put(word.Bit(14))
	m.MAREN.Put(word.Bit(15))
	m.ELP.Put(word.Bit(16))
	m.EINT.Put(word.Bit(17))
	m.IREN.Put(word.Bit(18))
	m.EMEN.Put(word.Bit(19))
	m.PCOE.Put(word.Bit(20))
	m.EMRD.Put(word.Bit(21))
	m.EMWR.Put(word.Bit(22))
	// Bit 23 is reserved.

	if m.Verbose {
		log.Printf("cop2k: upc %02x: control %06x", m.UPC.Get(), uint32(word))
	}
}

// wireBuses resolves the control signal vector into writer and reader
// assignments on the three buses. Buses hold tick-scoped state and
// are cleared before wiring begins.
func (m *Machine) wireBuses() (err error) {
	m.dbus.ClearReaders()
	m.dbus.ClearWriter()
	m.ibus.ClearReaders()
	m.ibus.ClearWriter()
	m.abus.ClearReaders()
	m.abus.ClearWriter()

	// Interrupt handshake: drive the vector and keep EM off the
	// instruction and data buses for this tick.
	if m.IREQ.Get() && !m.IACK.Get() {
		err = m.ibus.SetWriter(IBUS_WRITER_INTERRUPT)
		if err != nil {
			return
		}
		m.EMRD.Clear()
		m.IACK.Set()
	}

	if m.EMRD.Asserted() {
		err = m.ibus.SetWriter(IBUS_WRITER_EM)
		if err != nil {
			return
		}
	}

	if m.PCOE.Asserted() {
		err = m.abus.SetWriter(ABUS_WRITER_PC)
		if err != nil {
			return
		}
	}

	if m.EMEN.Asserted() {
		if m.EMWR.Asserted() {
			m.dbus.AddReader(DBUS_READER_EM)
		}

		if m.EMRD.Asserted() {
			err = m.dbus.SetWriter(DBUS_WRITER_EM)
			if err != nil {
				return
			}
		}
	}

	if m.IREN.Asserted() {
		m.ibus.AddReader(IBUS_READER_IR)
		m.ibus.AddReader(IBUS_READER_UPC)
	}

	if m.EINT.Asserted() {
		m.IACK.Clear()
		m.IREQ.Clear()
	}

	if m.ELP.Asserted() {
		m.dbus.AddReader(DBUS_READER_PC)
	}

	if m.MAREN.Asserted() {
		m.dbus.AddReader(DBUS_READER_MAR)
	}

	if m.MAROE.Asserted() {
		err = m.abus.SetWriter(ABUS_WRITER_MAR)
		if err != nil {
			return
		}
	}

	if m.OUTEN.Asserted() {
		m.dbus.AddReader(DBUS_READER_OUT)
	}

	if m.STEN.Asserted() {
		m.dbus.AddReader(DBUS_READER_ST)
	}

	if m.RRD.Asserted() {
		err = m.dbus.SetWriter(DBUS_WRITER_REG)
		if err != nil {
			return
		}
	}

	if m.RWR.Asserted() {
		m.dbus.AddReader(DBUS_READER_REG)
	}

	if m.WEN.Asserted() {
		m.dbus.AddReader(DBUS_READER_W)
	}

	if m.AEN.Asserted() {
		m.dbus.AddReader(DBUS_READER_A)
	}

	// The X field selects the data bus source from the raw stored
	// bits; all ones means no source.
	var writer DBusWriter
	switch bitValue(m.X2.Get())<<2 | bitValue(m.X1.Get())<<1 | bitValue(m.X0.Get()) {
	case 0:
		writer = DBUS_WRITER_IN
	case 1:
		writer = DBUS_WRITER_IA
	case 2:
		writer = DBUS_WRITER_ST
	case 3:
		writer = DBUS_WRITER_PC
	case 4:
		writer = DBUS_WRITER_D
	case 5:
		writer = DBUS_WRITER_R
	case 6:
		writer = DBUS_WRITER_L
	case 7:
		// no source
	}
	if writer != DBUS_WRITER_NONE {
		err = m.dbus.SetWriter(writer)
		if err != nil {
			return
		}
	}

	// The manual override displaces whatever source the control
	// signals picked.
	if m.ManualDBus.Get() {
		m.dbus.ClearWriter()
		err = m.dbus.SetWriter(DBUS_WRITER_MANUAL)
		if err != nil {
			return
		}
	}

	if m.Verbose {
		log.Printf("cop2k: wire: dbus %v > %v, abus %v > %v, ibus %v > %v",
			m.dbus.Writer(), m.dbus.Readers(),
			m.abus.Writer(), m.abus.Readers(),
			m.ibus.Writer(), m.ibus.Readers())
	}

	return
}
