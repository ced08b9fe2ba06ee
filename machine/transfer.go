package machine

// transfer refreshes the arithmetic unit, lets each writer drive its
// bus, then latches every reader in list order. The program counter
// advances when it drove the address bus; the micro program counter
// advances unless the instruction bus loaded it.
func (m *Machine) transfer() (err error) {
	m.updateAlu()

	switch m.abus.Writer() {
	case ABUS_WRITER_NONE:
	case ABUS_WRITER_MAR:
		err = m.abus.SetData(m.MAR.Get())
	case ABUS_WRITER_PC:
		err = m.abus.SetData(m.PC.Get())
		// An ELP reload later this tick overrides the increment.
		m.PC.Set(m.PC.Get() + 1)
	}
	if err != nil {
		return
	}

	switch m.dbus.Writer() {
	case DBUS_WRITER_NONE:
	case DBUS_WRITER_IN:
		err = m.dbus.SetData(m.IN.Get())
	case DBUS_WRITER_IA:
		err = m.dbus.SetData(m.IA.Get())
	case DBUS_WRITER_ST:
		err = m.dbus.SetData(m.ST.Get())
	case DBUS_WRITER_PC:
		err = m.dbus.SetData(m.PC.Get())
	case DBUS_WRITER_D:
		err = m.dbus.SetData(m.D.Get())
	case DBUS_WRITER_L:
		err = m.dbus.SetData(m.L.Get())
	case DBUS_WRITER_R:
		err = m.dbus.SetData(m.R.Get())
	case DBUS_WRITER_REG:
		err = m.dbus.SetData(m.Reg[m.regSelect()].Get())
	case DBUS_WRITER_EM:
		err = m.dbus.SetData(m.EM.Read())
	case DBUS_WRITER_MANUAL:
		err = m.dbus.SetData(m.ManualInput.Get())
	}
	if err != nil {
		return
	}

	switch m.ibus.Writer() {
	case IBUS_WRITER_NONE:
	case IBUS_WRITER_EM:
		err = m.ibus.SetData(m.EM.Read())
	case IBUS_WRITER_INTERRUPT:
		err = m.ibus.SetData(InterruptVector)
	}
	if err != nil {
		return
	}

	for _, reader := range m.abus.Readers() {
		var data uint8
		data, err = m.abus.Data()
		if err != nil {
			return
		}

		switch reader {
		case ABUS_READER_NONE:
		case ABUS_READER_EM:
			m.EM.SetAddr(data)
		}
	}

	for _, reader := range m.dbus.Readers() {
		var data uint8
		data, err = m.dbus.Data()
		if err != nil {
			return
		}

		switch reader {
		case DBUS_READER_NONE:
		case DBUS_READER_MAR:
			m.MAR.Set(data)
		case DBUS_READER_OUT:
			m.OUT.Set(data)
		case DBUS_READER_ST:
			m.ST.Set(data)
		case DBUS_READER_PC:
			m.PC.Set(data)
		case DBUS_READER_A:
			m.A.Set(data)
			m.updateAlu()
		case DBUS_READER_W:
			m.W.Set(data)
			m.updateAlu()
		case DBUS_READER_REG:
			m.Reg[m.regSelect()].Set(data)
		case DBUS_READER_EM:
			m.EM.Write(data)
		}
	}

	upcLoaded := false
	for _, reader := range m.ibus.Readers() {
		var data uint8
		data, err = m.ibus.Data()
		if err != nil {
			return
		}

		switch reader {
		case IBUS_READER_NONE:
		case IBUS_READER_IR:
			m.IR.Set(data)
		case IBUS_READER_UPC:
			m.UPC.Set(data)
			upcLoaded = true
		}
	}

	if !upcLoaded {
		m.UPC.Set(m.UPC.Get() + 1)
	}
	m.UM.SetAddr(m.UPC.Get())

	return
}
