package machine

// MicroWordMask covers the 24 control bits of a micro-instruction.
const MicroWordMask = 0xFFFFFF

// MicroWord is a single 24-bit micro-instruction.
type MicroWord uint32

// Bit returns the stored value of control bit n.
func (word MicroWord) Bit(n int) bool {
	return (word>>n)&1 != 0
}

// Memory is the 256x8 external memory with its latched address
// register. Read and Write go through the latched address; At and
// SetAt bypass it for external collaborators.
type Memory struct {
	mem  [256]uint8
	addr uint8
}

func (em *Memory) SetAddr(addr uint8) {
	em.addr = addr
}

func (em *Memory) Addr() uint8 {
	return em.addr
}

// Read returns the byte at the latched address.
func (em *Memory) Read() uint8 {
	return em.mem[em.addr]
}

// Write stores a byte at the latched address.
func (em *Memory) Write(value uint8) {
	em.mem[em.addr] = value
}

// At reads a byte without disturbing the latched address.
func (em *Memory) At(addr int) (value uint8, err error) {
	if addr < 0 || addr > 255 {
		err = ErrAddressRange
		return
	}

	value = em.mem[addr]
	return
}

// SetAt writes a byte without disturbing the latched address.
func (em *Memory) SetAt(addr int, value int) (err error) {
	if addr < 0 || addr > 255 {
		err = ErrAddressRange
		return
	}
	if value < 0 || value > 255 {
		err = ErrValueRange
		return
	}

	em.mem[addr] = uint8(value)
	return
}

// MicroMemory is the 256x24 micro-program memory with its latched
// address register. The address register tracks UPC between ticks; the
// engine only ever reads it, external collaborators load it through
// the bypass accessors.
type MicroMemory struct {
	mem  [256]MicroWord
	addr uint8
}

func (um *MicroMemory) SetAddr(addr uint8) {
	um.addr = addr
}

func (um *MicroMemory) Addr() uint8 {
	return um.addr
}

// Read returns the micro-instruction at the latched address.
func (um *MicroMemory) Read() MicroWord {
	return um.mem[um.addr]
}

// At reads a word without disturbing the latched address.
func (um *MicroMemory) At(addr int) (word MicroWord, err error) {
	if addr < 0 || addr > 255 {
		err = ErrAddressRange
		return
	}

	word = um.mem[addr]
	return
}

// SetAt stores a word without disturbing the latched address.
func (um *MicroMemory) SetAt(addr int, word uint32) (err error) {
	if addr < 0 || addr > 255 {
		err = ErrAddressRange
		return
	}
	if word > MicroWordMask {
		err = ErrValueRange
		return
	}

	um.mem[addr] = MicroWord(word)
	return
}
