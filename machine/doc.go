// Package machine implements a behavioral, clock-accurate model of the
// COP2000 educational computer.
//
// The machine consists of an 8-bit register set, a 256x8 external
// memory, a 256x24 micro-program memory driving the control unit, an
// arithmetic unit with three outputs, and three internal buses (data,
// address, and instruction). A single Step() advances the model by one
// micro-instruction: the current control word is latched, bus writers
// and readers are resolved from the control signals, and data
// propagates from writers to readers.
//
// All control bits except the arithmetic unit's FEN and CN follow the
// hardware's active-low convention and are stored with their raw
// polarity; the NegFlag type keeps the stored-versus-asserted
// distinction explicit. FEN and CN are active high.
package machine
