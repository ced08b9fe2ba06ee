package machine

// CalcType selects the arithmetic unit calculation mode. The encoding
// is fixed by the machine: the stored S2..S0 control bits form the
// mode index directly.
type CalcType int

//go:generate go tool stringer -linecomment -type=CalcType -output calctype_string.go
const (
	CALC_ADD       = CalcType(0) // add
	CALC_SUB       = CalcType(1) // sub
	CALC_AND       = CalcType(2) // and
	CALC_OR        = CalcType(3) // or
	CALC_CARRY_ADD = CalcType(4) // carry_add
	CALC_CARRY_SUB = CalcType(5) // carry_sub
	CALC_NOT       = CalcType(6) // not
	CALC_DIRECT_A  = CalcType(7) // direct_a
)

// Alu is the combinational arithmetic unit. CY and Z latch the carry
// and zero conditions when FEN is high; CN gates the latched carry
// into the shifted outputs.
type Alu struct {
	CY  Flag
	Z   Flag
	FEN Flag
	CN  Flag

	calcType CalcType
}

// SetCalcType selects the calculation mode.
func (alu *Alu) SetCalcType(calcType CalcType) {
	alu.calcType = calcType
}

// CalcType returns the current calculation mode.
func (alu *Alu) CalcType() CalcType {
	return alu.calcType
}

// Calc computes the left, direct, and right outputs for the operand
// pair. CY and Z latch before CY feeds the shift carry terms, so a
// carry produced by this calculation shifts into this calculation's
// outputs.
func (alu *Alu) Calc(a uint8, w uint8) (left uint8, direct uint8, right uint8) {
	var result int

	switch alu.calcType {
	case CALC_ADD:
		result = int(a) + int(w)
	case CALC_SUB:
		result = int(a) - int(w)
	case CALC_AND:
		result = int(a & w)
	case CALC_OR:
		result = int(a | w)
	case CALC_CARRY_ADD:
		result = int(a) + int(w) + bitValue(alu.CY.Get())
	case CALC_CARRY_SUB:
		result = int(a) - int(w) - bitValue(alu.CY.Get())
	case CALC_NOT:
		result = ^int(a)
	case CALC_DIRECT_A:
		result = int(a)
	}

	if alu.FEN.Get() {
		alu.CY.Put(result < -128 || result > 127)
		alu.Z.Put(result == 0)
	}

	carry := bitValue(alu.CY.Get() && alu.CN.Get())

	left = uint8(result<<1) | uint8(carry)
	direct = uint8(result)
	right = uint8(result>>1) | uint8(carry<<7)
	return
}
