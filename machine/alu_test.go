package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAluCalc(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		calcType CalcType
		a, w     uint8
		cy, cn   bool
		fen      bool
		left     uint8
		direct   uint8
		right    uint8
		cyAfter  bool
		zAfter   bool
	}){
		{"add_small", CALC_ADD, 1, 2, false, false, true, 0x06, 0x03, 0x01, false, false},
		{"add_carry", CALC_ADD, 0x80, 0x80, false, false, true, 0x00, 0x00, 0x80, true, false},
		{"add_carry_cn", CALC_ADD, 0x80, 0x80, false, true, true, 0x01, 0x00, 0x80, true, false},
		{"add_zero", CALC_ADD, 0, 0, false, false, true, 0x00, 0x00, 0x00, false, true},
		{"sub_borrow", CALC_SUB, 5, 7, false, false, true, 0xFC, 0xFE, 0xFF, false, false},
		{"sub_zero", CALC_SUB, 5, 5, false, false, true, 0x00, 0x00, 0x00, false, true},
		{"and", CALC_AND, 0xCC, 0xAA, false, false, true, 0x10, 0x88, 0x44, true, false},
		{"or", CALC_OR, 0xCC, 0xAA, false, false, true, 0xDC, 0xEE, 0x77, true, false},
		{"carry_add", CALC_CARRY_ADD, 1, 1, true, false, false, 0x06, 0x03, 0x01, true, false},
		{"carry_sub", CALC_CARRY_SUB, 5, 2, true, false, false, 0x04, 0x02, 0x01, true, false},
		{"not", CALC_NOT, 0x80, 0, false, false, true, 0xFE, 0x7F, 0xBF, true, false},
		{"not_shift_in", CALC_NOT, 0x80, 0, true, true, true, 0xFF, 0x7F, 0xBF, true, false},
		{"direct_a", CALC_DIRECT_A, 0x42, 0xFF, false, false, true, 0x84, 0x42, 0x21, false, false},
	}

	for _, entry := range table {
		alu := Alu{}
		alu.SetCalcType(entry.calcType)
		alu.CY.Put(entry.cy)
		alu.CN.Put(entry.cn)
		alu.FEN.Put(entry.fen)

		left, direct, right := alu.Calc(entry.a, entry.w)
		assert.Equal(entry.left, left, entry.name)
		assert.Equal(entry.direct, direct, entry.name)
		assert.Equal(entry.right, right, entry.name)
		assert.Equal(entry.cyAfter, alu.CY.Get(), entry.name)
		assert.Equal(entry.zAfter, alu.Z.Get(), entry.name)
	}
}

// The flags only latch while FEN is high.
func TestAluFlagEnable(t *testing.T) {
	assert := assert.New(t)

	alu := Alu{}
	alu.SetCalcType(CALC_ADD)

	_, _, _ = alu.Calc(0x80, 0x80)
	assert.False(alu.CY.Get())
	assert.False(alu.Z.Get())

	alu.FEN.Set()
	_, direct, _ := alu.Calc(0x80, 0x80)
	assert.Equal(uint8(0), direct)
	assert.True(alu.CY.Get())
}

// The shifted outputs carry the result bits with the CY&CN term in the
// vacated position.
func TestAluShiftRelation(t *testing.T) {
	assert := assert.New(t)

	for _, a := range []uint8{0x00, 0x01, 0x7F, 0x80, 0xA5, 0xFF} {
		for _, carry := range []bool{false, true} {
			alu := Alu{}
			alu.SetCalcType(CALC_DIRECT_A)
			alu.CY.Put(carry)
			alu.CN.Set()

			left, direct, right := alu.Calc(a, 0)
			assert.Equal(a, direct)

			bit := uint8(0)
			if carry {
				bit = 1
			}
			assert.Equal(uint8(direct<<1)|bit, left)
			assert.Equal(uint8(direct>>1)|(bit<<7), right)
		}
	}
}

func TestCalcTypeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", CALC_ADD.String())
	assert.Equal("carry_sub", CALC_CARRY_SUB.String())
	assert.Equal("direct_a", CALC_DIRECT_A.String())
}
