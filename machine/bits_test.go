package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagPolarity(t *testing.T) {
	assert := assert.New(t)

	var flag Flag
	assert.False(flag.Get())

	flag.Set()
	assert.True(flag.Get())

	flag.Clear()
	assert.False(flag.Get())

	flag.Put(true)
	assert.True(flag.Get())
	flag.Put(false)
	assert.False(flag.Get())
}

func TestNegFlagPolarity(t *testing.T) {
	assert := assert.New(t)

	var flag NegFlag

	// Asserted condition is stored 0.
	flag.Clear()
	assert.True(flag.Get())
	assert.False(flag.Asserted())

	flag.Set()
	assert.False(flag.Get())
	assert.True(flag.Asserted())

	// Put writes raw storage.
	flag.Put(true)
	assert.True(flag.Get())
	assert.False(flag.Asserted())
	flag.Put(false)
	assert.True(flag.Asserted())
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	var reg Register
	assert.Equal(uint8(0), reg.Get())

	reg.Set(0xA5)
	assert.Equal(uint8(0xA5), reg.Get())
}
