package machine

import (
	"errors"

	"github.com/ezrec/cop2k/translate"
)

var f = translate.From

var (
	// Bus errors
	ErrBusConflict = errors.New(f("bus already has a writer"))
	ErrBusNoWriter = errors.New(f("bus has no writer"))

	// Bypass accessor errors
	ErrAddressRange = errors.New(f("address out of range"))
	ErrValueRange   = errors.New(f("value out of range"))
)
