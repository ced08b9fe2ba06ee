// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package microcode assembles micro-program source into the 256x24
// control store of a COP2000 machine.
//
// Each source line yields one micro-instruction. An item is either a
// control signal name, which asserts that signal in the word, or
// '=value', which stores a raw 24-bit word. Lines may be prefixed
// with an explicit 'addr:' micro-address; otherwise words are placed
// sequentially. '.equ NAME value' defines an equate, and any value
// may be a '$(...)' expression evaluated at assembly time with all
// equates predefined.
package microcode

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cop2k/machine"
)

// IdleWord is the control vector with every signal deasserted: the
// active-low bits store 1, FEN and CN store 0, and bit 23 is reserved
// low.
const IdleWord = 0x7FFCFF

// signalBits maps control signal names to their bit position in the
// micro-instruction word.
var signalBits = map[string]int{
	"s0":    0,
	"s1":    1,
	"s2":    2,
	"aen":   3,
	"wen":   4,
	"x0":    5,
	"x1":    6,
	"x2":    7,
	"fen":   8,
	"cn":    9,
	"rwr":   10,
	"rrd":   11,
	"sten":  12,
	"outen": 13,
	"maroe": 14,
	"maren": 15,
	"elp":   16,
	"eint":  17,
	"iren":  18,
	"emen":  19,
	"pcoe":  20,
	"emrd":  21,
	"emwr":  22,
}

// activeHigh marks the signals asserted by storing 1.
var activeHigh = map[string]bool{
	"fen": true,
	"cn":  true,
}

// Loader is a single pass assembler for micro-program source.
type Loader struct {
	Verbose bool              // If set, verbosely logs assembled words.
	Equate  map[string]string // Map of equates.
}

// Image is an assembled micro-program: the words to store and the
// addresses they occupy.
type Image struct {
	Words   [256]machine.MicroWord
	Present [256]bool
}

// Program stores the image into the machine's micro-program memory
// through the bypass accessors.
func (img *Image) Program(m *machine.Machine) (err error) {
	for addr := range img.Words {
		if !img.Present[addr] {
			continue
		}

		err = m.UM.SetAt(addr, uint32(img.Words[addr]))
		if err != nil {
			return
		}
	}

	return
}

// Parse assembles micro-program source into an image.
func (ld *Loader) Parse(reader io.Reader) (img *Image, err error) {
	if ld.Equate == nil {
		ld.Equate = map[string]string{}
	}

	img = &Image{}
	next := 0
	lineno := 0

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		text := line
		if n := strings.IndexByte(text, ';'); n >= 0 {
			text = text[:n]
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		err = ld.parseLine(img, &next, fields)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
	}

	err = scanner.Err()
	return
}

// parseLine assembles a single non-blank source line.
func (ld *Loader) parseLine(img *Image, next *int, fields []string) (err error) {
	if fields[0] == ".equ" {
		if len(fields) != 3 {
			return ErrEquateSyntax
		}
		name := fields[1]
		if _, ok := ld.Equate[name]; ok {
			return ErrEquateDuplicate
		}
		ld.Equate[name] = fields[2]
		return
	}

	if strings.HasSuffix(fields[0], ":") {
		var addr uint32
		addr, err = ld.valueOf(strings.TrimSuffix(fields[0], ":"))
		if err != nil {
			return
		}
		if addr > 255 {
			return ErrAddrRange
		}
		*next = int(addr)

		fields = fields[1:]
		if len(fields) == 0 {
			return
		}
	}

	if *next > 255 {
		return ErrAddrRange
	}

	word := uint32(IdleWord)
	for _, field := range fields {
		if strings.HasPrefix(field, "=") {
			if len(fields) != 1 {
				return ErrWordSyntax
			}
			word, err = ld.valueOf(field[1:])
			if err != nil {
				return
			}
			if word > machine.MicroWordMask {
				return ErrWordRange
			}
			break
		}

		name := strings.ToLower(field)
		bit, ok := signalBits[name]
		if !ok {
			return ErrUnknownSignal(field)
		}
		if activeHigh[name] {
			word |= 1 << bit
		} else {
			word &^= 1 << bit
		}
	}

	if ld.Verbose {
		log.Printf("microcode: %02x: %06x", *next, word)
	}

	img.Words[*next] = machine.MicroWord(word)
	img.Present[*next] = true
	*next++
	return
}

// valueOf returns the value of a simple word: an equate, a numeric
// literal, or a $(...) expression.
func (ld *Loader) valueOf(word string) (value uint32, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return ld.parenEval(word[2 : len(word)-1])
	}

	if equ, ok := ld.Equate[word]; ok {
		word = equ
	}

	v64, err := strconv.ParseUint(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	return
}

// parenEval does assembly-time $(...) evaluations.
func (ld *Loader) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ld.Equate {
		var value32 uint32
		value32, err = ld.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xffffffff {
		err = ErrParseExpression(expr)
		return
	}

	value = uint32(st_int64)
	return
}
