// SPDX-License-Identifier: MIT

package lcpeng

import "fmt"

// codeInvalid is the sentinel for a byte with no alphabet entry.
const codeInvalid int8 = -1

// maxCode is the largest code value a 2-bit alphabet can hold.
const maxCode = 3

// Alphabet is a read-only view over one of the two process-wide code
// tables (forward or reverse-complement). The level-1 parser takes it as
// a parameter so that one state machine serves both strands.
type Alphabet struct {
	codes [128]int8
	chars [4]byte
}

// forwardTable and rcTable are process-wide, written once at startup by
// InitAlphabetDefault or InitAlphabetFromStream, and read-only thereafter.
// Concurrent readers are safe; concurrent writers are not — callers who
// need a dynamic alphabet must serialize initialization themselves.
var (
	forwardTable = Alphabet{codes: defaultForwardCodes(), chars: [4]byte{'A', 'C', 'G', 'T'}}
	rcTable      = Alphabet{codes: defaultRCCodes(), chars: [4]byte{'T', 'G', 'C', 'A'}}
)

func defaultForwardCodes() [128]int8 {
	var t [128]int8
	for i := range t {
		t[i] = codeInvalid
	}
	t['A'], t['a'] = 0, 0
	t['C'], t['c'] = 1, 1
	t['G'], t['g'] = 2, 2
	t['T'], t['t'] = 3, 3
	return t
}

func defaultRCCodes() [128]int8 {
	var t [128]int8
	for i := range t {
		t[i] = codeInvalid
	}
	// A<->T, C<->G: reverse-complement code of A is T's forward code, etc.
	t['A'], t['a'] = 3, 3
	t['T'], t['t'] = 0, 0
	t['C'], t['c'] = 2, 2
	t['G'], t['g'] = 1, 1
	return t
}

// InitAlphabetDefault fills the two global tables with the DNA default
// (A=0, C=1, G=2, T=3; lowercase accepted; rc: A<->T, C<->G).
func InitAlphabetDefault(verbose bool) {
	forwardTable = Alphabet{codes: defaultForwardCodes(), chars: [4]byte{'A', 'C', 'G', 'T'}}
	rcTable = Alphabet{codes: defaultRCCodes(), chars: [4]byte{'T', 'G', 'C', 'A'}}
	if verbose {
		log.Info("lcpeng: alphabet initialized with default DNA table")
	}
}

// ForwardAlphabet returns the process-wide forward code table.
func ForwardAlphabet() *Alphabet { return &forwardTable }

// ReverseComplementAlphabet returns the process-wide reverse-complement
// code table.
func ReverseComplementAlphabet() *Alphabet { return &rcTable }

// Code returns the code for byte b, or codeInvalid if b has no entry.
func (a *Alphabet) Code(b byte) int8 {
	if b >= 128 {
		return codeInvalid
	}
	return a.codes[b]
}

// Valid reports whether byte b has a valid code in this alphabet.
func (a *Alphabet) Valid(b byte) bool {
	return a.Code(b) != codeInvalid
}

// Char returns the canonical character for a valid code (0..3).
func (a *Alphabet) Char(code int8) (byte, error) {
	if code < 0 || int(code) > maxCode {
		return 0, fmt.Errorf("lcpeng: code %d out of range: %w", code, ErrInvalidAlphabet)
	}
	return a.chars[code], nil
}
