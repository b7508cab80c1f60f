// SPDX-License-Identifier: MIT

package lcpeng

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
)

// InitAlphabetFromStream replaces the global tables from a stream of lines
// "<ch> <fwd> <rc>" (whitespace-separated, one entry per line, blank lines
// and "#"-prefixed comments ignored). Returns ErrInvalidAlphabet if any code
// exceeds 2 bits (>3) or a line is malformed; on failure the process-wide
// tables are left unchanged.
func InitAlphabetFromStream(data []byte, verbose bool) error {
	var fwd, rc [128]int8
	for i := range fwd {
		fwd[i] = codeInvalid
		rc[i] = codeInvalid
	}
	var chars [4]byte
	var rcChars [4]byte
	seen := 0

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := bytes.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("lcpeng: alphabet line %d: expected 3 fields, got %d: %w", lineNo, len(fields), ErrInvalidAlphabet)
		}
		if len(fields[0]) != 1 {
			return fmt.Errorf("lcpeng: alphabet line %d: character field must be one byte: %w", lineNo, ErrInvalidAlphabet)
		}
		ch := fields[0][0]
		fwdCode, err := strconv.Atoi(string(fields[1]))
		if err != nil {
			return fmt.Errorf("lcpeng: alphabet line %d: bad forward code: %w", lineNo, ErrInvalidAlphabet)
		}
		rcCode, err := strconv.Atoi(string(fields[2]))
		if err != nil {
			return fmt.Errorf("lcpeng: alphabet line %d: bad rc code: %w", lineNo, ErrInvalidAlphabet)
		}
		if fwdCode < 0 || fwdCode > maxCode || rcCode < 0 || rcCode > maxCode {
			return fmt.Errorf("lcpeng: alphabet line %d: code out of 2-bit range: %w", lineNo, ErrInvalidAlphabet)
		}
		if ch >= 128 {
			return fmt.Errorf("lcpeng: alphabet line %d: character out of ASCII range: %w", lineNo, ErrInvalidAlphabet)
		}
		fwd[ch] = int8(fwdCode)
		rc[ch] = int8(rcCode)
		chars[fwdCode] = ch
		rcChars[rcCode] = ch
		seen++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("lcpeng: alphabet stream read: %w", err)
	}
	if seen == 0 {
		return fmt.Errorf("lcpeng: alphabet stream had no entries: %w", ErrInvalidAlphabet)
	}

	forwardTable = Alphabet{codes: fwd, chars: chars}
	rcTable = Alphabet{codes: rc, chars: rcChars}
	if verbose {
		log.WithField("entries", seen).Info("lcpeng: alphabet initialized from stream")
	}
	return nil
}
