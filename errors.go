// SPDX-License-Identifier: MIT

package lcpeng

import "errors"

// Sentinel errors returned by alphabet initialization, parsing, and the codec.
var (
	// ErrInvalidAlphabet is returned when an alphabet table stream is malformed
	// or assigns a code that does not fit in 2 bits.
	ErrInvalidAlphabet = errors.New("lcpeng: invalid alphabet")
	// ErrInsufficientInput marks a window shorter than the three symbols a
	// recognition needs. The parsers treat the condition as expected and
	// return an empty result; the sentinel exists for callers that want to
	// surface it as an error instead of testing Size() == 0.
	ErrInsufficientInput = errors.New("lcpeng: insufficient input")
	// ErrTruncatedInput is returned by Load when the byte stream ends before
	// the declared number of core records has been read.
	ErrTruncatedInput = errors.New("lcpeng: truncated input")
	// ErrInvalidHeader is returned by Load when the input is too short to
	// hold the level and size header, or when the level is below 1.
	ErrInvalidHeader = errors.New("lcpeng: invalid header")
	// ErrEngineInternal is returned when an internal invariant is violated
	// (e.g. a core constructed with start >= end). Callers can use errors.Is.
	ErrEngineInternal = errors.New("lcpeng: internal engine error")
)
