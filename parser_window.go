// SPDX-License-Identifier: MIT

package lcpeng

// byteWindow is a bounds-checked index+slice view over a byte range. The
// recognition state machine reads positions i-1..i+3 relative to its
// cursor; every access here is a guarded lookup instead of unchecked
// pointer math.
//
// When rc is set the window presents the reverse-complemented view of the
// range: logical index i reads the physical byte begin+end-1-i, so a
// left-to-right scan over logical indices walks the underlying bytes right
// to left, and the reverse-complement code table turns each base into its
// complement. The combination is exactly the forward view of the
// reverse-complemented string, without materializing it.
type byteWindow struct {
	data  []byte
	begin int
	end   int // exclusive
	rc    bool
	alpha *Alphabet
}

func newByteWindow(data []byte, begin, end int, rc bool, alpha *Alphabet) byteWindow {
	return byteWindow{data: data, begin: begin, end: end, rc: rc, alpha: alpha}
}

// inBounds reports whether logical index i lies in [begin, end).
func (w byteWindow) inBounds(i int) bool {
	return i >= w.begin && i < w.end
}

// code returns the alphabet code at logical index i, and whether i was in
// bounds. Out-of-bounds reads return codeInvalid, false rather than
// panicking: the state machine treats an out-of-range neighbor the same
// way it treats an invalid character — as "no recognition here".
func (w byteWindow) code(i int) (int8, bool) {
	if !w.inBounds(i) {
		return codeInvalid, false
	}
	p := i
	if w.rc {
		p = w.begin + w.end - 1 - i
	}
	return w.alpha.Code(w.data[p]), true
}

// span maps a logical half-open range [a,b) to coordinates over the
// underlying bytes: the identity for a forward window, the mirrored range
// for a reverse-complement window.
func (w byteWindow) span(a, b int) (int, int) {
	if !w.rc {
		return a, b
	}
	return w.begin + w.end - b, w.begin + w.end - a
}

// len returns the number of bytes covered by the window.
func (w byteWindow) len() int { return w.end - w.begin }
