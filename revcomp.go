// SPDX-License-Identifier: MIT

package lcpeng

// revCompByteTable maps each ASCII byte to its DNA complement, case
// preserved; non-ACGT bytes map to 'N'.
var revCompByteTable = buildRevCompByteTable()

func buildRevCompByteTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 'N'
	}
	pairs := []struct{ a, b byte }{{'A', 'T'}, {'C', 'G'}, {'a', 't'}, {'c', 'g'}}
	for _, p := range pairs {
		t[p.a] = p.b
		t[p.b] = p.a
	}
	return t
}

// ReverseComplement returns the reverse complement of s, using the DNA
// complement rules (A<->T, C<->G, case preserved; anything else maps to
// 'N'). It does not consult the process-wide alphabet tables — those map
// bytes to 2-bit codes for parsing, not bytes to bytes.
func ReverseComplement(s []byte) []byte {
	out := make([]byte, len(s))
	n := len(s)
	for i := 0; i < n; i++ {
		out[n-1-i] = revCompByteTable[s[i]]
	}
	return out
}
