// SPDX-License-Identifier: MIT

package lcpeng

import (
	"fmt"

	"github.com/spaolacci/murmur3"
)

// labelHashSeed is the fixed seed used for level->=2 label hashing.
const labelHashSeed uint32 = 42

// tagBit marks a core as level-1 (high bit of the 64-bit packed BitRep).
const tagBit uint64 = 1 << 63

// Level-1 field layout below tagBit, low bits first: lastCode(2),
// middleCode(2), firstCode(2), then middleCount in the 57 bits up to the
// tag. middleCount holds distance-2, far larger than any realistic core
// span needs.
const (
	lastCodeShift    = 0
	middleCodeShift  = 2
	firstCodeShift   = 4
	middleCountShift = 6
	codeMask         = 0x3
)

// Core is a bit-packed parsed unit: a substring at level 1, or a span of
// lower-level cores at level >= 2. Equality is defined only on BitRep;
// Label, Start, End are identity/provenance metadata.
type Core struct {
	BitSize int    // significant bits in BitRep, 1..63
	BitRep  uint64 // packed value; bit 63 set means level-1
	Label   uint32 // level-1: low 8 bits of BitRep; level>=2: murmur3 hash
	Start   int    // half-open range over the original input
	End     int
}

// IsLevel1 reports whether the core carries the level-1 tag bit.
func (c Core) IsLevel1() bool { return c.BitRep&tagBit != 0 }

// Compare returns -1, 0, or 1 comparing BitRep as an unsigned integer.
// This is the total order the parsers and DCT compressor use.
func (c Core) Compare(other Core) int {
	switch {
	case c.BitRep < other.BitRep:
		return -1
	case c.BitRep > other.BitRep:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two cores have the same BitRep.
func (c Core) Equal(other Core) bool { return c.BitRep == other.BitRep }

// newLeafCore packs a level-1 core from a character window [start,end) of
// the original input. d = end-start must be >= 3. first/last are the
// codes at the window's ends; middle is a single representative code, the
// first interior symbol, which the 2-bit field stores for the whole
// interior.
func newLeafCore(firstCode, middleCode, lastCode int8, start, end int) (Core, error) {
	d := end - start
	if d < 3 {
		return Core{}, fmt.Errorf("lcpeng: leaf core distance %d < 3: %w", d, ErrEngineInternal)
	}
	if start >= end {
		return Core{}, fmt.Errorf("lcpeng: leaf core start %d >= end %d: %w", start, end, ErrEngineInternal)
	}
	middleCount := uint64(d - 2)
	bitRep := tagBit |
		(middleCount << middleCountShift) |
		(uint64(firstCode&codeMask) << firstCodeShift) |
		(uint64(middleCode&codeMask) << middleCodeShift) |
		(uint64(lastCode&codeMask) << lastCodeShift)

	bitSize := 2 * d
	if bitSize > 63 {
		bitSize = 63
	}

	return Core{
		BitSize: bitSize,
		BitRep:  bitRep,
		Label:   uint32(bitRep & 0xFF),
		Start:   start,
		End:     end,
	}, nil
}

// composeCore builds a level->=2 core from a run of d>=2 lower-level
// cores: concatenate their BitReps right to left (the rightmost
// constituent occupies the low bits), sum their BitSizes, mask out any
// tag bit, clamp BitSize to 63. The label is the murmur3-32 hash of
// (first.Label, penultimate.Label, last.Label, d-2).
func composeCore(run []Core) (Core, error) {
	d := len(run)
	if d < 2 {
		return Core{}, fmt.Errorf("lcpeng: composeCore needs >=2 constituents, got %d: %w", d, ErrEngineInternal)
	}

	var bitRep uint64
	shift := 0
	for i := d - 1; i >= 0; i-- {
		bitRep |= (run[i].BitRep &^ tagBit) << uint(shift)
		shift += run[i].BitSize
	}

	bitSize := 0
	for _, r := range run {
		bitSize += r.BitSize
	}
	if bitSize > 63 {
		bitSize = 63
	}

	label := hashLabel(run[0].Label, run[d-2].Label, run[d-1].Label, uint32(d-2))

	return Core{
		BitSize: bitSize,
		BitRep:  bitRep &^ tagBit,
		Label:   label,
		Start:   run[0].Start,
		End:     run[d-1].End,
	}, nil
}

// hashLabel computes the fixed-seed murmur3-32 hash of the four-word triple
// used for level->=2 core labels.
func hashLabel(firstLabel, penultimateLabel, lastLabel, distanceMinus2 uint32) uint32 {
	var buf [16]byte
	putUint32LE(buf[0:4], firstLabel)
	putUint32LE(buf[4:8], penultimateLabel)
	putUint32LE(buf[8:12], lastLabel)
	putUint32LE(buf[12:16], distanceMinus2)
	return murmur3.Sum32WithSeed(buf[:], labelHashSeed)
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
