// SPDX-License-Identifier: MIT

package lcpeng

import (
	"errors"
	"testing"
)

func TestDCTCompressRejectsTooFewCores(t *testing.T) {
	one, _ := newLeafCore(0, 1, 2, 0, 3)
	if err := DCTCompress([]Core{one}); !errors.Is(err, ErrEngineInternal) {
		t.Fatalf("want ErrEngineInternal, got %v", err)
	}
}

// TestDctPairLevel1FieldBranches walks the four aligned level-1 fields in
// comparison order: last code, middle code, middle run length, first code.
// Each branch encodes 2k + b where k is the field's index from the right
// and b is the low bit of R's field.
func TestDctPairLevel1FieldBranches(t *testing.T) {
	base, _ := newLeafCore(2, 0, 1, 0, 3) // GAC

	cases := []struct {
		name string
		r    Core
		want uint64
	}{
		{"last differs", mustLeaf(t, 2, 0, 3, 3, 6), 0b001},  // R last = T
		{"middle differs", mustLeaf(t, 2, 1, 1, 3, 6), 0b011}, // R middle = C
		{"count differs", mustLeaf(t, 2, 0, 1, 3, 7), 0b100},  // R spans 4, count = 2
		{"first differs", mustLeaf(t, 3, 0, 1, 3, 6), 0b111},  // R first = T
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := dctPairLevel1(base, tc.r)
			if out.BitRep != tc.want {
				t.Errorf("BitRep = %#b, want %#b", out.BitRep, tc.want)
			}
			if out.BitSize != requiredBitSize(tc.want) {
				t.Errorf("BitSize = %d, want %d", out.BitSize, requiredBitSize(tc.want))
			}
			if out.IsLevel1() {
				t.Error("compressed core must not keep the level-1 tag")
			}
			if out.Start != base.Start {
				t.Errorf("Start = %d, want inherited %d", out.Start, base.Start)
			}
		})
	}
}

func mustLeaf(t *testing.T, first, middle, last int8, start, end int) Core {
	t.Helper()
	c, err := newLeafCore(first, middle, last, start, end)
	if err != nil {
		t.Fatalf("newLeafCore: %v", err)
	}
	return c
}

func TestDctPairLevel1LastCodeDiffers(t *testing.T) {
	l, _ := newLeafCore(0, 1, 2, 0, 3)
	r, _ := newLeafCore(0, 1, 3, 3, 6)

	out := dctPairLevel1(l, r)

	if out.BitRep != 1 {
		t.Errorf("BitRep = %d, want 1", out.BitRep)
	}
	if out.BitSize != 2 {
		t.Errorf("BitSize = %d, want 2", out.BitSize)
	}
	if out.Start != l.Start {
		t.Errorf("Start = %d, want %d", out.Start, l.Start)
	}
}

func TestDctPairLevel1EqualCoresUseCanonicalMarker(t *testing.T) {
	l, _ := newLeafCore(0, 1, 2, 0, 3)
	r, _ := newLeafCore(0, 1, 2, 3, 6)

	out := dctPairLevel1(l, r)

	if out.BitRep != uint64(2*r.BitSize) {
		t.Errorf("BitRep = %d, want %d", out.BitRep, 2*r.BitSize)
	}
	if out.BitSize != requiredBitSize(uint64(2*r.BitSize)) {
		t.Errorf("BitSize = %d, want %d", out.BitSize, requiredBitSize(uint64(2*r.BitSize)))
	}
}

func TestDctPairGenericDiffering(t *testing.T) {
	l := Core{BitRep: 5, BitSize: 3}
	r := Core{BitRep: 6, BitSize: 3, Start: 10}

	out := dctPairGeneric(l, r)

	if out.BitRep != 0 {
		t.Errorf("BitRep = %d, want 0", out.BitRep)
	}
	if out.BitSize != 2 {
		t.Errorf("BitSize = %d, want 2", out.BitSize)
	}
	if out.Start != l.Start {
		t.Errorf("Start = %d, want %d", out.Start, l.Start)
	}
}

func TestDctPairGenericEqual(t *testing.T) {
	l := Core{BitRep: 5, BitSize: 3}
	r := Core{BitRep: 5, BitSize: 4, Start: 10}

	out := dctPairGeneric(l, r)

	if out.BitRep != 8 {
		t.Errorf("BitRep = %d, want 8", out.BitRep)
	}
	if out.BitSize != 4 {
		t.Errorf("BitSize = %d, want 4", out.BitSize)
	}
}

func TestRequiredBitSizeFloor(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3} {
		if got := requiredBitSize(v); got != 2 {
			t.Errorf("requiredBitSize(%d) = %d, want 2", v, got)
		}
	}
	if got := requiredBitSize(8); got != 4 {
		t.Errorf("requiredBitSize(8) = %d, want 4", got)
	}
}

func TestDCTCompressLeavesPrefixUntouched(t *testing.T) {
	a, _ := newLeafCore(2, 0, 1, 0, 3)
	b, _ := newLeafCore(0, 1, 2, 3, 6)
	c, _ := newLeafCore(0, 1, 3, 6, 9)
	cores := []Core{a, b, c}

	if err := DCTCompress(cores); err != nil {
		t.Fatalf("DCTCompress: %v", err)
	}
	if cores[0].BitRep != a.BitRep {
		t.Error("DCTCompress must leave cores[0] untouched for DCTIterationCount == 1")
	}
}
