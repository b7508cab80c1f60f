// SPDX-License-Identifier: MIT

package lcpeng

import (
	"errors"
	"testing"
)

func TestNewLeafCoreRejectsShortSpan(t *testing.T) {
	if _, err := newLeafCore(0, 1, 2, 0, 2); !errors.Is(err, ErrEngineInternal) {
		t.Fatalf("want ErrEngineInternal, got %v", err)
	}
}

func TestNewLeafCoreBitLayout(t *testing.T) {
	// LMIN-shaped core over "GAC" (G=2,A=0,C=1), start=0 end=3.
	c, err := newLeafCore(2, 0, 1, 0, 3)
	if err != nil {
		t.Fatalf("newLeafCore: %v", err)
	}
	if !c.IsLevel1() {
		t.Error("expected level-1 tag bit set")
	}
	if c.BitRep&^tagBit != 97 {
		t.Errorf("BitRep low bits = %d, want 97", c.BitRep&^tagBit)
	}
	if c.Label != 97 {
		t.Errorf("Label = %d, want 97", c.Label)
	}
	if c.BitSize != 6 {
		t.Errorf("BitSize = %d, want 6", c.BitSize)
	}
	if c.Start != 0 || c.End != 3 {
		t.Errorf("Start/End = %d/%d, want 0/3", c.Start, c.End)
	}
}

func TestCoreEqualAndCompare(t *testing.T) {
	a, _ := newLeafCore(0, 1, 2, 0, 3)
	b, _ := newLeafCore(0, 1, 2, 10, 13)
	c, _ := newLeafCore(0, 1, 3, 20, 23)

	if !a.Equal(b) {
		t.Error("cores with identical fields but different spans should be Equal")
	}
	if a.Equal(c) {
		t.Error("cores with different last code should not be Equal")
	}
	if a.Compare(b) != 0 {
		t.Errorf("Compare(a,b) = %d, want 0", a.Compare(b))
	}
	if a.Compare(c) >= 0 {
		t.Errorf("Compare(a,c) = %d, want < 0 (c has larger last code)", a.Compare(c))
	}
}

func TestComposeCoreRejectsShortRun(t *testing.T) {
	one, _ := newLeafCore(0, 1, 2, 0, 3)
	if _, err := composeCore([]Core{one}); !errors.Is(err, ErrEngineInternal) {
		t.Fatalf("want ErrEngineInternal, got %v", err)
	}
}

func TestComposeCoreDeterministicAndSpans(t *testing.T) {
	a, _ := newLeafCore(2, 0, 1, 0, 3)
	b, _ := newLeafCore(0, 1, 2, 3, 6)

	c1, err := composeCore([]Core{a, b})
	if err != nil {
		t.Fatalf("composeCore: %v", err)
	}
	c2, err := composeCore([]Core{a, b})
	if err != nil {
		t.Fatalf("composeCore: %v", err)
	}

	if !c1.Equal(c2) || c1.Label != c2.Label {
		t.Error("composeCore must be deterministic for identical input")
	}
	if c1.IsLevel1() {
		t.Error("composed core must not carry the level-1 tag")
	}
	if c1.Start != a.Start || c1.End != b.End {
		t.Errorf("composed span = [%d,%d), want [%d,%d)", c1.Start, c1.End, a.Start, b.End)
	}
	if c1.BitSize != a.BitSize+b.BitSize {
		t.Errorf("composed BitSize = %d, want %d", c1.BitSize, a.BitSize+b.BitSize)
	}

	d, _ := newLeafCore(0, 1, 3, 3, 6)
	c3, err := composeCore([]Core{a, d})
	if err != nil {
		t.Fatalf("composeCore: %v", err)
	}
	if c1.Equal(c3) {
		t.Error("composing different constituents should not produce equal cores")
	}
}
