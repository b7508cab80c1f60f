// SPDX-License-Identifier: MIT

package lcpeng

// coreRecordSize is the on-disk/in-memory size of one Core record, used by
// MemSize and the binary codec: BitSize(int64)+BitRep(uint64)+Label(uint32)
// +Start(int64)+End(int64), each written as a fixed-width field.
const coreRecordSize = 8 + 8 + 4 + 8 + 8

// containerBaseSize is the fixed overhead MemSize charges regardless of
// core count (the level field plus slice header bookkeeping).
const containerBaseSize = 16

// Container holds one level of a parse: a level number and an ordered,
// growable sequence of cores. It is exclusively owned by one caller for
// its lifetime; nothing in the engine shares or locks it.
type Container struct {
	level int
	cores []Core
}

// newContainer builds a container at level 1 holding a copy of cores,
// with capHint as an allocation pacing hint.
func newContainer(cores []Core, capHint int) *Container {
	c := acquireContainer()
	c.level = 1
	need := len(cores)
	if capHint > need {
		need = capHint
	}
	if cap(c.cores) < need {
		c.cores = make([]Core, len(cores), need)
	} else {
		c.cores = c.cores[:len(cores)]
	}
	copy(c.cores, cores)
	return c
}

// Level returns the container's current level (>=1).
func (c *Container) Level() int { return c.level }

// Cores returns the container's cores in input order. The returned slice
// aliases the container's internal storage; callers must not retain it
// across a Deepen call.
func (c *Container) Cores() []Core { return c.cores }

// Size returns the number of cores currently held.
func (c *Container) Size() int { return len(c.cores) }

// MemSize returns constant overhead plus len(cores)*sizeof(core record).
func (c *Container) MemSize() int {
	return containerBaseSize + len(c.cores)*coreRecordSize
}

// Equal reports whether two containers have the same level, the same
// number of cores, and pairwise-equal BitRep values. Label, Start, and
// End are provenance metadata and do not participate.
func Equal(a, b *Container) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.level != b.level || len(a.cores) != len(b.cores) {
		return false
	}
	for i := range a.cores {
		if !a.cores[i].Equal(b.cores[i]) {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func NotEqual(a, b *Container) bool { return !Equal(a, b) }

// DeepenOnce runs one DCT + re-parse pass. It reports whether progress
// was made; a false result means the container was too small to deepen
// further (size < DCTIterationCount+1), in which case the level is still
// incremented and the container becomes empty.
func (c *Container) DeepenOnce() bool {
	if len(c.cores) < DCTIterationCount+1 {
		c.cores = c.cores[:0]
		c.level++
		return false
	}

	if err := DCTCompress(c.cores); err != nil {
		c.cores = c.cores[:0]
		c.level++
		return false
	}

	next := ParseLevelK(c.cores[DCTIterationCount:])
	c.cores = append(c.cores[:0], next...)
	c.level++
	return true
}

// DeepenTo repeatedly calls DeepenOnce until either level == target or a
// call reports no progress. Returns whether target was reached. A target
// at or below the container's current level is a no-op that always
// returns false.
func (c *Container) DeepenTo(target int) bool {
	if target <= c.level {
		return false
	}
	for c.level < target {
		if !c.DeepenOnce() {
			return false
		}
	}
	return c.level == target
}

// Release returns the container to the internal pool. The container must
// not be used afterward.
func (c *Container) Release() {
	releaseContainer(c)
}
