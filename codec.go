// SPDX-License-Identifier: MIT

package lcpeng

import (
	"encoding/binary"
	"fmt"
)

// headerSize is the on-disk size of the level+size header (two uint32s).
const headerSize = 4 + 4

// Dump writes level (32-bit LE), size (32-bit LE), then size fixed-width
// core records verbatim. The format is little-endian but not otherwise
// portable; it is a same-host checkpoint/reload format.
func Dump(c *Container) []byte {
	out := make([]byte, headerSize+len(c.cores)*coreRecordSize)
	binary.LittleEndian.PutUint32(out[0:4], uint32(c.level))
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(c.cores)))

	off := headerSize
	for _, core := range c.cores {
		putCoreRecord(out[off:off+coreRecordSize], core)
		off += coreRecordSize
	}
	return out
}

// Load reads a dump produced by Dump. Returns ErrInvalidHeader if the
// header is malformed, ErrTruncatedInput if fewer than size records are
// present.
func Load(data []byte) (*Container, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("lcpeng: header needs %d bytes, got %d: %w", headerSize, len(data), ErrInvalidHeader)
	}

	level := int(binary.LittleEndian.Uint32(data[0:4]))
	size := int(binary.LittleEndian.Uint32(data[4:8]))
	if level < 1 || size < 0 {
		return nil, fmt.Errorf("lcpeng: header level=%d size=%d: %w", level, size, ErrInvalidHeader)
	}

	need := headerSize + size*coreRecordSize
	if len(data) < need {
		return nil, fmt.Errorf("lcpeng: need %d bytes, got %d: %w", need, len(data), ErrTruncatedInput)
	}

	cores := make([]Core, size)
	off := headerSize
	for i := 0; i < size; i++ {
		cores[i] = getCoreRecord(data[off : off+coreRecordSize])
		off += coreRecordSize
	}

	c := acquireContainer()
	c.level = level
	c.cores = cores
	return c, nil
}

func putCoreRecord(b []byte, c Core) {
	binary.LittleEndian.PutUint64(b[0:8], uint64(int64(c.BitSize)))
	binary.LittleEndian.PutUint64(b[8:16], c.BitRep)
	binary.LittleEndian.PutUint32(b[16:20], c.Label)
	binary.LittleEndian.PutUint64(b[20:28], uint64(int64(c.Start)))
	binary.LittleEndian.PutUint64(b[28:36], uint64(int64(c.End)))
}

func getCoreRecord(b []byte) Core {
	return Core{
		BitSize: int(int64(binary.LittleEndian.Uint64(b[0:8]))),
		BitRep:  binary.LittleEndian.Uint64(b[8:16]),
		Label:   binary.LittleEndian.Uint32(b[16:20]),
		Start:   int(int64(binary.LittleEndian.Uint64(b[20:28]))),
		End:     int(int64(binary.LittleEndian.Uint64(b[28:36]))),
	}
}
