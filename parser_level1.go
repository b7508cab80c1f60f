// SPDX-License-Identifier: MIT

package lcpeng

// ParseLevel1 scans data[begin:end] and emits a core for every LMIN, LMAX,
// RINT, and SSEQ recognition, in left-to-right order. alpha maps bytes to
// 2-bit codes and offset is added to every emitted core's Start/End.
//
// The four recognitions, with c[i] the code at position i:
//
//   - LMIN: c[i] > c[i+1] < c[i+2], both strict; covers [i, i+3).
//   - LMAX: c[i] < c[i+1] > c[i+2] strict, guarded by c[i-1] <= c[i] and
//     c[i+2] >= c[i+3]; covers [i, i+3).
//   - RINT: c[i] differs from a maximal run of r >= 2 equal codes starting
//     at i+1, and a valid trailing code follows the run; covers the run
//     and both flanks, [i, i+2+r).
//   - SSEQ: when the previous core ended at p before the next recognition
//     at i, a bridging core over [p-1, i+1) is emitted first, one position
//     of overlap on each side, unless an invalid character lies strictly
//     inside the bridge.
//
// After a core is emitted the cursor restarts at its end minus two, so
// recognitions may overlap by up to two positions. Invalid codes reset run
// detection and are remembered for the SSEQ interior check. sseqGuard
// enables that check; the level-k parser never needs it because its
// alphabet has no invalid token.
//
// When rc is set the scan runs over the reverse-complemented view of the
// range and the emitted cores are returned in ascending order of their
// original-string Start, the reverse of the scan order. The result is the
// same core sequence a forward parse of the reverse-complemented string
// would produce, with spans mirrored back into the caller's frame.
//
// A window shorter than 3 symbols yields an empty result.
func ParseLevel1(data []byte, begin, end, offset int, alpha *Alphabet, rc, sseqGuard bool) []Core {
	if end-begin < 3 {
		return nil
	}

	w := newByteWindow(data, begin, end, rc, alpha)
	var cores []Core

	lastEmittedEnd := -1 // end of the previously emitted core, in logical coordinates
	lastInvalid := begin - 1

	readCode := func(idx int) (int8, bool) {
		c, ok := w.code(idx)
		if ok && c == codeInvalid {
			lastInvalid = idx
		}
		return c, ok
	}

	emit := func(firstCode, middleCode, lastCode int8, a, b int) {
		pa, pb := w.span(a, b)
		if core, err := newLeafCore(firstCode, middleCode, lastCode, pa+offset, pb+offset); err == nil {
			cores = append(cores, core)
		}
	}

	i := begin
	for i+2 < end {
		ci, _ := readCode(i)
		if ci == codeInvalid {
			i++
			continue
		}
		ci1, _ := readCode(i + 1)
		if ci1 == codeInvalid {
			i++
			continue
		}
		if ci == ci1 {
			// no core can begin at i: short-circuit.
			i++
			continue
		}
		ci2, ok2 := readCode(i + 2)
		if !ok2 || ci2 == codeInvalid {
			i++
			continue
		}

		var coreEnd int
		recognized := false
		var firstCode, middleCode, lastCode int8

		switch {
		case ci1 < ci2:
			// candidate LMIN: c[i] > c[i+1] < c[i+2]
			if ci > ci1 {
				coreEnd = i + 3
				recognized = true
				firstCode, middleCode, lastCode = ci, ci1, ci2
			}
		case ci1 > ci2:
			// candidate LMAX, guarded
			if ci < ci1 && i >= begin+1 && i+3 < end {
				prev, prevOK := readCode(i - 1)
				next, nextOK := readCode(i + 3)
				if prevOK && nextOK && prev != codeInvalid && next != codeInvalid &&
					prev <= ci && ci2 >= next {
					coreEnd = i + 3
					recognized = true
					firstCode, middleCode, lastCode = ci, ci1, ci2
				}
			}
		default:
			// ci1 == ci2: candidate RINT, run starting at i+1.
			j := i + 3
			for {
				cj, jOK := readCode(j)
				if !jOK || cj != ci1 {
					break
				}
				j++
			}
			// j is the first position past the run; the trailing flank
			// there belongs to the core.
			trailing, trailOK := readCode(j)
			if trailOK && trailing != codeInvalid {
				coreEnd = j + 1
				recognized = true
				firstCode, middleCode, lastCode = ci, ci1, trailing
			}
		}

		if !recognized {
			i++
			continue
		}

		if lastEmittedEnd != -1 && lastEmittedEnd < i {
			bridgeStart := lastEmittedEnd - 1
			bridgeEnd := i + 1
			interiorClear := !sseqGuard || lastInvalid <= bridgeStart || lastInvalid >= bridgeEnd
			if bridgeStart >= begin && bridgeEnd <= end && interiorClear {
				bf, _ := readCode(bridgeStart)
				bl, _ := readCode(bridgeEnd - 1)
				bm, _ := readCode(bridgeStart + 1)
				if bf != codeInvalid && bl != codeInvalid && bm != codeInvalid {
					emit(bf, bm, bl, bridgeStart, bridgeEnd)
				}
			}
		}

		emit(firstCode, middleCode, lastCode, i, coreEnd)
		lastEmittedEnd = coreEnd
		i = coreEnd - 2
	}

	if rc {
		for a, b := 0, len(cores)-1; a < b; a, b = a+1, b-1 {
			cores[a], cores[b] = cores[b], cores[a]
		}
	}

	return cores
}
