// SPDX-License-Identifier: MIT

package lcpeng

// ParseLevelK runs the same recognition state machine as ParseLevel1, but
// over a sequence of cores instead of characters: "c[i] = c[j]" and the
// inequalities are the BitRep total order. There is no invalid token at
// this level (the alphabet is closed under composition), so the SSEQ
// interior guard is unconditionally dropped.
//
// Start/End of every emitted core are propagated from the leftmost and
// rightmost constituent core, via composeCore.
func ParseLevelK(cores []Core) []Core {
	n := len(cores)
	if n < 3 {
		return nil
	}

	var out []Core
	lastEmittedEnd := -1 // index into cores, one past the last constituent used

	i := 0
	for i+2 < n {
		ci, ci1, ci2 := cores[i], cores[i+1], cores[i+2]
		cmp01 := ci.Compare(ci1)
		if cmp01 == 0 {
			i++
			continue
		}
		cmp12 := ci1.Compare(ci2)

		var runEnd int // exclusive index into cores, one past the recognition
		recognized := false

		switch {
		case cmp12 < 0:
			// candidate LMIN: ci > ci1 < ci2
			if cmp01 > 0 {
				runEnd = i + 3
				recognized = true
			}
		case cmp12 > 0:
			// candidate LMAX, guarded
			if cmp01 < 0 && i >= 1 && i+3 < n {
				prev := cores[i-1]
				next := cores[i+3]
				if prev.Compare(ci) <= 0 && ci2.Compare(next) >= 0 {
					runEnd = i + 3
					recognized = true
				}
			}
		default:
			// cmp12 == 0: candidate RINT, run of equal cores starting at
			// i+1; the trailing core past the run belongs to the
			// recognition.
			j := i + 3
			for j < n && cores[j].Compare(ci1) == 0 {
				j++
			}
			if j < n {
				runEnd = j + 1
				recognized = true
			}
		}

		if !recognized {
			i++
			continue
		}

		if lastEmittedEnd != -1 && lastEmittedEnd < i {
			bridgeStart := lastEmittedEnd - 1
			bridgeEnd := i + 1
			if bridgeStart >= 0 && bridgeEnd <= n {
				if bridge, err := composeCore(cores[bridgeStart:bridgeEnd]); err == nil {
					out = append(out, bridge)
				}
			}
		}

		core, err := composeCore(cores[i:runEnd])
		if err == nil {
			out = append(out, core)
		}
		lastEmittedEnd = runEnd
		i = runEnd - 2
	}

	return out
}
