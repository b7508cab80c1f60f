// SPDX-License-Identifier: MIT

package lcpeng

// BuildChunked parses a long input in overlapping windows of size window,
// deepening each window to targetLevel before merging it into the
// accumulator. Each window after the first starts one byte before the
// accumulator's second-to-last core, so its leading cores re-recognize the
// accumulator's trailing ones; the merge matches the window's first 0-2
// cores against the accumulator's last 2, by Start. When no overlap tier
// matches, the cursor advances past the next invalid character or past
// the window, whichever comes first, and that window's cores are
// discarded.
//
// Whenever every window holds at least two fully-recognized cores and the
// overlap matches, the merged output is identical to parsing the whole
// input at once.
func BuildChunked(input []byte, targetLevel, window int, opts *ChunkOptions) *Container {
	if opts == nil {
		opts = DefaultChunkOptions()
	}
	if window < 3 {
		window = 3
	}
	alpha := ForwardAlphabet()

	acc := newContainer(nil, 0)
	acc.level = targetLevel
	if targetLevel < 1 {
		acc.level = 1
	}

	i := 0
	for i < len(input) {
		wEnd := i + window
		if wEnd > len(input) {
			wEnd = len(input)
		}

		win := newContainer(ParseLevel1(input, i, wEnd, 0, alpha, false, true), 0)
		win.DeepenTo(targetLevel)

		merged, ok := mergeWindowCores(acc.cores, win.cores)
		win.Release()

		if !ok {
			if opts.Verbose {
				log.WithField("pos", i).Debug("lcpeng: chunked builder found no overlap, advancing cursor")
			}
			next := wEnd
			for p := i; p < wEnd; p++ {
				if !alpha.Valid(input[p]) {
					next = p + 1
					break
				}
			}
			if next <= i {
				next = i + 1
			}
			i = next
			continue
		}

		acc.cores = merged
		if opts.Verbose {
			log.WithField("pos", i).WithField("cores", len(acc.cores)).Debug("lcpeng: chunked builder merged window")
		}
		if wEnd >= len(input) {
			break
		}

		// Restart one byte before the second-to-last accumulated core so
		// the next window can re-recognize the trailing two cores (a core
		// starting exactly at the window edge lacks the left context some
		// recognitions need).
		next := wEnd
		if n := len(acc.cores); n >= 2 {
			next = acc.cores[n-2].Start - 1
		} else if n == 1 {
			next = acc.cores[0].Start - 1
		}
		if next <= i {
			next = wEnd
		}
		i = next
	}

	return acc
}

// mergeWindowCores tries overlap tiers 2, 1, 0, matching win's leading
// cores against acc's trailing cores by Start, and returns the merged
// slice. ok is false when no tier matches, meaning the window must be
// discarded by the caller.
func mergeWindowCores(acc, win []Core) ([]Core, bool) {
	if len(acc) == 0 {
		return append([]Core{}, win...), true
	}
	if len(win) == 0 {
		return acc, true
	}

	last := acc[len(acc)-1]

	if len(acc) >= 2 && len(win) >= 2 {
		secondLast := acc[len(acc)-2]
		if secondLast.Start == win[0].Start && last.Start == win[1].Start {
			return append(acc, win[2:]...), true
		}
	}

	if last.Start == win[0].Start {
		return append(acc, win[1:]...), true
	}

	if win[0].Start >= last.End {
		return append(acc, win...), true
	}

	return nil, false
}
