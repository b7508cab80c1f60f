// SPDX-License-Identifier: MIT

/*
Package lcpeng implements hierarchical Locally Consistent Parsing (LCP).

It converts a string over a small alphabet (e.g. DNA bases A/C/G/T) into a
compact sequence of cores — substrings whose boundaries are determined only
by a bounded local neighborhood — then deepens the parse so that each level
is itself a sequence of cores built over the previous level's cores.

# Build

	lcpeng.InitAlphabetDefault(false)
	c := lcpeng.Build([]byte("GGGACCTGGTGACCCCAGCCCACGACAGCCAAGCGCCAGCTGAGCTCAGGTGTGAGGAGATCACAGTCCT"), nil)

# Deepen

	reached := c.DeepenTo(3)

# Chunked input

	c := lcpeng.BuildChunked(longInput, 3, 4096, nil)

# Persist

	data := lcpeng.Dump(c)
	c2, err := lcpeng.Load(data)
*/
package lcpeng
