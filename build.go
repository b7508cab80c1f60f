// SPDX-License-Identifier: MIT

package lcpeng

// Build parses input at level 1. With opts.ReverseComplement set the
// result describes the reverse-complemented strand: the same core
// sequence Build(ReverseComplement(input)) would yield, with every span
// mirrored back into input's coordinates. Build never fails; a too-short
// input yields an empty container.
func Build(input []byte, opts *BuildOptions) *Container {
	if opts == nil {
		opts = DefaultBuildOptions()
	}
	alpha := ForwardAlphabet()
	if opts.ReverseComplement {
		alpha = ReverseComplementAlphabet()
	}
	cores := ParseLevel1(input, 0, len(input), opts.Offset, alpha, opts.ReverseComplement, true)
	return newContainer(cores, len(cores))
}

// BuildWithOffset is Build with every emitted core's Start/End shifted by
// offset, for assembling a container that represents a slice of a larger
// original string.
func BuildWithOffset(input []byte, offset int, opts *BuildOptions) *Container {
	if opts == nil {
		opts = DefaultBuildOptions()
	}
	o := *opts
	o.Offset = offset
	return Build(input, &o)
}
