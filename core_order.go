// SPDX-License-Identifier: MIT

package lcpeng

// Less reports whether c sorts before other under the BitRep total order.
func (c Core) Less(other Core) bool { return c.Compare(other) < 0 }

// LessOrEqual reports whether c sorts at or before other.
func (c Core) LessOrEqual(other Core) bool { return c.Compare(other) <= 0 }

// Greater reports whether c sorts after other under the BitRep total order.
func (c Core) Greater(other Core) bool { return c.Compare(other) > 0 }

// GreaterOrEqual reports whether c sorts at or after other.
func (c Core) GreaterOrEqual(other Core) bool { return c.Compare(other) >= 0 }
