// SPDX-License-Identifier: MIT

package lcpeng

import "sync"

// containerPool recycles Container values so repeated build/release
// cycles reuse the cores backing array.
var containerPool = sync.Pool{
	New: func() any {
		return &Container{}
	},
}

// acquireContainer acquires a zeroed container from the pool.
func acquireContainer() *Container {
	c := containerPool.Get().(*Container)
	c.level = 0
	c.cores = c.cores[:0]
	return c
}

// releaseContainer clears and returns a container to the pool.
func releaseContainer(c *Container) {
	if c == nil {
		return
	}
	c.level = 0
	c.cores = c.cores[:0]
	containerPool.Put(c)
}
