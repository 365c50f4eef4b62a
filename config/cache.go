// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The animaconf Authors

package config

import "slices"

// pathCache is a fixed-capacity map keyed by config file path, with
// least-recently-used eviction: a plain map plus an access-order slice
// (most recently used last). Not safe for concurrent use; the accessors are
// called from a single control flow.
type pathCache[T any] struct {
	capacity int
	entries  map[string]T
	order    []string
}

func newPathCache[T any](capacity int) *pathCache[T] {
	return &pathCache[T]{
		capacity: capacity,
		entries:  make(map[string]T, capacity),
		order:    make([]string, 0, capacity),
	}
}

// get returns the cached value for key and marks it most recently used.
func (c *pathCache[T]) get(key string) (T, bool) {
	v, ok := c.entries[key]
	if ok {
		c.touch(key)
	}
	return v, ok
}

// put stores value under key, evicting the least-recently-used entry when
// the cache is at capacity.
func (c *pathCache[T]) put(key string, value T) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		c.touch(key)
		return
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = value
	c.order = append(c.order, key)
}

// touch moves key to the most-recently-used end of the order.
func (c *pathCache[T]) touch(key string) {
	if i := slices.Index(c.order, key); i >= 0 {
		c.order = append(slices.Delete(c.order, i, i+1), key)
	}
}

// reset discards all entries.
func (c *pathCache[T]) reset() {
	clear(c.entries)
	c.order = c.order[:0]
}

func (c *pathCache[T]) len() int { return len(c.entries) }
