// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

// configs holds the tunable initial sizes for a Manager's node store and
// memoisation caches, in the spirit of the teacher library's configs. Unlike
// the teacher, a Manager never needs to resize its unique table by hand: it
// is a native Go map, which grows on its own, so these options only ever
// affect the initial capacity passed to make() and have no effect on
// correctness.
type configs struct {
	nodesize  int
	cachesize int
}

func defaultConfigs() configs {
	return configs{
		nodesize:  1024,
		cachesize: 1024,
	}
}

// Nodesize sets the initial capacity of the node store. Use it to avoid
// reallocations when the expected diagram size is known ahead of time.
func Nodesize(n int) func(*configs) {
	return func(c *configs) {
		if n > 0 {
			c.nodesize = n
		}
	}
}

// Cachesize sets the initial capacity of the unique table and of the apply
// and algorithm memoisation caches.
func Cachesize(n int) func(*configs) {
	return func(c *configs) {
		if n > 0 {
			c.cachesize = n
		}
	}
}
