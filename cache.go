// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

// engineCaches groups the memoisation tables used by the apply engine and by
// the analytic algorithms. The teacher library (rudd) hand-rolls open
// hash tables with explicit probing and resize thresholds (see its cache.go
// and primes.go) because it targets a fixed-size slice of structs; here a
// node identifier is already a small, densely-packed integer key, so a plain
// Go map gives the same amortised O(1) lookup with none of the manual
// resizing machinery, following the same "prefer the runtime hashmap"
// convention the teacher documents for its own unique table.
type engineCaches struct {
	apply   map[applyKey]int
	ite     map[iteKey]int
	not     map[int]int
	minsol  map[minsolKey]int
	without map[withoutKey]int
	ifelse  map[ifElseKey]int
	arith   map[arithKey]int
	cmp     map[cmpKey]int
	prob    map[int]interface{}
}

type applyKey struct {
	op   Operator
	a, b int
}

type iteKey struct {
	f, g, h int
}

type arithKey struct {
	op   ArithOp
	a, b int
}

type cmpKey struct {
	op   CmpOp
	a, b int
}

type minsolKey struct {
	n     int
	level int
}

type withoutKey struct {
	n, m int
}

type ifElseKey struct {
	cond, t, f int
}

func (c *engineCaches) init(size int) {
	c.apply = make(map[applyKey]int, size)
	c.ite = make(map[iteKey]int, size)
	c.not = make(map[int]int, size)
	c.minsol = make(map[minsolKey]int, size)
	c.without = make(map[withoutKey]int, size)
	c.ifelse = make(map[ifElseKey]int, size)
	c.arith = make(map[arithKey]int, size)
	c.cmp = make(map[cmpKey]int, size)
	c.prob = make(map[int]interface{}, size)
}

// resetProb clears only the prob cache; the other caches are left as they
// are. Prob memoises in a map of its own for each call and does not read
// this cache.
func (c *engineCaches) resetProb() {
	c.prob = make(map[int]interface{}, len(c.prob))
}
