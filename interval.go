// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

// Interval represents a closed range [Lo, Hi] of possible probability
// values, used to bound a reliability estimate when some basic event
// probabilities are only known imprecisely. It implements Ring so Prob can
// fold it exactly like a scalar float64, following the same
// `prob<T: Add+Sub+Mul+...>` generalisation the original fault-tree
// algorithms used.
type Interval struct {
	Lo, Hi float64
}

// NewInterval builds an Interval, returning ErrDomain if lo > hi.
func NewInterval(lo, hi float64) (Interval, error) {
	if lo > hi {
		return Interval{}, wrapf(ErrDomain, "invalid interval [%g,%g]: lo > hi", lo, hi)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// Degenerate returns the point interval [v,v].
func Degenerate(v float64) Interval {
	return Interval{Lo: v, Hi: v}
}

func (IntervalRing) Zero() Interval { return Interval{Lo: 0, Hi: 0} }
func (IntervalRing) One() Interval  { return Interval{Lo: 1, Hi: 1} }

func (IntervalRing) Add(x, y Interval) Interval {
	return Interval{Lo: x.Lo + y.Lo, Hi: x.Hi + y.Hi}
}

func (IntervalRing) Sub(x, y Interval) Interval {
	return Interval{Lo: x.Lo - y.Hi, Hi: x.Hi - y.Lo}
}

func (IntervalRing) Mul(x, y Interval) Interval {
	candidates := [4]float64{x.Lo * y.Lo, x.Lo * y.Hi, x.Hi * y.Lo, x.Hi * y.Hi}
	lo, hi := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return Interval{Lo: lo, Hi: hi}
}

// IntervalRing is the Ring instance for Interval arithmetic.
type IntervalRing struct{}
