// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package mss implements the analytic core of a reliability-modeling toolkit
built around decision diagrams.

A Manager owns a unique table of canonical diagram nodes shared by every
expression built through it: fault trees, RPN expressions, and hand-built
Boolean or integer-valued functions all compile down to the same tagged-variant
node representation (Zero, One, Undet, Value(v), or NonTerminal) and share the
same variable ordering.

Two families of diagram coexist in a Manager: Boolean diagrams, whose
terminals are Zero/One/Undet, and integer-valued diagrams, whose terminals are
Value(v)/Undet. A Node remembers which family it belongs to so that Apply,
Ite, and the comparison operators can reject an operand of the wrong kind
(KindMismatch) instead of silently producing nonsense.

The package is a direct adaptation of the data structures and algorithms found
in the BDD library rudd (github.com/dalzilio/rudd), generalized from pure
Boolean Binary Decision Diagrams to the multi-valued, two-kind decision
diagrams needed to support reliability computations: probability evaluation
over an arbitrary numeric ring, minimal cut-set/path-set extraction via a
setdiff-based "without" operator, and path enumeration.
*/
package mss
