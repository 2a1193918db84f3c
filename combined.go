// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

// Var registers a fresh Boolean variable and returns the diagram that is
// true exactly when the variable holds, i.e. the two-terminal "atom"
// NonTerminal{header, [Zero, One]}. Calling Var twice with the same label
// returns the same node, since MakeHeader is itself idempotent on the
// label.
func (m *Manager) Var(label string) (Node, error) {
	h, err := m.MakeHeader(label, 2)
	if err != nil {
		return Node{}, err
	}
	id, err := m.makeNonTerminal(h, []int{idZero, idOne})
	if err != nil {
		return Node{}, err
	}
	return Node{id: id, kind: KindBool}, nil
}

// DefVar registers a fresh multi-valued variable taking exactly the given
// values (child index i maps to values[i], following the "identity map"
// construction of gen_var in the original fault-tree compiler) and returns
// the integer-valued diagram that reads off the variable's current value.
// DefVar returns ErrArityMismatch for fewer than two values; it does not
// check that the values are distinct.
func (m *Manager) DefVar(label string, values []int64) (Node, error) {
	if len(values) < 2 {
		return Node{}, wrapf(ErrArityMismatch, "variable %q needs at least 2 values, got %d", label, len(values))
	}
	h, err := m.MakeHeader(label, len(values))
	if err != nil {
		return Node{}, err
	}
	h.values = values
	children := make([]int, len(values))
	for i, v := range values {
		children[i] = m.valueID(v)
	}
	id, err := m.makeNonTerminal(h, children)
	if err != nil {
		return Node{}, err
	}
	return Node{id: id, kind: KindInt}, nil
}

// IfElse is the C5 bridging operator: cond must be a Boolean diagram, and t,
// f must be two diagrams of the same kind (either both Boolean or both
// integer-valued). It generalises Ite to let a Boolean condition select
// between two integer-valued branches, sharing the same memoised ite3
// recursion (see apply.go) since the recursion never inspects the kind of g
// or h, only their structure.
func (m *Manager) IfElse(cond, t, f Node) (Node, error) {
	if cond.kind != KindBool {
		return Node{}, wrapf(ErrKindMismatch, "IfElse condition must be Boolean")
	}
	if t.kind != f.kind {
		return Node{}, wrapf(ErrKindMismatch, "IfElse branches must share a kind, got %s and %s", t.kind, f.kind)
	}
	key := ifElseKey{cond: cond.id, t: t.id, f: f.id}
	if id, ok := m.caches.ifelse[key]; ok {
		return Node{id: id, kind: t.kind}, nil
	}
	id, err := m.ite3(cond.id, t.id, f.id)
	if err != nil {
		return Node{}, err
	}
	m.caches.ifelse[key] = id
	return Node{id: id, kind: t.kind}, nil
}

// Xor, Nand, Nor, Imp, Biimp and Setdiff are thin Apply wrappers kept for
// readability at call sites; Setdiff(a,b) is "a and not b".
func (m *Manager) And(a, b Node) (Node, error)     { return m.Apply(OPand, a, b) }
func (m *Manager) Or(a, b Node) (Node, error)      { return m.Apply(OPor, a, b) }
func (m *Manager) Xor(a, b Node) (Node, error)     { return m.Apply(OPxor, a, b) }
func (m *Manager) Nand(a, b Node) (Node, error)    { return m.Apply(OPnand, a, b) }
func (m *Manager) Nor(a, b Node) (Node, error)     { return m.Apply(OPnor, a, b) }
func (m *Manager) Imp(a, b Node) (Node, error)     { return m.Apply(OPimp, a, b) }
func (m *Manager) Biimp(a, b Node) (Node, error)   { return m.Apply(OPbiimp, a, b) }
func (m *Manager) Setdiff(a, b Node) (Node, error) { return m.Apply(OPsetdiff, a, b) }
