// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

// Apply evaluates the binary Boolean connective op pointwise over a and b,
// memoising every recursive call and performing the Shannon decomposition at
// the minimal level of the two operands, exactly the scheme used by the
// teacher's Apply (see hoperations.go). The Undet terminal absorbs: if
// either operand is Undet the result is Undet, modeling "the outcome of this
// subsystem cannot be determined yet" propagating through any formula that
// depends on it.
func (m *Manager) Apply(op Operator, a, b Node) (Node, error) {
	if a.kind != KindBool || b.kind != KindBool {
		return Node{}, wrapf(ErrKindMismatch, "Apply(%s) requires Boolean operands", op)
	}
	id, err := m.applyRec(op, a.id, b.id)
	if err != nil {
		return Node{}, err
	}
	return Node{id: id, kind: KindBool}, nil
}

func (m *Manager) applyRec(op Operator, a, b int) (int, error) {
	ra, rb := &m.nodes[a], &m.nodes[b]
	if ra.tag == tagUndet || rb.tag == tagUndet {
		return idUndet, nil
	}
	if ra.tag != tagNonTerminal && rb.tag != tagNonTerminal {
		abit, bbit := 0, 0
		if ra.tag == tagOne {
			abit = 1
		}
		if rb.tag == tagOne {
			bbit = 1
		}
		if opres[op][abit][bbit] == 1 {
			return idOne, nil
		}
		return idZero, nil
	}

	key := applyKey{op: op, a: a, b: b}
	if id, ok := m.caches.apply[key]; ok {
		return id, nil
	}

	la, lb := ra.level(), rb.level()
	lvl := la
	if lb < lvl {
		lvl = lb
	}
	var header *Header
	if la == lvl {
		header = ra.header
	} else {
		header = rb.header
	}

	children := make([]int, header.arity)
	for i := 0; i < header.arity; i++ {
		ca, cb := a, b
		if la == lvl {
			ca = ra.children[i]
		}
		if lb == lvl {
			cb = rb.children[i]
		}
		c, err := m.applyRec(op, ca, cb)
		if err != nil {
			return -1, err
		}
		children[i] = c
	}

	id, err := m.makeNonTerminal(header, children)
	if err != nil {
		return -1, err
	}
	m.caches.apply[key] = id
	return id, nil
}

// Not returns the Boolean negation of a. Undet negates to Undet.
func (m *Manager) Not(a Node) (Node, error) {
	if a.kind != KindBool {
		return Node{}, wrapf(ErrKindMismatch, "Not requires a Boolean operand")
	}
	id, err := m.notRec(a.id)
	if err != nil {
		return Node{}, err
	}
	return Node{id: id, kind: KindBool}, nil
}

func (m *Manager) notRec(a int) (int, error) {
	r := &m.nodes[a]
	switch r.tag {
	case tagZero:
		return idOne, nil
	case tagOne:
		return idZero, nil
	case tagUndet:
		return idUndet, nil
	}
	if id, ok := m.caches.not[a]; ok {
		return id, nil
	}
	children := make([]int, len(r.children))
	for i, c := range r.children {
		nc, err := m.notRec(c)
		if err != nil {
			return -1, err
		}
		children[i] = nc
	}
	id, err := m.makeNonTerminal(r.header, children)
	if err != nil {
		return -1, err
	}
	m.caches.not[a] = id
	return id, nil
}

// Ite returns the if-then-else of three Boolean diagrams: f ? g : h. It is
// the Boolean specialisation of the more general ite3 recursion shared with
// the combined diagram's IfElse (see combined.go).
func (m *Manager) Ite(f, g, h Node) (Node, error) {
	if f.kind != KindBool || g.kind != KindBool || h.kind != KindBool {
		return Node{}, wrapf(ErrKindMismatch, "Ite requires Boolean operands")
	}
	id, err := m.ite3(f.id, g.id, h.id)
	if err != nil {
		return Node{}, err
	}
	return Node{id: id, kind: KindBool}, nil
}

// ite3 is the memoised, kind-agnostic ternary recursion at the heart of both
// Ite and IfElse. It is safe to mix a Boolean condition f with branches g, h
// of any kind, since only f's terminal tags (Zero/One/Undet) are ever
// inspected; g and h are only ever structurally recursed into.
func (m *Manager) ite3(f, g, h int) (int, error) {
	if f == idOne {
		return g, nil
	}
	if f == idZero {
		return h, nil
	}
	if g == h {
		return g, nil
	}
	rf := &m.nodes[f]
	if rf.tag == tagUndet {
		return idUndet, nil
	}

	key := iteKey{f: f, g: g, h: h}
	if id, ok := m.caches.ite[key]; ok {
		return id, nil
	}

	rg, rh := &m.nodes[g], &m.nodes[h]
	lf, lg, lh := rf.level(), rg.level(), rh.level()
	lvl := lf
	if lg < lvl {
		lvl = lg
	}
	if lh < lvl {
		lvl = lh
	}

	var header *Header
	switch lvl {
	case lf:
		header = rf.header
	case lg:
		header = rg.header
	default:
		header = rh.header
	}

	children := make([]int, header.arity)
	for i := 0; i < header.arity; i++ {
		cf, cg, ch := f, g, h
		if lf == lvl {
			cf = rf.children[i]
		}
		if lg == lvl {
			cg = rg.children[i]
		}
		if lh == lvl {
			ch = rh.children[i]
		}
		c, err := m.ite3(cf, cg, ch)
		if err != nil {
			return -1, err
		}
		children[i] = c
	}

	id, err := m.makeNonTerminal(header, children)
	if err != nil {
		return -1, err
	}
	m.caches.ite[key] = id
	return id, nil
}
