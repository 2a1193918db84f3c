// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

import (
	"fmt"
	"strconv"
	"strings"
)

// Manager owns every diagram node built through it: the unique table that
// enforces canonicity, the variable headers, and the memoisation caches used
// by the apply engine and the analytic algorithms. A Manager and the
// diagrams built through it are not safe for concurrent mutation; callers
// that need parallelism should use independent Managers, per the
// single-threaded, cooperative scheduling model of the core.
type Manager struct {
	nodes  []record       // node store, indexed by id; 0/1/2 are the singleton terminals
	unique map[string]int // unique table: encoded (tag,header,children) -> id

	values map[int64]int // idempotent cache for integer terminals

	headers   []*Header
	byLabel   map[string]*Header
	nextLevel int

	cfg configs

	caches engineCaches
}

// New returns a fresh, empty Manager. Options configure initial table sizes;
// see Nodesize and Cachesize.
func New(opts ...func(*configs)) *Manager {
	cfg := defaultConfigs()
	for _, o := range opts {
		o(&cfg)
	}
	m := &Manager{
		nodes:   make([]record, 3, cfg.nodesize),
		unique:  make(map[string]int, cfg.cachesize),
		values:  make(map[int64]int),
		byLabel: make(map[string]*Header),
		cfg:     cfg,
	}
	m.nodes[idZero] = record{tag: tagZero}
	m.nodes[idOne] = record{tag: tagOne}
	m.nodes[idUndet] = record{tag: tagUndet}
	m.caches.init(cfg.cachesize)
	return m
}

// Size returns the number of nodes currently retained by the Manager,
// including the three singleton terminals.
func (m *Manager) Size() int {
	return len(m.nodes)
}

// Varnum returns the number of distinct variables registered so far.
func (m *Manager) Varnum() int {
	return len(m.headers)
}

// Header returns the header registered at the given level, or nil if none
// is registered there yet.
func (m *Manager) Header(level int) *Header {
	if level < 0 || level >= len(m.headers) {
		return nil
	}
	return m.headers[level]
}

// HeaderByLabel returns the header for a previously registered variable, or
// nil if the label is unknown.
func (m *Manager) HeaderByLabel(label string) *Header {
	return m.byLabel[label]
}

// ************************************************************
// Terminals
// ************************************************************

// Zero returns the constant Boolean false.
func (m *Manager) Zero() Node {
	return Node{id: idZero, kind: KindBool}
}

// One returns the constant Boolean true.
func (m *Manager) One() Node {
	return Node{id: idOne, kind: KindBool}
}

// BoolUndet returns the Boolean-kind undefined terminal.
func (m *Manager) BoolUndet() Node {
	return Node{id: idUndet, kind: KindBool}
}

// IntUndet returns the integer-kind undefined terminal, the absorbing
// element for arithmetic and comparison operations.
func (m *Manager) IntUndet() Node {
	return Node{id: idUndet, kind: KindInt}
}

// From returns the constant Boolean node for v.
func (m *Manager) From(v bool) Node {
	if v {
		return m.One()
	}
	return m.Zero()
}

// Value returns the (idempotent) integer terminal for v.
func (m *Manager) Value(v int64) Node {
	if id, ok := m.values[v]; ok {
		return Node{id: id, kind: KindInt}
	}
	id := len(m.nodes)
	m.nodes = append(m.nodes, record{tag: tagValue, value: v})
	m.values[v] = id
	return Node{id: id, kind: KindInt}
}

// ************************************************************
// Headers
// ************************************************************

// MakeHeader registers a fresh variable with the given label and arity,
// assigning it the next available level. Calling MakeHeader twice with the
// same label returns the previously registered header if the arity matches,
// and an error otherwise.
func (m *Manager) MakeHeader(label string, arity int) (*Header, error) {
	if arity < 2 {
		return nil, wrapf(ErrArityMismatch, "variable %q must have arity >= 2, got %d", label, arity)
	}
	if h, ok := m.byLabel[label]; ok {
		if h.arity != arity {
			return nil, wrapf(ErrArityMismatch, "variable %q already registered with arity %d", label, h.arity)
		}
		return h, nil
	}
	h := &Header{id: len(m.headers), label: label, level: m.nextLevel, arity: arity}
	m.headers = append(m.headers, h)
	m.byLabel[label] = h
	m.nextLevel++
	return h, nil
}

// ************************************************************
// Node store
// ************************************************************

// record returns the internal record for id. Callers must only pass ids
// they obtained from this Manager.
func (m *Manager) record(id int) *record {
	return &m.nodes[id]
}

func allSame(children []int) bool {
	for i := 1; i < len(children); i++ {
		if children[i] != children[0] {
			return false
		}
	}
	return true
}

func encodeKey(headerID int, children []int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(headerID))
	for _, c := range children {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}

// makeNonTerminal applies the reduction rules before insertion: if every
// child shares an identifier the call collapses to that child (reduction
// invariant 2/3 in the data model); otherwise it looks up the unique table
// and inserts a fresh node on a miss. It fails with ErrLevelViolation if any
// non-terminal child's level is not strictly higher than header's, and with
// ErrArityMismatch if len(children) != header.Arity().
func (m *Manager) makeNonTerminal(header *Header, children []int) (int, error) {
	if len(children) != header.arity {
		return -1, wrapf(ErrArityMismatch, "header %s expects %d children, got %d", header, header.arity, len(children))
	}
	if allSame(children) {
		return children[0], nil
	}
	for _, c := range children {
		if m.nodes[c].level() <= header.level {
			return -1, wrapf(ErrLevelViolation, "child of %s has level %d, want > %d", header, m.nodes[c].level(), header.level)
		}
	}
	key := encodeKey(header.id, children)
	if id, ok := m.unique[key]; ok {
		return id, nil
	}
	id := len(m.nodes)
	cp := make([]int, len(children))
	copy(cp, children)
	m.nodes = append(m.nodes, record{tag: tagNonTerminal, header: header, children: cp})
	m.unique[key] = id
	return id, nil
}

// MakeNonTerminal is the public, Node-level counterpart of makeNonTerminal.
// All children must carry the kind consistent with the variable being
// Boolean (arity 2, KindBool) or multi-valued (KindInt); the returned node
// inherits its kind from the children (their kinds must agree).
func (m *Manager) MakeNonTerminal(header *Header, children []Node) (Node, error) {
	if len(children) == 0 {
		return Node{}, wrapf(ErrArityMismatch, "header %s requires at least one child", header)
	}
	kind := children[0].kind
	ids := make([]int, len(children))
	for i, c := range children {
		if c.kind != kind {
			return Node{}, wrapf(ErrKindMismatch, "children of %s mix kinds", header)
		}
		ids[i] = c.id
	}
	id, err := m.makeNonTerminal(header, ids)
	if err != nil {
		return Node{}, err
	}
	return Node{id: id, kind: kind}, nil
}

// Low returns a Boolean node's false branch (child 0).
func (m *Manager) Low(n Node) (Node, error) {
	return m.child(n, 0)
}

// High returns a Boolean node's true branch (child 1).
func (m *Manager) High(n Node) (Node, error) {
	return m.child(n, 1)
}

// Child returns the i'th cofactor of a non-terminal node.
func (m *Manager) Child(n Node, i int) (Node, error) {
	return m.child(n, i)
}

func (m *Manager) child(n Node, i int) (Node, error) {
	r := &m.nodes[n.id]
	if r.tag != tagNonTerminal {
		return Node{}, wrapf(ErrInvalidNode, "node %d is a terminal", n.id)
	}
	if i < 0 || i >= len(r.children) {
		return Node{}, wrapf(ErrArityMismatch, "child index %d out of range for arity %d", i, len(r.children))
	}
	return Node{id: r.children[i], kind: n.kind}, nil
}

// IsTerminal reports whether n is a terminal node (Zero, One, Undet, or
// Value).
func (m *Manager) IsTerminal(n Node) bool {
	return m.nodes[n.id].tag != tagNonTerminal
}

// HeaderOf returns the header of a non-terminal node, or nil for a terminal.
func (m *Manager) HeaderOf(n Node) *Header {
	r := &m.nodes[n.id]
	if r.tag != tagNonTerminal {
		return nil
	}
	return r.header
}

// fmtNode is a small debugging helper that renders a node as a short string.
func (m *Manager) fmtNode(n Node) string {
	r := &m.nodes[n.id]
	switch r.tag {
	case tagZero:
		return "0"
	case tagOne:
		return "1"
	case tagUndet:
		return "undet"
	case tagValue:
		return fmt.Sprintf("#%d", r.value)
	default:
		return fmt.Sprintf("%s?%v", r.header.label, r.children)
	}
}

// Stats returns a short human-readable summary of the Manager's node store,
// in the spirit of the teacher library's Stats method.
func (m *Manager) Stats() string {
	return fmt.Sprintf("variables: %d, nodes: %d, unique-table entries: %d",
		len(m.headers), len(m.nodes), len(m.unique))
}
