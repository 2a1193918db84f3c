// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

import (
	"fmt"
	"strings"
)

// ftKind tags the shape of a fault-tree node built through a FaultTree.
type ftKind int

const (
	ftBasic ftKind = iota
	ftRepeat
	ftAnd
	ftOr
	ftKofN
)

// FTNode is an uncompiled fault-tree node: a basic event, a shared
// (repeated) basic event, or a gate combining other FTNodes. Build one with
// the FaultTree builder methods and turn it into a diagram with Compile.
type FTNode struct {
	id    int
	kind  ftKind
	label string
	args  []*FTNode
	k     int
}

// FaultTree builds fault trees out of basic events and gates and compiles
// them into diagrams managed by a single Manager. Every occurrence of
// Basic(name) introduces a fresh, independent Bernoulli variable labeled
// "name_0", "name_1", ... ; Repeat(name) instead always refers to the same
// shared variable, for modeling a component that appears in more than one
// place in the tree. Compilation is memoised per FTNode, so sharing an
// FTNode subtree across gates compiles it only once.
type FaultTree struct {
	mgr        *Manager
	nextID     int
	basicCount map[string]int
	repeatVars map[string]Node
	memo       map[int]Node
}

// NewFaultTree returns a fault-tree builder backed by mgr.
func NewFaultTree(mgr *Manager) *FaultTree {
	return &FaultTree{
		mgr:        mgr,
		basicCount: make(map[string]int),
		repeatVars: make(map[string]Node),
		memo:       make(map[int]Node),
	}
}

func (ft *FaultTree) next() int {
	id := ft.nextID
	ft.nextID++
	return id
}

// Basic introduces a fresh basic event. Calling Basic with the same name
// more than once creates a distinct, independent variable each time
// (labeled name_0, name_1, ...); use Repeat to model a shared component.
func (ft *FaultTree) Basic(name string) *FTNode {
	return &FTNode{id: ft.next(), kind: ftBasic, label: name}
}

// Repeat introduces (or refers back to) a basic event shared by every call
// with the same name.
func (ft *FaultTree) Repeat(name string) *FTNode {
	return &FTNode{id: ft.next(), kind: ftRepeat, label: name}
}

// And is the AND gate: it fails when every argument fails.
func (ft *FaultTree) And(args ...*FTNode) *FTNode {
	return &FTNode{id: ft.next(), kind: ftAnd, args: args}
}

// Or is the OR gate: it fails when any argument fails.
func (ft *FaultTree) Or(args ...*FTNode) *FTNode {
	return &FTNode{id: ft.next(), kind: ftOr, args: args}
}

// KofN is the voting gate: it fails when at least k of its arguments fail.
// KofN(1, ...) is Or, KofN(len(args), ...) is And.
func (ft *FaultTree) KofN(k int, args ...*FTNode) *FTNode {
	return &FTNode{id: ft.next(), kind: ftKofN, k: k, args: args}
}

// Compile turns n, and every subtree it depends on, into a Boolean diagram.
// Results are memoised per FTNode id, so compiling the same FTNode pointer
// twice, or as a shared argument of two different gates, does the work
// only once.
func (ft *FaultTree) Compile(n *FTNode) (Node, error) {
	if cached, ok := ft.memo[n.id]; ok {
		return cached, nil
	}
	var result Node
	var err error
	switch n.kind {
	case ftBasic:
		count := ft.basicCount[n.label]
		ft.basicCount[n.label] = count + 1
		result, err = ft.mgr.Var(fmt.Sprintf("%s_%d", n.label, count))
	case ftRepeat:
		if v, ok := ft.repeatVars[n.label]; ok {
			result = v
		} else if result, err = ft.mgr.Var(n.label); err == nil {
			ft.repeatVars[n.label] = result
		}
	case ftAnd:
		result, err = ft.foldGate(OPand, n.args)
	case ftOr:
		result, err = ft.foldGate(OPor, n.args)
	case ftKofN:
		result, err = ft.compileKofN(n.k, n.args)
	default:
		return Node{}, wrapf(ErrInvalidExpression, "unknown fault-tree node kind %d", n.kind)
	}
	if err != nil {
		return Node{}, err
	}
	ft.memo[n.id] = result
	return result, nil
}

func (ft *FaultTree) foldGate(op Operator, args []*FTNode) (Node, error) {
	acc := ft.mgr.Zero()
	if op == OPand {
		acc = ft.mgr.One()
	}
	for _, a := range args {
		c, err := ft.Compile(a)
		if err != nil {
			return Node{}, err
		}
		acc, err = ft.mgr.Apply(op, acc, c)
		if err != nil {
			return Node{}, err
		}
	}
	return acc, nil
}

func (ft *FaultTree) compileKofN(k int, args []*FTNode) (Node, error) {
	children := make([]Node, len(args))
	for i, a := range args {
		c, err := ft.Compile(a)
		if err != nil {
			return Node{}, err
		}
		children[i] = c
	}
	return kofnCombine(ft.mgr, k, children)
}

// kofnCombine builds the k-out-of-n threshold function over nodes using the
// classical recursive decomposition on the diagrams' shared variable order:
// k of n fail iff either the first one fails and k-1 of the rest do, or the
// first one does not fail and k of the rest still fail.
func kofnCombine(mgr *Manager, k int, nodes []Node) (Node, error) {
	n := len(nodes)
	if k <= 0 {
		return mgr.One(), nil
	}
	if k > n {
		return mgr.Zero(), nil
	}
	if k == n {
		acc := mgr.One()
		var err error
		for _, x := range nodes {
			if acc, err = mgr.And(acc, x); err != nil {
				return Node{}, err
			}
		}
		return acc, nil
	}
	if k == 1 {
		acc := mgr.Zero()
		var err error
		for _, x := range nodes {
			if acc, err = mgr.Or(acc, x); err != nil {
				return Node{}, err
			}
		}
		return acc, nil
	}
	head, rest := nodes[0], nodes[1:]
	withHead, err := kofnCombine(mgr, k-1, rest)
	if err != nil {
		return Node{}, err
	}
	withoutHead, err := kofnCombine(mgr, k, rest)
	if err != nil {
		return Node{}, err
	}
	return mgr.Ite(head, withHead, withoutHead)
}

// String renders n and its subtree as a small s-expression, for debugging
// and logging.
func (n *FTNode) String() string {
	switch n.kind {
	case ftBasic:
		return n.label
	case ftRepeat:
		return "~" + n.label
	case ftAnd:
		return "(and " + joinFT(n.args) + ")"
	case ftOr:
		return "(or " + joinFT(n.args) + ")"
	case ftKofN:
		return fmt.Sprintf("(%d-of-n %s)", n.k, joinFT(n.args))
	}
	return "?"
}

func joinFT(args []*FTNode) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}
