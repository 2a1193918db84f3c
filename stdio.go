// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

import (
	"fmt"
	"io"
)

// PrintDot writes a Graphviz DOT rendering of the diagram rooted at n to w,
// in the spirit of the teacher library's PrintDot (see stdio.go in rudd),
// walking the diagram recursively from n: terminals are drawn as boxes,
// non-terminals as circles labeled with their variable, and each outgoing
// edge is labeled with the child index it corresponds to.
func (m *Manager) PrintDot(w io.Writer, n Node) error {
	fmt.Fprintln(w, "digraph G {")
	seen := make(map[int]bool)
	var walk func(id int) error
	walk = func(id int) error {
		if seen[id] {
			return nil
		}
		seen[id] = true
		r := m.record(id)
		switch r.tag {
		case tagZero:
			fmt.Fprintf(w, "  n%d [shape=box,label=\"0\"];\n", id)
		case tagOne:
			fmt.Fprintf(w, "  n%d [shape=box,label=\"1\"];\n", id)
		case tagUndet:
			fmt.Fprintf(w, "  n%d [shape=box,label=\"?\"];\n", id)
		case tagValue:
			fmt.Fprintf(w, "  n%d [shape=box,label=\"%d\"];\n", id, r.value)
		default:
			fmt.Fprintf(w, "  n%d [shape=circle,label=\"%s\"];\n", id, r.header.label)
			for i, c := range r.children {
				fmt.Fprintf(w, "  n%d -> n%d [label=\"%d\"];\n", id, c, i)
				if err := walk(c); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(n.id); err != nil {
		return err
	}
	fmt.Fprintln(w, "}")
	return nil
}

// Print writes a short textual summary of n: its kind, node id and the
// Manager's Stats(), in the spirit of the teacher library's Print/Stats
// combination.
func (m *Manager) Print(w io.Writer, n Node) {
	fmt.Fprintf(w, "node %d (%s): %s\n", n.id, n.kind, m.Stats())
}
