// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"fmt"
	"io"
)

// Print writes a human-readable listing of every node reachable from f to
// w, one line per node, adapted from the teacher's stdio.go Print.
func (m *BddManager) Print(w io.Writer, f BddPtr) error {
	nodes, err := m.Allnodes(f)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		low, high, err := m.table.Deref(n)
		if err != nil {
			return err
		}
		lbl, _ := n.Var()
		idx, _ := n.Index()
		if _, err := fmt.Fprintf(w, "node %d: var=%d low=%s high=%s\n", idx, lbl, low, high); err != nil {
			return err
		}
	}
	return nil
}

// PrintDot writes f as a Graphviz dot graph to w, following the teacher's
// stdio.go PrintDot/dotlabel convention of one node per non-constant BDD
// node plus shared True/False sinks.
func (m *BddManager) PrintDot(w io.Writer, f BddPtr) error {
	nodes, err := m.Allnodes(f)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "digraph bdd {")
	fmt.Fprintln(w, `  "T" [shape=box,label="1"];`)
	fmt.Fprintln(w, `  "F" [shape=box,label="0"];`)
	for _, n := range nodes {
		low, high, err := m.table.Deref(n)
		if err != nil {
			return err
		}
		idx, _ := n.Index()
		lbl, _ := n.Var()
		fmt.Fprintf(w, "  \"n%d_%d\" [label=\"%d\"];\n", lbl, idx, lbl)
		fmt.Fprintf(w, "  \"n%d_%d\" -> %s [style=dashed];\n", lbl, idx, dotlabel(low))
		fmt.Fprintf(w, "  \"n%d_%d\" -> %s [style=solid];\n", lbl, idx, dotlabel(high))
	}
	fmt.Fprintln(w, "}")
	return nil
}

func dotlabel(p BddPtr) string {
	switch {
	case p.IsTrue():
		return `"T"`
	case p.IsFalse():
		return `"F"`
	default:
		r := p.Regular()
		lbl, _ := r.Var()
		idx, _ := r.Index()
		return fmt.Sprintf("\"n%d_%d\"", lbl, idx)
	}
}
