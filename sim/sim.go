// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sim provides generic truth-table simulation of
// combinational networks.
//
// The network supplies the gate combination rule (conjunction);
// everything else a node can be -- a constant, a primary input, or a
// negated edge -- is delegated to a Simulator, so that the same
// traversal serves full and partial simulation alike.
package sim

import (
	"github.com/go-air/eqc/logic"
	"github.com/go-air/eqc/tt"
	"github.com/go-air/eqc/z"
)

// Simulator produces truth-table values for the non-gate parts of a
// network under simulation.
type Simulator interface {
	// Constant returns the table of the constant-v function.
	Constant(v bool) tt.T
	// PI returns the table of the i'th primary input.
	PI(i int) tt.T
	// Not returns the complement of v.
	Not(v tt.T) tt.T
}

// Simulate walks c in topological order, computing one table per node
// with s supplying constants, inputs and negation and the network
// supplying conjunction.  It returns one table per primary output of
// c, in output order.
func Simulate(c *logic.C, s Simulator) []tt.T {
	vals := make([]tt.T, c.Len())
	pis := make(map[z.Var]int, c.NumPIs())
	for i, m := range c.Inputs() {
		pis[m.Var()] = i
	}
	for v := 1; v < c.Len(); v++ {
		m := c.At(v)
		if v == 1 {
			vals[v] = s.Constant(true)
			continue
		}
		if i, ok := pis[z.Var(v)]; ok {
			vals[v] = s.PI(i)
			continue
		}
		a, b := c.Ins(m)
		if a == z.LitNull {
			continue
		}
		vals[v] = fetch(vals, a, s).And(fetch(vals, b, s))
	}
	outs := make([]tt.T, 0, c.NumOuts())
	for _, o := range c.Outputs() {
		outs = append(outs, fetch(vals, o, s))
	}
	return outs
}

func fetch(vals []tt.T, m z.Lit, s Simulator) tt.T {
	v := vals[m.Var()]
	if !m.IsPos() {
		return s.Not(v)
	}
	return v
}
