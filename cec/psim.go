// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import "github.com/go-air/eqc/tt"

// partSim is the simulator for one round of partitioned simulation.
// Inputs below splitVar sweep all combinations as projection tables;
// every other input is pinned to its bit of the round index.  A
// partSim lives for exactly one evaluator pass.
type partSim struct {
	splitVar uint32
	round    uint64
}

func (p partSim) Constant(v bool) tt.T {
	t := tt.New(p.splitVar)
	if v {
		return t.Not()
	}
	return t
}

func (p partSim) PI(i int) tt.T {
	if uint32(i) < p.splitVar {
		return tt.Nth(p.splitVar, uint32(i))
	}
	return p.Constant(p.round>>(uint32(i)-p.splitVar)&1 == 1)
}

func (p partSim) Not(v tt.T) tt.T {
	return v.Not()
}
