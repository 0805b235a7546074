// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"errors"

	"github.com/go-air/eqc/z"
)

// Errors related to miter construction.
var (
	ErrMiterInputs  = errors.New("miter: networks have different input arity")
	ErrMiterOutputs = errors.New("miter: networks have different output arity")
)

// Miter combines two networks of equal arity into a single network
// with one shared primary input per input position and one output per
// output position, each the xor of the two source networks'
// corresponding outputs.  The miter's outputs are identically false
// iff a and b compute the same functions.
func Miter(a, b *C) (*C, error) {
	if a.NumPIs() != b.NumPIs() {
		return nil, ErrMiterInputs
	}
	if a.NumOuts() != b.NumOuts() {
		return nil, ErrMiterOutputs
	}
	m := NewCCap(a.Len() + b.Len())
	ins := make([]z.Lit, a.NumPIs())
	for i := range ins {
		ins[i] = m.NewIn()
	}
	ao := copyOver(m, a, ins)
	bo := copyOver(m, b, ins)
	for i := range ao {
		m.MarkOut(m.Xor(ao[i], bo[i]))
	}
	return m, nil
}

// copyOver rebuilds src's output cones in dst over the shared inputs
// ins, returning the relocated output literals.  src's nodes are in
// topological order, so a single forward pass suffices.
func copyOver(dst, src *C, ins []z.Lit) []z.Lit {
	relo := make([]z.Lit, src.Len())
	relo[1] = dst.T
	for i, m := range src.Inputs() {
		relo[m.Var()] = ins[i]
	}
	for v := 2; v < src.Len(); v++ {
		if relo[v] != z.LitNull {
			continue
		}
		a, b := src.Ins(z.Var(v).Pos())
		if a == z.LitNull {
			continue
		}
		relo[v] = dst.And(lift(relo, a), lift(relo, b))
	}
	outs := make([]z.Lit, 0, src.NumOuts())
	for _, o := range src.Outputs() {
		outs = append(outs, lift(relo, o))
	}
	return outs
}

func lift(relo []z.Lit, m z.Lit) z.Lit {
	r := relo[m.Var()]
	if !m.IsPos() {
		return r.Not()
	}
	return r
}
