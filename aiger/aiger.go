// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-air/eqc/logic"
	"github.com/go-air/eqc/z"
)

// Errors related to IO and formatting.
var (
	ErrPrematureEOF       = errors.New("premature EOF")
	ErrBadHeader          = errors.New("bad header")
	ErrBadUInt            = errors.New("malformed literal")
	ErrLatchesUnsupported = errors.New("network is sequential (latches unsupported)")
	ErrLitOOB             = errors.New("literal out of bounds")
	ErrSignedInput        = errors.New("input is negated")
	ErrSignedAnd          = errors.New("and gate def is negated")
	ErrAndRedefined       = errors.New("and gate multiply defined")
	ErrUndefinedLit       = errors.New("literal not defined")
	ErrCombLoop           = errors.New("combinational logic has a loop")
)

// andDef is an unresolved and gate from the file, keyed by its
// defining variable.
type andDef struct {
	a, b uint64
	set  bool
}

// Read parses an ASCII AIGER (aag) file describing a combinational
// network.  The header is "aag M I L O A"; L must be 0.  And gates
// may appear in any order; Read resolves them by depth-first search
// from the outputs and rejects cyclic definitions.  The symbol and
// comment sections are ignored.
func Read(r io.Reader) (*logic.C, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	if !s.Scan() {
		return nil, ErrPrematureEOF
	}
	if s.Text() != "aag" {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, s.Text())
	}
	var hdr [5]uint64
	for i := range hdr {
		u, err := scanUint(s)
		if err != nil {
			return nil, fmt.Errorf("%w: header", err)
		}
		hdr[i] = u
	}
	maxVar, ni, nl, no, na := hdr[0], hdr[1], hdr[2], hdr[3], hdr[4]
	if nl != 0 {
		return nil, ErrLatchesUnsupported
	}
	if ni+na > maxVar {
		return nil, fmt.Errorf("%w: %d vars declared, %d defined", ErrBadHeader, maxVar, ni+na)
	}

	c := logic.NewCCap(int(maxVar) + 2)
	lits := make([]z.Lit, maxVar+1)
	for i := uint64(0); i < ni; i++ {
		u, err := scanUint(s)
		if err != nil {
			return nil, fmt.Errorf("%w: input %d", err, i)
		}
		if u&1 == 1 {
			return nil, fmt.Errorf("%w: %d", ErrSignedInput, u)
		}
		if u == 0 || u/2 > maxVar {
			return nil, fmt.Errorf("%w: input %d", ErrLitOOB, u)
		}
		if lits[u/2] != z.LitNull {
			return nil, fmt.Errorf("%w: input %d", ErrAndRedefined, u)
		}
		lits[u/2] = c.NewIn()
	}
	outs := make([]uint64, no)
	for i := range outs {
		u, err := scanUint(s)
		if err != nil {
			return nil, fmt.Errorf("%w: output %d", err, i)
		}
		if u/2 > maxVar {
			return nil, fmt.Errorf("%w: output %d", ErrLitOOB, u)
		}
		outs[i] = u
	}
	defs := make([]andDef, maxVar+1)
	for i := uint64(0); i < na; i++ {
		var tri [3]uint64
		for j := range tri {
			u, err := scanUint(s)
			if err != nil {
				return nil, fmt.Errorf("%w: and %d", err, i)
			}
			if u/2 > maxVar {
				return nil, fmt.Errorf("%w: and %d", ErrLitOOB, i)
			}
			tri[j] = u
		}
		lhs := tri[0]
		if lhs&1 == 1 {
			return nil, fmt.Errorf("%w: %d", ErrSignedAnd, lhs)
		}
		if lhs == 0 || lits[lhs/2] != z.LitNull || defs[lhs/2].set {
			return nil, fmt.Errorf("%w: %d", ErrAndRedefined, lhs)
		}
		defs[lhs/2] = andDef{a: tri[1], b: tri[2], set: true}
	}

	b := &builder{c: c, lits: lits, defs: defs, state: make([]int8, maxVar+1)}
	for _, u := range outs {
		m, err := b.lit(u)
		if err != nil {
			return nil, err
		}
		c.MarkOut(m)
	}
	return c, nil
}

type builder struct {
	c     *logic.C
	lits  []z.Lit
	defs  []andDef
	state []int8 // 0 unvisited, 1 on stack, 2 done
}

func (b *builder) lit(u uint64) (z.Lit, error) {
	if u == 0 {
		return b.c.F, nil
	}
	if u == 1 {
		return b.c.T, nil
	}
	m, err := b.build(u / 2)
	if err != nil {
		return z.LitNull, err
	}
	if u&1 == 1 {
		return m.Not(), nil
	}
	return m, nil
}

func (b *builder) build(v uint64) (z.Lit, error) {
	if b.lits[v] != z.LitNull {
		return b.lits[v], nil
	}
	switch b.state[v] {
	case 1:
		return z.LitNull, fmt.Errorf("%w: through var %d", ErrCombLoop, v)
	case 2:
		return b.lits[v], nil
	}
	d := b.defs[v]
	if !d.set {
		return z.LitNull, fmt.Errorf("%w: var %d", ErrUndefinedLit, v)
	}
	b.state[v] = 1
	a, err := b.lit(d.a)
	if err != nil {
		return z.LitNull, err
	}
	bb, err := b.lit(d.b)
	if err != nil {
		return z.LitNull, err
	}
	b.lits[v] = b.c.And(a, bb)
	b.state[v] = 2
	return b.lits[v], nil
}

func scanUint(s *bufio.Scanner) (uint64, error) {
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return 0, err
		}
		return 0, ErrPrematureEOF
	}
	u, err := strconv.ParseUint(s.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadUInt, s.Text())
	}
	return u, nil
}

// Write renders c in ASCII AIGER format.  Inputs are numbered first
// in creation order, then and gates in topological order.
func Write(w io.Writer, c *logic.C) error {
	bw := bufio.NewWriter(w)
	idx := make([]uint64, c.Len())
	next := uint64(1)
	for _, m := range c.Inputs() {
		idx[m.Var()] = next
		next++
	}
	var ands []z.Var
	for v := 2; v < c.Len(); v++ {
		if !c.IsAnd(c.At(v)) {
			continue
		}
		idx[v] = next
		next++
		ands = append(ands, z.Var(v))
	}
	fmt.Fprintf(bw, "aag %d %d 0 %d %d\n", next-1, c.NumPIs(), c.NumOuts(), len(ands))
	for i := range c.Inputs() {
		fmt.Fprintf(bw, "%d\n", 2*(i+1))
	}
	for _, o := range c.Outputs() {
		fmt.Fprintf(bw, "%d\n", enc(c, idx, o))
	}
	for _, v := range ands {
		a, b := c.Ins(v.Pos())
		fmt.Fprintf(bw, "%d %d %d\n", 2*idx[v], enc(c, idx, a), enc(c, idx, b))
	}
	return bw.Flush()
}

func enc(c *logic.C, idx []uint64, m z.Lit) uint64 {
	if m == c.F {
		return 0
	}
	if m == c.T {
		return 1
	}
	u := 2 * idx[m.Var()]
	if !m.IsPos() {
		u |= 1
	}
	return u
}
