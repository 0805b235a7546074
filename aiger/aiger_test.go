// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-air/eqc/aiger"
	"github.com/go-air/eqc/cec"
	"github.com/go-air/eqc/logic"
	"github.com/go-air/eqc/z"
)

const andAag = `aag 3 2 0 1 1
2
4
6
6 2 4
`

func TestReadAnd(t *testing.T) {
	c, err := aiger.Read(strings.NewReader(andAag))
	require.NoError(t, err)
	require.Equal(t, 2, c.NumPIs())
	require.Equal(t, 1, c.NumOuts())
	require.Equal(t, 1, c.NumGates())

	vs := make([]bool, c.Len())
	vs[c.Inputs()[0].Var()] = true
	vs[c.Inputs()[1].Var()] = true
	c.Eval(vs)
	require.True(t, c.EvalLit(c.Outputs()[0], vs))
}

func TestReadOutOfOrder(t *testing.T) {
	// or over three inputs, gates listed bottom-up
	src := `aag 5 3 0 1 2
2
4
6
11
10 8 7
8 3 5
`
	c, err := aiger.Read(strings.NewReader(src))
	require.NoError(t, err)
	o := c.Outputs()[0]
	for b := 0; b < 8; b++ {
		vs := make([]bool, c.Len())
		for i, in := range c.Inputs() {
			vs[in.Var()] = b>>i&1 == 1
		}
		c.Eval(vs)
		require.Equal(t, b != 0, c.EvalLit(o, vs), "assignment %03b", b)
	}
}

func TestReadErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", aiger.ErrPrematureEOF},
		{"not aag", "aig 1 1 0 0 0\n2\n", aiger.ErrBadHeader},
		{"latches", "aag 2 1 1 0 0\n2\n4 2\n", aiger.ErrLatchesUnsupported},
		{"signed input", "aag 1 1 0 0 0\n3\n", aiger.ErrSignedInput},
		{"truncated", "aag 3 2 0 1 1\n2\n4\n6\n", aiger.ErrPrematureEOF},
		{"undefined", "aag 3 1 0 1 0\n2\n6\n", aiger.ErrUndefinedLit},
		{"loop", "aag 3 1 0 1 1\n2\n6\n6 6 2\n", aiger.ErrCombLoop},
		{"redefined", "aag 3 1 0 1 2\n2\n6\n6 2 2\n6 3 2\n", aiger.ErrAndRedefined},
		{"junk", "aag 1 x 0 0 0\n", aiger.ErrBadUInt},
	} {
		_, err := aiger.Read(strings.NewReader(tc.src))
		require.ErrorIs(t, err, tc.err, tc.name)
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for trial := 0; trial < 8; trial++ {
		c := logic.NewC()
		lits := make([]z.Lit, 0, 24)
		for i := 0; i < 5; i++ {
			lits = append(lits, c.NewIn())
		}
		for i := 0; i < 16; i++ {
			a := lits[rnd.Intn(len(lits))]
			b := lits[rnd.Intn(len(lits))]
			if rnd.Intn(2) == 1 {
				a = a.Not()
			}
			lits = append(lits, c.And(a, b))
		}
		c.MarkOut(lits[len(lits)-1])
		c.MarkOut(lits[rnd.Intn(len(lits))].Not())

		var buf bytes.Buffer
		require.NoError(t, aiger.Write(&buf, c))
		back, err := aiger.Read(&buf)
		require.NoError(t, err)

		eq, ok := cec.Check(c, back)
		require.True(t, ok, "trial %d", trial)
		require.True(t, eq, "trial %d", trial)
	}
}

func TestWriteConstOutput(t *testing.T) {
	c := logic.NewC()
	c.NewIn()
	c.MarkOut(c.F)
	c.MarkOut(c.T)
	var buf bytes.Buffer
	require.NoError(t, aiger.Write(&buf, c))
	back, err := aiger.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, back.NumOuts())
	eq, ok := cec.Check(c, back)
	require.True(t, ok)
	require.True(t, eq)
}
