// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Type Lit is a Boolean literal: a variable together with a polarity.
// A literal is encoded as 2*v + s where v is the variable and s is 1
// if and only if the literal is negated.
type Lit uint32

// LitNull is the zero literal.  It is not a valid literal and acts as
// a sentinel, much like a nil pointer.
const LitNull Lit = 0

// Var returns the variable of m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// IsPos returns whether m has positive polarity.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// Sign returns 1 if m is positive and -1 otherwise.
func (m Lit) Sign() int {
	if m.IsPos() {
		return 1
	}
	return -1
}

// Dimacs returns the signed-integer form of m used in the DIMACS and
// AIGER symbol conventions: v for a positive literal, -v for a
// negative one.
func (m Lit) Dimacs() int {
	v := int(m >> 1)
	if m.IsPos() {
		return v
	}
	return -v
}

// Dimacs2Lit is the inverse of Lit.Dimacs.
func Dimacs2Lit(d int) Lit {
	if d < 0 {
		return Var(-d).Neg()
	}
	return Var(d).Pos()
}

func (m Lit) String() string {
	if m.IsPos() {
		return fmt.Sprintf("v%d", uint32(m>>1))
	}
	return fmt.Sprintf("~v%d", uint32(m>>1))
}
