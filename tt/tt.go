// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tt

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxVars bounds the number of variables of a table.  A table over nv
// variables occupies 2^nv bits, so 32 variables already means 512MiB.
const MaxVars = 32

// Type T is a truth table over nv variables: a bit vector of width
// 2^nv, one bit per assignment.  Bit b holds the function value under
// the assignment in which variable i takes bit i of b.
//
// Operations returning a T allocate a fresh table; a T is never
// mutated once handed out.  The unused high bits of the last word are
// kept zero so that IsZero and Equal are exact.
type T struct {
	nv    uint32
	words []uint64
}

// masks of the first six variable projections within a single word.
var nthMask = [6]uint64{
	0xAAAAAAAAAAAAAAAA,
	0xCCCCCCCCCCCCCCCC,
	0xF0F0F0F0F0F0F0F0,
	0xFF00FF00FF00FF00,
	0xFFFF0000FFFF0000,
	0xFFFFFFFF00000000,
}

// New creates the all-zero table over nv variables.
func New(nv uint32) T {
	if nv > MaxVars {
		panic(fmt.Sprintf("tt: %d variables exceeds MaxVars", nv))
	}
	return T{nv: nv, words: make([]uint64, numWords(nv))}
}

// Nth creates the projection table of variable i over nv variables:
// bit b is set exactly when bit i of b is set.
func Nth(nv, i uint32) T {
	if i >= nv {
		panic(fmt.Sprintf("tt: variable %d out of range [0,%d)", i, nv))
	}
	t := New(nv)
	if i < 6 {
		m := nthMask[i] & t.lastMask()
		for w := range t.words {
			t.words[w] = m
		}
		return t
	}
	for w := range t.words {
		if (uint32(w)>>(i-6))&1 == 1 {
			t.words[w] = ^uint64(0)
		}
	}
	return t
}

func numWords(nv uint32) int {
	if nv < 6 {
		return 1
	}
	return 1 << (nv - 6)
}

// lastMask returns the mask of used bits in the last word.
func (t T) lastMask() uint64 {
	if t.nv >= 6 {
		return ^uint64(0)
	}
	return 1<<(1<<t.nv) - 1
}

// NumVars returns the number of variables of t.
func (t T) NumVars() uint32 {
	return t.nv
}

// Not returns the complement of t.
func (t T) Not() T {
	r := New(t.nv)
	for w := range t.words {
		r.words[w] = ^t.words[w]
	}
	r.words[len(r.words)-1] &= t.lastMask()
	return r
}

// And returns the conjunction of t and o.  Both tables must have the
// same number of variables.
func (t T) And(o T) T {
	t.check(o)
	r := New(t.nv)
	for w := range t.words {
		r.words[w] = t.words[w] & o.words[w]
	}
	return r
}

// Xor returns the exclusive or of t and o.  Both tables must have the
// same number of variables.
func (t T) Xor(o T) T {
	t.check(o)
	r := New(t.nv)
	for w := range t.words {
		r.words[w] = t.words[w] ^ o.words[w]
	}
	return r
}

func (t T) check(o T) {
	if t.nv != o.nv {
		panic(fmt.Sprintf("tt: width mismatch %d != %d", t.nv, o.nv))
	}
}

// IsZero returns whether t is the constant-false function.
func (t T) IsZero() bool {
	for _, w := range t.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal returns whether t and o are tables over the same number of
// variables with identical bits.
func (t T) Equal(o T) bool {
	if t.nv != o.nv {
		return false
	}
	for w := range t.words {
		if t.words[w] != o.words[w] {
			return false
		}
	}
	return true
}

// Bit returns bit b of t, the function value under assignment b.
func (t T) Bit(b uint64) bool {
	return t.words[b>>6]>>(b&63)&1 == 1
}

// Count returns the number of set bits of t.
func (t T) Count() int {
	c := 0
	for _, w := range t.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// String renders t in hex, most significant assignment first.
func (t T) String() string {
	if t.nv < 2 {
		return fmt.Sprintf("%x", t.words[0])
	}
	digits := 1 << (t.nv - 2)
	var sb strings.Builder
	for w := len(t.words) - 1; w >= 0; w-- {
		d := 16
		if d > digits {
			d = digits
		}
		fmt.Fprintf(&sb, "%0*x", d, t.words[w])
	}
	return sb.String()
}
