// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tt

import (
	"math/rand"
	"testing"
)

func TestNth(t *testing.T) {
	for nv := uint32(1); nv <= 9; nv++ {
		for i := uint32(0); i < nv; i++ {
			p := Nth(nv, i)
			for b := uint64(0); b < 1<<nv; b++ {
				want := b>>(i)&1 == 1
				if p.Bit(b) != want {
					t.Fatalf("nv=%d var=%d bit %d: got %v", nv, i, b, p.Bit(b))
				}
			}
			if p.Count() != 1<<(nv-1) {
				t.Errorf("nv=%d var=%d count %d", nv, i, p.Count())
			}
		}
	}
}

func TestNotMasked(t *testing.T) {
	for nv := uint32(0); nv <= 8; nv++ {
		z := New(nv)
		o := z.Not()
		if o.Count() != 1<<nv {
			t.Errorf("nv=%d ones count %d", nv, o.Count())
		}
		if !o.Not().IsZero() {
			t.Errorf("nv=%d double complement not zero", nv)
		}
		if !o.Xor(o).IsZero() {
			t.Errorf("nv=%d x xor x not zero", nv)
		}
	}
}

func TestAndXor(t *testing.T) {
	rnd := rand.New(rand.NewSource(44))
	const nv = 8
	a, b := New(nv), New(nv)
	for w := range a.words {
		a.words[w] = rnd.Uint64()
		b.words[w] = rnd.Uint64()
	}
	g := a.And(b)
	x := a.Xor(b)
	for i := uint64(0); i < 1<<nv; i++ {
		if g.Bit(i) != (a.Bit(i) && b.Bit(i)) {
			t.Fatalf("and bit %d", i)
		}
		if x.Bit(i) != (a.Bit(i) != b.Bit(i)) {
			t.Fatalf("xor bit %d", i)
		}
	}
}

func TestEqual(t *testing.T) {
	a := Nth(7, 3)
	if !a.Equal(Nth(7, 3)) {
		t.Errorf("projection not equal to itself")
	}
	if a.Equal(Nth(7, 4)) {
		t.Errorf("distinct projections equal")
	}
	if a.Equal(Nth(8, 3)) {
		t.Errorf("tables of different width equal")
	}
}

func TestString(t *testing.T) {
	if s := Nth(3, 0).String(); s != "aa" {
		t.Errorf("got %q", s)
	}
	if s := New(2).Not().String(); s != "f" {
		t.Errorf("got %q", s)
	}
}
