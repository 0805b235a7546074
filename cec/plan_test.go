// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import "testing"

func TestSplitVarsSmall(t *testing.T) {
	for n := uint32(0); n <= 6; n++ {
		if s := SplitVars(n, 1<<30, DefaultMemBudget); s != n {
			t.Errorf("n=%d split %d", n, s)
		}
		if r := Rounds(n, n); r != 1 {
			t.Errorf("n=%d rounds %d", n, r)
		}
	}
}

func TestSplitVarsMonotone(t *testing.T) {
	const v = 1000
	prev := uint32(0)
	for n := uint32(1); n <= 40; n++ {
		s := SplitVars(n, v, DefaultMemBudget)
		if s < prev {
			t.Errorf("n=%d split %d below %d", n, s, prev)
		}
		if s > n {
			t.Errorf("n=%d split %d exceeds n", n, s)
		}
		prev = s
	}
}

func TestSplitVarsBudget(t *testing.T) {
	// (32 + 2^(m-3)) * 2^20 <= 2^29 holds through m = 11
	// (288 * 2^20) and fails at m = 12 (544 * 2^20)
	if s := SplitVars(20, 1<<20, DefaultMemBudget); s != 11 {
		t.Errorf("split %d, want 11", s)
	}
	// a tiny network lets the cap at n take over
	if s := SplitVars(8, 1, DefaultMemBudget); s != 8 {
		t.Errorf("split %d, want 8", s)
	}
	// a budget nothing satisfies falls back to 6
	if s := SplitVars(8, 7, 48); s != 6 {
		t.Errorf("split %d, want 6", s)
	}
}

func TestRoundsCoverage(t *testing.T) {
	const n, sp = 9, 6
	rounds := Rounds(n, sp)
	if rounds != 1<<(n-sp) {
		t.Fatalf("rounds %d", rounds)
	}
	seen := make(map[[n - sp]bool]bool)
	for i := uint64(0); i < rounds; i++ {
		var fixed [n - sp]bool
		for j := uint32(sp); j < n; j++ {
			fixed[j-sp] = i>>(j-sp)&1 == 1
		}
		if seen[fixed] {
			t.Fatalf("round %d repeats assignment %v", i, fixed)
		}
		seen[fixed] = true
	}
	if len(seen) != 1<<(n-sp) {
		t.Errorf("%d assignments covered", len(seen))
	}
}
