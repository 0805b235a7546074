// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/go-air/eqc/logic"
	"github.com/go-air/eqc/sim"
	"github.com/go-air/eqc/tt"
)

// MaxPIs is the largest primary input count the checker accepts.  The
// round count grows as 2^(inputs - splitVar) and splitVar is capped
// by the memory budget, so past 40 inputs exhaustive enumeration is
// intractable and Check reports no answer instead.
const MaxPIs = 40

// Stats reports how a run partitioned the input space.  The zero
// value means no simulation ran.
type Stats struct {
	SplitVar uint32 // inputs swept exhaustively per round
	Rounds   uint64 // rounds planned
}

// Options configures a check.  The zero value selects the default
// memory budget and a single worker.
type Options struct {
	// MemBudget bounds the projected per-round memory footprint in
	// bytes.  Zero selects DefaultMemBudget.
	MemBudget uint64 `yaml:"mem_budget"`
	// Workers is the number of goroutines simulating rounds.  Rounds
	// are value-independent, so any worker finding a nonzero output
	// settles the verdict and cancels the rest.
	Workers int `yaml:"workers"`
}

// DefaultOptions returns the options Check uses.
func DefaultOptions() Options {
	return Options{MemBudget: DefaultMemBudget, Workers: 1}
}

// Check reports whether the networks a and b compute the same
// functions.  The verdict eq is only meaningful when ok is true; ok
// is false when a has more than MaxPIs inputs or the networks have
// mismatched arity, in which case the caller must fall back to some
// other method.
func Check(a, b *logic.C) (eq, ok bool) {
	return DefaultOptions().Check(context.Background(), a, b, nil)
}

// CheckStats is Check, additionally filling in st.
func CheckStats(a, b *logic.C, st *Stats) (eq, ok bool) {
	return DefaultOptions().Check(context.Background(), a, b, st)
}

// Check decides equivalence of a and b under the options o.  st, if
// non-nil, receives the split plan; it is written before the round
// loop runs, so it is populated even when a counterexample cuts the
// run short.  Cancelling ctx yields ok == false.
func (o Options) Check(ctx context.Context, a, b *logic.C, st *Stats) (eq, ok bool) {
	if o.MemBudget == 0 {
		o.MemBudget = DefaultMemBudget
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if a.NumPIs() > MaxPIs {
		return false, false
	}
	m, err := logic.Miter(a, b)
	if err != nil {
		return false, false
	}
	eq, err = o.run(ctx, m, st)
	if err != nil {
		return false, false
	}
	return eq, true
}

// run drives the round loop over the miter m.  Any round producing a
// nonzero output table is a concrete counterexample, so the first one
// found ends the run.
func (o Options) run(ctx context.Context, m *logic.C, st *Stats) (bool, error) {
	n := uint32(m.NumPIs())
	v := uint32(m.NumGates())
	splitVar := SplitVars(n, v, o.MemBudget)
	rounds := Rounds(n, splitVar)
	if st != nil {
		st.SplitVar = splitVar
		st.Rounds = rounds
	}
	if o.Workers > 1 {
		return o.runParallel(ctx, m, splitVar, rounds)
	}
	for i := uint64(0); i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if !allZero(sim.Simulate(m, partSim{splitVar, i})) {
			return false, nil
		}
	}
	return true, nil
}

var errCex = errors.New("cec: counterexample found")

// runParallel distributes rounds over o.Workers goroutines.  A
// counterexample surfaces as errCex, cancelling the group context;
// workers observe the cancellation before starting their next round.
func (o Options) runParallel(ctx context.Context, m *logic.C, splitVar uint32, rounds uint64) (bool, error) {
	g, ctx := errgroup.WithContext(ctx)
	w := uint64(o.Workers)
	if w > rounds {
		w = rounds
	}
	for k := uint64(0); k < w; k++ {
		k := k
		g.Go(func() error {
			for i := k; i < rounds; i += w {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if !allZero(sim.Simulate(m, partSim{splitVar, i})) {
					return errCex
				}
			}
			return nil
		})
	}
	switch err := g.Wait(); err {
	case nil:
		return true, nil
	case errCex:
		return false, nil
	default:
		return false, err
	}
}

func allZero(outs []tt.T) bool {
	for _, o := range outs {
		if !o.IsZero() {
			return false
		}
	}
	return true
}
