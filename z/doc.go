// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z provides literals and variables for Boolean networks.
//
// A network node is identified by a z.Var, and a polarity-aware edge
// into a node (a signal) is a z.Lit.
package z
