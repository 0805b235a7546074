// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aiger reads and writes combinational networks in the ASCII
// AIGER (aag) format.
//
// Only the combinational subset is supported: files declaring latches
// are rejected, since the checker handles combinational networks
// only.
package aiger
