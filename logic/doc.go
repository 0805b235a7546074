// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logic provides combinational Boolean networks in the form
// of structurally hashed and-inverter graphs, together with miter
// construction for equivalence checking.
package logic
