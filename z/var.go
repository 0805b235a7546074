// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Type Var is a Boolean variable, indexing a node in a network.
// Variable 0 is reserved as a null value.
type Var uint32

// VarNull is the zero variable, a sentinel.
const VarNull Var = 0

// Pos returns the literal with variable v and positive polarity.
func (v Var) Pos() Lit {
	return Lit(v << 1)
}

// Neg returns the literal with variable v and negative polarity.
func (v Var) Neg() Lit {
	return Lit(v<<1 | 1)
}

func (v Var) String() string {
	return fmt.Sprintf("v%d", uint32(v))
}
