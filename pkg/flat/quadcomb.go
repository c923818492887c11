// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package flat

import (
	"fmt"
)

// QuadComb is a product of two linear combinations, which is the constraint
// shape of a rank-1 constraint system: every emitted constraint has the form
// (Σ aᵢxᵢ)·(Σ bⱼxⱼ) − Σ cₖxₖ ≡ 0.
type QuadComb struct {
	Left  LinComb
	Right LinComb
}

// NewQuadComb constructs the product of two given linear combinations.
func NewQuadComb(left LinComb, right LinComb) QuadComb {
	return QuadComb{left, right}
}

// FromLinComb lifts a linear combination l into the quadratic form
// (1 * ~one) · l.
func FromLinComb(l LinComb) QuadComb {
	return QuadComb{OneComb(), l}
}

// TryLinear reduces this quadratic combination to an equivalent linear one
// where possible: when either side sums to a constant multiple k of ~one the
// result is the other side scaled by k, and when either side is zero the
// result is the zero combination.  Otherwise the reduction fails.
func (q QuadComb) TryLinear() (LinComb, bool) {
	if variable, coeff, ok := q.Left.TrySummand(); ok && variable.IsOne() {
		return q.Right.MulScalar(coeff), true
	}
	//
	if variable, coeff, ok := q.Right.TrySummand(); ok && variable.IsOne() {
		return q.Left.MulScalar(coeff), true
	}
	//
	if q.Left.IsZero() || q.Right.IsZero() {
		return ZeroComb(), true
	}
	//
	return LinComb{}, false
}

// Canonical canonicalises both sides of this quadratic combination.
func (q QuadComb) Canonical() CanonicalQuadComb {
	return CanonicalQuadComb{q.Left.Canonical(), q.Right.Canonical()}
}

// Equal determines whether two quadratic combinations denote the same
// bilinear form, defined on their canonical forms.
func (q QuadComb) Equal(o QuadComb) bool {
	return q.Left.Equal(o.Left) && q.Right.Equal(o.Right)
}

func (q QuadComb) String() string {
	return fmt.Sprintf("(%s) * (%s)", q.Left, q.Right)
}

// CanonicalQuadComb is a quadratic combination whose two sides are both in
// canonical form.
type CanonicalQuadComb struct {
	Left  CanonicalLinComb
	Right CanonicalLinComb
}

// QuadComb converts this canonical form back into a general quadratic
// combination.
func (q CanonicalQuadComb) QuadComb() QuadComb {
	return QuadComb{q.Left.LinComb(), q.Right.LinComb()}
}

// Equal determines whether two canonical quadratic forms are identical.
func (q CanonicalQuadComb) Equal(o CanonicalQuadComb) bool {
	return q.Left.Equal(o.Left) && q.Right.Equal(o.Right)
}

func (q CanonicalQuadComb) String() string {
	return fmt.Sprintf("(%s) * (%s)", q.Left, q.Right)
}
