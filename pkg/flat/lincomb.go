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
	"slices"
	"strings"

	"github.com/consensys/go-zirc/pkg/field"
)

// Term pairs a wire with its coefficient within a linear combination.
type Term struct {
	Variable    Variable
	Coefficient field.Element
}

// LinComb is a formal sum of (wire, coefficient) terms over the prime field.
// The term sequence is ordered and permits duplicate wires, which keeps
// construction cheap on hot paths; equality, hashing and printing all go
// through the canonical form instead.
type LinComb struct {
	terms []Term
}

// ZeroComb returns the empty linear combination.
func ZeroComb() LinComb {
	return LinComb{}
}

// OneComb returns the linear combination 1 * ~one.
func OneComb() LinComb {
	return Summand(field.One(), One())
}

// Summand returns the singleton linear combination mult * variable.
func Summand(mult field.Element, variable Variable) LinComb {
	return LinComb{[]Term{{variable, mult}}}
}

// FromVariable returns the linear combination 1 * variable.
func FromVariable(variable Variable) LinComb {
	return Summand(field.One(), variable)
}

// FromField returns the constant linear combination k * ~one.
func FromField(k field.Element) LinComb {
	return Summand(k, One())
}

// NewLinComb constructs a linear combination from an explicit term sequence.
func NewLinComb(terms ...Term) LinComb {
	return LinComb{terms}
}

// Terms returns the underlying (non-canonical) term sequence.
func (l LinComb) Terms() []Term {
	return l.terms
}

// IsZero determines whether the term list is empty.  Observe that this does
// not canonicalise: a combination whose terms cancel is not considered zero
// here.
func (l LinComb) IsZero() bool {
	return len(l.terms) == 0
}

// Add returns the concatenation of two linear combinations, with
// canonicalisation deferred.
func (l LinComb) Add(o LinComb) LinComb {
	terms := make([]Term, 0, len(l.terms)+len(o.terms))
	terms = append(terms, l.terms...)
	terms = append(terms, o.terms...)
	//
	return LinComb{terms}
}

// Sub returns the concatenation of this combination with the negation of
// another, again deferring canonicalisation.
func (l LinComb) Sub(o LinComb) LinComb {
	terms := make([]Term, 0, len(l.terms)+len(o.terms))
	terms = append(terms, l.terms...)
	//
	for _, t := range o.terms {
		terms = append(terms, Term{t.Variable, t.Coefficient.Neg()})
	}
	//
	return LinComb{terms}
}

// MulScalar distributes a scalar multiplication over all terms.
func (l LinComb) MulScalar(scalar field.Element) LinComb {
	terms := make([]Term, len(l.terms))
	//
	for i, t := range l.terms {
		terms[i] = Term{t.Variable, t.Coefficient.Mul(scalar)}
	}
	//
	return LinComb{terms}
}

// DivScalar divides all coefficients by a scalar, which panics when the
// divisor has no modular inverse (i.e. is zero).
func (l LinComb) DivScalar(scalar field.Element) LinComb {
	inv, ok := scalar.Inverse()
	if !ok {
		panic("division of a linear combination by zero")
	}
	//
	return l.MulScalar(inv)
}

// TrySummand reduces this combination to a single (wire, coefficient) pair,
// which succeeds exactly when the combination is non-empty and every term
// refers to the same wire.  The resulting coefficient is the sum of all
// coefficients.
func (l LinComb) TrySummand() (Variable, field.Element, bool) {
	if len(l.terms) == 0 {
		return Variable{}, field.Element{}, false
	}
	// All terms must refer to the first wire.
	first := l.terms[0].Variable
	acc := field.Zero()
	//
	for _, t := range l.terms {
		if t.Variable != first {
			return Variable{}, field.Element{}, false
		}
		//
		acc = acc.Add(t.Coefficient)
	}
	//
	return first, acc, true
}

// Canonical folds the term sequence into its canonical form: wires in the
// wire total order, duplicates collapsed, and zero-coefficient terms
// dropped.
func (l LinComb) Canonical() CanonicalLinComb {
	terms := make([]Term, len(l.terms))
	copy(terms, l.terms)
	// Stable sort keeps accumulation order deterministic for equal wires.
	slices.SortStableFunc(terms, func(a, b Term) int {
		return a.Variable.Cmp(b.Variable)
	})
	//
	canonical := make([]Term, 0, len(terms))
	//
	for i := 0; i < len(terms); {
		variable := terms[i].Variable
		acc := terms[i].Coefficient
		//
		for i++; i < len(terms) && terms[i].Variable == variable; i++ {
			acc = acc.Add(terms[i].Coefficient)
		}
		//
		if !acc.IsZero() {
			canonical = append(canonical, Term{variable, acc})
		}
	}
	//
	return CanonicalLinComb{canonical}
}

// Reduce replaces this combination by its canonical form.
func (l LinComb) Reduce() LinComb {
	return l.Canonical().LinComb()
}

// Equal determines whether two linear combinations denote the same formal
// sum, which is defined on their canonical forms.
func (l LinComb) Equal(o LinComb) bool {
	return l.Canonical().Equal(o.Canonical())
}

func (l LinComb) String() string {
	if l.IsZero() {
		return "0"
	}
	//
	return l.Canonical().String()
}

// CanonicalLinComb is a linear combination in canonical form: its terms are
// ordered by the wire total order, contain no duplicate wires and no zero
// coefficients.
type CanonicalLinComb struct {
	terms []Term
}

// Terms returns the canonically ordered term sequence.
func (l CanonicalLinComb) Terms() []Term {
	return l.terms
}

// LinComb converts this canonical form back into a general linear
// combination.
func (l CanonicalLinComb) LinComb() LinComb {
	terms := make([]Term, len(l.terms))
	copy(terms, l.terms)
	//
	return LinComb{terms}
}

// Equal determines whether two canonical forms are identical.
func (l CanonicalLinComb) Equal(o CanonicalLinComb) bool {
	if len(l.terms) != len(o.terms) {
		return false
	}
	//
	for i, t := range l.terms {
		if t.Variable != o.terms[i].Variable || !t.Coefficient.Equal(o.terms[i].Coefficient) {
			return false
		}
	}
	//
	return true
}

func (l CanonicalLinComb) String() string {
	if len(l.terms) == 0 {
		return "0"
	}
	//
	var builder strings.Builder
	//
	for i, t := range l.terms {
		if i != 0 {
			builder.WriteString(" + ")
		}
		//
		builder.WriteString(fmt.Sprintf("%s * %s", t.Coefficient.String(), t.Variable))
	}
	//
	return builder.String()
}
