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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/go-zirc/pkg/field"
)

func TestLinComb_AddZero(t *testing.T) {
	a := ZeroComb()
	b := FromVariable(NewVariable(42))
	//
	assert.True(t, a.Add(b).Equal(b))
}

func TestLinComb_AddKeepsDuplicates(t *testing.T) {
	a := FromVariable(NewVariable(42))
	b := FromVariable(NewVariable(42))
	c := a.Add(b)
	// Construction concatenates; duplicates survive until canonicalisation.
	assert.Equal(t, 2, len(c.Terms()))
	assert.True(t, c.Equal(Summand(field.FromInt64(2), NewVariable(42))))
}

func TestLinComb_SubSelf(t *testing.T) {
	a := FromVariable(NewVariable(42))
	b := FromVariable(NewVariable(42))
	//
	assert.True(t, a.Sub(b).Equal(ZeroComb()))
	assert.Equal(t, 0, len(a.Sub(b).Canonical().Terms()))
}

func TestLinComb_CanonicalIdempotent(t *testing.T) {
	l := FromVariable(NewVariable(1)).
		Add(Summand(field.FromInt64(3), NewVariable(0))).
		Add(Summand(field.FromInt64(-3), NewVariable(0)))
	//
	once := l.Canonical()
	twice := once.LinComb().Canonical()
	//
	assert.True(t, once.Equal(twice))
	// Cancelled wires are dropped entirely.
	assert.Equal(t, 1, len(once.Terms()))
}

func TestLinComb_MulDivRoundTrip(t *testing.T) {
	l := FromVariable(NewVariable(7)).Add(Summand(field.FromInt64(5), NewVariable(3)))
	k := field.FromInt64(12345)
	//
	assert.True(t, l.MulScalar(k).DivScalar(k).Equal(l))
}

func TestLinComb_DivByZeroPanics(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	//
	FromVariable(NewVariable(0)).DivScalar(field.Zero())
}

func TestLinComb_TrySummand(t *testing.T) {
	summand := NewLinComb(
		Term{NewVariable(42), field.FromInt64(1)},
		Term{NewVariable(42), field.FromInt64(2)},
		Term{NewVariable(42), field.FromInt64(3)},
	)
	//
	variable, coeff, ok := summand.TrySummand()
	assert.True(t, ok)
	assert.Equal(t, NewVariable(42), variable)
	assert.True(t, coeff.Equal(field.FromInt64(6)))
	//
	mixed := NewLinComb(
		Term{NewVariable(41), field.FromInt64(1)},
		Term{NewVariable(42), field.FromInt64(2)},
	)
	_, _, ok = mixed.TrySummand()
	assert.False(t, ok)
	//
	_, _, ok = ZeroComb().TrySummand()
	assert.False(t, ok)
}

func TestLinComb_Display(t *testing.T) {
	a := FromVariable(NewVariable(42)).Add(Summand(field.FromInt64(3), NewVariable(21)))
	//
	assert.Equal(t, "3 * _21 + 1 * _42", a.String())
	assert.Equal(t, "0", ZeroComb().String())
}

func TestVariable_Order(t *testing.T) {
	assert.Equal(t, -1, One().Cmp(NewVariable(0)))
	assert.Equal(t, -1, NewVariable(0).Cmp(NewVariable(1)))
	assert.Equal(t, 0, NewVariable(3).Cmp(NewVariable(3)))
	assert.Equal(t, "~one", One().String())
	assert.Equal(t, "_7", NewVariable(7).String())
}
