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

func TestQuadComb_FromLinComb(t *testing.T) {
	a := Summand(field.FromInt64(3), NewVariable(42)).
		Add(Summand(field.FromInt64(4), NewVariable(33)))
	//
	q := FromLinComb(a)
	//
	assert.True(t, q.Left.Equal(OneComb()))
	assert.True(t, q.Right.Equal(a))
}

func TestQuadComb_TryLinearOnOneSide(t *testing.T) {
	l := Summand(field.FromInt64(3), NewVariable(42))
	// (2 * ~one) * l reduces to 2 * l.
	q := NewQuadComb(Summand(field.FromInt64(2), One()), l)
	//
	reduced, ok := q.TryLinear()
	assert.True(t, ok)
	assert.True(t, reduced.Equal(l.MulScalar(field.FromInt64(2))))
	// Symmetric on the right side.
	q = NewQuadComb(l, Summand(field.FromInt64(2), One()))
	//
	reduced, ok = q.TryLinear()
	assert.True(t, ok)
	assert.True(t, reduced.Equal(l.MulScalar(field.FromInt64(2))))
}

func TestQuadComb_TryLinearOnZeroSide(t *testing.T) {
	l := FromVariable(NewVariable(21))
	//
	reduced, ok := NewQuadComb(ZeroComb(), l).TryLinear()
	assert.True(t, ok)
	assert.True(t, reduced.Equal(ZeroComb()))
	//
	reduced, ok = NewQuadComb(l, ZeroComb()).TryLinear()
	assert.True(t, ok)
	assert.True(t, reduced.Equal(ZeroComb()))
}

func TestQuadComb_TryLinearFails(t *testing.T) {
	q := NewQuadComb(FromVariable(NewVariable(1)), FromVariable(NewVariable(2)))
	//
	_, ok := q.TryLinear()
	assert.False(t, ok)
}

func TestQuadComb_Display(t *testing.T) {
	q := NewQuadComb(
		Summand(field.FromInt64(3), NewVariable(42)).Add(Summand(field.FromInt64(4), NewVariable(33))),
		FromVariable(NewVariable(21)),
	)
	//
	assert.Equal(t, "(4 * _33 + 3 * _42) * (1 * _21)", q.String())
	//
	q = NewQuadComb(ZeroComb(), FromVariable(NewVariable(21)))
	assert.Equal(t, "(0) * (1 * _21)", q.String())
}
