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
package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElement_NegativeCanonicalisation(t *testing.T) {
	// -1 is canonicalised to p - 1.
	minusOne := FromInt64(-1)
	//
	assert.True(t, minusOne.Equal(FromBig(MaxValue())))
	//
	sum := minusOne.Add(One())
	assert.True(t, sum.IsZero())
}

func TestElement_Inverse(t *testing.T) {
	x := FromInt64(12345)
	//
	inv, ok := x.Inverse()
	assert.True(t, ok)
	assert.True(t, x.Mul(inv).Equal(One()))
	//
	_, ok = Zero().Inverse()
	assert.False(t, ok)
}

func TestElement_Range(t *testing.T) {
	assert.True(t, InRange(big.NewInt(0)))
	assert.True(t, InRange(MaxValue()))
	assert.False(t, InRange(Modulus()))
	assert.False(t, InRange(big.NewInt(-1)))
}

func TestElement_ToUint(t *testing.T) {
	v, ok := FromInt64(42).ToUint()
	assert.True(t, ok)
	assert.Equal(t, uint(42), v)
	//
	_, ok = FromInt64(-1).ToUint()
	assert.False(t, ok)
}
