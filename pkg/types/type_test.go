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
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_StructuralEquality(t *testing.T) {
	assert.True(t, FieldElementType{}.Equal(FieldElementType{}))
	assert.False(t, FieldElementType{}.Equal(BooleanType{}))
	assert.True(t, NewUintType(B8).Equal(NewUintType(B8)))
	assert.False(t, NewUintType(B8).Equal(NewUintType(B16)))
	//
	a := NewArrayType(FieldElementType{}, 2)
	assert.True(t, a.Equal(NewArrayType(FieldElementType{}, 2)))
	assert.False(t, a.Equal(NewArrayType(FieldElementType{}, 3)))
	assert.False(t, a.Equal(NewArrayType(BooleanType{}, 2)))
}

func TestType_NominalStructEquality(t *testing.T) {
	members := []StructMember{{"x", FieldElementType{}}}
	foo := NewStructType("a", "Foo", members)
	bar := NewStructType("b", "Foo", members)
	// Same members, different declaring module: distinct types.
	assert.False(t, foo.Equal(bar))
	assert.True(t, foo.Equal(NewStructType("a", "Foo", members)))
}

func TestSignature_Display(t *testing.T) {
	s := NewSignature([]Type{FieldElementType{}, BooleanType{}}, []Type{FieldElementType{}})
	assert.Equal(t, "(field, bool) -> field", s.String())
	//
	s = NewSignature(nil, []Type{FieldElementType{}, FieldElementType{}})
	assert.Equal(t, "() -> (field, field)", s.String())
	//
	s = NewSignature(nil, nil)
	assert.Equal(t, "()", s.String())
}

func TestFunctionKey_HashStability(t *testing.T) {
	key := NewFunctionKey("foo", NewSignature([]Type{FieldElementType{}}, nil))
	same := NewFunctionKey("foo", NewSignature([]Type{FieldElementType{}}, nil))
	other := NewFunctionKey("foo", NewSignature([]Type{BooleanType{}}, nil))
	//
	assert.Equal(t, key.Hash(), same.Hash())
	assert.NotEqual(t, key.Hash(), other.Hash())
}

func TestType_Display(t *testing.T) {
	assert.Equal(t, "field[4]", NewArrayType(FieldElementType{}, 4).String())
	assert.Equal(t, "u32", NewUintType(B32).String())
	assert.Equal(t, "Foo", NewStructType("m", "Foo", nil).String())
}
