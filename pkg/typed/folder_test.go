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
package typed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/go-zirc/pkg/types"
)

// sampleProgram builds a small but representative typed program exercising
// every expression arm.
func sampleProgram() TypedProgram {
	array := NewArrayExpression(ArrayIdentifier{NewIdentifier("a")}, types.FieldElementType{}, 2)
	//
	body := []TypedStatement{
		DeclarationStatement{FieldVariable("x")},
		DefinitionStatement{
			AssigneeVariable{FieldVariable("x")},
			FieldSelect{array, FieldIdentifier{NewIdentifier("i")}},
		},
		AssertionStatement{
			BoolAnd{
				FieldEq{FieldIdentifier{NewIdentifier("x")}, NewFieldNumber(1)},
				BoolValue{true},
			},
		},
		ReturnStatement{[]TypedExpression{
			FieldAdd{FieldIdentifier{NewIdentifier("x")}, NewFieldNumber(3)},
		}},
	}
	//
	main := TypedFunction{
		Arguments: []Parameter{
			{FieldVariable("i"), true},
			{NewVariable(NewIdentifier("a"), types.NewArrayType(types.FieldElementType{}, 2)), false},
		},
		Statements: body,
		Signature: types.NewSignature(
			[]types.Type{types.FieldElementType{}, types.NewArrayType(types.FieldElementType{}, 2)},
			[]types.Type{types.FieldElementType{}},
		),
	}
	//
	var functions TypedFunctionSymbols
	functions.Insert(types.NewFunctionKey("main", main.Signature), HereSymbol{main})
	//
	return TypedProgram{
		Main:    "main",
		Modules: TypedModules{"main": {functions}},
	}
}

func TestFolder_IdentityIsIdentity(t *testing.T) {
	program := sampleProgram()
	//
	folded := NewIdentityFolder().FoldProgram(program)
	//
	assert.Equal(t, program, folded)
}

// renamer rewrites every identifier, to check overrides reach all arms.
type renamer struct {
	BaseFolder
}

// FoldName override for the Folder interface.
func (r *renamer) FoldName(n Identifier) Identifier {
	core, ok := n.Core.(SourceIdentifier)
	if !ok {
		return n
	}
	//
	return Identifier{SourceIdentifier{core.Name + "'"}, n.Version, n.Stack}
}

func TestFolder_OverrideReachesIdentifiers(t *testing.T) {
	r := &renamer{}
	r.Init(r)
	//
	folded := r.FoldProgram(sampleProgram())
	main := folded.MainFunction()
	//
	assert.Equal(t, "i'", main.Arguments[0].Id.Id.String())
	//
	definition := main.Statements[1].(DefinitionStatement)
	sel := definition.Expression.(FieldSelect)
	//
	assert.Equal(t, "a'", sel.Array.Inner.(ArrayIdentifier).Id.String())
	assert.Equal(t, "i'", sel.Index.(FieldIdentifier).Id.String())
}

func TestSelect_DispatchesOnElementType(t *testing.T) {
	boolArray := NewArrayExpression(ArrayIdentifier{NewIdentifier("b")}, types.BooleanType{}, 3)
	//
	_, ok := Select(boolArray, NewFieldNumber(0)).(BoolSelect)
	assert.True(t, ok)
	//
	uintArray := NewArrayExpression(ArrayIdentifier{NewIdentifier("u")}, types.NewUintType(types.B16), 3)
	sel := Select(uintArray, NewFieldNumber(0)).(UExpression)
	//
	assert.Equal(t, types.B16, sel.Bitwidth)
}

func TestAssignee_Types(t *testing.T) {
	strukt := types.NewStructType("m", "Foo", []types.StructMember{
		{Id: "xs", Type: types.NewArrayType(types.FieldElementType{}, 4)},
	})
	//
	base := AssigneeVariable{NewVariable(NewIdentifier("s"), strukt)}
	member := AssigneeMember{base, "xs"}
	element := AssigneeSelect{member, NewFieldNumber(0)}
	//
	assert.True(t, member.Type().Equal(types.NewArrayType(types.FieldElementType{}, 4)))
	assert.True(t, element.Type().Equal(types.FieldElementType{}))
	assert.Equal(t, "s.xs[0]", element.String())
}
