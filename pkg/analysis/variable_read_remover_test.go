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
package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/go-zirc/pkg/typed"
	"github.com/consensys/go-zirc/pkg/types"
)

func fieldArray(name string, size uint) typed.ArrayExpression {
	return typed.NewArrayExpression(
		typed.ArrayIdentifier{Id: typed.NewIdentifier(name)},
		types.FieldElementType{}, size)
}

func TestVariableReadRemover_RewritesVariableRead(t *testing.T) {
	// b = a[i] over a: field[2]
	access := typed.DefinitionStatement{
		Assignee: typed.AssigneeVariable{Variable: typed.FieldVariable("b")},
		Expression: typed.FieldSelect{
			Array: fieldArray("a", 2),
			Index: typed.FieldIdentifier{Id: typed.NewIdentifier("i")},
		},
	}
	//
	statements := NewVariableReadRemover().FoldStatement(access)
	//
	i := typed.FieldIdentifier{Id: typed.NewIdentifier("i")}
	//
	expected := []typed.TypedStatement{
		// assert((i == 0) || (i == 1))
		typed.AssertionStatement{Expression: typed.BoolOr{
			Left:  typed.FieldEq{Left: i, Right: typed.NewFieldNumber(0)},
			Right: typed.FieldEq{Left: i, Right: typed.NewFieldNumber(1)},
		}},
		// b = if i == 0 then a[0] else a[1] fi
		typed.DefinitionStatement{
			Assignee: typed.AssigneeVariable{Variable: typed.FieldVariable("b")},
			Expression: typed.FieldIfElse{
				Condition:   typed.FieldEq{Left: i, Right: typed.NewFieldNumber(0)},
				Consequence: typed.FieldSelect{Array: fieldArray("a", 2), Index: typed.NewFieldNumber(0)},
				Alternative: typed.FieldSelect{Array: fieldArray("a", 2), Index: typed.NewFieldNumber(1)},
			},
		},
	}
	//
	assert.Equal(t, expected, statements)
}

func TestVariableReadRemover_PreservesLiteralRead(t *testing.T) {
	access := typed.DefinitionStatement{
		Assignee: typed.AssigneeVariable{Variable: typed.FieldVariable("b")},
		Expression: typed.FieldSelect{
			Array: fieldArray("a", 2),
			Index: typed.NewFieldNumber(1),
		},
	}
	//
	statements := NewVariableReadRemover().FoldStatement(access)
	//
	assert.Equal(t, []typed.TypedStatement{access}, statements)
}

func TestVariableReadRemover_RewritesNestedRead(t *testing.T) {
	// c = a[b[j]] over a, b: field[2]
	j := typed.FieldIdentifier{Id: typed.NewIdentifier("j")}
	inner := typed.FieldSelect{Array: fieldArray("b", 2), Index: j}
	//
	access := typed.DefinitionStatement{
		Assignee:   typed.AssigneeVariable{Variable: typed.FieldVariable("c")},
		Expression: typed.FieldSelect{Array: fieldArray("a", 2), Index: inner},
	}
	//
	statements := NewVariableReadRemover().FoldStatement(access)
	// One guard for the inner read, one for the outer, then the rewrite.
	assert.Len(t, statements, 3)
	//
	_, ok := statements[0].(typed.AssertionStatement)
	assert.True(t, ok)
	_, ok = statements[1].(typed.AssertionStatement)
	assert.True(t, ok)
	// The outer chain branches on the rewritten inner read.
	rewritten := statements[2].(typed.DefinitionStatement).Expression.(typed.FieldIfElse)
	condition := rewritten.Condition.(typed.FieldEq)
	//
	_, ok = condition.Left.(typed.FieldIfElse)
	assert.True(t, ok)
}

func TestVariableReadRemover_RewritesBooleanRead(t *testing.T) {
	array := typed.NewArrayExpression(
		typed.ArrayIdentifier{Id: typed.NewIdentifier("bs")},
		types.BooleanType{}, 2)
	//
	access := typed.AssertionStatement{
		Expression: typed.BoolSelect{
			Array: array,
			Index: typed.FieldIdentifier{Id: typed.NewIdentifier("i")},
		},
	}
	//
	statements := NewVariableReadRemover().FoldStatement(access)
	assert.Len(t, statements, 2)
	// The guard precedes the rewritten statement.
	_, ok := statements[0].(typed.AssertionStatement).Expression.(typed.BoolOr)
	assert.True(t, ok)
	//
	rewritten := statements[1].(typed.AssertionStatement).Expression
	_, ok = rewritten.(typed.BoolIfElse)
	assert.True(t, ok)
}
