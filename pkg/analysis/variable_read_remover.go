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

// Package analysis contains compiler passes over the typed AST, built on the
// Folder traversal.
package analysis

import (
	"github.com/consensys/go-zirc/pkg/typed"
	"github.com/consensys/go-zirc/pkg/types"
)

// VariableReadRemover eliminates array reads at runtime-variable indices,
// which a rank-1 constraint system cannot express directly.  Every read a[i]
// where i is not a literal becomes a right-folded chain of conditionals
//
//	if i == 0 then a[0] else if i == 1 then a[1] else ... else a[n-1] fi
//
// guarded by an assertion (i == 0) || (i == 1) || ... || (i == n-1) emitted
// before the enclosing statement.  Reads at literal indices are preserved
// unchanged.
type VariableReadRemover struct {
	typed.BaseFolder
	// Assertions awaiting emission before the enclosing statement.
	statements []typed.TypedStatement
}

// NewVariableReadRemover constructs the pass.
func NewVariableReadRemover() *VariableReadRemover {
	r := &VariableReadRemover{}
	r.Init(r)
	//
	return r
}

// Apply runs the pass over a whole program.
func Apply(p typed.TypedProgram) typed.TypedProgram {
	return NewVariableReadRemover().FoldProgram(p)
}

// selectRead rewrites a single read a[i], in whichever arm the element type
// dictates.  The array and index are folded first, so that reads nested
// within either are rewritten as well.
func (r *VariableReadRemover) selectRead(a typed.ArrayExpression, i typed.FieldElementExpression) typed.TypedExpression {
	a = r.FoldArrayExpression(a)
	i = r.FoldFieldExpression(i)
	// Literal reads need no rewriting.
	if _, ok := i.(typed.FieldNumber); ok {
		return typed.Select(a, i)
	}
	//
	size := a.Size
	// Emit the range assertion (i == 0) || ... || (i == n-1).
	var guard typed.BooleanExpression
	//
	for index := uint(0); index < size; index++ {
		eq := typed.FieldEq{Left: i, Right: typed.NewFieldNumber(int64(index))}
		//
		if guard == nil {
			guard = eq
		} else {
			guard = typed.BoolOr{Left: guard, Right: eq}
		}
	}
	//
	r.statements = append(r.statements, typed.AssertionStatement{Expression: guard})
	// Fold the conditional chain from the right, so that a[n-1] is the final
	// alternative.
	result := typed.Select(a, typed.NewFieldNumber(int64(size-1)))
	//
	for index := int(size) - 2; index >= 0; index-- {
		condition := typed.FieldEq{Left: i, Right: typed.NewFieldNumber(int64(index))}
		consequence := typed.Select(a, typed.NewFieldNumber(int64(index)))
		result = typed.IfElse(condition, consequence, result)
	}
	//
	return result
}

// FoldFieldExpression override for the Folder interface.
func (r *VariableReadRemover) FoldFieldExpression(e typed.FieldElementExpression) typed.FieldElementExpression {
	if sel, ok := e.(typed.FieldSelect); ok {
		return r.selectRead(sel.Array, sel.Index).(typed.FieldElementExpression)
	}
	//
	return typed.FoldFieldExpression(r, e)
}

// FoldBooleanExpression override for the Folder interface.
func (r *VariableReadRemover) FoldBooleanExpression(e typed.BooleanExpression) typed.BooleanExpression {
	if sel, ok := e.(typed.BoolSelect); ok {
		return r.selectRead(sel.Array, sel.Index).(typed.BooleanExpression)
	}
	//
	return typed.FoldBooleanExpression(r, e)
}

// FoldUintExpressionInner override for the Folder interface.
func (r *VariableReadRemover) FoldUintExpressionInner(bitwidth types.UBitwidth, e typed.UExpressionInner) typed.UExpressionInner {
	if sel, ok := e.(typed.UintSelect); ok {
		return r.selectRead(sel.Array, sel.Index).(typed.UExpression).Inner
	}
	//
	return typed.FoldUintExpressionInner(r, bitwidth, e)
}

// FoldArrayExpressionInner override for the Folder interface.
func (r *VariableReadRemover) FoldArrayExpressionInner(ty types.Type, size uint, e typed.ArrayExpressionInner) typed.ArrayExpressionInner {
	if sel, ok := e.(typed.ArraySelect); ok {
		return r.selectRead(sel.Array, sel.Index).(typed.ArrayExpression).Inner
	}
	//
	return typed.FoldArrayExpressionInner(r, ty, size, e)
}

// FoldStructExpressionInner override for the Folder interface.
func (r *VariableReadRemover) FoldStructExpressionInner(ty types.StructType, e typed.StructExpressionInner) typed.StructExpressionInner {
	if sel, ok := e.(typed.StructSelect); ok {
		return r.selectRead(sel.Array, sel.Index).(typed.StructExpression).Inner
	}
	//
	return typed.FoldStructExpressionInner(r, ty, e)
}

// FoldStatement override for the Folder interface: assertions emitted while
// folding a statement's expressions precede the rewritten statement.
func (r *VariableReadRemover) FoldStatement(s typed.TypedStatement) []typed.TypedStatement {
	folded := typed.FoldStatement(r, s)
	//
	emitted := r.statements
	r.statements = nil
	//
	return append(emitted, folded...)
}
