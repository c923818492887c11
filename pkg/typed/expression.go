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

// Package typed defines the typed abstract syntax tree produced by semantic
// analysis, together with the Folder traversal over it.  Expressions are
// partitioned by their static type into five arms (field element, boolean,
// unsigned integer, array, struct), each forming its own recursive
// expression language.
package typed

import (
	"fmt"
	"strings"

	"github.com/consensys/go-zirc/pkg/types"
)

// TypedExpression is an expression of any arm.  Every expression carries its
// type by construction.
type TypedExpression interface {
	fmt.Stringer
	// Type returns the static type of this expression.
	Type() types.Type
	// isTypedExpression is a sum-type marker.
	isTypedExpression()
}

// TypedExpressionList is a function call in multiple-definition position,
// carrying the output types of the called function.
type TypedExpressionList struct {
	Key       types.FunctionKey
	Arguments []TypedExpression
	Types     []types.Type
}

func (l TypedExpressionList) String() string {
	args := make([]string, len(l.Arguments))
	//
	for i, a := range l.Arguments {
		args[i] = a.String()
	}
	//
	return fmt.Sprintf("%s(%s)", l.Key.Id, strings.Join(args, ", "))
}

// Select constructs the array access array[index] in the arm determined by
// the array's element type.
func Select(array ArrayExpression, index FieldElementExpression) TypedExpression {
	switch ty := array.ElementType.(type) {
	case types.FieldElementType:
		return FieldSelect{array, index}
	case types.BooleanType:
		return BoolSelect{array, index}
	case types.UintType:
		return NewUExpression(UintSelect{array, index}, ty.Bitwidth)
	case types.ArrayType:
		return NewArrayExpression(ArraySelect{array, index}, ty.Element, ty.Size)
	case types.StructType:
		return NewStructExpression(StructSelect{array, index}, ty)
	default:
		panic("unknown array element type")
	}
}

// IfElse constructs the conditional expression selecting between a
// consequence and alternative of matching type, in the arm determined by
// that type.
func IfElse(condition BooleanExpression, consequence TypedExpression, alternative TypedExpression) TypedExpression {
	switch consequence := consequence.(type) {
	case FieldElementExpression:
		return FieldIfElse{condition, consequence, alternative.(FieldElementExpression)}
	case BooleanExpression:
		return BoolIfElse{condition, consequence, alternative.(BooleanExpression)}
	case UExpression:
		return NewUExpression(UintIfElse{condition, consequence, alternative.(UExpression)}, consequence.Bitwidth)
	case ArrayExpression:
		inner := ArrayIfElse{condition, consequence, alternative.(ArrayExpression)}
		return NewArrayExpression(inner, consequence.ElementType, consequence.Size)
	case StructExpression:
		return NewStructExpression(StructIfElse{condition, consequence, alternative.(StructExpression)}, consequence.Ty)
	default:
		panic("unknown expression arm")
	}
}

// Member constructs the member access s.id in the arm determined by the
// declared member type.
func Member(s StructExpression, id string) TypedExpression {
	ty, ok := s.Ty.Member(id)
	if !ok {
		panic(fmt.Sprintf("struct %s has no member %s", s.Ty, id))
	}
	//
	switch ty := ty.(type) {
	case types.FieldElementType:
		return FieldMember{s, id}
	case types.BooleanType:
		return BoolMember{s, id}
	case types.UintType:
		return NewUExpression(UintMember{s, id}, ty.Bitwidth)
	case types.ArrayType:
		return NewArrayExpression(ArrayMember{s, id}, ty.Element, ty.Size)
	case types.StructType:
		return NewStructExpression(StructMember{s, id}, ty)
	default:
		panic("unknown member type")
	}
}

// IdentifierExpression constructs the identifier expression for a variable
// in the arm determined by its type.
func IdentifierExpression(v Variable) TypedExpression {
	switch ty := v.Type.(type) {
	case types.FieldElementType:
		return FieldIdentifier{v.Id}
	case types.BooleanType:
		return BoolIdentifier{v.Id}
	case types.UintType:
		return NewUExpression(UintIdentifier{v.Id}, ty.Bitwidth)
	case types.ArrayType:
		return NewArrayExpression(ArrayIdentifier{v.Id}, ty.Element, ty.Size)
	case types.StructType:
		return NewStructExpression(StructIdentifier{v.Id}, ty)
	default:
		panic("unknown variable type")
	}
}

// FunctionCallExpression constructs the single-output function call
// expression for a given key, in the arm determined by the output type.
func FunctionCallExpression(key types.FunctionKey, arguments []TypedExpression, output types.Type) TypedExpression {
	switch ty := output.(type) {
	case types.FieldElementType:
		return FieldFunctionCall{key, arguments}
	case types.BooleanType:
		return BoolFunctionCall{key, arguments}
	case types.UintType:
		return NewUExpression(UintFunctionCall{key, arguments}, ty.Bitwidth)
	case types.ArrayType:
		return NewArrayExpression(ArrayFunctionCall{key, arguments}, ty.Element, ty.Size)
	case types.StructType:
		return NewStructExpression(StructFunctionCall{key, arguments}, ty)
	default:
		panic("unknown output type")
	}
}

func callString(key types.FunctionKey, arguments []TypedExpression) string {
	args := make([]string, len(arguments))
	//
	for i, a := range arguments {
		args[i] = a.String()
	}
	//
	return fmt.Sprintf("%s(%s)", key.Id, strings.Join(args, ", "))
}
