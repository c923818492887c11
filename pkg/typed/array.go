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
	"fmt"
	"strings"

	"github.com/consensys/go-zirc/pkg/types"
)

// ArrayExpression is an array-typed expression: an inner expression
// annotated with its element type and size.
type ArrayExpression struct {
	ElementType types.Type
	Size        uint
	Inner       ArrayExpressionInner
}

// NewArrayExpression annotates an inner expression with its element type and
// size.
func NewArrayExpression(inner ArrayExpressionInner, element types.Type, size uint) ArrayExpression {
	return ArrayExpression{element, size, inner}
}

func (ArrayExpression) isTypedExpression() {}

// Type implementation for the TypedExpression interface.
func (e ArrayExpression) Type() types.Type {
	return types.NewArrayType(e.ElementType, e.Size)
}

func (e ArrayExpression) String() string {
	return e.Inner.String()
}

// ArrayExpressionInner is the annotation-free body of an array expression.
type ArrayExpressionInner interface {
	fmt.Stringer
	// isArrayExpressionInner is an arm marker.
	isArrayExpressionInner()
}

// ArrayIdentifier references an array-typed variable.
type ArrayIdentifier struct {
	Id Identifier
}

// ArrayValue is an inline array literal.
type ArrayValue struct {
	Items []TypedExpression
}

// ArrayFunctionCall calls a function returning a single array.
type ArrayFunctionCall struct {
	Key       types.FunctionKey
	Arguments []TypedExpression
}

// ArrayIfElse selects between two array expressions.
type ArrayIfElse struct {
	Condition   BooleanExpression
	Consequence ArrayExpression
	Alternative ArrayExpression
}

// ArraySelect accesses an element of an array of arrays.
type ArraySelect struct {
	Array ArrayExpression
	Index FieldElementExpression
}

// ArrayMember accesses an array-typed struct member.
type ArrayMember struct {
	Struct StructExpression
	Id     string
}

func (ArrayIdentifier) isArrayExpressionInner()   {}
func (ArrayValue) isArrayExpressionInner()        {}
func (ArrayFunctionCall) isArrayExpressionInner() {}
func (ArrayIfElse) isArrayExpressionInner()       {}
func (ArraySelect) isArrayExpressionInner()       {}
func (ArrayMember) isArrayExpressionInner()       {}

func (e ArrayIdentifier) String() string { return e.Id.String() }

func (e ArrayValue) String() string {
	items := make([]string, len(e.Items))
	//
	for i, item := range e.Items {
		items[i] = item.String()
	}
	//
	return fmt.Sprintf("[%s]", strings.Join(items, ", "))
}

func (e ArrayFunctionCall) String() string { return callString(e.Key, e.Arguments) }

func (e ArrayIfElse) String() string {
	return fmt.Sprintf("if %s then %s else %s fi", e.Condition, e.Consequence, e.Alternative)
}

func (e ArraySelect) String() string { return fmt.Sprintf("%s[%s]", e.Array, e.Index) }
func (e ArrayMember) String() string { return fmt.Sprintf("%s.%s", e.Struct, e.Id) }
