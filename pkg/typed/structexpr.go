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

// StructExpression is a struct-typed expression: an inner expression
// annotated with its (nominal) struct type.
type StructExpression struct {
	Ty    types.StructType
	Inner StructExpressionInner
}

// NewStructExpression annotates an inner expression with its struct type.
func NewStructExpression(inner StructExpressionInner, ty types.StructType) StructExpression {
	return StructExpression{ty, inner}
}

func (StructExpression) isTypedExpression() {}

// Type implementation for the TypedExpression interface.
func (e StructExpression) Type() types.Type {
	return e.Ty
}

func (e StructExpression) String() string {
	return e.Inner.String()
}

// StructExpressionInner is the annotation-free body of a struct expression.
type StructExpressionInner interface {
	fmt.Stringer
	// isStructExpressionInner is an arm marker.
	isStructExpressionInner()
}

// StructIdentifier references a struct-typed variable.
type StructIdentifier struct {
	Id Identifier
}

// StructValue is an inline struct literal, with values in declaration
// order.
type StructValue struct {
	Items []TypedExpression
}

// StructFunctionCall calls a function returning a single struct.
type StructFunctionCall struct {
	Key       types.FunctionKey
	Arguments []TypedExpression
}

// StructIfElse selects between two struct expressions.
type StructIfElse struct {
	Condition   BooleanExpression
	Consequence StructExpression
	Alternative StructExpression
}

// StructSelect accesses an element of an array of structs.
type StructSelect struct {
	Array ArrayExpression
	Index FieldElementExpression
}

// StructMember accesses a struct-typed struct member.
type StructMember struct {
	Struct StructExpression
	Id     string
}

func (StructIdentifier) isStructExpressionInner()   {}
func (StructValue) isStructExpressionInner()        {}
func (StructFunctionCall) isStructExpressionInner() {}
func (StructIfElse) isStructExpressionInner()       {}
func (StructSelect) isStructExpressionInner()       {}
func (StructMember) isStructExpressionInner()       {}

func (e StructIdentifier) String() string { return e.Id.String() }

func (e StructValue) String() string {
	items := make([]string, len(e.Items))
	//
	for i, item := range e.Items {
		items[i] = item.String()
	}
	//
	return fmt.Sprintf("{%s}", strings.Join(items, ", "))
}

func (e StructFunctionCall) String() string { return callString(e.Key, e.Arguments) }

func (e StructIfElse) String() string {
	return fmt.Sprintf("if %s then %s else %s fi", e.Condition, e.Consequence, e.Alternative)
}

func (e StructSelect) String() string { return fmt.Sprintf("%s[%s]", e.Array, e.Index) }
func (e StructMember) String() string { return fmt.Sprintf("%s.%s", e.Struct, e.Id) }
