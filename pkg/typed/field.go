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

	"github.com/consensys/go-zirc/pkg/field"
	"github.com/consensys/go-zirc/pkg/types"
)

// FieldElementExpression is an expression whose static type is the field
// element type.
type FieldElementExpression interface {
	TypedExpression
	// isFieldElementExpression is an arm marker.
	isFieldElementExpression()
}

// FieldNumber is a field constant.
type FieldNumber struct {
	Value field.Element
}

// FieldIdentifier references a field-typed variable.
type FieldIdentifier struct {
	Id Identifier
}

// FieldAdd is the sum of two field expressions.
type FieldAdd struct{ Left, Right FieldElementExpression }

// FieldSub is the difference of two field expressions.
type FieldSub struct{ Left, Right FieldElementExpression }

// FieldMult is the product of two field expressions.
type FieldMult struct{ Left, Right FieldElementExpression }

// FieldDiv is the quotient of two field expressions.
type FieldDiv struct{ Left, Right FieldElementExpression }

// FieldPow raises a field expression to a given power.
type FieldPow struct{ Left, Right FieldElementExpression }

// FieldIfElse selects between two field expressions.
type FieldIfElse struct {
	Condition   BooleanExpression
	Consequence FieldElementExpression
	Alternative FieldElementExpression
}

// FieldFunctionCall calls a function returning a single field element.
type FieldFunctionCall struct {
	Key       types.FunctionKey
	Arguments []TypedExpression
}

// FieldSelect accesses an element of a field array.
type FieldSelect struct {
	Array ArrayExpression
	Index FieldElementExpression
}

// FieldMember accesses a field-typed struct member.
type FieldMember struct {
	Struct StructExpression
	Id     string
}

// NewFieldNumber constructs a field constant from a signed value.
func NewFieldNumber(val int64) FieldNumber {
	return FieldNumber{field.FromInt64(val)}
}

func (FieldNumber) isTypedExpression()       {}
func (FieldIdentifier) isTypedExpression()   {}
func (FieldAdd) isTypedExpression()          {}
func (FieldSub) isTypedExpression()          {}
func (FieldMult) isTypedExpression()         {}
func (FieldDiv) isTypedExpression()          {}
func (FieldPow) isTypedExpression()          {}
func (FieldIfElse) isTypedExpression()       {}
func (FieldFunctionCall) isTypedExpression() {}
func (FieldSelect) isTypedExpression()       {}
func (FieldMember) isTypedExpression()       {}

func (FieldNumber) isFieldElementExpression()       {}
func (FieldIdentifier) isFieldElementExpression()   {}
func (FieldAdd) isFieldElementExpression()          {}
func (FieldSub) isFieldElementExpression()          {}
func (FieldMult) isFieldElementExpression()         {}
func (FieldDiv) isFieldElementExpression()          {}
func (FieldPow) isFieldElementExpression()          {}
func (FieldIfElse) isFieldElementExpression()       {}
func (FieldFunctionCall) isFieldElementExpression() {}
func (FieldSelect) isFieldElementExpression()       {}
func (FieldMember) isFieldElementExpression()       {}

// Type implementation for the TypedExpression interface.
func (FieldNumber) Type() types.Type { return types.FieldElementType{} }

// Type implementation for the TypedExpression interface.
func (FieldIdentifier) Type() types.Type { return types.FieldElementType{} }

// Type implementation for the TypedExpression interface.
func (FieldAdd) Type() types.Type { return types.FieldElementType{} }

// Type implementation for the TypedExpression interface.
func (FieldSub) Type() types.Type { return types.FieldElementType{} }

// Type implementation for the TypedExpression interface.
func (FieldMult) Type() types.Type { return types.FieldElementType{} }

// Type implementation for the TypedExpression interface.
func (FieldDiv) Type() types.Type { return types.FieldElementType{} }

// Type implementation for the TypedExpression interface.
func (FieldPow) Type() types.Type { return types.FieldElementType{} }

// Type implementation for the TypedExpression interface.
func (FieldIfElse) Type() types.Type { return types.FieldElementType{} }

// Type implementation for the TypedExpression interface.
func (FieldFunctionCall) Type() types.Type { return types.FieldElementType{} }

// Type implementation for the TypedExpression interface.
func (FieldSelect) Type() types.Type { return types.FieldElementType{} }

// Type implementation for the TypedExpression interface.
func (FieldMember) Type() types.Type { return types.FieldElementType{} }

func (e FieldNumber) String() string     { return e.Value.String() }
func (e FieldIdentifier) String() string { return e.Id.String() }
func (e FieldAdd) String() string        { return fmt.Sprintf("(%s + %s)", e.Left, e.Right) }
func (e FieldSub) String() string        { return fmt.Sprintf("(%s - %s)", e.Left, e.Right) }
func (e FieldMult) String() string       { return fmt.Sprintf("(%s * %s)", e.Left, e.Right) }
func (e FieldDiv) String() string        { return fmt.Sprintf("(%s / %s)", e.Left, e.Right) }
func (e FieldPow) String() string        { return fmt.Sprintf("%s ** %s", e.Left, e.Right) }

func (e FieldIfElse) String() string {
	return fmt.Sprintf("if %s then %s else %s fi", e.Condition, e.Consequence, e.Alternative)
}

func (e FieldFunctionCall) String() string { return callString(e.Key, e.Arguments) }
func (e FieldSelect) String() string       { return fmt.Sprintf("%s[%s]", e.Array, e.Index) }
func (e FieldMember) String() string       { return fmt.Sprintf("%s.%s", e.Struct, e.Id) }
