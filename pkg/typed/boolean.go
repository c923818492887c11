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

	"github.com/consensys/go-zirc/pkg/types"
)

// BooleanExpression is an expression whose static type is boolean.
type BooleanExpression interface {
	TypedExpression
	// isBooleanExpression is an arm marker.
	isBooleanExpression()
}

// BoolValue is a boolean constant.
type BoolValue struct {
	Value bool
}

// BoolIdentifier references a boolean-typed variable.
type BoolIdentifier struct {
	Id Identifier
}

// FieldEq compares two field expressions for equality.
type FieldEq struct{ Left, Right FieldElementExpression }

// BoolEq compares two boolean expressions for equality.
type BoolEq struct{ Left, Right BooleanExpression }

// ArrayEq compares two array expressions (of identical type) for equality.
type ArrayEq struct{ Left, Right ArrayExpression }

// StructEq compares two struct expressions (of identical type) for equality.
type StructEq struct{ Left, Right StructExpression }

// UintEq compares two unsigned integer expressions (of identical bitwidth)
// for equality.
type UintEq struct{ Left, Right UExpression }

// FieldLt is the strict less-than comparison on field expressions.
type FieldLt struct{ Left, Right FieldElementExpression }

// FieldLe is the less-or-equal comparison on field expressions.
type FieldLe struct{ Left, Right FieldElementExpression }

// FieldGe is the greater-or-equal comparison on field expressions.
type FieldGe struct{ Left, Right FieldElementExpression }

// FieldGt is the strict greater-than comparison on field expressions.
type FieldGt struct{ Left, Right FieldElementExpression }

// BoolOr is boolean disjunction.
type BoolOr struct{ Left, Right BooleanExpression }

// BoolAnd is boolean conjunction.
type BoolAnd struct{ Left, Right BooleanExpression }

// BoolNot is boolean negation.
type BoolNot struct{ Inner BooleanExpression }

// BoolIfElse selects between two boolean expressions.
type BoolIfElse struct {
	Condition   BooleanExpression
	Consequence BooleanExpression
	Alternative BooleanExpression
}

// BoolFunctionCall calls a function returning a single boolean.
type BoolFunctionCall struct {
	Key       types.FunctionKey
	Arguments []TypedExpression
}

// BoolSelect accesses an element of a boolean array.
type BoolSelect struct {
	Array ArrayExpression
	Index FieldElementExpression
}

// BoolMember accesses a boolean-typed struct member.
type BoolMember struct {
	Struct StructExpression
	Id     string
}

func (BoolValue) isTypedExpression()        {}
func (BoolIdentifier) isTypedExpression()   {}
func (FieldEq) isTypedExpression()          {}
func (BoolEq) isTypedExpression()           {}
func (ArrayEq) isTypedExpression()          {}
func (StructEq) isTypedExpression()         {}
func (UintEq) isTypedExpression()           {}
func (FieldLt) isTypedExpression()          {}
func (FieldLe) isTypedExpression()          {}
func (FieldGe) isTypedExpression()          {}
func (FieldGt) isTypedExpression()          {}
func (BoolOr) isTypedExpression()           {}
func (BoolAnd) isTypedExpression()          {}
func (BoolNot) isTypedExpression()          {}
func (BoolIfElse) isTypedExpression()       {}
func (BoolFunctionCall) isTypedExpression() {}
func (BoolSelect) isTypedExpression()       {}
func (BoolMember) isTypedExpression()       {}

func (BoolValue) isBooleanExpression()        {}
func (BoolIdentifier) isBooleanExpression()   {}
func (FieldEq) isBooleanExpression()          {}
func (BoolEq) isBooleanExpression()           {}
func (ArrayEq) isBooleanExpression()          {}
func (StructEq) isBooleanExpression()         {}
func (UintEq) isBooleanExpression()           {}
func (FieldLt) isBooleanExpression()          {}
func (FieldLe) isBooleanExpression()          {}
func (FieldGe) isBooleanExpression()          {}
func (FieldGt) isBooleanExpression()          {}
func (BoolOr) isBooleanExpression()           {}
func (BoolAnd) isBooleanExpression()          {}
func (BoolNot) isBooleanExpression()          {}
func (BoolIfElse) isBooleanExpression()       {}
func (BoolFunctionCall) isBooleanExpression() {}
func (BoolSelect) isBooleanExpression()       {}
func (BoolMember) isBooleanExpression()       {}

// Type implementation for the TypedExpression interface.
func (BoolValue) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (BoolIdentifier) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (FieldEq) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (BoolEq) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (ArrayEq) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (StructEq) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (UintEq) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (FieldLt) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (FieldLe) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (FieldGe) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (FieldGt) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (BoolOr) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (BoolAnd) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (BoolNot) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (BoolIfElse) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (BoolFunctionCall) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (BoolSelect) Type() types.Type { return types.BooleanType{} }

// Type implementation for the TypedExpression interface.
func (BoolMember) Type() types.Type { return types.BooleanType{} }

func (e BoolValue) String() string      { return fmt.Sprintf("%t", e.Value) }
func (e BoolIdentifier) String() string { return e.Id.String() }
func (e FieldEq) String() string        { return fmt.Sprintf("%s == %s", e.Left, e.Right) }
func (e BoolEq) String() string         { return fmt.Sprintf("%s == %s", e.Left, e.Right) }
func (e ArrayEq) String() string        { return fmt.Sprintf("%s == %s", e.Left, e.Right) }
func (e StructEq) String() string       { return fmt.Sprintf("%s == %s", e.Left, e.Right) }
func (e UintEq) String() string         { return fmt.Sprintf("%s == %s", e.Left, e.Right) }
func (e FieldLt) String() string        { return fmt.Sprintf("%s < %s", e.Left, e.Right) }
func (e FieldLe) String() string        { return fmt.Sprintf("%s <= %s", e.Left, e.Right) }
func (e FieldGe) String() string        { return fmt.Sprintf("%s >= %s", e.Left, e.Right) }
func (e FieldGt) String() string        { return fmt.Sprintf("%s > %s", e.Left, e.Right) }
func (e BoolOr) String() string         { return fmt.Sprintf("(%s || %s)", e.Left, e.Right) }
func (e BoolAnd) String() string        { return fmt.Sprintf("(%s && %s)", e.Left, e.Right) }
func (e BoolNot) String() string        { return fmt.Sprintf("!%s", e.Inner) }

func (e BoolIfElse) String() string {
	return fmt.Sprintf("if %s then %s else %s fi", e.Condition, e.Consequence, e.Alternative)
}

func (e BoolFunctionCall) String() string { return callString(e.Key, e.Arguments) }
func (e BoolSelect) String() string       { return fmt.Sprintf("%s[%s]", e.Array, e.Index) }
func (e BoolMember) String() string       { return fmt.Sprintf("%s.%s", e.Struct, e.Id) }
