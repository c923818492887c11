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

// UExpression is an unsigned integer expression: an inner expression
// annotated with its bitwidth.
type UExpression struct {
	Bitwidth types.UBitwidth
	Inner    UExpressionInner
}

// NewUExpression annotates an inner expression with its bitwidth.
func NewUExpression(inner UExpressionInner, bitwidth types.UBitwidth) UExpression {
	return UExpression{bitwidth, inner}
}

func (UExpression) isTypedExpression() {}

// Type implementation for the TypedExpression interface.
func (e UExpression) Type() types.Type {
	return types.NewUintType(e.Bitwidth)
}

func (e UExpression) String() string {
	return e.Inner.String()
}

// UExpressionInner is the bitwidth-agnostic body of an unsigned integer
// expression.
type UExpressionInner interface {
	fmt.Stringer
	// isUExpressionInner is an arm marker.
	isUExpressionInner()
}

// UintValue is an unsigned integer constant.
type UintValue struct {
	Value uint64
}

// UintIdentifier references a uint-typed variable.
type UintIdentifier struct {
	Id Identifier
}

// UintAdd is the (wrapping) sum of two uint expressions.
type UintAdd struct{ Left, Right UExpression }

// UintSub is the (wrapping) difference of two uint expressions.
type UintSub struct{ Left, Right UExpression }

// UintMult is the (wrapping) product of two uint expressions.
type UintMult struct{ Left, Right UExpression }

// UintDiv is the integer quotient of two uint expressions.
type UintDiv struct{ Left, Right UExpression }

// UintRem is the integer remainder of two uint expressions.
type UintRem struct{ Left, Right UExpression }

// UintXor is bitwise exclusive-or.
type UintXor struct{ Left, Right UExpression }

// UintAnd is bitwise conjunction.
type UintAnd struct{ Left, Right UExpression }

// UintOr is bitwise disjunction.
type UintOr struct{ Left, Right UExpression }

// UintNot is bitwise complement.
type UintNot struct{ Inner UExpression }

// UintLeftShift shifts left by a field-typed amount.
type UintLeftShift struct {
	Value UExpression
	By    FieldElementExpression
}

// UintRightShift shifts right by a field-typed amount.
type UintRightShift struct {
	Value UExpression
	By    FieldElementExpression
}

// UintIfElse selects between two uint expressions.
type UintIfElse struct {
	Condition   BooleanExpression
	Consequence UExpression
	Alternative UExpression
}

// UintFunctionCall calls a function returning a single unsigned integer.
type UintFunctionCall struct {
	Key       types.FunctionKey
	Arguments []TypedExpression
}

// UintSelect accesses an element of a uint array.
type UintSelect struct {
	Array ArrayExpression
	Index FieldElementExpression
}

// UintMember accesses a uint-typed struct member.
type UintMember struct {
	Struct StructExpression
	Id     string
}

func (UintValue) isUExpressionInner()        {}
func (UintIdentifier) isUExpressionInner()   {}
func (UintAdd) isUExpressionInner()          {}
func (UintSub) isUExpressionInner()          {}
func (UintMult) isUExpressionInner()         {}
func (UintDiv) isUExpressionInner()          {}
func (UintRem) isUExpressionInner()          {}
func (UintXor) isUExpressionInner()          {}
func (UintAnd) isUExpressionInner()          {}
func (UintOr) isUExpressionInner()           {}
func (UintNot) isUExpressionInner()          {}
func (UintLeftShift) isUExpressionInner()    {}
func (UintRightShift) isUExpressionInner()   {}
func (UintIfElse) isUExpressionInner()       {}
func (UintFunctionCall) isUExpressionInner() {}
func (UintSelect) isUExpressionInner()       {}
func (UintMember) isUExpressionInner()       {}

// UAdd l + r, preserving the common bitwidth.
func UAdd(l UExpression, r UExpression) UExpression {
	return NewUExpression(UintAdd{l, r}, l.Bitwidth)
}

// USub l - r, preserving the common bitwidth.
func USub(l UExpression, r UExpression) UExpression {
	return NewUExpression(UintSub{l, r}, l.Bitwidth)
}

// UMult l * r, preserving the common bitwidth.
func UMult(l UExpression, r UExpression) UExpression {
	return NewUExpression(UintMult{l, r}, l.Bitwidth)
}

// UDiv l / r, preserving the common bitwidth.
func UDiv(l UExpression, r UExpression) UExpression {
	return NewUExpression(UintDiv{l, r}, l.Bitwidth)
}

// URem l % r, preserving the common bitwidth.
func URem(l UExpression, r UExpression) UExpression {
	return NewUExpression(UintRem{l, r}, l.Bitwidth)
}

// UXor l ^ r, preserving the common bitwidth.
func UXor(l UExpression, r UExpression) UExpression {
	return NewUExpression(UintXor{l, r}, l.Bitwidth)
}

// UAnd l & r, preserving the common bitwidth.
func UAnd(l UExpression, r UExpression) UExpression {
	return NewUExpression(UintAnd{l, r}, l.Bitwidth)
}

// UOr l | r, preserving the common bitwidth.
func UOr(l UExpression, r UExpression) UExpression {
	return NewUExpression(UintOr{l, r}, l.Bitwidth)
}

// UNot !e, preserving the bitwidth.
func UNot(e UExpression) UExpression {
	return NewUExpression(UintNot{e}, e.Bitwidth)
}

// ULeftShift e << by, preserving the bitwidth.
func ULeftShift(e UExpression, by FieldElementExpression) UExpression {
	return NewUExpression(UintLeftShift{e, by}, e.Bitwidth)
}

// URightShift e >> by, preserving the bitwidth.
func URightShift(e UExpression, by FieldElementExpression) UExpression {
	return NewUExpression(UintRightShift{e, by}, e.Bitwidth)
}

func (e UintValue) String() string      { return fmt.Sprintf("%d", e.Value) }
func (e UintIdentifier) String() string { return e.Id.String() }
func (e UintAdd) String() string        { return fmt.Sprintf("(%s + %s)", e.Left, e.Right) }
func (e UintSub) String() string        { return fmt.Sprintf("(%s - %s)", e.Left, e.Right) }
func (e UintMult) String() string       { return fmt.Sprintf("(%s * %s)", e.Left, e.Right) }
func (e UintDiv) String() string        { return fmt.Sprintf("(%s / %s)", e.Left, e.Right) }
func (e UintRem) String() string        { return fmt.Sprintf("(%s %% %s)", e.Left, e.Right) }
func (e UintXor) String() string        { return fmt.Sprintf("(%s ^ %s)", e.Left, e.Right) }
func (e UintAnd) String() string        { return fmt.Sprintf("(%s & %s)", e.Left, e.Right) }
func (e UintOr) String() string         { return fmt.Sprintf("(%s | %s)", e.Left, e.Right) }
func (e UintNot) String() string        { return fmt.Sprintf("!%s", e.Inner) }
func (e UintLeftShift) String() string  { return fmt.Sprintf("(%s << %s)", e.Value, e.By) }
func (e UintRightShift) String() string { return fmt.Sprintf("(%s >> %s)", e.Value, e.By) }

func (e UintIfElse) String() string {
	return fmt.Sprintf("if %s then %s else %s fi", e.Condition, e.Consequence, e.Alternative)
}

func (e UintFunctionCall) String() string { return callString(e.Key, e.Arguments) }
func (e UintSelect) String() string       { return fmt.Sprintf("%s[%s]", e.Array, e.Index) }
func (e UintMember) String() string       { return fmt.Sprintf("%s.%s", e.Struct, e.Id) }
