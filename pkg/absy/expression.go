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
package absy

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-zirc/pkg/util"
)

// Expression is an untyped expression as produced by the parser.
type Expression interface {
	fmt.Stringer
	// isExpression is a sum-type marker.
	isExpression()
}

// ExpressionNode is a positioned expression.
type ExpressionNode = Node[Expression]

// FieldConstant is an integer literal to be interpreted as a field element.
// The literal is carried as written; the checker enforces that it lies in
// the representable range of the field.
type FieldConstant struct {
	Value *big.Int
}

// BooleanConstant is a boolean literal.
type BooleanConstant struct {
	Value bool
}

// U8Constant is an 8-bit unsigned integer literal.
type U8Constant struct {
	Value uint8
}

// U16Constant is a 16-bit unsigned integer literal.
type U16Constant struct {
	Value uint16
}

// U32Constant is a 32-bit unsigned integer literal.
type U32Constant struct {
	Value uint32
}

// Identifier references a variable by name.
type Identifier struct {
	Id string
}

// Add is the sum of two expressions.
type Add struct{ Left, Right ExpressionNode }

// Sub is the difference of two expressions.
type Sub struct{ Left, Right ExpressionNode }

// Mult is the product of two expressions.
type Mult struct{ Left, Right ExpressionNode }

// Div is the quotient of two expressions.
type Div struct{ Left, Right ExpressionNode }

// Rem is the remainder of two expressions.
type Rem struct{ Left, Right ExpressionNode }

// Pow raises an expression to a given power.
type Pow struct{ Left, Right ExpressionNode }

// Lt is the strict less-than comparison.
type Lt struct{ Left, Right ExpressionNode }

// Le is the less-or-equal comparison.
type Le struct{ Left, Right ExpressionNode }

// Ge is the greater-or-equal comparison.
type Ge struct{ Left, Right ExpressionNode }

// Gt is the strict greater-than comparison.
type Gt struct{ Left, Right ExpressionNode }

// Eq is the equality comparison.
type Eq struct{ Left, Right ExpressionNode }

// And is boolean conjunction.
type And struct{ Left, Right ExpressionNode }

// Or is boolean disjunction.
type Or struct{ Left, Right ExpressionNode }

// Not is boolean negation, or bitwise complement on unsigned integers.
type Not struct{ Inner ExpressionNode }

// BitAnd is bitwise conjunction on unsigned integers.
type BitAnd struct{ Left, Right ExpressionNode }

// BitOr is bitwise disjunction on unsigned integers.
type BitOr struct{ Left, Right ExpressionNode }

// BitXor is bitwise exclusive-or on unsigned integers.
type BitXor struct{ Left, Right ExpressionNode }

// LeftShift shifts an unsigned integer left by a field-typed amount.
type LeftShift struct{ Left, Right ExpressionNode }

// RightShift shifts an unsigned integer right by a field-typed amount.
type RightShift struct{ Left, Right ExpressionNode }

// IfElse selects between two expressions based on a boolean condition.
type IfElse struct {
	Condition   ExpressionNode
	Consequence ExpressionNode
	Alternative ExpressionNode
}

// FunctionCall applies a named function to a list of arguments.
type FunctionCall struct {
	Id        string
	Arguments []ExpressionNode
}

// Select accesses an array, either at a single index or over a range.
type Select struct {
	Array ExpressionNode
	Index RangeOrExpression
}

// Member accesses a named member of a struct.
type Member struct {
	Struct ExpressionNode
	Id     string
}

// InlineArray is a non-empty array literal, whose items may include spreads.
type InlineArray struct {
	Items []SpreadOrExpression
}

// InlineStructMember pairs a member name with its value inside a struct
// literal.
type InlineStructMember struct {
	Id    string
	Value ExpressionNode
}

// InlineStruct is a struct literal for a named struct type.  Member order in
// the literal is free; the checker reorders to declaration order.
type InlineStruct struct {
	Id      string
	Members []InlineStructMember
}

// RangeOrExpression is an array access index: either a single expression or
// a range with optional bounds.
type RangeOrExpression interface {
	// isRangeOrExpression is a sum-type marker.
	isRangeOrExpression()
}

// ExpressionIndex is a single-expression array index.
type ExpressionIndex struct {
	Expression ExpressionNode
}

// RangeIndex is a range array index.
type RangeIndex struct {
	Range RangeNode
}

// Range gives optional lower and upper bounds, which default to 0 and the
// array size respectively.
type Range struct {
	From util.Option[ExpressionNode]
	To   util.Option[ExpressionNode]
}

// RangeNode is a positioned range.
type RangeNode = Node[Range]

// SpreadOrExpression is an array literal item: either a single expression or
// a spread of another array.
type SpreadOrExpression interface {
	// isSpreadOrExpression is a sum-type marker.
	isSpreadOrExpression()
}

// ExpressionItem is a single-expression array literal item.
type ExpressionItem struct {
	Expression ExpressionNode
}

// SpreadItem spreads the elements of an array expression into the enclosing
// array literal.
type SpreadItem struct {
	Spread SpreadNode
}

// Spread holds the array expression being spread.
type Spread struct {
	Expression ExpressionNode
}

// SpreadNode is a positioned spread.
type SpreadNode = Node[Spread]

func (FieldConstant) isExpression()   {}
func (BooleanConstant) isExpression() {}
func (U8Constant) isExpression()      {}
func (U16Constant) isExpression()     {}
func (U32Constant) isExpression()     {}
func (Identifier) isExpression()      {}
func (Add) isExpression()             {}
func (Sub) isExpression()             {}
func (Mult) isExpression()            {}
func (Div) isExpression()             {}
func (Rem) isExpression()             {}
func (Pow) isExpression()             {}
func (Lt) isExpression()              {}
func (Le) isExpression()              {}
func (Ge) isExpression()              {}
func (Gt) isExpression()              {}
func (Eq) isExpression()              {}
func (And) isExpression()             {}
func (Or) isExpression()              {}
func (Not) isExpression()             {}
func (BitAnd) isExpression()          {}
func (BitOr) isExpression()           {}
func (BitXor) isExpression()          {}
func (LeftShift) isExpression()       {}
func (RightShift) isExpression()      {}
func (IfElse) isExpression()          {}
func (FunctionCall) isExpression()    {}
func (Select) isExpression()          {}
func (Member) isExpression()          {}
func (InlineArray) isExpression()     {}
func (InlineStruct) isExpression()    {}

func (ExpressionIndex) isRangeOrExpression() {}
func (RangeIndex) isRangeOrExpression()      {}

func (i ExpressionIndex) String() string { return i.Expression.String() }
func (i RangeIndex) String() string      { return i.Range.Value.String() }

func (ExpressionItem) isSpreadOrExpression() {}
func (SpreadItem) isSpreadOrExpression()     {}

func (e FieldConstant) String() string   { return e.Value.String() }
func (e BooleanConstant) String() string { return fmt.Sprintf("%t", e.Value) }
func (e U8Constant) String() string      { return fmt.Sprintf("%d", e.Value) }
func (e U16Constant) String() string     { return fmt.Sprintf("%d", e.Value) }
func (e U32Constant) String() string     { return fmt.Sprintf("%d", e.Value) }
func (e Identifier) String() string      { return e.Id }

func (e Add) String() string        { return fmt.Sprintf("(%s + %s)", e.Left, e.Right) }
func (e Sub) String() string        { return fmt.Sprintf("(%s - %s)", e.Left, e.Right) }
func (e Mult) String() string       { return fmt.Sprintf("(%s * %s)", e.Left, e.Right) }
func (e Div) String() string        { return fmt.Sprintf("(%s / %s)", e.Left, e.Right) }
func (e Rem) String() string        { return fmt.Sprintf("(%s %% %s)", e.Left, e.Right) }
func (e Pow) String() string        { return fmt.Sprintf("%s ** %s", e.Left, e.Right) }
func (e Lt) String() string         { return fmt.Sprintf("%s < %s", e.Left, e.Right) }
func (e Le) String() string         { return fmt.Sprintf("%s <= %s", e.Left, e.Right) }
func (e Ge) String() string         { return fmt.Sprintf("%s >= %s", e.Left, e.Right) }
func (e Gt) String() string         { return fmt.Sprintf("%s > %s", e.Left, e.Right) }
func (e Eq) String() string         { return fmt.Sprintf("%s == %s", e.Left, e.Right) }
func (e And) String() string        { return fmt.Sprintf("%s && %s", e.Left, e.Right) }
func (e Or) String() string         { return fmt.Sprintf("%s || %s", e.Left, e.Right) }
func (e Not) String() string        { return fmt.Sprintf("!%s", e.Inner) }
func (e BitAnd) String() string     { return fmt.Sprintf("%s & %s", e.Left, e.Right) }
func (e BitOr) String() string      { return fmt.Sprintf("%s | %s", e.Left, e.Right) }
func (e BitXor) String() string     { return fmt.Sprintf("%s ^ %s", e.Left, e.Right) }
func (e LeftShift) String() string  { return fmt.Sprintf("%s << %s", e.Left, e.Right) }
func (e RightShift) String() string { return fmt.Sprintf("%s >> %s", e.Left, e.Right) }

func (e IfElse) String() string {
	return fmt.Sprintf("if %s then %s else %s fi", e.Condition, e.Consequence, e.Alternative)
}

func (e FunctionCall) String() string {
	args := make([]string, len(e.Arguments))
	//
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	//
	return fmt.Sprintf("%s(%s)", e.Id, strings.Join(args, ", "))
}

func (e Select) String() string {
	switch index := e.Index.(type) {
	case ExpressionIndex:
		return fmt.Sprintf("%s[%s]", e.Array, index.Expression)
	case RangeIndex:
		return fmt.Sprintf("%s[%s]", e.Array, index.Range.Value)
	default:
		panic("unknown array index")
	}
}

func (e Member) String() string {
	return fmt.Sprintf("%s.%s", e.Struct, e.Id)
}

func (e InlineArray) String() string {
	items := make([]string, len(e.Items))
	//
	for i, item := range e.Items {
		switch item := item.(type) {
		case ExpressionItem:
			items[i] = item.Expression.String()
		case SpreadItem:
			items[i] = item.Spread.String()
		default:
			panic("unknown array literal item")
		}
	}
	//
	return fmt.Sprintf("[%s]", strings.Join(items, ", "))
}

func (e InlineStruct) String() string {
	members := make([]string, len(e.Members))
	//
	for i, m := range e.Members {
		members[i] = fmt.Sprintf("%s: %s", m.Id, m.Value)
	}
	//
	return fmt.Sprintf("%s {%s}", e.Id, strings.Join(members, ", "))
}

func (r Range) String() string {
	var from, to string
	//
	if r.From.HasValue() {
		from = r.From.Unwrap().String()
	}
	//
	if r.To.HasValue() {
		to = r.To.Unwrap().String()
	}
	//
	return fmt.Sprintf("%s..%s", from, to)
}

func (s Spread) String() string {
	return fmt.Sprintf("...%s", s.Expression)
}
