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
package semantics

import (
	"github.com/consensys/go-zirc/pkg/absy"
	"github.com/consensys/go-zirc/pkg/field"
	"github.com/consensys/go-zirc/pkg/typed"
	"github.com/consensys/go-zirc/pkg/types"
	"github.com/consensys/go-zirc/pkg/util/source"
)

// sourcePosition is a shorthand used throughout the checker.
type sourcePosition = source.Position

// checkExpression checks a single expression, short-circuiting on the first
// error encountered within it.
func (c *Checker) checkExpression(node absy.ExpressionNode, moduleId types.ModuleId,
	typeMap TypeMap) (typed.TypedExpression, *ErrorInner) {
	start, end := node.Pos()
	//
	switch expr := node.Value.(type) {
	case absy.BooleanConstant:
		return typed.BoolValue{Value: expr.Value}, nil
	case absy.FieldConstant:
		if !field.InRange(expr.Value) {
			return nil, errAt(start, end, "Field constant not in the representable range [%s, %s]",
				field.MinValue(), field.MaxValue())
		}
		//
		return typed.FieldNumber{Value: field.FromBig(expr.Value)}, nil
	case absy.U8Constant:
		return typed.NewUExpression(typed.UintValue{Value: uint64(expr.Value)}, types.B8), nil
	case absy.U16Constant:
		return typed.NewUExpression(typed.UintValue{Value: uint64(expr.Value)}, types.B16), nil
	case absy.U32Constant:
		return typed.NewUExpression(typed.UintValue{Value: uint64(expr.Value)}, types.B32), nil
	case absy.Identifier:
		// The identifier must be defined in scope.
		variable, ok := c.getScope(expr.Id)
		if !ok {
			return nil, errAt(start, end, "Identifier \"%s\" is undefined", expr.Id)
		}
		//
		return typed.IdentifierExpression(typed.NewVariable(typed.NewIdentifier(expr.Id), variable.Type)), nil
	case absy.Add:
		return c.checkArithmetic(expr.Left, expr.Right, "+", start, end, moduleId, typeMap,
			func(l, r typed.FieldElementExpression) typed.FieldElementExpression {
				return typed.FieldAdd{Left: l, Right: r}
			}, typed.UAdd)
	case absy.Sub:
		return c.checkArithmetic(expr.Left, expr.Right, "-", start, end, moduleId, typeMap,
			func(l, r typed.FieldElementExpression) typed.FieldElementExpression {
				return typed.FieldSub{Left: l, Right: r}
			}, typed.USub)
	case absy.Mult:
		return c.checkArithmetic(expr.Left, expr.Right, "*", start, end, moduleId, typeMap,
			func(l, r typed.FieldElementExpression) typed.FieldElementExpression {
				return typed.FieldMult{Left: l, Right: r}
			}, typed.UMult)
	case absy.Div:
		return c.checkArithmetic(expr.Left, expr.Right, "/", start, end, moduleId, typeMap,
			func(l, r typed.FieldElementExpression) typed.FieldElementExpression {
				return typed.FieldDiv{Left: l, Right: r}
			}, typed.UDiv)
	case absy.Rem:
		return c.checkUintBinary(expr.Left, expr.Right, "%", start, end, moduleId, typeMap, typed.URem)
	case absy.Pow:
		left, right, err := c.checkPair(expr.Left, expr.Right, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		lf, lok := left.(typed.FieldElementExpression)
		rf, rok := right.(typed.FieldElementExpression)
		//
		if !lok || !rok {
			return nil, errAt(start, end, "Expected only field elements, found %s, %s",
				left.Type(), right.Type())
		}
		//
		return typed.FieldPow{Left: lf, Right: rf}, nil
	case absy.IfElse:
		return c.checkIfElse(expr, start, end, moduleId, typeMap)
	case absy.FunctionCall:
		return c.checkFunctionCall(expr, start, end, moduleId, typeMap)
	case absy.Lt:
		return c.checkFieldComparison(expr.Left, expr.Right, start, end, moduleId, typeMap,
			func(l, r typed.FieldElementExpression) typed.BooleanExpression {
				return typed.FieldLt{Left: l, Right: r}
			})
	case absy.Le:
		return c.checkFieldComparison(expr.Left, expr.Right, start, end, moduleId, typeMap,
			func(l, r typed.FieldElementExpression) typed.BooleanExpression {
				return typed.FieldLe{Left: l, Right: r}
			})
	case absy.Ge:
		return c.checkFieldComparison(expr.Left, expr.Right, start, end, moduleId, typeMap,
			func(l, r typed.FieldElementExpression) typed.BooleanExpression {
				return typed.FieldGe{Left: l, Right: r}
			})
	case absy.Gt:
		return c.checkFieldComparison(expr.Left, expr.Right, start, end, moduleId, typeMap,
			func(l, r typed.FieldElementExpression) typed.BooleanExpression {
				return typed.FieldGt{Left: l, Right: r}
			})
	case absy.Eq:
		return c.checkEquality(expr, start, end, moduleId, typeMap)
	case absy.And:
		left, right, err := c.checkPair(expr.Left, expr.Right, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		lb, lok := left.(typed.BooleanExpression)
		rb, rok := right.(typed.BooleanExpression)
		//
		if !lok || !rok {
			return nil, errAt(start, end, "cannot apply boolean operators to %s and %s",
				left.Type(), right.Type())
		}
		//
		return typed.BoolAnd{Left: lb, Right: rb}, nil
	case absy.Or:
		left, right, err := c.checkPair(expr.Left, expr.Right, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		lb, lok := left.(typed.BooleanExpression)
		rb, rok := right.(typed.BooleanExpression)
		//
		if !lok || !rok {
			return nil, errAt(start, end, "cannot compare %s to %s", left.Type(), right.Type())
		}
		//
		return typed.BoolOr{Left: lb, Right: rb}, nil
	case absy.Not:
		inner, err := c.checkExpression(expr.Inner, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		// Negation is boolean not, or bitwise complement on unsigned
		// integers.
		switch inner := inner.(type) {
		case typed.BooleanExpression:
			return typed.BoolNot{Inner: inner}, nil
		case typed.UExpression:
			return typed.UNot(inner), nil
		default:
			return nil, errAt(start, end, "cannot negate %s", inner.Type())
		}
	case absy.BitAnd:
		return c.checkUintBinary(expr.Left, expr.Right, "&", start, end, moduleId, typeMap, typed.UAnd)
	case absy.BitOr:
		return c.checkUintBinary(expr.Left, expr.Right, "|", start, end, moduleId, typeMap, typed.UOr)
	case absy.BitXor:
		return c.checkUintBinary(expr.Left, expr.Right, "^", start, end, moduleId, typeMap, typed.UXor)
	case absy.LeftShift:
		return c.checkShift(expr.Left, expr.Right, "left-shift", start, end, moduleId, typeMap, typed.ULeftShift)
	case absy.RightShift:
		return c.checkShift(expr.Left, expr.Right, "right-shift", start, end, moduleId, typeMap, typed.URightShift)
	case absy.Select:
		return c.checkSelect(expr, start, end, moduleId, typeMap)
	case absy.Member:
		return c.checkMember(expr, start, end, moduleId, typeMap)
	case absy.InlineArray:
		return c.checkInlineArray(expr, start, end, moduleId, typeMap)
	case absy.InlineStruct:
		return c.checkInlineStruct(expr, start, end, moduleId, typeMap)
	default:
		panic("unknown expression")
	}
}

// checkPair checks both sides of a binary expression.
func (c *Checker) checkPair(left absy.ExpressionNode, right absy.ExpressionNode,
	moduleId types.ModuleId, typeMap TypeMap) (typed.TypedExpression, typed.TypedExpression, *ErrorInner) {
	l, err := c.checkExpression(left, moduleId, typeMap)
	if err != nil {
		return nil, nil, err
	}
	//
	r, err := c.checkExpression(right, moduleId, typeMap)
	if err != nil {
		return nil, nil, err
	}
	//
	return l, r, nil
}

// checkArithmetic checks an arithmetic operator supported on field elements
// and on unsigned integers of equal bitwidth.
func (c *Checker) checkArithmetic(left absy.ExpressionNode, right absy.ExpressionNode, op string,
	start, end sourcePosition, moduleId types.ModuleId, typeMap TypeMap,
	fieldOp func(typed.FieldElementExpression, typed.FieldElementExpression) typed.FieldElementExpression,
	uintOp func(typed.UExpression, typed.UExpression) typed.UExpression) (typed.TypedExpression, *ErrorInner) {
	l, r, err := c.checkPair(left, right, moduleId, typeMap)
	if err != nil {
		return nil, err
	}
	//
	if lf, ok := l.(typed.FieldElementExpression); ok {
		if rf, ok := r.(typed.FieldElementExpression); ok {
			return fieldOp(lf, rf), nil
		}
	}
	//
	if lu, ok := l.(typed.UExpression); ok {
		if ru, ok := r.(typed.UExpression); ok && lu.Bitwidth == ru.Bitwidth {
			return uintOp(lu, ru), nil
		}
	}
	//
	return nil, errAt(start, end, "Cannot apply `%s` to %s, %s", op, l.Type(), r.Type())
}

// checkUintBinary checks an operator supported only on unsigned integers of
// equal bitwidth.
func (c *Checker) checkUintBinary(left absy.ExpressionNode, right absy.ExpressionNode, op string,
	start, end sourcePosition, moduleId types.ModuleId, typeMap TypeMap,
	uintOp func(typed.UExpression, typed.UExpression) typed.UExpression) (typed.TypedExpression, *ErrorInner) {
	l, r, err := c.checkPair(left, right, moduleId, typeMap)
	if err != nil {
		return nil, err
	}
	//
	if lu, ok := l.(typed.UExpression); ok {
		if ru, ok := r.(typed.UExpression); ok && lu.Bitwidth == ru.Bitwidth {
			return uintOp(lu, ru), nil
		}
	}
	//
	return nil, errAt(start, end, "Cannot apply `%s` to %s, %s", op, l.Type(), r.Type())
}

// checkShift checks a shift of an unsigned integer by a field-typed amount.
func (c *Checker) checkShift(left absy.ExpressionNode, right absy.ExpressionNode, op string,
	start, end sourcePosition, moduleId types.ModuleId, typeMap TypeMap,
	shiftOp func(typed.UExpression, typed.FieldElementExpression) typed.UExpression) (typed.TypedExpression, *ErrorInner) {
	l, r, err := c.checkPair(left, right, moduleId, typeMap)
	if err != nil {
		return nil, err
	}
	//
	if lu, ok := l.(typed.UExpression); ok {
		if rf, ok := r.(typed.FieldElementExpression); ok {
			return shiftOp(lu, rf), nil
		}
	}
	//
	return nil, errAt(start, end, "cannot %s %s by %s", op, l.Type(), r.Type())
}

// checkFieldComparison checks an order comparison, which is defined on field
// elements only.
func (c *Checker) checkFieldComparison(left absy.ExpressionNode, right absy.ExpressionNode,
	start, end sourcePosition, moduleId types.ModuleId, typeMap TypeMap,
	cmp func(typed.FieldElementExpression, typed.FieldElementExpression) typed.BooleanExpression) (typed.TypedExpression, *ErrorInner) {
	l, r, err := c.checkPair(left, right, moduleId, typeMap)
	if err != nil {
		return nil, err
	}
	//
	if lf, ok := l.(typed.FieldElementExpression); ok {
		if rf, ok := r.(typed.FieldElementExpression); ok {
			return cmp(lf, rf), nil
		}
	}
	//
	return nil, errAt(start, end, "Cannot compare %s of type %s to %s of type %s",
		l, l.Type(), r, r.Type())
}

// checkEquality checks equality, which is permitted within every arm but
// requires identical types on composite operands.
func (c *Checker) checkEquality(expr absy.Eq, start, end sourcePosition,
	moduleId types.ModuleId, typeMap TypeMap) (typed.TypedExpression, *ErrorInner) {
	l, r, err := c.checkPair(expr.Left, expr.Right, moduleId, typeMap)
	if err != nil {
		return nil, err
	}
	//
	mismatch := func() *ErrorInner {
		return errAt(start, end, "Cannot compare %s of type %s to %s of type %s",
			l, l.Type(), r, r.Type())
	}
	//
	switch left := l.(type) {
	case typed.UExpression:
		if right, ok := r.(typed.UExpression); ok && left.Bitwidth == right.Bitwidth {
			return typed.UintEq{Left: left, Right: right}, nil
		}
	case typed.ArrayExpression:
		if right, ok := r.(typed.ArrayExpression); ok && left.Type().Equal(right.Type()) {
			return typed.ArrayEq{Left: left, Right: right}, nil
		}
	case typed.StructExpression:
		if right, ok := r.(typed.StructExpression); ok && left.Type().Equal(right.Type()) {
			return typed.StructEq{Left: left, Right: right}, nil
		}
	case typed.FieldElementExpression:
		if right, ok := r.(typed.FieldElementExpression); ok {
			return typed.FieldEq{Left: left, Right: right}, nil
		}
	case typed.BooleanExpression:
		if right, ok := r.(typed.BooleanExpression); ok {
			return typed.BoolEq{Left: left, Right: right}, nil
		}
	}
	//
	return nil, mismatch()
}

// checkIfElse checks a conditional expression: the condition must be boolean
// and both branches must have the same type.
func (c *Checker) checkIfElse(expr absy.IfElse, start, end sourcePosition,
	moduleId types.ModuleId, typeMap TypeMap) (typed.TypedExpression, *ErrorInner) {
	condition, err := c.checkExpression(expr.Condition, moduleId, typeMap)
	if err != nil {
		return nil, err
	}
	//
	consequence, err := c.checkExpression(expr.Consequence, moduleId, typeMap)
	if err != nil {
		return nil, err
	}
	//
	alternative, err := c.checkExpression(expr.Alternative, moduleId, typeMap)
	if err != nil {
		return nil, err
	}
	//
	boolean, ok := condition.(typed.BooleanExpression)
	if !ok {
		return nil, errAt(start, end, "{condition} after `if` should be a boolean, found %s",
			condition.Type())
	}
	//
	if !consequence.Type().Equal(alternative.Type()) {
		return nil, errAt(start, end,
			"{consequence} and {alternative} in `if/else` expression should have the same type, found %s, %s",
			consequence.Type(), alternative.Type())
	}
	//
	return typed.IfElse(boolean, consequence, alternative), nil
}

// checkFunctionCall checks a call in expression position.  Outside of a
// multiple definition, a call must have a single return value whose type is
// inferred from the found function.
func (c *Checker) checkFunctionCall(expr absy.FunctionCall, start, end sourcePosition,
	moduleId types.ModuleId, typeMap TypeMap) (typed.TypedExpression, *ErrorInner) {
	var (
		arguments     []typed.TypedExpression
		argumentTypes []types.Type
	)
	//
	for _, arg := range expr.Arguments {
		argument, err := c.checkExpression(arg, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		arguments = append(arguments, argument)
		argumentTypes = append(argumentTypes, argument.Type())
	}
	// The output type is inferred, so the query carries a single unknown
	// output hint.
	query := NewFunctionQuery(expr.Id, argumentTypes, typeHintsNone())
	//
	key, ok := c.findFunction(query)
	if !ok {
		return nil, errAt(start, end,
			"Function definition for function %s with signature %s not found.", expr.Id, query)
	}
	//
	if n := len(key.Signature.Outputs); n != 1 {
		return nil, errAt(start, end, "%s returns %d values but is called outside of a definition",
			key.Id, n)
	}
	//
	return typed.FunctionCallExpression(key, arguments, key.Signature.Outputs[0]), nil
}

// checkSelect checks an array access, which either takes a single
// field-typed index, or a range with constant bounds producing an inline
// array of the selected elements.
func (c *Checker) checkSelect(expr absy.Select, start, end sourcePosition,
	moduleId types.ModuleId, typeMap TypeMap) (typed.TypedExpression, *ErrorInner) {
	array, err := c.checkExpression(expr.Array, moduleId, typeMap)
	if err != nil {
		return nil, err
	}
	//
	switch index := expr.Index.(type) {
	case absy.RangeIndex:
		arrayExpr, ok := array.(typed.ArrayExpression)
		if !ok {
			return nil, errAt(start, end, "Cannot access slice of expression %s of type %s",
				array, array.Type())
		}
		//
		return c.checkRangeSelect(arrayExpr, index.Range, start, end, moduleId, typeMap)
	case absy.ExpressionIndex:
		indexChecked, err := c.checkExpression(index.Expression, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		arrayExpr, aok := array.(typed.ArrayExpression)
		indexField, iok := indexChecked.(typed.FieldElementExpression)
		//
		if !aok || !iok {
			return nil, errAt(start, end, "Cannot access element %s on expression of type %s",
				indexChecked, array.Type())
		}
		//
		return typed.Select(arrayExpr, indexField), nil
	default:
		panic("unknown array index")
	}
}

// checkRangeSelect checks a range access a[from..to].  Both bounds must be
// constant field literals within the array bounds; omitted bounds default to
// 0 and the array size.  Array sizes are part of types, so the bounds cannot
// be deferred to later constant propagation.
func (c *Checker) checkRangeSelect(array typed.ArrayExpression, rangeNode absy.RangeNode,
	start, end sourcePosition, moduleId types.ModuleId, typeMap TypeMap) (typed.TypedExpression, *ErrorInner) {
	size := array.Size
	// Missing bounds materialise as constants before checking.
	from := typed.TypedExpression(typed.NewFieldNumber(0))
	to := typed.TypedExpression(typed.NewFieldNumber(int64(size)))
	//
	var err *ErrorInner
	//
	if rangeNode.Value.From.HasValue() {
		if from, err = c.checkExpression(rangeNode.Value.From.Unwrap(), moduleId, typeMap); err != nil {
			return nil, err
		}
	}
	//
	if rangeNode.Value.To.HasValue() {
		if to, err = c.checkExpression(rangeNode.Value.To.Unwrap(), moduleId, typeMap); err != nil {
			return nil, err
		}
	}
	// Both bounds must be constant field literals.
	fromValue, ok := constantFieldValue(from)
	if !ok {
		return nil, errAt(start, end,
			"Expected the lower bound of the range to be a constant field, found %s", from)
	}
	//
	toValue, ok := constantFieldValue(to)
	if !ok {
		return nil, errAt(start, end,
			"Expected the higher bound of the range to be a constant field, found %s", to)
	}
	//
	switch {
	case fromValue > size:
		return nil, errAt(start, end, "Lower range bound %d is out of array bounds [0, %d]",
			fromValue, size)
	case toValue > size:
		return nil, errAt(start, end, "Higher range bound %d is out of array bounds [0, %d]",
			toValue, size)
	case fromValue > toValue:
		return nil, errAt(start, end, "Lower range bound %d is larger than higher range bound %d",
			fromValue, toValue)
	}
	//
	items := make([]typed.TypedExpression, 0, toValue-fromValue)
	//
	for i := fromValue; i < toValue; i++ {
		items = append(items, typed.Select(array, typed.NewFieldNumber(int64(i))))
	}
	//
	inner := typed.ArrayValue{Items: items}
	//
	return typed.NewArrayExpression(inner, array.ElementType, toValue-fromValue), nil
}

// checkMember checks a struct member access.
func (c *Checker) checkMember(expr absy.Member, start, end sourcePosition,
	moduleId types.ModuleId, typeMap TypeMap) (typed.TypedExpression, *ErrorInner) {
	strukt, err := c.checkExpression(expr.Struct, moduleId, typeMap)
	if err != nil {
		return nil, err
	}
	//
	structExpr, ok := strukt.(typed.StructExpression)
	if !ok {
		return nil, errAt(start, end, "Cannot access member %s on expression of type %s",
			expr.Id, strukt.Type())
	}
	// The struct must declare that member.
	if _, ok := structExpr.Ty.Member(expr.Id); !ok {
		return nil, errAt(start, end, "%s doesn't have member %s", strukt.Type(), expr.Id)
	}
	//
	return typed.Member(structExpr, expr.Id), nil
}

// checkSpreadOrExpression checks a single array literal item, which for a
// spread yields the spread array's elements.  Spreading an inline array
// yields its items directly; spreading anything else yields one indirection
// per element, keeping memory linear in the source.
func (c *Checker) checkSpreadOrExpression(item absy.SpreadOrExpression, moduleId types.ModuleId,
	typeMap TypeMap) ([]typed.TypedExpression, *ErrorInner) {
	switch item := item.(type) {
	case absy.SpreadItem:
		start, end := item.Spread.Pos()
		//
		checked, err := c.checkExpression(item.Spread.Value.Expression, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		array, ok := checked.(typed.ArrayExpression)
		if !ok {
			return nil, errAt(start, end, "Expected spread operator to apply on array, found %s",
				checked.Type())
		}
		//
		if value, ok := array.Inner.(typed.ArrayValue); ok {
			return value.Items, nil
		}
		//
		items := make([]typed.TypedExpression, array.Size)
		//
		for i := uint(0); i < array.Size; i++ {
			items[i] = typed.Select(array, typed.NewFieldNumber(int64(i)))
		}
		//
		return items, nil
	case absy.ExpressionItem:
		checked, err := c.checkExpression(item.Expression, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		return []typed.TypedExpression{checked}, nil
	default:
		panic("unknown array literal item")
	}
}

// checkInlineArray checks an array literal: items (and spread elements) must
// all share the type inferred from the first.
func (c *Checker) checkInlineArray(expr absy.InlineArray, start, end sourcePosition,
	moduleId types.ModuleId, typeMap TypeMap) (typed.TypedExpression, *ErrorInner) {
	var items []typed.TypedExpression
	//
	for _, item := range expr.Items {
		checked, err := c.checkSpreadOrExpression(item, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		items = append(items, checked...)
	}
	// The literal is non-empty by construction; its type is inferred from
	// the first element.
	inferred := items[0].Type()
	//
	for _, item := range items {
		if !item.Type().Equal(inferred) {
			return nil, errAt(start, end, "Expected %s to have type %s, but type is %s",
				item, inferred, item.Type())
		}
	}
	//
	return typed.NewArrayExpression(typed.ArrayValue{Items: items}, inferred, uint(len(items))), nil
}

// checkInlineStruct checks a struct literal: the name must resolve to a
// struct type, and every declared member must appear exactly once with the
// expected type.  Literal ordering is free; the result follows declaration
// order.
func (c *Checker) checkInlineStruct(expr absy.InlineStruct, start, end sourcePosition,
	moduleId types.ModuleId, typeMap TypeMap) (typed.TypedExpression, *ErrorInner) {
	resolved, err := c.checkType(absy.Mock[absy.UnresolvedType](absy.UserType{Id: expr.Id}), moduleId, typeMap)
	if err != nil {
		return nil, err
	}
	//
	structType, ok := resolved.(types.StructType)
	if !ok {
		panic("user-declared types are always structs")
	}
	// The literal must provide the required number of values.
	if structType.Len() != uint(len(expr.Members)) {
		return nil, errAt(start, end, "Inline struct %s does not match %s", expr, structType)
	}
	// Pick values from the literal following declared member order.
	values := make(map[string]absy.ExpressionNode, len(expr.Members))
	//
	for _, member := range expr.Members {
		values[member.Id] = member.Value
	}
	//
	items := make([]typed.TypedExpression, 0, len(expr.Members))
	//
	for _, member := range structType.Members {
		value, ok := values[member.Id]
		if !ok {
			return nil, errAt(start, end, "Member %s of struct %s not found in value %s",
				member.Id, structType, expr)
		}
		//
		checked, err := c.checkExpression(value, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		if !checked.Type().Equal(member.Type) {
			return nil, errAt(start, end, "Member %s of struct %s has type %s, found %s of type %s",
				member.Id, expr.Id, member.Type, checked, checked.Type())
		}
		//
		items = append(items, checked)
	}
	//
	return typed.NewStructExpression(typed.StructValue{Items: items}, structType), nil
}

// constantFieldValue extracts the machine-integer value of a constant field
// literal, failing on anything else.
func constantFieldValue(e typed.TypedExpression) (uint, bool) {
	number, ok := e.(typed.FieldNumber)
	if !ok {
		return 0, false
	}
	//
	return number.Value.ToUint()
}

// errAt constructs a pointer to a positioned error, as the short-circuiting
// expression rules return single errors.
func errAt(start, end sourcePosition, format string, args ...any) *ErrorInner {
	err := NewErrorInner(start, end, format, args...)
	//
	return &err
}
