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
	"github.com/consensys/go-zirc/pkg/types"
)

// Folder is a generic, non-mutating walk over a typed AST: every method
// rewrites one syntactic category into a same-shaped value.  Passes embed
// BaseFolder and override the minimum set of methods they need; every
// default recurses into children via the package-level Fold functions.
//
// Two contracts matter to implementers.  FoldStatement returns a list, so a
// pass can rewrite one statement into several (e.g. inserting an assertion
// before it).  FoldFunctionSymbol does not descend into There references:
// cross-module traversal is opt-in.
type Folder interface {
	FoldProgram(TypedProgram) TypedProgram
	FoldModule(TypedModule) TypedModule
	FoldFunctionSymbol(TypedFunctionSymbol) TypedFunctionSymbol
	FoldFunction(TypedFunction) TypedFunction
	FoldParameter(Parameter) Parameter
	FoldName(Identifier) Identifier
	FoldVariable(Variable) Variable
	FoldAssignee(TypedAssignee) TypedAssignee
	FoldStatement(TypedStatement) []TypedStatement
	FoldExpression(TypedExpression) TypedExpression
	FoldExpressionList(TypedExpressionList) TypedExpressionList
	FoldFieldExpression(FieldElementExpression) FieldElementExpression
	FoldBooleanExpression(BooleanExpression) BooleanExpression
	FoldUintExpression(UExpression) UExpression
	FoldUintExpressionInner(types.UBitwidth, UExpressionInner) UExpressionInner
	FoldArrayExpression(ArrayExpression) ArrayExpression
	FoldArrayExpressionInner(types.Type, uint, ArrayExpressionInner) ArrayExpressionInner
	FoldStructExpression(StructExpression) StructExpression
	FoldStructExpressionInner(types.StructType, StructExpressionInner) StructExpressionInner
}

// BaseFolder provides the default (recursing) implementation of every Folder
// method.  Since Go method dispatch is not open under embedding, a pass must
// hand itself back via Init so that recursion re-enters its overrides.
type BaseFolder struct {
	self Folder
}

// Init records the outermost folder, which all default recursion dispatches
// through.
func (b *BaseFolder) Init(self Folder) {
	b.self = self
}

// NewIdentityFolder returns a folder which overrides nothing, and hence maps
// every program to itself.
func NewIdentityFolder() Folder {
	var b BaseFolder
	//
	b.Init(&b)
	//
	return &b
}

// FoldProgram implementation for the Folder interface.
func (b *BaseFolder) FoldProgram(p TypedProgram) TypedProgram {
	return FoldProgram(b.self, p)
}

// FoldModule implementation for the Folder interface.
func (b *BaseFolder) FoldModule(m TypedModule) TypedModule {
	return FoldModule(b.self, m)
}

// FoldFunctionSymbol implementation for the Folder interface.
func (b *BaseFolder) FoldFunctionSymbol(s TypedFunctionSymbol) TypedFunctionSymbol {
	return FoldFunctionSymbol(b.self, s)
}

// FoldFunction implementation for the Folder interface.
func (b *BaseFolder) FoldFunction(f TypedFunction) TypedFunction {
	return FoldFunction(b.self, f)
}

// FoldParameter implementation for the Folder interface.
func (b *BaseFolder) FoldParameter(p Parameter) Parameter {
	return Parameter{b.self.FoldVariable(p.Id), p.Private}
}

// FoldName implementation for the Folder interface.
func (b *BaseFolder) FoldName(n Identifier) Identifier {
	return n
}

// FoldVariable implementation for the Folder interface.
func (b *BaseFolder) FoldVariable(v Variable) Variable {
	return Variable{b.self.FoldName(v.Id), v.Type}
}

// FoldAssignee implementation for the Folder interface.
func (b *BaseFolder) FoldAssignee(a TypedAssignee) TypedAssignee {
	return FoldAssignee(b.self, a)
}

// FoldStatement implementation for the Folder interface.
func (b *BaseFolder) FoldStatement(s TypedStatement) []TypedStatement {
	return FoldStatement(b.self, s)
}

// FoldExpression implementation for the Folder interface.
func (b *BaseFolder) FoldExpression(e TypedExpression) TypedExpression {
	return FoldExpression(b.self, e)
}

// FoldExpressionList implementation for the Folder interface.
func (b *BaseFolder) FoldExpressionList(l TypedExpressionList) TypedExpressionList {
	return FoldExpressionList(b.self, l)
}

// FoldFieldExpression implementation for the Folder interface.
func (b *BaseFolder) FoldFieldExpression(e FieldElementExpression) FieldElementExpression {
	return FoldFieldExpression(b.self, e)
}

// FoldBooleanExpression implementation for the Folder interface.
func (b *BaseFolder) FoldBooleanExpression(e BooleanExpression) BooleanExpression {
	return FoldBooleanExpression(b.self, e)
}

// FoldUintExpression implementation for the Folder interface.
func (b *BaseFolder) FoldUintExpression(e UExpression) UExpression {
	return FoldUintExpression(b.self, e)
}

// FoldUintExpressionInner implementation for the Folder interface.
func (b *BaseFolder) FoldUintExpressionInner(bitwidth types.UBitwidth, e UExpressionInner) UExpressionInner {
	return FoldUintExpressionInner(b.self, bitwidth, e)
}

// FoldArrayExpression implementation for the Folder interface.
func (b *BaseFolder) FoldArrayExpression(e ArrayExpression) ArrayExpression {
	return FoldArrayExpression(b.self, e)
}

// FoldArrayExpressionInner implementation for the Folder interface.
func (b *BaseFolder) FoldArrayExpressionInner(ty types.Type, size uint, e ArrayExpressionInner) ArrayExpressionInner {
	return FoldArrayExpressionInner(b.self, ty, size, e)
}

// FoldStructExpression implementation for the Folder interface.
func (b *BaseFolder) FoldStructExpression(e StructExpression) StructExpression {
	return FoldStructExpression(b.self, e)
}

// FoldStructExpressionInner implementation for the Folder interface.
func (b *BaseFolder) FoldStructExpressionInner(ty types.StructType, e StructExpressionInner) StructExpressionInner {
	return FoldStructExpressionInner(b.self, ty, e)
}

// FoldProgram applies a folder to every module of a program.
func FoldProgram(f Folder, p TypedProgram) TypedProgram {
	modules := make(TypedModules, len(p.Modules))
	//
	for id, m := range p.Modules {
		modules[id] = f.FoldModule(m)
	}
	//
	return TypedProgram{modules, p.Main}
}

// FoldModule applies a folder to every function symbol of a module.
func FoldModule(f Folder, m TypedModule) TypedModule {
	functions := make(TypedFunctionSymbols, len(m.Functions))
	//
	for i, entry := range m.Functions {
		functions[i] = SymbolEntry{entry.Key, f.FoldFunctionSymbol(entry.Symbol)}
	}
	//
	return TypedModule{functions}
}

// FoldFunctionSymbol applies a folder to a function symbol.  There
// references are left untouched: they are folded when their declaring module
// is.
func FoldFunctionSymbol(f Folder, s TypedFunctionSymbol) TypedFunctionSymbol {
	if here, ok := s.(HereSymbol); ok {
		return HereSymbol{f.FoldFunction(here.Function)}
	}
	//
	return s
}

// FoldFunction applies a folder to the parameters and body of a function.
func FoldFunction(f Folder, fn TypedFunction) TypedFunction {
	arguments := make([]Parameter, len(fn.Arguments))
	//
	for i, a := range fn.Arguments {
		arguments[i] = f.FoldParameter(a)
	}
	//
	var statements []TypedStatement
	//
	for _, s := range fn.Statements {
		statements = append(statements, f.FoldStatement(s)...)
	}
	//
	return TypedFunction{arguments, statements, fn.Signature}
}

// FoldAssignee applies a folder to an assignee.
func FoldAssignee(f Folder, a TypedAssignee) TypedAssignee {
	switch a := a.(type) {
	case AssigneeVariable:
		return AssigneeVariable{f.FoldVariable(a.Variable)}
	case AssigneeSelect:
		return AssigneeSelect{f.FoldAssignee(a.Assignee), f.FoldFieldExpression(a.Index)}
	case AssigneeMember:
		return AssigneeMember{f.FoldAssignee(a.Assignee), a.Id}
	default:
		panic("unknown assignee")
	}
}

// FoldStatement applies a folder to the children of a statement.
func FoldStatement(f Folder, s TypedStatement) []TypedStatement {
	var res TypedStatement
	//
	switch s := s.(type) {
	case ReturnStatement:
		expressions := make([]TypedExpression, len(s.Expressions))
		//
		for i, e := range s.Expressions {
			expressions[i] = f.FoldExpression(e)
		}
		//
		res = ReturnStatement{expressions}
	case DefinitionStatement:
		res = DefinitionStatement{f.FoldAssignee(s.Assignee), f.FoldExpression(s.Expression)}
	case DeclarationStatement:
		res = DeclarationStatement{f.FoldVariable(s.Variable)}
	case AssertionStatement:
		res = AssertionStatement{f.FoldBooleanExpression(s.Expression)}
	case ForStatement:
		var statements []TypedStatement
		//
		for _, stmt := range s.Statements {
			statements = append(statements, f.FoldStatement(stmt)...)
		}
		//
		res = ForStatement{
			f.FoldVariable(s.Variable),
			f.FoldFieldExpression(s.From),
			f.FoldFieldExpression(s.To),
			statements,
		}
	case MultipleDefinitionStatement:
		assignees := make([]TypedAssignee, len(s.Assignees))
		//
		for i, a := range s.Assignees {
			assignees[i] = f.FoldAssignee(a)
		}
		//
		res = MultipleDefinitionStatement{assignees, f.FoldExpressionList(s.Call)}
	default:
		panic("unknown statement")
	}
	//
	return []TypedStatement{res}
}

// FoldExpression applies a folder to an expression, preserving its arm.
func FoldExpression(f Folder, e TypedExpression) TypedExpression {
	switch e := e.(type) {
	case UExpression:
		return f.FoldUintExpression(e)
	case ArrayExpression:
		return f.FoldArrayExpression(e)
	case StructExpression:
		return f.FoldStructExpression(e)
	case FieldElementExpression:
		return f.FoldFieldExpression(e)
	case BooleanExpression:
		return f.FoldBooleanExpression(e)
	default:
		panic("unknown expression arm")
	}
}

// FoldExpressionList applies a folder to the arguments of an expression
// list.
func FoldExpressionList(f Folder, l TypedExpressionList) TypedExpressionList {
	arguments := make([]TypedExpression, len(l.Arguments))
	//
	for i, a := range l.Arguments {
		arguments[i] = f.FoldExpression(a)
	}
	//
	return TypedExpressionList{l.Key, arguments, l.Types}
}

// FoldFieldExpression applies a folder to the children of a field
// expression.
func FoldFieldExpression(f Folder, e FieldElementExpression) FieldElementExpression {
	switch e := e.(type) {
	case FieldNumber:
		return e
	case FieldIdentifier:
		return FieldIdentifier{f.FoldName(e.Id)}
	case FieldAdd:
		return FieldAdd{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case FieldSub:
		return FieldSub{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case FieldMult:
		return FieldMult{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case FieldDiv:
		return FieldDiv{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case FieldPow:
		return FieldPow{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case FieldIfElse:
		return FieldIfElse{
			f.FoldBooleanExpression(e.Condition),
			f.FoldFieldExpression(e.Consequence),
			f.FoldFieldExpression(e.Alternative),
		}
	case FieldFunctionCall:
		return FieldFunctionCall{e.Key, foldArguments(f, e.Arguments)}
	case FieldSelect:
		return FieldSelect{f.FoldArrayExpression(e.Array), f.FoldFieldExpression(e.Index)}
	case FieldMember:
		return FieldMember{f.FoldStructExpression(e.Struct), e.Id}
	default:
		panic("unknown field expression")
	}
}

// FoldBooleanExpression applies a folder to the children of a boolean
// expression.
func FoldBooleanExpression(f Folder, e BooleanExpression) BooleanExpression {
	switch e := e.(type) {
	case BoolValue:
		return e
	case BoolIdentifier:
		return BoolIdentifier{f.FoldName(e.Id)}
	case FieldEq:
		return FieldEq{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case BoolEq:
		return BoolEq{f.FoldBooleanExpression(e.Left), f.FoldBooleanExpression(e.Right)}
	case ArrayEq:
		return ArrayEq{f.FoldArrayExpression(e.Left), f.FoldArrayExpression(e.Right)}
	case StructEq:
		return StructEq{f.FoldStructExpression(e.Left), f.FoldStructExpression(e.Right)}
	case UintEq:
		return UintEq{f.FoldUintExpression(e.Left), f.FoldUintExpression(e.Right)}
	case FieldLt:
		return FieldLt{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case FieldLe:
		return FieldLe{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case FieldGe:
		return FieldGe{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case FieldGt:
		return FieldGt{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case BoolOr:
		return BoolOr{f.FoldBooleanExpression(e.Left), f.FoldBooleanExpression(e.Right)}
	case BoolAnd:
		return BoolAnd{f.FoldBooleanExpression(e.Left), f.FoldBooleanExpression(e.Right)}
	case BoolNot:
		return BoolNot{f.FoldBooleanExpression(e.Inner)}
	case BoolIfElse:
		return BoolIfElse{
			f.FoldBooleanExpression(e.Condition),
			f.FoldBooleanExpression(e.Consequence),
			f.FoldBooleanExpression(e.Alternative),
		}
	case BoolFunctionCall:
		return BoolFunctionCall{e.Key, foldArguments(f, e.Arguments)}
	case BoolSelect:
		return BoolSelect{f.FoldArrayExpression(e.Array), f.FoldFieldExpression(e.Index)}
	case BoolMember:
		return BoolMember{f.FoldStructExpression(e.Struct), e.Id}
	default:
		panic("unknown boolean expression")
	}
}

// FoldUintExpression applies a folder to the inner expression, preserving
// the bitwidth annotation.
func FoldUintExpression(f Folder, e UExpression) UExpression {
	return NewUExpression(f.FoldUintExpressionInner(e.Bitwidth, e.Inner), e.Bitwidth)
}

// FoldUintExpressionInner applies a folder to the children of a uint
// expression.
func FoldUintExpressionInner(f Folder, bitwidth types.UBitwidth, e UExpressionInner) UExpressionInner {
	switch e := e.(type) {
	case UintValue:
		return e
	case UintIdentifier:
		return UintIdentifier{f.FoldName(e.Id)}
	case UintAdd:
		return UintAdd{f.FoldUintExpression(e.Left), f.FoldUintExpression(e.Right)}
	case UintSub:
		return UintSub{f.FoldUintExpression(e.Left), f.FoldUintExpression(e.Right)}
	case UintMult:
		return UintMult{f.FoldUintExpression(e.Left), f.FoldUintExpression(e.Right)}
	case UintDiv:
		return UintDiv{f.FoldUintExpression(e.Left), f.FoldUintExpression(e.Right)}
	case UintRem:
		return UintRem{f.FoldUintExpression(e.Left), f.FoldUintExpression(e.Right)}
	case UintXor:
		return UintXor{f.FoldUintExpression(e.Left), f.FoldUintExpression(e.Right)}
	case UintAnd:
		return UintAnd{f.FoldUintExpression(e.Left), f.FoldUintExpression(e.Right)}
	case UintOr:
		return UintOr{f.FoldUintExpression(e.Left), f.FoldUintExpression(e.Right)}
	case UintNot:
		return UintNot{f.FoldUintExpression(e.Inner)}
	case UintLeftShift:
		return UintLeftShift{f.FoldUintExpression(e.Value), f.FoldFieldExpression(e.By)}
	case UintRightShift:
		return UintRightShift{f.FoldUintExpression(e.Value), f.FoldFieldExpression(e.By)}
	case UintIfElse:
		return UintIfElse{
			f.FoldBooleanExpression(e.Condition),
			f.FoldUintExpression(e.Consequence),
			f.FoldUintExpression(e.Alternative),
		}
	case UintFunctionCall:
		return UintFunctionCall{e.Key, foldArguments(f, e.Arguments)}
	case UintSelect:
		return UintSelect{f.FoldArrayExpression(e.Array), f.FoldFieldExpression(e.Index)}
	case UintMember:
		return UintMember{f.FoldStructExpression(e.Struct), e.Id}
	default:
		panic("unknown uint expression")
	}
}

// FoldArrayExpression applies a folder to the inner expression, preserving
// the type annotation.
func FoldArrayExpression(f Folder, e ArrayExpression) ArrayExpression {
	inner := f.FoldArrayExpressionInner(e.ElementType, e.Size, e.Inner)
	//
	return NewArrayExpression(inner, e.ElementType, e.Size)
}

// FoldArrayExpressionInner applies a folder to the children of an array
// expression.
func FoldArrayExpressionInner(f Folder, ty types.Type, size uint, e ArrayExpressionInner) ArrayExpressionInner {
	switch e := e.(type) {
	case ArrayIdentifier:
		return ArrayIdentifier{f.FoldName(e.Id)}
	case ArrayValue:
		return ArrayValue{foldArguments(f, e.Items)}
	case ArrayFunctionCall:
		return ArrayFunctionCall{e.Key, foldArguments(f, e.Arguments)}
	case ArrayIfElse:
		return ArrayIfElse{
			f.FoldBooleanExpression(e.Condition),
			f.FoldArrayExpression(e.Consequence),
			f.FoldArrayExpression(e.Alternative),
		}
	case ArraySelect:
		return ArraySelect{f.FoldArrayExpression(e.Array), f.FoldFieldExpression(e.Index)}
	case ArrayMember:
		return ArrayMember{f.FoldStructExpression(e.Struct), e.Id}
	default:
		panic("unknown array expression")
	}
}

// FoldStructExpression applies a folder to the inner expression, preserving
// the type annotation.
func FoldStructExpression(f Folder, e StructExpression) StructExpression {
	return NewStructExpression(f.FoldStructExpressionInner(e.Ty, e.Inner), e.Ty)
}

// FoldStructExpressionInner applies a folder to the children of a struct
// expression.
func FoldStructExpressionInner(f Folder, ty types.StructType, e StructExpressionInner) StructExpressionInner {
	switch e := e.(type) {
	case StructIdentifier:
		return StructIdentifier{f.FoldName(e.Id)}
	case StructValue:
		return StructValue{foldArguments(f, e.Items)}
	case StructFunctionCall:
		return StructFunctionCall{e.Key, foldArguments(f, e.Arguments)}
	case StructIfElse:
		return StructIfElse{
			f.FoldBooleanExpression(e.Condition),
			f.FoldStructExpression(e.Consequence),
			f.FoldStructExpression(e.Alternative),
		}
	case StructSelect:
		return StructSelect{f.FoldArrayExpression(e.Array), f.FoldFieldExpression(e.Index)}
	case StructMember:
		return StructMember{f.FoldStructExpression(e.Struct), e.Id}
	default:
		panic("unknown struct expression")
	}
}

func foldArguments(f Folder, arguments []TypedExpression) []TypedExpression {
	folded := make([]TypedExpression, len(arguments))
	//
	for i, a := range arguments {
		folded[i] = f.FoldExpression(a)
	}
	//
	return folded
}
