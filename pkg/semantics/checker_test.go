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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/go-zirc/pkg/absy"
	"github.com/consensys/go-zirc/pkg/field"
	"github.com/consensys/go-zirc/pkg/typed"
	"github.com/consensys/go-zirc/pkg/types"
	"github.com/consensys/go-zirc/pkg/util"
)

func eNode(e absy.Expression) absy.ExpressionNode {
	return absy.Mock[absy.Expression](e)
}

func sNode(s absy.Statement) absy.StatementNode {
	return absy.Mock[absy.Statement](s)
}

func tNode(t absy.UnresolvedType) absy.UnresolvedTypeNode {
	return absy.Mock[absy.UnresolvedType](t)
}

func varNode(id string, ty absy.UnresolvedType) absy.VariableNode {
	return absy.Mock(absy.Variable{Id: id, Type: tNode(ty)})
}

func declare(id string, symbol absy.Symbol) absy.SymbolDeclarationNode {
	return absy.Mock(absy.SymbolDeclaration{Id: id, Symbol: symbol})
}

func returnNothing() absy.StatementNode {
	return sNode(absy.Return{Expressions: absy.Mock(absy.ExpressionList{})})
}

// makeFunction builds a function from parameter variables, output types and
// a body.  Parameters are private.
func makeFunction(params []absy.VariableNode, outputs []absy.UnresolvedTypeNode,
	body []absy.StatementNode) absy.FunctionNode {
	var function absy.Function
	//
	for _, p := range params {
		function.Arguments = append(function.Arguments, absy.Mock(absy.Parameter{Id: p, Private: true}))
		function.Signature.Inputs = append(function.Signature.Inputs, p.Value.Type)
	}
	//
	function.Signature.Outputs = outputs
	function.Statements = body
	//
	return absy.Mock(function)
}

func singleModuleProgram(symbols ...absy.SymbolDeclarationNode) absy.Program {
	return absy.Program{
		Main:    "main",
		Modules: map[types.ModuleId]absy.Module{"main": {Symbols: symbols}},
	}
}

func TestCheck_WellTypedProgram(t *testing.T) {
	// def main(private field a) -> field: return a
	main := makeFunction(
		[]absy.VariableNode{varNode("a", absy.FieldElementType{})},
		[]absy.UnresolvedTypeNode{tNode(absy.FieldElementType{})},
		[]absy.StatementNode{
			sNode(absy.Return{Expressions: absy.Mock(absy.ExpressionList{
				Expressions: []absy.ExpressionNode{eNode(absy.Identifier{Id: "a"})},
			})}),
		})
	//
	program := singleModuleProgram(declare("main", absy.HereFunction{Function: main}))
	//
	checked, errs := Check(program)
	assert.Empty(t, errs)
	// The typed function's signature equals the declared one.
	expected := types.NewSignature([]types.Type{types.FieldElementType{}}, []types.Type{types.FieldElementType{}})
	assert.True(t, checked.MainFunction().Signature.Equal(expected))
}

func TestCheck_OverloadResolution(t *testing.T) {
	// def foo(): return
	foo0 := makeFunction(nil, nil, []absy.StatementNode{returnNothing()})
	// def foo(private field x): return
	foo1 := makeFunction(
		[]absy.VariableNode{varNode("x", absy.FieldElementType{})},
		nil,
		[]absy.StatementNode{returnNothing()})
	// def main(): foo(7); foo(); return
	main := makeFunction(nil, nil, []absy.StatementNode{
		sNode(absy.MultipleDefinition{Expression: eNode(absy.FunctionCall{
			Id:        "foo",
			Arguments: []absy.ExpressionNode{eNode(absy.FieldConstant{Value: big.NewInt(7)})},
		})}),
		sNode(absy.MultipleDefinition{Expression: eNode(absy.FunctionCall{Id: "foo"})}),
		returnNothing(),
	})
	//
	program := singleModuleProgram(
		declare("foo", absy.HereFunction{Function: foo0}),
		declare("foo", absy.HereFunction{Function: foo1}),
		declare("main", absy.HereFunction{Function: main}),
	)
	//
	checked, errs := Check(program)
	assert.Empty(t, errs)
	// Both overloads exist as Here symbols.
	module := checked.Modules["main"]
	//
	key0 := types.NewFunctionKey("foo", types.NewSignature(nil, nil))
	key1 := types.NewFunctionKey("foo", types.NewSignature([]types.Type{types.FieldElementType{}}, nil))
	//
	symbol0, ok := module.Functions.Lookup(key0)
	assert.True(t, ok)
	assert.IsType(t, typed.HereSymbol{}, symbol0)
	//
	symbol1, ok := module.Functions.Lookup(key1)
	assert.True(t, ok)
	assert.IsType(t, typed.HereSymbol{}, symbol1)
	// The calls resolved to the expected overloads.
	statements := checked.MainFunction().Statements
	//
	call0 := statements[0].(typed.MultipleDefinitionStatement).Call
	assert.True(t, call0.Key.Equal(key1))
	//
	call1 := statements[1].(typed.MultipleDefinitionStatement).Call
	assert.True(t, call1.Key.Equal(key0))
}

func TestCheck_DuplicateSignatureConflict(t *testing.T) {
	foo := makeFunction(nil, nil, []absy.StatementNode{returnNothing()})
	bar := makeFunction(nil, nil, []absy.StatementNode{returnNothing()})
	main := makeFunction(nil, nil, []absy.StatementNode{returnNothing()})
	//
	program := singleModuleProgram(
		declare("foo", absy.HereFunction{Function: foo}),
		declare("foo", absy.HereFunction{Function: bar}),
		declare("main", absy.HereFunction{Function: main}),
	)
	//
	_, errs := Check(program)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Inner.Message(), "foo conflicts with another symbol")
}

func TestCheck_StructRenameOnImport(t *testing.T) {
	// Module a declares struct Foo { x: field }; module b imports Foo as
	// Bar.
	structFoo := absy.Mock(absy.StructDefinition{Fields: []absy.StructDefinitionFieldNode{
		absy.Mock(absy.StructDefinitionField{Id: "x", Type: tNode(absy.FieldElementType{})}),
	}})
	//
	modules := map[types.ModuleId]absy.Module{
		"a": {Symbols: []absy.SymbolDeclarationNode{
			declare("Foo", absy.HereType{Definition: structFoo}),
		}},
		"b": {Symbols: []absy.SymbolDeclarationNode{
			declare("Bar", absy.There{Import: absy.Mock(absy.SymbolImport{ModuleId: "a", SymbolId: "Foo"})}),
		}},
	}
	//
	state := NewState(modules)
	errs := NewChecker().checkModule("b", state)
	assert.Empty(t, errs)
	// The imported type acquires the new location (b, Bar) while keeping
	// its members.
	imported, ok := state.types["b"]["Bar"]
	assert.True(t, ok)
	//
	strukt := imported.(types.StructType)
	assert.Equal(t, types.StructLocation{Module: "b", Name: "Bar"}, strukt.Location)
	assert.Equal(t, []types.StructMember{{Id: "x", Type: types.FieldElementType{}}}, strukt.Members)
}

func TestCheck_ImportMissingSymbol(t *testing.T) {
	modules := map[types.ModuleId]absy.Module{
		"a": {},
		"b": {Symbols: []absy.SymbolDeclarationNode{
			declare("baz", absy.There{Import: absy.Mock(absy.SymbolImport{ModuleId: "a", SymbolId: "baz"})}),
		}},
	}
	//
	errs := NewChecker().checkModule("b", NewState(modules))
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Inner.Message(), "Could not find symbol baz in module a")
}

func TestCheck_UndefinedIdentifier(t *testing.T) {
	main := makeFunction(nil, []absy.UnresolvedTypeNode{tNode(absy.FieldElementType{})},
		[]absy.StatementNode{
			sNode(absy.Return{Expressions: absy.Mock(absy.ExpressionList{
				Expressions: []absy.ExpressionNode{eNode(absy.Identifier{Id: "x"})},
			})}),
		})
	//
	_, errs := Check(singleModuleProgram(declare("main", absy.HereFunction{Function: main})))
	assert.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Inner.Message(), `Identifier "x" is undefined`)
}

func TestCheck_MainCount(t *testing.T) {
	foo := makeFunction(nil, nil, []absy.StatementNode{returnNothing()})
	//
	_, errs := Check(singleModuleProgram(declare("foo", absy.HereFunction{Function: foo})))
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Inner.Message(), "No main function found")
	// Two overloaded mains are a symbol-level success but a program-level
	// failure.
	main0 := makeFunction(nil, nil, []absy.StatementNode{returnNothing()})
	main1 := makeFunction(
		[]absy.VariableNode{varNode("x", absy.FieldElementType{})},
		nil,
		[]absy.StatementNode{returnNothing()})
	//
	_, errs = Check(singleModuleProgram(
		declare("main", absy.HereFunction{Function: main0}),
		declare("main", absy.HereFunction{Function: main1}),
	))
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Inner.Message(), "Only one main function allowed, found 2")
}

func TestCheck_DuplicateDeclaration(t *testing.T) {
	main := makeFunction(nil, nil, []absy.StatementNode{
		sNode(absy.Declaration{Variable: varNode("x", absy.FieldElementType{})}),
		sNode(absy.Declaration{Variable: varNode("x", absy.BooleanType{})}),
		returnNothing(),
	})
	//
	_, errs := Check(singleModuleProgram(declare("main", absy.HereFunction{Function: main})))
	assert.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Inner.Message(), "Duplicate declaration for variable named x")
}

func TestCheck_FieldConstantRange(t *testing.T) {
	checker := NewChecker()
	// p - 1 is representable.
	inRange := eNode(absy.FieldConstant{Value: field.MaxValue()})
	//
	_, err := checker.checkExpression(inRange, "main", nil)
	assert.Nil(t, err)
	// p is not.
	outOfRange := eNode(absy.FieldConstant{Value: field.Modulus()})
	//
	_, err = checker.checkExpression(outOfRange, "main", nil)
	assert.NotNil(t, err)
	assert.Contains(t, err.Message(), "Field constant not in the representable range")
}

func TestCheck_RangeSlice(t *testing.T) {
	checker := NewChecker()
	checker.insertIntoScope(typed.NewVariable(typed.NewIdentifier("a"),
		types.NewArrayType(types.FieldElementType{}, 4)))
	//
	slice := func(from, to int64) absy.ExpressionNode {
		return eNode(absy.Select{
			Array: eNode(absy.Identifier{Id: "a"}),
			Index: absy.RangeIndex{Range: absy.Mock(absy.Range{
				From: util.Some(eNode(absy.FieldConstant{Value: big.NewInt(from)})),
				To:   util.Some(eNode(absy.FieldConstant{Value: big.NewInt(to)})),
			})},
		})
	}
	// a[1..3] is an inline array of length 2 over field.
	checked, err := checker.checkExpression(slice(1, 3), "main", nil)
	assert.Nil(t, err)
	//
	array := checked.(typed.ArrayExpression)
	assert.Equal(t, uint(2), array.Size)
	assert.True(t, array.ElementType.Equal(types.FieldElementType{}))
	//
	items := array.Inner.(typed.ArrayValue).Items
	assert.Len(t, items, 2)
	assert.Equal(t, typed.Select(
		typed.NewArrayExpression(typed.ArrayIdentifier{Id: typed.NewIdentifier("a")}, types.FieldElementType{}, 4),
		typed.NewFieldNumber(1),
	), items[0])
	// Reversed bounds are rejected.
	_, err = checker.checkExpression(slice(3, 1), "main", nil)
	assert.NotNil(t, err)
	assert.Equal(t, "Lower range bound 3 is larger than higher range bound 1", err.Message())
}

func TestCheck_AssertionRequiresBoolean(t *testing.T) {
	main := makeFunction(nil, nil, []absy.StatementNode{
		sNode(absy.Assertion{Expression: eNode(absy.FieldConstant{Value: big.NewInt(1)})}),
		returnNothing(),
	})
	//
	_, errs := Check(singleModuleProgram(declare("main", absy.HereFunction{Function: main})))
	assert.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Inner.Message(), "to be of type bool")
}

func TestCheck_SingleReturnEnforced(t *testing.T) {
	main := makeFunction(nil, nil, []absy.StatementNode{
		returnNothing(),
		returnNothing(),
	})
	//
	_, errs := Check(singleModuleProgram(declare("main", absy.HereFunction{Function: main})))
	assert.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Inner.Message(), "Expected a single return statement")
	//
	main = makeFunction(nil, nil, nil)
	//
	_, errs = Check(singleModuleProgram(declare("main", absy.HereFunction{Function: main})))
	assert.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Inner.Message(), "Expected a return statement")
}

func TestCheck_SymbolUnifier(t *testing.T) {
	unifier := NewSymbolUnifier()
	sig0 := types.NewSignature(nil, nil)
	sig1 := types.NewSignature([]types.Type{types.FieldElementType{}}, nil)
	//
	assert.True(t, unifier.InsertType("Foo"))
	assert.False(t, unifier.InsertType("Foo"))
	assert.False(t, unifier.InsertFunction("Foo", sig0))
	//
	assert.True(t, unifier.InsertFunction("foo", sig0))
	assert.False(t, unifier.InsertFunction("foo", sig0))
	assert.True(t, unifier.InsertFunction("foo", sig1))
	assert.False(t, unifier.InsertType("foo"))
}

func TestCheck_FunctionQueryDisplay(t *testing.T) {
	query := NewFunctionQuery("foo",
		[]types.Type{types.FieldElementType{}},
		typeHintsNone())
	//
	assert.Equal(t, "(field) -> _", query.String())
}
