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
package binfile

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/go-zirc/pkg/absy"
	"github.com/consensys/go-zirc/pkg/util/source"
)

// WriteProgram encodes an untyped program into its JSON interchange form.
func WriteProgram(program absy.Program) ([]byte, error) {
	raw := jsonProgram{
		Version: FormatVersion,
		Modules: make(map[string]jsonModule, len(program.Modules)),
		Main:    program.Main,
	}
	//
	for id, module := range program.Modules {
		raw.Modules[id] = writeModule(module)
	}
	//
	return json.MarshalIndent(raw, "", "  ")
}

func writeModule(module absy.Module) jsonModule {
	symbols := make([]jsonSymbolDeclaration, len(module.Symbols))
	//
	for i, decl := range module.Symbols {
		symbols[i] = writeSymbol(decl)
	}
	//
	return jsonModule{Symbols: symbols}
}

func writeSymbol(decl absy.SymbolDeclarationNode) jsonSymbolDeclaration {
	raw := jsonSymbolDeclaration{
		jsonSpan: span(decl.Start, decl.End),
		Id:       decl.Value.Id,
	}
	//
	switch symbol := decl.Value.Symbol.(type) {
	case absy.HereType:
		fields := make([]jsonStructField, len(symbol.Definition.Value.Fields))
		//
		for i, field := range symbol.Definition.Value.Fields {
			fields[i] = jsonStructField{
				jsonSpan: span(field.Start, field.End),
				Id:       field.Value.Id,
				Type:     writeType(field.Value.Type),
			}
		}
		//
		raw.Kind = "struct"
		raw.Struct = &jsonStruct{
			jsonSpan: span(symbol.Definition.Start, symbol.Definition.End),
			Fields:   fields,
		}
	case absy.HereFunction:
		raw.Kind = "function"
		function := writeFunction(symbol.Function)
		raw.Function = &function
	case absy.There:
		raw.Kind = "import"
		raw.Import = &jsonImport{
			jsonSpan: span(symbol.Import.Start, symbol.Import.End),
			Module:   symbol.Import.Value.ModuleId,
			Symbol:   symbol.Import.Value.SymbolId,
		}
	case absy.Flat:
		raw.Kind = "flat"
		raw.Flat = symbol.Embed.Id()
	default:
		panic("unknown symbol declaration")
	}
	//
	return raw
}

func writeFunction(node absy.FunctionNode) jsonFunction {
	function := jsonFunction{jsonSpan: span(node.Start, node.End)}
	//
	for _, arg := range node.Value.Arguments {
		function.Arguments = append(function.Arguments, jsonParameter{
			jsonSpan: span(arg.Start, arg.End),
			Id:       arg.Value.Id.Value.Id,
			Type:     writeType(arg.Value.Id.Value.Type),
			Private:  arg.Value.Private,
		})
	}
	//
	for _, t := range node.Value.Signature.Inputs {
		function.Inputs = append(function.Inputs, writeType(t))
	}
	//
	for _, t := range node.Value.Signature.Outputs {
		function.Outputs = append(function.Outputs, writeType(t))
	}
	//
	for _, s := range node.Value.Statements {
		function.Body = append(function.Body, writeStatement(s))
	}
	//
	return function
}

func writeType(node absy.UnresolvedTypeNode) jsonType {
	raw := jsonType{jsonSpan: span(node.Start, node.End)}
	//
	switch ty := node.Value.(type) {
	case absy.FieldElementType:
		raw.Kind = "field"
	case absy.BooleanType:
		raw.Kind = "bool"
	case absy.UintType:
		raw.Kind = fmt.Sprintf("u%d", ty.Bitwidth)
	case absy.ArrayUnresolvedType:
		element := writeType(ty.Element)
		raw.Kind = "array"
		raw.Element = &element
		raw.Size = ty.Size
	case absy.UserType:
		raw.Kind = "user"
		raw.Name = ty.Id
	default:
		panic("unknown unresolved type")
	}
	//
	return raw
}

func writeVariable(node absy.VariableNode) jsonVariable {
	return jsonVariable{
		jsonSpan: span(node.Start, node.End),
		Id:       node.Value.Id,
		Type:     writeType(node.Value.Type),
	}
}

func writeStatement(node absy.StatementNode) jsonStatement {
	raw := jsonStatement{jsonSpan: span(node.Start, node.End)}
	//
	switch stmt := node.Value.(type) {
	case absy.Return:
		raw.Kind = "return"
		//
		for _, e := range stmt.Expressions.Value.Expressions {
			raw.Exprs = append(raw.Exprs, writeExpr(e))
		}
	case absy.Declaration:
		variable := writeVariable(stmt.Variable)
		raw.Kind = "declaration"
		raw.Variable = &variable
	case absy.Definition:
		raw.Kind = "definition"
		raw.Assignees = []jsonAssignee{writeAssignee(stmt.Assignee)}
		raw.Exprs = []jsonExpr{writeExpr(stmt.Expression)}
	case absy.Assertion:
		raw.Kind = "assertion"
		raw.Exprs = []jsonExpr{writeExpr(stmt.Expression)}
	case absy.For:
		variable := writeVariable(stmt.Variable)
		from := writeExpr(stmt.From)
		to := writeExpr(stmt.To)
		//
		raw.Kind = "for"
		raw.Variable = &variable
		raw.From = &from
		raw.To = &to
		//
		for _, s := range stmt.Statements {
			raw.Body = append(raw.Body, writeStatement(s))
		}
	case absy.MultipleDefinition:
		raw.Kind = "multidef"
		//
		for _, a := range stmt.Assignees {
			raw.Assignees = append(raw.Assignees, writeAssignee(a))
		}
		//
		raw.Exprs = []jsonExpr{writeExpr(stmt.Expression)}
	default:
		panic("unknown statement")
	}
	//
	return raw
}

func writeAssignee(node absy.AssigneeNode) jsonAssignee {
	raw := jsonAssignee{jsonSpan: span(node.Start, node.End)}
	//
	switch assignee := node.Value.(type) {
	case absy.AssigneeIdentifier:
		raw.Kind = "ident"
		raw.Value = assignee.Id
	case absy.AssigneeSelect:
		index, ok := assignee.Index.(absy.ExpressionIndex)
		if !ok {
			panic("using slices in assignments is not supported")
		}
		//
		target := writeAssignee(assignee.Assignee)
		indexExpr := writeExpr(index.Expression)
		//
		raw.Kind = "select"
		raw.Assignee = &target
		raw.Index = &indexExpr
	case absy.AssigneeMember:
		target := writeAssignee(assignee.Assignee)
		//
		raw.Kind = "member"
		raw.Value = assignee.Id
		raw.Assignee = &target
	default:
		panic("unknown assignee")
	}
	//
	return raw
}

// binaryWriter maps AST binary nodes onto their operator kinds.
func binaryWriter(e absy.Expression) (string, absy.ExpressionNode, absy.ExpressionNode, bool) {
	switch e := e.(type) {
	case absy.Add:
		return "add", e.Left, e.Right, true
	case absy.Sub:
		return "sub", e.Left, e.Right, true
	case absy.Mult:
		return "mult", e.Left, e.Right, true
	case absy.Div:
		return "div", e.Left, e.Right, true
	case absy.Rem:
		return "rem", e.Left, e.Right, true
	case absy.Pow:
		return "pow", e.Left, e.Right, true
	case absy.Lt:
		return "lt", e.Left, e.Right, true
	case absy.Le:
		return "le", e.Left, e.Right, true
	case absy.Ge:
		return "ge", e.Left, e.Right, true
	case absy.Gt:
		return "gt", e.Left, e.Right, true
	case absy.Eq:
		return "eq", e.Left, e.Right, true
	case absy.And:
		return "and", e.Left, e.Right, true
	case absy.Or:
		return "or", e.Left, e.Right, true
	case absy.BitAnd:
		return "bitand", e.Left, e.Right, true
	case absy.BitOr:
		return "bitor", e.Left, e.Right, true
	case absy.BitXor:
		return "bitxor", e.Left, e.Right, true
	case absy.LeftShift:
		return "lshift", e.Left, e.Right, true
	case absy.RightShift:
		return "rshift", e.Left, e.Right, true
	default:
		return "", absy.ExpressionNode{}, absy.ExpressionNode{}, false
	}
}

func writeExpr(node absy.ExpressionNode) jsonExpr {
	raw := jsonExpr{jsonSpan: span(node.Start, node.End)}
	//
	if kind, left, right, ok := binaryWriter(node.Value); ok {
		raw.Kind = kind
		raw.Args = []jsonExpr{writeExpr(left), writeExpr(right)}
		//
		return raw
	}
	//
	switch expr := node.Value.(type) {
	case absy.FieldConstant:
		raw.Kind = "field"
		raw.Value = expr.Value.String()
	case absy.BooleanConstant:
		raw.Kind = "bool"
		raw.Value = fmt.Sprintf("%t", expr.Value)
	case absy.U8Constant:
		raw.Kind = "u8"
		raw.Value = fmt.Sprintf("%d", expr.Value)
	case absy.U16Constant:
		raw.Kind = "u16"
		raw.Value = fmt.Sprintf("%d", expr.Value)
	case absy.U32Constant:
		raw.Kind = "u32"
		raw.Value = fmt.Sprintf("%d", expr.Value)
	case absy.Identifier:
		raw.Kind = "ident"
		raw.Value = expr.Id
	case absy.Not:
		raw.Kind = "not"
		raw.Args = []jsonExpr{writeExpr(expr.Inner)}
	case absy.IfElse:
		raw.Kind = "ifelse"
		raw.Args = []jsonExpr{writeExpr(expr.Condition), writeExpr(expr.Consequence), writeExpr(expr.Alternative)}
	case absy.FunctionCall:
		raw.Kind = "call"
		raw.Value = expr.Id
		//
		for _, arg := range expr.Arguments {
			raw.Args = append(raw.Args, writeExpr(arg))
		}
	case absy.Select:
		raw.Kind = "select"
		raw.Args = []jsonExpr{writeExpr(expr.Array)}
		//
		switch index := expr.Index.(type) {
		case absy.ExpressionIndex:
			indexExpr := writeExpr(index.Expression)
			raw.Index = &indexExpr
		case absy.RangeIndex:
			raw.Range = true
			//
			if index.Range.Value.From.HasValue() {
				from := writeExpr(index.Range.Value.From.Unwrap())
				raw.From = &from
			}
			//
			if index.Range.Value.To.HasValue() {
				to := writeExpr(index.Range.Value.To.Unwrap())
				raw.To = &to
			}
		default:
			panic("unknown array index")
		}
	case absy.Member:
		raw.Kind = "member"
		raw.Value = expr.Id
		raw.Args = []jsonExpr{writeExpr(expr.Struct)}
	case absy.InlineArray:
		raw.Kind = "array"
		//
		for _, item := range expr.Items {
			switch item := item.(type) {
			case absy.ExpressionItem:
				raw.Args = append(raw.Args, writeExpr(item.Expression))
			case absy.SpreadItem:
				raw.Args = append(raw.Args, jsonExpr{
					jsonSpan: span(item.Spread.Start, item.Spread.End),
					Kind:     "spread",
					Args:     []jsonExpr{writeExpr(item.Spread.Value.Expression)},
				})
			default:
				panic("unknown array literal item")
			}
		}
	case absy.InlineStruct:
		raw.Kind = "struct"
		raw.Value = expr.Id
		//
		for _, member := range expr.Members {
			raw.Members = append(raw.Members, jsonNamedExpr{Id: member.Id, Value: writeExpr(member.Value)})
		}
	default:
		panic("unknown expression")
	}
	//
	return raw
}

func span(start, end source.Position) jsonSpan {
	return jsonSpan{Start: start, End: end}
}
