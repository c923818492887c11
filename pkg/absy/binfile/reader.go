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
	"math/big"
	"strconv"

	"github.com/pkg/errors"

	"github.com/consensys/go-zirc/pkg/absy"
	"github.com/consensys/go-zirc/pkg/embed"
	"github.com/consensys/go-zirc/pkg/types"
	"github.com/consensys/go-zirc/pkg/util"
)

// ReadProgram decodes an untyped program from its JSON interchange form.
func ReadProgram(data []byte) (absy.Program, error) {
	var raw jsonProgram
	//
	if err := json.Unmarshal(data, &raw); err != nil {
		return absy.Program{}, errors.Wrap(err, "malformed program file")
	}
	//
	if raw.Version != FormatVersion {
		return absy.Program{}, errors.Errorf("unsupported program format version %d", raw.Version)
	}
	//
	modules := make(map[types.ModuleId]absy.Module, len(raw.Modules))
	//
	for id, module := range raw.Modules {
		decoded, err := readModule(module)
		if err != nil {
			return absy.Program{}, errors.Wrapf(err, "module %s", id)
		}
		//
		modules[id] = decoded
	}
	//
	if _, ok := modules[raw.Main]; !ok {
		return absy.Program{}, errors.Errorf("main module %s is not present", raw.Main)
	}
	//
	return absy.Program{Modules: modules, Main: raw.Main}, nil
}

func readModule(raw jsonModule) (absy.Module, error) {
	symbols := make([]absy.SymbolDeclarationNode, len(raw.Symbols))
	//
	for i, decl := range raw.Symbols {
		symbol, err := readSymbol(decl)
		if err != nil {
			return absy.Module{}, errors.Wrapf(err, "symbol %s", decl.Id)
		}
		//
		symbols[i] = node(decl.jsonSpan, absy.SymbolDeclaration{Id: decl.Id, Symbol: symbol})
	}
	//
	return absy.Module{Symbols: symbols}, nil
}

func readSymbol(raw jsonSymbolDeclaration) (absy.Symbol, error) {
	switch raw.Kind {
	case "struct":
		if raw.Struct == nil {
			return nil, errors.New("struct symbol is missing its definition")
		}
		//
		fields := make([]absy.StructDefinitionFieldNode, len(raw.Struct.Fields))
		//
		for i, field := range raw.Struct.Fields {
			ty, err := readType(field.Type)
			if err != nil {
				return nil, err
			}
			//
			fields[i] = node(field.jsonSpan, absy.StructDefinitionField{Id: field.Id, Type: ty})
		}
		//
		definition := node(raw.Struct.jsonSpan, absy.StructDefinition{Fields: fields})
		//
		return absy.HereType{Definition: definition}, nil
	case "function":
		if raw.Function == nil {
			return nil, errors.New("function symbol is missing its definition")
		}
		//
		function, err := readFunction(*raw.Function)
		if err != nil {
			return nil, err
		}
		//
		return absy.HereFunction{Function: function}, nil
	case "import":
		if raw.Import == nil {
			return nil, errors.New("import symbol is missing its definition")
		}
		//
		imported := node(raw.Import.jsonSpan, absy.SymbolImport{
			ModuleId: raw.Import.Module,
			SymbolId: raw.Import.Symbol,
		})
		//
		return absy.There{Import: imported}, nil
	case "flat":
		gadget, err := readEmbed(raw.Flat)
		if err != nil {
			return nil, err
		}
		//
		return absy.Flat{Embed: gadget}, nil
	default:
		return nil, errors.Errorf("unknown symbol kind %q", raw.Kind)
	}
}

func readEmbed(name string) (embed.FlatEmbed, error) {
	switch name {
	case embed.Sha256Round.Id():
		return embed.Sha256Round, nil
	case embed.Unpack.Id():
		return embed.Unpack, nil
	default:
		return 0, errors.Errorf("unknown embedded gadget %q", name)
	}
}

func readFunction(raw jsonFunction) (absy.FunctionNode, error) {
	var function absy.Function
	//
	for _, arg := range raw.Arguments {
		ty, err := readType(arg.Type)
		if err != nil {
			return absy.FunctionNode{}, err
		}
		//
		variable := node(arg.jsonSpan, absy.Variable{Id: arg.Id, Type: ty})
		function.Arguments = append(function.Arguments,
			node(arg.jsonSpan, absy.Parameter{Id: variable, Private: arg.Private}))
	}
	//
	for _, t := range raw.Inputs {
		ty, err := readType(t)
		if err != nil {
			return absy.FunctionNode{}, err
		}
		//
		function.Signature.Inputs = append(function.Signature.Inputs, ty)
	}
	//
	for _, t := range raw.Outputs {
		ty, err := readType(t)
		if err != nil {
			return absy.FunctionNode{}, err
		}
		//
		function.Signature.Outputs = append(function.Signature.Outputs, ty)
	}
	//
	for _, s := range raw.Body {
		statement, err := readStatement(s)
		if err != nil {
			return absy.FunctionNode{}, err
		}
		//
		function.Statements = append(function.Statements, statement)
	}
	//
	return node(raw.jsonSpan, function), nil
}

func readType(raw jsonType) (absy.UnresolvedTypeNode, error) {
	switch raw.Kind {
	case "field":
		return node[absy.UnresolvedType](raw.jsonSpan, absy.FieldElementType{}), nil
	case "bool":
		return node[absy.UnresolvedType](raw.jsonSpan, absy.BooleanType{}), nil
	case "u8":
		return node[absy.UnresolvedType](raw.jsonSpan, absy.UintType{Bitwidth: types.B8}), nil
	case "u16":
		return node[absy.UnresolvedType](raw.jsonSpan, absy.UintType{Bitwidth: types.B16}), nil
	case "u32":
		return node[absy.UnresolvedType](raw.jsonSpan, absy.UintType{Bitwidth: types.B32}), nil
	case "array":
		if raw.Element == nil {
			return absy.UnresolvedTypeNode{}, errors.New("array type is missing its element")
		}
		//
		element, err := readType(*raw.Element)
		if err != nil {
			return absy.UnresolvedTypeNode{}, err
		}
		//
		return node[absy.UnresolvedType](raw.jsonSpan,
			absy.ArrayUnresolvedType{Element: element, Size: raw.Size}), nil
	case "user":
		return node[absy.UnresolvedType](raw.jsonSpan, absy.UserType{Id: raw.Name}), nil
	default:
		return absy.UnresolvedTypeNode{}, errors.Errorf("unknown type kind %q", raw.Kind)
	}
}

func readVariable(raw jsonVariable) (absy.VariableNode, error) {
	ty, err := readType(raw.Type)
	if err != nil {
		return absy.VariableNode{}, err
	}
	//
	return node(raw.jsonSpan, absy.Variable{Id: raw.Id, Type: ty}), nil
}

func readStatement(raw jsonStatement) (absy.StatementNode, error) {
	switch raw.Kind {
	case "return":
		exprs, err := readExprs(raw.Exprs)
		if err != nil {
			return absy.StatementNode{}, err
		}
		//
		list := node(raw.jsonSpan, absy.ExpressionList{Expressions: exprs})
		//
		return node[absy.Statement](raw.jsonSpan, absy.Return{Expressions: list}), nil
	case "declaration":
		if raw.Variable == nil {
			return absy.StatementNode{}, errors.New("declaration is missing its variable")
		}
		//
		variable, err := readVariable(*raw.Variable)
		if err != nil {
			return absy.StatementNode{}, err
		}
		//
		return node[absy.Statement](raw.jsonSpan, absy.Declaration{Variable: variable}), nil
	case "definition":
		if len(raw.Assignees) != 1 || len(raw.Exprs) != 1 {
			return absy.StatementNode{}, errors.New("definition requires one assignee and one expression")
		}
		//
		assignee, err := readAssignee(raw.Assignees[0])
		if err != nil {
			return absy.StatementNode{}, err
		}
		//
		expr, err := readExpr(raw.Exprs[0])
		if err != nil {
			return absy.StatementNode{}, err
		}
		//
		return node[absy.Statement](raw.jsonSpan, absy.Definition{Assignee: assignee, Expression: expr}), nil
	case "assertion":
		if len(raw.Exprs) != 1 {
			return absy.StatementNode{}, errors.New("assertion requires one expression")
		}
		//
		expr, err := readExpr(raw.Exprs[0])
		if err != nil {
			return absy.StatementNode{}, err
		}
		//
		return node[absy.Statement](raw.jsonSpan, absy.Assertion{Expression: expr}), nil
	case "for":
		if raw.Variable == nil || raw.From == nil || raw.To == nil {
			return absy.StatementNode{}, errors.New("for loop is missing its variable or bounds")
		}
		//
		variable, err := readVariable(*raw.Variable)
		if err != nil {
			return absy.StatementNode{}, err
		}
		//
		from, err := readExpr(*raw.From)
		if err != nil {
			return absy.StatementNode{}, err
		}
		//
		to, err := readExpr(*raw.To)
		if err != nil {
			return absy.StatementNode{}, err
		}
		//
		var body []absy.StatementNode
		//
		for _, s := range raw.Body {
			statement, err := readStatement(s)
			if err != nil {
				return absy.StatementNode{}, err
			}
			//
			body = append(body, statement)
		}
		//
		return node[absy.Statement](raw.jsonSpan, absy.For{
			Variable:   variable,
			From:       from,
			To:         to,
			Statements: body,
		}), nil
	case "multidef":
		if len(raw.Exprs) != 1 {
			return absy.StatementNode{}, errors.New("multidef requires one call expression")
		}
		//
		var assignees []absy.AssigneeNode
		//
		for _, a := range raw.Assignees {
			assignee, err := readAssignee(a)
			if err != nil {
				return absy.StatementNode{}, err
			}
			//
			assignees = append(assignees, assignee)
		}
		//
		expr, err := readExpr(raw.Exprs[0])
		if err != nil {
			return absy.StatementNode{}, err
		}
		//
		return node[absy.Statement](raw.jsonSpan, absy.MultipleDefinition{
			Assignees:  assignees,
			Expression: expr,
		}), nil
	default:
		return absy.StatementNode{}, errors.Errorf("unknown statement kind %q", raw.Kind)
	}
}

func readAssignee(raw jsonAssignee) (absy.AssigneeNode, error) {
	switch raw.Kind {
	case "ident":
		return node[absy.Assignee](raw.jsonSpan, absy.AssigneeIdentifier{Id: raw.Value}), nil
	case "select":
		if raw.Assignee == nil || raw.Index == nil {
			return absy.AssigneeNode{}, errors.New("select assignee is missing its target or index")
		}
		//
		assignee, err := readAssignee(*raw.Assignee)
		if err != nil {
			return absy.AssigneeNode{}, err
		}
		//
		index, err := readExpr(*raw.Index)
		if err != nil {
			return absy.AssigneeNode{}, err
		}
		//
		return node[absy.Assignee](raw.jsonSpan, absy.AssigneeSelect{
			Assignee: assignee,
			Index:    absy.ExpressionIndex{Expression: index},
		}), nil
	case "member":
		if raw.Assignee == nil {
			return absy.AssigneeNode{}, errors.New("member assignee is missing its target")
		}
		//
		assignee, err := readAssignee(*raw.Assignee)
		if err != nil {
			return absy.AssigneeNode{}, err
		}
		//
		return node[absy.Assignee](raw.jsonSpan, absy.AssigneeMember{Assignee: assignee, Id: raw.Value}), nil
	default:
		return absy.AssigneeNode{}, errors.Errorf("unknown assignee kind %q", raw.Kind)
	}
}

func readExprs(raws []jsonExpr) ([]absy.ExpressionNode, error) {
	exprs := make([]absy.ExpressionNode, len(raws))
	//
	for i, raw := range raws {
		expr, err := readExpr(raw)
		if err != nil {
			return nil, err
		}
		//
		exprs[i] = expr
	}
	//
	return exprs, nil
}

// binaryReaders maps binary operator kinds onto their AST constructors.
var binaryReaders = map[string]func(l, r absy.ExpressionNode) absy.Expression{
	"add":    func(l, r absy.ExpressionNode) absy.Expression { return absy.Add{Left: l, Right: r} },
	"sub":    func(l, r absy.ExpressionNode) absy.Expression { return absy.Sub{Left: l, Right: r} },
	"mult":   func(l, r absy.ExpressionNode) absy.Expression { return absy.Mult{Left: l, Right: r} },
	"div":    func(l, r absy.ExpressionNode) absy.Expression { return absy.Div{Left: l, Right: r} },
	"rem":    func(l, r absy.ExpressionNode) absy.Expression { return absy.Rem{Left: l, Right: r} },
	"pow":    func(l, r absy.ExpressionNode) absy.Expression { return absy.Pow{Left: l, Right: r} },
	"lt":     func(l, r absy.ExpressionNode) absy.Expression { return absy.Lt{Left: l, Right: r} },
	"le":     func(l, r absy.ExpressionNode) absy.Expression { return absy.Le{Left: l, Right: r} },
	"ge":     func(l, r absy.ExpressionNode) absy.Expression { return absy.Ge{Left: l, Right: r} },
	"gt":     func(l, r absy.ExpressionNode) absy.Expression { return absy.Gt{Left: l, Right: r} },
	"eq":     func(l, r absy.ExpressionNode) absy.Expression { return absy.Eq{Left: l, Right: r} },
	"and":    func(l, r absy.ExpressionNode) absy.Expression { return absy.And{Left: l, Right: r} },
	"or":     func(l, r absy.ExpressionNode) absy.Expression { return absy.Or{Left: l, Right: r} },
	"bitand": func(l, r absy.ExpressionNode) absy.Expression { return absy.BitAnd{Left: l, Right: r} },
	"bitor":  func(l, r absy.ExpressionNode) absy.Expression { return absy.BitOr{Left: l, Right: r} },
	"bitxor": func(l, r absy.ExpressionNode) absy.Expression { return absy.BitXor{Left: l, Right: r} },
	"lshift": func(l, r absy.ExpressionNode) absy.Expression { return absy.LeftShift{Left: l, Right: r} },
	"rshift": func(l, r absy.ExpressionNode) absy.Expression { return absy.RightShift{Left: l, Right: r} },
}

func readExpr(raw jsonExpr) (absy.ExpressionNode, error) {
	if reader, ok := binaryReaders[raw.Kind]; ok {
		if len(raw.Args) != 2 {
			return absy.ExpressionNode{}, errors.Errorf("%s requires two operands", raw.Kind)
		}
		//
		left, err := readExpr(raw.Args[0])
		if err != nil {
			return absy.ExpressionNode{}, err
		}
		//
		right, err := readExpr(raw.Args[1])
		if err != nil {
			return absy.ExpressionNode{}, err
		}
		//
		return node(raw.jsonSpan, reader(left, right)), nil
	}
	//
	switch raw.Kind {
	case "field":
		value, ok := new(big.Int).SetString(raw.Value, 10)
		if !ok {
			return absy.ExpressionNode{}, errors.Errorf("malformed field constant %q", raw.Value)
		}
		//
		return node[absy.Expression](raw.jsonSpan, absy.FieldConstant{Value: value}), nil
	case "bool":
		value, err := strconv.ParseBool(raw.Value)
		if err != nil {
			return absy.ExpressionNode{}, errors.Wrapf(err, "malformed boolean constant %q", raw.Value)
		}
		//
		return node[absy.Expression](raw.jsonSpan, absy.BooleanConstant{Value: value}), nil
	case "u8", "u16", "u32":
		bits := map[string]int{"u8": 8, "u16": 16, "u32": 32}[raw.Kind]
		//
		value, err := strconv.ParseUint(raw.Value, 10, bits)
		if err != nil {
			return absy.ExpressionNode{}, errors.Wrapf(err, "malformed %s constant %q", raw.Kind, raw.Value)
		}
		//
		var expr absy.Expression
		//
		switch raw.Kind {
		case "u8":
			expr = absy.U8Constant{Value: uint8(value)}
		case "u16":
			expr = absy.U16Constant{Value: uint16(value)}
		default:
			expr = absy.U32Constant{Value: uint32(value)}
		}
		//
		return node(raw.jsonSpan, expr), nil
	case "ident":
		return node[absy.Expression](raw.jsonSpan, absy.Identifier{Id: raw.Value}), nil
	case "not":
		if len(raw.Args) != 1 {
			return absy.ExpressionNode{}, errors.New("not requires one operand")
		}
		//
		inner, err := readExpr(raw.Args[0])
		if err != nil {
			return absy.ExpressionNode{}, err
		}
		//
		return node[absy.Expression](raw.jsonSpan, absy.Not{Inner: inner}), nil
	case "ifelse":
		if len(raw.Args) != 3 {
			return absy.ExpressionNode{}, errors.New("ifelse requires three operands")
		}
		//
		operands, err := readExprs(raw.Args)
		if err != nil {
			return absy.ExpressionNode{}, err
		}
		//
		return node[absy.Expression](raw.jsonSpan, absy.IfElse{
			Condition:   operands[0],
			Consequence: operands[1],
			Alternative: operands[2],
		}), nil
	case "call":
		arguments, err := readExprs(raw.Args)
		if err != nil {
			return absy.ExpressionNode{}, err
		}
		//
		return node[absy.Expression](raw.jsonSpan, absy.FunctionCall{Id: raw.Value, Arguments: arguments}), nil
	case "select":
		return readSelect(raw)
	case "member":
		if len(raw.Args) != 1 {
			return absy.ExpressionNode{}, errors.New("member requires one operand")
		}
		//
		strukt, err := readExpr(raw.Args[0])
		if err != nil {
			return absy.ExpressionNode{}, err
		}
		//
		return node[absy.Expression](raw.jsonSpan, absy.Member{Struct: strukt, Id: raw.Value}), nil
	case "array":
		var items []absy.SpreadOrExpression
		//
		for _, arg := range raw.Args {
			if arg.Kind == "spread" {
				if len(arg.Args) != 1 {
					return absy.ExpressionNode{}, errors.New("spread requires one operand")
				}
				//
				inner, err := readExpr(arg.Args[0])
				if err != nil {
					return absy.ExpressionNode{}, err
				}
				//
				spread := node(arg.jsonSpan, absy.Spread{Expression: inner})
				items = append(items, absy.SpreadItem{Spread: spread})
				//
				continue
			}
			//
			expr, err := readExpr(arg)
			if err != nil {
				return absy.ExpressionNode{}, err
			}
			//
			items = append(items, absy.ExpressionItem{Expression: expr})
		}
		//
		if len(items) == 0 {
			return absy.ExpressionNode{}, errors.New("array literals cannot be empty")
		}
		//
		return node[absy.Expression](raw.jsonSpan, absy.InlineArray{Items: items}), nil
	case "struct":
		members := make([]absy.InlineStructMember, len(raw.Members))
		//
		for i, member := range raw.Members {
			value, err := readExpr(member.Value)
			if err != nil {
				return absy.ExpressionNode{}, err
			}
			//
			members[i] = absy.InlineStructMember{Id: member.Id, Value: value}
		}
		//
		return node[absy.Expression](raw.jsonSpan, absy.InlineStruct{Id: raw.Value, Members: members}), nil
	default:
		return absy.ExpressionNode{}, errors.Errorf("unknown expression kind %q", raw.Kind)
	}
}

func readSelect(raw jsonExpr) (absy.ExpressionNode, error) {
	if len(raw.Args) != 1 {
		return absy.ExpressionNode{}, errors.New("select requires its array operand")
	}
	//
	array, err := readExpr(raw.Args[0])
	if err != nil {
		return absy.ExpressionNode{}, err
	}
	//
	if raw.Range {
		from := util.None[absy.ExpressionNode]()
		to := util.None[absy.ExpressionNode]()
		//
		if raw.From != nil {
			bound, err := readExpr(*raw.From)
			if err != nil {
				return absy.ExpressionNode{}, err
			}
			//
			from = util.Some(bound)
		}
		//
		if raw.To != nil {
			bound, err := readExpr(*raw.To)
			if err != nil {
				return absy.ExpressionNode{}, err
			}
			//
			to = util.Some(bound)
		}
		//
		index := absy.RangeIndex{Range: node(raw.jsonSpan, absy.Range{From: from, To: to})}
		//
		return node[absy.Expression](raw.jsonSpan, absy.Select{Array: array, Index: index}), nil
	}
	//
	if raw.Index == nil {
		return absy.ExpressionNode{}, errors.New("select requires an index")
	}
	//
	index, err := readExpr(*raw.Index)
	if err != nil {
		return absy.ExpressionNode{}, err
	}
	//
	return node[absy.Expression](raw.jsonSpan, absy.Select{
		Array: array,
		Index: absy.ExpressionIndex{Expression: index},
	}), nil
}

// node wraps a payload with the positions of its JSON span.
func node[T any](span jsonSpan, value T) absy.Node[T] {
	return absy.NewNode(span.Start, span.End, value)
}
