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
	"fmt"

	"github.com/consensys/go-zirc/pkg/absy"
	"github.com/consensys/go-zirc/pkg/typed"
	"github.com/consensys/go-zirc/pkg/types"
	"github.com/consensys/go-zirc/pkg/util"
)

func (c *Checker) checkStatement(node absy.StatementNode, moduleId types.ModuleId,
	typeMap TypeMap) (typed.TypedStatement, []ErrorInner) {
	start, end := node.Pos()
	//
	switch stmt := node.Value.(type) {
	case absy.Return:
		var checked []typed.TypedExpression
		//
		for _, e := range stmt.Expressions.Value.Expressions {
			expression, err := c.checkExpression(e, moduleId, typeMap)
			if err != nil {
				return nil, []ErrorInner{*err}
			}
			//
			checked = append(checked, expression)
		}
		// The elementwise match against the signature outputs happens at the
		// function level.
		return typed.ReturnStatement{Expressions: checked}, nil
	case absy.Declaration:
		variable, errs := c.checkVariable(stmt.Variable, moduleId, typeMap)
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if !c.insertIntoScope(variable) {
			return nil, []ErrorInner{NewErrorInner(start, end,
				"Duplicate declaration for variable named %s", variable.Id)}
		}
		//
		return typed.DeclarationStatement{Variable: variable}, nil
	case absy.Definition:
		// The parser creates a MultipleDefinition whenever the right-hand
		// side is a function call, to benefit from output inference.
		if _, ok := stmt.Expression.Value.(absy.FunctionCall); ok {
			panic("parser should not generate a definition where the right hand side is a function call")
		}
		//
		expression, err := c.checkExpression(stmt.Expression, moduleId, typeMap)
		if err != nil {
			return nil, []ErrorInner{*err}
		}
		//
		assignee, err := c.checkAssignee(stmt.Assignee, moduleId, typeMap)
		if err != nil {
			return nil, []ErrorInner{*err}
		}
		// The assignee and right-hand side must have the same type.
		if !assignee.Type().Equal(expression.Type()) {
			return nil, []ErrorInner{NewErrorInner(start, end,
				"Expression %s of type %s cannot be assigned to %s of type %s",
				expression, expression.Type(), assignee, assignee.Type())}
		}
		//
		return typed.DefinitionStatement{Assignee: assignee, Expression: expression}, nil
	case absy.Assertion:
		expression, err := c.checkExpression(stmt.Expression, moduleId, typeMap)
		if err != nil {
			return nil, []ErrorInner{*err}
		}
		//
		boolean, ok := expression.(typed.BooleanExpression)
		if !ok {
			return nil, []ErrorInner{NewErrorInner(start, end,
				"Expected %s to be of type bool, found %s", expression, expression.Type())}
		}
		//
		return typed.AssertionStatement{Expression: boolean}, nil
	case absy.For:
		return c.checkForStatement(stmt, start, end, moduleId, typeMap)
	case absy.MultipleDefinition:
		return c.checkMultipleDefinition(stmt, start, end, moduleId, typeMap)
	default:
		panic("unknown statement")
	}
}

func (c *Checker) checkForStatement(stmt absy.For, start, end sourcePosition,
	moduleId types.ModuleId, typeMap TypeMap) (typed.TypedStatement, []ErrorInner) {
	c.enterScope()
	defer c.exitScope()
	//
	if err := c.checkForVariable(stmt.Variable); err != nil {
		return nil, []ErrorInner{*err}
	}
	//
	variable, errs := c.checkVariable(stmt.Variable, moduleId, typeMap)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	from, err := c.checkExpression(stmt.From, moduleId, typeMap)
	if err != nil {
		return nil, []ErrorInner{*err}
	}
	//
	to, err := c.checkExpression(stmt.To, moduleId, typeMap)
	if err != nil {
		return nil, []ErrorInner{*err}
	}
	// Both bounds must be field-typed; their constant-ness is enforced in
	// later passes.
	fromField, ok := from.(typed.FieldElementExpression)
	if !ok {
		return nil, []ErrorInner{NewErrorInner(start, end,
			"Expected lower loop bound to be of type field, found %s", from.Type())}
	}
	//
	toField, ok := to.(typed.FieldElementExpression)
	if !ok {
		return nil, []ErrorInner{NewErrorInner(start, end,
			"Expected higher loop bound to be of type field, found %s", to.Type())}
	}
	//
	c.insertIntoScope(variable)
	//
	var statements []typed.TypedStatement
	//
	for _, s := range stmt.Statements {
		statement, errs := c.checkStatement(s, moduleId, typeMap)
		if len(errs) > 0 {
			return nil, errs
		}
		//
		statements = append(statements, statement)
	}
	//
	return typed.ForStatement{
		Variable:   variable,
		From:       fromField,
		To:         toField,
		Statements: statements,
	}, nil
}

// checkMultipleDefinition checks an assignment of the results of a function
// call to several assignees.  The assignees' types serve as output hints and
// the arguments' types as input constraints for overload selection.
func (c *Checker) checkMultipleDefinition(stmt absy.MultipleDefinition, start, end sourcePosition,
	moduleId types.ModuleId, typeMap TypeMap) (typed.TypedStatement, []ErrorInner) {
	// The right-hand side has to be a function call.
	call, ok := stmt.Expression.Value.(absy.FunctionCall)
	if !ok {
		return nil, []ErrorInner{NewErrorInner(start, end,
			"%s should be a function call", stmt.Expression)}
	}
	// Check the left-hand side assignees are defined.
	var (
		errors    []ErrorInner
		assignees []typed.TypedAssignee
	)
	//
	for _, a := range stmt.Assignees {
		assignee, err := c.checkAssignee(a, moduleId, typeMap)
		if err != nil {
			errors = append(errors, *err)
			continue
		}
		//
		assignees = append(assignees, assignee)
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	assigneeTypes := make([]types.Type, len(assignees))
	//
	for i, a := range assignees {
		assigneeTypes[i] = a.Type()
	}
	// Find the argument types.
	var (
		argumentsChecked []typed.TypedExpression
		argumentTypes    []types.Type
	)
	//
	for _, arg := range call.Arguments {
		argument, err := c.checkExpression(arg, moduleId, typeMap)
		if err != nil {
			return nil, []ErrorInner{*err}
		}
		//
		argumentsChecked = append(argumentsChecked, argument)
		argumentTypes = append(argumentTypes, argument.Type())
	}
	//
	query := NewFunctionQuery(call.Id, argumentTypes, typeOptions(assigneeTypes))
	// The function has to be defined.
	key, ok := c.findFunction(query)
	if !ok {
		return nil, []ErrorInner{NewErrorInner(start, end,
			"Function definition for function %s with signature %s not found.", call.Id, query)}
	}
	//
	return typed.MultipleDefinitionStatement{
		Assignees: assignees,
		Call: typed.TypedExpressionList{
			Key:       key,
			Arguments: argumentsChecked,
			Types:     key.Signature.Outputs,
		},
	}, nil
}

// checkAssignee checks that an assignee is declared and well formed: array
// selects require an array-typed sub-assignee and field-typed index, and
// member accesses require a struct-typed sub-assignee declaring the member.
func (c *Checker) checkAssignee(node absy.AssigneeNode, moduleId types.ModuleId,
	typeMap TypeMap) (typed.TypedAssignee, *ErrorInner) {
	start, end := node.Pos()
	//
	switch assignee := node.Value.(type) {
	case absy.AssigneeIdentifier:
		variable, ok := c.getScope(assignee.Id)
		if !ok {
			err := NewErrorInner(start, end, "Variable `%s` is undeclared", assignee.Id)
			return nil, &err
		}
		//
		return typed.AssigneeVariable{
			Variable: typed.NewVariable(typed.NewIdentifier(assignee.Id), variable.Type),
		}, nil
	case absy.AssigneeSelect:
		checked, err := c.checkAssignee(assignee.Assignee, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		ty := checked.Type()
		//
		if _, ok := ty.(types.ArrayType); !ok {
			inner := NewErrorInner(start, end,
				"Cannot access element at index %s on %s of type %s", assignee.Index, checked, ty)
			return nil, &inner
		}
		//
		index, ok := assignee.Index.(absy.ExpressionIndex)
		if !ok {
			// A fatal error: the surface language has no slice assignment.
			panic(fmt.Sprintf("using slices in assignments is not supported, found %s", node.Value))
		}
		//
		indexChecked, err := c.checkExpression(index.Expression, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		indexField, ok := indexChecked.(typed.FieldElementExpression)
		if !ok {
			inner := NewErrorInner(start, end,
				"Expected array %s index to have type field, found %s", checked, indexChecked.Type())
			return nil, &inner
		}
		//
		return typed.AssigneeSelect{Assignee: checked, Index: indexField}, nil
	case absy.AssigneeMember:
		checked, err := c.checkAssignee(assignee.Assignee, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		ty := checked.Type()
		//
		strukt, ok := ty.(types.StructType)
		if !ok {
			inner := NewErrorInner(start, end,
				"Cannot access field %s on %s as of type %s", assignee.Id, checked, ty)
			return nil, &inner
		}
		//
		if _, ok := strukt.Member(assignee.Id); !ok {
			inner := NewErrorInner(start, end, "%s doesn't have member %s", ty, assignee.Id)
			return nil, &inner
		}
		//
		return typed.AssigneeMember{Assignee: checked, Id: assignee.Id}, nil
	default:
		panic("unknown assignee")
	}
}


// typeHintsNone builds the output hints of a single-return expression
// context.
func typeHintsNone() []util.Option[types.Type] {
	return []util.Option[types.Type]{util.None[types.Type]()}
}
