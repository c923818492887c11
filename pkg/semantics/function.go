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
	"strings"

	"github.com/consensys/go-zirc/pkg/absy"
	"github.com/consensys/go-zirc/pkg/typed"
	"github.com/consensys/go-zirc/pkg/types"
	"github.com/consensys/go-zirc/pkg/util"
)

// checkFunction checks a function declaration: parameters are bound into a
// fresh scope, the signature is resolved, statements are checked in source
// order, exactly one return statement is required, and its expression types
// must equal the signature outputs elementwise.
func (c *Checker) checkFunction(node absy.FunctionNode, moduleId types.ModuleId,
	typeMap TypeMap) (typed.TypedFunction, []ErrorInner) {
	var (
		errors     []ErrorInner
		arguments  []typed.Parameter
		statements []typed.TypedStatement
		start, end = node.Pos()
		function   = node.Value
	)
	//
	c.enterScope()
	defer c.exitScope()
	//
	if len(function.Arguments) != len(function.Signature.Inputs) {
		panic("malformed parser output: arity of parameters and signature differ")
	}
	//
	for _, arg := range function.Arguments {
		parameter, errs := c.checkParameter(arg, moduleId, typeMap)
		if len(errs) > 0 {
			errors = append(errors, errs...)
			continue
		}
		//
		c.insertIntoScope(parameter.Id)
		arguments = append(arguments, parameter)
	}
	//
	signature, errs := c.checkSignature(function.Signature, moduleId, typeMap)
	if len(errs) > 0 {
		return typed.TypedFunction{}, append(errors, errs...)
	}
	//
	foundReturn := false
	//
	for _, stmt := range function.Statements {
		sstart, send := stmt.Pos()
		//
		if _, ok := stmt.Value.(absy.Return); ok {
			if foundReturn {
				errors = append(errors, NewErrorInner(sstart, send,
					"Expected a single return statement"))
			}
			//
			foundReturn = true
		}
		//
		statement, serrs := c.checkStatement(stmt, moduleId, typeMap)
		if len(serrs) > 0 {
			errors = append(errors, serrs...)
			continue
		}
		// Return types must line up with the signature outputs.
		if ret, ok := statement.(typed.ReturnStatement); ok {
			returned := make([]types.Type, len(ret.Expressions))
			//
			for i, e := range ret.Expressions {
				returned[i] = e.Type()
			}
			//
			if !typeListsEqual(returned, signature.Outputs) {
				errors = append(errors, NewErrorInner(sstart, send,
					"Expected (%s) in return statement, found (%s)",
					joinTypes(signature.Outputs), joinTypes(returned)))
			}
		}
		//
		statements = append(statements, statement)
	}
	//
	if !foundReturn {
		errors = append(errors, NewErrorInner(start, end, "Expected a return statement"))
	}
	//
	if len(errors) > 0 {
		return typed.TypedFunction{}, errors
	}
	//
	return typed.TypedFunction{
		Arguments:  arguments,
		Statements: statements,
		Signature:  signature,
	}, nil
}

func (c *Checker) checkParameter(node absy.ParameterNode, moduleId types.ModuleId,
	typeMap TypeMap) (typed.Parameter, []ErrorInner) {
	variable, errs := c.checkVariable(node.Value.Id, moduleId, typeMap)
	if len(errs) > 0 {
		return typed.Parameter{}, errs
	}
	//
	return typed.Parameter{Id: variable, Private: node.Value.Private}, nil
}

func (c *Checker) checkSignature(signature absy.UnresolvedSignature, moduleId types.ModuleId,
	typeMap TypeMap) (types.Signature, []ErrorInner) {
	var (
		errors  []ErrorInner
		inputs  []types.Type
		outputs []types.Type
	)
	//
	for _, t := range signature.Inputs {
		ty, err := c.checkType(t, moduleId, typeMap)
		if err != nil {
			errors = append(errors, *err)
			continue
		}
		//
		inputs = append(inputs, ty)
	}
	//
	for _, t := range signature.Outputs {
		ty, err := c.checkType(t, moduleId, typeMap)
		if err != nil {
			errors = append(errors, *err)
			continue
		}
		//
		outputs = append(outputs, ty)
	}
	//
	if len(errors) > 0 {
		return types.Signature{}, errors
	}
	//
	return types.NewSignature(inputs, outputs), nil
}

// checkType resolves an unresolved type against the module's type
// environment, failing on undefined user types.
func (c *Checker) checkType(node absy.UnresolvedTypeNode, moduleId types.ModuleId,
	typeMap TypeMap) (types.Type, *ErrorInner) {
	start, end := node.Pos()
	//
	switch ty := node.Value.(type) {
	case absy.FieldElementType:
		return types.FieldElementType{}, nil
	case absy.BooleanType:
		return types.BooleanType{}, nil
	case absy.UintType:
		return types.NewUintType(ty.Bitwidth), nil
	case absy.ArrayUnresolvedType:
		element, err := c.checkType(ty.Element, moduleId, typeMap)
		if err != nil {
			return nil, err
		}
		//
		return types.NewArrayType(element, ty.Size), nil
	case absy.UserType:
		if resolved, ok := typeMap[moduleId][ty.Id]; ok {
			return resolved, nil
		}
		//
		err := NewErrorInner(start, end, "Undefined type %s", ty.Id)
		//
		return nil, &err
	default:
		panic("unknown unresolved type")
	}
}

func (c *Checker) checkVariable(node absy.VariableNode, moduleId types.ModuleId,
	typeMap TypeMap) (typed.Variable, []ErrorInner) {
	ty, err := c.checkType(node.Value.Type, moduleId, typeMap)
	if err != nil {
		return typed.Variable{}, []ErrorInner{*err}
	}
	//
	return typed.NewVariable(typed.NewIdentifier(node.Value.Id), ty), nil
}

// checkForVariable enforces that a loop variable is declared with the field
// element type.
func (c *Checker) checkForVariable(node absy.VariableNode) *ErrorInner {
	if _, ok := node.Value.Type.Value.(absy.FieldElementType); ok {
		return nil
	}
	//
	start, end := node.Pos()
	err := NewErrorInner(start, end, "Variable in for loop cannot have type %s", node.Value.Type.Value)
	//
	return &err
}

func typeListsEqual(left []types.Type, right []types.Type) bool {
	if len(left) != len(right) {
		return false
	}
	//
	for i, t := range left {
		if !t.Equal(right[i]) {
			return false
		}
	}
	//
	return true
}

func joinTypes(ts []types.Type) string {
	strs := make([]string, len(ts))
	//
	for i, t := range ts {
		strs[i] = t.String()
	}
	//
	return strings.Join(strs, ", ")
}

// typeOptions lifts a list of types into output hints for a function query.
func typeOptions(ts []types.Type) []util.Option[types.Type] {
	hints := make([]util.Option[types.Type], len(ts))
	//
	for i, t := range ts {
		hints[i] = util.Some(t)
	}
	//
	return hints
}
