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
	"strings"

	"github.com/consensys/go-zirc/pkg/types"
)

// TypedStatement is a statement of a typed function body.
type TypedStatement interface {
	fmt.Stringer
	// isTypedStatement is a sum-type marker.
	isTypedStatement()
}

// ReturnStatement yields the given expressions as the function result.
type ReturnStatement struct {
	Expressions []TypedExpression
}

// DefinitionStatement assigns an expression to an assignee of equal type.
type DefinitionStatement struct {
	Assignee   TypedAssignee
	Expression TypedExpression
}

// DeclarationStatement introduces a variable.
type DeclarationStatement struct {
	Variable Variable
}

// AssertionStatement requires a boolean expression to hold in every
// satisfying assignment of the circuit.
type AssertionStatement struct {
	Expression BooleanExpression
}

// ForStatement iterates a field-typed loop variable over a half-open range.
type ForStatement struct {
	Variable   Variable
	From       FieldElementExpression
	To         FieldElementExpression
	Statements []TypedStatement
}

// MultipleDefinitionStatement assigns the results of a function call to a
// list of assignees.
type MultipleDefinitionStatement struct {
	Assignees []TypedAssignee
	Call      TypedExpressionList
}

func (ReturnStatement) isTypedStatement()             {}
func (DefinitionStatement) isTypedStatement()         {}
func (DeclarationStatement) isTypedStatement()        {}
func (AssertionStatement) isTypedStatement()          {}
func (ForStatement) isTypedStatement()                {}
func (MultipleDefinitionStatement) isTypedStatement() {}

func (s ReturnStatement) String() string {
	exprs := make([]string, len(s.Expressions))
	//
	for i, e := range s.Expressions {
		exprs[i] = e.String()
	}
	//
	return fmt.Sprintf("return %s", strings.Join(exprs, ", "))
}

func (s DefinitionStatement) String() string {
	return fmt.Sprintf("%s = %s", s.Assignee, s.Expression)
}

func (s DeclarationStatement) String() string {
	return s.Variable.String()
}

func (s AssertionStatement) String() string {
	return fmt.Sprintf("assert(%s)", s.Expression)
}

func (s ForStatement) String() string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "for %s in %s..%s do\n", s.Variable.Id, s.From, s.To)
	//
	for _, stmt := range s.Statements {
		fmt.Fprintf(&builder, "\t\t%s\n", stmt)
	}
	//
	builder.WriteString("\tendfor")
	//
	return builder.String()
}

func (s MultipleDefinitionStatement) String() string {
	assignees := make([]string, len(s.Assignees))
	//
	for i, a := range s.Assignees {
		assignees[i] = a.String()
	}
	//
	return fmt.Sprintf("%s = %s", strings.Join(assignees, ", "), s.Call)
}

// TypedAssignee is the left-hand target of a definition: a variable, an
// array element, or a struct member.
type TypedAssignee interface {
	fmt.Stringer
	// Type returns the type of the location being assigned.
	Type() types.Type
	// isTypedAssignee is a sum-type marker.
	isTypedAssignee()
}

// AssigneeVariable assigns to a declared variable.
type AssigneeVariable struct {
	Variable Variable
}

// AssigneeSelect assigns to an array element at a field-typed index.
type AssigneeSelect struct {
	Assignee TypedAssignee
	Index    FieldElementExpression
}

// AssigneeMember assigns to a named struct member.
type AssigneeMember struct {
	Assignee TypedAssignee
	Id       string
}

func (AssigneeVariable) isTypedAssignee() {}
func (AssigneeSelect) isTypedAssignee()   {}
func (AssigneeMember) isTypedAssignee()   {}

// Type implementation for the TypedAssignee interface.
func (a AssigneeVariable) Type() types.Type {
	return a.Variable.Type
}

// Type implementation for the TypedAssignee interface.  An array-element
// assignee is only ever constructed over an array-typed assignee.
func (a AssigneeSelect) Type() types.Type {
	array, ok := a.Assignee.Type().(types.ArrayType)
	if !ok {
		panic("an array element should only be defined over arrays")
	}
	//
	return array.Element
}

// Type implementation for the TypedAssignee interface.  A member assignee is
// only ever constructed over a struct-typed assignee declaring the member.
func (a AssigneeMember) Type() types.Type {
	strukt, ok := a.Assignee.Type().(types.StructType)
	if !ok {
		panic("a struct access should only be defined over structs")
	}
	//
	ty, ok := strukt.Member(a.Id)
	if !ok {
		panic(fmt.Sprintf("struct %s has no member %s", strukt, a.Id))
	}
	//
	return ty
}

func (a AssigneeVariable) String() string {
	return a.Variable.Id.String()
}

func (a AssigneeSelect) String() string {
	return fmt.Sprintf("%s[%s]", a.Assignee, a.Index)
}

func (a AssigneeMember) String() string {
	return fmt.Sprintf("%s.%s", a.Assignee, a.Id)
}
