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

// Package binfile implements a versioned JSON interchange format for untyped
// programs, so that parser front-ends running in other processes can hand
// their ASTs to this compiler core.  The format round-trips the whole
// program, including source positions.
package binfile

import (
	"github.com/consensys/go-zirc/pkg/util/source"
)

// FormatVersion identifies the interchange format emitted by this package.
const FormatVersion = 1

// jsonSpan carries the positions of a node.
type jsonSpan struct {
	Start source.Position `json:"start"`
	End   source.Position `json:"end"`
}

type jsonProgram struct {
	Version int                   `json:"version"`
	Modules map[string]jsonModule `json:"modules"`
	Main    string                `json:"main"`
}

type jsonModule struct {
	Symbols []jsonSymbolDeclaration `json:"symbols"`
}

type jsonSymbolDeclaration struct {
	jsonSpan
	Id string `json:"id"`
	// Kind is one of "struct", "function", "import" or "flat".
	Kind     string        `json:"kind"`
	Struct   *jsonStruct   `json:"struct,omitempty"`
	Function *jsonFunction `json:"function,omitempty"`
	Import   *jsonImport   `json:"import,omitempty"`
	Flat     string        `json:"flat,omitempty"`
}

type jsonStruct struct {
	jsonSpan
	Fields []jsonStructField `json:"fields"`
}

type jsonStructField struct {
	jsonSpan
	Id   string   `json:"id"`
	Type jsonType `json:"type"`
}

type jsonImport struct {
	jsonSpan
	Module string `json:"module"`
	Symbol string `json:"symbol"`
}

type jsonFunction struct {
	jsonSpan
	Arguments []jsonParameter `json:"arguments"`
	Inputs    []jsonType      `json:"inputs"`
	Outputs   []jsonType      `json:"outputs"`
	Body      []jsonStatement `json:"body"`
}

type jsonParameter struct {
	jsonSpan
	Id      string   `json:"id"`
	Type    jsonType `json:"type"`
	Private bool     `json:"private"`
}

type jsonType struct {
	jsonSpan
	// Kind is one of "field", "bool", "u8", "u16", "u32", "array" or "user".
	Kind    string    `json:"kind"`
	Element *jsonType `json:"element,omitempty"`
	Size    uint      `json:"size,omitempty"`
	Name    string    `json:"name,omitempty"`
}

type jsonStatement struct {
	jsonSpan
	// Kind is one of "return", "declaration", "definition", "assertion",
	// "for" or "multidef".
	Kind      string          `json:"kind"`
	Exprs     []jsonExpr      `json:"exprs,omitempty"`
	Variable  *jsonVariable   `json:"variable,omitempty"`
	Assignees []jsonAssignee  `json:"assignees,omitempty"`
	From      *jsonExpr       `json:"from,omitempty"`
	To        *jsonExpr       `json:"to,omitempty"`
	Body      []jsonStatement `json:"body,omitempty"`
}

type jsonVariable struct {
	jsonSpan
	Id   string   `json:"id"`
	Type jsonType `json:"type"`
}

type jsonAssignee struct {
	jsonSpan
	// Kind is one of "ident", "select" or "member".
	Kind     string        `json:"kind"`
	Value    string        `json:"value,omitempty"`
	Assignee *jsonAssignee `json:"assignee,omitempty"`
	Index    *jsonExpr     `json:"index,omitempty"`
}

type jsonExpr struct {
	jsonSpan
	// Kind discriminates the expression.  Binary operators carry their
	// operands in args; calls carry their name in value and arguments in
	// args; selects carry the array in args[0] and either an index
	// expression in index or range bounds in from/to.
	Kind    string          `json:"kind"`
	Value   string          `json:"value,omitempty"`
	Args    []jsonExpr      `json:"args,omitempty"`
	Index   *jsonExpr       `json:"index,omitempty"`
	Range   bool            `json:"range,omitempty"`
	From    *jsonExpr       `json:"from,omitempty"`
	To      *jsonExpr       `json:"to,omitempty"`
	Members []jsonNamedExpr `json:"members,omitempty"`
}

type jsonNamedExpr struct {
	Id    string   `json:"id"`
	Value jsonExpr `json:"value"`
}
