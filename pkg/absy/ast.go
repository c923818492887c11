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

// Package absy defines the untyped abstract syntax tree produced by the
// parser and consumed (exactly once) by semantic analysis.  Every node is
// positioned via the generic Node wrapper.
package absy

import (
	"github.com/consensys/go-zirc/pkg/embed"
	"github.com/consensys/go-zirc/pkg/types"
)

// ModuleId identifies a module of the program.
type ModuleId = types.ModuleId

// Program is a collection of untyped modules, one of which is the main
// module from which checking proceeds.
type Program struct {
	Modules map[ModuleId]Module
	Main    ModuleId
}

// Module is an ordered collection of symbol declarations.
type Module struct {
	Symbols []SymbolDeclarationNode
}

// SymbolDeclaration binds a local name to a symbol within a module.
type SymbolDeclaration struct {
	Id     string
	Symbol Symbol
}

// SymbolDeclarationNode is a positioned symbol declaration.
type SymbolDeclarationNode = Node[SymbolDeclaration]

// Symbol is what a module-level name can be bound to: a struct type declared
// here, a function declared here, an import from another module, or an
// embedded built-in gadget.
type Symbol interface {
	// isSymbol is a sum-type marker.
	isSymbol()
}

// HereType declares a struct type in the current module.
type HereType struct {
	Definition StructDefinitionNode
}

// HereFunction declares a function in the current module.
type HereFunction struct {
	Function FunctionNode
}

// There imports a symbol from another module.
type There struct {
	Import SymbolImportNode
}

// Flat registers an embedded built-in gadget.
type Flat struct {
	Embed embed.FlatEmbed
}

func (HereType) isSymbol()     {}
func (HereFunction) isSymbol() {}
func (There) isSymbol()        {}
func (Flat) isSymbol()         {}

// SymbolImport names a symbol within another module.
type SymbolImport struct {
	ModuleId ModuleId
	SymbolId string
}

// SymbolImportNode is a positioned symbol import.
type SymbolImportNode = Node[SymbolImport]

// StructDefinition declares the fields of a struct type.
type StructDefinition struct {
	Fields []StructDefinitionFieldNode
}

// StructDefinitionNode is a positioned struct definition.
type StructDefinitionNode = Node[StructDefinition]

// StructDefinitionField declares a single struct field.
type StructDefinitionField struct {
	Id   string
	Type UnresolvedTypeNode
}

// StructDefinitionFieldNode is a positioned struct field declaration.
type StructDefinitionFieldNode = Node[StructDefinitionField]

// Function declares a function: its parameters, body and (unresolved)
// signature.  The parser guarantees the parameter and signature input lists
// have equal length.
type Function struct {
	Arguments  []ParameterNode
	Statements []StatementNode
	Signature  UnresolvedSignature
}

// FunctionNode is a positioned function declaration.
type FunctionNode = Node[Function]

// Parameter declares a single function parameter, which is public unless
// declared private (i.e. a secret input).
type Parameter struct {
	Id      VariableNode
	Private bool
}

// ParameterNode is a positioned parameter.
type ParameterNode = Node[Parameter]

// Variable pairs a name with its declared (unresolved) type.
type Variable struct {
	Id   string
	Type UnresolvedTypeNode
}

// VariableNode is a positioned variable.
type VariableNode = Node[Variable]
