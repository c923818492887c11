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

	"github.com/consensys/go-zirc/pkg/embed"
	"github.com/consensys/go-zirc/pkg/types"
)

// ModuleId identifies a module of the program.
type ModuleId = types.ModuleId

// TypedModules is the collection of all typed modules, keyed by module id.
type TypedModules map[ModuleId]TypedModule

// TypedProgram is a collection of typed modules, one of them being the main
// module.
type TypedProgram struct {
	Modules TypedModules
	Main    ModuleId
}

// MainFunction returns the function named main within the main module.  The
// checker guarantees exactly one exists, declared here; anything else is a
// programming error.
func (p TypedProgram) MainFunction() TypedFunction {
	module := p.Modules[p.Main]
	//
	for _, entry := range module.Functions {
		if entry.Key.Id == "main" {
			here, ok := entry.Symbol.(HereSymbol)
			if !ok {
				panic("main function must be declared in the main module")
			}
			//
			return here.Function
		}
	}
	//
	panic("no main function found")
}

// TypedModule is a collection of function symbols.  It is the role of the
// semantic checker to ensure there are no duplicates for a given key.
type TypedModule struct {
	Functions TypedFunctionSymbols
}

// TypedFunctionSymbols associates function keys with their symbols,
// preserving declaration order so that iteration is deterministic.
type TypedFunctionSymbols []SymbolEntry

// SymbolEntry pairs a function key with its symbol.
type SymbolEntry struct {
	Key    types.FunctionKey
	Symbol TypedFunctionSymbol
}

// Lookup returns the symbol bound to a given key, if any.
func (s TypedFunctionSymbols) Lookup(key types.FunctionKey) (TypedFunctionSymbol, bool) {
	for _, entry := range s {
		if entry.Key.Equal(key) {
			return entry.Symbol, true
		}
	}
	//
	return nil, false
}

// Insert binds a key to a symbol, replacing any existing binding for that
// key.
func (s *TypedFunctionSymbols) Insert(key types.FunctionKey, symbol TypedFunctionSymbol) {
	for i, entry := range *s {
		if entry.Key.Equal(key) {
			(*s)[i].Symbol = symbol
			return
		}
	}
	//
	*s = append(*s, SymbolEntry{key, symbol})
}

// TypedFunctionSymbol is what a function key resolves to: a function checked
// here, a reference into another module, or an embedded built-in gadget.
type TypedFunctionSymbol interface {
	// Signature returns the signature of this symbol, chasing references
	// through the given modules where necessary.
	Signature(modules TypedModules) types.Signature
	// isTypedFunctionSymbol is a sum-type marker.
	isTypedFunctionSymbol()
}

// HereSymbol is a function checked in the current module.
type HereSymbol struct {
	Function TypedFunction
}

// ThereSymbol is a reference to a function declared in another module.
type ThereSymbol struct {
	Key    types.FunctionKey
	Module ModuleId
}

// FlatSymbol is an embedded built-in gadget.
type FlatSymbol struct {
	Embed embed.FlatEmbed
}

func (HereSymbol) isTypedFunctionSymbol()  {}
func (ThereSymbol) isTypedFunctionSymbol() {}
func (FlatSymbol) isTypedFunctionSymbol()  {}

// Signature implementation for the TypedFunctionSymbol interface.
func (s HereSymbol) Signature(modules TypedModules) types.Signature {
	return s.Function.Signature
}

// Signature implementation for the TypedFunctionSymbol interface.
func (s ThereSymbol) Signature(modules TypedModules) types.Signature {
	module, ok := modules[s.Module]
	if !ok {
		panic(fmt.Sprintf("unknown module %s", s.Module))
	}
	//
	symbol, ok := module.Functions.Lookup(s.Key)
	if !ok {
		panic(fmt.Sprintf("unknown function %s in module %s", s.Key, s.Module))
	}
	//
	return symbol.Signature(modules)
}

// Signature implementation for the TypedFunctionSymbol interface.
func (s FlatSymbol) Signature(modules TypedModules) types.Signature {
	return s.Embed.Signature()
}

// TypedFunction is a function whose parameters, body and signature have all
// been resolved and checked.
type TypedFunction struct {
	Arguments  []Parameter
	Statements []TypedStatement
	Signature  types.Signature
}

func (f TypedFunction) String() string {
	var builder strings.Builder
	//
	args := make([]string, len(f.Arguments))
	//
	for i, a := range f.Arguments {
		args[i] = a.String()
	}
	//
	fmt.Fprintf(&builder, "(%s)", strings.Join(args, ", "))
	//
	switch len(f.Signature.Outputs) {
	case 0:
	case 1:
		fmt.Fprintf(&builder, " -> %s", f.Signature.Outputs[0])
	default:
		outs := make([]string, len(f.Signature.Outputs))
		//
		for i, t := range f.Signature.Outputs {
			outs[i] = t.String()
		}
		//
		fmt.Fprintf(&builder, " -> (%s)", strings.Join(outs, ", "))
	}
	//
	builder.WriteString(":\n")
	//
	for _, s := range f.Statements {
		fmt.Fprintf(&builder, "\t%s\n", s)
	}
	//
	return builder.String()
}
