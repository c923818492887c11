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

// Package semantics implements the semantic analyser: it resolves user
// types, enforces the typing rules, selects function overloads, validates
// control flow and scoping, and lowers the untyped AST into the typed AST.
// Errors are accumulated per module and per function and reported together;
// within a single expression the first error short-circuits.
package semantics

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-zirc/pkg/absy"
	"github.com/consensys/go-zirc/pkg/typed"
	"github.com/consensys/go-zirc/pkg/types"
)

// Checker checks the semantics of a program, keeping track of the functions
// and variables in scope.  A fresh checker is spun up for every module so
// that names do not leak across module boundaries.
type Checker struct {
	// Variables currently in scope, keyed by name.
	scope map[string]scopedVariable
	// Functions visible in the module being checked (declared or imported).
	functions []types.FunctionKey
	// Current scope nesting level.
	level uint
}

// NewChecker constructs a checker with empty scope.
func NewChecker() *Checker {
	return &Checker{
		scope: make(map[string]scopedVariable),
	}
}

// Check checks a whole program, producing its typed form or the accumulated
// errors.  The untyped program is consumed in the process.
func Check(program absy.Program) (typed.TypedProgram, []Error) {
	return NewChecker().checkProgram(program)
}

func (c *Checker) checkProgram(program absy.Program) (typed.TypedProgram, []Error) {
	state := NewState(program.Modules)
	// Recursively type-check modules starting with main.
	if errors := c.checkModule(program.Main, state); len(errors) > 0 {
		return typed.TypedProgram{}, errors
	}
	// The main module must declare exactly one main function.
	if err := checkSingleMain(state.typedModules[program.Main]); err != nil {
		return typed.TypedProgram{}, []Error{err.InModule(program.Main)}
	}
	//
	return typed.TypedProgram{
		Main:    program.Main,
		Modules: state.typedModules,
	}, nil
}

// checkModule checks a module, driven lazily: a module no longer in the
// pending pool has been checked (or is being checked) already, and the call
// is a no-op.  The module is removed from the pool before its declarations
// are visited, which breaks import cycles.
func (c *Checker) checkModule(moduleId types.ModuleId, state *State) []Error {
	var (
		errors  []Error
		checked typed.TypedFunctionSymbols
	)
	//
	module, ok := state.modules[moduleId]
	if !ok {
		return nil
	}
	//
	delete(state.modules, moduleId)
	//
	log.Debugf("checking module %s", moduleId)
	// Create the type environment for this module up front.
	state.typesOf(moduleId)
	// Track introduced symbols to avoid collisions between types and
	// functions.
	unifier := NewSymbolUnifier()
	// Go through symbol declarations in source order.
	for _, declaration := range module.Symbols {
		errs := c.checkSymbolDeclaration(declaration, moduleId, state, &checked, unifier)
		errors = append(errors, errs...)
	}
	//
	if len(errors) > 0 {
		return errors
	}
	// There should be no checked module at this key yet; otherwise we have a
	// collision, or checked something twice.
	if _, ok := state.typedModules[moduleId]; ok {
		panic(fmt.Sprintf("module %s checked twice", moduleId))
	}
	//
	state.typedModules[moduleId] = typed.TypedModule{Functions: checked}
	//
	return nil
}

func (c *Checker) checkSymbolDeclaration(node absy.SymbolDeclarationNode, moduleId types.ModuleId,
	state *State, functions *typed.TypedFunctionSymbols, unifier *SymbolUnifier) []Error {
	var (
		errors      []Error
		start, end  = node.Pos()
		declaration = node.Value
	)
	//
	switch symbol := declaration.Symbol.(type) {
	case absy.HereType:
		ty, errs := c.checkStructTypeDeclaration(declaration.Id, symbol.Definition, moduleId, state.types)
		if len(errs) > 0 {
			return attribute(errs, moduleId)
		}
		//
		if !unifier.InsertType(declaration.Id) {
			errors = append(errors, NewErrorInner(start, end,
				"%s conflicts with another symbol", declaration.Id).InModule(moduleId))
		}
		//
		state.typesOf(moduleId)[declaration.Id] = ty
	case absy.HereFunction:
		function, errs := c.checkFunction(symbol.Function, moduleId, state.types)
		if len(errs) > 0 {
			return attribute(errs, moduleId)
		}
		//
		if !unifier.InsertFunction(declaration.Id, function.Signature) {
			errors = append(errors, NewErrorInner(start, end,
				"%s conflicts with another symbol", declaration.Id).InModule(moduleId))
		}
		//
		key := types.NewFunctionKey(declaration.Id, function.Signature)
		c.functions = append(c.functions, key)
		functions.Insert(key, typed.HereSymbol{Function: function})
	case absy.There:
		errs := c.checkSymbolImport(node, symbol.Import, moduleId, state, functions, unifier)
		errors = append(errors, errs...)
	case absy.Flat:
		signature := symbol.Embed.Signature()
		//
		if !unifier.InsertFunction(declaration.Id, signature) {
			errors = append(errors, NewErrorInner(start, end,
				"%s conflicts with another symbol", declaration.Id).InModule(moduleId))
		}
		//
		key := types.NewFunctionKey(declaration.Id, signature)
		c.functions = append(c.functions, key)
		functions.Insert(key, typed.FlatSymbol{Embed: symbol.Embed})
	default:
		panic("unknown symbol declaration")
	}
	//
	return errors
}

// checkSymbolImport resolves an imported name against the (recursively
// checked) source module.  A name resolving to a type is imported under a
// renamed location; a name resolving to functions imports every overload.
func (c *Checker) checkSymbolImport(node absy.SymbolDeclarationNode, importNode absy.SymbolImportNode,
	moduleId types.ModuleId, state *State, functions *typed.TypedFunctionSymbols,
	unifier *SymbolUnifier) []Error {
	var (
		errors      []Error
		start, end  = importNode.Pos()
		imported    = importNode.Value
		declaration = node.Value
	)
	// Check the module we are importing from, unless done already.
	if errs := NewChecker().checkModule(imported.ModuleId, state); len(errs) > 0 {
		return errs
	}
	// Find function candidates in the checked module.
	var candidates []types.FunctionKey
	//
	for _, entry := range state.typedModules[imported.ModuleId].Functions {
		if entry.Key.Id == imported.SymbolId {
			signature := entry.Symbol.Signature(state.typedModules)
			candidates = append(candidates, types.NewFunctionKey(imported.SymbolId, signature))
		}
	}
	// Find a type candidate.
	typeCandidate, hasType := state.typesOf(imported.ModuleId)[imported.SymbolId]
	//
	switch {
	case len(candidates) == 0 && hasType:
		strukt, ok := typeCandidate.(types.StructType)
		if !ok {
			panic("user-declared types are always structs")
		}
		// Rename the type to the declared symbol.
		renamed := types.NewStructType(moduleId, declaration.Id, strukt.Members)
		// We imported a type, so the symbol it binds must not already exist.
		if !unifier.InsertType(declaration.Id) {
			errors = append(errors, NewErrorInner(start, end,
				"%s conflicts with another symbol", declaration.Id).InModule(moduleId))
		}
		//
		state.typesOf(moduleId)[declaration.Id] = renamed
	case len(candidates) == 0:
		errors = append(errors, NewErrorInner(start, end,
			"Could not find symbol %s in module %s", imported.SymbolId,
			imported.ModuleId).InModule(moduleId))
	case hasType:
		panic("collision in module we're importing from should have been caught when checking it")
	default:
		for _, candidate := range candidates {
			if !unifier.InsertFunction(declaration.Id, candidate.Signature) {
				errors = append(errors, NewErrorInner(start, end,
					"%s conflicts with another symbol", declaration.Id).InModule(moduleId))
			}
			//
			local := candidate.WithId(declaration.Id)
			c.functions = append(c.functions, local)
			functions.Insert(local, typed.ThereSymbol{Key: candidate, Module: imported.ModuleId})
		}
	}
	//
	return errors
}

func (c *Checker) checkStructTypeDeclaration(id string, node absy.StructDefinitionNode,
	moduleId types.ModuleId, typeMap TypeMap) (types.Type, []ErrorInner) {
	var (
		errors     []ErrorInner
		members    []types.StructMember
		seen       = make(map[string]bool)
		start, end = node.Pos()
	)
	//
	for _, field := range node.Value.Fields {
		memberId := field.Value.Id
		//
		ty, err := c.checkType(field.Value.Type, moduleId, typeMap)
		if err != nil {
			errors = append(errors, *err)
			continue
		}
		//
		if seen[memberId] {
			errors = append(errors, NewErrorInner(start, end,
				"Duplicate key %s in struct definition", memberId))
			continue
		}
		//
		seen[memberId] = true
		members = append(members, types.StructMember{Id: memberId, Type: ty})
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return types.NewStructType(moduleId, id, members), nil
}

// checkSingleMain enforces that exactly one function named main exists in
// the given (typed) module.
func checkSingleMain(module typed.TypedModule) *ErrorInner {
	count := 0
	//
	for _, entry := range module.Functions {
		if entry.Key.Id == "main" {
			count++
		}
	}
	//
	switch count {
	case 1:
		return nil
	case 0:
		err := NewUnpositionedError("No main function found")
		return &err
	default:
		err := NewUnpositionedError("Only one main function allowed, found %d", count)
		return &err
	}
}

// findFunction resolves a query against the functions visible in the module
// being checked.
func (c *Checker) findFunction(query FunctionQuery) (types.FunctionKey, bool) {
	found := query.MatchAll(c.functions)
	//
	if found.HasValue() {
		return found.Unwrap(), true
	}
	//
	return types.FunctionKey{}, false
}
