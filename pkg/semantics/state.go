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
	"github.com/consensys/go-zirc/pkg/absy"
	"github.com/consensys/go-zirc/pkg/typed"
	"github.com/consensys/go-zirc/pkg/types"
)

// TypeMap records, per module, the user-declared (and imported) types under
// their local names.  It exists only during semantic analysis: later phases
// rely on resolved types alone.
type TypeMap map[types.ModuleId]map[string]types.Type

// State is the global state of the program during semantic checking.
// Modules are consumed destructively from the pending pool as the dependency
// tree is explored, which both prevents re-checking and breaks import
// cycles.
type State struct {
	// The modules yet to be checked.
	modules map[types.ModuleId]absy.Module
	// The already checked modules, returned at the end.
	typedModules typed.TypedModules
	// The user-defined types per module.
	types TypeMap
}

// NewState initialises checking state over the modules of a program.
func NewState(modules map[types.ModuleId]absy.Module) *State {
	return &State{
		modules:      modules,
		typedModules: make(typed.TypedModules),
		types:        make(TypeMap),
	}
}

// typesOf returns the type environment of a given module, creating it on
// first use.
func (s *State) typesOf(module types.ModuleId) map[string]types.Type {
	env, ok := s.types[module]
	//
	if !ok {
		env = make(map[string]types.Type)
		s.types[module] = env
	}
	//
	return env
}
