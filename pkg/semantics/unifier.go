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
	"github.com/consensys/go-zirc/pkg/types"
)

// symbolKind records what a module-level name is bound to: either a type, or
// a set of function signatures.  Never both.
type symbolKind struct {
	// Indicates a type binding, in which case signatures is empty.
	isType bool
	// The signatures admitted under this name so far.
	signatures []types.Signature
}

// SymbolUnifier tracks all names declared within one module, enforcing that
// a name binds at most one type, and that functions sharing a name differ in
// signature.  Unifiers are module-scoped and dropped at end-of-module.
type SymbolUnifier struct {
	symbols map[string]*symbolKind
}

// NewSymbolUnifier constructs an empty unifier.
func NewSymbolUnifier() *SymbolUnifier {
	return &SymbolUnifier{make(map[string]*symbolKind)}
}

// InsertType admits a type binding for a given name, which fails if anything
// is already called that.
func (u *SymbolUnifier) InsertType(id string) bool {
	if _, ok := u.symbols[id]; ok {
		return false
	}
	//
	u.symbols[id] = &symbolKind{isType: true}
	//
	return true
}

// InsertFunction admits a function binding for a given name and signature,
// which fails if the name binds a type, or already admits the same
// signature.
func (u *SymbolUnifier) InsertFunction(id string, signature types.Signature) bool {
	kind, ok := u.symbols[id]
	//
	if !ok {
		u.symbols[id] = &symbolKind{signatures: []types.Signature{signature}}
		return true
	}
	//
	if kind.isType {
		return false
	}
	//
	for _, s := range kind.signatures {
		if s.Equal(signature) {
			return false
		}
	}
	//
	kind.signatures = append(kind.signatures, signature)
	//
	return true
}
