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

// CoreIdentifier is the core of a variable identifier: either a name from
// the original source, an identifier introduced internally by a compiler
// pass, or an identifier introduced when inlining a function call.
type CoreIdentifier interface {
	fmt.Stringer
	// isCoreIdentifier is a sum-type marker.
	isCoreIdentifier()
}

// SourceIdentifier is a name written in the original source.
type SourceIdentifier struct {
	Name string
}

// InternalIdentifier is an identifier introduced by a compiler pass, made
// unique by a tag and sequence number.
type InternalIdentifier struct {
	Tag string
	Seq uint
}

// CallIdentifier is an identifier introduced when inlining a call to the
// function with a given key hash.
type CallIdentifier struct {
	Hash types.FunctionKeyHash
	Seq  uint
}

func (SourceIdentifier) isCoreIdentifier()   {}
func (InternalIdentifier) isCoreIdentifier() {}
func (CallIdentifier) isCoreIdentifier()     {}

func (c SourceIdentifier) String() string {
	return c.Name
}

func (c InternalIdentifier) String() string {
	return fmt.Sprintf("#INTERNAL#_%s_%d", c.Tag, c.Seq)
}

func (c CallIdentifier) String() string {
	return fmt.Sprintf("%x_%d", uint64(c.Hash), c.Seq)
}

// CallFrame records one level of inline-call provenance.
type CallFrame struct {
	Module types.ModuleId
	Hash   types.FunctionKeyHash
	Count  uint
}

// Identifier identifies a variable.  The version supports later SSA
// transformation, and the call stack records inline-call provenance; both
// are zero-valued as identifiers leave semantic analysis.
type Identifier struct {
	// Core of this identifier.
	Core CoreIdentifier
	// Version of the variable, assigned during SSA transformation.
	Version uint
	// Call stack of the variable, populated during inlining.
	Stack []CallFrame
}

// NewIdentifier constructs the identifier of a given source-level name.
func NewIdentifier(name string) Identifier {
	return Identifier{SourceIdentifier{name}, 0, nil}
}

// Equal determines whether two identifiers denote the same variable.
func (i Identifier) Equal(o Identifier) bool {
	if i.Core != o.Core || i.Version != o.Version || len(i.Stack) != len(o.Stack) {
		return false
	}
	//
	for k, frame := range i.Stack {
		if frame != o.Stack[k] {
			return false
		}
	}
	//
	return true
}

func (i Identifier) String() string {
	if len(i.Stack) == 0 && i.Version == 0 {
		return i.Core.String()
	}
	//
	frames := make([]string, len(i.Stack))
	//
	for k, frame := range i.Stack {
		frames[k] = fmt.Sprintf("%s_%x_%d", frame.Module, uint64(frame.Hash), frame.Count)
	}
	//
	return fmt.Sprintf("%s_%s_%d", strings.Join(frames, "_"), i.Core, i.Version)
}
