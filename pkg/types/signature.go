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
package types

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Signature gives the input and output types of a function.
type Signature struct {
	Inputs  []Type
	Outputs []Type
}

// NewSignature constructs a signature from given input and output types.
func NewSignature(inputs []Type, outputs []Type) Signature {
	return Signature{inputs, outputs}
}

// Equal determines whether two signatures agree elementwise on their input
// and output types.
func (s Signature) Equal(o Signature) bool {
	return typesEqual(s.Inputs, o.Inputs) && typesEqual(s.Outputs, o.Outputs)
}

func (s Signature) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, t := range s.Inputs {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(t.String())
	}
	//
	builder.WriteString(")")
	//
	switch len(s.Outputs) {
	case 0:
	case 1:
		fmt.Fprintf(&builder, " -> %s", s.Outputs[0])
	default:
		builder.WriteString(" -> (")
		//
		for i, t := range s.Outputs {
			if i != 0 {
				builder.WriteString(", ")
			}
			//
			builder.WriteString(t.String())
		}
		//
		builder.WriteString(")")
	}
	//
	return builder.String()
}

// FunctionKey identifies a function for overload-aware lookup: two functions
// with the same name but different signatures are distinct symbols.
type FunctionKey struct {
	Id        string
	Signature Signature
}

// NewFunctionKey constructs a function key from a name and signature.
func NewFunctionKey(id string, signature Signature) FunctionKey {
	return FunctionKey{id, signature}
}

// WithId returns this key renamed to a given identifier, leaving the
// signature untouched.  This arises when importing a function under a new
// local name.
func (k FunctionKey) WithId(id string) FunctionKey {
	return FunctionKey{id, k.Signature}
}

// Equal determines whether two function keys agree on both name and
// signature.
func (k FunctionKey) Equal(o FunctionKey) bool {
	return k.Id == o.Id && k.Signature.Equal(o.Signature)
}

func (k FunctionKey) String() string {
	return fmt.Sprintf("%s%s", k.Id, k.Signature)
}

// FunctionKeyHash is a stable hash of a function key, used to record call
// provenance in identifiers without dragging the full key around.
type FunctionKeyHash uint64

// Hash returns a stable hash of this key, derived from its printed form so
// that it is independent of in-memory representation.
func (k FunctionKey) Hash() FunctionKeyHash {
	hasher := fnv.New64a()
	// Write never fails on fnv.
	hasher.Write([]byte(k.String()))
	//
	return FunctionKeyHash(hasher.Sum64())
}

func typesEqual(left []Type, right []Type) bool {
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
