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
package embed

import (
	"github.com/consensys/go-zirc/pkg/types"
)

// FlatEmbed identifies a built-in gadget: a pre-compiled function which is
// inserted directly into the function table with a fixed signature, and whose
// body is opaque to semantic analysis.
type FlatEmbed uint

// The available built-in gadgets.
const (
	// Sha256Round applies one round of the SHA256 compression function to a
	// 512-bit message block and a 256-bit intermediate hash.
	Sha256Round FlatEmbed = iota
	// Unpack decomposes a field element into its 254 constituent bits.
	Unpack
)

// Signature returns the fixed signature of this gadget.
func (e FlatEmbed) Signature() types.Signature {
	switch e {
	case Sha256Round:
		block := types.NewArrayType(types.BooleanType{}, 512)
		state := types.NewArrayType(types.BooleanType{}, 256)
		//
		return types.NewSignature([]types.Type{block, state}, []types.Type{state})
	case Unpack:
		bits := types.NewArrayType(types.BooleanType{}, 254)
		//
		return types.NewSignature([]types.Type{types.FieldElementType{}}, []types.Type{bits})
	default:
		panic("unknown flat embed")
	}
}

// Id returns the name under which this gadget is conventionally declared.
func (e FlatEmbed) Id() string {
	switch e {
	case Sha256Round:
		return "sha256round"
	case Unpack:
		return "unpack"
	default:
		panic("unknown flat embed")
	}
}

// Key returns the function key of this gadget under its conventional name.
func (e FlatEmbed) Key() types.FunctionKey {
	return types.NewFunctionKey(e.Id(), e.Signature())
}

func (e FlatEmbed) String() string {
	return e.Id()
}
