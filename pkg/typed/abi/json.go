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
package abi

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/go-zirc/pkg/types"
)

// The JSON encoding of a type is a flattened tag plus (for composites) a
// recursive components object:
//
//	field         {"type": "field"}
//	bool          {"type": "bool"}
//	u8|u16|u32    {"type": "u8"}
//	field[2]      {"type": "array", "components": {"size": 2, "type": "field"}}
//	struct Foo    {"type": "struct", "components": {"name": "Foo", "members": [{"name": "x", "type": "field"}]}}
//
// This shape is externally observable and must round-trip byte-stably modulo
// whitespace.

type rawComponents struct {
	// Struct components.
	Name    string      `json:"name,omitempty"`
	Members []rawMember `json:"members,omitempty"`
	// Array components: the size plus the flattened element type.
	Size       uint           `json:"size,omitempty"`
	Type       string         `json:"type,omitempty"`
	Components *rawComponents `json:"components,omitempty"`
}

type rawMember struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Components *rawComponents `json:"components,omitempty"`
}

type rawType struct {
	Type       string         `json:"type"`
	Components *rawComponents `json:"components,omitempty"`
}

type rawInput struct {
	Name       string         `json:"name"`
	Public     bool           `json:"public"`
	Type       string         `json:"type"`
	Components *rawComponents `json:"components,omitempty"`
}

type rawAbi struct {
	Inputs  []rawInput `json:"inputs"`
	Outputs []rawType  `json:"outputs"`
}

// MarshalJSON implementation for the json.Marshaler interface.
func (a Abi) MarshalJSON() ([]byte, error) {
	raw := rawAbi{
		Inputs:  make([]rawInput, len(a.Inputs)),
		Outputs: make([]rawType, len(a.Outputs)),
	}
	//
	for i, input := range a.Inputs {
		tag, components := encodeType(input.Type)
		raw.Inputs[i] = rawInput{input.Name, input.Public, tag, components}
	}
	//
	for i, output := range a.Outputs {
		tag, components := encodeType(output)
		raw.Outputs[i] = rawType{tag, components}
	}
	//
	return json.Marshal(raw)
}

// UnmarshalJSON implementation for the json.Unmarshaler interface.
func (a *Abi) UnmarshalJSON(data []byte) error {
	var raw rawAbi
	//
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	//
	a.Inputs = make([]Input, len(raw.Inputs))
	a.Outputs = make([]types.Type, len(raw.Outputs))
	//
	for i, input := range raw.Inputs {
		ty, err := decodeType(input.Type, input.Components)
		if err != nil {
			return err
		}
		//
		a.Inputs[i] = Input{input.Name, input.Public, ty}
	}
	//
	for i, output := range raw.Outputs {
		ty, err := decodeType(output.Type, output.Components)
		if err != nil {
			return err
		}
		//
		a.Outputs[i] = ty
	}
	//
	return nil
}

func encodeType(ty types.Type) (string, *rawComponents) {
	switch ty := ty.(type) {
	case types.FieldElementType:
		return "field", nil
	case types.BooleanType:
		return "bool", nil
	case types.UintType:
		return fmt.Sprintf("u%d", ty.Bitwidth), nil
	case types.ArrayType:
		tag, components := encodeType(ty.Element)
		//
		return "array", &rawComponents{Size: ty.Size, Type: tag, Components: components}
	case types.StructType:
		members := make([]rawMember, len(ty.Members))
		//
		for i, m := range ty.Members {
			tag, components := encodeType(m.Type)
			members[i] = rawMember{m.Id, tag, components}
		}
		//
		return "struct", &rawComponents{Name: ty.Location.Name, Members: members}
	default:
		panic("unknown type")
	}
}

// decodeType rebuilds a type from its JSON encoding.  Observe that the
// encoding carries no module information for structs, so a decoded struct
// type carries its declared name with an empty module: ABI round-trips are
// byte-stable, but decoded struct types are not nominally identical to the
// originals.
func decodeType(tag string, components *rawComponents) (types.Type, error) {
	switch tag {
	case "field":
		return types.FieldElementType{}, nil
	case "bool":
		return types.BooleanType{}, nil
	case "u8":
		return types.NewUintType(types.B8), nil
	case "u16":
		return types.NewUintType(types.B16), nil
	case "u32":
		return types.NewUintType(types.B32), nil
	case "array":
		if components == nil {
			return nil, fmt.Errorf("array type is missing its components")
		}
		//
		element, err := decodeType(components.Type, components.Components)
		if err != nil {
			return nil, err
		}
		//
		return types.NewArrayType(element, components.Size), nil
	case "struct":
		if components == nil {
			return nil, fmt.Errorf("struct type is missing its components")
		}
		//
		members := make([]types.StructMember, len(components.Members))
		//
		for i, m := range components.Members {
			ty, err := decodeType(m.Type, m.Components)
			if err != nil {
				return nil, err
			}
			//
			members[i] = types.StructMember{Id: m.Name, Type: ty}
		}
		//
		return types.NewStructType("", components.Name, members), nil
	default:
		return nil, fmt.Errorf("unknown type %q", tag)
	}
}
