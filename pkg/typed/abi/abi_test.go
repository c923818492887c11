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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/go-zirc/pkg/typed"
	"github.com/consensys/go-zirc/pkg/types"
)

func TestAbi_FromTypedProgram(t *testing.T) {
	main := typed.TypedFunction{
		Arguments: []typed.Parameter{
			{Id: typed.FieldVariable("a"), Private: true},
			{Id: typed.BooleanVariable("b"), Private: false},
		},
		Signature: types.NewSignature(
			[]types.Type{types.FieldElementType{}, types.BooleanType{}},
			[]types.Type{types.FieldElementType{}},
		),
	}
	//
	var functions typed.TypedFunctionSymbols
	functions.Insert(types.NewFunctionKey("main", main.Signature), typed.HereSymbol{Function: main})
	//
	program := typed.TypedProgram{
		Main:    "main",
		Modules: typed.TypedModules{"main": {Functions: functions}},
	}
	//
	abi := FromProgram(program)
	//
	expected := Abi{
		Inputs: []Input{
			{Name: "a", Public: false, Type: types.FieldElementType{}},
			{Name: "b", Public: true, Type: types.BooleanType{}},
		},
		Outputs: []types.Type{types.FieldElementType{}},
	}
	//
	assert.Equal(t, expected, abi)
	assert.True(t, abi.Signature().Equal(main.Signature))
	// The exact JSON shape is externally observable.
	data, err := json.Marshal(abi)
	assert.NoError(t, err)
	assert.Equal(t,
		`{"inputs":[{"name":"a","public":false,"type":"field"},{"name":"b","public":true,"type":"bool"}],"outputs":[{"type":"field"}]}`,
		string(data))
}

func TestAbi_RoundTripEmpty(t *testing.T) {
	abi := Abi{Inputs: []Input{}, Outputs: []types.Type{}}
	//
	data, err := json.Marshal(abi)
	assert.NoError(t, err)
	assert.Equal(t, `{"inputs":[],"outputs":[]}`, string(data))
	//
	var decoded Abi
	assert.NoError(t, json.Unmarshal(data, &decoded))
	//
	again, err := json.Marshal(decoded)
	assert.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestAbi_RoundTripComposites(t *testing.T) {
	strukt := types.NewStructType("", "Bar", []types.StructMember{
		{Id: "a", Type: types.NewArrayType(types.FieldElementType{}, 2)},
		{Id: "b", Type: types.NewUintType(types.B16)},
	})
	//
	abi := Abi{
		Inputs: []Input{
			{Name: "s", Public: true, Type: strukt},
			{Name: "m", Public: false, Type: types.NewArrayType(types.NewArrayType(types.BooleanType{}, 2), 3)},
		},
		Outputs: []types.Type{types.NewUintType(types.B8)},
	}
	//
	data, err := json.Marshal(abi)
	assert.NoError(t, err)
	//
	var decoded Abi
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, abi, decoded)
	// Re-emitting must yield the same bytes.
	again, err := json.Marshal(decoded)
	assert.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestAbi_ArrayEncoding(t *testing.T) {
	abi := Abi{
		Inputs:  []Input{{Name: "a", Public: true, Type: types.NewArrayType(types.FieldElementType{}, 2)}},
		Outputs: []types.Type{},
	}
	//
	data, err := json.Marshal(abi)
	assert.NoError(t, err)
	assert.Equal(t,
		`{"inputs":[{"name":"a","public":true,"type":"array","components":{"size":2,"type":"field"}}],"outputs":[]}`,
		string(data))
}

func TestAbi_RejectsUnknownType(t *testing.T) {
	var decoded Abi
	//
	err := json.Unmarshal([]byte(`{"inputs":[{"name":"a","public":true,"type":"i64"}],"outputs":[]}`), &decoded)
	assert.Error(t, err)
}
