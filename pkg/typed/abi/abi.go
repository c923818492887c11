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

// Package abi projects the input/output interface of a typed program's main
// function into a JSON-serialisable description, so that external tooling
// can encode witnesses and decode results without seeing the program itself.
package abi

import (
	"github.com/consensys/go-zirc/pkg/typed"
	"github.com/consensys/go-zirc/pkg/types"
)

// Input describes a single parameter of the main function.  Parameters are
// public unless declared private.
type Input struct {
	Name   string
	Public bool
	Type   types.Type
}

// Abi describes the interface of the main function: its named inputs and
// its output types.
type Abi struct {
	Inputs  []Input
	Outputs []types.Type
}

// FromProgram derives the ABI of a typed program from its main function.
func FromProgram(p typed.TypedProgram) Abi {
	main := p.MainFunction()
	//
	inputs := make([]Input, len(main.Arguments))
	//
	for i, arg := range main.Arguments {
		inputs[i] = Input{
			Name:   arg.Id.Id.String(),
			Public: !arg.Private,
			Type:   arg.Id.Type,
		}
	}
	//
	return Abi{inputs, main.Signature.Outputs}
}

// Signature recovers the function signature described by this ABI.
func (a Abi) Signature() types.Signature {
	inputs := make([]types.Type, len(a.Inputs))
	//
	for i, input := range a.Inputs {
		inputs[i] = input.Type
	}
	//
	return types.NewSignature(inputs, a.Outputs)
}
