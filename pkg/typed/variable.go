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

	"github.com/consensys/go-zirc/pkg/types"
)

// Variable pairs an identifier with its resolved type.
type Variable struct {
	Id   Identifier
	Type types.Type
}

// NewVariable constructs a variable from an identifier and type.
func NewVariable(id Identifier, ty types.Type) Variable {
	return Variable{id, ty}
}

// FieldVariable constructs a field-typed variable with a given source name.
func FieldVariable(name string) Variable {
	return Variable{NewIdentifier(name), types.FieldElementType{}}
}

// BooleanVariable constructs a boolean-typed variable with a given source
// name.
func BooleanVariable(name string) Variable {
	return Variable{NewIdentifier(name), types.BooleanType{}}
}

func (v Variable) String() string {
	return fmt.Sprintf("%s %s", v.Type, v.Id)
}

// Parameter is a function parameter, which is either private (a secret
// input) or public.
type Parameter struct {
	Id      Variable
	Private bool
}

func (p Parameter) String() string {
	visibility := ""
	if p.Private {
		visibility = "private "
	}
	//
	return fmt.Sprintf("%s%s", visibility, p.Id)
}
