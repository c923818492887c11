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
package absy

import (
	"fmt"

	"github.com/consensys/go-zirc/pkg/types"
)

// UnresolvedType is a type as written in the source, before user-defined
// names have been resolved against the enclosing module's type environment.
type UnresolvedType interface {
	fmt.Stringer
	// isUnresolvedType is a sum-type marker.
	isUnresolvedType()
}

// UnresolvedTypeNode is a positioned unresolved type.
type UnresolvedTypeNode = Node[UnresolvedType]

// FieldElementType denotes the field element type.
type FieldElementType struct{}

// BooleanType denotes the boolean type.
type BooleanType struct{}

// UintType denotes an unsigned integer type of a given bitwidth.
type UintType struct {
	Bitwidth types.UBitwidth
}

// ArrayUnresolvedType denotes a statically sized array over some (yet
// unresolved) element type.
type ArrayUnresolvedType struct {
	Element UnresolvedTypeNode
	Size    uint
}

// UserType denotes a reference to a user-declared type by name, resolved
// during semantic analysis.
type UserType struct {
	Id string
}

// UnresolvedSignature gives the declared input and output types of a
// function, before resolution.
type UnresolvedSignature struct {
	Inputs  []UnresolvedTypeNode
	Outputs []UnresolvedTypeNode
}

func (FieldElementType) isUnresolvedType()    {}
func (BooleanType) isUnresolvedType()         {}
func (UintType) isUnresolvedType()            {}
func (ArrayUnresolvedType) isUnresolvedType() {}
func (UserType) isUnresolvedType()            {}

func (FieldElementType) String() string {
	return "field"
}

func (BooleanType) String() string {
	return "bool"
}

func (t UintType) String() string {
	return fmt.Sprintf("u%d", t.Bitwidth)
}

func (t ArrayUnresolvedType) String() string {
	return fmt.Sprintf("%s[%d]", t.Element.Value, t.Size)
}

func (t UserType) String() string {
	return t.Id
}
