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
)

// ModuleId identifies a module of the program, typically a path or uri.
type ModuleId = string

// UBitwidth gives the bitwidth of an unsigned integer type, which is one of
// 8, 16 or 32.
type UBitwidth uint

// Supported unsigned integer bitwidths.
const (
	B8  UBitwidth = 8
	B16 UBitwidth = 16
	B32 UBitwidth = 32
)

// Type represents a resolved type of the language.  The set of types is
// closed: a type is a field element, a boolean, an unsigned integer of fixed
// bitwidth, a statically sized array or a (nominal) struct.  Equality is
// structural except for structs, which compare by their declared location.
type Type interface {
	fmt.Stringer
	// Equal determines whether two types are considered identical.
	Equal(Type) bool
	// isType is a sum-type marker.
	isType()
}

// FieldElementType is the type of prime-field elements.
type FieldElementType struct{}

// BooleanType is the type of booleans.
type BooleanType struct{}

// UintType is the type of unsigned integers of a given bitwidth.
type UintType struct {
	Bitwidth UBitwidth
}

// ArrayType is the type of statically sized arrays over some element type.
type ArrayType struct {
	Element Type
	Size    uint
}

// StructMember pairs a declared member name with its type.
type StructMember struct {
	Id   string
	Type Type
}

// StructLocation identifies a struct type by the module in which it is
// declared (or into which it is imported) together with its local name
// there.
type StructLocation struct {
	Module ModuleId
	Name   string
}

// StructType is a nominal struct type, identified by its location and
// carrying its declared members in order.
type StructType struct {
	Location StructLocation
	Members  []StructMember
}

// NewUintType returns the unsigned integer type of a given bitwidth.
func NewUintType(bitwidth UBitwidth) UintType {
	return UintType{bitwidth}
}

// NewArrayType returns the array type over a given element type and size.
func NewArrayType(element Type, size uint) ArrayType {
	return ArrayType{element, size}
}

// NewStructType constructs a struct type declared at a given location with
// the given members.
func NewStructType(module ModuleId, name string, members []StructMember) StructType {
	return StructType{StructLocation{module, name}, members}
}

func (FieldElementType) isType() {}
func (BooleanType) isType()      {}
func (UintType) isType()         {}
func (ArrayType) isType()        {}
func (StructType) isType()       {}

// Equal implementation for the Type interface.
func (FieldElementType) Equal(o Type) bool {
	_, ok := o.(FieldElementType)
	return ok
}

// Equal implementation for the Type interface.
func (BooleanType) Equal(o Type) bool {
	_, ok := o.(BooleanType)
	return ok
}

// Equal implementation for the Type interface.
func (t UintType) Equal(o Type) bool {
	u, ok := o.(UintType)
	return ok && t.Bitwidth == u.Bitwidth
}

// Equal implementation for the Type interface.
func (t ArrayType) Equal(o Type) bool {
	a, ok := o.(ArrayType)
	return ok && t.Size == a.Size && t.Element.Equal(a.Element)
}

// Equal implementation for the Type interface.  Structs are nominal: two
// struct types are identical exactly when their locations match.  By the
// symbol unification invariant, matching locations imply matching members.
func (t StructType) Equal(o Type) bool {
	s, ok := o.(StructType)
	return ok && t.Location == s.Location
}

// Member returns the type of a given member, if the struct declares it.
func (t StructType) Member(id string) (Type, bool) {
	for _, m := range t.Members {
		if m.Id == id {
			return m.Type, true
		}
	}
	//
	return nil, false
}

// Len returns the number of declared members.
func (t StructType) Len() uint {
	return uint(len(t.Members))
}

func (FieldElementType) String() string {
	return "field"
}

func (BooleanType) String() string {
	return "bool"
}

func (t UintType) String() string {
	return fmt.Sprintf("u%d", t.Bitwidth)
}

func (t ArrayType) String() string {
	return fmt.Sprintf("%s[%d]", t.Element, t.Size)
}

func (t StructType) String() string {
	return t.Location.Name
}
