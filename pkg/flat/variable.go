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
package flat

import (
	"fmt"
)

// Variable identifies a single wire of the arithmetic circuit.  The
// distinguished wire ~one always carries the value 1; every other wire is
// identified by a non-negative index.  Variables are totally ordered, with
// ~one ordered before all indexed wires.
type Variable struct {
	// Internal ordinal, where 0 denotes ~one and i+1 denotes wire i.  This
	// encoding makes the zero value of Variable the one wire, and gives the
	// required total order for free.
	ordinal uint
}

// One returns the distinguished constant-1 wire.
func One() Variable {
	return Variable{0}
}

// NewVariable returns the wire with a given index.
func NewVariable(index uint) Variable {
	return Variable{index + 1}
}

// IsOne determines whether this is the distinguished constant-1 wire.
func (v Variable) IsOne() bool {
	return v.ordinal == 0
}

// Index returns the index of this wire, which panics on ~one as it carries
// no index.
func (v Variable) Index() uint {
	if v.IsOne() {
		panic("the ~one wire has no index")
	}
	//
	return v.ordinal - 1
}

// Cmp returns -1, 0 or 1 depending on whether this wire is ordered below,
// equal to, or above another in the wire total order.
func (v Variable) Cmp(o Variable) int {
	switch {
	case v.ordinal < o.ordinal:
		return -1
	case v.ordinal > o.ordinal:
		return 1
	default:
		return 0
	}
}

func (v Variable) String() string {
	if v.IsOne() {
		return "~one"
	}
	//
	return fmt.Sprintf("_%d", v.Index())
}
