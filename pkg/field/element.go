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
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element represents an element of the BN254 scalar field, which is the prime
// field over which all circuits are expressed.  Elements are value types:
// every operation returns a fresh element and leaves its operands untouched.
type Element struct {
	fr.Element
}

// Zero returns the additive identity of the field.
func Zero() Element {
	var elem fr.Element
	//
	return Element{elem}
}

// One returns the multiplicative identity of the field.
func One() Element {
	return Element{fr.One()}
}

// FromUint64 constructs the field element corresponding to a given unsigned
// value.
func FromUint64(val uint64) Element {
	return Element{fr.NewElement(val)}
}

// FromInt64 constructs the field element corresponding to a given signed
// value, with negative values canonicalised modulo the field order.
func FromInt64(val int64) Element {
	var bi big.Int
	//
	bi.SetInt64(val)
	//
	return FromBig(&bi)
}

// FromBig constructs the field element corresponding to a given (arbitrarily
// large, possibly negative) integer, reduced modulo the field order.
func FromBig(val *big.Int) Element {
	var (
		reduced big.Int
		elem    fr.Element
	)
	// Mod always yields a non-negative result.
	reduced.Mod(val, fr.Modulus())
	elem.SetBigInt(&reduced)
	//
	return Element{elem}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var elem fr.Element
	//
	elem.Add(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Neg -x
func (x Element) Neg() Element {
	var elem fr.Element
	//
	elem.Neg(&x.Element)
	//
	return Element{elem}
}

// Inverse x⁻¹, along with a flag indicating success.  The inverse of zero
// does not exist, in which case the flag is false.
func (x Element) Inverse() (Element, bool) {
	var elem fr.Element
	//
	if x.IsZero() {
		return Element{elem}, false
	}
	//
	elem.Inverse(&x.Element)
	//
	return Element{elem}, true
}

// Div x / y, along with a flag indicating success.  Division by zero fails.
func (x Element) Div(y Element) (Element, bool) {
	inv, ok := y.Inverse()
	if !ok {
		return Element{}, false
	}
	//
	return x.Mul(inv), true
}

// Equal determines whether two field elements represent the same value.
func (x Element) Equal(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y, comparing canonical
// representatives.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// ToUint attempts to convert this element into a machine integer, which only
// succeeds when its canonical representative fits.
func (x Element) ToUint() (uint, bool) {
	if !x.IsUint64() {
		return 0, false
	}
	//
	return uint(x.Uint64()), true
}

// ToBig returns the canonical representative of this element as an integer.
func (x Element) ToBig() *big.Int {
	var bi big.Int
	//
	x.BigInt(&bi)
	//
	return &bi
}

// Modulus returns the order of the field.
func Modulus() *big.Int {
	return fr.Modulus()
}

// MinValue returns the smallest representable constant, i.e. zero.
func MinValue() *big.Int {
	return big.NewInt(0)
}

// MaxValue returns the largest representable constant, i.e. the field order
// minus one.
func MaxValue() *big.Int {
	var bi big.Int
	//
	bi.Sub(fr.Modulus(), big.NewInt(1))
	//
	return &bi
}

// InRange determines whether a given integer lies within the representable
// range [MinValue, MaxValue] of the field.
func InRange(val *big.Int) bool {
	return val.Sign() >= 0 && val.Cmp(fr.Modulus()) < 0
}
