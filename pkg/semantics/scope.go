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
package semantics

import (
	"github.com/consensys/go-zirc/pkg/typed"
)

// scopedVariable tags a variable with the scope level at which it was
// declared, so that all variables of a scope can be reclaimed on exit.
// Identifiers resolve by name alone, regardless of level: an inner scope
// cannot re-declare a name still visible from an outer one.
type scopedVariable struct {
	variable typed.Variable
	level    uint
}

func (c *Checker) enterScope() {
	c.level++
}

func (c *Checker) exitScope() {
	for name, v := range c.scope {
		if v.level >= c.level {
			delete(c.scope, name)
		}
	}
	//
	c.level--
}

// insertIntoScope declares a variable at the current level, which fails when
// the name is already visible.
func (c *Checker) insertIntoScope(v typed.Variable) bool {
	name := v.Id.String()
	//
	if _, ok := c.scope[name]; ok {
		return false
	}
	//
	c.scope[name] = scopedVariable{v, c.level}
	//
	return true
}

// getScope resolves a name against the visible scopes.
func (c *Checker) getScope(name string) (typed.Variable, bool) {
	v, ok := c.scope[name]
	//
	return v.variable, ok
}
