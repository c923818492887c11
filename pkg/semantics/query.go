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
	"strings"

	"github.com/consensys/go-zirc/pkg/types"
	"github.com/consensys/go-zirc/pkg/util"
)

// FunctionQuery describes a function being looked up: its name, the types of
// the arguments at the call site, and whatever is known about its output
// types.  Output hints are optional since single-return calls infer their
// type from the found function.  Matching is exact: no implicit conversions
// are applied.
type FunctionQuery struct {
	Id      string
	Inputs  []types.Type
	Outputs []util.Option[types.Type]
}

// NewFunctionQuery constructs a query from a name, input types and output
// hints.
func NewFunctionQuery(id string, inputs []types.Type, outputs []util.Option[types.Type]) FunctionQuery {
	return FunctionQuery{id, inputs, outputs}
}

// Match determines whether a given function key satisfies this query: the
// names agree, the input types agree elementwise, the output arities agree,
// and every known output hint agrees with the corresponding output.
func (q FunctionQuery) Match(key types.FunctionKey) bool {
	if q.Id != key.Id || len(q.Outputs) != len(key.Signature.Outputs) {
		return false
	}
	//
	if len(q.Inputs) != len(key.Signature.Inputs) {
		return false
	}
	//
	for i, t := range q.Inputs {
		if !t.Equal(key.Signature.Inputs[i]) {
			return false
		}
	}
	//
	for i, hint := range q.Outputs {
		if hint.HasValue() && !hint.Unwrap().Equal(key.Signature.Outputs[i]) {
			return false
		}
	}
	//
	return true
}

// MatchAll returns the first key among the given candidates satisfying this
// query, if any.
func (q FunctionQuery) MatchAll(keys []types.FunctionKey) util.Option[types.FunctionKey] {
	for _, key := range keys {
		if q.Match(key) {
			return util.Some(key)
		}
	}
	//
	return util.None[types.FunctionKey]()
}

// String renders this query as a signature, with unknown outputs rendered
// as underscores.
func (q FunctionQuery) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, t := range q.Inputs {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(t.String())
	}
	//
	builder.WriteString(")")
	//
	render := func(hint util.Option[types.Type]) string {
		if hint.HasValue() {
			return hint.Unwrap().String()
		}
		//
		return "_"
	}
	//
	switch len(q.Outputs) {
	case 0:
	case 1:
		builder.WriteString(" -> ")
		builder.WriteString(render(q.Outputs[0]))
	default:
		builder.WriteString(" -> (")
		//
		for i, hint := range q.Outputs {
			if i != 0 {
				builder.WriteString(", ")
			}
			//
			builder.WriteString(render(hint))
		}
		//
		builder.WriteString(")")
	}
	//
	return builder.String()
}
