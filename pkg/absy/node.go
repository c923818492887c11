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

	"github.com/consensys/go-zirc/pkg/util/source"
)

// Node wraps an AST payload with the source positions it spans.  Wrapping
// (rather than embedding positions into every payload) keeps the AST shape
// uniform for traversals, and keeps position bookkeeping out of the checking
// rules.
type Node[T any] struct {
	// Position of the first character of this node in the original source.
	Start source.Position
	// Position one past the last character of this node.
	End source.Position
	// The wrapped payload.
	Value T
}

// NewNode wraps a payload with its start and end positions.
func NewNode[T any](start source.Position, end source.Position, value T) Node[T] {
	return Node[T]{start, end, value}
}

// Mock wraps a payload with placeholder positions, for tests and
// synthesised nodes.
func Mock[T any](value T) Node[T] {
	pos := source.NewPosition(42, 42)
	return Node[T]{pos, pos, value}
}

// Pos returns the position pair spanned by this node.
func (n Node[T]) Pos() (source.Position, source.Position) {
	return n.Start, n.End
}

func (n Node[T]) String() string {
	return fmt.Sprintf("%v", n.Value)
}
