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
	"fmt"

	"github.com/consensys/go-zirc/pkg/types"
	"github.com/consensys/go-zirc/pkg/util"
	"github.com/consensys/go-zirc/pkg/util/source"
)

// ErrorInner is a semantic error before it has been attributed to a module:
// a message, optionally located at a span of the original source.
type ErrorInner struct {
	pos     util.Option[source.Span]
	message string
}

// NewErrorInner constructs an error at a given span.
func NewErrorInner(start source.Position, end source.Position, format string, args ...any) ErrorInner {
	return ErrorInner{
		pos:     util.Some(source.NewSpan(start, end)),
		message: fmt.Sprintf(format, args...),
	}
}

// NewUnpositionedError constructs an error which is not attributable to any
// particular span, such as a missing main function.
func NewUnpositionedError(format string, args ...any) ErrorInner {
	return ErrorInner{
		pos:     util.None[source.Span](),
		message: fmt.Sprintf(format, args...),
	}
}

// Pos returns the source span this error is located at, if any.
func (e ErrorInner) Pos() util.Option[source.Span] {
	return e.pos
}

// Message returns the message being reported.
func (e ErrorInner) Message() string {
	return e.message
}

// InModule attributes this error to a given module.
func (e ErrorInner) InModule(module types.ModuleId) Error {
	return Error{e, module}
}

// Error implements the error interface.
func (e ErrorInner) Error() string {
	location := "?"
	//
	if e.pos.HasValue() {
		location = e.pos.Unwrap().Start.String()
	}
	//
	return fmt.Sprintf("%s\n\t%s", location, e.message)
}

// Error is a semantic error attributed to the module in which it arose.
type Error struct {
	Inner  ErrorInner
	Module types.ModuleId
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Module, e.Inner.Error())
}

// attribute maps a list of module-less errors into a given module.
func attribute(errs []ErrorInner, module types.ModuleId) []Error {
	attributed := make([]Error, len(errs))
	//
	for i, e := range errs {
		attributed[i] = e.InModule(module)
	}
	//
	return attributed
}
