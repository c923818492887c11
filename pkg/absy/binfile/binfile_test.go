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
package binfile

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/go-zirc/pkg/absy"
	"github.com/consensys/go-zirc/pkg/types"
	"github.com/consensys/go-zirc/pkg/util"
)

func expr(e absy.Expression) absy.ExpressionNode {
	return absy.Mock[absy.Expression](e)
}

func sampleProgram() absy.Program {
	fieldTy := absy.Mock[absy.UnresolvedType](absy.FieldElementType{})
	arrayTy := absy.Mock[absy.UnresolvedType](absy.ArrayUnresolvedType{
		Element: fieldTy,
		Size:    4,
	})
	//
	a := absy.Mock(absy.Variable{Id: "a", Type: arrayTy})
	//
	body := []absy.StatementNode{
		absy.Mock[absy.Statement](absy.Assertion{
			Expression: expr(absy.Eq{
				Left: expr(absy.Select{
					Array: expr(absy.Identifier{Id: "a"}),
					Index: absy.ExpressionIndex{Expression: expr(absy.FieldConstant{Value: big.NewInt(0)})},
				}),
				Right: expr(absy.FieldConstant{Value: big.NewInt(1)}),
			}),
		}),
		absy.Mock[absy.Statement](absy.Return{
			Expressions: absy.Mock(absy.ExpressionList{
				Expressions: []absy.ExpressionNode{
					expr(absy.Select{
						Array: expr(absy.Identifier{Id: "a"}),
						Index: absy.RangeIndex{Range: absy.Mock(absy.Range{
							From: util.Some(expr(absy.FieldConstant{Value: big.NewInt(1)})),
							To:   util.None[absy.ExpressionNode](),
						})},
					}),
				},
			}),
		}),
	}
	//
	var main absy.Function
	main.Arguments = []absy.ParameterNode{absy.Mock(absy.Parameter{Id: a, Private: true})}
	main.Signature.Inputs = []absy.UnresolvedTypeNode{arrayTy}
	main.Signature.Outputs = []absy.UnresolvedTypeNode{absy.Mock[absy.UnresolvedType](absy.ArrayUnresolvedType{
		Element: fieldTy,
		Size:    3,
	})}
	main.Statements = body
	//
	return absy.Program{
		Main: "main",
		Modules: map[types.ModuleId]absy.Module{
			"main": {Symbols: []absy.SymbolDeclarationNode{
				absy.Mock(absy.SymbolDeclaration{
					Id:     "main",
					Symbol: absy.HereFunction{Function: absy.Mock(main)},
				}),
			}},
		},
	}
}

func TestBinfile_RoundTrip(t *testing.T) {
	program := sampleProgram()
	//
	data, err := WriteProgram(program)
	assert.NoError(t, err)
	//
	decoded, err := ReadProgram(data)
	assert.NoError(t, err)
	// Re-encoding the decoded program yields identical bytes.
	again, err := WriteProgram(decoded)
	assert.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestBinfile_RejectsUnknownVersion(t *testing.T) {
	_, err := ReadProgram([]byte(`{"version": 99, "modules": {}, "main": "main"}`))
	assert.ErrorContains(t, err, "unsupported program format version")
}

func TestBinfile_RejectsMissingMain(t *testing.T) {
	_, err := ReadProgram([]byte(`{"version": 1, "modules": {}, "main": "main"}`))
	assert.ErrorContains(t, err, "main module main is not present")
}

func TestBinfile_RejectsMalformedJson(t *testing.T) {
	_, err := ReadProgram([]byte(`{`))
	assert.ErrorContains(t, err, "malformed program file")
}
