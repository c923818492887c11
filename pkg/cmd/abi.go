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
package cmd

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-zirc/pkg/typed/abi"
)

// abiCmd emits the ABI of a checked program's main function.
var abiCmd = &cobra.Command{
	Use:   "abi [flags] program.json",
	Short: "Emit the ABI of a program's main function.",
	Long: `Abi checks the given untyped program and prints the JSON description of
the main function's inputs and outputs.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		checked := checkProgram(args[0])
		//
		data, err := json.MarshalIndent(abi.FromProgram(checked), "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		//
		fmt.Println(string(data))
	},
}

func init() {
	rootCmd.AddCommand(abiCmd)
}
