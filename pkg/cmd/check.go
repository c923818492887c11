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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-zirc/pkg/absy"
	"github.com/consensys/go-zirc/pkg/absy/binfile"
	"github.com/consensys/go-zirc/pkg/semantics"
	"github.com/consensys/go-zirc/pkg/typed"
)

// checkCmd runs semantic analysis over an untyped program.
var checkCmd = &cobra.Command{
	Use:   "check [flags] program.json",
	Short: "Check the semantics of an untyped program.",
	Long: `Check reads an untyped program in the JSON interchange format produced
by a parser front-end, runs semantic analysis over it, and reports all
accumulated errors.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		checkProgram(args[0])
		log.Info("program is well typed")
	},
}

// checkProgram reads and checks a program, exiting on any error.
func checkProgram(filename string) typed.TypedProgram {
	program := readProgram(filename)
	//
	checked, errs := semantics.Check(program)
	if len(errs) > 0 {
		for _, err := range errs {
			log.Error(err)
		}
		//
		os.Exit(1)
	}
	//
	return checked
}

// readProgram reads an untyped program from a JSON interchange file, exiting
// on any error.
func readProgram(filename string) absy.Program {
	data, err := os.ReadFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	//
	program, err := binfile.ReadProgram(data)
	if err != nil {
		log.Fatal(err)
	}
	//
	return program
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
