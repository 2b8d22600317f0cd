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
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes used to distinguish the various ways a command can fail.
const (
	// EXIT_FAILURE indicates a generic failure (e.g. invalid command line).
	EXIT_FAILURE = 1
	// EXIT_USAGE indicates invalid flags or configuration.
	EXIT_USAGE = 2
	// EXIT_IO indicates a file could not be read or written.
	EXIT_IO = 3
	// EXIT_FAULT indicates the machine faulted.
	EXIT_FAULT = 4
	// EXIT_LIMIT indicates the step bound was reached before the machine
	// terminated, and no checkpoint was requested.
	EXIT_LIMIT = 5
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}
	//
	return r
}

// exit logs a given error, and then exits with a given code.
func exit(code int, err error) {
	log.Error(err)
	os.Exit(code)
}
