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

	"github.com/consensys/go-esolang/pkg/vm/machine"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume [flags] checkpoint",
	Short: "Resume execution from a checkpoint.",
	Long: `Resume execution of a program from a checkpoint previously written by "run"
or "resume".  The restored machine always executes in memory.`,
	Args: cobra.ExactArgs(1),
	Run:  runResumeCmd,
}

func runResumeCmd(cmd *cobra.Command, args []string) {
	var (
		config = configure(cmd)
		output = GetString(cmd, "output")
	)
	//
	checkpoint, err := readCheckPoint(args[0])
	if err != nil {
		exit(EXIT_IO, err)
	}
	//
	vm, err := checkpoint.Restore()
	if err != nil {
		exit(EXIT_IO, err)
	}
	//
	log.Debugf("resuming at 0x%x after %d steps", vm.Memory().PC(), vm.Steps())
	//
	if vm.Status() != machine.RUNNING {
		log.Warnf("checkpoint is already %s", vm.Status())
	}
	//
	if code := execute(vm, config, output); code != 0 {
		os.Exit(code)
	}
}

func init() {
	rootCmd.AddCommand(resumeCmd)
	addExecutionFlags(resumeCmd)
}
