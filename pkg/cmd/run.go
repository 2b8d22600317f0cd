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

	"github.com/consensys/go-esolang/pkg/util"
	"github.com/consensys/go-esolang/pkg/vm/machine"
	"github.com/consensys/go-esolang/pkg/vm/memory"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program.bin",
	Short: "Execute a program.",
	Long: `Execute a program, given as a flat sequence of bytes, until it halts or faults.
With the file backend the program is executed in place, such that any writes
it makes persist in the file.`,
	Args: cobra.ExactArgs(1),
	Run:  runRunCmd,
}

func runRunCmd(cmd *cobra.Command, args []string) {
	var (
		config = configure(cmd)
		output = GetString(cmd, "output")
	)
	//
	mem, err := openProgram(args[0], config.Backend)
	if err != nil {
		exit(EXIT_IO, err)
	}
	//
	code := execute(machine.New(mem), config, output)
	// Flush and release the file (if applicable)
	if file, ok := mem.(*memory.File); ok {
		if err := file.Sync(); err != nil {
			exit(EXIT_IO, err)
		} else if err := file.Close(); err != nil {
			exit(EXIT_IO, err)
		}
	}
	//
	if code != 0 {
		os.Exit(code)
	}
}

// openProgram loads a program into a memory of the given kind.
func openProgram(filename string, backend string) (memory.Memory, error) {
	// Programs must exist, even for the file backend (which would otherwise
	// create them).
	if _, err := os.Stat(filename); err != nil {
		return nil, err
	}
	//
	log.Debugf("loading %s into %s backend", filename, backend)
	//
	if backend == FILE_BACKEND {
		file, err := memory.OpenFile(filename)
		if err != nil {
			return nil, err
		}
		//
		return file, nil
	}
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return memory.NewArray(bytes...), nil
}

// execute a machine according to the given settings, returning the exit code.
// If the machine is still running when the step bound is reached, then a
// checkpoint is written (if requested) from which execution can be resumed.
func execute(vm *machine.Machine, config Config, output string) int {
	var stats = util.NewPerfStats()
	//
	n, err := machine.ExecuteBounded(vm, config.Chunk, config.MaxSteps)
	//
	stats.Log("execution", n)
	//
	if err != nil {
		log.Error(err)
		//
		if machine.IsIO(err) {
			return EXIT_IO
		}
		//
		return EXIT_FAULT
	}
	//
	fmt.Printf("%s at 0x%x after %d steps (%d this run)\n", vm.Status(), vm.Memory().PC(), vm.Steps(), n)
	//
	if output != "" {
		if err := writeContents(vm.Memory(), output); err != nil {
			log.Error(err)
			return EXIT_IO
		}
	}
	//
	if config.Checkpoint != "" {
		if err := writeCheckPoint(vm, config.Checkpoint); err != nil {
			log.Error(err)
			return EXIT_IO
		}
	} else if vm.Status() == machine.RUNNING {
		log.Warnf("step bound of %d reached before termination", config.MaxSteps)
		return EXIT_LIMIT
	}
	//
	return 0
}

func writeContents(mem memory.Memory, filename string) error {
	contents, err := mem.Contents()
	if err != nil {
		return err
	}
	//
	log.Debugf("writing %d bytes to %s", len(contents), filename)
	//
	return os.WriteFile(filename, contents, 0644)
}

func writeCheckPoint(vm *machine.Machine, filename string) error {
	checkpoint, err := machine.Capture(vm)
	if err != nil {
		return err
	}
	//
	bytes, err := checkpoint.MarshalBinary()
	if err != nil {
		return err
	}
	//
	log.Debugf("writing %d byte checkpoint to %s", len(bytes), filename)
	//
	return os.WriteFile(filename, bytes, 0644)
}

func readCheckPoint(filename string) (*machine.CheckPoint, error) {
	var checkpoint machine.CheckPoint
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	} else if err := checkpoint.UnmarshalBinary(bytes); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return &checkpoint, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	addExecutionFlags(runCmd)
	runCmd.Flags().String("backend", MEMORY_BACKEND, "memory backend to use (memory or file)")
}
