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
	"path/filepath"
	"testing"

	"github.com/consensys/go-esolang/pkg/vm/codec"
	"github.com/consensys/go-esolang/pkg/vm/instruction"
	"github.com/consensys/go-esolang/pkg/vm/machine"
	"github.com/consensys/go-esolang/pkg/vm/memory"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Configuration
// ============================================================================

func Test_Config_01(t *testing.T) {
	var filename = writeConfig(t, `
backend = "file"
chunk = 4096
max-steps = 100
checkpoint = "program.ckpt"
`)
	//
	config, err := LoadConfig(filename)
	require.NoError(t, err)
	require.Equal(t, Config{FILE_BACKEND, 4096, 100, false, "program.ckpt"}, config)
}

func Test_Config_02(t *testing.T) {
	var filename = writeConfig(t, `verbose = true`)
	// Missing settings retain their defaults
	config, err := LoadConfig(filename)
	require.NoError(t, err)
	require.Equal(t, MEMORY_BACKEND, config.Backend)
	require.Equal(t, machine.DEFAULT_CHUNK, config.Chunk)
	require.True(t, config.Verbose)
}

func Test_Config_03(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `backend = "tape"`))
	require.Error(t, err)
	//
	_, err = LoadConfig(writeConfig(t, `chunk = 0`))
	require.Error(t, err)
	//
	_, err = LoadConfig(writeConfig(t, `chunk = `))
	require.Error(t, err)
	//
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func Test_Config_Override(t *testing.T) {
	var (
		cmd    = &cobra.Command{Use: "test"}
		config = Config{FILE_BACKEND, 4096, 100, false, "program.ckpt"}
	)
	//
	addExecutionFlags(cmd)
	cmd.Flags().String("backend", MEMORY_BACKEND, "")
	cmd.Flags().Bool("verbose", false, "")
	// Only explicit flags take precedence
	require.NoError(t, cmd.Flags().Set("chunk", "7"))
	require.NoError(t, cmd.Flags().Set("verbose", "true"))
	//
	config.Override(cmd)
	require.Equal(t, Config{FILE_BACKEND, 7, 100, true, "program.ckpt"}, config)
}

// ============================================================================
// Execution
// ============================================================================

func Test_Execute_Halt(t *testing.T) {
	var (
		output = filepath.Join(t.TempDir(), "output.bin")
		insn   = &instruction.Binary[codec.U32]{Code: instruction.ADD_U32, Left: 5, Right: 15, Target: instruction.To(0, 4)}
		vm     = machine.New(memory.NewArray(instruction.Assemble(insn)...))
	)
	//
	require.Equal(t, 0, execute(vm, DefaultConfig(), output))
	require.Equal(t, machine.HALTED, vm.Status())
	//
	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, append(instruction.Assemble(insn), 20, 0, 0, 0), contents)
}

func Test_Execute_Bounded(t *testing.T) {
	var (
		config = Config{MEMORY_BACKEND, 4, 6, false, ""}
		vm     = machine.New(memory.NewArray(make([]byte, 10)...))
	)
	// No checkpoint requested
	require.Equal(t, EXIT_LIMIT, execute(vm, config, ""))
	require.Equal(t, uint64(6), vm.Steps())
}

func Test_Execute_CheckPoint(t *testing.T) {
	var (
		filename = filepath.Join(t.TempDir(), "program.ckpt")
		config   = Config{MEMORY_BACKEND, 4, 6, false, filename}
		vm       = machine.New(memory.NewArray(make([]byte, 10)...))
	)
	//
	require.Equal(t, 0, execute(vm, config, ""))
	//
	checkpoint, err := readCheckPoint(filename)
	require.NoError(t, err)
	require.Equal(t, uint64(6), checkpoint.Steps)
	require.Equal(t, machine.RUNNING, checkpoint.Status)
	// Resume to completion
	restored, err := checkpoint.Restore()
	require.NoError(t, err)
	require.Equal(t, 0, execute(restored, DefaultConfig(), ""))
	require.Equal(t, uint64(10), restored.Steps())
	require.Equal(t, machine.HALTED, restored.Status())
}

func Test_Execute_Fault(t *testing.T) {
	var vm = machine.New(memory.NewArray(byte(instruction.DIV_U32), 1, 0, 0, 0))
	//
	require.Equal(t, EXIT_FAULT, execute(vm, DefaultConfig(), ""))
	require.Equal(t, machine.FAULTED, vm.Status())
}

func Test_OpenProgram(t *testing.T) {
	var filename = filepath.Join(t.TempDir(), "program.bin")
	//
	_, err := openProgram(filename, MEMORY_BACKEND)
	require.Error(t, err)
	// Missing programs are not created by the file backend
	_, err = openProgram(filename, FILE_BACKEND)
	require.Error(t, err)
	require.NoFileExists(t, filename)
	//
	require.NoError(t, os.WriteFile(filename, []byte{0, 0}, 0600))
	//
	mem, err := openProgram(filename, FILE_BACKEND)
	require.NoError(t, err)
	require.IsType(t, &memory.File{}, mem)
	require.NoError(t, mem.(*memory.File).Close())
}

// ============================================================================
// Dump
// ============================================================================

func Test_Dump_Columns(t *testing.T) {
	require.Equal(t, uint(32), dumpColumns(200))
	require.Equal(t, uint(16), dumpColumns(80))
	require.Equal(t, uint(8), dumpColumns(42))
	require.Equal(t, uint(4), dumpColumns(10))
}

func Test_Dump_Table(t *testing.T) {
	var table = hexTable([]byte("ABCDEFGHIJKLMNOPQRS\x00"), 16, 17)
	//
	require.Equal(t, uint(2), table.Height())
	require.Equal(t, uint(18), table.Width())
	require.Equal(t, "00000000", table.Get(0, 0))
	require.Equal(t, "00000010", table.Get(0, 1))
	require.Equal(t, "41", table.Get(1, 0))
	require.Equal(t, "00", table.Get(4, 1))
	require.Equal(t, "", table.Get(5, 1))
	require.Equal(t, "ABCDEFGHIJKLMNOP", table.Get(17, 0))
	require.Equal(t, "QRS.            ", table.Get(17, 1))
}

func Test_Dump_Empty(t *testing.T) {
	require.Equal(t, uint(0), hexTable(nil, 16, -1).Height())
}

func writeConfig(t *testing.T, contents string) string {
	var filename = filepath.Join(t.TempDir(), "esolang.toml")
	//
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0600))
	//
	return filename
}
