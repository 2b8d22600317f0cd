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
package machine

import (
	"testing"

	"github.com/consensys/go-esolang/pkg/vm/codec"
	"github.com/consensys/go-esolang/pkg/vm/instruction"
	"github.com/consensys/go-esolang/pkg/vm/memory"
	"github.com/stretchr/testify/require"
)

func Test_CheckPoint_01(t *testing.T) {
	var (
		original    = New(memory.NewArray(zeroFillProgram...))
		checkpoint  CheckPoint
		interrupted = New(memory.NewArray(zeroFillProgram...))
	)
	// Run original to completion
	_, err := original.Run()
	require.NoError(t, err)
	// Run interrupted part way, then checkpoint
	n, err := interrupted.Execute(2)
	require.NoError(t, err)
	require.Equal(t, uint(2), n)
	//
	bytes := checkpointBytes(t, interrupted)
	require.NoError(t, checkpoint.UnmarshalBinary(bytes))
	require.Equal(t, uint64(14), checkpoint.PC)
	require.Equal(t, uint64(2), checkpoint.Steps)
	require.Equal(t, RUNNING, checkpoint.Status)
	// Restore and continue
	restored, err := checkpoint.Restore()
	require.NoError(t, err)
	//
	_, err = restored.Run()
	require.NoError(t, err)
	require.Equal(t, HALTED, restored.Status())
	require.Equal(t, original.Steps(), restored.Steps())
	require.Equal(t, original.Memory().PC(), restored.Memory().PC())
	//
	expected, err := original.Memory().Contents()
	require.NoError(t, err)
	actual, err := restored.Memory().Contents()
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func Test_CheckPoint_02(t *testing.T) {
	var (
		machine    = New(memory.NewArray())
		checkpoint CheckPoint
	)
	// Empty memory
	require.NoError(t, checkpoint.UnmarshalBinary(checkpointBytes(t, machine)))
	//
	restored, err := checkpoint.Restore()
	require.NoError(t, err)
	require.Equal(t, RUNNING, restored.Status())
	//
	_, err = restored.Run()
	require.NoError(t, err)
	require.Equal(t, HALTED, restored.Status())
}

func Test_CheckPoint_03(t *testing.T) {
	var (
		machine    = New(memory.NewArray(make([]byte, 4)...))
		checkpoint CheckPoint
	)
	// Halted machines can be checkpointed
	_, err := machine.Run()
	require.NoError(t, err)
	//
	require.NoError(t, checkpoint.UnmarshalBinary(checkpointBytes(t, machine)))
	require.Equal(t, HALTED, checkpoint.Status)
	//
	restored, err := checkpoint.Restore()
	require.NoError(t, err)
	require.Equal(t, HALTED, restored.Status())
	require.Equal(t, uint64(4), restored.Steps())
}

func Test_CheckPoint_Deterministic(t *testing.T) {
	var machine = New(memory.NewArray(zeroFillProgram...))
	//
	require.Equal(t, checkpointBytes(t, machine), checkpointBytes(t, machine))
}

func Test_CheckPoint_Tampered(t *testing.T) {
	var machine = New(memory.NewArray(zeroFillProgram...))
	//
	checkpoint, err := Capture(machine)
	require.NoError(t, err)
	//
	checkpoint.Digest[0] ^= 0xff
	//
	_, err = checkpoint.Restore()
	require.ErrorIs(t, err, ErrCorruptCheckPoint)
}

func Test_CheckPoint_Garbage(t *testing.T) {
	var checkpoint CheckPoint
	//
	require.ErrorIs(t, checkpoint.UnmarshalBinary([]byte{0xff, 0x00, 0x01}), ErrCorruptCheckPoint)
}

func Test_CheckPoint_Faulted(t *testing.T) {
	var (
		insn    = &instruction.Binary[codec.U32]{Code: instruction.DIV_U32, Left: 1, Right: 0, Target: instruction.To(0, 0)}
		machine = New(memory.NewArray(instruction.Assemble(insn)...))
	)
	//
	_, err := machine.Run()
	require.True(t, IsArithmetic(err))
	//
	_, err = Capture(machine)
	require.ErrorIs(t, err, ErrFaultedCheckPoint)
	require.True(t, IsArithmetic(err))
}

func checkpointBytes(t *testing.T, machine *Machine) []byte {
	checkpoint, err := Capture(machine)
	require.NoError(t, err)
	//
	bytes, err := checkpoint.MarshalBinary()
	require.NoError(t, err)
	//
	return bytes
}
