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
package instruction

import (
	"github.com/consensys/go-esolang/pkg/vm/codec"
)

// Program is a simple builder for constructing a program as a flat sequence of
// bytes, consisting of instructions interleaved with raw data.
type Program struct {
	bytes []byte
}

// NewProgram constructs an empty program.
func NewProgram() *Program {
	return &Program{}
}

// Instruction appends zero or more instructions to this program.
func (p *Program) Instruction(insns ...Instruction) *Program {
	for _, insn := range insns {
		p.bytes = append(p.bytes, codec.Encode(insn)...)
	}
	//
	return p
}

// Data appends zero or more raw values to this program.
func (p *Program) Data(values ...codec.Encoder) *Program {
	for _, value := range values {
		p.bytes = append(p.bytes, codec.Encode(value)...)
	}
	//
	return p
}

// Len returns the number of bytes in the program so far.  This is useful for
// computing offsets.
func (p *Program) Len() uint {
	return uint(len(p.bytes))
}

// Bytes returns the program constructed so far.
func (p *Program) Bytes() []byte {
	return p.bytes
}

// Assemble a sequence of instructions into a program.
func Assemble(insns ...Instruction) []byte {
	return NewProgram().Instruction(insns...).Bytes()
}
