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

import "fmt"

// Opcode is the single byte identifying an instruction.  The opcode space is
// closed: every opcode which is not declared below is treated as a no-op.
// Arithmetic opcodes are grouped by type (the upper nibble) and operation (the
// lower nibble).
type Opcode uint8

// Control
const (
	// NOP does nothing.
	NOP Opcode = 0x00
	// JMP seeks unconditionally by an offset.
	JMP Opcode = 0x01
	// JMPIF seeks by an offset when a boolean operand holds.
	JMPIF Opcode = 0x02
	// JMPIFNOT seeks by an offset when a boolean operand does not hold.
	JMPIFNOT Opcode = 0x03
)

// Unsigned 32bit arithmetic
const (
	ADD_U32 Opcode = 0x10 + iota
	SUB_U32
	MUL_U32
	DIV_U32
	REM_U32
	EQ_U32
	LT_U32
)

// Unsigned 64bit arithmetic
const (
	ADD_U64 Opcode = 0x20 + iota
	SUB_U64
	MUL_U64
	DIV_U64
	REM_U64
	EQ_U64
	LT_U64
)

// Signed 32bit arithmetic
const (
	ADD_I32 Opcode = 0x30 + iota
	SUB_I32
	MUL_I32
	DIV_I32
	REM_I32
	EQ_I32
	LT_I32
)

// Signed 64bit arithmetic
const (
	ADD_I64 Opcode = 0x40 + iota
	SUB_I64
	MUL_I64
	DIV_I64
	REM_I64
	EQ_I64
	LT_I64
)

// Single precision floating point arithmetic
const (
	ADD_F32 Opcode = 0x50 + iota
	SUB_F32
	MUL_F32
	DIV_F32
	POW_F32
	EQ_F32
	LT_F32
)

// Double precision floating point arithmetic
const (
	ADD_F64 Opcode = 0x60 + iota
	SUB_F64
	MUL_F64
	DIV_F64
	POW_F64
	EQ_F64
	LT_F64
)

// 32bit bitwise operations
const (
	AND_U32 Opcode = 0x70 + iota
	OR_U32
	XOR_U32
	NOT_U32
	SHL_U32
	SHR_U32
)

// 64bit bitwise operations
const (
	AND_U64 Opcode = 0x80 + iota
	OR_U64
	XOR_U64
	NOT_U64
	SHL_U64
	SHR_U64
)

// Moves
const (
	MOV1 Opcode = 0x90 + iota
	MOV2
	MOV4
	MOV8
	MOVN
)

// IsDeclared determines whether or not this opcode is part of the instruction
// set.  Undeclared opcodes execute as a no-op.
func (p Opcode) IsDeclared() bool {
	_, ok := opcodes[p]
	//
	return ok
}

func (p Opcode) String() string {
	if d, ok := opcodes[p]; ok {
		return d.name
	}
	//
	return fmt.Sprintf("0x%02x", uint8(p))
}
