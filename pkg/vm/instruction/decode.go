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
	"github.com/consensys/go-esolang/pkg/vm/memory"
)

// decoder reads the operands of an instruction with a given opcode from memory.
// The opcode itself has already been consumed.
type decoder func(code Opcode, mem memory.Memory) (Instruction, error)

// descriptor describes a single opcode: its mnemonic, how to decode its
// operands, and its semantics.  The semantics is a function whose signature
// depends upon the kind of instruction (e.g. func(T, T) (T, error) for a Binary
// instruction over T).
type descriptor struct {
	name      string
	decode    decoder
	semantics any
}

// opcodes is the closed mapping from opcodes to instructions.
var opcodes = map[Opcode]descriptor{
	// Control
	NOP:      {"nop", decodeNop, nil},
	JMP:      {"jmp", decodeJump, nil},
	JMPIF:    {"jmpif", decodeBranch, nil},
	JMPIFNOT: {"jmpifnot", decodeBranch, nil},
	// u32
	ADD_U32: {"add.u32", decodeBinary[codec.U32], add[codec.U32]},
	SUB_U32: {"sub.u32", decodeBinary[codec.U32], sub[codec.U32]},
	MUL_U32: {"mul.u32", decodeBinary[codec.U32], mul[codec.U32]},
	DIV_U32: {"div.u32", decodeBinary[codec.U32], div[codec.U32]},
	REM_U32: {"rem.u32", decodeBinary[codec.U32], rem[codec.U32]},
	EQ_U32:  {"eq.u32", decodeCompare[codec.U32], eq[codec.U32]},
	LT_U32:  {"lt.u32", decodeCompare[codec.U32], lt[codec.U32]},
	// u64
	ADD_U64: {"add.u64", decodeBinary[codec.U64], add[codec.U64]},
	SUB_U64: {"sub.u64", decodeBinary[codec.U64], sub[codec.U64]},
	MUL_U64: {"mul.u64", decodeBinary[codec.U64], mul[codec.U64]},
	DIV_U64: {"div.u64", decodeBinary[codec.U64], div[codec.U64]},
	REM_U64: {"rem.u64", decodeBinary[codec.U64], rem[codec.U64]},
	EQ_U64:  {"eq.u64", decodeCompare[codec.U64], eq[codec.U64]},
	LT_U64:  {"lt.u64", decodeCompare[codec.U64], lt[codec.U64]},
	// i32
	ADD_I32: {"add.i32", decodeBinary[codec.I32], add[codec.I32]},
	SUB_I32: {"sub.i32", decodeBinary[codec.I32], sub[codec.I32]},
	MUL_I32: {"mul.i32", decodeBinary[codec.I32], mul[codec.I32]},
	DIV_I32: {"div.i32", decodeBinary[codec.I32], div[codec.I32]},
	REM_I32: {"rem.i32", decodeBinary[codec.I32], rem[codec.I32]},
	EQ_I32:  {"eq.i32", decodeCompare[codec.I32], eq[codec.I32]},
	LT_I32:  {"lt.i32", decodeCompare[codec.I32], lt[codec.I32]},
	// i64
	ADD_I64: {"add.i64", decodeBinary[codec.I64], add[codec.I64]},
	SUB_I64: {"sub.i64", decodeBinary[codec.I64], sub[codec.I64]},
	MUL_I64: {"mul.i64", decodeBinary[codec.I64], mul[codec.I64]},
	DIV_I64: {"div.i64", decodeBinary[codec.I64], div[codec.I64]},
	REM_I64: {"rem.i64", decodeBinary[codec.I64], rem[codec.I64]},
	EQ_I64:  {"eq.i64", decodeCompare[codec.I64], eq[codec.I64]},
	LT_I64:  {"lt.i64", decodeCompare[codec.I64], lt[codec.I64]},
	// f32
	ADD_F32: {"add.f32", decodeBinary[codec.F32], add[codec.F32]},
	SUB_F32: {"sub.f32", decodeBinary[codec.F32], sub[codec.F32]},
	MUL_F32: {"mul.f32", decodeBinary[codec.F32], mul[codec.F32]},
	DIV_F32: {"div.f32", decodeBinary[codec.F32], fdiv[codec.F32]},
	POW_F32: {"pow.f32", decodeBinary[codec.F32], pow[codec.F32]},
	EQ_F32:  {"eq.f32", decodeCompare[codec.F32], eq[codec.F32]},
	LT_F32:  {"lt.f32", decodeCompare[codec.F32], lt[codec.F32]},
	// f64
	ADD_F64: {"add.f64", decodeBinary[codec.F64], add[codec.F64]},
	SUB_F64: {"sub.f64", decodeBinary[codec.F64], sub[codec.F64]},
	MUL_F64: {"mul.f64", decodeBinary[codec.F64], mul[codec.F64]},
	DIV_F64: {"div.f64", decodeBinary[codec.F64], fdiv[codec.F64]},
	POW_F64: {"pow.f64", decodeBinary[codec.F64], pow[codec.F64]},
	EQ_F64:  {"eq.f64", decodeCompare[codec.F64], eq[codec.F64]},
	LT_F64:  {"lt.f64", decodeCompare[codec.F64], lt[codec.F64]},
	// bitwise u32
	AND_U32: {"and.u32", decodeBinary[codec.U32], and[codec.U32]},
	OR_U32:  {"or.u32", decodeBinary[codec.U32], or[codec.U32]},
	XOR_U32: {"xor.u32", decodeBinary[codec.U32], xor[codec.U32]},
	NOT_U32: {"not.u32", decodeUnary[codec.U32], not[codec.U32]},
	SHL_U32: {"shl.u32", decodeBinary[codec.U32], shl[codec.U32]},
	SHR_U32: {"shr.u32", decodeBinary[codec.U32], shr[codec.U32]},
	// bitwise u64
	AND_U64: {"and.u64", decodeBinary[codec.U64], and[codec.U64]},
	OR_U64:  {"or.u64", decodeBinary[codec.U64], or[codec.U64]},
	XOR_U64: {"xor.u64", decodeBinary[codec.U64], xor[codec.U64]},
	NOT_U64: {"not.u64", decodeUnary[codec.U64], not[codec.U64]},
	SHL_U64: {"shl.u64", decodeBinary[codec.U64], shl[codec.U64]},
	SHR_U64: {"shr.u64", decodeBinary[codec.U64], shr[codec.U64]},
	// moves
	MOV1: {"mov1", decodeMove[codec.Byte], nil},
	MOV2: {"mov2", decodeMove[codec.Bytes2], nil},
	MOV4: {"mov4", decodeMove[codec.Bytes4], nil},
	MOV8: {"mov8", decodeMove[codec.Bytes8], nil},
	MOVN: {"movn", decodeMoveN, nil},
}

// Fetch the next opcode from memory.  If memory is exhausted exactly at the
// cursor then false is returned, signalling the end of the program.
func Fetch(mem memory.Memory) (Opcode, bool, error) {
	code, ok, err := memory.ReadIfPresent[codec.Byte](mem)
	//
	return Opcode(code), ok, err
}

// DecodeOperands reads the operands for a given opcode (which has already been
// fetched) from memory, leaving the cursor immediately after the last operand.
// Undeclared opcodes have no operands and decode as a no-op.
func DecodeOperands(code Opcode, mem memory.Memory) (Instruction, error) {
	if d, ok := opcodes[code]; ok {
		return d.decode(code, mem)
	}
	//
	return &Nop{code}, nil
}

// Decode the instruction at the cursor, returning false if memory is exhausted
// exactly at the cursor.  Running out of memory part way through the operands
// is an error.
func Decode(mem memory.Memory) (Instruction, bool, error) {
	code, ok, err := Fetch(mem)
	//
	if !ok || err != nil {
		return nil, ok, err
	}
	//
	insn, err := DecodeOperands(code, mem)
	//
	return insn, true, err
}

func decodeNop(code Opcode, _ memory.Memory) (Instruction, error) {
	return &Nop{code}, nil
}

func decodeJump(_ Opcode, mem memory.Memory) (Instruction, error) {
	target, err := memory.Read[codec.Offset](mem)
	if err != nil {
		return nil, err
	}
	//
	return &Jump{target}, nil
}

func decodeBranch(code Opcode, mem memory.Memory) (Instruction, error) {
	operands, err := memory.Read[codec.Pair[codec.Bool, codec.Offset]](mem)
	if err != nil {
		return nil, err
	}
	//
	return &Branch{code, operands.First, operands.Second}, nil
}

func decodeBinary[T Word[T]](code Opcode, mem memory.Memory) (Instruction, error) {
	operands, err := memory.Read[codec.Triple[T, T, Destination]](mem)
	if err != nil {
		return nil, err
	}
	//
	return &Binary[T]{code, operands.First, operands.Second, operands.Third}, nil
}

func decodeCompare[T Word[T]](code Opcode, mem memory.Memory) (Instruction, error) {
	operands, err := memory.Read[codec.Triple[T, T, Destination]](mem)
	if err != nil {
		return nil, err
	}
	//
	return &Compare[T]{code, operands.First, operands.Second, operands.Third}, nil
}

func decodeUnary[T Bits[T]](code Opcode, mem memory.Memory) (Instruction, error) {
	operands, err := memory.Read[codec.Pair[T, Destination]](mem)
	if err != nil {
		return nil, err
	}
	//
	return &Unary[T]{code, operands.First, operands.Second}, nil
}

func decodeMove[B codec.Value[B]](code Opcode, mem memory.Memory) (Instruction, error) {
	operands, err := memory.Read[codec.Pair[codec.Offset, Destination]](mem)
	if err != nil {
		return nil, err
	}
	//
	return &Move[B]{code, operands.First, operands.Second}, nil
}

func decodeMoveN(_ Opcode, mem memory.Memory) (Instruction, error) {
	operands, err := memory.Read[codec.Triple[codec.U32, codec.Offset, Destination]](mem)
	if err != nil {
		return nil, err
	}
	//
	return &MoveN{operands.First, operands.Second, operands.Third}, nil
}
