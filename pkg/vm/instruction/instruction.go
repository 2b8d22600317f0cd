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
	"errors"
	"fmt"

	"github.com/consensys/go-esolang/pkg/vm/codec"
	"github.com/consensys/go-esolang/pkg/vm/memory"
)

// ErrMalformed is returned when executing an instruction whose opcode does not
// match its operand types (which can only arise from instructions constructed
// by hand, never from decoding).
var ErrMalformed = errors.New("malformed instruction")

// Instruction provides an abstract notion of a "machine instruction".  That is,
// a single atomic unit which can be executed against a memory.  Instructions
// are never stored as such; rather, each is decoded from memory immediately
// before it is executed, and discarded afterwards.
type Instruction interface {
	codec.Encoder
	// Opcode identifies this instruction.
	Opcode() Opcode
	// Execute this instruction against a given memory, whose cursor is
	// positioned immediately after the instruction's last operand.  All
	// effects are applied through memory operations, and the cursor is left at
	// the position from which the next opcode will be fetched.
	Execute(memory memory.Memory) error
	// Provide human readable form of instruction
	String() string
}

// Destination identifies where the result of an instruction is written.  The
// cursor is moved by the first offset, the result written and, finally, the
// cursor is moved by the second offset to position it for the next fetch.
type Destination = codec.Pair[codec.Offset, codec.Offset]

// To constructs a destination.
func To(first, second codec.Offset) Destination {
	return codec.NewPair(first, second)
}

// writeTo writes a result to a given destination.
func writeTo(mem memory.Memory, target Destination, value codec.Encoder) error {
	if err := mem.Seek(target.First); err != nil {
		return err
	} else if err := memory.Write(mem, value); err != nil {
		return err
	}
	//
	return mem.Seek(target.Second)
}

// encode writes an opcode followed by its operands.
func encode(dst []byte, code Opcode, operands codec.Encoder) {
	dst[0] = byte(code)
	operands.Encode(dst[1:])
}

func destinationString(target Destination) string {
	return fmt.Sprintf("(%d, %d)", target.First, target.Second)
}

// ============================================================================
// Control
// ============================================================================

// Nop does nothing.  This is also what any undeclared opcode decodes to, in
// which case the original opcode is retained.
type Nop struct {
	Code Opcode
}

// Opcode implementation for Instruction interface.
func (p *Nop) Opcode() Opcode {
	return p.Code
}

// Width implementation for Instruction interface.
func (p *Nop) Width() uint {
	return 1
}

// Encode implementation for Instruction interface.
func (p *Nop) Encode(dst []byte) {
	dst[0] = byte(p.Code)
}

// Execute implementation for Instruction interface.
func (p *Nop) Execute(_ memory.Memory) error {
	return nil
}

func (p *Nop) String() string {
	if p.Code == NOP {
		return "nop"
	}
	//
	return fmt.Sprintf("nop ; %s", p.Code)
}

// Jump performs an unconditional seek by a given offset, relative to the end
// of the instruction.
type Jump struct {
	Target codec.Offset
}

// Opcode implementation for Instruction interface.
func (p *Jump) Opcode() Opcode {
	return JMP
}

// Width implementation for Instruction interface.
func (p *Jump) Width() uint {
	return 1 + p.Target.Width()
}

// Encode implementation for Instruction interface.
func (p *Jump) Encode(dst []byte) {
	encode(dst, JMP, p.Target)
}

// Execute implementation for Instruction interface.
func (p *Jump) Execute(mem memory.Memory) error {
	return mem.Seek(p.Target)
}

func (p *Jump) String() string {
	return fmt.Sprintf("jmp %d", p.Target)
}

// Branch performs a seek by a given offset only when its condition matches.
// For JMPIF the seek happens when the condition holds, whilst for JMPIFNOT it
// happens when the condition does not hold.
type Branch struct {
	Code      Opcode
	Condition codec.Bool
	Target    codec.Offset
}

// Opcode implementation for Instruction interface.
func (p *Branch) Opcode() Opcode {
	return p.Code
}

// Width implementation for Instruction interface.
func (p *Branch) Width() uint {
	return 1 + p.Condition.Width() + p.Target.Width()
}

// Encode implementation for Instruction interface.
func (p *Branch) Encode(dst []byte) {
	encode(dst, p.Code, codec.NewPair(p.Condition, p.Target))
}

// Execute implementation for Instruction interface.
func (p *Branch) Execute(mem memory.Memory) error {
	var expected = p.Code == JMPIF
	//
	if p.Code != JMPIF && p.Code != JMPIFNOT {
		return fmt.Errorf("%w: %s is not a branch", ErrMalformed, p.Code)
	} else if bool(p.Condition) == expected {
		return mem.Seek(p.Target)
	}
	//
	return nil
}

func (p *Branch) String() string {
	return fmt.Sprintf("%s %t, %d", p.Code, p.Condition, p.Target)
}

// ============================================================================
// Arithmetic
// ============================================================================

// Binary represents an instruction of the form:
//
// target := left op right
//
// Here, left and right are values held inline as operands of the instruction,
// and the operation is determined by the opcode.  The result has the same type
// as the operands.
type Binary[T Word[T]] struct {
	Code   Opcode
	Left   T
	Right  T
	Target Destination
}

// Opcode implementation for Instruction interface.
func (p *Binary[T]) Opcode() Opcode {
	return p.Code
}

// Width implementation for Instruction interface.
func (p *Binary[T]) Width() uint {
	return 1 + p.operands().Width()
}

// Encode implementation for Instruction interface.
func (p *Binary[T]) Encode(dst []byte) {
	encode(dst, p.Code, p.operands())
}

// Execute implementation for Instruction interface.
func (p *Binary[T]) Execute(mem memory.Memory) error {
	fn, ok := opcodes[p.Code].semantics.(func(T, T) (T, error))
	//
	if !ok {
		return fmt.Errorf("%w: %s does not operate on %T", ErrMalformed, p.Code, p.Left)
	}
	//
	result, err := fn(p.Left, p.Right)
	if err != nil {
		return err
	}
	//
	return writeTo(mem, p.Target, result)
}

func (p *Binary[T]) operands() codec.Triple[T, T, Destination] {
	return codec.NewTriple(p.Left, p.Right, p.Target)
}

func (p *Binary[T]) String() string {
	return fmt.Sprintf("%s %v, %v -> %s", p.Code, p.Left, p.Right, destinationString(p.Target))
}

// Compare represents an instruction of the form:
//
// target := left cmp right
//
// Where the result is written as a one byte boolean.
type Compare[T Word[T]] struct {
	Code   Opcode
	Left   T
	Right  T
	Target Destination
}

// Opcode implementation for Instruction interface.
func (p *Compare[T]) Opcode() Opcode {
	return p.Code
}

// Width implementation for Instruction interface.
func (p *Compare[T]) Width() uint {
	return 1 + p.operands().Width()
}

// Encode implementation for Instruction interface.
func (p *Compare[T]) Encode(dst []byte) {
	encode(dst, p.Code, p.operands())
}

// Execute implementation for Instruction interface.
func (p *Compare[T]) Execute(mem memory.Memory) error {
	fn, ok := opcodes[p.Code].semantics.(func(T, T) bool)
	//
	if !ok {
		return fmt.Errorf("%w: %s does not compare %T", ErrMalformed, p.Code, p.Left)
	}
	//
	return writeTo(mem, p.Target, codec.Bool(fn(p.Left, p.Right)))
}

func (p *Compare[T]) operands() codec.Triple[T, T, Destination] {
	return codec.NewTriple(p.Left, p.Right, p.Target)
}

func (p *Compare[T]) String() string {
	return fmt.Sprintf("%s %v, %v -> %s", p.Code, p.Left, p.Right, destinationString(p.Target))
}

// Unary represents an instruction of the form:
//
// target := op value
type Unary[T Bits[T]] struct {
	Code   Opcode
	Value  T
	Target Destination
}

// Opcode implementation for Instruction interface.
func (p *Unary[T]) Opcode() Opcode {
	return p.Code
}

// Width implementation for Instruction interface.
func (p *Unary[T]) Width() uint {
	return 1 + p.operands().Width()
}

// Encode implementation for Instruction interface.
func (p *Unary[T]) Encode(dst []byte) {
	encode(dst, p.Code, p.operands())
}

// Execute implementation for Instruction interface.
func (p *Unary[T]) Execute(mem memory.Memory) error {
	fn, ok := opcodes[p.Code].semantics.(func(T) T)
	//
	if !ok {
		return fmt.Errorf("%w: %s does not operate on %T", ErrMalformed, p.Code, p.Value)
	}
	//
	return writeTo(mem, p.Target, fn(p.Value))
}

func (p *Unary[T]) operands() codec.Pair[T, Destination] {
	return codec.NewPair(p.Value, p.Target)
}

func (p *Unary[T]) String() string {
	return fmt.Sprintf("%s %v -> %s", p.Code, p.Value, destinationString(p.Target))
}

// ============================================================================
// Moves
// ============================================================================

// Move copies a fixed number of bytes (determined by B) from a source offset to
// a destination.  The source offset is relative to the end of the instruction,
// and the cursor returns there after reading so that the destination is
// relative to the same position.
type Move[B codec.Value[B]] struct {
	Code   Opcode
	Source codec.Offset
	Target Destination
}

// Opcode implementation for Instruction interface.
func (p *Move[B]) Opcode() Opcode {
	return p.Code
}

// Width implementation for Instruction interface.
func (p *Move[B]) Width() uint {
	return 1 + p.operands().Width()
}

// Encode implementation for Instruction interface.
func (p *Move[B]) Encode(dst []byte) {
	encode(dst, p.Code, p.operands())
}

// Execute implementation for Instruction interface.
func (p *Move[B]) Execute(mem memory.Memory) error {
	if err := mem.Seek(p.Source); err != nil {
		return err
	}
	//
	value, err := memory.Read[B](mem)
	if err != nil {
		return err
	}
	// Return to the end of the instruction
	if err := memory.SeekBy(mem, -int64(p.Source)-int64(value.Width())); err != nil {
		return err
	}
	//
	return writeTo(mem, p.Target, value)
}

func (p *Move[B]) operands() codec.Pair[codec.Offset, Destination] {
	return codec.NewPair(p.Source, p.Target)
}

func (p *Move[B]) String() string {
	return fmt.Sprintf("%s %d -> %s", p.Code, p.Source, destinationString(p.Target))
}

// MoveN copies an explicit number of bytes from a source offset to a
// destination, following the same addressing as Move.
type MoveN struct {
	Count  codec.U32
	Source codec.Offset
	Target Destination
}

// Opcode implementation for Instruction interface.
func (p *MoveN) Opcode() Opcode {
	return MOVN
}

// Width implementation for Instruction interface.
func (p *MoveN) Width() uint {
	return 1 + p.operands().Width()
}

// Encode implementation for Instruction interface.
func (p *MoveN) Encode(dst []byte) {
	encode(dst, MOVN, p.operands())
}

// Execute implementation for Instruction interface.
func (p *MoveN) Execute(mem memory.Memory) error {
	if err := mem.Seek(p.Source); err != nil {
		return err
	}
	//
	bytes, err := memory.ReadBytes(mem, uint(p.Count))
	if err != nil {
		return err
	}
	// Return to the end of the instruction
	if err := memory.SeekBy(mem, -int64(p.Source)-int64(p.Count)); err != nil {
		return err
	} else if err := mem.Seek(p.Target.First); err != nil {
		return err
	} else if err := mem.Store(bytes); err != nil {
		return err
	}
	//
	return mem.Seek(p.Target.Second)
}

func (p *MoveN) operands() codec.Triple[codec.U32, codec.Offset, Destination] {
	return codec.NewTriple(p.Count, p.Source, p.Target)
}

func (p *MoveN) String() string {
	return fmt.Sprintf("movn %d, %d -> %s", p.Count, p.Source, destinationString(p.Target))
}
