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
package codec

import (
	"encoding/binary"
	"math"
)

// ============================================================================
// Single byte values
// ============================================================================

// Bool is a one byte boolean.  Any non-zero byte decodes as true, whilst true
// always encodes as 1.
type Bool bool

// Width implementation for Value interface.
func (Bool) Width() uint {
	return 1
}

// Decode implementation for Value interface.
func (Bool) Decode(src []byte) (Bool, error) {
	if err := checkWidth(src, 1); err != nil {
		return false, err
	}
	//
	return src[0] != 0, nil
}

// Encode implementation for Value interface.
func (p Bool) Encode(dst []byte) {
	if p {
		dst[0] = 1
	} else {
		dst[0] = 0
	}
}

// Byte is a single raw byte.
type Byte uint8

// Width implementation for Value interface.
func (Byte) Width() uint {
	return 1
}

// Decode implementation for Value interface.
func (Byte) Decode(src []byte) (Byte, error) {
	if err := checkWidth(src, 1); err != nil {
		return 0, err
	}
	//
	return Byte(src[0]), nil
}

// Encode implementation for Value interface.
func (p Byte) Encode(dst []byte) {
	dst[0] = byte(p)
}

// ============================================================================
// Offsets
// ============================================================================

// Offset is a signed 16bit displacement applied to the cursor of a memory.
// Offsets can be negative, allowing the cursor to move backwards.
type Offset int16

// Width implementation for Value interface.
func (Offset) Width() uint {
	return 2
}

// Decode implementation for Value interface.
func (Offset) Decode(src []byte) (Offset, error) {
	if err := checkWidth(src, 2); err != nil {
		return 0, err
	}
	//
	return Offset(binary.LittleEndian.Uint16(src)), nil
}

// Encode implementation for Value interface.
func (p Offset) Encode(dst []byte) {
	binary.LittleEndian.PutUint16(dst, uint16(p))
}

// ============================================================================
// Integers
// ============================================================================

// U32 is an unsigned 32bit integer.
type U32 uint32

// Width implementation for Value interface.
func (U32) Width() uint {
	return 4
}

// Decode implementation for Value interface.
func (U32) Decode(src []byte) (U32, error) {
	if err := checkWidth(src, 4); err != nil {
		return 0, err
	}
	//
	return U32(binary.LittleEndian.Uint32(src)), nil
}

// Encode implementation for Value interface.
func (p U32) Encode(dst []byte) {
	binary.LittleEndian.PutUint32(dst, uint32(p))
}

// U64 is an unsigned 64bit integer.
type U64 uint64

// Width implementation for Value interface.
func (U64) Width() uint {
	return 8
}

// Decode implementation for Value interface.
func (U64) Decode(src []byte) (U64, error) {
	if err := checkWidth(src, 8); err != nil {
		return 0, err
	}
	//
	return U64(binary.LittleEndian.Uint64(src)), nil
}

// Encode implementation for Value interface.
func (p U64) Encode(dst []byte) {
	binary.LittleEndian.PutUint64(dst, uint64(p))
}

// I32 is a signed 32bit integer, encoded in two's complement.
type I32 int32

// Width implementation for Value interface.
func (I32) Width() uint {
	return 4
}

// Decode implementation for Value interface.
func (I32) Decode(src []byte) (I32, error) {
	if err := checkWidth(src, 4); err != nil {
		return 0, err
	}
	//
	return I32(binary.LittleEndian.Uint32(src)), nil
}

// Encode implementation for Value interface.
func (p I32) Encode(dst []byte) {
	binary.LittleEndian.PutUint32(dst, uint32(p))
}

// I64 is a signed 64bit integer, encoded in two's complement.
type I64 int64

// Width implementation for Value interface.
func (I64) Width() uint {
	return 8
}

// Decode implementation for Value interface.
func (I64) Decode(src []byte) (I64, error) {
	if err := checkWidth(src, 8); err != nil {
		return 0, err
	}
	//
	return I64(binary.LittleEndian.Uint64(src)), nil
}

// Encode implementation for Value interface.
func (p I64) Encode(dst []byte) {
	binary.LittleEndian.PutUint64(dst, uint64(p))
}

// ============================================================================
// Floating point
// ============================================================================

// F32 is an IEEE-754 single precision float.  Encoding preserves the exact bit
// pattern, including that of NaNs.
type F32 float32

// Width implementation for Value interface.
func (F32) Width() uint {
	return 4
}

// Decode implementation for Value interface.
func (F32) Decode(src []byte) (F32, error) {
	if err := checkWidth(src, 4); err != nil {
		return 0, err
	}
	//
	return F32(math.Float32frombits(binary.LittleEndian.Uint32(src))), nil
}

// Encode implementation for Value interface.
func (p F32) Encode(dst []byte) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(p)))
}

// F64 is an IEEE-754 double precision float.
type F64 float64

// Width implementation for Value interface.
func (F64) Width() uint {
	return 8
}

// Decode implementation for Value interface.
func (F64) Decode(src []byte) (F64, error) {
	if err := checkWidth(src, 8); err != nil {
		return 0, err
	}
	//
	return F64(math.Float64frombits(binary.LittleEndian.Uint64(src))), nil
}

// Encode implementation for Value interface.
func (p F64) Encode(dst []byte) {
	binary.LittleEndian.PutUint64(dst, math.Float64bits(float64(p)))
}
