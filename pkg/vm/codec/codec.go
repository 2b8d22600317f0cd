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
	"errors"
)

// ErrUnexpectedEnd is returned when fewer bytes are available than the width
// of the value being decoded.  When this arises whilst fetching the next opcode
// it simply signals the end of the program.
var ErrUnexpectedEnd = errors.New("unexpected end of data")

// Encoder captures anything which has a fixed-width binary encoding.  Every
// Value is an Encoder, but the converse is not required (e.g. an instruction
// knows how to encode itself, but is not decoded through this interface).
type Encoder interface {
	// Width returns the number of bytes occupied by the encoding.  This is a
	// property of the type, rather than of any particular value.
	Width() uint
	// Encode writes exactly Width() bytes into the front of dst.  This panics
	// if dst is too short.
	Encode(dst []byte)
}

// Value represents a type with a fixed-width, bidirectional binary encoding.
// Multi-byte numeric values are always encoded little-endian.  The type
// parameter is the type itself, allowing Decode to return a fresh value rather
// than mutating its receiver.
type Value[V any] interface {
	Encoder
	// Decode a value from the front of src, consuming exactly Width() bytes.
	// Bytes beyond Width() are never touched.  If fewer than Width() bytes are
	// available then ErrUnexpectedEnd is returned.
	Decode(src []byte) (V, error)
}

// WidthOf returns the width (in bytes) of a given value type.
func WidthOf[V Value[V]]() uint {
	var value V
	//
	return value.Width()
}

// Decode a value of the given type from the front of a byte slice.
func Decode[V Value[V]](src []byte) (V, error) {
	var value V
	//
	return value.Decode(src)
}

// Encode a value into a freshly allocated byte slice of exactly the right
// width.
func Encode(value Encoder) []byte {
	var bytes = make([]byte, value.Width())
	//
	value.Encode(bytes)
	//
	return bytes
}

func checkWidth(src []byte, width uint) error {
	if uint(len(src)) < width {
		return ErrUnexpectedEnd
	}
	//
	return nil
}

// next decodes a value from the front of src into dst, returning the remainder
// of src.  This is used to decode the members of a tuple in order.
func next[V Value[V]](src []byte, dst *V) ([]byte, error) {
	value, err := (*dst).Decode(src)
	//
	if err != nil {
		return src, err
	}
	//
	*dst = value
	//
	return src[value.Width():], nil
}

// put encodes a value into the front of dst, returning the remainder.
func put(dst []byte, value Encoder) []byte {
	value.Encode(dst)
	//
	return dst[value.Width():]
}
