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

// Tuples compose values into larger values.  The width of a tuple is the sum of
// the widths of its members, which are laid out consecutively (without padding)
// in declaration order.  Since every tuple is itself a value, tuples can be
// nested.  For example, the destination of an arithmetic instruction is a Pair
// of offsets, and the operands of that instruction are a Triple whose last
// member is that Pair.

// Single is a tuple of one value.
type Single[A Value[A]] struct {
	First A
}

// Width implementation for Value interface.
func (p Single[A]) Width() uint {
	return p.First.Width()
}

// Decode implementation for Value interface.
func (p Single[A]) Decode(src []byte) (Single[A], error) {
	var (
		tuple Single[A]
		err   error
	)
	//
	_, err = next(src, &tuple.First)
	//
	return tuple, err
}

// Encode implementation for Value interface.
func (p Single[A]) Encode(dst []byte) {
	put(dst, p.First)
}

// Pair is a tuple of two values.
type Pair[A Value[A], B Value[B]] struct {
	First  A
	Second B
}

// NewPair constructs a new pair from its members.
func NewPair[A Value[A], B Value[B]](first A, second B) Pair[A, B] {
	return Pair[A, B]{first, second}
}

// Width implementation for Value interface.
func (p Pair[A, B]) Width() uint {
	return p.First.Width() + p.Second.Width()
}

// Decode implementation for Value interface.
func (p Pair[A, B]) Decode(src []byte) (Pair[A, B], error) {
	var (
		tuple Pair[A, B]
		c     = cursor{src: src}
	)
	//
	field(&c, &tuple.First)
	field(&c, &tuple.Second)
	//
	return tuple, c.err
}

// Encode implementation for Value interface.
func (p Pair[A, B]) Encode(dst []byte) {
	dst = put(dst, p.First)
	put(dst, p.Second)
}

// Triple is a tuple of three values.
type Triple[A Value[A], B Value[B], C Value[C]] struct {
	First  A
	Second B
	Third  C
}

// NewTriple constructs a new triple from its members.
func NewTriple[A Value[A], B Value[B], C Value[C]](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{first, second, third}
}

// Width implementation for Value interface.
func (p Triple[A, B, C]) Width() uint {
	return p.First.Width() + p.Second.Width() + p.Third.Width()
}

// Decode implementation for Value interface.
func (p Triple[A, B, C]) Decode(src []byte) (Triple[A, B, C], error) {
	var (
		tuple Triple[A, B, C]
		c     = cursor{src: src}
	)
	//
	field(&c, &tuple.First)
	field(&c, &tuple.Second)
	field(&c, &tuple.Third)
	//
	return tuple, c.err
}

// Encode implementation for Value interface.
func (p Triple[A, B, C]) Encode(dst []byte) {
	dst = put(dst, p.First)
	dst = put(dst, p.Second)
	put(dst, p.Third)
}

// Quad is a tuple of four values.
type Quad[A Value[A], B Value[B], C Value[C], D Value[D]] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Width implementation for Value interface.
func (p Quad[A, B, C, D]) Width() uint {
	return p.First.Width() + p.Second.Width() + p.Third.Width() + p.Fourth.Width()
}

// Decode implementation for Value interface.
func (p Quad[A, B, C, D]) Decode(src []byte) (Quad[A, B, C, D], error) {
	var (
		tuple Quad[A, B, C, D]
		c     = cursor{src: src}
	)
	//
	field(&c, &tuple.First)
	field(&c, &tuple.Second)
	field(&c, &tuple.Third)
	field(&c, &tuple.Fourth)
	//
	return tuple, c.err
}

// Encode implementation for Value interface.
func (p Quad[A, B, C, D]) Encode(dst []byte) {
	dst = put(dst, p.First)
	dst = put(dst, p.Second)
	dst = put(dst, p.Third)
	put(dst, p.Fourth)
}

// Quint is a tuple of five values.
type Quint[A Value[A], B Value[B], C Value[C], D Value[D], E Value[E]] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

// Width implementation for Value interface.
func (p Quint[A, B, C, D, E]) Width() uint {
	return p.First.Width() + p.Second.Width() + p.Third.Width() + p.Fourth.Width() + p.Fifth.Width()
}

// Decode implementation for Value interface.
func (p Quint[A, B, C, D, E]) Decode(src []byte) (Quint[A, B, C, D, E], error) {
	var (
		tuple Quint[A, B, C, D, E]
		c     = cursor{src: src}
	)
	//
	field(&c, &tuple.First)
	field(&c, &tuple.Second)
	field(&c, &tuple.Third)
	field(&c, &tuple.Fourth)
	field(&c, &tuple.Fifth)
	//
	return tuple, c.err
}

// Encode implementation for Value interface.
func (p Quint[A, B, C, D, E]) Encode(dst []byte) {
	dst = put(dst, p.First)
	dst = put(dst, p.Second)
	dst = put(dst, p.Third)
	dst = put(dst, p.Fourth)
	put(dst, p.Fifth)
}

// cursor tracks the undecoded remainder of a tuple's bytes, along with the
// first error encountered whilst decoding its members.
type cursor struct {
	src []byte
	err error
}

// field decodes the next member of a tuple, unless an earlier member failed.
func field[V Value[V]](c *cursor, dst *V) {
	if c.err == nil {
		c.src, c.err = next(c.src, dst)
	}
}
