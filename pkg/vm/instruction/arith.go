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
	"math"

	"github.com/consensys/go-esolang/pkg/vm/codec"
	"golang.org/x/exp/constraints"
)

// ErrDivisionByZero is returned when an integer division or remainder has a
// zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// Word captures the types over which the arithmetic instructions operate.
type Word[T any] interface {
	codec.U32 | codec.U64 | codec.I32 | codec.I64 | codec.F32 | codec.F64
	codec.Value[T]
}

// Bits captures the types over which the bitwise instructions operate.
type Bits[T any] interface {
	codec.U32 | codec.U64
	codec.Value[T]
}

type number interface {
	constraints.Integer | constraints.Float
}

// Integer arithmetic wraps around on overflow, including for signed division
// of the most negative value by -1.

func add[T number](lhs, rhs T) (T, error) {
	return lhs + rhs, nil
}

func sub[T number](lhs, rhs T) (T, error) {
	return lhs - rhs, nil
}

func mul[T number](lhs, rhs T) (T, error) {
	return lhs * rhs, nil
}

func div[T constraints.Integer](lhs, rhs T) (T, error) {
	if rhs == 0 {
		return 0, ErrDivisionByZero
	}
	//
	return lhs / rhs, nil
}

func rem[T constraints.Integer](lhs, rhs T) (T, error) {
	if rhs == 0 {
		return 0, ErrDivisionByZero
	}
	//
	return lhs % rhs, nil
}

// Float division by zero yields an infinity (or NaN) as per IEEE-754.
func fdiv[T constraints.Float](lhs, rhs T) (T, error) {
	return lhs / rhs, nil
}

func pow[T constraints.Float](lhs, rhs T) (T, error) {
	return T(math.Pow(float64(lhs), float64(rhs))), nil
}

func eq[T number](lhs, rhs T) bool {
	return lhs == rhs
}

func lt[T number](lhs, rhs T) bool {
	return lhs < rhs
}

func and[T constraints.Unsigned](lhs, rhs T) (T, error) {
	return lhs & rhs, nil
}

func or[T constraints.Unsigned](lhs, rhs T) (T, error) {
	return lhs | rhs, nil
}

func xor[T constraints.Unsigned](lhs, rhs T) (T, error) {
	return lhs ^ rhs, nil
}

// Shifting by the width of the word (or more) yields zero.
func shl[T constraints.Unsigned](lhs, rhs T) (T, error) {
	return lhs << rhs, nil
}

func shr[T constraints.Unsigned](lhs, rhs T) (T, error) {
	return lhs >> rhs, nil
}

func not[T constraints.Unsigned](value T) T {
	return ^value
}
