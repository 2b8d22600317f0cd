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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Codec_Bool(t *testing.T) {
	checkRoundTrip(t, Bool(false), Bool(true))
	// Any non-zero byte is true
	value, err := Decode[Bool]([]byte{0x7f})
	require.NoError(t, err)
	require.Equal(t, Bool(true), value)
	// True always encodes as 1
	require.Equal(t, []byte{1}, Encode(Bool(true)))
}

func Test_Codec_Byte(t *testing.T) {
	checkRoundTrip(t, Byte(0), Byte(1), Byte(0x7f), Byte(0xff))
}

func Test_Codec_Offset(t *testing.T) {
	checkRoundTrip(t, Offset(0), Offset(1), Offset(-1), Offset(math.MaxInt16), Offset(math.MinInt16))
	// Little endian
	value, err := Decode[Offset]([]byte{0x03, 0x02})
	require.NoError(t, err)
	require.Equal(t, Offset(515), value)
	require.Equal(t, []byte{0xfe, 0xff}, Encode(Offset(-2)))
}

func Test_Codec_U32(t *testing.T) {
	checkRoundTrip(t, U32(0), U32(1), U32(20), U32(math.MaxUint32))
	require.Equal(t, []byte{0x14, 0, 0, 0}, Encode(U32(20)))
}

func Test_Codec_U64(t *testing.T) {
	checkRoundTrip(t, U64(0), U64(1), U64(math.MaxUint32+1), U64(math.MaxUint64))
}

func Test_Codec_I32(t *testing.T) {
	checkRoundTrip(t, I32(0), I32(-1), I32(math.MaxInt32), I32(math.MinInt32))
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, Encode(I32(-1)))
}

func Test_Codec_I64(t *testing.T) {
	checkRoundTrip(t, I64(0), I64(-1), I64(math.MaxInt64), I64(math.MinInt64))
}

func Test_Codec_F32(t *testing.T) {
	checkFloatRoundTrip(t, 0, 1.5, -2.25, math.MaxFloat32, math.SmallestNonzeroFloat32, math.Inf(1), math.Inf(-1))
	// NaN payloads are preserved exactly
	var nan = F32(math.Float32frombits(0x7fc00123))
	//
	value, err := Decode[F32](Encode(nan))
	require.NoError(t, err)
	require.Equal(t, uint32(0x7fc00123), math.Float32bits(float32(value)))
}

func Test_Codec_F64(t *testing.T) {
	for _, f := range []float64{0, 1.5, -2.25, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1)} {
		value, err := Decode[F64](Encode(F64(f)))
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(f), math.Float64bits(float64(value)))
	}
	//
	value, err := Decode[F64](Encode(F64(math.NaN())))
	require.NoError(t, err)
	require.Equal(t, math.Float64bits(math.NaN()), math.Float64bits(float64(value)))
}

func Test_Codec_Bytes(t *testing.T) {
	checkRoundTrip(t, Bytes2{1, 2}, Bytes2{0xff, 0})
	checkRoundTrip(t, Bytes4{1, 2, 3, 4})
	checkRoundTrip(t, Bytes8{1, 2, 3, 4, 5, 6, 7, 8})
	checkRoundTrip(t, Bytes16{15: 0xff})
	checkRoundTrip(t, Bytes32{0: 1, 31: 0xff})
	require.Equal(t, uint(32), WidthOf[Bytes32]())
}

func Test_Codec_Widths(t *testing.T) {
	require.Equal(t, uint(1), WidthOf[Bool]())
	require.Equal(t, uint(1), WidthOf[Byte]())
	require.Equal(t, uint(2), WidthOf[Offset]())
	require.Equal(t, uint(4), WidthOf[U32]())
	require.Equal(t, uint(8), WidthOf[U64]())
	require.Equal(t, uint(4), WidthOf[I32]())
	require.Equal(t, uint(8), WidthOf[I64]())
	require.Equal(t, uint(4), WidthOf[F32]())
	require.Equal(t, uint(8), WidthOf[F64]())
}

func Test_Codec_Tuple_01(t *testing.T) {
	checkRoundTrip(t, Single[U32]{7}, Single[U32]{math.MaxUint32})
	checkRoundTrip(t, NewPair(Offset(-7), Offset(5)), NewPair(Offset(0), Offset(0)))
	checkRoundTrip(t, NewTriple(U32(5), U32(15), NewPair(Offset(0), Offset(0))))
	checkRoundTrip(t, Quad[Bool, Byte, I32, I64]{true, 0xab, math.MinInt32, math.MaxInt64})
	checkRoundTrip(t, Quint[Bool, Offset, U64, Bytes2, Byte]{false, -1, math.MaxUint64, Bytes2{9, 8}, 1})
}

func Test_Codec_Tuple_02(t *testing.T) {
	var tuple = NewTriple(U32(5), U32(15), NewPair(Offset(1), Offset(-2)))
	// Widths are summed, without padding
	require.Equal(t, uint(12), tuple.Width())
	// Members are laid out in declaration order
	require.Equal(t, []byte{5, 0, 0, 0, 15, 0, 0, 0, 1, 0, 0xfe, 0xff}, Encode(tuple))
}

func Test_Codec_Tuple_03(t *testing.T) {
	type nested = Pair[Pair[Byte, Offset], Triple[Bool, U32, Single[I32]]]
	//
	var value = nested{
		NewPair(Byte(1), Offset(-300)),
		NewTriple(Bool(true), U32(0xdeadbeef), Single[I32]{-5}),
	}
	//
	require.Equal(t, uint(1+2+1+4+4), value.Width())
	checkRoundTrip(t, value)
}

func Test_Codec_UnexpectedEnd(t *testing.T) {
	_, err := Decode[U32]([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrUnexpectedEnd)
	_, err = Decode[Offset](nil)
	require.ErrorIs(t, err, ErrUnexpectedEnd)
	_, err = Decode[Bool](nil)
	require.ErrorIs(t, err, ErrUnexpectedEnd)
	_, err = Decode[Bytes8]([]byte{1, 2, 3, 4, 5, 6, 7})
	require.ErrorIs(t, err, ErrUnexpectedEnd)
	// Tuples fail if any member would be truncated
	_, err = Decode[Triple[U32, U32, Pair[Offset, Offset]]](make([]byte, 11))
	require.ErrorIs(t, err, ErrUnexpectedEnd)
}

func Test_Codec_Tuple_Invalid(t *testing.T) {
	var src = []byte{1, 2, 0, 0, 0}
	// Failures of individual members are reported, even when enough bytes
	_, err := Decode[Pair[Byte, rejected]](src)
	require.ErrorIs(t, err, errRejected)
	_, err = Decode[Quint[Byte, Byte, rejected, Byte, Byte]](src)
	require.ErrorIs(t, err, errRejected)
	// Later members are not decoded after a failure
	_, err = Decode[Triple[rejected, U32, Offset]](src)
	require.ErrorIs(t, err, errRejected)
	require.NotErrorIs(t, err, ErrUnexpectedEnd)
}

func Test_Codec_DecodeIgnoresTrailing(t *testing.T) {
	var src = []byte{1, 0, 0, 0, 0xff, 0xff}
	//
	value, err := Decode[U32](src)
	require.NoError(t, err)
	require.Equal(t, U32(1), value)
}

func Test_Codec_EncodeIntoLargerBuffer(t *testing.T) {
	var dst = []byte{0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa}
	//
	Offset(0x0102).Encode(dst)
	//
	require.Equal(t, []byte{0x02, 0x01, 0xaa, 0xaa, 0xaa, 0xaa}, dst)
}

func checkRoundTrip[V interface {
	Value[V]
	comparable
}](t *testing.T, values ...V) {
	t.Helper()
	//
	for _, value := range values {
		bytes := Encode(value)
		require.Equal(t, int(value.Width()), len(bytes))
		//
		actual, err := Decode[V](bytes)
		require.NoError(t, err)
		require.Equal(t, value, actual)
	}
}

func checkFloatRoundTrip(t *testing.T, values ...float64) {
	t.Helper()
	//
	for _, f := range values {
		var value = F32(f)
		//
		actual, err := Decode[F32](Encode(value))
		require.NoError(t, err)
		require.Equal(t, math.Float32bits(float32(value)), math.Float32bits(float32(actual)))
	}
}

var errRejected = errors.New("rejected")

// rejected is a single byte value which never decodes.
type rejected struct{}

func (rejected) Width() uint { return 1 }

func (rejected) Decode(src []byte) (rejected, error) { return rejected{}, errRejected }

func (rejected) Encode(dst []byte) {}
