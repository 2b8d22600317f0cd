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

// Bytes2 is a fixed-size array of 2 raw bytes.
type Bytes2 [2]byte

// Width implementation for Value interface.
func (Bytes2) Width() uint {
	return 2
}

// Decode implementation for Value interface.
func (Bytes2) Decode(src []byte) (Bytes2, error) {
	var bytes Bytes2
	//
	if err := checkWidth(src, 2); err != nil {
		return bytes, err
	}
	//
	copy(bytes[:], src)
	//
	return bytes, nil
}

// Encode implementation for Value interface.
func (p Bytes2) Encode(dst []byte) {
	copy(dst[:2], p[:])
}

// Bytes4 is a fixed-size array of 4 raw bytes.
type Bytes4 [4]byte

// Width implementation for Value interface.
func (Bytes4) Width() uint {
	return 4
}

// Decode implementation for Value interface.
func (Bytes4) Decode(src []byte) (Bytes4, error) {
	var bytes Bytes4
	//
	if err := checkWidth(src, 4); err != nil {
		return bytes, err
	}
	//
	copy(bytes[:], src)
	//
	return bytes, nil
}

// Encode implementation for Value interface.
func (p Bytes4) Encode(dst []byte) {
	copy(dst[:4], p[:])
}

// Bytes8 is a fixed-size array of 8 raw bytes.
type Bytes8 [8]byte

// Width implementation for Value interface.
func (Bytes8) Width() uint {
	return 8
}

// Decode implementation for Value interface.
func (Bytes8) Decode(src []byte) (Bytes8, error) {
	var bytes Bytes8
	//
	if err := checkWidth(src, 8); err != nil {
		return bytes, err
	}
	//
	copy(bytes[:], src)
	//
	return bytes, nil
}

// Encode implementation for Value interface.
func (p Bytes8) Encode(dst []byte) {
	copy(dst[:8], p[:])
}

// Bytes16 is a fixed-size array of 16 raw bytes.
type Bytes16 [16]byte

// Width implementation for Value interface.
func (Bytes16) Width() uint {
	return 16
}

// Decode implementation for Value interface.
func (Bytes16) Decode(src []byte) (Bytes16, error) {
	var bytes Bytes16
	//
	if err := checkWidth(src, 16); err != nil {
		return bytes, err
	}
	//
	copy(bytes[:], src)
	//
	return bytes, nil
}

// Encode implementation for Value interface.
func (p Bytes16) Encode(dst []byte) {
	copy(dst[:16], p[:])
}

// Bytes32 is a fixed-size array of 32 raw bytes.
type Bytes32 [32]byte

// Width implementation for Value interface.
func (Bytes32) Width() uint {
	return 32
}

// Decode implementation for Value interface.
func (Bytes32) Decode(src []byte) (Bytes32, error) {
	var bytes Bytes32
	//
	if err := checkWidth(src, 32); err != nil {
		return bytes, err
	}
	//
	copy(bytes[:], src)
	//
	return bytes, nil
}

// Encode implementation for Value interface.
func (p Bytes32) Encode(dst []byte) {
	copy(dst[:32], p[:])
}
