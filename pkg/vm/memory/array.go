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
package memory

import (
	"slices"

	"github.com/consensys/go-esolang/pkg/vm/codec"
)

// Array is an in-memory implementation of Memory backed by a growable byte
// slice.  Writes never fail, since storage is always extended to fit.  Storage
// is proportional to the highest address written, rather than to the range of
// addresses which can be reached.
type Array struct {
	pc   uint64
	data []byte
}

// NewArray constructs an Array with the cursor at address zero, holding a copy
// of the given initial contents.
func NewArray(init ...byte) *Array {
	return &Array{0, slices.Clone(init)}
}

// NewArrayAt constructs an Array over some given contents, with the cursor at a
// given position.  The array takes ownership of the contents.
func NewArrayAt(pc uint64, data []byte) *Array {
	return &Array{pc, data}
}

// PC implementation for Memory interface.
func (p *Array) PC() uint64 {
	return p.pc
}

// Len returns the number of bytes currently stored.
func (p *Array) Len() uint64 {
	return uint64(len(p.data))
}

// Fetch implementation for Memory interface.
func (p *Array) Fetch(dst []byte) (int, error) {
	var (
		width = uint64(len(dst))
		n     = available(p.pc, p.Len())
	)
	//
	if width > n {
		return int(n), codec.ErrUnexpectedEnd
	} else if width == 0 {
		return 0, nil
	}
	//
	copy(dst, p.data[p.pc:p.pc+width])
	p.pc += width
	//
	return int(width), nil
}

// Store implementation for Memory interface.
func (p *Array) Store(src []byte) error {
	var end = p.pc + uint64(len(src))
	//
	if len(src) == 0 {
		return nil
	} else if end > p.Len() {
		p.data = append(p.data, make([]byte, end-p.Len())...)
	}
	//
	copy(p.data[p.pc:end], src)
	//
	return nil
}

// Seek implementation for Memory interface.
func (p *Array) Seek(offset codec.Offset) error {
	pc, err := displace(p.pc, offset)
	//
	p.pc = pc
	//
	return err
}

// Contents implementation for Memory interface.  Observe that the returned
// slice aliases the backing storage.
func (p *Array) Contents() ([]byte, error) {
	return p.data, nil
}
