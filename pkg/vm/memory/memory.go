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
	"errors"
	"fmt"
	"math"

	"github.com/consensys/go-esolang/pkg/vm/codec"
)

// ErrAddressUnderflow is returned when the cursor is moved before the start of
// memory.
var ErrAddressUnderflow = errors.New("address underflow")

// ErrIO indicates a failure of the storage underlying a memory (e.g. a file
// could not be read or written).
var ErrIO = errors.New("i/o failure")

// Memory represents a cursor-addressed byte store.  The cursor (a.k.a the
// program counter) identifies the position at which the next read or write
// takes place.  Reads advance the cursor, whilst writes leave it unchanged.
// Storage grows on demand: writing beyond the current end first extends the
// store with zero bytes.  Reading beyond the current end, however, never grows
// the store and fails instead.
//
// Methods are defined over bytes.  Typed access is provided by Read,
// ReadIfPresent and Write, which encode and decode values using the codec.
type Memory interface {
	// PC returns the current position of the cursor.
	PC() uint64
	// Len returns the number of bytes currently stored.
	Len() uint64
	// Fetch copies len(dst) bytes starting at the cursor into dst, and advances
	// the cursor accordingly.  If fewer bytes are stored, this returns the
	// number of bytes which were available along with codec.ErrUnexpectedEnd,
	// and the cursor is not moved.
	Fetch(dst []byte) (int, error)
	// Store writes src at the cursor, growing storage first if necessary.  The
	// cursor is not moved.  Storing nothing has no effect, even beyond the end.
	Store(src []byte) error
	// Seek moves the cursor by a signed offset.  Moving before address zero
	// fails with ErrAddressUnderflow.
	Seek(offset codec.Offset) error
	// Contents returns the entire store as a flat sequence of bytes, which is
	// the same format a program is loaded from.
	Contents() ([]byte, error)
}

// Read a value of the given type from the cursor, advancing the cursor by its
// width.  Reading past the end of memory fails with codec.ErrUnexpectedEnd.
func Read[V codec.Value[V]](memory Memory) (V, error) {
	var (
		value V
		bytes = make([]byte, value.Width())
	)
	//
	if _, err := memory.Fetch(bytes); err != nil {
		return value, err
	}
	//
	return value.Decode(bytes)
}

// ReadIfPresent is the same as Read, except that reaching the end of memory
// exactly at the cursor is not considered an error.  Instead, false is returned
// to indicate that no value was present.  A value which is only partially
// present remains an error.
func ReadIfPresent[V codec.Value[V]](memory Memory) (V, bool, error) {
	var (
		value V
		bytes = make([]byte, value.Width())
	)
	//
	n, err := memory.Fetch(bytes)
	//
	switch {
	case err == nil:
	case !errors.Is(err, codec.ErrUnexpectedEnd):
		return value, false, err
	case n == 0:
		return value, false, nil
	default:
		return value, false, fmt.Errorf("truncated read at 0x%x (%d of %d bytes): %w", memory.PC(), n,
			value.Width(), err)
	}
	//
	value, err = value.Decode(bytes)
	//
	return value, err == nil, err
}

// Write a value at the cursor, without moving the cursor.
func Write(memory Memory, value codec.Encoder) error {
	return memory.Store(codec.Encode(value))
}

// ReadBytes reads n raw bytes from the cursor, advancing the cursor by n.  No
// storage is allocated unless all n bytes are present.
func ReadBytes(memory Memory, n uint) ([]byte, error) {
	if uint64(n) > available(memory.PC(), memory.Len()) {
		return nil, codec.ErrUnexpectedEnd
	}
	//
	var bytes = make([]byte, n)
	//
	if _, err := memory.Fetch(bytes); err != nil {
		return nil, err
	}
	//
	return bytes, nil
}

// SeekBy moves the cursor by an arbitrary displacement, which may exceed the
// range of a single Offset.  This is done as a sequence of seeks, each within
// range.
func SeekBy(memory Memory, delta int64) error {
	for delta != 0 {
		var step = min(max(delta, math.MinInt16), math.MaxInt16)
		//
		if err := memory.Seek(codec.Offset(step)); err != nil {
			return err
		}
		//
		delta -= step
	}
	//
	return nil
}

// displace applies a signed offset to a cursor position.
func displace(pc uint64, offset codec.Offset) (uint64, error) {
	var target = int64(pc) + int64(offset)
	//
	if target < 0 {
		return pc, fmt.Errorf("%w: seek by %d from 0x%x", ErrAddressUnderflow, offset, pc)
	}
	//
	return uint64(target), nil
}

// available returns the number of bytes stored at or after the cursor.
func available(pc uint64, size uint64) uint64 {
	if pc >= size {
		return 0
	}
	//
	return size - pc
}
