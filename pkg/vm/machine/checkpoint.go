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
package machine

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/consensys/go-esolang/pkg/vm/memory"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"lukechampine.com/blake3"
)

// ErrCorruptCheckPoint is returned when restoring a checkpoint whose memory
// image does not match its recorded digest, or whose contents are otherwise
// invalid.
var ErrCorruptCheckPoint = errors.New("corrupt checkpoint")

// ErrFaultedCheckPoint is returned when attempting to capture a checkpoint of a
// faulted machine.
var ErrFaultedCheckPoint = errors.New("cannot checkpoint faulted machine")

var (
	cborEncMode cbor.EncMode
	encoder     *zstd.Encoder
	decoder     *zstd.Decoder
)

func init() {
	var err error
	//
	if cborEncMode, err = cbor.CanonicalEncOptions().EncMode(); err != nil {
		panic(fmt.Sprintf("machine: failed to create CBOR enc mode: %v", err))
	} else if encoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression)); err != nil {
		panic(fmt.Sprintf("machine: failed to create zstd encoder: %v", err))
	} else if decoder, err = zstd.NewReader(nil); err != nil {
		panic(fmt.Sprintf("machine: failed to create zstd decoder: %v", err))
	}
}

// CheckPoint is a snapshot of a machine taken between two steps, from which a
// fresh machine can pick up where the old one stopped.  A machine has no state
// outside its memory except the cursor, the status and the step tally, so the
// snapshot holds exactly these plus the memory image.  The image is stored
// zstd-compressed, alongside a blake3 digest of its uncompressed form against
// which it is checked on restore.
type CheckPoint struct {
	// Cursor position at the time of capture.
	PC uint64
	// Number of steps executed at the time of capture.
	Steps uint64
	// Status at the time of capture (never FAULTED).
	Status Status
	// Compressed memory image.
	Image []byte
	// Digest of the uncompressed memory image.
	Digest []byte
}

// wire is the serialised form of a checkpoint.
type wire struct {
	PC     uint64 `cbor:"1,keyasint"`
	Steps  uint64 `cbor:"2,keyasint"`
	Status uint8  `cbor:"3,keyasint"`
	Image  []byte `cbor:"4,keyasint"`
	Digest []byte `cbor:"5,keyasint"`
}

// Capture a checkpoint of a given machine.  The machine must not have faulted,
// as there is nothing meaningful from which to continue.
func Capture(machine *Machine) (*CheckPoint, error) {
	if machine.status == FAULTED {
		return nil, fmt.Errorf("%w: %w", ErrFaultedCheckPoint, machine.Err())
	}
	//
	image, err := machine.memory.Contents()
	if err != nil {
		return nil, err
	}
	//
	var digest = blake3.Sum256(image)
	//
	return &CheckPoint{
		PC:     machine.memory.PC(),
		Steps:  machine.steps,
		Status: machine.status,
		Image:  encoder.EncodeAll(image, nil),
		Digest: digest[:],
	}, nil
}

// MarshalBinary converts this checkpoint into a canonical sequence of bytes.
func (p *CheckPoint) MarshalBinary() ([]byte, error) {
	return cborEncMode.Marshal(wire{p.PC, p.Steps, uint8(p.Status), p.Image, p.Digest})
}

// UnmarshalBinary initialises this checkpoint from a sequence of bytes
// previously produced by MarshalBinary.
func (p *CheckPoint) UnmarshalBinary(data []byte) error {
	var w wire
	//
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptCheckPoint, err)
	} else if Status(w.Status) >= FAULTED {
		return fmt.Errorf("%w: invalid status %s", ErrCorruptCheckPoint, Status(w.Status))
	}
	//
	*p = CheckPoint{w.PC, w.Steps, Status(w.Status), w.Image, w.Digest}
	//
	return nil
}

// ValidFor returns the number of execution steps for which this checkpoint is
// valid.  Since checkpoints retain the entire memory image, they are valid for
// all remaining steps.
func (p *CheckPoint) ValidFor() uint64 {
	return math.MaxUint64
}

// Contents returns the uncompressed memory image held in this checkpoint, after
// checking it against the recorded digest.
func (p *CheckPoint) Contents() ([]byte, error) {
	var image []byte
	// Empty images compress to nothing
	if len(p.Image) > 0 {
		var err error
		//
		if image, err = decoder.DecodeAll(p.Image, nil); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptCheckPoint, err)
		}
	}
	//
	var digest = blake3.Sum256(image)
	//
	if !bytes.Equal(digest[:], p.Digest) {
		return nil, fmt.Errorf("%w: digest mismatch", ErrCorruptCheckPoint)
	}
	//
	return image, nil
}

// Restore a machine from this checkpoint, such that it continues execution from
// exactly where the original left off.  The restored machine operates over an
// in-memory array.
func (p *CheckPoint) Restore() (*Machine, error) {
	image, err := p.Contents()
	if err != nil {
		return nil, err
	}
	//
	return &Machine{memory.NewArrayAt(p.PC, image), p.Status, p.Steps, nil}, nil
}
