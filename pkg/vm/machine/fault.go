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
	"errors"
	"fmt"

	"github.com/consensys/go-esolang/pkg/vm/codec"
	"github.com/consensys/go-esolang/pkg/vm/instruction"
	"github.com/consensys/go-esolang/pkg/vm/memory"
)

// Fault describes the abnormal termination of a machine.  It records where the
// failing instruction started, along with its opcode and the underlying cause.
type Fault struct {
	// Position of the failing instruction's opcode.
	PC uint64
	// Opcode of the failing instruction.
	Opcode instruction.Opcode
	// Underlying cause.
	Err error
}

func (p *Fault) Error() string {
	return fmt.Sprintf("fault at 0x%x (%s): %s", p.PC, p.Opcode, p.Err)
}

// Unwrap provides access to the underlying cause, such that errors.Is can be
// used to classify faults.
func (p *Fault) Unwrap() error {
	return p.Err
}

// IsArithmetic checks whether a given error arose from an arithmetic failure,
// such as integer division by zero.
func IsArithmetic(err error) bool {
	return errors.Is(err, instruction.ErrDivisionByZero)
}

// IsTruncated checks whether a given error arose from an instruction whose
// operands (or source bytes) extended beyond the end of memory.
func IsTruncated(err error) bool {
	return errors.Is(err, codec.ErrUnexpectedEnd)
}

// IsIO checks whether a given error arose from a failure of the storage
// backing memory.
func IsIO(err error) bool {
	return errors.Is(err, memory.ErrIO)
}

// IsUnderflow checks whether a given error arose from an attempt to move the
// cursor before the start of memory.
func IsUnderflow(err error) bool {
	return errors.Is(err, memory.ErrAddressUnderflow)
}
