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

import "fmt"

// Status indicates whether a machine is still executing or has terminated and,
// if so, how.
type Status uint8

const (
	// RUNNING indicates the machine can continue executing.  This is the
	// initial status of every machine.
	RUNNING Status = iota
	// HALTED indicates the machine terminated normally, because memory was
	// exhausted exactly at the point where the next opcode would be fetched.
	HALTED
	// FAULTED indicates the machine terminated abnormally, for example because
	// an operand was truncated or an integer division by zero occurred.
	FAULTED
)

// IsTerminated checks whether this status is terminal.
func (p Status) IsTerminated() bool {
	return p != RUNNING
}

func (p Status) String() string {
	switch p {
	case RUNNING:
		return "running"
	case HALTED:
		return "halted"
	case FAULTED:
		return "faulted"
	default:
		return fmt.Sprintf("status(%d)", uint8(p))
	}
}
