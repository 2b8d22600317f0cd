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
	"github.com/consensys/go-esolang/pkg/vm/instruction"
	"github.com/consensys/go-esolang/pkg/vm/memory"
	log "github.com/sirupsen/logrus"
)

// DEFAULT_CHUNK determines the number of steps executed between checks for
// termination when running a machine to completion.
const DEFAULT_CHUNK uint = 1024

// ExecuteAll drives a machine until it stops, asking for n steps at a time.  A
// request which comes back short means the machine halted or faulted.  The
// total number of steps is returned, along with the fault (if any).
func ExecuteAll[M Core](machine M, n uint) (uint, error) {
	var total uint
	//
	for {
		done, err := machine.Execute(n)
		total += done
		//
		if err != nil || done < n {
			return total, err
		}
	}
}

// ExecuteBounded executes a given machine in chunks of n steps until it either
// terminates or has executed at least limit steps, whichever comes first.  A
// limit of zero imposes no bound.  The final chunk is shortened so as not to
// exceed the limit.
func ExecuteBounded[M Core](machine M, n uint, limit uint) (uint, error) {
	var nsteps uint
	//
	if limit == 0 {
		return ExecuteAll(machine, n)
	}
	//
	for nsteps < limit {
		var chunk = min(n, limit-nsteps)
		//
		m, err := machine.Execute(chunk)
		nsteps += m
		//
		if err != nil || m < chunk {
			return nsteps, err
		}
	}
	//
	return nsteps, nil
}

// Core represents an executing machine which can be driven a bounded number of
// steps at a time.  A machine may be executing or terminated.
type Core interface {
	// Execute the machine for the given number of steps, returning the actual
	// number of steps executed and an error (if execution failed).
	Execute(steps uint) (uint, error)
	// Status of the machine.
	Status() Status
}

// Machine executes a program held in a memory.  Execution proceeds by
// repeatedly decoding the instruction at the cursor and executing it, until
// either the memory is exhausted exactly at an instruction boundary (halt) or
// some instruction fails (fault).  There is no state beyond the memory (and
// its cursor) other than the status and a tally of steps executed.
type Machine struct {
	memory memory.Memory
	status Status
	steps  uint64
	fault  *Fault
}

// New constructs a running machine over a given memory.  Execution begins at
// the memory's current cursor position.
func New(mem memory.Memory) *Machine {
	return &Machine{mem, RUNNING, 0, nil}
}

// Memory returns the memory over which this machine operates.
func (p *Machine) Memory() memory.Memory {
	return p.memory
}

// Status implementation for the Core interface.
func (p *Machine) Status() Status {
	return p.status
}

// Steps returns the number of instructions successfully executed so far.
func (p *Machine) Steps() uint64 {
	return p.steps
}

// Err returns the fault which terminated this machine, or nil if it has not
// faulted.
func (p *Machine) Err() error {
	if p.fault == nil {
		return nil
	}
	//
	return p.fault
}

// Step executes a single instruction.  If the machine is halted this does
// nothing, whilst if it is faulted the original fault is returned again.
func (p *Machine) Step() error {
	if p.status != RUNNING {
		return p.Err()
	}
	//
	var pc = p.memory.PC()
	// Fetch
	code, ok, err := instruction.Fetch(p.memory)
	//
	if err != nil {
		return p.faulted(pc, code, err)
	} else if !ok {
		log.Debugf("halted at 0x%x after %d steps", pc, p.steps)
		//
		p.status = HALTED
		//
		return nil
	}
	// Decode
	insn, err := instruction.DecodeOperands(code, p.memory)
	if err != nil {
		return p.faulted(pc, code, err)
	}
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("[%d] 0x%08x: %s", p.steps, pc, insn.String())
	}
	// Execute
	if err := insn.Execute(p.memory); err != nil {
		return p.faulted(pc, code, err)
	}
	//
	p.steps++
	//
	return nil
}

// Execute implementation for the Core interface.  Steps which halt the machine
// are not counted, hence fewer than the requested number of steps are reported
// once the machine terminates.
func (p *Machine) Execute(steps uint) (uint, error) {
	var nsteps uint
	//
	for nsteps < steps {
		if err := p.Step(); err != nil {
			return nsteps, err
		} else if p.status != RUNNING {
			break
		}
		//
		nsteps++
	}
	//
	return nsteps, nil
}

// Run this machine until it terminates, returning the number of steps executed
// and the fault (if it faulted).
func (p *Machine) Run() (uint, error) {
	return ExecuteAll(p, DEFAULT_CHUNK)
}

func (p *Machine) faulted(pc uint64, code instruction.Opcode, err error) error {
	p.status = FAULTED
	p.fault = &Fault{pc, code, err}
	//
	log.Debugf("faulted at 0x%x after %d steps: %s", pc, p.steps, err)
	//
	return p.fault
}
