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
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats captures a snapshot of the time and memory used so far, such that
// the cost of some subsequent computation can be reported.
type PerfStats struct {
	// Time of snapshot
	start time.Time
	// Total bytes allocated at snapshot
	alloc uint64
	// Number of gc events at snapshot
	gcs uint32
}

// NewPerfStats takes a snapshot of the current time and memory allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Log reports (at debug level) the resources used since the snapshot, along
// with the rate at which a given number of steps were executed.
func (p *PerfStats) Log(prefix string, steps uint) {
	var m runtime.MemStats
	//
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	//
	runtime.ReadMemStats(&m)
	//
	var (
		elapsed = time.Since(p.start).Seconds()
		alloc   = (m.TotalAlloc - p.alloc) / 1024 / 1024
		rate    = float64(steps)
	)
	//
	if elapsed > 0 {
		rate /= elapsed
	}
	//
	log.Debugf("%s took %0.2fs using %v Mb (%v GC events) at %0.0f steps/s", prefix, elapsed, alloc,
		m.NumGC-p.gcs, rate)
}
