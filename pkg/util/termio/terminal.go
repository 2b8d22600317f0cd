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
package termio

import (
	"os"

	"golang.org/x/term"
)

// DEFAULT_WIDTH is the width assumed when output is not going to a terminal.
const DEFAULT_WIDTH = uint(80)

// IsTerminal checks whether a given file is attached to a terminal, in which
// case it makes sense to use ANSI escapes.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// Width determines the number of columns available for output to a given
// file.  If the file is not a terminal, or its size cannot be determined, then
// DEFAULT_WIDTH is returned.
func Width(file *os.File) uint {
	var fd = int(file.Fd())
	//
	if !term.IsTerminal(fd) {
		return DEFAULT_WIDTH
	} else if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		return uint(width)
	}
	//
	return DEFAULT_WIDTH
}
