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
	"fmt"
	"strings"
)

// Colours understood by ANSI terminals.
const (
	TERM_BLACK = uint(iota)
	TERM_RED
	TERM_GREEN
	TERM_YELLOW
	TERM_BLUE
	TERM_MAGENTA
	TERM_CYAN
	TERM_WHITE
)

// Style represents a sequence of ANSI select graphic rendition (SGR) codes used
// for formatting text in a terminal.  The zero style applies no formatting.
type Style struct {
	codes []uint
}

// Bold returns this style extended with bold text.
func (p Style) Bold() Style {
	return p.with(1)
}

// Underline returns this style extended with underlined text.
func (p Style) Underline() Style {
	return p.with(4)
}

// Fg returns this style extended with a given foreground colour.
func (p Style) Fg(colour uint) Style {
	return p.with(30 + colour)
}

// Bg returns this style extended with a given background colour.
func (p Style) Bg(colour uint) Style {
	return p.with(40 + colour)
}

// IsEmpty checks whether this style applies any formatting at all.
func (p Style) IsEmpty() bool {
	return len(p.codes) == 0
}

// Apply wraps some text in this style, resetting the terminal afterwards.
func (p Style) Apply(text string) string {
	if p.IsEmpty() {
		return text
	}
	//
	return fmt.Sprintf("%s%s\033[0m", p.String(), text)
}

// String returns the escape sequence for this style.
func (p Style) String() string {
	var codes = make([]string, len(p.codes))
	//
	for i, c := range p.codes {
		codes[i] = fmt.Sprintf("%d", c)
	}
	//
	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";"))
}

func (p Style) with(code uint) Style {
	var codes = make([]uint, len(p.codes), len(p.codes)+1)
	//
	copy(codes, p.codes)
	//
	return Style{append(codes, code)}
}
