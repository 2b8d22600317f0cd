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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Table_01(t *testing.T) {
	var (
		table = NewTablePrinter(2, 2)
		buf   bytes.Buffer
	)
	//
	table.SetRow(0, "a", "bbb")
	table.SetRow(1, "cc", "d")
	//
	require.NoError(t, table.Print(&buf))
	require.Equal(t, "  a | bbb |\n cc |   d |\n", buf.String())
}

func Test_Table_02(t *testing.T) {
	var (
		table = NewTablePrinter(1, 1)
		buf   bytes.Buffer
	)
	//
	table.Set(0, 0, "abcdef")
	table.SetMaxWidth(0, 4)
	table.SetSeparator("")
	//
	require.NoError(t, table.Print(&buf))
	require.Equal(t, " ab..\n", buf.String())
}

func Test_Table_03(t *testing.T) {
	var (
		table = NewTablePrinter(1, 1)
		buf   bytes.Buffer
		style = Style{}.Bold().Fg(TERM_RED)
	)
	//
	table.Set(0, 0, "x")
	table.SetStyle(0, 0, style)
	table.SetSeparator("")
	//
	require.NoError(t, table.Print(&buf))
	require.Equal(t, "\033[1;31m x\033[0m\n", buf.String())
	// Escapes disabled
	buf.Reset()
	table.AnsiEscapes(false)
	require.NoError(t, table.Print(&buf))
	require.Equal(t, " x\n", buf.String())
}

func Test_Style_01(t *testing.T) {
	var style = Style{}
	//
	require.True(t, style.IsEmpty())
	require.Equal(t, "text", style.Apply("text"))
	require.Equal(t, "\033[4;44m", style.Underline().Bg(TERM_BLUE).String())
	// Extending a style does not modify the original
	require.True(t, style.IsEmpty())
}
