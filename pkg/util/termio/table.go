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
	"io"
)

// TablePrinter is useful for printing tables to the terminal.  Columns are
// right aligned and sized to fit their widest cell, subject to an optional
// maximum width beyond which cells are truncated.
type TablePrinter struct {
	widths    []uint
	rows      [][]string
	styles    [][]Style
	separator string
	escapes   bool
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	var (
		rows   = make([][]string, height)
		styles = make([][]Style, height)
	)
	//
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		styles[i] = make([]Style, width)
	}
	//
	return &TablePrinter{make([]uint, width), rows, styles, " |", true}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Width returns the number of columns in this table.
func (p *TablePrinter) Width() uint {
	return uint(len(p.widths))
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetStyle sets the style used when printing the contents of a given cell.
func (p *TablePrinter) SetStyle(col uint, row uint, style Style) {
	p.styles[row][col] = style
}

// SetSeparator sets the string printed after each column.
func (p *TablePrinter) SetSeparator(separator string) {
	p.separator = separator
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Escapes should be disabled when output is not going to a terminal.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.escapes = enable
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	for i, val := range vals {
		p.Set(uint(i), row, val)
	}
}

// SetMaxWidth puts an upper bound on the width of a given column.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], width)
}

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) error {
	for i, row := range p.rows {
		for j, cell := range row {
			var width = p.widths[j]
			// Truncate (if applicable)
			if uint(len(cell)) > width && width > 2 {
				cell = cell[0:width-2] + ".."
			} else if uint(len(cell)) > width {
				cell = cell[0:width]
			}
			//
			cell = fmt.Sprintf(" %*s", width, cell)
			//
			if p.escapes {
				cell = p.styles[i][j].Apply(cell)
			}
			//
			if _, err := fmt.Fprint(out, cell, p.separator); err != nil {
				return err
			}
		}
		//
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	//
	return nil
}
