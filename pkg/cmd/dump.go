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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-esolang/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] file",
	Short: "Print the contents of a program or checkpoint in hexadecimal.",
	Long: `Print the contents of a program (or the memory image held in a checkpoint) as a
table of hexadecimal bytes.  For checkpoints, the byte at the cursor is
highlighted.`,
	Args: cobra.ExactArgs(1),
	Run:  runDumpCmd,
}

func runDumpCmd(cmd *cobra.Command, args []string) {
	configure(cmd)
	//
	var (
		checkpoint = GetFlag(cmd, "from-checkpoint")
		columns    = GetUint(cmd, "columns")
		contents   []byte
		cursor     = -1
		err        error
	)
	//
	if checkpoint {
		ckpt, cerr := readCheckPoint(args[0])
		if cerr != nil {
			exit(EXIT_IO, cerr)
		}
		//
		contents, err = ckpt.Contents()
		cursor = int(ckpt.PC)
		//
		fmt.Printf("%s at 0x%x after %d steps\n", ckpt.Status, ckpt.PC, ckpt.Steps)
	} else {
		contents, err = os.ReadFile(args[0])
	}
	//
	if err != nil {
		exit(EXIT_IO, err)
	}
	//
	if columns == 0 {
		columns = dumpColumns(termio.Width(os.Stdout))
	}
	//
	log.Debugf("dumping %d bytes in rows of %d", len(contents), columns)
	//
	table := hexTable(contents, columns, cursor)
	table.AnsiEscapes(termio.IsTerminal(os.Stdout))
	//
	if err := table.Print(os.Stdout); err != nil {
		exit(EXIT_IO, err)
	}
}

// dumpColumns determines the largest number of bytes per row (from a fixed set
// of choices) which fits within a given terminal width.
func dumpColumns(width uint) uint {
	for _, n := range []uint{32, 16, 8} {
		// address + n bytes + ascii
		if 9+3*n+1+n <= width {
			return n
		}
	}
	//
	return 4
}

// hexTable constructs a table showing a given sequence of bytes, with a given
// number of bytes per row.  Each row begins with the address of its first byte
// and ends with the printable characters of its bytes.  The byte at the given
// cursor (if within range) is highlighted.
func hexTable(contents []byte, columns uint, cursor int) *termio.TablePrinter {
	var (
		nrows     = (uint(len(contents)) + columns - 1) / columns
		table     = termio.NewTablePrinter(columns+2, nrows)
		highlight = termio.Style{}.Bold().Fg(termio.TERM_YELLOW)
	)
	//
	table.SetSeparator("")
	//
	for row := uint(0); row < nrows; row++ {
		var (
			start = row * columns
			end   = min(start+columns, uint(len(contents)))
			ascii = make([]byte, end-start)
		)
		//
		table.Set(0, row, fmt.Sprintf("%08x", start))
		//
		for i := start; i < end; i++ {
			var b = contents[i]
			//
			table.Set(1+i-start, row, fmt.Sprintf("%02x", b))
			//
			if int(i) == cursor {
				table.SetStyle(1+i-start, row, highlight)
			}
			//
			if b >= 0x20 && b < 0x7f {
				ascii[i-start] = b
			} else {
				ascii[i-start] = '.'
			}
		}
		//
		table.Set(columns+1, row, fmt.Sprintf("%-*s", columns, ascii))
	}
	//
	return table
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().Bool("from-checkpoint", false, "treat the file as a checkpoint")
	dumpCmd.Flags().Uint("columns", 0, "number of bytes per row (0 to fit the terminal)")
}
