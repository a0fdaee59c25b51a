/*
 * code128 - Checksum and row framing.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package checksum computes the weighted modulo-103 check codeword
// and materializes the final module-width pattern rows.
package checksum

import "github.com/rcornwell/code128/internal/tables"

// Compute returns the weighted modulo-103 check value over codewords,
// which must not itself include the check or stop codewords.
func Compute(codewords []int) int {
	if len(codewords) == 0 {
		return 0
	}
	sum := codewords[0]
	for i := 1; i < len(codewords); i++ {
		sum += i * codewords[i]
	}
	return sum % 103
}

// Row is one printable module-width pattern plus its renderer height
// hint. Height -1 means "renderer default".
type Row struct {
	Pattern string
	Height  int
}

// defaultHeight is the renderer-default sentinel described in the
// symbol's public contract.
const defaultHeight = -1

// separatorHeight is the fixed height of the thin white separator row
// placed above a linear component that carries a 2D composite.
const separatorHeight = 1

// Frame appends the check and stop codewords to codewords, looks up
// the module-width pattern for each resulting value, and lays out the
// one or two result rows depending on composite linkage. It returns
// the completed codeword sequence (including check and stop) alongside
// the rows.
func Frame(codewords []int, composite bool) (full []int, rows []Row) {
	check := Compute(codewords)
	full = make([]int, 0, len(codewords)+2)
	full = append(full, codewords...)
	full = append(full, check, tables.Stop)

	buf := make([]byte, 0, 6*len(full))
	for _, cw := range full {
		buf = append(buf, tables.Widths[cw]...)
	}
	pattern := string(buf)

	if !composite {
		return full, []Row{{Pattern: pattern, Height: defaultHeight}}
	}

	return full, []Row{
		{Pattern: "0" + pattern, Height: separatorHeight},
		{Pattern: pattern, Height: defaultHeight},
	}
}
