/*
 * code128 - Public encoder API.
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

// Package code128 implements the core of an ISO/IEC 15417 Code 128
// barcode encoder: given a string and a set of symbology options it
// produces the codeword sequence and the module-width bar pattern a
// renderer paints, but does no rendering, layout, or I/O of its own.
//
// GS1-128 (ISO/IEC 24723) bracket notation and composite-symbol
// linkage flags are supported; decoding is out of scope.
package code128

import (
	"github.com/rcornwell/code128/internal/checksum"
	"github.com/rcornwell/code128/internal/codepoint"
	"github.com/rcornwell/code128/internal/emit"
	"github.com/rcornwell/code128/internal/fplan"
	"github.com/rcornwell/code128/internal/subset"
)

// DataType selects how the input content is interpreted before the
// subset planner ever sees it.
type DataType int

const (
	Generic DataType = iota
	GS1
	HIBC
)

// Composite selects the 2D-component linkage flag appended to the
// linear symbol, or Off for a standalone Code 128 symbol.
type Composite int

const (
	CompositeOff Composite = iota
	CompositeCCA
	CompositeCCB
	CompositeCCC
)

// Reserved function placeholders. Callers building content that needs
// an explicit FNC2/FNC3/FNC4 (or an FNC1 outside of GS1 bracket
// notation) embed these rune values directly in the input string.
const (
	FNC1 = rune(codepoint.FNC1)
	FNC2 = rune(codepoint.FNC2)
	FNC3 = rune(codepoint.FNC3)
	FNC4 = rune(codepoint.FNC4)
)

// Options controls how content is encoded. The zero value is Generic
// data with no reader initialization, no composite linkage, and
// Subset C enabled.
type Options struct {
	DataType         DataType
	ReaderInit       bool
	Composite        Composite
	ModeCSuppression bool
}

// Symbol is the result of a successful Encode call: the module-width
// bar pattern rows a renderer paints, plus the text a renderer might
// print beneath them.
type Symbol struct {
	// Patterns holds one bar-pattern row per printed row. Each digit
	// is a run of that many modules, alternating bar (even index) and
	// space (odd index), starting with a bar. Digits are '1'..'9',
	// except that a composite separator row begins with a '0'.
	Patterns []string
	// RowHeights runs parallel to Patterns. -1 means "use the
	// renderer's default row height"; positive values are module
	// units.
	RowHeights []int
	// Readable is the human-readable text line, or empty for GS1 data.
	Readable string
	// EncodeInfo is an opaque debugging trace of the codewords this
	// symbol encodes. Its formatting is not part of the contract.
	EncodeInfo string
}

// RowCount returns the number of rows in the symbol.
func (s *Symbol) RowCount() int {
	return len(s.Patterns)
}

func compositeMode(c Composite) emit.CompositeMode {
	switch c {
	case CompositeCCA:
		return emit.CompositeCCA
	case CompositeCCB:
		return emit.CompositeCCB
	case CompositeCCC:
		return emit.CompositeCCC
	default:
		return emit.CompositeOff
	}
}

// Encode runs the five-stage pipeline: normalize content into the internal code-point alphabet,
// plan the FNC4 extended regime, plan the A/B/C subset for every
// position, emit codewords, then compute the checksum and materialize
// the printable pattern rows.
func Encode(content string, opts Options) (*Symbol, error) {
	runes := []rune(content)

	code, err := codepoint.Normalize(runes, opts.DataType == GS1)
	if err != nil {
		return nil, classify(err)
	}

	fstates := fplan.Plan(code)

	subsetTag, err := subset.Plan(code, fstates, opts.ModeCSuppression)
	if err != nil {
		return nil, classify(err)
	}

	result, err := emit.Emit(code, subsetTag, fstates, emit.Options{
		GS1:           opts.DataType == GS1,
		ReaderInit:    opts.ReaderInit,
		CompositeMode: compositeMode(opts.Composite),
	})
	if err != nil {
		return nil, classify(err)
	}

	_, rows := checksum.Frame(result.Codewords, opts.Composite != CompositeOff)

	patterns := make([]string, len(rows))
	heights := make([]int, len(rows))
	for i, r := range rows {
		patterns[i] = r.Pattern
		heights[i] = r.Height
	}

	readable := ""
	if opts.DataType != GS1 {
		readable = codepoint.StripFNC(runes)
		if opts.DataType == HIBC {
			readable = "*" + readable + "*"
		}
	}

	return &Symbol{
		Patterns:   patterns,
		RowHeights: heights,
		Readable:   readable,
		EncodeInfo: result.Trace,
	}, nil
}
