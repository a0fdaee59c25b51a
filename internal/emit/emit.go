/*
 * code128 - Codeword emitter.
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

// Package emit drives the single left-to-right pass that turns a
// resolved subset plan into the Code 128 codeword sequence, tracking
// the code-set latch and the FNC4 extended-regime state machine as it
// goes.
package emit

import (
	"strconv"
	"strings"

	"github.com/rcornwell/code128/internal/codepoint"
	"github.com/rcornwell/code128/internal/fplan"
	"github.com/rcornwell/code128/internal/subset"
	"github.com/rcornwell/code128/internal/tables"
)

// CompositeMode selects the 2D linkage flag appended after the data
// codewords, or OFF for a standalone linear symbol.
type CompositeMode int

const (
	CompositeOff CompositeMode = iota
	CompositeCCA
	CompositeCCB
	CompositeCCC
)

// InternalError reports an emitter state that should be unreachable
// given a correctly resolved subset plan.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "code128: internal invariant violation: " + e.Reason
}

// Result carries the emitted codeword sequence (excluding check and
// stop) plus a human readable trace of what was emitted and why.
type Result struct {
	Codewords []int
	Trace     string
}

// Options controls emitter behaviour that depends on dataType and
// symbol-level flags rather than on the per-position plan.
type Options struct {
	GS1           bool
	ReaderInit    bool
	CompositeMode CompositeMode
}

type state struct {
	currentSet subset.Final // LatchA, LatchB, or LatchC only.
	fstate     fplan.State  // LatchNormal or LatchExt only.
	codewords  []int
	trace      []string
}

func (s *state) emit(v int, label string) {
	s.codewords = append(s.codewords, v)
	if name, ok := tables.Names[v]; ok && label == "" {
		label = name
	}
	s.trace = append(s.trace, label+"("+strconv.Itoa(v)+")")
}

// isLatch reports whether set is a sustained code-set latch rather than
// a single-character shift. Only a latch changes s.currentSet; a bare
// ShiftA/ShiftB reaches one character in the other subset and then
// falls back, per ISO/IEC 15417's shift semantics.
func isLatch(set subset.Final) bool {
	switch set {
	case subset.LatchA, subset.LatchB, subset.LatchC:
		return true
	default:
		return false
	}
}

func setLatchCodeword(set subset.Final) int {
	switch set {
	case subset.LatchA:
		return tables.CodeA
	case subset.LatchB:
		return tables.CodeB
	default:
		return tables.CodeC
	}
}

func fnc4Codeword(set subset.Final) int {
	if set == subset.LatchA {
		return tables.FNC4UndA
	}
	return tables.FNC4UndB
}

// Emit walks one annotated position array and produces the codeword
// sequence, excluding the trailing check and stop codewords.
func Emit(code []int, subsetTag []subset.Final, fstates []fplan.State, opts Options) (*Result, error) {
	s := &state{}
	n := len(code)

	// Start code, chosen from the first position (or Start B for an
	// empty symbol, matching the boundary behaviour of a degenerate
	// input).
	startSet := subset.LatchB
	if n > 0 {
		startSet = subsetTag[0]
	}

	switch {
	case startSet == subset.LatchC && opts.ReaderInit:
		// Reader-init under Code C begins with a Start-B codeword,
		// not Start-C: see the ISO/IEC 15417 reader-init clause this
		// resolves (the source this was built from wrote a Start-C
		// module pattern but a Start-B checksum value here).
		s.currentSet = subset.LatchB
		s.emit(tables.StartB, "STARTB")
	case startSet == subset.LatchA:
		s.currentSet = subset.LatchA
		s.emit(tables.StartA, "STARTA")
	case startSet == subset.LatchC:
		s.currentSet = subset.LatchC
		s.emit(tables.StartC, "STARTC")
	default:
		s.currentSet = subset.LatchB
		s.emit(tables.StartB, "STARTB")
	}

	if opts.ReaderInit {
		s.emit(tables.FNC3, "FNC3")
		if startSet == subset.LatchC {
			s.emit(tables.CodeC, "CODEC")
			s.currentSet = subset.LatchC
		}
	}

	if opts.GS1 {
		s.emit(tables.FNC1, "FNC1")
	}

	if n > 0 && fstates[0] == fplan.LatchExt {
		s.emit(fnc4Codeword(s.currentSet), "FNC4")
		s.emit(fnc4Codeword(s.currentSet), "FNC4")
		s.fstate = fplan.LatchExt
	}

	for i := 0; i < n; {
		if i > 0 && isLatch(subsetTag[i]) && subsetTag[i] != s.currentSet {
			s.emit(setLatchCodeword(subsetTag[i]), "")
			s.currentSet = subsetTag[i]
		}

		if i > 0 {
			switch {
			case fstates[i] == fplan.LatchExt && s.fstate == fplan.LatchNormal:
				s.emit(fnc4Codeword(s.currentSet), "FNC4")
				s.emit(fnc4Codeword(s.currentSet), "FNC4")
				s.fstate = fplan.LatchExt
			case fstates[i] == fplan.LatchNormal && s.fstate == fplan.LatchExt:
				s.emit(fnc4Codeword(s.currentSet), "FNC4")
				s.emit(fnc4Codeword(s.currentSet), "FNC4")
				s.fstate = fplan.LatchNormal
			}
		}

		if fstates[i] == fplan.ShiftNormal || fstates[i] == fplan.ShiftExt {
			s.emit(fnc4Codeword(s.currentSet), "FNC4")
		}

		if subsetTag[i] == subset.ShiftA || subsetTag[i] == subset.ShiftB {
			s.emit(tables.Shift, "SHFT")
		}

		advance, err := s.emitData(code, i, subsetTag[i])
		if err != nil {
			return nil, err
		}
		i += advance
	}

	if opts.CompositeMode != CompositeOff {
		s.emit(linkageFlag(opts.CompositeMode, lastDataSet(subsetTag, s.currentSet)), "LINK")
	}

	return &Result{Codewords: s.codewords, Trace: strings.Join(s.trace, " ")}, nil
}

func lastDataSet(subsetTag []subset.Final, fallback subset.Final) subset.Final {
	if len(subsetTag) == 0 {
		return fallback
	}
	last := subsetTag[len(subsetTag)-1]
	switch last {
	case subset.ShiftA:
		return subset.LatchA
	case subset.ShiftB:
		return subset.LatchB
	default:
		return last
	}
}

func linkageFlag(mode CompositeMode, endSet subset.Final) int {
	switch mode {
	case CompositeCCC:
		switch endSet {
		case subset.LatchA:
			return tables.CodeC // 99
		case subset.LatchB:
			return tables.CodeA // 101
		default:
			return tables.CodeB // 100
		}
	default: // CCA, CCB
		switch endSet {
		case subset.LatchA:
			return tables.CodeB // 100
		case subset.LatchB:
			return tables.CodeC // 99
		default:
			return tables.CodeA // 101
		}
	}
}

// emitData emits the data codeword(s) for position i and returns how
// many input positions were consumed.
func (s *state) emitData(code []int, i int, set subset.Final) (int, error) {
	v := code[i]

	if set == subset.LatchC {
		if codepoint.IsFNC(v) {
			if v != codepoint.FNC1 {
				return 0, &InternalError{Reason: "non-FNC1 placeholder inside Code C"}
			}
			s.emit(tables.FNC1, "FNC1")
			return 1, nil
		}
		if i+1 >= len(code) || !isDigit(code[i+1]) || !isDigit(v) {
			return 0, &InternalError{Reason: "Code C position is not a digit pair"}
		}
		pair := 10*(v-'0') + (code[i+1] - '0')
		s.emit(pair, "")
		return 2, nil
	}

	isA := set == subset.ShiftA || set == subset.LatchA
	codeword, err := dataCodeword(v, isA)
	if err != nil {
		return 0, err
	}
	s.emit(codeword, "")
	return 1, nil
}

func isDigit(v int) bool {
	return v >= '0' && v <= '9'
}

func dataCodeword(v int, underA bool) (int, error) {
	switch v {
	case codepoint.FNC1:
		return tables.FNC1, nil
	case codepoint.FNC2:
		return tables.FNC2, nil
	case codepoint.FNC3:
		return tables.FNC3, nil
	case codepoint.FNC4:
		if underA {
			return tables.FNC4UndA, nil
		}
		return tables.FNC4UndB, nil
	}

	if underA {
		switch {
		case v >= 0 && v <= 31:
			return v + 64, nil
		case v >= 32 && v <= 95:
			return v - 32, nil
		case v >= 128 && v <= 159:
			return (v - 128) + 64, nil
		case v >= 160 && v <= 255:
			return v - 160, nil
		default:
			return 0, &InternalError{Reason: "code point unreachable under subset A"}
		}
	}

	switch {
	case v >= 32 && v <= 127:
		return v - 32, nil
	case v >= 160 && v <= 255:
		return v - 32 - 128, nil
	default:
		return 0, &InternalError{Reason: "code point unreachable under subset B"}
	}
}
