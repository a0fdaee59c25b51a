/*
 * code128 - Subset (A/B/C) planner.
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

// Package subset runs the ISO/IEC 15417 Annex E subset-selection
// heuristic: classify each code point's candidate subsets, compress
// into runs, reduce the runs to a single A/B/C decision per run, fix
// up odd-length Subset C blocks, and bound the resulting codeword
// count.
package subset

import (
	"fmt"

	"github.com/rcornwell/code128/internal/codepoint"
	"github.com/rcornwell/code128/internal/fplan"
)

// Candidate is the intrinsic subset candidacy of a code point before
// context (Annex E) disambiguates it.
type Candidate int

const (
	CandShiftA Candidate = iota // A-only: controls, or extended-A.
	CandShiftB                  // B-only: 96..127, or extended-B.
	CandAorB                    // Printable ASCII common to A and B.
	CandAorBorC                 // Digits and FNC1: may also pack into C.
)

// Final is the fully resolved per-position subset tag the emitter
// consumes. No ambiguous candidate tags survive into this type.
type Final int

const (
	ShiftA Final = iota
	LatchA
	ShiftB
	LatchB
	LatchC
)

func (f Final) String() string {
	switch f {
	case ShiftA:
		return "ShiftA"
	case LatchA:
		return "LatchA"
	case ShiftB:
		return "ShiftB"
	case LatchB:
		return "LatchB"
	case LatchC:
		return "LatchC"
	default:
		return "Final(?)"
	}
}

// TooLongError reports that the projected codeword count exceeds the
// 80 symbol limit (exclusive of check and stop).
type TooLongError struct {
	Projected float64
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("code128: projected codeword count %.1f exceeds 80", e.Projected)
}

// InternalError reports a planner state that should be unreachable.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "code128: internal invariant violation: " + e.Reason
}

// classify implements findSubset, Step A of the planner.
func classify(v int, modeCSuppression bool) Candidate {
	switch v {
	case codepoint.FNC1:
		if modeCSuppression {
			return CandAorB
		}
		return CandAorBorC
	case codepoint.FNC2, codepoint.FNC3, codepoint.FNC4:
		return CandAorB
	}
	switch {
	case v >= 0 && v <= 31:
		return CandShiftA
	case v >= 48 && v <= 57:
		if modeCSuppression {
			return CandAorB
		}
		return CandAorBorC
	case v >= 32 && v <= 95:
		return CandAorB
	case v >= 96 && v <= 127:
		return CandShiftB
	case v >= 128 && v <= 159:
		return CandShiftA
	case v >= 160 && v <= 223:
		return CandAorB
	case v >= 224 && v <= 255:
		return CandShiftB
	default:
		return CandAorB
	}
}

type run struct {
	cand   Candidate
	start  int
	length int
}

// compress implements Step B: collapse equal-candidate neighbours.
func compress(code []int, modeCSuppression bool) []run {
	var runs []run
	for i, v := range code {
		c := classify(v, modeCSuppression)
		if len(runs) > 0 && runs[len(runs)-1].cand == c {
			runs[len(runs)-1].length++
			continue
		}
		runs = append(runs, run{cand: c, start: i, length: 1})
	}
	return runs
}

// reduce implements Step C: resolve each run's candidate tag into a
// Final tag using its position, its predecessor's resolved tag, and
// its successor's original candidate tag.
func reduce(runs []run) []Final {
	n := len(runs)
	finals := make([]Final, n)

	for idx := range runs {
		cand := runs[idx].cand
		length := runs[idx].length

		var nextCand Candidate
		hasNext := idx+1 < n
		if hasNext {
			nextCand = runs[idx+1].cand
		}

		if idx == 0 {
			if cand == CandAorBorC {
				if (n == 1 && length == 2) || length >= 4 {
					finals[idx] = LatchC
					continue
				}
				cand = CandAorB
			}
			switch cand {
			case CandShiftA:
				finals[idx] = LatchA
			case CandAorB:
				if hasNext && nextCand == CandShiftA {
					finals[idx] = LatchA
				} else {
					finals[idx] = LatchB
				}
			case CandShiftB:
				// Left as a bare shift; Step F promotes it if it
				// really does end up anchoring the start code.
				finals[idx] = ShiftB
			}
			continue
		}

		prev := finals[idx-1]

		if cand == CandAorBorC {
			if length >= 4 {
				finals[idx] = LatchC
				continue
			}
			cand = CandAorB
		}

		switch cand {
		case CandAorB:
			switch {
			case prev == LatchA:
				finals[idx] = LatchA
			case prev == LatchB:
				finals[idx] = LatchB
			case hasNext && nextCand == CandShiftA:
				finals[idx] = LatchA
			default:
				finals[idx] = LatchB
			}
		case CandShiftA:
			if length > 1 {
				finals[idx] = LatchA
				continue
			}
			if prev == LatchA || prev == LatchC || (hasNext && nextCand == CandAorB) {
				finals[idx] = LatchA
			} else {
				finals[idx] = ShiftA
			}
		case CandShiftB:
			if length > 1 {
				finals[idx] = LatchB
				continue
			}
			if prev == LatchB || prev == LatchC || (hasNext && nextCand == CandAorB) {
				finals[idx] = LatchB
			} else {
				finals[idx] = ShiftB
			}
		}
	}
	return finals
}

// expand implements Step D: spread the per-run Final tags over a
// per-position array.
func expand(runs []run, finals []Final) []Final {
	n := 0
	for _, r := range runs {
		n += r.length
	}
	out := make([]Final, n)
	for idx, r := range runs {
		for i := r.start; i < r.start+r.length; i++ {
			out[i] = finals[idx]
		}
	}
	return out
}

// resolveOddBlocks implements Step E: every maximal LatchC block must
// span an even number of digits. An odd block donates one digit to
// its neighbour: the first LatchC block of the symbol from its end,
// every later LatchC block from its start.
func resolveOddBlocks(subsetTag []Final, code []int) {
	n := len(subsetTag)
	blockIndex := 0
	for i := 0; i < n; {
		if subsetTag[i] != LatchC {
			i++
			continue
		}
		start := i
		for i < n && subsetTag[i] == LatchC {
			i++
		}
		end := i

		digits := []int{}
		for p := start; p < end; p++ {
			if isDigit(code[p]) {
				digits = append(digits, p)
			}
		}
		if len(digits)%2 != 0 {
			first := blockIndex == 0
			var donate int
			var replacement Final
			if first {
				donate = digits[len(digits)-1]
				if end < n {
					replacement = subsetTag[end]
				} else {
					replacement = LatchB
				}
			} else {
				donate = digits[0]
				if start > 0 {
					replacement = subsetTag[start-1]
				} else {
					replacement = LatchB
				}
			}
			subsetTag[donate] = replacement
		}
		blockIndex++
	}
}

func isDigit(v int) bool {
	return v >= '0' && v <= '9'
}

// canonicalizeStart implements Step F: the symbol must begin with a
// latch, never a bare shift.
func canonicalizeStart(subsetTag []Final) {
	if len(subsetTag) == 0 {
		return
	}
	var shift, latch Final
	switch subsetTag[0] {
	case ShiftA:
		shift, latch = ShiftA, LatchA
	case ShiftB:
		shift, latch = ShiftB, LatchB
	default:
		return
	}
	for i := 0; i < len(subsetTag) && subsetTag[i] == shift; i++ {
		subsetTag[i] = latch
	}
}

// category buckets a Final tag into its ambient A/B/C subset for
// latch-run accounting, ignoring whether a position is a shift or a
// sustained latch.
func category(f Final) byte {
	switch f {
	case ShiftA, LatchA:
		return 'A'
	case ShiftB, LatchB:
		return 'B'
	default:
		return 'C'
	}
}

// projectedLength implements Step G's codeword accounting.
func projectedLength(subsetTag []Final, fstates []fplan.State, code []int) float64 {
	n := len(subsetTag)
	if n == 0 {
		return 1.0
	}

	var total float64

	runs := 0
	for i := 0; i < n; i++ {
		if i == 0 || category(subsetTag[i]) != category(subsetTag[i-1]) {
			runs++
		}
	}
	total += float64(runs)

	extTransitions := 0
	if fstates[0] == fplan.LatchExt {
		extTransitions++
	}
	for i := 1; i < n; i++ {
		if (fstates[i] == fplan.LatchExt) != (fstates[i-1] == fplan.LatchExt) {
			extTransitions++
		}
	}
	total += float64(extTransitions) * 2.0

	for i, f := range subsetTag {
		if f == ShiftA || f == ShiftB {
			total++
		}
		if fstates[i] == fplan.ShiftNormal || fstates[i] == fplan.ShiftExt {
			total++
		}
		switch {
		case f != LatchC:
			total++
		case codepoint.IsFNC(code[i]):
			total++
		default:
			total += 0.5
		}
	}
	return total
}

const maxProjected = 80.0

// Plan runs the full Annex E subset-selection pipeline and returns one
// Final tag per code point, ready for the emitter.
func Plan(code []int, fstates []fplan.State, modeCSuppression bool) ([]Final, error) {
	runs := compress(code, modeCSuppression)
	finals := reduce(runs)
	subsetTag := expand(runs, finals)

	resolveOddBlocks(subsetTag, code)
	canonicalizeStart(subsetTag)

	if projected := projectedLength(subsetTag, fstates, code); projected > maxProjected {
		return nil, &TooLongError{Projected: projected}
	}

	for _, f := range subsetTag {
		switch f {
		case ShiftA, LatchA, ShiftB, LatchB, LatchC:
		default:
			return nil, &InternalError{Reason: "unresolved subset tag reached emitter"}
		}
	}
	return subsetTag, nil
}
