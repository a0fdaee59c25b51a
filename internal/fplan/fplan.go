/*
 * code128 - Extended (FNC4) regime planner.
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

// Package fplan decides, per input position, whether a byte in the
// upper ISO 8859-1 half (128..255) should be reached by latching into
// the FNC4 extended regime or by shifting into it one character at a
// time. The rules come from ISO/IEC 15417 Annex E, note 3.
package fplan

import "github.com/rcornwell/code128/internal/codepoint"

// State is the FNC4 regime tag for a single input position.
type State int

const (
	LatchNormal State = iota // Plain ISO 8859-1 low half, no FNC4 involved.
	ShiftNormal              // One character shifted back to normal from an extended latch.
	LatchExt                 // Inside a latched extended (FNC4) region.
	ShiftExt                 // One character reached by a single FNC4 shift.
)

const (
	latchRun   = 5 // run length of extended bytes that forces a latch.
	tailRun    = 3 // shorter run still forces a latch if it runs to end of input.
	dropNormal = latchRun
	dropTail   = tailRun
)

func isExtended(v int) bool {
	return v >= 128 && v <= 255 && !codepoint.IsFNC(v)
}

// Plan computes one State per position of code.
func Plan(code []int) []State {
	n := len(code)
	states := make([]State, n)
	for i, v := range code {
		if isExtended(v) {
			states[i] = ShiftExt
		} else {
			states[i] = LatchNormal
		}
	}

	// Runs of 5 or more consecutive extended bytes latch in.
	run := 0
	for i := 0; i < n; i++ {
		if states[i] == ShiftExt {
			run++
			if run == latchRun {
				for j := i - latchRun + 1; j <= i; j++ {
					states[j] = LatchExt
				}
			} else if run > latchRun {
				states[i] = LatchExt
			}
		} else {
			run = 0
		}
	}

	// A tail run of 3 or more extended bytes touching end of input
	// also latches, even if it never reached the length-5 threshold.
	run = 0
	for i := n - 1; i >= 0; i-- {
		if states[i] == ShiftExt {
			run++
			continue
		}
		break
	}
	if run >= tailRun {
		for i := n - run; i < n; i++ {
			states[i] = LatchExt
		}
	}

	demoteShortDrops(states)
	return states
}

// demoteShortDrops finds returns to LatchNormal that follow a LatchExt
// region and are too short to justify latching back out; those
// positions shift out of the extended regime one character at a time
// instead.
func demoteShortDrops(states []State) {
	n := len(states)
	i := 0
	for i < n {
		if states[i] != LatchExt {
			i++
			continue
		}
		// Walk to the end of this extended latch.
		for i < n && states[i] == LatchExt {
			i++
		}
		// Measure the run of LatchNormal that follows.
		start := i
		for i < n && states[i] == LatchNormal {
			i++
		}
		dropLen := i - start
		if dropLen == 0 {
			continue
		}
		touchesEnd := i == n
		threshold := dropNormal
		if touchesEnd {
			threshold = dropTail
		}
		if dropLen < threshold {
			for j := start; j < i; j++ {
				states[j] = ShiftNormal
			}
		}
	}
}
