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

package emit

import (
	"testing"

	"github.com/rcornwell/code128/internal/fplan"
	"github.com/rcornwell/code128/internal/subset"
	"github.com/rcornwell/code128/internal/tables"
)

func codeOf(s string) []int {
	out := make([]int, len(s))
	for i, b := range []byte(s) {
		out[i] = int(b)
	}
	return out
}

func allLatch(f subset.Final, n int) []subset.Final {
	out := make([]subset.Final, n)
	for i := range out {
		out[i] = f
	}
	return out
}

func allNormal(n int) []fplan.State {
	return make([]fplan.State, n) // zero value is fplan.LatchNormal
}

func TestEmitAIM(t *testing.T) {
	code := codeOf("AIM")
	subsetTag := allLatch(subset.LatchB, len(code))
	fstates := allNormal(len(code))

	result, err := Emit(code, subsetTag, fstates, Options{})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	want := []int{tables.StartB, 33, 41, 45}
	if len(result.Codewords) != len(want) {
		t.Fatalf("Codewords = %v, want %v", result.Codewords, want)
	}
	for i := range want {
		if result.Codewords[i] != want[i] {
			t.Errorf("Codewords[%d] = %d, want %d", i, result.Codewords[i], want[i])
		}
	}
}

func TestEmitEmbeddedShiftDoesNotRelatch(t *testing.T) {
	// A single subset-A-only control character surrounded by subset-B
	// text never latches: it must emit a SHIFT codeword and the one
	// data codeword under A, then fall straight back to B without any
	// latch codeword on either side.
	code := append(append(codeOf("ab"), 0x05), codeOf("cd")...)
	subsetTag := []subset.Final{
		subset.LatchB, subset.LatchB, subset.ShiftA, subset.LatchB, subset.LatchB,
	}
	fstates := allNormal(len(code))

	result, err := Emit(code, subsetTag, fstates, Options{})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	want := []int{tables.StartB, 65, 66, tables.Shift, 69, 67, 68}
	if len(result.Codewords) != len(want) {
		t.Fatalf("Codewords = %v, want %v", result.Codewords, want)
	}
	for i := range want {
		if result.Codewords[i] != want[i] {
			t.Errorf("Codewords[%d] = %d, want %d", i, result.Codewords[i], want[i])
		}
	}
}

func TestEmitDigitsLatchC(t *testing.T) {
	code := codeOf("1234")
	subsetTag := allLatch(subset.LatchC, len(code))
	fstates := allNormal(len(code))

	result, err := Emit(code, subsetTag, fstates, Options{})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	want := []int{tables.StartC, 12, 34}
	if len(result.Codewords) != len(want) {
		t.Fatalf("Codewords = %v, want %v", result.Codewords, want)
	}
	for i := range want {
		if result.Codewords[i] != want[i] {
			t.Errorf("Codewords[%d] = %d, want %d", i, result.Codewords[i], want[i])
		}
	}
}

func TestEmitReaderInitUnderCodeCUsesStartB(t *testing.T) {
	code := codeOf("1234")
	subsetTag := allLatch(subset.LatchC, len(code))
	fstates := allNormal(len(code))

	result, err := Emit(code, subsetTag, fstates, Options{ReaderInit: true})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	if len(result.Codewords) < 3 {
		t.Fatalf("Codewords = %v, too short", result.Codewords)
	}
	if result.Codewords[0] != tables.StartB {
		t.Errorf("Codewords[0] = %d, want StartB (%d)", result.Codewords[0], tables.StartB)
	}
	if result.Codewords[1] != tables.FNC3 {
		t.Errorf("Codewords[1] = %d, want FNC3 (%d)", result.Codewords[1], tables.FNC3)
	}
	if result.Codewords[2] != tables.CodeC {
		t.Errorf("Codewords[2] = %d, want CodeC (%d)", result.Codewords[2], tables.CodeC)
	}
}

func TestEmitReaderInitUnderCodeBNoCodeC(t *testing.T) {
	code := codeOf("AB")
	subsetTag := allLatch(subset.LatchB, len(code))
	fstates := allNormal(len(code))

	result, err := Emit(code, subsetTag, fstates, Options{ReaderInit: true})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	want := []int{tables.StartB, tables.FNC3, 33, 34}
	if len(result.Codewords) != len(want) {
		t.Fatalf("Codewords = %v, want %v", result.Codewords, want)
	}
	for i := range want {
		if result.Codewords[i] != want[i] {
			t.Errorf("Codewords[%d] = %d, want %d", i, result.Codewords[i], want[i])
		}
	}
}

func TestEmitExtendedLatchDoubleFNC4(t *testing.T) {
	// Six repeated high bytes (0xC1 = 193) should latch into FNC4 once,
	// via a doubled FNC4 codeword, then emit one data codeword per byte.
	code := make([]int, 6)
	for i := range code {
		code[i] = 0xC1
	}
	subsetTag := allLatch(subset.LatchB, len(code))
	fstates := make([]fplan.State, len(code))
	for i := range fstates {
		fstates[i] = fplan.LatchExt
	}

	result, err := Emit(code, subsetTag, fstates, Options{})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	if result.Codewords[0] != tables.StartB {
		t.Errorf("Codewords[0] = %d, want StartB", result.Codewords[0])
	}
	if result.Codewords[1] != tables.FNC4UndB || result.Codewords[2] != tables.FNC4UndB {
		t.Errorf("Codewords[1:3] = %v, want double FNC4 (%d,%d)", result.Codewords[1:3], tables.FNC4UndB, tables.FNC4UndB)
	}
	// 0xC1 (193) under subset B: 193 - 32 - 128 = 33.
	for i := 3; i < 9; i++ {
		if result.Codewords[i] != 33 {
			t.Errorf("Codewords[%d] = %d, want 33", i, result.Codewords[i])
		}
	}
}

func TestLinkageFlagCCATable(t *testing.T) {
	tests := []struct {
		end  subset.Final
		want int
	}{
		{subset.LatchA, tables.CodeB},
		{subset.LatchB, tables.CodeC},
		{subset.LatchC, tables.CodeA},
	}
	for _, tt := range tests {
		if got := linkageFlag(CompositeCCA, tt.end); got != tt.want {
			t.Errorf("linkageFlag(CCA, %v) = %d, want %d", tt.end, got, tt.want)
		}
	}
}

func TestLinkageFlagCCCTable(t *testing.T) {
	tests := []struct {
		end  subset.Final
		want int
	}{
		{subset.LatchA, tables.CodeC},
		{subset.LatchB, tables.CodeA},
		{subset.LatchC, tables.CodeB},
	}
	for _, tt := range tests {
		if got := linkageFlag(CompositeCCC, tt.end); got != tt.want {
			t.Errorf("linkageFlag(CCC, %v) = %d, want %d", tt.end, got, tt.want)
		}
	}
}

func TestEmitCompositeAppendsLinkageFlag(t *testing.T) {
	code := codeOf("AB")
	subsetTag := allLatch(subset.LatchB, len(code))
	fstates := allNormal(len(code))

	result, err := Emit(code, subsetTag, fstates, Options{CompositeMode: CompositeCCA})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	last := result.Codewords[len(result.Codewords)-1]
	if last != tables.CodeC {
		t.Errorf("last codeword = %d, want CodeC (%d) for CCA ending in subset B", last, tables.CodeC)
	}
}
