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

package code128

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeAIM(t *testing.T) {
	symbol, err := Encode("AIM", Options{})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if symbol.RowCount() != 1 {
		t.Fatalf("RowCount() = %d, want 1", symbol.RowCount())
	}
	if symbol.Readable != "AIM" {
		t.Errorf("Readable = %q, want %q", symbol.Readable, "AIM")
	}
	if symbol.RowHeights[0] != -1 {
		t.Errorf("RowHeights[0] = %d, want -1", symbol.RowHeights[0])
	}
	if !strings.Contains(symbol.EncodeInfo, "STARTB") {
		t.Errorf("EncodeInfo = %q, want it to mention STARTB", symbol.EncodeInfo)
	}
}

func TestEncodeDigitsUseSubsetC(t *testing.T) {
	symbol, err := Encode("1234", Options{})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !strings.Contains(symbol.EncodeInfo, "STARTC") {
		t.Errorf("EncodeInfo = %q, want it to mention STARTC", symbol.EncodeInfo)
	}
}

func TestEncodeGS1Bracket(t *testing.T) {
	symbol, err := Encode("[01]12345678901231", Options{DataType: GS1})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if symbol.Readable != "" {
		t.Errorf("Readable = %q, want empty for GS1 data", symbol.Readable)
	}
	if !strings.Contains(symbol.EncodeInfo, "FNC1") {
		t.Errorf("EncodeInfo = %q, want it to mention FNC1", symbol.EncodeInfo)
	}
}

func TestEncodeHIBCWrapsReadable(t *testing.T) {
	symbol, err := Encode("A123", Options{DataType: HIBC})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if symbol.Readable != "*A123*" {
		t.Errorf("Readable = %q, want %q", symbol.Readable, "*A123*")
	}
}

func TestEncodeModeCSuppression(t *testing.T) {
	symbol, err := Encode("1234", Options{ModeCSuppression: true})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if strings.Contains(symbol.EncodeInfo, "STARTC") {
		t.Errorf("EncodeInfo = %q, want no STARTC when Subset C is suppressed", symbol.EncodeInfo)
	}
}

func TestEncodeCompositeAddsSeparatorRow(t *testing.T) {
	symbol, err := Encode("AB", Options{Composite: CompositeCCA})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if symbol.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", symbol.RowCount())
	}
	if symbol.RowHeights[0] != 1 {
		t.Errorf("RowHeights[0] = %d, want 1 (separator)", symbol.RowHeights[0])
	}
}

func TestEncodeInvalidCharacter(t *testing.T) {
	_, err := Encode("A\U0001F600", Options{})
	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("err = %v, want *EncodeError", err)
	}
	if encErr.Kind != InvalidCharacter {
		t.Errorf("Kind = %v, want InvalidCharacter", encErr.Kind)
	}
}

func TestEncodeTooLongInput(t *testing.T) {
	_, err := Encode(strings.Repeat("A", 171), Options{})
	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("err = %v, want *EncodeError", err)
	}
	if encErr.Kind != TooLong {
		t.Errorf("Kind = %v, want TooLong", encErr.Kind)
	}
}

func TestEncodeEveryPatternRowIsModuleDigits(t *testing.T) {
	symbol, err := Encode("CODE128", Options{})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	for _, row := range symbol.Patterns {
		for _, ch := range row {
			if ch < '0' || ch > '9' {
				t.Fatalf("pattern %q has non-digit rune %q", row, ch)
			}
		}
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		InvalidCharacter:           "InvalidCharacter",
		TooLong:                    "TooLong",
		InternalInvariantViolation: "InternalInvariantViolation",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
