/*
 * code128 - Input normalization.
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

// Package codepoint maps raw input runes onto the integer alphabet the
// rest of the Code 128 pipeline works over: the ISO 8859-1 byte range
// 0..255 plus four reserved function placeholders.
package codepoint

import "fmt"

// Reserved placeholder values. Chosen outside the ISO 8859-1 byte range
// so they can never collide with a real input character.
const (
	FNC1 = 0x0101
	FNC2 = 0x0113
	FNC3 = 0x012B
	FNC4 = 0x014D
)

// MaxInput is the longest input the planner will accept before the
// emitted codeword count can no longer be reasoned about cheaply.
const MaxInput = 170

// InvalidCharacterError reports an input rune that is neither ISO 8859-1
// nor one of the four reserved FNC placeholders.
type InvalidCharacterError struct {
	Rune rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("code128: invalid character %q at position %d", e.Rune, e.Pos)
}

// TooLongError reports an input sequence that exceeds MaxInput characters.
type TooLongError struct {
	Len int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("code128: input length %d exceeds maximum of %d", e.Len, MaxInput)
}

func isFNC(r rune) bool {
	switch r {
	case FNC1, FNC2, FNC3, FNC4:
		return true
	default:
		return false
	}
}

// Normalize walks content and produces the normalized code point
// sequence. When gs1 is true, '[' is translated to FNC1 rather than
// passed through as a literal bracket; GS1 AI syntax inside the
// brackets is never validated here.
func Normalize(content []rune, gs1 bool) ([]int, error) {
	if len(content) > MaxInput {
		return nil, &TooLongError{Len: len(content)}
	}

	out := make([]int, 0, len(content))
	for i, r := range content {
		switch {
		case gs1 && r == '[':
			out = append(out, FNC1)
		case isFNC(r):
			out = append(out, int(r))
		case r >= 0 && r <= 255:
			out = append(out, int(r))
		default:
			return nil, &InvalidCharacterError{Rune: r, Pos: i}
		}
	}
	return out, nil
}

// IsFNC reports whether v is one of the four reserved placeholder values.
func IsFNC(v int) bool {
	return isFNC(rune(v))
}

// StripFNC removes every reserved placeholder from content, used to
// build the human readable text line.
func StripFNC(content []rune) string {
	out := make([]rune, 0, len(content))
	for _, r := range content {
		if !isFNC(r) {
			out = append(out, r)
		}
	}
	return string(out)
}
