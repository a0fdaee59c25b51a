/*
 * code128 - Error surface.
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

	"github.com/rcornwell/code128/internal/codepoint"
	"github.com/rcornwell/code128/internal/emit"
	"github.com/rcornwell/code128/internal/subset"
)

// Kind classifies why Encode failed. The core recognizes exactly
// these three; anything else is a bug, not a caller mistake.
type Kind int

const (
	// InvalidCharacter: content holds a character that is neither
	// ISO 8859-1 nor a reserved FNC placeholder.
	InvalidCharacter Kind = iota
	// TooLong: content is over 170 characters, or the projected
	// codeword count after planning exceeds 80.
	TooLong
	// InternalInvariantViolation: the planner or emitter reached a
	// state the algorithm should never produce. Indicates an encoder
	// bug, not a bad input.
	InternalInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case TooLong:
		return "TooLong"
	case InternalInvariantViolation:
		return "InternalInvariantViolation"
	default:
		return "Unknown"
	}
}

// EncodeError is the only error type Encode returns. No partial
// Symbol is ever produced alongside an error.
type EncodeError struct {
	Kind Kind
	err  error
}

func (e *EncodeError) Error() string {
	return e.err.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.err
}

// classify wraps an internal pipeline error in the three-kind surface
// Encode promises its callers.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var invalidChar *codepoint.InvalidCharacterError
	if errors.As(err, &invalidChar) {
		return &EncodeError{Kind: InvalidCharacter, err: err}
	}

	var tooLongInput *codepoint.TooLongError
	if errors.As(err, &tooLongInput) {
		return &EncodeError{Kind: TooLong, err: err}
	}

	var tooLongPlan *subset.TooLongError
	if errors.As(err, &tooLongPlan) {
		return &EncodeError{Kind: TooLong, err: err}
	}

	var internalSubset *subset.InternalError
	if errors.As(err, &internalSubset) {
		return &EncodeError{Kind: InternalInvariantViolation, err: err}
	}

	var internalEmit *emit.InternalError
	if errors.As(err, &internalEmit) {
		return &EncodeError{Kind: InternalInvariantViolation, err: err}
	}

	return &EncodeError{Kind: InternalInvariantViolation, err: err}
}
