/*
 * code128 - Log pipeline trace data to a file.
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

// Package debug writes pipeline-stage trace lines for the CLI's
// --debug flag. The encoder core never imports this package; only
// the command line layer does, since Encode itself stays free of I/O.
package debug

import (
	"fmt"
	"io"
	"os"
)

const (
	// Mask bits a caller combines to select which pipeline stages to trace.
	Normalize = 1 << iota
	FNC4Plan
	SubsetPlan
	Emit
)

var (
	logFile io.Writer
	mask    int
)

// SetOutput directs trace output at w. A nil w disables tracing.
func SetOutput(w io.Writer) {
	logFile = w
}

// SetMask selects which bits of Debugf's level argument are traced.
func SetMask(m int) {
	mask = m
}

// Open creates fileName and directs trace output at it, replacing the
// previous output. A file returned by an earlier Open is not closed.
func Open(fileName string) (io.Closer, error) {
	file, err := os.Create(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to create debug file: %s: %w", fileName, err)
	}
	logFile = file
	return file, nil
}

// Debugf writes a trace line tagged with stage if level is selected by
// the current mask.
func Debugf(stage string, level int, format string, a ...interface{}) {
	if logFile == nil || (mask&level) == 0 {
		return
	}
	fmt.Fprintf(logFile, stage+": "+format+"\n", a...)
}
