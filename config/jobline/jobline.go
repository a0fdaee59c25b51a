/*
 * code128 - Batch job line parser.
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

// Package jobline parses the line-oriented batch job format the CLI's
// --batch mode reads: one barcode per line, a quoted or bare content
// string followed by whitespace separated option directives.
//
//	<content> [gs1] [hibc] [readerinit] [modec] [composite=cca|ccb|ccc]
//
// '#' starts a comment that runs to end of line.
package jobline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rcornwell/code128"
)

// Job is one parsed batch line: the literal content to encode plus
// the options that govern how it is encoded.
type Job struct {
	Content string
	Options code128.Options
}

// cursor walks one line of job-file text, mirroring the read pattern
// of a hand rolled recursive-descent line scanner: a position index
// into the raw line plus a handful of single-purpose helpers.
type cursor struct {
	line string
	pos  int
}

func (c *cursor) skipSpace() {
	for c.pos < len(c.line) && unicode.IsSpace(rune(c.line[c.pos])) {
		c.pos++
	}
}

func (c *cursor) isEOL() bool {
	if c.pos >= len(c.line) {
		return true
	}
	return c.line[c.pos] == '#'
}

// parseContent reads the leading content field: a double-quoted
// string with "" as an escaped quote, or a bare run of non-space
// characters.
func (c *cursor) parseContent() (string, error) {
	c.skipSpace()
	if c.isEOL() {
		return "", errors.New("jobline: missing content field")
	}

	if c.line[c.pos] != '"' {
		start := c.pos
		for c.pos < len(c.line) && !unicode.IsSpace(rune(c.line[c.pos])) && c.line[c.pos] != '#' {
			c.pos++
		}
		return c.line[start:c.pos], nil
	}

	c.pos++ // skip opening quote
	var b strings.Builder
	for {
		if c.pos >= len(c.line) {
			return "", errors.New("jobline: unterminated quoted content")
		}
		ch := c.line[c.pos]
		if ch == '"' {
			c.pos++
			if c.pos < len(c.line) && c.line[c.pos] == '"' {
				b.WriteByte('"')
				c.pos++
				continue
			}
			return b.String(), nil
		}
		b.WriteByte(ch)
		c.pos++
	}
}

// parseDirective reads one whitespace-delimited "name" or "name=value" token.
func (c *cursor) parseDirective() (name, value string, ok bool) {
	c.skipSpace()
	if c.isEOL() {
		return "", "", false
	}
	start := c.pos
	for c.pos < len(c.line) && !unicode.IsSpace(rune(c.line[c.pos])) && c.line[c.pos] != '#' {
		c.pos++
	}
	token := c.line[start:c.pos]
	if eq := strings.IndexByte(token, '='); eq >= 0 {
		return strings.ToLower(token[:eq]), strings.ToLower(token[eq+1:]), true
	}
	return strings.ToLower(token), "", true
}

// ParseLine parses a single batch job line. A line that is empty, or
// is a comment once leading space is skipped, returns a nil Job and a
// nil error.
func ParseLine(line string) (*Job, error) {
	c := &cursor{line: line}
	c.skipSpace()
	if c.isEOL() {
		return nil, nil
	}

	content, err := c.parseContent()
	if err != nil {
		return nil, err
	}

	job := &Job{Content: content}
	for {
		name, value, ok := c.parseDirective()
		if !ok {
			break
		}
		if err := apply(&job.Options, name, value); err != nil {
			return nil, err
		}
	}
	return job, nil
}

func apply(opts *code128.Options, name, value string) error {
	switch name {
	case "gs1":
		opts.DataType = code128.GS1
	case "hibc":
		opts.DataType = code128.HIBC
	case "readerinit":
		opts.ReaderInit = true
	case "modec":
		opts.ModeCSuppression = true
	case "composite":
		switch value {
		case "cca":
			opts.Composite = code128.CompositeCCA
		case "ccb":
			opts.Composite = code128.CompositeCCB
		case "ccc":
			opts.Composite = code128.CompositeCCC
		default:
			return fmt.Errorf("jobline: unknown composite mode %q", value)
		}
	default:
		return fmt.Errorf("jobline: unknown directive %q", name)
	}
	return nil
}

// LoadFile reads every job out of a batch file, in order.
func LoadFile(name string) ([]Job, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var jobs []Job
	reader := bufio.NewReader(file)
	lineNumber := 0
	for {
		line, err := reader.ReadString('\n')
		lineNumber++
		if len(line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		job, perr := ParseLine(line)
		if perr != nil {
			return nil, fmt.Errorf("jobline: line %d: %w", lineNumber, perr)
		}
		if job != nil {
			jobs = append(jobs, *job)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}
	return jobs, nil
}
