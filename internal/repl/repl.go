/*
 * code128 - Interactive encoder session.
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

// Package repl is a line-editing interactive shell for encoding one
// barcode at a time and inspecting the resulting pattern and trace.
package repl

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/peterh/liner"

	"github.com/rcornwell/code128"
)

// cmdLine walks a typed command the same way a hand rolled line
// scanner would: a position index plus a couple of single purpose
// helpers.
type cmdLine struct {
	line string
	pos  int
}

func (l *cmdLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line)
}

func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for l.pos < len(l.line) && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	return l.line[start:l.pos]
}

func (l *cmdLine) rest() string {
	l.skipSpace()
	return l.line[l.pos:]
}

type session struct {
	opts code128.Options
}

type cmd struct {
	name    string
	min     int
	process func(*session, *cmdLine) (bool, error)
}

var cmdList = []cmd{
	{name: "encode", min: 1, process: (*session).encode},
	{name: "set", min: 3, process: (*session).set},
	{name: "show", min: 2, process: (*session).show},
	{name: "quit", min: 4, process: (*session).quit},
	{name: "help", min: 1, process: (*session).help},
}

func matchCommand(m cmd, name string) bool {
	if len(name) > len(m.name) {
		return false
	}
	for i := range name {
		if m.name[i] != name[i] {
			return false
		}
	}
	return len(name) >= m.min
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			match = append(match, m)
		}
	}
	return match
}

func completeCmd(line string) []string {
	l := cmdLine{line: line}
	name := l.getWord()
	if !l.isEOL() {
		return nil
	}
	match := matchList(name)
	out := make([]string, len(match))
	for i, m := range match {
		out[i] = m.name
	}
	return out
}

func process(s *session, line string) (bool, error) {
	l := cmdLine{line: line}
	name := l.getWord()
	match := matchList(name)
	switch len(match) {
	case 0:
		return false, fmt.Errorf("command not found: %s", name)
	case 1:
		return match[0].process(s, &l)
	default:
		return false, fmt.Errorf("ambiguous command: %s", name)
	}
}

func (s *session) encode(l *cmdLine) (bool, error) {
	content := l.rest()
	if content == "" {
		return false, errors.New("encode requires content")
	}
	symbol, err := code128.Encode(content, s.opts)
	if err != nil {
		return false, err
	}
	for i, pattern := range symbol.Patterns {
		fmt.Printf("row %d (height %d): %s\n", i, symbol.RowHeights[i], pattern)
	}
	if symbol.Readable != "" {
		fmt.Println("text:", symbol.Readable)
	}
	fmt.Println(symbol.EncodeInfo)
	return false, nil
}

func (s *session) set(l *cmdLine) (bool, error) {
	switch strings.ToLower(l.getWord()) {
	case "gs1":
		s.opts.DataType = code128.GS1
	case "hibc":
		s.opts.DataType = code128.HIBC
	case "generic":
		s.opts.DataType = code128.Generic
	case "readerinit":
		s.opts.ReaderInit = true
	case "noreaderinit":
		s.opts.ReaderInit = false
	case "modec":
		s.opts.ModeCSuppression = true
	case "nomodec":
		s.opts.ModeCSuppression = false
	case "composite":
		switch strings.ToLower(l.getWord()) {
		case "cca":
			s.opts.Composite = code128.CompositeCCA
		case "ccb":
			s.opts.Composite = code128.CompositeCCB
		case "ccc":
			s.opts.Composite = code128.CompositeCCC
		case "off", "":
			s.opts.Composite = code128.CompositeOff
		default:
			return false, errors.New("unknown composite mode")
		}
	default:
		return false, errors.New("unknown option")
	}
	return false, nil
}

func (s *session) show(*cmdLine) (bool, error) {
	fmt.Printf("%+v\n", s.opts)
	return false, nil
}

func (s *session) quit(*cmdLine) (bool, error) {
	return true, nil
}

func (s *session) help(*cmdLine) (bool, error) {
	fmt.Println("commands: encode <text>, set <option>, show, quit")
	return false, nil
}

// Run starts an interactive line-editing session until the user quits
// or aborts with Ctrl-D.
func Run() {
	s := &session{}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(in string) []string {
		return completeCmd(in)
	})

	for {
		input, err := line.Prompt("code128> ")
		if err == nil {
			line.AppendHistory(input)
			quit, cerr := process(s, input)
			if cerr != nil {
				fmt.Println("Error:", cerr.Error())
			}
			if quit {
				return
			}
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			return
		}
		slog.Error("error reading line: " + err.Error())
		return
	}
}
