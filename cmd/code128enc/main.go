/*
 * code128 - Command line encoder.
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

package main

import (
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/code128"
	"github.com/rcornwell/code128/config/jobline"
	"github.com/rcornwell/code128/internal/repl"
	"github.com/rcornwell/code128/util/debug"
	"github.com/rcornwell/code128/util/logger"
)

var Logger *slog.Logger

func main() {
	optGS1 := getopt.BoolLong("gs1", 0, "GS1-128 data: translate each '[' to FNC1")
	optHIBC := getopt.BoolLong("hibc", 0, "Wrap readable text in '*' (HIBC)")
	optReaderInit := getopt.BoolLong("readerinit", 0, "Set reader initialization")
	optModeC := getopt.BoolLong("modec", 0, "Suppress Subset C selection")
	optComposite := getopt.StringLong("composite", 0, "", "Composite linkage: cca, ccb, or ccc")
	optBatch := getopt.StringLong("batch", 'b', "", "Batch job file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebugFile := getopt.StringLong("debug", 0, "", "Pipeline trace file")
	optVerbose := getopt.BoolLong("verbose", 'v', "Mirror every log record to stderr")
	optInteractive := getopt.BoolLong("interactive", 'i', "Start an interactive session")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, optVerbose))
	slog.SetDefault(Logger)

	if *optDebugFile != "" {
		closer, err := debug.Open(*optDebugFile)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		defer closer.Close()
		debug.SetMask(debug.Normalize | debug.FNC4Plan | debug.SubsetPlan | debug.Emit)
	}

	if *optInteractive {
		repl.Run()
		return
	}

	if *optBatch != "" {
		runBatch(*optBatch)
		return
	}

	args := getopt.Args()
	if len(args) != 1 {
		Logger.Error("exactly one content argument is required (or use --batch/--interactive)")
		getopt.Usage()
		os.Exit(1)
	}

	opts := code128.Options{}
	switch {
	case *optGS1:
		opts.DataType = code128.GS1
	case *optHIBC:
		opts.DataType = code128.HIBC
	}
	opts.ReaderInit = *optReaderInit
	opts.ModeCSuppression = *optModeC
	composite, err := parseComposite(*optComposite)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	opts.Composite = composite

	printSymbol(args[0], opts)
}

func parseComposite(value string) (code128.Composite, error) {
	switch value {
	case "":
		return code128.CompositeOff, nil
	case "cca":
		return code128.CompositeCCA, nil
	case "ccb":
		return code128.CompositeCCB, nil
	case "ccc":
		return code128.CompositeCCC, nil
	default:
		return code128.CompositeOff, fmt.Errorf("unknown composite mode %q", value)
	}
}

func printSymbol(content string, opts code128.Options) {
	symbol, err := code128.Encode(content, opts)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	for i, pattern := range symbol.Patterns {
		fmt.Printf("row %d (height %d): %s\n", i, symbol.RowHeights[i], pattern)
	}
	if symbol.Readable != "" {
		fmt.Println("text:", symbol.Readable)
	}
	debug.Debugf("emit", debug.Emit, "%s", symbol.EncodeInfo)
}

func runBatch(fileName string) {
	jobs, err := jobline.LoadFile(fileName)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	failed := 0
	for i, job := range jobs {
		symbol, err := code128.Encode(job.Content, job.Options)
		if err != nil {
			Logger.Error(fmt.Sprintf("job %d (%q): %s", i, job.Content, err.Error()))
			failed++
			continue
		}
		fmt.Printf("job %d: %d row(s), readable=%q\n", i, symbol.RowCount(), symbol.Readable)
	}
	if failed != 0 {
		os.Exit(1)
	}
}
