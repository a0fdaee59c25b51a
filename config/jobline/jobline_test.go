/*
 * code128 - Batch job line parser test set.
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

package jobline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rcornwell/code128"
)

func TestParseLineBareContent(t *testing.T) {
	job, err := ParseLine("AIM")
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if job.Content != "AIM" {
		t.Errorf("Content = %q, want %q", job.Content, "AIM")
	}
	if job.Options != (code128.Options{}) {
		t.Errorf("Options = %+v, want zero value", job.Options)
	}
}

func TestParseLineQuotedContentWithDirectives(t *testing.T) {
	job, err := ParseLine(`"[01]12345" gs1 readerinit composite=cca`)
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if job.Content != "[01]12345" {
		t.Errorf("Content = %q, want %q", job.Content, "[01]12345")
	}
	if job.Options.DataType != code128.GS1 {
		t.Errorf("DataType = %v, want GS1", job.Options.DataType)
	}
	if !job.Options.ReaderInit {
		t.Error("ReaderInit = false, want true")
	}
	if job.Options.Composite != code128.CompositeCCA {
		t.Errorf("Composite = %v, want CompositeCCA", job.Options.Composite)
	}
}

func TestParseLineEscapedQuote(t *testing.T) {
	job, err := ParseLine(`"AB""CD"`)
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if job.Content != `AB"CD` {
		t.Errorf("Content = %q, want %q", job.Content, `AB"CD`)
	}
}

func TestParseLineBlankAndComment(t *testing.T) {
	for _, line := range []string{"", "   ", "# a comment"} {
		job, err := ParseLine(line)
		if err != nil {
			t.Fatalf("ParseLine(%q) returned error: %v", line, err)
		}
		if job != nil {
			t.Errorf("ParseLine(%q) = %+v, want nil", line, job)
		}
	}
}

func TestParseLineUnknownDirective(t *testing.T) {
	if _, err := ParseLine("AIM bogus"); err == nil {
		t.Error("expected an error for an unknown directive")
	}
}

func TestParseLineUnterminatedQuote(t *testing.T) {
	if _, err := ParseLine(`"AIM`); err == nil {
		t.Error("expected an error for an unterminated quoted string")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.txt")
	content := "AIM\n# comment\n\"12345\" modec\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	jobs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("len(jobs) = %d, want 2", len(jobs))
	}
	if jobs[0].Content != "AIM" {
		t.Errorf("jobs[0].Content = %q, want %q", jobs[0].Content, "AIM")
	}
	if jobs[1].Content != "12345" || !jobs[1].Options.ModeCSuppression {
		t.Errorf("jobs[1] = %+v, want content 12345 with ModeCSuppression", jobs[1])
	}
}
