// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunkedfile reads test corpora of small programs with
// expected-error annotations.
//
// A chunked file holds several input programs separated by lines
// containing only "---". Within a chunk, a line may carry a trailing
// "###" marker followed by a Go-quoted regular expression that must
// match an error reported on that line:
//
//	s = "x"
//	n = s - 1 ### "arithmetic on strings"
//	---
//	print(z) ### "not defined"
//
// Clients feed each chunk's Source to the code under test, call
// GotError for every diagnostic that occurred, and finally Done.
// Mismatches in either direction are reported to the chunk's reporter,
// normally a *testing.T.
package chunkedfile

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

// A Reporter receives discrepancies. *testing.T implements it.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// A Chunk is one input program with its expected errors.
type Chunk struct {
	Source   string
	filename string
	report   Reporter
	want     map[int]*regexp.Regexp // line → expected message pattern
}

// Read parses the chunked file at filename.
// Each chunk's Source is padded with leading newlines so that line
// numbers inside it match the original file.
func Read(filename string, report Reporter) []Chunk {
	data, err := os.ReadFile(filename)
	if err != nil {
		report.Errorf("%s", err)
		return nil
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	var chunks []Chunk
	line := 1
	for _, part := range strings.Split(text, "\n---\n") {
		chunk := Chunk{
			Source:   strings.Repeat("\n", line-1) + part,
			filename: filename,
			report:   report,
			want:     map[int]*regexp.Regexp{},
		}
		for _, src := range strings.Split(part, "\n") {
			if i := strings.Index(src, "###"); i >= 0 {
				chunk.addExpectation(line, strings.TrimSpace(src[i+3:]))
			}
			line++
		}
		line++ // the --- separator line
		chunks = append(chunks, chunk)
	}
	return chunks
}

func (c *Chunk) addExpectation(line int, quoted string) {
	pattern, err := strconv.Unquote(quoted)
	if err != nil {
		c.report.Errorf("%s:%d: expectation is not a quoted regexp: %s", c.filename, line, quoted)
		return
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		c.report.Errorf("%s:%d: %v", c.filename, line, err)
		return
	}
	c.want[line] = rx
}

// GotError records that the code under test reported msg at line.
// An error on an unannotated line, or one not matching its
// annotation, is a test failure.
func (c *Chunk) GotError(line int, msg string) {
	rx, ok := c.want[line]
	if !ok {
		c.report.Errorf("%s:%d: unexpected error: %v", c.filename, line, msg)
		return
	}
	delete(c.want, line)
	if !rx.MatchString(msg) {
		c.report.Errorf("%s:%d: error %q does not match pattern %q", c.filename, line, msg, rx)
	}
}

// Done reports annotations that never produced an error.
func (c *Chunk) Done() {
	for line, rx := range c.want {
		c.report.Errorf("%s:%d: expected error matching %q", c.filename, line, rx)
	}
}
