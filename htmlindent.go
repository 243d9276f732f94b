// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package htmlindent re-indents HTML markup so that each line's indentation
// reflects the nesting depth of the surrounding tags.
//
// htmlindent is not an HTML parser.
// It makes a single forward pass over the input,
// deciding where to break lines from a small amount of local lookahead,
// and never rejects its input:
// unbalanced or malformed markup is reformatted on a best-effort basis.
// Tags, attributes, comments, and text are copied through unchanged,
// except that carriage returns, line feeds, and tabs
// between tags and in running text are dropped
// in favor of the formatter's own line breaks.
//
// A small fixed set of inline elements (such as a, span, em, and code)
// is kept on the line of the surrounding text,
// and void elements (such as br and img) do not increase the nesting depth.
// Element names are matched case-sensitively.
package htmlindent

import (
	"fmt"
	"io"
	"strings"
)

// DefaultIndentLength is the number of spaces per nesting level
// used by [DefaultFormatter].
const DefaultIndentLength = 4

// DefaultFormatter indents with [DefaultIndentLength] spaces.
var DefaultFormatter = New(true, DefaultIndentLength)

// A Formatter re-indents HTML.
// A Formatter holds no state between calls,
// so it is safe to use concurrently from multiple goroutines.
type Formatter struct {
	// Indent is written once per nesting level after each inserted line break.
	// An empty Indent still breaks lines but does not indent them.
	Indent string
}

// New returns a [Formatter] whose Indent is IndentUnit(useSpaces, indentLength).
func New(useSpaces bool, indentLength int) *Formatter {
	return &Formatter{Indent: IndentUnit(useSpaces, indentLength)}
}

// IndentUnit returns the string used for one level of indentation.
// If useSpaces is true, the unit is indentLength spaces
// (negative lengths are treated as zero).
// Otherwise, the unit is a single tab and indentLength is ignored.
func IndentUnit(useSpaces bool, indentLength int) string {
	if !useSpaces {
		return "\t"
	}
	if indentLength <= 0 {
		return ""
	}
	return strings.Repeat(" ", indentLength)
}

// Format re-indents the given HTML.
// It is shorthand for New(useSpaces, indentLength).Format(input).
func Format(input string, useSpaces bool, indentLength int) string {
	return New(useSpaces, indentLength).Format(input)
}

// Format returns the re-indented form of input.
func (f *Formatter) Format(input string) string {
	return string(f.AppendFormat(nil, []byte(input)))
}

// AppendFormat appends the re-indented form of src to dst
// and returns the resulting byte slice.
// src is not modified.
func (f *Formatter) AppendFormat(dst []byte, src []byte) []byte {
	if cap(dst)-len(dst) < len(src) {
		dst = append(make([]byte, 0, len(dst)+len(src)+len(src)/4), dst...)
	}
	s := &scanner{
		src:    src,
		dst:    dst,
		indent: f.Indent,
	}
	s.run()
	return s.dst
}

// Render writes the re-indented form of src to w.
// It only returns an error if w does.
func (f *Formatter) Render(w io.Writer, src []byte) error {
	if _, err := w.Write(f.AppendFormat(nil, src)); err != nil {
		return fmt.Errorf("render indented html: %w", err)
	}
	return nil
}
