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

//go:generate stringer -type=mode -trimprefix=mode -output=mode_string.go

package htmlindent

// mode is the scanning context that decides
// what happens to the byte under the cursor.
type mode int8

const (
	// modeText is the starting mode: running text and the gaps between tags.
	modeText mode = iota
	// modeTag copies a tag up to and including its '>'.
	modeTag
	// modeInlineTag copies the opening tag of an inline element.
	// Its '>' leads to modeInline rather than modeText.
	modeInlineTag
	// modeInline copies an inline element's content up to the next '>',
	// which undoes the element's nesting.
	modeInline
	// modeComment copies a comment up to and including "-->".
	modeComment
)

// scanner holds the state of a single formatting pass.
type scanner struct {
	src    []byte
	dst    []byte
	indent string

	pos   int
	depth int
	mode  mode
	// inContent is set once running text has started on the current line
	// and cleared by the next non-inline tag.
	inContent bool
}

func (s *scanner) run() {
	s.pos = doctypeEnd(s.src)
	s.dst = append(s.dst, s.src[:s.pos]...)
	for s.pos < len(s.src) {
		s.step()
	}
}

// step consumes the byte at the cursor.
func (s *scanner) step() {
	c := s.src[s.pos]
	switch s.mode {
	case modeComment:
		if isCommentEnd(s.src, s.pos) {
			// The cursor lands on the byte after "-->",
			// which the increment below then skips without copying.
			s.dst = append(s.dst, commentSuffix...)
			s.mode = modeText
			s.pos += len(commentSuffix)
		} else {
			s.dst = append(s.dst, c)
		}
	case modeTag, modeInlineTag:
		s.dst = append(s.dst, c)
		if c == '>' {
			if s.mode == modeInlineTag {
				s.mode = modeInline
			} else {
				s.mode = modeText
			}
		}
	case modeInline:
		s.dst = append(s.dst, c)
		if c == '>' {
			s.mode = modeText
			s.dedent()
		}
	default:
		s.text(c)
	}
	s.pos++
}

func (s *scanner) text(c byte) {
	switch {
	case c == '\r' || c == '\n' || c == '\t':
		return
	case c == '<':
		if !isInlineTag(s.src, s.pos) {
			s.inContent = false
		}
		s.beginTag()
	case !s.inContent:
		s.newline()
		s.inContent = true
	}
	s.dst = append(s.dst, c)
}

// beginTag picks the mode for the markup starting at the cursor
// and writes any line break that precedes it.
func (s *scanner) beginTag() {
	switch {
	case isCommentStart(s.src, s.pos):
		s.newline()
		s.mode = modeComment
	case isEndTag(s.src, s.pos):
		s.mode = modeTag
		s.dedent()
		if !isInlineTag(s.src, s.pos) && !isTagEmpty(s.src, s.pos) {
			s.newline()
		}
	default:
		s.mode = modeTag
		if !s.inContent {
			s.newline()
		}
		if !isVoidTag(s.src, s.pos) {
			s.depth++
		}
		if isInlineTag(s.src, s.pos) {
			s.mode = modeInlineTag
		}
	}
}

func (s *scanner) newline() {
	s.dst = append(s.dst, '\n')
	for i := 0; i < s.depth; i++ {
		s.dst = append(s.dst, s.indent...)
	}
}

func (s *scanner) dedent() {
	if s.depth > 0 {
		s.depth--
	}
}
