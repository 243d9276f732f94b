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

package htmlindent

import (
	"bytes"

	"golang.org/x/net/html/atom"
)

const (
	commentPrefix = "<!--"
	commentSuffix = "-->"
	doctypePrefix = "<!doctype"
)

// maxTagNameLookup is longer than any name in inlineTags or voidTags.
const maxTagNameLookup = 16

// inlineTags is the set of elements whose content stays on the line
// of the surrounding text.
var inlineTags = map[atom.Atom]struct{}{
	atom.Title:    {},
	atom.A:        {},
	atom.Span:     {},
	atom.Abbr:     {},
	atom.Acronym:  {},
	atom.B:        {},
	atom.Basefont: {},
	atom.Bdo:      {},
	atom.Big:      {},
	atom.Cite:     {},
	atom.Code:     {},
	atom.Dfn:      {},
	atom.Em:       {},
	atom.Font:     {},
	atom.I:        {},
	atom.Kbd:      {},
	atom.Q:        {},
	atom.S:        {},
	atom.Samp:     {},
	atom.Small:    {},
	atom.Strike:   {},
	atom.Strong:   {},
	atom.Sub:      {},
	atom.Sup:      {},
	atom.Textarea: {},
	atom.Tt:       {},
	atom.U:        {},
	atom.Var:      {},
	atom.Del:      {},
	atom.Pre:      {},
}

// voidTags is the set of elements that never have a closing tag.
var voidTags = map[atom.Atom]struct{}{
	atom.Meta:  {},
	atom.Link:  {},
	atom.Img:   {},
	atom.Hr:    {},
	atom.Br:    {},
	atom.Input: {},
}

// doctypeEnd returns the position just past the first '>' in src
// if src contains a doctype declaration anywhere, or 0 otherwise.
// The '>' need not belong to the doctype.
// Without any '>', only the first byte is passed through.
func doctypeEnd(src []byte) int {
	if !caseInsensitiveContains(src, doctypePrefix) {
		return 0
	}
	i := bytes.IndexByte(src, '>')
	if i < 0 {
		i = 0
	}
	return i + 1
}

func isCommentStart(src []byte, pos int) bool {
	return hasBytePrefix(src[pos:], commentPrefix)
}

func isCommentEnd(src []byte, pos int) bool {
	return hasBytePrefix(src[pos:], commentSuffix)
}

// isEndTag reports whether a "</" or "<!" occurs at or after pos
// before the next '>'.
func isEndTag(src []byte, pos int) bool {
	for i := pos; i < len(src); i++ {
		switch src[i] {
		case '<':
			if i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '!') {
				return true
			}
		case '>':
			return false
		}
	}
	return false
}

// isInlineTag reports whether the tag at pos names an element in inlineTags.
// Slashes are ignored, so closing tags match too.
func isInlineTag(src []byte, pos int) bool {
	_, ok := inlineTags[lookupTagName(src, pos, true)]
	return ok
}

// isVoidTag reports whether the opening tag at pos names an element in voidTags.
// A '/' is part of the name, so "<br/>" does not match.
func isVoidTag(src []byte, pos int) bool {
	_, ok := voidTags[lookupTagName(src, pos, false)]
	return ok
}

// isTagEmpty reports whether the closing tag at pos
// directly follows an opening tag of the same name,
// with nothing but whitespace in between.
// Running off the start of src counts as empty.
func isTagEmpty(src []byte, pos int) bool {
	closing := appendTagName(nil, src, pos+len("</"), false)
	for i := pos - 1; i >= 0; i-- {
		if src[i] == '>' {
			for j := i - 1; j >= 0; j-- {
				if src[j] == '<' {
					return bytes.Equal(closing, appendTagName(nil, src, j+1, false))
				}
			}
			return true
		}
		if !isSpace(src[i]) {
			return false
		}
	}
	return true
}

// lookupTagName returns the atom for the element name of the tag at pos,
// or 0 if it is not a known element.
// The name is extracted as by appendTagName.
func lookupTagName(src []byte, pos int, skipSlash bool) atom.Atom {
	var buf [maxTagNameLookup]byte
	name := buf[:0]
	for i := pos; i < len(src); i++ {
		c := src[i]
		if c == '<' || skipSlash && c == '/' {
			continue
		}
		if c == '>' || isSpace(c) {
			break
		}
		if len(name) == len(buf) {
			return 0
		}
		name = append(name, c)
	}
	return atom.Lookup(name)
}

// appendTagName appends the bytes from pos up to the next whitespace or '>'
// to dst, leaving out any '<' (and any '/' if skipSlash is set).
func appendTagName(dst []byte, src []byte, pos int, skipSlash bool) []byte {
	for i := pos; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '<' || skipSlash && c == '/':
			continue
		case c == '>' || isSpace(c):
			return dst
		}
		dst = append(dst, c)
	}
	return dst
}

func hasBytePrefix(b []byte, prefix string) bool {
	return len(b) >= len(prefix) && string(b[:len(prefix)]) == prefix
}

func caseInsensitiveContains(b []byte, search string) bool {
	for i := 0; i+len(search) <= len(b); i++ {
		if hasCaseInsensitiveBytePrefix(b[i:], search) {
			return true
		}
	}
	return false
}

func hasCaseInsensitiveBytePrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i, bb := range b[:len(prefix)] {
		if toLowerASCII(prefix[i]) != toLowerASCII(bb) {
			return false
		}
	}
	return true
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// isSpace reports whether c is an ASCII whitespace character,
// including vertical tab.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
