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
	"strings"
	"testing"

	"golang.org/x/net/html/atom"
)

func TestDoctypeEnd(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"", 0},
		{"<p>x</p>", 0},
		{"<!DOCTYPE html><p>", len("<!DOCTYPE html>")},
		{"<!doctype html>", len("<!doctype html>")},
		{"<!DocType html>", len("<!DocType html>")},
		{"\n  <!DOCTYPE html>", len("\n  <!DOCTYPE html>")},
		{"<!-- > --><!DOCTYPE html>", len("<!-- >")},
		{"<!DOCTYPE html", 1},
		{"<!doctyp", 0},
	}
	for _, test := range tests {
		if got := doctypeEnd([]byte(test.src)); got != test.want {
			t.Errorf("doctypeEnd(%q) = %d; want %d", test.src, got, test.want)
		}
	}
}

func TestIsEndTag(t *testing.T) {
	tests := []struct {
		src  string
		pos  int
		want bool
	}{
		{"</p>", 0, true},
		{"<!DOCTYPE html>", 0, true},
		{"<p>", 0, false},
		{"<p", 0, false},
		{"<", 0, false},
		{"<p</p>", 0, true},
		{"<p></p>", 0, false},
		{"x</p>", 1, true},
	}
	for _, test := range tests {
		if got := isEndTag([]byte(test.src), test.pos); got != test.want {
			t.Errorf("isEndTag(%q, %d) = %t; want %t", test.src, test.pos, got, test.want)
		}
	}
}

func TestIsInlineTag(t *testing.T) {
	inline := []string{
		"title", "a", "span", "abbr", "acronym", "b", "basefont", "bdo",
		"big", "cite", "code", "dfn", "em", "font", "i", "kbd", "q", "s",
		"samp", "small", "strike", "strong", "sub", "sup", "textarea",
		"tt", "u", "var", "del", "pre",
	}
	for _, name := range inline {
		for _, src := range []string{"<" + name + ">", "</" + name + ">", "<" + name + " class=x>", "<" + name} {
			if !isInlineTag([]byte(src), 0) {
				t.Errorf("isInlineTag(%q, 0) = false; want true", src)
			}
		}
	}
	notInline := []string{
		"<div>", "</div>", "<p>", "<A>", "<Span>", "<br>", "<ins>", "<mark>",
		"<!-- a -->", "<>", "<", "<ab>", "<spans>",
		"<" + strings.Repeat("a", maxTagNameLookup+1) + ">",
	}
	for _, src := range notInline {
		if isInlineTag([]byte(src), 0) {
			t.Errorf("isInlineTag(%q, 0) = true; want false", src)
		}
	}
}

func TestIsVoidTag(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"<meta charset=utf-8>", true},
		{"<link rel=x>", true},
		{`<img src="x">`, true},
		{"<hr>", true},
		{"<br>", true},
		{"<br/>", false},
		{"<img/>", false},
		{"<img src=x/>", true},
		{"<br />", true},
		{"<input type=text>", true},
		{"<BR>", false},
		{"<div>", false},
		{"<area>", false},
		{"<brr>", false},
	}
	for _, test := range tests {
		if got := isVoidTag([]byte(test.src), 0); got != test.want {
			t.Errorf("isVoidTag(%q, 0) = %t; want %t", test.src, got, test.want)
		}
	}
}

func TestIsTagEmpty(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"<div></div>", true},
		{"<div>\n \t</div>", true},
		{`<div class="x"></div>`, true},
		{"<div>x</div>", false},
		{"<span></div>", false},
		{"<div><p></p></div>", false},
		{"</div>", true},
		{"  </div>", true},
		{"x></div>", true},
		{"<p></p></p>", false},
		{"<br/></br>", false},
	}
	for _, test := range tests {
		pos := strings.LastIndex(test.src, "</")
		if got := isTagEmpty([]byte(test.src), pos); got != test.want {
			t.Errorf("isTagEmpty(%q, %d) = %t; want %t", test.src, pos, got, test.want)
		}
	}
}

func TestLookupTagName(t *testing.T) {
	tests := []struct {
		src       string
		pos       int
		skipSlash bool
		want      atom.Atom
	}{
		{"<div>", 0, true, atom.Div},
		{"<div>", 0, false, atom.Div},
		{"</div>", 0, true, atom.Div},
		{"</div>", 0, false, 0},
		{"<div\tclass=x>", 0, true, atom.Div},
		{"<br/>", 0, true, atom.Br},
		{"<br/>", 0, false, 0},
		{"<br />", 0, false, atom.Br},
		{"x<em>", 1, true, atom.Em},
		{"<em", 0, true, atom.Em},
		{"<custom-element>", 0, true, 0},
		{"<DIV>", 0, true, 0},
		{"<>", 0, true, 0},
	}
	for _, test := range tests {
		if got := lookupTagName([]byte(test.src), test.pos, test.skipSlash); got != test.want {
			t.Errorf("lookupTagName(%q, %d, %t) = %v; want %v", test.src, test.pos, test.skipSlash, got, test.want)
		}
	}
}

func TestAppendTagName(t *testing.T) {
	tests := []struct {
		src       string
		pos       int
		skipSlash bool
		want      string
	}{
		{"<div>", 0, false, "div"},
		{"<div>", 1, false, "div"},
		{"</div>", 2, false, "div"},
		{"</div>", 1, false, "/div"},
		{"</div>", 0, true, "div"},
		{"<div class=x>", 1, false, "div"},
		{"<div", 1, false, "div"},
		{"<my-element\n>", 1, false, "my-element"},
		{"<>", 1, false, ""},
		{"</", 2, false, ""},
	}
	for _, test := range tests {
		got := appendTagName(nil, []byte(test.src), test.pos, test.skipSlash)
		if string(got) != test.want {
			t.Errorf("appendTagName(nil, %q, %d, %t) = %q; want %q", test.src, test.pos, test.skipSlash, got, test.want)
		}
	}
}

func TestCaseInsensitiveContains(t *testing.T) {
	tests := []struct {
		b      string
		search string
		want   bool
	}{
		{"<!DOCTYPE html>", "<!doctype", true},
		{"<!doctype", "<!doctype", true},
		{"x<!DoCtYpE", "<!doctype", true},
		{"<!doc", "<!doctype", false},
		{"", "<!doctype", false},
		{"<!-- doctype -->", "<!doctype", false},
	}
	for _, test := range tests {
		if got := caseInsensitiveContains([]byte(test.b), test.search); got != test.want {
			t.Errorf("caseInsensitiveContains(%q, %q) = %t; want %t", test.b, test.search, got, test.want)
		}
	}
}
