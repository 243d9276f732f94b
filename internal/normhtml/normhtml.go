// Copyright 2023 Ross Light
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

// Package normhtml provides a function for normalizing HTML
// which ignores differences in layout whitespace,
// so that markup can be compared before and after re-indentation.
package normhtml

import (
	"bytes"
	"regexp"
	"sort"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// NormalizeHTML strips layout whitespace from HTML.
// Outside of pre and textarea elements, runs of whitespace in text
// are collapsed to a single space and trimmed from both ends of each text run,
// and whitespace-only text is dropped.
// Tag names are lowercased, attributes are sorted by name,
// and text is re-escaped.
// Comments and doctypes are copied as written.
func NormalizeHTML(b []byte) []byte {
	type htmlAttribute struct {
		key   string
		value string
	}

	tok := html.NewTokenizer(bytes.NewReader(b))
	var output []byte
	preDepth := 0
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			data := tok.Text()
			if preDepth == 0 {
				data = bytes.TrimSpace(whitespaceRE.ReplaceAll(data, []byte(" ")))
			}
			output = append(output, htmlEscaper.Replace(bytes.Clone(data))...)
		case html.EndTagToken:
			tagBytes, _ := tok.TagName()
			tag := string(tagBytes)
			if isPreformattedTag(tag) && preDepth > 0 {
				preDepth--
			}
			output = append(output, "</"...)
			output = append(output, tag...)
			output = append(output, ">"...)
		case html.StartTagToken, html.SelfClosingTagToken:
			tagBytes, hasAttr := tok.TagName()
			tag := string(tagBytes)
			if tt == html.StartTagToken && isPreformattedTag(tag) {
				preDepth++
			}
			output = append(output, "<"...)
			output = append(output, tag...)
			if hasAttr {
				var attrs []htmlAttribute
				for {
					k, v, more := tok.TagAttr()
					attrs = append(attrs, htmlAttribute{string(k), string(v)})
					if !more {
						break
					}
				}
				sort.Slice(attrs, func(i, j int) bool {
					return attrs[i].key < attrs[j].key
				})
				for _, attr := range attrs {
					output = append(output, " "...)
					output = append(output, attr.key...)
					if attr.value != "" {
						output = append(output, `="`...)
						output = append(output, html.EscapeString(attr.value)...)
						output = append(output, `"`...)
					}
				}
			}
			output = append(output, ">"...)
		case html.CommentToken, html.DoctypeToken:
			output = append(output, tok.Raw()...)
		}
	}
}

func isPreformattedTag(tag string) bool {
	a := atom.Lookup([]byte(tag))
	return a == atom.Pre || a == atom.Textarea
}
