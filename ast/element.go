/*
 * Emojilang - A glyph-based toy programming language
 *
 * Copyright The Emojilang Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package ast contains the syntax tree of emojilang programs.
// All nodes implement the Element interface,
// so have position information
// and can be traversed using the statement and expression visitors.
// Elements also implement the json.Marshaler interface.
package ast

import (
	"strings"

	"github.com/turbolent/prettier"
)

// Element is implemented by every node of the syntax tree.
//
// The position of an element is the position of the token it originates from,
// e.g. the keyword of a statement or the operator of a binary expression.
// Elements constructed outside the parser may have an empty range.
type Element interface {
	HasPosition
	ElementType() ElementType
	Walk(walkChild func(Element))
	Doc() prettier.Doc
}

const prettierMaxLineWidth = 80

const prettierIndent = "    "

// Prettier renders the element as canonical glyph source code.
func Prettier(element Element) string {
	var b strings.Builder
	prettier.Prettier(&b, element.Doc(), prettierMaxLineWidth, prettierIndent)
	return b.String()
}

// Inspect walks the element and all its children in depth-first order.
// The function is called for each element before its children,
// and returning false skips the children.
func Inspect(element Element, f func(Element) bool) {
	if element == nil || !f(element) {
		return
	}
	element.Walk(func(child Element) {
		Inspect(child, f)
	})
}
