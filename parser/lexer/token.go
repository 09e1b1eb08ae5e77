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

package lexer

import (
	"github.com/emojilang/emojilang/ast"
)

// Token is a classified, positioned lexical unit.
//
// Value holds the converted literal:
// a *big.Int for decimal integers, the unquoted text for strings,
// a bool for booleans, the name for identifiers, and nil otherwise.
type Token struct {
	Value any
	ast.Range
	Type TokenType
}

func (t Token) Is(ty TokenType) bool {
	return t.Type == ty
}

func (t Token) Source(input []byte) []byte {
	return t.Range.Source(input)
}
