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
	"github.com/emojilang/emojilang/errors"
)

type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenIntType
	TokenStringType
	TokenPrint
	TokenIf
	TokenElse
	TokenWhile
	TokenFor
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenGreater
	TokenLess
	TokenEqualEqual
	TokenAssign
	TokenRightArrow
	TokenSemicolon
	TokenParenOpen
	TokenParenClose
	TokenBraceOpen
	TokenBraceClose
	TokenString
	TokenDecimalIntegerLiteral
	TokenBool
	TokenIdentifier
	// NOTE: not an actual token, must be last item
	TokenMax
)

func init() {
	// ensure all tokens have its string format
	for t := TokenType(0); t < TokenMax; t++ {
		_ = t.String()
	}
}

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenString:
		return "string"
	case TokenDecimalIntegerLiteral:
		return "decimal integer"
	case TokenBool:
		return "boolean"
	case TokenIdentifier:
		return "identifier"
	}

	glyph := t.Glyph()
	if glyph == "" {
		panic(errors.NewUnreachableError())
	}
	return "'" + glyph + "'"
}

// Glyph returns the canonical source spelling of fixed tokens,
// and the empty string for tokens with a variable spelling.
func (t TokenType) Glyph() string {
	switch t {
	case TokenIntType:
		return glyphIntType
	case TokenStringType:
		return glyphStringType
	case TokenPrint:
		return glyphPrint
	case TokenIf:
		return glyphIf
	case TokenElse:
		return glyphElse
	case TokenWhile:
		return glyphWhile
	case TokenFor:
		return glyphFor
	case TokenPlus:
		return glyphPlus
	case TokenMinus:
		return glyphMinus
	case TokenStar:
		return glyphStar
	case TokenSlash:
		return glyphSlash
	case TokenGreater:
		return glyphGreater
	case TokenLess:
		return glyphLess
	case TokenEqualEqual:
		return glyphEqualEqual
	case TokenAssign:
		return glyphAssign
	case TokenRightArrow:
		return glyphRightArrow
	case TokenSemicolon:
		return glyphSemicolon
	case TokenParenOpen:
		return glyphParenOpen
	case TokenParenClose:
		return glyphParenClose
	case TokenBraceOpen:
		return glyphBraceOpen
	case TokenBraceClose:
		return glyphBraceClose
	}
	return ""
}
