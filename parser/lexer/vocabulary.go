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
	"bytes"
	"math/big"
	"unicode"
	"unicode/utf8"

	"github.com/emojilang/emojilang/errors"
)

const (
	glyphIntType     = "🔢"
	glyphStringType  = "🔤"
	glyphPrint       = "👀"
	glyphIf          = "🙂‍↕️"
	glyphElse        = "🙂‍↔️"
	glyphPlus        = "➕"
	glyphMinus       = "➖"
	glyphWhile       = "🤸‍♂️"
	glyphFor         = "🌀"
	glyphStar        = "✖️"
	glyphSlash       = "➗"
	glyphGreater     = "▶️"
	glyphLess        = "◀️"
	glyphEqualEqual  = "🟰🟰"
	glyphAssign      = "🟰"
	glyphLeftArrow   = "⬅️"
	glyphRightArrow  = "➡️"
	glyphSemicolon   = "🛑"
	glyphParenOpen   = "🫸"
	glyphParenClose  = "🫷"
	glyphBraceOpen   = "🤜"
	glyphBraceClose  = "🤛"
	glyphStringStart = "👉"
	glyphStringEnd   = "👈"
	glyphTrue        = "👍"
	glyphFalse       = "👎"
	glyphComment     = "💬"
)

// matchFunc reports the length in bytes of the match at the start of the input,
// or 0 if the input does not start with a match.
type matchFunc func(input []byte) int

// valueFunc converts the matched text into the token's value.
type valueFunc func(text []byte) any

type rule struct {
	match matchFunc
	value valueFunc
	// description is shown in the vocabulary
	description string
	// glyph is the fixed spelling of the rule, if any
	glyph     string
	tokenType TokenType
	// skip rules consume input without emitting a token
	skip bool
}

// rules are tried in order at every position, and the first matching rule wins.
// The order is significant: e.g. the equality glyph must come before the assignment glyph,
// as the latter is a prefix of the former.
var rules = []rule{
	glyphRule(TokenIntType, glyphIntType, "integer type keyword"),
	glyphRule(TokenStringType, glyphStringType, "string type keyword"),
	glyphRule(TokenPrint, glyphPrint, "print keyword"),
	glyphRule(TokenIf, glyphIf, "if keyword"),
	glyphRule(TokenElse, glyphElse, "else keyword"),
	glyphRule(TokenPlus, glyphPlus, "addition"),
	glyphRule(TokenMinus, glyphMinus, "subtraction"),
	glyphRule(TokenWhile, glyphWhile, "while keyword"),
	glyphRule(TokenFor, glyphFor, "for keyword"),
	glyphRule(TokenStar, glyphStar, "multiplication"),
	glyphRule(TokenSlash, glyphSlash, "division"),
	glyphRule(TokenGreater, glyphGreater, "greater than"),
	glyphRule(TokenLess, glyphLess, "less than"),
	glyphRule(TokenEqualEqual, glyphEqualEqual, "equality"),
	glyphRule(TokenAssign, glyphAssign, "assignment"),
	glyphRule(TokenAssign, glyphLeftArrow, "assignment"),
	glyphRule(TokenRightArrow, glyphRightArrow, "range arrow"),
	glyphRule(TokenSemicolon, glyphSemicolon, "statement terminator"),
	glyphRule(TokenParenOpen, glyphParenOpen, "opening parenthesis"),
	glyphRule(TokenParenClose, glyphParenClose, "closing parenthesis"),
	glyphRule(TokenBraceOpen, glyphBraceOpen, "block start"),
	glyphRule(TokenBraceClose, glyphBraceClose, "block end"),
	{
		tokenType:   TokenString,
		match:       matchString,
		value:       stringValue,
		description: "string literal",
	},
	{
		tokenType:   TokenDecimalIntegerLiteral,
		match:       matchDecimal,
		value:       decimalValue,
		description: "integer literal",
	},
	{
		tokenType:   TokenBool,
		glyph:       glyphTrue,
		match:       matchGlyph(glyphTrue),
		value:       boolValue,
		description: "true",
	},
	{
		tokenType:   TokenBool,
		glyph:       glyphFalse,
		match:       matchGlyph(glyphFalse),
		value:       boolValue,
		description: "false",
	},
	{
		tokenType:   TokenIdentifier,
		match:       matchIdentifier,
		value:       identifierValue,
		description: "identifier",
	},
	{
		skip:        true,
		match:       matchSpace,
		description: "whitespace",
	},
	{
		skip:        true,
		glyph:       glyphComment,
		match:       matchComment,
		description: "comment delimiter",
	},
}

func glyphRule(tokenType TokenType, glyph string, description string) rule {
	return rule{
		tokenType:   tokenType,
		glyph:       glyph,
		match:       matchGlyph(glyph),
		description: description,
	}
}

func matchGlyph(glyph string) matchFunc {
	g := []byte(glyph)
	return func(input []byte) int {
		if bytes.HasPrefix(input, g) {
			return len(g)
		}
		return 0
	}
}

// matchDelimited matches text enclosed by the given delimiters.
// The text ends at the first end delimiter, i.e. delimited text does not nest.
func matchDelimited(start, end []byte) matchFunc {
	return func(input []byte) int {
		if !bytes.HasPrefix(input, start) {
			return 0
		}
		rest := input[len(start):]
		index := bytes.Index(rest, end)
		if index < 0 {
			return 0
		}
		return len(start) + index + len(end)
	}
}

var matchString = matchDelimited([]byte(glyphStringStart), []byte(glyphStringEnd))

var matchComment = matchDelimited([]byte(glyphComment), []byte(glyphComment))

func matchWhile(input []byte, f func(r rune) bool) int {
	length := 0
	for length < len(input) {
		r, w := utf8.DecodeRune(input[length:])
		if !f(r) {
			break
		}
		length += w
	}
	return length
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierHead(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}

func isIdentifierTail(r rune) bool {
	return isIdentifierHead(r) || isDecimalDigit(r)
}

func matchDecimal(input []byte) int {
	return matchWhile(input, isDecimalDigit)
}

func matchIdentifier(input []byte) int {
	if len(input) == 0 || !isIdentifierHead(rune(input[0])) {
		return 0
	}
	return 1 + matchWhile(input[1:], isIdentifierTail)
}

func matchSpace(input []byte) int {
	return matchWhile(input, unicode.IsSpace)
}

func stringValue(text []byte) any {
	return string(text[len(glyphStringStart) : len(text)-len(glyphStringEnd)])
}

func decimalValue(text []byte) any {
	value, ok := new(big.Int).SetString(string(text), 10)
	if !ok {
		// matchDecimal only matches decimal digits
		panic(errors.NewUnreachableError())
	}
	return value
}

func boolValue(text []byte) any {
	return string(text) == glyphTrue
}

func identifierValue(text []byte) any {
	return string(text)
}

// VocabularyEntry describes one entry of the glyph vocabulary.
type VocabularyEntry struct {
	Glyph       string
	Description string
	TokenType   TokenType
}

// Vocabulary returns the fixed glyphs of the token-producing rules, in matching order.
func Vocabulary() []VocabularyEntry {
	entries := make([]VocabularyEntry, 0, len(rules))
	for _, rule := range rules {
		if rule.glyph == "" || rule.skip {
			continue
		}
		entries = append(entries, VocabularyEntry{
			Glyph:       rule.glyph,
			Description: rule.description,
			TokenType:   rule.tokenType,
		})
	}
	return entries
}
