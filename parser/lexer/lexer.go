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
	"unicode/utf8"

	"github.com/emojilang/emojilang/ast"
)

// tokenLimit is a sensible limit for how many tokens may be emitted
const tokenLimit = 1 << 19

type lexer struct {
	input []byte
	// cursor is the position of the next unconsumed character
	cursor ast.Position
	tokens []Token
}

// Lex converts the input into a sequence of tokens, terminated by a TokenEOF token.
// Whitespace and comments are skipped.
func Lex(input []byte) ([]Token, error) {
	l := &lexer{
		input:  input,
		cursor: ast.NewPosition(0, 1, 1),
	}
	err := l.run()
	if err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func LexString(input string) ([]Token, error) {
	return Lex([]byte(input))
}

func (l *lexer) run() error {
	for l.cursor.Offset < len(l.input) {
		rest := l.input[l.cursor.Offset:]

		rule, length := matchRule(rest)
		if length == 0 {
			r, _ := utf8.DecodeRune(rest)
			return &Error{
				Pos:  l.cursor,
				Char: r,
			}
		}

		text := rest[:length]
		startPos := l.cursor
		endPos := l.advance(text)

		if rule.skip {
			continue
		}

		err := l.emit(rule, text, ast.NewRange(startPos, endPos))
		if err != nil {
			return err
		}
	}

	l.tokens = append(
		l.tokens,
		Token{
			Type:  TokenEOF,
			Range: ast.NewRange(l.cursor, l.cursor),
		},
	)

	return nil
}

func matchRule(input []byte) (*rule, int) {
	for i := range rules {
		rule := &rules[i]
		length := rule.match(input)
		if length > 0 {
			return rule, length
		}
	}
	return nil, 0
}

func (l *lexer) emit(rule *rule, text []byte, tokenRange ast.Range) error {
	if len(l.tokens) >= tokenLimit {
		return TokenLimitReachedError{}
	}

	var value any
	if rule.value != nil {
		value = rule.value(text)
	}

	l.tokens = append(
		l.tokens,
		Token{
			Type:  rule.tokenType,
			Value: value,
			Range: tokenRange,
		},
	)

	return nil
}

// advance moves the cursor past the given text,
// and returns the position of the text's last code point.
func (l *lexer) advance(text []byte) ast.Position {
	last := l.cursor
	for len(text) > 0 {
		r, width := utf8.DecodeRune(text)
		text = text[width:]

		last = l.cursor
		l.cursor.Offset += width
		if r == '\n' {
			l.cursor.Line++
			l.cursor.Column = 1
		} else {
			l.cursor.Column++
		}
	}
	return last
}
