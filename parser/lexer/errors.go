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
	"fmt"
	"unicode/utf8"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
)

// Error is reported at the first position where no rule matches.
type Error struct {
	Pos  ast.Position
	Char rune
}

var _ errors.UserError = &Error{}
var _ errors.SecondaryError = &Error{}
var _ ast.HasPosition = &Error{}

func (*Error) IsUserError() {}

func (e *Error) StartPosition() ast.Position {
	return e.Pos
}

func (e *Error) EndPosition() ast.Position {
	return e.Pos
}

func (e *Error) Error() string {
	return fmt.Sprintf(
		"unexpected character %s at line %d, column %d",
		quoteChar(e.Char),
		e.Pos.Line,
		e.Pos.Column,
	)
}

// IsUnterminated reports whether the error is caused by a string literal or a comment
// which is still open at the end of the input.
func (e *Error) IsUnterminated() bool {
	switch string(e.Char) {
	case glyphStringStart, glyphComment:
		return true
	}
	return false
}

func (e *Error) SecondaryError() string {
	switch string(e.Char) {
	case glyphStringStart:
		return fmt.Sprintf("string literal is never terminated, expected closing %s", glyphStringEnd)
	case glyphComment:
		return fmt.Sprintf("comment is never terminated, expected closing %s", glyphComment)
	}
	return ""
}

func quoteChar(r rune) string {
	if r == utf8.RuneError || !utf8.ValidRune(r) {
		return fmt.Sprintf("%#U", r)
	}
	return fmt.Sprintf("'%c' (%U)", r, r)
}

// TokenLimitReachedError

type TokenLimitReachedError struct{}

var _ errors.UserError = TokenLimitReachedError{}

func (TokenLimitReachedError) IsUserError() {}

func (TokenLimitReachedError) Error() string {
	return fmt.Sprintf("limit of %d tokens exceeded", tokenLimit)
}
