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

package parser

import (
	goErrors "errors"
	"strings"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
	"github.com/emojilang/emojilang/parser/lexer"
	"github.com/emojilang/emojilang/pretty"
)

// Error

type Error struct {
	Code   []byte
	Errors []error
}

var _ errors.ParentError = Error{}
var _ errors.UserError = Error{}

func (Error) IsUserError() {}

func (e Error) Error() string {
	var sb strings.Builder
	sb.WriteString("Parsing failed:\n")
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(e, "", e.Code)
	if printErr != nil {
		panic(printErr)
	}
	return sb.String()
}

func (e Error) ChildErrors() []error {
	return e.Errors
}

func (e Error) Unwrap() []error {
	return e.Errors
}

// IsEndOfInput reports whether parsing failed because the input ended early,
// e.g. in the middle of a block, or inside a string literal or a comment.
func (e Error) IsEndOfInput() bool {
	for _, err := range e.Errors {
		var syntaxError *SyntaxError
		if goErrors.As(err, &syntaxError) && syntaxError.EndOfInput {
			return true
		}

		var lexerError *lexer.Error
		if goErrors.As(err, &lexerError) && lexerError.IsUnterminated() {
			return true
		}
	}
	return false
}

// ParseError

type ParseError interface {
	errors.UserError
	ast.HasPosition
	isParseError()
}

// SyntaxError

type SyntaxError struct {
	Message string
	Pos     ast.Position
	// EndOfInput reports that the tokens were exhausted at the error position
	EndOfInput bool
}

var _ ParseError = &SyntaxError{}

func (*SyntaxError) isParseError() {}

func (*SyntaxError) IsUserError() {}

func (e *SyntaxError) StartPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) EndPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) Error() string {
	return e.Message
}
