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

package interpreter

import (
	"fmt"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
)

// Error is the containing type for all errors produced by the interpreter.
type Error struct {
	Err error
}

var _ errors.ParentError = Error{}

func (e Error) Unwrap() error {
	return e.Err
}

func (e Error) Error() string {
	return e.Err.Error()
}

func (e Error) ChildErrors() []error {
	return []error{e.Err}
}

// PositionedError wraps an unpositioned error with position info
type PositionedError struct {
	Err error
	ast.Range
}

var _ errors.SecondaryError = PositionedError{}

func (e PositionedError) Unwrap() error {
	return e.Err
}

func (e PositionedError) Error() string {
	return e.Err.Error()
}

func (e PositionedError) SecondaryError() string {
	if secondaryError, ok := e.Err.(errors.SecondaryError); ok {
		return secondaryError.SecondaryError()
	}
	return ""
}

// DivisionByZeroError

type DivisionByZeroError struct {
	ast.Range
}

var _ errors.UserError = DivisionByZeroError{}

func (DivisionByZeroError) IsUserError() {}

func (e DivisionByZeroError) Error() string {
	return "division by zero"
}

// UndefinedVariableError is reported when a variable is read before it is declared.
type UndefinedVariableError struct {
	Name string
	// Candidates are the names of the declared variables
	Candidates []string
	ast.Range
}

var _ errors.UserError = UndefinedVariableError{}
var _ errors.SecondaryError = UndefinedVariableError{}

func (UndefinedVariableError) IsUserError() {}

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf(
		"cannot find variable in this scope: `%s`",
		e.Name,
	)
}

func (e UndefinedVariableError) SecondaryError() string {
	suggestion := e.findClosestName()
	if suggestion == "" {
		return "not found in this scope"
	}
	return fmt.Sprintf("not found in this scope, did you mean `%s`?", suggestion)
}

func (e UndefinedVariableError) findClosestName() (closestName string) {
	nameRunes := []rune(e.Name)

	closestDistance := len(e.Name)

	for _, candidate := range e.Candidates {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		// Don't suggest a name if the edits required would replace the whole name.
		// Candidates are sorted, so the first of equally close names wins
		if distance < closestDistance && distance < len(candidate) {
			closestName = candidate
			closestDistance = distance
		}
	}

	return
}

// UnsupportedOperatorError is reported for an operation the interpreter cannot evaluate.
type UnsupportedOperatorError struct {
	Operation ast.Operation
	ast.Range
}

var _ errors.UserError = UnsupportedOperatorError{}

func (UnsupportedOperatorError) IsUserError() {}

func (e UnsupportedOperatorError) Error() string {
	return fmt.Sprintf(
		"cannot evaluate unsupported operation: %s",
		e.Operation,
	)
}

// TypeMismatchError is reported when a value of an unexpected type is used,
// e.g. a non-boolean condition, or an operand of the wrong type.
type TypeMismatchError struct {
	ExpectedType StaticType
	ActualType   StaticType
	ast.Range
}

var _ errors.UserError = TypeMismatchError{}

func (TypeMismatchError) IsUserError() {}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf(
		"mismatched types: expected `%s`, got `%s`",
		e.ExpectedType,
		e.ActualType,
	)
}

// OutputError is reported when the program output cannot be written.
type OutputError struct {
	Err error
}

var _ errors.UserError = OutputError{}

func (OutputError) IsUserError() {}

func (e OutputError) Unwrap() error {
	return e.Err
}

func (e OutputError) Error() string {
	return fmt.Sprintf("failed to write output: %s", e.Err)
}
