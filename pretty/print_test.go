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

package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emojilang/emojilang/ast"
)

type testError struct {
	ast.Range
}

func (testError) Error() string {
	return "test error"
}

type testSecondaryError struct {
	ast.Range
}

func (testSecondaryError) Error() string {
	return "test error"
}

func (testSecondaryError) SecondaryError() string {
	return "did you mean `x`?"
}

type testParentError struct {
	errs []error
}

func (testParentError) Error() string {
	return "parent"
}

func (e testParentError) ChildErrors() []error {
	return e.errs
}

func singleLineRange(line, startColumn, endColumn int) ast.Range {
	return ast.Range{
		StartPos: ast.Position{
			Line:   line,
			Column: startColumn,
		},
		EndPos: ast.Position{
			Line:   line,
			Column: endColumn,
		},
	}
}

func TestPrintBrokenCode(t *testing.T) {

	t.Parallel()

	const code = "👀 1🛑"
	lineCount := len(strings.Split(code, "\n"))

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					// NOTE: line number is after end of code
					Line:   lineCount + 2,
					Column: 1,
				},
				EndPos: ast.Position{
					Line:   lineCount,
					Column: 2,
				},
			},
		},
		"test",
		[]byte(code),
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:3:1\n",
		sb.String(),
	)
}

func TestPrintTabs(t *testing.T) {

	t.Parallel()

	const code = "\t  \t   🔢 x 🟰 1🛑"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: singleLineRange(1, 8, 8),
		},
		"test",
		[]byte(code),
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:8\n"+
			"  |\n"+
			"1 | \t  \t   🔢 x 🟰 1🛑\n"+
			"  | \t  \t   ^^\n",
		sb.String(),
	)
}

func TestPrintWideGlyphs(t *testing.T) {

	t.Parallel()

	const code = "👀 x\n👀 🦄🛑"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: singleLineRange(2, 3, 3),
		},
		"",
		[]byte(code),
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> 2:3\n"+
			"  |\n"+
			"2 | 👀 🦄🛑\n"+
			"  |    ^^\n",
		sb.String(),
	)
}

func TestPrintSecondaryError(t *testing.T) {

	t.Parallel()

	const code = "👀 y🛑"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testSecondaryError{
			Range: singleLineRange(1, 3, 3),
		},
		"test",
		[]byte(code),
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:3\n"+
			"  |\n"+
			"1 | 👀 y🛑\n"+
			"  |    ^ did you mean `x`?\n",
		sb.String(),
	)
}

func TestPrintWithoutPosition(t *testing.T) {

	t.Parallel()

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testSecondaryError{},
		"test",
		nil,
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			"  = did you mean `x`?\n",
		sb.String(),
	)
}

func TestPrintChildErrors(t *testing.T) {

	t.Parallel()

	const code = "👀 1🛑\n👀 2🛑"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testParentError{
			errs: []error{
				testError{Range: singleLineRange(1, 3, 3)},
				testError{Range: singleLineRange(2, 3, 3)},
			},
		},
		"test",
		[]byte(code),
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:3\n"+
			"  |\n"+
			"1 | 👀 1🛑\n"+
			"  |    ^\n"+
			"\n"+
			"error: test error\n"+
			" --> test:2:3\n"+
			"  |\n"+
			"2 | 👀 2🛑\n"+
			"  |    ^\n",
		sb.String(),
	)
}

func TestPrintColors(t *testing.T) {

	t.Parallel()

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, true)
	err := printer.PrettyPrintError(
		testError{},
		"test",
		nil,
	)
	require.NoError(t, err)

	assert.Contains(t, sb.String(), "\x1b[")
	assert.Contains(t, sb.String(), "test error")
}

func TestFormatErrorMessage(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		"error: missing file",
		FormatErrorMessage(ErrorPrefix, "missing file", false),
	)

	colored := FormatErrorMessage(ErrorPrefix, "missing file", true)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "missing file")
}
