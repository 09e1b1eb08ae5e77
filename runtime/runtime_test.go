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

package runtime

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/goleak"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
	"github.com/emojilang/emojilang/interpreter"
	"github.com/emojilang/emojilang/parser"
	"github.com/emojilang/emojilang/parser/lexer"
	. "github.com/emojilang/emojilang/test_utils/common_utils"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const fizzProgram = `
💬 counts to three, and reports which numbers are large 💬
🔢 limit 🟰 3🛑
🌀 i 🟰 1 ➡️ limit 🤜
    🙂‍↕️ 🫸i ▶️ 1🫷 🤜
        👀 👉large👈🛑
    🤛 🙂‍↔️ 🤜
        👀 i🛑
    🤛
🤛
🔤 done ⬅️ 👉done👈🛑
👀 done🛑
`

func TestExecuteProgram(t *testing.T) {

	t.Parallel()

	var stdout strings.Builder

	environment, err := ExecuteProgram(
		[]byte(fizzProgram),
		Config{
			Stdout: &stdout,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "1\nlarge\nlarge\ndone\n", stdout.String())
	assert.Equal(t, []string{"done", "i", "limit"}, environment.Names())

	value, ok := environment.Get("i")
	require.True(t, ok)
	assert.Equal(t, interpreter.NewIntValueFromInt64(4), value)
}

func TestExecuteProgramDeclarationPrintsOnce(t *testing.T) {

	t.Parallel()

	var stdout strings.Builder

	_, err := ExecuteProgram(
		[]byte("🔢 x 🟰 5🛑 👀 x🛑"),
		Config{
			Stdout: &stdout,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "5\n", stdout.String())
}

func TestExecuteProgramErrors(t *testing.T) {

	t.Parallel()

	t.Run("lexer error", func(t *testing.T) {

		t.Parallel()

		var stdout strings.Builder
		parsed := false

		_, err := ExecuteProgram(
			[]byte("👀 1🛑 👀 🦄🛑"),
			Config{
				Stdout: &stdout,
				OnProgramParsed: func(_ *ast.Program) {
					parsed = true
				},
			},
		)
		RequireError(t, err)

		var lexerError *lexer.Error
		require.ErrorAs(t, err, &lexerError)

		// nothing is executed
		assert.False(t, parsed)
		assert.Empty(t, stdout.String())
	})

	t.Run("parser error", func(t *testing.T) {

		t.Parallel()

		var stdout strings.Builder

		_, err := ExecuteProgram(
			[]byte("👀 1🛑 👀 1 2🛑"),
			Config{
				Stdout: &stdout,
			},
		)
		RequireError(t, err)

		var syntaxError *parser.SyntaxError
		require.ErrorAs(t, err, &syntaxError)
		assert.True(t, errors.IsUserError(err))
		assert.Empty(t, stdout.String())
	})

	t.Run("runtime error", func(t *testing.T) {

		t.Parallel()

		var stdout strings.Builder

		environment, err := ExecuteProgram(
			[]byte("🔢 a 🟰 1🛑 👀 a🛑 👀 b🛑 👀 a🛑"),
			Config{
				Stdout: &stdout,
			},
		)
		RequireError(t, err)

		var undefinedVariableError interpreter.UndefinedVariableError
		require.ErrorAs(t, err, &undefinedVariableError)
		assert.Equal(t, "b", undefinedVariableError.Name)

		// execution stops at the failing statement
		assert.Equal(t, "1\n", stdout.String())
		assert.True(t, environment.Has("a"))
	})
}

func TestExecuteProgramStrictBlocks(t *testing.T) {

	t.Parallel()

	code := []byte("🙂‍↕️ 🫸👍🫷 🤜 🤸‍♂️ 🫸👎🫷 🤜🤛 🤛")

	_, err := ExecuteProgram(code, Config{Stdout: &strings.Builder{}})
	require.NoError(t, err)

	_, err = ExecuteProgram(
		code,
		Config{
			Parser: parser.Config{
				StrictBlocks: true,
			},
			Stdout: &strings.Builder{},
		},
	)
	RequireError(t, err)
}

func TestExecuteProgramHooks(t *testing.T) {

	t.Parallel()

	var (
		program    *ast.Program
		statements int
		traces     []string
	)

	_, err := ExecuteProgram(
		[]byte("🔢 x 🟰 2 ✖️ 3🛑 👀 x🛑"),
		Config{
			Stdout: &strings.Builder{},
			OnProgramParsed: func(parsed *ast.Program) {
				program = parsed
			},
			OnStatement: func(_ *interpreter.Interpreter, _ ast.Statement) {
				statements++
			},
			Tracer: interpreter.Tracer{
				TracingEnabled: true,
				OnRecordTrace: func(
					_ *interpreter.Interpreter,
					operationName string,
					_ time.Duration,
					_ []attribute.KeyValue,
				) {
					traces = append(traces, operationName)
				},
			},
		},
	)
	require.NoError(t, err)

	require.NotNil(t, program)
	assert.Len(t, program.Statements(), 2)
	assert.Equal(t, 2, statements)
	assert.Equal(t,
		[]string{
			"operation.Mul",
			"statement.VariableDeclaration",
			"statement.PrintStatement",
			"program",
		},
		traces,
	)
}

func TestParseProgram(t *testing.T) {

	t.Parallel()

	program, err := ParseProgram([]byte("👀 1 ➕ 2🛑"), Config{})
	require.NoError(t, err)

	assert.Equal(t, "👀 1 ➕ 2 🛑", program.String())
}
