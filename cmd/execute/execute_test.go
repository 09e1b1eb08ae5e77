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

package execute

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/goleak"

	"github.com/emojilang/emojilang/cmd"
	"github.com/emojilang/emojilang/interpreter"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testOptions(format cmd.ASTFormat) (Options, *strings.Builder, *strings.Builder) {
	var stdout, stderr strings.Builder
	return Options{
		ASTFormat: format,
		Stdout:    &stdout,
		Stderr:    &stderr,
	}, &stdout, &stderr
}

func TestRun(t *testing.T) {

	t.Parallel()

	t.Run("without AST", func(t *testing.T) {

		t.Parallel()

		options, stdout, stderr := testOptions(cmd.ASTFormatNone)

		err := Run([]byte("🔢 x 🟰 5🛑 👀 x🛑"), options)
		require.NoError(t, err)

		assert.Equal(t, "5\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("with AST", func(t *testing.T) {

		t.Parallel()

		options, stdout, _ := testOptions(cmd.ASTFormatSource)

		err := Run([]byte("🔢 x 🟰 5🛑 👀 x🛑"), options)
		require.NoError(t, err)

		assert.Equal(t,
			"=== AST ===\n"+
				"🔢 x 🟰 5 🛑\n"+
				"👀 x 🛑\n"+
				"\n"+
				"=== Output ===\n"+
				"5\n"+
				"=== End ===\n",
			stdout.String(),
		)
	})

	t.Run("runtime error", func(t *testing.T) {

		t.Parallel()

		options, stdout, _ := testOptions(cmd.ASTFormatSource)

		err := Run([]byte("👀 1🛑 👀 undefined🛑"), options)
		require.Error(t, err)

		var undefinedVariableError interpreter.UndefinedVariableError
		require.ErrorAs(t, err, &undefinedVariableError)

		// the output up to the error is kept, the footer is missing
		assert.True(t, strings.HasSuffix(stdout.String(), "=== Output ===\n1\n"))
	})

	t.Run("parse error", func(t *testing.T) {

		t.Parallel()

		options, stdout, _ := testOptions(cmd.ASTFormatSource)

		err := Run([]byte("👀 1🛑 👀"), options)
		require.Error(t, err)

		// nothing is rendered or executed
		assert.Empty(t, stdout.String())
	})

	t.Run("trace", func(t *testing.T) {

		t.Parallel()

		options, stdout, stderr := testOptions(cmd.ASTFormatNone)
		options.Trace = true

		err := Run([]byte("👀 1 ➕ 1🛑"), options)
		require.NoError(t, err)

		assert.Equal(t, "2\n", stdout.String())

		lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "operation.Plus "))
		assert.Contains(t, lines[0], " category=arithmetic glyph=➕")
		assert.True(t, strings.HasPrefix(lines[1], "statement.PrintStatement "))
		assert.Contains(t, lines[1], " line=1 column=1")
		assert.True(t, strings.HasPrefix(lines[2], "program "))
	})
}

func TestFormatTrace(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		"statement.PrintStatement 1.5ms line=2 column=3",
		formatTrace(
			"statement.PrintStatement",
			1500*time.Microsecond,
			[]attribute.KeyValue{
				attribute.Int("line", 2),
				attribute.Int("column", 3),
			},
			false,
		),
	)
}
