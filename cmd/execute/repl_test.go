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
	"testing"

	"github.com/c-bata/go-prompt"
	"github.com/stretchr/testify/assert"

	"github.com/emojilang/emojilang/cmd"
)

func TestREPLSession(t *testing.T) {

	t.Parallel()

	t.Run("lines", func(t *testing.T) {

		t.Parallel()

		options, stdout, stderr := testOptions(cmd.ASTFormatNone)
		session := newREPLSession(options)

		assert.Equal(t, "1> ", session.prefix())

		session.execute("🔢 n 🟰 2🛑")
		session.execute("🌀 i 🟰 1 ➡️ n 🤜")

		assert.Equal(t, "3. ", session.prefix())

		session.execute("👀 i🛑")
		session.execute("🤛")

		assert.Equal(t, "5> ", session.prefix())
		assert.Equal(t, "1\n2\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("error positions match lines", func(t *testing.T) {

		t.Parallel()

		options, _, stderr := testOptions(cmd.ASTFormatNone)
		session := newREPLSession(options)

		session.execute("🔢 a 🟰 1🛑")
		session.execute("👀 b🛑")

		assert.Equal(t,
			"error: cannot find variable in this scope: `b`\n"+
				" --> 2:3\n"+
				"  |\n"+
				"2 | 👀 b🛑\n"+
				"  |    ^ not found in this scope\n",
			stderr.String(),
		)

		// the session continues
		assert.Equal(t, "3> ", session.prefix())
	})

	t.Run("expression", func(t *testing.T) {

		t.Parallel()

		options, stdout, stderr := testOptions(cmd.ASTFormatNone)
		session := newREPLSession(options)

		session.execute("🔢 a 🟰 20🛑")
		session.execute("a ✖️ 2 ➕ 2")

		assert.Equal(t, "42\n", stdout.String())
		assert.Empty(t, stderr.String())
		assert.Equal(t, "3> ", session.prefix())
	})

	t.Run("commands", func(t *testing.T) {

		t.Parallel()

		options, stdout, _ := testOptions(cmd.ASTFormatNone)
		session := newREPLSession(options)

		session.execute(".vars")
		assert.Equal(t, "no variables declared\n", stdout.String())
		stdout.Reset()

		session.execute("🔢 a 🟰 1🛑")
		session.execute("🔤 b ⬅️ 👉two👈🛑")
		session.execute(".vars")
		assert.Equal(t, "a: int = 1\nb: string = two\n", stdout.String())
		stdout.Reset()

		session.execute(".help")
		assert.Contains(t, stdout.String(), ".vars     Print the declared variables")
		stdout.Reset()

		session.execute(".unknown")
		assert.Equal(t, "Unknown command. Type '.help' for assistance.\n", stdout.String())
	})

	t.Run("suggestions", func(t *testing.T) {

		t.Parallel()

		options, _, _ := testOptions(cmd.ASTFormatNone)
		session := newREPLSession(options)

		session.execute("🔢 counter 🟰 1🛑")

		buffer := prompt.NewBuffer()
		buffer.InsertText("👀 cou", false, true)

		suggestions := session.suggest(*buffer.Document())
		assert.Equal(t,
			[]prompt.Suggest{
				{Text: "counter", Description: "int"},
			},
			suggestions,
		)

		empty := prompt.NewBuffer()
		assert.Nil(t, session.suggest(*empty.Document()))
	})
}
