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

package ast

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbolent/prettier"
)

func TestProgram_MarshalJSON(t *testing.T) {

	t.Parallel()

	program := NewProgram(nil)

	actual, err := json.Marshal(program)
	require.NoError(t, err)

	assert.JSONEq(t,
		// language=json
		`
        {
            "Type": "Program",
            "Statements": []
        }
        `,
		string(actual),
	)
}

func TestProgram_Doc(t *testing.T) {

	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		program := NewProgram([]Statement{})

		assert.Equal(t,
			prettier.Text(""),
			program.Doc(),
		)
	})

	t.Run("with nil statement", func(t *testing.T) {
		t.Parallel()

		program := NewProgram([]Statement{
			nil,
		})

		assert.Equal(t,
			prettier.Text(""),
			program.Doc(),
		)
	})
}

func TestProgram_String(t *testing.T) {

	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		program := NewProgram([]Statement{})

		assert.Equal(t, "", program.String())
	})

	t.Run("with statements", func(t *testing.T) {
		t.Parallel()

		program := NewProgram([]Statement{
			NewVariableDeclaration(
				DeclaredTypeInt,
				"x",
				NewIntegerExpression(big.NewInt(5), EmptyRange),
				EmptyRange,
			),
			NewPrintStatement(
				NewIdentifierExpression("x", EmptyRange),
				EmptyRange,
			),
		})

		assert.Equal(t,
			"🔢 x 🟰 5 🛑\n"+
				"👀 x 🛑",
			program.String(),
		)
	})
}

func TestProgram_Position(t *testing.T) {

	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		program := NewProgram(nil)

		assert.Equal(t, EmptyPosition, program.StartPosition())
		assert.Equal(t, EmptyPosition, program.EndPosition())
	})

	t.Run("with statements", func(t *testing.T) {
		t.Parallel()

		first := NewPrintStatement(
			NewBoolExpression(true, EmptyRange),
			NewRange(NewPosition(0, 1, 1), NewPosition(0, 1, 1)),
		)
		last := NewPrintStatement(
			NewBoolExpression(false, EmptyRange),
			NewRange(NewPosition(20, 2, 1), NewPosition(20, 2, 1)),
		)

		program := NewProgram([]Statement{first, last})

		assert.Equal(t, NewPosition(0, 1, 1), program.StartPosition())
		assert.Equal(t, NewPosition(20, 2, 1), program.EndPosition())
		assert.Equal(t, ElementTypeProgram, program.ElementType())
	})
}
