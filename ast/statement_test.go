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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printStatement(expression Expression) *PrintStatement {
	return NewPrintStatement(expression, EmptyRange)
}

func TestVariableDeclaration(t *testing.T) {

	t.Parallel()

	declaration := NewVariableDeclaration(
		DeclaredTypeString,
		"name",
		NewStringExpression("emoji", EmptyRange),
		NewRange(NewPosition(0, 1, 1), NewPosition(0, 1, 1)),
	)

	assert.Equal(t, "🔤 name 🟰 👉emoji👈 🛑", declaration.String())
	assert.Equal(t, ElementTypeVariableDeclaration, declaration.ElementType())

	actual, err := json.Marshal(declaration)
	require.NoError(t, err)

	assert.JSONEq(t,
		// language=json
		`
        {
            "Type": "VariableDeclaration",
            "Identifier": "name",
            "DeclaredType": "string",
            "Value": {
                "Type": "StringExpression",
                "Value": "emoji",
                "StartPos": {"Offset": 0, "Line": 0, "Column": 0},
                "EndPos": {"Offset": 0, "Line": 0, "Column": 0}
            },
            "StartPos": {"Offset": 0, "Line": 1, "Column": 1},
            "EndPos": {"Offset": 0, "Line": 1, "Column": 1}
        }
        `,
		string(actual),
	)
}

func TestIfStatement(t *testing.T) {

	t.Parallel()

	test := binary(OperationGreater, NewIdentifierExpression("x", EmptyRange), integer(5))

	t.Run("without else", func(t *testing.T) {

		t.Parallel()

		statement := NewIfStatement(
			test,
			NewBlock([]Statement{printStatement(integer(1))}, EmptyRange),
			nil,
			EmptyRange,
		)

		assert.Equal(t,
			"🙂‍↕️ 🫸x ▶️ 5🫷 🤜\n"+
				"    👀 1 🛑\n"+
				"🤛",
			statement.String(),
		)

		var children []Element
		statement.Walk(func(child Element) {
			children = append(children, child)
		})
		assert.Len(t, children, 2)
	})

	t.Run("with else", func(t *testing.T) {

		t.Parallel()

		statement := NewIfStatement(
			test,
			NewBlock([]Statement{printStatement(integer(1))}, EmptyRange),
			NewBlock(nil, EmptyRange),
			EmptyRange,
		)

		assert.Equal(t,
			"🙂‍↕️ 🫸x ▶️ 5🫷 🤜\n"+
				"    👀 1 🛑\n"+
				"🤛 🙂‍↔️ 🤜🤛",
			statement.String(),
		)

		var children []Element
		statement.Walk(func(child Element) {
			children = append(children, child)
		})
		assert.Len(t, children, 3)
	})
}

func TestWhileStatement(t *testing.T) {

	t.Parallel()

	statement := NewWhileStatement(
		NewBoolExpression(false, EmptyRange),
		NewBlock(
			[]Statement{
				printStatement(integer(1)),
				printStatement(integer(2)),
			},
			EmptyRange,
		),
		EmptyRange,
	)

	assert.Equal(t,
		"🤸‍♂️ 🫸👎🫷 🤜\n"+
			"    👀 1 🛑\n"+
			"    👀 2 🛑\n"+
			"🤛",
		statement.String(),
	)
	assert.Equal(t, ElementTypeWhileStatement, statement.ElementType())
}

func TestForStatement(t *testing.T) {

	t.Parallel()

	statement := NewForStatement(
		"i",
		integer(1),
		NewIdentifierExpression("n", EmptyRange),
		NewBlock(
			[]Statement{
				NewIfStatement(
					NewBoolExpression(true, EmptyRange),
					NewBlock(
						[]Statement{printStatement(NewIdentifierExpression("i", EmptyRange))},
						EmptyRange,
					),
					nil,
					EmptyRange,
				),
			},
			EmptyRange,
		),
		EmptyRange,
	)

	assert.Equal(t,
		"🌀 i 🟰 1 ➡️ n 🤜\n"+
			"    🙂‍↕️ 🫸👍🫷 🤜\n"+
			"        👀 i 🛑\n"+
			"    🤛\n"+
			"🤛",
		statement.String(),
	)

	actual, err := json.Marshal(statement)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(actual, &decoded))

	assert.Equal(t, "ForStatement", decoded["Type"])
	assert.Equal(t, "i", decoded["Identifier"])
	assert.Equal(t, "Block", decoded["Block"].(map[string]any)["Type"])
}

func TestInspect(t *testing.T) {

	t.Parallel()

	program := NewProgram([]Statement{
		NewWhileStatement(
			binary(OperationLess, NewIdentifierExpression("i", EmptyRange), integer(3)),
			NewBlock([]Statement{printStatement(NewIdentifierExpression("i", EmptyRange))}, EmptyRange),
			EmptyRange,
		),
		printStatement(NewStringExpression("done", EmptyRange)),
	})

	t.Run("all", func(t *testing.T) {

		t.Parallel()

		var elementTypes []ElementType
		Inspect(program, func(element Element) bool {
			elementTypes = append(elementTypes, element.ElementType())
			return true
		})

		assert.Equal(t,
			[]ElementType{
				ElementTypeProgram,
				ElementTypeWhileStatement,
				ElementTypeBinaryExpression,
				ElementTypeIdentifierExpression,
				ElementTypeIntegerExpression,
				ElementTypeBlock,
				ElementTypePrintStatement,
				ElementTypeIdentifierExpression,
				ElementTypePrintStatement,
				ElementTypeStringExpression,
			},
			elementTypes,
		)
	})

	t.Run("skip children", func(t *testing.T) {

		t.Parallel()

		var elementTypes []ElementType
		Inspect(program, func(element Element) bool {
			elementTypes = append(elementTypes, element.ElementType())
			return element.ElementType() == ElementTypeProgram
		})

		assert.Equal(t,
			[]ElementType{
				ElementTypeProgram,
				ElementTypeWhileStatement,
				ElementTypePrintStatement,
			},
			elementTypes,
		)
	})
}
