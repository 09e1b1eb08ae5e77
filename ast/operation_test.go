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

func TestOperation(t *testing.T) {

	t.Parallel()

	type testCase struct {
		symbol   string
		glyph    string
		category string
	}

	testCases := map[Operation]testCase{
		OperationEqual:   {"==", "🟰🟰", "comparison"},
		OperationLess:    {"<", "◀️", "comparison"},
		OperationGreater: {">", "▶️", "comparison"},
		OperationPlus:    {"+", "➕", "arithmetic"},
		OperationMinus:   {"-", "➖", "arithmetic"},
		OperationMul:     {"*", "✖️", "arithmetic"},
		OperationDiv:     {"/", "➗", "arithmetic"},
	}

	// Ensure all operations are covered
	require.Len(t, testCases, OperationCount()-1)

	for operation, testCase := range testCases {
		operation := operation
		testCase := testCase

		t.Run(operation.String(), func(t *testing.T) {

			t.Parallel()

			assert.Equal(t, testCase.symbol, operation.Symbol())
			assert.Equal(t, testCase.glyph, operation.Glyph())
			assert.Equal(t, testCase.category, operation.Category())
		})
	}

	t.Run("unknown", func(t *testing.T) {

		t.Parallel()

		assert.Panics(t, func() {
			_ = OperationUnknown.Glyph()
		})
		assert.Panics(t, func() {
			_ = OperationUnknown.Category()
		})
	})
}

func TestOperation_MarshalJSON(t *testing.T) {

	t.Parallel()

	actual, err := json.Marshal(OperationGreater)
	require.NoError(t, err)

	assert.JSONEq(t, `"OperationGreater"`, string(actual))
}

func TestDeclaredType(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "int", DeclaredTypeInt.String())
	assert.Equal(t, "🔢", DeclaredTypeInt.Glyph())
	assert.Equal(t, "string", DeclaredTypeString.String())
	assert.Equal(t, "🔤", DeclaredTypeString.Glyph())
	assert.Equal(t, "unknown", DeclaredTypeUnknown.String())

	actual, err := json.Marshal(DeclaredTypeInt)
	require.NoError(t, err)
	assert.JSONEq(t, `"int"`, string(actual))
}

type elementTypeVisitor struct{}

var _ StatementVisitor[ElementType] = elementTypeVisitor{}
var _ ExpressionVisitor[ElementType] = elementTypeVisitor{}

func (elementTypeVisitor) VisitVariableDeclaration(*VariableDeclaration) ElementType {
	return ElementTypeVariableDeclaration
}

func (elementTypeVisitor) VisitPrintStatement(*PrintStatement) ElementType {
	return ElementTypePrintStatement
}

func (elementTypeVisitor) VisitIfStatement(*IfStatement) ElementType {
	return ElementTypeIfStatement
}

func (elementTypeVisitor) VisitWhileStatement(*WhileStatement) ElementType {
	return ElementTypeWhileStatement
}

func (elementTypeVisitor) VisitForStatement(*ForStatement) ElementType {
	return ElementTypeForStatement
}

func (elementTypeVisitor) VisitBoolExpression(*BoolExpression) ElementType {
	return ElementTypeBoolExpression
}

func (elementTypeVisitor) VisitStringExpression(*StringExpression) ElementType {
	return ElementTypeStringExpression
}

func (elementTypeVisitor) VisitIntegerExpression(*IntegerExpression) ElementType {
	return ElementTypeIntegerExpression
}

func (elementTypeVisitor) VisitIdentifierExpression(*IdentifierExpression) ElementType {
	return ElementTypeIdentifierExpression
}

func (elementTypeVisitor) VisitBinaryExpression(*BinaryExpression) ElementType {
	return ElementTypeBinaryExpression
}

func TestAccept(t *testing.T) {

	t.Parallel()

	statements := []Statement{
		NewVariableDeclaration(DeclaredTypeInt, "x", integer(1), EmptyRange),
		printStatement(integer(1)),
		NewIfStatement(NewBoolExpression(true, EmptyRange), NewBlock(nil, EmptyRange), nil, EmptyRange),
		NewWhileStatement(NewBoolExpression(false, EmptyRange), NewBlock(nil, EmptyRange), EmptyRange),
		NewForStatement("i", integer(1), integer(2), NewBlock(nil, EmptyRange), EmptyRange),
	}

	for _, statement := range statements {
		assert.Equal(t,
			statement.ElementType(),
			AcceptStatement[ElementType](statement, elementTypeVisitor{}),
		)
	}

	expressions := []Expression{
		NewBoolExpression(true, EmptyRange),
		NewStringExpression("", EmptyRange),
		integer(1),
		NewIdentifierExpression("x", EmptyRange),
		binary(OperationPlus, integer(1), integer(2)),
	}

	for _, expression := range expressions {
		assert.Equal(t,
			expression.ElementType(),
			AcceptExpression[ElementType](expression, elementTypeVisitor{}),
		)
	}
}
