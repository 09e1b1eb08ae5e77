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
	"github.com/emojilang/emojilang/errors"
)

type StatementVisitor[T any] interface {
	VisitVariableDeclaration(*VariableDeclaration) T
	VisitPrintStatement(*PrintStatement) T
	VisitIfStatement(*IfStatement) T
	VisitWhileStatement(*WhileStatement) T
	VisitForStatement(*ForStatement) T
}

func AcceptStatement[T any](statement Statement, visitor StatementVisitor[T]) (_ T) {

	switch statement.ElementType() {
	case ElementTypeVariableDeclaration:
		return visitor.VisitVariableDeclaration(statement.(*VariableDeclaration))

	case ElementTypePrintStatement:
		return visitor.VisitPrintStatement(statement.(*PrintStatement))

	case ElementTypeIfStatement:
		return visitor.VisitIfStatement(statement.(*IfStatement))

	case ElementTypeWhileStatement:
		return visitor.VisitWhileStatement(statement.(*WhileStatement))

	case ElementTypeForStatement:
		return visitor.VisitForStatement(statement.(*ForStatement))
	}

	panic(errors.NewUnreachableError())
}

type ExpressionVisitor[T any] interface {
	VisitBoolExpression(*BoolExpression) T
	VisitStringExpression(*StringExpression) T
	VisitIntegerExpression(*IntegerExpression) T
	VisitIdentifierExpression(*IdentifierExpression) T
	VisitBinaryExpression(*BinaryExpression) T
}

func AcceptExpression[T any](expression Expression, visitor ExpressionVisitor[T]) (_ T) {

	switch expression.ElementType() {
	case ElementTypeBoolExpression:
		return visitor.VisitBoolExpression(expression.(*BoolExpression))

	case ElementTypeStringExpression:
		return visitor.VisitStringExpression(expression.(*StringExpression))

	case ElementTypeIntegerExpression:
		return visitor.VisitIntegerExpression(expression.(*IntegerExpression))

	case ElementTypeIdentifierExpression:
		return visitor.VisitIdentifierExpression(expression.(*IdentifierExpression))

	case ElementTypeBinaryExpression:
		return visitor.VisitBinaryExpression(expression.(*BinaryExpression))
	}

	panic(errors.NewUnreachableError())
}
