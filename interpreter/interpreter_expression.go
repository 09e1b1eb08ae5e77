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
	"time"

	"github.com/emojilang/emojilang/ast"
)

func (interpreter *Interpreter) VisitBoolExpression(expression *ast.BoolExpression) Value {
	return AsBoolValue(expression.Value)
}

func (interpreter *Interpreter) VisitStringExpression(expression *ast.StringExpression) Value {
	return NewStringValue(expression.Value)
}

func (interpreter *Interpreter) VisitIntegerExpression(expression *ast.IntegerExpression) Value {
	return NewIntValueFromBigInt(expression.Value)
}

func (interpreter *Interpreter) VisitIdentifierExpression(expression *ast.IdentifierExpression) Value {
	name := expression.Identifier

	value, ok := interpreter.Environment.Get(name)
	if !ok {
		panic(UndefinedVariableError{
			Name:       name,
			Candidates: interpreter.Environment.Names(),
			Range:      expression.Range,
		})
	}

	return value
}

func (interpreter *Interpreter) VisitBinaryExpression(expression *ast.BinaryExpression) Value {

	// both operands are evaluated, left first, before the operation is applied
	left := interpreter.evalExpression(expression.Left)
	right := interpreter.evalExpression(expression.Right)

	if interpreter.Config.TracingEnabled {
		startTime := time.Now()

		defer func() {
			interpreter.reportOperationTrace(expression.Operation, time.Since(startTime))
		}()
	}

	switch expression.Operation {
	case ast.OperationPlus:
		leftString, leftOK := left.(*StringValue)
		rightString, rightOK := right.(*StringValue)
		if leftOK && rightOK {
			return leftString.Concat(rightString)
		}

		leftNumber, rightNumber := interpreter.numberOperands(expression, left, right)
		return leftNumber.Plus(rightNumber)

	case ast.OperationMinus:
		leftNumber, rightNumber := interpreter.numberOperands(expression, left, right)
		return leftNumber.Minus(rightNumber)

	case ast.OperationMul:
		leftNumber, rightNumber := interpreter.numberOperands(expression, left, right)
		return leftNumber.Mul(rightNumber)

	case ast.OperationDiv:
		leftNumber, rightNumber := interpreter.numberOperands(expression, left, right)
		return leftNumber.Div(rightNumber, expression.Range)

	case ast.OperationLess:
		leftComparable, rightComparable := interpreter.comparableOperands(expression, left, right)
		return leftComparable.Less(rightComparable)

	case ast.OperationGreater:
		leftComparable, rightComparable := interpreter.comparableOperands(expression, left, right)
		return leftComparable.Greater(rightComparable)

	case ast.OperationEqual:
		return AsBoolValue(testEqual(left, right))
	}

	panic(UnsupportedOperatorError{
		Operation: expression.Operation,
		Range:     expression.Range,
	})
}

// numberOperands ensures both operands of an arithmetic operation are numbers
func (interpreter *Interpreter) numberOperands(
	expression *ast.BinaryExpression,
	left, right Value,
) (NumberValue, NumberValue) {

	leftNumber, ok := left.(NumberValue)
	if !ok {
		panic(TypeMismatchError{
			ExpectedType: StaticTypeNumber,
			ActualType:   left.StaticType(),
			Range:        expression.Range,
		})
	}

	rightNumber, ok := right.(NumberValue)
	if !ok {
		panic(TypeMismatchError{
			ExpectedType: StaticTypeNumber,
			ActualType:   right.StaticType(),
			Range:        expression.Range,
		})
	}

	return leftNumber, rightNumber
}

// comparableOperands ensures both operands of a comparison are either numbers or strings
func (interpreter *Interpreter) comparableOperands(
	expression *ast.BinaryExpression,
	left, right Value,
) (ComparableValue, ComparableValue) {

	switch left := left.(type) {
	case NumberValue:
		rightNumber, ok := right.(NumberValue)
		if ok {
			return left, rightNumber
		}

	case *StringValue:
		rightString, ok := right.(*StringValue)
		if ok {
			return left, rightString
		}

	default:
		panic(TypeMismatchError{
			ExpectedType: StaticTypeNumber,
			ActualType:   left.StaticType(),
			Range:        expression.Range,
		})
	}

	panic(TypeMismatchError{
		ExpectedType: comparisonType(left),
		ActualType:   right.StaticType(),
		Range:        expression.Range,
	})
}

// comparisonType returns the type the other operand of a comparison must have
func comparisonType(value Value) StaticType {
	if _, ok := value.(NumberValue); ok {
		return StaticTypeNumber
	}
	return value.StaticType()
}

func testEqual(left, right Value) bool {
	leftEquatable, ok := left.(EquatableValue)
	if !ok {
		return false
	}
	return leftEquatable.Equal(right)
}
