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
	"io"

	"github.com/emojilang/emojilang/ast"
)

var oneValue = NewIntValueFromInt64(1)

func (interpreter *Interpreter) VisitVariableDeclaration(declaration *ast.VariableDeclaration) StatementResult {
	// The declared type is descriptive only:
	// the value is bound regardless of its type, and a redeclaration may change the type
	value := interpreter.evalExpression(declaration.Value)
	interpreter.Environment.Set(declaration.Identifier, value)
	return nil
}

func (interpreter *Interpreter) VisitPrintStatement(statement *ast.PrintStatement) StatementResult {
	value := interpreter.evalExpression(statement.Expression)

	_, err := io.WriteString(interpreter.Config.Stdout, value.String()+"\n")
	if err != nil {
		panic(OutputError{Err: err})
	}

	return nil
}

func (interpreter *Interpreter) VisitIfStatement(statement *ast.IfStatement) StatementResult {
	if interpreter.evalCondition(statement.Test) {
		interpreter.visitBlock(statement.Then)
	} else if statement.Else != nil {
		interpreter.visitBlock(statement.Else)
	}
	return nil
}

func (interpreter *Interpreter) VisitWhileStatement(statement *ast.WhileStatement) StatementResult {
	for interpreter.evalCondition(statement.Test) {
		interpreter.visitBlock(statement.Block)
	}
	return nil
}

// VisitForStatement executes an inclusive counting loop.
// The end is evaluated again before every iteration,
// and the loop variable is read from the environment again before it is incremented,
// so the body may change both.
func (interpreter *Interpreter) VisitForStatement(statement *ast.ForStatement) StatementResult {
	identifier := statement.Identifier

	start := interpreter.evalExpression(statement.Start)
	interpreter.Environment.Set(identifier, start)

	for {
		current := interpreter.loopVariable(statement)
		end := interpreter.evalLoopEnd(statement.End)

		// unordered values, i.e. NaN, end the loop
		result, ok := compareNumbers(current, end)
		if !ok || result > 0 {
			break
		}

		interpreter.visitBlock(statement.Block)

		current = interpreter.loopVariable(statement)
		interpreter.Environment.Set(identifier, current.Plus(oneValue))
	}

	return nil
}

// evalCondition evaluates a condition, which must be a boolean.
// Other values are not coerced.
func (interpreter *Interpreter) evalCondition(expression ast.Expression) bool {
	value := interpreter.evalExpression(expression)

	boolValue, ok := value.(BoolValue)
	if !ok {
		panic(TypeMismatchError{
			ExpectedType: StaticTypeBool,
			ActualType:   value.StaticType(),
			Range:        ast.NewRangeFromPositioned(expression),
		})
	}

	return bool(boolValue)
}

// loopVariable returns the current value of the loop variable, which must be a number
func (interpreter *Interpreter) loopVariable(statement *ast.ForStatement) NumberValue {
	value, ok := interpreter.Environment.Get(statement.Identifier)
	if !ok {
		panic(UndefinedVariableError{
			Name:       statement.Identifier,
			Candidates: interpreter.Environment.Names(),
			Range:      statement.Range,
		})
	}

	numberValue, ok := value.(NumberValue)
	if !ok {
		panic(TypeMismatchError{
			ExpectedType: StaticTypeNumber,
			ActualType:   value.StaticType(),
			Range:        ast.NewRangeFromPositioned(statement.Start),
		})
	}

	return numberValue
}

func (interpreter *Interpreter) evalLoopEnd(expression ast.Expression) NumberValue {
	value := interpreter.evalExpression(expression)

	numberValue, ok := value.(NumberValue)
	if !ok {
		panic(TypeMismatchError{
			ExpectedType: StaticTypeNumber,
			ActualType:   value.StaticType(),
			Range:        ast.NewRangeFromPositioned(expression),
		})
	}

	return numberValue
}
