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
	"os"
	"time"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
)

// OnStatementFunc is a function that is triggered when a statement is about to be executed.
type OnStatementFunc func(
	interpreter *Interpreter,
	statement ast.Statement,
)

type Config struct {
	// Stdout receives the output of print statements. Defaults to os.Stdout
	Stdout io.Writer
	// OnStatement is triggered when a statement is about to be executed
	OnStatement OnStatementFunc
	Tracer
}

// Interpreter executes a program by walking its syntax tree.
// All statements read and write the one environment.
type Interpreter struct {
	Program     *ast.Program
	Environment *Environment
	Config      *Config
	// statement is the statement currently being executed,
	// used to position errors which have no position of their own
	statement ast.Statement
}

var _ ast.StatementVisitor[StatementResult] = &Interpreter{}
var _ ast.ExpressionVisitor[Value] = &Interpreter{}

// StatementResult is the result of executing a statement.
// No statement of the language transfers control, so all results are nil.
type StatementResult interface {
	isStatementResult()
}

// NewInterpreter returns an interpreter for the given program.
// The environment is used for all variables. A nil environment is replaced by an empty one,
// and a nil config by the default configuration.
func NewInterpreter(
	program *ast.Program,
	environment *Environment,
	config *Config,
) (*Interpreter, error) {

	if program == nil {
		return nil, errors.NewUnexpectedError("missing program")
	}

	if environment == nil {
		environment = NewEnvironment()
	}

	if config == nil {
		config = &Config{}
	}

	if config.Stdout == nil {
		configCopy := *config
		configCopy.Stdout = os.Stdout
		config = &configCopy
	}

	return &Interpreter{
		Program:     program,
		Environment: environment,
		Config:      config,
	}, nil
}

// Run executes the program in the given environment.
func Run(program *ast.Program, environment *Environment, config *Config) error {
	interpreter, err := NewInterpreter(program, environment, config)
	if err != nil {
		return err
	}
	return interpreter.Interpret()
}

// Interpret executes all statements of the program, in order.
// Execution stops at the first error.
func (interpreter *Interpreter) Interpret() (err error) {

	// recover internal panics and return them as an error
	defer interpreter.RecoverErrors(func(internalErr error) {
		err = internalErr
	})

	if interpreter.Config.TracingEnabled {
		startTime := time.Now()

		defer func() {
			interpreter.reportProgramTrace(
				len(interpreter.Program.Statements()),
				time.Since(startTime),
			)
		}()
	}

	interpreter.VisitProgram(interpreter.Program)

	return nil
}

// EvalExpression evaluates a single expression in the environment of the interpreter.
func (interpreter *Interpreter) EvalExpression(expression ast.Expression) (value Value, err error) {

	defer interpreter.RecoverErrors(func(internalErr error) {
		err = internalErr
	})

	return interpreter.evalExpression(expression), nil
}

// RecoverErrors recovers a panic, wraps the recovered error into an Error,
// and passes it to onError.
func (interpreter *Interpreter) RecoverErrors(onError func(error)) {
	if r := recover(); r != nil {
		var err error

		switch r := r.(type) {
		case Error,
			errors.InternalError,
			errors.UserError:
			err = r.(error)
		case error:
			err = errors.NewUnexpectedErrorFromCause(r)
		default:
			err = errors.NewUnexpectedError("%s", r)
		}

		// if the error is not yet an interpreter error, wrap it
		if _, ok := err.(Error); !ok {

			// wrap the error with position information if needed

			_, ok := err.(ast.HasPosition)
			if !ok && interpreter.statement != nil {
				r := ast.NewRangeFromPositioned(interpreter.statement)

				err = PositionedError{
					Err:   err,
					Range: r,
				}
			}

			err = Error{
				Err: err,
			}
		}

		onError(err)
	}
}

func (interpreter *Interpreter) VisitProgram(program *ast.Program) {
	for _, statement := range program.Statements() {
		interpreter.visitStatement(statement)
	}
}

func (interpreter *Interpreter) visitBlock(block *ast.Block) {
	if block == nil {
		return
	}
	for _, statement := range block.Statements {
		interpreter.visitStatement(statement)
	}
}

func (interpreter *Interpreter) visitStatement(statement ast.Statement) {
	interpreter.statement = statement

	onStatement := interpreter.Config.OnStatement
	if onStatement != nil {
		onStatement(interpreter, statement)
	}

	if interpreter.Config.TracingEnabled {
		startTime := time.Now()

		defer func() {
			interpreter.reportStatementTrace(statement, time.Since(startTime))
		}()
	}

	ast.AcceptStatement[StatementResult](statement, interpreter)
}

func (interpreter *Interpreter) evalExpression(expression ast.Expression) Value {
	return ast.AcceptExpression[Value](expression, interpreter)
}
