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
	goErrors "errors"
	"io"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/interpreter"
	"github.com/emojilang/emojilang/parser"
	"github.com/emojilang/emojilang/parser/lexer"
)

// REPL is an interactive session.
// All accepted inputs share one environment.
type REPL struct {
	environment *interpreter.Environment
	config      Config
}

func NewREPL(config Config) *REPL {
	return &REPL{
		environment: interpreter.NewEnvironment(),
		config:      config,
	}
}

func (r *REPL) Environment() *interpreter.Environment {
	return r.environment
}

// Accept parses and executes the given code.
//
// If the code ends before the program is complete,
// e.g. inside a block or a string literal,
// nothing is executed and inputIsComplete is false:
// the caller should read more input and accept the whole code again.
//
// Code which is not a program but a single expression is evaluated,
// and its value is written to the output like a print statement.
func (r *REPL) Accept(code []byte) (inputIsComplete bool, err error) {
	err = executeProgram(code, r.environment, r.config)
	if err != nil {
		var parserError parser.Error
		if goErrors.As(err, &parserError) {
			if parserError.IsEndOfInput() {
				return false, nil
			}

			expression, expressionErr := parser.ParseExpression(code, r.config.Parser)
			if expressionErr == nil {
				return true, r.evaluate(expression)
			}
		}
		return true, err
	}

	return true, nil
}

func (r *REPL) evaluate(expression ast.Expression) error {
	inter, err := interpreter.NewInterpreter(
		ast.NewProgram(nil),
		r.environment,
		r.config.interpreterConfig(),
	)
	if err != nil {
		return err
	}

	value, err := inter.EvalExpression(expression)
	if err != nil {
		return err
	}

	_, err = io.WriteString(inter.Config.Stdout, value.String()+"\n")
	if err != nil {
		return interpreter.Error{
			Err: interpreter.OutputError{Err: err},
		}
	}

	return nil
}

type REPLSuggestion struct {
	Name        string
	Description string
}

// Suggestions returns the completions for the session:
// the glyphs of the vocabulary, and the declared variables.
func (r *REPL) Suggestions() []REPLSuggestion {
	vocabulary := lexer.Vocabulary()
	names := r.environment.Names()

	suggestions := make([]REPLSuggestion, 0, len(vocabulary)+len(names))

	for _, entry := range vocabulary {
		suggestions = append(suggestions, REPLSuggestion{
			Name:        entry.Glyph,
			Description: entry.Description,
		})
	}

	for _, name := range names {
		value, _ := r.environment.Get(name)
		suggestions = append(suggestions, REPLSuggestion{
			Name:        name,
			Description: value.StaticType().String(),
		})
	}

	return suggestions
}
