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
	"io"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/interpreter"
	"github.com/emojilang/emojilang/parser"
)

// OnProgramParsedFunc is a function that is triggered when a program was parsed,
// before it is executed.
type OnProgramParsedFunc func(program *ast.Program)

// Config configures the parsing and the execution of programs.
type Config struct {
	Parser parser.Config
	// Stdout receives the output of print statements. Defaults to os.Stdout
	Stdout io.Writer
	// OnProgramParsed is triggered after parsing, before execution
	OnProgramParsed OnProgramParsedFunc
	// OnStatement is triggered when a statement is about to be executed
	OnStatement interpreter.OnStatementFunc
	interpreter.Tracer
}

func (c Config) interpreterConfig() *interpreter.Config {
	return &interpreter.Config{
		Stdout:      c.Stdout,
		OnStatement: c.OnStatement,
		Tracer:      c.Tracer,
	}
}

// ParseProgram tokenizes and parses the given source text.
func ParseProgram(code []byte, config Config) (*ast.Program, error) {
	return parser.ParseProgram(code, config.Parser)
}

// ExecuteProgram tokenizes, parses, and executes the given source text
// in a new environment, which is returned.
//
// Lexing, parsing, and runtime errors are returned unchanged.
// No statement is executed if the program cannot be parsed,
// and execution stops at the first runtime error.
func ExecuteProgram(code []byte, config Config) (*interpreter.Environment, error) {
	environment := interpreter.NewEnvironment()

	err := executeProgram(code, environment, config)
	return environment, err
}

func executeProgram(code []byte, environment *interpreter.Environment, config Config) error {
	program, err := ParseProgram(code, config)
	if err != nil {
		return err
	}

	if config.OnProgramParsed != nil {
		config.OnProgramParsed(program)
	}

	return interpreter.Run(
		program,
		environment,
		config.interpreterConfig(),
	)
}
