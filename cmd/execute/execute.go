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
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/cmd"
	"github.com/emojilang/emojilang/interpreter"
	"github.com/emojilang/emojilang/parser"
	"github.com/emojilang/emojilang/runtime"
)

const (
	astHeader    = "=== AST ==="
	outputHeader = "=== Output ==="
	endFooter    = "=== End ==="
)

type Options struct {
	ASTFormat cmd.ASTFormat
	Trace     bool
	UseColor  bool
	Parser    parser.Config
	Stdout    io.Writer
	Stderr    io.Writer
}

// Execute runs the program in the file at the given location.
// The syntax tree is rendered before the program output, unless the AST format is none.
func Execute(location string, options Options) {
	code := cmd.ReadCode(location, options.UseColor)
	must := cmd.MustClosure(location, code, options.UseColor)
	must(Run(code, options))
}

// Run parses and executes the code.
// Any lexing, parsing, or runtime error is returned.
func Run(code []byte, options Options) error {
	banners := options.ASTFormat != cmd.ASTFormatNone

	config := runtime.Config{
		Parser: options.Parser,
		Stdout: options.Stdout,
		OnProgramParsed: func(program *ast.Program) {
			if !banners {
				return
			}

			rendered, err := cmd.RenderAST(program, options.ASTFormat)
			if err != nil {
				panic(err)
			}

			writeLine(options.Stdout, colorizeHeader(astHeader, options.UseColor))
			write(options.Stdout, string(rendered))
			writeLine(options.Stdout, "")
			writeLine(options.Stdout, colorizeHeader(outputHeader, options.UseColor))
		},
	}

	if options.Trace {
		config.Tracer = interpreter.Tracer{
			TracingEnabled: true,
			OnRecordTrace:  traceWriter(options.Stderr, options.UseColor),
		}
	}

	_, err := runtime.ExecuteProgram(code, config)
	if err != nil {
		return err
	}

	if banners {
		writeLine(options.Stdout, colorizeHeader(endFooter, options.UseColor))
	}

	return nil
}

func traceWriter(writer io.Writer, useColor bool) interpreter.OnRecordTraceFunc {
	return func(
		_ *interpreter.Interpreter,
		operationName string,
		duration time.Duration,
		attrs []attribute.KeyValue,
	) {
		writeLine(writer, formatTrace(operationName, duration, attrs, useColor))
	}
}

func formatTrace(
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
	useColor bool,
) string {
	line := fmt.Sprintf("%s %s", colorizeTrace(operationName, useColor), duration)
	for _, attr := range attrs {
		line += fmt.Sprintf(" %s=%s", attr.Key, attr.Value.Emit())
	}
	return line
}

func write(writer io.Writer, s string) {
	_, err := io.WriteString(writer, s)
	if err != nil {
		panic(err)
	}
}

func writeLine(writer io.Writer, s string) {
	write(writer, s+"\n")
}
