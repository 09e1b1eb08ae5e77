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
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/emojilang/emojilang/ast"
)

const (
	tracingProgram         = "program"
	tracingStatementPrefix = "statement."
	tracingOperationPrefix = "operation."
)

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	interpreter *Interpreter,
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

type Tracer struct {
	// OnRecordTrace is triggered when a trace is recorded
	OnRecordTrace OnRecordTraceFunc
	// TracingEnabled determines if tracing is enabled.
	// Tracing reports the execution of the program, of each statement, and of each operation
	TracingEnabled bool
}

func (interpreter *Interpreter) recordTrace(
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
) {
	onRecordTrace := interpreter.Config.OnRecordTrace
	if onRecordTrace == nil {
		return
	}
	onRecordTrace(interpreter, operationName, duration, attrs)
}

func (interpreter *Interpreter) reportProgramTrace(statementCount int, duration time.Duration) {
	interpreter.recordTrace(
		tracingProgram,
		duration,
		[]attribute.KeyValue{
			attribute.Int("statements", statementCount),
		},
	)
}

func (interpreter *Interpreter) reportStatementTrace(statement ast.Statement, duration time.Duration) {
	startPos := statement.StartPosition()
	interpreter.recordTrace(
		tracingStatementPrefix+statement.ElementType().String(),
		duration,
		[]attribute.KeyValue{
			attribute.Int("line", startPos.Line),
			attribute.Int("column", startPos.Column),
		},
	)
}

func (interpreter *Interpreter) reportOperationTrace(operation ast.Operation, duration time.Duration) {
	var attrs []attribute.KeyValue
	if operation != ast.OperationUnknown {
		attrs = []attribute.KeyValue{
			attribute.String("category", operation.Category()),
			attribute.String("glyph", operation.Glyph()),
		}
	}

	interpreter.recordTrace(
		tracingOperationPrefix+strings.TrimPrefix(operation.String(), "Operation"),
		duration,
		attrs,
	)
}
