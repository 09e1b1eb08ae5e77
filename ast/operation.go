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

	"github.com/emojilang/emojilang/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Operation

type Operation uint

const (
	OperationUnknown Operation = iota
	OperationEqual
	OperationLess
	OperationGreater
	OperationPlus
	OperationMinus
	OperationMul
	OperationDiv
)

func OperationCount() int {
	return len(_Operation_index) - 1
}

// Symbol returns the conventional ASCII spelling of the operation.
func (s Operation) Symbol() string {
	switch s {
	case OperationEqual:
		return "=="
	case OperationLess:
		return "<"
	case OperationGreater:
		return ">"
	case OperationPlus:
		return "+"
	case OperationMinus:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	}

	panic(errors.NewUnreachableError())
}

// Glyph returns the source spelling of the operation.
func (s Operation) Glyph() string {
	switch s {
	case OperationEqual:
		return "🟰🟰"
	case OperationLess:
		return "◀️"
	case OperationGreater:
		return "▶️"
	case OperationPlus:
		return "➕"
	case OperationMinus:
		return "➖"
	case OperationMul:
		return "✖️"
	case OperationDiv:
		return "➗"
	}

	panic(errors.NewUnreachableError())
}

func (s Operation) Category() string {
	switch s {
	case OperationEqual,
		OperationLess,
		OperationGreater:
		return "comparison"

	case OperationPlus,
		OperationMinus,
		OperationMul,
		OperationDiv:
		return "arithmetic"
	}

	panic(errors.NewUnreachableError())
}

func (s Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
