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

// DeclaredType is the nominal type written in a variable declaration.
// It is descriptive only and never checked against the declared value.
type DeclaredType uint8

const (
	DeclaredTypeUnknown DeclaredType = iota
	DeclaredTypeInt
	DeclaredTypeString
)

func (t DeclaredType) String() string {
	switch t {
	case DeclaredTypeUnknown:
		return "unknown"
	case DeclaredTypeInt:
		return "int"
	case DeclaredTypeString:
		return "string"
	}

	panic(errors.NewUnreachableError())
}

func (t DeclaredType) Glyph() string {
	switch t {
	case DeclaredTypeInt:
		return "🔢"
	case DeclaredTypeString:
		return "🔤"
	}

	panic(errors.NewUnreachableError())
}

func (t DeclaredType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
