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

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	jsonpretty "github.com/tidwall/pretty"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
)

// ASTFormat is a rendering of a program's syntax tree
type ASTFormat string

const (
	ASTFormatYAML   ASTFormat = "yaml"
	ASTFormatJSON   ASTFormat = "json"
	ASTFormatSource ASTFormat = "source"
	ASTFormatNone   ASTFormat = "none"
)

func ParseASTFormat(s string) (ASTFormat, error) {
	switch format := ASTFormat(s); format {
	case ASTFormatYAML, ASTFormatJSON, ASTFormatSource, ASTFormatNone:
		return format, nil
	}
	return "", errors.NewDefaultUserError("invalid AST format: %q", s)
}

// RenderAST renders the program in the given format.
// The rendering ends with a newline, and is empty for ASTFormatNone.
func RenderAST(program *ast.Program, format ASTFormat) ([]byte, error) {
	switch format {
	case ASTFormatNone:
		return nil, nil

	case ASTFormatSource:
		return []byte(program.String() + "\n"), nil

	case ASTFormatJSON:
		data, err := json.Marshal(program)
		if err != nil {
			return nil, err
		}
		return jsonpretty.Pretty(data), nil

	case ASTFormatYAML:
		data, err := json.Marshal(program)
		if err != nil {
			return nil, err
		}
		return yaml.JSONToYAML(data)
	}

	return nil, fmt.Errorf("invalid AST format: %q", format)
}
