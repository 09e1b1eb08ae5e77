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

	"github.com/turbolent/prettier"
)

// Program is the root of the syntax tree: the top-level statements of a source text.
type Program struct {
	statements []Statement
}

var _ Element = &Program{}

func NewProgram(statements []Statement) *Program {
	return &Program{
		statements: statements,
	}
}

func (p *Program) Statements() []Statement {
	return p.statements
}

func (*Program) ElementType() ElementType {
	return ElementTypeProgram
}

func (p *Program) StartPosition() Position {
	if len(p.statements) == 0 {
		return EmptyPosition
	}
	return p.statements[0].StartPosition()
}

func (p *Program) EndPosition() Position {
	count := len(p.statements)
	if count == 0 {
		return EmptyPosition
	}
	return p.statements[count-1].EndPosition()
}

func (p *Program) Walk(walkChild func(Element)) {
	for _, statement := range p.statements {
		walkChild(statement)
	}
}

var programSeparatorDoc prettier.Doc = prettier.HardLine{}

func (p *Program) Doc() prettier.Doc {
	docs := make([]prettier.Doc, 0, len(p.statements))
	for _, statement := range p.statements {
		if statement == nil {
			continue
		}
		docs = append(docs, statement.Doc())
	}

	if len(docs) == 0 {
		return prettier.Text("")
	}

	return prettier.Join(programSeparatorDoc, docs...)
}

func (p *Program) String() string {
	return Prettier(p)
}

func (p *Program) MarshalJSON() ([]byte, error) {
	statements := p.statements
	if statements == nil {
		statements = []Statement{}
	}

	return json.Marshal(&struct {
		Type       string
		Statements []Statement
	}{
		Type:       "Program",
		Statements: statements,
	})
}
