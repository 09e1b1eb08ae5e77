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

// Block is a braced sequence of statements.
// Its range spans from the opening to the closing brace.
type Block struct {
	Statements []Statement
	Range
}

var _ Element = &Block{}

func NewBlock(statements []Statement, blockRange Range) *Block {
	return &Block{
		Statements: statements,
		Range:      blockRange,
	}
}

func (*Block) ElementType() ElementType {
	return ElementTypeBlock
}

func (b *Block) Walk(walkChild func(Element)) {
	for _, statement := range b.Statements {
		walkChild(statement)
	}
}

var blockStartDoc prettier.Doc = prettier.Text("🤜")
var blockEndDoc prettier.Doc = prettier.Text("🤛")
var blockEmptyDoc prettier.Doc = prettier.Concat{blockStartDoc, blockEndDoc}

func (b *Block) Doc() prettier.Doc {
	if len(b.Statements) == 0 {
		return blockEmptyDoc
	}

	return prettier.Concat{
		blockStartDoc,
		prettier.Indent{
			Doc: statementsDoc(b.Statements),
		},
		prettier.HardLine{},
		blockEndDoc,
	}
}

// statementsDoc renders each statement on its own line, each preceded by a line break.
func statementsDoc(statements []Statement) prettier.Doc {
	doc := make(prettier.Concat, 0, len(statements)*2)
	for _, statement := range statements {
		doc = append(
			doc,
			prettier.HardLine{},
			statement.Doc(),
		)
	}
	return doc
}

func (b *Block) String() string {
	return Prettier(b)
}

func (b *Block) MarshalJSON() ([]byte, error) {
	type Alias Block
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "Block",
		Alias: (*Alias)(b),
	})
}
