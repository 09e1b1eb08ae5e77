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

type Statement interface {
	Element
	isStatement()
}

var semicolonDoc prettier.Doc = prettier.Text("🛑")
var assignDoc prettier.Doc = prettier.Text("🟰")

// VariableDeclaration

type VariableDeclaration struct {
	Identifier   string
	DeclaredType DeclaredType
	Value        Expression
	Range
}

var _ Statement = &VariableDeclaration{}

func NewVariableDeclaration(
	declaredType DeclaredType,
	identifier string,
	value Expression,
	declRange Range,
) *VariableDeclaration {
	return &VariableDeclaration{
		Identifier:   identifier,
		DeclaredType: declaredType,
		Value:        value,
		Range:        declRange,
	}
}

func (*VariableDeclaration) isStatement() {}

func (*VariableDeclaration) ElementType() ElementType {
	return ElementTypeVariableDeclaration
}

func (d *VariableDeclaration) Walk(walkChild func(Element)) {
	walkChild(d.Value)
}

func (d *VariableDeclaration) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Text(d.DeclaredType.Glyph()),
			prettier.Space,
			prettier.Text(d.Identifier),
			prettier.Space,
			assignDoc,
			prettier.Group{
				Doc: prettier.Indent{
					Doc: prettier.Concat{
						prettier.Line{},
						d.Value.Doc(),
					},
				},
			},
			prettier.Space,
			semicolonDoc,
		},
	}
}

func (d *VariableDeclaration) String() string {
	return Prettier(d)
}

func (d *VariableDeclaration) MarshalJSON() ([]byte, error) {
	type Alias VariableDeclaration
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "VariableDeclaration",
		Alias: (*Alias)(d),
	})
}

// PrintStatement

type PrintStatement struct {
	Expression Expression
	Range
}

var _ Statement = &PrintStatement{}

func NewPrintStatement(expression Expression, stmtRange Range) *PrintStatement {
	return &PrintStatement{
		Expression: expression,
		Range:      stmtRange,
	}
}

func (*PrintStatement) isStatement() {}

func (*PrintStatement) ElementType() ElementType {
	return ElementTypePrintStatement
}

func (s *PrintStatement) Walk(walkChild func(Element)) {
	walkChild(s.Expression)
}

var printKeywordDoc prettier.Doc = prettier.Text("👀")

func (s *PrintStatement) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			printKeywordDoc,
			prettier.Space,
			s.Expression.Doc(),
			prettier.Space,
			semicolonDoc,
		},
	}
}

func (s *PrintStatement) String() string {
	return Prettier(s)
}

func (s *PrintStatement) MarshalJSON() ([]byte, error) {
	type Alias PrintStatement
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "PrintStatement",
		Alias: (*Alias)(s),
	})
}

// IfStatement

type IfStatement struct {
	Test Expression
	Then *Block
	// Else is nil if there is no else branch
	Else *Block
	Range
}

var _ Statement = &IfStatement{}

func NewIfStatement(test Expression, thenBlock, elseBlock *Block, stmtRange Range) *IfStatement {
	return &IfStatement{
		Test:  test,
		Then:  thenBlock,
		Else:  elseBlock,
		Range: stmtRange,
	}
}

func (*IfStatement) isStatement() {}

func (*IfStatement) ElementType() ElementType {
	return ElementTypeIfStatement
}

func (s *IfStatement) Walk(walkChild func(Element)) {
	walkChild(s.Test)
	walkChild(s.Then)
	if s.Else != nil {
		walkChild(s.Else)
	}
}

var ifKeywordDoc prettier.Doc = prettier.Text("🙂‍↕️")
var elseKeywordDoc prettier.Doc = prettier.Text("🙂‍↔️")

func (s *IfStatement) Doc() prettier.Doc {
	doc := prettier.Concat{
		ifKeywordDoc,
		prettier.Space,
		wrapParentheses(s.Test.Doc()),
		prettier.Space,
		s.Then.Doc(),
	}

	if s.Else != nil {
		doc = append(doc,
			prettier.Space,
			elseKeywordDoc,
			prettier.Space,
			s.Else.Doc(),
		)
	}

	return doc
}

func (s *IfStatement) String() string {
	return Prettier(s)
}

func (s *IfStatement) MarshalJSON() ([]byte, error) {
	type Alias IfStatement
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "IfStatement",
		Alias: (*Alias)(s),
	})
}

// WhileStatement

type WhileStatement struct {
	Test  Expression
	Block *Block
	Range
}

var _ Statement = &WhileStatement{}

func NewWhileStatement(test Expression, block *Block, stmtRange Range) *WhileStatement {
	return &WhileStatement{
		Test:  test,
		Block: block,
		Range: stmtRange,
	}
}

func (*WhileStatement) isStatement() {}

func (*WhileStatement) ElementType() ElementType {
	return ElementTypeWhileStatement
}

func (s *WhileStatement) Walk(walkChild func(Element)) {
	walkChild(s.Test)
	walkChild(s.Block)
}

var whileKeywordDoc prettier.Doc = prettier.Text("🤸‍♂️")

func (s *WhileStatement) Doc() prettier.Doc {
	return prettier.Concat{
		whileKeywordDoc,
		prettier.Space,
		wrapParentheses(s.Test.Doc()),
		prettier.Space,
		s.Block.Doc(),
	}
}

func (s *WhileStatement) String() string {
	return Prettier(s)
}

func (s *WhileStatement) MarshalJSON() ([]byte, error) {
	type Alias WhileStatement
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "WhileStatement",
		Alias: (*Alias)(s),
	})
}

// ForStatement

type ForStatement struct {
	Identifier string
	Start      Expression
	// End is evaluated before every iteration
	End   Expression
	Block *Block
	Range
}

var _ Statement = &ForStatement{}

func NewForStatement(
	identifier string,
	start Expression,
	end Expression,
	block *Block,
	stmtRange Range,
) *ForStatement {
	return &ForStatement{
		Identifier: identifier,
		Start:      start,
		End:        end,
		Block:      block,
		Range:      stmtRange,
	}
}

func (*ForStatement) isStatement() {}

func (*ForStatement) ElementType() ElementType {
	return ElementTypeForStatement
}

func (s *ForStatement) Walk(walkChild func(Element)) {
	walkChild(s.Start)
	walkChild(s.End)
	walkChild(s.Block)
}

var forKeywordDoc prettier.Doc = prettier.Text("🌀")
var rangeArrowDoc prettier.Doc = prettier.Text("➡️")

func (s *ForStatement) Doc() prettier.Doc {
	return prettier.Concat{
		forKeywordDoc,
		prettier.Space,
		prettier.Text(s.Identifier),
		prettier.Space,
		assignDoc,
		prettier.Space,
		s.Start.Doc(),
		prettier.Space,
		rangeArrowDoc,
		prettier.Space,
		s.End.Doc(),
		prettier.Space,
		s.Block.Doc(),
	}
}

func (s *ForStatement) String() string {
	return Prettier(s)
}

func (s *ForStatement) MarshalJSON() ([]byte, error) {
	type Alias ForStatement
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ForStatement",
		Alias: (*Alias)(s),
	})
}
