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

package parser

import (
	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
	"github.com/emojilang/emojilang/parser/lexer"
)

// statementKinds is a set of statement kinds allowed in a block.
type statementKinds uint8

const (
	statementKindDeclaration statementKinds = 1 << iota
	statementKindPrint
	statementKindIf
	statementKindWhile
	statementKindFor
)

const allStatementKinds = statementKindDeclaration |
	statementKindPrint |
	statementKindIf |
	statementKindWhile |
	statementKindFor

const conditionalBodyStatementKinds = statementKindDeclaration |
	statementKindPrint |
	statementKindIf

const whileBodyStatementKinds = conditionalBodyStatementKinds |
	statementKindWhile

func (k statementKinds) has(kind statementKinds) bool {
	return k&kind != 0
}

func statementKind(tokenType lexer.TokenType) (statementKinds, bool) {
	switch tokenType {
	case lexer.TokenIntType, lexer.TokenStringType:
		return statementKindDeclaration, true
	case lexer.TokenPrint:
		return statementKindPrint, true
	case lexer.TokenIf:
		return statementKindIf, true
	case lexer.TokenWhile:
		return statementKindWhile, true
	case lexer.TokenFor:
		return statementKindFor, true
	}
	return 0, false
}

// bodyStatementKinds returns the statements allowed in the body of the given kind of statement.
func (p *parser) bodyStatementKinds(kind statementKinds) statementKinds {
	if !p.config.StrictBlocks {
		return allStatementKinds
	}

	switch kind {
	case statementKindIf:
		return conditionalBodyStatementKinds
	case statementKindWhile:
		return whileBodyStatementKinds
	default:
		return allStatementKinds
	}
}

// parseStatements parses statements until the end token or the end of input.
// Statement separators are skipped.
func parseStatements(p *parser, endTokenType lexer.TokenType, allowed statementKinds) (statements []ast.Statement) {
	for {
		switch p.current.Type {
		case lexer.TokenSemicolon:
			p.next()
			continue
		case endTokenType, lexer.TokenEOF:
			return
		default:
			statement := parseStatement(p, allowed)
			statements = append(statements, statement)
		}
	}
}

func parseStatement(p *parser, allowed statementKinds) ast.Statement {
	kind, ok := statementKind(p.current.Type)
	if !ok {
		panic(p.syntaxError("unexpected token: %s", p.current.Type))
	}
	if !allowed.has(kind) {
		panic(p.syntaxError("unexpected token: %s, statement is not allowed in this block", p.current.Type))
	}

	switch kind {
	case statementKindDeclaration:
		return parseVariableDeclaration(p)
	case statementKindPrint:
		return parsePrintStatement(p)
	case statementKindIf:
		return parseIfStatement(p)
	case statementKindWhile:
		return parseWhileStatement(p)
	case statementKindFor:
		return parseForStatement(p)
	}

	panic(errors.NewUnreachableError())
}

func parseVariableDeclaration(p *parser) *ast.VariableDeclaration {
	startToken := p.current

	var declaredType ast.DeclaredType
	switch startToken.Type {
	case lexer.TokenIntType:
		declaredType = ast.DeclaredTypeInt
	case lexer.TokenStringType:
		declaredType = ast.DeclaredTypeString
	default:
		panic(errors.NewUnreachableError())
	}
	p.next()

	identifier := p.mustIdentifier("after type")
	p.mustOne(lexer.TokenAssign, "after variable name")

	value := parseExpression(p, lowestBindingPower)

	p.mustOne(lexer.TokenSemicolon, "after declaration")

	return ast.NewVariableDeclaration(
		declaredType,
		identifier.Value.(string),
		value,
		startToken.Range,
	)
}

func parsePrintStatement(p *parser) *ast.PrintStatement {
	startToken := p.current
	p.next()

	expression := parseExpression(p, lowestBindingPower)

	p.mustOne(lexer.TokenSemicolon, "after print statement")

	return ast.NewPrintStatement(expression, startToken.Range)
}

func parseIfStatement(p *parser) *ast.IfStatement {
	startToken := p.current
	p.next()

	test := parseCondition(p)

	allowed := p.bodyStatementKinds(statementKindIf)

	thenBlock := parseBlock(p, allowed)

	var elseBlock *ast.Block
	if p.current.Is(lexer.TokenElse) {
		p.next()
		elseBlock = parseBlock(p, allowed)
	}

	return ast.NewIfStatement(test, thenBlock, elseBlock, startToken.Range)
}

func parseWhileStatement(p *parser) *ast.WhileStatement {
	startToken := p.current
	p.next()

	test := parseCondition(p)

	block := parseBlock(p, p.bodyStatementKinds(statementKindWhile))

	return ast.NewWhileStatement(test, block, startToken.Range)
}

func parseForStatement(p *parser) *ast.ForStatement {
	startToken := p.current
	p.next()

	identifier := p.mustIdentifier("after for keyword")
	p.mustOne(lexer.TokenAssign, "after loop variable")

	start := parseExpression(p, lowestBindingPower)

	p.mustOne(lexer.TokenRightArrow, "after loop start")

	end := parseExpression(p, lowestBindingPower)

	block := parseBlock(p, p.bodyStatementKinds(statementKindFor))

	return ast.NewForStatement(
		identifier.Value.(string),
		start,
		end,
		block,
		startToken.Range,
	)
}

// parseCondition parses a parenthesized condition
func parseCondition(p *parser) ast.Expression {
	p.mustOne(lexer.TokenParenOpen, "before condition")
	test := parseExpression(p, lowestBindingPower)
	p.mustOne(lexer.TokenParenClose, "after condition")
	return test
}

func parseBlock(p *parser, allowed statementKinds) *ast.Block {
	startToken := p.mustOne(lexer.TokenBraceOpen, "to start block")

	statements := parseStatements(p, lexer.TokenBraceClose, allowed)

	endToken := p.mustOne(lexer.TokenBraceClose, "to end block")

	return ast.NewBlock(
		statements,
		ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	)
}
