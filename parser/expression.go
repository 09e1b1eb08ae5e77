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
	"fmt"
	"math/big"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
	"github.com/emojilang/emojilang/parser/lexer"
)

const lowestBindingPower = 0

const (
	comparisonBindingPower     = 60
	additiveBindingPower       = 110
	multiplicativeBindingPower = 120
)

type nullDenotationFunc func(parser *parser, token lexer.Token) ast.Expression

type literal struct {
	tokenType      lexer.TokenType
	nullDenotation nullDenotationFunc
}

// binary defines a left-associative binary operator.
// All operators with the same binding power form one precedence level.
type binary struct {
	tokenType        lexer.TokenType
	leftBindingPower int
	operation        ast.Operation
}

type leftDenotationFunc func(parser *parser, operator lexer.Token, left ast.Expression) ast.Expression

var nullDenotations = map[lexer.TokenType]nullDenotationFunc{}

var leftBindingPowers = map[lexer.TokenType]int{}
var leftDenotations = map[lexer.TokenType]leftDenotationFunc{}

func define(def any) {
	switch def := def.(type) {
	case binary:
		tokenType := def.tokenType

		setLeftBindingPower(tokenType, def.leftBindingPower)

		// parsing the right-hand side with the operator's own binding power
		// stops at operators of the same level, which makes the operator left-associative
		rightBindingPower := def.leftBindingPower

		setLeftDenotation(
			tokenType,
			func(parser *parser, operator lexer.Token, left ast.Expression) ast.Expression {
				right := parseExpression(parser, rightBindingPower)
				return ast.NewBinaryExpression(
					def.operation,
					left,
					right,
					operator.Range,
				)
			},
		)

	case literal:
		setNullDenotation(def.tokenType, def.nullDenotation)

	default:
		panic(errors.NewUnreachableError())
	}
}

func setNullDenotation(tokenType lexer.TokenType, nullDenotation nullDenotationFunc) {
	current := nullDenotations[tokenType]
	if current != nil {
		panic(fmt.Errorf(
			"null denotation for token type %s exists",
			tokenType,
		))
	}
	nullDenotations[tokenType] = nullDenotation
}

func setLeftBindingPower(tokenType lexer.TokenType, power int) {
	current := leftBindingPowers[tokenType]
	if current > power {
		return
	}
	leftBindingPowers[tokenType] = power
}

func setLeftDenotation(tokenType lexer.TokenType, leftDenotation leftDenotationFunc) {
	current := leftDenotations[tokenType]
	if current != nil {
		panic(fmt.Errorf(
			"left denotation for token type %s exists",
			tokenType,
		))
	}
	leftDenotations[tokenType] = leftDenotation
}

func init() {

	define(binary{
		tokenType:        lexer.TokenGreater,
		leftBindingPower: comparisonBindingPower,
		operation:        ast.OperationGreater,
	})

	define(binary{
		tokenType:        lexer.TokenLess,
		leftBindingPower: comparisonBindingPower,
		operation:        ast.OperationLess,
	})

	define(binary{
		tokenType:        lexer.TokenEqualEqual,
		leftBindingPower: comparisonBindingPower,
		operation:        ast.OperationEqual,
	})

	define(binary{
		tokenType:        lexer.TokenPlus,
		leftBindingPower: additiveBindingPower,
		operation:        ast.OperationPlus,
	})

	define(binary{
		tokenType:        lexer.TokenMinus,
		leftBindingPower: additiveBindingPower,
		operation:        ast.OperationMinus,
	})

	define(binary{
		tokenType:        lexer.TokenStar,
		leftBindingPower: multiplicativeBindingPower,
		operation:        ast.OperationMul,
	})

	define(binary{
		tokenType:        lexer.TokenSlash,
		leftBindingPower: multiplicativeBindingPower,
		operation:        ast.OperationDiv,
	})

	define(literal{
		tokenType: lexer.TokenDecimalIntegerLiteral,
		nullDenotation: func(_ *parser, token lexer.Token) ast.Expression {
			return ast.NewIntegerExpression(
				token.Value.(*big.Int),
				token.Range,
			)
		},
	})

	define(literal{
		tokenType: lexer.TokenString,
		nullDenotation: func(_ *parser, token lexer.Token) ast.Expression {
			return ast.NewStringExpression(
				token.Value.(string),
				token.Range,
			)
		},
	})

	define(literal{
		tokenType: lexer.TokenBool,
		nullDenotation: func(_ *parser, token lexer.Token) ast.Expression {
			return ast.NewBoolExpression(
				token.Value.(bool),
				token.Range,
			)
		},
	})

	define(literal{
		tokenType: lexer.TokenIdentifier,
		nullDenotation: func(_ *parser, token lexer.Token) ast.Expression {
			return ast.NewIdentifierExpression(
				token.Value.(string),
				token.Range,
			)
		},
	})

	defineNestedExpression()
}

func defineNestedExpression() {
	setNullDenotation(
		lexer.TokenParenOpen,
		func(p *parser, _ lexer.Token) ast.Expression {
			expression := parseExpression(p, lowestBindingPower)
			p.mustOne(lexer.TokenParenClose, "after nested expression")
			return expression
		},
	)
}

// parseExpression parses an expression whose operators bind tighter than the given binding power.
func parseExpression(p *parser, rightBindingPower int) ast.Expression {
	t := p.current

	nullDenotation, ok := nullDenotations[t.Type]
	if !ok {
		panic(p.expected("expression", "in this position"))
	}
	p.next()

	left := nullDenotation(p, t)

	for rightBindingPower < leftBindingPower(p.current.Type) {
		t = p.current
		p.next()

		left = applyLeftDenotation(p, t, left)
	}

	return left
}

// leftBindingPower returns the binding power of the given token type as an infix operator.
// Tokens that are not operators end the expression.
func leftBindingPower(tokenType lexer.TokenType) int {
	result, ok := leftBindingPowers[tokenType]
	if !ok {
		return lowestBindingPower
	}
	return result
}

func applyLeftDenotation(p *parser, operator lexer.Token, left ast.Expression) ast.Expression {
	leftDenotation, ok := leftDenotations[operator.Type]
	if !ok {
		panic(errors.NewUnexpectedError("missing left denotation for token type: %v", operator.Type))
	}
	return leftDenotation(p, operator, left)
}
