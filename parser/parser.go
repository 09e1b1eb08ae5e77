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

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
	"github.com/emojilang/emojilang/parser/lexer"
)

type Config struct {
	// StrictBlocks restricts the statements allowed in the bodies of conditionals and while loops:
	// if and else bodies may only contain declarations, prints and conditionals,
	// while bodies may additionally contain while loops.
	// By default, every block accepts every statement.
	StrictBlocks bool
}

type parser struct {
	tokens []lexer.Token
	// current is the token at the cursor
	current lexer.Token
	// pos is the index of the current token
	pos    int
	config Config
}

// ParseProgram lexes and parses the given source text.
//
// The first lexing or parsing error aborts; the returned error is an Error
// holding the code and the cause.
func ParseProgram(code []byte, config Config) (*ast.Program, error) {
	tokens, err := lexer.Lex(code)
	if err != nil {
		return nil, Error{
			Code:   code,
			Errors: []error{err},
		}
	}

	program, err := parseProgram(tokens, config)
	if err != nil {
		return nil, Error{
			Code:   code,
			Errors: []error{err},
		}
	}

	return program, nil
}

// ParseTokens parses an already lexed token sequence.
// A missing trailing TokenEOF is treated as end of input.
func ParseTokens(tokens []lexer.Token, config Config) (*ast.Program, error) {
	program, err := parseProgram(tokens, config)
	if err != nil {
		return nil, Error{
			Errors: []error{err},
		}
	}
	return program, nil
}

// ParseExpression lexes and parses a single expression,
// which must span the whole source text.
func ParseExpression(code []byte, config Config) (ast.Expression, error) {
	tokens, err := lexer.Lex(code)
	if err != nil {
		return nil, Error{
			Code:   code,
			Errors: []error{err},
		}
	}

	expression, err := parse(
		tokens,
		config,
		func(p *parser) ast.Expression {
			expression := parseExpression(p, lowestBindingPower)
			if !p.current.Is(lexer.TokenEOF) {
				panic(p.syntaxError("unexpected token after expression: %s", p.current.Type))
			}
			return expression
		},
	)
	if err != nil {
		return nil, Error{
			Code:   code,
			Errors: []error{err},
		}
	}

	return expression, nil
}

func parseProgram(tokens []lexer.Token, config Config) (*ast.Program, error) {
	return parse(
		tokens,
		config,
		func(p *parser) *ast.Program {
			statements := parseStatements(p, lexer.TokenEOF, allStatementKinds)
			return ast.NewProgram(statements)
		},
	)
}

func parse[T any](
	tokens []lexer.Token,
	config Config,
	parseFunc func(*parser) T,
) (
	result T,
	err error,
) {
	p := &parser{
		tokens: tokens,
		pos:    -1,
		config: config,
	}

	defer func() {
		if r := recover(); r != nil {
			var ok bool
			err, ok = r.(ParseError)
			if !ok {
				if internalErr, ok := r.(errors.InternalError); ok {
					err = internalErr
				} else {
					err = errors.NewUnexpectedError("parser: %v", r)
				}
			}

			var empty T
			result = empty
		}
	}()

	p.next()

	result = parseFunc(p)
	return result, nil
}

func (p *parser) next() {
	p.pos++
	if p.pos < len(p.tokens) {
		p.current = p.tokens[p.pos]
		return
	}

	// No more tokens, return an EOF token positioned after the last token
	var endPos ast.Position
	if count := len(p.tokens); count > 0 {
		endPos = p.tokens[count-1].EndPos
	} else {
		endPos = ast.NewPosition(0, 1, 1)
	}
	p.current = lexer.Token{
		Type:  lexer.TokenEOF,
		Range: ast.NewRange(endPos, endPos),
	}
}

// mustOne consumes the current token if it has the given type,
// and fails with a syntax error otherwise.
// The context describes where the token was expected, e.g. "after declaration".
func (p *parser) mustOne(tokenType lexer.TokenType, context string) lexer.Token {
	token := p.current
	if !token.Is(tokenType) {
		panic(p.expected(tokenType.String(), context))
	}
	p.next()
	return token
}

func (p *parser) mustIdentifier(context string) lexer.Token {
	return p.mustOne(lexer.TokenIdentifier, context)
}

func (p *parser) expected(what string, context string) *SyntaxError {
	if p.current.Is(lexer.TokenEOF) {
		return p.syntaxError("unexpected end of input, expected %s %s", what, context)
	}
	return p.syntaxError("expected %s %s, got %s", what, context, p.current.Type)
}

func (p *parser) syntaxError(message string, params ...any) *SyntaxError {
	return &SyntaxError{
		Pos:        p.current.StartPos,
		Message:    fmt.Sprintf(message, params...),
		EndOfInput: p.current.Is(lexer.TokenEOF),
	}
}
