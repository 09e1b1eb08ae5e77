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
	"fmt"
	"math/big"

	"github.com/turbolent/prettier"

	"github.com/emojilang/emojilang/errors"
)

type Expression interface {
	Element
	fmt.Stringer
	isExpression()
	precedence() precedence
}

// precedence is the order of importance of an expression's operator.
// Higher values bind tighter.
type precedence uint

const (
	precedenceUnknown precedence = iota
	precedenceComparison
	precedenceAdditive
	precedenceMultiplicative
	precedenceLiteral
)

var parenOpenDoc prettier.Doc = prettier.Text("🫸")
var parenCloseDoc prettier.Doc = prettier.Text("🫷")

func wrapParentheses(doc prettier.Doc) prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			parenOpenDoc,
			prettier.Indent{
				Doc: prettier.Concat{
					prettier.SoftLine{},
					doc,
				},
			},
			prettier.SoftLine{},
			parenCloseDoc,
		},
	}
}

// BoolExpression

type BoolExpression struct {
	Value bool
	Range
}

var _ Expression = &BoolExpression{}

func NewBoolExpression(value bool, exprRange Range) *BoolExpression {
	return &BoolExpression{
		Value: value,
		Range: exprRange,
	}
}

func (*BoolExpression) isExpression() {}

func (*BoolExpression) ElementType() ElementType {
	return ElementTypeBoolExpression
}

func (*BoolExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *BoolExpression) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

var boolExpressionTrueDoc prettier.Doc = prettier.Text("👍")
var boolExpressionFalseDoc prettier.Doc = prettier.Text("👎")

func (e *BoolExpression) Doc() prettier.Doc {
	if e.Value {
		return boolExpressionTrueDoc
	}
	return boolExpressionFalseDoc
}

func (*BoolExpression) precedence() precedence {
	return precedenceLiteral
}

func (e *BoolExpression) MarshalJSON() ([]byte, error) {
	type Alias BoolExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "BoolExpression",
		Alias: (*Alias)(e),
	})
}

// StringExpression

type StringExpression struct {
	Value string
	Range
}

var _ Expression = &StringExpression{}

func NewStringExpression(value string, exprRange Range) *StringExpression {
	return &StringExpression{
		Value: value,
		Range: exprRange,
	}
}

func (*StringExpression) isExpression() {}

func (*StringExpression) ElementType() ElementType {
	return ElementTypeStringExpression
}

func (*StringExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *StringExpression) String() string {
	return fmt.Sprintf("%q", e.Value)
}

func (e *StringExpression) Doc() prettier.Doc {
	return prettier.Text("👉" + e.Value + "👈")
}

func (*StringExpression) precedence() precedence {
	return precedenceLiteral
}

func (e *StringExpression) MarshalJSON() ([]byte, error) {
	type Alias StringExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "StringExpression",
		Alias: (*Alias)(e),
	})
}

// IntegerExpression

type IntegerExpression struct {
	Value *big.Int
	Range
}

var _ Expression = &IntegerExpression{}

func NewIntegerExpression(value *big.Int, exprRange Range) *IntegerExpression {
	return &IntegerExpression{
		Value: value,
		Range: exprRange,
	}
}

func (*IntegerExpression) isExpression() {}

func (*IntegerExpression) ElementType() ElementType {
	return ElementTypeIntegerExpression
}

func (*IntegerExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IntegerExpression) String() string {
	return e.Value.String()
}

func (e *IntegerExpression) Doc() prettier.Doc {
	return prettier.Text(e.Value.String())
}

func (*IntegerExpression) precedence() precedence {
	return precedenceLiteral
}

func (e *IntegerExpression) MarshalJSON() ([]byte, error) {
	type Alias IntegerExpression
	return json.Marshal(&struct {
		Type  string
		Value string
		*Alias
	}{
		Type:  "IntegerExpression",
		Value: e.Value.String(),
		Alias: (*Alias)(e),
	})
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier string
	Range
}

var _ Expression = &IdentifierExpression{}

func NewIdentifierExpression(identifier string, exprRange Range) *IdentifierExpression {
	return &IdentifierExpression{
		Identifier: identifier,
		Range:      exprRange,
	}
}

func (*IdentifierExpression) isExpression() {}

func (*IdentifierExpression) ElementType() ElementType {
	return ElementTypeIdentifierExpression
}

func (*IdentifierExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IdentifierExpression) String() string {
	return e.Identifier
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier)
}

func (*IdentifierExpression) precedence() precedence {
	return precedenceLiteral
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "IdentifierExpression",
		Alias: (*Alias)(e),
	})
}

// BinaryExpression

type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
	// Range is the range of the operator token
	Range
}

var _ Expression = &BinaryExpression{}

func NewBinaryExpression(
	operation Operation,
	left Expression,
	right Expression,
	operatorRange Range,
) *BinaryExpression {
	return &BinaryExpression{
		Operation: operation,
		Left:      left,
		Right:     right,
		Range:     operatorRange,
	}
}

func (*BinaryExpression) isExpression() {}

func (*BinaryExpression) ElementType() ElementType {
	return ElementTypeBinaryExpression
}

func (e *BinaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Left)
	walkChild(e.Right)
}

func (e *BinaryExpression) String() string {
	return fmt.Sprintf(
		"(%s %s %s)",
		e.Left, e.Operation.Symbol(), e.Right,
	)
}

func (e *BinaryExpression) Doc() prettier.Doc {

	// All binary operations are left-associative:
	// the left operand needs parentheses if it binds weaker,
	// the right operand also if it binds equally strong.

	ownPrecedence := e.precedence()

	leftDoc := e.Left.Doc()
	if ownPrecedence > e.Left.precedence() {
		leftDoc = wrapParentheses(leftDoc)
	}

	rightDoc := e.Right.Doc()
	if ownPrecedence >= e.Right.precedence() {
		rightDoc = wrapParentheses(rightDoc)
	}

	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Group{
				Doc: leftDoc,
			},
			prettier.Line{},
			prettier.Text(e.Operation.Glyph()),
			prettier.Space,
			prettier.Group{
				Doc: rightDoc,
			},
		},
	}
}

func (e *BinaryExpression) precedence() precedence {
	switch e.Operation {
	case OperationEqual,
		OperationLess,
		OperationGreater:
		return precedenceComparison
	case OperationPlus, OperationMinus:
		return precedenceAdditive
	case OperationMul, OperationDiv:
		return precedenceMultiplicative
	case OperationUnknown:
		return precedenceUnknown
	}

	panic(errors.NewUnreachableError())
}

func (e *BinaryExpression) MarshalJSON() ([]byte, error) {
	type Alias BinaryExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "BinaryExpression",
		Alias: (*Alias)(e),
	})
}
