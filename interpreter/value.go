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

package interpreter

import (
	"fmt"

	"github.com/emojilang/emojilang/errors"
)

// StaticType is the type of a value, as reported in type mismatch errors.
type StaticType uint8

const (
	StaticTypeUnknown StaticType = iota
	StaticTypeInt
	StaticTypeFloat
	StaticTypeString
	StaticTypeBool
	// StaticTypeNumber is the abstract supertype of StaticTypeInt and StaticTypeFloat
	StaticTypeNumber
)

func (t StaticType) String() string {
	switch t {
	case StaticTypeUnknown:
		return "unknown"
	case StaticTypeInt:
		return "int"
	case StaticTypeFloat:
		return "float"
	case StaticTypeString:
		return "string"
	case StaticTypeBool:
		return "bool"
	case StaticTypeNumber:
		return "number"
	}

	panic(errors.NewUnreachableError())
}

// Value is a runtime value.
type Value interface {
	fmt.Stringer
	isValue()
	StaticType() StaticType
}

// EquatableValue

type EquatableValue interface {
	Value
	// Equal returns true if the given value is equal to this value.
	// Values of different kinds are never equal, except numbers.
	Equal(other Value) bool
}

// ComparableValue

type ComparableValue interface {
	EquatableValue
	Less(other ComparableValue) BoolValue
	Greater(other ComparableValue) BoolValue
}

// BoolValue

type BoolValue bool

var _ Value = BoolValue(false)
var _ EquatableValue = BoolValue(false)

var TrueValue = BoolValue(true)
var FalseValue = BoolValue(false)

func AsBoolValue(v bool) BoolValue {
	if v {
		return TrueValue
	}
	return FalseValue
}

func (BoolValue) isValue() {}

func (BoolValue) StaticType() StaticType {
	return StaticTypeBool
}

func (v BoolValue) Equal(other Value) bool {
	otherBool, ok := other.(BoolValue)
	if !ok {
		return false
	}
	return bool(v) == bool(otherBool)
}

func (v BoolValue) String() string {
	if v {
		return "true"
	}
	return "false"
}
