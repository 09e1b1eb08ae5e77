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
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
)

// NumberValue is an integer or a float.
// Arithmetic on two integers produces an integer,
// arithmetic involving a float produces a float.
type NumberValue interface {
	ComparableValue
	Plus(other NumberValue) NumberValue
	Minus(other NumberValue) NumberValue
	Mul(other NumberValue) NumberValue
	// Div performs real division: the result is always a float
	Div(other NumberValue, locationRange ast.Range) FloatValue
	IsZero() bool
	ToFloat() FloatValue
}

// IntValue is an arbitrary-precision integer.
type IntValue struct {
	BigInt *big.Int
}

var _ NumberValue = IntValue{}

func NewIntValueFromInt64(value int64) IntValue {
	return NewIntValueFromBigInt(big.NewInt(value))
}

func NewIntValueFromBigInt(value *big.Int) IntValue {
	return IntValue{BigInt: value}
}

func (IntValue) isValue() {}

func (IntValue) StaticType() StaticType {
	return StaticTypeInt
}

func (v IntValue) String() string {
	return v.BigInt.String()
}

func (v IntValue) IsZero() bool {
	return v.BigInt.Sign() == 0
}

func (v IntValue) ToFloat() FloatValue {
	f, _ := new(big.Float).SetInt(v.BigInt).Float64()
	return FloatValue(f)
}

func (v IntValue) Plus(other NumberValue) NumberValue {
	switch other := other.(type) {
	case IntValue:
		return NewIntValueFromBigInt(new(big.Int).Add(v.BigInt, other.BigInt))
	case FloatValue:
		return v.ToFloat().Plus(other)
	}
	panic(errors.NewUnreachableError())
}

func (v IntValue) Minus(other NumberValue) NumberValue {
	switch other := other.(type) {
	case IntValue:
		return NewIntValueFromBigInt(new(big.Int).Sub(v.BigInt, other.BigInt))
	case FloatValue:
		return v.ToFloat().Minus(other)
	}
	panic(errors.NewUnreachableError())
}

func (v IntValue) Mul(other NumberValue) NumberValue {
	switch other := other.(type) {
	case IntValue:
		return NewIntValueFromBigInt(new(big.Int).Mul(v.BigInt, other.BigInt))
	case FloatValue:
		return v.ToFloat().Mul(other)
	}
	panic(errors.NewUnreachableError())
}

func (v IntValue) Div(other NumberValue, locationRange ast.Range) FloatValue {
	if other.IsZero() {
		panic(DivisionByZeroError{
			Range: locationRange,
		})
	}

	switch other := other.(type) {
	case IntValue:
		// the exact quotient, rounded once
		quotient, _ := new(big.Rat).SetFrac(v.BigInt, other.BigInt).Float64()
		return FloatValue(quotient)
	case FloatValue:
		return v.ToFloat().Div(other, locationRange)
	}
	panic(errors.NewUnreachableError())
}

func (v IntValue) Equal(other Value) bool {
	otherNumber, ok := other.(NumberValue)
	if !ok {
		return false
	}
	result, ok := compareNumbers(v, otherNumber)
	return ok && result == 0
}

func (v IntValue) Less(other ComparableValue) BoolValue {
	result, ok := compareNumbers(v, other.(NumberValue))
	return AsBoolValue(ok && result < 0)
}

func (v IntValue) Greater(other ComparableValue) BoolValue {
	result, ok := compareNumbers(v, other.(NumberValue))
	return AsBoolValue(ok && result > 0)
}

// FloatValue is a 64-bit floating point number.
// It is only produced by division, and by arithmetic involving another float.
type FloatValue float64

var _ NumberValue = FloatValue(0)

func (FloatValue) isValue() {}

func (FloatValue) StaticType() StaticType {
	return StaticTypeFloat
}

// String returns the shortest representation which round-trips.
// Integral floats keep a fractional part, e.g. 2.0,
// very small and very large floats use an exponent, e.g. 1e+16.
func (v FloatValue) String() string {
	f := float64(v)

	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	result := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(result, '.') {
		result += ".0"
	}
	return result
}

func (v FloatValue) IsZero() bool {
	return v == 0
}

func (v FloatValue) ToFloat() FloatValue {
	return v
}

func (v FloatValue) Plus(other NumberValue) NumberValue {
	return v + other.ToFloat()
}

func (v FloatValue) Minus(other NumberValue) NumberValue {
	return v - other.ToFloat()
}

func (v FloatValue) Mul(other NumberValue) NumberValue {
	return v * other.ToFloat()
}

func (v FloatValue) Div(other NumberValue, locationRange ast.Range) FloatValue {
	if other.IsZero() {
		panic(DivisionByZeroError{
			Range: locationRange,
		})
	}
	return v / other.ToFloat()
}

func (v FloatValue) Equal(other Value) bool {
	otherNumber, ok := other.(NumberValue)
	if !ok {
		return false
	}
	result, ok := compareNumbers(v, otherNumber)
	return ok && result == 0
}

func (v FloatValue) Less(other ComparableValue) BoolValue {
	result, ok := compareNumbers(v, other.(NumberValue))
	return AsBoolValue(ok && result < 0)
}

func (v FloatValue) Greater(other ComparableValue) BoolValue {
	result, ok := compareNumbers(v, other.(NumberValue))
	return AsBoolValue(ok && result > 0)
}

// compareNumbers compares two numbers exactly, also across integers and floats.
// The result is not ok if one of the numbers is NaN, i.e. the numbers are unordered.
func compareNumbers(a, b NumberValue) (int, bool) {
	if a, ok := a.(IntValue); ok {
		if b, ok := b.(IntValue); ok {
			return a.BigInt.Cmp(b.BigInt), true
		}
	}

	aFloat, ok := toBigFloat(a)
	if !ok {
		return 0, false
	}
	bFloat, ok := toBigFloat(b)
	if !ok {
		return 0, false
	}
	return aFloat.Cmp(bFloat), true
}

func toBigFloat(value NumberValue) (*big.Float, bool) {
	switch value := value.(type) {
	case IntValue:
		return new(big.Float).SetInt(value.BigInt), true
	case FloatValue:
		f := float64(value)
		if math.IsNaN(f) {
			return nil, false
		}
		return big.NewFloat(f), true
	}
	panic(errors.NewUnreachableError())
}
