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
	"strings"

	"golang.org/x/text/unicode/norm"
)

// StringValue

type StringValue struct {
	// Str is the string as written in the program
	Str string
	// normalized is the NFC form of Str, which is used for comparisons.
	// Glyphs have many equivalent encodings.
	normalized string
}

var _ ComparableValue = &StringValue{}

func NewStringValue(str string) *StringValue {
	return &StringValue{
		Str:        str,
		normalized: norm.NFC.String(str),
	}
}

func (*StringValue) isValue() {}

func (*StringValue) StaticType() StaticType {
	return StaticTypeString
}

func (v *StringValue) String() string {
	return v.Str
}

func (v *StringValue) Concat(other *StringValue) *StringValue {
	var sb strings.Builder
	sb.Grow(len(v.Str) + len(other.Str))
	sb.WriteString(v.Str)
	sb.WriteString(other.Str)
	return NewStringValue(sb.String())
}

func (v *StringValue) Equal(other Value) bool {
	otherString, ok := other.(*StringValue)
	if !ok {
		return false
	}
	return v.normalized == otherString.normalized
}

func (v *StringValue) Less(other ComparableValue) BoolValue {
	otherString := other.(*StringValue)
	return v.normalized < otherString.normalized
}

func (v *StringValue) Greater(other ComparableValue) BoolValue {
	otherString := other.(*StringValue)
	return v.normalized > otherString.normalized
}
