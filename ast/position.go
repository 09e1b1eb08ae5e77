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
	"fmt"
	"unicode/utf8"
)

// Position defines a row/column within a source text.
type Position struct {
	// offset, starting at 0 (byte count)
	Offset int
	// line number, starting at 1
	Line int
	// column number, starting at 1 (code point count)
	Column int
}

var EmptyPosition = Position{}

func NewPosition(offset, line, column int) Position {
	return Position{
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

func (position Position) String() string {
	return fmt.Sprintf("%d:%d", position.Line, position.Column)
}

// IsValid reports whether the position refers to a location in the source.
// The zero position does not, as lines and columns start at 1.
func (position Position) IsValid() bool {
	return position.Line > 0
}

func (position Position) Compare(other Position) int {
	switch {
	case position.Offset < other.Offset:
		return -1
	case position.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

type HasPosition interface {
	StartPosition() Position
	EndPosition() Position
}

// Range

type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

func NewRange(startPos, endPos Position) Range {
	return Range{
		StartPos: startPos,
		EndPos:   endPos,
	}
}

func NewRangeFromPositioned(hasPosition HasPosition) Range {
	return Range{
		StartPos: hasPosition.StartPosition(),
		EndPos:   hasPosition.EndPosition(),
	}
}

func (e Range) StartPosition() Position {
	return e.StartPos
}

func (e Range) EndPosition() Position {
	return e.EndPos
}

// IsEmpty reports whether the range carries no source position,
// e.g. for nodes constructed outside the parser.
func (e Range) IsEmpty() bool {
	return !e.StartPos.IsValid()
}

// Source returns the part of the input covered by the range.
// The end position is inclusive and refers to the start of the last code point.
func (e Range) Source(input []byte) []byte {
	start := e.StartPos.Offset
	end := e.EndPos.Offset
	if start < 0 || start > end || end >= len(input) {
		return nil
	}
	_, width := utf8.DecodeRune(input[end:])
	return input[start : end+width]
}

func (e Range) String() string {
	return fmt.Sprintf("%s-%s", e.StartPos, e.EndPos)
}
