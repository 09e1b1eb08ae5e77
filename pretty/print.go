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

package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
)

const ErrorPrefix = "error"

// FormatErrorMessage formats a message with the given prefix, e.g. `error: message`
func FormatErrorMessage(prefix string, message string, useColor bool) string {
	if !useColor {
		return prefix + ": " + message
	}
	return aurora.Colorize(prefix, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String() +
		aurora.Colorize(": "+message, aurora.BoldFm).String()
}

// ErrorPrettyPrinter prints errors together with an excerpt of the code they refer to.
// Excerpts are aligned in terminal cells, so wide glyphs are underlined correctly.
type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
	// err is the first error that occurred while writing
	err error
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) *ErrorPrettyPrinter {
	return &ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p *ErrorPrettyPrinter) writeString(str string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.writer, str)
}

func (p *ErrorPrettyPrinter) colorize(str string, color aurora.Color) string {
	if !p.useColor {
		return str
	}
	return aurora.Colorize(str, color).String()
}

// PrettyPrintError prints the given error.
// Errors with child errors are printed as the sequence of their children.
// The location names the code, e.g. a file name, and may be empty.
func (p *ErrorPrettyPrinter) PrettyPrintError(err error, location string, code []byte) error {
	p.prettyPrintError(err, location, code)
	return p.err
}

func (p *ErrorPrettyPrinter) prettyPrintError(err error, location string, code []byte) {
	if parentErr, ok := err.(errors.ParentError); ok {
		for i, childErr := range parentErr.ChildErrors() {
			if i > 0 {
				p.writeString("\n")
			}
			p.prettyPrintError(childErr, location, code)
		}
		return
	}

	p.writeString(FormatErrorMessage(ErrorPrefix, err.Error(), p.useColor))
	p.writeString("\n")

	var secondaryMessage string
	if secondaryError, ok := err.(errors.SecondaryError); ok {
		secondaryMessage = secondaryError.SecondaryError()
	}

	hasPosition, ok := err.(ast.HasPosition)
	if !ok || !hasPosition.StartPosition().IsValid() {
		if secondaryMessage != "" {
			p.writeString(p.colorize("  = "+secondaryMessage, aurora.YellowFg))
			p.writeString("\n")
		}
		return
	}

	startPos := hasPosition.StartPosition()
	endPos := hasPosition.EndPosition()

	lineNumber := strconv.Itoa(startPos.Line)
	gutter := strings.Repeat(" ", len(lineNumber))

	p.writeString(p.colorize(gutter+"--> ", aurora.BlueFg|aurora.BrightFg))
	if location != "" {
		p.writeString(location)
		p.writeString(":")
	}
	p.writeString(fmt.Sprintf("%d:%d\n", startPos.Line, startPos.Column))

	lines := strings.Split(string(code), "\n")
	if startPos.Line > len(lines) {
		return
	}
	line := strings.TrimSuffix(lines[startPos.Line-1], "\r")

	p.writeString(p.colorize(gutter+" |", aurora.BlueFg|aurora.BrightFg))
	p.writeString("\n")

	p.writeString(p.colorize(lineNumber+" | ", aurora.BlueFg|aurora.BrightFg))
	p.writeString(line)
	p.writeString("\n")

	indentation, underlined := excerptParts(line, startPos, endPos)

	p.writeString(p.colorize(gutter+" | ", aurora.BlueFg|aurora.BrightFg))
	p.writeString(alignment(indentation))

	underlineWidth := uniseg.StringWidth(underlined)
	if underlineWidth < 1 {
		underlineWidth = 1
	}
	p.writeString(p.colorize(strings.Repeat("^", underlineWidth), aurora.RedFg|aurora.BrightFg|aurora.BoldFm))

	if secondaryMessage != "" {
		p.writeString(" ")
		p.writeString(p.colorize(secondaryMessage, aurora.YellowFg))
	}
	p.writeString("\n")
}

// excerptParts splits the line into the text before the start position,
// and the text from the start position to the end position.
// Columns count code points and start at 1. The end position is inclusive.
func excerptParts(line string, startPos, endPos ast.Position) (before string, underlined string) {
	runes := []rune(line)

	start := startPos.Column - 1
	if start < 0 {
		start = 0
	}
	if start > len(runes) {
		start = len(runes)
	}

	end := len(runes)
	if endPos.Line == startPos.Line && endPos.Column >= startPos.Column {
		end = endPos.Column
	}
	if end > len(runes) {
		end = len(runes)
	}

	return string(runes[:start]), string(runes[start:end])
}

// alignment returns whitespace which has the same width as the given text.
// Tabs are kept, so the result is aligned regardless of the terminal's tab width.
func alignment(text string) string {
	var sb strings.Builder
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		cluster := graphemes.Str()
		if cluster == "\t" {
			sb.WriteString("\t")
			continue
		}
		sb.WriteString(strings.Repeat(" ", uniseg.StringWidth(cluster)))
	}
	return sb.String()
}
