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

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/emojilang/emojilang/ast"
	"github.com/emojilang/emojilang/errors"
	"github.com/emojilang/emojilang/parser"
	"github.com/emojilang/emojilang/pretty"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// UseColor decides if output to the given file is colored.
// In auto mode, only terminals get colors.
func UseColor(mode string, file *os.File) (bool, error) {
	switch mode {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case ColorAuto, "":
		fd := file.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	default:
		return false, errors.NewDefaultUserError("invalid color mode: %q", mode)
	}
}

// PrintError pretty prints the error for the given code to the writer
func PrintError(writer io.Writer, err error, location string, code []byte, useColor bool) {
	printErr := pretty.NewErrorPrettyPrinter(writer, useColor).
		PrettyPrintError(err, location, code)
	if printErr != nil {
		panic(printErr)
	}
}

func must(err error, location string, code []byte, useColor bool) {
	if err == nil {
		return
	}
	PrintError(os.Stderr, err, location, code, useColor)
	os.Exit(1)
}

// MustClosure returns a function which, given an error, prints it and exits
func MustClosure(location string, code []byte, useColor bool) func(error) {
	return func(e error) {
		must(e, location, code, useColor)
	}
}

// ReadCode reads the file at the given location.
// If the file cannot be read, the error is reported and the program exits.
func ReadCode(location string, useColor bool) []byte {
	code, err := os.ReadFile(location)
	if err != nil {
		ExitWithError(err.Error(), useColor)
	}
	return code
}

// PrepareProgram parses the code.
// Errors are reported and exit the program.
func PrepareProgram(
	code []byte,
	location string,
	config parser.Config,
	useColor bool,
) (*ast.Program, func(error)) {
	must := MustClosure(location, code, useColor)

	program, err := parser.ParseProgram(code, config)
	must(err)

	return program, must
}

func ExitWithError(message string, useColor bool) {
	_, _ = fmt.Fprintln(os.Stderr, pretty.FormatErrorMessage(pretty.ErrorPrefix, message, useColor))
	os.Exit(1)
}
